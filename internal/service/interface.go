// Package service holds the business rules of the registry: duplicate checks,
// sequencing of multi-step writes and the profile photo replacement protocol.
//
// Every write is offered in an ambient form, which runs on its own connection
// and performs uniqueness pre-checks, and where relevant in a scoped form (Tx
// suffix) that joins a caller-supplied transaction and leaves uniqueness to
// store constraints.
package service

import (
	"context"
	"registry/pkg/domain"
	"registry/pkg/storage"
)

//go:generate mockgen -package mockservice -source=interface.go -destination=mock/mockservice.go *
type UsuarioService interface {
	RegistrarUsuario(ctx context.Context, email, password string) (*domain.Usuario, error)
	RegistrarUsuarioTx(ctx context.Context, tx storage.AllStorage, email, password string) (*domain.Usuario, error)
	IniciarSesion(ctx context.Context, email, password string) (*domain.Usuario, error)
	VerificarEmail(ctx context.Context, id domain.UsuarioID) (*domain.Usuario, error)
	ObtenerUsuario(ctx context.Context, id domain.UsuarioID) (*domain.Usuario, error)
	ObtenerUsuarioPorEmail(ctx context.Context, email string) (*domain.Usuario, error)
}

type PerfilUsuarioService interface {
	CrearPerfil(ctx context.Context, fields domain.PerfilFields) (*domain.PerfilUsuario, error)
	CrearPerfilTx(ctx context.Context, tx storage.AllStorage, fields domain.PerfilFields) (*domain.PerfilUsuario, error)
	ActualizarPerfil(ctx context.Context, id domain.PerfilID, fields domain.PerfilFields) (*domain.PerfilUsuario, error)
	ActualizarPerfilConFoto(ctx context.Context,
		tx storage.AllStorage,
		id domain.PerfilID,
		fields domain.PerfilFields,
		photo []byte,
		photoName string) (*PhotoReplacement, error)
	FinalizarReemplazo(ctx context.Context, r *PhotoReplacement)
	DescartarReemplazo(ctx context.Context, r *PhotoReplacement)
	VerificarPerfil(ctx context.Context, id domain.PerfilID) (*domain.PerfilUsuario, error)
	ObtenerPerfil(ctx context.Context, id domain.PerfilID) (*domain.PerfilUsuario, error)
	ObtenerPerfilPorUsuario(ctx context.Context, userID domain.UsuarioID) (*domain.PerfilUsuario, error)
	ObtenerPerfilPorDNI(ctx context.Context, dni string) (*domain.PerfilUsuario, error)
}

type RolService interface {
	RolPorDefecto(ctx context.Context) (*domain.Rol, error)
	ObtenerRol(ctx context.Context, id domain.RolID) (*domain.Rol, error)
	ListarRoles(ctx context.Context) ([]domain.Rol, error)
}
