// Package facade is the entry point of the registry. Facades validate
// requests exhaustively, open a unit of work when an operation spans several
// entities, call the services and translate every failure into a
// result.Result. No error crosses this boundary unconverted.
package facade

import (
	"context"
	"registry/pkg/result"
)

//go:generate mockgen -package mockfacade -source=interface.go -destination=mock/mockfacade.go *
type AuthFacade interface {
	// RegistrarUsuario creates a user and its profile atomically.
	RegistrarUsuario(ctx context.Context, req RegistroRequest) result.Result[UsuarioView]
	IniciarSesion(ctx context.Context, req LoginRequest) result.Result[SessionView]
	VerificarEmail(ctx context.Context, userID int64) result.Result[UsuarioView]
	ObtenerUsuario(ctx context.Context, userID int64) result.Result[UsuarioView]
	ObtenerUsuarioPorEmail(ctx context.Context, email string) result.Result[UsuarioView]
}

type PerfilFacade interface {
	CrearPerfil(ctx context.Context, req PerfilRequest) result.Result[PerfilView]
	ActualizarPerfil(ctx context.Context, req PerfilRequest) result.Result[PerfilView]
	// ActualizarPerfilConFoto also replaces the profile photo when photo is
	// not empty.
	ActualizarPerfilConFoto(ctx context.Context, req PerfilRequest, photo []byte, photoName string) result.Result[PerfilView]
	ObtenerPerfilPorUsuario(ctx context.Context, userID int64) result.Result[PerfilView]
	ObtenerPerfilPorDNI(ctx context.Context, dni string) result.Result[PerfilView]
	VerificarPerfil(ctx context.Context, perfilID int64) result.Result[PerfilView]
}
