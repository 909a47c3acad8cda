package service

import (
	"context"
	"fmt"
	"registry/pkg/domain"
	"registry/pkg/files"
	"registry/pkg/logger"
	"registry/pkg/serrors"
	"registry/pkg/storage"

	"go.uber.org/zap"
)

// PhotoReplacement is the outcome of ActualizarPerfilConFoto. The caller
// commits the surrounding transaction, then hands it to FinalizarReemplazo, or
// to DescartarReemplazo when the transaction did not commit.
type PhotoReplacement struct {
	Perfil *domain.PerfilUsuario
	// NewLink is the path of the freshly written file, empty when no photo was supplied.
	NewLink string
	// OldLink is the path of the file that lost its image row, empty when there was none.
	OldLink string
}

type perfilService struct {
	options Options
	storage storage.Storage
	files   files.Storage
}

// CrearPerfil checks that the user exists, has no profile yet and that a
// non-empty DNI is unused before storing the profile.
func (s *perfilService) CrearPerfil(ctx context.Context, fields domain.PerfilFields) (*domain.PerfilUsuario, error) {
	perfil, err := domain.NewPerfilUsuario(fields)
	if err != nil {
		return nil, err
	}

	u, err := s.storage.UsuarioByID(ctx, perfil.UserID())
	if err != nil {
		return nil, fmt.Errorf("could not get usuario: %w", err)
	}
	if u == nil {
		return nil, serrors.NotFound("usuario", perfil.UserID()).WithField("userId")
	}

	existing, err := s.storage.PerfilByUserID(ctx, perfil.UserID())
	if err != nil {
		return nil, fmt.Errorf("could not get perfil: %w", err)
	}
	if existing != nil {
		return nil, serrors.Duplicate("perfil", perfil.UserID(), "userId")
	}

	if err := s.checkDNI(ctx, s.storage, perfil.DNI(), 0); err != nil {
		return nil, err
	}

	stored, err := s.storage.StorePerfil(ctx, perfil)
	if err != nil {
		return nil, fmt.Errorf("could not store perfil: %w", err)
	}

	return stored, nil
}

// CrearPerfilTx stores the profile inside the caller's transaction without
// pre-checks: the user row may only be visible inside that transaction.
// Store constraints report the same duplicate and not found errors.
func (s *perfilService) CrearPerfilTx(ctx context.Context,
	tx storage.AllStorage,
	fields domain.PerfilFields) (*domain.PerfilUsuario, error) {
	perfil, err := domain.NewPerfilUsuario(fields)
	if err != nil {
		return nil, err
	}

	stored, err := tx.StorePerfil(ctx, perfil)
	if err != nil {
		return nil, fmt.Errorf("could not store perfil: %w", err)
	}

	return stored, nil
}

// ActualizarPerfil replaces every field of the profile. The owner, the photo
// and the verified flag are kept.
func (s *perfilService) ActualizarPerfil(ctx context.Context,
	id domain.PerfilID,
	fields domain.PerfilFields) (*domain.PerfilUsuario, error) {
	perfil, err := s.loadForUpdate(ctx, s.storage, id, fields)
	if err != nil {
		return nil, err
	}

	updated, err := s.storage.UpdatePerfil(ctx, perfil)
	if err != nil {
		return nil, fmt.Errorf("could not update perfil: %w", err)
	}
	if updated == nil {
		return nil, serrors.NotFound("perfil", id)
	}

	return updated, nil
}

// ActualizarPerfilConFoto replaces the profile fields and, when photo is not
// empty, its photo. The new file is written and its image row inserted before
// the profile is repointed, and the old image row is deleted only afterwards,
// so the profile never references a missing image. Every row change happens
// in tx. Without a photo the current one is kept.
func (s *perfilService) ActualizarPerfilConFoto(ctx context.Context,
	tx storage.AllStorage,
	id domain.PerfilID,
	fields domain.PerfilFields,
	photo []byte,
	photoName string) (*PhotoReplacement, error) {
	perfil, err := s.loadForUpdate(ctx, tx, id, fields)
	if err != nil {
		return nil, err
	}

	if len(photo) == 0 {
		updated, err := tx.UpdatePerfil(ctx, perfil)
		if err != nil {
			return nil, fmt.Errorf("could not update perfil: %w", err)
		}
		if updated == nil {
			return nil, serrors.NotFound("perfil", id)
		}

		return &PhotoReplacement{Perfil: updated}, nil
	}

	oldImageID := perfil.PhotoImageID()

	link, err := s.files.Save(ctx, files.KindPerfil, int64(id), photoName, photo)
	if err != nil {
		return nil, serrors.Infra(err, "could not store photo")
	}
	r := &PhotoReplacement{NewLink: link}

	updated, err := s.repoint(ctx, tx, perfil, link)
	if err != nil {
		s.DescartarReemplazo(ctx, r)

		return nil, err
	}
	r.Perfil = updated

	if oldImageID != nil {
		old, err := tx.ImageByID(ctx, *oldImageID)
		if err != nil {
			s.DescartarReemplazo(ctx, r)

			return nil, fmt.Errorf("could not get previous image: %w", err)
		}
		if _, err := tx.DeleteImage(ctx, *oldImageID); err != nil {
			s.DescartarReemplazo(ctx, r)

			return nil, fmt.Errorf("could not delete previous image: %w", err)
		}
		if old != nil {
			r.OldLink = old.Link
		}
	}

	return r, nil
}

func (s *perfilService) repoint(ctx context.Context,
	tx storage.AllStorage,
	perfil *domain.PerfilUsuario,
	link string) (*domain.PerfilUsuario, error) {
	img, err := domain.NewImage(link)
	if err != nil {
		return nil, err
	}
	stored, err := tx.StoreImage(ctx, img)
	if err != nil {
		return nil, fmt.Errorf("could not store image: %w", err)
	}

	if err := perfil.SetPhoto(stored.ID); err != nil {
		return nil, err
	}
	updated, err := tx.UpdatePerfil(ctx, perfil)
	if err != nil {
		return nil, fmt.Errorf("could not update perfil: %w", err)
	}
	if updated == nil {
		return nil, serrors.NotFound("perfil", perfil.ID())
	}

	return updated, nil
}

// FinalizarReemplazo deletes the replaced file once the transaction has
// committed. When that fails the file is handed to the orphan file worker.
func (s *perfilService) FinalizarReemplazo(ctx context.Context, r *PhotoReplacement) {
	if r == nil || r.OldLink == "" {
		return
	}

	log := logger.Get(ctx).With(zap.String("path", r.OldLink))
	_, err := s.files.Delete(ctx, r.OldLink)
	if err == nil {
		return
	}
	log.Warn("could not delete replaced photo, scheduling cleanup", zap.Error(err))

	if _, err := s.storage.AddJob(ctx, NewOrphanFileArgs(r.OldLink, s.options.OrphanFileMaxAttempts), nil); err != nil {
		log.Error("could not schedule orphan file cleanup", zap.Error(err))
	}
}

// DescartarReemplazo deletes the newly written file of a replacement whose
// transaction did not commit. Failures are only logged.
func (s *perfilService) DescartarReemplazo(ctx context.Context, r *PhotoReplacement) {
	if r == nil || r.NewLink == "" {
		return
	}

	if _, err := s.files.Delete(ctx, r.NewLink); err != nil {
		logger.Get(ctx).Warn("could not delete discarded photo",
			zap.String("path", r.NewLink),
			zap.Error(err))
	}
}

func (s *perfilService) VerificarPerfil(ctx context.Context, id domain.PerfilID) (*domain.PerfilUsuario, error) {
	perfil, err := s.ObtenerPerfil(ctx, id)
	if err != nil {
		return nil, err
	}

	perfil.MarkVerified()
	updated, err := s.storage.UpdatePerfil(ctx, perfil)
	if err != nil {
		return nil, fmt.Errorf("could not verify perfil: %w", err)
	}
	if updated == nil {
		return nil, serrors.NotFound("perfil", id)
	}

	return updated, nil
}

func (s *perfilService) ObtenerPerfil(ctx context.Context, id domain.PerfilID) (*domain.PerfilUsuario, error) {
	perfil, err := s.storage.PerfilByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get perfil: %w", err)
	}
	if perfil == nil {
		return nil, serrors.NotFound("perfil", id)
	}

	return perfil, nil
}

func (s *perfilService) ObtenerPerfilPorUsuario(ctx context.Context,
	userID domain.UsuarioID) (*domain.PerfilUsuario, error) {
	perfil, err := s.storage.PerfilByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("could not get perfil: %w", err)
	}
	if perfil == nil {
		return nil, serrors.NotFound("perfil", userID).WithField("userId")
	}

	return perfil, nil
}

func (s *perfilService) ObtenerPerfilPorDNI(ctx context.Context, dni string) (*domain.PerfilUsuario, error) {
	perfil, err := s.storage.PerfilByDNI(ctx, dni)
	if err != nil {
		return nil, fmt.Errorf("could not get perfil: %w", err)
	}
	if perfil == nil {
		return nil, serrors.NotFound("perfil", dni).WithField("dni")
	}

	return perfil, nil
}

// loadForUpdate loads profile id through st and applies fields to it. The
// owner and photo of the stored profile win over the ones in fields.
func (s *perfilService) loadForUpdate(ctx context.Context,
	st storage.AllStorage,
	id domain.PerfilID,
	fields domain.PerfilFields) (*domain.PerfilUsuario, error) {
	if id <= 0 {
		return nil, serrors.With(serrors.ErrIllegalArgument, "perfil id is required for an update")
	}

	perfil, err := st.PerfilByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get perfil: %w", err)
	}
	if perfil == nil {
		return nil, serrors.NotFound("perfil", id)
	}

	current := perfil.Fields()
	fields.UserID = current.UserID
	fields.PhotoImageID = current.PhotoImageID
	if err := perfil.Replace(fields); err != nil {
		return nil, err
	}

	if !sameDNI(current.DNI, perfil.DNI()) {
		if err := s.checkDNI(ctx, st, perfil.DNI(), id); err != nil {
			return nil, err
		}
	}

	return perfil, nil
}

// checkDNI fails when dni is set and belongs to a profile other than self.
func (s *perfilService) checkDNI(ctx context.Context, st storage.AllStorage, dni *string, self domain.PerfilID) error {
	if dni == nil {
		return nil
	}

	other, err := st.PerfilByDNI(ctx, *dni)
	if err != nil {
		return fmt.Errorf("could not check dni: %w", err)
	}
	if other != nil && other.ID() != self {
		return serrors.Duplicate("dni", *dni, "dni")
	}

	return nil
}

func sameDNI(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	return *a == *b
}

func NewPerfilUsuarioService(storage storage.Storage, files files.Storage, options Options) PerfilUsuarioService {
	return &perfilService{
		options: options,
		storage: storage,
		files:   files,
	}
}
