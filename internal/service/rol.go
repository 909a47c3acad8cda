package service

import (
	"context"
	"fmt"
	"registry/pkg/domain"
	"registry/pkg/serrors"
	"registry/pkg/storage"

	"github.com/patrickmn/go-cache"
)

const (
	rolesCacheKey = "roles"
)

// rolService serves the read-only role catalog through an in-memory cache.
type rolService struct {
	options Options
	storage storage.Storage
	cache   *cache.Cache
}

func (s *rolService) RolPorDefecto(ctx context.Context) (*domain.Rol, error) {
	rol, err := s.byName(ctx, s.options.DefaultRole)
	if err != nil {
		return nil, fmt.Errorf("could not get default role: %w", err)
	}

	return rol, nil
}

func (s *rolService) ObtenerRol(ctx context.Context, id domain.RolID) (*domain.Rol, error) {
	key := fmt.Sprintf("id:%d", id)
	if v, ok := s.cache.Get(key); ok {
		rol, _ := v.(domain.Rol)

		return &rol, nil
	}

	rol, err := s.storage.RolByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get role: %w", err)
	}
	if rol == nil {
		return nil, serrors.NotFound("rol", id).WithField("roleId")
	}
	s.remember(*rol)

	return rol, nil
}

func (s *rolService) ListarRoles(ctx context.Context) ([]domain.Rol, error) {
	if v, ok := s.cache.Get(rolesCacheKey); ok {
		roles, _ := v.([]domain.Rol)

		return append([]domain.Rol(nil), roles...), nil
	}

	roles, err := s.storage.Roles(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not list roles: %w", err)
	}
	s.cache.SetDefault(rolesCacheKey, append([]domain.Rol(nil), roles...))
	for _, r := range roles {
		s.remember(r)
	}

	return roles, nil
}

func (s *rolService) byName(ctx context.Context, name string) (*domain.Rol, error) {
	if v, ok := s.cache.Get("name:" + name); ok {
		rol, _ := v.(domain.Rol)

		return &rol, nil
	}

	rol, err := s.storage.RolByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if rol == nil {
		return nil, serrors.NotFound("rol", name)
	}
	s.remember(*rol)

	return rol, nil
}

func (s *rolService) remember(r domain.Rol) {
	s.cache.SetDefault(fmt.Sprintf("id:%d", r.ID()), r)
	s.cache.SetDefault("name:"+r.Name(), r)
}

func NewRolService(storage storage.Storage, options Options) RolService {
	c := cache.New(cache.NoExpiration, 0)
	if ttl := options.RoleCacheTTL; ttl > 0 {
		c = cache.New(ttl, 2*ttl)
	}

	return &rolService{
		options: options,
		storage: storage,
		cache:   c,
	}
}
