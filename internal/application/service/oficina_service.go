package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/coopertrans/guias-api/internal/domain/entity"
	"github.com/coopertrans/guias-api/internal/domain/repository"
	"github.com/coopertrans/guias-api/pkg/apperror"
)

// OficinaService handles branch office operations
type OficinaService struct {
	oficinaRepo repository.OficinaRepository
	auditoria   *AuditoriaService
}

// NewOficinaService creates a new office service
func NewOficinaService(oficinaRepo repository.OficinaRepository, auditoria *AuditoriaService) *OficinaService {
	return &OficinaService{oficinaRepo: oficinaRepo, auditoria: auditoria}
}

// CreateOficinaInput represents the create office input
type CreateOficinaInput struct {
	Codigo    string
	Nombre    string
	Ciudad    string
	Direccion *string
	Telefono  *string
}

// CreateOficina registers a new branch office
func (s *OficinaService) CreateOficina(ctx context.Context, input *CreateOficinaInput) (*entity.Oficina, error) {
	existing, err := s.oficinaRepo.GetByCodigo(ctx, input.Codigo)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Ya existe una oficina con ese código")
	}

	oficina := &entity.Oficina{
		Codigo:    input.Codigo,
		Nombre:    input.Nombre,
		Ciudad:    input.Ciudad,
		Direccion: input.Direccion,
		Telefono:  input.Telefono,
	}

	if err := s.oficinaRepo.Create(ctx, oficina); err != nil {
		return nil, err
	}

	_ = s.auditoria.Registrar(ctx, "crear", "oficina", oficina.ID.String(), oficina.Nombre)
	return oficina, nil
}

// GetOficina retrieves an office by ID
func (s *OficinaService) GetOficina(ctx context.Context, id uuid.UUID) (*entity.Oficina, error) {
	oficina, err := s.oficinaRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if oficina == nil {
		return nil, apperror.NewNotFoundError("Oficina")
	}
	return oficina, nil
}

// ListOficinas returns all offices. The office catalog is small, so no
// pagination is applied.
func (s *OficinaService) ListOficinas(ctx context.Context) ([]entity.Oficina, error) {
	return s.oficinaRepo.List(ctx)
}

// UpdateOficinaInput represents the update office input
type UpdateOficinaInput struct {
	ID        uuid.UUID
	Nombre    string
	Ciudad    string
	Direccion *string
	Telefono  *string
}

// UpdateOficina updates an office's data. The office code is immutable.
func (s *OficinaService) UpdateOficina(ctx context.Context, input *UpdateOficinaInput) (*entity.Oficina, error) {
	oficina, err := s.oficinaRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if oficina == nil {
		return nil, apperror.NewNotFoundError("Oficina")
	}

	if input.Nombre != "" {
		oficina.Nombre = input.Nombre
	}
	if input.Ciudad != "" {
		oficina.Ciudad = input.Ciudad
	}
	if input.Direccion != nil {
		oficina.Direccion = input.Direccion
	}
	if input.Telefono != nil {
		oficina.Telefono = input.Telefono
	}

	if err := s.oficinaRepo.Update(ctx, oficina); err != nil {
		return nil, err
	}

	_ = s.auditoria.Registrar(ctx, "actualizar", "oficina", oficina.ID.String(), oficina.Nombre)
	return oficina, nil
}

// DeleteOficina soft deletes an office. Guides keep their office
// references for history.
func (s *OficinaService) DeleteOficina(ctx context.Context, id uuid.UUID) error {
	oficina, err := s.oficinaRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if oficina == nil {
		return apperror.NewNotFoundError("Oficina")
	}

	if err := s.oficinaRepo.Delete(ctx, id); err != nil {
		return err
	}

	_ = s.auditoria.Registrar(ctx, "eliminar", "oficina", id.String(), oficina.Nombre)
	return nil
}
