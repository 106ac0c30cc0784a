package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/coopertrans/guias-api/internal/domain/entity"
	"github.com/coopertrans/guias-api/internal/domain/enum"
	"github.com/coopertrans/guias-api/internal/domain/repository"
	"github.com/coopertrans/guias-api/pkg/apperror"
)

// CuentaService handles chart-of-accounts operations
type CuentaService struct {
	cuentaRepo repository.CuentaRepository
	auditoria  *AuditoriaService
}

// NewCuentaService creates a new chart-of-accounts service
func NewCuentaService(cuentaRepo repository.CuentaRepository, auditoria *AuditoriaService) *CuentaService {
	return &CuentaService{cuentaRepo: cuentaRepo, auditoria: auditoria}
}

// CreateCuentaInput represents the create account input
type CreateCuentaInput struct {
	Codigo  string
	Nombre  string
	Tipo    enum.TipoCuenta
	PadreID *uuid.UUID
}

// CreateCuenta adds an account to the chart. A child account inherits
// its parent's type.
func (s *CuentaService) CreateCuenta(ctx context.Context, input *CreateCuentaInput) (*entity.CuentaContable, error) {
	existing, err := s.cuentaRepo.GetByCodigo(ctx, input.Codigo)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Ya existe una cuenta con ese código")
	}

	tipo := input.Tipo
	if input.PadreID != nil {
		padre, err := s.cuentaRepo.GetByID(ctx, *input.PadreID)
		if err != nil {
			return nil, err
		}
		if padre == nil {
			return nil, apperror.NewNotFoundError("Cuenta padre")
		}
		tipo = padre.Tipo
	}

	cuenta := &entity.CuentaContable{
		Codigo:  input.Codigo,
		Nombre:  input.Nombre,
		Tipo:    tipo,
		PadreID: input.PadreID,
	}

	if err := s.cuentaRepo.Create(ctx, cuenta); err != nil {
		return nil, err
	}

	_ = s.auditoria.Registrar(ctx, "crear", "cuenta", cuenta.ID.String(), cuenta.Codigo+" "+cuenta.Nombre)
	return cuenta, nil
}

// GetCuenta retrieves an account by ID
func (s *CuentaService) GetCuenta(ctx context.Context, id uuid.UUID) (*entity.CuentaContable, error) {
	cuenta, err := s.cuentaRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cuenta == nil {
		return nil, apperror.NewNotFoundError("Cuenta")
	}
	return cuenta, nil
}

// ListCuentas returns the whole chart ordered by code
func (s *CuentaService) ListCuentas(ctx context.Context) ([]entity.CuentaContable, error) {
	return s.cuentaRepo.List(ctx)
}

// UpdateCuentaInput represents the update account input
type UpdateCuentaInput struct {
	ID     uuid.UUID
	Nombre string
}

// UpdateCuenta renames an account. Code, type and parent are fixed once
// the account exists.
func (s *CuentaService) UpdateCuenta(ctx context.Context, input *UpdateCuentaInput) (*entity.CuentaContable, error) {
	cuenta, err := s.cuentaRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if cuenta == nil {
		return nil, apperror.NewNotFoundError("Cuenta")
	}

	if input.Nombre != "" {
		cuenta.Nombre = input.Nombre
	}

	if err := s.cuentaRepo.Update(ctx, cuenta); err != nil {
		return nil, err
	}

	_ = s.auditoria.Registrar(ctx, "actualizar", "cuenta", cuenta.ID.String(), cuenta.Codigo+" "+cuenta.Nombre)
	return cuenta, nil
}

// DeleteCuenta removes a leaf account. An account with children cannot
// be deleted.
func (s *CuentaService) DeleteCuenta(ctx context.Context, id uuid.UUID) error {
	cuenta, err := s.cuentaRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if cuenta == nil {
		return apperror.NewNotFoundError("Cuenta")
	}

	hijas, err := s.cuentaRepo.CountHijas(ctx, id)
	if err != nil {
		return err
	}
	if hijas > 0 {
		return apperror.NewConflictError("No se puede eliminar una cuenta con subcuentas")
	}

	if err := s.cuentaRepo.Delete(ctx, id); err != nil {
		return err
	}

	_ = s.auditoria.Registrar(ctx, "eliminar", "cuenta", id.String(), cuenta.Codigo+" "+cuenta.Nombre)
	return nil
}
