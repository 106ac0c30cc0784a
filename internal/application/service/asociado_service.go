package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/coopertrans/guias-api/internal/domain/entity"
	"github.com/coopertrans/guias-api/internal/domain/finance"
	"github.com/coopertrans/guias-api/internal/domain/repository"
	"github.com/coopertrans/guias-api/pkg/apperror"
	"github.com/coopertrans/guias-api/pkg/pagination"
)

// AsociadoService handles cooperative member operations, including the
// reconciled account statement
type AsociadoService struct {
	asociadoRepo repository.AsociadoRepository
	deudaRepo    repository.DeudaRepository
	reciboRepo   repository.ReciboRepository
	auditoria    *AuditoriaService
}

// NewAsociadoService creates a new member service
func NewAsociadoService(
	asociadoRepo repository.AsociadoRepository,
	deudaRepo repository.DeudaRepository,
	reciboRepo repository.ReciboRepository,
	auditoria *AuditoriaService,
) *AsociadoService {
	return &AsociadoService{
		asociadoRepo: asociadoRepo,
		deudaRepo:    deudaRepo,
		reciboRepo:   reciboRepo,
		auditoria:    auditoria,
	}
}

// CreateAsociadoInput represents the create member input
type CreateAsociadoInput struct {
	CodigoSocio  string
	Cedula       string
	Nombre       string
	Telefono     *string
	Email        *string
	Direccion    *string
	Placa        *string
	FechaIngreso *time.Time
}

// CreateAsociado registers a new cooperative member
func (s *AsociadoService) CreateAsociado(ctx context.Context, input *CreateAsociadoInput) (*entity.Asociado, error) {
	existing, err := s.asociadoRepo.GetByCedula(ctx, input.Cedula)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Ya existe un asociado con esa cédula")
	}

	existing, err = s.asociadoRepo.GetByCodigoSocio(ctx, input.CodigoSocio)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Ya existe un asociado con ese código")
	}

	asociado := &entity.Asociado{
		CodigoSocio:  input.CodigoSocio,
		Cedula:       input.Cedula,
		Nombre:       input.Nombre,
		Telefono:     input.Telefono,
		Email:        input.Email,
		Direccion:    input.Direccion,
		Placa:        input.Placa,
		Activo:       true,
		FechaIngreso: input.FechaIngreso,
	}

	if err := s.asociadoRepo.Create(ctx, asociado); err != nil {
		return nil, err
	}

	_ = s.auditoria.Registrar(ctx, "crear", "asociado", asociado.ID.String(), asociado.Nombre)
	return asociado, nil
}

// GetAsociado retrieves a member by ID
func (s *AsociadoService) GetAsociado(ctx context.Context, id uuid.UUID) (*entity.Asociado, error) {
	asociado, err := s.asociadoRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if asociado == nil {
		return nil, apperror.NewNotFoundError("Asociado")
	}
	return asociado, nil
}

// ListAsociados lists members with pagination and search
func (s *AsociadoService) ListAsociados(ctx context.Context, params *pagination.PaginationParams, search string, soloActivos bool) (*pagination.PaginatedResult[entity.Asociado], error) {
	asociados, total, err := s.asociadoRepo.List(ctx, params, search, soloActivos)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(asociados, pag), nil
}

// UpdateAsociadoInput represents the update member input
type UpdateAsociadoInput struct {
	ID           uuid.UUID
	Nombre       string
	Telefono     *string
	Email        *string
	Direccion    *string
	Placa        *string
	Activo       *bool
	FechaIngreso *time.Time
}

// UpdateAsociado updates a member's data. The member code and the cédula
// are immutable once assigned.
func (s *AsociadoService) UpdateAsociado(ctx context.Context, input *UpdateAsociadoInput) (*entity.Asociado, error) {
	asociado, err := s.asociadoRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if asociado == nil {
		return nil, apperror.NewNotFoundError("Asociado")
	}

	if input.Nombre != "" {
		asociado.Nombre = input.Nombre
	}
	if input.Telefono != nil {
		asociado.Telefono = input.Telefono
	}
	if input.Email != nil {
		asociado.Email = input.Email
	}
	if input.Direccion != nil {
		asociado.Direccion = input.Direccion
	}
	if input.Placa != nil {
		asociado.Placa = input.Placa
	}
	if input.Activo != nil {
		asociado.Activo = *input.Activo
	}
	if input.FechaIngreso != nil {
		asociado.FechaIngreso = input.FechaIngreso
	}

	if err := s.asociadoRepo.Update(ctx, asociado); err != nil {
		return nil, err
	}

	_ = s.auditoria.Registrar(ctx, "actualizar", "asociado", asociado.ID.String(), asociado.Nombre)
	return asociado, nil
}

// DeleteAsociado removes a member. A member with debts or receipts keeps
// its history and is deactivated instead of deleted.
func (s *AsociadoService) DeleteAsociado(ctx context.Context, id uuid.UUID) error {
	asociado, err := s.asociadoRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if asociado == nil {
		return apperror.NewNotFoundError("Asociado")
	}

	deudas, err := s.deudaRepo.ListByAsociado(ctx, id)
	if err != nil {
		return err
	}
	recibos, err := s.reciboRepo.ListByAsociado(ctx, id)
	if err != nil {
		return err
	}

	if len(deudas) > 0 || len(recibos) > 0 {
		asociado.Activo = false
		if err := s.asociadoRepo.Update(ctx, asociado); err != nil {
			return err
		}
		_ = s.auditoria.Registrar(ctx, "desactivar", "asociado", id.String(), asociado.Nombre)
		return nil
	}

	if err := s.asociadoRepo.Delete(ctx, id); err != nil {
		return err
	}
	_ = s.auditoria.Registrar(ctx, "eliminar", "asociado", id.String(), asociado.Nombre)
	return nil
}

// EstadoCuenta is the reconciled statement of one member
type EstadoCuenta struct {
	Asociado     *entity.Asociado     `json:"asociado"`
	Movimientos  []finance.Movimiento `json:"movimientos"`
	SaldoPeriodo decimal.Decimal      `json:"saldo_periodo"`
	SaldoTotal   decimal.Decimal      `json:"saldo_total"`
}

// GetEstadoCuenta merges the member's debts and receipts into one
// chronological statement. With a date range the movements and the
// period balance cover only that window; the total balance always spans
// the whole history.
func (s *AsociadoService) GetEstadoCuenta(ctx context.Context, asociadoID uuid.UUID, desde, hasta *time.Time) (*EstadoCuenta, error) {
	asociado, err := s.asociadoRepo.GetByID(ctx, asociadoID)
	if err != nil {
		return nil, err
	}
	if asociado == nil {
		return nil, apperror.NewNotFoundError("Asociado")
	}

	deudas, err := s.deudaRepo.ListByAsociado(ctx, asociadoID)
	if err != nil {
		return nil, err
	}
	recibos, err := s.reciboRepo.ListByAsociado(ctx, asociadoID)
	if err != nil {
		return nil, err
	}

	cargos := make([]finance.Cargo, 0, len(deudas))
	for _, d := range deudas {
		cargos = append(cargos, finance.Cargo{
			Fecha:      d.FechaVencimiento,
			Concepto:   d.Concepto,
			Referencia: d.ID.String(),
			Monto:      d.MontoBs,
		})
	}

	abonos := make([]finance.Abono, 0, len(recibos))
	for _, r := range recibos {
		abonos = append(abonos, finance.Abono{
			Fecha:      r.FechaPago,
			Concepto:   "Recibo de pago",
			Referencia: r.NumeroRecibo,
			Monto:      r.MontoTotal,
		})
	}

	movimientos, saldoPeriodo := finance.Conciliar(cargos, abonos, desde, hasta)
	_, saldoTotal := finance.Conciliar(cargos, abonos, nil, nil)

	return &EstadoCuenta{
		Asociado:     asociado,
		Movimientos:  movimientos,
		SaldoPeriodo: saldoPeriodo,
		SaldoTotal:   saldoTotal,
	}, nil
}
