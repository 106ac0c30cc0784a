package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/coopertrans/guias-api/internal/domain/entity"
	"github.com/coopertrans/guias-api/internal/domain/repository"
	"github.com/coopertrans/guias-api/pkg/apperror"
	"github.com/coopertrans/guias-api/pkg/pagination"
	"github.com/coopertrans/guias-api/pkg/utils"
)

// ReciboService handles payment receipt operations. A receipt settles a
// set of pending debts of one member and is immutable once registered.
type ReciboService struct {
	reciboRepo   repository.ReciboRepository
	deudaRepo    repository.DeudaRepository
	asociadoRepo repository.AsociadoRepository
	empresa      *EmpresaService
	auditoria    *AuditoriaService
}

// NewReciboService creates a new receipt service
func NewReciboService(
	reciboRepo repository.ReciboRepository,
	deudaRepo repository.DeudaRepository,
	asociadoRepo repository.AsociadoRepository,
	empresa *EmpresaService,
	auditoria *AuditoriaService,
) *ReciboService {
	return &ReciboService{
		reciboRepo:   reciboRepo,
		deudaRepo:    deudaRepo,
		asociadoRepo: asociadoRepo,
		empresa:      empresa,
		auditoria:    auditoria,
	}
}

// ReciboDetalleInput represents one payment method row of the receipt input
type ReciboDetalleInput struct {
	Metodo     string
	Banco      *string
	Referencia *string
	Monto      decimal.Decimal
}

// CreateReciboInput represents the register receipt input
type CreateReciboInput struct {
	AsociadoID  uuid.UUID
	UserID      uuid.UUID
	FechaPago   time.Time
	DeudaIDs    []uuid.UUID
	Detalles    []ReciboDetalleInput
	Observacion *string
}

// CreateRecibo registers a payment receipt. The selected debts must all
// belong to the member and be pending, and the detail rows must add up
// to exactly the sum of the selected debts; any mismatch rejects the
// whole receipt before anything is written.
func (s *ReciboService) CreateRecibo(ctx context.Context, input *CreateReciboInput) (*entity.Recibo, error) {
	asociado, err := s.asociadoRepo.GetByID(ctx, input.AsociadoID)
	if err != nil {
		return nil, err
	}
	if asociado == nil {
		return nil, apperror.NewNotFoundError("Asociado")
	}

	if len(input.DeudaIDs) == 0 {
		return nil, apperror.NewBadRequestError("El recibo debe saldar al menos una deuda")
	}
	if len(input.Detalles) == 0 {
		return nil, apperror.NewBadRequestError("El recibo debe tener al menos una forma de pago")
	}

	deudas, err := s.deudaRepo.GetByIDs(ctx, input.DeudaIDs)
	if err != nil {
		return nil, err
	}
	if len(deudas) != len(input.DeudaIDs) {
		return nil, apperror.NewNotFoundError("Deuda")
	}

	totalDeudas := decimal.Zero
	for _, deuda := range deudas {
		if deuda.AsociadoID != input.AsociadoID {
			return nil, apperror.NewBadRequestError("Todas las deudas deben pertenecer al mismo asociado")
		}
		if deuda.EstaPagada() {
			return nil, apperror.NewConflictError(
				fmt.Sprintf("La deuda %q ya está pagada", deuda.Concepto))
		}
		totalDeudas = totalDeudas.Add(deuda.MontoBs)
	}

	totalPagado := decimal.Zero
	for _, detalle := range input.Detalles {
		if detalle.Monto.LessThanOrEqual(decimal.Zero) {
			return nil, apperror.NewBadRequestError("Cada forma de pago debe tener un monto mayor que cero")
		}
		totalPagado = totalPagado.Add(detalle.Monto)
	}

	if !totalPagado.Equal(totalDeudas) {
		return nil, apperror.NewValidationError([]apperror.FieldError{{
			Field: "detalles",
			Message: fmt.Sprintf("El monto pagado (%s) no coincide con el total de las deudas seleccionadas (%s)",
				totalPagado.StringFixed(2), totalDeudas.StringFixed(2)),
		}})
	}

	config, err := s.empresa.GetConfig(ctx)
	if err != nil {
		return nil, err
	}

	seq, err := s.reciboRepo.NextNumero(ctx)
	if err != nil {
		return nil, err
	}

	fecha := input.FechaPago
	if fecha.IsZero() {
		fecha = time.Now()
	}

	detalles := make([]entity.ReciboDetalle, 0, len(input.Detalles))
	for _, d := range input.Detalles {
		detalles = append(detalles, entity.ReciboDetalle{
			Metodo:     d.Metodo,
			Banco:      d.Banco,
			Referencia: d.Referencia,
			Monto:      d.Monto,
		})
	}

	recibo := &entity.Recibo{
		NumeroRecibo: utils.GenerateReciboNumero(seq),
		AsociadoID:   input.AsociadoID,
		UserID:       input.UserID,
		FechaPago:    fecha,
		MontoTotal:   totalPagado,
		TasaCambio:   config.TasaBCV,
		Observacion:  input.Observacion,
		Detalles:     detalles,
	}

	if err := s.reciboRepo.Create(ctx, recibo); err != nil {
		return nil, err
	}

	if err := s.deudaRepo.MarcarPagadas(ctx, input.DeudaIDs, recibo.ID); err != nil {
		// A receipt that settled nothing must not survive
		_ = s.reciboRepo.Delete(ctx, recibo.ID)
		return nil, err
	}

	_ = s.auditoria.Registrar(ctx, "crear", "recibo", recibo.ID.String(),
		fmt.Sprintf("%s: %s por %s Bs", recibo.NumeroRecibo, asociado.Nombre, totalPagado.StringFixed(2)))

	return s.reciboRepo.GetWithDetalles(ctx, recibo.ID)
}

// GetRecibo retrieves a receipt with its payment rows and settled debts
func (s *ReciboService) GetRecibo(ctx context.Context, id uuid.UUID) (*entity.Recibo, error) {
	recibo, err := s.reciboRepo.GetWithDetalles(ctx, id)
	if err != nil {
		return nil, err
	}
	if recibo == nil {
		return nil, apperror.NewNotFoundError("Recibo")
	}
	return recibo, nil
}

// GetReciboByNumero retrieves a receipt by its document number
func (s *ReciboService) GetReciboByNumero(ctx context.Context, numero string) (*entity.Recibo, error) {
	recibo, err := s.reciboRepo.GetByNumero(ctx, numero)
	if err != nil {
		return nil, err
	}
	if recibo == nil {
		return nil, apperror.NewNotFoundError("Recibo")
	}
	return recibo, nil
}

// ListRecibos lists receipts with filtering and pagination
func (s *ReciboService) ListRecibos(ctx context.Context, params *repository.ReciboFilterParams) (*pagination.PaginatedResult[entity.Recibo], error) {
	recibos, total, err := s.reciboRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(recibos, pag), nil
}
