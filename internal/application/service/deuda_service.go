package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/coopertrans/guias-api/internal/domain/entity"
	"github.com/coopertrans/guias-api/internal/domain/enum"
	"github.com/coopertrans/guias-api/internal/domain/repository"
	"github.com/coopertrans/guias-api/pkg/apperror"
	"github.com/coopertrans/guias-api/pkg/pagination"
)

// DeudaService handles member debt operations: manual lines, mass
// generation and production-based generation
type DeudaService struct {
	deudaRepo    repository.DeudaRepository
	asociadoRepo repository.AsociadoRepository
	guiaRepo     repository.GuiaRepository
	empresa      *EmpresaService
	auditoria    *AuditoriaService
}

// NewDeudaService creates a new debt service
func NewDeudaService(
	deudaRepo repository.DeudaRepository,
	asociadoRepo repository.AsociadoRepository,
	guiaRepo repository.GuiaRepository,
	empresa *EmpresaService,
	auditoria *AuditoriaService,
) *DeudaService {
	return &DeudaService{
		deudaRepo:    deudaRepo,
		asociadoRepo: asociadoRepo,
		guiaRepo:     guiaRepo,
		empresa:      empresa,
		auditoria:    auditoria,
	}
}

// CreateDeudaInput represents the manual debt input
type CreateDeudaInput struct {
	AsociadoID       uuid.UUID
	Concepto         string
	MontoBs          decimal.Decimal
	MontoUSD         *decimal.Decimal
	FechaVencimiento time.Time
}

// CreateDeuda registers a manual debt line for one member
func (s *DeudaService) CreateDeuda(ctx context.Context, input *CreateDeudaInput) (*entity.Deuda, error) {
	asociado, err := s.asociadoRepo.GetByID(ctx, input.AsociadoID)
	if err != nil {
		return nil, err
	}
	if asociado == nil {
		return nil, apperror.NewNotFoundError("Asociado")
	}

	if input.MontoBs.LessThanOrEqual(decimal.Zero) {
		return nil, apperror.NewBadRequestError("El monto de la deuda debe ser mayor que cero")
	}

	deuda := &entity.Deuda{
		AsociadoID:       input.AsociadoID,
		Concepto:         input.Concepto,
		MontoBs:          input.MontoBs,
		MontoUSD:         input.MontoUSD,
		FechaVencimiento: input.FechaVencimiento,
		Estado:           enum.EstadoDeudaPendiente,
		Origen:           enum.OrigenDeudaManual,
	}

	if err := s.deudaRepo.Create(ctx, deuda); err != nil {
		return nil, err
	}

	_ = s.auditoria.Registrar(ctx, "crear", "deuda", deuda.ID.String(),
		fmt.Sprintf("%s: %s", asociado.Nombre, deuda.Concepto))
	return deuda, nil
}

// GetDeuda retrieves a debt by ID
func (s *DeudaService) GetDeuda(ctx context.Context, id uuid.UUID) (*entity.Deuda, error) {
	deuda, err := s.deudaRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if deuda == nil {
		return nil, apperror.NewNotFoundError("Deuda")
	}
	return deuda, nil
}

// ListDeudas lists debts with filtering and pagination
func (s *DeudaService) ListDeudas(ctx context.Context, params *repository.DeudaFilterParams) (*pagination.PaginatedResult[entity.Deuda], error) {
	deudas, total, err := s.deudaRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(deudas, pag), nil
}

// UpdateDeudaInput represents the update debt input
type UpdateDeudaInput struct {
	ID               uuid.UUID
	Concepto         string
	MontoBs          *decimal.Decimal
	MontoUSD         *decimal.Decimal
	FechaVencimiento *time.Time
}

// UpdateDeuda edits a pending debt. Paid debts are frozen: their amounts
// back a receipt.
func (s *DeudaService) UpdateDeuda(ctx context.Context, input *UpdateDeudaInput) (*entity.Deuda, error) {
	deuda, err := s.deudaRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if deuda == nil {
		return nil, apperror.NewNotFoundError("Deuda")
	}
	if deuda.EstaPagada() {
		return nil, apperror.NewBadRequestError("No se puede modificar una deuda pagada")
	}

	if input.Concepto != "" {
		deuda.Concepto = input.Concepto
	}
	if input.MontoBs != nil {
		if input.MontoBs.LessThanOrEqual(decimal.Zero) {
			return nil, apperror.NewBadRequestError("El monto de la deuda debe ser mayor que cero")
		}
		deuda.MontoBs = *input.MontoBs
	}
	if input.MontoUSD != nil {
		deuda.MontoUSD = input.MontoUSD
	}
	if input.FechaVencimiento != nil {
		deuda.FechaVencimiento = *input.FechaVencimiento
	}

	if err := s.deudaRepo.Update(ctx, deuda); err != nil {
		return nil, err
	}

	_ = s.auditoria.Registrar(ctx, "actualizar", "deuda", deuda.ID.String(), deuda.Concepto)
	return deuda, nil
}

// DeleteDeuda removes a pending debt. A debt referenced by a receipt is
// part of the payment history and cannot be deleted.
func (s *DeudaService) DeleteDeuda(ctx context.Context, id uuid.UUID) error {
	deuda, err := s.deudaRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if deuda == nil {
		return apperror.NewNotFoundError("Deuda")
	}
	if deuda.EstaPagada() || deuda.ReciboID != nil {
		return apperror.NewConflictError("No se puede eliminar una deuda asociada a un recibo de pago")
	}

	if err := s.deudaRepo.Delete(ctx, id); err != nil {
		return err
	}

	_ = s.auditoria.Registrar(ctx, "eliminar", "deuda", id.String(), deuda.Concepto)
	return nil
}

// GenerarMasivaInput represents the mass debt generation input
type GenerarMasivaInput struct {
	Concepto         string
	MontoBs          decimal.Decimal
	FechaVencimiento time.Time
	SoloActivos      bool
}

// GenerarMasiva charges the same debt to every member, or to every
// active member, in one batch
func (s *DeudaService) GenerarMasiva(ctx context.Context, input *GenerarMasivaInput) ([]entity.Deuda, error) {
	if input.MontoBs.LessThanOrEqual(decimal.Zero) {
		return nil, apperror.NewBadRequestError("El monto de la deuda debe ser mayor que cero")
	}

	var asociados []entity.Asociado
	var err error
	if input.SoloActivos {
		asociados, err = s.asociadoRepo.ListActivos(ctx)
	} else {
		asociados, err = s.asociadoRepo.ListTodos(ctx)
	}
	if err != nil {
		return nil, err
	}
	if len(asociados) == 0 {
		return nil, apperror.NewBadRequestError("No hay asociados para generar la deuda")
	}

	deudas := make([]entity.Deuda, 0, len(asociados))
	for _, asociado := range asociados {
		deudas = append(deudas, entity.Deuda{
			AsociadoID:       asociado.ID,
			Concepto:         input.Concepto,
			MontoBs:          input.MontoBs,
			FechaVencimiento: input.FechaVencimiento,
			Estado:           enum.EstadoDeudaPendiente,
			Origen:           enum.OrigenDeudaMasiva,
		})
	}

	if err := s.deudaRepo.CreateBatch(ctx, deudas); err != nil {
		return nil, err
	}

	_ = s.auditoria.Registrar(ctx, "generar-masiva", "deuda", "",
		fmt.Sprintf("%s: %d asociados", input.Concepto, len(deudas)))
	return deudas, nil
}

// GenerarProduccionInput represents the production-based debt input.
// Pasajero charges each active member the configured passenger fee
// converted at the BCV rate; carga charges a percentage of each member's
// guide invoicing in the period.
type GenerarProduccionInput struct {
	Tipo             enum.TipoProduccion
	Concepto         string
	FechaVencimiento time.Time
	Desde            time.Time
	Hasta            time.Time
}

// GenerarProduccion generates production debts for every active member
func (s *DeudaService) GenerarProduccion(ctx context.Context, input *GenerarProduccionInput) ([]entity.Deuda, error) {
	asociados, err := s.asociadoRepo.ListActivos(ctx)
	if err != nil {
		return nil, err
	}
	if len(asociados) == 0 {
		return nil, apperror.NewBadRequestError("No hay asociados activos para generar la deuda")
	}

	config, err := s.empresa.GetConfig(ctx)
	if err != nil {
		return nil, err
	}

	var deudas []entity.Deuda
	switch input.Tipo {
	case enum.TipoProduccionPasajero:
		deudas, err = s.produccionPasajero(asociados, config, input)
	case enum.TipoProduccionCarga:
		deudas, err = s.produccionCarga(ctx, asociados, config, input)
	default:
		return nil, apperror.NewBadRequestError("Tipo de producción inválido")
	}
	if err != nil {
		return nil, err
	}
	if len(deudas) == 0 {
		return nil, apperror.NewBadRequestError("Ningún asociado tiene producción en el período")
	}

	if err := s.deudaRepo.CreateBatch(ctx, deudas); err != nil {
		return nil, err
	}

	_ = s.auditoria.Registrar(ctx, "generar-produccion", "deuda", "",
		fmt.Sprintf("%s (%s): %d deudas", input.Concepto, input.Tipo, len(deudas)))
	return deudas, nil
}

func (s *DeudaService) produccionPasajero(asociados []entity.Asociado, config *entity.ConfigEmpresa, input *GenerarProduccionInput) ([]entity.Deuda, error) {
	if config.TarifaPasajeroUSD.LessThanOrEqual(decimal.Zero) {
		return nil, apperror.NewBadRequestError("La tarifa de pasajero no está configurada")
	}

	montoUSD := config.TarifaPasajeroUSD
	montoBs := montoUSD.Mul(config.TasaBCV)

	deudas := make([]entity.Deuda, 0, len(asociados))
	for _, asociado := range asociados {
		usd := montoUSD
		deudas = append(deudas, entity.Deuda{
			AsociadoID:       asociado.ID,
			Concepto:         input.Concepto,
			MontoBs:          montoBs,
			MontoUSD:         &usd,
			FechaVencimiento: input.FechaVencimiento,
			Estado:           enum.EstadoDeudaPendiente,
			Origen:           enum.OrigenDeudaProduccion,
		})
	}
	return deudas, nil
}

func (s *DeudaService) produccionCarga(ctx context.Context, asociados []entity.Asociado, config *entity.ConfigEmpresa, input *GenerarProduccionInput) ([]entity.Deuda, error) {
	if config.PorcentajeProduccion.LessThanOrEqual(decimal.Zero) {
		return nil, apperror.NewBadRequestError("El porcentaje de producción no está configurado")
	}
	if input.Hasta.Before(input.Desde) {
		return nil, apperror.NewBadRequestError("El período de producción es inválido")
	}

	guias, err := s.guiaRepo.ListByPeriodo(ctx, input.Desde, input.Hasta)
	if err != nil {
		return nil, err
	}

	// Invoicing in the period keyed by the sender document
	facturado := make(map[string]decimal.Decimal)
	for _, guia := range guias {
		facturado[guia.RemitenteDocumento] = facturado[guia.RemitenteDocumento].Add(guia.Total)
	}

	pct := config.PorcentajeProduccion.Div(decimal.NewFromInt(100))

	var deudas []entity.Deuda
	for _, asociado := range asociados {
		total, ok := facturado[asociado.Cedula]
		if !ok || total.LessThanOrEqual(decimal.Zero) {
			continue
		}
		deudas = append(deudas, entity.Deuda{
			AsociadoID:       asociado.ID,
			Concepto:         input.Concepto,
			MontoBs:          total.Mul(pct),
			FechaVencimiento: input.FechaVencimiento,
			Estado:           enum.EstadoDeudaPendiente,
			Origen:           enum.OrigenDeudaProduccion,
		})
	}
	return deudas, nil
}
