package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/coopertrans/guias-api/internal/domain/entity"
	"github.com/coopertrans/guias-api/internal/domain/enum"
	"github.com/coopertrans/guias-api/internal/domain/finance"
	"github.com/coopertrans/guias-api/internal/domain/repository"
	"github.com/coopertrans/guias-api/pkg/apperror"
	"github.com/coopertrans/guias-api/pkg/pagination"
	"github.com/coopertrans/guias-api/pkg/utils"
)

// GuiaService handles shipping guide operations. Every create or update
// recomputes the guide's financial breakdown from its merchandise and
// the rates in force at that moment.
type GuiaService struct {
	guiaRepo    repository.GuiaRepository
	clienteRepo repository.ClienteRepository
	oficinaRepo repository.OficinaRepository
	empresa     *EmpresaService
	auditoria   *AuditoriaService
}

// NewGuiaService creates a new guide service
func NewGuiaService(
	guiaRepo repository.GuiaRepository,
	clienteRepo repository.ClienteRepository,
	oficinaRepo repository.OficinaRepository,
	empresa *EmpresaService,
	auditoria *AuditoriaService,
) *GuiaService {
	return &GuiaService{
		guiaRepo:    guiaRepo,
		clienteRepo: clienteRepo,
		oficinaRepo: oficinaRepo,
		empresa:     empresa,
		auditoria:   auditoria,
	}
}

// GuiaItemInput represents one merchandise line of the guide input
type GuiaItemInput struct {
	Descripcion string
	Categoria   string
	Cantidad    int
	PesoKg      float64
	LargoCm     float64
	AnchoCm     float64
	AltoCm      float64
}

// CreateGuiaInput represents the create guide input
type CreateGuiaInput struct {
	UserID       uuid.UUID
	FechaEmision time.Time

	ClienteID          *uuid.UUID
	RemitenteNombre    string
	RemitenteDocumento string
	RemitenteTelefono  *string
	DestinatarioNombre string
	DestinatarioDoc    string
	DestinatarioTelf   *string

	OficinaOrigenID  uuid.UUID
	OficinaDestinoID uuid.UUID

	TipoEnvio     enum.TipoEnvio
	CondicionPago enum.CondicionPago
	MetodoPago    string
	Moneda        enum.Moneda

	TieneSeguro         bool
	PorcentajeSeguro    decimal.Decimal
	TieneDescuento      bool
	PorcentajeDescuento decimal.Decimal

	Items []GuiaItemInput
}

// CreateGuia registers a new shipping guide. The guide number comes from
// the database sequence and the financial columns are derived from the
// merchandise and the current company rates.
func (s *GuiaService) CreateGuia(ctx context.Context, input *CreateGuiaInput) (*entity.Guia, error) {
	if err := s.validarItems(input.Items); err != nil {
		return nil, err
	}
	if err := validarPorcentajes(input.TieneSeguro, input.PorcentajeSeguro, input.TieneDescuento, input.PorcentajeDescuento); err != nil {
		return nil, err
	}

	if err := s.verificarOficinas(ctx, input.OficinaOrigenID, input.OficinaDestinoID); err != nil {
		return nil, err
	}

	if input.ClienteID != nil {
		cliente, err := s.clienteRepo.GetByID(ctx, *input.ClienteID)
		if err != nil {
			return nil, err
		}
		if cliente == nil {
			return nil, apperror.NewNotFoundError("Cliente")
		}
	}

	config, err := s.empresa.GetConfig(ctx)
	if err != nil {
		return nil, err
	}

	seq, err := s.guiaRepo.NextNumero(ctx)
	if err != nil {
		return nil, err
	}

	moneda := input.Moneda
	if moneda == "" {
		moneda = enum.MonedaVES
	}

	fecha := input.FechaEmision
	if fecha.IsZero() {
		fecha = time.Now()
	}

	guia := &entity.Guia{
		NumeroGuia:   utils.GenerateGuiaNumero(seq),
		UserID:       input.UserID,
		FechaEmision: fecha,
		Estado:       enum.EstadoGuiaActiva,

		ClienteID:          input.ClienteID,
		RemitenteNombre:    input.RemitenteNombre,
		RemitenteDocumento: input.RemitenteDocumento,
		RemitenteTelefono:  input.RemitenteTelefono,
		DestinatarioNombre: input.DestinatarioNombre,
		DestinatarioDoc:    input.DestinatarioDoc,
		DestinatarioTelf:   input.DestinatarioTelf,

		OficinaOrigenID:  input.OficinaOrigenID,
		OficinaDestinoID: input.OficinaDestinoID,

		TipoEnvio:     input.TipoEnvio,
		CondicionPago: input.CondicionPago,
		MetodoPago:    input.MetodoPago,
		Moneda:        moneda,

		TieneSeguro:         input.TieneSeguro,
		PorcentajeSeguro:    input.PorcentajeSeguro,
		TieneDescuento:      input.TieneDescuento,
		PorcentajeDescuento: input.PorcentajeDescuento,

		Items: construirItems(input.Items),
	}

	aplicarFinancieros(guia, config)

	if err := s.guiaRepo.Create(ctx, guia); err != nil {
		return nil, err
	}

	_ = s.auditoria.Registrar(ctx, "crear", "guia", guia.ID.String(), guia.NumeroGuia)
	return guia, nil
}

// GetGuia retrieves a guide with its merchandise by ID
func (s *GuiaService) GetGuia(ctx context.Context, id uuid.UUID) (*entity.Guia, error) {
	guia, err := s.guiaRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if guia == nil {
		return nil, apperror.NewNotFoundError("Guía")
	}
	return guia, nil
}

// GetGuiaByNumero retrieves a guide by its document number
func (s *GuiaService) GetGuiaByNumero(ctx context.Context, numero string) (*entity.Guia, error) {
	guia, err := s.guiaRepo.GetByNumero(ctx, numero)
	if err != nil {
		return nil, err
	}
	if guia == nil {
		return nil, apperror.NewNotFoundError("Guía")
	}
	return guia, nil
}

// ListGuias lists guides with filtering and page-based pagination
func (s *GuiaService) ListGuias(ctx context.Context, params *repository.GuiaFilterParams) (*pagination.PaginatedResult[entity.Guia], error) {
	guias, total, err := s.guiaRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(guias, pag), nil
}

// ListGuiasWithCursor lists guides with cursor-based pagination
func (s *GuiaService) ListGuiasWithCursor(ctx context.Context, params *repository.GuiaCursorFilterParams) (*pagination.CursorPaginatedResult[entity.Guia], error) {
	guias, err := s.guiaRepo.ListWithCursor(ctx, params)
	if err != nil {
		return nil, err
	}

	hasPrev := params.Cursor.Cursor != ""

	cursorPag, items := pagination.NewCursorPagination(guias, params.Cursor.Limit,
		func(g entity.Guia) string { return g.ID.String() },
		func(g entity.Guia) time.Time { return g.CreatedAt },
	)
	cursorPag.HasPrev = hasPrev

	return pagination.NewCursorPaginatedResult(items, cursorPag), nil
}

// UpdateGuiaInput represents the update guide input
type UpdateGuiaInput struct {
	ID uuid.UUID

	ClienteID          *uuid.UUID
	RemitenteNombre    string
	RemitenteDocumento string
	RemitenteTelefono  *string
	DestinatarioNombre string
	DestinatarioDoc    string
	DestinatarioTelf   *string

	OficinaOrigenID  *uuid.UUID
	OficinaDestinoID *uuid.UUID

	TipoEnvio     *enum.TipoEnvio
	CondicionPago *enum.CondicionPago
	MetodoPago    *string
	Moneda        *enum.Moneda

	TieneSeguro         *bool
	PorcentajeSeguro    *decimal.Decimal
	TieneDescuento      *bool
	PorcentajeDescuento *decimal.Decimal

	// Nil keeps the current merchandise; a non-nil slice replaces it
	Items []GuiaItemInput
}

// UpdateGuia edits an active guide and recomputes its financial
// breakdown with the rates in force now. Annulled guides are frozen.
func (s *GuiaService) UpdateGuia(ctx context.Context, input *UpdateGuiaInput) (*entity.Guia, error) {
	guia, err := s.guiaRepo.GetWithItems(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if guia == nil {
		return nil, apperror.NewNotFoundError("Guía")
	}
	if guia.Estado == enum.EstadoGuiaAnulada {
		return nil, apperror.NewBadRequestError("No se puede modificar una guía anulada")
	}

	if input.ClienteID != nil {
		cliente, err := s.clienteRepo.GetByID(ctx, *input.ClienteID)
		if err != nil {
			return nil, err
		}
		if cliente == nil {
			return nil, apperror.NewNotFoundError("Cliente")
		}
		guia.ClienteID = input.ClienteID
	}

	if input.RemitenteNombre != "" {
		guia.RemitenteNombre = input.RemitenteNombre
	}
	if input.RemitenteDocumento != "" {
		guia.RemitenteDocumento = input.RemitenteDocumento
	}
	if input.RemitenteTelefono != nil {
		guia.RemitenteTelefono = input.RemitenteTelefono
	}
	if input.DestinatarioNombre != "" {
		guia.DestinatarioNombre = input.DestinatarioNombre
	}
	if input.DestinatarioDoc != "" {
		guia.DestinatarioDoc = input.DestinatarioDoc
	}
	if input.DestinatarioTelf != nil {
		guia.DestinatarioTelf = input.DestinatarioTelf
	}

	if input.OficinaOrigenID != nil {
		guia.OficinaOrigenID = *input.OficinaOrigenID
	}
	if input.OficinaDestinoID != nil {
		guia.OficinaDestinoID = *input.OficinaDestinoID
	}
	if input.OficinaOrigenID != nil || input.OficinaDestinoID != nil {
		if err := s.verificarOficinas(ctx, guia.OficinaOrigenID, guia.OficinaDestinoID); err != nil {
			return nil, err
		}
	}

	if input.TipoEnvio != nil {
		guia.TipoEnvio = *input.TipoEnvio
	}
	if input.CondicionPago != nil {
		guia.CondicionPago = *input.CondicionPago
	}
	if input.MetodoPago != nil {
		guia.MetodoPago = *input.MetodoPago
	}
	if input.Moneda != nil {
		guia.Moneda = *input.Moneda
	}

	if input.TieneSeguro != nil {
		guia.TieneSeguro = *input.TieneSeguro
	}
	if input.PorcentajeSeguro != nil {
		guia.PorcentajeSeguro = *input.PorcentajeSeguro
	}
	if input.TieneDescuento != nil {
		guia.TieneDescuento = *input.TieneDescuento
	}
	if input.PorcentajeDescuento != nil {
		guia.PorcentajeDescuento = *input.PorcentajeDescuento
	}
	if err := validarPorcentajes(guia.TieneSeguro, guia.PorcentajeSeguro, guia.TieneDescuento, guia.PorcentajeDescuento); err != nil {
		return nil, err
	}

	if input.Items != nil {
		if err := s.validarItems(input.Items); err != nil {
			return nil, err
		}
		nuevos := construirItems(input.Items)
		if err := s.guiaRepo.ReplaceItems(ctx, guia.ID, nuevos); err != nil {
			return nil, err
		}
		guia.Items = nuevos
	}

	config, err := s.empresa.GetConfig(ctx)
	if err != nil {
		return nil, err
	}
	aplicarFinancieros(guia, config)

	if err := s.guiaRepo.Update(ctx, guia); err != nil {
		return nil, err
	}

	_ = s.auditoria.Registrar(ctx, "actualizar", "guia", guia.ID.String(), guia.NumeroGuia)
	return s.guiaRepo.GetWithItems(ctx, guia.ID)
}

// AnularGuia voids a guide. Guides are fiscal documents, so they are
// never deleted; an annulled guide keeps its number and drops out of
// reports and ledgers.
func (s *GuiaService) AnularGuia(ctx context.Context, id uuid.UUID, motivo string) (*entity.Guia, error) {
	guia, err := s.guiaRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if guia == nil {
		return nil, apperror.NewNotFoundError("Guía")
	}
	if guia.Estado == enum.EstadoGuiaAnulada {
		return nil, apperror.NewBadRequestError("La guía ya está anulada")
	}

	if err := s.guiaRepo.UpdateEstado(ctx, id, enum.EstadoGuiaAnulada); err != nil {
		return nil, err
	}

	detalle := guia.NumeroGuia
	if motivo != "" {
		detalle = fmt.Sprintf("%s: %s", guia.NumeroGuia, motivo)
	}
	_ = s.auditoria.Registrar(ctx, "anular", "guia", id.String(), detalle)

	return s.guiaRepo.GetWithItems(ctx, id)
}

// CotizarInput represents a quotation request: the financial breakdown
// a guide would have, without persisting anything
type CotizarInput struct {
	Moneda              enum.Moneda
	TieneSeguro         bool
	PorcentajeSeguro    decimal.Decimal
	TieneDescuento      bool
	PorcentajeDescuento decimal.Decimal
	Items               []GuiaItemInput
}

// Cotizar computes the financial breakdown for a prospective shipment
func (s *GuiaService) Cotizar(ctx context.Context, input *CotizarInput) (*finance.Financieros, error) {
	if err := s.validarItems(input.Items); err != nil {
		return nil, err
	}
	if err := validarPorcentajes(input.TieneSeguro, input.PorcentajeSeguro, input.TieneDescuento, input.PorcentajeDescuento); err != nil {
		return nil, err
	}

	config, err := s.empresa.GetConfig(ctx)
	if err != nil {
		return nil, err
	}

	moneda := input.Moneda
	if moneda == "" {
		moneda = enum.MonedaVES
	}

	fin := finance.Calcular(finance.Envio{
		Items:               mercancias(construirItems(input.Items)),
		Moneda:              moneda,
		TieneSeguro:         input.TieneSeguro,
		PorcentajeSeguro:    input.PorcentajeSeguro,
		TieneDescuento:      input.TieneDescuento,
		PorcentajeDescuento: input.PorcentajeDescuento,
	}, tarifasDe(config))
	return &fin, nil
}

func (s *GuiaService) verificarOficinas(ctx context.Context, origenID, destinoID uuid.UUID) error {
	if origenID == destinoID {
		return apperror.NewBadRequestError("La oficina de origen y la de destino deben ser distintas")
	}
	for _, id := range []uuid.UUID{origenID, destinoID} {
		oficina, err := s.oficinaRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if oficina == nil {
			return apperror.NewNotFoundError("Oficina")
		}
	}
	return nil
}

// validarItems rejects malformed merchandise. An empty list is valid
// and yields an all-zero breakdown.
func (s *GuiaService) validarItems(items []GuiaItemInput) error {
	for _, item := range items {
		if item.Descripcion == "" {
			return apperror.NewBadRequestError("Cada mercancía debe tener una descripción")
		}
		if item.Cantidad < 1 {
			return apperror.NewBadRequestError("La cantidad de cada mercancía debe ser al menos 1")
		}
		if item.PesoKg < 0 || item.LargoCm < 0 || item.AnchoCm < 0 || item.AltoCm < 0 {
			return apperror.NewBadRequestError("El peso y las dimensiones no pueden ser negativos")
		}
	}
	return nil
}

func validarPorcentajes(tieneSeguro bool, pctSeguro decimal.Decimal, tieneDescuento bool, pctDescuento decimal.Decimal) error {
	cien := decimal.NewFromInt(100)
	if tieneSeguro && (pctSeguro.IsNegative() || pctSeguro.GreaterThan(cien)) {
		return apperror.NewBadRequestError("El porcentaje de seguro debe estar entre 0 y 100")
	}
	if tieneDescuento && (pctDescuento.IsNegative() || pctDescuento.GreaterThan(cien)) {
		return apperror.NewBadRequestError("El porcentaje de descuento debe estar entre 0 y 100")
	}
	return nil
}

func construirItems(items []GuiaItemInput) []entity.GuiaItem {
	result := make([]entity.GuiaItem, 0, len(items))
	for _, item := range items {
		result = append(result, entity.GuiaItem{
			Descripcion: item.Descripcion,
			Categoria:   item.Categoria,
			Cantidad:    item.Cantidad,
			PesoKg:      item.PesoKg,
			LargoCm:     item.LargoCm,
			AnchoCm:     item.AnchoCm,
			AltoCm:      item.AltoCm,
		})
	}
	return result
}

func mercancias(items []entity.GuiaItem) []finance.Mercancia {
	result := make([]finance.Mercancia, 0, len(items))
	for _, item := range items {
		result = append(result, finance.Mercancia{
			Cantidad: item.Cantidad,
			PesoKg:   item.PesoKg,
			LargoCm:  item.LargoCm,
			AnchoCm:  item.AnchoCm,
			AltoCm:   item.AltoCm,
		})
	}
	return result
}

func tarifasDe(config *entity.ConfigEmpresa) finance.Tarifas {
	return finance.Tarifas{
		CostoPorKg:   config.CostoPorKg,
		TarifaManejo: config.TarifaManejo,
		TasaIpostel:  config.TasaIpostel,
		TasaIva:      config.TasaIva,
		TasaIgtf:     config.TasaIgtf,
	}
}

func aplicarFinancieros(guia *entity.Guia, config *entity.ConfigEmpresa) {
	fin := finance.Calcular(finance.Envio{
		Items:               mercancias(guia.Items),
		Moneda:              guia.Moneda,
		TieneSeguro:         guia.TieneSeguro,
		PorcentajeSeguro:    guia.PorcentajeSeguro,
		TieneDescuento:      guia.TieneDescuento,
		PorcentajeDescuento: guia.PorcentajeDescuento,
	}, tarifasDe(config))

	guia.PesoFacturable = fin.PesoFacturable
	guia.ValorDeclarado = fin.ValorDeclarado
	guia.Flete = fin.Flete
	guia.MontoSeguro = fin.Seguro
	guia.Manejo = fin.Manejo
	guia.Descuento = fin.Descuento
	guia.Subtotal = fin.Subtotal
	guia.Ipostel = fin.Ipostel
	guia.Iva = fin.Iva
	guia.Igtf = fin.Igtf
	guia.Total = fin.Total
}
