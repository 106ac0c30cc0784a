package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/coopertrans/guias-api/internal/domain/entity"
	"github.com/coopertrans/guias-api/internal/domain/repository"
	"github.com/coopertrans/guias-api/pkg/apperror"
	"github.com/coopertrans/guias-api/pkg/pagination"
)

// InventarioService handles supply inventory and fixed asset operations
type InventarioService struct {
	inventarioRepo repository.InventarioRepository
	activoRepo     repository.ActivoRepository
	auditoria      *AuditoriaService
}

// NewInventarioService creates a new inventory service
func NewInventarioService(
	inventarioRepo repository.InventarioRepository,
	activoRepo repository.ActivoRepository,
	auditoria *AuditoriaService,
) *InventarioService {
	return &InventarioService{
		inventarioRepo: inventarioRepo,
		activoRepo:     activoRepo,
		auditoria:      auditoria,
	}
}

// CreateItemInput represents the create inventory item input
type CreateItemInput struct {
	Codigo        string
	Nombre        string
	Descripcion   *string
	Cantidad      int
	CostoUnitario decimal.Decimal
	OficinaID     *uuid.UUID
}

// CreateItem registers a new inventory item
func (s *InventarioService) CreateItem(ctx context.Context, input *CreateItemInput) (*entity.InventarioItem, error) {
	existing, err := s.inventarioRepo.GetByCodigo(ctx, input.Codigo)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Ya existe un artículo con ese código")
	}

	if input.Cantidad < 0 {
		return nil, apperror.NewBadRequestError("La cantidad inicial no puede ser negativa")
	}

	item := &entity.InventarioItem{
		Codigo:        input.Codigo,
		Nombre:        input.Nombre,
		Descripcion:   input.Descripcion,
		Cantidad:      input.Cantidad,
		CostoUnitario: input.CostoUnitario,
		OficinaID:     input.OficinaID,
	}

	if err := s.inventarioRepo.Create(ctx, item); err != nil {
		return nil, err
	}

	_ = s.auditoria.Registrar(ctx, "crear", "inventario", item.ID.String(), item.Nombre)
	return item, nil
}

// GetItem retrieves an inventory item by ID
func (s *InventarioService) GetItem(ctx context.Context, id uuid.UUID) (*entity.InventarioItem, error) {
	item, err := s.inventarioRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Artículo")
	}
	return item, nil
}

// ListItems lists inventory items with pagination and search
func (s *InventarioService) ListItems(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.InventarioItem], error) {
	items, total, err := s.inventarioRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(items, pag), nil
}

// UpdateItemInput represents the update inventory item input
type UpdateItemInput struct {
	ID            uuid.UUID
	Nombre        string
	Descripcion   *string
	CostoUnitario *decimal.Decimal
	OficinaID     *uuid.UUID
}

// UpdateItem updates an inventory item's master data. Stock moves only
// through AjustarStock.
func (s *InventarioService) UpdateItem(ctx context.Context, input *UpdateItemInput) (*entity.InventarioItem, error) {
	item, err := s.inventarioRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Artículo")
	}

	if input.Nombre != "" {
		item.Nombre = input.Nombre
	}
	if input.Descripcion != nil {
		item.Descripcion = input.Descripcion
	}
	if input.CostoUnitario != nil {
		item.CostoUnitario = *input.CostoUnitario
	}
	if input.OficinaID != nil {
		item.OficinaID = input.OficinaID
	}

	if err := s.inventarioRepo.Update(ctx, item); err != nil {
		return nil, err
	}

	_ = s.auditoria.Registrar(ctx, "actualizar", "inventario", item.ID.String(), item.Nombre)
	return item, nil
}

// AjustarStock applies a signed stock adjustment to an item. The stock
// can never go below zero.
func (s *InventarioService) AjustarStock(ctx context.Context, id uuid.UUID, delta int, motivo string) (*entity.InventarioItem, error) {
	if delta == 0 {
		return nil, apperror.NewBadRequestError("El ajuste debe ser distinto de cero")
	}

	item, err := s.inventarioRepo.AjustarCantidad(ctx, id, delta)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NewNotFoundError("Artículo")
		}
		if errors.Is(err, gorm.ErrInvalidData) {
			return nil, apperror.NewBadRequestError("El ajuste dejaría la existencia en negativo")
		}
		return nil, err
	}

	detalle := fmt.Sprintf("%s: %+d", item.Nombre, delta)
	if motivo != "" {
		detalle = fmt.Sprintf("%s (%s)", detalle, motivo)
	}
	_ = s.auditoria.Registrar(ctx, "ajustar-stock", "inventario", id.String(), detalle)
	return item, nil
}

// DeleteItem soft deletes an inventory item
func (s *InventarioService) DeleteItem(ctx context.Context, id uuid.UUID) error {
	item, err := s.inventarioRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if item == nil {
		return apperror.NewNotFoundError("Artículo")
	}

	if err := s.inventarioRepo.Delete(ctx, id); err != nil {
		return err
	}

	_ = s.auditoria.Registrar(ctx, "eliminar", "inventario", id.String(), item.Nombre)
	return nil
}

// CreateActivoInput represents the create fixed asset input
type CreateActivoInput struct {
	Codigo           string
	Nombre           string
	Descripcion      *string
	FechaAdquisicion *time.Time
	ValorAdquisicion decimal.Decimal
	VidaUtilMeses    int
	OficinaID        *uuid.UUID
}

// CreateActivo registers a new fixed asset
func (s *InventarioService) CreateActivo(ctx context.Context, input *CreateActivoInput) (*entity.ActivoFijo, error) {
	existing, err := s.activoRepo.GetByCodigo(ctx, input.Codigo)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Ya existe un activo con ese código")
	}

	activo := &entity.ActivoFijo{
		Codigo:           input.Codigo,
		Nombre:           input.Nombre,
		Descripcion:      input.Descripcion,
		FechaAdquisicion: input.FechaAdquisicion,
		ValorAdquisicion: input.ValorAdquisicion,
		VidaUtilMeses:    input.VidaUtilMeses,
		Estado:           "operativo",
		OficinaID:        input.OficinaID,
	}

	if err := s.activoRepo.Create(ctx, activo); err != nil {
		return nil, err
	}

	_ = s.auditoria.Registrar(ctx, "crear", "activo", activo.ID.String(), activo.Nombre)
	return activo, nil
}

// GetActivo retrieves a fixed asset by ID
func (s *InventarioService) GetActivo(ctx context.Context, id uuid.UUID) (*entity.ActivoFijo, error) {
	activo, err := s.activoRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if activo == nil {
		return nil, apperror.NewNotFoundError("Activo")
	}
	return activo, nil
}

// ListActivos lists fixed assets with pagination and search
func (s *InventarioService) ListActivos(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.ActivoFijo], error) {
	activos, total, err := s.activoRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(activos, pag), nil
}

// UpdateActivoInput represents the update fixed asset input
type UpdateActivoInput struct {
	ID               uuid.UUID
	Nombre           string
	Descripcion      *string
	FechaAdquisicion *time.Time
	ValorAdquisicion *decimal.Decimal
	VidaUtilMeses    *int
	Estado           string
	OficinaID        *uuid.UUID
}

// UpdateActivo updates a fixed asset
func (s *InventarioService) UpdateActivo(ctx context.Context, input *UpdateActivoInput) (*entity.ActivoFijo, error) {
	activo, err := s.activoRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if activo == nil {
		return nil, apperror.NewNotFoundError("Activo")
	}

	if input.Nombre != "" {
		activo.Nombre = input.Nombre
	}
	if input.Descripcion != nil {
		activo.Descripcion = input.Descripcion
	}
	if input.FechaAdquisicion != nil {
		activo.FechaAdquisicion = input.FechaAdquisicion
	}
	if input.ValorAdquisicion != nil {
		activo.ValorAdquisicion = *input.ValorAdquisicion
	}
	if input.VidaUtilMeses != nil {
		activo.VidaUtilMeses = *input.VidaUtilMeses
	}
	if input.Estado != "" {
		activo.Estado = input.Estado
	}
	if input.OficinaID != nil {
		activo.OficinaID = input.OficinaID
	}

	if err := s.activoRepo.Update(ctx, activo); err != nil {
		return nil, err
	}

	_ = s.auditoria.Registrar(ctx, "actualizar", "activo", activo.ID.String(), activo.Nombre)
	return activo, nil
}

// DeleteActivo soft deletes a fixed asset
func (s *InventarioService) DeleteActivo(ctx context.Context, id uuid.UUID) error {
	activo, err := s.activoRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if activo == nil {
		return apperror.NewNotFoundError("Activo")
	}

	if err := s.activoRepo.Delete(ctx, id); err != nil {
		return err
	}

	_ = s.auditoria.Registrar(ctx, "eliminar", "activo", id.String(), activo.Nombre)
	return nil
}
