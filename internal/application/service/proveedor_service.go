package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/coopertrans/guias-api/internal/domain/entity"
	"github.com/coopertrans/guias-api/internal/domain/repository"
	"github.com/coopertrans/guias-api/pkg/apperror"
	"github.com/coopertrans/guias-api/pkg/pagination"
)

// ProveedorService handles supplier and supplier invoice operations
type ProveedorService struct {
	proveedorRepo repository.ProveedorRepository
	compraRepo    repository.CompraRepository
	auditoria     *AuditoriaService
}

// NewProveedorService creates a new supplier service
func NewProveedorService(
	proveedorRepo repository.ProveedorRepository,
	compraRepo repository.CompraRepository,
	auditoria *AuditoriaService,
) *ProveedorService {
	return &ProveedorService{
		proveedorRepo: proveedorRepo,
		compraRepo:    compraRepo,
		auditoria:     auditoria,
	}
}

// CreateProveedorInput represents the create supplier input
type CreateProveedorInput struct {
	Rif       string
	Nombre    string
	Telefono  *string
	Email     *string
	Direccion *string
}

// CreateProveedor registers a new supplier
func (s *ProveedorService) CreateProveedor(ctx context.Context, input *CreateProveedorInput) (*entity.Proveedor, error) {
	existing, err := s.proveedorRepo.GetByRif(ctx, input.Rif)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Ya existe un proveedor con ese RIF")
	}

	proveedor := &entity.Proveedor{
		Rif:       input.Rif,
		Nombre:    input.Nombre,
		Telefono:  input.Telefono,
		Email:     input.Email,
		Direccion: input.Direccion,
	}

	if err := s.proveedorRepo.Create(ctx, proveedor); err != nil {
		return nil, err
	}

	_ = s.auditoria.Registrar(ctx, "crear", "proveedor", proveedor.ID.String(), proveedor.Nombre)
	return proveedor, nil
}

// GetProveedor retrieves a supplier by ID
func (s *ProveedorService) GetProveedor(ctx context.Context, id uuid.UUID) (*entity.Proveedor, error) {
	proveedor, err := s.proveedorRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if proveedor == nil {
		return nil, apperror.NewNotFoundError("Proveedor")
	}
	return proveedor, nil
}

// ListProveedores lists suppliers with pagination and search
func (s *ProveedorService) ListProveedores(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Proveedor], error) {
	proveedores, total, err := s.proveedorRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(proveedores, pag), nil
}

// UpdateProveedorInput represents the update supplier input
type UpdateProveedorInput struct {
	ID        uuid.UUID
	Nombre    string
	Telefono  *string
	Email     *string
	Direccion *string
}

// UpdateProveedor updates a supplier's contact data
func (s *ProveedorService) UpdateProveedor(ctx context.Context, input *UpdateProveedorInput) (*entity.Proveedor, error) {
	proveedor, err := s.proveedorRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if proveedor == nil {
		return nil, apperror.NewNotFoundError("Proveedor")
	}

	if input.Nombre != "" {
		proveedor.Nombre = input.Nombre
	}
	if input.Telefono != nil {
		proveedor.Telefono = input.Telefono
	}
	if input.Email != nil {
		proveedor.Email = input.Email
	}
	if input.Direccion != nil {
		proveedor.Direccion = input.Direccion
	}

	if err := s.proveedorRepo.Update(ctx, proveedor); err != nil {
		return nil, err
	}

	_ = s.auditoria.Registrar(ctx, "actualizar", "proveedor", proveedor.ID.String(), proveedor.Nombre)
	return proveedor, nil
}

// DeleteProveedor soft deletes a supplier
func (s *ProveedorService) DeleteProveedor(ctx context.Context, id uuid.UUID) error {
	proveedor, err := s.proveedorRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if proveedor == nil {
		return apperror.NewNotFoundError("Proveedor")
	}

	if err := s.proveedorRepo.Delete(ctx, id); err != nil {
		return err
	}

	_ = s.auditoria.Registrar(ctx, "eliminar", "proveedor", id.String(), proveedor.Nombre)
	return nil
}

// CreateCompraInput represents the register supplier invoice input
type CreateCompraInput struct {
	ProveedorID   uuid.UUID
	NumeroFactura string
	NumeroControl string
	Fecha         time.Time
	BaseImponible decimal.Decimal
	MontoExento   decimal.Decimal
	MontoIva      decimal.Decimal
	RetencionIva  decimal.Decimal
	Descripcion   *string
}

// CreateCompra registers a supplier invoice for the purchases ledger
func (s *ProveedorService) CreateCompra(ctx context.Context, input *CreateCompraInput) (*entity.CompraProveedor, error) {
	proveedor, err := s.proveedorRepo.GetByID(ctx, input.ProveedorID)
	if err != nil {
		return nil, err
	}
	if proveedor == nil {
		return nil, apperror.NewNotFoundError("Proveedor")
	}

	if input.BaseImponible.IsNegative() || input.MontoExento.IsNegative() ||
		input.MontoIva.IsNegative() || input.RetencionIva.IsNegative() {
		return nil, apperror.NewBadRequestError("Los montos de la factura no pueden ser negativos")
	}

	compra := &entity.CompraProveedor{
		ProveedorID:   input.ProveedorID,
		NumeroFactura: input.NumeroFactura,
		NumeroControl: input.NumeroControl,
		Fecha:         input.Fecha,
		BaseImponible: input.BaseImponible,
		MontoExento:   input.MontoExento,
		MontoIva:      input.MontoIva,
		RetencionIva:  input.RetencionIva,
		Total:         input.BaseImponible.Add(input.MontoExento).Add(input.MontoIva),
		Descripcion:   input.Descripcion,
	}

	if err := s.compraRepo.Create(ctx, compra); err != nil {
		return nil, err
	}

	_ = s.auditoria.Registrar(ctx, "crear", "compra", compra.ID.String(), compra.NumeroFactura)
	return compra, nil
}

// GetCompra retrieves a supplier invoice by ID
func (s *ProveedorService) GetCompra(ctx context.Context, id uuid.UUID) (*entity.CompraProveedor, error) {
	compra, err := s.compraRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if compra == nil {
		return nil, apperror.NewNotFoundError("Compra")
	}
	return compra, nil
}

// ListCompras lists supplier invoices with filtering
func (s *ProveedorService) ListCompras(ctx context.Context, params *repository.CompraFilterParams) (*pagination.PaginatedResult[entity.CompraProveedor], error) {
	compras, total, err := s.compraRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(compras, pag), nil
}

// DeleteCompra removes a supplier invoice
func (s *ProveedorService) DeleteCompra(ctx context.Context, id uuid.UUID) error {
	compra, err := s.compraRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if compra == nil {
		return apperror.NewNotFoundError("Compra")
	}

	if err := s.compraRepo.Delete(ctx, id); err != nil {
		return err
	}

	_ = s.auditoria.Registrar(ctx, "eliminar", "compra", id.String(), compra.NumeroFactura)
	return nil
}
