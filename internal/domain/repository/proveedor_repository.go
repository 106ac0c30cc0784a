package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/coopertrans/guias-api/internal/domain/entity"
	"github.com/coopertrans/guias-api/pkg/pagination"
)

// ProveedorRepository defines the interface for supplier data operations
type ProveedorRepository interface {
	Create(ctx context.Context, proveedor *entity.Proveedor) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Proveedor, error)
	GetByRif(ctx context.Context, rif string) (*entity.Proveedor, error)
	Update(ctx context.Context, proveedor *entity.Proveedor) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Proveedor, int64, error)
}

// CompraFilterParams contains filtering parameters for purchase invoice queries
type CompraFilterParams struct {
	Pagination  *pagination.PaginationParams
	ProveedorID *uuid.UUID
	Desde       *time.Time
	Hasta       *time.Time
}

// CompraRepository defines the interface for supplier invoice data operations
type CompraRepository interface {
	Create(ctx context.Context, compra *entity.CompraProveedor) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.CompraProveedor, error)
	Update(ctx context.Context, compra *entity.CompraProveedor) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *CompraFilterParams) ([]entity.CompraProveedor, int64, error)
	// ListByPeriodo returns every invoice dated inside [desde, hasta],
	// ordered by date, for the purchases ledger export.
	ListByPeriodo(ctx context.Context, desde, hasta time.Time) ([]entity.CompraProveedor, error)
}
