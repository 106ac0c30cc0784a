package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/coopertrans/guias-api/internal/domain/entity"
	"github.com/coopertrans/guias-api/pkg/pagination"
)

// InventarioRepository defines the interface for inventory item data operations
type InventarioRepository interface {
	Create(ctx context.Context, item *entity.InventarioItem) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.InventarioItem, error)
	GetByCodigo(ctx context.Context, codigo string) (*entity.InventarioItem, error)
	Update(ctx context.Context, item *entity.InventarioItem) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.InventarioItem, int64, error)
	// AjustarCantidad applies a signed stock adjustment and returns the
	// updated row
	AjustarCantidad(ctx context.Context, id uuid.UUID, delta int) (*entity.InventarioItem, error)
}

// ActivoRepository defines the interface for fixed asset data operations
type ActivoRepository interface {
	Create(ctx context.Context, activo *entity.ActivoFijo) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.ActivoFijo, error)
	GetByCodigo(ctx context.Context, codigo string) (*entity.ActivoFijo, error)
	Update(ctx context.Context, activo *entity.ActivoFijo) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.ActivoFijo, int64, error)
}
