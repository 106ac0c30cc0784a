package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/coopertrans/guias-api/internal/domain/entity"
)

// CuentaRepository defines the interface for chart-of-accounts data operations
type CuentaRepository interface {
	Create(ctx context.Context, cuenta *entity.CuentaContable) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.CuentaContable, error)
	GetByCodigo(ctx context.Context, codigo string) (*entity.CuentaContable, error)
	Update(ctx context.Context, cuenta *entity.CuentaContable) error
	Delete(ctx context.Context, id uuid.UUID) error
	// List returns the whole chart ordered by account code
	List(ctx context.Context) ([]entity.CuentaContable, error)
	// ListHijas returns the direct children of an account
	ListHijas(ctx context.Context, padreID uuid.UUID) ([]entity.CuentaContable, error)
	// CountHijas tells whether an account still has children, which blocks
	// its deletion
	CountHijas(ctx context.Context, padreID uuid.UUID) (int64, error)
}
