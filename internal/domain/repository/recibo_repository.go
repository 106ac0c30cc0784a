package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/coopertrans/guias-api/internal/domain/entity"
	"github.com/coopertrans/guias-api/pkg/pagination"
)

// ReciboRepository defines the interface for payment receipt data operations
type ReciboRepository interface {
	Create(ctx context.Context, recibo *entity.Recibo) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Recibo, error)
	GetByNumero(ctx context.Context, numero string) (*entity.Recibo, error)
	// GetWithDetalles returns a receipt with its payment lines and settled
	// debts preloaded
	GetWithDetalles(ctx context.Context, id uuid.UUID) (*entity.Recibo, error)
	List(ctx context.Context, params *ReciboFilterParams) ([]entity.Recibo, int64, error)
	// ListByAsociado returns every receipt of one member ordered by
	// payment date
	ListByAsociado(ctx context.Context, asociadoID uuid.UUID) ([]entity.Recibo, error)
	// NextNumero reserves the next receipt sequence number
	NextNumero(ctx context.Context) (int64, error)
	// Delete hard-deletes a receipt and its payment lines. Receipts are
	// immutable once registered; deletion only backs out a registration
	// whose debt settlement failed.
	Delete(ctx context.Context, id uuid.UUID) error
}

// ReciboFilterParams contains filtering parameters for receipt queries
type ReciboFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	AsociadoID *uuid.UUID
	Desde      *time.Time
	Hasta      *time.Time
}
