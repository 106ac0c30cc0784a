package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/coopertrans/guias-api/internal/domain/entity"
	"github.com/coopertrans/guias-api/internal/domain/enum"
	"github.com/coopertrans/guias-api/pkg/pagination"
)

// DeudaRepository defines the interface for member debt data operations
type DeudaRepository interface {
	Create(ctx context.Context, deuda *entity.Deuda) error
	// CreateBatch inserts a debt batch in one transaction, used by the
	// mass generators
	CreateBatch(ctx context.Context, deudas []entity.Deuda) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Deuda, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Deuda, error)
	Update(ctx context.Context, deuda *entity.Deuda) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *DeudaFilterParams) ([]entity.Deuda, int64, error)
	// ListByAsociado returns every debt of one member ordered by due date
	ListByAsociado(ctx context.Context, asociadoID uuid.UUID) ([]entity.Deuda, error)
	// MarcarPagadas links the given debts to a receipt and flips their
	// state to paid in one update
	MarcarPagadas(ctx context.Context, ids []uuid.UUID, reciboID uuid.UUID) error
}

// DeudaFilterParams contains filtering parameters for debt queries
type DeudaFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	AsociadoID *uuid.UUID
	Estado     *enum.EstadoDeuda
	Origen     *enum.OrigenDeuda
	Desde      *time.Time
	Hasta      *time.Time
}
