package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/coopertrans/guias-api/internal/domain/entity"
	"github.com/coopertrans/guias-api/internal/domain/enum"
	"github.com/coopertrans/guias-api/pkg/pagination"
)

// GuiaRepository defines the interface for shipping guide data operations
type GuiaRepository interface {
	Create(ctx context.Context, guia *entity.Guia) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Guia, error)
	GetByNumero(ctx context.Context, numero string) (*entity.Guia, error)
	// GetWithItems returns a guide with its merchandise lines preloaded
	GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Guia, error)
	Update(ctx context.Context, guia *entity.Guia) error
	UpdateEstado(ctx context.Context, id uuid.UUID, estado enum.EstadoGuia) error
	List(ctx context.Context, params *GuiaFilterParams) ([]entity.Guia, int64, error)
	ListWithCursor(ctx context.Context, params *GuiaCursorFilterParams) ([]entity.Guia, error)
	// ReplaceItems swaps the merchandise lines of a guide atomically
	ReplaceItems(ctx context.Context, guiaID uuid.UUID, items []entity.GuiaItem) error
	// NextNumero reserves the next guide sequence number
	NextNumero(ctx context.Context) (int64, error)
	// ListByPeriodo returns active guides dated inside [desde, hasta] for
	// the sales ledger export.
	ListByPeriodo(ctx context.Context, desde, hasta time.Time) ([]entity.Guia, error)
}

// GuiaFilterParams contains filtering parameters for guide queries
type GuiaFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	Estado     *enum.EstadoGuia
	ClienteID  *uuid.UUID
	OficinaID  *uuid.UUID
	Moneda     *enum.Moneda
	Desde      *time.Time
	Hasta      *time.Time
	SortBy     string
	SortOrder  string
}

// GuiaCursorFilterParams contains cursor-based filtering for guide queries
type GuiaCursorFilterParams struct {
	Cursor    *pagination.CursorParams
	Search    string
	Estado    *enum.EstadoGuia
	ClienteID *uuid.UUID
	Desde     *time.Time
	Hasta     *time.Time
}
