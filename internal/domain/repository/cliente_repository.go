package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/coopertrans/guias-api/internal/domain/entity"
	"github.com/coopertrans/guias-api/pkg/pagination"
)

// ClienteRepository defines the interface for client data operations
type ClienteRepository interface {
	Create(ctx context.Context, cliente *entity.Cliente) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Cliente, error)
	GetByDocumento(ctx context.Context, tipo, numero string) (*entity.Cliente, error)
	Update(ctx context.Context, cliente *entity.Cliente) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Cliente, int64, error)
	// ListWithCursor returns clients using cursor-based pagination
	ListWithCursor(ctx context.Context, params *pagination.CursorParams, search string) ([]entity.Cliente, error)
}
