package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/coopertrans/guias-api/internal/domain/entity"
	"github.com/coopertrans/guias-api/pkg/pagination"
)

// AsociadoRepository defines the interface for cooperative member data operations
type AsociadoRepository interface {
	Create(ctx context.Context, asociado *entity.Asociado) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Asociado, error)
	GetByCedula(ctx context.Context, cedula string) (*entity.Asociado, error)
	GetByCodigoSocio(ctx context.Context, codigo string) (*entity.Asociado, error)
	Update(ctx context.Context, asociado *entity.Asociado) error
	Delete(ctx context.Context, id uuid.UUID) error
	// List returns members with page-based pagination. soloActivos limits
	// the result to members not marked inactive.
	List(ctx context.Context, params *pagination.PaginationParams, search string, soloActivos bool) ([]entity.Asociado, int64, error)
	// ListActivos returns every active member without pagination, used by
	// the mass debt generators.
	ListActivos(ctx context.Context) ([]entity.Asociado, error)
	// ListTodos returns every member, active or not
	ListTodos(ctx context.Context) ([]entity.Asociado, error)
}
