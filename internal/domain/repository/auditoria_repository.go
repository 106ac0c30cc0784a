package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/coopertrans/guias-api/internal/domain/entity"
	"github.com/coopertrans/guias-api/pkg/pagination"
)

// AuditoriaFilterParams contains filtering parameters for audit trail queries
type AuditoriaFilterParams struct {
	Pagination *pagination.PaginationParams
	UserID     *uuid.UUID
	Accion     string
	Entidad    string
	Desde      *time.Time
	Hasta      *time.Time
}

// AuditoriaRepository defines the interface for the append-only audit trail
type AuditoriaRepository interface {
	Create(ctx context.Context, evento *entity.AuditoriaEvento) error
	List(ctx context.Context, params *AuditoriaFilterParams) ([]entity.AuditoriaEvento, int64, error)
}
