package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/coopertrans/guias-api/internal/domain/entity"
)

// OficinaRepository defines the interface for office data operations
type OficinaRepository interface {
	Create(ctx context.Context, oficina *entity.Oficina) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Oficina, error)
	GetByCodigo(ctx context.Context, codigo string) (*entity.Oficina, error)
	Update(ctx context.Context, oficina *entity.Oficina) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]entity.Oficina, error)
}

// EmpresaRepository defines the interface for company configuration access.
// A single configuration row exists.
type EmpresaRepository interface {
	Get(ctx context.Context) (*entity.ConfigEmpresa, error)
	Create(ctx context.Context, config *entity.ConfigEmpresa) error
	Update(ctx context.Context, config *entity.ConfigEmpresa) error
}
