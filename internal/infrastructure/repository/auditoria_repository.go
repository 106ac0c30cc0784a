package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/coopertrans/guias-api/internal/domain/entity"
	domainRepo "github.com/coopertrans/guias-api/internal/domain/repository"
)

type auditoriaRepository struct {
	db *gorm.DB
}

// NewAuditoriaRepository creates a new audit trail repository
func NewAuditoriaRepository(db *gorm.DB) domainRepo.AuditoriaRepository {
	return &auditoriaRepository{db: db}
}

func (r *auditoriaRepository) Create(ctx context.Context, evento *entity.AuditoriaEvento) error {
	return r.db.WithContext(ctx).Create(evento).Error
}

func (r *auditoriaRepository) List(ctx context.Context, params *domainRepo.AuditoriaFilterParams) ([]entity.AuditoriaEvento, int64, error) {
	var eventos []entity.AuditoriaEvento
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.AuditoriaEvento{})

	if params.UserID != nil {
		query = query.Where("user_id = ?", *params.UserID)
	}
	if params.Accion != "" {
		query = query.Where("accion = ?", params.Accion)
	}
	if params.Entidad != "" {
		query = query.Where("entidad = ?", params.Entidad)
	}
	if params.Desde != nil {
		query = query.Where("created_at >= ?", *params.Desde)
	}
	if params.Hasta != nil {
		query = query.Where("created_at <= ?", *params.Hasta)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order("created_at DESC").
		Find(&eventos).Error

	return eventos, total, err
}
