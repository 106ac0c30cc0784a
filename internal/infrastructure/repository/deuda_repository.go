package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/coopertrans/guias-api/internal/domain/entity"
	"github.com/coopertrans/guias-api/internal/domain/enum"
	domainRepo "github.com/coopertrans/guias-api/internal/domain/repository"
)

type deudaRepository struct {
	db *gorm.DB
}

// NewDeudaRepository creates a new member debt repository
func NewDeudaRepository(db *gorm.DB) domainRepo.DeudaRepository {
	return &deudaRepository{db: db}
}

func (r *deudaRepository) Create(ctx context.Context, deuda *entity.Deuda) error {
	return r.db.WithContext(ctx).Create(deuda).Error
}

func (r *deudaRepository) CreateBatch(ctx context.Context, deudas []entity.Deuda) error {
	if len(deudas) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&deudas).Error
}

func (r *deudaRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Deuda, error) {
	var deuda entity.Deuda
	err := r.db.WithContext(ctx).Preload("Asociado").First(&deuda, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &deuda, err
}

func (r *deudaRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Deuda, error) {
	var deudas []entity.Deuda
	err := r.db.WithContext(ctx).Find(&deudas, "id IN ?", ids).Error
	return deudas, err
}

func (r *deudaRepository) Update(ctx context.Context, deuda *entity.Deuda) error {
	return r.db.WithContext(ctx).Save(deuda).Error
}

func (r *deudaRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Deuda{}, "id = ?", id).Error
}

func (r *deudaRepository) List(ctx context.Context, params *domainRepo.DeudaFilterParams) ([]entity.Deuda, int64, error) {
	var deudas []entity.Deuda
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Deuda{})

	if params.Search != "" {
		query = query.Joins("JOIN asociados ON asociados.id = deudas.asociado_id").
			Where("deudas.concepto ILIKE ? OR asociados.nombre ILIKE ? OR asociados.cedula ILIKE ?",
				"%"+params.Search+"%", "%"+params.Search+"%", "%"+params.Search+"%")
	}
	if params.AsociadoID != nil {
		query = query.Where("deudas.asociado_id = ?", *params.AsociadoID)
	}
	if params.Estado != nil {
		query = query.Where("deudas.estado = ?", *params.Estado)
	}
	if params.Origen != nil {
		query = query.Where("deudas.origen = ?", *params.Origen)
	}
	if params.Desde != nil {
		query = query.Where("deudas.fecha_vencimiento >= ?", *params.Desde)
	}
	if params.Hasta != nil {
		query = query.Where("deudas.fecha_vencimiento <= ?", *params.Hasta)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Asociado").
		Order("deudas.fecha_vencimiento DESC").
		Find(&deudas).Error

	return deudas, total, err
}

func (r *deudaRepository) ListByAsociado(ctx context.Context, asociadoID uuid.UUID) ([]entity.Deuda, error) {
	var deudas []entity.Deuda
	err := r.db.WithContext(ctx).
		Where("asociado_id = ?", asociadoID).
		Order("fecha_vencimiento ASC").
		Find(&deudas).Error
	return deudas, err
}

func (r *deudaRepository) MarcarPagadas(ctx context.Context, ids []uuid.UUID, reciboID uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&entity.Deuda{}).
		Where("id IN ?", ids).
		Updates(map[string]interface{}{
			"estado":    enum.EstadoDeudaPagado,
			"recibo_id": reciboID,
		}).Error
}
