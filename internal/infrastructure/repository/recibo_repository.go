package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/coopertrans/guias-api/internal/domain/entity"
	domainRepo "github.com/coopertrans/guias-api/internal/domain/repository"
)

type reciboRepository struct {
	db *gorm.DB
}

// NewReciboRepository creates a new payment receipt repository
func NewReciboRepository(db *gorm.DB) domainRepo.ReciboRepository {
	return &reciboRepository{db: db}
}

func (r *reciboRepository) Create(ctx context.Context, recibo *entity.Recibo) error {
	return r.db.WithContext(ctx).Create(recibo).Error
}

func (r *reciboRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Recibo, error) {
	var recibo entity.Recibo
	err := r.db.WithContext(ctx).Preload("Asociado").First(&recibo, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &recibo, err
}

func (r *reciboRepository) GetByNumero(ctx context.Context, numero string) (*entity.Recibo, error) {
	var recibo entity.Recibo
	err := r.db.WithContext(ctx).First(&recibo, "numero_recibo = ?", numero).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &recibo, err
}

func (r *reciboRepository) GetWithDetalles(ctx context.Context, id uuid.UUID) (*entity.Recibo, error) {
	var recibo entity.Recibo
	err := r.db.WithContext(ctx).
		Preload("Asociado").
		Preload("Detalles").
		Preload("Deudas").
		First(&recibo, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &recibo, err
}

func (r *reciboRepository) List(ctx context.Context, params *domainRepo.ReciboFilterParams) ([]entity.Recibo, int64, error) {
	var recibos []entity.Recibo
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Recibo{})

	if params.Search != "" {
		query = query.Joins("JOIN asociados ON asociados.id = recibos.asociado_id").
			Where("recibos.numero_recibo ILIKE ? OR asociados.nombre ILIKE ? OR asociados.cedula ILIKE ?",
				"%"+params.Search+"%", "%"+params.Search+"%", "%"+params.Search+"%")
	}
	if params.AsociadoID != nil {
		query = query.Where("recibos.asociado_id = ?", *params.AsociadoID)
	}
	if params.Desde != nil {
		query = query.Where("recibos.fecha_pago >= ?", *params.Desde)
	}
	if params.Hasta != nil {
		query = query.Where("recibos.fecha_pago <= ?", *params.Hasta)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Asociado").
		Order("recibos.fecha_pago DESC").
		Find(&recibos).Error

	return recibos, total, err
}

func (r *reciboRepository) ListByAsociado(ctx context.Context, asociadoID uuid.UUID) ([]entity.Recibo, error) {
	var recibos []entity.Recibo
	err := r.db.WithContext(ctx).
		Where("asociado_id = ?", asociadoID).
		Order("fecha_pago ASC").
		Find(&recibos).Error
	return recibos, err
}

func (r *reciboRepository) NextNumero(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Raw("SELECT nextval('recibos_numero_seq')").Scan(&n).Error
	return n, err
}

func (r *reciboRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("recibo_id = ?", id).Delete(&entity.ReciboDetalle{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&entity.Recibo{}, "id = ?", id).Error
	})
}
