package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/coopertrans/guias-api/internal/domain/entity"
	domainRepo "github.com/coopertrans/guias-api/internal/domain/repository"
	"github.com/coopertrans/guias-api/pkg/pagination"
)

type inventarioRepository struct {
	db *gorm.DB
}

// NewInventarioRepository creates a new inventory repository
func NewInventarioRepository(db *gorm.DB) domainRepo.InventarioRepository {
	return &inventarioRepository{db: db}
}

func (r *inventarioRepository) Create(ctx context.Context, item *entity.InventarioItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *inventarioRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.InventarioItem, error) {
	var item entity.InventarioItem
	err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &item, err
}

func (r *inventarioRepository) GetByCodigo(ctx context.Context, codigo string) (*entity.InventarioItem, error) {
	var item entity.InventarioItem
	err := r.db.WithContext(ctx).First(&item, "codigo = ?", codigo).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &item, err
}

func (r *inventarioRepository) Update(ctx context.Context, item *entity.InventarioItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *inventarioRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.InventarioItem{}, "id = ?", id).Error
}

func (r *inventarioRepository) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.InventarioItem, int64, error) {
	var items []entity.InventarioItem
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.InventarioItem{})

	if search != "" {
		query = query.Where("nombre ILIKE ? OR codigo ILIKE ?",
			"%"+search+"%", "%"+search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("codigo ASC").
		Find(&items).Error

	return items, total, err
}

func (r *inventarioRepository) AjustarCantidad(ctx context.Context, id uuid.UUID, delta int) (*entity.InventarioItem, error) {
	var item entity.InventarioItem
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&item, "id = ?", id).Error; err != nil {
			return err
		}
		item.Cantidad += delta
		if item.Cantidad < 0 {
			return gorm.ErrInvalidData
		}
		return tx.Save(&item).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

type activoRepository struct {
	db *gorm.DB
}

// NewActivoRepository creates a new fixed asset repository
func NewActivoRepository(db *gorm.DB) domainRepo.ActivoRepository {
	return &activoRepository{db: db}
}

func (r *activoRepository) Create(ctx context.Context, activo *entity.ActivoFijo) error {
	return r.db.WithContext(ctx).Create(activo).Error
}

func (r *activoRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.ActivoFijo, error) {
	var activo entity.ActivoFijo
	err := r.db.WithContext(ctx).First(&activo, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &activo, err
}

func (r *activoRepository) GetByCodigo(ctx context.Context, codigo string) (*entity.ActivoFijo, error) {
	var activo entity.ActivoFijo
	err := r.db.WithContext(ctx).First(&activo, "codigo = ?", codigo).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &activo, err
}

func (r *activoRepository) Update(ctx context.Context, activo *entity.ActivoFijo) error {
	return r.db.WithContext(ctx).Save(activo).Error
}

func (r *activoRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.ActivoFijo{}, "id = ?", id).Error
}

func (r *activoRepository) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.ActivoFijo, int64, error) {
	var activos []entity.ActivoFijo
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.ActivoFijo{})

	if search != "" {
		query = query.Where("nombre ILIKE ? OR codigo ILIKE ?",
			"%"+search+"%", "%"+search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("codigo ASC").
		Find(&activos).Error

	return activos, total, err
}
