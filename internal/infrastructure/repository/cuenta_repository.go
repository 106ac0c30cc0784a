package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/coopertrans/guias-api/internal/domain/entity"
	domainRepo "github.com/coopertrans/guias-api/internal/domain/repository"
)

type cuentaRepository struct {
	db *gorm.DB
}

// NewCuentaRepository creates a new chart-of-accounts repository
func NewCuentaRepository(db *gorm.DB) domainRepo.CuentaRepository {
	return &cuentaRepository{db: db}
}

func (r *cuentaRepository) Create(ctx context.Context, cuenta *entity.CuentaContable) error {
	return r.db.WithContext(ctx).Create(cuenta).Error
}

func (r *cuentaRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.CuentaContable, error) {
	var cuenta entity.CuentaContable
	err := r.db.WithContext(ctx).First(&cuenta, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &cuenta, err
}

func (r *cuentaRepository) GetByCodigo(ctx context.Context, codigo string) (*entity.CuentaContable, error) {
	var cuenta entity.CuentaContable
	err := r.db.WithContext(ctx).First(&cuenta, "codigo = ?", codigo).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &cuenta, err
}

func (r *cuentaRepository) Update(ctx context.Context, cuenta *entity.CuentaContable) error {
	return r.db.WithContext(ctx).Save(cuenta).Error
}

func (r *cuentaRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.CuentaContable{}, "id = ?", id).Error
}

func (r *cuentaRepository) List(ctx context.Context) ([]entity.CuentaContable, error) {
	var cuentas []entity.CuentaContable
	err := r.db.WithContext(ctx).Order("codigo ASC").Find(&cuentas).Error
	return cuentas, err
}

func (r *cuentaRepository) ListHijas(ctx context.Context, padreID uuid.UUID) ([]entity.CuentaContable, error) {
	var cuentas []entity.CuentaContable
	err := r.db.WithContext(ctx).
		Where("padre_id = ?", padreID).
		Order("codigo ASC").
		Find(&cuentas).Error
	return cuentas, err
}

func (r *cuentaRepository) CountHijas(ctx context.Context, padreID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.CuentaContable{}).
		Where("padre_id = ?", padreID).
		Count(&count).Error
	return count, err
}
