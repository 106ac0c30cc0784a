package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/coopertrans/guias-api/internal/domain/entity"
	domainRepo "github.com/coopertrans/guias-api/internal/domain/repository"
	"github.com/coopertrans/guias-api/pkg/pagination"
)

type proveedorRepository struct {
	db *gorm.DB
}

// NewProveedorRepository creates a new supplier repository
func NewProveedorRepository(db *gorm.DB) domainRepo.ProveedorRepository {
	return &proveedorRepository{db: db}
}

func (r *proveedorRepository) Create(ctx context.Context, proveedor *entity.Proveedor) error {
	return r.db.WithContext(ctx).Create(proveedor).Error
}

func (r *proveedorRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Proveedor, error) {
	var proveedor entity.Proveedor
	err := r.db.WithContext(ctx).First(&proveedor, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &proveedor, err
}

func (r *proveedorRepository) GetByRif(ctx context.Context, rif string) (*entity.Proveedor, error) {
	var proveedor entity.Proveedor
	err := r.db.WithContext(ctx).First(&proveedor, "rif = ?", rif).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &proveedor, err
}

func (r *proveedorRepository) Update(ctx context.Context, proveedor *entity.Proveedor) error {
	return r.db.WithContext(ctx).Save(proveedor).Error
}

func (r *proveedorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Proveedor{}, "id = ?", id).Error
}

func (r *proveedorRepository) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Proveedor, int64, error) {
	var proveedores []entity.Proveedor
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Proveedor{})

	if search != "" {
		query = query.Where("nombre ILIKE ? OR rif ILIKE ? OR telefono ILIKE ?",
			"%"+search+"%", "%"+search+"%", "%"+search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("nombre ASC").
		Find(&proveedores).Error

	return proveedores, total, err
}

type compraRepository struct {
	db *gorm.DB
}

// NewCompraRepository creates a new supplier invoice repository
func NewCompraRepository(db *gorm.DB) domainRepo.CompraRepository {
	return &compraRepository{db: db}
}

func (r *compraRepository) Create(ctx context.Context, compra *entity.CompraProveedor) error {
	return r.db.WithContext(ctx).Create(compra).Error
}

func (r *compraRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.CompraProveedor, error) {
	var compra entity.CompraProveedor
	err := r.db.WithContext(ctx).Preload("Proveedor").First(&compra, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &compra, err
}

func (r *compraRepository) Update(ctx context.Context, compra *entity.CompraProveedor) error {
	return r.db.WithContext(ctx).Save(compra).Error
}

func (r *compraRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.CompraProveedor{}, "id = ?", id).Error
}

func (r *compraRepository) List(ctx context.Context, params *domainRepo.CompraFilterParams) ([]entity.CompraProveedor, int64, error) {
	var compras []entity.CompraProveedor
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.CompraProveedor{})

	if params.ProveedorID != nil {
		query = query.Where("proveedor_id = ?", *params.ProveedorID)
	}
	if params.Desde != nil {
		query = query.Where("fecha >= ?", *params.Desde)
	}
	if params.Hasta != nil {
		query = query.Where("fecha <= ?", *params.Hasta)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Proveedor").
		Order("fecha DESC").
		Find(&compras).Error

	return compras, total, err
}

func (r *compraRepository) ListByPeriodo(ctx context.Context, desde, hasta time.Time) ([]entity.CompraProveedor, error) {
	var compras []entity.CompraProveedor
	err := r.db.WithContext(ctx).
		Where("fecha >= ? AND fecha <= ?", desde, hasta).
		Preload("Proveedor").
		Order("fecha ASC, numero_factura ASC").
		Find(&compras).Error
	return compras, err
}
