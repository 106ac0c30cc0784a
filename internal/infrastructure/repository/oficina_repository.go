package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/coopertrans/guias-api/internal/domain/entity"
	domainRepo "github.com/coopertrans/guias-api/internal/domain/repository"
)

type oficinaRepository struct {
	db *gorm.DB
}

// NewOficinaRepository creates a new office repository
func NewOficinaRepository(db *gorm.DB) domainRepo.OficinaRepository {
	return &oficinaRepository{db: db}
}

func (r *oficinaRepository) Create(ctx context.Context, oficina *entity.Oficina) error {
	return r.db.WithContext(ctx).Create(oficina).Error
}

func (r *oficinaRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Oficina, error) {
	var oficina entity.Oficina
	err := r.db.WithContext(ctx).First(&oficina, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &oficina, err
}

func (r *oficinaRepository) GetByCodigo(ctx context.Context, codigo string) (*entity.Oficina, error) {
	var oficina entity.Oficina
	err := r.db.WithContext(ctx).First(&oficina, "codigo = ?", codigo).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &oficina, err
}

func (r *oficinaRepository) Update(ctx context.Context, oficina *entity.Oficina) error {
	return r.db.WithContext(ctx).Save(oficina).Error
}

func (r *oficinaRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Oficina{}, "id = ?", id).Error
}

func (r *oficinaRepository) List(ctx context.Context) ([]entity.Oficina, error) {
	var oficinas []entity.Oficina
	err := r.db.WithContext(ctx).Order("codigo ASC").Find(&oficinas).Error
	return oficinas, err
}

type empresaRepository struct {
	db *gorm.DB
}

// NewEmpresaRepository creates a new company configuration repository
func NewEmpresaRepository(db *gorm.DB) domainRepo.EmpresaRepository {
	return &empresaRepository{db: db}
}

func (r *empresaRepository) Get(ctx context.Context) (*entity.ConfigEmpresa, error) {
	var config entity.ConfigEmpresa
	err := r.db.WithContext(ctx).First(&config).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &config, err
}

func (r *empresaRepository) Create(ctx context.Context, config *entity.ConfigEmpresa) error {
	return r.db.WithContext(ctx).Create(config).Error
}

func (r *empresaRepository) Update(ctx context.Context, config *entity.ConfigEmpresa) error {
	return r.db.WithContext(ctx).Save(config).Error
}
