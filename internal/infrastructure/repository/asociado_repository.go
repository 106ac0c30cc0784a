package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/coopertrans/guias-api/internal/domain/entity"
	domainRepo "github.com/coopertrans/guias-api/internal/domain/repository"
	"github.com/coopertrans/guias-api/pkg/pagination"
)

type asociadoRepository struct {
	db *gorm.DB
}

// NewAsociadoRepository creates a new cooperative member repository
func NewAsociadoRepository(db *gorm.DB) domainRepo.AsociadoRepository {
	return &asociadoRepository{db: db}
}

func (r *asociadoRepository) Create(ctx context.Context, asociado *entity.Asociado) error {
	return r.db.WithContext(ctx).Create(asociado).Error
}

func (r *asociadoRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Asociado, error) {
	var asociado entity.Asociado
	err := r.db.WithContext(ctx).First(&asociado, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &asociado, err
}

func (r *asociadoRepository) GetByCedula(ctx context.Context, cedula string) (*entity.Asociado, error) {
	var asociado entity.Asociado
	err := r.db.WithContext(ctx).First(&asociado, "cedula = ?", cedula).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &asociado, err
}

func (r *asociadoRepository) GetByCodigoSocio(ctx context.Context, codigo string) (*entity.Asociado, error) {
	var asociado entity.Asociado
	err := r.db.WithContext(ctx).First(&asociado, "codigo_socio = ?", codigo).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &asociado, err
}

func (r *asociadoRepository) Update(ctx context.Context, asociado *entity.Asociado) error {
	return r.db.WithContext(ctx).Save(asociado).Error
}

func (r *asociadoRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Asociado{}, "id = ?", id).Error
}

func (r *asociadoRepository) List(ctx context.Context, params *pagination.PaginationParams, search string, soloActivos bool) ([]entity.Asociado, int64, error) {
	var asociados []entity.Asociado
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Asociado{})
	if soloActivos {
		query = query.Where("activo = ?", true)
	}

	if search != "" {
		query = query.Where("nombre ILIKE ? OR cedula ILIKE ? OR codigo_socio ILIKE ? OR placa ILIKE ?",
			"%"+search+"%", "%"+search+"%", "%"+search+"%", "%"+search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("codigo_socio ASC").
		Find(&asociados).Error

	return asociados, total, err
}

func (r *asociadoRepository) ListActivos(ctx context.Context) ([]entity.Asociado, error) {
	var asociados []entity.Asociado
	err := r.db.WithContext(ctx).
		Where("activo = ?", true).
		Order("codigo_socio ASC").
		Find(&asociados).Error
	return asociados, err
}

func (r *asociadoRepository) ListTodos(ctx context.Context) ([]entity.Asociado, error) {
	var asociados []entity.Asociado
	err := r.db.WithContext(ctx).
		Order("codigo_socio ASC").
		Find(&asociados).Error
	return asociados, err
}
