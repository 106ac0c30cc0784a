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

type clienteRepository struct {
	db *gorm.DB
}

// NewClienteRepository creates a new client repository
func NewClienteRepository(db *gorm.DB) domainRepo.ClienteRepository {
	return &clienteRepository{db: db}
}

func (r *clienteRepository) Create(ctx context.Context, cliente *entity.Cliente) error {
	return r.db.WithContext(ctx).Create(cliente).Error
}

func (r *clienteRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Cliente, error) {
	var cliente entity.Cliente
	err := r.db.WithContext(ctx).First(&cliente, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &cliente, err
}

func (r *clienteRepository) GetByDocumento(ctx context.Context, tipo, numero string) (*entity.Cliente, error) {
	var cliente entity.Cliente
	err := r.db.WithContext(ctx).
		First(&cliente, "tipo_documento = ? AND numero_documento = ?", tipo, numero).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &cliente, err
}

func (r *clienteRepository) Update(ctx context.Context, cliente *entity.Cliente) error {
	return r.db.WithContext(ctx).Save(cliente).Error
}

func (r *clienteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Cliente{}, "id = ?", id).Error
}

func (r *clienteRepository) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Cliente, int64, error) {
	var clientes []entity.Cliente
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Cliente{})

	if search != "" {
		query = query.Where("nombre ILIKE ? OR numero_documento ILIKE ? OR telefono ILIKE ?",
			"%"+search+"%", "%"+search+"%", "%"+search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("nombre ASC").
		Find(&clientes).Error

	return clientes, total, err
}

// ListWithCursor returns clients using cursor-based pagination.
// Fetches limit+1 items to detect if there are more results.
func (r *clienteRepository) ListWithCursor(ctx context.Context, params *pagination.CursorParams, search string) ([]entity.Cliente, error) {
	var clientes []entity.Cliente

	params.Validate()
	query := r.db.WithContext(ctx).Model(&entity.Cliente{})

	if search != "" {
		query = query.Where("nombre ILIKE ? OR numero_documento ILIKE ? OR telefono ILIKE ?",
			"%"+search+"%", "%"+search+"%", "%"+search+"%")
	}

	cursor, err := params.DecodeCursor()
	if err != nil {
		return nil, err
	}

	if cursor != nil {
		if params.Direction == pagination.CursorDirectionNext {
			query = query.Where("(created_at, id) > (?, ?)", cursor.CreatedAt, cursor.ID)
		} else {
			query = query.Where("(created_at, id) < (?, ?)", cursor.CreatedAt, cursor.ID)
		}
	}

	err = query.Limit(params.Limit + 1).
		Order("created_at ASC, id ASC").
		Find(&clientes).Error

	return clientes, err
}
