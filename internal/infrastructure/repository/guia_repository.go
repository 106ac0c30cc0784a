package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/coopertrans/guias-api/internal/domain/entity"
	"github.com/coopertrans/guias-api/internal/domain/enum"
	domainRepo "github.com/coopertrans/guias-api/internal/domain/repository"
	"github.com/coopertrans/guias-api/pkg/pagination"
)

type guiaRepository struct {
	db *gorm.DB
}

// NewGuiaRepository creates a new shipping guide repository
func NewGuiaRepository(db *gorm.DB) domainRepo.GuiaRepository {
	return &guiaRepository{db: db}
}

func (r *guiaRepository) Create(ctx context.Context, guia *entity.Guia) error {
	return r.db.WithContext(ctx).Create(guia).Error
}

func (r *guiaRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Guia, error) {
	var guia entity.Guia
	err := r.db.WithContext(ctx).
		Preload("Cliente").
		First(&guia, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &guia, err
}

func (r *guiaRepository) GetByNumero(ctx context.Context, numero string) (*entity.Guia, error) {
	var guia entity.Guia
	err := r.db.WithContext(ctx).First(&guia, "numero_guia = ?", numero).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &guia, err
}

func (r *guiaRepository) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Guia, error) {
	var guia entity.Guia
	err := r.db.WithContext(ctx).
		Preload("Cliente").
		Preload("Items").
		Preload("OficinaOrigen").
		Preload("OficinaDestino").
		First(&guia, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &guia, err
}

func (r *guiaRepository) Update(ctx context.Context, guia *entity.Guia) error {
	return r.db.WithContext(ctx).Save(guia).Error
}

func (r *guiaRepository) UpdateEstado(ctx context.Context, id uuid.UUID, estado enum.EstadoGuia) error {
	return r.db.WithContext(ctx).Model(&entity.Guia{}).
		Where("id = ?", id).
		Update("estado", estado).Error
}

func (r *guiaRepository) List(ctx context.Context, params *domainRepo.GuiaFilterParams) ([]entity.Guia, int64, error) {
	var guias []entity.Guia
	var total int64

	query := r.applyFilters(r.db.WithContext(ctx).Model(&entity.Guia{}), params)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Sorting
	sortBy := "fecha_emision"
	sortOrder := "DESC"
	if params.SortBy != "" {
		sortBy = params.SortBy
	}
	if params.SortOrder == "ASC" || params.SortOrder == "asc" {
		sortOrder = "ASC"
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Cliente").
		Order(sortBy + " " + sortOrder).
		Find(&guias).Error

	return guias, total, err
}

func (r *guiaRepository) applyFilters(query *gorm.DB, params *domainRepo.GuiaFilterParams) *gorm.DB {
	if params.Search != "" {
		query = query.Where("numero_guia ILIKE ? OR remitente_nombre ILIKE ? OR remitente_documento ILIKE ? OR destinatario_nombre ILIKE ?",
			"%"+params.Search+"%", "%"+params.Search+"%", "%"+params.Search+"%", "%"+params.Search+"%")
	}
	if params.Estado != nil {
		query = query.Where("estado = ?", *params.Estado)
	}
	if params.ClienteID != nil {
		query = query.Where("cliente_id = ?", *params.ClienteID)
	}
	if params.OficinaID != nil {
		query = query.Where("oficina_origen_id = ? OR oficina_destino_id = ?", *params.OficinaID, *params.OficinaID)
	}
	if params.Moneda != nil {
		query = query.Where("moneda = ?", *params.Moneda)
	}
	if params.Desde != nil {
		query = query.Where("fecha_emision >= ?", *params.Desde)
	}
	if params.Hasta != nil {
		query = query.Where("fecha_emision <= ?", *params.Hasta)
	}
	return query
}

// ListWithCursor returns guides using cursor-based pagination
func (r *guiaRepository) ListWithCursor(ctx context.Context, params *domainRepo.GuiaCursorFilterParams) ([]entity.Guia, error) {
	var guias []entity.Guia

	params.Cursor.Validate()
	query := r.db.WithContext(ctx).Model(&entity.Guia{})

	if params.Search != "" {
		query = query.Where("numero_guia ILIKE ? OR remitente_nombre ILIKE ?",
			"%"+params.Search+"%", "%"+params.Search+"%")
	}
	if params.Estado != nil {
		query = query.Where("estado = ?", *params.Estado)
	}
	if params.ClienteID != nil {
		query = query.Where("cliente_id = ?", *params.ClienteID)
	}
	if params.Desde != nil {
		query = query.Where("fecha_emision >= ?", *params.Desde)
	}
	if params.Hasta != nil {
		query = query.Where("fecha_emision <= ?", *params.Hasta)
	}

	cursor, err := params.Cursor.DecodeCursor()
	if err != nil {
		return nil, err
	}

	if cursor != nil {
		if params.Cursor.Direction == pagination.CursorDirectionNext {
			query = query.Where("(created_at, id) > (?, ?)", cursor.CreatedAt, cursor.ID)
		} else {
			query = query.Where("(created_at, id) < (?, ?)", cursor.CreatedAt, cursor.ID)
		}
	}

	err = query.Limit(params.Cursor.Limit + 1).
		Preload("Cliente").
		Order("created_at ASC, id ASC").
		Find(&guias).Error

	return guias, err
}

func (r *guiaRepository) ReplaceItems(ctx context.Context, guiaID uuid.UUID, items []entity.GuiaItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&entity.GuiaItem{}, "guia_id = ?", guiaID).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return nil
		}
		for i := range items {
			items[i].GuiaID = guiaID
		}
		return tx.Create(&items).Error
	})
}

func (r *guiaRepository) NextNumero(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Raw("SELECT nextval('guias_numero_seq')").Scan(&n).Error
	return n, err
}

func (r *guiaRepository) ListByPeriodo(ctx context.Context, desde, hasta time.Time) ([]entity.Guia, error) {
	var guias []entity.Guia
	err := r.db.WithContext(ctx).
		Where("estado = ? AND fecha_emision >= ? AND fecha_emision <= ?", enum.EstadoGuiaActiva, desde, hasta).
		Preload("Cliente").
		Order("fecha_emision ASC, numero_guia ASC").
		Find(&guias).Error
	return guias, err
}
