package repository

import (
	"context"

	"gorm.io/gorm"

	domainRepo "github.com/coopertrans/guias-api/internal/domain/repository"
)

type mantenimientoRepository struct {
	db *gorm.DB
}

// NewMantenimientoRepository creates a new data maintenance repository
func NewMantenimientoRepository(db *gorm.DB) domainRepo.MantenimientoRepository {
	return &mantenimientoRepository{db: db}
}

func (r *mantenimientoRepository) ScanHuerfanos(ctx context.Context) (*domainRepo.Huerfanos, error) {
	h := &domainRepo.Huerfanos{}
	db := r.db.WithContext(ctx)

	err := db.Raw(`
		SELECT d.id FROM deudas d
		LEFT JOIN asociados a ON a.id = d.asociado_id
		WHERE d.deleted_at IS NULL AND a.id IS NULL
	`).Scan(&h.DeudasSinAsociado).Error
	if err != nil {
		return nil, err
	}

	err = db.Raw(`
		SELECT r.id FROM recibos r
		LEFT JOIN asociados a ON a.id = r.asociado_id
		WHERE r.deleted_at IS NULL AND a.id IS NULL
	`).Scan(&h.RecibosSinAsociado).Error
	if err != nil {
		return nil, err
	}

	err = db.Raw(`
		SELECT d.id FROM deudas d
		LEFT JOIN recibos r ON r.id = d.recibo_id
		WHERE d.deleted_at IS NULL AND d.estado = 'Pagado'
		AND (d.recibo_id IS NULL OR r.id IS NULL)
	`).Scan(&h.DeudasPagadasSinRecibo).Error
	if err != nil {
		return nil, err
	}

	err = db.Raw(`
		SELECT g.id FROM guias g
		LEFT JOIN clientes c ON c.id = g.cliente_id
		WHERE g.deleted_at IS NULL AND g.cliente_id IS NOT NULL AND c.id IS NULL
	`).Scan(&h.GuiasSinCliente).Error
	if err != nil {
		return nil, err
	}

	return h, nil
}

func (r *mantenimientoRepository) RepararHuerfanos(ctx context.Context, h *domainRepo.Huerfanos) (int64, error) {
	var reparados int64

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(h.DeudasSinAsociado) > 0 {
			res := tx.Exec("DELETE FROM deudas WHERE id IN ?", h.DeudasSinAsociado)
			if res.Error != nil {
				return res.Error
			}
			reparados += res.RowsAffected
		}

		if len(h.RecibosSinAsociado) > 0 {
			if err := tx.Exec("DELETE FROM recibo_detalles WHERE recibo_id IN ?", h.RecibosSinAsociado).Error; err != nil {
				return err
			}
			res := tx.Exec("DELETE FROM recibos WHERE id IN ?", h.RecibosSinAsociado)
			if res.Error != nil {
				return res.Error
			}
			reparados += res.RowsAffected
		}

		if len(h.DeudasPagadasSinRecibo) > 0 {
			res := tx.Exec(
				"UPDATE deudas SET estado = 'Pendiente', recibo_id = NULL WHERE id IN ?",
				h.DeudasPagadasSinRecibo,
			)
			if res.Error != nil {
				return res.Error
			}
			reparados += res.RowsAffected
		}

		if len(h.GuiasSinCliente) > 0 {
			// The sender snapshot on the guide keeps the data; only the
			// dangling link is cleared
			res := tx.Exec("UPDATE guias SET cliente_id = NULL WHERE id IN ?", h.GuiasSinCliente)
			if res.Error != nil {
				return res.Error
			}
			reparados += res.RowsAffected
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return reparados, nil
}
