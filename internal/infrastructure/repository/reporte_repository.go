package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	domainRepo "github.com/coopertrans/guias-api/internal/domain/repository"
)

type reporteRepository struct {
	db *gorm.DB
}

// NewReporteRepository creates a new reporting repository
func NewReporteRepository(db *gorm.DB) domainRepo.ReporteRepository {
	return &reporteRepository{db: db}
}

func (r *reporteRepository) GetResumenDashboard(ctx context.Context, mes time.Time) (*domainRepo.ResumenDashboard, error) {
	inicio := time.Date(mes.Year(), mes.Month(), 1, 0, 0, 0, 0, mes.Location())
	fin := inicio.AddDate(0, 1, 0)

	resumen := &domainRepo.ResumenDashboard{}
	db := r.db.WithContext(ctx)

	var guias struct {
		Guias   int64
		Monto   decimal.Decimal
		Iva     decimal.Decimal
		Ipostel decimal.Decimal
	}
	err := db.Raw(`
		SELECT
			COUNT(*) as guias,
			COALESCE(SUM(total), 0) as monto,
			COALESCE(SUM(iva), 0) as iva,
			COALESCE(SUM(ipostel), 0) as ipostel
		FROM guias
		WHERE estado = 0 AND deleted_at IS NULL
		AND fecha_emision >= ? AND fecha_emision < ?
	`, inicio, fin).Scan(&guias).Error
	if err != nil {
		return nil, err
	}
	resumen.GuiasDelMes = guias.Guias
	resumen.FacturadoDelMes = guias.Monto
	resumen.IvaDelMes = guias.Iva
	resumen.IpostelDelMes = guias.Ipostel

	err = db.Raw(`
		SELECT COUNT(*) FROM asociados WHERE activo = true AND deleted_at IS NULL
	`).Scan(&resumen.AsociadosActivos).Error
	if err != nil {
		return nil, err
	}

	var deudas struct {
		Deudas int64
		Monto  decimal.Decimal
	}
	err = db.Raw(`
		SELECT COUNT(*) as deudas, COALESCE(SUM(monto_bs), 0) as monto
		FROM deudas
		WHERE estado = 'Pendiente' AND deleted_at IS NULL
	`).Scan(&deudas).Error
	if err != nil {
		return nil, err
	}
	resumen.DeudasPendientes = deudas.Deudas
	resumen.MontoPorCobrarBs = deudas.Monto

	var recibos struct {
		Recibos int64
		Monto   decimal.Decimal
	}
	err = db.Raw(`
		SELECT COUNT(*) as recibos, COALESCE(SUM(monto_total), 0) as monto
		FROM recibos
		WHERE deleted_at IS NULL AND fecha_pago >= ? AND fecha_pago < ?
	`, inicio, fin).Scan(&recibos).Error
	if err != nil {
		return nil, err
	}
	resumen.RecibosDelMes = recibos.Recibos
	resumen.CobradoDelMes = recibos.Monto

	return resumen, nil
}

func (r *reporteRepository) GetFacturacionDiaria(ctx context.Context, dias int) ([]domainRepo.FacturacionDiaria, error) {
	resultados := make([]domainRepo.FacturacionDiaria, 0, dias)
	now := time.Now()

	for i := dias - 1; i >= 0; i-- {
		fecha := now.AddDate(0, 0, -i)
		inicio := time.Date(fecha.Year(), fecha.Month(), fecha.Day(), 0, 0, 0, 0, fecha.Location())
		fin := inicio.Add(24 * time.Hour)

		var fila struct {
			Guias int64
			Monto decimal.Decimal
		}
		err := r.db.WithContext(ctx).Raw(`
			SELECT COUNT(*) as guias, COALESCE(SUM(total), 0) as monto
			FROM guias
			WHERE estado = 0 AND deleted_at IS NULL
			AND fecha_emision >= ? AND fecha_emision < ?
		`, inicio, fin).Scan(&fila).Error
		if err != nil {
			return nil, err
		}

		resultados = append(resultados, domainRepo.FacturacionDiaria{
			Fecha: inicio,
			Guias: fila.Guias,
			Monto: fila.Monto,
		})
	}

	return resultados, nil
}

func (r *reporteRepository) GetTopClientes(ctx context.Context, desde, hasta time.Time, limit int) ([]domainRepo.TopClienteResult, error) {
	var resultados []domainRepo.TopClienteResult

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			c.id as cliente_id,
			c.nombre as nombre,
			COUNT(g.id) as guias,
			COALESCE(SUM(g.total), 0) as monto
		FROM guias g
		JOIN clientes c ON c.id = g.cliente_id
		WHERE g.estado = 0 AND g.deleted_at IS NULL
		AND g.fecha_emision >= ? AND g.fecha_emision <= ?
		GROUP BY c.id, c.nombre
		ORDER BY monto DESC
		LIMIT ?
	`, desde, hasta, limit).Scan(&resultados).Error

	return resultados, err
}

func (r *reporteRepository) GetTopDeudores(ctx context.Context, limit int) ([]domainRepo.DeudorResult, error) {
	var resultados []domainRepo.DeudorResult

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			a.id as asociado_id,
			a.nombre as nombre,
			COUNT(d.id) as deudas,
			COALESCE(SUM(d.monto_bs), 0) as monto_bs
		FROM deudas d
		JOIN asociados a ON a.id = d.asociado_id
		WHERE d.estado = 'Pendiente' AND d.deleted_at IS NULL
		GROUP BY a.id, a.nombre
		ORDER BY monto_bs DESC
		LIMIT ?
	`, limit).Scan(&resultados).Error

	return resultados, err
}
