package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/coopertrans/guias-api/internal/domain/repository"
	"github.com/coopertrans/guias-api/pkg/apperror"
)

// ReporteService produces the dashboard figures and the statutory Excel
// ledgers (Libro de Ventas and Libro de Compras)
type ReporteService struct {
	reporteRepo repository.ReporteRepository
	guiaRepo    repository.GuiaRepository
	compraRepo  repository.CompraRepository
	empresa     *EmpresaService
}

// NewReporteService creates a new reporting service
func NewReporteService(
	reporteRepo repository.ReporteRepository,
	guiaRepo repository.GuiaRepository,
	compraRepo repository.CompraRepository,
	empresa *EmpresaService,
) *ReporteService {
	return &ReporteService{
		reporteRepo: reporteRepo,
		guiaRepo:    guiaRepo,
		compraRepo:  compraRepo,
		empresa:     empresa,
	}
}

// GetDashboard returns the landing dashboard figures for the current month
func (s *ReporteService) GetDashboard(ctx context.Context) (*repository.ResumenDashboard, error) {
	return s.reporteRepo.GetResumenDashboard(ctx, time.Now())
}

// GetFacturacionDiaria returns per-day invoicing for the last N days
func (s *ReporteService) GetFacturacionDiaria(ctx context.Context, dias int) ([]repository.FacturacionDiaria, error) {
	if dias <= 0 {
		dias = 30
	}
	if dias > 365 {
		dias = 365
	}
	return s.reporteRepo.GetFacturacionDiaria(ctx, dias)
}

// GetTopClientes ranks clients by invoiced amount inside a period
func (s *ReporteService) GetTopClientes(ctx context.Context, desde, hasta time.Time, limit int) ([]repository.TopClienteResult, error) {
	if hasta.Before(desde) {
		return nil, apperror.NewBadRequestError("El período del reporte es inválido")
	}
	if limit <= 0 || limit > 100 {
		limit = 10
	}
	return s.reporteRepo.GetTopClientes(ctx, desde, hasta, limit)
}

// GetTopDeudores ranks members by pending debt
func (s *ReporteService) GetTopDeudores(ctx context.Context, limit int) ([]repository.DeudorResult, error) {
	if limit <= 0 || limit > 100 {
		limit = 10
	}
	return s.reporteRepo.GetTopDeudores(ctx, limit)
}

// LibroVentas builds the SENIAT sales ledger: one row per active guide
// dated inside [desde, hasta]
func (s *ReporteService) LibroVentas(ctx context.Context, desde, hasta time.Time) (*excelize.File, error) {
	if hasta.Before(desde) {
		return nil, apperror.NewBadRequestError("El período del libro es inválido")
	}

	guias, err := s.guiaRepo.ListByPeriodo(ctx, desde, hasta)
	if err != nil {
		return nil, err
	}

	config, err := s.empresa.GetConfig(ctx)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	hoja := "Libro de Ventas"
	f.SetSheetName("Sheet1", hoja)

	encabezado(f, hoja, config.Nombre, config.Rif,
		fmt.Sprintf("Libro de Ventas del %s al %s", desde.Format("02/01/2006"), hasta.Format("02/01/2006")))

	columnas := []string{"Fecha", "N° Guía", "Documento", "Cliente", "Base Imponible", "IVA", "IGTF", "Total"}
	for i, col := range columnas {
		f.SetCellValue(hoja, celdaEn(i+1, 4), col)
	}

	totalBase, totalIva, totalIgtf, totalTotal := decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero
	fila := 5
	for _, g := range guias {
		f.SetCellValue(hoja, celdaEn(1, fila), g.FechaEmision.Format("02/01/2006"))
		f.SetCellValue(hoja, celdaEn(2, fila), g.NumeroGuia)
		f.SetCellValue(hoja, celdaEn(3, fila), g.RemitenteDocumento)
		f.SetCellValue(hoja, celdaEn(4, fila), g.RemitenteNombre)
		f.SetCellValue(hoja, celdaEn(5, fila), montoExcel(g.Subtotal))
		f.SetCellValue(hoja, celdaEn(6, fila), montoExcel(g.Iva))
		f.SetCellValue(hoja, celdaEn(7, fila), montoExcel(g.Igtf))
		f.SetCellValue(hoja, celdaEn(8, fila), montoExcel(g.Total))

		totalBase = totalBase.Add(g.Subtotal)
		totalIva = totalIva.Add(g.Iva)
		totalIgtf = totalIgtf.Add(g.Igtf)
		totalTotal = totalTotal.Add(g.Total)
		fila++
	}

	f.SetCellValue(hoja, celdaEn(4, fila), "TOTALES")
	f.SetCellValue(hoja, celdaEn(5, fila), montoExcel(totalBase))
	f.SetCellValue(hoja, celdaEn(6, fila), montoExcel(totalIva))
	f.SetCellValue(hoja, celdaEn(7, fila), montoExcel(totalIgtf))
	f.SetCellValue(hoja, celdaEn(8, fila), montoExcel(totalTotal))

	return f, nil
}

// LibroCompras builds the SENIAT purchases ledger: one row per supplier
// invoice dated inside [desde, hasta]
func (s *ReporteService) LibroCompras(ctx context.Context, desde, hasta time.Time) (*excelize.File, error) {
	if hasta.Before(desde) {
		return nil, apperror.NewBadRequestError("El período del libro es inválido")
	}

	compras, err := s.compraRepo.ListByPeriodo(ctx, desde, hasta)
	if err != nil {
		return nil, err
	}

	config, err := s.empresa.GetConfig(ctx)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	hoja := "Libro de Compras"
	f.SetSheetName("Sheet1", hoja)

	encabezado(f, hoja, config.Nombre, config.Rif,
		fmt.Sprintf("Libro de Compras del %s al %s", desde.Format("02/01/2006"), hasta.Format("02/01/2006")))

	columnas := []string{"Fecha", "N° Factura", "N° Control", "RIF", "Proveedor", "Base Imponible", "Exento", "IVA", "Retención IVA", "Total"}
	for i, col := range columnas {
		f.SetCellValue(hoja, celdaEn(i+1, 4), col)
	}

	totalBase, totalExento, totalIva, totalRet, totalTotal := decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero
	fila := 5
	for _, c := range compras {
		rif, nombre := "", ""
		if c.Proveedor != nil {
			rif, nombre = c.Proveedor.Rif, c.Proveedor.Nombre
		}

		f.SetCellValue(hoja, celdaEn(1, fila), c.Fecha.Format("02/01/2006"))
		f.SetCellValue(hoja, celdaEn(2, fila), c.NumeroFactura)
		f.SetCellValue(hoja, celdaEn(3, fila), c.NumeroControl)
		f.SetCellValue(hoja, celdaEn(4, fila), rif)
		f.SetCellValue(hoja, celdaEn(5, fila), nombre)
		f.SetCellValue(hoja, celdaEn(6, fila), montoExcel(c.BaseImponible))
		f.SetCellValue(hoja, celdaEn(7, fila), montoExcel(c.MontoExento))
		f.SetCellValue(hoja, celdaEn(8, fila), montoExcel(c.MontoIva))
		f.SetCellValue(hoja, celdaEn(9, fila), montoExcel(c.RetencionIva))
		f.SetCellValue(hoja, celdaEn(10, fila), montoExcel(c.Total))

		totalBase = totalBase.Add(c.BaseImponible)
		totalExento = totalExento.Add(c.MontoExento)
		totalIva = totalIva.Add(c.MontoIva)
		totalRet = totalRet.Add(c.RetencionIva)
		totalTotal = totalTotal.Add(c.Total)
		fila++
	}

	f.SetCellValue(hoja, celdaEn(5, fila), "TOTALES")
	f.SetCellValue(hoja, celdaEn(6, fila), montoExcel(totalBase))
	f.SetCellValue(hoja, celdaEn(7, fila), montoExcel(totalExento))
	f.SetCellValue(hoja, celdaEn(8, fila), montoExcel(totalIva))
	f.SetCellValue(hoja, celdaEn(9, fila), montoExcel(totalRet))
	f.SetCellValue(hoja, celdaEn(10, fila), montoExcel(totalTotal))

	return f, nil
}

func encabezado(f *excelize.File, hoja, nombre, rif, titulo string) {
	f.SetCellValue(hoja, "A1", nombre)
	if rif != "" {
		f.SetCellValue(hoja, "A2", "RIF: "+rif)
	}
	f.SetCellValue(hoja, "A3", titulo)
}

func celdaEn(col, fila int) string {
	celda, _ := excelize.CoordinatesToCellName(col, fila)
	return celda
}

// montoExcel writes decimals as float cells so the sheet stays usable
// for arithmetic after export
func montoExcel(d decimal.Decimal) float64 {
	v, _ := d.Round(2).Float64()
	return v
}
