package handler

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"github.com/coopertrans/guias-api/internal/application/service"
	"github.com/coopertrans/guias-api/internal/presentation/http/dto/response"
)

// ReporteHandler handles dashboard and ledger HTTP requests
type ReporteHandler struct {
	reporteService *service.ReporteService
}

// NewReporteHandler creates a new reporting handler
func NewReporteHandler(reporteService *service.ReporteService) *ReporteHandler {
	return &ReporteHandler{reporteService: reporteService}
}

// Dashboard handles the landing dashboard figures
// @Summary Dashboard
// @Tags reportes
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /reportes/dashboard [get]
func (h *ReporteHandler) Dashboard(c *gin.Context) {
	resumen, err := h.reporteService.GetDashboard(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Resumen obtenido exitosamente", gin.H{"resumen": resumen})
}

// FacturacionDiaria handles per-day invoicing for the last N days
// @Summary Daily Invoicing
// @Tags reportes
// @Security BearerAuth
// @Produce json
// @Param dias query int false "Days to include" default(30)
// @Success 200 {object} response.APIResponse
// @Router /reportes/facturacion-diaria [get]
func (h *ReporteHandler) FacturacionDiaria(c *gin.Context) {
	dias, _ := strconv.Atoi(c.DefaultQuery("dias", "30"))

	series, err := h.reporteService.GetFacturacionDiaria(c.Request.Context(), dias)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Facturación diaria obtenida exitosamente", gin.H{"serie": series})
}

// TopClientes handles ranking clients by invoiced amount inside a period
// @Summary Top Clients
// @Tags reportes
// @Security BearerAuth
// @Produce json
// @Param desde query string true "Start date (YYYY-MM-DD)"
// @Param hasta query string true "End date (YYYY-MM-DD)"
// @Param limit query int false "Rows to return" default(10)
// @Success 200 {object} response.APIResponse
// @Router /reportes/top-clientes [get]
func (h *ReporteHandler) TopClientes(c *gin.Context) {
	desde, hasta, err := parsePeriodo(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	top, err := h.reporteService.GetTopClientes(c.Request.Context(), desde, hasta, limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Ranking de clientes obtenido exitosamente", gin.H{"clientes": top})
}

// TopDeudores handles ranking members by pending debt
// @Summary Top Debtors
// @Tags reportes
// @Security BearerAuth
// @Produce json
// @Param limit query int false "Rows to return" default(10)
// @Success 200 {object} response.APIResponse
// @Router /reportes/top-deudores [get]
func (h *ReporteHandler) TopDeudores(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	deudores, err := h.reporteService.GetTopDeudores(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Ranking de deudores obtenido exitosamente", gin.H{"deudores": deudores})
}

// LibroVentas handles downloading the SENIAT sales ledger as xlsx
// @Summary Sales Ledger
// @Tags reportes
// @Security BearerAuth
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param desde query string true "Start date (YYYY-MM-DD)"
// @Param hasta query string true "End date (YYYY-MM-DD)"
// @Success 200 {file} file
// @Router /reportes/libro-ventas [get]
func (h *ReporteHandler) LibroVentas(c *gin.Context) {
	desde, hasta, err := parsePeriodo(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	f, err := h.reporteService.LibroVentas(c.Request.Context(), desde, hasta)
	if err != nil {
		response.Error(c, err)
		return
	}

	escribirExcel(c, f, fmt.Sprintf("libro-ventas-%s.xlsx", desde.Format("2006-01")))
}

// LibroCompras handles downloading the SENIAT purchases ledger as xlsx
// @Summary Purchases Ledger
// @Tags reportes
// @Security BearerAuth
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param desde query string true "Start date (YYYY-MM-DD)"
// @Param hasta query string true "End date (YYYY-MM-DD)"
// @Success 200 {file} file
// @Router /reportes/libro-compras [get]
func (h *ReporteHandler) LibroCompras(c *gin.Context) {
	desde, hasta, err := parsePeriodo(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	f, err := h.reporteService.LibroCompras(c.Request.Context(), desde, hasta)
	if err != nil {
		response.Error(c, err)
		return
	}

	escribirExcel(c, f, fmt.Sprintf("libro-compras-%s.xlsx", desde.Format("2006-01")))
}

// parsePeriodo reads the mandatory desde/hasta query parameters. The end
// date is extended to cover its whole day.
func parsePeriodo(c *gin.Context) (time.Time, time.Time, error) {
	desde, err := time.Parse("2006-01-02", c.Query("desde"))
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid desde date, expected YYYY-MM-DD")
	}
	hasta, err := time.Parse("2006-01-02", c.Query("hasta"))
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid hasta date, expected YYYY-MM-DD")
	}
	hasta = hasta.Add(24*time.Hour - time.Nanosecond)
	return desde, hasta, nil
}

func escribirExcel(c *gin.Context, f *excelize.File, filename string) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	if err := f.Write(c.Writer); err != nil {
		response.Error(c, err)
	}
}
