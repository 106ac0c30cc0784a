package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/coopertrans/guias-api/internal/application/service"
	"github.com/coopertrans/guias-api/internal/domain/enum"
	"github.com/coopertrans/guias-api/internal/domain/repository"
	"github.com/coopertrans/guias-api/internal/presentation/http/dto/response"
	"github.com/coopertrans/guias-api/pkg/pagination"
)

// DeudaHandler handles member debt HTTP requests
type DeudaHandler struct {
	deudaService *service.DeudaService
}

// NewDeudaHandler creates a new debt handler
func NewDeudaHandler(deudaService *service.DeudaService) *DeudaHandler {
	return &DeudaHandler{deudaService: deudaService}
}

// Create handles manual debt creation
// @Summary Create Debt
// @Tags deudas
// @Security BearerAuth
// @Accept json
// @Produce json
// @Success 201 {object} response.APIResponse
// @Router /deudas [post]
func (h *DeudaHandler) Create(c *gin.Context) {
	var req struct {
		AsociadoID       string           `json:"asociado_id" binding:"required,uuid"`
		Concepto         string           `json:"concepto" binding:"required"`
		MontoBs          decimal.Decimal  `json:"monto_bs" binding:"required"`
		MontoUSD         *decimal.Decimal `json:"monto_usd"`
		FechaVencimiento time.Time        `json:"fecha_vencimiento" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	asociadoID, err := uuid.Parse(req.AsociadoID)
	if err != nil {
		response.BadRequest(c, "Invalid member ID")
		return
	}

	deuda, err := h.deudaService.CreateDeuda(c.Request.Context(), &service.CreateDeudaInput{
		AsociadoID:       asociadoID,
		Concepto:         req.Concepto,
		MontoBs:          req.MontoBs,
		MontoUSD:         req.MontoUSD,
		FechaVencimiento: req.FechaVencimiento,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Deuda registrada exitosamente", gin.H{"deuda": deuda})
}

// Get handles getting a debt by ID
// @Summary Get Debt
// @Tags deudas
// @Security BearerAuth
// @Produce json
// @Param id path string true "Debt ID"
// @Success 200 {object} response.APIResponse
// @Router /deudas/{id} [get]
func (h *DeudaHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid debt ID")
		return
	}

	deuda, err := h.deudaService.GetDeuda(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Deuda obtenida exitosamente", gin.H{"deuda": deuda})
}

// List handles listing debts with filtering and pagination
// @Summary List Debts
// @Tags deudas
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(15)
// @Param asociado_id query string false "Filter by member"
// @Param estado query string false "Filter by status (Pendiente|Pagado)"
// @Param origen query string false "Filter by origin (manual|masiva|produccion)"
// @Success 200 {object} response.APIResponse
// @Router /deudas [get]
func (h *DeudaHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))
	params := &pagination.PaginationParams{Page: page, PerPage: perPage}
	params.Validate()

	filter := &repository.DeudaFilterParams{
		Pagination: params,
		Search:     c.Query("search"),
	}

	if v := c.Query("asociado_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			response.BadRequest(c, "Invalid member ID")
			return
		}
		filter.AsociadoID = &id
	}
	if v := c.Query("estado"); v != "" {
		estado := enum.EstadoDeuda(v)
		filter.Estado = &estado
	}
	if v := c.Query("origen"); v != "" {
		origen := enum.OrigenDeuda(v)
		filter.Origen = &origen
	}

	desde, hasta, err := parseRangoFechas(c.Query("desde"), c.Query("hasta"))
	if err != nil {
		response.BadRequest(c, "Invalid date format, expected YYYY-MM-DD")
		return
	}
	filter.Desde = desde
	filter.Hasta = hasta

	result, err := h.deudaService.ListDeudas(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Deudas obtenidas exitosamente", result)
}

// Update handles editing a pending debt
// @Summary Update Debt
// @Tags deudas
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Debt ID"
// @Success 200 {object} response.APIResponse
// @Router /deudas/{id} [put]
func (h *DeudaHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid debt ID")
		return
	}

	var req struct {
		Concepto         string           `json:"concepto"`
		MontoBs          *decimal.Decimal `json:"monto_bs"`
		MontoUSD         *decimal.Decimal `json:"monto_usd"`
		FechaVencimiento *time.Time       `json:"fecha_vencimiento"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	deuda, err := h.deudaService.UpdateDeuda(c.Request.Context(), &service.UpdateDeudaInput{
		ID:               id,
		Concepto:         req.Concepto,
		MontoBs:          req.MontoBs,
		MontoUSD:         req.MontoUSD,
		FechaVencimiento: req.FechaVencimiento,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Deuda actualizada exitosamente", gin.H{"deuda": deuda})
}

// Delete handles removing a pending debt
// @Summary Delete Debt
// @Tags deudas
// @Security BearerAuth
// @Param id path string true "Debt ID"
// @Success 200 {object} response.APIResponse
// @Router /deudas/{id} [delete]
func (h *DeudaHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid debt ID")
		return
	}

	if err := h.deudaService.DeleteDeuda(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Deuda eliminada exitosamente", nil)
}

// GenerarMasiva handles charging the same debt to every member in one batch
// @Summary Generate Mass Debt
// @Description Charge the same debt to every member, or to every active member
// @Tags deudas
// @Security BearerAuth
// @Accept json
// @Produce json
// @Success 201 {object} response.APIResponse
// @Router /deudas/generar-masiva [post]
func (h *DeudaHandler) GenerarMasiva(c *gin.Context) {
	var req struct {
		Concepto         string          `json:"concepto" binding:"required"`
		MontoBs          decimal.Decimal `json:"monto_bs" binding:"required"`
		FechaVencimiento time.Time       `json:"fecha_vencimiento" binding:"required"`
		SoloActivos      bool            `json:"solo_activos"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	deudas, err := h.deudaService.GenerarMasiva(c.Request.Context(), &service.GenerarMasivaInput{
		Concepto:         req.Concepto,
		MontoBs:          req.MontoBs,
		FechaVencimiento: req.FechaVencimiento,
		SoloActivos:      req.SoloActivos,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Deudas generadas exitosamente", gin.H{
		"deudas":    deudas,
		"generadas": len(deudas),
	})
}

// GenerarProduccion handles production-based debt generation
// @Summary Generate Production Debt
// @Description Charge each active member its production debt for a period
// @Tags deudas
// @Security BearerAuth
// @Accept json
// @Produce json
// @Success 201 {object} response.APIResponse
// @Router /deudas/generar-produccion [post]
func (h *DeudaHandler) GenerarProduccion(c *gin.Context) {
	var req struct {
		Tipo             string    `json:"tipo" binding:"required,oneof=pasajero carga"`
		Concepto         string    `json:"concepto" binding:"required"`
		FechaVencimiento time.Time `json:"fecha_vencimiento" binding:"required"`
		Desde            time.Time `json:"desde"`
		Hasta            time.Time `json:"hasta"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	deudas, err := h.deudaService.GenerarProduccion(c.Request.Context(), &service.GenerarProduccionInput{
		Tipo:             enum.TipoProduccion(req.Tipo),
		Concepto:         req.Concepto,
		FechaVencimiento: req.FechaVencimiento,
		Desde:            req.Desde,
		Hasta:            req.Hasta,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Deudas de producción generadas exitosamente", gin.H{
		"deudas":    deudas,
		"generadas": len(deudas),
	})
}
