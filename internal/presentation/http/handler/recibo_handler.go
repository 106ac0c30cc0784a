package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/coopertrans/guias-api/internal/application/service"
	"github.com/coopertrans/guias-api/internal/domain/repository"
	"github.com/coopertrans/guias-api/internal/presentation/http/dto/response"
	"github.com/coopertrans/guias-api/pkg/pagination"
)

// ReciboHandler handles payment receipt HTTP requests
type ReciboHandler struct {
	reciboService *service.ReciboService
}

// NewReciboHandler creates a new receipt handler
func NewReciboHandler(reciboService *service.ReciboService) *ReciboHandler {
	return &ReciboHandler{reciboService: reciboService}
}

// Create handles receipt registration
// @Summary Create Receipt
// @Description Settle a set of pending debts of one member; the payment rows must add up exactly to the debts
// @Tags recibos
// @Security BearerAuth
// @Accept json
// @Produce json
// @Success 201 {object} response.APIResponse
// @Failure 422 {object} response.APIResponse
// @Router /recibos [post]
func (h *ReciboHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req struct {
		AsociadoID string     `json:"asociado_id" binding:"required,uuid"`
		FechaPago  *time.Time `json:"fecha_pago"`
		DeudaIDs   []string   `json:"deuda_ids" binding:"required,min=1"`
		Detalles   []struct {
			Metodo     string          `json:"metodo" binding:"required"`
			Banco      *string         `json:"banco"`
			Referencia *string         `json:"referencia"`
			Monto      decimal.Decimal `json:"monto" binding:"required"`
		} `json:"detalles" binding:"required,min=1"`
		Observacion *string `json:"observacion"`
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

	deudaIDs := make([]uuid.UUID, 0, len(req.DeudaIDs))
	for _, idStr := range req.DeudaIDs {
		id, err := uuid.Parse(idStr)
		if err != nil {
			response.BadRequest(c, "Invalid debt ID")
			return
		}
		deudaIDs = append(deudaIDs, id)
	}

	detalles := make([]service.ReciboDetalleInput, 0, len(req.Detalles))
	for _, d := range req.Detalles {
		detalles = append(detalles, service.ReciboDetalleInput{
			Metodo:     d.Metodo,
			Banco:      d.Banco,
			Referencia: d.Referencia,
			Monto:      d.Monto,
		})
	}

	input := &service.CreateReciboInput{
		AsociadoID:  asociadoID,
		UserID:      *userID,
		DeudaIDs:    deudaIDs,
		Detalles:    detalles,
		Observacion: req.Observacion,
	}
	if req.FechaPago != nil {
		input.FechaPago = *req.FechaPago
	}

	recibo, err := h.reciboService.CreateRecibo(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Recibo registrado exitosamente", gin.H{"recibo": recibo})
}

// Get handles getting a receipt by ID
// @Summary Get Receipt
// @Tags recibos
// @Security BearerAuth
// @Produce json
// @Param id path string true "Receipt ID"
// @Success 200 {object} response.APIResponse
// @Router /recibos/{id} [get]
func (h *ReciboHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid receipt ID")
		return
	}

	recibo, err := h.reciboService.GetRecibo(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Recibo obtenido exitosamente", gin.H{"recibo": recibo})
}

// GetByNumero handles getting a receipt by its document number
// @Summary Get Receipt by Number
// @Tags recibos
// @Security BearerAuth
// @Produce json
// @Param numero path string true "Receipt number"
// @Success 200 {object} response.APIResponse
// @Router /recibos/numero/{numero} [get]
func (h *ReciboHandler) GetByNumero(c *gin.Context) {
	numero := c.Param("numero")
	if numero == "" {
		response.BadRequest(c, "Receipt number is required")
		return
	}

	recibo, err := h.reciboService.GetReciboByNumero(c.Request.Context(), numero)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Recibo obtenido exitosamente", gin.H{"recibo": recibo})
}

// List handles listing receipts with filtering and pagination
// @Summary List Receipts
// @Tags recibos
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(15)
// @Param asociado_id query string false "Filter by member"
// @Success 200 {object} response.APIResponse
// @Router /recibos [get]
func (h *ReciboHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))
	params := &pagination.PaginationParams{Page: page, PerPage: perPage}
	params.Validate()

	filter := &repository.ReciboFilterParams{
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

	desde, hasta, err := parseRangoFechas(c.Query("desde"), c.Query("hasta"))
	if err != nil {
		response.BadRequest(c, "Invalid date format, expected YYYY-MM-DD")
		return
	}
	filter.Desde = desde
	filter.Hasta = hasta

	result, err := h.reciboService.ListRecibos(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Recibos obtenidos exitosamente", result)
}
