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

// GuiaHandler handles shipping guide HTTP requests
type GuiaHandler struct {
	guiaService *service.GuiaService
}

// NewGuiaHandler creates a new guide handler
func NewGuiaHandler(guiaService *service.GuiaService) *GuiaHandler {
	return &GuiaHandler{guiaService: guiaService}
}

// GuiaItemRequest represents one merchandise line of a guide request
type GuiaItemRequest struct {
	Descripcion string  `json:"descripcion" binding:"required"`
	Categoria   string  `json:"categoria"`
	Cantidad    int     `json:"cantidad" binding:"required,min=1"`
	PesoKg      float64 `json:"peso_kg" binding:"min=0"`
	LargoCm     float64 `json:"largo_cm" binding:"min=0"`
	AnchoCm     float64 `json:"ancho_cm" binding:"min=0"`
	AltoCm      float64 `json:"alto_cm" binding:"min=0"`
}

func itemInputs(items []GuiaItemRequest) []service.GuiaItemInput {
	result := make([]service.GuiaItemInput, 0, len(items))
	for _, item := range items {
		result = append(result, service.GuiaItemInput{
			Descripcion: item.Descripcion,
			Categoria:   item.Categoria,
			Cantidad:    item.Cantidad,
			PesoKg:      item.PesoKg,
			LargoCm:     item.LargoCm,
			AnchoCm:     item.AnchoCm,
			AltoCm:      item.AltoCm,
		})
	}
	return result
}

// Create handles guide creation
// @Summary Create Guide
// @Description Register a new shipping guide with its merchandise
// @Tags guias
// @Security BearerAuth
// @Accept json
// @Produce json
// @Success 201 {object} response.APIResponse
// @Router /guias [post]
func (h *GuiaHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req struct {
		FechaEmision *time.Time `json:"fecha_emision"`

		ClienteID          *string `json:"cliente_id"`
		RemitenteNombre    string  `json:"remitente_nombre" binding:"required"`
		RemitenteDocumento string  `json:"remitente_documento" binding:"required"`
		RemitenteTelefono  *string `json:"remitente_telefono"`
		DestinatarioNombre string  `json:"destinatario_nombre" binding:"required"`
		DestinatarioDoc    string  `json:"destinatario_documento" binding:"required"`
		DestinatarioTelf   *string `json:"destinatario_telefono"`

		OficinaOrigenID  string `json:"oficina_origen_id" binding:"required,uuid"`
		OficinaDestinoID string `json:"oficina_destino_id" binding:"required,uuid"`

		TipoEnvio     string `json:"tipo_envio"`
		CondicionPago string `json:"condicion_pago"`
		MetodoPago    string `json:"metodo_pago"`
		Moneda        string `json:"moneda"`

		TieneSeguro         bool            `json:"tiene_seguro"`
		PorcentajeSeguro    decimal.Decimal `json:"porcentaje_seguro"`
		TieneDescuento      bool            `json:"tiene_descuento"`
		PorcentajeDescuento decimal.Decimal `json:"porcentaje_descuento"`

		Items []GuiaItemRequest `json:"items"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.CreateGuiaInput{
		UserID:             *userID,
		RemitenteNombre:    req.RemitenteNombre,
		RemitenteDocumento: req.RemitenteDocumento,
		RemitenteTelefono:  req.RemitenteTelefono,
		DestinatarioNombre: req.DestinatarioNombre,
		DestinatarioDoc:    req.DestinatarioDoc,
		DestinatarioTelf:   req.DestinatarioTelf,

		TipoEnvio:     enum.TipoEnvio(req.TipoEnvio),
		CondicionPago: enum.CondicionPago(req.CondicionPago),
		MetodoPago:    req.MetodoPago,
		Moneda:        enum.Moneda(req.Moneda),

		TieneSeguro:         req.TieneSeguro,
		PorcentajeSeguro:    req.PorcentajeSeguro,
		TieneDescuento:      req.TieneDescuento,
		PorcentajeDescuento: req.PorcentajeDescuento,

		Items: itemInputs(req.Items),
	}

	if req.FechaEmision != nil {
		input.FechaEmision = *req.FechaEmision
	}
	if req.ClienteID != nil {
		clienteID, err := uuid.Parse(*req.ClienteID)
		if err != nil {
			response.BadRequest(c, "Invalid cliente ID")
			return
		}
		input.ClienteID = &clienteID
	}

	origenID, err := uuid.Parse(req.OficinaOrigenID)
	if err != nil {
		response.BadRequest(c, "Invalid oficina ID")
		return
	}
	destinoID, err := uuid.Parse(req.OficinaDestinoID)
	if err != nil {
		response.BadRequest(c, "Invalid oficina ID")
		return
	}
	input.OficinaOrigenID = origenID
	input.OficinaDestinoID = destinoID

	guia, err := h.guiaService.CreateGuia(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Guía registrada exitosamente", gin.H{"guia": guia})
}

// Get handles getting a guide by ID
// @Summary Get Guide
// @Tags guias
// @Security BearerAuth
// @Produce json
// @Param id path string true "Guide ID"
// @Success 200 {object} response.APIResponse
// @Router /guias/{id} [get]
func (h *GuiaHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid guide ID")
		return
	}

	guia, err := h.guiaService.GetGuia(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Guía obtenida exitosamente", gin.H{"guia": guia})
}

// GetByNumero handles getting a guide by its document number
// @Summary Get Guide by Number
// @Tags guias
// @Security BearerAuth
// @Produce json
// @Param numero path string true "Guide number"
// @Success 200 {object} response.APIResponse
// @Router /guias/numero/{numero} [get]
func (h *GuiaHandler) GetByNumero(c *gin.Context) {
	numero := c.Param("numero")
	if numero == "" {
		response.BadRequest(c, "Guide number is required")
		return
	}

	guia, err := h.guiaService.GetGuiaByNumero(c.Request.Context(), numero)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Guía obtenida exitosamente", gin.H{"guia": guia})
}

// List handles listing guides. Page-based by default; passing cursor or
// limit switches to cursor pagination.
// @Summary List Guides
// @Tags guias
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(15)
// @Param cursor query string false "Cursor for keyset pagination"
// @Param search query string false "Search query"
// @Param estado query string false "Filter by status (activa|anulada)"
// @Success 200 {object} response.APIResponse
// @Router /guias [get]
func (h *GuiaHandler) List(c *gin.Context) {
	search := c.Query("search")
	estado := parseEstadoGuia(c.Query("estado"))

	var clienteID *uuid.UUID
	if v := c.Query("cliente_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			response.BadRequest(c, "Invalid cliente ID")
			return
		}
		clienteID = &id
	}

	desde, hasta, err := parseRangoFechas(c.Query("desde"), c.Query("hasta"))
	if err != nil {
		response.BadRequest(c, "Invalid date format, expected YYYY-MM-DD")
		return
	}

	if c.Query("cursor") != "" || c.Query("limit") != "" {
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "15"))
		cursorParams := &pagination.CursorParams{
			Cursor: c.Query("cursor"),
			Limit:  limit,
		}
		cursorParams.Validate()

		result, err := h.guiaService.ListGuiasWithCursor(c.Request.Context(), &repository.GuiaCursorFilterParams{
			Cursor:    cursorParams,
			Search:    search,
			Estado:    estado,
			ClienteID: clienteID,
			Desde:     desde,
			Hasta:     hasta,
		})
		if err != nil {
			response.Error(c, err)
			return
		}

		response.OK(c, "Guías obtenidas exitosamente", result)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))
	params := &pagination.PaginationParams{Page: page, PerPage: perPage}
	params.Validate()

	filter := &repository.GuiaFilterParams{
		Pagination: params,
		Search:     search,
		Estado:     estado,
		ClienteID:  clienteID,
		Desde:      desde,
		Hasta:      hasta,
		SortBy:     c.Query("sort_by"),
		SortOrder:  c.Query("sort_order"),
	}
	if v := c.Query("oficina_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			response.BadRequest(c, "Invalid oficina ID")
			return
		}
		filter.OficinaID = &id
	}
	if v := c.Query("moneda"); v != "" {
		moneda := enum.Moneda(v)
		filter.Moneda = &moneda
	}

	result, err := h.guiaService.ListGuias(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Guías obtenidas exitosamente", result)
}

// Update handles editing an active guide
// @Summary Update Guide
// @Tags guias
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Guide ID"
// @Success 200 {object} response.APIResponse
// @Router /guias/{id} [put]
func (h *GuiaHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid guide ID")
		return
	}

	var req struct {
		ClienteID          *string `json:"cliente_id"`
		RemitenteNombre    string  `json:"remitente_nombre"`
		RemitenteDocumento string  `json:"remitente_documento"`
		RemitenteTelefono  *string `json:"remitente_telefono"`
		DestinatarioNombre string  `json:"destinatario_nombre"`
		DestinatarioDoc    string  `json:"destinatario_documento"`
		DestinatarioTelf   *string `json:"destinatario_telefono"`

		OficinaOrigenID  *string `json:"oficina_origen_id"`
		OficinaDestinoID *string `json:"oficina_destino_id"`

		TipoEnvio     *string `json:"tipo_envio"`
		CondicionPago *string `json:"condicion_pago"`
		MetodoPago    *string `json:"metodo_pago"`
		Moneda        *string `json:"moneda"`

		TieneSeguro         *bool            `json:"tiene_seguro"`
		PorcentajeSeguro    *decimal.Decimal `json:"porcentaje_seguro"`
		TieneDescuento      *bool            `json:"tiene_descuento"`
		PorcentajeDescuento *decimal.Decimal `json:"porcentaje_descuento"`

		Items []GuiaItemRequest `json:"items"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.UpdateGuiaInput{
		ID:                 id,
		RemitenteNombre:    req.RemitenteNombre,
		RemitenteDocumento: req.RemitenteDocumento,
		RemitenteTelefono:  req.RemitenteTelefono,
		DestinatarioNombre: req.DestinatarioNombre,
		DestinatarioDoc:    req.DestinatarioDoc,
		DestinatarioTelf:   req.DestinatarioTelf,

		MetodoPago: req.MetodoPago,

		TieneSeguro:         req.TieneSeguro,
		PorcentajeSeguro:    req.PorcentajeSeguro,
		TieneDescuento:      req.TieneDescuento,
		PorcentajeDescuento: req.PorcentajeDescuento,
	}

	if req.ClienteID != nil {
		clienteID, err := uuid.Parse(*req.ClienteID)
		if err != nil {
			response.BadRequest(c, "Invalid cliente ID")
			return
		}
		input.ClienteID = &clienteID
	}
	if req.OficinaOrigenID != nil {
		origenID, err := uuid.Parse(*req.OficinaOrigenID)
		if err != nil {
			response.BadRequest(c, "Invalid oficina ID")
			return
		}
		input.OficinaOrigenID = &origenID
	}
	if req.OficinaDestinoID != nil {
		destinoID, err := uuid.Parse(*req.OficinaDestinoID)
		if err != nil {
			response.BadRequest(c, "Invalid oficina ID")
			return
		}
		input.OficinaDestinoID = &destinoID
	}
	if req.TipoEnvio != nil {
		tipo := enum.TipoEnvio(*req.TipoEnvio)
		input.TipoEnvio = &tipo
	}
	if req.CondicionPago != nil {
		condicion := enum.CondicionPago(*req.CondicionPago)
		input.CondicionPago = &condicion
	}
	if req.Moneda != nil {
		moneda := enum.Moneda(*req.Moneda)
		input.Moneda = &moneda
	}
	if req.Items != nil {
		input.Items = itemInputs(req.Items)
	}

	guia, err := h.guiaService.UpdateGuia(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Guía actualizada exitosamente", gin.H{"guia": guia})
}

// Anular handles voiding a guide
// @Summary Annul Guide
// @Description Void a guide; it keeps its number but drops out of reports
// @Tags guias
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Guide ID"
// @Success 200 {object} response.APIResponse
// @Router /guias/{id}/anular [post]
func (h *GuiaHandler) Anular(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid guide ID")
		return
	}

	var req struct {
		Motivo string `json:"motivo"`
	}
	_ = c.ShouldBindJSON(&req)

	guia, err := h.guiaService.AnularGuia(c.Request.Context(), id, req.Motivo)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Guía anulada exitosamente", gin.H{"guia": guia})
}

// Cotizar handles computing a quotation without persisting a guide
// @Summary Quote Shipment
// @Description Compute the financial breakdown a guide would have
// @Tags guias
// @Security BearerAuth
// @Accept json
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /guias/cotizar [post]
func (h *GuiaHandler) Cotizar(c *gin.Context) {
	var req struct {
		Moneda              string            `json:"moneda"`
		TieneSeguro         bool              `json:"tiene_seguro"`
		PorcentajeSeguro    decimal.Decimal   `json:"porcentaje_seguro"`
		TieneDescuento      bool              `json:"tiene_descuento"`
		PorcentajeDescuento decimal.Decimal   `json:"porcentaje_descuento"`
		Items               []GuiaItemRequest `json:"items"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	fin, err := h.guiaService.Cotizar(c.Request.Context(), &service.CotizarInput{
		Moneda:              enum.Moneda(req.Moneda),
		TieneSeguro:         req.TieneSeguro,
		PorcentajeSeguro:    req.PorcentajeSeguro,
		TieneDescuento:      req.TieneDescuento,
		PorcentajeDescuento: req.PorcentajeDescuento,
		Items:               itemInputs(req.Items),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Cotización calculada exitosamente", gin.H{"cotizacion": fin})
}

func parseEstadoGuia(v string) *enum.EstadoGuia {
	switch v {
	case "activa":
		estado := enum.EstadoGuiaActiva
		return &estado
	case "anulada":
		estado := enum.EstadoGuiaAnulada
		return &estado
	}
	return nil
}

func parseRangoFechas(desdeStr, hastaStr string) (*time.Time, *time.Time, error) {
	var desde, hasta *time.Time
	if desdeStr != "" {
		t, err := time.Parse("2006-01-02", desdeStr)
		if err != nil {
			return nil, nil, err
		}
		desde = &t
	}
	if hastaStr != "" {
		t, err := time.Parse("2006-01-02", hastaStr)
		if err != nil {
			return nil, nil, err
		}
		// Include the whole end day
		t = t.Add(24*time.Hour - time.Nanosecond)
		hasta = &t
	}
	return desde, hasta, nil
}
