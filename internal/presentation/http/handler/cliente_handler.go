package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/coopertrans/guias-api/internal/application/service"
	"github.com/coopertrans/guias-api/internal/presentation/http/dto/response"
	"github.com/coopertrans/guias-api/pkg/pagination"
)

// ClienteHandler handles registered client HTTP requests
type ClienteHandler struct {
	clienteService *service.ClienteService
}

// NewClienteHandler creates a new client handler
func NewClienteHandler(clienteService *service.ClienteService) *ClienteHandler {
	return &ClienteHandler{clienteService: clienteService}
}

// Create handles client creation
// @Summary Create Client
// @Tags clientes
// @Security BearerAuth
// @Accept json
// @Produce json
// @Success 201 {object} response.APIResponse
// @Router /clientes [post]
func (h *ClienteHandler) Create(c *gin.Context) {
	var req struct {
		TipoDocumento   string  `json:"tipo_documento" binding:"required"`
		NumeroDocumento string  `json:"numero_documento" binding:"required"`
		Nombre          string  `json:"nombre" binding:"required"`
		Telefono        *string `json:"telefono"`
		Email           *string `json:"email"`
		Direccion       *string `json:"direccion"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	cliente, err := h.clienteService.CreateCliente(c.Request.Context(), &service.CreateClienteInput{
		TipoDocumento:   req.TipoDocumento,
		NumeroDocumento: req.NumeroDocumento,
		Nombre:          req.Nombre,
		Telefono:        req.Telefono,
		Email:           req.Email,
		Direccion:       req.Direccion,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Cliente registrado exitosamente", gin.H{"cliente": cliente})
}

// Get handles getting a client by ID
// @Summary Get Client
// @Tags clientes
// @Security BearerAuth
// @Produce json
// @Param id path string true "Client ID"
// @Success 200 {object} response.APIResponse
// @Router /clientes/{id} [get]
func (h *ClienteHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid client ID")
		return
	}

	cliente, err := h.clienteService.GetCliente(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Cliente obtenido exitosamente", gin.H{"cliente": cliente})
}

// Buscar handles looking a client up by document, used to prefill the
// sender of a new guide
// @Summary Find Client by Document
// @Tags clientes
// @Security BearerAuth
// @Produce json
// @Param tipo query string true "Document type"
// @Param numero query string true "Document number"
// @Success 200 {object} response.APIResponse
// @Router /clientes/buscar [get]
func (h *ClienteHandler) Buscar(c *gin.Context) {
	tipo := c.Query("tipo")
	numero := c.Query("numero")
	if tipo == "" || numero == "" {
		response.BadRequest(c, "tipo and numero query parameters are required")
		return
	}

	cliente, err := h.clienteService.BuscarPorDocumento(c.Request.Context(), tipo, numero)
	if err != nil {
		response.Error(c, err)
		return
	}
	if cliente == nil {
		response.NotFound(c, "Cliente no encontrado")
		return
	}

	response.OK(c, "Cliente obtenido exitosamente", gin.H{"cliente": cliente})
}

// List handles listing clients. Page-based by default; passing cursor or
// limit switches to cursor pagination.
// @Summary List Clients
// @Tags clientes
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(15)
// @Param search query string false "Search query"
// @Success 200 {object} response.APIResponse
// @Router /clientes [get]
func (h *ClienteHandler) List(c *gin.Context) {
	search := c.Query("search")

	if c.Query("cursor") != "" || c.Query("limit") != "" {
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "15"))
		params := &pagination.CursorParams{
			Cursor: c.Query("cursor"),
			Limit:  limit,
		}
		params.Validate()

		result, err := h.clienteService.ListClientesWithCursor(c.Request.Context(), params, search)
		if err != nil {
			response.Error(c, err)
			return
		}

		response.OK(c, "Clientes obtenidos exitosamente", result)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))
	params := &pagination.PaginationParams{Page: page, PerPage: perPage}
	params.Validate()

	result, err := h.clienteService.ListClientes(c.Request.Context(), params, search)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Clientes obtenidos exitosamente", result)
}

// Update handles updating a client
// @Summary Update Client
// @Tags clientes
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Client ID"
// @Success 200 {object} response.APIResponse
// @Router /clientes/{id} [put]
func (h *ClienteHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid client ID")
		return
	}

	var req struct {
		Nombre    string  `json:"nombre"`
		Telefono  *string `json:"telefono"`
		Email     *string `json:"email"`
		Direccion *string `json:"direccion"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	cliente, err := h.clienteService.UpdateCliente(c.Request.Context(), &service.UpdateClienteInput{
		ID:        id,
		Nombre:    req.Nombre,
		Telefono:  req.Telefono,
		Email:     req.Email,
		Direccion: req.Direccion,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Cliente actualizado exitosamente", gin.H{"cliente": cliente})
}

// Delete handles deleting a client
// @Summary Delete Client
// @Tags clientes
// @Security BearerAuth
// @Param id path string true "Client ID"
// @Success 200 {object} response.APIResponse
// @Router /clientes/{id} [delete]
func (h *ClienteHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid client ID")
		return
	}

	if err := h.clienteService.DeleteCliente(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Cliente eliminado exitosamente", nil)
}
