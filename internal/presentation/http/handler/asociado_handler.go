package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/coopertrans/guias-api/internal/application/service"
	"github.com/coopertrans/guias-api/internal/presentation/http/dto/response"
	"github.com/coopertrans/guias-api/pkg/pagination"
)

// AsociadoHandler handles cooperative member HTTP requests
type AsociadoHandler struct {
	asociadoService *service.AsociadoService
}

// NewAsociadoHandler creates a new member handler
func NewAsociadoHandler(asociadoService *service.AsociadoService) *AsociadoHandler {
	return &AsociadoHandler{asociadoService: asociadoService}
}

// Create handles member creation
// @Summary Create Member
// @Tags asociados
// @Security BearerAuth
// @Accept json
// @Produce json
// @Success 201 {object} response.APIResponse
// @Router /asociados [post]
func (h *AsociadoHandler) Create(c *gin.Context) {
	var req struct {
		CodigoSocio  string     `json:"codigo_socio" binding:"required"`
		Cedula       string     `json:"cedula" binding:"required"`
		Nombre       string     `json:"nombre" binding:"required"`
		Telefono     *string    `json:"telefono"`
		Email        *string    `json:"email"`
		Direccion    *string    `json:"direccion"`
		Placa        *string    `json:"placa"`
		FechaIngreso *time.Time `json:"fecha_ingreso"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	asociado, err := h.asociadoService.CreateAsociado(c.Request.Context(), &service.CreateAsociadoInput{
		CodigoSocio:  req.CodigoSocio,
		Cedula:       req.Cedula,
		Nombre:       req.Nombre,
		Telefono:     req.Telefono,
		Email:        req.Email,
		Direccion:    req.Direccion,
		Placa:        req.Placa,
		FechaIngreso: req.FechaIngreso,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Asociado registrado exitosamente", gin.H{"asociado": asociado})
}

// Get handles getting a member by ID
// @Summary Get Member
// @Tags asociados
// @Security BearerAuth
// @Produce json
// @Param id path string true "Member ID"
// @Success 200 {object} response.APIResponse
// @Router /asociados/{id} [get]
func (h *AsociadoHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid member ID")
		return
	}

	asociado, err := h.asociadoService.GetAsociado(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Asociado obtenido exitosamente", gin.H{"asociado": asociado})
}

// List handles listing members with pagination
// @Summary List Members
// @Tags asociados
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(15)
// @Param search query string false "Search query"
// @Param activos query bool false "Only active members"
// @Success 200 {object} response.APIResponse
// @Router /asociados [get]
func (h *AsociadoHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))
	soloActivos := c.Query("activos") == "true"

	params := &pagination.PaginationParams{Page: page, PerPage: perPage}
	params.Validate()

	result, err := h.asociadoService.ListAsociados(c.Request.Context(), params, c.Query("search"), soloActivos)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Asociados obtenidos exitosamente", result)
}

// Update handles updating a member
// @Summary Update Member
// @Description Update member data; the member code and cédula are immutable
// @Tags asociados
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Member ID"
// @Success 200 {object} response.APIResponse
// @Router /asociados/{id} [put]
func (h *AsociadoHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid member ID")
		return
	}

	var req struct {
		Nombre       string     `json:"nombre"`
		Telefono     *string    `json:"telefono"`
		Email        *string    `json:"email"`
		Direccion    *string    `json:"direccion"`
		Placa        *string    `json:"placa"`
		Activo       *bool      `json:"activo"`
		FechaIngreso *time.Time `json:"fecha_ingreso"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	asociado, err := h.asociadoService.UpdateAsociado(c.Request.Context(), &service.UpdateAsociadoInput{
		ID:           id,
		Nombre:       req.Nombre,
		Telefono:     req.Telefono,
		Email:        req.Email,
		Direccion:    req.Direccion,
		Placa:        req.Placa,
		Activo:       req.Activo,
		FechaIngreso: req.FechaIngreso,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Asociado actualizado exitosamente", gin.H{"asociado": asociado})
}

// Delete handles removing a member. Members with history are deactivated
// instead of deleted.
// @Summary Delete Member
// @Tags asociados
// @Security BearerAuth
// @Param id path string true "Member ID"
// @Success 200 {object} response.APIResponse
// @Router /asociados/{id} [delete]
func (h *AsociadoHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid member ID")
		return
	}

	if err := h.asociadoService.DeleteAsociado(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Asociado eliminado exitosamente", nil)
}

// EstadoCuenta handles the reconciled account statement of a member
// @Summary Member Account Statement
// @Description Merge the member's debts and receipts into one chronological statement
// @Tags asociados
// @Security BearerAuth
// @Produce json
// @Param id path string true "Member ID"
// @Param desde query string false "Start date (YYYY-MM-DD)"
// @Param hasta query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} response.APIResponse
// @Router /asociados/{id}/estado-de-cuenta [get]
func (h *AsociadoHandler) EstadoCuenta(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid member ID")
		return
	}

	desde, hasta, err := parseRangoFechas(c.Query("desde"), c.Query("hasta"))
	if err != nil {
		response.BadRequest(c, "Invalid date format, expected YYYY-MM-DD")
		return
	}

	estado, err := h.asociadoService.GetEstadoCuenta(c.Request.Context(), id, desde, hasta)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Estado de cuenta obtenido exitosamente", gin.H{"estado_cuenta": estado})
}
