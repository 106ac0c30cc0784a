package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/coopertrans/guias-api/internal/application/service"
	"github.com/coopertrans/guias-api/internal/presentation/http/dto/response"
)

// OficinaHandler handles branch office HTTP requests
type OficinaHandler struct {
	oficinaService *service.OficinaService
}

// NewOficinaHandler creates a new office handler
func NewOficinaHandler(oficinaService *service.OficinaService) *OficinaHandler {
	return &OficinaHandler{oficinaService: oficinaService}
}

// Create handles office creation
// @Summary Create Office
// @Tags oficinas
// @Security BearerAuth
// @Accept json
// @Produce json
// @Success 201 {object} response.APIResponse
// @Router /oficinas [post]
func (h *OficinaHandler) Create(c *gin.Context) {
	var req struct {
		Codigo    string  `json:"codigo" binding:"required"`
		Nombre    string  `json:"nombre" binding:"required"`
		Ciudad    string  `json:"ciudad" binding:"required"`
		Direccion *string `json:"direccion"`
		Telefono  *string `json:"telefono"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	oficina, err := h.oficinaService.CreateOficina(c.Request.Context(), &service.CreateOficinaInput{
		Codigo:    req.Codigo,
		Nombre:    req.Nombre,
		Ciudad:    req.Ciudad,
		Direccion: req.Direccion,
		Telefono:  req.Telefono,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Oficina registrada exitosamente", gin.H{"oficina": oficina})
}

// Get handles getting an office by ID
// @Summary Get Office
// @Tags oficinas
// @Security BearerAuth
// @Produce json
// @Param id path string true "Office ID"
// @Success 200 {object} response.APIResponse
// @Router /oficinas/{id} [get]
func (h *OficinaHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid office ID")
		return
	}

	oficina, err := h.oficinaService.GetOficina(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Oficina obtenida exitosamente", gin.H{"oficina": oficina})
}

// List handles listing all offices
// @Summary List Offices
// @Tags oficinas
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /oficinas [get]
func (h *OficinaHandler) List(c *gin.Context) {
	oficinas, err := h.oficinaService.ListOficinas(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Oficinas obtenidas exitosamente", gin.H{"oficinas": oficinas})
}

// Update handles updating an office. The office code is immutable.
// @Summary Update Office
// @Tags oficinas
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Office ID"
// @Success 200 {object} response.APIResponse
// @Router /oficinas/{id} [put]
func (h *OficinaHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid office ID")
		return
	}

	var req struct {
		Nombre    string  `json:"nombre"`
		Ciudad    string  `json:"ciudad"`
		Direccion *string `json:"direccion"`
		Telefono  *string `json:"telefono"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	oficina, err := h.oficinaService.UpdateOficina(c.Request.Context(), &service.UpdateOficinaInput{
		ID:        id,
		Nombre:    req.Nombre,
		Ciudad:    req.Ciudad,
		Direccion: req.Direccion,
		Telefono:  req.Telefono,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Oficina actualizada exitosamente", gin.H{"oficina": oficina})
}

// Delete handles deleting an office
// @Summary Delete Office
// @Tags oficinas
// @Security BearerAuth
// @Param id path string true "Office ID"
// @Success 200 {object} response.APIResponse
// @Router /oficinas/{id} [delete]
func (h *OficinaHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid office ID")
		return
	}

	if err := h.oficinaService.DeleteOficina(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Oficina eliminada exitosamente", nil)
}
