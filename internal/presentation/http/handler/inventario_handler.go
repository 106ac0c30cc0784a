package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/coopertrans/guias-api/internal/application/service"
	"github.com/coopertrans/guias-api/internal/presentation/http/dto/response"
	"github.com/coopertrans/guias-api/pkg/pagination"
)

// InventarioHandler handles supply inventory and fixed asset HTTP requests
type InventarioHandler struct {
	inventarioService *service.InventarioService
}

// NewInventarioHandler creates a new inventory handler
func NewInventarioHandler(inventarioService *service.InventarioService) *InventarioHandler {
	return &InventarioHandler{inventarioService: inventarioService}
}

// CreateItem handles inventory item creation
// @Summary Create Inventory Item
// @Tags inventario
// @Security BearerAuth
// @Accept json
// @Produce json
// @Success 201 {object} response.APIResponse
// @Router /inventario [post]
func (h *InventarioHandler) CreateItem(c *gin.Context) {
	var req struct {
		Codigo        string          `json:"codigo" binding:"required"`
		Nombre        string          `json:"nombre" binding:"required"`
		Descripcion   *string         `json:"descripcion"`
		Cantidad      int             `json:"cantidad"`
		CostoUnitario decimal.Decimal `json:"costo_unitario"`
		OficinaID     *string         `json:"oficina_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.CreateItemInput{
		Codigo:        req.Codigo,
		Nombre:        req.Nombre,
		Descripcion:   req.Descripcion,
		Cantidad:      req.Cantidad,
		CostoUnitario: req.CostoUnitario,
	}
	if req.OficinaID != nil {
		oficinaID, err := uuid.Parse(*req.OficinaID)
		if err != nil {
			response.BadRequest(c, "Invalid oficina ID")
			return
		}
		input.OficinaID = &oficinaID
	}

	item, err := h.inventarioService.CreateItem(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Artículo registrado exitosamente", gin.H{"item": item})
}

// GetItem handles getting an inventory item by ID
// @Summary Get Inventory Item
// @Tags inventario
// @Security BearerAuth
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} response.APIResponse
// @Router /inventario/{id} [get]
func (h *InventarioHandler) GetItem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid item ID")
		return
	}

	item, err := h.inventarioService.GetItem(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Artículo obtenido exitosamente", gin.H{"item": item})
}

// ListItems handles listing inventory items with pagination
// @Summary List Inventory Items
// @Tags inventario
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(15)
// @Param search query string false "Search query"
// @Success 200 {object} response.APIResponse
// @Router /inventario [get]
func (h *InventarioHandler) ListItems(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))
	params := &pagination.PaginationParams{Page: page, PerPage: perPage}
	params.Validate()

	result, err := h.inventarioService.ListItems(c.Request.Context(), params, c.Query("search"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Artículos obtenidos exitosamente", result)
}

// UpdateItem handles updating an inventory item's master data
// @Summary Update Inventory Item
// @Description Update master data; stock moves only through the adjustment endpoint
// @Tags inventario
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} response.APIResponse
// @Router /inventario/{id} [put]
func (h *InventarioHandler) UpdateItem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid item ID")
		return
	}

	var req struct {
		Nombre        string           `json:"nombre"`
		Descripcion   *string          `json:"descripcion"`
		CostoUnitario *decimal.Decimal `json:"costo_unitario"`
		OficinaID     *string          `json:"oficina_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.UpdateItemInput{
		ID:            id,
		Nombre:        req.Nombre,
		Descripcion:   req.Descripcion,
		CostoUnitario: req.CostoUnitario,
	}
	if req.OficinaID != nil {
		oficinaID, err := uuid.Parse(*req.OficinaID)
		if err != nil {
			response.BadRequest(c, "Invalid oficina ID")
			return
		}
		input.OficinaID = &oficinaID
	}

	item, err := h.inventarioService.UpdateItem(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Artículo actualizado exitosamente", gin.H{"item": item})
}

// AjustarStock handles applying a signed stock adjustment
// @Summary Adjust Stock
// @Description Apply a signed stock adjustment; stock can never go below zero
// @Tags inventario
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} response.APIResponse
// @Router /inventario/{id}/ajustar [post]
func (h *InventarioHandler) AjustarStock(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid item ID")
		return
	}

	var req struct {
		Delta  int    `json:"delta" binding:"required"`
		Motivo string `json:"motivo"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	item, err := h.inventarioService.AjustarStock(c.Request.Context(), id, req.Delta, req.Motivo)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Existencia ajustada exitosamente", gin.H{"item": item})
}

// DeleteItem handles deleting an inventory item
// @Summary Delete Inventory Item
// @Tags inventario
// @Security BearerAuth
// @Param id path string true "Item ID"
// @Success 200 {object} response.APIResponse
// @Router /inventario/{id} [delete]
func (h *InventarioHandler) DeleteItem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid item ID")
		return
	}

	if err := h.inventarioService.DeleteItem(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Artículo eliminado exitosamente", nil)
}

// CreateActivo handles fixed asset creation
// @Summary Create Fixed Asset
// @Tags activos
// @Security BearerAuth
// @Accept json
// @Produce json
// @Success 201 {object} response.APIResponse
// @Router /activos [post]
func (h *InventarioHandler) CreateActivo(c *gin.Context) {
	var req struct {
		Codigo           string          `json:"codigo" binding:"required"`
		Nombre           string          `json:"nombre" binding:"required"`
		Descripcion      *string         `json:"descripcion"`
		FechaAdquisicion *time.Time      `json:"fecha_adquisicion"`
		ValorAdquisicion decimal.Decimal `json:"valor_adquisicion"`
		VidaUtilMeses    int             `json:"vida_util_meses"`
		OficinaID        *string         `json:"oficina_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.CreateActivoInput{
		Codigo:           req.Codigo,
		Nombre:           req.Nombre,
		Descripcion:      req.Descripcion,
		FechaAdquisicion: req.FechaAdquisicion,
		ValorAdquisicion: req.ValorAdquisicion,
		VidaUtilMeses:    req.VidaUtilMeses,
	}
	if req.OficinaID != nil {
		oficinaID, err := uuid.Parse(*req.OficinaID)
		if err != nil {
			response.BadRequest(c, "Invalid oficina ID")
			return
		}
		input.OficinaID = &oficinaID
	}

	activo, err := h.inventarioService.CreateActivo(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Activo registrado exitosamente", gin.H{"activo": activo})
}

// GetActivo handles getting a fixed asset by ID
// @Summary Get Fixed Asset
// @Tags activos
// @Security BearerAuth
// @Produce json
// @Param id path string true "Asset ID"
// @Success 200 {object} response.APIResponse
// @Router /activos/{id} [get]
func (h *InventarioHandler) GetActivo(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid asset ID")
		return
	}

	activo, err := h.inventarioService.GetActivo(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Activo obtenido exitosamente", gin.H{"activo": activo})
}

// ListActivos handles listing fixed assets with pagination
// @Summary List Fixed Assets
// @Tags activos
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(15)
// @Param search query string false "Search query"
// @Success 200 {object} response.APIResponse
// @Router /activos [get]
func (h *InventarioHandler) ListActivos(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))
	params := &pagination.PaginationParams{Page: page, PerPage: perPage}
	params.Validate()

	result, err := h.inventarioService.ListActivos(c.Request.Context(), params, c.Query("search"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Activos obtenidos exitosamente", result)
}

// UpdateActivo handles updating a fixed asset
// @Summary Update Fixed Asset
// @Tags activos
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Asset ID"
// @Success 200 {object} response.APIResponse
// @Router /activos/{id} [put]
func (h *InventarioHandler) UpdateActivo(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid asset ID")
		return
	}

	var req struct {
		Nombre           string           `json:"nombre"`
		Descripcion      *string          `json:"descripcion"`
		FechaAdquisicion *time.Time       `json:"fecha_adquisicion"`
		ValorAdquisicion *decimal.Decimal `json:"valor_adquisicion"`
		VidaUtilMeses    *int             `json:"vida_util_meses"`
		Estado           string           `json:"estado"`
		OficinaID        *string          `json:"oficina_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.UpdateActivoInput{
		ID:               id,
		Nombre:           req.Nombre,
		Descripcion:      req.Descripcion,
		FechaAdquisicion: req.FechaAdquisicion,
		ValorAdquisicion: req.ValorAdquisicion,
		VidaUtilMeses:    req.VidaUtilMeses,
		Estado:           req.Estado,
	}
	if req.OficinaID != nil {
		oficinaID, err := uuid.Parse(*req.OficinaID)
		if err != nil {
			response.BadRequest(c, "Invalid oficina ID")
			return
		}
		input.OficinaID = &oficinaID
	}

	activo, err := h.inventarioService.UpdateActivo(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Activo actualizado exitosamente", gin.H{"activo": activo})
}

// DeleteActivo handles deleting a fixed asset
// @Summary Delete Fixed Asset
// @Tags activos
// @Security BearerAuth
// @Param id path string true "Asset ID"
// @Success 200 {object} response.APIResponse
// @Router /activos/{id} [delete]
func (h *InventarioHandler) DeleteActivo(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid asset ID")
		return
	}

	if err := h.inventarioService.DeleteActivo(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Activo eliminado exitosamente", nil)
}
