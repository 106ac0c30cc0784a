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

// ProveedorHandler handles supplier and supplier invoice HTTP requests
type ProveedorHandler struct {
	proveedorService *service.ProveedorService
}

// NewProveedorHandler creates a new supplier handler
func NewProveedorHandler(proveedorService *service.ProveedorService) *ProveedorHandler {
	return &ProveedorHandler{proveedorService: proveedorService}
}

// Create handles supplier creation
// @Summary Create Supplier
// @Tags proveedores
// @Security BearerAuth
// @Accept json
// @Produce json
// @Success 201 {object} response.APIResponse
// @Router /proveedores [post]
func (h *ProveedorHandler) Create(c *gin.Context) {
	var req struct {
		Rif       string  `json:"rif" binding:"required"`
		Nombre    string  `json:"nombre" binding:"required"`
		Telefono  *string `json:"telefono"`
		Email     *string `json:"email"`
		Direccion *string `json:"direccion"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	proveedor, err := h.proveedorService.CreateProveedor(c.Request.Context(), &service.CreateProveedorInput{
		Rif:       req.Rif,
		Nombre:    req.Nombre,
		Telefono:  req.Telefono,
		Email:     req.Email,
		Direccion: req.Direccion,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Proveedor registrado exitosamente", gin.H{"proveedor": proveedor})
}

// Get handles getting a supplier by ID
// @Summary Get Supplier
// @Tags proveedores
// @Security BearerAuth
// @Produce json
// @Param id path string true "Supplier ID"
// @Success 200 {object} response.APIResponse
// @Router /proveedores/{id} [get]
func (h *ProveedorHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid supplier ID")
		return
	}

	proveedor, err := h.proveedorService.GetProveedor(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Proveedor obtenido exitosamente", gin.H{"proveedor": proveedor})
}

// List handles listing suppliers with pagination
// @Summary List Suppliers
// @Tags proveedores
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(15)
// @Param search query string false "Search query"
// @Success 200 {object} response.APIResponse
// @Router /proveedores [get]
func (h *ProveedorHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))
	params := &pagination.PaginationParams{Page: page, PerPage: perPage}
	params.Validate()

	result, err := h.proveedorService.ListProveedores(c.Request.Context(), params, c.Query("search"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Proveedores obtenidos exitosamente", result)
}

// Update handles updating a supplier
// @Summary Update Supplier
// @Tags proveedores
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Supplier ID"
// @Success 200 {object} response.APIResponse
// @Router /proveedores/{id} [put]
func (h *ProveedorHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid supplier ID")
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

	proveedor, err := h.proveedorService.UpdateProveedor(c.Request.Context(), &service.UpdateProveedorInput{
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

	response.OK(c, "Proveedor actualizado exitosamente", gin.H{"proveedor": proveedor})
}

// Delete handles deleting a supplier
// @Summary Delete Supplier
// @Tags proveedores
// @Security BearerAuth
// @Param id path string true "Supplier ID"
// @Success 200 {object} response.APIResponse
// @Router /proveedores/{id} [delete]
func (h *ProveedorHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid supplier ID")
		return
	}

	if err := h.proveedorService.DeleteProveedor(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Proveedor eliminado exitosamente", nil)
}

// CreateCompra handles registering a supplier invoice
// @Summary Create Purchase Invoice
// @Description Register a supplier invoice for the purchases ledger
// @Tags compras
// @Security BearerAuth
// @Accept json
// @Produce json
// @Success 201 {object} response.APIResponse
// @Router /compras [post]
func (h *ProveedorHandler) CreateCompra(c *gin.Context) {
	var req struct {
		ProveedorID   string          `json:"proveedor_id" binding:"required,uuid"`
		NumeroFactura string          `json:"numero_factura" binding:"required"`
		NumeroControl string          `json:"numero_control"`
		Fecha         time.Time       `json:"fecha" binding:"required"`
		BaseImponible decimal.Decimal `json:"base_imponible"`
		MontoExento   decimal.Decimal `json:"monto_exento"`
		MontoIva      decimal.Decimal `json:"monto_iva"`
		RetencionIva  decimal.Decimal `json:"retencion_iva"`
		Descripcion   *string         `json:"descripcion"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	proveedorID, err := uuid.Parse(req.ProveedorID)
	if err != nil {
		response.BadRequest(c, "Invalid supplier ID")
		return
	}

	compra, err := h.proveedorService.CreateCompra(c.Request.Context(), &service.CreateCompraInput{
		ProveedorID:   proveedorID,
		NumeroFactura: req.NumeroFactura,
		NumeroControl: req.NumeroControl,
		Fecha:         req.Fecha,
		BaseImponible: req.BaseImponible,
		MontoExento:   req.MontoExento,
		MontoIva:      req.MontoIva,
		RetencionIva:  req.RetencionIva,
		Descripcion:   req.Descripcion,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Compra registrada exitosamente", gin.H{"compra": compra})
}

// GetCompra handles getting a supplier invoice by ID
// @Summary Get Purchase Invoice
// @Tags compras
// @Security BearerAuth
// @Produce json
// @Param id path string true "Purchase ID"
// @Success 200 {object} response.APIResponse
// @Router /compras/{id} [get]
func (h *ProveedorHandler) GetCompra(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid purchase ID")
		return
	}

	compra, err := h.proveedorService.GetCompra(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Compra obtenida exitosamente", gin.H{"compra": compra})
}

// ListCompras handles listing supplier invoices
// @Summary List Purchase Invoices
// @Tags compras
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(15)
// @Param proveedor_id query string false "Filter by supplier"
// @Success 200 {object} response.APIResponse
// @Router /compras [get]
func (h *ProveedorHandler) ListCompras(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))
	params := &pagination.PaginationParams{Page: page, PerPage: perPage}
	params.Validate()

	filter := &repository.CompraFilterParams{Pagination: params}

	if v := c.Query("proveedor_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			response.BadRequest(c, "Invalid supplier ID")
			return
		}
		filter.ProveedorID = &id
	}

	desde, hasta, err := parseRangoFechas(c.Query("desde"), c.Query("hasta"))
	if err != nil {
		response.BadRequest(c, "Invalid date format, expected YYYY-MM-DD")
		return
	}
	filter.Desde = desde
	filter.Hasta = hasta

	result, err := h.proveedorService.ListCompras(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Compras obtenidas exitosamente", result)
}

// DeleteCompra handles removing a supplier invoice
// @Summary Delete Purchase Invoice
// @Tags compras
// @Security BearerAuth
// @Param id path string true "Purchase ID"
// @Success 200 {object} response.APIResponse
// @Router /compras/{id} [delete]
func (h *ProveedorHandler) DeleteCompra(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid purchase ID")
		return
	}

	if err := h.proveedorService.DeleteCompra(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Compra eliminada exitosamente", nil)
}
