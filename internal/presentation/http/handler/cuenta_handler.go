package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/coopertrans/guias-api/internal/application/service"
	"github.com/coopertrans/guias-api/internal/domain/enum"
	"github.com/coopertrans/guias-api/internal/presentation/http/dto/response"
)

// CuentaHandler handles chart-of-accounts HTTP requests
type CuentaHandler struct {
	cuentaService *service.CuentaService
}

// NewCuentaHandler creates a new chart-of-accounts handler
func NewCuentaHandler(cuentaService *service.CuentaService) *CuentaHandler {
	return &CuentaHandler{cuentaService: cuentaService}
}

// Create handles adding an account to the chart
// @Summary Create Account
// @Description Add an account to the chart; a child inherits its parent's type
// @Tags cuentas
// @Security BearerAuth
// @Accept json
// @Produce json
// @Success 201 {object} response.APIResponse
// @Router /cuentas [post]
func (h *CuentaHandler) Create(c *gin.Context) {
	var req struct {
		Codigo  string  `json:"codigo" binding:"required"`
		Nombre  string  `json:"nombre" binding:"required"`
		Tipo    string  `json:"tipo"`
		PadreID *string `json:"padre_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.CreateCuentaInput{
		Codigo: req.Codigo,
		Nombre: req.Nombre,
		Tipo:   enum.TipoCuenta(req.Tipo),
	}
	if req.PadreID != nil {
		padreID, err := uuid.Parse(*req.PadreID)
		if err != nil {
			response.BadRequest(c, "Invalid parent account ID")
			return
		}
		input.PadreID = &padreID
	}

	cuenta, err := h.cuentaService.CreateCuenta(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Cuenta registrada exitosamente", gin.H{"cuenta": cuenta})
}

// Get handles getting an account by ID
// @Summary Get Account
// @Tags cuentas
// @Security BearerAuth
// @Produce json
// @Param id path string true "Account ID"
// @Success 200 {object} response.APIResponse
// @Router /cuentas/{id} [get]
func (h *CuentaHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid account ID")
		return
	}

	cuenta, err := h.cuentaService.GetCuenta(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Cuenta obtenida exitosamente", gin.H{"cuenta": cuenta})
}

// List handles listing the whole chart of accounts
// @Summary List Accounts
// @Tags cuentas
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /cuentas [get]
func (h *CuentaHandler) List(c *gin.Context) {
	cuentas, err := h.cuentaService.ListCuentas(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Cuentas obtenidas exitosamente", gin.H{"cuentas": cuentas})
}

// Update handles renaming an account
// @Summary Update Account
// @Description Rename an account; code, type and parent are fixed
// @Tags cuentas
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Account ID"
// @Success 200 {object} response.APIResponse
// @Router /cuentas/{id} [put]
func (h *CuentaHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid account ID")
		return
	}

	var req struct {
		Nombre string `json:"nombre" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	cuenta, err := h.cuentaService.UpdateCuenta(c.Request.Context(), &service.UpdateCuentaInput{
		ID:     id,
		Nombre: req.Nombre,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Cuenta actualizada exitosamente", gin.H{"cuenta": cuenta})
}

// Delete handles removing a leaf account
// @Summary Delete Account
// @Tags cuentas
// @Security BearerAuth
// @Param id path string true "Account ID"
// @Success 200 {object} response.APIResponse
// @Router /cuentas/{id} [delete]
func (h *CuentaHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid account ID")
		return
	}

	if err := h.cuentaService.DeleteCuenta(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Cuenta eliminada exitosamente", nil)
}
