package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/coopertrans/guias-api/internal/application/service"
	"github.com/coopertrans/guias-api/internal/presentation/http/dto/response"
)

// MantenimientoHandler handles data integrity HTTP requests
type MantenimientoHandler struct {
	mantenimientoService *service.MantenimientoService
}

// NewMantenimientoHandler creates a new maintenance handler
func NewMantenimientoHandler(mantenimientoService *service.MantenimientoService) *MantenimientoHandler {
	return &MantenimientoHandler{mantenimientoService: mantenimientoService}
}

// Escanear handles scanning for rows whose references point nowhere
// @Summary Scan Integrity
// @Tags mantenimiento
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /mantenimiento/escanear [get]
func (h *MantenimientoHandler) Escanear(c *gin.Context) {
	huerfanos, err := h.mantenimientoService.Escanear(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Escaneo completado", gin.H{"huerfanos": huerfanos})
}

// Reparar handles scanning and repairing integrity issues in one pass
// @Summary Repair Integrity
// @Tags mantenimiento
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /mantenimiento/reparar [post]
func (h *MantenimientoHandler) Reparar(c *gin.Context) {
	huerfanos, reparadas, err := h.mantenimientoService.Reparar(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Reparación completada", gin.H{
		"huerfanos": huerfanos,
		"reparadas": reparadas,
	})
}
