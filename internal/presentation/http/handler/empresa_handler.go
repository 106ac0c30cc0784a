package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/coopertrans/guias-api/internal/application/service"
	"github.com/coopertrans/guias-api/internal/presentation/http/dto/response"
)

// EmpresaHandler handles company configuration HTTP requests
type EmpresaHandler struct {
	empresaService *service.EmpresaService
}

// NewEmpresaHandler creates a new company config handler
func NewEmpresaHandler(empresaService *service.EmpresaService) *EmpresaHandler {
	return &EmpresaHandler{empresaService: empresaService}
}

// GetConfig handles getting the company configuration
// @Summary Get Company Config
// @Tags configuracion
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /configuracion [get]
func (h *EmpresaHandler) GetConfig(c *gin.Context) {
	config, err := h.empresaService.GetConfig(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Configuración obtenida exitosamente", gin.H{"configuracion": config})
}

// UpdateConfig handles updating the company configuration
// @Summary Update Company Config
// @Description Update company identity, billing rates and the BCV exchange rate
// @Tags configuracion
// @Security BearerAuth
// @Accept json
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /configuracion [put]
func (h *EmpresaHandler) UpdateConfig(c *gin.Context) {
	var req struct {
		Nombre    *string `json:"nombre"`
		Rif       *string `json:"rif"`
		Direccion *string `json:"direccion"`
		Telefono  *string `json:"telefono"`

		CostoPorKg          *decimal.Decimal `json:"costo_por_kg"`
		TarifaManejo        *decimal.Decimal `json:"tarifa_manejo"`
		TasaIva             *decimal.Decimal `json:"tasa_iva"`
		TasaIpostel         *decimal.Decimal `json:"tasa_ipostel"`
		TasaIgtf            *decimal.Decimal `json:"tasa_igtf"`
		PorcentajeSeguroDef *decimal.Decimal `json:"porcentaje_seguro_def"`

		TarifaPasajeroUSD    *decimal.Decimal `json:"tarifa_pasajero_usd"`
		PorcentajeProduccion *decimal.Decimal `json:"porcentaje_produccion"`

		TasaBCV *decimal.Decimal `json:"tasa_bcv"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	config, err := h.empresaService.UpdateConfig(c.Request.Context(), &service.UpdateConfigInput{
		Nombre:    req.Nombre,
		Rif:       req.Rif,
		Direccion: req.Direccion,
		Telefono:  req.Telefono,

		CostoPorKg:          req.CostoPorKg,
		TarifaManejo:        req.TarifaManejo,
		TasaIva:             req.TasaIva,
		TasaIpostel:         req.TasaIpostel,
		TasaIgtf:            req.TasaIgtf,
		PorcentajeSeguroDef: req.PorcentajeSeguroDef,

		TarifaPasajeroUSD:    req.TarifaPasajeroUSD,
		PorcentajeProduccion: req.PorcentajeProduccion,

		TasaBCV: req.TasaBCV,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Configuración actualizada exitosamente", gin.H{"configuracion": config})
}
