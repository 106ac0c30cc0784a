package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/coopertrans/guias-api/internal/application/service"
	"github.com/coopertrans/guias-api/internal/domain/repository"
	"github.com/coopertrans/guias-api/internal/presentation/http/dto/response"
	"github.com/coopertrans/guias-api/pkg/pagination"
)

// AuditoriaHandler handles audit trail HTTP requests
type AuditoriaHandler struct {
	auditoriaService *service.AuditoriaService
}

// NewAuditoriaHandler creates a new audit trail handler
func NewAuditoriaHandler(auditoriaService *service.AuditoriaService) *AuditoriaHandler {
	return &AuditoriaHandler{auditoriaService: auditoriaService}
}

// List handles listing audit entries with filtering
// @Summary List Audit Trail
// @Tags auditoria
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(15)
// @Param user_id query string false "Filter by acting user"
// @Param accion query string false "Filter by action"
// @Param entidad query string false "Filter by entity"
// @Success 200 {object} response.APIResponse
// @Router /auditoria [get]
func (h *AuditoriaHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))
	params := &pagination.PaginationParams{Page: page, PerPage: perPage}
	params.Validate()

	filter := &repository.AuditoriaFilterParams{
		Pagination: params,
		Accion:     c.Query("accion"),
		Entidad:    c.Query("entidad"),
	}

	if v := c.Query("user_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			response.BadRequest(c, "Invalid user ID")
			return
		}
		filter.UserID = &id
	}

	desde, hasta, err := parseRangoFechas(c.Query("desde"), c.Query("hasta"))
	if err != nil {
		response.BadRequest(c, "Invalid date format, expected YYYY-MM-DD")
		return
	}
	filter.Desde = desde
	filter.Hasta = hasta

	result, err := h.auditoriaService.ListEventos(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Eventos de auditoría obtenidos exitosamente", result)
}
