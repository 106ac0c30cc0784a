package handler

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/coopertrans/guias-api/internal/application/service"
	"github.com/coopertrans/guias-api/internal/presentation/http/dto/response"
)

// maxRespaldoBytes caps uploaded backup files at 50 MB
const maxRespaldoBytes = 50 << 20

// RespaldoHandler handles backup export and restore HTTP requests
type RespaldoHandler struct {
	respaldoService *service.RespaldoService
}

// NewRespaldoHandler creates a new backup handler
func NewRespaldoHandler(respaldoService *service.RespaldoService) *RespaldoHandler {
	return &RespaldoHandler{respaldoService: respaldoService}
}

// Exportar handles downloading a full-database snapshot as JSON
// @Summary Export Backup
// @Tags respaldos
// @Security BearerAuth
// @Produce json
// @Success 200 {file} file
// @Router /respaldos/exportar [get]
func (h *RespaldoHandler) Exportar(c *gin.Context) {
	snapshot, err := h.respaldoService.Exportar(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	filename := fmt.Sprintf("respaldo-%s.json", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Content-Type", "application/json")

	enc := json.NewEncoder(c.Writer)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snapshot); err != nil {
		response.Error(c, err)
	}
}

// Previsualizar handles validating an uploaded backup and reporting its
// contents without writing anything
// @Summary Preview Backup
// @Tags respaldos
// @Security BearerAuth
// @Accept json
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /respaldos/previsualizar [post]
func (h *RespaldoHandler) Previsualizar(c *gin.Context) {
	data, err := leerArchivoRespaldo(c)
	if err != nil {
		response.BadRequest(c, "Could not read backup file")
		return
	}

	vista, err := h.respaldoService.Previsualizar(c.Request.Context(), data)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Respaldo validado exitosamente", gin.H{"respaldo": vista})
}

// Fusionar handles restoring a backup in merge mode
// @Summary Merge Backup
// @Description Insert only rows whose IDs are not in the database yet; re-running the same file changes nothing
// @Tags respaldos
// @Security BearerAuth
// @Accept json
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /respaldos/fusionar [post]
func (h *RespaldoHandler) Fusionar(c *gin.Context) {
	data, err := leerArchivoRespaldo(c)
	if err != nil {
		response.BadRequest(c, "Could not read backup file")
		return
	}

	insertados, err := h.respaldoService.Fusionar(c.Request.Context(), data)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Respaldo fusionado exitosamente", gin.H{"insertados": insertados})
}

// Reemplazar handles the destructive full restore. The confirm query
// parameter must be "true".
// @Summary Replace Database with Backup
// @Tags respaldos
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param confirmar query bool true "Explicit confirmation"
// @Success 200 {object} response.APIResponse
// @Router /respaldos/reemplazar [post]
func (h *RespaldoHandler) Reemplazar(c *gin.Context) {
	data, err := leerArchivoRespaldo(c)
	if err != nil {
		response.BadRequest(c, "Could not read backup file")
		return
	}

	confirmar := c.Query("confirmar") == "true"

	if err := h.respaldoService.Reemplazar(c.Request.Context(), data, confirmar); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Respaldo restaurado exitosamente", nil)
}

// leerArchivoRespaldo reads the backup payload either from a multipart
// "archivo" field or from the raw request body
func leerArchivoRespaldo(c *gin.Context) ([]byte, error) {
	if file, err := c.FormFile("archivo"); err == nil {
		f, err := file.Open()
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return io.ReadAll(io.LimitReader(f, maxRespaldoBytes))
	}

	return io.ReadAll(io.LimitReader(c.Request.Body, maxRespaldoBytes))
}
