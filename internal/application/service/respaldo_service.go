package service

import (
	"context"
	"fmt"
	"time"

	"github.com/coopertrans/guias-api/internal/domain/backup"
	"github.com/coopertrans/guias-api/internal/domain/repository"
	"github.com/coopertrans/guias-api/pkg/apperror"
)

// RespaldoService handles full-database export and restore. Restores run
// in merge mode by default; the destructive replace mode requires an
// explicit confirmation.
type RespaldoService struct {
	respaldoRepo repository.RespaldoRepository
	auditoria    *AuditoriaService
}

// NewRespaldoService creates a new backup service
func NewRespaldoService(respaldoRepo repository.RespaldoRepository, auditoria *AuditoriaService) *RespaldoService {
	return &RespaldoService{respaldoRepo: respaldoRepo, auditoria: auditoria}
}

// Exportar reads every collection into a downloadable snapshot
func (s *RespaldoService) Exportar(ctx context.Context) (*backup.Snapshot, error) {
	snapshot, err := s.respaldoRepo.Export(ctx)
	if err != nil {
		return nil, err
	}

	snapshot.Version = backup.VersionActual
	snapshot.GeneradoEn = time.Now().Format(time.RFC3339)

	_ = s.auditoria.Registrar(ctx, "exportar", "respaldo", "", resumenConteos(snapshot))
	return snapshot, nil
}

// VistaPrevia summarizes an uploaded backup file before restoring it
type VistaPrevia struct {
	Version    int            `json:"version"`
	GeneradoEn string         `json:"generado_en"`
	Conteos    map[string]int `json:"conteos"`
}

// Previsualizar validates an uploaded file and reports what it contains
// without writing anything
func (s *RespaldoService) Previsualizar(ctx context.Context, data []byte) (*VistaPrevia, error) {
	snapshot, err := backup.Parse(data)
	if err != nil {
		return nil, apperror.NewBadRequestError(err.Error())
	}

	return &VistaPrevia{
		Version:    snapshot.Version,
		GeneradoEn: snapshot.GeneradoEn,
		Conteos:    snapshot.Conteos(),
	}, nil
}

// Fusionar restores a backup in merge mode: only rows whose IDs are not
// in the database yet are inserted, so re-running the same file changes
// nothing. Returns how many rows each collection gained.
func (s *RespaldoService) Fusionar(ctx context.Context, data []byte) (map[string]int, error) {
	snapshot, err := backup.Parse(data)
	if err != nil {
		return nil, apperror.NewBadRequestError(err.Error())
	}

	insertados, err := s.respaldoRepo.Merge(ctx, snapshot)
	if err != nil {
		return nil, err
	}

	total := 0
	for _, n := range insertados {
		total += n
	}
	_ = s.auditoria.Registrar(ctx, "restaurar-fusion", "respaldo", "",
		fmt.Sprintf("%d filas insertadas", total))
	return insertados, nil
}

// Reemplazar wipes the database and loads the backup in its place. The
// caller must pass confirmar explicitly; the audit trail survives the
// wipe and records who did it.
func (s *RespaldoService) Reemplazar(ctx context.Context, data []byte, confirmar bool) error {
	if !confirmar {
		return apperror.NewBadRequestError("El reemplazo total requiere confirmación explícita")
	}

	snapshot, err := backup.Parse(data)
	if err != nil {
		return apperror.NewBadRequestError(err.Error())
	}

	if err := s.respaldoRepo.Replace(ctx, snapshot); err != nil {
		return err
	}

	_ = s.auditoria.Registrar(ctx, "restaurar-reemplazo", "respaldo", "", resumenConteos(snapshot))
	return nil
}

func resumenConteos(s *backup.Snapshot) string {
	conteos := s.Conteos()
	return fmt.Sprintf("guias: %d, asociados: %d, deudas: %d, recibos: %d",
		conteos["guias"], conteos["asociados"], conteos["deudas"], conteos["recibos"])
}
