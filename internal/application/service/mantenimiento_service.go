package service

import (
	"context"
	"fmt"

	"github.com/coopertrans/guias-api/internal/domain/repository"
)

// MantenimientoService runs the data integrity scan and repair, meant to
// be used after a partial restore
type MantenimientoService struct {
	mantenimientoRepo repository.MantenimientoRepository
	auditoria         *AuditoriaService
}

// NewMantenimientoService creates a new maintenance service
func NewMantenimientoService(mantenimientoRepo repository.MantenimientoRepository, auditoria *AuditoriaService) *MantenimientoService {
	return &MantenimientoService{mantenimientoRepo: mantenimientoRepo, auditoria: auditoria}
}

// Escanear finds rows whose references point nowhere
func (s *MantenimientoService) Escanear(ctx context.Context) (*repository.Huerfanos, error) {
	return s.mantenimientoRepo.ScanHuerfanos(ctx)
}

// Reparar scans and repairs in one pass: orphaned debts and receipts are
// removed, paid debts without a receipt go back to pending, and guides
// drop dangling client links while keeping their sender snapshot.
func (s *MantenimientoService) Reparar(ctx context.Context) (*repository.Huerfanos, int64, error) {
	huerfanos, err := s.mantenimientoRepo.ScanHuerfanos(ctx)
	if err != nil {
		return nil, 0, err
	}
	if huerfanos.Vacio() {
		return huerfanos, 0, nil
	}

	reparadas, err := s.mantenimientoRepo.RepararHuerfanos(ctx, huerfanos)
	if err != nil {
		return nil, 0, err
	}

	_ = s.auditoria.Registrar(ctx, "reparar", "mantenimiento", "",
		fmt.Sprintf("%d filas reparadas", reparadas))
	return huerfanos, reparadas, nil
}
