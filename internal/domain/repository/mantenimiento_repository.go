package repository

import (
	"context"

	"github.com/google/uuid"
)

// Huerfanos lists the referential problems found by the integrity scan
type Huerfanos struct {
	// DeudasSinAsociado are debts whose member no longer exists
	DeudasSinAsociado []uuid.UUID
	// RecibosSinAsociado are receipts whose member no longer exists
	RecibosSinAsociado []uuid.UUID
	// DeudasPagadasSinRecibo are debts marked paid whose receipt is gone
	DeudasPagadasSinRecibo []uuid.UUID
	// GuiasSinCliente are guides pointing to a deleted registered client
	GuiasSinCliente []uuid.UUID
}

// Vacio reports whether the scan found nothing to repair
func (h *Huerfanos) Vacio() bool {
	return len(h.DeudasSinAsociado) == 0 &&
		len(h.RecibosSinAsociado) == 0 &&
		len(h.DeudasPagadasSinRecibo) == 0 &&
		len(h.GuiasSinCliente) == 0
}

// MantenimientoRepository defines the interface for the data integrity
// scan and repair used after partial restores
type MantenimientoRepository interface {
	// ScanHuerfanos finds rows whose references point nowhere
	ScanHuerfanos(ctx context.Context) (*Huerfanos, error)
	// RepararHuerfanos fixes what the scan found: orphaned debts and
	// receipts are removed, paid debts without a receipt go back to
	// pending, guides keep their sender snapshot and drop the dangling
	// client link. Returns the number of rows touched.
	RepararHuerfanos(ctx context.Context, h *Huerfanos) (int64, error)
}
