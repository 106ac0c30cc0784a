package repository

import (
	"context"

	"github.com/coopertrans/guias-api/internal/domain/backup"
)

// RespaldoRepository defines the interface for export and restore of the
// whole database
type RespaldoRepository interface {
	// Export reads every collection into a snapshot
	Export(ctx context.Context) (*backup.Snapshot, error)
	// Merge inserts only the snapshot rows whose IDs are not present yet,
	// all inside one transaction, and reports how many rows each
	// collection gained. Running it twice with the same snapshot is a
	// no-op the second time.
	Merge(ctx context.Context, s *backup.Snapshot) (map[string]int, error)
	// Replace wipes every collection and loads the snapshot in its place,
	// all inside one transaction. The audit trail is kept.
	Replace(ctx context.Context, s *backup.Snapshot) error
}
