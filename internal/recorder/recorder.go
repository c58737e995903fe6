// Package recorder keeps an optional local history of fetched snapshots.
package recorder

import "github.com/IDES0/StockCLI/internal/model"

// Recorder persists fetched snapshots for later inspection.
type Recorder interface {
	RecordSnapshot(snap *model.Snapshot) error
	Close() error
}
