package recorder

import "github.com/IDES0/StockCLI/internal/model"

// NoopRecorder discards everything. Used when no history path is configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordSnapshot(_ *model.Snapshot) error { return nil }
func (n *NoopRecorder) Close() error                           { return nil }
