package quote

import (
	"errors"
	"time"

	"github.com/IDES0/StockCLI/internal/model"
)

// ErrNoData indicates the provider returned no usable data for a symbol.
// Provider failures at the service boundary collapse into this error.
var ErrNoData = errors.New("no data available")

// Provider defines the interface for the market data source.
type Provider interface {
	// Info returns provider metadata keyed by catalog field keys.
	// Fields the provider does not know are simply absent from the map.
	Info(symbol string) (map[string]any, error)
	// DailyBars returns daily bars from start to now, oldest first.
	DailyBars(symbol string, start time.Time) ([]model.Bar, error)
	Name() string
}
