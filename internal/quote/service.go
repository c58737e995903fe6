package quote

import (
	"log"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/IDES0/StockCLI/internal/catalog"
	"github.com/IDES0/StockCLI/internal/model"
)

// snapshotWindow is how far back the snapshot history window reaches. A
// week of daily bars always yields the last two trading days, weekends
// and holidays included.
const snapshotWindow = 7 * 24 * time.Hour

var periods = []string{"1d", "5d", "1mo", "3mo", "6mo", "1y", "2y", "5y", "10y", "ytd", "max"}

// Periods returns the accepted history period tokens.
func Periods() []string { return periods }

// ValidPeriod reports whether period is an accepted token.
func ValidPeriod(period string) bool {
	for _, p := range periods {
		if p == period {
			return true
		}
	}
	return false
}

// periodStart maps a period token to the start of its lookback window.
func periodStart(period string, now time.Time) time.Time {
	switch period {
	case "1d":
		return now.AddDate(0, 0, -1)
	case "5d":
		return now.AddDate(0, 0, -5)
	case "1mo":
		return now.AddDate(0, -1, 0)
	case "3mo":
		return now.AddDate(0, -3, 0)
	case "6mo":
		return now.AddDate(0, -6, 0)
	case "1y":
		return now.AddDate(-1, 0, 0)
	case "2y":
		return now.AddDate(-2, 0, 0)
	case "5y":
		return now.AddDate(-5, 0, 0)
	case "10y":
		return now.AddDate(-10, 0, 0)
	case "ytd":
		return time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	case "max":
		return time.Unix(0, 0)
	default:
		return now.AddDate(0, -1, 0)
	}
}

// Service orchestrates provider calls and assembles display-ready records.
// Provider errors are logged to the diagnostic stream and collapsed into
// ErrNoData; they never propagate raw.
type Service struct {
	Provider Provider
}

// NewService creates a new Service.
func NewService(p Provider) *Service {
	return &Service{Provider: p}
}

func normalize(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}

// Snapshot fetches the current quote and fundamentals state for a symbol.
func (s *Service) Snapshot(symbol string) (*model.Snapshot, error) {
	sym := normalize(symbol)

	info, err := s.Provider.Info(sym)
	if err != nil {
		log.Printf("[ERROR] fetching data for %s: %v", sym, err)
		return nil, ErrNoData
	}

	bars, err := s.Provider.DailyBars(sym, time.Now().Add(-snapshotWindow))
	if err != nil {
		log.Printf("[ERROR] fetching history for %s: %v", sym, err)
		return nil, ErrNoData
	}
	if len(bars) == 0 {
		log.Printf("[ERROR] no historical data for %s", sym)
		return nil, ErrNoData
	}

	last := bars[len(bars)-1]
	current := decimal.NewFromFloat(last.Close)
	previous := current
	if len(bars) > 1 {
		previous = decimal.NewFromFloat(bars[len(bars)-2].Close)
	}
	change := current.Sub(previous)
	changePct := decimal.Zero
	if !previous.IsZero() {
		changePct = change.Div(previous).Mul(decimal.NewFromInt(100))
	}

	snap := &model.Snapshot{
		Symbol:        sym,
		Name:          displayName(info, sym),
		CurrentPrice:  current.InexactFloat64(),
		PreviousClose: previous.InexactFloat64(),
		Change:        change.InexactFloat64(),
		ChangePercent: changePct.InexactFloat64(),
		Volume:        int64(last.Volume),
		High:          last.High,
		Low:           last.Low,
		Timestamp:     time.Now(),
		Fields:        make(map[string]any),
	}

	for _, c := range catalog.Categories() {
		for _, f := range c.Fields {
			if v, ok := info[f.Key]; ok && v != nil {
				snap.Fields[f.Key] = v
			}
		}
	}
	return snap, nil
}

// History fetches parallel historical series for charting.
func (s *Service) History(symbol, period string) (*model.Series, error) {
	sym := normalize(symbol)

	bars, err := s.Provider.DailyBars(sym, periodStart(period, time.Now()))
	if err != nil {
		log.Printf("[ERROR] fetching historical data for %s: %v", sym, err)
		return nil, ErrNoData
	}
	if len(bars) == 0 {
		log.Printf("[ERROR] no historical data for %s", sym)
		return nil, ErrNoData
	}

	series := &model.Series{Symbol: sym}
	for _, b := range bars {
		series.Dates = append(series.Dates, b.Time.Format("02/01/2006"))
		series.Prices = append(series.Prices, b.Close)
		series.Volumes = append(series.Volumes, b.Volume)
		series.Highs = append(series.Highs, b.High)
		series.Lows = append(series.Lows, b.Low)
		series.Opens = append(series.Opens, b.Open)
	}
	// Symbols without volume reporting (indexes, FX) come back all-zero;
	// treat that as the column being unavailable.
	allZero := true
	for _, v := range series.Volumes {
		if v != 0 {
			allZero = false
			break
		}
	}
	if allZero {
		series.Volumes = nil
	}
	return series, nil
}

func displayName(info map[string]any, fallback string) string {
	if v, ok := info["longName"].(string); ok && v != "" {
		return v
	}
	if v, ok := info["shortName"].(string); ok && v != "" {
		return v
	}
	return fallback
}
