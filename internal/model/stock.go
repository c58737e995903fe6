package model

import "time"

// Bar represents a single daily OHLCV bar.
type Bar struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// Snapshot holds the most recent price state for a symbol plus whatever
// catalog fields the provider metadata carried. Built fresh per invocation
// and never mutated afterward.
type Snapshot struct {
	Symbol        string
	Name          string
	CurrentPrice  float64
	PreviousClose float64
	Change        float64
	ChangePercent float64
	Volume        int64
	High          float64
	Low           float64
	Timestamp     time.Time

	// Fields maps catalog field keys to raw provider values. Only keys
	// present and non-null in the provider metadata appear here.
	Fields map[string]any
}

// Field returns the raw value for a catalog field key, or nil if the
// provider did not report it.
func (s *Snapshot) Field(key string) any {
	if s.Fields == nil {
		return nil
	}
	return s.Fields[key]
}

// Flatten produces the flat object used for JSON output: every catalog
// field plus the computed headline fields, without the timestamp.
func (s *Snapshot) Flatten() map[string]any {
	out := make(map[string]any, len(s.Fields)+9)
	for k, v := range s.Fields {
		out[k] = v
	}
	out["symbol"] = s.Symbol
	out["name"] = s.Name
	out["current_price"] = s.CurrentPrice
	out["previous_close"] = s.PreviousClose
	out["change"] = s.Change
	out["change_percent"] = s.ChangePercent
	out["volume"] = s.Volume
	out["high"] = s.High
	out["low"] = s.Low
	return out
}

// Series holds parallel historical sequences for charting, ordered
// oldest to newest. Every slice is either the same length as Dates or
// empty when the source column was unavailable.
type Series struct {
	Symbol  string
	Dates   []string
	Prices  []float64
	Volumes []float64
	Highs   []float64
	Lows    []float64
	Opens   []float64
}
