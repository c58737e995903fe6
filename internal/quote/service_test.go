package quote

import (
	"errors"
	"testing"
	"time"

	"github.com/IDES0/StockCLI/internal/model"
)

func bar(day int, close float64) model.Bar {
	return model.Bar{
		Time:   time.Date(2025, 6, day, 0, 0, 0, 0, time.UTC),
		Open:   close * 0.99,
		High:   close * 1.01,
		Low:    close * 0.98,
		Close:  close,
		Volume: 1000,
	}
}

func TestSnapshot_EmptyHistory(t *testing.T) {
	svc := NewService(&MockProvider{Bars: []model.Bar{}})
	if _, err := svc.Snapshot("aapl"); !errors.Is(err, ErrNoData) {
		t.Fatalf("expected ErrNoData, got %v", err)
	}
}

func TestSnapshot_ProviderErrorCollapses(t *testing.T) {
	svc := NewService(&MockProvider{Err: errors.New("socket timeout")})
	if _, err := svc.Snapshot("AAPL"); !errors.Is(err, ErrNoData) {
		t.Fatalf("provider errors must collapse into ErrNoData, got %v", err)
	}
}

func TestSnapshot_SingleBarZeroChange(t *testing.T) {
	svc := NewService(&MockProvider{Bars: []model.Bar{bar(2, 100)}})
	snap, err := svc.Snapshot("AAPL")
	if err != nil {
		t.Fatal(err)
	}
	if snap.PreviousClose != snap.CurrentPrice {
		t.Errorf("previous close %v, want %v", snap.PreviousClose, snap.CurrentPrice)
	}
	if snap.Change != 0 || snap.ChangePercent != 0 {
		t.Errorf("expected zero change, got %v / %v%%", snap.Change, snap.ChangePercent)
	}
}

func TestSnapshot_ZeroPreviousClose(t *testing.T) {
	svc := NewService(&MockProvider{Bars: []model.Bar{bar(1, 0), bar(2, 5)}})
	snap, err := svc.Snapshot("AAPL")
	if err != nil {
		t.Fatal(err)
	}
	if snap.ChangePercent != 0 {
		t.Errorf("change percent must be 0 on zero previous close, got %v", snap.ChangePercent)
	}
	if snap.Change != 5 {
		t.Errorf("change = %v, want 5", snap.Change)
	}
}

func TestSnapshot_ChangeMath(t *testing.T) {
	svc := NewService(&MockProvider{Bars: []model.Bar{bar(1, 200), bar(2, 210)}})
	snap, err := svc.Snapshot(" nvda ")
	if err != nil {
		t.Fatal(err)
	}
	if snap.Symbol != "NVDA" {
		t.Errorf("symbol = %q, want NVDA", snap.Symbol)
	}
	if snap.Change != 10 {
		t.Errorf("change = %v, want 10", snap.Change)
	}
	if snap.ChangePercent != 5 {
		t.Errorf("change percent = %v, want 5", snap.ChangePercent)
	}
	if snap.CurrentPrice != 210 || snap.PreviousClose != 200 {
		t.Errorf("prices = %v / %v", snap.CurrentPrice, snap.PreviousClose)
	}
}

func TestSnapshot_MergesCatalogFieldsOnly(t *testing.T) {
	svc := NewService(&MockProvider{
		Bars: []model.Bar{bar(1, 100), bar(2, 101)},
		Meta: map[string]any{
			"longName":      "Apple Inc.",
			"marketCap":     3.4e12,
			"sector":        "Technology",
			"notInCatalog":  42,
			"dividendYield": nil,
		},
	})
	snap, err := svc.Snapshot("AAPL")
	if err != nil {
		t.Fatal(err)
	}
	if snap.Name != "Apple Inc." {
		t.Errorf("name = %q", snap.Name)
	}
	if snap.Field("marketCap") != 3.4e12 {
		t.Errorf("marketCap = %v", snap.Field("marketCap"))
	}
	if snap.Field("notInCatalog") != nil {
		t.Error("non-catalog keys must not be merged")
	}
	if _, ok := snap.Fields["dividendYield"]; ok {
		t.Error("null fields must not be merged")
	}
}

func TestSnapshot_NameFallsBackToSymbol(t *testing.T) {
	svc := NewService(&MockProvider{Bars: []model.Bar{bar(1, 100)}})
	snap, err := svc.Snapshot("aapl")
	if err != nil {
		t.Fatal(err)
	}
	if snap.Name != "AAPL" {
		t.Errorf("name = %q, want AAPL", snap.Name)
	}
}

func TestHistory_Series(t *testing.T) {
	svc := NewService(&MockProvider{Bars: []model.Bar{bar(1, 100), bar(2, 102), bar(3, 99)}})
	series, err := svc.History("aapl", "1mo")
	if err != nil {
		t.Fatal(err)
	}
	if series.Symbol != "AAPL" {
		t.Errorf("symbol = %q", series.Symbol)
	}
	if len(series.Dates) != 3 || len(series.Prices) != 3 || len(series.Highs) != 3 {
		t.Fatalf("expected 3 elements per column, got %d dates", len(series.Dates))
	}
	if series.Dates[0] != "01/06/2025" {
		t.Errorf("date = %q, want 01/06/2025", series.Dates[0])
	}
	if series.Prices[2] != 99 {
		t.Errorf("price = %v, want 99", series.Prices[2])
	}
}

func TestHistory_EmptyIsNoData(t *testing.T) {
	svc := NewService(&MockProvider{Bars: []model.Bar{}})
	if _, err := svc.History("AAPL", "1mo"); !errors.Is(err, ErrNoData) {
		t.Fatalf("expected ErrNoData, got %v", err)
	}
}

func TestHistory_AllZeroVolumesDropped(t *testing.T) {
	bars := []model.Bar{bar(1, 100), bar(2, 101)}
	for i := range bars {
		bars[i].Volume = 0
	}
	svc := NewService(&MockProvider{Bars: bars})
	series, err := svc.History("^GSPC", "1mo")
	if err != nil {
		t.Fatal(err)
	}
	if len(series.Volumes) != 0 {
		t.Errorf("expected empty volume column, got %v", series.Volumes)
	}
}

func TestPeriodStart(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		period string
		want   time.Time
	}{
		{"1d", now.AddDate(0, 0, -1)},
		{"5d", now.AddDate(0, 0, -5)},
		{"1mo", now.AddDate(0, -1, 0)},
		{"1y", now.AddDate(-1, 0, 0)},
		{"ytd", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"max", time.Unix(0, 0)},
	}
	for _, tt := range tests {
		if got := periodStart(tt.period, now); !got.Equal(tt.want) {
			t.Errorf("periodStart(%q) = %v, want %v", tt.period, got, tt.want)
		}
	}
}

func TestValidPeriod(t *testing.T) {
	for _, p := range Periods() {
		if !ValidPeriod(p) {
			t.Errorf("%q should be valid", p)
		}
	}
	if ValidPeriod("7mo") {
		t.Error("7mo should be invalid")
	}
}
