package quote

import (
	"time"

	"github.com/IDES0/StockCLI/internal/model"
)

// MockProvider returns controllable fixed data for development and testing.
type MockProvider struct {
	Price float64
	Meta  map[string]any
	Bars  []model.Bar
	Err   error
}

func (m *MockProvider) Name() string { return "mock" }

func (m *MockProvider) Info(_ string) (map[string]any, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Meta != nil {
		return m.Meta, nil
	}
	return map[string]any{}, nil
}

func (m *MockProvider) DailyBars(_ string, start time.Time) ([]model.Bar, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Bars != nil {
		return m.Bars, nil
	}
	days := int(time.Since(start).Hours()/24) + 1
	return generateMockBars(m.Price, days), nil
}

func generateMockBars(basePrice float64, count int) []model.Bar {
	bars := make([]model.Bar, count)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		bars[i] = model.Bar{
			Time:   time.Now().AddDate(0, 0, -(count - i)),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000,
		}
	}
	return bars
}
