package chart

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/IDES0/StockCLI/internal/model"
)

type fakeHistorian struct {
	series *model.Series
	err    error
}

func (f *fakeHistorian) History(_, _ string) (*model.Series, error) {
	return f.series, f.err
}

func testSeries() *model.Series {
	return &model.Series{
		Symbol:  "NVDA",
		Dates:   []string{"01/06/2025", "02/06/2025", "03/06/2025"},
		Prices:  []float64{100, 105, 103},
		Volumes: []float64{1000, 1200, 900},
	}
}

func TestRender_StubPlotterHint(t *testing.T) {
	var buf bytes.Buffer
	r := &Renderer{Plotter: StubPlotter{}, Quotes: &fakeHistorian{series: testSeries()}, Out: &buf}
	r.Render("NVDA", "1mo", "line")
	if !strings.Contains(buf.String(), "Charting support is not available") {
		t.Errorf("expected unavailability hint, got:\n%s", buf.String())
	}
}

func TestRender_FetchFailure(t *testing.T) {
	var buf bytes.Buffer
	r := &Renderer{Plotter: &AsciiPlotter{}, Quotes: &fakeHistorian{err: errors.New("boom")}, Out: &buf}
	r.Render(" nvda ", "1mo", "line")
	if !strings.Contains(buf.String(), "Could not fetch historical data for NVDA") {
		t.Errorf("expected fetch failure message, got:\n%s", buf.String())
	}
}

func TestRender_Line(t *testing.T) {
	var buf bytes.Buffer
	r := &Renderer{Plotter: &AsciiPlotter{Height: 5}, Quotes: &fakeHistorian{series: testSeries()}, Out: &buf}
	r.Render("NVDA", "3mo", "line")
	out := buf.String()
	if !strings.Contains(out, "NVDA Stock Price - 3mo") {
		t.Errorf("missing title:\n%s", out)
	}
	if !strings.Contains(out, "Date: 01/06/2025 to 03/06/2025") {
		t.Errorf("missing date caption:\n%s", out)
	}
}

func TestRender_VolumeUnavailable(t *testing.T) {
	series := testSeries()
	series.Volumes = nil
	var buf bytes.Buffer
	r := &Renderer{Plotter: &AsciiPlotter{Height: 5}, Quotes: &fakeHistorian{series: series}, Out: &buf}
	r.Render("NVDA", "1mo", "volume")
	if !strings.Contains(buf.String(), "Volume data not available") {
		t.Errorf("expected volume unavailability message, got:\n%s", buf.String())
	}
}

func TestRender_CandlestickDrawsNothing(t *testing.T) {
	var buf bytes.Buffer
	r := &Renderer{Plotter: &AsciiPlotter{Height: 5}, Quotes: &fakeHistorian{series: testSeries()}, Out: &buf}
	r.Render("NVDA", "1mo", "candlestick")
	if buf.Len() != 0 {
		t.Errorf("candlestick has no render path and must not draw, got:\n%s", buf.String())
	}
}
