// Package chart renders historical price and volume data as text-mode
// plots.
package chart

import (
	"fmt"
	"io"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/IDES0/StockCLI/internal/model"
)

const defaultHeight = 15

// Plotter draws a series of values as a terminal plot. The stub
// implementation reports unavailability so the renderer can degrade
// gracefully instead of checking for the library at import time.
type Plotter interface {
	Available() bool
	Line(values []float64, caption string) string
	Bars(values []float64, caption string) string
}

// AsciiPlotter implements Plotter with asciigraph.
type AsciiPlotter struct {
	Height int
	Color  bool
}

func (p *AsciiPlotter) Available() bool { return true }

func (p *AsciiPlotter) Line(values []float64, caption string) string {
	return asciigraph.Plot(values, p.options(caption, asciigraph.Green)...)
}

func (p *AsciiPlotter) Bars(values []float64, caption string) string {
	return asciigraph.Plot(values, p.options(caption, asciigraph.Blue)...)
}

func (p *AsciiPlotter) options(caption string, color asciigraph.AnsiColor) []asciigraph.Option {
	height := p.Height
	if height == 0 {
		height = defaultHeight
	}
	opts := []asciigraph.Option{
		asciigraph.Height(height),
		asciigraph.Caption(caption),
	}
	if p.Color {
		opts = append(opts, asciigraph.SeriesColors(color))
	}
	return opts
}

// StubPlotter reports that plotting support is absent.
type StubPlotter struct{}

func (StubPlotter) Available() bool               { return false }
func (StubPlotter) Line([]float64, string) string { return "" }
func (StubPlotter) Bars([]float64, string) string { return "" }

// Historian is the slice of the quote service the renderer needs.
type Historian interface {
	History(symbol, period string) (*model.Series, error)
}

// Renderer fetches historical data and draws it. Every failure is
// reported on Out and swallowed; chart rendering never fails the process.
type Renderer struct {
	Plotter Plotter
	Quotes  Historian
	Out     io.Writer
}

// Render draws a chart of the requested type for symbol over period.
func (r *Renderer) Render(symbol, period, chartType string) {
	if r.Plotter == nil || !r.Plotter.Available() {
		fmt.Fprintln(r.Out, "Charting support is not available in this build. Rebuild with the asciigraph plotter enabled.")
		return
	}

	series, err := r.Quotes.History(symbol, period)
	if err != nil {
		fmt.Fprintf(r.Out, "Could not fetch historical data for %s\n",
			strings.ToUpper(strings.TrimSpace(symbol)))
		return
	}

	switch chartType {
	case "line":
		fmt.Fprintf(r.Out, "%s Stock Price - %s\n", series.Symbol, period)
		fmt.Fprintln(r.Out, r.Plotter.Line(series.Prices, dateCaption(series)))
	case "volume":
		if len(series.Volumes) == 0 {
			fmt.Fprintln(r.Out, "Volume data not available")
			return
		}
		fmt.Fprintf(r.Out, "%s Trading Volume - %s\n", series.Symbol, period)
		fmt.Fprintln(r.Out, r.Plotter.Bars(series.Volumes, dateCaption(series)))
	}
	// "candlestick" is accepted as a flag value but has no render path;
	// it falls through without drawing anything.
}

func dateCaption(series *model.Series) string {
	if len(series.Dates) == 0 {
		return ""
	}
	return fmt.Sprintf("Date: %s to %s", series.Dates[0], series.Dates[len(series.Dates)-1])
}
