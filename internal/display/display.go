// Package display renders fetched stock records to a terminal.
package display

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/IDES0/StockCLI/internal/catalog"
	"github.com/IDES0/StockCLI/internal/format"
	"github.com/IDES0/StockCLI/internal/model"
)

const ruleWidth = 60

// Options selects what the Show mode prints beyond the headline block.
type Options struct {
	Detailed bool
	Fields   []string
	All      bool
}

// Presenter writes formatted stock records to Out.
type Presenter struct {
	Out       io.Writer
	Palette   Palette
	Formatter *format.Formatter
}

// Show renders a snapshot in the plain, detailed, specific-fields or
// all-fields mode.
func (p *Presenter) Show(snap *model.Snapshot, opts Options) {
	rule := p.Palette.Bold.Render(strings.Repeat("=", ruleWidth))

	fmt.Fprintf(p.Out, "\n%s\n", rule)
	fmt.Fprintf(p.Out, "%s\n", p.Palette.Bold.Render(fmt.Sprintf("%s (%s)", snap.Name, snap.Symbol)))
	fmt.Fprintf(p.Out, "%s\n", rule)

	priceStyle := p.Palette.Green
	marker := "▲"
	if snap.Change < 0 {
		priceStyle = p.Palette.Red
		marker = "▼"
	}

	fmt.Fprintf(p.Out, "\n%s %s\n",
		p.Palette.Bold.Render("Current Price:"),
		priceStyle.Render(p.Formatter.Currency(snap.CurrentPrice)))
	changeText := fmt.Sprintf("%s %s (%s)",
		marker, p.Formatter.Currency(snap.Change), format.SignedPercent(snap.ChangePercent))
	fmt.Fprintf(p.Out, "%s %s\n", p.Palette.Bold.Render("Change:"), priceStyle.Render(changeText))
	fmt.Fprintf(p.Out, "%s %s\n",
		p.Palette.Bold.Render("Previous Close:"),
		p.Formatter.Currency(snap.PreviousClose))

	if opts.Detailed {
		fmt.Fprintf(p.Out, "\n%s\n", p.Palette.Bold.Render("Trading Info:"))
		fmt.Fprintf(p.Out, "  High: %s\n", p.Formatter.Currency(snap.High))
		fmt.Fprintf(p.Out, "  Low: %s\n", p.Formatter.Currency(snap.Low))
		fmt.Fprintf(p.Out, "  Volume: %s\n", format.Count(float64(snap.Volume)))
	}

	switch {
	case opts.All:
		p.allFields(snap)
	case len(opts.Fields) > 0:
		p.specificFields(snap, opts.Fields)
	case opts.Detailed:
		p.additionalInfo(snap)
	}

	fmt.Fprintf(p.Out, "\n%s %s\n",
		p.Palette.Bold.Render("Last Updated:"),
		snap.Timestamp.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(p.Out, "%s\n\n", rule)
}

// additionalInfo is the fixed detailed-mode block.
func (p *Presenter) additionalInfo(snap *model.Snapshot) {
	fmt.Fprintf(p.Out, "\n%s\n", p.Palette.Bold.Render("Additional Info:"))
	if v := snap.Field("marketCap"); v != nil {
		fmt.Fprintf(p.Out, "  Market Cap: %s\n", format.Field("marketCap", v))
	}
	if v := snap.Field("trailingPE"); v != nil {
		fmt.Fprintf(p.Out, "  P/E Ratio: %s\n", format.Field("trailingPE", v))
	}
	if v := snap.Field("dividendYield"); v != nil {
		fmt.Fprintf(p.Out, "  Dividend Yield: %s\n", format.Field("dividendYield", v))
	}
}

// specificFields prints the requested keys in request order. Keys outside
// the catalog are reported as not available, whether or not the record
// happens to carry them.
func (p *Presenter) specificFields(snap *model.Snapshot, fields []string) {
	fmt.Fprintf(p.Out, "\n%s\n", p.Palette.Bold.Render("Requested Fields:"))
	for _, key := range fields {
		label, ok := catalog.Label(key)
		if !ok {
			fmt.Fprintf(p.Out, "  %s: Field not available\n", key)
			continue
		}
		fmt.Fprintf(p.Out, "  %s: %s\n", label, format.Field(key, snap.Field(key)))
	}
}

// allFields prints every category that has at least one populated field,
// in catalog order.
func (p *Presenter) allFields(snap *model.Snapshot) {
	for _, c := range catalog.Categories() {
		var rows [][2]string
		for _, f := range c.Fields {
			if v := snap.Field(f.Key); v != nil {
				rows = append(rows, [2]string{f.Label, format.Field(f.Key, v)})
			}
		}
		if len(rows) == 0 {
			continue
		}
		fmt.Fprintf(p.Out, "\n%s\n", p.Palette.Bold.Render(c.Name+":"))
		for _, r := range rows {
			fmt.Fprintf(p.Out, "  %s: %s\n", r[0], r[1])
		}
	}
}

// JSON serializes the record as indented JSON with raw values and no
// timestamp.
func (p *Presenter) JSON(snap *model.Snapshot) error {
	out, err := json.MarshalIndent(snap.Flatten(), "", "  ")
	if err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	_, err = fmt.Fprintln(p.Out, string(out))
	return err
}

// ListFields prints the full catalog with usage examples. No record and
// no network access needed.
func (p *Presenter) ListFields() {
	fmt.Fprintf(p.Out, "%s\n", p.Palette.Bold.Render("Available Fields:"))
	fmt.Fprintf(p.Out, "%s\n", strings.Repeat("=", 50))

	for _, c := range catalog.Categories() {
		fmt.Fprintf(p.Out, "\n%s\n", p.Palette.Bold.Render(c.Name))
		fmt.Fprintf(p.Out, "%s\n", strings.Repeat("-", len(c.Name)))
		for _, f := range c.Fields {
			fmt.Fprintf(p.Out, "  %-25s - %s\n", f.Key, f.Label)
		}
	}

	fmt.Fprintf(p.Out, "\n%s\n", p.Palette.Bold.Render("Usage Examples:"))
	fmt.Fprintf(p.Out, "%s\n", strings.Repeat("-", 20))
	fmt.Fprintln(p.Out, "  stk AAPL --all")
	fmt.Fprintln(p.Out, "  stk NVDA --fields marketCap,trailingPE,dividendYield")
	fmt.Fprintln(p.Out, "  stk TSLA --fields revenue,profitMargins,returnOnEquity")
}
