package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/IDES0/StockCLI/internal/chart"
	"github.com/IDES0/StockCLI/internal/config"
	"github.com/IDES0/StockCLI/internal/display"
	"github.com/IDES0/StockCLI/internal/format"
	"github.com/IDES0/StockCLI/internal/quote"
	"github.com/IDES0/StockCLI/internal/recorder"
)

type options struct {
	detailed   bool
	jsonOut    bool
	noColors   bool
	showChart  bool
	period     string
	chartType  string
	all        bool
	fields     []string
	listFields bool
}

func main() {
	log.SetFlags(0)

	opts := &options{}
	root := &cobra.Command{
		Use:   "stk [symbol]",
		Short: "Get real-time stock information",
		Example: `  stk NVDA                    basic info for NVIDIA
  stk AAPL -d                 detailed info for Apple
  stk TSLA --json             JSON output for Tesla
  stk NVDA --chart            price chart for NVIDIA
  stk AAPL --chart --period 3mo --type volume
  stk NVDA --all              all available metrics by category
  stk AAPL --fields marketCap,trailingPE,dividendYield
  stk --list-fields           list all available fields`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return run(opts, args)
		},
	}

	f := root.Flags()
	f.BoolVarP(&opts.detailed, "detailed", "d", false, "show detailed information including market cap, P/E ratio, etc.")
	f.BoolVar(&opts.jsonOut, "json", false, "output data in JSON format")
	f.BoolVar(&opts.noColors, "no-colors", false, "disable colored output")
	f.BoolVar(&opts.showChart, "chart", false, "display a chart of historical data")
	f.StringVar(&opts.period, "period", "1mo", "time period for chart data ("+strings.Join(quote.Periods(), "|")+")")
	f.StringVar(&opts.chartType, "type", "line", "chart type (line|candlestick|volume)")
	f.BoolVar(&opts.all, "all", false, "show all available metrics organized by category")
	f.StringSliceVar(&opts.fields, "fields", nil, "show specific fields (e.g. marketCap,trailingPE,dividendYield)")
	f.BoolVar(&opts.listFields, "list-fields", false, "list all available fields and exit")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(opts *options, args []string) error {
	if !quote.ValidPeriod(opts.period) {
		return fmt.Errorf("invalid --period %q (valid: %s)", opts.period, strings.Join(quote.Periods(), ", "))
	}
	switch opts.chartType {
	case "line", "candlestick", "volume":
	default:
		return fmt.Errorf("invalid --type %q (valid: line, candlestick, volume)", opts.chartType)
	}

	cfg, err := config.Load(config.DefaultPath())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	colors := !opts.noColors && !cfg.NoColors && isatty.IsTerminal(os.Stdout.Fd())
	pres := &display.Presenter{
		Out:       os.Stdout,
		Palette:   display.NewPalette(colors),
		Formatter: format.New(cfg.Locale, cfg.Currency),
	}

	if opts.listFields {
		pres.ListFields()
		return nil
	}

	if len(args) == 0 {
		return fmt.Errorf("symbol is required unless using --list-fields")
	}
	symbol := args[0]

	svc := quote.NewService(quote.NewYahooProvider(cfg.Proxy))

	if opts.showChart {
		r := &chart.Renderer{
			Plotter: &chart.AsciiPlotter{Color: colors},
			Quotes:  svc,
			Out:     os.Stdout,
		}
		r.Render(symbol, opts.period, opts.chartType)
		return nil
	}

	snap, err := svc.Snapshot(symbol)
	if err != nil {
		fmt.Printf("Could not fetch data for symbol: %s\n", strings.ToUpper(strings.TrimSpace(symbol)))
		fmt.Println("Please check the symbol and try again.")
		os.Exit(1)
	}

	rec := newRecorder(cfg)
	defer rec.Close()
	if err := rec.RecordSnapshot(snap); err != nil {
		log.Printf("[WARN] record snapshot: %v", err)
	}

	if opts.jsonOut {
		return pres.JSON(snap)
	}
	pres.Show(snap, display.Options{
		Detailed: opts.detailed,
		Fields:   opts.fields,
		All:      opts.all,
	})
	return nil
}

func newRecorder(cfg *config.Config) recorder.Recorder {
	if cfg.History.SQLitePath == "" {
		return recorder.NewNoopRecorder()
	}
	r, err := recorder.NewSQLiteRecorder(cfg.History.SQLitePath)
	if err != nil {
		log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
		return recorder.NewNoopRecorder()
	}
	return r
}
