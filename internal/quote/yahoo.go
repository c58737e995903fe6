package quote

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	finance "github.com/piquette/finance-go"
	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
	"github.com/piquette/finance-go/equity"
	"github.com/tidwall/gjson"

	"github.com/IDES0/StockCLI/internal/catalog"
	"github.com/IDES0/StockCLI/internal/model"
)

const summaryURL = "https://query1.finance.yahoo.com/v10/finance/quoteSummary"

// quoteSummary modules that carry catalog fields beyond the plain quote.
var summaryModules = []string{
	"price",
	"summaryDetail",
	"summaryProfile",
	"defaultKeyStatistics",
	"financialData",
}

// YahooProvider implements Provider using Yahoo Finance.
type YahooProvider struct {
	Client *http.Client
}

// NewYahooProvider creates a new Yahoo Finance provider.
func NewYahooProvider(proxyURL string) *YahooProvider {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	client := &http.Client{
		Timeout:   30 * time.Second,
		Transport: transport,
	}
	finance.SetHTTPClient(client)
	return &YahooProvider{Client: client}
}

func (p *YahooProvider) Name() string { return "yahoo" }

// Info fetches the equity quote and merges in the quoteSummary modules.
// The quoteSummary call is supplementary: its failure does not fail Info.
func (p *YahooProvider) Info(symbol string) (map[string]any, error) {
	eq, err := equity.Get(symbol)
	if err != nil {
		return nil, fmt.Errorf("yahoo equity: %w", err)
	}
	if eq == nil {
		return nil, fmt.Errorf("yahoo equity: empty response for %s", symbol)
	}

	info := make(map[string]any)
	putStr := func(key, v string) {
		if v != "" {
			info[key] = v
		}
	}
	putNum := func(key string, v float64) {
		if v != 0 {
			info[key] = v
		}
	}

	putStr("symbol", eq.Symbol)
	putStr("shortName", eq.ShortName)
	putStr("longName", eq.LongName)
	putStr("exchange", eq.ExchangeID)
	putStr("quoteType", string(eq.QuoteType))
	putStr("market", eq.MarketID)
	putStr("marketState", string(eq.MarketState))
	putStr("currency", eq.CurrencyID)
	putStr("timeZoneFullName", eq.ExchangeTimezoneName)

	putNum("currentPrice", eq.RegularMarketPrice)
	putNum("previousClose", eq.RegularMarketPreviousClose)
	putNum("open", eq.RegularMarketOpen)
	putNum("dayLow", eq.RegularMarketDayLow)
	putNum("dayHigh", eq.RegularMarketDayHigh)
	putNum("volume", float64(eq.RegularMarketVolume))
	putNum("averageVolume", float64(eq.AverageDailyVolume3Month))
	putNum("averageVolume10days", float64(eq.AverageDailyVolume10Day))
	putNum("bid", eq.Bid)
	putNum("ask", eq.Ask)
	putNum("bidSize", float64(eq.BidSize))
	putNum("askSize", float64(eq.AskSize))

	putNum("marketCap", float64(eq.MarketCap))
	putNum("sharesOutstanding", float64(eq.SharesOutstanding))
	putNum("trailingPE", eq.TrailingPE)
	putNum("forwardPE", eq.ForwardPE)
	putNum("priceToBook", eq.PriceToBook)
	putNum("bookValue", eq.BookValue)
	putNum("dividendRate", eq.TrailingAnnualDividendRate)
	putNum("dividendYield", eq.TrailingAnnualDividendYield)
	putNum("fiftyDayAverage", eq.FiftyDayAverage)
	putNum("twoHundredDayAverage", eq.TwoHundredDayAverage)
	putNum("fiftyTwoWeekLow", eq.FiftyTwoWeekLow)
	putNum("fiftyTwoWeekHigh", eq.FiftyTwoWeekHigh)

	if err := p.enrich(symbol, info); err != nil {
		// Quote data alone is still a usable snapshot.
		log.Printf("[WARN] quoteSummary for %s: %v", symbol, err)
	}
	return info, nil
}

// enrich merges catalog fields from the quoteSummary endpoint into info.
// Existing keys are not overwritten.
func (p *YahooProvider) enrich(symbol string, info map[string]any) error {
	u := fmt.Sprintf("%s/%s?modules=%s", summaryURL,
		url.PathEscape(symbol), strings.Join(summaryModules, ","))

	req, err := http.NewRequest(http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := p.Client.Do(req)
	if err != nil {
		return fmt.Errorf("yahoo summary: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("yahoo summary read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("yahoo summary: status %d", resp.StatusCode)
	}

	result := gjson.GetBytes(body, "quoteSummary.result.0")
	if !result.Exists() {
		return fmt.Errorf("yahoo summary: no result for %s", symbol)
	}

	for _, mod := range summaryModules {
		module := result.Get(mod)
		if !module.Exists() {
			continue
		}
		module.ForEach(func(k, v gjson.Result) bool {
			key := k.String()
			if !catalog.Has(key) {
				return true
			}
			if _, ok := info[key]; ok {
				return true
			}
			if val := summaryValue(v); val != nil {
				info[key] = val
			}
			return true
		})
	}
	return nil
}

// summaryValue unwraps a quoteSummary value. Numeric fields arrive as
// {raw, fmt} envelopes; strings and plain numbers arrive bare.
func summaryValue(v gjson.Result) any {
	switch {
	case v.IsObject():
		if raw := v.Get("raw"); raw.Exists() {
			return raw.Value()
		}
		return nil
	case v.Type == gjson.String:
		if v.String() == "" {
			return nil
		}
		return v.String()
	case v.Type == gjson.Number:
		return v.Float()
	case v.Type == gjson.True, v.Type == gjson.False:
		return v.Bool()
	default:
		return nil
	}
}

// DailyBars fetches daily OHLCV bars between start and now.
func (p *YahooProvider) DailyBars(symbol string, start time.Time) ([]model.Bar, error) {
	now := time.Now()
	params := &chart.Params{
		Symbol:   symbol,
		Start:    datetime.New(&start),
		End:      datetime.New(&now),
		Interval: datetime.OneDay,
	}

	iter := chart.Get(params)
	var bars []model.Bar
	for iter.Next() {
		b := iter.Bar()
		bars = append(bars, model.Bar{
			Time:   time.Unix(int64(b.Timestamp), 0),
			Open:   b.Open.InexactFloat64(),
			High:   b.High.InexactFloat64(),
			Low:    b.Low.InexactFloat64(),
			Close:  b.Close.InexactFloat64(),
			Volume: float64(b.Volume),
		})
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("yahoo chart: %w", err)
	}

	sort.Slice(bars, func(i, j int) bool { return bars[i].Time.Before(bars[j].Time) })
	return bars, nil
}
