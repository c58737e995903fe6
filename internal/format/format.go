// Package format turns raw field values into display strings. Formatting
// never fails: unknown keys and non-numeric values degrade to fmt.Sprint.
package format

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Large-number unit thresholds, checked largest first.
const (
	trillion = 1e12
	billion  = 1e9
	million  = 1e6
	thousand = 1e3
)

// ratioFraction fields hold fractions (0.1234 means 12.34%).
var ratioFraction = map[string]bool{
	"dividendYield": true, "payoutRatio": true, "profitMargins": true,
	"operatingMargins": true, "ebitdaMargins": true, "grossMargins": true,
	"returnOnAssets": true, "returnOnEquity": true, "returnOnCapital": true,
	"revenueGrowth": true, "earningsGrowth": true, "earningsQuarterlyGrowth": true,
	"fiftyTwoWeekChangePercent": true, "shortPercentOfFloat": true,
}

// largeCurrency fields are dollar amounts scaled with T/B/M/K suffixes.
var largeCurrency = map[string]bool{
	"marketCap": true, "enterpriseValue": true, "revenue": true,
	"grossProfits": true, "freeCashflow": true, "operatingCashflow": true,
	"targetMeanPrice": true, "targetMedianPrice": true, "targetHighPrice": true,
	"targetLowPrice": true, "fiftyDayAverage": true, "twoHundredDayAverage": true,
	"fiftyTwoWeekLow": true, "fiftyTwoWeekHigh": true, "fiftyTwoWeekChange": true,
	"bookValue": true, "dividendRate": true, "lastDividendValue": true,
}

// plainRatio fields are bare two-decimal numbers.
var plainRatio = map[string]bool{
	"trailingPE": true, "forwardPE": true, "pegRatio": true,
	"priceToBook": true, "enterpriseToRevenue": true, "enterpriseToEbitda": true,
	"priceToSalesTrailing12Months": true, "shortRatio": true,
	"recommendationMean": true,
}

// countFields are grouped-thousands integers.
var countFields = map[string]bool{
	"volume": true, "averageVolume": true, "averageVolume10days": true,
	"bidSize": true, "askSize": true, "floatShares": true,
	"sharesOutstanding": true, "sharesShort": true, "sharesShortPriorMonth": true,
	"numberOfAnalystOpinions": true, "fullTimeEmployees": true,
}

// Formatter renders values for display. The headline currency formatter is
// two-tier: a locale-aware tier when the configured locale and currency
// parse, otherwise a fixed $-format fallback. The tier is picked once in New.
type Formatter struct {
	printer  *message.Printer
	unit     currency.Unit
	localeOK bool
}

// New builds a Formatter for the given BCP-47 locale tag and ISO-4217
// currency code. Unparseable values select the fallback tier.
func New(locale, currencyCode string) *Formatter {
	f := &Formatter{}
	tag, err := language.Parse(locale)
	if err != nil {
		return f
	}
	unit, err := currency.ParseISO(currencyCode)
	if err != nil {
		return f
	}
	f.printer = message.NewPrinter(tag)
	f.unit = unit
	f.localeOK = true
	return f
}

// Currency formats a headline price amount.
func (f *Formatter) Currency(v float64) string {
	if f.localeOK {
		return f.printer.Sprintf("%v", currency.Symbol(f.unit.Amount(v)))
	}
	return "$" + humanize.FormatFloat("#,###.##", v)
}

// SignedPercent formats a percentage with an explicit sign for
// non-negative values.
func SignedPercent(v float64) string {
	return fmt.Sprintf("%+.2f%%", v)
}

// LargeNumber scales a dollar amount by the largest applicable unit.
func LargeNumber(v float64) string {
	switch {
	case v >= trillion:
		return fmt.Sprintf("$%.2fT", v/trillion)
	case v >= billion:
		return fmt.Sprintf("$%.2fB", v/billion)
	case v >= million:
		return fmt.Sprintf("$%.2fM", v/million)
	case v >= thousand:
		return fmt.Sprintf("$%.2fK", v/thousand)
	default:
		return "$" + humanize.FormatFloat("#,###.##", v)
	}
}

// Count formats a count with grouped thousands.
func Count(v float64) string {
	if v == math.Trunc(v) {
		return humanize.Comma(int64(v))
	}
	return humanize.Commaf(v)
}

// Field formats a raw value according to its field key. A nil value is
// always "N/A"; non-numeric values in numeric fields pass through as-is.
func Field(key string, v any) string {
	if v == nil {
		return "N/A"
	}
	n, isNum := toFloat(v)
	switch {
	case ratioFraction[key] && isNum:
		return fmt.Sprintf("%.2f%%", n*100)
	case largeCurrency[key] && isNum:
		return LargeNumber(n)
	case plainRatio[key] && isNum:
		return fmt.Sprintf("%.2f", n)
	case countFields[key] && isNum:
		return Count(n)
	default:
		return fmt.Sprint(v)
	}
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}
