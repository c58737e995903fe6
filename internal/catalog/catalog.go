// Package catalog is the static registry of known stock fields, their
// categories and display labels. Category order and within-category order
// are display order.
package catalog

// Field is a single catalog entry.
type Field struct {
	Key   string
	Label string
}

// Category groups fields under a display heading.
type Category struct {
	Name   string
	Fields []Field
}

var categories = []Category{
	{Name: "Basic Info", Fields: []Field{
		{"longName", "Company Name"},
		{"shortName", "Short Name"},
		{"symbol", "Symbol"},
		{"exchange", "Exchange"},
		{"quoteType", "Quote Type"},
		{"market", "Market"},
		{"marketState", "Market State"},
		{"currency", "Currency"},
		{"timeZoneFullName", "Time Zone"},
	}},
	{Name: "Price & Volume", Fields: []Field{
		{"currentPrice", "Current Price"},
		{"previousClose", "Previous Close"},
		{"open", "Open"},
		{"dayLow", "Day Low"},
		{"dayHigh", "Day High"},
		{"volume", "Volume"},
		{"averageVolume", "Avg Volume"},
		{"averageVolume10days", "Avg Volume (10d)"},
		{"bid", "Bid"},
		{"ask", "Ask"},
		{"bidSize", "Bid Size"},
		{"askSize", "Ask Size"},
	}},
	{Name: "Market Metrics", Fields: []Field{
		{"marketCap", "Market Cap"},
		{"enterpriseValue", "Enterprise Value"},
		{"floatShares", "Float Shares"},
		{"sharesOutstanding", "Shares Outstanding"},
		{"sharesShort", "Shares Short"},
		{"sharesShortPreviousMonthDate", "Short Month Date"},
		{"sharesShortPriorMonth", "Short Prior Month"},
		{"shortRatio", "Short Ratio"},
		{"shortPercentOfFloat", "Short % of Float"},
	}},
	{Name: "Valuation Ratios", Fields: []Field{
		{"trailingPE", "P/E Ratio (TTM)"},
		{"forwardPE", "Forward P/E"},
		{"pegRatio", "PEG Ratio"},
		{"priceToBook", "Price/Book"},
		{"enterpriseToRevenue", "Enterprise/Revenue"},
		{"enterpriseToEbitda", "Enterprise/EBITDA"},
		{"bookValue", "Book Value"},
		{"priceToSalesTrailing12Months", "Price/Sales"},
	}},
	{Name: "Financial Metrics", Fields: []Field{
		{"revenue", "Revenue"},
		{"revenuePerShare", "Revenue/Share"},
		{"revenueGrowth", "Revenue Growth"},
		{"grossProfits", "Gross Profits"},
		{"freeCashflow", "Free Cash Flow"},
		{"operatingCashflow", "Operating Cash Flow"},
		{"earningsGrowth", "Earnings Growth"},
		{"earningsQuarterlyGrowth", "Quarterly Earnings Growth"},
		{"returnOnAssets", "ROA"},
		{"returnOnEquity", "ROE"},
		{"returnOnCapital", "ROIC"},
		{"profitMargins", "Profit Margin"},
		{"operatingMargins", "Operating Margin"},
		{"ebitdaMargins", "EBITDA Margin"},
		{"grossMargins", "Gross Margin"},
	}},
	{Name: "Dividend Info", Fields: []Field{
		{"dividendRate", "Dividend Rate"},
		{"dividendYield", "Dividend Yield"},
		{"payoutRatio", "Payout Ratio"},
		{"fiveYearAvgDividendYield", "5Y Avg Dividend Yield"},
		{"exDividendDate", "Ex-Dividend Date"},
		{"lastDividendDate", "Last Dividend Date"},
		{"lastDividendValue", "Last Dividend Value"},
	}},
	{Name: "Analyst Info", Fields: []Field{
		{"targetMeanPrice", "Target Mean Price"},
		{"targetMedianPrice", "Target Median Price"},
		{"targetHighPrice", "Target High Price"},
		{"targetLowPrice", "Target Low Price"},
		{"numberOfAnalystOpinions", "Analyst Opinions"},
		{"recommendationMean", "Recommendation"},
		{"recommendationKey", "Recommendation Key"},
	}},
	{Name: "Technical Indicators", Fields: []Field{
		{"fiftyDayAverage", "50-Day Average"},
		{"twoHundredDayAverage", "200-Day Average"},
		{"fiftyTwoWeekLow", "52-Week Low"},
		{"fiftyTwoWeekHigh", "52-Week High"},
		{"fiftyTwoWeekChange", "52-Week Change"},
		{"fiftyTwoWeekChangePercent", "52-Week Change %"},
	}},
	{Name: "Company Info", Fields: []Field{
		{"industry", "Industry"},
		{"sector", "Sector"},
		{"country", "Country"},
		{"state", "State"},
		{"city", "City"},
		{"zip", "ZIP"},
		{"phone", "Phone"},
		{"website", "Website"},
		{"businessSummary", "Business Summary"},
		{"fullTimeEmployees", "Full-Time Employees"},
	}},
}

// labels is the flat key -> label lookup, derived once at init so the
// ordered tables above stay the single source of truth.
var labels map[string]string

func init() {
	labels = make(map[string]string)
	for _, c := range categories {
		for _, f := range c.Fields {
			labels[f.Key] = f.Label
		}
	}
}

// Categories returns all categories in display order. The returned slice
// is shared read-only data and must not be modified.
func Categories() []Category {
	return categories
}

// Label returns the display label for a field key.
func Label(key string) (string, bool) {
	l, ok := labels[key]
	return l, ok
}

// Has reports whether key is a known catalog field.
func Has(key string) bool {
	_, ok := labels[key]
	return ok
}

// Len returns the total number of catalog fields.
func Len() int {
	return len(labels)
}
