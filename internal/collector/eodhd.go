package collector

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"time"

	"FinCompare/internal/model"
)

// EODHDFetcher implements Fetcher using the EODHD REST API.
type EODHDFetcher struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

// NewEODHDFetcher creates a new fetcher with optional proxy support.
func NewEODHDFetcher(baseURL, apiKey, proxyURL string) *EODHDFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &EODHDFetcher{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

func (f *EODHDFetcher) Name() string { return "eodhd" }

// eodhdFundamentals is the subset of the /fundamentals response this
// tool reads. Yearly statements arrive as date-keyed maps whose values
// are numbers or numeric strings, so they are coerced after decoding.
type eodhdFundamentals struct {
	General *struct {
		Code     string `json:"Code"`
		Name     string `json:"Name"`
		Industry string `json:"Industry"`
	} `json:"General"`
	Highlights *struct {
		MarketCapitalization *float64 `json:"MarketCapitalization"`
		EarningsShare        *float64 `json:"EarningsShare"`
		EPSEstimateNextYear  *float64 `json:"EPSEstimateNextYear"`
		PERatio              *float64 `json:"PERatio"`
	} `json:"Highlights"`
	Valuation *struct {
		TrailingPE *float64 `json:"TrailingPE"`
	} `json:"Valuation"`
	Financials *struct {
		BalanceSheet *struct {
			Yearly map[string]map[string]interface{} `json:"yearly"`
		} `json:"Balance_Sheet"`
		IncomeStatement *struct {
			Yearly map[string]map[string]interface{} `json:"yearly"`
		} `json:"Income_Statement"`
	} `json:"Financials"`
}

// toFloat coerces a yearly-statement value. EODHD serializes most of
// them as strings ("383285000000.00"); absent and "NA" values stay nil.
func toFloat(v interface{}) *float64 {
	switch n := v.(type) {
	case float64:
		return model.Float(n)
	case string:
		if f, err := strconv.ParseFloat(n, 64); err == nil {
			return model.Float(f)
		}
		return nil
	default:
		return nil
	}
}

// FetchFacts retrieves fundamentals and the current quote for one
// company and maps them onto a raw facts record. EODHD carries no
// analyst five-year growth estimate, so that field stays absent.
func (f *EODHDFetcher) FetchFacts(ticker string) (model.RawFinancialFacts, error) {
	var fund eodhdFundamentals
	if err := f.get("/fundamentals/"+url.PathEscape(ticker), &fund); err != nil {
		return model.RawFinancialFacts{}, fmt.Errorf("eodhd fundamentals: %w", err)
	}

	facts := model.RawFinancialFacts{Ticker: ticker}

	if fund.General != nil {
		facts.DisplayName = fund.General.Name
		facts.Industry = fund.General.Industry
	}
	if fund.Highlights != nil {
		facts.MarketCapUSD = fund.Highlights.MarketCapitalization
		facts.TrailingEPS = fund.Highlights.EarningsShare
		facts.ForwardEPS = fund.Highlights.EPSEstimateNextYear
		facts.TrailingPE = fund.Highlights.PERatio
	}
	if fund.Valuation != nil && fund.Valuation.TrailingPE != nil {
		facts.TrailingPE = fund.Valuation.TrailingPE
	}

	if fund.Financials != nil {
		if is := fund.Financials.IncomeStatement; is != nil {
			for _, year := range yearsNewestFirst(is.Yearly) {
				if rev := toFloat(is.Yearly[year]["totalRevenue"]); rev != nil {
					facts.AnnualRevenue = append(facts.AnnualRevenue, *rev)
				}
			}
		}
		if bs := fund.Financials.BalanceSheet; bs != nil {
			if years := yearsNewestFirst(bs.Yearly); len(years) > 0 {
				latest := bs.Yearly[years[0]]
				facts.LongTermDebt = toFloat(latest["longTermDebt"])
				facts.ShortTermDebt = toFloat(latest["shortTermDebt"])
				facts.TotalStockholderEquity = toFloat(latest["totalStockholderEquity"])
			}
		}
	}

	// Fundamentals are end-of-period; the live quote rides a separate
	// endpoint. A failed quote is not fatal: the regular-market close
	// from fundamentals is absent here, so price simply stays unknown.
	var quote struct {
		Close interface{} `json:"close"` // number, or "NA" outside trading hours
	}
	if err := f.get("/real-time/"+url.PathEscape(ticker), &quote); err == nil {
		facts.CurrentPrice = toFloat(quote.Close)
	}

	return facts, nil
}

// yearsNewestFirst sorts the date keys of a yearly statement map
// descending, so index 0 is the latest fiscal year.
func yearsNewestFirst(yearly map[string]map[string]interface{}) []string {
	years := make([]string, 0, len(yearly))
	for y := range yearly {
		years = append(years, y)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(years)))
	return years
}

func (f *EODHDFetcher) get(path string, out interface{}) error {
	endpoint := fmt.Sprintf("%s%s?api_token=%s&fmt=json", f.BaseURL, path, url.QueryEscape(f.APIKey))

	req, err := http.NewRequest("GET", endpoint, nil)
	if err != nil {
		return err
	}
	resp, err := f.Client.Do(req)
	if err != nil {
		return fmt.Errorf("fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("status %d, body: %s", resp.StatusCode, string(body))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	return nil
}
