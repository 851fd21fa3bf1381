package collector

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"FinCompare/internal/model"
)

// yahooModules are the quoteSummary modules that together carry every
// field of a raw facts record.
const yahooModules = "price,summaryProfile,summaryDetail,defaultKeyStatistics,financialData,earningsTrend,incomeStatementHistory,balanceSheetHistory"

// YahooFetcher implements Fetcher using the Yahoo Finance quoteSummary API.
type YahooFetcher struct {
	BaseURL string
	Client  *http.Client
}

// NewYahooFetcher creates a new Yahoo Finance fetcher with optional
// proxy support.
func NewYahooFetcher(proxyURL string) *YahooFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &YahooFetcher{
		BaseURL: "https://query1.finance.yahoo.com",
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

func (f *YahooFetcher) Name() string { return "yahoo" }

// yfValue is Yahoo's wrapped numeric. A nil pointer to it means the
// provider omitted the field entirely.
type yfValue struct {
	Raw float64 `json:"raw"`
	Fmt string  `json:"fmt"`
}

func (v *yfValue) float() *float64 {
	if v == nil {
		return nil
	}
	return model.Float(v.Raw)
}

// yahooSummary is the response structure from the quoteSummary API.
// Modules the account tier does not include simply stay nil.
type yahooSummary struct {
	QuoteSummary struct {
		Result []struct {
			Price *struct {
				Symbol             string   `json:"symbol"`
				ShortName          string   `json:"shortName"`
				LongName           string   `json:"longName"`
				RegularMarketPrice *yfValue `json:"regularMarketPrice"`
				MarketCap          *yfValue `json:"marketCap"`
			} `json:"price"`
			SummaryProfile *struct {
				Industry string `json:"industry"`
				Sector   string `json:"sector"`
			} `json:"summaryProfile"`
			SummaryDetail *struct {
				TrailingPE *yfValue `json:"trailingPE"`
			} `json:"summaryDetail"`
			DefaultKeyStatistics *struct {
				TrailingEps *yfValue `json:"trailingEps"`
				ForwardEps  *yfValue `json:"forwardEps"`
			} `json:"defaultKeyStatistics"`
			FinancialData *struct {
				CurrentPrice *yfValue `json:"currentPrice"`
				TotalDebt    *yfValue `json:"totalDebt"`
			} `json:"financialData"`
			EarningsTrend *struct {
				Trend []struct {
					Period string   `json:"period"`
					Growth *yfValue `json:"growth"`
				} `json:"trend"`
			} `json:"earningsTrend"`
			IncomeStatementHistory *struct {
				Statements []struct {
					TotalRevenue *yfValue `json:"totalRevenue"`
				} `json:"incomeStatementHistory"`
			} `json:"incomeStatementHistory"`
			BalanceSheetHistory *struct {
				Statements []struct {
					LongTermDebt           *yfValue `json:"longTermDebt"`
					ShortTermDebt          *yfValue `json:"shortTermDebt"`
					TotalStockholderEquity *yfValue `json:"totalStockholderEquity"`
				} `json:"balanceSheetStatements"`
			} `json:"balanceSheetHistory"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"quoteSummary"`
}

// FetchFacts retrieves one company's fundamentals in a single
// quoteSummary call and maps them onto a raw facts record.
func (f *YahooFetcher) FetchFacts(ticker string) (model.RawFinancialFacts, error) {
	u := fmt.Sprintf("%s/v10/finance/quoteSummary/%s?modules=%s",
		f.BaseURL, url.PathEscape(ticker), yahooModules)

	req, err := http.NewRequest("GET", u, nil)
	if err != nil {
		return model.RawFinancialFacts{}, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := f.Client.Do(req)
	if err != nil {
		return model.RawFinancialFacts{}, fmt.Errorf("yahoo fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return model.RawFinancialFacts{}, fmt.Errorf("yahoo read body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return model.RawFinancialFacts{}, fmt.Errorf("yahoo: status %d, body: %s", resp.StatusCode, string(body))
	}

	var summary yahooSummary
	if err := json.Unmarshal(body, &summary); err != nil {
		return model.RawFinancialFacts{}, fmt.Errorf("yahoo decode: %w", err)
	}
	if summary.QuoteSummary.Error != nil {
		return model.RawFinancialFacts{}, fmt.Errorf("yahoo api error: %s", summary.QuoteSummary.Error.Description)
	}
	if len(summary.QuoteSummary.Result) == 0 {
		return model.RawFinancialFacts{}, fmt.Errorf("yahoo: no data returned for %s", ticker)
	}

	result := summary.QuoteSummary.Result[0]
	facts := model.RawFinancialFacts{Ticker: ticker}

	if result.Price != nil {
		facts.DisplayName = result.Price.ShortName
		if facts.DisplayName == "" {
			facts.DisplayName = result.Price.LongName
		}
		facts.RegularMarketPrice = result.Price.RegularMarketPrice.float()
		facts.MarketCapUSD = result.Price.MarketCap.float()
	}
	if result.SummaryProfile != nil {
		facts.Industry = result.SummaryProfile.Industry
	}
	if result.SummaryDetail != nil {
		facts.TrailingPE = result.SummaryDetail.TrailingPE.float()
	}
	if result.DefaultKeyStatistics != nil {
		facts.TrailingEPS = result.DefaultKeyStatistics.TrailingEps.float()
		facts.ForwardEPS = result.DefaultKeyStatistics.ForwardEps.float()
	}
	if result.FinancialData != nil {
		facts.CurrentPrice = result.FinancialData.CurrentPrice.float()
		facts.TotalDebt = result.FinancialData.TotalDebt.float()
	}
	if result.EarningsTrend != nil {
		// The analyst five-year estimate rides in the "+5y" trend entry,
		// as a decimal fraction.
		for _, trend := range result.EarningsTrend.Trend {
			if trend.Period == "+5y" {
				facts.FiveYearGrowthEstimate = trend.Growth.float()
				break
			}
		}
	}
	if result.IncomeStatementHistory != nil {
		// Yahoo returns annual statements newest first, which is the
		// order the engine expects.
		for _, st := range result.IncomeStatementHistory.Statements {
			if st.TotalRevenue != nil {
				facts.AnnualRevenue = append(facts.AnnualRevenue, st.TotalRevenue.Raw)
			}
		}
	}
	if result.BalanceSheetHistory != nil && len(result.BalanceSheetHistory.Statements) > 0 {
		latest := result.BalanceSheetHistory.Statements[0]
		facts.LongTermDebt = latest.LongTermDebt.float()
		facts.ShortTermDebt = latest.ShortTermDebt.float()
		facts.TotalStockholderEquity = latest.TotalStockholderEquity.float()
	}

	return facts, nil
}
