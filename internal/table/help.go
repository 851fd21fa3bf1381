package table

// Describe returns the metric reference printed by the -describe flag.
func Describe() string {
	return `Understanding the Metrics

  Market Cap (B)    Total market value of the company's shares, in
                    billions of US dollars.
  1Yr Sales Growth  Percentage increase in revenue over the most recent
                    fiscal year. Higher is generally better for growth.
  5Yr Sales Growth  Average annual revenue growth over the past five
                    fiscal years. Indicates consistent long-term growth.
  Debt to Equity    Proportion of debt to shareholder equity financing
                    the company's assets. Lower generally means less
                    reliance on debt, but norms vary by industry.
  PEG Ratio         Price-to-earnings ratio divided by the expected
                    earnings growth rate. Around 1.0 is often considered
                    fair value; below 1 may indicate an undervalued
                    stock, above 2 an overvalued one relative to growth.
  Trailing P/E      Share price divided by earnings per share over the
                    trailing twelve months.

  N/A marks a value the data source could not supply or a formula whose
  inputs were missing or invalid. Inf marks a ratio with a zero base,
  such as debt against zero equity.

Disclaimer: the built-in mock data source serves fixed demonstration
figures. Real-world financial data varies and should be sourced from
reliable providers, and metrics should always be read in the context of
industry, company size, and overall economic conditions. This is
not financial advice.
`
}
