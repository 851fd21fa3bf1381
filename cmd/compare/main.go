package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"FinCompare/internal/collector"
	"FinCompare/internal/config"
	"FinCompare/internal/table"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	tickersFlag := flag.String("tickers", "", "comma-separated tickers to compare (default: configured list)")
	formatFlag := flag.String("format", "", "output format: text, markdown, or csv (default: configured format)")
	describeFlag := flag.Bool("describe", false, "print the metric reference and exit")
	flag.Parse()

	if *describeFlag {
		fmt.Print(table.Describe())
		return
	}

	log.Println("[INFO] FinCompare starting...")

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if *formatFlag != "" {
		cfg.Output.Format = *formatFlag
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	tickers := cfg.Tickers
	if *tickersFlag != "" {
		tickers = splitTickers(*tickersFlag)
	}
	if len(tickers) == 0 {
		log.Fatal("[FATAL] select at least one company")
	}

	// Init fetcher
	var fetcher collector.Fetcher
	switch strings.ToLower(cfg.DataSource.Provider) {
	case "yahoo":
		fetcher = collector.NewYahooFetcher(cfg.Proxy)
	case "eodhd":
		fetcher = collector.NewEODHDFetcher(cfg.DataSource.BaseURL, cfg.DataSource.APIKey, cfg.Proxy)
	default:
		fetcher = collector.NewMockFetcher()
	}
	log.Printf("[INFO] data source: %s", fetcher.Name())

	col := collector.NewCollector(fetcher)
	reports := col.Collect(tickers)
	grid := table.Assemble(reports)
	fmt.Print(table.Render(grid, cfg.Output.Format))
}

// splitTickers parses a comma-separated ticker list, dropping blanks and
// normalizing to upper case.
func splitTickers(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		t := strings.ToUpper(strings.TrimSpace(part))
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}
