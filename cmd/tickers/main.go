// Command tickers prints the current top USDT markets the same way the
// dashboard's ticker board renders them.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/nattawatt/binance-thb-dashboard/internal/config"
	"github.com/nattawatt/binance-thb-dashboard/internal/exchange/binance"
	"github.com/nattawatt/binance-thb-dashboard/internal/rates"
	"github.com/nattawatt/binance-thb-dashboard/internal/view"
)

func main() {
	limit := flag.Int("limit", 20, "number of markets to print (max 50)")
	flag.Parse()

	_ = godotenv.Load()
	cfg := config.Load()

	logger := logrus.New()
	logger.SetLevel(logrus.WarnLevel)

	client := binance.NewClient(binance.Config{
		BaseURL: cfg.Binance.BaseURL,
		Timeout: cfg.HTTPTimeout,
	})
	converter := rates.NewConverter(cfg.Rates.URL, cfg.HTTPTimeout, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	tickers, err := client.GetTicker24hr(ctx, "")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to fetch tickers: %v\n", err)
		os.Exit(1)
	}

	rate := converter.USDTToTHB(ctx)
	shaped := view.ShapeTickers(tickers, rate)
	if *limit > 0 && len(shaped) > *limit {
		shaped = shaped[:*limit]
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle(fmt.Sprintf("TOP USDT MARKETS (1 USDT = %.2f THB)", rate))
	t.SetStyle(table.StyleRounded)

	t.AppendHeader(table.Row{"#", "Symbol", "Last (USDT)", "Last (THB)", "24h %", "Quote Volume"})
	for i, ticker := range shaped {
		t.AppendRow(table.Row{
			i + 1,
			ticker.Symbol,
			ticker.LastPrice,
			ticker.LastPriceTHB,
			ticker.PriceChangePercent,
			formatVolume(ticker.QuoteVolume),
		})
	}

	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
		{Number: 6, Align: text.AlignRight},
	})

	t.Render()
}

func formatVolume(quoteVolume string) string {
	v, err := strconv.ParseFloat(quoteVolume, 64)
	if err != nil {
		return quoteVolume
	}
	switch {
	case v >= 1e9:
		return fmt.Sprintf("%.2fB", v/1e9)
	case v >= 1e6:
		return fmt.Sprintf("%.2fM", v/1e6)
	case v >= 1e3:
		return fmt.Sprintf("%.2fK", v/1e3)
	default:
		return fmt.Sprintf("%.2f", v)
	}
}
