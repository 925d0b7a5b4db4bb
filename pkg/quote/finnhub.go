package quote

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	finnhub "github.com/Finnhub-Stock-API/finnhub-go/v2"
)

type FinnHubClient struct {
	client *finnhub.DefaultApiService
}

func NewFinnHubClient(apiKey string) *FinnHubClient {
	cfg := finnhub.NewConfiguration()
	cfg.AddDefaultHeader("X-Finnhub-Token", apiKey)
	client := finnhub.NewAPIClient(cfg).DefaultApi
	return &FinnHubClient{client: client}
}

func (c *FinnHubClient) Name() string {
	return "FinnHub"
}

func (c *FinnHubClient) Fetch(symbol string) ([]DailyBar, error) {
	// A two-week window leaves enough room for weekends and market holidays
	// around the two most recent sessions.
	to := time.Now()
	from := to.AddDate(0, 0, -14)

	res, _, err := c.client.StockCandles(context.Background()).
		Symbol(symbol).
		Resolution("D").
		From(from.Unix()).
		To(to.Unix()).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("%w: finnhub candles: %v", ErrProvider, err)
	}

	if s := res.GetS(); s != "ok" {
		return nil, fmt.Errorf("%w: finnhub candle status %q", ErrDataShape, s)
	}

	closes := res.GetC()
	stamps := res.GetT()
	if len(closes) != len(stamps) {
		return nil, fmt.Errorf("%w: finnhub candle arrays mismatched", ErrDataShape)
	}

	bars := make([]DailyBar, 0, len(closes))
	for i := range closes {
		bars = append(bars, DailyBar{
			Date:  time.Unix(stamps[i], 0).UTC(),
			Close: strconv.FormatFloat(float64(closes[i]), 'f', -1, 32),
		})
	}

	sort.Slice(bars, func(i, j int) bool { return bars[i].Date.After(bars[j].Date) })

	if len(bars) < 2 {
		return nil, fmt.Errorf("%w: finnhub returned %d daily bars", ErrInsufficientData, len(bars))
	}

	return bars, nil
}
