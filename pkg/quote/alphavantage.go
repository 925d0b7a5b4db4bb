package quote

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"
)

type AlphaVantageClient struct {
	apiKey     string
	httpClient *http.Client
}

func NewAlphaVantageClient(apiKey string) *AlphaVantageClient {
	return &AlphaVantageClient{
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *AlphaVantageClient) Name() string {
	return "AlphaVantage"
}

func (c *AlphaVantageClient) Fetch(symbol string) ([]DailyBar, error) {
	url := fmt.Sprintf(
		"https://www.alphavantage.co/query?function=TIME_SERIES_DAILY&symbol=%s&apikey=%s",
		symbol, c.apiKey,
	)

	resp, err := c.httpClient.Get(url)
	if err != nil {
		return nil, fmt.Errorf("%w: alphavantage fetch: %v", ErrProvider, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("%w: alphavantage http %d: %s",
			ErrProvider, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var raw avResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: alphavantage decode: %v", ErrDataShape, err)
	}

	if len(raw.Series) == 0 {
		if msg := raw.errorText(); msg != "" {
			return nil, fmt.Errorf("%w: alphavantage: %s", ErrDataShape, msg)
		}
		return nil, fmt.Errorf("%w: alphavantage: daily series missing", ErrDataShape)
	}

	bars := make([]DailyBar, 0, len(raw.Series))
	for key, entry := range raw.Series {
		date, err := time.Parse("2006-01-02", key)
		if err != nil {
			continue
		}
		bars = append(bars, DailyBar{Date: date, Close: entry.Close})
	}

	// Map order means nothing; sort newest first.
	sort.Slice(bars, func(i, j int) bool { return bars[i].Date.After(bars[j].Date) })

	if len(bars) < 2 {
		return nil, fmt.Errorf("%w: alphavantage returned %d daily bars", ErrInsufficientData, len(bars))
	}

	return bars, nil
}

type avResponse struct {
	Series       map[string]avBar `json:"Time Series (Daily)"`
	Note         string           `json:"Note"`
	Information  string           `json:"Information"`
	ErrorMessage string           `json:"Error Message"`
}

type avBar struct {
	Close string `json:"4. close"`
}

// errorText surfaces whatever explanation the provider put in place of the
// series, such as a rate-limit note or an invalid-symbol message.
func (r avResponse) errorText() string {
	switch {
	case r.ErrorMessage != "":
		return r.ErrorMessage
	case r.Note != "":
		return r.Note
	case r.Information != "":
		return r.Information
	}
	return ""
}
