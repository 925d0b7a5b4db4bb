package config

import (
	"fmt"
	"os"
	"strconv"
)

const (
	defaultSymbol      = "TSLA"
	defaultCompany     = "Tesla Inc"
	defaultThreshold   = 1
	defaultMaxArticles = 3
)

// Config carries everything one run needs. Values are read from the
// environment once at startup and stay immutable for the run.
type Config struct {
	Symbol      string
	Company     string
	Threshold   int
	MaxArticles int

	AlphaVantageKey string
	FinnhubKey      string
	NewsAPIKey      string
	MassiveKey      string

	TwilioAccountSID string
	TwilioAuthToken  string
	FromNumber       string
	ToNumber         string
}

// Load reads configuration from the environment, applying defaults for the
// tunables and validating the credentials a run cannot do without.
func Load() (*Config, error) {
	cfg := &Config{
		Symbol:      defaultSymbol,
		Company:     defaultCompany,
		Threshold:   defaultThreshold,
		MaxArticles: defaultMaxArticles,

		AlphaVantageKey:  os.Getenv("ALPHA_VANTAGE_API_KEY"),
		FinnhubKey:       os.Getenv("FINNHUB_API_KEY"),
		NewsAPIKey:       os.Getenv("NEWS_API_KEY"),
		MassiveKey:       os.Getenv("MASSIVE_API_KEY"),
		TwilioAccountSID: os.Getenv("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:  os.Getenv("TWILIO_AUTH_TOKEN"),
		FromNumber:       os.Getenv("TWILIO_FROM_NUMBER"),
		ToNumber:         os.Getenv("TWILIO_TO_NUMBER"),
	}

	if v := os.Getenv("STOCK_SYMBOL"); v != "" {
		cfg.Symbol = v
	}
	if v := os.Getenv("COMPANY_NAME"); v != "" {
		cfg.Company = v
	}
	if v := os.Getenv("PERCENT_THRESHOLD"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("invalid PERCENT_THRESHOLD %q", v)
		}
		cfg.Threshold = n
	}
	if v := os.Getenv("MAX_ARTICLES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("invalid MAX_ARTICLES %q", v)
		}
		cfg.MaxArticles = n
	}

	if cfg.AlphaVantageKey == "" && cfg.FinnhubKey == "" {
		return nil, fmt.Errorf("no quote provider API key configured (set ALPHA_VANTAGE_API_KEY or FINNHUB_API_KEY)")
	}
	if cfg.TwilioAccountSID == "" || cfg.TwilioAuthToken == "" {
		return nil, fmt.Errorf("twilio credentials missing (set TWILIO_ACCOUNT_SID and TWILIO_AUTH_TOKEN)")
	}
	if cfg.FromNumber == "" || cfg.ToNumber == "" {
		return nil, fmt.Errorf("sender or recipient number missing (set TWILIO_FROM_NUMBER and TWILIO_TO_NUMBER)")
	}

	return cfg, nil
}
