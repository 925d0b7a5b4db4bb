package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/Ivan-lemos/Stock-News-Monitoring-Project/internal/alert"
	"github.com/Ivan-lemos/Stock-News-Monitoring-Project/internal/config"
	"github.com/Ivan-lemos/Stock-News-Monitoring-Project/pkg/news"
	"github.com/Ivan-lemos/Stock-News-Monitoring-Project/pkg/quote"
	"github.com/Ivan-lemos/Stock-News-Monitoring-Project/pkg/sms"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)).With("run_id", uuid.NewString()))

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("error loading configuration: %v", err)
	}

	// config.Load guarantees at least one quote source key is set.
	var quotes quote.QuoteClient
	if cfg.AlphaVantageKey != "" {
		quotes = quote.NewAlphaVantageClient(cfg.AlphaVantageKey)
	} else {
		quotes = quote.NewFinnHubClient(cfg.FinnhubKey)
	}

	// Keyed sources first, in preference order. The keyless Yahoo feed is
	// always available as a last resort.
	var newsClients []news.NewsClient
	if cfg.NewsAPIKey != "" {
		newsClients = append(newsClients, news.NewNewsAPIClient(cfg.NewsAPIKey))
	}
	if cfg.FinnhubKey != "" {
		newsClients = append(newsClients, news.NewFinnHubClient(cfg.FinnhubKey))
	}
	if cfg.AlphaVantageKey != "" {
		newsClients = append(newsClients, news.NewAlphaVantageClient(cfg.AlphaVantageKey))
	}
	if cfg.MassiveKey != "" {
		newsClients = append(newsClients, news.NewMassiveClient(cfg.MassiveKey))
	}
	newsClients = append(newsClients, news.NewYahooClient())

	sender := sms.NewTwilioSender(cfg.TwilioAccountSID, cfg.TwilioAuthToken)

	report := alert.NewRunner(cfg, quotes, newsClients, sender).Run()

	if report.Outcome == alert.OutcomeAborted {
		slog.Error("run aborted", "error", report.Err)
		os.Exit(1)
	}

	slog.Info("run complete",
		"outcome", string(report.Outcome),
		"symbol", cfg.Symbol,
		"percent", report.Change.Percent,
		"direction", string(report.Change.Direction),
		"articles", report.Articles,
		"sent", report.Sent,
		"failed", report.Failed,
	)
}
