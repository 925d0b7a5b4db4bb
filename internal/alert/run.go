package alert

import (
	"log/slog"

	"github.com/Ivan-lemos/Stock-News-Monitoring-Project/internal/config"
	"github.com/Ivan-lemos/Stock-News-Monitoring-Project/pkg/news"
	"github.com/Ivan-lemos/Stock-News-Monitoring-Project/pkg/quote"
	"github.com/Ivan-lemos/Stock-News-Monitoring-Project/pkg/sms"
)

// Outcome is the terminal state of a run.
type Outcome string

const (
	OutcomeAborted        Outcome = "aborted"
	OutcomeNotSignificant Outcome = "no_significant_change"
	OutcomeNoArticles     Outcome = "no_relevant_articles"
	OutcomeAlerted        Outcome = "alert_sent"
)

// Report summarizes what a run did.
type Report struct {
	Outcome  Outcome
	Change   PriceChange
	Articles int
	Sent     int
	Failed   int
	Err      error
}

// Runner wires one pass of the pipeline: price fetch, change computation,
// threshold gate, news fetch, formatting, notification.
type Runner struct {
	quotes quote.QuoteClient
	news   []news.NewsClient
	sender sms.Sender
	cfg    *config.Config
}

func NewRunner(cfg *config.Config, quotes quote.QuoteClient, newsClients []news.NewsClient, sender sms.Sender) *Runner {
	return &Runner{
		quotes: quotes,
		news:   newsClients,
		sender: sender,
		cfg:    cfg,
	}
}

// Run executes the pipeline once. A price fetch or change computation
// failure aborts the run; a news failure degrades to fewer or zero articles
// instead.
func (r *Runner) Run() Report {
	bars, err := r.quotes.Fetch(r.cfg.Symbol)
	if err != nil {
		slog.Error("error fetching stock data", "source", r.quotes.Name(), "error", err)
		return Report{Outcome: OutcomeAborted, Err: err}
	}

	slog.Info("stock data fetched", "source", r.quotes.Name(), "bars", len(bars))

	change, err := ComputeChange(bars)
	if err != nil {
		slog.Error("error computing price change", "error", err)
		return Report{Outcome: OutcomeAborted, Err: err}
	}

	slog.Info("price change computed", "percent", change.Percent, "direction", string(change.Direction))

	if abs(change.Percent) <= r.cfg.Threshold {
		slog.Info("price change not significant, nothing to send",
			"percent", change.Percent, "threshold", r.cfg.Threshold)
		return Report{Outcome: OutcomeNotSignificant, Change: change}
	}

	articles := r.fetchArticles()
	if len(articles) == 0 {
		slog.Info("no relevant articles found", "company", r.cfg.Company)
		return Report{Outcome: OutcomeNoArticles, Change: change}
	}

	messages := FormatMessages(articles, r.cfg.Symbol, change)
	sent, failed := Notify(r.sender, messages, r.cfg.FromNumber, r.cfg.ToNumber)

	return Report{
		Outcome:  OutcomeAlerted,
		Change:   change,
		Articles: len(articles),
		Sent:     sent,
		Failed:   failed,
	}
}

// fetchArticles walks the news sources in order until enough articles are
// collected. A failing source is skipped, never fatal.
func (r *Runner) fetchArticles() []news.Article {
	var collected []news.Article

	for _, client := range r.news {
		remaining := r.cfg.MaxArticles - len(collected)
		if remaining <= 0 {
			break
		}

		articles, err := client.Fetch(r.cfg.Symbol, r.cfg.Company, remaining)
		if err != nil {
			slog.Error("error fetching articles", "source", client.Name(), "error", err)
			continue
		}

		if len(articles) > remaining {
			articles = articles[:remaining]
		}
		collected = append(collected, articles...)
	}

	return collected
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
