package alert

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-playground/assert/v2"

	"github.com/Ivan-lemos/Stock-News-Monitoring-Project/internal/config"
	"github.com/Ivan-lemos/Stock-News-Monitoring-Project/pkg/news"
	"github.com/Ivan-lemos/Stock-News-Monitoring-Project/pkg/quote"
)

type fakeQuotes struct {
	bars   []quote.DailyBar
	err    error
	calls  int
	symbol string
}

func (f *fakeQuotes) Fetch(symbol string) ([]quote.DailyBar, error) {
	f.calls++
	f.symbol = symbol
	if f.err != nil {
		return nil, f.err
	}
	return f.bars, nil
}

func (f *fakeQuotes) Name() string {
	return "fake-quotes"
}

type fakeNews struct {
	articles []news.Article
	err      error
	calls    int
	company  string
	limit    int
}

func (f *fakeNews) Fetch(symbol, company string, limit int) ([]news.Article, error) {
	f.calls++
	f.company = company
	f.limit = limit
	if f.err != nil {
		return nil, f.err
	}
	return f.articles, nil
}

func (f *fakeNews) Name() string {
	return "fake-news"
}

func testConfig() *config.Config {
	return &config.Config{
		Symbol:      "TSLA",
		Company:     "Tesla Inc",
		Threshold:   1,
		MaxArticles: 3,
		FromNumber:  "+15550001111",
		ToNumber:    "+15552223333",
	}
}

func TestRunAlerts(t *testing.T) {
	quotes := &fakeQuotes{bars: barsFromCloses("219.00", "210.00")}
	source := &fakeNews{articles: []news.Article{
		{Headline: "Tesla deliveries beat estimates", Detail: "Shipments topped forecasts."},
		{Headline: "Tesla opens new factory", Detail: "Production starts next month."},
	}}
	sender := &fakeSender{}

	report := NewRunner(testConfig(), quotes, []news.NewsClient{source}, sender).Run()

	assert.Equal(t, OutcomeAlerted, report.Outcome)
	assert.Equal(t, 4, report.Change.Percent)
	assert.Equal(t, DirectionUp, report.Change.Direction)
	assert.Equal(t, 2, report.Articles)
	assert.Equal(t, 2, report.Sent)
	assert.Equal(t, 0, report.Failed)

	assert.Equal(t, "TSLA", quotes.symbol)
	assert.Equal(t, "Tesla Inc", source.company)
	assert.Equal(t, 3, source.limit)

	assert.Equal(t, 2, len(sender.sent))
	assert.Equal(t, "TSLA: 🔺4%\nHeadline: Tesla deliveries beat estimates\nBrief: Shipments topped forecasts.", sender.sent[0].body)
	assert.Equal(t, "+15550001111", sender.sent[0].from)
	assert.Equal(t, "+15552223333", sender.sent[0].to)
}

func TestRunAbortsOnQuoteFailure(t *testing.T) {
	fetchErr := fmt.Errorf("%w: upstream unreachable", quote.ErrProvider)
	quotes := &fakeQuotes{err: fetchErr}
	source := &fakeNews{}
	sender := &fakeSender{}

	report := NewRunner(testConfig(), quotes, []news.NewsClient{source}, sender).Run()

	assert.Equal(t, OutcomeAborted, report.Outcome)
	assert.Equal(t, true, errors.Is(report.Err, quote.ErrProvider))
	assert.Equal(t, 0, source.calls)
	assert.Equal(t, 0, sender.calls)
}

func TestRunAbortsOnInvalidPrice(t *testing.T) {
	quotes := &fakeQuotes{bars: barsFromCloses("not-a-number", "210.00")}
	source := &fakeNews{}
	sender := &fakeSender{}

	report := NewRunner(testConfig(), quotes, []news.NewsClient{source}, sender).Run()

	assert.Equal(t, OutcomeAborted, report.Outcome)
	assert.Equal(t, true, errors.Is(report.Err, ErrInvalidPrice))
	assert.Equal(t, 0, source.calls)
	assert.Equal(t, 0, sender.calls)
}

func TestRunChangeAtThresholdNotSignificant(t *testing.T) {
	// 100.00 against 99.00 is exactly a 1% move, equal to the default
	// threshold, so nothing is sent.
	quotes := &fakeQuotes{bars: barsFromCloses("100.00", "99.00")}
	source := &fakeNews{}
	sender := &fakeSender{}

	report := NewRunner(testConfig(), quotes, []news.NewsClient{source}, sender).Run()

	assert.Equal(t, OutcomeNotSignificant, report.Outcome)
	assert.Equal(t, 1, report.Change.Percent)
	assert.Equal(t, 0, source.calls)
	assert.Equal(t, 0, sender.calls)
}

func TestRunFallBelowThresholdNotSignificant(t *testing.T) {
	quotes := &fakeQuotes{bars: barsFromCloses("99.00", "100.00")}
	source := &fakeNews{}
	sender := &fakeSender{}

	report := NewRunner(testConfig(), quotes, []news.NewsClient{source}, sender).Run()

	assert.Equal(t, OutcomeNotSignificant, report.Outcome)
	assert.Equal(t, -1, report.Change.Percent)
	assert.Equal(t, DirectionDown, report.Change.Direction)
	assert.Equal(t, 0, source.calls)
}

func TestRunNewsFailureDegrades(t *testing.T) {
	quotes := &fakeQuotes{bars: barsFromCloses("219.00", "210.00")}
	source := &fakeNews{err: fmt.Errorf("%w: timeout", news.ErrProvider)}
	sender := &fakeSender{}

	report := NewRunner(testConfig(), quotes, []news.NewsClient{source}, sender).Run()

	assert.Equal(t, OutcomeNoArticles, report.Outcome)
	assert.Equal(t, 4, report.Change.Percent)
	assert.Equal(t, 0, sender.calls)
}

func TestRunNewsFailover(t *testing.T) {
	quotes := &fakeQuotes{bars: barsFromCloses("219.00", "210.00")}
	broken := &fakeNews{err: fmt.Errorf("%w: timeout", news.ErrProvider)}
	working := &fakeNews{articles: []news.Article{{Headline: "Backup story", Detail: "From the second source."}}}
	sender := &fakeSender{}

	report := NewRunner(testConfig(), quotes, []news.NewsClient{broken, working}, sender).Run()

	assert.Equal(t, OutcomeAlerted, report.Outcome)
	assert.Equal(t, 1, report.Articles)
	assert.Equal(t, 1, broken.calls)
	assert.Equal(t, 1, working.calls)
	assert.Equal(t, 1, len(sender.sent))
	assert.Equal(t, "TSLA: 🔺4%\nHeadline: Backup story\nBrief: From the second source.", sender.sent[0].body)
}

func TestRunCapsArticlesAcrossSources(t *testing.T) {
	quotes := &fakeQuotes{bars: barsFromCloses("219.00", "210.00")}
	first := &fakeNews{articles: []news.Article{
		{Headline: "One"},
		{Headline: "Two"},
	}}
	second := &fakeNews{articles: []news.Article{
		{Headline: "Three"},
		{Headline: "Four"},
		{Headline: "Five"},
	}}
	sender := &fakeSender{}

	report := NewRunner(testConfig(), quotes, []news.NewsClient{first, second}, sender).Run()

	assert.Equal(t, OutcomeAlerted, report.Outcome)
	assert.Equal(t, 3, report.Articles)
	assert.Equal(t, 3, first.limit)
	assert.Equal(t, 1, second.limit)
	assert.Equal(t, 3, len(sender.sent))
}

func TestRunSkipsExtraSourcesWhenFull(t *testing.T) {
	quotes := &fakeQuotes{bars: barsFromCloses("219.00", "210.00")}
	first := &fakeNews{articles: []news.Article{
		{Headline: "One"},
		{Headline: "Two"},
		{Headline: "Three"},
	}}
	second := &fakeNews{}

	report := NewRunner(testConfig(), quotes, []news.NewsClient{first, second}, &fakeSender{}).Run()

	assert.Equal(t, 3, report.Articles)
	assert.Equal(t, 0, second.calls)
}

func TestRunPartialSendFailure(t *testing.T) {
	quotes := &fakeQuotes{bars: barsFromCloses("219.00", "210.00")}
	source := &fakeNews{articles: []news.Article{
		{Headline: "One"},
		{Headline: "Two"},
		{Headline: "Three"},
	}}
	sender := &fakeSender{failOn: map[int]bool{2: true}}

	report := NewRunner(testConfig(), quotes, []news.NewsClient{source}, sender).Run()

	assert.Equal(t, OutcomeAlerted, report.Outcome)
	assert.Equal(t, 3, report.Articles)
	assert.Equal(t, 2, report.Sent)
	assert.Equal(t, 1, report.Failed)
	assert.Equal(t, 3, sender.calls)
}
