package news

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// AlphaVantageClient fetches articles from the Alpha Vantage news feed,
// filtered to the monitored ticker. It shares the API key with the Alpha
// Vantage quote client.
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

func (c *AlphaVantageClient) Fetch(symbol, company string, limit int) ([]Article, error) {
	endpoint := fmt.Sprintf(
		"https://www.alphavantage.co/query?function=NEWS_SENTIMENT&tickers=%s&sort=LATEST&apikey=%s",
		symbol, c.apiKey,
	)

	resp, err := c.httpClient.Get(endpoint)
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
		return nil, fmt.Errorf("%w: alphavantage decode: %v", ErrProvider, err)
	}

	articles := make([]Article, 0, len(raw.Feed))
	for _, item := range raw.Feed {
		if len(articles) >= limit {
			break
		}

		publishedAt, err := time.Parse("20060102T150405", item.TimePublished)
		if err != nil {
			publishedAt = time.Time{}
		}

		articles = append(articles, Article{
			Headline:    item.Title,
			Detail:      item.Summary,
			URL:         item.URL,
			Publisher:   item.Source,
			PublishedAt: publishedAt,
			Source:      c.Name(),
		})
	}

	return articles, nil
}

type avResponse struct {
	Feed []avFeedItem `json:"feed"`
}

type avFeedItem struct {
	Title         string `json:"title"`
	Summary       string `json:"summary"`
	URL           string `json:"url"`
	Source        string `json:"source"`
	TimePublished string `json:"time_published"`
}
