package news

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
)

// YahooClient reads the per-ticker Yahoo Finance headline feed. It needs no
// API key, which makes it the fallback source when none are configured.
type YahooClient struct {
	httpClient *http.Client
}

func NewYahooClient() *YahooClient {
	return &YahooClient{
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *YahooClient) Name() string {
	return "YahooFinance"
}

func (c *YahooClient) Fetch(symbol, company string, limit int) ([]Article, error) {
	url := fmt.Sprintf(
		"https://feeds.finance.yahoo.com/rss/2.0/headline?s=%s&region=US&lang=en-US",
		symbol,
	)

	resp, err := c.httpClient.Get(url)
	if err != nil {
		return nil, fmt.Errorf("%w: yahoo fetch: %v", ErrProvider, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("%w: yahoo http %d: %s",
			ErrProvider, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	feed, err := gofeed.NewParser().Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: yahoo feed parse: %v", ErrProvider, err)
	}

	articles := make([]Article, 0, len(feed.Items))
	for _, item := range feed.Items {
		if len(articles) >= limit {
			break
		}

		publishedAt := time.Time{}
		if item.PublishedParsed != nil {
			publishedAt = *item.PublishedParsed
		}

		articles = append(articles, Article{
			Headline:    item.Title,
			Detail:      item.Description,
			URL:         item.Link,
			Publisher:   feed.Title,
			PublishedAt: publishedAt,
			Source:      c.Name(),
		})
	}

	return articles, nil
}
