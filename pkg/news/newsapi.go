package news

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

type NewsAPIClient struct {
	apiKey     string
	httpClient *http.Client
}

func NewNewsAPIClient(apiKey string) *NewsAPIClient {
	return &NewsAPIClient{
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *NewsAPIClient) Name() string {
	return "NewsAPI"
}

func (c *NewsAPIClient) Fetch(symbol, company string, limit int) ([]Article, error) {
	endpoint := fmt.Sprintf(
		"https://newsapi.org/v2/everything?qInTitle=%s&language=en&sortBy=relevancy&apiKey=%s",
		url.QueryEscape(company), c.apiKey,
	)

	resp, err := c.httpClient.Get(endpoint)
	if err != nil {
		return nil, fmt.Errorf("%w: newsapi fetch: %v", ErrProvider, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("%w: newsapi http %d: %s",
			ErrProvider, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var raw newsAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: newsapi decode: %v", ErrProvider, err)
	}

	articles := make([]Article, 0, len(raw.Articles))
	for _, item := range raw.Articles {
		if len(articles) >= limit {
			break
		}

		publishedAt, err := time.Parse(time.RFC3339, item.PublishedAt)
		if err != nil {
			publishedAt = time.Time{}
		}

		articles = append(articles, Article{
			Headline:    item.Title,
			Detail:      item.Description,
			URL:         item.URL,
			Publisher:   item.Source.Name,
			PublishedAt: publishedAt,
			Source:      c.Name(),
		})
	}

	return articles, nil
}

type newsAPIResponse struct {
	Status   string           `json:"status"`
	Articles []newsAPIArticle `json:"articles"`
}

type newsAPIArticle struct {
	Title       string        `json:"title"`
	Description string        `json:"description"`
	URL         string        `json:"url"`
	PublishedAt string        `json:"publishedAt"`
	Source      newsAPISource `json:"source"`
}

type newsAPISource struct {
	Name string `json:"name"`
}
