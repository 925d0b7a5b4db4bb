package news

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// MassiveClient fetches articles from the Massive reference news endpoint,
// filtered to the monitored ticker.
type MassiveClient struct {
	apiKey     string
	httpClient *http.Client
}

func NewMassiveClient(apiKey string) *MassiveClient {
	return &MassiveClient{
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *MassiveClient) Name() string {
	return "Massive"
}

func (c *MassiveClient) Fetch(symbol, company string, limit int) ([]Article, error) {
	endpoint := fmt.Sprintf(
		"https://api.massive.com/v2/reference/news?ticker=%s&limit=%d&order=desc&sort=published_utc&apiKey=%s",
		symbol, limit, c.apiKey,
	)

	resp, err := c.httpClient.Get(endpoint)
	if err != nil {
		return nil, fmt.Errorf("%w: massive fetch: %v", ErrProvider, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("%w: massive http %d: %s",
			ErrProvider, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var raw massiveResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: massive decode: %v", ErrProvider, err)
	}

	articles := make([]Article, 0, len(raw.Results))
	for _, item := range raw.Results {
		if len(articles) >= limit {
			break
		}

		publishedAt, err := time.Parse(time.RFC3339, item.PublishedUTC)
		if err != nil {
			publishedAt = time.Time{}
		}

		articles = append(articles, Article{
			Headline:    item.Title,
			Detail:      item.Description,
			URL:         item.ArticleURL,
			Publisher:   item.Publisher.Name,
			PublishedAt: publishedAt,
			Source:      c.Name(),
		})
	}

	return articles, nil
}

type massiveResponse struct {
	Results []massiveResult `json:"results"`
}

type massiveResult struct {
	ID           string           `json:"id"`
	Title        string           `json:"title"`
	Description  string           `json:"description"`
	ArticleURL   string           `json:"article_url"`
	PublishedUTC string           `json:"published_utc"`
	Publisher    massivePublisher `json:"publisher"`
}

type massivePublisher struct {
	Name string `json:"name"`
}
