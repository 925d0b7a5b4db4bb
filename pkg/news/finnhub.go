package news

import (
	"context"
	"fmt"
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

func (c *FinnHubClient) Fetch(symbol, company string, limit int) ([]Article, error) {
	to := time.Now()
	from := to.AddDate(0, 0, -7)

	res, _, err := c.client.CompanyNews(context.Background()).
		Symbol(symbol).
		From(from.Format("2006-01-02")).
		To(to.Format("2006-01-02")).
		Execute()
	if err != nil {
		return nil, fmt.Errorf("%w: finnhub company news: %v", ErrProvider, err)
	}

	var articles []Article

	for _, item := range res {
		if len(articles) >= limit {
			break
		}

		a := Article{
			Source: c.Name(),
		}

		if item.Headline != nil {
			a.Headline = *item.Headline
		}

		if item.Summary != nil {
			a.Detail = *item.Summary
		}

		if item.Url != nil {
			a.URL = *item.Url
		}

		if item.Source != nil {
			a.Publisher = *item.Source
		}

		if item.Datetime != nil {
			a.PublishedAt = time.Unix(*item.Datetime, 0)
		}

		articles = append(articles, a)
	}

	return articles, nil
}
