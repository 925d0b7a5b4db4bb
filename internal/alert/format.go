package alert

import (
	"fmt"

	"github.com/Ivan-lemos/Stock-News-Monitoring-Project/pkg/news"
)

const (
	placeholderHeadline = "No title available"
	placeholderBrief    = "No description available"
)

// Message is one outbound text, built and consumed within a single run.
type Message struct {
	Body string
}

// FormatMessages renders one message per article. Pure: identical inputs
// always yield the identical list, in article order.
func FormatMessages(articles []news.Article, symbol string, change PriceChange) []Message {
	messages := make([]Message, 0, len(articles))
	for _, a := range articles {
		headline := a.Headline
		if headline == "" {
			headline = placeholderHeadline
		}
		brief := a.Detail
		if brief == "" {
			brief = placeholderBrief
		}

		body := fmt.Sprintf("%s: %s%d%%\nHeadline: %s\nBrief: %s",
			symbol, change.Direction.Marker(), change.Percent, headline, brief)
		messages = append(messages, Message{Body: body})
	}
	return messages
}
