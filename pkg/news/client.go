package news

import (
	"errors"
	"time"
)

// Article is one news item about the monitored company. Headline and Detail
// may be empty; the message formatter substitutes placeholders.
type Article struct {
	Headline    string
	Detail      string
	URL         string
	Publisher   string
	PublishedAt time.Time
	Source      string
}

// ErrProvider covers transport failures, timeouts and non-2xx statuses from
// a news source.
var ErrProvider = errors.New("news provider request failed")

// NewsClient fetches recent articles about one company. A source with no
// matches returns an empty slice, not an error.
type NewsClient interface {
	Fetch(symbol, company string, limit int) ([]Article, error)
	Name() string
}
