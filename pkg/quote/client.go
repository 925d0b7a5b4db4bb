package quote

import (
	"errors"
	"time"
)

// DailyBar is one day's closing price. Close keeps the provider's decimal
// text untouched; the change calculator is the one place it gets parsed.
type DailyBar struct {
	Date  time.Time
	Close string
}

var (
	// ErrProvider covers transport failures, timeouts and non-2xx statuses.
	ErrProvider = errors.New("quote provider request failed")
	// ErrDataShape means the response decoded but carried no daily series,
	// e.g. a rate-limit or error payload instead of data.
	ErrDataShape = errors.New("unexpected quote response shape")
	// ErrInsufficientData means fewer than two usable daily bars came back.
	ErrInsufficientData = errors.New("insufficient price data")
)

// QuoteClient fetches a daily closing-price series for a symbol.
// Implementations return bars sorted by date descending, most recent first.
type QuoteClient interface {
	Fetch(symbol string) ([]DailyBar, error)
	Name() string
}
