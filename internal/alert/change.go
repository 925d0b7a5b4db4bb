package alert

import (
	"errors"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/Ivan-lemos/Stock-News-Monitoring-Project/pkg/quote"
)

// Direction says which way the closing price moved. A flat day counts as
// down.
type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
)

// Marker returns the indicator rendered into message bodies.
func (d Direction) Marker() string {
	if d == DirectionUp {
		return "🔺"
	}
	return "🔻"
}

// PriceChange is the day-over-day move, rounded to a whole percent.
type PriceChange struct {
	Percent   int
	Direction Direction
}

// ErrInvalidPrice means a close could not be parsed, or the most recent
// close is zero and the change is uncomputable.
var ErrInvalidPrice = errors.New("invalid closing price")

var oneHundred = decimal.NewFromInt(100)

// ComputeChange compares the two most recent bars and returns the rounded
// percentage move between them. The input is re-sorted by date descending
// before indexing, so callers need not guarantee order. Halves round away
// from zero.
func ComputeChange(bars []quote.DailyBar) (PriceChange, error) {
	if len(bars) < 2 {
		return PriceChange{}, fmt.Errorf("%w: got %d daily bars, need 2", quote.ErrInsufficientData, len(bars))
	}

	sorted := make([]quote.DailyBar, len(bars))
	copy(sorted, bars)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Date.After(sorted[j].Date) })

	yesterday, err := decimal.NewFromString(sorted[0].Close)
	if err != nil {
		return PriceChange{}, fmt.Errorf("%w: close %q: %v", ErrInvalidPrice, sorted[0].Close, err)
	}
	dayBefore, err := decimal.NewFromString(sorted[1].Close)
	if err != nil {
		return PriceChange{}, fmt.Errorf("%w: close %q: %v", ErrInvalidPrice, sorted[1].Close, err)
	}
	if yesterday.IsZero() {
		return PriceChange{}, fmt.Errorf("%w: most recent close is zero", ErrInvalidPrice)
	}

	difference := yesterday.Sub(dayBefore)

	direction := DirectionDown
	if difference.IsPositive() {
		direction = DirectionUp
	}

	percent := difference.Mul(oneHundred).Div(yesterday).Round(0).IntPart()

	return PriceChange{Percent: int(percent), Direction: direction}, nil
}
