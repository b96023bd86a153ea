// Package dashboard contains the aggregation engine and dashboard use cases.
// Everything in this package except the use cases is a pure function over a
// transaction snapshot and a reference "now"; nothing here touches the store
// or mutates its input.
package dashboard

import (
	"time"

	"github.com/moneyboard/backend/internal/domain/entity"
	domainerror "github.com/moneyboard/backend/internal/domain/error"
)

// TimeWindow is the user-selected range that scopes the analytics charts.
// The headline stat cards use their own fixed periods and ignore it.
type TimeWindow string

const (
	Window7d  TimeWindow = "7d"
	Window30d TimeWindow = "30d"
	Window90d TimeWindow = "90d"
	Window1y  TimeWindow = "1y"
)

// Days returns the day count the window maps to.
func (w TimeWindow) Days() int {
	switch w {
	case Window7d:
		return 7
	case Window30d:
		return 30
	case Window90d:
		return 90
	case Window1y:
		return 365
	}
	return 30
}

// ParseTimeWindow validates a raw window value. An empty value defaults to
// 30 days.
func ParseTimeWindow(raw string) (TimeWindow, error) {
	if raw == "" {
		return Window30d, nil
	}
	switch w := TimeWindow(raw); w {
	case Window7d, Window30d, Window90d, Window1y:
		return w, nil
	}
	return "", domainerror.NewDashboardError(
		domainerror.ErrCodeInvalidTimeWindow,
		"window must be one of: 7d, 30d, 90d, 1y",
		domainerror.ErrInvalidTimeWindow,
	)
}

// FilterByWindow keeps entries dated on or after now minus the given number
// of days. The input order is preserved.
func FilterByWindow(txns []*entity.Transaction, now time.Time, days int) []*entity.Transaction {
	cutoff := now.AddDate(0, 0, -days)
	out := make([]*entity.Transaction, 0, len(txns))
	for _, t := range txns {
		if !t.Date.Before(cutoff) {
			out = append(out, t)
		}
	}
	return out
}
