// Package budget contains budget-related use cases.
package budget

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/moneyboard/backend/internal/domain/entity"
)

// Status classifies how far into its limit a budget is.
type Status string

const (
	StatusOverBudget  Status = "Over Budget"
	StatusNearLimit   Status = "Near Limit"
	StatusOnTrackHigh Status = "On Track (High)"
	StatusOnTrack     Status = "On Track"
)

// Color returns the display color for the status.
func (s Status) Color() string {
	switch s {
	case StatusOverBudget, StatusNearLimit:
		return "red"
	case StatusOnTrackHigh:
		return "amber"
	default:
		return "green"
	}
}

// periodWindow returns the date range a budget's spending is computed over.
// Weekly budgets currently share the monthly window; the whole distinction
// is confined here so a real weekly window is a one-line change.
func periodWindow(_ entity.BudgetPeriod, now time.Time) (start, end time.Time) {
	start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	end = start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return start, end
}

// SpentInPeriod sums expense amounts in the budget's category whose date
// falls inside the budget's current period. Always recomputed from the
// transaction snapshot, never cached.
func SpentInPeriod(txns []*entity.Transaction, b *entity.Budget, now time.Time) decimal.Decimal {
	start, end := periodWindow(b.Period, now)
	total := decimal.Zero
	for _, t := range txns {
		if t.Type != entity.TransactionTypeExpense {
			continue
		}
		if !t.Category.Equals(b.Category) {
			continue
		}
		if t.Date.Before(start) || t.Date.After(end) {
			continue
		}
		total = total.Add(t.Amount)
	}
	return total
}

// Percentage returns spent/limit as a percentage clamped to [0, 100] for
// progress display. Status classification uses the unclamped ratio.
func Percentage(spent, limit decimal.Decimal) float64 {
	if !limit.IsPositive() {
		return 0
	}
	pct := spent.Div(limit).Mul(decimal.NewFromInt(100))
	if pct.GreaterThan(decimal.NewFromInt(100)) {
		return 100
	}
	return pct.InexactFloat64()
}

// Classify maps the unclamped spent/limit ratio to a status.
func Classify(spent, limit decimal.Decimal) Status {
	if !limit.IsPositive() {
		return StatusOnTrack
	}
	ratio := spent.Div(limit).Mul(decimal.NewFromInt(100))
	switch {
	case ratio.GreaterThanOrEqual(decimal.NewFromInt(100)):
		return StatusOverBudget
	case ratio.GreaterThanOrEqual(decimal.NewFromInt(90)):
		return StatusNearLimit
	case ratio.GreaterThanOrEqual(decimal.NewFromInt(75)):
		return StatusOnTrackHigh
	default:
		return StatusOnTrack
	}
}
