// Package dashboard contains the aggregation engine and dashboard use cases.
package dashboard

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/moneyboard/backend/internal/domain/entity"
)

// Totals holds the headline balance figures for a set of transactions.
type Totals struct {
	Income   decimal.Decimal
	Expenses decimal.Decimal
	Balance  decimal.Decimal
}

// ComputeTotals sums income and expense magnitudes separately; balance is
// income minus expenses.
func ComputeTotals(txns []*entity.Transaction) Totals {
	income := decimal.Zero
	expenses := decimal.Zero
	for _, t := range txns {
		switch t.Type {
		case entity.TransactionTypeIncome:
			income = income.Add(t.Amount)
		case entity.TransactionTypeExpense:
			expenses = expenses.Add(t.Amount)
		}
	}
	return Totals{
		Income:   income,
		Expenses: expenses,
		Balance:  income.Sub(expenses),
	}
}

// MonthExpenses sums expenses dated in the current calendar month and year.
// This is a fixed window, independent of the user-selected time filter.
func MonthExpenses(txns []*entity.Transaction, now time.Time) decimal.Decimal {
	total := decimal.Zero
	for _, t := range txns {
		if t.Type == entity.TransactionTypeExpense &&
			t.Date.Month() == now.Month() && t.Date.Year() == now.Year() {
			total = total.Add(t.Amount)
		}
	}
	return total
}

// PreviousMonthExpenseAmounts collects the expense amounts of the previous
// calendar month, for trend comparison against MonthExpenses.
func PreviousMonthExpenseAmounts(txns []*entity.Transaction, now time.Time) []decimal.Decimal {
	prev := now.AddDate(0, -1, 0)
	var amounts []decimal.Decimal
	for _, t := range txns {
		if t.Type == entity.TransactionTypeExpense &&
			t.Date.Month() == prev.Month() && t.Date.Year() == prev.Year() {
			amounts = append(amounts, t.Amount)
		}
	}
	return amounts
}

// WeekExpenses sums expenses dated within the last 7 days. Fixed window,
// independent of the user-selected time filter.
func WeekExpenses(txns []*entity.Transaction, now time.Time) decimal.Decimal {
	cutoff := now.AddDate(0, 0, -7)
	total := decimal.Zero
	for _, t := range txns {
		if t.Type == entity.TransactionTypeExpense && !t.Date.Before(cutoff) {
			total = total.Add(t.Amount)
		}
	}
	return total
}

// PreviousWeekExpenseAmounts collects expense amounts from the week before
// last (14 to 7 days ago, upper bound exclusive), for trend comparison
// against WeekExpenses.
func PreviousWeekExpenseAmounts(txns []*entity.Transaction, now time.Time) []decimal.Decimal {
	from := now.AddDate(0, 0, -14)
	to := now.AddDate(0, 0, -7)
	var amounts []decimal.Decimal
	for _, t := range txns {
		if t.Type == entity.TransactionTypeExpense &&
			!t.Date.Before(from) && t.Date.Before(to) {
			amounts = append(amounts, t.Amount)
		}
	}
	return amounts
}

// DailyAverage divides the last 30 days of expenses by the number of
// distinct calendar dates that have at least one expense, not by 30. With
// sparse data a fixed divisor would understate what a spending day actually
// costs. Zero qualifying days yields zero.
func DailyAverage(txns []*entity.Transaction, now time.Time) decimal.Decimal {
	cutoff := now.AddDate(0, 0, -30)
	total := decimal.Zero
	days := make(map[string]struct{})
	for _, t := range txns {
		if t.Type == entity.TransactionTypeExpense && !t.Date.Before(cutoff) {
			total = total.Add(t.Amount)
			days[t.Date.Format("2006-01-02")] = struct{}{}
		}
	}
	if len(days) == 0 {
		return decimal.Zero
	}
	return total.Div(decimal.NewFromInt(int64(len(days))))
}

// minTrendHistory is the minimum number of ledger entries before trends are
// shown at all; below it a single transaction can swing the percentage
// wildly for new users.
const minTrendHistory = 10

// Trend is a period-over-period change indicator.
type Trend struct {
	Percent    float64
	IsPositive bool
}

// CalculateTrend compares the current period figure against the previous
// period's amounts. It returns nil (no indicator) when the previous period
// is empty, when the full history holds fewer than minTrendHistory entries,
// or when the previous period sums to zero.
func CalculateTrend(current decimal.Decimal, previousAmounts []decimal.Decimal, historyLen int) *Trend {
	if len(previousAmounts) == 0 || historyLen < minTrendHistory {
		return nil
	}
	previous := decimal.Zero
	for _, a := range previousAmounts {
		previous = previous.Add(a)
	}
	if previous.IsZero() {
		return nil
	}

	change := current.Sub(previous).Div(previous).Mul(decimal.NewFromInt(100))
	return &Trend{
		Percent:    change.Abs().InexactFloat64(),
		IsPositive: change.GreaterThanOrEqual(decimal.Zero),
	}
}
