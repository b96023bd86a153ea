// Package dashboard contains the aggregation engine and dashboard use cases.
package dashboard

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/moneyboard/backend/internal/domain/entity"
)

// MonthPoint is one bucket of the spending-over-time chart.
type MonthPoint struct {
	Month  string // "Jan 06" style label
	Amount decimal.Decimal
}

// MonthlySeries groups expense entries by month label and sums each group.
// Buckets are accumulated in first-seen order and then sorted by the parsed
// label date: "Apr 25" sorts before "Jan 26" chronologically but after it
// lexicographically, so sorting the labels themselves would scramble the
// chart.
func MonthlySeries(txns []*entity.Transaction) []MonthPoint {
	var points []MonthPoint
	index := make(map[string]int)

	for _, t := range txns {
		if t.Type != entity.TransactionTypeExpense {
			continue
		}
		label := t.Date.Format("Jan 06")
		if i, ok := index[label]; ok {
			points[i].Amount = points[i].Amount.Add(t.Amount)
			continue
		}
		index[label] = len(points)
		points = append(points, MonthPoint{Month: label, Amount: t.Amount})
	}

	sort.Slice(points, func(i, j int) bool {
		ti, _ := time.Parse("Jan 06", points[i].Month)
		tj, _ := time.Parse("Jan 06", points[j].Month)
		return ti.Before(tj)
	})
	return points
}

// CashFlowPoint is one day bucket of the income-vs-expenses chart.
type CashFlowPoint struct {
	Date     string // "Jan 2" style label
	Income   decimal.Decimal
	Expenses decimal.Decimal
}

// cashFlowSeriesLimit caps the chart at the most recent day buckets.
const cashFlowSeriesLimit = 10

// CashFlowSeries groups entries of both kinds by formatted day label,
// accumulating income and expense sums separately, then keeps the most
// recent buckets in chronological order.
//
// Grouping is by the formatted label, so the same day of different years
// collapses into one bucket. Known limitation, kept as designed.
func CashFlowSeries(txns []*entity.Transaction) []CashFlowPoint {
	type bucket struct {
		point CashFlowPoint
		date  time.Time // first-seen date, used only for ordering
	}

	var buckets []bucket
	index := make(map[string]int)

	for _, t := range txns {
		label := t.Date.Format("Jan 2")
		i, ok := index[label]
		if !ok {
			index[label] = len(buckets)
			buckets = append(buckets, bucket{
				point: CashFlowPoint{Date: label, Income: decimal.Zero, Expenses: decimal.Zero},
				date:  t.Date,
			})
			i = index[label]
		}
		if t.Type == entity.TransactionTypeIncome {
			buckets[i].point.Income = buckets[i].point.Income.Add(t.Amount)
		} else {
			buckets[i].point.Expenses = buckets[i].point.Expenses.Add(t.Amount)
		}
	}

	sort.SliceStable(buckets, func(i, j int) bool {
		return buckets[i].date.Before(buckets[j].date)
	})

	if len(buckets) > cashFlowSeriesLimit {
		buckets = buckets[len(buckets)-cashFlowSeriesLimit:]
	}

	points := make([]CashFlowPoint, len(buckets))
	for i, b := range buckets {
		points[i] = b.point
	}
	return points
}
