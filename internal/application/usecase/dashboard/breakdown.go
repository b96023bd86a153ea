// Package dashboard contains the aggregation engine and dashboard use cases.
package dashboard

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/moneyboard/backend/internal/domain/entity"
)

// CategoryStat summarizes spending in one category.
type CategoryStat struct {
	Category       string
	Amount         decimal.Decimal
	Transactions   int
	AvgTransaction decimal.Decimal
}

// CategoryBreakdown groups expense entries by category, computing total,
// count and average per group, sorted descending by total. The sort is
// stable: categories with equal totals keep their first-seen order, which
// is the contract "top categories" displays rely on.
func CategoryBreakdown(txns []*entity.Transaction) []CategoryStat {
	var stats []CategoryStat
	index := make(map[string]int)

	for _, t := range txns {
		if t.Type != entity.TransactionTypeExpense {
			continue
		}
		label := t.Category.String()
		if i, ok := index[label]; ok {
			stats[i].Amount = stats[i].Amount.Add(t.Amount)
			stats[i].Transactions++
			continue
		}
		index[label] = len(stats)
		stats = append(stats, CategoryStat{
			Category:     label,
			Amount:       t.Amount,
			Transactions: 1,
		})
	}

	for i := range stats {
		stats[i].AvgTransaction = stats[i].Amount.Div(decimal.NewFromInt(int64(stats[i].Transactions)))
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Amount.GreaterThan(stats[j].Amount)
	})
	return stats
}
