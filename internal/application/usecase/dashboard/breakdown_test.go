// Package dashboard contains the aggregation engine and dashboard use cases.
package dashboard

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/moneyboard/backend/internal/domain/entity"
)

func categorizedExpense(date time.Time, amount, category string) *entity.Transaction {
	txn := expenseOn(date, amount)
	txn.Category = entity.ParseCategory(category)
	return txn
}

func TestCategoryBreakdown(t *testing.T) {
	t.Run("groups expenses by category with total count and average", func(t *testing.T) {
		txns := []*entity.Transaction{
			categorizedExpense(day(2026, time.March, 1), "30", "Food"),
			categorizedExpense(day(2026, time.March, 2), "60", "Food"),
			categorizedExpense(day(2026, time.March, 3), "200", "Travel"),
			incomeOn(day(2026, time.March, 4), "5000"),
		}

		stats := CategoryBreakdown(txns)

		if len(stats) != 2 {
			t.Fatalf("expected 2 categories, got %d", len(stats))
		}
		if stats[0].Category != "Travel" {
			t.Errorf("expected highest-spending category first, got %s", stats[0].Category)
		}
		food := stats[1]
		if food.Category != "Food" {
			t.Fatalf("expected Food second, got %s", food.Category)
		}
		if !food.Amount.Equal(decimal.RequireFromString("90")) {
			t.Errorf("expected Food total 90, got %s", food.Amount)
		}
		if food.Transactions != 2 {
			t.Errorf("expected 2 Food transactions, got %d", food.Transactions)
		}
		if !food.AvgTransaction.Equal(decimal.RequireFromString("45")) {
			t.Errorf("expected Food average 45, got %s", food.AvgTransaction)
		}
	})

	t.Run("keeps first-seen order for equal totals", func(t *testing.T) {
		txns := []*entity.Transaction{
			categorizedExpense(day(2026, time.March, 1), "50", "Bills"),
			categorizedExpense(day(2026, time.March, 2), "50", "Health"),
			categorizedExpense(day(2026, time.March, 3), "50", "Shopping"),
		}

		stats := CategoryBreakdown(txns)

		if len(stats) != 3 {
			t.Fatalf("expected 3 categories, got %d", len(stats))
		}
		want := []string{"Bills", "Health", "Shopping"}
		for i, w := range want {
			if stats[i].Category != w {
				t.Errorf("position %d: expected %s, got %s", i, w, stats[i].Category)
			}
		}
	})

	t.Run("custom categories group by label", func(t *testing.T) {
		txns := []*entity.Transaction{
			categorizedExpense(day(2026, time.March, 1), "10", "Pet supplies"),
			categorizedExpense(day(2026, time.March, 2), "15", "Pet supplies"),
		}

		stats := CategoryBreakdown(txns)

		if len(stats) != 1 {
			t.Fatalf("expected 1 category, got %d", len(stats))
		}
		if stats[0].Category != "Pet supplies" {
			t.Errorf("expected Pet supplies, got %s", stats[0].Category)
		}
		if !stats[0].Amount.Equal(decimal.RequireFromString("25")) {
			t.Errorf("expected total 25, got %s", stats[0].Amount)
		}
	})

	t.Run("income-only input yields no stats", func(t *testing.T) {
		txns := []*entity.Transaction{incomeOn(day(2026, time.March, 1), "1000")}

		if stats := CategoryBreakdown(txns); len(stats) != 0 {
			t.Errorf("expected no stats, got %d", len(stats))
		}
	})
}
