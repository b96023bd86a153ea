// Package transaction contains transaction-related use cases.
package transaction

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/moneyboard/backend/internal/domain/entity"
)

func fixtureTxn(description, amount, category string, typ entity.TransactionType, date time.Time) *entity.Transaction {
	return &entity.Transaction{
		Description: description,
		Amount:      decimal.RequireFromString(amount),
		Category:    entity.ParseCategory(category),
		Type:        typ,
		Date:        entity.DateOnly(date),
	}
}

func testDate(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func TestApplyFilter(t *testing.T) {
	txns := []*entity.Transaction{
		fixtureTxn("Gas station fill-up", "45.00", "Travel", entity.TransactionTypeExpense, testDate(2026, time.March, 1)),
		fixtureTxn("Grocery run", "82.30", "Food", entity.TransactionTypeExpense, testDate(2026, time.March, 3)),
		fixtureTxn("Salary", "4200.00", "Income", entity.TransactionTypeIncome, testDate(2026, time.March, 5)),
		fixtureTxn("Natural gas bill", "60.00", "Bills", entity.TransactionTypeExpense, testDate(2026, time.March, 10)),
	}

	t.Run("empty filter keeps everything", func(t *testing.T) {
		got := ApplyFilter(txns, Filter{})
		if len(got) != len(txns) {
			t.Errorf("expected %d entries, got %d", len(txns), len(got))
		}
	})

	t.Run("search matches descriptions case-insensitively", func(t *testing.T) {
		got := ApplyFilter(txns, Filter{Search: "gas"})
		if len(got) != 2 {
			t.Fatalf("expected 2 entries, got %d", len(got))
		}
		if got[0].Description != "Gas station fill-up" || got[1].Description != "Natural gas bill" {
			t.Errorf("unexpected matches: %s, %s", got[0].Description, got[1].Description)
		}
	})

	t.Run("search also matches category labels", func(t *testing.T) {
		got := ApplyFilter(txns, Filter{Search: "food"})
		if len(got) != 1 {
			t.Fatalf("expected 1 entry, got %d", len(got))
		}
		if got[0].Description != "Grocery run" {
			t.Errorf("expected Grocery run, got %s", got[0].Description)
		}
	})

	t.Run("category filter matches exactly", func(t *testing.T) {
		got := ApplyFilter(txns, Filter{Category: "Travel"})
		if len(got) != 1 {
			t.Fatalf("expected 1 entry, got %d", len(got))
		}
	})

	t.Run("all category passes everything through", func(t *testing.T) {
		got := ApplyFilter(txns, Filter{Category: FilterAll})
		if len(got) != len(txns) {
			t.Errorf("expected %d entries, got %d", len(txns), len(got))
		}
	})

	t.Run("type filter narrows to one direction", func(t *testing.T) {
		got := ApplyFilter(txns, Filter{Type: "income"})
		if len(got) != 1 {
			t.Fatalf("expected 1 entry, got %d", len(got))
		}
		if got[0].Type != entity.TransactionTypeIncome {
			t.Errorf("expected income entry, got %s", got[0].Type)
		}
	})

	t.Run("date bounds are inclusive", func(t *testing.T) {
		from := testDate(2026, time.March, 3)
		to := testDate(2026, time.March, 5)

		got := ApplyFilter(txns, Filter{From: &from, To: &to})

		if len(got) != 2 {
			t.Fatalf("expected 2 entries, got %d", len(got))
		}
		if got[0].Description != "Grocery run" || got[1].Description != "Salary" {
			t.Errorf("unexpected matches: %s, %s", got[0].Description, got[1].Description)
		}
	})

	t.Run("criteria combine with AND semantics", func(t *testing.T) {
		got := ApplyFilter(txns, Filter{Search: "gas", Category: "Bills"})
		if len(got) != 1 {
			t.Fatalf("expected 1 entry, got %d", len(got))
		}
		if got[0].Description != "Natural gas bill" {
			t.Errorf("expected Natural gas bill, got %s", got[0].Description)
		}
	})
}

func TestSortTransactions(t *testing.T) {
	build := func() []*entity.Transaction {
		return []*entity.Transaction{
			fixtureTxn("beta", "50", "Other", entity.TransactionTypeExpense, testDate(2026, time.March, 2)),
			fixtureTxn("Alpha", "20", "Other", entity.TransactionTypeExpense, testDate(2026, time.March, 8)),
			fixtureTxn("gamma", "35", "Other", entity.TransactionTypeExpense, testDate(2026, time.March, 5)),
		}
	}

	t.Run("sorts by date ascending", func(t *testing.T) {
		txns := build()
		SortTransactions(txns, SortByDate, SortAsc)

		if txns[0].Description != "beta" || txns[2].Description != "Alpha" {
			t.Errorf("unexpected order: %s, %s, %s",
				txns[0].Description, txns[1].Description, txns[2].Description)
		}
	})

	t.Run("descending flips the order", func(t *testing.T) {
		asc := build()
		desc := build()
		SortTransactions(asc, SortByAmount, SortAsc)
		SortTransactions(desc, SortByAmount, SortDesc)

		for i := range asc {
			if asc[i].Description != desc[len(desc)-1-i].Description {
				t.Fatalf("descending is not the reverse of ascending at position %d", i)
			}
		}
	})

	t.Run("sorts descriptions case-insensitively", func(t *testing.T) {
		txns := build()
		SortTransactions(txns, SortByDescription, SortAsc)

		if txns[0].Description != "Alpha" || txns[1].Description != "beta" || txns[2].Description != "gamma" {
			t.Errorf("unexpected order: %s, %s, %s",
				txns[0].Description, txns[1].Description, txns[2].Description)
		}
	})

	t.Run("equal keys keep their prior order", func(t *testing.T) {
		txns := []*entity.Transaction{
			fixtureTxn("first", "10", "Other", entity.TransactionTypeExpense, testDate(2026, time.March, 1)),
			fixtureTxn("second", "10", "Other", entity.TransactionTypeExpense, testDate(2026, time.March, 1)),
			fixtureTxn("third", "10", "Other", entity.TransactionTypeExpense, testDate(2026, time.March, 1)),
		}

		SortTransactions(txns, SortByAmount, SortDesc)

		if txns[0].Description != "first" || txns[2].Description != "third" {
			t.Errorf("stable order violated: %s, %s, %s",
				txns[0].Description, txns[1].Description, txns[2].Description)
		}
	})
}
