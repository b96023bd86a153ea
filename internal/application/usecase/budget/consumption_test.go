// Package budget contains budget-related use cases.
package budget

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/moneyboard/backend/internal/domain/entity"
)

func consumptionTxn(typ entity.TransactionType, category, amount string, date time.Time) *entity.Transaction {
	return &entity.Transaction{
		Amount:   decimal.RequireFromString(amount),
		Category: entity.ParseCategory(category),
		Type:     typ,
		Date:     entity.DateOnly(date),
	}
}

func TestSpentInPeriod(t *testing.T) {
	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)
	food := &entity.Budget{
		UserID:   uuid.New(),
		Category: entity.ParseCategory("Food"),
		Limit:    decimal.RequireFromString("500"),
		Period:   entity.BudgetPeriodMonthly,
	}

	t.Run("sums category expenses inside the current month", func(t *testing.T) {
		txns := []*entity.Transaction{
			consumptionTxn(entity.TransactionTypeExpense, "Food", "120", time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)),
			consumptionTxn(entity.TransactionTypeExpense, "Food", "80", time.Date(2026, time.March, 31, 0, 0, 0, 0, time.UTC)),
			consumptionTxn(entity.TransactionTypeExpense, "Food", "999", time.Date(2026, time.February, 28, 0, 0, 0, 0, time.UTC)),
			consumptionTxn(entity.TransactionTypeExpense, "Travel", "999", time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)),
			consumptionTxn(entity.TransactionTypeIncome, "Food", "999", time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)),
		}

		got := SpentInPeriod(txns, food, now)

		if !got.Equal(decimal.RequireFromString("200")) {
			t.Errorf("expected 200, got %s", got)
		}
	})

	t.Run("weekly budgets share the monthly window", func(t *testing.T) {
		weekly := &entity.Budget{
			UserID:   uuid.New(),
			Category: entity.ParseCategory("Food"),
			Limit:    decimal.RequireFromString("100"),
			Period:   entity.BudgetPeriodWeekly,
		}
		txns := []*entity.Transaction{
			consumptionTxn(entity.TransactionTypeExpense, "Food", "30", time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)),
		}

		got := SpentInPeriod(txns, weekly, now)

		if !got.Equal(decimal.RequireFromString("30")) {
			t.Errorf("expected 30, got %s", got)
		}
	})

	t.Run("custom category labels match exactly", func(t *testing.T) {
		custom := &entity.Budget{
			UserID:   uuid.New(),
			Category: entity.ParseCategory("Pet supplies"),
			Limit:    decimal.RequireFromString("60"),
			Period:   entity.BudgetPeriodMonthly,
		}
		txns := []*entity.Transaction{
			consumptionTxn(entity.TransactionTypeExpense, "Pet supplies", "25", time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC)),
			consumptionTxn(entity.TransactionTypeExpense, "Pets", "999", time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC)),
		}

		got := SpentInPeriod(txns, custom, now)

		if !got.Equal(decimal.RequireFromString("25")) {
			t.Errorf("expected 25, got %s", got)
		}
	})

	t.Run("no matching entries yields zero", func(t *testing.T) {
		if got := SpentInPeriod(nil, food, now); !got.IsZero() {
			t.Errorf("expected zero, got %s", got)
		}
	})
}

func TestPercentage(t *testing.T) {
	limit := decimal.RequireFromString("200")

	t.Run("reports spent over limit as a percentage", func(t *testing.T) {
		if got := Percentage(decimal.RequireFromString("50"), limit); got != 25 {
			t.Errorf("expected 25, got %v", got)
		}
	})

	t.Run("clamps overruns to 100", func(t *testing.T) {
		if got := Percentage(decimal.RequireFromString("350"), limit); got != 100 {
			t.Errorf("expected 100, got %v", got)
		}
	})

	t.Run("non-positive limit yields zero", func(t *testing.T) {
		if got := Percentage(decimal.RequireFromString("50"), decimal.Zero); got != 0 {
			t.Errorf("expected 0, got %v", got)
		}
	})
}

func TestClassify(t *testing.T) {
	limit := decimal.RequireFromString("100")

	cases := []struct {
		spent string
		want  Status
	}{
		{"0", StatusOnTrack},
		{"74.99", StatusOnTrack},
		{"75", StatusOnTrackHigh},
		{"89.99", StatusOnTrackHigh},
		{"90", StatusNearLimit},
		{"99.99", StatusNearLimit},
		{"100", StatusOverBudget},
		{"250", StatusOverBudget},
	}

	for _, tc := range cases {
		t.Run("spent "+tc.spent, func(t *testing.T) {
			got := Classify(decimal.RequireFromString(tc.spent), limit)
			if got != tc.want {
				t.Errorf("spent %s: expected %s, got %s", tc.spent, tc.want, got)
			}
		})
	}

	t.Run("non-positive limit is always on track", func(t *testing.T) {
		got := Classify(decimal.RequireFromString("500"), decimal.Zero)
		if got != StatusOnTrack {
			t.Errorf("expected On Track, got %s", got)
		}
	})
}

func TestStatusColor(t *testing.T) {
	cases := map[Status]string{
		StatusOverBudget:  "red",
		StatusNearLimit:   "red",
		StatusOnTrackHigh: "amber",
		StatusOnTrack:     "green",
	}
	for status, want := range cases {
		if got := status.Color(); got != want {
			t.Errorf("%s: expected %s, got %s", status, want, got)
		}
	}
}
