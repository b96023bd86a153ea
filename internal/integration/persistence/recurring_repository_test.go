// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/moneyboard/backend/internal/domain/entity"
	domainerror "github.com/moneyboard/backend/internal/domain/error"
)

func storedRecurring(userID uuid.UUID, description string) *entity.RecurringTransaction {
	return entity.NewRecurringTransaction(
		userID,
		description,
		decimal.RequireFromString("1200.00"),
		entity.ParseCategory("Bills"),
		entity.TransactionTypeExpense,
		entity.FrequencyMonthly,
		time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
		nil,
	)
}

func TestRecurringRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("create then find round-trips the template", func(t *testing.T) {
		repo := NewRecurringRepository(newTestDB(t))
		userID := uuid.New()
		rec := storedRecurring(userID, "Rent")

		if err := repo.Create(ctx, rec); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		found, err := repo.FindByUser(ctx, userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(found) != 1 {
			t.Fatalf("expected 1 template, got %d", len(found))
		}
		got := found[0]
		if got.ID != rec.ID {
			t.Errorf("expected id %s, got %s", rec.ID, got.ID)
		}
		if got.Frequency != entity.FrequencyMonthly {
			t.Errorf("expected monthly frequency, got %s", got.Frequency)
		}
		if !got.IsActive {
			t.Error("expected a new template to be active")
		}
		if got.EndDate != nil {
			t.Errorf("expected no end date, got %v", got.EndDate)
		}
	})

	t.Run("end date survives the round-trip", func(t *testing.T) {
		repo := NewRecurringRepository(newTestDB(t))
		userID := uuid.New()
		end := time.Date(2026, time.December, 31, 0, 0, 0, 0, time.UTC)
		rec := entity.NewRecurringTransaction(
			userID,
			"Gym",
			decimal.RequireFromString("49.90"),
			entity.ParseCategory("Health"),
			entity.TransactionTypeExpense,
			entity.FrequencyMonthly,
			time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
			&end,
		)

		if err := repo.Create(ctx, rec); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		found, _ := repo.FindByUser(ctx, userID)
		if found[0].EndDate == nil {
			t.Fatal("expected an end date")
		}
		if !found[0].EndDate.Equal(end) {
			t.Errorf("expected end date %s, got %s", end, found[0].EndDate)
		}
	})

	t.Run("set active toggles the flag and returns the stored template", func(t *testing.T) {
		repo := NewRecurringRepository(newTestDB(t))
		userID := uuid.New()
		rec := storedRecurring(userID, "Rent")
		if err := repo.Create(ctx, rec); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		updated, err := repo.SetActive(ctx, rec.ID, userID, false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.IsActive {
			t.Error("expected the returned template to be inactive")
		}
		if updated.Description != "Rent" {
			t.Errorf("expected the full template back, got description %s", updated.Description)
		}

		found, _ := repo.FindByUser(ctx, userID)
		if found[0].IsActive {
			t.Error("expected the stored row to be inactive")
		}
	})

	t.Run("set active misses rows owned by someone else", func(t *testing.T) {
		repo := NewRecurringRepository(newTestDB(t))
		rec := storedRecurring(uuid.New(), "Rent")
		if err := repo.Create(ctx, rec); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		_, err := repo.SetActive(ctx, rec.ID, uuid.New(), false)
		if !errors.Is(err, domainerror.ErrRecurringNotFound) {
			t.Errorf("expected not-found sentinel, got %v", err)
		}
	})
}
