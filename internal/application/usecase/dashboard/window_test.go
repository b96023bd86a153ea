// Package dashboard contains the aggregation engine and dashboard use cases.
package dashboard

import (
	"errors"
	"testing"
	"time"

	"github.com/moneyboard/backend/internal/domain/entity"
	domainerror "github.com/moneyboard/backend/internal/domain/error"
)

func TestParseTimeWindow(t *testing.T) {
	t.Run("empty value defaults to 30 days", func(t *testing.T) {
		w, err := ParseTimeWindow("")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if w != Window30d {
			t.Errorf("expected 30d, got %s", w)
		}
	})

	t.Run("accepts every known window", func(t *testing.T) {
		for _, raw := range []string{"7d", "30d", "90d", "1y"} {
			w, err := ParseTimeWindow(raw)
			if err != nil {
				t.Errorf("%s: unexpected error: %v", raw, err)
			}
			if string(w) != raw {
				t.Errorf("%s: got %s", raw, w)
			}
		}
	})

	t.Run("rejects unknown values", func(t *testing.T) {
		_, err := ParseTimeWindow("14d")
		if err == nil {
			t.Fatal("expected an error for unknown window")
		}
		if !errors.Is(err, domainerror.ErrInvalidTimeWindow) {
			t.Errorf("expected invalid time window sentinel, got %v", err)
		}
	})
}

func TestWindowDays(t *testing.T) {
	cases := map[TimeWindow]int{
		Window7d:  7,
		Window30d: 30,
		Window90d: 90,
		Window1y:  365,
	}
	for w, want := range cases {
		if got := w.Days(); got != want {
			t.Errorf("%s: expected %d days, got %d", w, want, got)
		}
	}
}

func TestFilterByWindow(t *testing.T) {
	now := day(2026, time.March, 15)

	t.Run("keeps entries on or after the cutoff", func(t *testing.T) {
		txns := []*entity.Transaction{
			expenseOn(day(2026, time.March, 8), "1"), // exactly on the cutoff
			expenseOn(day(2026, time.March, 14), "2"),
			expenseOn(day(2026, time.March, 7), "3"), // before the cutoff
		}

		kept := FilterByWindow(txns, now, 7)

		if len(kept) != 2 {
			t.Fatalf("expected 2 entries, got %d", len(kept))
		}
	})

	t.Run("preserves input order", func(t *testing.T) {
		txns := []*entity.Transaction{
			expenseOn(day(2026, time.March, 14), "1"),
			expenseOn(day(2026, time.March, 10), "2"),
			expenseOn(day(2026, time.March, 12), "3"),
		}

		kept := FilterByWindow(txns, now, 30)

		for i, txn := range txns {
			if kept[i] != txn {
				t.Errorf("position %d: order not preserved", i)
			}
		}
	})
}
