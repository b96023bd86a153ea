// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BudgetPeriod represents the period a spending limit applies to.
type BudgetPeriod string

const (
	BudgetPeriodMonthly BudgetPeriod = "monthly"
	BudgetPeriodWeekly  BudgetPeriod = "weekly"
)

// IsValid reports whether the budget period is one of the known values.
func (p BudgetPeriod) IsValid() bool {
	return p == BudgetPeriodMonthly || p == BudgetPeriodWeekly
}

// Budget is a per-category spending limit. Budgets are session-local and
// carry a plain integer id from a local sequence; they are never written to
// the store, so store-assigned uuid identifiers do not apply. Spent is
// always derived from the ledger at read time and never stored here.
type Budget struct {
	ID            int
	UserID        uuid.UUID
	Category      Category
	Limit         decimal.Decimal
	Period        BudgetPeriod
	AlertOnExceed bool
	// Alerted marks that an over-limit alert email has been enqueued for
	// the current overrun, so refreshes do not enqueue duplicates.
	Alerted   bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
