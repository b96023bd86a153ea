// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Frequency represents how often a recurring template generates entries.
type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
	FrequencyYearly  Frequency = "yearly"
)

// IsValid reports whether the frequency is one of the known values.
func (f Frequency) IsValid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly, FrequencyYearly:
		return true
	}
	return false
}

// RecurringTransaction is a template for periodically generated ledger
// entries. Generation itself is out of scope here; templates are created,
// listed and toggled, never auto-deleted.
type RecurringTransaction struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Description   string
	Amount        decimal.Decimal
	Category      Category
	Type          TransactionType
	Frequency     Frequency
	StartDate     time.Time
	EndDate       *time.Time // must not precede StartDate
	IsActive      bool
	LastGenerated *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewRecurringTransaction creates a new RecurringTransaction template.
func NewRecurringTransaction(
	userID uuid.UUID,
	description string,
	amount decimal.Decimal,
	category Category,
	transactionType TransactionType,
	frequency Frequency,
	startDate time.Time,
	endDate *time.Time,
) *RecurringTransaction {
	now := time.Now().UTC()

	var end *time.Time
	if endDate != nil {
		d := DateOnly(*endDate)
		end = &d
	}

	return &RecurringTransaction{
		ID:          uuid.New(),
		UserID:      userID,
		Description: description,
		Amount:      amount,
		Category:    category,
		Type:        transactionType,
		Frequency:   frequency,
		StartDate:   DateOnly(startDate),
		EndDate:     end,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
