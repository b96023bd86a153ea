// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType represents the direction of a ledger entry (expense or income).
type TransactionType string

const (
	TransactionTypeExpense TransactionType = "expense"
	TransactionTypeIncome  TransactionType = "income"
)

// IsValid reports whether the transaction type is one of the known values.
func (t TransactionType) IsValid() bool {
	return t == TransactionTypeExpense || t == TransactionTypeIncome
}

// Transaction represents a single recorded income or expense event.
// Amount is always an unsigned magnitude; direction is carried by Type and
// never encoded in the sign of Amount.
type Transaction struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Description string
	Amount      decimal.Decimal
	Category    Category
	Type        TransactionType
	Date        time.Time // calendar date, no time component
	// RecurringTransactionID links an entry back to the template that
	// generated it. Materialization itself happens outside this service;
	// the ledger only records the provenance.
	RecurringTransactionID *uuid.UUID
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// NewTransaction creates a new Transaction entity.
func NewTransaction(
	userID uuid.UUID,
	description string,
	amount decimal.Decimal,
	category Category,
	transactionType TransactionType,
	date time.Time,
	recurringID *uuid.UUID,
) *Transaction {
	now := time.Now().UTC()

	return &Transaction{
		ID:                     uuid.New(),
		UserID:                 userID,
		Description:            description,
		Amount:                 amount,
		Category:               category,
		Type:                   transactionType,
		Date:                   DateOnly(date),
		RecurringTransactionID: recurringID,
		CreatedAt:              now,
		UpdatedAt:              now,
	}
}

// DateOnly truncates a timestamp to its calendar date in UTC.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// SignedAmount returns the amount with direction applied: negative for
// expenses, positive for income. The stored Amount stays unsigned.
func (t *Transaction) SignedAmount() decimal.Decimal {
	if t.Type == TransactionTypeExpense {
		return t.Amount.Neg()
	}
	return t.Amount
}
