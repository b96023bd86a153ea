// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/moneyboard/backend/internal/application/ledger"
	"github.com/moneyboard/backend/internal/domain/entity"
	domainerror "github.com/moneyboard/backend/internal/domain/error"
)

// CreateTransactionInput represents the input for transaction creation.
type CreateTransactionInput struct {
	UserID      uuid.UUID
	Description string
	Amount      decimal.Decimal
	Category    string
	Type        entity.TransactionType
	Date        time.Time
	RecurringID *uuid.UUID
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction *entity.Transaction
}

// CreateTransactionUseCase handles transaction creation logic.
type CreateTransactionUseCase struct {
	sessions *ledger.Manager
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(sessions *ledger.Manager) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{sessions: sessions}
}

// Execute performs the transaction creation.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	if err := validateTransactionFields(input.Description, input.Amount, input.Category, input.Type, input.Date); err != nil {
		return nil, err
	}

	session, err := uc.sessions.Session(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	txn := entity.NewTransaction(
		input.UserID,
		strings.TrimSpace(input.Description),
		input.Amount,
		entity.ParseCategory(input.Category),
		input.Type,
		input.Date,
		input.RecurringID,
	)

	if err := session.CreateTransaction(ctx, txn); err != nil {
		return nil, err
	}

	return &CreateTransactionOutput{Transaction: txn}, nil
}

// validateTransactionFields checks the user-supplied fields shared by
// create and update.
func validateTransactionFields(
	description string,
	amount decimal.Decimal,
	category string,
	transactionType entity.TransactionType,
	date time.Time,
) error {
	if strings.TrimSpace(description) == "" {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeEmptyDescription,
			"description must not be empty",
			domainerror.ErrEmptyTransactionDescription,
		)
	}
	if amount.IsNegative() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"amount must not be negative",
			domainerror.ErrInvalidTransactionAmount,
		)
	}
	if strings.TrimSpace(category) == "" {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeEmptyCategory,
			"category must not be empty",
			domainerror.ErrEmptyTransactionCategory,
		)
	}
	if !transactionType.IsValid() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"transaction type must be 'expense' or 'income'",
			domainerror.ErrInvalidTransactionType,
		)
	}
	if date.IsZero() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionDate,
			"date is required",
			domainerror.ErrInvalidTransactionDate,
		)
	}
	return nil
}
