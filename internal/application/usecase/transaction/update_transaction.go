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

// UpdateTransactionInput represents the input for a partial transaction
// update. Nil fields are left unchanged.
type UpdateTransactionInput struct {
	UserID        uuid.UUID
	TransactionID uuid.UUID
	Description   *string
	Amount        *decimal.Decimal
	Category      *string
	Type          *entity.TransactionType
	Date          *time.Time
}

// UpdateTransactionOutput represents the output of a transaction update.
type UpdateTransactionOutput struct {
	Transaction *entity.Transaction
}

// UpdateTransactionUseCase handles transaction update logic.
type UpdateTransactionUseCase struct {
	sessions *ledger.Manager
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(sessions *ledger.Manager) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{sessions: sessions}
}

// Execute performs the transaction update.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	session, err := uc.sessions.Session(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	existing, ok := session.Transaction(input.TransactionID)
	if !ok {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeTransactionNotFound,
			"transaction not found",
			domainerror.ErrTransactionNotFound,
		)
	}

	updated := *existing
	if input.Description != nil {
		updated.Description = strings.TrimSpace(*input.Description)
	}
	if input.Amount != nil {
		updated.Amount = *input.Amount
	}
	if input.Category != nil {
		updated.Category = entity.ParseCategory(*input.Category)
	}
	if input.Type != nil {
		updated.Type = *input.Type
	}
	if input.Date != nil {
		updated.Date = entity.DateOnly(*input.Date)
	}

	if err := validateTransactionFields(
		updated.Description, updated.Amount, updated.Category.String(), updated.Type, updated.Date,
	); err != nil {
		return nil, err
	}

	updated.UpdatedAt = time.Now().UTC()

	if err := session.UpdateTransaction(ctx, &updated); err != nil {
		return nil, err
	}

	return &UpdateTransactionOutput{Transaction: &updated}, nil
}
