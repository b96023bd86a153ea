// Package recurring contains recurring-transaction use cases.
package recurring

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

// CreateRecurringInput represents the input for creating a recurring template.
type CreateRecurringInput struct {
	UserID      uuid.UUID
	Description string
	Amount      decimal.Decimal
	Category    string
	Type        entity.TransactionType
	Frequency   entity.Frequency
	StartDate   time.Time
	EndDate     *time.Time
}

// CreateRecurringOutput represents the output of creating a recurring template.
type CreateRecurringOutput struct {
	Recurring *entity.RecurringTransaction
}

// CreateRecurringUseCase handles recurring-template creation logic.
type CreateRecurringUseCase struct {
	sessions *ledger.Manager
}

// NewCreateRecurringUseCase creates a new CreateRecurringUseCase instance.
func NewCreateRecurringUseCase(sessions *ledger.Manager) *CreateRecurringUseCase {
	return &CreateRecurringUseCase{sessions: sessions}
}

// Execute performs the template creation.
func (uc *CreateRecurringUseCase) Execute(ctx context.Context, input CreateRecurringInput) (*CreateRecurringOutput, error) {
	if strings.TrimSpace(input.Description) == "" {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeEmptyDescription,
			"description must not be empty",
			domainerror.ErrEmptyTransactionDescription,
		)
	}
	if input.Amount.IsNegative() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"amount must not be negative",
			domainerror.ErrInvalidTransactionAmount,
		)
	}
	if !input.Type.IsValid() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"transaction type must be 'expense' or 'income'",
			domainerror.ErrInvalidTransactionType,
		)
	}
	if !input.Frequency.IsValid() {
		return nil, domainerror.NewRecurringError(
			domainerror.ErrCodeInvalidFrequency,
			"frequency must be: daily, weekly, monthly or yearly",
			domainerror.ErrInvalidFrequency,
		)
	}
	if input.EndDate != nil && input.EndDate.Before(input.StartDate) {
		return nil, domainerror.NewRecurringError(
			domainerror.ErrCodeEndBeforeStart,
			"end date must not precede start date",
			domainerror.ErrEndBeforeStart,
		)
	}

	session, err := uc.sessions.Session(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	rec := entity.NewRecurringTransaction(
		input.UserID,
		strings.TrimSpace(input.Description),
		input.Amount,
		entity.ParseCategory(input.Category),
		input.Type,
		input.Frequency,
		input.StartDate,
		input.EndDate,
	)

	if err := session.AddRecurring(ctx, rec); err != nil {
		return nil, err
	}

	return &CreateRecurringOutput{Recurring: rec}, nil
}
