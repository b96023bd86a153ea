// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/moneyboard/backend/internal/domain/entity"
	domainerror "github.com/moneyboard/backend/internal/domain/error"
)

// CreateBudgetInput represents the input for budget creation.
type CreateBudgetInput struct {
	UserID        uuid.UUID
	Category      string
	Limit         decimal.Decimal
	Period        entity.BudgetPeriod
	AlertOnExceed bool
}

// CreateBudgetOutput represents the output of budget creation.
type CreateBudgetOutput struct {
	Budget *entity.Budget
}

// CreateBudgetUseCase handles budget creation logic.
type CreateBudgetUseCase struct {
	registry *Registry
}

// NewCreateBudgetUseCase creates a new CreateBudgetUseCase instance.
func NewCreateBudgetUseCase(registry *Registry) *CreateBudgetUseCase {
	return &CreateBudgetUseCase{registry: registry}
}

// Execute performs the budget creation.
func (uc *CreateBudgetUseCase) Execute(ctx context.Context, input CreateBudgetInput) (*CreateBudgetOutput, error) {
	if err := validateBudgetFields(input.Category, input.Limit, input.Period); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	b := &entity.Budget{
		UserID:        input.UserID,
		Category:      entity.ParseCategory(strings.TrimSpace(input.Category)),
		Limit:         input.Limit,
		Period:        input.Period,
		AlertOnExceed: input.AlertOnExceed,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := uc.registry.Add(b); err != nil {
		return nil, err
	}

	return &CreateBudgetOutput{Budget: b}, nil
}

// validateBudgetFields checks the user-supplied budget fields shared by
// create and update.
func validateBudgetFields(category string, limit decimal.Decimal, period entity.BudgetPeriod) error {
	if strings.TrimSpace(category) == "" {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeEmptyCategory,
			"category must not be empty",
			domainerror.ErrEmptyTransactionCategory,
		)
	}
	if !limit.IsPositive() {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetLimit,
			"limit must be positive",
			domainerror.ErrInvalidBudgetLimit,
		)
	}
	if !period.IsValid() {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetPeriod,
			"period must be 'monthly' or 'weekly'",
			domainerror.ErrInvalidBudgetPeriod,
		)
	}
	return nil
}
