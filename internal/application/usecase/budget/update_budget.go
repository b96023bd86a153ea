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

// UpdateBudgetInput represents the input for budget update. Nil fields keep
// their current value.
type UpdateBudgetInput struct {
	UserID        uuid.UUID
	ID            int
	Category      *string
	Limit         *decimal.Decimal
	Period        *entity.BudgetPeriod
	AlertOnExceed *bool
}

// UpdateBudgetOutput represents the output of budget update.
type UpdateBudgetOutput struct {
	Budget *entity.Budget
}

// UpdateBudgetUseCase handles budget update logic.
type UpdateBudgetUseCase struct {
	registry *Registry
}

// NewUpdateBudgetUseCase creates a new UpdateBudgetUseCase instance.
func NewUpdateBudgetUseCase(registry *Registry) *UpdateBudgetUseCase {
	return &UpdateBudgetUseCase{registry: registry}
}

// Execute performs the budget update.
func (uc *UpdateBudgetUseCase) Execute(ctx context.Context, input UpdateBudgetInput) (*UpdateBudgetOutput, error) {
	existing, ok := uc.registry.Get(input.UserID, input.ID)
	if !ok {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeBudgetNotFound,
			"budget not found",
			domainerror.ErrBudgetNotFound,
		)
	}

	updated := *existing
	if input.Category != nil {
		updated.Category = entity.ParseCategory(strings.TrimSpace(*input.Category))
	}
	if input.Limit != nil {
		updated.Limit = *input.Limit
	}
	if input.Period != nil {
		updated.Period = *input.Period
	}
	if input.AlertOnExceed != nil {
		updated.AlertOnExceed = *input.AlertOnExceed
	}

	if err := validateBudgetFields(updated.Category.String(), updated.Limit, updated.Period); err != nil {
		return nil, err
	}

	// Raising the limit or changing category can bring the budget back
	// under; re-arm the alert so the next breach notifies again.
	updated.Alerted = false
	updated.UpdatedAt = time.Now().UTC()

	if err := uc.registry.Replace(&updated); err != nil {
		return nil, err
	}

	return &UpdateBudgetOutput{Budget: &updated}, nil
}
