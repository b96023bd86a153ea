package budget

import (
	"context"

	"github.com/google/uuid"
)

// DeleteBudgetInput represents the input for budget deletion.
type DeleteBudgetInput struct {
	UserID uuid.UUID
	ID     int
}

// DeleteBudgetUseCase handles budget deletion logic.
type DeleteBudgetUseCase struct {
	registry *Registry
}

// NewDeleteBudgetUseCase creates a new DeleteBudgetUseCase instance.
func NewDeleteBudgetUseCase(registry *Registry) *DeleteBudgetUseCase {
	return &DeleteBudgetUseCase{registry: registry}
}

// Execute performs the budget deletion.
func (uc *DeleteBudgetUseCase) Execute(ctx context.Context, input DeleteBudgetInput) error {
	return uc.registry.Remove(input.UserID, input.ID)
}
