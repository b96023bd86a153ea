// Package recurring contains recurring-transaction use cases.
package recurring

import (
	"context"

	"github.com/google/uuid"

	"github.com/moneyboard/backend/internal/application/ledger"
	"github.com/moneyboard/backend/internal/domain/entity"
)

// ToggleRecurringInput represents the input for toggling a template's
// active flag.
type ToggleRecurringInput struct {
	UserID      uuid.UUID
	RecurringID uuid.UUID
	Active      bool
}

// ToggleRecurringOutput represents the output of the toggle.
type ToggleRecurringOutput struct {
	Recurring *entity.RecurringTransaction
}

// ToggleRecurringUseCase flips only the active flag of a template.
type ToggleRecurringUseCase struct {
	sessions *ledger.Manager
}

// NewToggleRecurringUseCase creates a new ToggleRecurringUseCase instance.
func NewToggleRecurringUseCase(sessions *ledger.Manager) *ToggleRecurringUseCase {
	return &ToggleRecurringUseCase{sessions: sessions}
}

// Execute performs the toggle.
func (uc *ToggleRecurringUseCase) Execute(ctx context.Context, input ToggleRecurringInput) (*ToggleRecurringOutput, error) {
	session, err := uc.sessions.Session(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	updated, err := session.ToggleRecurring(ctx, input.RecurringID, input.Active)
	if err != nil {
		return nil, err
	}

	return &ToggleRecurringOutput{Recurring: updated}, nil
}
