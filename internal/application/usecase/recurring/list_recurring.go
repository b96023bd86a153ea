// Package recurring contains recurring-transaction use cases.
package recurring

import (
	"context"

	"github.com/google/uuid"

	"github.com/moneyboard/backend/internal/application/ledger"
	"github.com/moneyboard/backend/internal/domain/entity"
)

// ListRecurringInput represents the input for listing recurring templates.
type ListRecurringInput struct {
	UserID uuid.UUID
}

// ListRecurringOutput represents the output of listing recurring templates.
type ListRecurringOutput struct {
	Recurring []*entity.RecurringTransaction
}

// ListRecurringUseCase lists the user's recurring templates, newest created
// first.
type ListRecurringUseCase struct {
	sessions *ledger.Manager
}

// NewListRecurringUseCase creates a new ListRecurringUseCase instance.
func NewListRecurringUseCase(sessions *ledger.Manager) *ListRecurringUseCase {
	return &ListRecurringUseCase{sessions: sessions}
}

// Execute performs the listing.
func (uc *ListRecurringUseCase) Execute(ctx context.Context, input ListRecurringInput) (*ListRecurringOutput, error) {
	session, err := uc.sessions.Session(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	return &ListRecurringOutput{Recurring: session.Recurring()}, nil
}
