// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/moneyboard/backend/internal/domain/entity"
)

// RecurringRepository defines the store boundary for recurring-transaction
// templates.
type RecurringRepository interface {
	// FindByUser retrieves all templates for a user, newest created first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.RecurringTransaction, error)

	// Create inserts a new template.
	Create(ctx context.Context, recurring *entity.RecurringTransaction) error

	// SetActive updates only the active flag, matched by id and owner, and
	// returns the updated template.
	// Returns domainerror.ErrRecurringNotFound when no row matches.
	SetActive(ctx context.Context, id, userID uuid.UUID, active bool) (*entity.RecurringTransaction, error)
}
