// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/moneyboard/backend/internal/domain/entity"
)

// TransactionRepository defines the store boundary for ledger entries.
// All lookups and mutations are scoped to an owner; the store enforces
// nothing beyond exact-match filters.
type TransactionRepository interface {
	// FindByUser retrieves all transactions for a user, newest date first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Transaction, error)

	// Create inserts a new transaction.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// Update persists changes to a transaction, matched by id and owner.
	// Returns domainerror.ErrTransactionNotFound when no row matches.
	Update(ctx context.Context, transaction *entity.Transaction) error

	// Delete removes a transaction matched by id and owner.
	// Returns domainerror.ErrTransactionNotFound when no row matches.
	Delete(ctx context.Context, id, userID uuid.UUID) error
}
