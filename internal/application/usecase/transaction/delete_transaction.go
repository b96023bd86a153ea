// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"

	"github.com/google/uuid"

	"github.com/moneyboard/backend/internal/application/ledger"
)

// DeleteTransactionInput represents the input for transaction deletion.
type DeleteTransactionInput struct {
	UserID        uuid.UUID
	TransactionID uuid.UUID
}

// DeleteTransactionUseCase handles transaction deletion logic.
type DeleteTransactionUseCase struct {
	sessions *ledger.Manager
}

// NewDeleteTransactionUseCase creates a new DeleteTransactionUseCase instance.
func NewDeleteTransactionUseCase(sessions *ledger.Manager) *DeleteTransactionUseCase {
	return &DeleteTransactionUseCase{sessions: sessions}
}

// Execute performs the transaction deletion.
func (uc *DeleteTransactionUseCase) Execute(ctx context.Context, input DeleteTransactionInput) error {
	session, err := uc.sessions.Session(ctx, input.UserID)
	if err != nil {
		return err
	}
	return session.DeleteTransaction(ctx, input.TransactionID)
}
