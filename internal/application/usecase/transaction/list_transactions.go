// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"

	"github.com/google/uuid"

	"github.com/moneyboard/backend/internal/application/ledger"
	"github.com/moneyboard/backend/internal/application/usecase/dashboard"
	"github.com/moneyboard/backend/internal/domain/entity"
)

// ListTransactionsInput represents the input for listing transactions.
type ListTransactionsInput struct {
	UserID    uuid.UUID
	Filter    Filter
	SortBy    SortKey
	SortOrder SortDirection
}

// ListTransactionsOutput represents the output of listing transactions.
// Totals cover the filtered view, not the whole ledger.
type ListTransactionsOutput struct {
	Transactions []*entity.Transaction
	Matched      int
	Total        int
	Totals       dashboard.Totals
}

// ListTransactionsUseCase runs the transaction list pipeline over the
// ledger mirror: filter, then stable sort.
type ListTransactionsUseCase struct {
	sessions *ledger.Manager
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(sessions *ledger.Manager) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{sessions: sessions}
}

// Execute performs the transaction listing.
func (uc *ListTransactionsUseCase) Execute(ctx context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	session, err := uc.sessions.Session(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	all := session.Transactions()
	filtered := ApplyFilter(all, input.Filter)

	sortBy := input.SortBy
	if sortBy == "" {
		sortBy = SortByDate
	}
	sortOrder := input.SortOrder
	if sortOrder == "" {
		sortOrder = SortDesc
	}
	SortTransactions(filtered, sortBy, sortOrder)

	return &ListTransactionsOutput{
		Transactions: filtered,
		Matched:      len(filtered),
		Total:        len(all),
		Totals:       dashboard.ComputeTotals(filtered),
	}, nil
}
