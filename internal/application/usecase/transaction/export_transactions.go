// Package transaction contains transaction-related use cases.
package transaction

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/moneyboard/backend/internal/application/ledger"
)

// ExportTransactionsInput represents the input for a CSV export. The same
// filter pipeline as the list view applies, so the export matches what the
// user is looking at.
type ExportTransactionsInput struct {
	UserID    uuid.UUID
	Filter    Filter
	SortBy    SortKey
	SortOrder SortDirection
}

// ExportTransactionsOutput holds the rendered CSV.
type ExportTransactionsOutput struct {
	Filename string
	Content  []byte
}

// ExportTransactionsUseCase renders the filtered transaction list as CSV.
type ExportTransactionsUseCase struct {
	list *ListTransactionsUseCase
}

// NewExportTransactionsUseCase creates a new ExportTransactionsUseCase instance.
func NewExportTransactionsUseCase(sessions *ledger.Manager) *ExportTransactionsUseCase {
	return &ExportTransactionsUseCase{list: NewListTransactionsUseCase(sessions)}
}

// Execute performs the export.
func (uc *ExportTransactionsUseCase) Execute(ctx context.Context, input ExportTransactionsInput) (*ExportTransactionsOutput, error) {
	listed, err := uc.list.Execute(ctx, ListTransactionsInput{
		UserID:    input.UserID,
		Filter:    input.Filter,
		SortBy:    input.SortBy,
		SortOrder: input.SortOrder,
	})
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write([]string{"date", "description", "category", "type", "amount"}); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, t := range listed.Transactions {
		record := []string{
			t.Date.Format("2006-01-02"),
			t.Description,
			t.Category.String(),
			string(t.Type),
			t.Amount.String(),
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write csv record: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}

	return &ExportTransactionsOutput{
		Filename: fmt.Sprintf("transactions-%s.csv", time.Now().UTC().Format("2006-01-02")),
		Content:  buf.Bytes(),
	}, nil
}
