// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/moneyboard/backend/internal/application/usecase/transaction"
	"github.com/moneyboard/backend/internal/domain/entity"
)

// CreateTransactionRequest represents the request body for transaction creation.
type CreateTransactionRequest struct {
	Date        string  `json:"date" binding:"required"`
	Description string  `json:"description" binding:"required,min=1,max=255"`
	Amount      string  `json:"amount" binding:"required"`
	Category    string  `json:"category" binding:"required,min=1,max=100"`
	Type        string  `json:"type" binding:"required,oneof=expense income"`
	RecurringID *string `json:"recurring_transaction_id,omitempty"`
}

// UpdateTransactionRequest represents the request body for transaction update.
type UpdateTransactionRequest struct {
	Date        *string `json:"date,omitempty"`
	Description *string `json:"description,omitempty" binding:"omitempty,min=1,max=255"`
	Amount      *string `json:"amount,omitempty"`
	Category    *string `json:"category,omitempty" binding:"omitempty,min=1,max=100"`
	Type        *string `json:"type,omitempty" binding:"omitempty,oneof=expense income"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Date        string    `json:"date"`
	Description string    `json:"description"`
	Amount      string    `json:"amount"`
	Category    string    `json:"category"`
	Type        string    `json:"type"`
	RecurringID *string   `json:"recurring_transaction_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TransactionTotalsResponse represents aggregated totals in API responses.
type TransactionTotalsResponse struct {
	Income   string `json:"income"`
	Expenses string `json:"expenses"`
	Balance  string `json:"balance"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse     `json:"transactions"`
	Matched      int                       `json:"matched"`
	Total        int                       `json:"total"`
	Totals       TransactionTotalsResponse `json:"totals"`
}

// ToTransactionResponse converts a Transaction entity to a TransactionResponse DTO.
func ToTransactionResponse(txn *entity.Transaction) TransactionResponse {
	response := TransactionResponse{
		ID:          txn.ID.String(),
		UserID:      txn.UserID.String(),
		Date:        txn.Date.Format("2006-01-02"),
		Description: txn.Description,
		Amount:      txn.Amount.String(),
		Category:    txn.Category.String(),
		Type:        string(txn.Type),
		CreatedAt:   txn.CreatedAt,
		UpdatedAt:   txn.UpdatedAt,
	}

	if txn.RecurringTransactionID != nil {
		recurringIDStr := txn.RecurringTransactionID.String()
		response.RecurringID = &recurringIDStr
	}

	return response
}

// ToTransactionListResponse converts a ListTransactionsOutput to a TransactionListResponse DTO.
func ToTransactionListResponse(output *transaction.ListTransactionsOutput) TransactionListResponse {
	transactions := make([]TransactionResponse, len(output.Transactions))
	for i, txn := range output.Transactions {
		transactions[i] = ToTransactionResponse(txn)
	}

	return TransactionListResponse{
		Transactions: transactions,
		Matched:      output.Matched,
		Total:        output.Total,
		Totals: TransactionTotalsResponse{
			Income:   output.Totals.Income.String(),
			Expenses: output.Totals.Expenses.String(),
			Balance:  output.Totals.Balance.String(),
		},
	}
}
