// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/moneyboard/backend/internal/application/usecase/budget"
)

// CreateBudgetRequest represents the request body for budget creation.
type CreateBudgetRequest struct {
	Category      string `json:"category" binding:"required,min=1,max=100"`
	Limit         string `json:"limit" binding:"required"`
	Period        string `json:"period" binding:"required,oneof=monthly weekly"`
	AlertOnExceed bool   `json:"alert_on_exceed"`
}

// UpdateBudgetRequest represents the request body for budget update.
type UpdateBudgetRequest struct {
	Category      *string `json:"category,omitempty" binding:"omitempty,min=1,max=100"`
	Limit         *string `json:"limit,omitempty"`
	Period        *string `json:"period,omitempty" binding:"omitempty,oneof=monthly weekly"`
	AlertOnExceed *bool   `json:"alert_on_exceed,omitempty"`
}

// BudgetResponse represents a budget with its current-period consumption.
type BudgetResponse struct {
	ID            int       `json:"id"`
	Category      string    `json:"category"`
	Limit         string    `json:"limit"`
	Period        string    `json:"period"`
	AlertOnExceed bool      `json:"alert_on_exceed"`
	Spent         string    `json:"spent"`
	Percentage    float64   `json:"percentage"`
	Status        string    `json:"status"`
	StatusColor   string    `json:"status_color"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// BudgetSummaryResponse aggregates consumption across all budgets.
type BudgetSummaryResponse struct {
	TotalLimit string `json:"total_limit"`
	TotalSpent string `json:"total_spent"`
	Remaining  string `json:"remaining"`
}

// BudgetListResponse represents the response for listing budgets.
type BudgetListResponse struct {
	Budgets []BudgetResponse      `json:"budgets"`
	Summary BudgetSummaryResponse `json:"summary"`
}

// ToBudgetResponse converts a BudgetWithSpending to a BudgetResponse DTO.
func ToBudgetResponse(b budget.BudgetWithSpending) BudgetResponse {
	return BudgetResponse{
		ID:            b.Budget.ID,
		Category:      b.Budget.Category.String(),
		Limit:         b.Budget.Limit.String(),
		Period:        string(b.Budget.Period),
		AlertOnExceed: b.Budget.AlertOnExceed,
		Spent:         b.Spent.String(),
		Percentage:    b.Percentage,
		Status:        string(b.Status),
		StatusColor:   b.Status.Color(),
		CreatedAt:     b.Budget.CreatedAt,
		UpdatedAt:     b.Budget.UpdatedAt,
	}
}

// ToBudgetListResponse converts a ListBudgetsOutput to a BudgetListResponse DTO.
func ToBudgetListResponse(output *budget.ListBudgetsOutput) BudgetListResponse {
	budgets := make([]BudgetResponse, len(output.Budgets))
	for i, b := range output.Budgets {
		budgets[i] = ToBudgetResponse(b)
	}

	return BudgetListResponse{
		Budgets: budgets,
		Summary: BudgetSummaryResponse{
			TotalLimit: output.Summary.TotalLimit.String(),
			TotalSpent: output.Summary.TotalSpent.String(),
			Remaining:  output.Summary.Remaining.String(),
		},
	}
}
