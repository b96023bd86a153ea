// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/moneyboard/backend/internal/domain/entity"
)

// CreateRecurringRequest represents the request body for recurring-transaction creation.
type CreateRecurringRequest struct {
	Description string  `json:"description" binding:"required,min=1,max=255"`
	Amount      string  `json:"amount" binding:"required"`
	Category    string  `json:"category" binding:"required,min=1,max=100"`
	Type        string  `json:"type" binding:"required,oneof=expense income"`
	Frequency   string  `json:"frequency" binding:"required,oneof=daily weekly monthly yearly"`
	StartDate   string  `json:"start_date" binding:"required"`
	EndDate     *string `json:"end_date,omitempty"`
}

// ToggleRecurringRequest represents the request body for toggling a template.
type ToggleRecurringRequest struct {
	IsActive bool `json:"is_active"`
}

// RecurringResponse represents a recurring-transaction template in API responses.
type RecurringResponse struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	Description   string    `json:"description"`
	Amount        string    `json:"amount"`
	Category      string    `json:"category"`
	Type          string    `json:"type"`
	Frequency     string    `json:"frequency"`
	StartDate     string    `json:"start_date"`
	EndDate       *string   `json:"end_date,omitempty"`
	IsActive      bool      `json:"is_active"`
	LastGenerated *string   `json:"last_generated,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// RecurringListResponse represents the response for listing templates.
type RecurringListResponse struct {
	Recurring []RecurringResponse `json:"recurring_transactions"`
}

// ToRecurringResponse converts a RecurringTransaction entity to a RecurringResponse DTO.
func ToRecurringResponse(rec *entity.RecurringTransaction) RecurringResponse {
	response := RecurringResponse{
		ID:          rec.ID.String(),
		UserID:      rec.UserID.String(),
		Description: rec.Description,
		Amount:      rec.Amount.String(),
		Category:    rec.Category.String(),
		Type:        string(rec.Type),
		Frequency:   string(rec.Frequency),
		StartDate:   rec.StartDate.Format("2006-01-02"),
		IsActive:    rec.IsActive,
		CreatedAt:   rec.CreatedAt,
		UpdatedAt:   rec.UpdatedAt,
	}

	if rec.EndDate != nil {
		endDateStr := rec.EndDate.Format("2006-01-02")
		response.EndDate = &endDateStr
	}
	if rec.LastGenerated != nil {
		lastGeneratedStr := rec.LastGenerated.Format("2006-01-02")
		response.LastGenerated = &lastGeneratedStr
	}

	return response
}

// ToRecurringListResponse converts templates to a RecurringListResponse DTO.
func ToRecurringListResponse(recs []*entity.RecurringTransaction) RecurringListResponse {
	recurring := make([]RecurringResponse, len(recs))
	for i, rec := range recs {
		recurring[i] = ToRecurringResponse(rec)
	}
	return RecurringListResponse{Recurring: recurring}
}
