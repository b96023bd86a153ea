// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/moneyboard/backend/internal/domain/entity"
)

// UpdateSettingsRequest represents the request body for settings update.
type UpdateSettingsRequest struct {
	Currency string `json:"currency" binding:"required,len=3"`
}

// SettingsResponse represents user settings in API responses.
type SettingsResponse struct {
	UserID    string    `json:"user_id"`
	Currency  string    `json:"currency"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToSettingsResponse converts a UserSettings entity to a SettingsResponse DTO.
func ToSettingsResponse(settings *entity.UserSettings) SettingsResponse {
	return SettingsResponse{
		UserID:    settings.UserID.String(),
		Currency:  settings.Currency,
		CreatedAt: settings.CreatedAt,
		UpdatedAt: settings.UpdatedAt,
	}
}
