// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/moneyboard/backend/internal/domain/entity"
)

// SettingsRepository defines the store boundary for user preferences.
type SettingsRepository interface {
	// FindByUser retrieves settings for a user. Returns (nil, nil) when the
	// user has no stored settings yet.
	FindByUser(ctx context.Context, userID uuid.UUID) (*entity.UserSettings, error)

	// Save inserts or updates the settings row for the user.
	Save(ctx context.Context, settings *entity.UserSettings) error
}
