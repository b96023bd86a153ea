// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserSettings holds per-user preferences.
type UserSettings struct {
	UserID    uuid.UUID
	Currency  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DefaultCurrency is used until the user picks a currency.
const DefaultCurrency = "USD"

// NewUserSettings creates settings with defaults for a user.
func NewUserSettings(userID uuid.UUID) *UserSettings {
	now := time.Now().UTC()
	return &UserSettings{
		UserID:    userID,
		Currency:  DefaultCurrency,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
