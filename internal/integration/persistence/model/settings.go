// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/moneyboard/backend/internal/domain/entity"
)

// UserSettingsModel represents the user_settings table in the database.
type UserSettingsModel struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Currency  string    `gorm:"type:varchar(3);not null;default:'USD'"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the UserSettingsModel.
func (UserSettingsModel) TableName() string {
	return "user_settings"
}

// ToEntity converts a UserSettingsModel to a domain UserSettings entity.
func (m *UserSettingsModel) ToEntity() *entity.UserSettings {
	return &entity.UserSettings{
		UserID:    m.UserID,
		Currency:  m.Currency,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// SettingsFromEntity creates a UserSettingsModel from a domain UserSettings entity.
func SettingsFromEntity(settings *entity.UserSettings) *UserSettingsModel {
	return &UserSettingsModel{
		UserID:    settings.UserID,
		Currency:  settings.Currency,
		CreatedAt: settings.CreatedAt,
		UpdatedAt: settings.UpdatedAt,
	}
}
