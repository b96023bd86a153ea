// Package model defines database models for persistence layer.
package model

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/moneyboard/backend/internal/domain/entity"
)

// RecurringTransactionModel represents the recurring_transactions table in
// the database.
type RecurringTransactionModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	Description   string          `gorm:"type:varchar(255);not null"`
	Amount        decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Category      string          `gorm:"type:varchar(100);not null"`
	Type          string          `gorm:"type:varchar(10);not null"`
	Frequency     string          `gorm:"type:varchar(10);not null"`
	StartDate     time.Time       `gorm:"type:date;not null"`
	EndDate       sql.NullTime    `gorm:"type:date"`
	IsActive      bool            `gorm:"not null;default:true"`
	LastGenerated sql.NullTime    `gorm:"type:date"`
	CreatedAt     time.Time       `gorm:"not null"`
	UpdatedAt     time.Time       `gorm:"not null"`
}

// TableName returns the table name for the RecurringTransactionModel.
func (RecurringTransactionModel) TableName() string {
	return "recurring_transactions"
}

// ToEntity converts a RecurringTransactionModel to a domain entity.
func (m *RecurringTransactionModel) ToEntity() *entity.RecurringTransaction {
	var endDate *time.Time
	if m.EndDate.Valid {
		endDate = &m.EndDate.Time
	}

	var lastGenerated *time.Time
	if m.LastGenerated.Valid {
		lastGenerated = &m.LastGenerated.Time
	}

	return &entity.RecurringTransaction{
		ID:            m.ID,
		UserID:        m.UserID,
		Description:   m.Description,
		Amount:        m.Amount,
		Category:      entity.ParseCategory(m.Category),
		Type:          entity.TransactionType(m.Type),
		Frequency:     entity.Frequency(m.Frequency),
		StartDate:     m.StartDate,
		EndDate:       endDate,
		IsActive:      m.IsActive,
		LastGenerated: lastGenerated,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// RecurringFromEntity creates a RecurringTransactionModel from a domain entity.
func RecurringFromEntity(recurring *entity.RecurringTransaction) *RecurringTransactionModel {
	var endDate sql.NullTime
	if recurring.EndDate != nil {
		endDate = sql.NullTime{Time: *recurring.EndDate, Valid: true}
	}

	var lastGenerated sql.NullTime
	if recurring.LastGenerated != nil {
		lastGenerated = sql.NullTime{Time: *recurring.LastGenerated, Valid: true}
	}

	return &RecurringTransactionModel{
		ID:            recurring.ID,
		UserID:        recurring.UserID,
		Description:   recurring.Description,
		Amount:        recurring.Amount,
		Category:      recurring.Category.String(),
		Type:          string(recurring.Type),
		Frequency:     string(recurring.Frequency),
		StartDate:     recurring.StartDate,
		EndDate:       endDate,
		IsActive:      recurring.IsActive,
		LastGenerated: lastGenerated,
		CreatedAt:     recurring.CreatedAt,
		UpdatedAt:     recurring.UpdatedAt,
	}
}
