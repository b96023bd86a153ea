// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/moneyboard/backend/internal/application/adapter"
	"github.com/moneyboard/backend/internal/domain/entity"
	domainerror "github.com/moneyboard/backend/internal/domain/error"
	"github.com/moneyboard/backend/internal/integration/persistence/model"
)

// recurringRepository implements the adapter.RecurringRepository interface.
type recurringRepository struct {
	db *gorm.DB
}

// NewRecurringRepository creates a new recurring-transaction repository instance.
func NewRecurringRepository(db *gorm.DB) adapter.RecurringRepository {
	return &recurringRepository{
		db: db,
	}
}

// FindByUser retrieves all recurring templates for a user, newest created first.
func (r *recurringRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.RecurringTransaction, error) {
	var recurringModels []model.RecurringTransactionModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&recurringModels)
	if result.Error != nil {
		return nil, result.Error
	}

	templates := make([]*entity.RecurringTransaction, len(recurringModels))
	for i, rm := range recurringModels {
		templates[i] = rm.ToEntity()
	}
	return templates, nil
}

// Create inserts a new recurring template in the database.
func (r *recurringRepository) Create(ctx context.Context, recurring *entity.RecurringTransaction) error {
	recurringModel := model.RecurringFromEntity(recurring)
	result := r.db.WithContext(ctx).Create(recurringModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// SetActive updates the active flag of a template, matched by id and owner,
// and returns the updated template.
func (r *recurringRepository) SetActive(ctx context.Context, id, userID uuid.UUID, active bool) (*entity.RecurringTransaction, error) {
	result := r.db.WithContext(ctx).
		Model(&model.RecurringTransactionModel{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(map[string]interface{}{
			"is_active":  active,
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, domainerror.ErrRecurringNotFound
	}

	var recurringModel model.RecurringTransactionModel
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&recurringModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrRecurringNotFound
		}
		return nil, err
	}
	return recurringModel.ToEntity(), nil
}
