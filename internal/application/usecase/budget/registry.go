// Package budget contains budget-related use cases.
//
// Budgets are session-local: they live in this in-memory registry and are
// not written to the store, so they do not survive a restart. The registry
// hands out ids from a plain integer sequence; store-assigned uuid
// identifiers never apply to budgets.
package budget

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/moneyboard/backend/internal/domain/entity"
	domainerror "github.com/moneyboard/backend/internal/domain/error"
)

// Registry holds each user's budgets in memory.
type Registry struct {
	mu      sync.RWMutex
	budgets map[uuid.UUID][]*entity.Budget
	nextID  int
}

// NewRegistry creates an empty budget registry.
func NewRegistry() *Registry {
	return &Registry{
		budgets: make(map[uuid.UUID][]*entity.Budget),
		nextID:  1,
	}
}

// List returns a snapshot of the user's budgets in creation order.
func (r *Registry) List(userID uuid.UUID) []*entity.Budget {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Budget, len(r.budgets[userID]))
	copy(out, r.budgets[userID])
	return out
}

// Get looks up one budget by id.
func (r *Registry) Get(userID uuid.UUID, id int) (*entity.Budget, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, b := range r.budgets[userID] {
		if b.ID == id {
			return b, true
		}
	}
	return nil, false
}

// Add assigns the next id and stores the budget. A user can hold at most
// one budget per category.
func (r *Registry) Add(b *entity.Budget) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.budgets[b.UserID] {
		if existing.Category.Equals(b.Category) {
			return domainerror.NewBudgetError(
				domainerror.ErrCodeDuplicateBudgetCategory,
				"a budget for this category already exists",
				domainerror.ErrDuplicateBudgetCategory,
			)
		}
	}

	b.ID = r.nextID
	r.nextID++
	r.budgets[b.UserID] = append(r.budgets[b.UserID], b)
	return nil
}

// Replace swaps the stored budget with the given one, matched by id.
func (r *Registry) Replace(b *entity.Budget) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.budgets[b.UserID] {
		if existing.ID != b.ID && existing.Category.Equals(b.Category) {
			return domainerror.NewBudgetError(
				domainerror.ErrCodeDuplicateBudgetCategory,
				"a budget for this category already exists",
				domainerror.ErrDuplicateBudgetCategory,
			)
		}
	}

	for i, existing := range r.budgets[b.UserID] {
		if existing.ID == b.ID {
			b.UpdatedAt = time.Now().UTC()
			r.budgets[b.UserID][i] = b
			return nil
		}
	}
	return domainerror.NewBudgetError(
		domainerror.ErrCodeBudgetNotFound,
		"budget not found",
		domainerror.ErrBudgetNotFound,
	)
}

// Remove deletes the budget matched by id.
func (r *Registry) Remove(userID uuid.UUID, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	list := r.budgets[userID]
	for i, b := range list {
		if b.ID == id {
			r.budgets[userID] = append(list[:i], list[i+1:]...)
			return nil
		}
	}
	return domainerror.NewBudgetError(
		domainerror.ErrCodeBudgetNotFound,
		"budget not found",
		domainerror.ErrBudgetNotFound,
	)
}

// SetAlerted flips the over-limit alert marker on a budget.
func (r *Registry) SetAlerted(userID uuid.UUID, id int, alerted bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.budgets[userID] {
		if b.ID == id {
			b.Alerted = alerted
			return
		}
	}
}
