// Package ledger owns the in-memory mirror of a user's ledger for the
// lifetime of their session. Reads are served from memory; mutations are
// written through to the store first and applied to memory only when the
// store confirms them, so the mirror is never ahead of the store.
package ledger

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/moneyboard/backend/internal/application/adapter"
	"github.com/moneyboard/backend/internal/domain/entity"
	domainerror "github.com/moneyboard/backend/internal/domain/error"
)

// Manager hands out one Session per owner and performs the initial load.
type Manager struct {
	transactionRepo adapter.TransactionRepository
	recurringRepo   adapter.RecurringRepository

	mu       sync.Mutex
	sessions map[uuid.UUID]*Session
}

// NewManager creates a new session manager backed by the given repositories.
func NewManager(transactionRepo adapter.TransactionRepository, recurringRepo adapter.RecurringRepository) *Manager {
	return &Manager{
		transactionRepo: transactionRepo,
		recurringRepo:   recurringRepo,
		sessions:        make(map[uuid.UUID]*Session),
	}
}

// Session returns the ledger session for the user, loading both lists from
// the store on first use. The two fetches run concurrently and the session
// becomes available only once both have completed; a failure on either side
// leaves nothing cached, so a later call retries the full load.
func (m *Manager) Session(ctx context.Context, userID uuid.UUID) (*Session, error) {
	m.mu.Lock()
	if s, ok := m.sessions[userID]; ok {
		m.mu.Unlock()
		return s, nil
	}
	m.mu.Unlock()

	var (
		transactions []*entity.Transaction
		recurring    []*entity.RecurringTransaction
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		txns, err := m.transactionRepo.FindByUser(gctx, userID)
		if err != nil {
			return domainerror.NewRetrievalError(
				domainerror.ErrCodeTransactionFetchFailed,
				"failed to load transactions",
				err,
			)
		}
		transactions = txns
		return nil
	})
	g.Go(func() error {
		recs, err := m.recurringRepo.FindByUser(gctx, userID)
		if err != nil {
			return domainerror.NewRetrievalError(
				domainerror.ErrCodeRecurringFetchFailed,
				"failed to load recurring transactions",
				err,
			)
		}
		recurring = recs
		return nil
	})

	if err := g.Wait(); err != nil {
		slog.Error("Ledger session load failed", "userID", userID, "error", err)
		return nil, err
	}

	s := &Session{
		userID:          userID,
		transactionRepo: m.transactionRepo,
		recurringRepo:   m.recurringRepo,
		transactions:    transactions,
		recurring:       recurring,
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	// Another request may have loaded the session while we were fetching;
	// keep the first one so concurrent mutations are not split across mirrors.
	if existing, ok := m.sessions[userID]; ok {
		return existing, nil
	}
	m.sessions[userID] = s
	return s, nil
}

// Drop discards the cached session for a user, forcing a reload on next use.
func (m *Manager) Drop(userID uuid.UUID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, userID)
}

// Session is the in-memory ledger of a single owner. All mutations are
// write-through: the store call happens first, and the mirror changes only
// on success. A failed call leaves the mirror at its last-known-good state.
type Session struct {
	userID          uuid.UUID
	transactionRepo adapter.TransactionRepository
	recurringRepo   adapter.RecurringRepository

	mu           sync.RWMutex
	transactions []*entity.Transaction
	recurring    []*entity.RecurringTransaction
}

// UserID returns the owner of this session.
func (s *Session) UserID() uuid.UUID {
	return s.userID
}

// Transactions returns a snapshot of the transaction list, newest first.
func (s *Session) Transactions() []*entity.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*entity.Transaction, len(s.transactions))
	copy(out, s.transactions)
	return out
}

// Recurring returns a snapshot of the recurring templates, newest created first.
func (s *Session) Recurring() []*entity.RecurringTransaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*entity.RecurringTransaction, len(s.recurring))
	copy(out, s.recurring)
	return out
}

// Transaction looks up a single transaction by id.
func (s *Session) Transaction(id uuid.UUID) (*entity.Transaction, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.transactions {
		if t.ID == id {
			return t, true
		}
	}
	return nil, false
}

// CreateTransaction writes the transaction to the store and, on success,
// prepends it to the mirror.
func (s *Session) CreateTransaction(ctx context.Context, txn *entity.Transaction) error {
	if err := s.transactionRepo.Create(ctx, txn); err != nil {
		return domainerror.NewMutationError(
			domainerror.ErrCodeTransactionCreateFailed,
			"failed to create transaction",
			err,
		)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.transactions = append([]*entity.Transaction{txn}, s.transactions...)
	return nil
}

// UpdateTransaction writes the updated transaction to the store and, on
// success, replaces the matching record in the mirror.
func (s *Session) UpdateTransaction(ctx context.Context, txn *entity.Transaction) error {
	if err := s.transactionRepo.Update(ctx, txn); err != nil {
		return domainerror.NewMutationError(
			domainerror.ErrCodeTransactionUpdateFailed,
			"failed to update transaction",
			err,
		)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, t := range s.transactions {
		if t.ID == txn.ID {
			s.transactions[i] = txn
			break
		}
	}
	return nil
}

// DeleteTransaction deletes from the store and, on success, removes the
// record from the mirror.
func (s *Session) DeleteTransaction(ctx context.Context, id uuid.UUID) error {
	if err := s.transactionRepo.Delete(ctx, id, s.userID); err != nil {
		return domainerror.NewMutationError(
			domainerror.ErrCodeTransactionDeleteFailed,
			"failed to delete transaction",
			err,
		)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, t := range s.transactions {
		if t.ID == id {
			s.transactions = append(s.transactions[:i], s.transactions[i+1:]...)
			break
		}
	}
	return nil
}

// AddRecurring writes the template to the store and, on success, prepends
// it to the mirror.
func (s *Session) AddRecurring(ctx context.Context, rec *entity.RecurringTransaction) error {
	if err := s.recurringRepo.Create(ctx, rec); err != nil {
		return domainerror.NewMutationError(
			domainerror.ErrCodeRecurringCreateFailed,
			"failed to create recurring transaction",
			err,
		)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.recurring = append([]*entity.RecurringTransaction{rec}, s.recurring...)
	return nil
}

// ToggleRecurring updates only the active flag in the store and, on
// success, replaces the matching template in the mirror with the store's
// version of the record.
func (s *Session) ToggleRecurring(ctx context.Context, id uuid.UUID, active bool) (*entity.RecurringTransaction, error) {
	updated, err := s.recurringRepo.SetActive(ctx, id, s.userID, active)
	if err != nil {
		return nil, domainerror.NewMutationError(
			domainerror.ErrCodeRecurringToggleFailed,
			"failed to toggle recurring transaction",
			err,
		)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, r := range s.recurring {
		if r.ID == id {
			s.recurring[i] = updated
			break
		}
	}
	return updated, nil
}
