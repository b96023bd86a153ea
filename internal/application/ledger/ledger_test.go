// Package ledger owns the in-memory mirror of a user's ledger for the
// lifetime of their session.
package ledger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/moneyboard/backend/internal/domain/entity"
	domainerror "github.com/moneyboard/backend/internal/domain/error"
)

// fakeTransactionRepo is an in-memory TransactionRepository whose calls can
// be forced to fail.
type fakeTransactionRepo struct {
	transactions []*entity.Transaction
	findCalls    int
	failFind     error
	failCreate   error
	failUpdate   error
	failDelete   error
}

func (f *fakeTransactionRepo) FindByUser(_ context.Context, _ uuid.UUID) ([]*entity.Transaction, error) {
	f.findCalls++
	if f.failFind != nil {
		return nil, f.failFind
	}
	return f.transactions, nil
}

func (f *fakeTransactionRepo) Create(_ context.Context, txn *entity.Transaction) error {
	if f.failCreate != nil {
		return f.failCreate
	}
	f.transactions = append(f.transactions, txn)
	return nil
}

func (f *fakeTransactionRepo) Update(_ context.Context, txn *entity.Transaction) error {
	return f.failUpdate
}

func (f *fakeTransactionRepo) Delete(_ context.Context, _, _ uuid.UUID) error {
	return f.failDelete
}

// fakeRecurringRepo is an in-memory RecurringRepository whose calls can be
// forced to fail.
type fakeRecurringRepo struct {
	recurring []*entity.RecurringTransaction
	findCalls int
	failFind  error
	failSet   error
}

func (f *fakeRecurringRepo) FindByUser(_ context.Context, _ uuid.UUID) ([]*entity.RecurringTransaction, error) {
	f.findCalls++
	if f.failFind != nil {
		return nil, f.failFind
	}
	return f.recurring, nil
}

func (f *fakeRecurringRepo) Create(_ context.Context, rec *entity.RecurringTransaction) error {
	f.recurring = append(f.recurring, rec)
	return nil
}

func (f *fakeRecurringRepo) SetActive(_ context.Context, id, userID uuid.UUID, active bool) (*entity.RecurringTransaction, error) {
	if f.failSet != nil {
		return nil, f.failSet
	}
	for _, r := range f.recurring {
		if r.ID == id && r.UserID == userID {
			updated := *r
			updated.IsActive = active
			return &updated, nil
		}
	}
	return nil, domainerror.ErrRecurringNotFound
}

func sampleTransaction(userID uuid.UUID) *entity.Transaction {
	return entity.NewTransaction(
		userID,
		"Coffee",
		decimal.RequireFromString("4.50"),
		entity.ParseCategory("Food"),
		entity.TransactionTypeExpense,
		entity.DateOnly(time.Now()),
		nil,
	)
}

func TestManagerSession(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("loads both lists on first use and caches the session", func(t *testing.T) {
		txnRepo := &fakeTransactionRepo{transactions: []*entity.Transaction{sampleTransaction(userID)}}
		recRepo := &fakeRecurringRepo{}
		manager := NewManager(txnRepo, recRepo)

		first, err := manager.Session(ctx, userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(first.Transactions()) != 1 {
			t.Errorf("expected 1 transaction, got %d", len(first.Transactions()))
		}

		second, err := manager.Session(ctx, userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if first != second {
			t.Error("expected the cached session to be reused")
		}
		if txnRepo.findCalls != 1 || recRepo.findCalls != 1 {
			t.Errorf("expected one load per repository, got %d and %d",
				txnRepo.findCalls, recRepo.findCalls)
		}
	})

	t.Run("caches nothing when the transaction fetch fails", func(t *testing.T) {
		txnRepo := &fakeTransactionRepo{failFind: errors.New("connection refused")}
		recRepo := &fakeRecurringRepo{}
		manager := NewManager(txnRepo, recRepo)

		_, err := manager.Session(ctx, userID)
		if err == nil {
			t.Fatal("expected an error")
		}
		var ledgerErr *domainerror.LedgerError
		if !errors.As(err, &ledgerErr) {
			t.Fatalf("expected a ledger error, got %v", err)
		}

		// The failure must not leave a half-loaded session behind.
		txnRepo.failFind = nil
		s, err := manager.Session(ctx, userID)
		if err != nil {
			t.Fatalf("expected the retry to succeed, got %v", err)
		}
		if s == nil {
			t.Fatal("expected a session on retry")
		}
		if txnRepo.findCalls != 2 {
			t.Errorf("expected the retry to hit the store again, got %d calls", txnRepo.findCalls)
		}
	})

	t.Run("caches nothing when the recurring fetch fails", func(t *testing.T) {
		txnRepo := &fakeTransactionRepo{}
		recRepo := &fakeRecurringRepo{failFind: errors.New("connection refused")}
		manager := NewManager(txnRepo, recRepo)

		if _, err := manager.Session(ctx, userID); err == nil {
			t.Fatal("expected an error")
		}

		recRepo.failFind = nil
		if _, err := manager.Session(ctx, userID); err != nil {
			t.Fatalf("expected the retry to succeed, got %v", err)
		}
	})

	t.Run("drop forces a reload", func(t *testing.T) {
		txnRepo := &fakeTransactionRepo{}
		recRepo := &fakeRecurringRepo{}
		manager := NewManager(txnRepo, recRepo)

		if _, err := manager.Session(ctx, userID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		manager.Drop(userID)
		if _, err := manager.Session(ctx, userID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if txnRepo.findCalls != 2 {
			t.Errorf("expected 2 loads after drop, got %d", txnRepo.findCalls)
		}
	})
}

func TestSessionWriteThrough(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	newSession := func(txnRepo *fakeTransactionRepo, recRepo *fakeRecurringRepo) *Session {
		manager := NewManager(txnRepo, recRepo)
		s, err := manager.Session(ctx, userID)
		if err != nil {
			t.Fatalf("session load failed: %v", err)
		}
		return s
	}

	t.Run("create prepends to the mirror on store success", func(t *testing.T) {
		s := newSession(&fakeTransactionRepo{}, &fakeRecurringRepo{})
		first := sampleTransaction(userID)
		second := sampleTransaction(userID)

		if err := s.CreateTransaction(ctx, first); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := s.CreateTransaction(ctx, second); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		txns := s.Transactions()
		if len(txns) != 2 {
			t.Fatalf("expected 2 transactions, got %d", len(txns))
		}
		if txns[0].ID != second.ID {
			t.Error("expected the newest transaction first")
		}
	})

	t.Run("create failure leaves the mirror untouched", func(t *testing.T) {
		s := newSession(&fakeTransactionRepo{failCreate: errors.New("store down")}, &fakeRecurringRepo{})

		err := s.CreateTransaction(ctx, sampleTransaction(userID))
		if err == nil {
			t.Fatal("expected an error")
		}
		if !errors.Is(err, domainerror.ErrMutationFailed) {
			t.Errorf("expected a mutation failure, got %v", err)
		}
		if len(s.Transactions()) != 0 {
			t.Errorf("expected an empty mirror, got %d entries", len(s.Transactions()))
		}
	})

	t.Run("update replaces the record on store success", func(t *testing.T) {
		existing := sampleTransaction(userID)
		s := newSession(&fakeTransactionRepo{transactions: []*entity.Transaction{existing}}, &fakeRecurringRepo{})

		updated := *existing
		updated.Description = "Espresso"
		if err := s.UpdateTransaction(ctx, &updated); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		got, ok := s.Transaction(existing.ID)
		if !ok {
			t.Fatal("expected the transaction to remain in the mirror")
		}
		if got.Description != "Espresso" {
			t.Errorf("expected the mirror to hold the update, got %s", got.Description)
		}
	})

	t.Run("update failure leaves the old record in place", func(t *testing.T) {
		existing := sampleTransaction(userID)
		s := newSession(&fakeTransactionRepo{
			transactions: []*entity.Transaction{existing},
			failUpdate:   errors.New("store down"),
		}, &fakeRecurringRepo{})

		updated := *existing
		updated.Description = "Espresso"
		if err := s.UpdateTransaction(ctx, &updated); err == nil {
			t.Fatal("expected an error")
		}

		got, _ := s.Transaction(existing.ID)
		if got.Description != "Coffee" {
			t.Errorf("expected the mirror to keep the old record, got %s", got.Description)
		}
	})

	t.Run("delete removes the record on store success", func(t *testing.T) {
		existing := sampleTransaction(userID)
		s := newSession(&fakeTransactionRepo{transactions: []*entity.Transaction{existing}}, &fakeRecurringRepo{})

		if err := s.DeleteTransaction(ctx, existing.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := s.Transaction(existing.ID); ok {
			t.Error("expected the transaction to be removed from the mirror")
		}
	})

	t.Run("delete failure keeps the record", func(t *testing.T) {
		existing := sampleTransaction(userID)
		s := newSession(&fakeTransactionRepo{
			transactions: []*entity.Transaction{existing},
			failDelete:   errors.New("store down"),
		}, &fakeRecurringRepo{})

		if err := s.DeleteTransaction(ctx, existing.ID); err == nil {
			t.Fatal("expected an error")
		}
		if _, ok := s.Transaction(existing.ID); !ok {
			t.Error("expected the transaction to remain in the mirror")
		}
	})

	t.Run("toggle replaces the template with the store version", func(t *testing.T) {
		rec := entity.NewRecurringTransaction(
			userID,
			"Rent",
			decimal.RequireFromString("1200"),
			entity.ParseCategory("Bills"),
			entity.TransactionTypeExpense,
			entity.FrequencyMonthly,
			entity.DateOnly(time.Now()),
			nil,
		)
		s := newSession(&fakeTransactionRepo{}, &fakeRecurringRepo{recurring: []*entity.RecurringTransaction{rec}})

		updated, err := s.ToggleRecurring(ctx, rec.ID, false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.IsActive {
			t.Error("expected the returned template to be inactive")
		}
		if s.Recurring()[0].IsActive {
			t.Error("expected the mirror to hold the toggled template")
		}
	})

	t.Run("snapshots are copies of the mirror slice", func(t *testing.T) {
		existing := sampleTransaction(userID)
		s := newSession(&fakeTransactionRepo{transactions: []*entity.Transaction{existing}}, &fakeRecurringRepo{})

		snapshot := s.Transactions()
		snapshot[0] = nil

		if got, ok := s.Transaction(existing.ID); !ok || got == nil {
			t.Error("expected mutating the snapshot to leave the mirror intact")
		}
	})
}
