package budget

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/moneyboard/backend/internal/application/ledger"
	"github.com/moneyboard/backend/internal/domain/entity"
)

// stubTransactionRepo serves a fixed transaction list.
type stubTransactionRepo struct {
	transactions []*entity.Transaction
}

func (s *stubTransactionRepo) FindByUser(_ context.Context, _ uuid.UUID) ([]*entity.Transaction, error) {
	return s.transactions, nil
}

func (s *stubTransactionRepo) Create(_ context.Context, _ *entity.Transaction) error { return nil }
func (s *stubTransactionRepo) Update(_ context.Context, _ *entity.Transaction) error { return nil }
func (s *stubTransactionRepo) Delete(_ context.Context, _, _ uuid.UUID) error        { return nil }

// stubRecurringRepo serves an empty template list.
type stubRecurringRepo struct{}

func (s *stubRecurringRepo) FindByUser(_ context.Context, _ uuid.UUID) ([]*entity.RecurringTransaction, error) {
	return nil, nil
}

func (s *stubRecurringRepo) Create(_ context.Context, _ *entity.RecurringTransaction) error {
	return nil
}

func (s *stubRecurringRepo) SetActive(_ context.Context, _, _ uuid.UUID, _ bool) (*entity.RecurringTransaction, error) {
	return nil, nil
}

// recordingEmailQueue records created jobs and can be forced to fail.
type recordingEmailQueue struct {
	jobs       []*entity.EmailJob
	failCreate error
}

func (q *recordingEmailQueue) Create(_ context.Context, job *entity.EmailJob) error {
	if q.failCreate != nil {
		return q.failCreate
	}
	q.jobs = append(q.jobs, job)
	return nil
}

func (q *recordingEmailQueue) GetPendingJobs(_ context.Context, _ int) ([]*entity.EmailJob, error) {
	return nil, nil
}

func (q *recordingEmailQueue) Update(_ context.Context, _ *entity.EmailJob) error { return nil }

func (q *recordingEmailQueue) GetByID(_ context.Context, _ uuid.UUID) (*entity.EmailJob, error) {
	return nil, nil
}

func (q *recordingEmailQueue) GetByRecipient(_ context.Context, _ string) ([]*entity.EmailJob, error) {
	return nil, nil
}

func TestListBudgetsUseCase(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	marchExpense := func(category, amount string) *entity.Transaction {
		return consumptionTxn(entity.TransactionTypeExpense, category, amount,
			time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC))
	}

	setup := func(txns []*entity.Transaction) (*Registry, *ledger.Manager, *recordingEmailQueue) {
		registry := NewRegistry()
		manager := ledger.NewManager(&stubTransactionRepo{transactions: txns}, &stubRecurringRepo{})
		queue := &recordingEmailQueue{}
		return registry, manager, queue
	}

	addBudget := func(t *testing.T, registry *Registry, userID uuid.UUID, category, limit string, alert bool) *entity.Budget {
		t.Helper()
		b := &entity.Budget{
			UserID:        userID,
			Category:      entity.ParseCategory(category),
			Limit:         decimal.RequireFromString(limit),
			Period:        entity.BudgetPeriodMonthly,
			AlertOnExceed: alert,
		}
		if err := registry.Add(b); err != nil {
			t.Fatalf("failed to add budget: %v", err)
		}
		return b
	}

	t.Run("attaches spending percentage and status to each budget", func(t *testing.T) {
		userID := uuid.New()
		registry, manager, queue := setup([]*entity.Transaction{
			marchExpense("Food", "150"),
			marchExpense("Travel", "600"),
		})
		addBudget(t, registry, userID, "Food", "500", false)
		addBudget(t, registry, userID, "Travel", "400", false)

		uc := NewListBudgetsUseCase(registry, manager, queue).WithClock(clock)
		out, err := uc.Execute(ctx, ListBudgetsInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(out.Budgets) != 2 {
			t.Fatalf("expected 2 budgets, got %d", len(out.Budgets))
		}
		food := out.Budgets[0]
		if !food.Spent.Equal(decimal.RequireFromString("150")) {
			t.Errorf("expected Food spent 150, got %s", food.Spent)
		}
		if food.Percentage != 30 {
			t.Errorf("expected Food percentage 30, got %v", food.Percentage)
		}
		if food.Status != StatusOnTrack {
			t.Errorf("expected Food on track, got %s", food.Status)
		}
		travel := out.Budgets[1]
		if travel.Status != StatusOverBudget {
			t.Errorf("expected Travel over budget, got %s", travel.Status)
		}
		if travel.Percentage != 100 {
			t.Errorf("expected Travel percentage clamped to 100, got %v", travel.Percentage)
		}
	})

	t.Run("summary totals span all budgets", func(t *testing.T) {
		userID := uuid.New()
		registry, manager, queue := setup([]*entity.Transaction{
			marchExpense("Food", "100"),
			marchExpense("Travel", "50"),
		})
		addBudget(t, registry, userID, "Food", "500", false)
		addBudget(t, registry, userID, "Travel", "300", false)

		uc := NewListBudgetsUseCase(registry, manager, queue).WithClock(clock)
		out, err := uc.Execute(ctx, ListBudgetsInput{UserID: userID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !out.Summary.TotalLimit.Equal(decimal.RequireFromString("800")) {
			t.Errorf("expected total limit 800, got %s", out.Summary.TotalLimit)
		}
		if !out.Summary.TotalSpent.Equal(decimal.RequireFromString("150")) {
			t.Errorf("expected total spent 150, got %s", out.Summary.TotalSpent)
		}
		if !out.Summary.Remaining.Equal(decimal.RequireFromString("650")) {
			t.Errorf("expected remaining 650, got %s", out.Summary.Remaining)
		}
	})

	t.Run("enqueues one alert per overrun", func(t *testing.T) {
		userID := uuid.New()
		registry, manager, queue := setup([]*entity.Transaction{
			marchExpense("Food", "600"),
		})
		addBudget(t, registry, userID, "Food", "500", true)

		uc := NewListBudgetsUseCase(registry, manager, queue).WithClock(clock)
		input := ListBudgetsInput{UserID: userID, RecipientEmail: "user@example.com", RecipientName: "User"}

		if _, err := uc.Execute(ctx, input); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// A second refresh while still over limit must not enqueue again.
		if _, err := uc.Execute(ctx, input); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(queue.jobs) != 1 {
			t.Fatalf("expected exactly 1 alert job, got %d", len(queue.jobs))
		}
		job := queue.jobs[0]
		if job.TemplateType != entity.TemplateBudgetAlert {
			t.Errorf("expected budget alert template, got %s", job.TemplateType)
		}
		if job.RecipientEmail != "user@example.com" {
			t.Errorf("expected recipient user@example.com, got %s", job.RecipientEmail)
		}
		if job.TemplateData["category"] != "Food" {
			t.Errorf("expected category Food, got %v", job.TemplateData["category"])
		}
	})

	t.Run("no alert without opt-in", func(t *testing.T) {
		userID := uuid.New()
		registry, manager, queue := setup([]*entity.Transaction{
			marchExpense("Food", "600"),
		})
		addBudget(t, registry, userID, "Food", "500", false)

		uc := NewListBudgetsUseCase(registry, manager, queue).WithClock(clock)
		input := ListBudgetsInput{UserID: userID, RecipientEmail: "user@example.com"}

		if _, err := uc.Execute(ctx, input); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(queue.jobs) != 0 {
			t.Errorf("expected no alert jobs, got %d", len(queue.jobs))
		}
	})

	t.Run("no alert without a recipient", func(t *testing.T) {
		userID := uuid.New()
		registry, manager, queue := setup([]*entity.Transaction{
			marchExpense("Food", "600"),
		})
		addBudget(t, registry, userID, "Food", "500", true)

		uc := NewListBudgetsUseCase(registry, manager, queue).WithClock(clock)

		if _, err := uc.Execute(ctx, ListBudgetsInput{UserID: userID}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(queue.jobs) != 0 {
			t.Errorf("expected no alert jobs, got %d", len(queue.jobs))
		}
	})

	t.Run("enqueue failure is retried on the next refresh", func(t *testing.T) {
		userID := uuid.New()
		registry, manager, queue := setup([]*entity.Transaction{
			marchExpense("Food", "600"),
		})
		addBudget(t, registry, userID, "Food", "500", true)
		queue.failCreate = errors.New("queue down")

		uc := NewListBudgetsUseCase(registry, manager, queue).WithClock(clock)
		input := ListBudgetsInput{UserID: userID, RecipientEmail: "user@example.com"}

		if _, err := uc.Execute(ctx, input); err != nil {
			t.Fatalf("expected best-effort alerting, got %v", err)
		}
		if len(queue.jobs) != 0 {
			t.Fatalf("expected no jobs after the failed enqueue, got %d", len(queue.jobs))
		}

		queue.failCreate = nil
		if _, err := uc.Execute(ctx, input); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(queue.jobs) != 1 {
			t.Errorf("expected the retry to enqueue 1 job, got %d", len(queue.jobs))
		}
	})

	t.Run("falling back under the limit re-arms the alert", func(t *testing.T) {
		userID := uuid.New()
		txnRepo := &stubTransactionRepo{transactions: []*entity.Transaction{
			marchExpense("Food", "600"),
		}}
		registry := NewRegistry()
		manager := ledger.NewManager(txnRepo, &stubRecurringRepo{})
		queue := &recordingEmailQueue{}
		b := addBudget(t, registry, userID, "Food", "500", true)

		uc := NewListBudgetsUseCase(registry, manager, queue).WithClock(clock)
		input := ListBudgetsInput{UserID: userID, RecipientEmail: "user@example.com"}

		if _, err := uc.Execute(ctx, input); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(queue.jobs) != 1 {
			t.Fatalf("expected 1 job after the first overrun, got %d", len(queue.jobs))
		}

		// Simulate spending dropping under the limit, then overrunning again.
		txnRepo.transactions = []*entity.Transaction{marchExpense("Food", "100")}
		manager.Drop(userID)
		if _, err := uc.Execute(ctx, input); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got, _ := registry.Get(userID, b.ID)
		if got.Alerted {
			t.Fatal("expected the alert marker to be re-armed")
		}

		txnRepo.transactions = []*entity.Transaction{marchExpense("Food", "700")}
		manager.Drop(userID)
		if _, err := uc.Execute(ctx, input); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(queue.jobs) != 2 {
			t.Errorf("expected a second alert after the new overrun, got %d", len(queue.jobs))
		}
	})
}
