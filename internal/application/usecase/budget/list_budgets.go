package budget

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/moneyboard/backend/internal/application/adapter"
	"github.com/moneyboard/backend/internal/application/ledger"
	"github.com/moneyboard/backend/internal/domain/entity"
)

// ListBudgetsInput represents the input for listing budgets.
type ListBudgetsInput struct {
	UserID uuid.UUID

	// Recipient fields feed the over-limit alert email. Empty recipient
	// disables alerting for this refresh.
	RecipientEmail string
	RecipientName  string
}

// BudgetWithSpending pairs a budget with its current-period consumption.
type BudgetWithSpending struct {
	Budget     *entity.Budget
	Spent      decimal.Decimal
	Percentage float64
	Status     Status
}

// BudgetSummary aggregates consumption across all of a user's budgets.
type BudgetSummary struct {
	TotalLimit decimal.Decimal
	TotalSpent decimal.Decimal
	Remaining  decimal.Decimal
}

// ListBudgetsOutput represents the output of listing budgets.
type ListBudgetsOutput struct {
	Budgets []BudgetWithSpending
	Summary BudgetSummary
}

// ListBudgetsUseCase computes per-budget consumption for the current period
// and dispatches over-limit alerts.
type ListBudgetsUseCase struct {
	registry   *Registry
	sessions   *ledger.Manager
	emailQueue adapter.EmailQueueRepository
	now        func() time.Time
}

// NewListBudgetsUseCase creates a new ListBudgetsUseCase instance.
func NewListBudgetsUseCase(registry *Registry, sessions *ledger.Manager, emailQueue adapter.EmailQueueRepository) *ListBudgetsUseCase {
	return &ListBudgetsUseCase{
		registry:   registry,
		sessions:   sessions,
		emailQueue: emailQueue,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// WithClock overrides the use case clock. Intended for tests.
func (uc *ListBudgetsUseCase) WithClock(now func() time.Time) *ListBudgetsUseCase {
	uc.now = now
	return uc
}

// Execute lists the user's budgets with current-period spending attached.
func (uc *ListBudgetsUseCase) Execute(ctx context.Context, input ListBudgetsInput) (*ListBudgetsOutput, error) {
	session, err := uc.sessions.Session(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	txns := session.Transactions()
	now := uc.now()

	budgets := uc.registry.List(input.UserID)
	out := &ListBudgetsOutput{
		Budgets: make([]BudgetWithSpending, 0, len(budgets)),
		Summary: BudgetSummary{
			TotalLimit: decimal.Zero,
			TotalSpent: decimal.Zero,
			Remaining:  decimal.Zero,
		},
	}

	for _, b := range budgets {
		spent := SpentInPeriod(txns, b, now)
		status := Classify(spent, b.Limit)

		out.Budgets = append(out.Budgets, BudgetWithSpending{
			Budget:     b,
			Spent:      spent,
			Percentage: Percentage(spent, b.Limit),
			Status:     status,
		})

		out.Summary.TotalLimit = out.Summary.TotalLimit.Add(b.Limit)
		out.Summary.TotalSpent = out.Summary.TotalSpent.Add(spent)

		uc.reconcileAlert(ctx, input, b, spent, status)
	}

	out.Summary.Remaining = out.Summary.TotalLimit.Sub(out.Summary.TotalSpent)

	return out, nil
}

// reconcileAlert enqueues a single alert email when a budget crosses its
// limit, and re-arms the alert once spending falls back under the limit.
func (uc *ListBudgetsUseCase) reconcileAlert(ctx context.Context, input ListBudgetsInput, b *entity.Budget, spent decimal.Decimal, status Status) {
	if status != StatusOverBudget {
		if b.Alerted {
			uc.registry.SetAlerted(input.UserID, b.ID, false)
		}
		return
	}

	if !b.AlertOnExceed || b.Alerted {
		return
	}
	if uc.emailQueue == nil || input.RecipientEmail == "" {
		return
	}

	job := entity.NewEmailJob(
		entity.TemplateBudgetAlert,
		input.RecipientEmail,
		input.RecipientName,
		fmt.Sprintf("Budget alert: %s is over its limit", b.Category.String()),
		map[string]interface{}{
			"category": b.Category.String(),
			"limit":    b.Limit.String(),
			"spent":    spent.String(),
			"period":   string(b.Period),
		},
	)

	if err := uc.emailQueue.Create(ctx, job); err != nil {
		// Alerting is best effort; the next refresh retries.
		slog.Error("failed to enqueue budget alert email",
			"error", err,
			"user_id", input.UserID,
			"budget_id", b.ID,
		)
		return
	}

	uc.registry.SetAlerted(input.UserID, b.ID, true)
}
