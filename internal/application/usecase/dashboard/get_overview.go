// Package dashboard contains the aggregation engine and dashboard use cases.
package dashboard

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/moneyboard/backend/internal/application/ledger"
)

// GetOverviewInput represents the input for the dashboard overview.
type GetOverviewInput struct {
	UserID uuid.UUID
	Window TimeWindow
}

// GetOverviewOutput holds the headline stat-card figures. Totals respect
// the selected window; the monthly/weekly/daily figures use their own fixed
// periods regardless of it.
type GetOverviewOutput struct {
	Window          TimeWindow
	Totals          Totals
	MonthlyExpenses decimal.Decimal
	MonthlyTrend    *Trend
	WeeklyExpenses  decimal.Decimal
	WeeklyTrend     *Trend
	DailyAverage    decimal.Decimal
}

// GetOverviewUseCase computes the dashboard stat cards from the ledger mirror.
type GetOverviewUseCase struct {
	sessions *ledger.Manager
	now      func() time.Time
}

// NewGetOverviewUseCase creates a new GetOverviewUseCase instance.
func NewGetOverviewUseCase(sessions *ledger.Manager) *GetOverviewUseCase {
	return &GetOverviewUseCase{
		sessions: sessions,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// WithClock overrides the reference clock. Used by tests.
func (uc *GetOverviewUseCase) WithClock(now func() time.Time) *GetOverviewUseCase {
	uc.now = now
	return uc
}

// Execute computes the overview figures.
func (uc *GetOverviewUseCase) Execute(ctx context.Context, input GetOverviewInput) (*GetOverviewOutput, error) {
	session, err := uc.sessions.Session(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	txns := session.Transactions()
	now := uc.now()

	windowed := FilterByWindow(txns, now, input.Window.Days())

	monthly := MonthExpenses(txns, now)
	weekly := WeekExpenses(txns, now)

	return &GetOverviewOutput{
		Window:          input.Window,
		Totals:          ComputeTotals(windowed),
		MonthlyExpenses: monthly,
		MonthlyTrend:    CalculateTrend(monthly, PreviousMonthExpenseAmounts(txns, now), len(txns)),
		WeeklyExpenses:  weekly,
		WeeklyTrend:     CalculateTrend(weekly, PreviousWeekExpenseAmounts(txns, now), len(txns)),
		DailyAverage:    DailyAverage(txns, now),
	}, nil
}
