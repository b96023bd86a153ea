// Package dashboard contains the aggregation engine and dashboard use cases.
package dashboard

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/moneyboard/backend/internal/application/ledger"
)

// GetAnalyticsInput represents the input for the analytics charts.
type GetAnalyticsInput struct {
	UserID uuid.UUID
	Window TimeWindow
}

// GetAnalyticsOutput holds the three chart series, all scoped to the
// selected window.
type GetAnalyticsOutput struct {
	Window       TimeWindow
	MonthlyTrend []MonthPoint
	Categories   []CategoryStat
	CashFlow     []CashFlowPoint
}

// GetAnalyticsUseCase computes the chart series from the ledger mirror.
type GetAnalyticsUseCase struct {
	sessions *ledger.Manager
	now      func() time.Time
}

// NewGetAnalyticsUseCase creates a new GetAnalyticsUseCase instance.
func NewGetAnalyticsUseCase(sessions *ledger.Manager) *GetAnalyticsUseCase {
	return &GetAnalyticsUseCase{
		sessions: sessions,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// WithClock overrides the reference clock. Used by tests.
func (uc *GetAnalyticsUseCase) WithClock(now func() time.Time) *GetAnalyticsUseCase {
	uc.now = now
	return uc
}

// Execute computes the chart series.
func (uc *GetAnalyticsUseCase) Execute(ctx context.Context, input GetAnalyticsInput) (*GetAnalyticsOutput, error) {
	session, err := uc.sessions.Session(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	windowed := FilterByWindow(session.Transactions(), uc.now(), input.Window.Days())

	return &GetAnalyticsOutput{
		Window:       input.Window,
		MonthlyTrend: MonthlySeries(windowed),
		Categories:   CategoryBreakdown(windowed),
		CashFlow:     CashFlowSeries(windowed),
	}, nil
}
