// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/moneyboard/backend/internal/application/usecase/dashboard"
)

// TrendResponse represents a month-over-month or week-over-week change.
// Null in the JSON when there is not enough history to compare.
type TrendResponse struct {
	Percent    float64 `json:"percent"`
	IsPositive bool    `json:"is_positive"`
}

// OverviewResponse represents the response for the dashboard overview.
type OverviewResponse struct {
	Window          string         `json:"window"`
	Income          string         `json:"income"`
	Expenses        string         `json:"expenses"`
	Balance         string         `json:"balance"`
	MonthlyExpenses string         `json:"monthly_expenses"`
	MonthlyTrend    *TrendResponse `json:"monthly_trend"`
	WeeklyExpenses  string         `json:"weekly_expenses"`
	WeeklyTrend     *TrendResponse `json:"weekly_trend"`
	DailyAverage    string         `json:"daily_average"`
}

// MonthPointResponse represents one month in the expense trend series.
type MonthPointResponse struct {
	Month  string `json:"month"`
	Amount string `json:"amount"`
}

// CategoryStatResponse represents one category in the spending breakdown.
type CategoryStatResponse struct {
	Category       string `json:"category"`
	Amount         string `json:"amount"`
	Transactions   int    `json:"transactions"`
	AvgTransaction string `json:"avg_transaction"`
}

// CashFlowPointResponse represents one day group in the cash-flow series.
type CashFlowPointResponse struct {
	Date     string `json:"date"`
	Income   string `json:"income"`
	Expenses string `json:"expenses"`
}

// AnalyticsResponse represents the response for the dashboard analytics.
type AnalyticsResponse struct {
	Window       string                  `json:"window"`
	MonthlyTrend []MonthPointResponse    `json:"monthly_trend"`
	Categories   []CategoryStatResponse  `json:"categories"`
	CashFlow     []CashFlowPointResponse `json:"cash_flow"`
}

// ToOverviewResponse converts a GetOverviewOutput to an OverviewResponse DTO.
func ToOverviewResponse(output *dashboard.GetOverviewOutput) OverviewResponse {
	return OverviewResponse{
		Window:          string(output.Window),
		Income:          output.Totals.Income.String(),
		Expenses:        output.Totals.Expenses.String(),
		Balance:         output.Totals.Balance.String(),
		MonthlyExpenses: output.MonthlyExpenses.String(),
		MonthlyTrend:    toTrendResponse(output.MonthlyTrend),
		WeeklyExpenses:  output.WeeklyExpenses.String(),
		WeeklyTrend:     toTrendResponse(output.WeeklyTrend),
		DailyAverage:    output.DailyAverage.String(),
	}
}

func toTrendResponse(trend *dashboard.Trend) *TrendResponse {
	if trend == nil {
		return nil
	}
	return &TrendResponse{
		Percent:    trend.Percent,
		IsPositive: trend.IsPositive,
	}
}

// ToAnalyticsResponse converts a GetAnalyticsOutput to an AnalyticsResponse DTO.
func ToAnalyticsResponse(output *dashboard.GetAnalyticsOutput) AnalyticsResponse {
	monthly := make([]MonthPointResponse, len(output.MonthlyTrend))
	for i, p := range output.MonthlyTrend {
		monthly[i] = MonthPointResponse{
			Month:  p.Month,
			Amount: p.Amount.String(),
		}
	}

	categories := make([]CategoryStatResponse, len(output.Categories))
	for i, c := range output.Categories {
		categories[i] = CategoryStatResponse{
			Category:       c.Category,
			Amount:         c.Amount.String(),
			Transactions:   c.Transactions,
			AvgTransaction: c.AvgTransaction.String(),
		}
	}

	cashFlow := make([]CashFlowPointResponse, len(output.CashFlow))
	for i, p := range output.CashFlow {
		cashFlow[i] = CashFlowPointResponse{
			Date:     p.Date,
			Income:   p.Income.String(),
			Expenses: p.Expenses.String(),
		}
	}

	return AnalyticsResponse{
		Window:       string(output.Window),
		MonthlyTrend: monthly,
		Categories:   categories,
		CashFlow:     cashFlow,
	}
}
