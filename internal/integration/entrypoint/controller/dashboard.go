// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/moneyboard/backend/internal/application/usecase/dashboard"
	"github.com/moneyboard/backend/internal/integration/entrypoint/dto"
	"github.com/moneyboard/backend/internal/integration/entrypoint/middleware"
)

// DashboardController handles dashboard aggregation endpoints.
type DashboardController struct {
	overviewUseCase  *dashboard.GetOverviewUseCase
	analyticsUseCase *dashboard.GetAnalyticsUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(
	overviewUseCase *dashboard.GetOverviewUseCase,
	analyticsUseCase *dashboard.GetAnalyticsUseCase,
) *DashboardController {
	return &DashboardController{
		overviewUseCase:  overviewUseCase,
		analyticsUseCase: analyticsUseCase,
	}
}

// Overview handles GET /dashboard/overview requests.
func (c *DashboardController) Overview(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	window, err := dashboard.ParseTimeWindow(ctx.Query("window"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	output, err := c.overviewUseCase.Execute(ctx.Request.Context(), dashboard.GetOverviewInput{
		UserID: userID,
		Window: window,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToOverviewResponse(output))
}

// Analytics handles GET /dashboard/analytics requests.
func (c *DashboardController) Analytics(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	window, err := dashboard.ParseTimeWindow(ctx.Query("window"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	output, err := c.analyticsUseCase.Execute(ctx.Request.Context(), dashboard.GetAnalyticsInput{
		UserID: userID,
		Window: window,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAnalyticsResponse(output))
}
