// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/moneyboard/backend/internal/application/usecase/recurring"
	"github.com/moneyboard/backend/internal/domain/entity"
	domainerror "github.com/moneyboard/backend/internal/domain/error"
	"github.com/moneyboard/backend/internal/integration/entrypoint/dto"
	"github.com/moneyboard/backend/internal/integration/entrypoint/middleware"
)

// RecurringController handles recurring-transaction endpoints.
type RecurringController struct {
	listUseCase   *recurring.ListRecurringUseCase
	createUseCase *recurring.CreateRecurringUseCase
	toggleUseCase *recurring.ToggleRecurringUseCase
}

// NewRecurringController creates a new recurring-transaction controller instance.
func NewRecurringController(
	listUseCase *recurring.ListRecurringUseCase,
	createUseCase *recurring.CreateRecurringUseCase,
	toggleUseCase *recurring.ToggleRecurringUseCase,
) *RecurringController {
	return &RecurringController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		toggleUseCase: toggleUseCase,
	}
}

// List handles GET /recurring-transactions requests.
func (c *RecurringController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), recurring.ListRecurringInput{
		UserID: userID,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRecurringListResponse(output.Recurring))
}

// Create handles POST /recurring-transactions requests.
func (c *RecurringController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	var req dto.CreateRecurringRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid start date format. Use YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidTransactionDate),
		})
		return
	}

	var endDate *time.Time
	if req.EndDate != nil && *req.EndDate != "" {
		parsed, err := time.Parse("2006-01-02", *req.EndDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid end date format. Use YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeInvalidTransactionDate),
			})
			return
		}
		endDate = &parsed
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid amount format",
			Code:  string(domainerror.ErrCodeInvalidTransactionAmount),
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), recurring.CreateRecurringInput{
		UserID:      userID,
		Description: req.Description,
		Amount:      amount,
		Category:    req.Category,
		Type:        entity.TransactionType(req.Type),
		Frequency:   entity.Frequency(req.Frequency),
		StartDate:   startDate,
		EndDate:     endDate,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToRecurringResponse(output.Recurring))
}

// Toggle handles PATCH /recurring-transactions/:id requests.
func (c *RecurringController) Toggle(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		respondUnauthenticated(ctx)
		return
	}

	recurringID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid recurring transaction ID format",
		})
		return
	}

	var req dto.ToggleRecurringRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	output, err := c.toggleUseCase.Execute(ctx.Request.Context(), recurring.ToggleRecurringInput{
		UserID:      userID,
		RecurringID: recurringID,
		Active:      req.IsActive,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRecurringResponse(output.Recurring))
}
