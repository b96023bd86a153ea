// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerror "github.com/moneyboard/backend/internal/domain/error"
	"github.com/moneyboard/backend/internal/integration/entrypoint/dto"
)

// respondError maps domain errors onto HTTP responses. Validation failures
// return 400, missing records 404, store failures 500; anything
// unrecognized falls back to a generic 500.
func respondError(ctx *gin.Context, err error) {
	var txnErr *domainerror.TransactionError
	if errors.As(err, &txnErr) {
		status := http.StatusBadRequest
		if txnErr.Code == domainerror.ErrCodeTransactionNotFound {
			status = http.StatusNotFound
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: txnErr.Message,
			Code:  string(txnErr.Code),
		})
		return
	}

	var recErr *domainerror.RecurringError
	if errors.As(err, &recErr) {
		status := http.StatusBadRequest
		if recErr.Code == domainerror.ErrCodeRecurringNotFound {
			status = http.StatusNotFound
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: recErr.Message,
			Code:  string(recErr.Code),
		})
		return
	}

	var budgetErr *domainerror.BudgetError
	if errors.As(err, &budgetErr) {
		status := http.StatusBadRequest
		if budgetErr.Code == domainerror.ErrCodeBudgetNotFound {
			status = http.StatusNotFound
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: budgetErr.Message,
			Code:  string(budgetErr.Code),
		})
		return
	}

	var settingsErr *domainerror.SettingsError
	if errors.As(err, &settingsErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: settingsErr.Message,
			Code:  string(settingsErr.Code),
		})
		return
	}

	var dashErr *domainerror.DashboardError
	if errors.As(err, &dashErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: dashErr.Message,
			Code:  string(dashErr.Code),
		})
		return
	}

	var ledgerErr *domainerror.LedgerError
	if errors.As(err, &ledgerErr) {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: ledgerErr.Message,
			Code:  string(ledgerErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// respondUnauthenticated writes the shared missing-identity response.
func respondUnauthenticated(ctx *gin.Context) {
	ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
		Error: "User not authenticated",
		Code:  string(domainerror.ErrCodeMissingToken),
	})
}
