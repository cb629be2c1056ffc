package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"trackbudget/internal/errors"
	"trackbudget/internal/service"
)

// LedgerHandler serves the derived aggregate views.
type LedgerHandler struct {
	ledgerService service.LedgerService
}

// NewLedgerHandler creates a new ledger handler.
func NewLedgerHandler(ledgerService service.LedgerService) *LedgerHandler {
	return &LedgerHandler{ledgerService: ledgerService}
}

// Dashboard godoc
// @Summary Dashboard totals for income, expenses and assets
// @Tags aggregates
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.DashboardSummary
// @Failure 500 {object} errors.ErrorResponse
// @Router /dashboard [get]
func (h *LedgerHandler) Dashboard(c echo.Context) error {
	claims, err := CurrentUser(c)
	if err != nil {
		return err
	}

	summary, err := h.ledgerService.Dashboard(c.Request().Context(), claims.UserID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, summary)
}

// ExpenseBreakdown godoc
// @Summary Expenses grouped by want/need tag
// @Tags aggregates
// @Produce json
// @Security BearerAuth
// @Success 200 {array} service.CategoryTotal
// @Failure 500 {object} errors.ErrorResponse
// @Router /expenses/breakdown [get]
func (h *LedgerHandler) ExpenseBreakdown(c echo.Context) error {
	claims, err := CurrentUser(c)
	if err != nil {
		return err
	}

	breakdown, err := h.ledgerService.ExpenseBreakdown(c.Request().Context(), claims.UserID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, breakdown)
}

// History godoc
// @Summary Merged expense/income history, newest first, capped at 100 rows
// @Tags aggregates
// @Produce json
// @Security BearerAuth
// @Success 200 {array} service.HistoryEntry
// @Failure 500 {object} errors.ErrorResponse
// @Router /history [get]
func (h *LedgerHandler) History(c echo.Context) error {
	claims, err := CurrentUser(c)
	if err != nil {
		return err
	}

	history, err := h.ledgerService.History(c.Request().Context(), claims.UserID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, history)
}

// Notifications godoc
// @Summary Unpaid bills due within the next seven days
// @Tags aggregates
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Bill
// @Failure 500 {object} errors.ErrorResponse
// @Router /notifications [get]
func (h *LedgerHandler) Notifications(c echo.Context) error {
	claims, err := CurrentUser(c)
	if err != nil {
		return err
	}

	bills, err := h.ledgerService.UpcomingBills(c.Request().Context(), claims.UserID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, bills)
}
