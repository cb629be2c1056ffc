package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"trackbudget/internal/errors"
	"trackbudget/internal/model"
	"trackbudget/internal/repository"
)

// SavingsHandler adds the add-funds increment on top of the standard
// CRUD quadruplet.
type SavingsHandler struct {
	*CrudHandler[model.SavingsBucket, *model.SavingsBucket]
	repo repository.SavingsRepository
}

// NewSavingsHandler creates a new savings handler.
func NewSavingsHandler(repo repository.SavingsRepository) *SavingsHandler {
	return &SavingsHandler{
		CrudHandler: NewCrudHandler[model.SavingsBucket, *model.SavingsBucket](repo),
		repo:        repo,
	}
}

// AddFundsRequest carries the delta applied to current_amount. Negative
// deltas are allowed (withdrawals).
type AddFundsRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// AddFunds godoc
// @Summary Apply an additive delta to a bucket's current amount
// @Tags savings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Bucket ID"
// @Param request body AddFundsRequest true "Delta"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Router /savings/{id}/add [put]
func (h *SavingsHandler) AddFunds(c echo.Context) error {
	claims, err := CurrentUser(c)
	if err != nil {
		return err
	}
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req AddFundsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}

	if err := h.repo.AddFunds(c.Request().Context(), claims.UserID, id, req.Amount); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "funds added"})
}
