package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"trackbudget/internal/errors"
	"trackbudget/internal/model"
	"trackbudget/internal/repository"
)

// BillHandler adds the paid toggle on top of the standard CRUD
// quadruplet.
type BillHandler struct {
	*CrudHandler[model.Bill, *model.Bill]
	repo repository.BillRepository
}

// NewBillHandler creates a new bill handler.
func NewBillHandler(repo repository.BillRepository) *BillHandler {
	return &BillHandler{
		CrudHandler: NewCrudHandler[model.Bill, *model.Bill](repo),
		repo:        repo,
	}
}

// PayRequest sets the paid flag without touching other fields.
type PayRequest struct {
	IsPaid bool `json:"is_paid"`
}

// Pay godoc
// @Summary Toggle a bill's paid flag
// @Tags bills
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Bill ID"
// @Param request body PayRequest true "Paid flag"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Router /bills/{id}/pay [put]
func (h *BillHandler) Pay(c echo.Context) error {
	claims, err := CurrentUser(c)
	if err != nil {
		return err
	}
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req PayRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}

	if err := h.repo.SetPaid(c.Request().Context(), claims.UserID, id, req.IsPaid); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "updated"})
}
