package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"trackbudget/internal/errors"
	"trackbudget/internal/model"
	"trackbudget/internal/service"
)

// RetirementHandler serves the per-user plan and its derived progress.
type RetirementHandler struct {
	retirementService service.RetirementService
}

// NewRetirementHandler creates a new retirement handler.
func NewRetirementHandler(retirementService service.RetirementService) *RetirementHandler {
	return &RetirementHandler{retirementService: retirementService}
}

// Outlook godoc
// @Summary Retirement plan with progress math
// @Tags retirement
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.RetirementOutlook
// @Failure 500 {object} errors.ErrorResponse
// @Router /retirement [get]
func (h *RetirementHandler) Outlook(c echo.Context) error {
	claims, err := CurrentUser(c)
	if err != nil {
		return err
	}

	outlook, err := h.retirementService.Outlook(c.Request().Context(), claims.UserID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, outlook)
}

// SavePlan godoc
// @Summary Create or overwrite the single retirement plan
// @Tags retirement
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.RetirementPlan true "Plan fields"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Router /retirement [post]
func (h *RetirementHandler) SavePlan(c echo.Context) error {
	claims, err := CurrentUser(c)
	if err != nil {
		return err
	}

	var plan model.RetirementPlan
	if err := c.Bind(&plan); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}

	if err := h.retirementService.SavePlan(c.Request().Context(), claims.UserID, &plan); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "saved"})
}

// ContributionSummary godoc
// @Summary Contribution totals grouped by type
// @Tags retirement
// @Produce json
// @Security BearerAuth
// @Success 200 {array} repository.ContributionTypeTotal
// @Failure 500 {object} errors.ErrorResponse
// @Router /retirement/summary [get]
func (h *RetirementHandler) ContributionSummary(c echo.Context) error {
	claims, err := CurrentUser(c)
	if err != nil {
		return err
	}

	summary, err := h.retirementService.ContributionSummary(c.Request().Context(), claims.UserID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, summary)
}
