package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"trackbudget/internal/billing"
	"trackbudget/internal/errors"
)

// BillingHandler creates Stripe checkout and customer-portal sessions.
// The checkout flow itself is hosted by Stripe; premium unlock happens
// via PUT /profile/upgrade and the profile-read reconciler.
type BillingHandler struct {
	sessions billing.SessionService
}

// NewBillingHandler creates a new billing handler.
func NewBillingHandler(sessions billing.SessionService) *BillingHandler {
	return &BillingHandler{sessions: sessions}
}

// SessionResponse carries a hosted session URL.
type SessionResponse struct {
	URL string `json:"url"`
}

// CreateCheckoutSession godoc
// @Summary Start a monthly premium subscription checkout
// @Tags billing
// @Produce json
// @Security BearerAuth
// @Success 200 {object} SessionResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /billing/checkout-session [post]
func (h *BillingHandler) CreateCheckoutSession(c echo.Context) error {
	claims, err := CurrentUser(c)
	if err != nil {
		return err
	}

	url, err := h.sessions.CreateCheckoutSession(c.Request().Context(), claims.Email)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, SessionResponse{URL: url})
}

// CreatePortalSession godoc
// @Summary Open the billing portal for subscription management
// @Tags billing
// @Produce json
// @Security BearerAuth
// @Success 200 {object} SessionResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /billing/portal-session [post]
func (h *BillingHandler) CreatePortalSession(c echo.Context) error {
	claims, err := CurrentUser(c)
	if err != nil {
		return err
	}

	url, err := h.sessions.CreatePortalSession(c.Request().Context(), claims.Email)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, SessionResponse{URL: url})
}
