package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"trackbudget/internal/errors"
	"trackbudget/internal/service"
)

// ProfileHandler handles profile, upgrade and account endpoints.
type ProfileHandler struct {
	profileService service.ProfileService
	accountService service.AccountService
}

// NewProfileHandler creates a new profile handler.
func NewProfileHandler(profileService service.ProfileService, accountService service.AccountService) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
		accountService: accountService,
	}
}

// SaveProfileRequest is a full-field overwrite of the profile fields.
type SaveProfileRequest struct {
	FullName       string `json:"full_name" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
	JobDescription string `json:"job_description"`
}

// ChangePasswordRequest replaces the stored credential.
type ChangePasswordRequest struct {
	NewPassword string `json:"new_password" validate:"required,min=6"`
}

// GetProfile godoc
// @Summary Get profile with freshly reconciled premium status
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.User
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /profile [get]
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	claims, err := CurrentUser(c)
	if err != nil {
		return err
	}

	user, err := h.profileService.GetProfile(c.Request().Context(), claims.UserID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, user)
}

// SaveProfile godoc
// @Summary Overwrite profile fields
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body SaveProfileRequest true "Profile fields"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Router /profile [post]
func (h *ProfileHandler) SaveProfile(c echo.Context) error {
	claims, err := CurrentUser(c)
	if err != nil {
		return err
	}

	var req SaveProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.profileService.SaveProfile(c.Request().Context(), claims.UserID, req.FullName, req.Email, req.JobDescription); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "saved"})
}

// ChangePassword godoc
// @Summary Replace the account password
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ChangePasswordRequest true "New password"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Router /profile/password [put]
func (h *ProfileHandler) ChangePassword(c echo.Context) error {
	claims, err := CurrentUser(c)
	if err != nil {
		return err
	}

	var req ChangePasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.profileService.ChangePassword(c.Request().Context(), claims.UserID, req.NewPassword); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "password updated"})
}

// Upgrade godoc
// @Summary Force-set premium immediately after checkout
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Failure 500 {object} errors.ErrorResponse
// @Router /profile/upgrade [put]
func (h *ProfileHandler) Upgrade(c echo.Context) error {
	claims, err := CurrentUser(c)
	if err != nil {
		return err
	}

	if err := h.profileService.Upgrade(c.Request().Context(), claims.UserID); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "upgraded to premium"})
}

// DeleteAccount godoc
// @Summary Delete the account and every owned row
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Failure 500 {object} errors.ErrorResponse
// @Router /account [delete]
func (h *ProfileHandler) DeleteAccount(c echo.Context) error {
	claims, err := CurrentUser(c)
	if err != nil {
		return err
	}

	if err := h.accountService.DeleteAccount(c.Request().Context(), claims.UserID); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "account deleted"})
}

// ListUsers godoc
// @Summary List all users (admin only)
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.User
// @Failure 403 {object} errors.ErrorResponse
// @Router /admin/users [get]
func (h *ProfileHandler) ListUsers(c echo.Context) error {
	claims, err := CurrentUser(c)
	if err != nil {
		return err
	}

	users, err := h.profileService.ListUsers(c.Request().Context(), claims.Email)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, users)
}
