package handler

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"trackbudget/internal/auth"
)

// CurrentUser extracts the authenticated identity attached by the JWT
// middleware. Handlers must use this and never a client-supplied id.
func CurrentUser(c echo.Context) (*auth.Claims, error) {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusForbidden, "invalid token")
	}
	claims, ok := token.Claims.(*auth.Claims)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusForbidden, "invalid token claims")
	}
	return claims, nil
}
