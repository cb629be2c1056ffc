package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"trackbudget/internal/errors"
	"trackbudget/internal/model"
	"trackbudget/internal/repository"
)

// CrudHandler serves the standard list/create/update/delete quadruplet
// for one owned entity. Binding goes straight into the model; the
// caller's identity is stamped over whatever ids the client sent, and
// update/delete against rows the caller does not own silently affect
// zero rows.
type CrudHandler[T any, PT interface {
	*T
	model.OwnedRecord
}] struct {
	repo repository.OwnedRepository[T]
}

// NewCrudHandler creates a CRUD handler over an owned repository.
func NewCrudHandler[T any, PT interface {
	*T
	model.OwnedRecord
}](repo repository.OwnedRepository[T]) *CrudHandler[T, PT] {
	return &CrudHandler[T, PT]{repo: repo}
}

func (h *CrudHandler[T, PT]) List(c echo.Context) error {
	claims, err := CurrentUser(c)
	if err != nil {
		return err
	}

	rows, err := h.repo.ListByUser(c.Request().Context(), claims.UserID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, rows)
}

func (h *CrudHandler[T, PT]) Create(c echo.Context) error {
	claims, err := CurrentUser(c)
	if err != nil {
		return err
	}

	rec := PT(new(T))
	if err := c.Bind(rec); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}
	rec.SetID(0)
	rec.SetOwner(claims.UserID)
	if err := rec.Validate(); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	if err := h.repo.Create(c.Request().Context(), (*T)(rec)); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusCreated, rec)
}

func (h *CrudHandler[T, PT]) Update(c echo.Context) error {
	claims, err := CurrentUser(c)
	if err != nil {
		return err
	}
	id, err := parseID(c)
	if err != nil {
		return err
	}

	rec := PT(new(T))
	if err := c.Bind(rec); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}
	rec.SetID(id)
	rec.SetOwner(claims.UserID)
	if err := rec.Validate(); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	if err := h.repo.Update(c.Request().Context(), claims.UserID, id, (*T)(rec)); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "updated"})
}

func (h *CrudHandler[T, PT]) Delete(c echo.Context) error {
	claims, err := CurrentUser(c)
	if err != nil {
		return err
	}
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.repo.Delete(c.Request().Context(), claims.UserID, id); err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "deleted"})
}

func parseID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid id",
			Code:  "INVALID_ID",
		})
	}
	return uint(id), nil
}
