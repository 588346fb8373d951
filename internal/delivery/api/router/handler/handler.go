// Package handler contains the HTTP handlers of the API.
package handler

import (
	"net/http"

	"bazaar/internal/delivery/api/middleware"
	"bazaar/internal/delivery/api/response"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/usecase"

	"github.com/labstack/echo/v4"
)

// HealthCheck reports liveness.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

// bindAndValidate binds the request and runs struct validation.
// Validation failures are rendered with field details by the error handler.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request")
	}

	return c.Validate(req)
}

// actorOf returns the authenticated actor or an unauthorized error.
func actorOf(c echo.Context) (usecase.Actor, error) {
	actor, ok := middleware.GetActor(c)
	if !ok || actor.Token == "" {
		return usecase.Actor{}, domainerrors.ErrUnauthorized
	}

	return actor, nil
}
