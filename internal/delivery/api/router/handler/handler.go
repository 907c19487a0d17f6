// Package handler contains the HTTP handlers of the shop API.
package handler

import (
	"net/http"

	"shop/internal/delivery/api/response"
	"shop/internal/delivery/api/validator"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

// bindAndValidate binds the request body into req and runs its validate tags.
// On failure the error response has already been written and ok is false.
func bindAndValidate(c echo.Context, req any) (ok bool, err error) {
	if err := c.Bind(req); err != nil {
		return false, response.BindingError(c, "INVALID_INPUT", "Invalid request body")
	}

	if err := c.Validate(req); err != nil {
		if fields := validator.FieldErrors(err); fields != nil {
			return false, response.BadRequestWithDetails(c, "VALIDATION_FAILED", "Request validation failed", fields)
		}

		return false, response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	return true, nil
}

// pathID parses the :id path parameter.
func pathID(c echo.Context, resource string) (uuid.UUID, bool, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, false, response.BadRequest(c, "INVALID_ID", "Invalid "+resource+" ID")
	}

	return id, true, nil
}
