package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/openretail/storeapi/internal/service"
	"github.com/openretail/storeapi/pkg/common"
	"go.uber.org/zap"
)

// Status-code contract: 200 with body for reads, 201 with body and Location
// for creates, 204 empty for update/delete, 404 empty for missing ids, 400
// with a structured body for validation failures and a plain message for
// invalid references.

func ok(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, data)
}

func created(c echo.Context, location string, data interface{}) error {
	c.Response().Header().Set(echo.HeaderLocation, location)
	return c.JSON(http.StatusCreated, data)
}

func noContent(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

func notFound(c echo.Context) error {
	return c.NoContent(http.StatusNotFound)
}

func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, map[string]string{"message": message})
}

// serverError logs the cause and answers a generic 500.
func serverError(c echo.Context, err error) error {
	zap.L().Error("request failed",
		zap.String("path", c.Request().URL.Path),
		zap.Error(err))
	return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Internal server error"})
}

// handleServiceError maps a validation failure to the structured 400 shape
// and anything else to a 500.
func handleServiceError(c echo.Context, err error) error {
	var verr *service.ValidationError
	if errors.As(err, &verr) {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"message": "Validation failed",
			"errors":  verr.Fields,
		})
	}
	return serverError(c, err)
}

// uuidParam extracts a UUID path parameter. A malformed id behaves like a
// missing resource.
func uuidParam(c echo.Context, name string) (string, bool) {
	id := c.Param(name)
	if !common.IsUUID(id) {
		return "", false
	}
	return id, true
}
