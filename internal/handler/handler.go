package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"eventhub/internal/errors"
)

// toHTTPError converts a domain error into an echo HTTP error with the
// standard {error, code} body.
func toHTTPError(err error) *echo.HTTPError {
	httpErr := errors.MapErrorToHTTP(err)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}

// invalidRequest reports an unparseable body or path parameter with the
// standard {error, code} body.
func invalidRequest(message string) *echo.HTTPError {
	return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
		Error: message,
		Code:  "INVALID_REQUEST",
	})
}

// validationFailed reports struct-tag validation failures with the standard
// {error, code} body.
func validationFailed(err error) *echo.HTTPError {
	return echo.NewHTTPError(http.StatusUnprocessableEntity, errors.ErrorResponse{
		Error: err.Error(),
		Code:  "VALIDATION_ERROR",
	})
}

// invalidToken reports a request whose caller could not be resolved.
func invalidToken() *echo.HTTPError {
	return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
		Error: "invalid token",
		Code:  "INVALID_TOKEN",
	})
}
