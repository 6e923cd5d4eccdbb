package middleware

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"eventhub/internal/auth"
	"eventhub/internal/errors"
	"eventhub/internal/model"
	"eventhub/internal/service"
)

// ContextUserKey is the echo context key under which the resolved user is stored.
const ContextUserKey = "current_user"

func invalidToken() *echo.HTTPError {
	return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
		Error: "invalid token",
		Code:  "INVALID_TOKEN",
	})
}

// LoadUser resolves the claims validated by the echo-jwt middleware into a
// stored user and saves it on the request context. Requests whose token
// subject has no matching user are rejected with 401; storage failures
// surface as 500, not as an authentication error.
func LoadUser(users service.UserService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := c.Get("user").(*jwt.Token)
			if !ok {
				return invalidToken()
			}
			claims, ok := token.Claims.(*auth.Claims)
			if !ok {
				return invalidToken()
			}
			id, err := claims.UserID()
			if err != nil {
				return invalidToken()
			}

			user, err := users.GetUser(c.Request().Context(), id)
			if err != nil {
				httpErr := errors.MapErrorToHTTP(err)
				return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
			}

			c.Set(ContextUserKey, user)
			return next(c)
		}
	}
}

// CurrentUser returns the user placed on the context by LoadUser.
func CurrentUser(c echo.Context) (*model.User, bool) {
	user, ok := c.Get(ContextUserKey).(*model.User)
	return user, ok
}

// RequireActive rejects requests from deactivated accounts.
func RequireActive() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := CurrentUser(c)
			if !ok {
				return invalidToken()
			}
			if !user.IsActive {
				httpErr := errors.MapErrorToHTTP(errors.ErrInactiveUser)
				return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
			}
			return next(c)
		}
	}
}

// RequireAdmin rejects inactive or non-admin callers. It runs before the
// handler, so role failures take precedence over not-found results.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := CurrentUser(c)
			if !ok {
				return invalidToken()
			}
			if !user.IsActive {
				httpErr := errors.MapErrorToHTTP(errors.ErrInactiveUser)
				return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
			}
			if !user.IsAdmin() {
				httpErr := errors.MapErrorToHTTP(errors.ErrAdminRequired)
				return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
			}
			return next(c)
		}
	}
}
