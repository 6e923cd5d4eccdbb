package router

import (
	"net"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"eventhub/internal/auth"
	"eventhub/internal/config"
	apperrors "eventhub/internal/errors"
	"eventhub/internal/handler"
	appmw "eventhub/internal/middleware"
	"eventhub/internal/service"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	log zerolog.Logger,
	userService service.UserService,
	authHandler *handler.AuthHandler,
	eventHandler *handler.EventHandler,
) {
	e.Use(middleware.RequestID())
	e.Use(middleware.Recover())
	e.Use(requestLogger(log))
	e.Use(allowedHosts(cfg.AllowedHosts))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowCredentials: true,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization},
	}))

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"message": "Welcome to " + cfg.ProjectName + " API"})
	})
	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api/v1")

	// Public routes
	api.POST("/auth/signup", authHandler.Signup)
	api.POST("/auth/login", authHandler.Login)

	// Secured routes: echo-jwt validates the bearer token, LoadUser resolves
	// the subject into a stored user. The signing method must match what the
	// token issuer resolved JWT_ALGORITHM to, or every login token gets 401.
	secured := api.Group("", echojwt.WithConfig(echojwt.Config{
		SigningKey:    []byte(cfg.SecretKey),
		SigningMethod: auth.SigningMethod(cfg.JWTAlgorithm).Alg(),
		TokenLookup:   "header:" + echo.HeaderAuthorization,
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return &auth.Claims{}
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
				Error: "invalid or expired token",
				Code:  "INVALID_TOKEN",
			})
		},
	}), appmw.LoadUser(userService))

	secured.GET("/auth/me", authHandler.Me)

	events := secured.Group("/events", appmw.RequireActive())
	events.GET("/", eventHandler.ListEvents)
	events.POST("/", eventHandler.CreateEvent, appmw.RequireAdmin())
	events.PUT("/:id", eventHandler.UpdateEvent, appmw.RequireAdmin())
	events.DELETE("/:id", eventHandler.DeleteEvent, appmw.RequireAdmin())
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// requestLogger emits one structured log line per request.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Info().
				Str("request_id", v.RequestID).
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Msg("request")
			return nil
		},
	})
}

// allowedHosts rejects requests whose Host header is not in the allow-list.
// A "*" entry disables the check.
func allowedHosts(hosts []string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(hosts))
	for _, h := range hosts {
		allowed[h] = struct{}{}
	}
	_, wildcard := allowed["*"]

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if wildcard {
				return next(c)
			}
			host := c.Request().Host
			if h, _, err := net.SplitHostPort(host); err == nil {
				host = h
			}
			if _, ok := allowed[host]; !ok {
				return echo.NewHTTPError(http.StatusBadRequest, "invalid host header")
			}
			return next(c)
		}
	}
}
