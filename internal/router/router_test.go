package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"eventhub/internal/auth"
	"eventhub/internal/config"
	"eventhub/internal/handler"
	"eventhub/internal/model"
	"eventhub/internal/service"
)

type stubUserService struct {
	user *model.User
}

func (s *stubUserService) GetUser(ctx context.Context, id uint) (*model.User, error) {
	return s.user, nil
}

type stubAuthService struct{}

func (s *stubAuthService) Signup(ctx context.Context, email, name, password string, role model.UserRole) (*model.User, error) {
	return &model.User{}, nil
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	return "", &model.User{}, nil
}

type stubEventService struct{}

func (s *stubEventService) ListEvents(ctx context.Context, skip, limit int) ([]model.Event, error) {
	return []model.Event{}, nil
}

func (s *stubEventService) CreateEvent(ctx context.Context, in service.EventCreateInput, createdByID uint) (*model.Event, error) {
	return &model.Event{}, nil
}

func (s *stubEventService) UpdateEvent(ctx context.Context, id uint, in service.EventUpdateInput) (*model.Event, error) {
	return &model.Event{}, nil
}

func (s *stubEventService) DeleteEvent(ctx context.Context, id uint) error {
	return nil
}

func newTestRouter(algorithm string) (*echo.Echo, *auth.JWTService) {
	cfg := &config.Config{
		ProjectName:    "Event Management System",
		SecretKey:      "test-secret",
		JWTAlgorithm:   algorithm,
		AllowedOrigins: []string{"*"},
		AllowedHosts:   []string{"*"},
	}

	user := &model.User{ID: 7, Email: "a@b.com", Role: model.RoleNormal, IsActive: true}
	e := echo.New()
	Register(e, cfg, zerolog.Nop(), &stubUserService{user: user},
		handler.NewAuthHandler(&stubAuthService{}),
		handler.NewEventHandler(&stubEventService{}))

	return e, auth.NewJWTService(cfg.SecretKey, cfg.JWTAlgorithm, time.Hour)
}

// Tokens issued by the login path must be accepted on secured routes for
// every supported JWT_ALGORITHM value, not just the HS256 default.
func TestSecuredRoutes_AcceptConfiguredAlgorithm(t *testing.T) {
	for _, algorithm := range []string{"HS256", "HS384", "HS512"} {
		e, jwtService := newTestRouter(algorithm)

		token, err := jwtService.GenerateToken(7)
		assert.NoError(t, err, algorithm)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code, algorithm)
	}
}

func TestSecuredRoutes_RejectWrongSecret(t *testing.T) {
	e, _ := newTestRouter("HS512")

	forged := auth.NewJWTService("other-secret", "HS512", time.Hour)
	token, err := forged.GenerateToken(7)
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_TOKEN")
}

func TestSecuredRoutes_RejectMismatchedAlgorithm(t *testing.T) {
	e, _ := newTestRouter("HS512")

	issuer := auth.NewJWTService("test-secret", "HS256", time.Hour)
	token, err := issuer.GenerateToken(7)
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
