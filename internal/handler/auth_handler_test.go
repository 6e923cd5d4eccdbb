package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"eventhub/internal/errors"
	"eventhub/internal/middleware"
	"eventhub/internal/model"
)

// MockAuthService is a mock implementation of AuthService.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Signup(ctx context.Context, email, name, password string, role model.UserRole) (*model.User, error) {
	args := m.Called(ctx, email, name, password, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(1) == nil {
		return args.String(0), nil, args.Error(2)
	}
	return args.String(0), args.Get(1).(*model.User), args.Error(2)
}

func TestSignup_Created(t *testing.T) {
	svc := new(MockAuthService)
	h := NewAuthHandler(svc)
	e := newTestEcho()

	created := &model.User{ID: 1, Email: "a@b.com", Name: "Ann", Role: model.RoleNormal, IsActive: true, HashedPassword: "$2a$10$digest"}
	svc.On("Signup", mock.Anything, "a@b.com", "Ann", "secret1", model.RoleNormal).Return(created, nil)

	body := `{"email":"a@b.com","name":"Ann","password":"secret1"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/signup", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	assert.NoError(t, h.Signup(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	// The password digest must never appear in the response.
	assert.NotContains(t, rec.Body.String(), "digest")
	assert.NotContains(t, rec.Body.String(), "password")

	var user model.User
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
	assert.Equal(t, model.RoleNormal, user.Role)

	svc.AssertExpectations(t)
}

func TestSignup_DuplicateEmail(t *testing.T) {
	svc := new(MockAuthService)
	h := NewAuthHandler(svc)
	e := newTestEcho()

	svc.On("Signup", mock.Anything, "a@b.com", "Ann", "secret1", model.RoleNormal).Return(nil, errors.ErrEmailTaken)

	body := `{"email":"a@b.com","name":"Ann","password":"secret1"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/signup", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Signup(c)
	httpErr, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestSignup_ShortPassword(t *testing.T) {
	svc := new(MockAuthService)
	h := NewAuthHandler(svc)
	e := newTestEcho()

	body := `{"email":"a@b.com","name":"Ann","password":"short"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/signup", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Signup(c)
	httpErr, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusUnprocessableEntity, httpErr.Code)

	// Validation failures carry the same {error, code} body as domain errors.
	resp, ok := httpErr.Message.(errors.ErrorResponse)
	assert.True(t, ok)
	assert.Equal(t, "VALIDATION_ERROR", resp.Code)

	svc.AssertNotCalled(t, "Signup", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestLogin_OK(t *testing.T) {
	svc := new(MockAuthService)
	h := NewAuthHandler(svc)
	e := newTestEcho()

	user := &model.User{ID: 7, Email: "a@b.com", IsActive: true}
	svc.On("Login", mock.Anything, "a@b.com", "secret1").Return("signed-token", user, nil)

	form := url.Values{}
	form.Set("username", "a@b.com")
	form.Set("password", "secret1")
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	assert.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp TokenResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "signed-token", resp.AccessToken)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.NotNil(t, resp.User)
	assert.Equal(t, uint(7), resp.User.ID)
}

func TestLogin_BadCredentials(t *testing.T) {
	svc := new(MockAuthService)
	h := NewAuthHandler(svc)
	e := newTestEcho()

	svc.On("Login", mock.Anything, "a@b.com", "wrong").Return("", nil, errors.ErrInvalidCredentials)

	form := url.Values{}
	form.Set("username", "a@b.com")
	form.Set("password", "wrong")
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Login(c)
	httpErr, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}

func TestLogin_InactiveUser(t *testing.T) {
	svc := new(MockAuthService)
	h := NewAuthHandler(svc)
	e := newTestEcho()

	svc.On("Login", mock.Anything, "a@b.com", "secret1").Return("", nil, errors.ErrInactiveUser)

	form := url.Values{}
	form.Set("username", "a@b.com")
	form.Set("password", "secret1")
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Login(c)
	httpErr, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestMe_ReturnsCurrentUser(t *testing.T) {
	svc := new(MockAuthService)
	h := NewAuthHandler(svc)
	e := newTestEcho()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.ContextUserKey, &model.User{ID: 7, Email: "a@b.com"})

	assert.NoError(t, h.Me(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var user model.User
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
	assert.Equal(t, uint(7), user.ID)
}

func TestMe_MissingUser(t *testing.T) {
	svc := new(MockAuthService)
	h := NewAuthHandler(svc)
	e := newTestEcho()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Me(c)
	httpErr, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
}
