package handler

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumen-academy/academy-api/internal/dto"
	"github.com/lumen-academy/academy-api/internal/middleware"
	appErrors "github.com/lumen-academy/academy-api/pkg/errors"
)

type mockAuthService struct {
	signupErr   error
	signupReq   *dto.CredentialsRequest
	loginToken  string
	loginErr    error
	logoutErr   error
	logoutToken string
}

func (m *mockAuthService) Signup(ctx context.Context, req dto.CredentialsRequest) error {
	m.signupReq = &req
	return m.signupErr
}

func (m *mockAuthService) Login(ctx context.Context, req dto.CredentialsRequest) (string, error) {
	return m.loginToken, m.loginErr
}

func (m *mockAuthService) Logout(ctx context.Context, token string) error {
	m.logoutToken = token
	return m.logoutErr
}

func testCookie() CookieConfig {
	return CookieConfig{Name: "academy_session", TTL: time.Hour}
}

func sessionCookie(w http.Header, name string) *http.Cookie {
	res := http.Response{Header: w}
	for _, cookie := range res.Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}

func TestSignup(t *testing.T) {
	svc := &mockAuthService{}
	r := gin.New()
	r.POST("/api/admin/signup", NewAuthHandler(svc, testCookie()).Signup)

	w := performJSON(t, r, http.MethodPost, "/api/admin/signup",
		`{"username":"admin","password":"hunter2"}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Admin account created successfully. Please login.", body["message"])
	require.NotNil(t, svc.signupReq)
	assert.Equal(t, "admin", svc.signupReq.Username)
	assert.Nil(t, sessionCookie(w.Header(), "academy_session"), "signup must not log the account in")
}

func TestSignupDuplicate(t *testing.T) {
	svc := &mockAuthService{
		signupErr: appErrors.Clone(appErrors.ErrConflict, "Username already exists. Please login."),
	}
	r := gin.New()
	r.POST("/api/admin/signup", NewAuthHandler(svc, testCookie()).Signup)

	w := performJSON(t, r, http.MethodPost, "/api/admin/signup",
		`{"username":"admin","password":"hunter2"}`)

	assert.Equal(t, http.StatusConflict, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Username already exists. Please login.", body["message"])
}

func TestLoginSetsSessionCookie(t *testing.T) {
	svc := &mockAuthService{loginToken: "token-123"}
	r := gin.New()
	r.POST("/api/admin/login", NewAuthHandler(svc, testCookie()).Login)

	w := performJSON(t, r, http.MethodPost, "/api/admin/login",
		`{"username":"admin","password":"hunter2"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Login successful!", body["message"])

	cookie := sessionCookie(w.Header(), "academy_session")
	require.NotNil(t, cookie)
	assert.Equal(t, "token-123", cookie.Value)
	assert.Equal(t, 3600, cookie.MaxAge)
	assert.True(t, cookie.HttpOnly)
	assert.False(t, cookie.Secure)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
}

func TestLoginInvalidCredentials(t *testing.T) {
	svc := &mockAuthService{loginErr: appErrors.ErrInvalidCredentials}
	r := gin.New()
	r.POST("/api/admin/login", NewAuthHandler(svc, testCookie()).Login)

	w := performJSON(t, r, http.MethodPost, "/api/admin/login",
		`{"username":"admin","password":"wrong"}`)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Nil(t, sessionCookie(w.Header(), "academy_session"))
}

func TestLogoutClearsCookie(t *testing.T) {
	svc := &mockAuthService{}
	r := gin.New()
	r.POST("/api/admin/logout", func(c *gin.Context) {
		c.Set(middleware.ContextAdminKey, "admin")
		c.Set(middleware.ContextTokenKey, "token-123")
	}, NewAuthHandler(svc, testCookie()).Logout)

	w := performJSON(t, r, http.MethodPost, "/api/admin/logout", "")

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "Logged out successfully.", body["message"])
	assert.Equal(t, "token-123", svc.logoutToken)

	cookie := sessionCookie(w.Header(), "academy_session")
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Less(t, cookie.MaxAge, 0)
}

func TestLogoutWithoutSessionToken(t *testing.T) {
	svc := &mockAuthService{}
	r := gin.New()
	r.POST("/api/admin/logout", NewAuthHandler(svc, testCookie()).Logout)

	w := performJSON(t, r, http.MethodPost, "/api/admin/logout", "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, svc.logoutToken)
}
