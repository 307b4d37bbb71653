package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lumen-academy/academy-api/internal/dto"
	"github.com/lumen-academy/academy-api/internal/middleware"
	appErrors "github.com/lumen-academy/academy-api/pkg/errors"
	"github.com/lumen-academy/academy-api/pkg/response"
)

type authService interface {
	Signup(ctx context.Context, req dto.CredentialsRequest) error
	Login(ctx context.Context, req dto.CredentialsRequest) (string, error)
	Logout(ctx context.Context, token string) error
}

// CookieConfig describes the session cookie issued on login.
type CookieConfig struct {
	Name string
	TTL  time.Duration
	// Secure stays false for plain-HTTP deployments; flip it behind TLS.
	Secure bool
}

// AuthHandler wires the admin auth endpoints to the service.
type AuthHandler struct {
	service authService
	cookie  CookieConfig
}

// NewAuthHandler creates a new handler.
func NewAuthHandler(svc authService, cookie CookieConfig) *AuthHandler {
	if cookie.Name == "" {
		cookie.Name = "academy_session"
	}
	if cookie.TTL <= 0 {
		cookie.TTL = time.Hour
	}
	return &AuthHandler{service: svc, cookie: cookie}
}

// Signup handles POST /api/admin/signup. The new account is never logged in
// automatically.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "Username and password are required."))
		return
	}

	if err := h.service.Signup(c.Request.Context(), req); err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Admin account created successfully. Please login.")
}

// Login handles POST /api/admin/login and sets the session cookie.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "Username and password are required."))
		return
	}

	token, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.Name, token, int(h.cookie.TTL.Seconds()), "/", "", h.cookie.Secure, true)
	response.OK(c, "Login successful!")
}

// Logout handles POST /api/admin/logout (session protected). The session is
// destroyed unconditionally and the cookie cleared.
func (h *AuthHandler) Logout(c *gin.Context) {
	token, ok := middleware.TokenFromContext(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	if err := h.service.Logout(c.Request.Context(), token); err != nil {
		response.Error(c, err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.Name, "", -1, "/", "", h.cookie.Secure, true)
	response.OK(c, "Logged out successfully.")
}
