package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumen-academy/academy-api/internal/session"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func protectedRouter(t *testing.T, store session.Store) (*gin.Engine, *bool) {
	t.Helper()
	invoked := false
	r := gin.New()
	r.GET("/protected", RequireSession(store, "academy_session"), func(c *gin.Context) {
		invoked = true
		admin, _ := AdminFromContext(c)
		c.JSON(http.StatusOK, gin.H{"admin": admin})
	})
	return r, &invoked
}

func request(r *gin.Engine, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireSessionNoCookie(t *testing.T) {
	store := session.NewMemoryStore(time.Hour)
	t.Cleanup(store.Close)
	r, invoked := protectedRouter(t, store)

	w := request(r, nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Unauthorized. Please log in.")
	assert.False(t, *invoked)
}

func TestRequireSessionUnknownToken(t *testing.T) {
	store := session.NewMemoryStore(time.Hour)
	t.Cleanup(store.Close)
	r, invoked := protectedRouter(t, store)

	w := request(r, &http.Cookie{Name: "academy_session", Value: "not-a-session"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, *invoked)
}

func TestRequireSessionValidToken(t *testing.T) {
	store := session.NewMemoryStore(time.Hour)
	t.Cleanup(store.Close)
	r, invoked := protectedRouter(t, store)

	token, err := store.Create(context.Background(), "admin")
	require.NoError(t, err)

	w := request(r, &http.Cookie{Name: "academy_session", Value: token})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, *invoked)
	assert.Contains(t, w.Body.String(), `"admin":"admin"`)
}

func TestRequireSessionAfterDestroy(t *testing.T) {
	store := session.NewMemoryStore(time.Hour)
	t.Cleanup(store.Close)
	r, invoked := protectedRouter(t, store)

	token, err := store.Create(context.Background(), "admin")
	require.NoError(t, err)
	require.NoError(t, store.Destroy(context.Background(), token))

	w := request(r, &http.Cookie{Name: "academy_session", Value: token})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, *invoked)
}
