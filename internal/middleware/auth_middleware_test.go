package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/ndthang/quizhub/config"
	"github.com/ndthang/quizhub/internal/auth"
	"github.com/ndthang/quizhub/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRouter(tokens *auth.TokenService, adminOnly bool) (*gin.Engine, *Principal) {
	gin.SetMode(gin.TestMode)
	mw := NewAuthMiddleware(tokens)

	var seen Principal
	r := gin.New()
	handlers := []gin.HandlerFunc{mw.RequireAuth()}
	if adminOnly {
		handlers = append(handlers, mw.AdminOnly())
	}
	handlers = append(handlers, func(ctx *gin.Context) {
		principal, _ := GetPrincipal(ctx)
		seen = principal
		ctx.Status(http.StatusOK)
	})
	r.GET("/protected", handlers...)
	return r, &seen
}

func sessionCookie(t *testing.T, tokens *auth.TokenService, user *model.User) *http.Cookie {
	t.Helper()
	token, err := tokens.Issue(user)
	require.NoError(t, err)
	return &http.Cookie{Name: auth.SessionCookieName, Value: token}
}

func newTokenService() *auth.TokenService {
	return auth.NewTokenService(&config.Config{
		JWT: config.JWT{Secret: "test-secret", TTLMinutes: 60},
	})
}

func TestRequireAuthNoCookie(t *testing.T) {
	r, _ := testRouter(newTokenService(), false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthBadToken(t *testing.T) {
	r, _ := testRouter(newTokenService(), false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: auth.SessionCookieName, Value: "not-a-jwt"})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthSetsPrincipal(t *testing.T) {
	tokens := newTokenService()
	r, seen := testRouter(tokens, false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(sessionCookie(t, tokens, &model.User{ID: 7, Name: "Ann", Role: model.RoleUser}))
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(7), seen.ID)
	assert.Equal(t, "Ann", seen.Name)
	assert.Equal(t, model.RoleUser, seen.Role)
}

func TestAdminOnlyForbidsUsers(t *testing.T) {
	tokens := newTokenService()
	r, _ := testRouter(tokens, true)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(sessionCookie(t, tokens, &model.User{ID: 7, Role: model.RoleUser}))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdminOnlyAllowsAdmins(t *testing.T) {
	tokens := newTokenService()
	r, seen := testRouter(tokens, true)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(sessionCookie(t, tokens, &model.User{ID: 1, Name: "Root", Role: model.RoleAdmin}))
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, model.RoleAdmin, seen.Role)
}
