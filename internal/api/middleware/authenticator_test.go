package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/festiconf/billetterie-api/internal/pkg/jwthelper"
)

const testSigningKey = "test-signing-key"

func authTestRouter(a *Authenticator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	router.GET("/private", a.VerifyJWT(), func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"user_id": UserID(ctx), "role": UserRole(ctx)})
	})
	router.GET("/public", a.OptionalJWT(), func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"user_id": UserID(ctx)})
	})

	return router
}

func TestVerifyJWT_MissingToken(t *testing.T) {
	router := authTestRouter(NewAuthenticator(testSigningKey))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestVerifyJWT_CookieToken(t *testing.T) {
	router := authTestRouter(NewAuthenticator(testSigningKey))

	token, err := jwthelper.GenerateToken([]byte(testSigningKey), 7, "alice@example.com", "USER")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: token})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":7`)
	assert.Contains(t, w.Body.String(), `"role":"USER"`)
}

func TestVerifyJWT_BearerToken(t *testing.T) {
	router := authTestRouter(NewAuthenticator(testSigningKey))

	token, err := jwthelper.GenerateToken([]byte(testSigningKey), 7, "alice@example.com", "USER")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestVerifyJWT_WrongKey(t *testing.T) {
	router := authTestRouter(NewAuthenticator(testSigningKey))

	token, err := jwthelper.GenerateToken([]byte("another-key"), 7, "alice@example.com", "USER")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestOptionalJWT_AnonymousPassesThrough(t *testing.T) {
	router := authTestRouter(NewAuthenticator(testSigningKey))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/public", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":0`)
}
