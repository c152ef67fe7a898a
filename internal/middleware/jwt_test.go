package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abh2004/Variphi-assignment/internal/models"
	"github.com/Abh2004/Variphi-assignment/internal/service"
)

func jwtTestSetup(t *testing.T) (*gin.Engine, *service.AuthService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	authService := service.NewAuthService(nil, nil, nil, service.AuthConfig{
		Secret:     "secret",
		Expiration: time.Hour,
	})

	router := gin.New()
	router.GET("/protected", JWT(authService), func(c *gin.Context) {
		claims := c.MustGet(ContextUserKey).(*models.JWTClaims)
		c.JSON(http.StatusOK, gin.H{"user_id": claims.UserID})
	})
	return router, authService
}

func issueToken(t *testing.T, svc *service.AuthService) string {
	t.Helper()
	token, err := svc.GenerateAccessToken(&models.User{ID: 7, Email: "user@example.com", Role: models.RoleStudent})
	require.NoError(t, err)
	return token
}

func TestJWTMissingToken(t *testing.T) {
	router, _ := jwtTestSetup(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
	assert.JSONEq(t, `{"detail":"Not authenticated"}`, w.Body.String())
}

func TestJWTBearerHeader(t *testing.T) {
	router, svc := jwtTestSetup(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, svc))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user_id":7}`, w.Body.String())
}

func TestJWTCookie(t *testing.T) {
	router, svc := jwtTestSetup(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: issueToken(t, svc)})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestJWTMalformedHeader(t *testing.T) {
	router, svc := jwtTestSetup(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Token "+issueToken(t, svc))
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTInvalidToken(t *testing.T) {
	router, _ := jwtTestSetup(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"detail":"Could not validate credentials"}`, w.Body.String())
}

func TestJWTHeaderTakesPrecedenceOverCookie(t *testing.T) {
	router, svc := jwtTestSetup(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	req.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: issueToken(t, svc)})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
