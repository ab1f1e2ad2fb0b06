package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Adarshjain3011/LearnSphere/middleware"
	"github.com/Adarshjain3011/LearnSphere/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
)

const testSecret = "test-jwt-secret"

func makeToken(t *testing.T, userID, accountType, secret string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":          userID,
		"account_type": accountType,
		"exp":          time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	assert.NoError(t, err)
	return signed
}

func newAuthRouter(role string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers := []gin.HandlerFunc{middleware.AuthMiddleware(testSecret)}
	if role != "" {
		handlers = append(handlers, middleware.RequireRole(role))
	}
	handlers = append(handlers, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": middleware.GetUserID(c)})
	})
	r.GET("/protected", handlers...)
	return r
}

func get(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	r := newAuthRouter("")
	token := makeToken(t, "U1", models.AccountTypeStudent, testSecret)

	w := get(r, token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "U1")
}

func TestAuthMiddleware_MissingToken(t *testing.T) {
	r := newAuthRouter("")
	w := get(r, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_WrongSecret(t *testing.T) {
	r := newAuthRouter("")
	token := makeToken(t, "U1", models.AccountTypeStudent, "other-secret")

	w := get(r, token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRole_Mismatch(t *testing.T) {
	r := newAuthRouter(models.AccountTypeStudent)
	token := makeToken(t, "U1", models.AccountTypeInstructor, testSecret)

	w := get(r, token)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireRole_Match(t *testing.T) {
	r := newAuthRouter(models.AccountTypeStudent)
	token := makeToken(t, "U1", models.AccountTypeStudent, testSecret)

	w := get(r, token)
	assert.Equal(t, http.StatusOK, w.Code)
}
