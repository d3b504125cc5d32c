package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"reservas/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

// signToken mirrors the claim set produced at login.
func signToken(t *testing.T, correo, rango string, exp time.Duration) string {
	t.Helper()
	claims := jwt.MapClaims{
		"correo": correo,
		"rango":  rango,
		"exp":    time.Now().Add(exp).Unix(),
		"iat":    time.Now().Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return token
}

func buildProtected(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	chain := append([]gin.HandlerFunc{middleware.JWTAuth(testSecret)}, handlers...)
	chain = append(chain, func(c *gin.Context) {
		claims := middleware.GetClaims(c)
		c.JSON(http.StatusOK, gin.H{"correo": claims.Correo, "rango": claims.Rango})
	})
	r.GET("/protegido", chain...)
	return r
}

func get(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protegido", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJWTAuth_TokenValido(t *testing.T) {
	r := buildProtected()
	token := signToken(t, "ana@mail.com", "usuario", time.Hour)

	w := get(r, "Bearer "+token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ana@mail.com")
}

func TestJWTAuth_SinHeader(t *testing.T) {
	r := buildProtected()
	assert.Equal(t, http.StatusUnauthorized, get(r, "").Code)
	assert.Equal(t, http.StatusUnauthorized, get(r, "Basic abc").Code)
}

func TestJWTAuth_TokenExpirado(t *testing.T) {
	r := buildProtected()
	token := signToken(t, "ana@mail.com", "usuario", -time.Minute)
	assert.Equal(t, http.StatusUnauthorized, get(r, "Bearer "+token).Code)
}

func TestJWTAuth_FirmaInvalida(t *testing.T) {
	r := buildProtected()
	claims := jwt.MapClaims{"correo": "ana@mail.com", "exp": time.Now().Add(time.Hour).Unix()}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("otro-secreto"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, get(r, "Bearer "+token).Code)
}

func TestRequireRole(t *testing.T) {
	r := buildProtected(middleware.RequireRole("administrador"))

	usuario := signToken(t, "ana@mail.com", "usuario", time.Hour)
	assert.Equal(t, http.StatusForbidden, get(r, "Bearer "+usuario).Code)

	admin := signToken(t, "admin@mail.com", "administrador", time.Hour)
	assert.Equal(t, http.StatusOK, get(r, "Bearer "+admin).Code)
}
