package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Harshhjs/farmconnect/internal/utils"
)

const testSecret = "test-secret"

func runWith(t *testing.T, mw echo.MiddlewareFunc, token string) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/stats", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	reached := false
	handler := mw(func(c echo.Context) error {
		reached = true
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))
	return rec, reached
}

func TestJWTAuthMissingToken(t *testing.T) {
	rec, reached := runWith(t, JWTAuth(testSecret), "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Authentication required")
	assert.False(t, reached)
}

func TestJWTAuthInvalidToken(t *testing.T) {
	rec, reached := runWith(t, JWTAuth(testSecret), "not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid or expired token")
	assert.False(t, reached)
}

func TestJWTAuthWrongSecret(t *testing.T) {
	token, err := utils.NewToken("other-secret", utils.Identity{ID: 1, Role: "buyer"}, 7)
	require.NoError(t, err)
	rec, reached := runWith(t, JWTAuth(testSecret), token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, reached)
}

func TestJWTAuthExpiredToken(t *testing.T) {
	claims := jwt.MapClaims{
		"id":   1,
		"role": "buyer",
		"exp":  time.Now().UTC().Add(-time.Hour).Unix(),
		"iat":  time.Now().UTC().Add(-2 * time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	rec, reached := runWith(t, JWTAuth(testSecret), token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid or expired token")
	assert.False(t, reached)
}

func TestJWTAuthInjectsClaims(t *testing.T) {
	token, err := utils.NewToken(testSecret, utils.Identity{
		ID: 7, Email: "asha@example.com", Role: "farmer", Name: "Asha",
	}, 7)
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := JWTAuth(testSecret)(func(c echo.Context) error {
		assert.Equal(t, 7, UserID(c))
		assert.Equal(t, "farmer", Role(c))
		assert.Equal(t, "asha@example.com", c.Get(CtxEmail))
		assert.Equal(t, "Asha", c.Get(CtxName))
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireRoleForbidsOutsideSet(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(CtxRole, "buyer")

	reached := false
	handler := RequireRole("admin")(func(c echo.Context) error {
		reached = true
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "Admin access required")
	assert.False(t, reached)
}

func TestRequireRoleAllowsMembers(t *testing.T) {
	for _, role := range []string{"farmer", "admin"} {
		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/api/products", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.Set(CtxRole, role)

		handler := RequireRole("farmer", "admin")(func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		})
		require.NoError(t, handler(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestRequireRoleWithoutIdentity(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := RequireRole("admin")(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
