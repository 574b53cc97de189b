package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/nazmulhossain17/niyenin-api/internal/config"
	"github.com/nazmulhossain17/niyenin-api/internal/middleware"
	"github.com/nazmulhossain17/niyenin-api/internal/usecase/authz"
)

const testSecret = "test-secret"

func testConfig() config.Config {
	return config.Config{
		JWTSecret:       testSecret,
		CookieTokenName: "niyenin_token",
	}
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString([]byte(secret))
	assert.NoError(t, err)
	return signed
}

func validClaims() jwt.MapClaims {
	now := time.Now()
	return jwt.MapClaims{
		"sub":  "550e8400-e29b-41d4-a716-446655440000",
		"role": "vendor",
		"iat":  now.Unix(),
		"exp":  now.Add(time.Hour).Unix(),
	}
}

// principalを返すだけのハンドラで挙動を見る
func runAuth(t *testing.T, req *http.Request) (*httptest.ResponseRecorder, authz.Principal, bool) {
	t.Helper()
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var got authz.Principal
	var ok bool
	h := middleware.AuthJWT(testConfig())(func(c echo.Context) error {
		got, ok = middleware.PrincipalFrom(c)
		return c.NoContent(http.StatusOK)
	})
	assert.NoError(t, h(c))
	return rec, got, ok
}

func TestAuthJWT_BearerToken(t *testing.T) {
	token := signToken(t, testSecret, validClaims())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	rec, p, ok := runAuth(t, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, ok)
	assert.Equal(t, "550e8400-e29b-41d4-a716-446655440000", p.UserID)
	assert.Equal(t, authz.RoleVendor, p.Role)
}

// Authorizationヘッダが無ければcookieにフォールバックする。
func TestAuthJWT_CookieFallback(t *testing.T) {
	token := signToken(t, testSecret, validClaims())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "niyenin_token", Value: token})

	rec, _, ok := runAuth(t, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, ok)
}

func TestAuthJWT_MissingToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	rec, _, _ := runAuth(t, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthJWT_WrongSecret(t *testing.T) {
	token := signToken(t, "other-secret", validClaims())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	rec, _, _ := runAuth(t, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthJWT_ExpiredToken(t *testing.T) {
	claims := validClaims()
	claims["exp"] = time.Now().Add(-time.Hour).Unix()
	token := signToken(t, testSecret, claims)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	rec, _, _ := runAuth(t, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthJWT_MissingSub(t *testing.T) {
	claims := validClaims()
	delete(claims, "sub")
	token := signToken(t, testSecret, claims)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	rec, _, _ := runAuth(t, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// =====================
// RequireRole
// =====================

func runGuard(t *testing.T, min authz.Role, role string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// AuthJWT通過後の状態を作る
	c.Set("user_id", "550e8400-e29b-41d4-a716-446655440000")
	c.Set("user_role", role)

	h := middleware.RequireRole(min)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	assert.NoError(t, h(c))
	return rec
}

func TestRequireRole_AdminPassesVendorGate(t *testing.T) {
	rec := runGuard(t, authz.RoleVendor, "admin")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireRole_CustomerBlockedFromVendorGate(t *testing.T) {
	rec := runGuard(t, authz.RoleVendor, "customer")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireRole_UnknownRoleBlocked(t *testing.T) {
	rec := runGuard(t, authz.RoleCustomer, "superuser")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminOnly(t *testing.T) {
	assert.Equal(t, http.StatusOK, runGuard(t, authz.RoleAdmin, "admin").Code)
	assert.Equal(t, http.StatusForbidden, runGuard(t, authz.RoleAdmin, "vendor").Code)
}
