package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"storefront-app/config"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthTestApp() *fiber.App {
	app := fiber.New()
	app.Get("/protected", AuthMiddleware, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id": c.Locals("userID"),
			"tenant":  c.Locals("tenant"),
		})
	})
	return app
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func validClaims() jwt.MapClaims {
	return jwt.MapClaims{
		"user_id":    float64(42),
		"tenant":     "storefront_demo",
		"session_id": "session-abc",
		"exp":        time.Now().Add(time.Hour).Unix(),
	}
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	app := newAuthTestApp()

	req := httptest.NewRequest("GET", "/protected", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	app := newAuthTestApp()

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Token abc.def.ghi")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_WrongSecret(t *testing.T) {
	config.JWTSecret = "the-right-secret"
	app := newAuthTestApp()

	signed := signToken(t, "some-other-secret", validClaims())

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	config.JWTSecret = "test-secret"
	app := newAuthTestApp()

	claims := validClaims()
	claims["exp"] = time.Now().Add(-time.Hour).Unix()
	signed := signToken(t, config.JWTSecret, claims)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_MissingTenantClaim(t *testing.T) {
	config.JWTSecret = "test-secret"
	app := newAuthTestApp()

	claims := validClaims()
	delete(claims, "tenant")
	signed := signToken(t, config.JWTSecret, claims)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	config.JWTSecret = "test-secret"
	app := newAuthTestApp()

	signed := signToken(t, config.JWTSecret, validClaims())

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestGuestTenantMiddleware(t *testing.T) {
	config.DBTenant = "storefront_demo"

	app := fiber.New()
	app.Get("/shop", GuestTenantMiddleware, func(c *fiber.Ctx) error {
		return c.SendString(c.Locals("tenant").(string))
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/shop", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/shop?tenant=other_shop", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/shop?tenant=bad-name", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
