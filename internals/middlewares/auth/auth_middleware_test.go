package auth_test

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jalann18/kcm-corredora/internals/configs"
	"github.com/Jalann18/kcm-corredora/internals/middlewares/auth"
)

func buildApp() *fiber.App {
	configs.JWTSecret = "secreto-de-prueba"
	app := fiber.New()
	app.Get("/api/a/ping", auth.AuthMiddleware(), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"email": c.Locals("admin_email")})
	})
	return app
}

func firmarToken(t *testing.T, secret string, exp time.Time) string {
	claims := jwt.MapClaims{
		"sub":   "admin",
		"email": "admin@ejemplo.cl",
		"exp":   exp.Unix(),
		"iat":   time.Now().Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestAuthMiddlewareSinToken(t *testing.T) {
	app := buildApp()
	resp, err := app.Test(httptest.NewRequest("GET", "/api/a/ping", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddlewareTokenValido(t *testing.T) {
	app := buildApp()
	token := firmarToken(t, "secreto-de-prueba", time.Now().Add(time.Hour))

	req := httptest.NewRequest("GET", "/api/a/ping", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestAuthMiddlewareTokenExpirado(t *testing.T) {
	app := buildApp()
	token := firmarToken(t, "secreto-de-prueba", time.Now().Add(-time.Hour))

	req := httptest.NewRequest("GET", "/api/a/ping", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddlewareFirmaAjena(t *testing.T) {
	app := buildApp()
	token := firmarToken(t, "otro-secreto", time.Now().Add(time.Hour))

	req := httptest.NewRequest("GET", "/api/a/ping", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddlewareFormatoInvalido(t *testing.T) {
	app := buildApp()
	req := httptest.NewRequest("GET", "/api/a/ping", nil)
	req.Header.Set("Authorization", "Token abc")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
