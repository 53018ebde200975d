package auth

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"github.com/Jalann18/kcm-corredora/internals/configs"
)

// AuthMiddleware protege las rutas del back-office. Espera un bearer
// token firmado con JWT_SECRET y deja el email del admin en Locals.
func AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"status":  "error",
				"message": err.Error(),
			})
		}

		secretKey := configs.JWTSecret
		if secretKey == "" {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"status":  "error",
				"message": "Configuración de autenticación incompleta",
			})
		}

		claims := jwt.MapClaims{}
		if _, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secretKey), nil
		}); err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"status":  "error",
				"message": "Token inválido o expirado",
			})
		}

		if err := validateTokenExpiry(claims); err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"status":  "error",
				"message": "Sesión expirada. Vuelve a iniciar sesión.",
			})
		}

		if email, ok := claims["email"].(string); ok {
			c.Locals("admin_email", email)
		}
		return c.Next()
	}
}

func extractBearerToken(c *fiber.Ctx) (string, error) {
	header := c.Get("Authorization")
	if header == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Falta el token de autorización")
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "Formato de autorización inválido")
	}
	return strings.TrimSpace(parts[1]), nil
}

func validateTokenExpiry(claims jwt.MapClaims) error {
	exp, ok := claims["exp"].(float64)
	if !ok {
		return jwt.ErrTokenInvalidClaims
	}
	if time.Now().After(time.Unix(int64(exp), 0)) {
		return jwt.ErrTokenExpired
	}
	return nil
}
