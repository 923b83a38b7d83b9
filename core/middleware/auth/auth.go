// Package auth validates bearer tokens on protected routes.
package auth

import (
	"strings"

	"id-reserve/core/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// Config holds the auth middleware settings.
type Config struct {
	// Secret is the HS256 signing key the tokens were issued with.
	Secret string
}

// UserID extracts the authenticated user ID stored by the middleware.
// It returns 0 when the request is unauthenticated.
func UserID(c *fiber.Ctx) int64 {
	if v := c.Locals("user_id"); v != nil {
		return utils.ToInt64(v)
	}
	return 0
}

// New returns a middleware validating an HS256 bearer token and injecting
// the token subject into locals as "user_id". Token issuance lives in the
// archive's account service; this service only validates.
func New(cfg Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if cfg.Secret == "" {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"error": "authentication is not configured",
			})
		}

		header := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(header, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "missing bearer token",
			})
		}
		raw := strings.TrimPrefix(header, "Bearer ")

		tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenSignatureInvalid
			}
			return []byte(cfg.Secret), nil
		})
		if err != nil || !tok.Valid {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid token",
			})
		}

		claims, ok := tok.Claims.(jwt.MapClaims)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid claims",
			})
		}

		userID := utils.ToInt64(claims["sub"])
		if userID == 0 {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "token has no subject",
			})
		}

		c.Locals("user_id", userID)
		return c.Next()
	}
}
