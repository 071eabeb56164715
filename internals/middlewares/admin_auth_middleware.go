// file: internals/middlewares/admin_auth_middleware.go
package middlewares

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	helper "bhanjyang_backend/internals/helpers"
)

type AdminJWTOpts struct {
	Secret              string
	AllowCookieFallback bool // use the access_token cookie when there is no Bearer header
}

// AdminJWT guards the admin route group. The identity model itself lives
// outside this service; the token only has to be valid HMAC with role=admin.
func AdminJWT(o AdminJWTOpts) fiber.Handler {
	secret := strings.TrimSpace(o.Secret)

	return func(c *fiber.Ctx) error {
		if secret == "" {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Admin access is not configured")
		}

		raw := ""
		if authz := strings.TrimSpace(c.Get(fiber.HeaderAuthorization)); strings.HasPrefix(strings.ToLower(authz), "bearer ") {
			raw = strings.TrimSpace(authz[7:])
		} else if o.AllowCookieFallback {
			raw = strings.TrimSpace(c.Cookies("access_token"))
		}
		if raw == "" {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
		}

		tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
			}
			return []byte(secret), nil
		})
		if err != nil || !tok.Valid {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid token")
		}

		claims, ok := tok.Claims.(jwt.MapClaims)
		if !ok {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid token claims")
		}
		if role, _ := claims["role"].(string); !strings.EqualFold(role, "admin") {
			return helper.JsonError(c, fiber.StatusForbidden, "Admin role required")
		}

		c.Locals("jwt_claims", claims)
		if sub, _ := claims["sub"].(string); sub != "" {
			c.Locals("admin_user", sub)
		}
		return c.Next()
	}
}
