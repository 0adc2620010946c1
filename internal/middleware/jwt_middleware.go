package middleware

import (
	"log"
	"strings"

	"sapling/internal/models"
	"sapling/internal/services"

	"github.com/dgrijalva/jwt-go"
	"github.com/gofiber/fiber/v2"
)

// tokenFromRequest extracts the bearer token. The mobile client sends it in
// the x-auth-token header; "Authorization: Bearer <token>" is accepted too.
func tokenFromRequest(c *fiber.Ctx) string {
	if token := c.Get("x-auth-token"); token != "" {
		return token
	}
	parts := strings.SplitN(c.Get("Authorization"), " ", 2)
	if len(parts) == 2 && parts[0] == "Bearer" {
		return parts[1]
	}
	return ""
}

// AuthRequired is a Fiber middleware to check for a valid token. On success
// the account id, role and raw claims are stored in the request locals.
func AuthRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := tokenFromRequest(c)
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Authentication token is required",
			})
		}

		claims, err := authService.ValidateToken(tokenString)
		if err != nil {
			log.Printf("Token validation failed: %v", err)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid or expired token",
			})
		}

		// Store claims in Fiber context for subsequent handlers
		c.Locals("user_id", claims["user_id"])
		c.Locals("role", claims["role"])
		c.Locals("claims", claims)

		return c.Next()
	}
}

// AdminRequired enforces the admin role via the single authorization policy.
// It must run after AuthRequired.
func AdminRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := c.Locals("claims").(jwt.MapClaims)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Authentication token is required",
			})
		}

		if err := authService.Authorize(claims, models.RoleAdmin); err != nil {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": "Access denied. Admins only.",
			})
		}

		return c.Next()
	}
}
