package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/Rizkaicaaa/pengelolaan-aset-api/app/model"
	"github.com/Rizkaicaaa/pengelolaan-aset-api/app/repo"
	"github.com/Rizkaicaaa/pengelolaan-aset-api/helper"
)

// BearerToken extracts the token from an Authorization header. Returns
// ok=false when the header is missing or not in Bearer form.
func BearerToken(c *fiber.Ctx) (string, bool) {
	bearer := strings.TrimSpace(c.Get("Authorization"))
	if bearer == "" {
		return "", false
	}
	if len(bearer) < 7 || !strings.EqualFold(bearer[:7], "Bearer ") {
		return "", false
	}
	return strings.TrimSpace(bearer[7:]), true
}

func AuthRequired(tokens *repo.TokenStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := BearerToken(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(model.ErrorResponse{
				Success: false,
				Message: "Token tidak ditemukan",
			})
		}

		claims, err := helper.ValidateToken(token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(model.ErrorResponse{
				Success: false,
				Message: "Token tidak valid",
			})
		}

		if claims.Type != "access" {
			return c.Status(fiber.StatusUnauthorized).JSON(model.ErrorResponse{
				Success: false,
				Message: "Tipe token tidak valid",
			})
		}

		if revoked, err := tokens.IsBlacklisted(c.Context(), token); err == nil && revoked {
			return c.Status(fiber.StatusUnauthorized).JSON(model.ErrorResponse{
				Success: false,
				Message: "Token telah di blacklist",
			})
		}

		if claims.UserID == uuid.Nil || claims.Email == "" || claims.Role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(model.ErrorResponse{
				Success: false,
				Message: "Claim token tidak lengkap",
			})
		}

		c.Locals("user_id", claims.UserID)
		c.Locals("name", claims.Name)
		c.Locals("email", claims.Email)
		c.Locals("role", claims.Role)
		c.Locals("token", token)
		c.Locals("claims", claims)

		return c.Next()
	}
}
