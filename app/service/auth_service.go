package service

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/Rizkaicaaa/pengelolaan-aset-api/app/model"
	"github.com/Rizkaicaaa/pengelolaan-aset-api/app/repo"
	"github.com/Rizkaicaaa/pengelolaan-aset-api/helper"
)

type AuthService struct {
	users  repo.UserRepository
	tokens *repo.TokenStore
}

func NewAuthService(users repo.UserRepository, tokens *repo.TokenStore) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// POST /api/login
func (s *AuthService) Login(c *fiber.Ctx) error {
	var req model.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{
			Success: false,
			Message: "Invalid input",
		})
	}

	if err := helper.ValidateStruct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(model.ErrorResponse{
			Success: false,
			Message: helper.FormatValidationErrors(err),
		})
	}

	user, err := s.users.FindByEmail(req.Email)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(model.ErrorResponse{
			Success: false,
			Message: "Email atau password salah",
		})
	}

	if !helper.CheckPasswordHash(req.Password, user.PasswordHash) {
		return c.Status(fiber.StatusUnauthorized).JSON(model.ErrorResponse{
			Success: false,
			Message: "Email atau password salah",
		})
	}

	token, err := helper.GenerateToken(*user)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
			Success: false,
			Message: "Failed to generate token",
		})
	}

	return c.JSON(model.LoginResponse{
		Token: token,
		User:  *user,
	})
}

// POST /api/logout
func (s *AuthService) Logout(c *fiber.Ctx) error {
	token, _ := c.Locals("token").(string)
	claims, ok := c.Locals("claims").(*model.JWTClaims)
	if token == "" || !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(model.ErrorResponse{
			Success: false,
			Message: "Token tidak ditemukan",
		})
	}

	if err := s.tokens.Blacklist(c.Context(), token, claims.ExpiresAt.Time); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{
			Success: false,
			Message: "Failed to logout",
		})
	}

	return c.JSON(fiber.Map{})
}

// GET /api/me
func (s *AuthService) Me(c *fiber.Ctx) error {
	userID, ok := c.Locals("user_id").(uuid.UUID)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(model.ErrorResponse{
			Success: false,
			Message: "Invalid user session",
		})
	}

	user, err := s.users.FindByID(userID)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(model.ErrorResponse{
			Success: false,
			Message: "User not found",
		})
	}

	return c.JSON(user)
}
