package services

import (
	"errors"
	"strings"
	"time"

	"snake-arena-api/models"
	"snake-arena-api/storage"
	"snake-arena-api/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type AuthService struct {
	Store    storage.Store
	Sessions *SessionStore
}

func NewAuthService(store storage.Store, sessions *SessionStore) *AuthService {
	return &AuthService{Store: store, Sessions: sessions}
}

// Signup registers a new user and issues a session for it.
func (s *AuthService) Signup(c *fiber.Ctx) error {
	var req models.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "Invalid request body"})
	}
	if req.Username == "" || req.Email == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "username, email and password are required"})
	}
	if !strings.Contains(req.Email, "@") {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "Invalid email address"})
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"detail": "Failed to hash password"})
	}

	user := &models.User{
		ID:        uuid.NewString(),
		Username:  req.Username,
		Email:     req.Email,
		Password:  hash,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.Store.CreateUser(c.Context(), user); err != nil {
		switch {
		case errors.Is(err, storage.ErrUsernameTaken):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"detail": "Username already exists"})
		case errors.Is(err, storage.ErrEmailTaken):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"detail": "Email already registered"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"detail": "Failed to create user"})
		}
	}

	session, err := s.Sessions.Issue(user)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"detail": "Failed to create session"})
	}
	c.Set("X-Session-Token", session.Token)

	return c.Status(fiber.StatusCreated).JSON(user)
}

// Login checks credentials and issues a session.
func (s *AuthService) Login(c *fiber.Ctx) error {
	var req models.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": "Invalid request body"})
	}

	user, err := s.Store.GetUserByUsername(c.Context(), req.Username)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			// Same response as a wrong password — do not leak which one it was
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"detail": "Invalid credentials"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"detail": "Failed to look up user"})
	}
	if !utils.CheckPassword(user.Password, req.Password) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"detail": "Invalid credentials"})
	}

	session, err := s.Sessions.Issue(user)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"detail": "Failed to create session"})
	}
	c.Set("X-Session-Token", session.Token)

	return c.JSON(user)
}

// Logout revokes the presented session. Succeeds even without one.
func (s *AuthService) Logout(c *fiber.Ctx) error {
	if token := SessionTokenFromCtx(c); token != "" {
		s.Sessions.Revoke(token)
	}
	return c.JSON(fiber.Map{"message": "Logged out successfully"})
}

// Me returns the user behind the validated session set by the middleware.
func (s *AuthService) Me(c *fiber.Ctx) error {
	session := c.Locals("session").(*Session)
	user, err := s.Store.GetUserByUsername(c.Context(), session.Username)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"detail": "Not authenticated"})
	}
	return c.JSON(user)
}
