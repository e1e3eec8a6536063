package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/kairoszero/satlog/internal/models"
	"github.com/kairoszero/satlog/internal/services"
)

func (handler *Handler) Register(c *fiber.Ctx) error {
	input, err := parseRegisterInput(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	fieldErrors := services.ValidateRegistrationInput(input.Email, input.Username, input.Password, input.PasswordConfirm)
	if fieldErrors.HasErrors() {
		return validationError(c, fieldErrors)
	}

	exists, err := handler.repositories.Users.ExistsByNormalizedEmail(input.Email)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create account")
	}
	if exists {
		fieldErrors.Add("email", "a user with this email already exists")
		return validationError(c, fieldErrors)
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to secure password")
	}

	user := models.User{
		Email:        input.Email,
		Username:     input.Username,
		PasswordHash: string(passwordHash),
		IsActive:     true,
		CreatedAt:    time.Now().In(handler.location),
	}
	if err := handler.repositories.Users.Create(&user); err != nil {
		// The normalized-email unique index can still reject a concurrent
		// registration that slipped past the exists check.
		fieldErrors.Add("email", "a user with this email already exists")
		return validationError(c, fieldErrors)
	}

	if err := handler.setAuthCookie(c, &user); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"user":    userPayload(&user),
		"message": "registration complete",
	})
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	input, err := parseLoginInput(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	fieldErrors := services.ValidateLoginInput(input.Email, input.Password)
	if fieldErrors.HasErrors() {
		return validationError(c, fieldErrors)
	}

	user, err := handler.repositories.Users.FindByNormalizedEmail(input.Email)
	if err != nil {
		return invalidCredentials(c)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return invalidCredentials(c)
	}
	if !user.IsActive {
		fieldErrors.Add("non_field_errors", "this account is disabled")
		return validationError(c, fieldErrors)
	}

	if err := handler.setAuthCookie(c, &user); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create session")
	}

	return c.JSON(fiber.Map{
		"user":    userPayload(&user),
		"message": "login successful",
	})
}

// invalidCredentials reports a bad email/password pair without disclosing
// which half was wrong.
func invalidCredentials(c *fiber.Ctx) error {
	fieldErrors := services.FieldErrors{}
	fieldErrors.Add("non_field_errors", "invalid email or password")
	return validationError(c, fieldErrors)
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	handler.clearAuthCookie(c)
	return c.JSON(fiber.Map{"message": "logged out"})
}

func (handler *Handler) Profile(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	return c.JSON(userPayload(user))
}

func (handler *Handler) CheckAuth(c *fiber.Ctx) error {
	user, err := handler.authenticateRequest(c)
	if err != nil {
		return c.JSON(fiber.Map{
			"isAuthenticated": false,
			"user":            nil,
		})
	}
	return c.JSON(fiber.Map{
		"isAuthenticated": true,
		"user":            userPayload(user),
	})
}

// CSRFToken exists so a browser client can prime the CSRF cookie before its
// first mutating request; the cookie itself is set by the csrf middleware.
func (handler *Handler) CSRFToken(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"detail": "CSRF cookie set"})
}
