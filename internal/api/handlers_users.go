package api

import (
	"strings"
	"time"

	"github.com/cealmeidanos/octofit/internal/models"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

type userInput struct {
	Email    string  `json:"email"`
	Name     string  `json:"name"`
	Password string  `json:"password"`
	Team     *string `json:"team"`
}

func (handler *Handler) ListUsers(c *fiber.Ctx) error {
	users, err := handler.repositories.Users.List()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load users")
	}
	return c.JSON(users)
}

func (handler *Handler) UsersByTeam(c *fiber.Ctx) error {
	team, ok := requiredQuery(c, "team")
	if !ok {
		return missingParameter(c, "Team")
	}

	users, err := handler.repositories.Users.ListByTeam(team)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load users")
	}
	return c.JSON(users)
}

func (handler *Handler) GetUser(c *fiber.Ctx) error {
	userID, err := parseIDParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}

	user, err := handler.repositories.Users.FindByID(userID)
	return respondRecord(c, user, err, "failed to load user")
}

func (handler *Handler) CreateUser(c *fiber.Ctx) error {
	var input userInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))
	name := strings.TrimSpace(input.Name)
	if email == "" || name == "" || input.Password == "" {
		return apiError(c, fiber.StatusBadRequest, "email, name and password are required")
	}

	exists, err := handler.repositories.Users.ExistsByNormalizedEmail(email)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to check email")
	}
	if exists {
		return apiError(c, fiber.StatusBadRequest, "email already exists")
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to hash password")
	}

	user := models.User{
		Email:        email,
		Name:         name,
		PasswordHash: string(passwordHash),
		Team:         normalizeTeamLabel(input.Team),
		CreatedAt:    time.Now(),
	}
	if err := handler.repositories.Users.Create(&user); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create user")
	}

	if err := handler.teams.SyncMembers(); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to sync team members")
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// UpdateUser replaces the user's profile fields. A changed team assignment
// triggers a member resync for all teams.
func (handler *Handler) UpdateUser(c *fiber.Ctx) error {
	userID, err := parseIDParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}

	if _, err := handler.repositories.Users.FindByID(userID); err != nil {
		return respondRecord(c, nil, err, "failed to load user")
	}

	var input userInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))
	name := strings.TrimSpace(input.Name)
	if email == "" || name == "" {
		return apiError(c, fiber.StatusBadRequest, "email and name are required")
	}

	existing, err := handler.repositories.Users.FindByNormalizedEmail(email)
	if err == nil && existing.ID != userID {
		return apiError(c, fiber.StatusBadRequest, "email already exists")
	}

	updates := map[string]any{
		"email": email,
		"name":  name,
		"team":  normalizeTeamLabel(input.Team),
	}
	if input.Password != "" {
		passwordHash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			return apiError(c, fiber.StatusInternalServerError, "failed to hash password")
		}
		updates["password_hash"] = string(passwordHash)
	}

	if err := handler.repositories.Users.UpdateByID(userID, updates); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to update user")
	}

	if err := handler.teams.SyncMembers(); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to sync team members")
	}

	user, err := handler.repositories.Users.FindByID(userID)
	return respondRecord(c, user, err, "failed to load user")
}

func (handler *Handler) DeleteUser(c *fiber.Ctx) error {
	userID, err := parseIDParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}

	if _, err := handler.repositories.Users.FindByID(userID); err != nil {
		return respondRecord(c, nil, err, "failed to load user")
	}

	if err := handler.repositories.Users.Delete(userID); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete user")
	}

	if err := handler.teams.SyncMembers(); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to sync team members")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func normalizeTeamLabel(team *string) *string {
	if team == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*team)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
