package api

import (
	"strings"
	"time"

	"github.com/cealmeidanos/octofit/internal/models"
	"github.com/gofiber/fiber/v2"
)

type teamInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (handler *Handler) ListTeams(c *fiber.Ctx) error {
	teams, err := handler.repositories.Teams.List()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load teams")
	}
	return c.JSON(teams)
}

func (handler *Handler) GetTeam(c *fiber.Ctx) error {
	teamID, err := parseIDParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}

	team, err := handler.repositories.Teams.FindByID(teamID)
	return respondRecord(c, team, err, "failed to load team")
}

func (handler *Handler) TeamMembers(c *fiber.Ctx) error {
	teamID, err := parseIDParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}

	team, err := handler.repositories.Teams.FindByID(teamID)
	if err != nil {
		return respondRecord(c, nil, err, "failed to load team")
	}

	members := team.Members
	if members == nil {
		members = []string{}
	}
	return c.JSON(fiber.Map{"members": members})
}

func (handler *Handler) CreateTeam(c *fiber.Ctx) error {
	var input teamInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return apiError(c, fiber.StatusBadRequest, "name is required")
	}

	exists, err := handler.repositories.Teams.ExistsByName(name)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to check team name")
	}
	if exists {
		return apiError(c, fiber.StatusBadRequest, "team name already exists")
	}

	team := models.Team{
		Name:        name,
		Description: strings.TrimSpace(input.Description),
		Members:     []string{},
		CreatedAt:   time.Now(),
	}
	if err := handler.repositories.Teams.Create(&team); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create team")
	}

	// Users may already carry this team label; pick them up immediately.
	if err := handler.teams.SyncMembers(); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to sync team members")
	}

	created, err := handler.repositories.Teams.FindByID(team.ID)
	if err != nil {
		return c.Status(fiber.StatusCreated).JSON(team)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (handler *Handler) UpdateTeam(c *fiber.Ctx) error {
	teamID, err := parseIDParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}

	if _, err := handler.repositories.Teams.FindByID(teamID); err != nil {
		return respondRecord(c, nil, err, "failed to load team")
	}

	var input teamInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return apiError(c, fiber.StatusBadRequest, "name is required")
	}

	existing, err := handler.repositories.Teams.FindByName(name)
	if err == nil && existing.ID != teamID {
		return apiError(c, fiber.StatusBadRequest, "team name already exists")
	}

	updates := map[string]any{
		"name":        name,
		"description": strings.TrimSpace(input.Description),
	}
	if err := handler.repositories.Teams.UpdateByID(teamID, updates); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to update team")
	}

	// A rename changes which users match by name.
	if err := handler.teams.SyncMembers(); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to sync team members")
	}

	team, err := handler.repositories.Teams.FindByID(teamID)
	return respondRecord(c, team, err, "failed to load team")
}

func (handler *Handler) DeleteTeam(c *fiber.Ctx) error {
	teamID, err := parseIDParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}

	if _, err := handler.repositories.Teams.FindByID(teamID); err != nil {
		return respondRecord(c, nil, err, "failed to load team")
	}

	if err := handler.repositories.Teams.Delete(teamID); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete team")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
