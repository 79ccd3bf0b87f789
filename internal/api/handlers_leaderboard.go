package api

import (
	"strconv"
	"strings"
	"time"

	"github.com/cealmeidanos/octofit/internal/models"
	"github.com/gofiber/fiber/v2"
)

const defaultTopLimit = 10

type leaderboardInput struct {
	UserEmail       string `json:"user_email"`
	UserName        string `json:"user_name"`
	Team            string `json:"team"`
	TotalActivities int    `json:"total_activities"`
	TotalCalories   int    `json:"total_calories"`
	TotalDuration   int    `json:"total_duration"`
	Rank            *int   `json:"rank"`
}

func (handler *Handler) ListLeaderboard(c *fiber.Ctx) error {
	entries, err := handler.repositories.Leaderboard.ListByRank()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load leaderboard")
	}
	return c.JSON(entries)
}

// TopLeaderboard returns the best-ranked entries, default 10.
func (handler *Handler) TopLeaderboard(c *fiber.Ctx) error {
	limit := defaultTopLimit
	if raw := strings.TrimSpace(c.Query("limit")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return apiError(c, fiber.StatusBadRequest, "invalid limit")
		}
		limit = parsed
	}

	entries, err := handler.repositories.Leaderboard.ListTop(limit)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load leaderboard")
	}
	return c.JSON(entries)
}

func (handler *Handler) LeaderboardByTeam(c *fiber.Ctx) error {
	team, ok := requiredQuery(c, "team")
	if !ok {
		return missingParameter(c, "Team")
	}

	entries, err := handler.repositories.Leaderboard.ListByTeam(team)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load leaderboard")
	}
	return c.JSON(entries)
}

func (handler *Handler) GetLeaderboardEntry(c *fiber.Ctx) error {
	entryID, err := parseIDParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}

	entry, err := handler.repositories.Leaderboard.FindByID(entryID)
	return respondRecord(c, entry, err, "failed to load leaderboard entry")
}

// CreateLeaderboardEntry inserts a row directly. Rows are normally owned by
// the rebuild; a hand-inserted row survives only until the next rebuild.
func (handler *Handler) CreateLeaderboardEntry(c *fiber.Ctx) error {
	var input leaderboardInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	email := strings.ToLower(strings.TrimSpace(input.UserEmail))
	if email == "" {
		return apiError(c, fiber.StatusBadRequest, "user_email is required")
	}
	if input.TotalActivities < 0 || input.TotalCalories < 0 || input.TotalDuration < 0 {
		return apiError(c, fiber.StatusBadRequest, "totals must be non-negative")
	}

	entry := models.LeaderboardEntry{
		UserEmail:       email,
		UserName:        strings.TrimSpace(input.UserName),
		Team:            strings.TrimSpace(input.Team),
		TotalActivities: input.TotalActivities,
		TotalCalories:   input.TotalCalories,
		TotalDuration:   input.TotalDuration,
		Rank:            input.Rank,
		LastUpdated:     time.Now(),
	}
	if err := handler.repositories.Leaderboard.Create(&entry); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create leaderboard entry")
	}
	return c.Status(fiber.StatusCreated).JSON(entry)
}

func (handler *Handler) UpdateLeaderboardEntry(c *fiber.Ctx) error {
	entryID, err := parseIDParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}

	if _, err := handler.repositories.Leaderboard.FindByID(entryID); err != nil {
		return respondRecord(c, nil, err, "failed to load leaderboard entry")
	}

	var input leaderboardInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	email := strings.ToLower(strings.TrimSpace(input.UserEmail))
	if email == "" {
		return apiError(c, fiber.StatusBadRequest, "user_email is required")
	}
	if input.TotalActivities < 0 || input.TotalCalories < 0 || input.TotalDuration < 0 {
		return apiError(c, fiber.StatusBadRequest, "totals must be non-negative")
	}

	updates := map[string]any{
		"user_email":       email,
		"user_name":        strings.TrimSpace(input.UserName),
		"team":             strings.TrimSpace(input.Team),
		"total_activities": input.TotalActivities,
		"total_calories":   input.TotalCalories,
		"total_duration":   input.TotalDuration,
		"rank":             input.Rank,
		"last_updated":     time.Now(),
	}
	if err := handler.repositories.Leaderboard.UpdateByID(entryID, updates); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to update leaderboard entry")
	}

	entry, err := handler.repositories.Leaderboard.FindByID(entryID)
	return respondRecord(c, entry, err, "failed to load leaderboard entry")
}

func (handler *Handler) DeleteLeaderboardEntry(c *fiber.Ctx) error {
	entryID, err := parseIDParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}

	if _, err := handler.repositories.Leaderboard.FindByID(entryID); err != nil {
		return respondRecord(c, nil, err, "failed to load leaderboard entry")
	}

	if err := handler.repositories.Leaderboard.Delete(entryID); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete leaderboard entry")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
