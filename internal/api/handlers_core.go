package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// APIRoot lists the available resource families.
func (handler *Handler) APIRoot(c *fiber.Ctx) error {
	base := c.BaseURL()
	return c.JSON(fiber.Map{
		"users":       base + "/api/users",
		"teams":       base + "/api/teams",
		"activities":  base + "/api/activities",
		"leaderboard": base + "/api/leaderboard",
		"workouts":    base + "/api/workouts",
	})
}

// SeedDatabase wipes and repopulates every collection with the demo dataset.
func (handler *Handler) SeedDatabase(c *fiber.Ctx) error {
	summary, err := handler.seeder.Seed()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "seeding failed")
	}
	return c.JSON(summary)
}

// RebuildLeaderboard recomputes all leaderboard rows from current activities.
func (handler *Handler) RebuildLeaderboard(c *fiber.Ctx) error {
	users, err := handler.repositories.Users.List()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load users")
	}
	if err := handler.leaderboard.Rebuild(users); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "leaderboard rebuild failed")
	}

	entries, err := handler.repositories.Leaderboard.ListByRank()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load leaderboard")
	}
	return c.JSON(entries)
}
