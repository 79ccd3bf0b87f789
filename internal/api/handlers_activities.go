package api

import (
	"strings"
	"time"

	"github.com/cealmeidanos/octofit/internal/models"
	"github.com/gofiber/fiber/v2"
)

type activityInput struct {
	UserEmail    string     `json:"user_email"`
	UserName     string     `json:"user_name"`
	ActivityType string     `json:"activity_type"`
	Duration     int        `json:"duration"`
	Calories     int        `json:"calories"`
	Distance     *float64   `json:"distance"`
	Date         *time.Time `json:"date"`
	Notes        string     `json:"notes"`
}

func (handler *Handler) ListActivities(c *fiber.Ctx) error {
	activities, err := handler.repositories.Activities.List()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load activities")
	}
	return c.JSON(activities)
}

func (handler *Handler) ActivitiesByUser(c *fiber.Ctx) error {
	email, ok := requiredQuery(c, "email")
	if !ok {
		return missingParameter(c, "Email")
	}

	activities, err := handler.repositories.Activities.ListByUserEmail(email)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load activities")
	}
	return c.JSON(activities)
}

func (handler *Handler) ActivitiesByType(c *fiber.Ctx) error {
	activityType, ok := requiredQuery(c, "type")
	if !ok {
		return missingParameter(c, "Type")
	}

	activities, err := handler.repositories.Activities.ListByType(activityType)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load activities")
	}
	return c.JSON(activities)
}

func (handler *Handler) GetActivity(c *fiber.Ctx) error {
	activityID, err := parseIDParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}

	activity, err := handler.repositories.Activities.FindByID(activityID)
	return respondRecord(c, activity, err, "failed to load activity")
}

func (handler *Handler) CreateActivity(c *fiber.Ctx) error {
	var input activityInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	email := strings.ToLower(strings.TrimSpace(input.UserEmail))
	activityType := strings.TrimSpace(input.ActivityType)
	if email == "" || activityType == "" {
		return apiError(c, fiber.StatusBadRequest, "user_email and activity_type are required")
	}
	if input.Duration < 0 || input.Calories < 0 {
		return apiError(c, fiber.StatusBadRequest, "duration and calories must be non-negative")
	}

	// Snapshot the user's display name at creation time. Orphaned emails are
	// tolerated, so a missing user just falls back to the provided name.
	userName := strings.TrimSpace(input.UserName)
	if userName == "" {
		if user, err := handler.repositories.Users.FindByNormalizedEmail(email); err == nil {
			userName = user.Name
		}
	}

	date := time.Now()
	if input.Date != nil {
		date = *input.Date
	}

	activity := models.Activity{
		UserEmail:    email,
		UserName:     userName,
		ActivityType: activityType,
		Duration:     input.Duration,
		Calories:     input.Calories,
		Distance:     input.Distance,
		Date:         date,
		Notes:        input.Notes,
	}
	if err := handler.repositories.Activities.Create(&activity); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create activity")
	}
	return c.Status(fiber.StatusCreated).JSON(activity)
}

func (handler *Handler) UpdateActivity(c *fiber.Ctx) error {
	activityID, err := parseIDParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}

	existing, err := handler.repositories.Activities.FindByID(activityID)
	if err != nil {
		return respondRecord(c, nil, err, "failed to load activity")
	}

	var input activityInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	email := strings.ToLower(strings.TrimSpace(input.UserEmail))
	activityType := strings.TrimSpace(input.ActivityType)
	if email == "" || activityType == "" {
		return apiError(c, fiber.StatusBadRequest, "user_email and activity_type are required")
	}
	if input.Duration < 0 || input.Calories < 0 {
		return apiError(c, fiber.StatusBadRequest, "duration and calories must be non-negative")
	}

	date := existing.Date
	if input.Date != nil {
		date = *input.Date
	}
	userName := strings.TrimSpace(input.UserName)
	if userName == "" {
		userName = existing.UserName
	}

	updates := map[string]any{
		"user_email":    email,
		"user_name":     userName,
		"activity_type": activityType,
		"duration":      input.Duration,
		"calories":      input.Calories,
		"distance":      input.Distance,
		"date":          date,
		"notes":         input.Notes,
	}
	if err := handler.repositories.Activities.UpdateByID(activityID, updates); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to update activity")
	}

	activity, err := handler.repositories.Activities.FindByID(activityID)
	return respondRecord(c, activity, err, "failed to load activity")
}

func (handler *Handler) DeleteActivity(c *fiber.Ctx) error {
	activityID, err := parseIDParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}

	if _, err := handler.repositories.Activities.FindByID(activityID); err != nil {
		return respondRecord(c, nil, err, "failed to load activity")
	}

	if err := handler.repositories.Activities.Delete(activityID); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete activity")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
