package api

import (
	"strings"
	"time"

	"github.com/cealmeidanos/octofit/internal/models"
	"github.com/gofiber/fiber/v2"
)

type workoutInput struct {
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	Difficulty       string   `json:"difficulty"`
	Duration         int      `json:"duration"`
	CaloriesEstimate int      `json:"calories_estimate"`
	ActivityType     string   `json:"activity_type"`
	EquipmentNeeded  []string `json:"equipment_needed"`
	Instructions     []string `json:"instructions"`
}

func (handler *Handler) ListWorkouts(c *fiber.Ctx) error {
	workouts, err := handler.repositories.Workouts.List()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load workouts")
	}
	return c.JSON(workouts)
}

func (handler *Handler) WorkoutsByDifficulty(c *fiber.Ctx) error {
	difficulty, ok := requiredQuery(c, "difficulty")
	if !ok {
		return missingParameter(c, "Difficulty")
	}

	workouts, err := handler.repositories.Workouts.ListByDifficulty(difficulty)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load workouts")
	}
	return c.JSON(workouts)
}

func (handler *Handler) WorkoutsByType(c *fiber.Ctx) error {
	activityType, ok := requiredQuery(c, "type")
	if !ok {
		return missingParameter(c, "Type")
	}

	workouts, err := handler.repositories.Workouts.ListByType(activityType)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load workouts")
	}
	return c.JSON(workouts)
}

func (handler *Handler) GetWorkout(c *fiber.Ctx) error {
	workoutID, err := parseIDParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}

	workout, err := handler.repositories.Workouts.FindByID(workoutID)
	return respondRecord(c, workout, err, "failed to load workout")
}

func (handler *Handler) CreateWorkout(c *fiber.Ctx) error {
	var input workoutInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	title := strings.TrimSpace(input.Title)
	activityType := strings.TrimSpace(input.ActivityType)
	if title == "" || activityType == "" {
		return apiError(c, fiber.StatusBadRequest, "title and activity_type are required")
	}
	if !models.IsWorkoutDifficulty(input.Difficulty) {
		return apiError(c, fiber.StatusBadRequest, "invalid difficulty")
	}
	if input.Duration < 0 || input.CaloriesEstimate < 0 {
		return apiError(c, fiber.StatusBadRequest, "duration and calories_estimate must be non-negative")
	}

	workout := models.Workout{
		Title:            title,
		Description:      strings.TrimSpace(input.Description),
		Difficulty:       input.Difficulty,
		Duration:         input.Duration,
		CaloriesEstimate: input.CaloriesEstimate,
		ActivityType:     activityType,
		EquipmentNeeded:  emptyIfNil(input.EquipmentNeeded),
		Instructions:     emptyIfNil(input.Instructions),
		CreatedAt:        time.Now(),
	}
	if err := handler.repositories.Workouts.Create(&workout); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create workout")
	}
	return c.Status(fiber.StatusCreated).JSON(workout)
}

func (handler *Handler) UpdateWorkout(c *fiber.Ctx) error {
	workoutID, err := parseIDParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}

	workout, err := handler.repositories.Workouts.FindByID(workoutID)
	if err != nil {
		return respondRecord(c, nil, err, "failed to load workout")
	}

	var input workoutInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	title := strings.TrimSpace(input.Title)
	activityType := strings.TrimSpace(input.ActivityType)
	if title == "" || activityType == "" {
		return apiError(c, fiber.StatusBadRequest, "title and activity_type are required")
	}
	if !models.IsWorkoutDifficulty(input.Difficulty) {
		return apiError(c, fiber.StatusBadRequest, "invalid difficulty")
	}
	if input.Duration < 0 || input.CaloriesEstimate < 0 {
		return apiError(c, fiber.StatusBadRequest, "duration and calories_estimate must be non-negative")
	}

	workout.Title = title
	workout.Description = strings.TrimSpace(input.Description)
	workout.Difficulty = input.Difficulty
	workout.Duration = input.Duration
	workout.CaloriesEstimate = input.CaloriesEstimate
	workout.ActivityType = activityType
	workout.EquipmentNeeded = emptyIfNil(input.EquipmentNeeded)
	workout.Instructions = emptyIfNil(input.Instructions)
	if err := handler.repositories.Workouts.Save(&workout); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to update workout")
	}
	return c.JSON(workout)
}

func (handler *Handler) DeleteWorkout(c *fiber.Ctx) error {
	workoutID, err := parseIDParam(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid id")
	}

	if _, err := handler.repositories.Workouts.FindByID(workoutID); err != nil {
		return respondRecord(c, nil, err, "failed to load workout")
	}

	if err := handler.repositories.Workouts.Delete(workoutID); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete workout")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func emptyIfNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
