package api

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func parseIDParam(c *fiber.Ctx) (uint, error) {
	raw := strings.TrimSpace(c.Params("id"))
	value, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || value == 0 {
		return 0, errors.New("invalid id")
	}
	return uint(value), nil
}

func requiredQuery(c *fiber.Ctx, key string) (string, bool) {
	value := strings.TrimSpace(c.Query(key))
	return value, value != ""
}

// missingParameter is the distinct client-error path for "by X" filters
// called without their parameter; they never fall back to an unfiltered list.
func missingParameter(c *fiber.Ctx, label string) error {
	return apiError(c, fiber.StatusBadRequest, label+" parameter is required")
}

// respondRecord maps a lookup miss to 404, distinct from empty-list results.
func respondRecord(c *fiber.Ctx, record any, err error, loadMessage string) error {
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apiError(c, fiber.StatusNotFound, "not found")
		}
		return apiError(c, fiber.StatusInternalServerError, loadMessage)
	}
	return c.JSON(record)
}
