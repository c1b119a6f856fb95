package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"mlacademy/backend/badges"
	"mlacademy/backend/progress"
)

type BadgesController struct {
	Registry *progress.Registry
}

func NewBadgesController(registry *progress.Registry) *BadgesController {
	return &BadgesController{Registry: registry}
}

// GetBadges godoc
// @Summary List all badge definitions
// @Description Returns every badge with its earned state for the requesting profile
// @Tags badges
// @Produce json
// @Success 200 {array} map[string]interface{}
// @Router /badges [get]
func (bc *BadgesController) GetBadges(c *fiber.Ctx) error {
	earned := make(map[string]string)
	for _, badge := range profileTracker(c, bc.Registry).EarnedBadges() {
		earned[badge.ID] = badge.EarnedDate.Format(time.RFC3339)
	}

	result := []fiber.Map{}
	for _, badge := range badges.All {
		entry := fiber.Map{
			"id":          badge.ID,
			"name":        badge.Name,
			"description": badge.Description,
			"category":    badge.Category,
			"rarity":      badge.Rarity,
			"icon":        badge.Icon,
			"earned":      false,
		}
		if date, ok := earned[badge.ID]; ok {
			entry["earned"] = true
			entry["earned_date"] = date
		}
		result = append(result, entry)
	}
	return c.JSON(result)
}

func (bc *BadgesController) GetEarnedBadges(c *fiber.Ctx) error {
	result := []fiber.Map{}
	for _, earned := range profileTracker(c, bc.Registry).EarnedBadges() {
		entry := fiber.Map{
			"id":          earned.ID,
			"earned_date": earned.EarnedDate,
		}
		// Stale ids can outlive a definition change; return them as-is.
		if badge := badges.ByID(earned.ID); badge != nil {
			entry["name"] = badge.Name
			entry["description"] = badge.Description
			entry["category"] = badge.Category
			entry["rarity"] = badge.Rarity
			entry["icon"] = badge.Icon
		}
		result = append(result, entry)
	}
	return c.JSON(result)
}

func (bc *BadgesController) GetBadgesByCategory(c *fiber.Ctx) error {
	result := badges.ByCategory(c.Params("category"))
	if result == nil {
		result = []badges.Badge{}
	}
	return c.JSON(result)
}
