package controllers

import (
	"github.com/gofiber/fiber/v2"

	"mlacademy/backend/progress"
)

// profileTracker returns the tracker for the profile the middleware put on
// the request context.
func profileTracker(c *fiber.Ctx, registry *progress.Registry) *progress.Tracker {
	profile, _ := c.Locals("profile").(string)
	return registry.ForProfile(profile)
}

func contains(set []string, id string) bool {
	for _, existing := range set {
		if existing == id {
			return true
		}
	}
	return false
}
