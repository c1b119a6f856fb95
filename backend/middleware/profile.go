package middleware

import "github.com/gofiber/fiber/v2"

// ProfileHeader names the header that selects the learner profile. Each
// profile gets its own isolated progress state; there are no accounts.
const ProfileHeader = "X-Profile-ID"

// ProfileMiddleware кладет идентификатор профиля в контекст запроса
func ProfileMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		profile := c.Get(ProfileHeader)
		if profile == "" {
			profile = "default"
		}
		c.Locals("profile", profile)
		return c.Next()
	}
}
