package server

import (
	"github.com/gofiber/fiber/v2"

	"duet/internal/models"
)

// currentUser returns the authenticated user stored by AuthRequired.
func currentUser(c *fiber.Ctx) (*models.User, error) {
	user, ok := c.Locals("currentUser").(*models.User)
	if !ok || user == nil {
		return nil, models.NewUnauthorizedError("Could not validate credentials")
	}
	return user, nil
}
