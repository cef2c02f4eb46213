package server

import (
	"github.com/gofiber/fiber/v2"

	"duet/internal/models"
)

// GetDiscoverProfiles lists every other user's profile for browsing.
func (s *Server) GetDiscoverProfiles(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	profiles, err := s.matchService.ListDiscoverable(c.Context(), user.ID)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.JSON(fiber.Map{"profiles": profiles})
}

// LikeProfile records a like on another profile. A reciprocal like
// promotes the pair to a mutual match.
func (s *Server) LikeProfile(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	targetID := c.Params("profileId")
	outcome, err := s.matchService.Like(c.Context(), user.ID, targetID)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": outcome.Message()})
}
