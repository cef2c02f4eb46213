package server

import (
	"github.com/gofiber/fiber/v2"

	"duet/internal/models"
	"duet/internal/service"
)

// UpdateProfileRequest carries the editable profile fields. Empty fields
// are left untouched.
type UpdateProfileRequest struct {
	Name            string `json:"name"`
	Role            string `json:"role"`
	ImageURL        string `json:"image_url"`
	AudioPreviewURL string `json:"audio_preview_url"`
}

// GetMyProfile returns the authenticated user's profile.
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	profile, err := s.userService.GetProfile(c.Context(), user.ID)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.JSON(profile)
}

// UpdateMyProfile applies a partial update to the authenticated user's profile.
func (s *Server) UpdateMyProfile(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	var req UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	updated, err := s.userService.UpdateProfile(c.Context(), service.UpdateProfileInput{
		UserID:          user.ID,
		Name:            req.Name,
		Role:            req.Role,
		ImageURL:        req.ImageURL,
		AudioPreviewURL: req.AudioPreviewURL,
	})
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.JSON(updated)
}
