package server

import (
	"github.com/gofiber/fiber/v2"

	"duet/internal/models"
	"duet/internal/service"
)

// SendMessageRequest is the payload for posting a message to a match.
type SendMessageRequest struct {
	Content  string `json:"content"`
	AudioURL string `json:"audio_url"`
}

// GetConversations lists the authenticated user's mutual matches with
// the other participant and latest message attached.
func (s *Server) GetConversations(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	conversations, err := s.messageService.ListConversations(c.Context(), user.ID)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.JSON(fiber.Map{"conversations": conversations})
}

// GetMessages returns a match's messages oldest first.
func (s *Server) GetMessages(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	matchID := c.Params("matchId")
	messages, err := s.messageService.ListMessages(c.Context(), user.ID, matchID)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.JSON(messages)
}

// SendMessage appends a message to a match the user participates in.
func (s *Server) SendMessage(c *fiber.Ctx) error {
	user, err := currentUser(c)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	var req SendMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	message, err := s.messageService.SendMessage(c.Context(), service.SendMessageInput{
		SenderID: user.ID,
		MatchID:  c.Params("matchId"),
		Content:  req.Content,
		AudioURL: req.AudioURL,
	})
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.Status(fiber.StatusCreated).JSON(message)
}
