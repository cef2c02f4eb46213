package service

import (
	"context"

	"duet/internal/models"
	"duet/internal/observability"
	"duet/internal/repository"
	"duet/internal/validation"
)

// MessageService provides per-match messaging business logic.
type MessageService struct {
	messageRepo repository.MessageRepository
	matchRepo   repository.MatchRepository
	userRepo    repository.UserRepository
}

// Conversation pairs a mutual match with the other participant and the most
// recent message.
type Conversation struct {
	ID          string          `json:"id"`
	User1ID     string          `json:"user1_id"`
	User2ID     string          `json:"user2_id"`
	IsMutual    bool            `json:"is_mutual"`
	OtherUser   *models.User    `json:"other_user,omitempty"`
	LastMessage *models.Message `json:"last_message,omitempty"`
}

// SendMessageInput is the input for sending a message.
type SendMessageInput struct {
	SenderID string
	MatchID  string
	Content  string
	AudioURL string
}

// NewMessageService returns a new MessageService.
func NewMessageService(messageRepo repository.MessageRepository, matchRepo repository.MatchRepository, userRepo repository.UserRepository) *MessageService {
	return &MessageService{
		messageRepo: messageRepo,
		matchRepo:   matchRepo,
		userRepo:    userRepo,
	}
}

// requireParticipation loads the match and verifies the user is one of its two
// participants. A match that exists but excludes the user is reported as
// not-found, indistinguishable from a missing match.
func (s *MessageService) requireParticipation(ctx context.Context, userID, matchID string) (*models.Match, error) {
	match, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if !match.Includes(userID) {
		return nil, models.NewNotFoundError("Match", matchID)
	}
	return match, nil
}

// ListConversations returns the user's mutual matches enriched with the other
// participant and last message.
func (s *MessageService) ListConversations(ctx context.Context, currentUserID string) ([]Conversation, error) {
	matches, err := s.matchRepo.ListMutualForUser(ctx, currentUserID)
	if err != nil {
		return nil, err
	}

	conversations := make([]Conversation, 0, len(matches))
	for i := range matches {
		m := &matches[i]
		conv := Conversation{
			ID:       m.ID,
			User1ID:  m.User1ID,
			User2ID:  m.User2ID,
			IsMutual: m.IsMutual,
		}
		if otherID := m.OtherUserID(currentUserID); otherID != "" {
			other, err := s.userRepo.GetByID(ctx, otherID)
			if err == nil {
				conv.OtherUser = other
			}
		}
		last, err := s.messageRepo.GetLastForMatch(ctx, m.ID)
		if err != nil {
			return nil, err
		}
		conv.LastMessage = last
		conversations = append(conversations, conv)
	}
	return conversations, nil
}

// ListMessages returns the match's messages oldest first. Participation in the
// match is required; mutuality is not.
func (s *MessageService) ListMessages(ctx context.Context, currentUserID, matchID string) ([]models.Message, error) {
	if _, err := s.requireParticipation(ctx, currentUserID, matchID); err != nil {
		return nil, err
	}
	return s.messageRepo.ListByMatch(ctx, matchID)
}

// SendMessage persists a new message from the current user in the match.
func (s *MessageService) SendMessage(ctx context.Context, in SendMessageInput) (*models.Message, error) {
	if in.Content == "" {
		return nil, models.NewValidationError("Message content is required")
	}
	if err := validation.ValidateURL("audio_url", in.AudioURL); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	if _, err := s.requireParticipation(ctx, in.SenderID, in.MatchID); err != nil {
		return nil, err
	}

	message := &models.Message{
		MatchID:  in.MatchID,
		SenderID: in.SenderID,
		Content:  in.Content,
		AudioURL: in.AudioURL,
	}
	if err := s.messageRepo.Create(ctx, message); err != nil {
		return nil, err
	}

	kind := "text"
	if message.AudioURL != "" {
		kind = "audio"
	}
	observability.MessagesSent.WithLabelValues(kind).Inc()
	return message, nil
}
