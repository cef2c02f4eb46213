package service

import (
	"context"

	"duet/internal/models"
	"duet/internal/observability"
	"duet/internal/repository"
)

// LikeOutcome is the result of a like action.
type LikeOutcome string

const (
	// OutcomeLiked means a new one-sided match row was created.
	OutcomeLiked LikeOutcome = "liked"
	// OutcomeMatched means the like completed a mutual match.
	OutcomeMatched LikeOutcome = "matched"
	// OutcomeAlreadyLiked means the like changed nothing.
	OutcomeAlreadyLiked LikeOutcome = "already_liked"
)

// Message returns the user-facing message for the outcome.
func (o LikeOutcome) Message() string {
	switch o {
	case OutcomeMatched:
		return "It's a match!"
	case OutcomeAlreadyLiked:
		return "Already liked"
	default:
		return "Profile liked"
	}
}

// MatchService provides discovery and like-based matching business logic.
type MatchService struct {
	matchRepo repository.MatchRepository
	userRepo  repository.UserRepository
}

// NewMatchService returns a new MatchService.
func NewMatchService(matchRepo repository.MatchRepository, userRepo repository.UserRepository) *MatchService {
	return &MatchService{
		matchRepo: matchRepo,
		userRepo:  userRepo,
	}
}

// ListDiscoverable returns every user except the current one. Already-liked
// and already-matched users are intentionally not filtered out.
func (s *MatchService) ListDiscoverable(ctx context.Context, currentUserID string) ([]models.User, error) {
	return s.userRepo.ListExcluding(ctx, currentUserID)
}

// Like records a like from the current user on the target profile.
//
// Mutuality is decided by which side sits in user1 on the pre-existing row:
// only a like from the row's user2 side flips is_mutual. The rule is
// order-of-insertion dependent and is kept exactly as-is.
func (s *MatchService) Like(ctx context.Context, currentUserID, targetUserID string) (LikeOutcome, error) {
	if _, err := s.userRepo.GetByID(ctx, targetUserID); err != nil {
		return "", err
	}

	existing, err := s.matchRepo.GetBetweenUsers(ctx, currentUserID, targetUserID)
	if err != nil {
		return "", err
	}

	if existing == nil {
		match := &models.Match{
			User1ID: currentUserID,
			User2ID: targetUserID,
		}
		createErr := s.matchRepo.Create(ctx, match)
		switch createErr {
		case nil:
			observability.LikesProcessed.WithLabelValues(string(OutcomeLiked)).Inc()
			return OutcomeLiked, nil
		case repository.ErrDuplicatePair:
			// Lost a concurrent-like race on the pair; re-read and evaluate
			// against the row that won.
			existing, err = s.matchRepo.GetBetweenUsers(ctx, currentUserID, targetUserID)
			if err != nil {
				return "", err
			}
			if existing == nil {
				return "", models.NewInternalError(createErr)
			}
		default:
			return "", createErr
		}
	}

	if existing.User1ID == targetUserID && !existing.IsMutual {
		if err := s.matchRepo.MarkMutual(ctx, existing.ID); err != nil {
			return "", err
		}
		observability.LikesProcessed.WithLabelValues(string(OutcomeMatched)).Inc()
		return OutcomeMatched, nil
	}

	observability.LikesProcessed.WithLabelValues(string(OutcomeAlreadyLiked)).Inc()
	return OutcomeAlreadyLiked, nil
}

// ListMutualMatches returns every mutual match involving the user.
func (s *MatchService) ListMutualMatches(ctx context.Context, currentUserID string) ([]models.Match, error) {
	return s.matchRepo.ListMutualForUser(ctx, currentUserID)
}
