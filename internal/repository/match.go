package repository

import (
	"context"
	"errors"

	"duet/internal/models"

	"gorm.io/gorm"
)

// ErrDuplicatePair signals that a match row for the unordered pair already
// exists. Callers re-read the pair and re-evaluate instead of failing.
var ErrDuplicatePair = errors.New("match already exists for pair")

// MatchRepository defines the interface for match data operations
type MatchRepository interface {
	Create(ctx context.Context, match *models.Match) error
	GetByID(ctx context.Context, id string) (*models.Match, error)
	GetBetweenUsers(ctx context.Context, userID1, userID2 string) (*models.Match, error)
	MarkMutual(ctx context.Context, matchID string) error
	ListMutualForUser(ctx context.Context, userID string) ([]models.Match, error)
}

// matchRepository implements MatchRepository
type matchRepository struct {
	db *gorm.DB
}

// NewMatchRepository creates a new match repository
func NewMatchRepository(db *gorm.DB) MatchRepository {
	return &matchRepository{db: db}
}

func (r *matchRepository) Create(ctx context.Context, match *models.Match) error {
	if err := r.db.WithContext(ctx).Create(match).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicatePair
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *matchRepository) GetByID(ctx context.Context, id string) (*models.Match, error) {
	var match models.Match
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&match).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Match", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &match, nil
}

func (r *matchRepository) GetBetweenUsers(ctx context.Context, userID1, userID2 string) (*models.Match, error) {
	var match models.Match
	if err := r.db.WithContext(ctx).
		Where("pair_key = ?", models.PairKeyFor(userID1, userID2)).
		First(&match).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil // No match exists
		}
		return nil, models.NewInternalError(err)
	}
	return &match, nil
}

func (r *matchRepository) MarkMutual(ctx context.Context, matchID string) error {
	if err := r.db.WithContext(ctx).
		Model(&models.Match{}).
		Where("id = ?", matchID).
		Update("is_mutual", true).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *matchRepository) ListMutualForUser(ctx context.Context, userID string) ([]models.Match, error) {
	var matches []models.Match
	if err := r.db.WithContext(ctx).
		Where("is_mutual = ? AND (user1_id = ? OR user2_id = ?)", true, userID, userID).
		Order("updated_at DESC").
		Find(&matches).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return matches, nil
}
