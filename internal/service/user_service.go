package service

import (
	"context"

	"duet/internal/cache"
	"duet/internal/models"
	"duet/internal/repository"
	"duet/internal/validation"
)

// UserService provides profile business logic.
type UserService struct {
	userRepo repository.UserRepository
}

// UpdateProfileInput carries the partial-update fields for a profile. Empty
// fields are left untouched.
type UpdateProfileInput struct {
	UserID          string
	Name            string
	Role            string
	ImageURL        string
	AudioPreviewURL string
}

// NewUserService returns a new UserService.
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// GetProfile returns a user's profile view, served from cache when possible.
func (s *UserService) GetProfile(ctx context.Context, userID string) (*models.User, error) {
	var cached models.User
	if found, err := cache.GetJSON(ctx, cache.ProfileKey(userID), &cached); err == nil && found {
		return &cached, nil
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	_ = cache.SetJSON(ctx, cache.ProfileKey(userID), user, cache.ProfileTTL)
	return user, nil
}

// UpdateProfile applies a partial update and invalidates the cached view.
func (s *UserService) UpdateProfile(ctx context.Context, in UpdateProfileInput) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	if in.Name != "" {
		if err := validation.ValidateName(in.Name); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		user.Name = in.Name
	}
	if in.Role != "" {
		if err := validation.ValidateRole(in.Role); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		user.Role = in.Role
	}
	if in.ImageURL != "" {
		if err := validation.ValidateURL("image_url", in.ImageURL); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		user.ImageURL = in.ImageURL
	}
	if in.AudioPreviewURL != "" {
		if err := validation.ValidateURL("audio_preview_url", in.AudioPreviewURL); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		user.AudioPreviewURL = in.AudioPreviewURL
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	cache.InvalidateProfile(ctx, user.ID)
	return user, nil
}
