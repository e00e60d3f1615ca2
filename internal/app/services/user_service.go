package services

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"

	"github.com/skillsync/skillsync/internal/app/models"
	"github.com/skillsync/skillsync/internal/app/models/dto"
	"github.com/skillsync/skillsync/internal/app/repositories"
	"github.com/skillsync/skillsync/internal/pkg/apperrors"
	"github.com/skillsync/skillsync/internal/pkg/filestorage"
	"github.com/skillsync/skillsync/internal/pkg/logger"
	"github.com/skillsync/skillsync/internal/pkg/sanitize"
)

// UserService defines the interface for profile operations
type UserService interface {
	GetProfile(ctx context.Context, userID int64) (*dto.ProfileResponse, error)
	GetProfileByUsername(ctx context.Context, username string) (*dto.ProfileResponse, error)
	UpdateProfile(ctx context.Context, userID int64, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error)
	UpdateAvatar(ctx context.Context, userID int64, fileHeader *multipart.FileHeader) (*dto.ProfileResponse, error)
}

// userServiceImpl implements the UserService interface
type userServiceImpl struct {
	userRepo *repositories.UserRepository
	storage  filestorage.FileStorage
}

// NewUserService creates a new user service instance
func NewUserService(userRepo *repositories.UserRepository, storage filestorage.FileStorage) UserService {
	return &userServiceImpl{
		userRepo: userRepo,
		storage:  storage,
	}
}

func toProfileResponse(user *models.User) *dto.ProfileResponse {
	return &dto.ProfileResponse{
		ID:        user.ID,
		Username:  user.Username,
		College:   user.College,
		Skills:    user.SkillList(),
		Bio:       user.Bio,
		AvatarURL: user.AvatarURL,
		CreatedAt: user.CreatedAt,
	}
}

// GetProfile retrieves the caller's own profile
func (s *userServiceImpl) GetProfile(ctx context.Context, userID int64) (*dto.ProfileResponse, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("%w: invalid user ID", apperrors.ErrValidationFailed)
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving profile: %w", err)
	}
	return toProfileResponse(user), nil
}

// GetProfileByUsername retrieves a profile by its public handle
func (s *userServiceImpl) GetProfileByUsername(ctx context.Context, username string) (*dto.ProfileResponse, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving profile: %w", err)
	}
	return toProfileResponse(user), nil
}

// UpdateProfile updates the caller's editable profile fields
func (s *userServiceImpl) UpdateProfile(ctx context.Context, userID int64, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("%w: invalid user ID", apperrors.ErrValidationFailed)
	}

	college := sanitize.Text(req.College)
	if college == "" {
		return nil, fmt.Errorf("%w: college cannot be empty", apperrors.ErrValidationFailed)
	}
	skills := models.JoinSkills(sanitize.Fields(req.Skills))
	bio := sanitize.Text(req.Bio)

	if err := s.userRepo.UpdateProfile(ctx, userID, college, skills, bio); err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error updating profile: %w", err)
	}

	return s.GetProfile(ctx, userID)
}

// UpdateAvatar stores a new avatar image and records its URL
func (s *userServiceImpl) UpdateAvatar(ctx context.Context, userID int64, fileHeader *multipart.FileHeader) (*dto.ProfileResponse, error) {
	if fileHeader == nil {
		return nil, fmt.Errorf("%w: avatar file is required", apperrors.ErrValidationFailed)
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}

	avatarURL, err := s.storage.SaveFileWithPath(fileHeader, filestorage.SubdirAvatars)
	if err != nil {
		return nil, fmt.Errorf("error saving avatar: %w", err)
	}

	if err := s.userRepo.UpdateAvatar(ctx, userID, avatarURL); err != nil {
		// Roll back the orphaned file; best effort.
		if delErr := s.storage.DeleteFile(avatarURL); delErr != nil {
			logger.Warn().Err(delErr).Str("path", avatarURL).Msg("Failed to clean up avatar after update error")
		}
		return nil, fmt.Errorf("error updating avatar: %w", err)
	}

	// Remove the replaced avatar after the new one is recorded.
	if user.AvatarURL != nil && *user.AvatarURL != "" {
		if delErr := s.storage.DeleteFile(*user.AvatarURL); delErr != nil {
			logger.Warn().Err(delErr).Str("path", *user.AvatarURL).Msg("Failed to delete old avatar")
		}
	}

	return s.GetProfile(ctx, userID)
}
