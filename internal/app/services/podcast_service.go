package services

import (
	"context"
	"fmt"
	"mime/multipart"

	"github.com/skillsync/skillsync/internal/app/models"
	"github.com/skillsync/skillsync/internal/app/models/dto"
	"github.com/skillsync/skillsync/internal/app/repositories"
	"github.com/skillsync/skillsync/internal/pkg/apperrors"
	"github.com/skillsync/skillsync/internal/pkg/filestorage"
	"github.com/skillsync/skillsync/internal/pkg/helpers"
	"github.com/skillsync/skillsync/internal/pkg/logger"
	"github.com/skillsync/skillsync/internal/pkg/sanitize"
	"github.com/skillsync/skillsync/internal/pkg/validation"
)

// PodcastService defines the interface for podcast sharing
type PodcastService interface {
	UploadPodcast(ctx context.Context, userID int64, title, language string, fileHeader *multipart.FileHeader) (*dto.PodcastResponse, error)
	GetPodcasts(ctx context.Context, language *string, page, pageSize int) (*dto.PodcastListResponse, error)
}

// podcastServiceImpl implements the PodcastService interface
type podcastServiceImpl struct {
	podcastRepo *repositories.PodcastRepository
	userRepo    *repositories.UserRepository
	storage     filestorage.FileStorage
}

// NewPodcastService creates a new podcast service instance
func NewPodcastService(
	podcastRepo *repositories.PodcastRepository,
	userRepo *repositories.UserRepository,
	storage filestorage.FileStorage,
) PodcastService {
	return &podcastServiceImpl{
		podcastRepo: podcastRepo,
		userRepo:    userRepo,
		storage:     storage,
	}
}

// UploadPodcast stores the audio file and records its metadata
func (s *podcastServiceImpl) UploadPodcast(ctx context.Context, userID int64, title, language string, fileHeader *multipart.FileHeader) (*dto.PodcastResponse, error) {
	title = sanitize.Text(title)
	if title == "" {
		return nil, fmt.Errorf("%w: podcast title cannot be empty", apperrors.ErrValidationFailed)
	}
	if !validation.ValidLanguage(language) {
		return nil, fmt.Errorf("%w: language must be a tag like \"en\" or \"pt-BR\"", apperrors.ErrValidationFailed)
	}
	if fileHeader == nil {
		return nil, fmt.Errorf("%w: audio file is required", apperrors.ErrValidationFailed)
	}

	fileURL, err := s.storage.SaveFileWithPath(fileHeader, filestorage.SubdirPodcasts)
	if err != nil {
		return nil, fmt.Errorf("error saving podcast file: %w", err)
	}

	podcast := &models.Podcast{
		UserID:   userID,
		Title:    title,
		Language: language,
		FileURL:  fileURL,
	}
	if err := s.podcastRepo.Create(ctx, podcast); err != nil {
		if delErr := s.storage.DeleteFile(fileURL); delErr != nil {
			logger.Warn().Err(delErr).Str("path", fileURL).Msg("Failed to clean up podcast file after create error")
		}
		return nil, fmt.Errorf("error creating podcast: %w", err)
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving uploader: %w", err)
	}

	return &dto.PodcastResponse{
		ID:        podcast.ID,
		Username:  user.Username,
		Title:     podcast.Title,
		Language:  podcast.Language,
		FileURL:   podcast.FileURL,
		CreatedAt: podcast.CreatedAt,
	}, nil
}

// GetPodcasts retrieves a page of podcasts, optionally filtered by language
func (s *podcastServiceImpl) GetPodcasts(ctx context.Context, language *string, page, pageSize int) (*dto.PodcastListResponse, error) {
	if language != nil && *language != "" && !validation.ValidLanguage(*language) {
		return nil, fmt.Errorf("%w: invalid language filter", apperrors.ErrValidationFailed)
	}

	podcasts, total, err := s.podcastRepo.GetAll(ctx, language, page, pageSize)
	if err != nil {
		return nil, fmt.Errorf("error retrieving podcasts: %w", err)
	}

	items := make([]dto.PodcastResponse, 0, len(podcasts))
	for _, p := range podcasts {
		items = append(items, dto.PodcastResponse{
			ID:        p.ID,
			Username:  p.Username,
			Title:     p.Title,
			Language:  p.Language,
			FileURL:   p.FileURL,
			CreatedAt: p.CreatedAt,
		})
	}

	return &dto.PodcastListResponse{
		Podcasts:   items,
		Pagination: helpers.NewPaginationInfo(total, page, pageSize),
	}, nil
}
