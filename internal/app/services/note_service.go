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
	"github.com/skillsync/skillsync/internal/pkg/helpers"
	"github.com/skillsync/skillsync/internal/pkg/logger"
	"github.com/skillsync/skillsync/internal/pkg/sanitize"
	"github.com/skillsync/skillsync/internal/pkg/validation"
)

// NoteService defines the interface for note sharing and rating
type NoteService interface {
	UploadNote(ctx context.Context, userID int64, title string, fileHeader *multipart.FileHeader) (*dto.NoteResponse, error)
	GetNotes(ctx context.Context, page, pageSize int) (*dto.NoteListResponse, error)
	RateNote(ctx context.Context, noteID, userID int64, rating int) error
	GetAverageRating(ctx context.Context, noteID int64) (*float64, int, error)
}

// noteServiceImpl implements the NoteService interface
type noteServiceImpl struct {
	noteRepo   *repositories.NoteRepository
	ratingRepo *repositories.NoteRatingRepository
	userRepo   *repositories.UserRepository
	storage    filestorage.FileStorage
}

// NewNoteService creates a new note service instance
func NewNoteService(
	noteRepo *repositories.NoteRepository,
	ratingRepo *repositories.NoteRatingRepository,
	userRepo *repositories.UserRepository,
	storage filestorage.FileStorage,
) NoteService {
	return &noteServiceImpl{
		noteRepo:   noteRepo,
		ratingRepo: ratingRepo,
		userRepo:   userRepo,
		storage:    storage,
	}
}

// UploadNote stores the note file and records its metadata
func (s *noteServiceImpl) UploadNote(ctx context.Context, userID int64, title string, fileHeader *multipart.FileHeader) (*dto.NoteResponse, error) {
	title = sanitize.Text(title)
	if title == "" {
		return nil, fmt.Errorf("%w: note title cannot be empty", apperrors.ErrValidationFailed)
	}
	if fileHeader == nil {
		return nil, fmt.Errorf("%w: note file is required", apperrors.ErrValidationFailed)
	}

	fileURL, err := s.storage.SaveFileWithPath(fileHeader, filestorage.SubdirNotes)
	if err != nil {
		return nil, fmt.Errorf("error saving note file: %w", err)
	}

	note := &models.Note{
		UserID:  userID,
		Title:   title,
		FileURL: fileURL,
	}
	if err := s.noteRepo.Create(ctx, note); err != nil {
		if delErr := s.storage.DeleteFile(fileURL); delErr != nil {
			logger.Warn().Err(delErr).Str("path", fileURL).Msg("Failed to clean up note file after create error")
		}
		return nil, fmt.Errorf("error creating note: %w", err)
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving uploader: %w", err)
	}

	return &dto.NoteResponse{
		ID:        note.ID,
		Username:  user.Username,
		Title:     note.Title,
		FileURL:   note.FileURL,
		CreatedAt: note.CreatedAt,
	}, nil
}

// GetNotes retrieves a newest-first page of notes with rating aggregates
func (s *noteServiceImpl) GetNotes(ctx context.Context, page, pageSize int) (*dto.NoteListResponse, error) {
	notes, total, err := s.noteRepo.GetAll(ctx, page, pageSize)
	if err != nil {
		return nil, fmt.Errorf("error retrieving notes: %w", err)
	}

	items := make([]dto.NoteResponse, 0, len(notes))
	for _, n := range notes {
		items = append(items, dto.NoteResponse{
			ID:            n.ID,
			Username:      n.Username,
			Title:         n.Title,
			FileURL:       n.FileURL,
			AverageRating: n.AverageRating,
			RatingCount:   n.RatingCount,
			CreatedAt:     n.CreatedAt,
		})
	}

	return &dto.NoteListResponse{
		Notes:      items,
		Pagination: helpers.NewPaginationInfo(total, page, pageSize),
	}, nil
}

// RateNote records the caller's rating of a note. Rating the same note
// twice replaces the earlier value rather than adding a second vote.
func (s *noteServiceImpl) RateNote(ctx context.Context, noteID, userID int64, rating int) error {
	if !validation.ValidRating(rating) {
		return apperrors.ErrInvalidRating
	}

	// Distinguish a missing note from a constraint failure up front.
	if _, err := s.noteRepo.GetByID(ctx, noteID); err != nil {
		if errors.Is(err, apperrors.ErrNoteNotFound) {
			return apperrors.ErrNoteNotFound
		}
		return fmt.Errorf("error retrieving note: %w", err)
	}

	if err := s.ratingRepo.Upsert(ctx, noteID, userID, rating); err != nil {
		if errors.Is(err, apperrors.ErrNoteNotFound) {
			return apperrors.ErrNoteNotFound
		}
		return fmt.Errorf("error rating note: %w", err)
	}
	return nil
}

// GetAverageRating returns a note's average rating rounded to one
// decimal plus the number of ratings. The average is nil when the note
// has no ratings, which is distinct from an average of zero.
func (s *noteServiceImpl) GetAverageRating(ctx context.Context, noteID int64) (*float64, int, error) {
	if _, err := s.noteRepo.GetByID(ctx, noteID); err != nil {
		if errors.Is(err, apperrors.ErrNoteNotFound) {
			return nil, 0, apperrors.ErrNoteNotFound
		}
		return nil, 0, fmt.Errorf("error retrieving note: %w", err)
	}

	avg, count, err := s.ratingRepo.GetAverage(ctx, noteID)
	if err != nil {
		return nil, 0, fmt.Errorf("error retrieving average rating: %w", err)
	}
	return avg, count, nil
}
