package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/skillsync/skillsync/internal/app/models"
	"github.com/skillsync/skillsync/internal/app/models/dto"
	"github.com/skillsync/skillsync/internal/app/repositories"
	"github.com/skillsync/skillsync/internal/pkg/apperrors"
	"github.com/skillsync/skillsync/internal/pkg/helpers"
	"github.com/skillsync/skillsync/internal/pkg/sanitize"
)

const hackathonDateLayout = "2006-01-02"

// HackathonService defines the interface for hackathon events
type HackathonService interface {
	CreateHackathon(ctx context.Context, userID int64, req *dto.CreateHackathonRequest) (*dto.HackathonResponse, error)
	GetHackathons(ctx context.Context, userID int64, page, pageSize int) (*dto.HackathonListResponse, error)
	JoinHackathon(ctx context.Context, hackathonID, userID int64) error
}

// hackathonServiceImpl implements the HackathonService interface
type hackathonServiceImpl struct {
	hackathonRepo   *repositories.HackathonRepository
	participantRepo *repositories.HackathonParticipantRepository
}

// NewHackathonService creates a new hackathon service instance
func NewHackathonService(
	hackathonRepo *repositories.HackathonRepository,
	participantRepo *repositories.HackathonParticipantRepository,
) HackathonService {
	return &hackathonServiceImpl{
		hackathonRepo:   hackathonRepo,
		participantRepo: participantRepo,
	}
}

// CreateHackathon creates a new hackathon event
func (s *hackathonServiceImpl) CreateHackathon(ctx context.Context, userID int64, req *dto.CreateHackathonRequest) (*dto.HackathonResponse, error) {
	title := sanitize.Text(req.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: hackathon title cannot be empty", apperrors.ErrValidationFailed)
	}

	startDate, err := time.Parse(hackathonDateLayout, req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: start date must be YYYY-MM-DD", apperrors.ErrValidationFailed)
	}
	endDate, err := time.Parse(hackathonDateLayout, req.EndDate)
	if err != nil {
		return nil, fmt.Errorf("%w: end date must be YYYY-MM-DD", apperrors.ErrValidationFailed)
	}
	if endDate.Before(startDate) {
		return nil, fmt.Errorf("%w: end date cannot be before start date", apperrors.ErrValidationFailed)
	}

	hackathon := &models.Hackathon{
		CreatedBy:   userID,
		Title:       title,
		Description: sanitize.Text(req.Description),
		StartDate:   startDate,
		EndDate:     endDate,
	}
	if err := s.hackathonRepo.Create(ctx, hackathon); err != nil {
		return nil, fmt.Errorf("error creating hackathon: %w", err)
	}

	return s.toResponse(hackathon, 0, false), nil
}

func (s *hackathonServiceImpl) toResponse(h *models.Hackathon, participantCount int, isParticipant bool) *dto.HackathonResponse {
	return &dto.HackathonResponse{
		ID:               h.ID,
		Title:            h.Title,
		Description:      h.Description,
		StartDate:        h.StartDate.Format(hackathonDateLayout),
		EndDate:          h.EndDate.Format(hackathonDateLayout),
		ParticipantCount: participantCount,
		IsParticipant:    isParticipant,
		CreatedAt:        h.CreatedAt,
	}
}

// GetHackathons retrieves a page of hackathons with participant counts
func (s *hackathonServiceImpl) GetHackathons(ctx context.Context, userID int64, page, pageSize int) (*dto.HackathonListResponse, error) {
	hackathons, total, err := s.hackathonRepo.GetAll(ctx, page, pageSize)
	if err != nil {
		return nil, fmt.Errorf("error retrieving hackathons: %w", err)
	}

	hackathonIDs := make([]int64, 0, len(hackathons))
	for _, h := range hackathons {
		hackathonIDs = append(hackathonIDs, h.ID)
	}
	counts, err := s.participantRepo.GetParticipantCountsByHackathonIDs(ctx, hackathonIDs)
	if err != nil {
		return nil, fmt.Errorf("error retrieving participant counts: %w", err)
	}

	joined := make(map[int64]bool)
	if userID > 0 {
		myHackathons, err := s.participantRepo.GetHackathonIDsByUserID(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("error retrieving participations: %w", err)
		}
		for _, id := range myHackathons {
			joined[id] = true
		}
	}

	items := make([]dto.HackathonResponse, 0, len(hackathons))
	for _, h := range hackathons {
		items = append(items, *s.toResponse(h, counts[h.ID], joined[h.ID]))
	}

	return &dto.HackathonListResponse{
		Hackathons: items,
		Pagination: helpers.NewPaginationInfo(total, page, pageSize),
	}, nil
}

// JoinHackathon registers the caller for a hackathon
func (s *hackathonServiceImpl) JoinHackathon(ctx context.Context, hackathonID, userID int64) error {
	if hackathonID <= 0 {
		return fmt.Errorf("%w: invalid hackathon ID", apperrors.ErrValidationFailed)
	}

	if _, err := s.hackathonRepo.GetByID(ctx, hackathonID); err != nil {
		if errors.Is(err, apperrors.ErrHackathonNotFound) {
			return apperrors.ErrHackathonNotFound
		}
		return fmt.Errorf("error retrieving hackathon: %w", err)
	}

	if err := s.participantRepo.Join(ctx, hackathonID, userID); err != nil {
		if apperrors.Is(err, apperrors.ErrAlreadyJoined, apperrors.ErrHackathonNotFound) {
			return err
		}
		return fmt.Errorf("error joining hackathon: %w", err)
	}
	return nil
}
