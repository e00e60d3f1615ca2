package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/skillsync/skillsync/internal/app/models"
	"github.com/skillsync/skillsync/internal/app/models/dto"
	"github.com/skillsync/skillsync/internal/app/repositories"
	"github.com/skillsync/skillsync/internal/pkg/apperrors"
	"github.com/skillsync/skillsync/internal/pkg/helpers"
	"github.com/skillsync/skillsync/internal/pkg/sanitize"
)

// ProjectService defines the interface for collaborative projects
type ProjectService interface {
	CreateProject(ctx context.Context, userID int64, req *dto.CreateProjectRequest) (*dto.ProjectResponse, error)
	GetProjects(ctx context.Context, userID int64, page, pageSize int) (*dto.ProjectListResponse, error)
	JoinProject(ctx context.Context, projectID, userID int64) error
	GetMembers(ctx context.Context, projectID int64) ([]dto.ProjectMemberResponse, error)
}

// projectServiceImpl implements the ProjectService interface
type projectServiceImpl struct {
	projectRepo *repositories.ProjectRepository
	memberRepo  *repositories.ProjectMemberRepository
	userRepo    *repositories.UserRepository
}

// NewProjectService creates a new project service instance
func NewProjectService(
	projectRepo *repositories.ProjectRepository,
	memberRepo *repositories.ProjectMemberRepository,
	userRepo *repositories.UserRepository,
) ProjectService {
	return &projectServiceImpl{
		projectRepo: projectRepo,
		memberRepo:  memberRepo,
		userRepo:    userRepo,
	}
}

// CreateProject creates a project and enrolls the creator as its first member
func (s *projectServiceImpl) CreateProject(ctx context.Context, userID int64, req *dto.CreateProjectRequest) (*dto.ProjectResponse, error) {
	title := sanitize.Text(req.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: project title cannot be empty", apperrors.ErrValidationFailed)
	}

	project := &models.Project{
		OwnerID:     userID,
		Title:       title,
		Description: sanitize.Text(req.Description),
	}
	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("error creating project: %w", err)
	}

	// The owner counts as a member from the start.
	if err := s.memberRepo.AddMember(ctx, project.ID, userID); err != nil && !errors.Is(err, apperrors.ErrAlreadyMember) {
		return nil, fmt.Errorf("error adding owner as member: %w", err)
	}

	owner, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving owner: %w", err)
	}

	return &dto.ProjectResponse{
		ID:          project.ID,
		Owner:       owner.Username,
		Title:       project.Title,
		Description: project.Description,
		MemberCount: 1,
		IsMember:    true,
		CreatedAt:   project.CreatedAt,
	}, nil
}

// GetProjects retrieves a page of projects with member counts, flagging
// the ones the caller belongs to.
func (s *projectServiceImpl) GetProjects(ctx context.Context, userID int64, page, pageSize int) (*dto.ProjectListResponse, error) {
	projects, total, err := s.projectRepo.GetAll(ctx, page, pageSize)
	if err != nil {
		return nil, fmt.Errorf("error retrieving projects: %w", err)
	}

	projectIDs := make([]int64, 0, len(projects))
	for _, p := range projects {
		projectIDs = append(projectIDs, p.ID)
	}
	counts, err := s.memberRepo.GetMemberCountsByProjectIDs(ctx, projectIDs)
	if err != nil {
		return nil, fmt.Errorf("error retrieving member counts: %w", err)
	}

	membership := make(map[int64]bool)
	if userID > 0 {
		myProjects, err := s.memberRepo.GetProjectIDsByUserID(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("error retrieving memberships: %w", err)
		}
		for _, id := range myProjects {
			membership[id] = true
		}
	}

	items := make([]dto.ProjectResponse, 0, len(projects))
	for _, p := range projects {
		items = append(items, dto.ProjectResponse{
			ID:          p.ID,
			Owner:       p.Owner,
			Title:       p.Title,
			Description: p.Description,
			MemberCount: counts[p.ID],
			IsMember:    membership[p.ID],
			CreatedAt:   p.CreatedAt,
		})
	}

	return &dto.ProjectListResponse{
		Projects:   items,
		Pagination: helpers.NewPaginationInfo(total, page, pageSize),
	}, nil
}

// JoinProject adds the caller to a project
func (s *projectServiceImpl) JoinProject(ctx context.Context, projectID, userID int64) error {
	if projectID <= 0 {
		return fmt.Errorf("%w: invalid project ID", apperrors.ErrValidationFailed)
	}

	if _, err := s.projectRepo.GetByID(ctx, projectID); err != nil {
		if errors.Is(err, apperrors.ErrProjectNotFound) {
			return apperrors.ErrProjectNotFound
		}
		return fmt.Errorf("error retrieving project: %w", err)
	}

	if err := s.memberRepo.AddMember(ctx, projectID, userID); err != nil {
		if apperrors.Is(err, apperrors.ErrAlreadyMember, apperrors.ErrProjectNotFound) {
			return err
		}
		return fmt.Errorf("error joining project: %w", err)
	}
	return nil
}

// GetMembers retrieves a project's member list
func (s *projectServiceImpl) GetMembers(ctx context.Context, projectID int64) ([]dto.ProjectMemberResponse, error) {
	if _, err := s.projectRepo.GetByID(ctx, projectID); err != nil {
		if errors.Is(err, apperrors.ErrProjectNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("error retrieving project: %w", err)
	}

	members, err := s.memberRepo.GetMembersByProjectID(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving members: %w", err)
	}

	items := make([]dto.ProjectMemberResponse, 0, len(members))
	for _, m := range members {
		items = append(items, dto.ProjectMemberResponse{
			Username: m.Username,
			JoinedAt: m.JoinedAt,
		})
	}
	return items, nil
}
