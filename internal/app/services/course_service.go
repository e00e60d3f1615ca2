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

// CourseService defines the interface for course sharing and enrollment
type CourseService interface {
	CreateCourse(ctx context.Context, userID int64, req *dto.CreateCourseRequest) (*dto.CourseResponse, error)
	GetCourses(ctx context.Context, userID int64, page, pageSize int) (*dto.CourseListResponse, error)
	Enroll(ctx context.Context, userID, courseID int64) error
	GetMyCourses(ctx context.Context, userID int64, page, pageSize int) (*dto.CourseListResponse, error)
}

// courseServiceImpl implements the CourseService interface
type courseServiceImpl struct {
	courseRepo     *repositories.CourseRepository
	enrollmentRepo *repositories.EnrollmentRepository
	userRepo       *repositories.UserRepository
}

// NewCourseService creates a new course service instance
func NewCourseService(
	courseRepo *repositories.CourseRepository,
	enrollmentRepo *repositories.EnrollmentRepository,
	userRepo *repositories.UserRepository,
) CourseService {
	return &courseServiceImpl{
		courseRepo:     courseRepo,
		enrollmentRepo: enrollmentRepo,
		userRepo:       userRepo,
	}
}

// CreateCourse shares a new course
func (s *courseServiceImpl) CreateCourse(ctx context.Context, userID int64, req *dto.CreateCourseRequest) (*dto.CourseResponse, error) {
	title := sanitize.Text(req.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: course title cannot be empty", apperrors.ErrValidationFailed)
	}

	course := &models.Course{
		UserID:      userID,
		Title:       title,
		Description: sanitize.Text(req.Description),
	}
	if err := s.courseRepo.Create(ctx, course); err != nil {
		return nil, fmt.Errorf("error creating course: %w", err)
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving sharer: %w", err)
	}

	return &dto.CourseResponse{
		ID:          course.ID,
		Username:    user.Username,
		Title:       course.Title,
		Description: course.Description,
		CreatedAt:   course.CreatedAt,
	}, nil
}

// GetCourses retrieves a page of shared courses, flagging the ones the
// caller is already enrolled in.
func (s *courseServiceImpl) GetCourses(ctx context.Context, userID int64, page, pageSize int) (*dto.CourseListResponse, error) {
	courses, total, err := s.courseRepo.GetAll(ctx, page, pageSize)
	if err != nil {
		return nil, fmt.Errorf("error retrieving courses: %w", err)
	}

	enrolled := make(map[int64]bool)
	if userID > 0 {
		courseIDs, err := s.enrollmentRepo.GetCourseIDsByUserID(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("error retrieving enrollments: %w", err)
		}
		for _, id := range courseIDs {
			enrolled[id] = true
		}
	}

	items := make([]dto.CourseResponse, 0, len(courses))
	for _, c := range courses {
		items = append(items, dto.CourseResponse{
			ID:          c.ID,
			Username:    c.Username,
			Title:       c.Title,
			Description: c.Description,
			Enrolled:    enrolled[c.ID],
			CreatedAt:   c.CreatedAt,
		})
	}

	return &dto.CourseListResponse{
		Courses:    items,
		Pagination: helpers.NewPaginationInfo(total, page, pageSize),
	}, nil
}

// Enroll enrolls the caller in a course
func (s *courseServiceImpl) Enroll(ctx context.Context, userID, courseID int64) error {
	if courseID <= 0 {
		return fmt.Errorf("%w: invalid course ID", apperrors.ErrValidationFailed)
	}

	// Surface a clean not-found before touching the join table.
	if _, err := s.courseRepo.GetByID(ctx, courseID); err != nil {
		if errors.Is(err, apperrors.ErrCourseNotFound) {
			return apperrors.ErrCourseNotFound
		}
		return fmt.Errorf("error retrieving course: %w", err)
	}

	if err := s.enrollmentRepo.Enroll(ctx, userID, courseID); err != nil {
		if apperrors.Is(err, apperrors.ErrAlreadyEnrolled, apperrors.ErrCourseNotFound) {
			return err
		}
		return fmt.Errorf("error enrolling in course: %w", err)
	}
	return nil
}

// GetMyCourses retrieves the courses the caller has enrolled in
func (s *courseServiceImpl) GetMyCourses(ctx context.Context, userID int64, page, pageSize int) (*dto.CourseListResponse, error) {
	courses, total, err := s.courseRepo.GetEnrolledByUserID(ctx, userID, page, pageSize)
	if err != nil {
		return nil, fmt.Errorf("error retrieving enrolled courses: %w", err)
	}

	items := make([]dto.CourseResponse, 0, len(courses))
	for _, c := range courses {
		items = append(items, dto.CourseResponse{
			ID:          c.ID,
			Username:    c.Username,
			Title:       c.Title,
			Description: c.Description,
			Enrolled:    true,
			CreatedAt:   c.CreatedAt,
		})
	}

	return &dto.CourseListResponse{
		Courses:    items,
		Pagination: helpers.NewPaginationInfo(total, page, pageSize),
	}, nil
}
