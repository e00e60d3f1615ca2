package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/skillsync/skillsync/internal/app/models"
	"github.com/skillsync/skillsync/internal/pkg/apperrors"
	"github.com/skillsync/skillsync/internal/pkg/helpers"
	"github.com/skillsync/skillsync/internal/pkg/logger"
)

// CourseDetails is a course joined with the sharer's handle.
type CourseDetails struct {
	ID          int64     `db:"id" json:"id"`
	UserID      int64     `db:"user_id" json:"userId"`
	Username    string    `db:"username" json:"username"`
	Title       string    `db:"title" json:"title"`
	Description string    `db:"description" json:"description"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
}

// CourseRepository handles database operations for shared courses
type CourseRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new course and sets its generated ID
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	sql, args, err := r.sb.Insert("courses").
		Columns("user_id", "title", "description").
		Values(course.UserID, course.Title, course.Description).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create course SQL")
		return fmt.Errorf("failed to build create course query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&course.ID, &course.CreatedAt)
	if err != nil {
		logger.Error().Err(err).Int64("userID", course.UserID).Msg("Error executing create course query")
		return fmt.Errorf("error creating course: %w", err)
	}
	return nil
}

func (r *CourseRepository) selectCourseDetailsQuery() squirrel.SelectBuilder {
	return r.sb.Select("c.id", "c.user_id", "u.username", "c.title", "c.description", "c.created_at").
		From("courses c").
		Join("users u ON c.user_id = u.id")
}

func (r *CourseRepository) queryCourseDetails(ctx context.Context, builder squirrel.SelectBuilder) ([]*CourseDetails, error) {
	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build course query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing course query: %w", err)
	}
	defer rows.Close()

	var courses []*CourseDetails
	for rows.Next() {
		var c CourseDetails
		if err := rows.Scan(&c.ID, &c.UserID, &c.Username, &c.Title, &c.Description, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning course row: %w", err)
		}
		courses = append(courses, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating course rows: %w", err)
	}
	return courses, nil
}

// GetAll retrieves a newest-first page of shared courses
func (r *CourseRepository) GetAll(ctx context.Context, page, pageSize int) ([]*CourseDetails, int64, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, pageSize)
	builder := r.selectCourseDetailsQuery().
		OrderBy("c.created_at DESC", "c.id DESC").
		Limit(uint64(limit)).
		Offset(offset)

	courses, err := r.queryCourseDetails(ctx, builder)
	if err != nil {
		return nil, 0, err
	}

	countSQL, countArgs, err := r.sb.Select("COUNT(*)").From("courses").ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count courses query: %w", err)
	}
	var total int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting courses: %w", err)
	}

	return courses, total, nil
}

// GetByID retrieves a single course
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	sql, args, err := r.sb.Select("id", "user_id", "title", "description", "created_at").
		From("courses").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get course query: %w", err)
	}

	var course models.Course
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&course.ID, &course.UserID, &course.Title, &course.Description, &course.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}
	return &course, nil
}

// GetEnrolledByUserID retrieves the courses a user has enrolled in,
// newest enrollment first.
func (r *CourseRepository) GetEnrolledByUserID(ctx context.Context, userID int64, page, pageSize int) ([]*CourseDetails, int64, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, pageSize)

	sql, args, err := r.selectCourseDetailsQuery().
		Join("enrollments e ON e.course_id = c.id").
		Where(squirrel.Eq{"e.user_id": userID}).
		OrderBy("e.created_at DESC", "c.id DESC").
		Limit(uint64(limit)).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build enrolled courses query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error executing enrolled courses query: %w", err)
	}
	defer rows.Close()

	var courses []*CourseDetails
	for rows.Next() {
		var c CourseDetails
		if err := rows.Scan(&c.ID, &c.UserID, &c.Username, &c.Title, &c.Description, &c.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("error scanning course row: %w", err)
		}
		courses = append(courses, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating course rows: %w", err)
	}

	countSQL, countArgs, err := r.sb.Select("COUNT(*)").
		From("enrollments").
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count enrollments query: %w", err)
	}
	var total int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting enrollments: %w", err)
	}

	return courses, total, nil
}
