package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/skillsync/skillsync/internal/pkg/apperrors"
	"github.com/skillsync/skillsync/internal/pkg/dberrors"
	"github.com/skillsync/skillsync/internal/pkg/logger"
)

// EnrollmentRepository handles database operations for course enrollments
type EnrollmentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewEnrollmentRepository creates a new EnrollmentRepository
func NewEnrollmentRepository(db *pgxpool.Pool) *EnrollmentRepository {
	return &EnrollmentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Enroll records a user's enrollment in a course. The unique
// (user, course) constraint maps duplicates to ErrAlreadyEnrolled.
func (r *EnrollmentRepository) Enroll(ctx context.Context, userID, courseID int64) error {
	sql, args, err := r.sb.Insert("enrollments").
		Columns("user_id", "course_id").
		Values(userID, courseID).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building enroll SQL")
		return fmt.Errorf("failed to build enroll query: %w", err)
	}

	_, err = r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "enrollments_user_id_course_id_key") {
			return apperrors.ErrAlreadyEnrolled
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrCourseNotFound
		}
		logger.Error().Err(err).Int64("userID", userID).Int64("courseID", courseID).Msg("Error executing enroll query")
		return fmt.Errorf("error enrolling in course: %w", err)
	}
	return nil
}

// IsEnrolled checks whether a user is enrolled in a course
func (r *EnrollmentRepository) IsEnrolled(ctx context.Context, userID, courseID int64) (bool, error) {
	sql, args, err := r.sb.Select("1").
		From("enrollments").
		Where(squirrel.Eq{"user_id": userID, "course_id": courseID}).
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build is enrolled query: %w", err)
	}

	var exists int
	err = r.db.QueryRow(ctx, sql, args...).Scan(&exists)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("error checking enrollment: %w", err)
	}
	return true, nil
}

// GetCourseIDsByUserID retrieves the IDs of every course a user enrolled in
func (r *EnrollmentRepository) GetCourseIDsByUserID(ctx context.Context, userID int64) ([]int64, error) {
	sql, args, err := r.sb.Select("course_id").
		From("enrollments").
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build course IDs query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing course IDs query: %w", err)
	}
	defer rows.Close()

	var courseIDs []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("error scanning course ID: %w", err)
		}
		courseIDs = append(courseIDs, id)
	}
	return courseIDs, rows.Err()
}
