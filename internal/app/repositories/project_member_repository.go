package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/skillsync/skillsync/internal/pkg/apperrors"
	"github.com/skillsync/skillsync/internal/pkg/dberrors"
)

// ProjectMemberDetails is one member row with the member's handle.
type ProjectMemberDetails struct {
	Username string    `db:"username" json:"username"`
	JoinedAt time.Time `db:"joined_at" json:"joinedAt"`
}

// ProjectMemberRepository handles database operations for project membership
type ProjectMemberRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewProjectMemberRepository creates a new ProjectMemberRepository
func NewProjectMemberRepository(db *pgxpool.Pool) *ProjectMemberRepository {
	return &ProjectMemberRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// AddMember adds a user to a project. The unique (project, user)
// constraint maps duplicates to ErrAlreadyMember.
func (r *ProjectMemberRepository) AddMember(ctx context.Context, projectID, userID int64) error {
	sql, args, err := r.sb.Insert("project_members").
		Columns("project_id", "user_id").
		Values(projectID, userID).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build add member query: %w", err)
	}

	_, err = r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "project_members_project_id_user_id_key") {
			return apperrors.ErrAlreadyMember
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrProjectNotFound
		}
		return fmt.Errorf("error adding project member: %w", err)
	}
	return nil
}

// IsMember checks whether a user belongs to a project
func (r *ProjectMemberRepository) IsMember(ctx context.Context, projectID, userID int64) (bool, error) {
	sql, args, err := r.sb.Select("1").
		From("project_members").
		Where(squirrel.Eq{"project_id": projectID, "user_id": userID}).
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build is member query: %w", err)
	}

	var exists int
	err = r.db.QueryRow(ctx, sql, args...).Scan(&exists)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("error checking project membership: %w", err)
	}
	return true, nil
}

// GetMembersByProjectID retrieves a project's members with their handles
func (r *ProjectMemberRepository) GetMembersByProjectID(ctx context.Context, projectID int64) ([]*ProjectMemberDetails, error) {
	sql, args, err := r.sb.Select("u.username", "pm.joined_at").
		From("project_members pm").
		Join("users u ON pm.user_id = u.id").
		Where(squirrel.Eq{"pm.project_id": projectID}).
		OrderBy("pm.joined_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get members query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing get members query: %w", err)
	}
	defer rows.Close()

	var members []*ProjectMemberDetails
	for rows.Next() {
		var m ProjectMemberDetails
		if err := rows.Scan(&m.Username, &m.JoinedAt); err != nil {
			return nil, fmt.Errorf("error scanning member row: %w", err)
		}
		members = append(members, &m)
	}
	return members, rows.Err()
}

// GetMemberCountsByProjectIDs retrieves member counts for multiple projects
func (r *ProjectMemberRepository) GetMemberCountsByProjectIDs(ctx context.Context, projectIDs []int64) (map[int64]int, error) {
	if len(projectIDs) == 0 {
		return make(map[int64]int), nil
	}

	sql, args, err := r.sb.Select("project_id", "COUNT(*)").
		From("project_members").
		Where(squirrel.Eq{"project_id": projectIDs}).
		GroupBy("project_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build member counts query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing member counts query: %w", err)
	}
	defer rows.Close()

	counts := make(map[int64]int)
	for rows.Next() {
		var projectID int64
		var count int
		if err := rows.Scan(&projectID, &count); err != nil {
			return nil, fmt.Errorf("error scanning member count row: %w", err)
		}
		counts[projectID] = count
	}
	return counts, rows.Err()
}

// GetProjectIDsByUserID retrieves the projects a user belongs to
func (r *ProjectMemberRepository) GetProjectIDsByUserID(ctx context.Context, userID int64) ([]int64, error) {
	sql, args, err := r.sb.Select("project_id").
		From("project_members").
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build project IDs query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing project IDs query: %w", err)
	}
	defer rows.Close()

	var projectIDs []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("error scanning project ID: %w", err)
		}
		projectIDs = append(projectIDs, id)
	}
	return projectIDs, rows.Err()
}
