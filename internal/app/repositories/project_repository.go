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

// ProjectDetails is a project joined with the owner's handle.
type ProjectDetails struct {
	ID          int64     `db:"id" json:"id"`
	OwnerID     int64     `db:"owner_id" json:"ownerId"`
	Owner       string    `db:"owner" json:"owner"`
	Title       string    `db:"title" json:"title"`
	Description string    `db:"description" json:"description"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
}

// ProjectRepository handles database operations for projects
type ProjectRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *pgxpool.Pool) *ProjectRepository {
	return &ProjectRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new project and sets its generated ID
func (r *ProjectRepository) Create(ctx context.Context, project *models.Project) error {
	sql, args, err := r.sb.Insert("projects").
		Columns("owner_id", "title", "description").
		Values(project.OwnerID, project.Title, project.Description).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create project SQL")
		return fmt.Errorf("failed to build create project query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&project.ID, &project.CreatedAt)
	if err != nil {
		logger.Error().Err(err).Int64("ownerID", project.OwnerID).Msg("Error executing create project query")
		return fmt.Errorf("error creating project: %w", err)
	}
	return nil
}

// GetAll retrieves a newest-first page of projects with owner handles
func (r *ProjectRepository) GetAll(ctx context.Context, page, pageSize int) ([]*ProjectDetails, int64, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, pageSize)

	sql, args, err := r.sb.Select("p.id", "p.owner_id", "u.username AS owner", "p.title", "p.description", "p.created_at").
		From("projects p").
		Join("users u ON p.owner_id = u.id").
		OrderBy("p.created_at DESC", "p.id DESC").
		Limit(uint64(limit)).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build get projects query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error executing get projects query: %w", err)
	}
	defer rows.Close()

	var projects []*ProjectDetails
	for rows.Next() {
		var p ProjectDetails
		if err := rows.Scan(&p.ID, &p.OwnerID, &p.Owner, &p.Title, &p.Description, &p.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("error scanning project row: %w", err)
		}
		projects = append(projects, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating project rows: %w", err)
	}

	countSQL, countArgs, err := r.sb.Select("COUNT(*)").From("projects").ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count projects query: %w", err)
	}
	var total int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting projects: %w", err)
	}

	return projects, total, nil
}

// GetByID retrieves a single project
func (r *ProjectRepository) GetByID(ctx context.Context, id int64) (*models.Project, error) {
	sql, args, err := r.sb.Select("id", "owner_id", "title", "description", "created_at").
		From("projects").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get project query: %w", err)
	}

	var project models.Project
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&project.ID, &project.OwnerID, &project.Title, &project.Description, &project.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("error retrieving project: %w", err)
	}
	return &project, nil
}
