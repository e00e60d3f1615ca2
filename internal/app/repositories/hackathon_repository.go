package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/skillsync/skillsync/internal/app/models"
	"github.com/skillsync/skillsync/internal/pkg/apperrors"
	"github.com/skillsync/skillsync/internal/pkg/helpers"
	"github.com/skillsync/skillsync/internal/pkg/logger"
)

// HackathonRepository handles database operations for hackathons
type HackathonRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewHackathonRepository creates a new HackathonRepository
func NewHackathonRepository(db *pgxpool.Pool) *HackathonRepository {
	return &HackathonRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new hackathon and sets its generated ID
func (r *HackathonRepository) Create(ctx context.Context, hackathon *models.Hackathon) error {
	sql, args, err := r.sb.Insert("hackathons").
		Columns("created_by", "title", "description", "start_date", "end_date").
		Values(hackathon.CreatedBy, hackathon.Title, hackathon.Description, hackathon.StartDate, hackathon.EndDate).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create hackathon SQL")
		return fmt.Errorf("failed to build create hackathon query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&hackathon.ID, &hackathon.CreatedAt)
	if err != nil {
		logger.Error().Err(err).Int64("createdBy", hackathon.CreatedBy).Msg("Error executing create hackathon query")
		return fmt.Errorf("error creating hackathon: %w", err)
	}
	return nil
}

// GetAll retrieves a page of hackathons ordered by start date, the
// soonest upcoming first.
func (r *HackathonRepository) GetAll(ctx context.Context, page, pageSize int) ([]*models.Hackathon, int64, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, pageSize)

	sql, args, err := r.sb.Select("id", "created_by", "title", "description", "start_date", "end_date", "created_at").
		From("hackathons").
		OrderBy("start_date DESC", "id DESC").
		Limit(uint64(limit)).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build get hackathons query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error executing get hackathons query: %w", err)
	}
	defer rows.Close()

	var hackathons []*models.Hackathon
	for rows.Next() {
		var h models.Hackathon
		if err := rows.Scan(&h.ID, &h.CreatedBy, &h.Title, &h.Description, &h.StartDate, &h.EndDate, &h.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("error scanning hackathon row: %w", err)
		}
		hackathons = append(hackathons, &h)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating hackathon rows: %w", err)
	}

	countSQL, countArgs, err := r.sb.Select("COUNT(*)").From("hackathons").ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count hackathons query: %w", err)
	}
	var total int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting hackathons: %w", err)
	}

	return hackathons, total, nil
}

// GetByID retrieves a single hackathon
func (r *HackathonRepository) GetByID(ctx context.Context, id int64) (*models.Hackathon, error) {
	sql, args, err := r.sb.Select("id", "created_by", "title", "description", "start_date", "end_date", "created_at").
		From("hackathons").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get hackathon query: %w", err)
	}

	var h models.Hackathon
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&h.ID, &h.CreatedBy, &h.Title, &h.Description, &h.StartDate, &h.EndDate, &h.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrHackathonNotFound
		}
		return nil, fmt.Errorf("error retrieving hackathon: %w", err)
	}
	return &h, nil
}
