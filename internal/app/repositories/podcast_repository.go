package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/skillsync/skillsync/internal/app/models"
	"github.com/skillsync/skillsync/internal/pkg/helpers"
	"github.com/skillsync/skillsync/internal/pkg/logger"
)

// PodcastDetails is a podcast joined with its uploader's handle.
type PodcastDetails struct {
	ID        int64     `db:"id" json:"id"`
	UserID    int64     `db:"user_id" json:"userId"`
	Username  string    `db:"username" json:"username"`
	Title     string    `db:"title" json:"title"`
	Language  string    `db:"language" json:"language"`
	FileURL   string    `db:"file_url" json:"fileUrl"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// PodcastRepository handles database operations for podcasts
type PodcastRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewPodcastRepository creates a new PodcastRepository
func NewPodcastRepository(db *pgxpool.Pool) *PodcastRepository {
	return &PodcastRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new podcast and sets its generated ID
func (r *PodcastRepository) Create(ctx context.Context, podcast *models.Podcast) error {
	sql, args, err := r.sb.Insert("podcasts").
		Columns("user_id", "title", "language", "file_url").
		Values(podcast.UserID, podcast.Title, podcast.Language, podcast.FileURL).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create podcast SQL")
		return fmt.Errorf("failed to build create podcast query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&podcast.ID, &podcast.CreatedAt)
	if err != nil {
		logger.Error().Err(err).Int64("userID", podcast.UserID).Msg("Error executing create podcast query")
		return fmt.Errorf("error creating podcast: %w", err)
	}
	return nil
}

// GetAll retrieves a newest-first page of podcasts, optionally
// filtered by language.
func (r *PodcastRepository) GetAll(ctx context.Context, language *string, page, pageSize int) ([]*PodcastDetails, int64, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, pageSize)

	builder := r.sb.Select("p.id", "p.user_id", "u.username", "p.title", "p.language", "p.file_url", "p.created_at").
		From("podcasts p").
		Join("users u ON p.user_id = u.id")
	countBuilder := r.sb.Select("COUNT(*)").From("podcasts p")

	if language != nil && *language != "" {
		builder = builder.Where(squirrel.Eq{"p.language": *language})
		countBuilder = countBuilder.Where(squirrel.Eq{"p.language": *language})
	}

	sql, args, err := builder.
		OrderBy("p.created_at DESC", "p.id DESC").
		Limit(uint64(limit)).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build get podcasts query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error executing get podcasts query: %w", err)
	}
	defer rows.Close()

	var podcasts []*PodcastDetails
	for rows.Next() {
		var p PodcastDetails
		if err := rows.Scan(&p.ID, &p.UserID, &p.Username, &p.Title, &p.Language, &p.FileURL, &p.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("error scanning podcast row: %w", err)
		}
		podcasts = append(podcasts, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating podcast rows: %w", err)
	}

	countSQL, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count podcasts query: %w", err)
	}
	var total int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting podcasts: %w", err)
	}

	return podcasts, total, nil
}
