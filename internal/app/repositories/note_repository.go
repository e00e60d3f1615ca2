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

// NoteDetails is a note joined with its uploader's handle and the live
// rating aggregate. AverageRating is nil for unrated notes.
type NoteDetails struct {
	ID            int64     `db:"id" json:"id"`
	UserID        int64     `db:"user_id" json:"userId"`
	Username      string    `db:"username" json:"username"`
	Title         string    `db:"title" json:"title"`
	FileURL       string    `db:"file_url" json:"fileUrl"`
	AverageRating *float64  `db:"average_rating" json:"averageRating,omitempty"`
	RatingCount   int       `db:"rating_count" json:"ratingCount"`
	CreatedAt     time.Time `db:"created_at" json:"createdAt"`
}

// NoteRepository handles database operations for uploaded notes
type NoteRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewNoteRepository creates a new NoteRepository
func NewNoteRepository(db *pgxpool.Pool) *NoteRepository {
	return &NoteRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new note and sets its generated ID
func (r *NoteRepository) Create(ctx context.Context, note *models.Note) error {
	sql, args, err := r.sb.Insert("notes").
		Columns("user_id", "title", "file_url").
		Values(note.UserID, note.Title, note.FileURL).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create note SQL")
		return fmt.Errorf("failed to build create note query: %w", err)
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&note.ID, &note.CreatedAt)
	if err != nil {
		logger.Error().Err(err).Int64("userID", note.UserID).Msg("Error executing create note query")
		return fmt.Errorf("error creating note: %w", err)
	}
	return nil
}

// GetAll retrieves a newest-first page of notes with rating aggregates.
// The average is rounded to one decimal in SQL so list and detail views
// agree with the scoring pipeline.
func (r *NoteRepository) GetAll(ctx context.Context, page, pageSize int) ([]*NoteDetails, int64, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, pageSize)

	sql, args, err := r.sb.Select(
		"n.id", "n.user_id", "u.username", "n.title", "n.file_url",
		"ROUND(AVG(nr.rating)::numeric, 1)::float8 AS average_rating",
		"COUNT(nr.id) AS rating_count",
		"n.created_at",
	).
		From("notes n").
		Join("users u ON n.user_id = u.id").
		LeftJoin("note_ratings nr ON nr.note_id = n.id").
		GroupBy("n.id", "u.username").
		OrderBy("n.created_at DESC", "n.id DESC").
		Limit(uint64(limit)).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build get notes query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error executing get notes query: %w", err)
	}
	defer rows.Close()

	var notes []*NoteDetails
	for rows.Next() {
		var n NoteDetails
		if err := rows.Scan(&n.ID, &n.UserID, &n.Username, &n.Title, &n.FileURL, &n.AverageRating, &n.RatingCount, &n.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("error scanning note row: %w", err)
		}
		notes = append(notes, &n)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating note rows: %w", err)
	}

	countSQL, countArgs, err := r.sb.Select("COUNT(*)").From("notes").ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count notes query: %w", err)
	}
	var total int64
	if err := r.db.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting notes: %w", err)
	}

	return notes, total, nil
}

// GetByID retrieves a single note
func (r *NoteRepository) GetByID(ctx context.Context, id int64) (*models.Note, error) {
	sql, args, err := r.sb.Select("id", "user_id", "title", "file_url", "created_at").
		From("notes").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get note query: %w", err)
	}

	var note models.Note
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&note.ID, &note.UserID, &note.Title, &note.FileURL, &note.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNoteNotFound
		}
		return nil, fmt.Errorf("error retrieving note: %w", err)
	}
	return &note, nil
}
