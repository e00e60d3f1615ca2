package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/skillsync/skillsync/internal/pkg/apperrors"
	"github.com/skillsync/skillsync/internal/pkg/dberrors"
	"github.com/skillsync/skillsync/internal/pkg/logger"
)

// NoteRatingRepository handles database operations for note ratings
type NoteRatingRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewNoteRatingRepository creates a new NoteRatingRepository
func NewNoteRatingRepository(db *pgxpool.Pool) *NoteRatingRepository {
	return &NoteRatingRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Upsert records a user's rating of a note. A second rating by the
// same user replaces the first; the (note, user) unique constraint
// makes this safe under concurrent submissions.
func (r *NoteRatingRepository) Upsert(ctx context.Context, noteID, userID int64, rating int) error {
	sql, args, err := r.sb.Insert("note_ratings").
		Columns("note_id", "user_id", "rating").
		Values(noteID, userID, rating).
		Suffix("ON CONFLICT (note_id, user_id) DO UPDATE SET rating = EXCLUDED.rating, updated_at = NOW()").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building upsert rating SQL")
		return fmt.Errorf("failed to build upsert rating query: %w", err)
	}

	_, err = r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrNoteNotFound
		}
		logger.Error().Err(err).Int64("noteID", noteID).Int64("userID", userID).Msg("Error executing upsert rating query")
		return fmt.Errorf("error rating note: %w", err)
	}
	return nil
}

// GetAverage returns a note's average rating rounded to one decimal
// together with the number of ratings. The average is nil when the
// note has no ratings yet.
func (r *NoteRatingRepository) GetAverage(ctx context.Context, noteID int64) (*float64, int, error) {
	sql, args, err := r.sb.Select(
		"ROUND(AVG(rating)::numeric, 1)::float8",
		"COUNT(*)",
	).
		From("note_ratings").
		Where(squirrel.Eq{"note_id": noteID}).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build average rating query: %w", err)
	}

	var avg *float64
	var count int
	err = r.db.QueryRow(ctx, sql, args...).Scan(&avg, &count)
	if err != nil {
		logger.Error().Err(err).Int64("noteID", noteID).Msg("Error executing average rating query")
		return nil, 0, fmt.Errorf("error retrieving average rating: %w", err)
	}
	return avg, count, nil
}
