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
)

// HackathonParticipantRepository handles database operations for hackathon participation
type HackathonParticipantRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewHackathonParticipantRepository creates a new HackathonParticipantRepository
func NewHackathonParticipantRepository(db *pgxpool.Pool) *HackathonParticipantRepository {
	return &HackathonParticipantRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Join registers a user for a hackathon. The unique (hackathon, user)
// constraint maps duplicates to ErrAlreadyJoined.
func (r *HackathonParticipantRepository) Join(ctx context.Context, hackathonID, userID int64) error {
	sql, args, err := r.sb.Insert("hackathon_participants").
		Columns("hackathon_id", "user_id").
		Values(hackathonID, userID).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build join hackathon query: %w", err)
	}

	_, err = r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "hackathon_participants_hackathon_id_user_id_key") {
			return apperrors.ErrAlreadyJoined
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrHackathonNotFound
		}
		return fmt.Errorf("error joining hackathon: %w", err)
	}
	return nil
}

// IsParticipant checks whether a user has joined a hackathon
func (r *HackathonParticipantRepository) IsParticipant(ctx context.Context, hackathonID, userID int64) (bool, error) {
	sql, args, err := r.sb.Select("1").
		From("hackathon_participants").
		Where(squirrel.Eq{"hackathon_id": hackathonID, "user_id": userID}).
		Limit(1).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build is participant query: %w", err)
	}

	var exists int
	err = r.db.QueryRow(ctx, sql, args...).Scan(&exists)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("error checking hackathon participation: %w", err)
	}
	return true, nil
}

// GetParticipantCountsByHackathonIDs retrieves participant counts for multiple hackathons
func (r *HackathonParticipantRepository) GetParticipantCountsByHackathonIDs(ctx context.Context, hackathonIDs []int64) (map[int64]int, error) {
	if len(hackathonIDs) == 0 {
		return make(map[int64]int), nil
	}

	sql, args, err := r.sb.Select("hackathon_id", "COUNT(*)").
		From("hackathon_participants").
		Where(squirrel.Eq{"hackathon_id": hackathonIDs}).
		GroupBy("hackathon_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build participant counts query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing participant counts query: %w", err)
	}
	defer rows.Close()

	counts := make(map[int64]int)
	for rows.Next() {
		var hackathonID int64
		var count int
		if err := rows.Scan(&hackathonID, &count); err != nil {
			return nil, fmt.Errorf("error scanning participant count row: %w", err)
		}
		counts[hackathonID] = count
	}
	return counts, rows.Err()
}

// GetHackathonIDsByUserID retrieves the hackathons a user has joined
func (r *HackathonParticipantRepository) GetHackathonIDsByUserID(ctx context.Context, userID int64) ([]int64, error) {
	sql, args, err := r.sb.Select("hackathon_id").
		From("hackathon_participants").
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build hackathon IDs query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing hackathon IDs query: %w", err)
	}
	defer rows.Close()

	var hackathonIDs []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("error scanning hackathon ID: %w", err)
		}
		hackathonIDs = append(hackathonIDs, id)
	}
	return hackathonIDs, rows.Err()
}
