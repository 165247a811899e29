package postgres

import (
	"context"
	"errors"
	"fmt"

	"escrow-service/internal/model"
	"escrow-service/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var _ repository.ModeratorRepository = (*ModeratorRepositoryImpl)(nil)

type ModeratorRepositoryImpl struct {
	*TransactionManager
}

func NewModeratorRepository(pool *pgxpool.Pool) repository.ModeratorRepository {
	return &ModeratorRepositoryImpl{
		TransactionManager: NewTransactionManager(pool),
	}
}

const moderatorColumns = `id, username, full_name, role_level, specialization, languages, cases_handled, cases_resolved,
        average_resolution_time, satisfaction_rating, is_active, is_available, current_case_load, max_case_load,
        joined_at, last_active`

func scanModerator(row rowScanner) (*model.Moderator, error) {
	m := &model.Moderator{}
	err := row.Scan(&m.ID, &m.Username, &m.FullName, &m.RoleLevel, &m.Specialization, &m.Languages, &m.CasesHandled,
		&m.CasesResolved, &m.AverageResolutionTime, &m.SatisfactionRating, &m.IsActive, &m.IsAvailable,
		&m.CurrentCaseLoad, &m.MaxCaseLoad, &m.JoinedAt, &m.LastActive)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (r *ModeratorRepositoryImpl) InsertModerator(ctx context.Context, moderator *model.Moderator) error {
	query := `
        INSERT INTO moderators (id, username, full_name, role_level, specialization, languages, max_case_load)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING is_active, is_available, joined_at, last_active`

	err := r.pool.QueryRow(ctx, query, moderator.ID, moderator.Username, moderator.FullName, moderator.RoleLevel,
		moderator.Specialization, moderator.Languages, moderator.MaxCaseLoad).
		Scan(&moderator.IsActive, &moderator.IsAvailable, &moderator.JoinedAt, &moderator.LastActive)
	if err != nil {
		if uniqueViolation(err) {
			return model.ErrDuplicateModerator
		}
		return fmt.Errorf("failed to insert moderator: %w", err)
	}
	return nil
}

func (r *ModeratorRepositoryImpl) GetModerator(ctx context.Context, moderatorID string, tx ...pgx.Tx) (*model.Moderator, error) {
	query := `SELECT ` + moderatorColumns + ` FROM moderators WHERE id = $1`

	m, err := scanModerator(r.getExecutor(tx...).QueryRow(ctx, query, moderatorID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrModeratorNotFound
		}
		return nil, fmt.Errorf("failed to get moderator: %w", err)
	}
	return m, nil
}

func (r *ModeratorRepositoryImpl) GetModeratorForUpdate(ctx context.Context, moderatorID string, tx pgx.Tx) (*model.Moderator, error) {
	query := `SELECT ` + moderatorColumns + ` FROM moderators WHERE id = $1 FOR UPDATE`

	m, err := scanModerator(tx.QueryRow(ctx, query, moderatorID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrModeratorNotFound
		}
		return nil, fmt.Errorf("failed to get moderator for update: %w", err)
	}
	return m, nil
}

// GetAvailableModerators lists candidates in registration order; selection happens in the service
func (r *ModeratorRepositoryImpl) GetAvailableModerators(ctx context.Context, tx pgx.Tx) ([]*model.Moderator, error) {
	query := `
        SELECT ` + moderatorColumns + `
        FROM moderators
        WHERE is_active AND is_available AND current_case_load < max_case_load
        ORDER BY joined_at, id`

	rows, err := r.getExecutor(tx).Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query available moderators: %w", err)
	}
	moderators, err := collectRows(rows, scanModerator)
	if err != nil {
		return nil, fmt.Errorf("failed to scan moderator: %w", err)
	}
	return moderators, nil
}

func (r *ModeratorRepositoryImpl) ReserveCase(ctx context.Context, moderatorID string, tx pgx.Tx) (bool, error) {
	query := `
		UPDATE moderators
		SET current_case_load = current_case_load + 1,
		    cases_handled = cases_handled + 1,
		    last_active = NOW()
		WHERE id = $1
		  AND is_active AND is_available
		  AND current_case_load < max_case_load`

	result, err := tx.Exec(ctx, query, moderatorID)
	if err != nil {
		return false, fmt.Errorf("failed to reserve moderator case: %w", err)
	}
	return result.RowsAffected() == 1, nil
}

func (r *ModeratorRepositoryImpl) ReleaseCase(ctx context.Context, moderatorID string, tx pgx.Tx) error {
	query := `UPDATE moderators SET current_case_load = GREATEST(current_case_load - 1, 0) WHERE id = $1`

	if _, err := tx.Exec(ctx, query, moderatorID); err != nil {
		return fmt.Errorf("failed to release moderator case: %w", err)
	}
	return nil
}

func (r *ModeratorRepositoryImpl) RecordResolution(ctx context.Context, moderatorID string, casesResolved int, avgResolutionHours float64, tx pgx.Tx) error {
	query := `
		UPDATE moderators
		SET cases_resolved = $1, average_resolution_time = $2, last_active = NOW()
		WHERE id = $3`

	result, err := tx.Exec(ctx, query, casesResolved, avgResolutionHours, moderatorID)
	if err != nil {
		return fmt.Errorf("failed to record moderator resolution: %w", err)
	}
	if result.RowsAffected() == 0 {
		return model.ErrModeratorNotFound
	}
	return nil
}

func (r *ModeratorRepositoryImpl) SetAvailability(ctx context.Context, moderatorID string, available bool) error {
	query := `UPDATE moderators SET is_available = $1, last_active = NOW() WHERE id = $2`

	result, err := r.pool.Exec(ctx, query, available, moderatorID)
	if err != nil {
		return fmt.Errorf("failed to set moderator availability: %w", err)
	}
	if result.RowsAffected() == 0 {
		return model.ErrModeratorNotFound
	}
	return nil
}
