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

// Ensure implementation satisfies interface at compile time
var _ repository.UserRepository = (*UserRepositoryImpl)(nil)

// UserRepositoryImpl is the PostgreSQL implementation of UserRepository
type UserRepositoryImpl struct {
	*TransactionManager
}

func NewUserRepository(pool *pgxpool.Pool) repository.UserRepository {
	return &UserRepositoryImpl{
		TransactionManager: NewTransactionManager(pool),
	}
}

// InsertUser registers a user unless the id is already taken
func (r *UserRepositoryImpl) InsertUser(ctx context.Context, user *model.User, tx pgx.Tx) (bool, error) {
	query := `
        INSERT INTO users (id, username, display_name)
        VALUES ($1, $2, $3)
        ON CONFLICT (id) DO NOTHING
        RETURNING is_active, created_at`

	err := tx.QueryRow(ctx, query, user.ID, user.Username, user.DisplayName).Scan(&user.IsActive, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to insert user: %w", err)
	}
	return true, nil
}

// GetUser retrieves a user by id
func (r *UserRepositoryImpl) GetUser(ctx context.Context, userID int64, tx ...pgx.Tx) (*model.User, error) {
	query := `SELECT id, username, display_name, is_active, created_at FROM users WHERE id = $1`

	user := &model.User{}
	executor := r.getExecutor(tx...)
	err := executor.QueryRow(ctx, query, userID).Scan(&user.ID, &user.Username, &user.DisplayName, &user.IsActive, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}
