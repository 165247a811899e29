package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"escrow-service/internal/model"
	"escrow-service/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Ensure implementation satisfies interface at compile time
var _ repository.TransactionRepository = (*TransactionRepositoryImpl)(nil)

// TransactionRepositoryImpl is the PostgreSQL implementation of TransactionRepository
type TransactionRepositoryImpl struct {
	*TransactionManager
}

func NewTransactionRepository(pool *pgxpool.Pool) repository.TransactionRepository {
	return &TransactionRepositoryImpl{
		TransactionManager: NewTransactionManager(pool),
	}
}

const transactionColumns = `id, title, description, amount, fee, payment_method, seller_id, buyer_id, status,
        metadata, created_at, updated_at, completed_at`

func scanTransaction(row rowScanner) (*model.Transaction, error) {
	trans := &model.Transaction{}
	err := row.Scan(&trans.ID, &trans.Title, &trans.Description, &trans.Amount, &trans.Fee, &trans.PaymentMethod,
		&trans.SellerID, &trans.BuyerID, &trans.Status, &trans.Metadata, &trans.CreatedAt, &trans.UpdatedAt, &trans.CompletedAt)
	if err != nil {
		return nil, err
	}
	return trans, nil
}

// InsertTransaction creates a new transaction record
func (r *TransactionRepositoryImpl) InsertTransaction(ctx context.Context, trans *model.Transaction, tx pgx.Tx) error {
	query := `
        INSERT INTO transactions (id, title, description, amount, fee, payment_method, seller_id, buyer_id, status, metadata)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        RETURNING created_at, updated_at`

	metadata := trans.Metadata
	if metadata == nil {
		metadata = map[string]string{}
	}

	err := tx.QueryRow(ctx, query, trans.ID, trans.Title, trans.Description, trans.Amount, trans.Fee, trans.PaymentMethod,
		trans.SellerID, trans.BuyerID, trans.Status, metadata).
		Scan(&trans.CreatedAt, &trans.UpdatedAt)
	if err != nil {
		if uniqueViolation(err, "transactions_pkey") {
			return model.ErrDuplicateTransaction
		}
		return fmt.Errorf("failed to insert transaction: %w", err)
	}
	return nil
}

// GetTransaction retrieves a transaction by its id
func (r *TransactionRepositoryImpl) GetTransaction(ctx context.Context, transactionID string, tx ...pgx.Tx) (*model.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1`

	executor := r.getExecutor(tx...)
	trans, err := scanTransaction(executor.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return trans, nil
}

// GetTransactionForUpdate retrieves a transaction with row-level lock
func (r *TransactionRepositoryImpl) GetTransactionForUpdate(ctx context.Context, transactionID string, tx pgx.Tx) (*model.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1 FOR UPDATE`

	trans, err := scanTransaction(tx.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction for update: %w", err)
	}
	return trans, nil
}

// GetTransactionsByUser retrieves paginated transactions for a user on either side of the trade
func (r *TransactionRepositoryImpl) GetTransactionsByUser(ctx context.Context, userID int64, limit, offset int) ([]*model.Transaction, error) {
	query := `
        SELECT ` + transactionColumns + `
        FROM transactions WHERE seller_id = $1 OR buyer_id = $1
        ORDER BY created_at DESC
        LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	transactions, err := collectRows(rows, scanTransaction)
	if err != nil {
		return nil, fmt.Errorf("failed to scan transaction: %w", err)
	}
	return transactions, nil
}

// TransitionStatus moves a transaction between statuses if it is still in the expected one
func (r *TransactionRepositoryImpl) TransitionStatus(ctx context.Context, trans *model.Transaction, from, to model.TransactionStatus, tx pgx.Tx) (bool, error) {
	query := `
		UPDATE transactions
		SET status = $1,
		    completed_at = CASE WHEN $1 = 'completed' THEN NOW() ELSE completed_at END,
		    updated_at = NOW()
		WHERE id = $2
		  AND status = $3
		RETURNING status, updated_at, completed_at`

	err := tx.QueryRow(ctx, query, string(to), trans.ID, string(from)).Scan(&trans.Status, &trans.UpdatedAt, &trans.CompletedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to update transaction status: %w", err)
	}
	return true, nil
}

// SetBuyer attaches a buyer if the slot is still empty
func (r *TransactionRepositoryImpl) SetBuyer(ctx context.Context, transactionID string, buyerID int64, tx pgx.Tx) (bool, error) {
	query := `
		UPDATE transactions
		SET buyer_id = $1, updated_at = NOW()
		WHERE id = $2
		  AND buyer_id IS NULL
		  AND status = 'created'`

	result, err := tx.Exec(ctx, query, buyerID, transactionID)
	if err != nil {
		return false, fmt.Errorf("failed to set buyer: %w", err)
	}
	return result.RowsAffected() == 1, nil
}

// GetExpiredTransactions retrieves the oldest created transactions past their deadline
func (r *TransactionRepositoryImpl) GetExpiredTransactions(ctx context.Context, cutoff time.Time, limit int) ([]*model.Transaction, error) {
	query := `
        SELECT ` + transactionColumns + `
        FROM transactions
        WHERE status = 'created' AND created_at < $1
        ORDER BY created_at
        LIMIT $2`

	rows, err := r.pool.Query(ctx, query, cutoff, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query expired transactions: %w", err)
	}
	transactions, err := collectRows(rows, scanTransaction)
	if err != nil {
		return nil, fmt.Errorf("failed to scan transaction: %w", err)
	}
	return transactions, nil
}

// LockTransactionForExpiry locks a transaction row for expiry if it's still created and past cutoff
func (r *TransactionRepositoryImpl) LockTransactionForExpiry(ctx context.Context, transactionID string, cutoff time.Time, tx pgx.Tx) (bool, error) {
	query := `SELECT id FROM transactions WHERE id = $1 AND status = 'created' AND created_at < $2 FOR UPDATE SKIP LOCKED`

	var lockedID string
	err := tx.QueryRow(ctx, query, transactionID, cutoff).Scan(&lockedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to lock transaction for expiry: %w", err)
	}
	return true, nil
}
