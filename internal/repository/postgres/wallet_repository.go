package postgres

import (
	"context"
	"errors"
	"fmt"

	"escrow-service/internal/model"
	"escrow-service/internal/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

var _ repository.WalletRepository = (*WalletRepositoryImpl)(nil)

// WalletRepositoryImpl is the PostgreSQL implementation of WalletRepository
type WalletRepositoryImpl struct {
	*TransactionManager
}

func NewWalletRepository(pool *pgxpool.Pool) repository.WalletRepository {
	return &WalletRepositoryImpl{
		TransactionManager: NewTransactionManager(pool),
	}
}

func (r *WalletRepositoryImpl) GetOrCreateWallet(ctx context.Context, userID int64, tx ...pgx.Tx) (*model.Wallet, error) {
	insert := `INSERT INTO wallets (id, user_id) VALUES ($1, $2) ON CONFLICT (user_id) DO NOTHING`
	query := `SELECT id, user_id, balance, created_at, updated_at FROM wallets WHERE user_id = $1`

	executor := r.getExecutor(tx...)
	if _, err := executor.Exec(ctx, insert, uuid.NewString(), userID); err != nil {
		if violatesForeignKey(err) {
			return nil, model.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to create wallet: %w", err)
	}

	wallet := &model.Wallet{}
	err := executor.QueryRow(ctx, query, userID).Scan(&wallet.ID, &wallet.UserID, &wallet.Balance, &wallet.CreatedAt, &wallet.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to get wallet: %w", err)
	}
	return wallet, nil
}

// GetWalletForUpdate retrieves a wallet with row-level lock
func (r *WalletRepositoryImpl) GetWalletForUpdate(ctx context.Context, userID int64, tx pgx.Tx) (*model.Wallet, error) {
	query := `SELECT id, user_id, balance, created_at, updated_at FROM wallets WHERE user_id = $1 FOR UPDATE`

	wallet := &model.Wallet{}
	err := tx.QueryRow(ctx, query, userID).Scan(&wallet.ID, &wallet.UserID, &wallet.Balance, &wallet.CreatedAt, &wallet.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrWalletNotFound
		}
		return nil, fmt.Errorf("failed to get wallet for update: %w", err)
	}
	return wallet, nil
}

// UpdateBalance update wallet balance
func (r *WalletRepositoryImpl) UpdateBalance(ctx context.Context, walletID string, balance decimal.Decimal, tx pgx.Tx) error {
	query := `
        UPDATE wallets
        SET balance = $1, updated_at = NOW()
        WHERE id = $2`

	commandTag, err := tx.Exec(ctx, query, balance, walletID)
	if err != nil {
		// CONSTRAINT wallets_balance_non_negative CHECK (balance >= 0)
		if checkViolation(err, "wallets_balance_non_negative") {
			return model.ErrInsufficientFunds
		}
		if numericOverflow(err) {
			return fmt.Errorf("%w: balance exceeds the storable limit", model.ErrInvalidAmount)
		}
		return fmt.Errorf("failed to update balance: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return model.ErrWalletNotFound
	}
	return nil
}

func (r *WalletRepositoryImpl) InsertWalletTransaction(ctx context.Context, entry *model.WalletTransaction, tx pgx.Tx) error {
	query := `
        INSERT INTO wallet_transactions (id, wallet_id, transaction_id, amount, direction, type, metadata)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING created_at`

	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	metadata := entry.Metadata
	if metadata == nil {
		metadata = map[string]string{}
	}

	err := tx.QueryRow(ctx, query, entry.ID, entry.WalletID, entry.TransactionID, entry.Amount, entry.Direction, entry.Type, metadata).
		Scan(&entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert wallet transaction: %w", err)
	}
	return nil
}

func (r *WalletRepositoryImpl) GetWalletTransactions(ctx context.Context, walletID string, limit, offset int) ([]*model.WalletTransaction, error) {
	query := `
        SELECT id, wallet_id, transaction_id, amount, direction, type, metadata, created_at
        FROM wallet_transactions
        WHERE wallet_id = $1
        ORDER BY created_at DESC
        LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, walletID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query wallet transactions: %w", err)
	}
	entries, err := collectRows(rows, func(row rowScanner) (*model.WalletTransaction, error) {
		e := &model.WalletTransaction{}
		err := row.Scan(&e.ID, &e.WalletID, &e.TransactionID, &e.Amount, &e.Direction, &e.Type, &e.Metadata, &e.CreatedAt)
		return e, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan wallet transaction: %w", err)
	}
	return entries, nil
}
