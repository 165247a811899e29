package service

import (
	"context"
	"fmt"

	"escrow-service/internal/model"
	"escrow-service/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

type WalletServiceImpl struct {
	walletRepo repository.WalletRepository
	dbManager  repository.DBManager
	logger     zerolog.Logger
}

func NewWalletService(walletRepo repository.WalletRepository, dbManager repository.DBManager, logger zerolog.Logger) WalletService {
	return &WalletServiceImpl{
		walletRepo: walletRepo,
		dbManager:  dbManager,
		logger:     logger,
	}
}

func (s *WalletServiceImpl) GetWallet(ctx context.Context, userID int64) (*model.Wallet, error) {
	wallet, err := s.walletRepo.GetOrCreateWallet(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get wallet: %w", err)
	}
	return wallet, nil
}

func (s *WalletServiceImpl) Deposit(ctx context.Context, userID int64, amount decimal.Decimal, transactionID, kind string) (*model.Wallet, error) {
	if kind == "" {
		kind = "deposit"
	}
	return s.apply(ctx, userID, amount, model.DirectionIn, transactionID, kind)
}

func (s *WalletServiceImpl) Withdraw(ctx context.Context, userID int64, amount decimal.Decimal, transactionID, kind string) (*model.Wallet, error) {
	if kind == "" {
		kind = "withdrawal"
	}
	return s.apply(ctx, userID, amount, model.DirectionOut, transactionID, kind)
}

// apply moves amount in or out of the wallet under a row lock and appends a ledger entry
func (s *WalletServiceImpl) apply(
	ctx context.Context,
	userID int64,
	amount decimal.Decimal,
	direction model.WalletDirection,
	transactionID, kind string,
) (*model.Wallet, error) {
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", model.ErrInvalidAmount)
	}

	var result *model.Wallet
	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		if _, err := s.walletRepo.GetOrCreateWallet(ctx, userID, tx); err != nil {
			return fmt.Errorf("get wallet: %w", err)
		}
		wallet, err := s.walletRepo.GetWalletForUpdate(ctx, userID, tx)
		if err != nil {
			return fmt.Errorf("get wallet for update: %w", err)
		}

		newBalance := wallet.Balance.Add(amount)
		if direction == model.DirectionOut {
			if wallet.Balance.LessThan(amount) {
				s.logger.Warn().
					Int64("user_id", userID).
					Str("balance", wallet.Balance.String()).
					Str("amount", amount.String()).
					Str("reason", string(model.ReasonInsufficientFunds)).
					Msg("withdrawal rejected")
				return model.ErrInsufficientFunds
			}
			newBalance = wallet.Balance.Sub(amount)
		}

		if err := s.walletRepo.UpdateBalance(ctx, wallet.ID, newBalance, tx); err != nil {
			return fmt.Errorf("update balance: %w", err)
		}

		entry := &model.WalletTransaction{
			WalletID:  wallet.ID,
			Amount:    amount,
			Direction: direction,
			Type:      kind,
		}
		if transactionID != "" {
			entry.TransactionID = &transactionID
		}
		if err := s.walletRepo.InsertWalletTransaction(ctx, entry, tx); err != nil {
			return fmt.Errorf("insert wallet transaction: %w", err)
		}

		s.logger.Info().
			Int64("user_id", userID).
			Str("wallet_id", wallet.ID).
			Str("direction", string(direction)).
			Str("amount", amount.String()).
			Str("old_balance", wallet.Balance.String()).
			Str("new_balance", newBalance.String()).
			Msg("wallet balance updated")

		wallet.Balance = newBalance
		result = wallet
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *WalletServiceImpl) ListWalletTransactions(ctx context.Context, userID int64, limit, offset int) ([]*model.WalletTransaction, error) {
	wallet, err := s.walletRepo.GetOrCreateWallet(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get wallet: %w", err)
	}
	entries, err := s.walletRepo.GetWalletTransactions(ctx, wallet.ID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("get wallet transactions: %w", err)
	}
	return entries, nil
}
