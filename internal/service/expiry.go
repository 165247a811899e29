package service

import (
	"context"
	"fmt"
	"time"

	"escrow-service/internal/metrics"
	"escrow-service/internal/model"
	"escrow-service/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

type ExpiryServiceImpl struct {
	transactionRepo repository.TransactionRepository
	dbManager       repository.DBManager
	timeout         time.Duration
	batchSize       int
	logger          zerolog.Logger
	now             func() time.Time
}

func NewExpiryService(
	transactionRepo repository.TransactionRepository,
	dbManager repository.DBManager,
	timeout time.Duration,
	batchSize int,
	logger zerolog.Logger,
) ExpiryService {
	return &ExpiryServiceImpl{
		transactionRepo: transactionRepo,
		dbManager:       dbManager,
		timeout:         timeout,
		batchSize:       batchSize,
		logger:          logger,
		now:             time.Now,
	}
}

// ExpireStaleTransactions cancels unpaid transactions older than the timeout, one row per DB transaction
func (s *ExpiryServiceImpl) ExpireStaleTransactions(ctx context.Context) (int, error) {
	cutoff := s.now().Add(-s.timeout)

	transactions, err := s.transactionRepo.GetExpiredTransactions(ctx, cutoff, s.batchSize)
	if err != nil {
		return 0, fmt.Errorf("get expired transactions: %w", err)
	}

	if len(transactions) == 0 {
		s.logger.Debug().Time("cutoff", cutoff).Msg("no stale transactions to expire")
		return 0, nil
	}

	var expired int
	for _, trans := range transactions {
		select {
		case <-ctx.Done():
			return expired, ctx.Err()
		default:
		}

		var cancelled bool
		err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
			locked, err := s.transactionRepo.LockTransactionForExpiry(ctx, trans.ID, cutoff, tx)
			if err != nil {
				return fmt.Errorf("lock transaction for expiry: %w", err)
			}
			if !locked {
				s.logger.Debug().Str("transaction_id", trans.ID).Msg("transaction already claimed or no longer pending")
				return nil
			}

			updated, err := s.transactionRepo.TransitionStatus(ctx, trans, model.StatusCreated, model.StatusCancelled, tx)
			if err != nil {
				return fmt.Errorf("cancel transaction: %w", err)
			}
			if !updated {
				s.logger.Warn().Str("transaction_id", trans.ID).Msg("transaction status changed before expiry")
				return nil
			}

			cancelled = true
			return nil
		})
		if err != nil {
			s.logger.Error().
				Err(err).
				Str("transaction_id", trans.ID).
				Int64("seller_id", trans.SellerID).
				Msg("failed to expire transaction")
			continue
		}
		if !cancelled {
			continue
		}

		expired++
		metrics.TransactionsExpiredTotal.Inc()
		metrics.TransactionTransitionsTotal.WithLabelValues(string(model.StatusCancelled)).Inc()
		s.logger.Info().
			Str("transaction_id", trans.ID).
			Int64("seller_id", trans.SellerID).
			Time("created_at", trans.CreatedAt).
			Msg("unpaid transaction expired")
	}

	s.logger.Info().
		Int("requested", len(transactions)).
		Int("expired", expired).
		Msg("transaction expiry run completed")

	return expired, nil
}
