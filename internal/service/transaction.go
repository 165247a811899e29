package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"escrow-service/internal/config"
	"escrow-service/internal/idgen"
	"escrow-service/internal/metrics"
	"escrow-service/internal/model"
	"escrow-service/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const maxIDAttempts = 5

type EscrowServiceImpl struct {
	userRepo        repository.UserRepository
	transactionRepo repository.TransactionRepository
	dbManager       repository.DBManager
	trades          TradeRecorder
	cfg             config.EscrowConfig
	logger          zerolog.Logger
	newID           func() string
}

func NewEscrowService(
	userRepo repository.UserRepository,
	transactionRepo repository.TransactionRepository,
	dbManager repository.DBManager,
	trades TradeRecorder,
	cfg config.EscrowConfig,
	logger zerolog.Logger,
) EscrowService {
	return &EscrowServiceImpl{
		userRepo:        userRepo,
		transactionRepo: transactionRepo,
		dbManager:       dbManager,
		trades:          trades,
		cfg:             cfg,
		logger:          logger,
		newID:           idgen.TransactionID,
	}
}

// CalculateFee returns round(amount * percentage / 100, 2)
func CalculateFee(amount decimal.Decimal, percentage float64) decimal.Decimal {
	return amount.Mul(decimal.NewFromFloat(percentage)).Div(decimal.NewFromInt(100)).Round(2)
}

func (s *EscrowServiceImpl) CreateTransaction(ctx context.Context, in model.CreateTransactionInput) (*model.Transaction, error) {
	if _, err := s.userRepo.GetUser(ctx, in.SellerID); err != nil {
		return nil, s.reject(fmt.Errorf("get seller: %w", err), "", in.SellerID)
	}

	trans := &model.Transaction{
		Title:         in.Title,
		Description:   in.Description,
		Amount:        in.Amount,
		Fee:           CalculateFee(in.Amount, s.cfg.FeePercentage),
		PaymentMethod: in.PaymentMethod,
		SellerID:      in.SellerID,
		Status:        model.StatusCreated,
		Metadata:      in.Metadata,
	}

	var err error
	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		trans.ID = s.newID()
		err = s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
			return s.transactionRepo.InsertTransaction(ctx, trans, tx)
		})
		if !errors.Is(err, model.ErrDuplicateTransaction) {
			break
		}
		s.logger.Debug().Str("transaction_id", trans.ID).Int("attempt", attempt+1).Msg("transaction id collision, regenerating")
	}
	if err != nil {
		return nil, s.reject(fmt.Errorf("insert transaction: %w", err), trans.ID, in.SellerID)
	}

	metrics.TransactionTransitionsTotal.WithLabelValues(string(model.StatusCreated)).Inc()
	s.logger.Info().
		Str("transaction_id", trans.ID).
		Int64("seller_id", trans.SellerID).
		Str("amount", trans.Amount.String()).
		Str("fee", trans.Fee.StringFixed(2)).
		Str("total", trans.Total().String()).
		Msg("escrow transaction created")

	return trans, nil
}

func (s *EscrowServiceImpl) GetTransaction(ctx context.Context, transactionID string) (*model.Transaction, error) {
	trans, err := s.transactionRepo.GetTransaction(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("get transaction: %w", err)
	}
	return trans, nil
}

func (s *EscrowServiceImpl) ListUserTransactions(ctx context.Context, userID int64, limit, offset int) ([]*model.Transaction, error) {
	transactions, err := s.transactionRepo.GetTransactionsByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("get user transactions: %w", err)
	}
	return transactions, nil
}

// JoinAsBuyer attaches the buyer to a created transaction. Joining twice as the same buyer is a no-op.
func (s *EscrowServiceImpl) JoinAsBuyer(ctx context.Context, transactionID string, buyerID int64) (*model.Transaction, error) {
	var result *model.Transaction

	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		trans, err := s.transactionRepo.GetTransactionForUpdate(ctx, transactionID, tx)
		if err != nil {
			return fmt.Errorf("get transaction for update: %w", err)
		}
		if err := s.attachBuyer(ctx, trans, buyerID, tx); err != nil {
			return err
		}
		result = trans
		return nil
	})
	if err != nil {
		return nil, s.reject(err, transactionID, buyerID)
	}
	return result, nil
}

func (s *EscrowServiceImpl) attachBuyer(ctx context.Context, trans *model.Transaction, buyerID int64, tx pgx.Tx) error {
	if trans.IsBuyer(buyerID) {
		return nil
	}
	if trans.IsSeller(buyerID) {
		return model.ErrSellerCannotBuy
	}
	if trans.BuyerID != nil {
		return model.ErrBuyerAlreadySet
	}
	if trans.Status != model.StatusCreated {
		return fmt.Errorf("%w: cannot join a %s transaction", model.ErrInvalidStatus, trans.Status)
	}
	if _, err := s.userRepo.GetUser(ctx, buyerID, tx); err != nil {
		return fmt.Errorf("get buyer: %w", err)
	}

	attached, err := s.transactionRepo.SetBuyer(ctx, trans.ID, buyerID, tx)
	if err != nil {
		return fmt.Errorf("set buyer: %w", err)
	}
	if !attached {
		return model.ErrBuyerAlreadySet
	}
	trans.BuyerID = &buyerID

	s.logger.Info().Str("transaction_id", trans.ID).Int64("buyer_id", buyerID).Msg("buyer joined transaction")
	return nil
}

// ConfirmPayment is the buyer reporting the payment as sent. A caller paying a transaction
// that has no buyer yet becomes its buyer.
func (s *EscrowServiceImpl) ConfirmPayment(ctx context.Context, transactionID string, buyerID int64) (*model.Transaction, error) {
	return s.transition(ctx, transactionID, buyerID, model.StatusCreated, model.StatusFunded,
		func(ctx context.Context, trans *model.Transaction, tx pgx.Tx) error {
			if trans.BuyerID == nil && !trans.IsSeller(buyerID) && trans.Status == model.StatusCreated {
				return s.attachBuyer(ctx, trans, buyerID, tx)
			}
			if !trans.IsBuyer(buyerID) {
				return model.ErrNotBuyer
			}
			return nil
		})
}

// ConfirmReceipt is the seller acknowledging the funds arrived
func (s *EscrowServiceImpl) ConfirmReceipt(ctx context.Context, transactionID string, sellerID int64) (*model.Transaction, error) {
	return s.transition(ctx, transactionID, sellerID, model.StatusFunded, model.StatusConfirmed, sellerOnly(sellerID))
}

// Complete releases the escrow once the buyer has received the goods
func (s *EscrowServiceImpl) Complete(ctx context.Context, transactionID string, buyerID int64) (*model.Transaction, error) {
	trans, err := s.transition(ctx, transactionID, buyerID, model.StatusConfirmed, model.StatusCompleted, buyerOnly(buyerID))
	if err != nil {
		return nil, err
	}

	s.recordTrade(ctx, trans.ID, trans.SellerID, true)
	if trans.BuyerID != nil {
		s.recordTrade(ctx, trans.ID, *trans.BuyerID, true)
	}
	return trans, nil
}

// Cancel withdraws a transaction that was never funded
func (s *EscrowServiceImpl) Cancel(ctx context.Context, transactionID string, userID int64) (*model.Transaction, error) {
	return s.transition(ctx, transactionID, userID, model.StatusCreated, model.StatusCancelled,
		func(_ context.Context, trans *model.Transaction, _ pgx.Tx) error {
			if _, ok := trans.RoleOf(userID); !ok {
				return model.ErrNotParticipant
			}
			return nil
		})
}

type authorizeFunc func(ctx context.Context, trans *model.Transaction, tx pgx.Tx) error

func sellerOnly(userID int64) authorizeFunc {
	return func(_ context.Context, trans *model.Transaction, _ pgx.Tx) error {
		if !trans.IsSeller(userID) {
			return model.ErrNotSeller
		}
		return nil
	}
}

func buyerOnly(userID int64) authorizeFunc {
	return func(_ context.Context, trans *model.Transaction, _ pgx.Tx) error {
		if !trans.IsBuyer(userID) {
			return model.ErrNotBuyer
		}
		return nil
	}
}

// transition checks existence, then the caller, then the status, and applies a compare-and-swap update under a row lock
func (s *EscrowServiceImpl) transition(
	ctx context.Context,
	transactionID string,
	callerID int64,
	from, to model.TransactionStatus,
	authorize authorizeFunc,
) (*model.Transaction, error) {
	var result *model.Transaction

	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		trans, err := s.transactionRepo.GetTransactionForUpdate(ctx, transactionID, tx)
		if err != nil {
			return fmt.Errorf("get transaction for update: %w", err)
		}

		if err := authorize(ctx, trans, tx); err != nil {
			return err
		}

		if trans.Status != from || !model.ValidTransition(from, to) {
			return fmt.Errorf("%w: cannot move %s transaction to %s", model.ErrInvalidStatus, trans.Status, to)
		}

		updated, err := s.transactionRepo.TransitionStatus(ctx, trans, from, to, tx)
		if err != nil {
			return fmt.Errorf("transition status: %w", err)
		}
		if !updated {
			return fmt.Errorf("%w: transaction %s changed concurrently", model.ErrInvalidStatus, transactionID)
		}

		result = trans
		return nil
	})
	if err != nil {
		return nil, s.reject(err, transactionID, callerID)
	}

	metrics.TransactionTransitionsTotal.WithLabelValues(string(to)).Inc()
	s.logger.Info().
		Str("transaction_id", transactionID).
		Int64("user_id", callerID).
		Str("from", from.String()).
		Str("to", to.String()).
		Msg("transaction status changed")

	return result, nil
}

// reject logs rule violations at warn level and passes every error through unchanged
func (s *EscrowServiceImpl) reject(err error, transactionID string, userID int64) error {
	if model.IsRuleViolation(err) {
		reason := model.ReasonOf(err)
		metrics.RuleViolationsTotal.WithLabelValues(string(reason)).Inc()
		s.logger.Warn().
			Str("transaction_id", transactionID).
			Int64("user_id", userID).
			Str("reason", string(reason)).
			Msg(err.Error())
	}
	return err
}

// recordTrade feeds trade history after commit; a failure here never undoes the settlement
func (s *EscrowServiceImpl) recordTrade(ctx context.Context, transactionID string, userID int64, successful bool) {
	if s.trades == nil {
		return
	}
	if err := s.trades.RecordTradeCompletion(ctx, strconv.FormatInt(userID, 10), successful); err != nil {
		s.logger.Error().Err(err).
			Str("transaction_id", transactionID).
			Int64("user_id", userID).
			Msg("failed to record trade in trust profile")
	}
}
