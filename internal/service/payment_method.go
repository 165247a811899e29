package service

import (
	"context"
	"fmt"
	"strings"

	"escrow-service/internal/model"
	"escrow-service/internal/repository"
	"escrow-service/internal/validation"

	"github.com/rs/zerolog"
)

type PaymentMethodServiceImpl struct {
	userRepo          repository.UserRepository
	paymentMethodRepo repository.PaymentMethodRepository
	logger            zerolog.Logger
}

func NewPaymentMethodService(userRepo repository.UserRepository, paymentMethodRepo repository.PaymentMethodRepository, logger zerolog.Logger) PaymentMethodService {
	return &PaymentMethodServiceImpl{
		userRepo:          userRepo,
		paymentMethodRepo: paymentMethodRepo,
		logger:            logger,
	}
}

func (s *PaymentMethodServiceImpl) AddPaymentMethod(ctx context.Context, in model.AddPaymentMethodInput) (*model.PaymentMethod, error) {
	if err := validation.Text(in.Name, 1, 64); err != nil {
		return nil, err
	}
	kind, err := model.ParsePaymentMethodType(string(in.Type))
	if err != nil {
		return nil, err
	}
	if kind == model.PaymentCrypto && in.Address != "" {
		if err := validation.CryptoAddress(in.Name, in.Address); err != nil {
			return nil, err
		}
	}

	if _, err := s.userRepo.GetUser(ctx, in.UserID); err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	method := &model.PaymentMethod{
		UserID:  in.UserID,
		Name:    strings.TrimSpace(in.Name),
		Type:    kind,
		Details: in.Details,
		Address: strings.TrimSpace(in.Address),
	}
	if err := s.paymentMethodRepo.InsertPaymentMethod(ctx, method); err != nil {
		return nil, fmt.Errorf("insert payment method: %w", err)
	}

	s.logger.Info().
		Int64("user_id", in.UserID).
		Int64("payment_method_id", method.ID).
		Str("type", string(kind)).
		Msg("payment method added")
	return method, nil
}

func (s *PaymentMethodServiceImpl) ListPaymentMethods(ctx context.Context, userID int64) ([]*model.PaymentMethod, error) {
	methods, err := s.paymentMethodRepo.GetPaymentMethodsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get payment methods: %w", err)
	}
	return methods, nil
}

func (s *PaymentMethodServiceImpl) GetPaymentMethodByName(ctx context.Context, userID int64, name string) (*model.PaymentMethod, error) {
	method, err := s.paymentMethodRepo.GetPaymentMethodByName(ctx, userID, name)
	if err != nil {
		return nil, fmt.Errorf("get payment method: %w", err)
	}
	return method, nil
}
