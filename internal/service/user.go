package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"escrow-service/internal/model"
	"escrow-service/internal/repository"
	"escrow-service/internal/validation"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

type UserServiceImpl struct {
	userRepo  repository.UserRepository
	dbManager repository.DBManager
	profiles  TrustService
	logger    zerolog.Logger
}

func NewUserService(userRepo repository.UserRepository, dbManager repository.DBManager, profiles TrustService, logger zerolog.Logger) UserService {
	return &UserServiceImpl{
		userRepo:  userRepo,
		dbManager: dbManager,
		profiles:  profiles,
		logger:    logger,
	}
}

// RegisterUser is idempotent; created reports whether this call inserted the user
func (s *UserServiceImpl) RegisterUser(ctx context.Context, in model.RegisterUserInput) (*model.User, bool, error) {
	if in.ID <= 0 {
		return nil, false, fmt.Errorf("%w: user id must be positive", model.ErrValidation)
	}
	if err := validation.Text(in.Username, 1, 64); err != nil {
		return nil, false, err
	}

	user := &model.User{
		ID:          in.ID,
		Username:    strings.TrimPrefix(strings.TrimSpace(in.Username), "@"),
		DisplayName: strings.TrimSpace(in.DisplayName),
	}

	var (
		created bool
		stored  *model.User
	)
	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		var err error
		created, err = s.userRepo.InsertUser(ctx, user, tx)
		if err != nil {
			return fmt.Errorf("insert user: %w", err)
		}
		stored, err = s.userRepo.GetUser(ctx, in.ID, tx)
		if err != nil {
			return fmt.Errorf("get user: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, false, err
	}

	if s.profiles != nil {
		if _, err := s.profiles.EnsureProfile(ctx, strconv.FormatInt(stored.ID, 10), stored.Username, stored.DisplayName); err != nil {
			return nil, false, fmt.Errorf("ensure trust profile: %w", err)
		}
	}

	if created {
		s.logger.Info().Int64("user_id", stored.ID).Str("username", stored.Username).Msg("user registered")
	}
	return stored, created, nil
}

func (s *UserServiceImpl) GetUser(ctx context.Context, userID int64) (*model.User, error) {
	user, err := s.userRepo.GetUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}
