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

var (
	_ repository.ProfileRepository  = (*ProfileRepositoryImpl)(nil)
	_ repository.FeedbackRepository = (*FeedbackRepositoryImpl)(nil)
	_ repository.BadgeRepository    = (*BadgeRepositoryImpl)(nil)
)

// ProfileRepositoryImpl stores trust profiles
type ProfileRepositoryImpl struct {
	*TransactionManager
}

func NewProfileRepository(pool *pgxpool.Pool) repository.ProfileRepository {
	return &ProfileRepositoryImpl{TransactionManager: NewTransactionManager(pool)}
}

const profileColumns = `user_id, username, first_name, trust_score, trust_level, total_trades, successful_trades,
        phone_verified, email_verified, id_verified, join_date, last_active, response_time_avg, response_samples,
        positive_feedback, neutral_feedback, negative_feedback`

func scanProfile(row rowScanner) (*model.UserProfile, error) {
	p := &model.UserProfile{}
	err := row.Scan(&p.UserID, &p.Username, &p.FirstName, &p.TrustScore, &p.TrustLevel, &p.TotalTrades,
		&p.SuccessfulTrades, &p.PhoneVerified, &p.EmailVerified, &p.IDVerified, &p.JoinDate, &p.LastActive,
		&p.ResponseTimeAvg, &p.ResponseSamples, &p.PositiveFeedback, &p.NeutralFeedback, &p.NegativeFeedback)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *ProfileRepositoryImpl) EnsureProfile(ctx context.Context, profile *model.UserProfile, tx ...pgx.Tx) (*model.UserProfile, error) {
	insert := `
        INSERT INTO user_profiles (user_id, username, first_name, trust_score, trust_level)
        VALUES ($1, $2, $3, $4, $5)
        ON CONFLICT (user_id) DO NOTHING`

	executor := r.getExecutor(tx...)
	if _, err := executor.Exec(ctx, insert, profile.UserID, profile.Username, profile.FirstName, profile.TrustScore, profile.TrustLevel); err != nil {
		return nil, fmt.Errorf("failed to ensure profile: %w", err)
	}
	return r.GetProfile(ctx, profile.UserID, tx...)
}

func (r *ProfileRepositoryImpl) GetProfile(ctx context.Context, userID string, tx ...pgx.Tx) (*model.UserProfile, error) {
	query := `SELECT ` + profileColumns + ` FROM user_profiles WHERE user_id = $1`

	p, err := scanProfile(r.getExecutor(tx...).QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return p, nil
}

func (r *ProfileRepositoryImpl) GetProfileForUpdate(ctx context.Context, userID string, tx pgx.Tx) (*model.UserProfile, error) {
	query := `SELECT ` + profileColumns + ` FROM user_profiles WHERE user_id = $1 FOR UPDATE`

	p, err := scanProfile(tx.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile for update: %w", err)
	}
	return p, nil
}

func (r *ProfileRepositoryImpl) UpdateProfile(ctx context.Context, profile *model.UserProfile, tx pgx.Tx) error {
	query := `
		UPDATE user_profiles
		SET trust_score = $1, trust_level = $2, total_trades = $3, successful_trades = $4,
		    phone_verified = $5, email_verified = $6, id_verified = $7,
		    response_time_avg = $8, response_samples = $9,
		    positive_feedback = $10, neutral_feedback = $11, negative_feedback = $12,
		    last_active = NOW()
		WHERE user_id = $13
		RETURNING last_active`

	err := tx.QueryRow(ctx, query, profile.TrustScore, profile.TrustLevel, profile.TotalTrades, profile.SuccessfulTrades,
		profile.PhoneVerified, profile.EmailVerified, profile.IDVerified, profile.ResponseTimeAvg, profile.ResponseSamples,
		profile.PositiveFeedback, profile.NeutralFeedback, profile.NegativeFeedback, profile.UserID).Scan(&profile.LastActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.ErrProfileNotFound
		}
		return fmt.Errorf("failed to update profile: %w", err)
	}
	return nil
}

// FeedbackRepositoryImpl stores trade feedback
type FeedbackRepositoryImpl struct {
	*TransactionManager
}

func NewFeedbackRepository(pool *pgxpool.Pool) repository.FeedbackRepository {
	return &FeedbackRepositoryImpl{TransactionManager: NewTransactionManager(pool)}
}

func (r *FeedbackRepositoryImpl) InsertFeedback(ctx context.Context, feedback *model.Feedback, tx pgx.Tx) error {
	query := `
        INSERT INTO user_feedback (trade_id, giver_id, receiver_id, rating, feedback_type, comment,
            communication_rating, delivery_rating, quality_rating)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING id, created_at`

	err := tx.QueryRow(ctx, query, feedback.TradeID, feedback.GiverID, feedback.ReceiverID, feedback.Rating, feedback.Type,
		feedback.Comment, feedback.CommunicationRating, feedback.DeliveryRating, feedback.QualityRating).
		Scan(&feedback.ID, &feedback.CreatedAt)
	if err != nil {
		if uniqueViolation(err, "user_feedback_once_per_trade") {
			return model.ErrDuplicateFeedback
		}
		return fmt.Errorf("failed to insert feedback: %w", err)
	}
	return nil
}

func (r *FeedbackRepositoryImpl) GetRecentFeedback(ctx context.Context, receiverID string, limit int) ([]*model.Feedback, error) {
	query := `
        SELECT id, trade_id, giver_id, receiver_id, rating, feedback_type, comment, communication_rating,
            delivery_rating, quality_rating, created_at
        FROM user_feedback
        WHERE receiver_id = $1
        ORDER BY created_at DESC, id DESC
        LIMIT $2`

	rows, err := r.pool.Query(ctx, query, receiverID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query feedback: %w", err)
	}
	feedback, err := collectRows(rows, func(row rowScanner) (*model.Feedback, error) {
		f := &model.Feedback{}
		err := row.Scan(&f.ID, &f.TradeID, &f.GiverID, &f.ReceiverID, &f.Rating, &f.Type, &f.Comment,
			&f.CommunicationRating, &f.DeliveryRating, &f.QualityRating, &f.CreatedAt)
		return f, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan feedback: %w", err)
	}
	return feedback, nil
}

// BadgeRepositoryImpl stores badge awards
type BadgeRepositoryImpl struct {
	*TransactionManager
}

func NewBadgeRepository(pool *pgxpool.Pool) repository.BadgeRepository {
	return &BadgeRepositoryImpl{TransactionManager: NewTransactionManager(pool)}
}

func (r *BadgeRepositoryImpl) AwardBadge(ctx context.Context, userID, badgeName string, tx pgx.Tx) (bool, error) {
	query := `
        INSERT INTO user_badges (user_id, badge_name)
        VALUES ($1, $2)
        ON CONFLICT (user_id, badge_name) DO NOTHING`

	result, err := tx.Exec(ctx, query, userID, badgeName)
	if err != nil {
		return false, fmt.Errorf("failed to award badge: %w", err)
	}
	return result.RowsAffected() == 1, nil
}

func (r *BadgeRepositoryImpl) GetUserBadges(ctx context.Context, userID string) ([]*model.UserBadge, error) {
	query := `
        SELECT ub.user_id, bt.name, bt.description, bt.icon, bt.requirement, ub.earned_at
        FROM user_badges ub
        JOIN badge_types bt ON bt.name = ub.badge_name
        WHERE ub.user_id = $1
        ORDER BY ub.earned_at, bt.name`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query badges: %w", err)
	}
	badges, err := collectRows(rows, func(row rowScanner) (*model.UserBadge, error) {
		b := &model.UserBadge{}
		err := row.Scan(&b.UserID, &b.Badge.Name, &b.Badge.Description, &b.Badge.Icon, &b.Badge.Requirement, &b.EarnedAt)
		return b, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan badge: %w", err)
	}
	return badges, nil
}
