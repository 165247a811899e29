package service

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"escrow-service/internal/metrics"
	"escrow-service/internal/model"
	"escrow-service/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

const (
	baseTrustScore      = 50.0
	recentFeedbackLimit = 5
)

// Badge names as seeded in badge_types
const (
	BadgeFirstTimer       = "First Timer"
	BadgeTrustedTrader    = "Trusted Trader"
	BadgeEliteTrader      = "Elite Trader"
	BadgeFastResponder    = "Fast Responder"
	BadgeVerifiedPro      = "Verified Pro"
	BadgeCustomerChampion = "Customer Champion"
)

type badgeRule struct {
	name   string
	earned func(p *model.UserProfile) bool
}

var badgeRules = []badgeRule{
	{BadgeFirstTimer, func(p *model.UserProfile) bool { return p.TotalTrades >= 1 }},
	{BadgeTrustedTrader, func(p *model.UserProfile) bool { return p.TotalTrades >= 10 }},
	{BadgeEliteTrader, func(p *model.UserProfile) bool { return p.TotalTrades >= 50 }},
	{BadgeFastResponder, func(p *model.UserProfile) bool { return p.ResponseTimeAvg > 0 && p.ResponseTimeAvg < 2 }},
	{BadgeVerifiedPro, func(p *model.UserProfile) bool { return p.PhoneVerified && p.EmailVerified && p.IDVerified }},
	{BadgeCustomerChampion, func(p *model.UserProfile) bool {
		return float64(p.PositiveFeedback)/float64(max(p.TotalFeedback(), 1)) >= 0.95
	}},
}

// CalculateTrustScore is a pure function of the profile and the clock
func CalculateTrustScore(p model.UserProfile, now time.Time) float64 {
	score := baseTrustScore

	if p.TotalTrades > 0 {
		score += float64(p.SuccessfulTrades) / float64(p.TotalTrades) * 30
	}

	if total := p.TotalFeedback(); total > 0 {
		score += float64(p.PositiveFeedback) / float64(total) * 25
	}

	if p.PhoneVerified {
		score += 7
	}
	if p.EmailVerified {
		score += 7
	}
	if p.IDVerified {
		score += 6
	}

	// whole days only, same-day accounts get nothing
	if days := int(now.Sub(p.JoinDate).Hours() / 24); days > 0 {
		score += math.Min(float64(days)/30, 1) * 15
	}

	if p.ResponseTimeAvg > 0 {
		score += math.Max(0, 10-p.ResponseTimeAvg/2)
	}

	return math.Max(0, math.Min(score, 100))
}

func TrustLevelFor(score float64) model.TrustLevel {
	switch {
	case score >= 90:
		return model.TrustDiamond
	case score >= 80:
		return model.TrustPlatinum
	case score >= 70:
		return model.TrustGold
	case score >= 60:
		return model.TrustSilver
	case score >= 50:
		return model.TrustBronze
	default:
		return model.TrustUnverified
	}
}

// EvaluateBadges returns every badge the profile currently qualifies for
func EvaluateBadges(p model.UserProfile) []string {
	var earned []string
	for _, rule := range badgeRules {
		if rule.earned(&p) {
			earned = append(earned, rule.name)
		}
	}
	return earned
}

type TrustServiceImpl struct {
	profileRepo  repository.ProfileRepository
	feedbackRepo repository.FeedbackRepository
	badgeRepo    repository.BadgeRepository
	dbManager    repository.DBManager
	cache        SnapshotCache
	logger       zerolog.Logger
	now          func() time.Time
}

func NewTrustService(
	profileRepo repository.ProfileRepository,
	feedbackRepo repository.FeedbackRepository,
	badgeRepo repository.BadgeRepository,
	dbManager repository.DBManager,
	cache SnapshotCache,
	logger zerolog.Logger,
) TrustService {
	return &TrustServiceImpl{
		profileRepo:  profileRepo,
		feedbackRepo: feedbackRepo,
		badgeRepo:    badgeRepo,
		dbManager:    dbManager,
		cache:        cache,
		logger:       logger,
		now:          time.Now,
	}
}

func (s *TrustServiceImpl) newProfile(userID, username, firstName string) *model.UserProfile {
	if firstName == "" {
		firstName = "User"
	}
	p := &model.UserProfile{
		UserID:    userID,
		Username:  username,
		FirstName: firstName,
		JoinDate:  s.now(),
	}
	p.TrustScore = CalculateTrustScore(*p, p.JoinDate)
	p.TrustLevel = TrustLevelFor(p.TrustScore)
	return p
}

func (s *TrustServiceImpl) EnsureProfile(ctx context.Context, userID, username, firstName string) (*model.UserProfile, error) {
	p, err := s.profileRepo.EnsureProfile(ctx, s.newProfile(userID, username, firstName))
	if err != nil {
		return nil, fmt.Errorf("ensure profile: %w", err)
	}
	return p, nil
}

func (s *TrustServiceImpl) RecalculateTrust(ctx context.Context, userID string) (*model.UserProfile, error) {
	return s.mutate(ctx, userID, "trust recalculated", func(pgx.Tx, *model.UserProfile) error { return nil })
}

func (s *TrustServiceImpl) RecordTradeCompletion(ctx context.Context, userID string, successful bool) error {
	_, err := s.mutate(ctx, userID, "trade recorded", func(_ pgx.Tx, p *model.UserProfile) error {
		p.TotalTrades++
		if successful {
			p.SuccessfulTrades++
		}
		return nil
	})
	return err
}

// RecordFeedback stores the rating and updates the receiver only
func (s *TrustServiceImpl) RecordFeedback(ctx context.Context, in model.RecordFeedbackInput) error {
	if in.Rating < 1 || in.Rating > 5 {
		return fmt.Errorf("%w: rating must be between 1 and 5", model.ErrValidation)
	}
	if strings.TrimSpace(in.GiverID) == "" || in.GiverID == in.ReceiverID {
		return fmt.Errorf("%w: feedback needs a giver distinct from the receiver", model.ErrValidation)
	}

	feedback := &model.Feedback{
		TradeID:             in.TradeID,
		GiverID:             in.GiverID,
		ReceiverID:          in.ReceiverID,
		Rating:              in.Rating,
		Type:                model.ClassifyRating(in.Rating),
		Comment:             in.Comment,
		CommunicationRating: in.Communication,
		DeliveryRating:      in.Delivery,
		QualityRating:       in.Quality,
	}

	_, err := s.mutate(ctx, in.ReceiverID, "feedback recorded", func(tx pgx.Tx, p *model.UserProfile) error {
		if err := s.feedbackRepo.InsertFeedback(ctx, feedback, tx); err != nil {
			return fmt.Errorf("insert feedback: %w", err)
		}
		switch feedback.Type {
		case model.FeedbackPositive:
			p.PositiveFeedback++
		case model.FeedbackNeutral:
			p.NeutralFeedback++
		default:
			p.NegativeFeedback++
		}
		return nil
	})
	if err != nil && model.IsRuleViolation(err) {
		s.logger.Warn().
			Str("trade_id", in.TradeID).
			Str("giver_id", in.GiverID).
			Str("receiver_id", in.ReceiverID).
			Str("reason", string(model.ReasonOf(err))).
			Msg(err.Error())
	}
	return err
}

func (s *TrustServiceImpl) SetVerification(ctx context.Context, userID string, update model.VerificationUpdate) (*model.UserProfile, error) {
	return s.mutate(ctx, userID, "verification updated", func(_ pgx.Tx, p *model.UserProfile) error {
		if update.Phone != nil {
			p.PhoneVerified = *update.Phone
		}
		if update.Email != nil {
			p.EmailVerified = *update.Email
		}
		if update.ID != nil {
			p.IDVerified = *update.ID
		}
		return nil
	})
}

// RecordResponseTime folds one response-time sample in hours into the running mean
func (s *TrustServiceImpl) RecordResponseTime(ctx context.Context, userID string, hours float64) (*model.UserProfile, error) {
	if hours < 0 || math.IsNaN(hours) || math.IsInf(hours, 0) {
		return nil, fmt.Errorf("%w: response time must be a non-negative number of hours", model.ErrValidation)
	}
	return s.mutate(ctx, userID, "response time recorded", func(_ pgx.Tx, p *model.UserProfile) error {
		p.ResponseTimeAvg = nextAverage(p.ResponseTimeAvg, p.ResponseSamples, hours)
		p.ResponseSamples++
		return nil
	})
}

// mutate applies change to the locked profile, recomputes score and level, and awards new badges
func (s *TrustServiceImpl) mutate(
	ctx context.Context,
	userID, event string,
	change func(tx pgx.Tx, p *model.UserProfile) error,
) (*model.UserProfile, error) {
	var (
		profile *model.UserProfile
		awarded []string
	)

	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		if _, err := s.profileRepo.EnsureProfile(ctx, s.newProfile(userID, "", ""), tx); err != nil {
			return fmt.Errorf("ensure profile: %w", err)
		}
		p, err := s.profileRepo.GetProfileForUpdate(ctx, userID, tx)
		if err != nil {
			return fmt.Errorf("get profile for update: %w", err)
		}

		if err := change(tx, p); err != nil {
			return err
		}

		p.TrustScore = CalculateTrustScore(*p, s.now())
		p.TrustLevel = TrustLevelFor(p.TrustScore)
		if err := s.profileRepo.UpdateProfile(ctx, p, tx); err != nil {
			return fmt.Errorf("update profile: %w", err)
		}

		for _, badge := range EvaluateBadges(*p) {
			inserted, err := s.badgeRepo.AwardBadge(ctx, userID, badge, tx)
			if err != nil {
				return fmt.Errorf("award badge %q: %w", badge, err)
			}
			if inserted {
				awarded = append(awarded, badge)
			}
		}

		profile = p
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := s.cache.Invalidate(ctx, userID); err != nil {
		s.logger.Warn().Err(err).Str("user_id", userID).Msg("failed to invalidate trust snapshot")
	}

	s.logger.Info().
		Str("user_id", userID).
		Float64("trust_score", profile.TrustScore).
		Str("trust_level", string(profile.TrustLevel)).
		Strs("badges_awarded", awarded).
		Msg(event)

	return profile, nil
}

func (s *TrustServiceImpl) GetTrustStats(ctx context.Context, userID string) (*model.ProfileSnapshot, error) {
	cached, err := s.cache.GetSnapshot(ctx, userID)
	if err != nil {
		s.logger.Warn().Err(err).Str("user_id", userID).Msg("trust snapshot cache unavailable")
	}
	if cached != nil {
		metrics.TrustCacheLookupsTotal.WithLabelValues("hit").Inc()
		return cached, nil
	}
	metrics.TrustCacheLookupsTotal.WithLabelValues("miss").Inc()

	p, err := s.profileRepo.GetProfile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	feedback, err := s.feedbackRepo.GetRecentFeedback(ctx, userID, recentFeedbackLimit)
	if err != nil {
		return nil, fmt.Errorf("get recent feedback: %w", err)
	}
	badges, err := s.badgeRepo.GetUserBadges(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get badges: %w", err)
	}

	snapshot := buildSnapshot(p, feedback, badges)
	if err := s.cache.SetSnapshot(ctx, snapshot); err != nil {
		s.logger.Warn().Err(err).Str("user_id", userID).Msg("failed to cache trust snapshot")
	}
	return snapshot, nil
}

func buildSnapshot(p *model.UserProfile, feedback []*model.Feedback, badges []*model.UserBadge) *model.ProfileSnapshot {
	total := p.TotalFeedback()
	snapshot := &model.ProfileSnapshot{
		UserID:           p.UserID,
		Username:         p.Username,
		FirstName:        p.FirstName,
		TrustScore:       round(p.TrustScore, 1),
		TrustLevel:       p.TrustLevel,
		TotalTrades:      p.TotalTrades,
		SuccessfulTrades: p.SuccessfulTrades,
		SuccessRate:      round(float64(p.SuccessfulTrades)/float64(max(p.TotalTrades, 1))*100, 1),
		TotalFeedback:    total,
		PositiveFeedback: p.PositiveFeedback,
		NeutralFeedback:  p.NeutralFeedback,
		NegativeFeedback: p.NegativeFeedback,
		PositiveRate:     round(float64(p.PositiveFeedback)/float64(max(total, 1))*100, 1),
		Verification: model.Verification{
			Phone: p.PhoneVerified,
			Email: p.EmailVerified,
			ID:    p.IDVerified,
		},
		JoinDate:        p.JoinDate,
		LastActive:      p.LastActive,
		ResponseTimeAvg: round(p.ResponseTimeAvg, 1),
		RecentFeedback:  make([]model.FeedbackSummary, 0, len(feedback)),
		Badges:          make([]model.BadgeSummary, 0, len(badges)),
	}

	for _, f := range feedback {
		snapshot.RecentFeedback = append(snapshot.RecentFeedback, model.FeedbackSummary{
			Rating:  f.Rating,
			Comment: f.Comment,
			Type:    f.Type,
			Date:    f.CreatedAt,
		})
	}
	for _, b := range badges {
		snapshot.Badges = append(snapshot.Badges, model.BadgeSummary{
			Name:        b.Badge.Name,
			Icon:        b.Badge.Icon,
			Description: b.Badge.Description,
			EarnedAt:    b.EarnedAt,
		})
	}
	return snapshot
}
