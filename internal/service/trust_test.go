package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"escrow-service/internal/model"
	mocks "escrow-service/mocks/repository"
	svcmocks "escrow-service/mocks/service"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var trustNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

type trustMocks struct {
	profiles *mocks.ProfileRepository
	feedback *mocks.FeedbackRepository
	badges   *mocks.BadgeRepository
	db       *mocks.DBManager
	cache    *svcmocks.SnapshotCache
}

func newTrustService(t *testing.T) (*TrustServiceImpl, trustMocks) {
	m := trustMocks{
		profiles: mocks.NewProfileRepository(t),
		feedback: mocks.NewFeedbackRepository(t),
		badges:   mocks.NewBadgeRepository(t),
		db:       mocks.NewDBManager(t),
		cache:    svcmocks.NewSnapshotCache(t),
	}
	svc := NewTrustService(m.profiles, m.feedback, m.badges, m.db, m.cache, zerolog.Nop()).(*TrustServiceImpl)
	svc.now = func() time.Time { return trustNow }
	return svc, m
}

// expectLockedProfile wires the ensure + lock steps every mutation starts with
func expectLockedProfile(ctx context.Context, m trustMocks, p *model.UserProfile) {
	withTx(ctx, m.db)
	m.profiles.On("EnsureProfile", ctx, mock.MatchedBy(func(np *model.UserProfile) bool { return np.UserID == p.UserID }), mock.Anything).Return(p, nil)
	m.profiles.On("GetProfileForUpdate", ctx, p.UserID, mock.Anything).Return(p, nil)
}

func TestCalculateTrustScore(t *testing.T) {
	tests := []struct {
		name    string
		profile model.UserProfile
		want    float64
	}{
		{
			name:    "new account",
			profile: model.UserProfile{JoinDate: trustNow},
			want:    50,
		},
		{
			name:    "less than a day is no tenure",
			profile: model.UserProfile{JoinDate: trustNow.Add(-23 * time.Hour)},
			want:    50,
		},
		{
			name: "mixed history",
			profile: model.UserProfile{
				TotalTrades:      4,
				SuccessfulTrades: 2,
				PositiveFeedback: 1,
				NegativeFeedback: 3,
				JoinDate:         trustNow.AddDate(0, 0, -15),
				ResponseTimeAvg:  30,
			},
			// 50 + 15 + 6.25 + 7.5 + 0
			want: 78.75,
		},
		{
			name: "verification and fast replies",
			profile: model.UserProfile{
				PhoneVerified:   true,
				EmailVerified:   true,
				JoinDate:        trustNow,
				ResponseTimeAvg: 4,
			},
			// 50 + 14 + 8
			want: 72,
		},
		{
			name: "capped at 100",
			profile: model.UserProfile{
				TotalTrades:      10,
				SuccessfulTrades: 10,
				PositiveFeedback: 10,
				PhoneVerified:    true,
				EmailVerified:    true,
				IDVerified:       true,
				JoinDate:         trustNow.AddDate(0, -6, 0),
				ResponseTimeAvg:  1,
			},
			want: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateTrustScore(tt.profile, trustNow)
			assert.InDelta(t, tt.want, got, 1e-9)
			assert.Equal(t, got, CalculateTrustScore(tt.profile, trustNow), "score must be deterministic")
		})
	}
}

func TestTrustLevelFor(t *testing.T) {
	tests := []struct {
		score float64
		want  model.TrustLevel
	}{
		{100, model.TrustDiamond},
		{90, model.TrustDiamond},
		{89.9, model.TrustPlatinum},
		{80, model.TrustPlatinum},
		{70, model.TrustGold},
		{60, model.TrustSilver},
		{50, model.TrustBronze},
		{49.9, model.TrustUnverified},
		{0, model.TrustUnverified},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TrustLevelFor(tt.score), "score %v", tt.score)
	}
}

func TestEvaluateBadges(t *testing.T) {
	tests := []struct {
		name    string
		profile model.UserProfile
		want    []string
	}{
		{"nothing yet", model.UserProfile{}, nil},
		{"first trade", model.UserProfile{TotalTrades: 1}, []string{BadgeFirstTimer}},
		{"ten trades", model.UserProfile{TotalTrades: 10}, []string{BadgeFirstTimer, BadgeTrustedTrader}},
		{"fifty trades", model.UserProfile{TotalTrades: 50}, []string{BadgeFirstTimer, BadgeTrustedTrader, BadgeEliteTrader}},
		{"fast responder", model.UserProfile{ResponseTimeAvg: 1.5}, []string{BadgeFastResponder}},
		{"two hours is not fast", model.UserProfile{ResponseTimeAvg: 2}, nil},
		{"fully verified", model.UserProfile{PhoneVerified: true, EmailVerified: true, IDVerified: true}, []string{BadgeVerifiedPro}},
		{"partly verified", model.UserProfile{PhoneVerified: true, EmailVerified: true}, nil},
		{"champion at 95 percent", model.UserProfile{PositiveFeedback: 19, NegativeFeedback: 1}, []string{BadgeCustomerChampion}},
		{"just under 95 percent", model.UserProfile{PositiveFeedback: 18, NeutralFeedback: 1, NegativeFeedback: 1}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EvaluateBadges(tt.profile))
		})
	}
}

func TestTrustService_RecordTradeCompletion(t *testing.T) {
	ctx := context.Background()
	svc, m := newTrustService(t)

	p := &model.UserProfile{UserID: "1", JoinDate: trustNow}
	expectLockedProfile(ctx, m, p)
	m.profiles.On("UpdateProfile", ctx, mock.MatchedBy(func(up *model.UserProfile) bool {
		return up.TotalTrades == 1 && up.SuccessfulTrades == 1 && up.TrustScore == 80 && up.TrustLevel == model.TrustPlatinum
	}), mock.Anything).Return(nil)
	m.badges.On("AwardBadge", ctx, "1", BadgeFirstTimer, mock.Anything).Return(true, nil)
	m.cache.On("Invalidate", ctx, "1").Return(nil)

	err := svc.RecordTradeCompletion(ctx, "1", true)

	require.NoError(t, err)
}

func TestTrustService_RecordTradeCompletion_Unsuccessful(t *testing.T) {
	ctx := context.Background()
	svc, m := newTrustService(t)

	p := &model.UserProfile{UserID: "2", JoinDate: trustNow}
	expectLockedProfile(ctx, m, p)
	m.profiles.On("UpdateProfile", ctx, p, mock.Anything).Return(nil)
	m.badges.On("AwardBadge", ctx, "2", BadgeFirstTimer, mock.Anything).Return(true, nil)
	m.cache.On("Invalidate", ctx, "2").Return(nil)

	require.NoError(t, svc.RecordTradeCompletion(ctx, "2", false))
	assert.Equal(t, 1, p.TotalTrades)
	assert.Equal(t, 0, p.SuccessfulTrades)
	assert.Equal(t, 50.0, p.TrustScore)
}

func TestTrustService_RecalculateTrust_IsIdempotent(t *testing.T) {
	ctx := context.Background()
	svc, m := newTrustService(t)

	p := &model.UserProfile{UserID: "3", TotalTrades: 3, SuccessfulTrades: 3, JoinDate: trustNow.AddDate(0, 0, -10)}
	expectLockedProfile(ctx, m, p)
	m.profiles.On("UpdateProfile", ctx, p, mock.Anything).Return(nil)
	m.badges.On("AwardBadge", ctx, "3", BadgeFirstTimer, mock.Anything).Return(true, nil).Once()
	m.badges.On("AwardBadge", ctx, "3", BadgeFirstTimer, mock.Anything).Return(false, nil).Once()
	m.cache.On("Invalidate", ctx, "3").Return(nil)

	first, err := svc.RecalculateTrust(ctx, "3")
	require.NoError(t, err)
	firstScore := first.TrustScore

	second, err := svc.RecalculateTrust(ctx, "3")
	require.NoError(t, err)

	assert.Equal(t, firstScore, second.TrustScore)
	assert.Equal(t, TrustLevelFor(firstScore), second.TrustLevel)
	m.badges.AssertNumberOfCalls(t, "AwardBadge", 2)
}

func TestTrustService_RecordFeedback_BadgesAreNeverRevoked(t *testing.T) {
	ctx := context.Background()
	svc, m := newTrustService(t)

	// 19 of 20 positive earned Customer Champion earlier; one more negative drops the ratio below 95%
	p := &model.UserProfile{UserID: "5", PositiveFeedback: 19, NegativeFeedback: 1, JoinDate: trustNow}
	expectLockedProfile(ctx, m, p)
	m.feedback.On("InsertFeedback", ctx, mock.MatchedBy(func(f *model.Feedback) bool {
		return f.Type == model.FeedbackNegative && f.ReceiverID == "5" && f.GiverID == "6"
	}), mock.Anything).Return(nil)
	m.profiles.On("UpdateProfile", ctx, p, mock.Anything).Return(nil)
	m.cache.On("Invalidate", ctx, "5").Return(nil)

	err := svc.RecordFeedback(ctx, model.RecordFeedbackInput{TradeID: "AB123456", GiverID: "6", ReceiverID: "5", Rating: 1})

	require.NoError(t, err)
	assert.Equal(t, 2, p.NegativeFeedback)
	m.badges.AssertNotCalled(t, "AwardBadge", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestTrustService_RecordFeedback_Classification(t *testing.T) {
	tests := []struct {
		rating int
		check  func(p *model.UserProfile) int
	}{
		{5, func(p *model.UserProfile) int { return p.PositiveFeedback }},
		{4, func(p *model.UserProfile) int { return p.PositiveFeedback }},
		{3, func(p *model.UserProfile) int { return p.NeutralFeedback }},
		{2, func(p *model.UserProfile) int { return p.NegativeFeedback }},
	}

	for _, tt := range tests {
		ctx := context.Background()
		svc, m := newTrustService(t)

		p := &model.UserProfile{UserID: "5", JoinDate: trustNow}
		expectLockedProfile(ctx, m, p)
		m.feedback.On("InsertFeedback", ctx, mock.Anything, mock.Anything).Return(nil)
		m.profiles.On("UpdateProfile", ctx, p, mock.Anything).Return(nil)
		m.badges.On("AwardBadge", ctx, "5", mock.Anything, mock.Anything).Return(true, nil).Maybe()
		m.cache.On("Invalidate", ctx, "5").Return(nil)

		require.NoError(t, svc.RecordFeedback(ctx, model.RecordFeedbackInput{TradeID: "T1", GiverID: "6", ReceiverID: "5", Rating: tt.rating}))
		assert.Equal(t, 1, tt.check(p), "rating %d", tt.rating)
	}
}

func TestTrustService_RecordFeedback_Duplicate(t *testing.T) {
	ctx := context.Background()
	svc, m := newTrustService(t)

	p := &model.UserProfile{UserID: "5", JoinDate: trustNow}
	expectLockedProfile(ctx, m, p)
	m.feedback.On("InsertFeedback", ctx, mock.Anything, mock.Anything).Return(model.ErrDuplicateFeedback)

	err := svc.RecordFeedback(ctx, model.RecordFeedbackInput{TradeID: "AB123456", GiverID: "6", ReceiverID: "5", Rating: 5})

	assert.ErrorIs(t, err, model.ErrDuplicateFeedback)
	assert.Equal(t, 0, p.PositiveFeedback)
	m.profiles.AssertNotCalled(t, "UpdateProfile", mock.Anything, mock.Anything, mock.Anything)
	m.cache.AssertNotCalled(t, "Invalidate", mock.Anything, mock.Anything)
}

func TestTrustService_RecordFeedback_Validation(t *testing.T) {
	ctx := context.Background()
	svc, m := newTrustService(t)

	err := svc.RecordFeedback(ctx, model.RecordFeedbackInput{TradeID: "T", GiverID: "6", ReceiverID: "5", Rating: 0})
	assert.ErrorIs(t, err, model.ErrValidation)

	err = svc.RecordFeedback(ctx, model.RecordFeedbackInput{TradeID: "T", GiverID: "5", ReceiverID: "5", Rating: 5})
	assert.ErrorIs(t, err, model.ErrValidation)

	m.db.AssertNotCalled(t, "WithTransaction", mock.Anything, mock.Anything)
}

func TestTrustService_RecordResponseTime_RunningMean(t *testing.T) {
	ctx := context.Background()
	svc, m := newTrustService(t)

	p := &model.UserProfile{UserID: "7", JoinDate: trustNow}
	expectLockedProfile(ctx, m, p)
	m.profiles.On("UpdateProfile", ctx, p, mock.Anything).Return(nil)
	m.cache.On("Invalidate", ctx, "7").Return(nil)

	for _, hours := range []float64{2, 4, 6} {
		_, err := svc.RecordResponseTime(ctx, "7", hours)
		require.NoError(t, err)
	}

	assert.InDelta(t, 4.0, p.ResponseTimeAvg, 1e-9)
	assert.Equal(t, 3, p.ResponseSamples)

	_, err := svc.RecordResponseTime(ctx, "7", -1)
	assert.ErrorIs(t, err, model.ErrValidation)
}

func TestTrustService_SetVerification(t *testing.T) {
	ctx := context.Background()
	svc, m := newTrustService(t)

	p := &model.UserProfile{UserID: "8", JoinDate: trustNow, PhoneVerified: true}
	expectLockedProfile(ctx, m, p)
	m.profiles.On("UpdateProfile", ctx, p, mock.Anything).Return(nil)
	m.badges.On("AwardBadge", ctx, "8", BadgeVerifiedPro, mock.Anything).Return(true, nil)
	m.cache.On("Invalidate", ctx, "8").Return(nil)

	yes := true
	got, err := svc.SetVerification(ctx, "8", model.VerificationUpdate{Email: &yes, ID: &yes})

	require.NoError(t, err)
	assert.True(t, got.PhoneVerified)
	assert.True(t, got.EmailVerified)
	assert.True(t, got.IDVerified)
	assert.Equal(t, 70.0, got.TrustScore)
	assert.Equal(t, model.TrustGold, got.TrustLevel)
}

func TestTrustService_CacheFailureDoesNotFailMutation(t *testing.T) {
	ctx := context.Background()
	svc, m := newTrustService(t)

	p := &model.UserProfile{UserID: "9", JoinDate: trustNow}
	expectLockedProfile(ctx, m, p)
	m.profiles.On("UpdateProfile", ctx, p, mock.Anything).Return(nil)
	m.cache.On("Invalidate", ctx, "9").Return(errors.New("connection refused"))

	_, err := svc.RecalculateTrust(ctx, "9")
	assert.NoError(t, err)
}

func TestTrustService_GetTrustStats_CacheHit(t *testing.T) {
	ctx := context.Background()
	svc, m := newTrustService(t)

	cached := &model.ProfileSnapshot{UserID: "1", TrustScore: 88.8}
	m.cache.On("GetSnapshot", ctx, "1").Return(cached, nil)

	got, err := svc.GetTrustStats(ctx, "1")

	require.NoError(t, err)
	assert.Same(t, cached, got)
	m.profiles.AssertNotCalled(t, "GetProfile", mock.Anything, mock.Anything)
}

func TestTrustService_GetTrustStats_BuildsRoundedSnapshot(t *testing.T) {
	ctx := context.Background()
	svc, m := newTrustService(t)

	comment := "fast and friendly"
	p := &model.UserProfile{
		UserID:           "1",
		FirstName:        "Alice",
		TrustScore:       83.3333,
		TrustLevel:       model.TrustPlatinum,
		TotalTrades:      3,
		SuccessfulTrades: 2,
		PositiveFeedback: 2,
		NeutralFeedback:  1,
		ResponseTimeAvg:  1.26,
		PhoneVerified:    true,
	}
	m.cache.On("GetSnapshot", ctx, "1").Return(nil, nil)
	m.profiles.On("GetProfile", ctx, "1").Return(p, nil)
	m.feedback.On("GetRecentFeedback", ctx, "1", recentFeedbackLimit).Return([]*model.Feedback{
		{Rating: 5, Comment: &comment, Type: model.FeedbackPositive, CreatedAt: trustNow},
	}, nil)
	m.badges.On("GetUserBadges", ctx, "1").Return([]*model.UserBadge{
		{UserID: "1", Badge: model.BadgeType{Name: BadgeFirstTimer, Icon: "🎯", Description: "Completed your first trade"}, EarnedAt: trustNow},
	}, nil)
	m.cache.On("SetSnapshot", ctx, mock.Anything).Return(nil)

	got, err := svc.GetTrustStats(ctx, "1")

	require.NoError(t, err)
	assert.Equal(t, 83.3, got.TrustScore)
	assert.Equal(t, 66.7, got.SuccessRate)
	assert.Equal(t, 66.7, got.PositiveRate)
	assert.Equal(t, 3, got.TotalFeedback)
	assert.Equal(t, 1.3, got.ResponseTimeAvg)
	assert.True(t, got.Verification.Phone)
	require.Len(t, got.RecentFeedback, 1)
	assert.Equal(t, "fast and friendly", *got.RecentFeedback[0].Comment)
	require.Len(t, got.Badges, 1)
	assert.Equal(t, "🎯", got.Badges[0].Icon)
}

func TestTrustService_GetTrustStats_UnknownUser(t *testing.T) {
	ctx := context.Background()
	svc, m := newTrustService(t)

	m.cache.On("GetSnapshot", ctx, "404").Return(nil, nil)
	m.profiles.On("GetProfile", ctx, "404").Return(nil, model.ErrProfileNotFound)

	_, err := svc.GetTrustStats(ctx, "404")
	assert.ErrorIs(t, err, model.ErrProfileNotFound)
}

func TestTrustService_EnsureProfile_StartsAtBaseScore(t *testing.T) {
	ctx := context.Background()
	svc, m := newTrustService(t)

	m.profiles.On("EnsureProfile", ctx, mock.MatchedBy(func(p *model.UserProfile) bool {
		return p.UserID == "11" && p.FirstName == "User" && p.TrustScore == baseTrustScore && p.TrustLevel == model.TrustBronze
	})).Return(func(_ context.Context, p *model.UserProfile, _ ...pgx.Tx) (*model.UserProfile, error) { return p, nil })

	got, err := svc.EnsureProfile(ctx, "11", "", "")

	require.NoError(t, err)
	assert.Equal(t, baseTrustScore, got.TrustScore)
}
