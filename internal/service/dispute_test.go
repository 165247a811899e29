package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"escrow-service/internal/model"
	mocks "escrow-service/mocks/repository"
	svcmocks "escrow-service/mocks/service"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type disputeMocks struct {
	disputes     *mocks.DisputeRepository
	moderators   *mocks.ModeratorRepository
	transactions *mocks.TransactionRepository
	db           *mocks.DBManager
	trades       *svcmocks.TradeRecorder
}

func newDisputeService(t *testing.T) (*DisputeServiceImpl, disputeMocks) {
	m := disputeMocks{
		disputes:     mocks.NewDisputeRepository(t),
		moderators:   mocks.NewModeratorRepository(t),
		transactions: mocks.NewTransactionRepository(t),
		db:           mocks.NewDBManager(t),
		trades:       svcmocks.NewTradeRecorder(t),
	}
	svc := NewDisputeService(m.disputes, m.moderators, m.transactions, m.db, m.trades, 10, zerolog.Nop()).(*DisputeServiceImpl)
	svc.newID = func() string { return "DSP-0000ABCD" }
	return svc, m
}

func defaultModerators() []*model.Moderator {
	return []*model.Moderator{
		{ID: "001", Username: "mod_alex", RoleLevel: model.LevelSenior, Specialization: "Payment disputes, payment_not_received", IsActive: true, IsAvailable: true, CurrentCaseLoad: 3, MaxCaseLoad: 10},
		{ID: "002", Username: "mod_sarah", RoleLevel: model.LevelLead, Specialization: "Service disputes, service_not_delivered", IsActive: true, IsAvailable: true, CurrentCaseLoad: 5, MaxCaseLoad: 8},
		{ID: "003", Username: "mod_mike", RoleLevel: model.LevelJunior, Specialization: "Quality issues, quality_issue", IsActive: true, IsAvailable: true, CurrentCaseLoad: 1, MaxCaseLoad: 5},
		{ID: "004", Username: "admin_lisa", RoleLevel: model.LevelAdmin, Specialization: "All types", IsActive: true, IsAvailable: true, CurrentCaseLoad: 1, MaxCaseLoad: 15},
	}
}

func fundedTransaction() *model.Transaction {
	return &model.Transaction{ID: "AB123456", Title: "Logo", SellerID: 1, BuyerID: int64Ptr(2), Status: model.StatusFunded, Amount: decimal.NewFromInt(100)}
}

func activeDispute() *model.Dispute {
	mod, name := "002", "mod_sarah"
	return &model.Dispute{
		ID:                "DSP-0000ABCD",
		TransactionID:     "AB123456",
		BuyerID:           2,
		SellerID:          1,
		DisputeType:       model.DisputeTypeServiceNotDelivered,
		OpenedBy:          model.RoleBuyer,
		Status:            model.DisputeOpen,
		Priority:          model.PriorityHigh,
		AssignedModerator: &mod,
		ModeratorUsername: &name,
		CreatedAt:         time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
	}
}

func messageContaining(s string) any {
	return mock.MatchedBy(func(msg *model.DisputeMessage) bool {
		return msg.SenderRole == model.RoleSystem && strings.Contains(msg.Content, s)
	})
}

func TestCalculatePriority(t *testing.T) {
	tests := []struct {
		amount      string
		disputeType string
		want        model.Priority
	}{
		{"0.1", model.DisputeTypeQualityIssue, model.PriorityUrgent},
		{"2.5", model.DisputeTypeServiceNotDelivered, model.PriorityUrgent},
		{"0.0999", model.DisputeTypeQualityIssue, model.PriorityHigh},
		{"0.05", "other", model.PriorityHigh},
		{"0.0499", "other", model.PriorityNormal},
		{"0.01", model.DisputeTypeServiceNotDelivered, model.PriorityHigh},
		{"0.01", model.DisputeTypePaymentNotReceived, model.PriorityHigh},
		{"0", "", model.PriorityNormal},
	}

	for _, tt := range tests {
		got := CalculatePriority(decimal.RequireFromString(tt.amount), tt.disputeType)
		assert.Equal(t, tt.want, got, "amount %s type %q", tt.amount, tt.disputeType)
	}
}

func TestSelectModerator(t *testing.T) {
	t.Run("specialist first", func(t *testing.T) {
		got := SelectModerator(defaultModerators(), model.DisputeTypeServiceNotDelivered)
		require.NotNil(t, got)
		assert.Equal(t, "002", got.ID)
	})

	t.Run("least loaded with admin winning ties", func(t *testing.T) {
		got := SelectModerator(defaultModerators(), "other")
		require.NotNil(t, got)
		assert.Equal(t, "004", got.ID)
	})

	t.Run("full specialist skipped", func(t *testing.T) {
		mods := defaultModerators()
		mods[1].CurrentCaseLoad = mods[1].MaxCaseLoad
		got := SelectModerator(mods, model.DisputeTypeServiceNotDelivered)
		require.NotNil(t, got)
		assert.NotEqual(t, "002", got.ID)
	})

	t.Run("nobody eligible", func(t *testing.T) {
		mods := defaultModerators()
		for _, m := range mods {
			m.IsAvailable = false
		}
		assert.Nil(t, SelectModerator(mods, model.DisputeTypeQualityIssue))
		assert.Nil(t, SelectModerator(nil, model.DisputeTypeQualityIssue))
	})
}

func TestNextAverage(t *testing.T) {
	avg, n := 0.0, 0
	for _, sample := range []float64{2, 4, 6} {
		avg = nextAverage(avg, n, sample)
		n++
	}
	assert.InDelta(t, 4.0, avg, 1e-9)
}

func TestResolutionHours_ClampsNegative(t *testing.T) {
	d := activeDispute()
	before := d.CreatedAt.Add(-time.Hour)
	d.ResolvedAt = &before
	assert.Equal(t, 0.0, resolutionHours(d))

	after := d.CreatedAt.Add(90 * time.Minute)
	d.ResolvedAt = &after
	assert.InDelta(t, 1.5, resolutionHours(d), 1e-9)
}

func TestDisputeService_OpenDispute_AssignsSpecialist(t *testing.T) {
	ctx := context.Background()
	svc, m := newDisputeService(t)

	trans := fundedTransaction()
	withTx(ctx, m.db)
	m.transactions.On("GetTransactionForUpdate", ctx, "AB123456", mock.Anything).Return(trans, nil)
	m.disputes.On("GetActiveDisputeByTransaction", ctx, "AB123456", mock.Anything).Return(nil, model.ErrDisputeNotFound)
	m.moderators.On("GetAvailableModerators", ctx, mock.Anything).Return(defaultModerators(), nil)
	m.moderators.On("ReserveCase", ctx, "002", mock.Anything).Return(true, nil)
	m.disputes.On("InsertDispute", ctx, mock.MatchedBy(func(d *model.Dispute) bool {
		return d.ID == "DSP-0000ABCD" &&
			d.Priority == model.PriorityHigh &&
			d.OpenedBy == model.RoleBuyer &&
			d.BuyerID == 2 && d.SellerID == 1 &&
			d.AssignedModerator != nil && *d.AssignedModerator == "002"
	}), mock.Anything).Return(nil)
	m.transactions.On("TransitionStatus", ctx, trans, model.StatusFunded, model.StatusDisputed, mock.Anything).
		Run(applyTransition).Return(true, nil)
	m.disputes.On("InsertMessage", ctx, messageContaining("Dispute opened by buyer. Assigned to moderator @mod_sarah."), mock.Anything).Return(nil)

	d, err := svc.OpenDispute(ctx, model.OpenDisputeInput{
		TransactionID: "AB123456",
		UserID:        2,
		DisputeType:   model.DisputeTypeServiceNotDelivered,
		Reason:        "Nothing delivered",
		Amount:        decimal.RequireFromString("0.01"),
		Currency:      "BTC",
	})

	require.NoError(t, err)
	assert.Equal(t, model.PriorityHigh, d.Priority)
	assert.Equal(t, model.DisputeOpen, d.Status)
	assert.Equal(t, model.StatusDisputed, trans.Status)
}

func TestDisputeService_OpenDispute_SecondDisputeRejected(t *testing.T) {
	ctx := context.Background()
	svc, m := newDisputeService(t)

	withTx(ctx, m.db)
	m.transactions.On("GetTransactionForUpdate", ctx, "AB123456", mock.Anything).Return(fundedTransaction(), nil)
	m.disputes.On("GetActiveDisputeByTransaction", ctx, "AB123456", mock.Anything).Return(activeDispute(), nil)

	_, err := svc.OpenDispute(ctx, model.OpenDisputeInput{TransactionID: "AB123456", UserID: 1, DisputeType: model.DisputeTypeQualityIssue})

	assert.ErrorIs(t, err, model.ErrDisputeAlreadyOpen)
	assert.Equal(t, model.ReasonDisputeAlreadyOpen, model.ReasonOf(err))
	m.disputes.AssertNotCalled(t, "InsertDispute", mock.Anything, mock.Anything, mock.Anything)
	m.moderators.AssertNotCalled(t, "ReserveCase", mock.Anything, mock.Anything, mock.Anything)
}

func TestDisputeService_OpenDispute_Preconditions(t *testing.T) {
	tests := []struct {
		name    string
		status  model.TransactionStatus
		userID  int64
		wantErr error
	}{
		{"outsider", model.StatusFunded, 9, model.ErrNotParticipant},
		{"not yet funded", model.StatusCreated, 2, model.ErrInvalidStatus},
		{"already completed", model.StatusCompleted, 1, model.ErrInvalidStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			svc, m := newDisputeService(t)

			trans := fundedTransaction()
			trans.Status = tt.status
			withTx(ctx, m.db)
			m.transactions.On("GetTransactionForUpdate", ctx, "AB123456", mock.Anything).Return(trans, nil)

			_, err := svc.OpenDispute(ctx, model.OpenDisputeInput{TransactionID: "AB123456", UserID: tt.userID})

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.status, trans.Status)
		})
	}
}

func TestDisputeService_OpenDispute_FallsBackWhenModeratorFillsUp(t *testing.T) {
	ctx := context.Background()
	svc, m := newDisputeService(t)

	trans := fundedTransaction()
	withTx(ctx, m.db)
	m.transactions.On("GetTransactionForUpdate", ctx, "AB123456", mock.Anything).Return(trans, nil)
	m.disputes.On("GetActiveDisputeByTransaction", ctx, "AB123456", mock.Anything).Return(nil, model.ErrDisputeNotFound)
	m.moderators.On("GetAvailableModerators", ctx, mock.Anything).Return(defaultModerators(), nil)
	m.moderators.On("ReserveCase", ctx, "002", mock.Anything).Return(false, nil)
	m.moderators.On("ReserveCase", ctx, "004", mock.Anything).Return(true, nil)
	m.disputes.On("InsertDispute", ctx, mock.MatchedBy(func(d *model.Dispute) bool {
		return *d.AssignedModerator == "004"
	}), mock.Anything).Return(nil)
	m.transactions.On("TransitionStatus", ctx, trans, model.StatusFunded, model.StatusDisputed, mock.Anything).Return(true, nil)
	m.disputes.On("InsertMessage", ctx, messageContaining("@admin_lisa"), mock.Anything).Return(nil)

	d, err := svc.OpenDispute(ctx, model.OpenDisputeInput{TransactionID: "AB123456", UserID: 1, DisputeType: model.DisputeTypeServiceNotDelivered})

	require.NoError(t, err)
	assert.Equal(t, "004", *d.AssignedModerator)
	assert.Equal(t, model.RoleSeller, d.OpenedBy)
}

func TestDisputeService_OpenDispute_NoModeratorStaysPending(t *testing.T) {
	ctx := context.Background()
	svc, m := newDisputeService(t)

	trans := fundedTransaction()
	withTx(ctx, m.db)
	m.transactions.On("GetTransactionForUpdate", ctx, "AB123456", mock.Anything).Return(trans, nil)
	m.disputes.On("GetActiveDisputeByTransaction", ctx, "AB123456", mock.Anything).Return(nil, model.ErrDisputeNotFound)
	m.moderators.On("GetAvailableModerators", ctx, mock.Anything).Return([]*model.Moderator{}, nil)
	m.disputes.On("InsertDispute", ctx, mock.MatchedBy(func(d *model.Dispute) bool {
		return d.AssignedModerator == nil && d.Priority == model.PriorityUrgent
	}), mock.Anything).Return(nil)
	m.transactions.On("TransitionStatus", ctx, trans, model.StatusFunded, model.StatusDisputed, mock.Anything).Return(true, nil)
	m.disputes.On("InsertMessage", ctx, messageContaining("@pending"), mock.Anything).Return(nil)

	d, err := svc.OpenDispute(ctx, model.OpenDisputeInput{TransactionID: "AB123456", UserID: 2, Amount: decimal.RequireFromString("0.5")})

	require.NoError(t, err)
	assert.Nil(t, d.AssignedModerator)
}

func resolveAt(hours float64) func(mock.Arguments) {
	return func(args mock.Arguments) {
		d := args.Get(1).(*model.Dispute)
		resolvedAt := d.CreatedAt.Add(time.Duration(hours * float64(time.Hour)))
		d.Status = model.DisputeResolved
		d.ResolvedAt = &resolvedAt
		d.LastUpdated = resolvedAt
	}
}

func TestDisputeService_ResolveDispute_SellerCompletesTransaction(t *testing.T) {
	ctx := context.Background()
	svc, m := newDisputeService(t)

	d := activeDispute()
	trans := fundedTransaction()
	trans.Status = model.StatusDisputed
	resolver := &model.Moderator{ID: "002", Username: "mod_sarah", RoleLevel: model.LevelLead, CasesResolved: 4, AverageResolutionTime: 10}

	withTx(ctx, m.db)
	m.disputes.On("GetDisputeForUpdate", ctx, d.ID, mock.Anything).Return(d, nil)
	m.moderators.On("GetModeratorForUpdate", ctx, "002", mock.Anything).Return(resolver, nil)
	m.disputes.On("ResolveDispute", ctx, d, mock.Anything).Run(resolveAt(6)).Return(true, nil)
	m.transactions.On("GetTransactionForUpdate", ctx, "AB123456", mock.Anything).Return(trans, nil)
	m.transactions.On("TransitionStatus", ctx, trans, model.StatusDisputed, model.StatusCompleted, mock.Anything).
		Run(applyTransition).Return(true, nil)
	m.moderators.On("ReleaseCase", ctx, "002", mock.Anything).Return(nil)
	m.moderators.On("RecordResolution", ctx, "002", 5, mock.MatchedBy(func(avg float64) bool {
		return avg > 9.19 && avg < 9.21
	}), mock.Anything).Return(nil)
	m.disputes.On("InsertMessage", ctx, messageContaining("Resolution: seller"), mock.Anything).Return(nil)
	m.trades.On("RecordTradeCompletion", ctx, "2", false).Return(nil).Once()
	m.trades.On("RecordTradeCompletion", ctx, "1", true).Return(nil).Once()

	got, err := svc.ResolveDispute(ctx, model.ResolveDisputeInput{
		DisputeID:      d.ID,
		ModeratorID:    "002",
		ResolutionType: model.ResolutionSeller,
		Notes:          "Tracking shows delivery",
	})

	require.NoError(t, err)
	assert.Equal(t, model.DisputeResolved, got.Status)
	assert.Equal(t, model.ResolutionSeller, *got.ResolutionType)
	assert.Equal(t, model.StatusCompleted, trans.Status)
	assert.NotNil(t, trans.CompletedAt)
}

func TestDisputeService_ResolveDispute_RefundWithoutAssignee(t *testing.T) {
	ctx := context.Background()
	svc, m := newDisputeService(t)

	d := activeDispute()
	d.AssignedModerator, d.ModeratorUsername = nil, nil
	trans := fundedTransaction()
	trans.Status = model.StatusDisputed

	withTx(ctx, m.db)
	m.disputes.On("GetDisputeForUpdate", ctx, d.ID, mock.Anything).Return(d, nil)
	m.disputes.On("ResolveDispute", ctx, d, mock.Anything).Run(resolveAt(1)).Return(true, nil)
	m.transactions.On("GetTransactionForUpdate", ctx, "AB123456", mock.Anything).Return(trans, nil)
	m.transactions.On("TransitionStatus", ctx, trans, model.StatusDisputed, model.StatusRefunded, mock.Anything).
		Run(applyTransition).Return(true, nil)
	m.disputes.On("InsertMessage", ctx, messageContaining("Resolution: refund"), mock.Anything).Return(nil)
	m.trades.On("RecordTradeCompletion", ctx, "2", true).Return(nil).Once()
	m.trades.On("RecordTradeCompletion", ctx, "1", false).Return(nil).Once()

	_, err := svc.ResolveDispute(ctx, model.ResolveDisputeInput{DisputeID: d.ID, ResolutionType: model.ResolutionRefund})

	require.NoError(t, err)
	assert.Equal(t, model.StatusRefunded, trans.Status)
	m.moderators.AssertNotCalled(t, "ReleaseCase", mock.Anything, mock.Anything, mock.Anything)
	m.moderators.AssertNotCalled(t, "RecordResolution", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestDisputeService_ResolveDispute_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		status   model.DisputeStatus
		resolver *model.Moderator
		wantErr  error
	}{
		{"other moderator", model.DisputeOpen, &model.Moderator{ID: "003", RoleLevel: model.LevelJunior}, model.ErrModeratorNotAssigned},
		{"already resolved", model.DisputeResolved, &model.Moderator{ID: "002", RoleLevel: model.LevelLead}, model.ErrDisputeNotOpen},
		{"closed even for admin", model.DisputeClosed, &model.Moderator{ID: "004", RoleLevel: model.LevelAdmin}, model.ErrDisputeNotOpen},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			svc, m := newDisputeService(t)

			d := activeDispute()
			d.Status = tt.status
			withTx(ctx, m.db)
			m.disputes.On("GetDisputeForUpdate", ctx, d.ID, mock.Anything).Return(d, nil)
			m.moderators.On("GetModeratorForUpdate", ctx, tt.resolver.ID, mock.Anything).Return(tt.resolver, nil)
			m.moderators.On("GetModeratorForUpdate", ctx, "002", mock.Anything).
				Return(&model.Moderator{ID: "002", RoleLevel: model.LevelLead}, nil).Maybe()

			_, err := svc.ResolveDispute(ctx, model.ResolveDisputeInput{DisputeID: d.ID, ModeratorID: tt.resolver.ID, ResolutionType: model.ResolutionBuyer})

			assert.ErrorIs(t, err, tt.wantErr)
			m.disputes.AssertNotCalled(t, "ResolveDispute", mock.Anything, mock.Anything, mock.Anything)
			m.trades.AssertNotCalled(t, "RecordTradeCompletion", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestDisputeService_ResolveDispute_LocksModeratorsInIDOrder(t *testing.T) {
	tests := []struct {
		name       string
		resolverID string
		want       []string
	}{
		{"resolver after assignee", "004", []string{"002", "004"}},
		{"resolver before assignee", "001", []string{"001", "002"}},
		{"resolver is assignee", "002", []string{"002"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			svc, m := newDisputeService(t)

			d := activeDispute()
			trans := fundedTransaction()
			trans.Status = model.StatusDisputed

			var order []string
			withTx(ctx, m.db)
			m.disputes.On("GetDisputeForUpdate", ctx, d.ID, mock.Anything).Return(d, nil)
			m.moderators.On("GetModeratorForUpdate", ctx, mock.Anything, mock.Anything).
				Run(func(args mock.Arguments) { order = append(order, args.String(1)) }).
				Return(func(_ context.Context, id string, _ pgx.Tx) *model.Moderator {
					return &model.Moderator{ID: id, RoleLevel: model.LevelAdmin}
				}, nil)
			m.disputes.On("ResolveDispute", ctx, d, mock.Anything).Run(resolveAt(2)).Return(true, nil)
			m.transactions.On("GetTransactionForUpdate", ctx, "AB123456", mock.Anything).Return(trans, nil)
			m.transactions.On("TransitionStatus", ctx, trans, model.StatusDisputed, model.StatusRefunded, mock.Anything).
				Run(applyTransition).Return(true, nil)
			m.moderators.On("ReleaseCase", ctx, "002", mock.Anything).Return(nil)
			m.moderators.On("RecordResolution", ctx, tt.resolverID, 1, mock.Anything, mock.Anything).Return(nil)
			m.disputes.On("InsertMessage", ctx, messageContaining("Resolution: buyer"), mock.Anything).Return(nil)
			m.trades.On("RecordTradeCompletion", ctx, mock.Anything, mock.Anything).Return(nil)

			_, err := svc.ResolveDispute(ctx, model.ResolveDisputeInput{DisputeID: d.ID, ModeratorID: tt.resolverID, ResolutionType: model.ResolutionBuyer})

			require.NoError(t, err)
			assert.Equal(t, tt.want, order)
		})
	}
}

func TestDisputeService_AddMessage(t *testing.T) {
	ctx := context.Background()

	t.Run("system role reserved", func(t *testing.T) {
		svc, _ := newDisputeService(t)
		_, err := svc.AddMessage(ctx, model.AddMessageInput{DisputeID: "DSP-0000ABCD", SenderID: "system", SenderRole: model.RoleSystem, Content: "hi"})
		assert.ErrorIs(t, err, model.ErrReservedSenderRole)
	})

	t.Run("buyer id must match", func(t *testing.T) {
		svc, m := newDisputeService(t)
		withTx(ctx, m.db)
		m.disputes.On("GetDispute", ctx, "DSP-0000ABCD", mock.Anything).Return(activeDispute(), nil)

		_, err := svc.AddMessage(ctx, model.AddMessageInput{DisputeID: "DSP-0000ABCD", SenderID: "1", SenderRole: model.RoleBuyer, Content: "hi"})
		assert.ErrorIs(t, err, model.ErrNotParticipant)
	})

	t.Run("seller message appended", func(t *testing.T) {
		svc, m := newDisputeService(t)
		withTx(ctx, m.db)
		m.disputes.On("GetDispute", ctx, "DSP-0000ABCD", mock.Anything).Return(activeDispute(), nil)
		m.disputes.On("InsertMessage", ctx, mock.MatchedBy(func(msg *model.DisputeMessage) bool {
			return msg.SenderRole == model.RoleSeller && msg.MessageType == model.MessageText && msg.Content == "invoice attached"
		}), mock.Anything).Return(nil)

		msg, err := svc.AddMessage(ctx, model.AddMessageInput{DisputeID: "DSP-0000ABCD", SenderID: "1", SenderRole: model.RoleSeller, Content: "invoice attached"})
		require.NoError(t, err)
		assert.NotEmpty(t, msg.ID)
	})

	t.Run("closed dispute", func(t *testing.T) {
		svc, m := newDisputeService(t)
		d := activeDispute()
		d.Status = model.DisputeClosed
		withTx(ctx, m.db)
		m.disputes.On("GetDispute", ctx, "DSP-0000ABCD", mock.Anything).Return(d, nil)

		_, err := svc.AddMessage(ctx, model.AddMessageInput{DisputeID: "DSP-0000ABCD", SenderID: "2", SenderRole: model.RoleBuyer, Content: "hello?"})
		assert.ErrorIs(t, err, model.ErrDisputeNotOpen)
	})
}

func TestDisputeService_RespondToDispute_OnlyCounterParty(t *testing.T) {
	ctx := context.Background()
	svc, m := newDisputeService(t)

	withTx(ctx, m.db)
	m.disputes.On("GetDisputeForUpdate", ctx, "DSP-0000ABCD", mock.Anything).Return(activeDispute(), nil)

	_, err := svc.RespondToDispute(ctx, "DSP-0000ABCD", 2, "I opened it")
	assert.ErrorIs(t, err, model.ErrNotParticipant)

	m.disputes.On("SetResponse", ctx, "DSP-0000ABCD", "Files were sent", mock.Anything).Return(nil)
	m.disputes.On("InsertMessage", ctx, mock.MatchedBy(func(msg *model.DisputeMessage) bool {
		return msg.SenderRole == model.RoleSeller && msg.SenderID == "1"
	}), mock.Anything).Return(nil)

	d, err := svc.RespondToDispute(ctx, "DSP-0000ABCD", 1, "Files were sent")
	require.NoError(t, err)
	assert.Equal(t, "Files were sent", *d.Response)
}

func TestDisputeService_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("terminal target rejected", func(t *testing.T) {
		svc, _ := newDisputeService(t)
		_, err := svc.UpdateStatus(ctx, "DSP-0000ABCD", "002", model.DisputeResolved)
		assert.ErrorIs(t, err, model.ErrInvalidDisputeStatus)
	})

	t.Run("assignee moves to investigating", func(t *testing.T) {
		svc, m := newDisputeService(t)
		withTx(ctx, m.db)
		m.disputes.On("GetDisputeForUpdate", ctx, "DSP-0000ABCD", mock.Anything).Return(activeDispute(), nil)
		m.moderators.On("GetModerator", ctx, "002", mock.Anything).Return(&model.Moderator{ID: "002", Username: "mod_sarah"}, nil)
		m.disputes.On("UpdateDisputeStatus", ctx, "DSP-0000ABCD", model.DisputeInvestigating, mock.Anything).Return(true, nil)
		m.disputes.On("InsertMessage", ctx, messageContaining("changed to investigating by @mod_sarah"), mock.Anything).Return(nil)

		d, err := svc.UpdateStatus(ctx, "DSP-0000ABCD", "002", model.DisputeInvestigating)
		require.NoError(t, err)
		assert.Equal(t, model.DisputeInvestigating, d.Status)
	})
}

func TestDisputeService_CloseDispute_RequiresResolved(t *testing.T) {
	ctx := context.Background()
	svc, m := newDisputeService(t)

	withTx(ctx, m.db)
	m.disputes.On("GetDisputeForUpdate", ctx, "DSP-0000ABCD", mock.Anything).Return(activeDispute(), nil)
	m.moderators.On("GetModerator", ctx, "004", mock.Anything).Return(&model.Moderator{ID: "004", RoleLevel: model.LevelAdmin}, nil)

	_, err := svc.CloseDispute(ctx, "DSP-0000ABCD", "004")
	assert.ErrorIs(t, err, model.ErrDisputeNotResolved)
}

func TestDisputeService_AssignPending_StopsWhenNobodyAvailable(t *testing.T) {
	ctx := context.Background()
	svc, m := newDisputeService(t)

	first, second := activeDispute(), activeDispute()
	first.AssignedModerator, second.AssignedModerator = nil, nil
	second.ID = "DSP-0000FFFF"

	m.disputes.On("GetUnassignedDisputes", ctx, 10).Return([]*model.Dispute{first, second}, nil)
	withTx(ctx, m.db)
	m.disputes.On("GetDisputeForUpdate", ctx, first.ID, mock.Anything).Return(first, nil)
	m.moderators.On("GetAvailableModerators", ctx, mock.Anything).Return([]*model.Moderator{}, nil)

	assigned, err := svc.AssignPending(ctx)

	require.NoError(t, err)
	assert.Equal(t, 0, assigned)
	m.disputes.AssertNotCalled(t, "GetDisputeForUpdate", ctx, second.ID, mock.Anything)
}

func TestDisputeService_AssignModerator(t *testing.T) {
	ctx := context.Background()
	svc, m := newDisputeService(t)

	d := activeDispute()
	d.AssignedModerator, d.ModeratorUsername = nil, nil
	d.DisputeType = model.DisputeTypeQualityIssue

	withTx(ctx, m.db)
	m.disputes.On("GetDisputeForUpdate", ctx, d.ID, mock.Anything).Return(d, nil)
	m.moderators.On("GetAvailableModerators", ctx, mock.Anything).Return(defaultModerators(), nil)
	m.moderators.On("ReserveCase", ctx, "003", mock.Anything).Return(true, nil)
	m.disputes.On("AssignModerator", ctx, d.ID, "003", "mod_mike", mock.Anything).Return(true, nil)
	m.disputes.On("InsertMessage", ctx, messageContaining("@mod_mike"), mock.Anything).Return(nil)

	got, err := svc.AssignModerator(ctx, d.ID)

	require.NoError(t, err)
	assert.Equal(t, "003", *got.AssignedModerator)
}

func TestDisputeService_RegisterModerator(t *testing.T) {
	ctx := context.Background()
	svc, m := newDisputeService(t)

	_, err := svc.RegisterModerator(ctx, model.RegisterModeratorInput{ID: "005", RoleLevel: "boss"})
	assert.ErrorIs(t, err, model.ErrValidation)

	m.moderators.On("InsertModerator", ctx, mock.MatchedBy(func(mod *model.Moderator) bool {
		return mod.ID == "005" && mod.MaxCaseLoad == defaultMaxCaseLoad
	})).Return(nil)

	mod, err := svc.RegisterModerator(ctx, model.RegisterModeratorInput{ID: "005", Username: "mod_lena", RoleLevel: model.LevelSenior})
	require.NoError(t, err)
	assert.Equal(t, defaultMaxCaseLoad, mod.MaxCaseLoad)
}

func TestDisputeService_GetModeratorStats(t *testing.T) {
	ctx := context.Background()
	svc, m := newDisputeService(t)

	m.moderators.On("GetModerator", ctx, "001").Return(&model.Moderator{
		ID: "001", CasesHandled: 8, CasesResolved: 6, AverageResolutionTime: 12.3456,
	}, nil)
	m.moderators.On("GetModerator", ctx, "009").Return(nil, model.ErrModeratorNotFound)

	stats, err := svc.GetModeratorStats(ctx, "001")
	require.NoError(t, err)
	assert.InDelta(t, 75.0, stats.SuccessRate, 1e-9)
	assert.Equal(t, 12.35, stats.AverageResolutionTime)

	_, err = svc.GetModeratorStats(ctx, "009")
	assert.ErrorIs(t, err, model.ErrModeratorNotFound)
}
