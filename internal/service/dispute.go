package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"slices"
	"sort"
	"strconv"
	"strings"

	"escrow-service/internal/idgen"
	"escrow-service/internal/metrics"
	"escrow-service/internal/model"
	"escrow-service/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const (
	systemSenderID       = "system"
	systemSenderUsername = "EscrowBot"
	defaultMaxCaseLoad   = 10
)

var (
	urgentThreshold = decimal.RequireFromString("0.1")
	highThreshold   = decimal.RequireFromString("0.05")
)

type DisputeServiceImpl struct {
	disputeRepo     repository.DisputeRepository
	moderatorRepo   repository.ModeratorRepository
	transactionRepo repository.TransactionRepository
	dbManager       repository.DBManager
	trades          TradeRecorder
	batchSize       int
	logger          zerolog.Logger
	newID           func() string
}

func NewDisputeService(
	disputeRepo repository.DisputeRepository,
	moderatorRepo repository.ModeratorRepository,
	transactionRepo repository.TransactionRepository,
	dbManager repository.DBManager,
	trades TradeRecorder,
	batchSize int,
	logger zerolog.Logger,
) DisputeService {
	return &DisputeServiceImpl{
		disputeRepo:     disputeRepo,
		moderatorRepo:   moderatorRepo,
		transactionRepo: transactionRepo,
		dbManager:       dbManager,
		trades:          trades,
		batchSize:       batchSize,
		logger:          logger,
		newID:           idgen.DisputeID,
	}
}

// CalculatePriority ranks a dispute by amount first, then by type.
// Thresholds are in the reference currency unit (BTC).
func CalculatePriority(amount decimal.Decimal, disputeType string) model.Priority {
	switch {
	case amount.GreaterThanOrEqual(urgentThreshold):
		return model.PriorityUrgent
	case amount.GreaterThanOrEqual(highThreshold):
		return model.PriorityHigh
	case disputeType == model.DisputeTypePaymentNotReceived, disputeType == model.DisputeTypeServiceNotDelivered:
		return model.PriorityHigh
	default:
		return model.PriorityNormal
	}
}

// SelectModerator picks the first eligible specialist for the dispute type, otherwise the
// least loaded eligible moderator with admins winning ties. Returns nil when nobody can take the case.
func SelectModerator(candidates []*model.Moderator, disputeType string) *model.Moderator {
	eligible := make([]*model.Moderator, 0, len(candidates))
	for _, m := range candidates {
		if m.CanTakeCase() {
			eligible = append(eligible, m)
		}
	}
	if len(eligible) == 0 {
		return nil
	}

	needle := strings.ToLower(disputeType)
	for _, m := range eligible {
		if needle != "" && strings.Contains(strings.ToLower(m.Specialization), needle) {
			return m
		}
	}

	sort.SliceStable(eligible, func(i, j int) bool {
		if eligible[i].CurrentCaseLoad != eligible[j].CurrentCaseLoad {
			return eligible[i].CurrentCaseLoad < eligible[j].CurrentCaseLoad
		}
		return eligible[i].RoleLevel == model.LevelAdmin && eligible[j].RoleLevel != model.LevelAdmin
	})
	return eligible[0]
}

// nextAverage folds sample into a mean over n previous samples
func nextAverage(avg float64, n int, sample float64) float64 {
	if n <= 0 {
		return sample
	}
	return (avg*float64(n) + sample) / float64(n+1)
}

func (s *DisputeServiceImpl) OpenDispute(ctx context.Context, in model.OpenDisputeInput) (*model.Dispute, error) {
	var dispute *model.Dispute

	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		trans, err := s.transactionRepo.GetTransactionForUpdate(ctx, in.TransactionID, tx)
		if err != nil {
			return fmt.Errorf("get transaction for update: %w", err)
		}

		role, ok := trans.RoleOf(in.UserID)
		if !ok {
			return model.ErrNotParticipant
		}

		if trans.BuyerID == nil || (trans.Status != model.StatusFunded && trans.Status != model.StatusConfirmed) {
			return fmt.Errorf("%w: cannot dispute a %s transaction", model.ErrInvalidStatus, trans.Status)
		}

		_, err = s.disputeRepo.GetActiveDisputeByTransaction(ctx, trans.ID, tx)
		switch {
		case err == nil:
			return model.ErrDisputeAlreadyOpen
		case !errors.Is(err, model.ErrDisputeNotFound):
			return fmt.Errorf("check active dispute: %w", err)
		}

		moderator, err := s.reserveModerator(ctx, in.DisputeType, tx)
		if err != nil {
			return err
		}

		dispute = &model.Dispute{
			ID:            s.newID(),
			TransactionID: trans.ID,
			TradeTitle:    trans.Title,
			BuyerID:       *trans.BuyerID,
			SellerID:      trans.SellerID,
			DisputeType:   in.DisputeType,
			OpenedBy:      role,
			Reason:        in.Reason,
			Evidence:      in.Evidence,
			Amount:        in.Amount,
			Currency:      in.Currency,
			Status:        model.DisputeOpen,
			Priority:      CalculatePriority(in.Amount, in.DisputeType),
		}
		pending := "pending"
		if moderator != nil {
			dispute.AssignedModerator = &moderator.ID
			dispute.ModeratorUsername = &moderator.Username
			pending = moderator.Username
		}

		if err := s.disputeRepo.InsertDispute(ctx, dispute, tx); err != nil {
			return fmt.Errorf("insert dispute: %w", err)
		}

		updated, err := s.transactionRepo.TransitionStatus(ctx, trans, trans.Status, model.StatusDisputed, tx)
		if err != nil {
			return fmt.Errorf("transition status: %w", err)
		}
		if !updated {
			return fmt.Errorf("%w: transaction %s changed concurrently", model.ErrInvalidStatus, trans.ID)
		}

		return s.systemMessage(ctx, dispute.ID,
			fmt.Sprintf("Dispute opened by %s. Assigned to moderator @%s.", role, pending), tx)
	})
	if err != nil {
		return nil, s.reject(err, logIDs{transactionID: in.TransactionID, userID: in.UserID})
	}

	metrics.DisputesOpenedTotal.WithLabelValues(string(dispute.Priority)).Inc()
	metrics.TransactionTransitionsTotal.WithLabelValues(string(model.StatusDisputed)).Inc()

	event := s.logger.Info().
		Str("dispute_id", dispute.ID).
		Str("transaction_id", dispute.TransactionID).
		Str("opened_by", string(dispute.OpenedBy)).
		Str("priority", string(dispute.Priority))
	if dispute.AssignedModerator != nil {
		event = event.Str("moderator_id", *dispute.AssignedModerator)
	}
	event.Msg("dispute opened")

	return dispute, nil
}

// reserveModerator selects a moderator and takes a case slot, moving on to the next
// candidate when a concurrent assignment filled the chosen one
func (s *DisputeServiceImpl) reserveModerator(ctx context.Context, disputeType string, tx pgx.Tx) (*model.Moderator, error) {
	candidates, err := s.moderatorRepo.GetAvailableModerators(ctx, tx)
	if err != nil {
		return nil, fmt.Errorf("get available moderators: %w", err)
	}

	for len(candidates) > 0 {
		pick := SelectModerator(candidates, disputeType)
		if pick == nil {
			return nil, nil
		}

		reserved, err := s.moderatorRepo.ReserveCase(ctx, pick.ID, tx)
		if err != nil {
			return nil, fmt.Errorf("reserve moderator case: %w", err)
		}
		if reserved {
			pick.CurrentCaseLoad++
			pick.CasesHandled++
			return pick, nil
		}

		s.logger.Debug().Str("moderator_id", pick.ID).Msg("moderator filled up concurrently, trying next")
		candidates = without(candidates, pick.ID)
	}
	return nil, nil
}

func without(moderators []*model.Moderator, id string) []*model.Moderator {
	out := make([]*model.Moderator, 0, len(moderators))
	for _, m := range moderators {
		if m.ID != id {
			out = append(out, m)
		}
	}
	return out
}

// AssignModerator retries assignment for an active dispute that has no moderator.
// An already assigned dispute is returned unchanged.
func (s *DisputeServiceImpl) AssignModerator(ctx context.Context, disputeID string) (*model.Dispute, error) {
	var dispute *model.Dispute

	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		d, err := s.disputeRepo.GetDisputeForUpdate(ctx, disputeID, tx)
		if err != nil {
			return fmt.Errorf("get dispute for update: %w", err)
		}
		dispute = d

		if !d.Status.IsActive() {
			return model.ErrDisputeNotOpen
		}
		if d.AssignedModerator != nil {
			return nil
		}

		moderator, err := s.reserveModerator(ctx, d.DisputeType, tx)
		if err != nil {
			return err
		}
		if moderator == nil {
			return model.ErrModeratorUnavailable
		}

		assigned, err := s.disputeRepo.AssignModerator(ctx, d.ID, moderator.ID, moderator.Username, tx)
		if err != nil {
			return fmt.Errorf("assign moderator: %w", err)
		}
		if !assigned {
			return model.ErrDisputeNotOpen
		}
		d.AssignedModerator = &moderator.ID
		d.ModeratorUsername = &moderator.Username

		return s.systemMessage(ctx, d.ID, fmt.Sprintf("Assigned to moderator @%s.", moderator.Username), tx)
	})
	if err != nil {
		return nil, s.reject(err, logIDs{disputeID: disputeID})
	}

	s.logger.Info().Str("dispute_id", dispute.ID).Str("moderator_id", *dispute.AssignedModerator).Msg("moderator assigned")
	return dispute, nil
}

func (s *DisputeServiceImpl) AssignPending(ctx context.Context) (int, error) {
	disputes, err := s.disputeRepo.GetUnassignedDisputes(ctx, s.batchSize)
	if err != nil {
		return 0, fmt.Errorf("get unassigned disputes: %w", err)
	}

	if len(disputes) == 0 {
		metrics.UnassignedDisputes.Set(0)
		s.logger.Debug().Msg("no unassigned disputes")
		return 0, nil
	}

	var assigned int
	for _, d := range disputes {
		select {
		case <-ctx.Done():
			return assigned, ctx.Err()
		default:
		}

		_, err := s.AssignModerator(ctx, d.ID)
		if errors.Is(err, model.ErrModeratorUnavailable) {
			// nobody has capacity, the rest of the batch would fail the same way
			break
		}
		if err != nil {
			s.logger.Error().Err(err).Str("dispute_id", d.ID).Msg("failed to assign moderator")
			continue
		}
		assigned++
	}

	metrics.UnassignedDisputes.Set(float64(len(disputes) - assigned))
	s.logger.Info().
		Int("requested", len(disputes)).
		Int("assigned", assigned).
		Msg("pending dispute assignment completed")

	return assigned, nil
}

func (s *DisputeServiceImpl) AddMessage(ctx context.Context, in model.AddMessageInput) (*model.DisputeMessage, error) {
	switch in.SenderRole {
	case model.RoleSystem:
		return nil, s.reject(model.ErrReservedSenderRole, logIDs{disputeID: in.DisputeID})
	case model.RoleBuyer, model.RoleSeller, model.RoleModerator:
	default:
		return nil, fmt.Errorf("%w: unknown sender role %q", model.ErrValidation, in.SenderRole)
	}

	msg := &model.DisputeMessage{
		ID:             idgen.MessageID(),
		DisputeID:      in.DisputeID,
		SenderID:       in.SenderID,
		SenderUsername: in.SenderUsername,
		SenderRole:     in.SenderRole,
		MessageType:    in.MessageType,
		Content:        in.Content,
		Attachments:    in.Attachments,
	}
	if msg.MessageType == "" {
		msg.MessageType = model.MessageText
	}

	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		d, err := s.disputeRepo.GetDispute(ctx, in.DisputeID, tx)
		if err != nil {
			return fmt.Errorf("get dispute: %w", err)
		}

		if err := s.authorizeSender(ctx, d, in.SenderRole, in.SenderID, tx); err != nil {
			return err
		}
		if d.Status == model.DisputeClosed {
			return model.ErrDisputeNotOpen
		}

		if err := s.disputeRepo.InsertMessage(ctx, msg, tx); err != nil {
			return fmt.Errorf("insert message: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, s.reject(err, logIDs{disputeID: in.DisputeID})
	}

	s.logger.Info().
		Str("dispute_id", msg.DisputeID).
		Str("sender_role", string(msg.SenderRole)).
		Str("message_type", msg.MessageType).
		Msg("dispute message added")

	return msg, nil
}

func (s *DisputeServiceImpl) authorizeSender(ctx context.Context, d *model.Dispute, role model.PartyRole, senderID string, tx pgx.Tx) error {
	switch role {
	case model.RoleBuyer:
		if senderID != strconv.FormatInt(d.BuyerID, 10) {
			return model.ErrNotParticipant
		}
	case model.RoleSeller:
		if senderID != strconv.FormatInt(d.SellerID, 10) {
			return model.ErrNotParticipant
		}
	case model.RoleModerator:
		moderator, err := s.moderatorRepo.GetModerator(ctx, senderID, tx)
		if err != nil {
			return fmt.Errorf("get moderator: %w", err)
		}
		return authorizeModerator(d, moderator)
	}
	return nil
}

// authorizeModerator allows the assignee and any admin
func authorizeModerator(d *model.Dispute, moderator *model.Moderator) error {
	if moderator.RoleLevel == model.LevelAdmin {
		return nil
	}
	if d.AssignedModerator == nil || *d.AssignedModerator != moderator.ID {
		return model.ErrModeratorNotAssigned
	}
	return nil
}

func (s *DisputeServiceImpl) GetMessages(ctx context.Context, disputeID string) ([]*model.DisputeMessage, error) {
	if _, err := s.disputeRepo.GetDispute(ctx, disputeID); err != nil {
		return nil, fmt.Errorf("get dispute: %w", err)
	}
	messages, err := s.disputeRepo.GetMessages(ctx, disputeID)
	if err != nil {
		return nil, fmt.Errorf("get messages: %w", err)
	}
	return messages, nil
}

// UpdateStatus moves an active dispute between the working statuses
func (s *DisputeServiceImpl) UpdateStatus(ctx context.Context, disputeID, moderatorID string, status model.DisputeStatus) (*model.Dispute, error) {
	if !status.IsActive() {
		return nil, fmt.Errorf("%w: %q is set by resolve or close", model.ErrInvalidDisputeStatus, status)
	}

	var dispute *model.Dispute
	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		d, err := s.disputeRepo.GetDisputeForUpdate(ctx, disputeID, tx)
		if err != nil {
			return fmt.Errorf("get dispute for update: %w", err)
		}
		dispute = d

		moderator, err := s.moderatorRepo.GetModerator(ctx, moderatorID, tx)
		if err != nil {
			return fmt.Errorf("get moderator: %w", err)
		}
		if err := authorizeModerator(d, moderator); err != nil {
			return err
		}
		if !d.Status.IsActive() {
			return model.ErrDisputeNotOpen
		}
		if d.Status == status {
			return nil
		}

		updated, err := s.disputeRepo.UpdateDisputeStatus(ctx, d.ID, status, tx)
		if err != nil {
			return fmt.Errorf("update dispute status: %w", err)
		}
		if !updated {
			return model.ErrDisputeNotOpen
		}
		d.Status = status

		return s.systemMessage(ctx, d.ID, fmt.Sprintf("Dispute status changed to %s by @%s.", status, moderator.Username), tx)
	})
	if err != nil {
		return nil, s.reject(err, logIDs{disputeID: disputeID, moderatorID: moderatorID})
	}

	s.logger.Info().Str("dispute_id", disputeID).Str("moderator_id", moderatorID).Str("status", string(status)).Msg("dispute status changed")
	return dispute, nil
}

// RespondToDispute stores the counter-party's answer to the dispute reason
func (s *DisputeServiceImpl) RespondToDispute(ctx context.Context, disputeID string, userID int64, response string) (*model.Dispute, error) {
	var dispute *model.Dispute

	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		d, err := s.disputeRepo.GetDisputeForUpdate(ctx, disputeID, tx)
		if err != nil {
			return fmt.Errorf("get dispute for update: %w", err)
		}
		dispute = d

		var role model.PartyRole
		switch userID {
		case d.BuyerID:
			role = model.RoleBuyer
		case d.SellerID:
			role = model.RoleSeller
		default:
			return model.ErrNotParticipant
		}
		if role == d.OpenedBy {
			return fmt.Errorf("%w: only the other party can respond", model.ErrNotParticipant)
		}
		if !d.Status.IsActive() {
			return model.ErrDisputeNotOpen
		}

		if err := s.disputeRepo.SetResponse(ctx, d.ID, response, tx); err != nil {
			return fmt.Errorf("set response: %w", err)
		}
		d.Response = &response

		msg := &model.DisputeMessage{
			ID:          idgen.MessageID(),
			DisputeID:   d.ID,
			SenderID:    strconv.FormatInt(userID, 10),
			SenderRole:  role,
			MessageType: model.MessageText,
			Content:     response,
		}
		if err := s.disputeRepo.InsertMessage(ctx, msg, tx); err != nil {
			return fmt.Errorf("insert message: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, s.reject(err, logIDs{disputeID: disputeID, userID: userID})
	}

	s.logger.Info().Str("dispute_id", disputeID).Int64("user_id", userID).Msg("dispute response recorded")
	return dispute, nil
}

// ResolveDispute settles an active dispute. An empty ModeratorID is a system resolution
// that skips resolver stats.
func (s *DisputeServiceImpl) ResolveDispute(ctx context.Context, in model.ResolveDisputeInput) (*model.Dispute, error) {
	var (
		dispute *model.Dispute
		trans   *model.Transaction
	)

	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		d, err := s.disputeRepo.GetDisputeForUpdate(ctx, in.DisputeID, tx)
		if err != nil {
			return fmt.Errorf("get dispute for update: %w", err)
		}
		dispute = d

		assignee := ""
		if d.AssignedModerator != nil {
			assignee = *d.AssignedModerator
		}
		locked, err := s.lockModerators(ctx, tx, in.ModeratorID, assignee)
		if err != nil {
			return err
		}

		var resolver *model.Moderator
		if in.ModeratorID != "" {
			resolver = locked[in.ModeratorID]
			if err := authorizeModerator(d, resolver); err != nil {
				return err
			}
		}

		if !d.Status.IsActive() {
			return model.ErrDisputeNotOpen
		}

		resolution := in.ResolutionType
		d.ResolutionType = &resolution
		d.ResolutionNotes = &in.Notes
		d.ModeratorDecision = &in.Decision

		resolved, err := s.disputeRepo.ResolveDispute(ctx, d, tx)
		if err != nil {
			return fmt.Errorf("resolve dispute: %w", err)
		}
		if !resolved {
			return model.ErrDisputeNotOpen
		}

		trans, err = s.transactionRepo.GetTransactionForUpdate(ctx, d.TransactionID, tx)
		if err != nil {
			return fmt.Errorf("get transaction for update: %w", err)
		}
		target := resolution.TransactionStatus()
		if !model.ValidTransition(trans.Status, target) {
			return fmt.Errorf("%w: cannot settle a %s transaction as %s", model.ErrInvalidStatus, trans.Status, target)
		}
		updated, err := s.transactionRepo.TransitionStatus(ctx, trans, model.StatusDisputed, target, tx)
		if err != nil {
			return fmt.Errorf("transition status: %w", err)
		}
		if !updated {
			return fmt.Errorf("%w: transaction %s changed concurrently", model.ErrInvalidStatus, trans.ID)
		}

		if d.AssignedModerator != nil {
			if err := s.moderatorRepo.ReleaseCase(ctx, *d.AssignedModerator, tx); err != nil {
				return fmt.Errorf("release moderator case: %w", err)
			}
		}

		if resolver != nil {
			hours := resolutionHours(d)
			avg := nextAverage(resolver.AverageResolutionTime, resolver.CasesResolved, hours)
			if err := s.moderatorRepo.RecordResolution(ctx, resolver.ID, resolver.CasesResolved+1, avg, tx); err != nil {
				return fmt.Errorf("record resolution: %w", err)
			}
		}

		return s.systemMessage(ctx, d.ID, fmt.Sprintf("Dispute resolved by moderator. Resolution: %s", resolution), tx)
	})
	if err != nil {
		return nil, s.reject(err, logIDs{disputeID: in.DisputeID, moderatorID: in.ModeratorID})
	}

	metrics.DisputesResolvedTotal.WithLabelValues(string(in.ResolutionType)).Inc()
	metrics.DisputeResolutionHours.Observe(resolutionHours(dispute))
	metrics.TransactionTransitionsTotal.WithLabelValues(string(trans.Status)).Inc()
	s.logger.Info().
		Str("dispute_id", dispute.ID).
		Str("transaction_id", dispute.TransactionID).
		Str("moderator_id", in.ModeratorID).
		Str("resolution", string(in.ResolutionType)).
		Str("transaction_status", trans.Status.String()).
		Msg("dispute resolved")

	buyerWins := in.ResolutionType != model.ResolutionSeller
	s.recordTrade(ctx, dispute.ID, dispute.BuyerID, buyerWins)
	s.recordTrade(ctx, dispute.ID, dispute.SellerID, !buyerWins)

	return dispute, nil
}

// lockModerators takes the moderator row locks of a resolution in id order. Blank and repeated ids
// are skipped; only the resolver (the first id) must exist.
func (s *DisputeServiceImpl) lockModerators(ctx context.Context, tx pgx.Tx, resolverID, assigneeID string) (map[string]*model.Moderator, error) {
	ids := make([]string, 0, 2)
	for _, id := range []string{resolverID, assigneeID} {
		if id != "" && !slices.Contains(ids, id) {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)

	locked := make(map[string]*model.Moderator, len(ids))
	for _, id := range ids {
		m, err := s.moderatorRepo.GetModeratorForUpdate(ctx, id, tx)
		if err != nil {
			if id != resolverID && errors.Is(err, model.ErrModeratorNotFound) {
				continue
			}
			return nil, fmt.Errorf("get moderator for update: %w", err)
		}
		locked[id] = m
	}
	return locked, nil
}

// resolutionHours is never negative, clock skew between created and resolved stamps is clamped
func resolutionHours(d *model.Dispute) float64 {
	if d.ResolvedAt == nil {
		return 0
	}
	return math.Max(0, d.ResolvedAt.Sub(d.CreatedAt).Hours())
}

// ResolveTransactionDispute resolves the active dispute of a transaction on behalf of its assignee
func (s *DisputeServiceImpl) ResolveTransactionDispute(ctx context.Context, transactionID string, resolution model.ResolutionType) (*model.Dispute, error) {
	d, err := s.disputeRepo.GetActiveDisputeByTransaction(ctx, transactionID)
	if err != nil {
		return nil, s.reject(fmt.Errorf("get active dispute: %w", err), logIDs{transactionID: transactionID})
	}

	in := model.ResolveDisputeInput{
		DisputeID:      d.ID,
		ResolutionType: resolution,
		Notes:          "Resolved on transaction " + transactionID,
	}
	if d.AssignedModerator != nil {
		in.ModeratorID = *d.AssignedModerator
	}
	return s.ResolveDispute(ctx, in)
}

func (s *DisputeServiceImpl) CloseDispute(ctx context.Context, disputeID, moderatorID string) (*model.Dispute, error) {
	var dispute *model.Dispute

	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		d, err := s.disputeRepo.GetDisputeForUpdate(ctx, disputeID, tx)
		if err != nil {
			return fmt.Errorf("get dispute for update: %w", err)
		}
		dispute = d

		moderator, err := s.moderatorRepo.GetModerator(ctx, moderatorID, tx)
		if err != nil {
			return fmt.Errorf("get moderator: %w", err)
		}
		if err := authorizeModerator(d, moderator); err != nil {
			return err
		}
		if d.Status != model.DisputeResolved {
			return model.ErrDisputeNotResolved
		}

		closed, err := s.disputeRepo.CloseDispute(ctx, d.ID, tx)
		if err != nil {
			return fmt.Errorf("close dispute: %w", err)
		}
		if !closed {
			return model.ErrDisputeNotResolved
		}
		d.Status = model.DisputeClosed

		return s.systemMessage(ctx, d.ID, "Dispute closed.", tx)
	})
	if err != nil {
		return nil, s.reject(err, logIDs{disputeID: disputeID, moderatorID: moderatorID})
	}

	s.logger.Info().Str("dispute_id", disputeID).Str("moderator_id", moderatorID).Msg("dispute closed")
	return dispute, nil
}

func (s *DisputeServiceImpl) GetDispute(ctx context.Context, disputeID string) (*model.Dispute, error) {
	d, err := s.disputeRepo.GetDispute(ctx, disputeID)
	if err != nil {
		return nil, fmt.Errorf("get dispute: %w", err)
	}
	return d, nil
}

func (s *DisputeServiceImpl) GetActiveDisputes(ctx context.Context) ([]*model.Dispute, error) {
	disputes, err := s.disputeRepo.GetActiveDisputes(ctx)
	if err != nil {
		return nil, fmt.Errorf("get active disputes: %w", err)
	}
	return disputes, nil
}

func (s *DisputeServiceImpl) GetUserDisputes(ctx context.Context, userID int64) ([]*model.Dispute, error) {
	disputes, err := s.disputeRepo.GetDisputesByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user disputes: %w", err)
	}
	return disputes, nil
}

func (s *DisputeServiceImpl) GetModeratorDisputes(ctx context.Context, moderatorID string) ([]*model.Dispute, error) {
	disputes, err := s.disputeRepo.GetDisputesByModerator(ctx, moderatorID)
	if err != nil {
		return nil, fmt.Errorf("get moderator disputes: %w", err)
	}
	return disputes, nil
}

func (s *DisputeServiceImpl) RegisterModerator(ctx context.Context, in model.RegisterModeratorInput) (*model.Moderator, error) {
	switch in.RoleLevel {
	case model.LevelJunior, model.LevelSenior, model.LevelLead, model.LevelAdmin:
	default:
		return nil, fmt.Errorf("%w: unknown moderator level %q", model.ErrValidation, in.RoleLevel)
	}

	moderator := &model.Moderator{
		ID:             in.ID,
		Username:       in.Username,
		FullName:       in.FullName,
		RoleLevel:      in.RoleLevel,
		Specialization: in.Specialization,
		Languages:      in.Languages,
		MaxCaseLoad:    in.MaxCaseLoad,
	}
	if moderator.MaxCaseLoad <= 0 {
		moderator.MaxCaseLoad = defaultMaxCaseLoad
	}

	if err := s.moderatorRepo.InsertModerator(ctx, moderator); err != nil {
		return nil, s.reject(fmt.Errorf("insert moderator: %w", err), logIDs{moderatorID: in.ID})
	}

	s.logger.Info().Str("moderator_id", moderator.ID).Str("role_level", string(moderator.RoleLevel)).Msg("moderator registered")
	return moderator, nil
}

func (s *DisputeServiceImpl) SetModeratorAvailability(ctx context.Context, moderatorID string, available bool) error {
	if err := s.moderatorRepo.SetAvailability(ctx, moderatorID, available); err != nil {
		return s.reject(fmt.Errorf("set availability: %w", err), logIDs{moderatorID: moderatorID})
	}
	s.logger.Info().Str("moderator_id", moderatorID).Bool("available", available).Msg("moderator availability changed")
	return nil
}

func (s *DisputeServiceImpl) GetModeratorStats(ctx context.Context, moderatorID string) (*model.ModeratorStats, error) {
	m, err := s.moderatorRepo.GetModerator(ctx, moderatorID)
	if err != nil {
		return nil, fmt.Errorf("get moderator: %w", err)
	}

	return &model.ModeratorStats{
		ModeratorID:           m.ID,
		Username:              m.Username,
		FullName:              m.FullName,
		RoleLevel:             m.RoleLevel,
		CasesHandled:          m.CasesHandled,
		CasesResolved:         m.CasesResolved,
		SuccessRate:           float64(m.CasesResolved) / float64(max(m.CasesHandled, 1)) * 100,
		AverageResolutionTime: round(m.AverageResolutionTime, 2),
		CurrentCaseLoad:       m.CurrentCaseLoad,
		SatisfactionRating:    m.SatisfactionRating,
		Specialization:        m.Specialization,
	}, nil
}

func (s *DisputeServiceImpl) systemMessage(ctx context.Context, disputeID, content string, tx pgx.Tx) error {
	msg := &model.DisputeMessage{
		ID:             idgen.MessageID(),
		DisputeID:      disputeID,
		SenderID:       systemSenderID,
		SenderUsername: systemSenderUsername,
		SenderRole:     model.RoleSystem,
		MessageType:    model.MessageSystemUpdate,
		Content:        content,
	}
	if err := s.disputeRepo.InsertMessage(ctx, msg, tx); err != nil {
		return fmt.Errorf("insert system message: %w", err)
	}
	return nil
}

type logIDs struct {
	disputeID     string
	transactionID string
	moderatorID   string
	userID        int64
}

func (s *DisputeServiceImpl) reject(err error, ids logIDs) error {
	if !model.IsRuleViolation(err) {
		return err
	}
	reason := model.ReasonOf(err)
	metrics.RuleViolationsTotal.WithLabelValues(string(reason)).Inc()

	event := s.logger.Warn().Str("reason", string(reason))
	if ids.disputeID != "" {
		event = event.Str("dispute_id", ids.disputeID)
	}
	if ids.transactionID != "" {
		event = event.Str("transaction_id", ids.transactionID)
	}
	if ids.moderatorID != "" {
		event = event.Str("moderator_id", ids.moderatorID)
	}
	if ids.userID != 0 {
		event = event.Int64("user_id", ids.userID)
	}
	event.Msg(err.Error())
	return err
}

func (s *DisputeServiceImpl) recordTrade(ctx context.Context, disputeID string, userID int64, successful bool) {
	if s.trades == nil {
		return
	}
	if err := s.trades.RecordTradeCompletion(ctx, strconv.FormatInt(userID, 10), successful); err != nil {
		s.logger.Error().Err(err).
			Str("dispute_id", disputeID).
			Int64("user_id", userID).
			Msg("failed to record trade in trust profile")
	}
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
