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

var _ repository.DisputeRepository = (*DisputeRepositoryImpl)(nil)

// DisputeRepositoryImpl stores disputes and their message log
type DisputeRepositoryImpl struct {
	*TransactionManager
}

func NewDisputeRepository(pool *pgxpool.Pool) repository.DisputeRepository {
	return &DisputeRepositoryImpl{
		TransactionManager: NewTransactionManager(pool),
	}
}

const activeDisputeConstraint = "disputes_one_active_per_transaction"

const activeStatuses = `('open', 'investigating', 'awaiting_response')`

const disputeColumns = `id, transaction_id, trade_title, buyer_id, seller_id, dispute_type, opened_by, reason, evidence,
        response, dispute_amount, currency, status, priority, assigned_moderator, moderator_username, resolution_type,
        resolution_notes, moderator_decision, dispute_data, created_at, last_updated, resolved_at`

// priority rank for the moderator queue, see model.Priority.Rank
const priorityOrder = `CASE priority WHEN 'urgent' THEN 2 WHEN 'high' THEN 1 ELSE 0 END DESC, created_at ASC`

func scanDispute(row rowScanner) (*model.Dispute, error) {
	d := &model.Dispute{}
	err := row.Scan(&d.ID, &d.TransactionID, &d.TradeTitle, &d.BuyerID, &d.SellerID, &d.DisputeType, &d.OpenedBy,
		&d.Reason, &d.Evidence, &d.Response, &d.Amount, &d.Currency, &d.Status, &d.Priority, &d.AssignedModerator,
		&d.ModeratorUsername, &d.ResolutionType, &d.ResolutionNotes, &d.ModeratorDecision, &d.Data, &d.CreatedAt,
		&d.LastUpdated, &d.ResolvedAt)
	if err != nil {
		return nil, err
	}
	return d, nil
}

func scanMessage(row rowScanner) (*model.DisputeMessage, error) {
	m := &model.DisputeMessage{}
	err := row.Scan(&m.ID, &m.DisputeID, &m.SenderID, &m.SenderUsername, &m.SenderRole, &m.MessageType, &m.Content,
		&m.Attachments, &m.SentAt, &m.ReadByBuyer, &m.ReadBySeller, &m.ReadByModerator)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (r *DisputeRepositoryImpl) InsertDispute(ctx context.Context, dispute *model.Dispute, tx pgx.Tx) error {
	query := `
        INSERT INTO disputes (id, transaction_id, trade_title, buyer_id, seller_id, dispute_type, opened_by, reason,
            evidence, dispute_amount, currency, status, priority, assigned_moderator, moderator_username, dispute_data)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
        RETURNING created_at, last_updated`

	data := dispute.Data
	if data == nil {
		data = map[string]string{}
	}

	err := tx.QueryRow(ctx, query, dispute.ID, dispute.TransactionID, dispute.TradeTitle, dispute.BuyerID, dispute.SellerID,
		dispute.DisputeType, dispute.OpenedBy, dispute.Reason, dispute.Evidence, dispute.Amount, dispute.Currency,
		dispute.Status, dispute.Priority, dispute.AssignedModerator, dispute.ModeratorUsername, data).
		Scan(&dispute.CreatedAt, &dispute.LastUpdated)
	if err != nil {
		if uniqueViolation(err, activeDisputeConstraint) {
			return model.ErrDisputeAlreadyOpen
		}
		return fmt.Errorf("failed to insert dispute: %w", err)
	}
	return nil
}

func (r *DisputeRepositoryImpl) GetDispute(ctx context.Context, disputeID string, tx ...pgx.Tx) (*model.Dispute, error) {
	query := `SELECT ` + disputeColumns + ` FROM disputes WHERE id = $1`

	d, err := scanDispute(r.getExecutor(tx...).QueryRow(ctx, query, disputeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrDisputeNotFound
		}
		return nil, fmt.Errorf("failed to get dispute: %w", err)
	}
	return d, nil
}

func (r *DisputeRepositoryImpl) GetDisputeForUpdate(ctx context.Context, disputeID string, tx pgx.Tx) (*model.Dispute, error) {
	query := `SELECT ` + disputeColumns + ` FROM disputes WHERE id = $1 FOR UPDATE`

	d, err := scanDispute(tx.QueryRow(ctx, query, disputeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrDisputeNotFound
		}
		return nil, fmt.Errorf("failed to get dispute for update: %w", err)
	}
	return d, nil
}

func (r *DisputeRepositoryImpl) GetActiveDisputeByTransaction(ctx context.Context, transactionID string, tx ...pgx.Tx) (*model.Dispute, error) {
	query := `SELECT ` + disputeColumns + ` FROM disputes WHERE transaction_id = $1 AND status IN ` + activeStatuses

	d, err := scanDispute(r.getExecutor(tx...).QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrDisputeNotFound
		}
		return nil, fmt.Errorf("failed to get active dispute: %w", err)
	}
	return d, nil
}

func (r *DisputeRepositoryImpl) AssignModerator(ctx context.Context, disputeID, moderatorID, moderatorUsername string, tx pgx.Tx) (bool, error) {
	query := `
		UPDATE disputes
		SET assigned_moderator = $1, moderator_username = $2, last_updated = NOW()
		WHERE id = $3
		  AND assigned_moderator IS NULL
		  AND status IN ` + activeStatuses

	result, err := tx.Exec(ctx, query, moderatorID, moderatorUsername, disputeID)
	if err != nil {
		return false, fmt.Errorf("failed to assign moderator: %w", err)
	}
	return result.RowsAffected() == 1, nil
}

func (r *DisputeRepositoryImpl) UpdateDisputeStatus(ctx context.Context, disputeID string, status model.DisputeStatus, tx pgx.Tx) (bool, error) {
	query := `
		UPDATE disputes
		SET status = $1, last_updated = NOW()
		WHERE id = $2
		  AND status IN ` + activeStatuses

	result, err := tx.Exec(ctx, query, string(status), disputeID)
	if err != nil {
		return false, fmt.Errorf("failed to update dispute status: %w", err)
	}
	return result.RowsAffected() == 1, nil
}

func (r *DisputeRepositoryImpl) SetResponse(ctx context.Context, disputeID, response string, tx pgx.Tx) error {
	query := `UPDATE disputes SET response = $1, last_updated = NOW() WHERE id = $2`

	result, err := tx.Exec(ctx, query, response, disputeID)
	if err != nil {
		return fmt.Errorf("failed to set dispute response: %w", err)
	}
	if result.RowsAffected() == 0 {
		return model.ErrDisputeNotFound
	}
	return nil
}

func (r *DisputeRepositoryImpl) ResolveDispute(ctx context.Context, dispute *model.Dispute, tx pgx.Tx) (bool, error) {
	query := `
		UPDATE disputes
		SET status = 'resolved',
		    resolution_type = $1,
		    resolution_notes = $2,
		    moderator_decision = $3,
		    resolved_at = NOW(),
		    last_updated = NOW()
		WHERE id = $4
		  AND status IN ` + activeStatuses + `
		RETURNING status, resolved_at, last_updated`

	err := tx.QueryRow(ctx, query, dispute.ResolutionType, dispute.ResolutionNotes, dispute.ModeratorDecision, dispute.ID).
		Scan(&dispute.Status, &dispute.ResolvedAt, &dispute.LastUpdated)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to resolve dispute: %w", err)
	}
	return true, nil
}

func (r *DisputeRepositoryImpl) CloseDispute(ctx context.Context, disputeID string, tx pgx.Tx) (bool, error) {
	query := `UPDATE disputes SET status = 'closed', last_updated = NOW() WHERE id = $1 AND status = 'resolved'`

	result, err := tx.Exec(ctx, query, disputeID)
	if err != nil {
		return false, fmt.Errorf("failed to close dispute: %w", err)
	}
	return result.RowsAffected() == 1, nil
}

func (r *DisputeRepositoryImpl) GetActiveDisputes(ctx context.Context) ([]*model.Dispute, error) {
	query := `SELECT ` + disputeColumns + ` FROM disputes WHERE status IN ` + activeStatuses + ` ORDER BY ` + priorityOrder
	return r.queryDisputes(ctx, query)
}

func (r *DisputeRepositoryImpl) GetUnassignedDisputes(ctx context.Context, limit int) ([]*model.Dispute, error) {
	query := `
        SELECT ` + disputeColumns + `
        FROM disputes
        WHERE assigned_moderator IS NULL AND status IN ` + activeStatuses + `
        ORDER BY ` + priorityOrder + `
        LIMIT $1`
	return r.queryDisputes(ctx, query, limit)
}

func (r *DisputeRepositoryImpl) GetDisputesByUser(ctx context.Context, userID int64) ([]*model.Dispute, error) {
	query := `SELECT ` + disputeColumns + ` FROM disputes WHERE buyer_id = $1 OR seller_id = $1 ORDER BY created_at DESC`
	return r.queryDisputes(ctx, query, userID)
}

func (r *DisputeRepositoryImpl) GetDisputesByModerator(ctx context.Context, moderatorID string) ([]*model.Dispute, error) {
	query := `SELECT ` + disputeColumns + ` FROM disputes WHERE assigned_moderator = $1 ORDER BY created_at DESC`
	return r.queryDisputes(ctx, query, moderatorID)
}

func (r *DisputeRepositoryImpl) queryDisputes(ctx context.Context, query string, args ...any) ([]*model.Dispute, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query disputes: %w", err)
	}
	disputes, err := collectRows(rows, scanDispute)
	if err != nil {
		return nil, fmt.Errorf("failed to scan dispute: %w", err)
	}
	return disputes, nil
}

// InsertMessage appends a message and touches the dispute in one statement
func (r *DisputeRepositoryImpl) InsertMessage(ctx context.Context, msg *model.DisputeMessage, tx pgx.Tx) error {
	query := `
        WITH touched AS (
            UPDATE disputes SET last_updated = NOW() WHERE id = $2 RETURNING id
        )
        INSERT INTO dispute_messages (id, dispute_id, sender_id, sender_username, sender_role, message_type, content,
            attachments, sent_at)
        SELECT $1, touched.id, $3, $4, $5, $6, $7, $8, clock_timestamp() FROM touched
        RETURNING sent_at`

	attachments := msg.Attachments
	if attachments == nil {
		attachments = map[string]string{}
	}

	err := tx.QueryRow(ctx, query, msg.ID, msg.DisputeID, msg.SenderID, msg.SenderUsername, msg.SenderRole,
		msg.MessageType, msg.Content, attachments).Scan(&msg.SentAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.ErrDisputeNotFound
		}
		return fmt.Errorf("failed to insert dispute message: %w", err)
	}
	return nil
}

func (r *DisputeRepositoryImpl) GetMessages(ctx context.Context, disputeID string) ([]*model.DisputeMessage, error) {
	query := `
        SELECT id, dispute_id, sender_id, sender_username, sender_role, message_type, content, attachments, sent_at,
            read_by_buyer, read_by_seller, read_by_moderator
        FROM dispute_messages
        WHERE dispute_id = $1
        ORDER BY sent_at, id`

	rows, err := r.pool.Query(ctx, query, disputeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query dispute messages: %w", err)
	}
	messages, err := collectRows(rows, scanMessage)
	if err != nil {
		return nil, fmt.Errorf("failed to scan dispute message: %w", err)
	}
	return messages, nil
}
