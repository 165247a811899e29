package repository

import (
	"context"
	"time"

	"escrow-service/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// DBManager provides database transaction management
type DBManager interface {
	// WithTransaction executes a function within a database transaction
	WithTransaction(ctx context.Context, fn func(pgx.Tx) error) error
}

// UserRepository defines operations for registered users
type UserRepository interface {
	// InsertUser registers a user; created is false when the id was already registered
	InsertUser(ctx context.Context, user *model.User, tx pgx.Tx) (bool, error)

	// GetUser retrieves a user by id
	GetUser(ctx context.Context, userID int64, tx ...pgx.Tx) (*model.User, error)
}

// PaymentMethodRepository defines operations for saved payment methods
type PaymentMethodRepository interface {
	InsertPaymentMethod(ctx context.Context, method *model.PaymentMethod) error
	GetPaymentMethodsByUser(ctx context.Context, userID int64) ([]*model.PaymentMethod, error)

	// GetPaymentMethodByName matches names case-insensitively with underscores treated as spaces
	GetPaymentMethodByName(ctx context.Context, userID int64, name string) (*model.PaymentMethod, error)
}

// TransactionRepository defines operations for escrow transactions
type TransactionRepository interface {
	// InsertTransaction creates a new transaction record, ErrDuplicateTransaction when the id is taken
	InsertTransaction(ctx context.Context, trans *model.Transaction, tx pgx.Tx) error

	// GetTransaction retrieves a transaction by id
	GetTransaction(ctx context.Context, transactionID string, tx ...pgx.Tx) (*model.Transaction, error)

	// GetTransactionForUpdate retrieves a transaction with row-level lock (must be in transaction)
	GetTransactionForUpdate(ctx context.Context, transactionID string, tx pgx.Tx) (*model.Transaction, error)

	// GetTransactionsByUser retrieves paginated transactions where the user is seller or buyer
	GetTransactionsByUser(ctx context.Context, userID int64, limit, offset int) ([]*model.Transaction, error)

	// TransitionStatus moves trans to status `to` only if it is still in `from`.
	// On success trans is refreshed with the stored status and timestamps.
	TransitionStatus(ctx context.Context, trans *model.Transaction, from, to model.TransactionStatus, tx pgx.Tx) (bool, error)

	// SetBuyer attaches a buyer to a created transaction that has none yet
	SetBuyer(ctx context.Context, transactionID string, buyerID int64, tx pgx.Tx) (bool, error)

	// GetExpiredTransactions retrieves created transactions older than cutoff
	GetExpiredTransactions(ctx context.Context, cutoff time.Time, limit int) ([]*model.Transaction, error)

	// LockTransactionForExpiry locks a created transaction row if it is still expired and unclaimed
	LockTransactionForExpiry(ctx context.Context, transactionID string, cutoff time.Time, tx pgx.Tx) (bool, error)
}

// DisputeRepository defines operations for dispute cases and their message log
type DisputeRepository interface {
	// InsertDispute creates a dispute, ErrDisputeAlreadyOpen when the transaction already has an active one
	InsertDispute(ctx context.Context, dispute *model.Dispute, tx pgx.Tx) error

	GetDispute(ctx context.Context, disputeID string, tx ...pgx.Tx) (*model.Dispute, error)
	GetDisputeForUpdate(ctx context.Context, disputeID string, tx pgx.Tx) (*model.Dispute, error)

	// GetActiveDisputeByTransaction returns ErrDisputeNotFound when the transaction has no active dispute
	GetActiveDisputeByTransaction(ctx context.Context, transactionID string, tx ...pgx.Tx) (*model.Dispute, error)

	// AssignModerator sets the assignee of a dispute that has none
	AssignModerator(ctx context.Context, disputeID, moderatorID, moderatorUsername string, tx pgx.Tx) (bool, error)

	// UpdateDisputeStatus changes status only while the dispute is active
	UpdateDisputeStatus(ctx context.Context, disputeID string, status model.DisputeStatus, tx pgx.Tx) (bool, error)

	SetResponse(ctx context.Context, disputeID, response string, tx pgx.Tx) error

	// ResolveDispute stores the resolution fields if the dispute is still active
	ResolveDispute(ctx context.Context, dispute *model.Dispute, tx pgx.Tx) (bool, error)

	// CloseDispute moves a resolved dispute to closed
	CloseDispute(ctx context.Context, disputeID string, tx pgx.Tx) (bool, error)

	// GetActiveDisputes returns the moderator queue: priority rank desc, oldest first
	GetActiveDisputes(ctx context.Context) ([]*model.Dispute, error)

	GetUnassignedDisputes(ctx context.Context, limit int) ([]*model.Dispute, error)
	GetDisputesByUser(ctx context.Context, userID int64) ([]*model.Dispute, error)
	GetDisputesByModerator(ctx context.Context, moderatorID string) ([]*model.Dispute, error)

	// InsertMessage appends to the dispute log and touches the dispute's last_updated
	InsertMessage(ctx context.Context, msg *model.DisputeMessage, tx pgx.Tx) error

	GetMessages(ctx context.Context, disputeID string) ([]*model.DisputeMessage, error)
}

// ModeratorRepository defines operations for moderators and their case load
type ModeratorRepository interface {
	InsertModerator(ctx context.Context, moderator *model.Moderator) error
	GetModerator(ctx context.Context, moderatorID string, tx ...pgx.Tx) (*model.Moderator, error)
	GetModeratorForUpdate(ctx context.Context, moderatorID string, tx pgx.Tx) (*model.Moderator, error)

	// GetAvailableModerators lists active, available moderators below their max case load
	GetAvailableModerators(ctx context.Context, tx pgx.Tx) ([]*model.Moderator, error)

	// ReserveCase increments case load only while it is below max case load
	ReserveCase(ctx context.Context, moderatorID string, tx pgx.Tx) (bool, error)

	// ReleaseCase decrements case load, never below zero
	ReleaseCase(ctx context.Context, moderatorID string, tx pgx.Tx) error

	// RecordResolution stores resolved count and mean resolution time
	RecordResolution(ctx context.Context, moderatorID string, casesResolved int, avgResolutionHours float64, tx pgx.Tx) error

	SetAvailability(ctx context.Context, moderatorID string, available bool) error
}

// ProfileRepository defines operations for trust profiles
type ProfileRepository interface {
	// EnsureProfile inserts the profile if missing and returns the stored one
	EnsureProfile(ctx context.Context, profile *model.UserProfile, tx ...pgx.Tx) (*model.UserProfile, error)

	GetProfile(ctx context.Context, userID string, tx ...pgx.Tx) (*model.UserProfile, error)
	GetProfileForUpdate(ctx context.Context, userID string, tx pgx.Tx) (*model.UserProfile, error)

	// UpdateProfile writes counters, verification, response time and trust score
	UpdateProfile(ctx context.Context, profile *model.UserProfile, tx pgx.Tx) error
}

// FeedbackRepository defines operations for trade feedback
type FeedbackRepository interface {
	// InsertFeedback returns ErrDuplicateFeedback for a repeated (trade, giver, receiver)
	InsertFeedback(ctx context.Context, feedback *model.Feedback, tx pgx.Tx) error

	GetRecentFeedback(ctx context.Context, receiverID string, limit int) ([]*model.Feedback, error)
}

// BadgeRepository defines operations for earned badges
type BadgeRepository interface {
	// AwardBadge inserts the badge if the user does not have it yet
	AwardBadge(ctx context.Context, userID, badgeName string, tx pgx.Tx) (bool, error)

	GetUserBadges(ctx context.Context, userID string) ([]*model.UserBadge, error)
}

// WalletRepository defines operations for user wallets
type WalletRepository interface {
	// GetOrCreateWallet returns the user's wallet, creating an empty one on first access
	GetOrCreateWallet(ctx context.Context, userID int64, tx ...pgx.Tx) (*model.Wallet, error)

	// GetWalletForUpdate retrieves a wallet with row-level lock (must be in transaction)
	GetWalletForUpdate(ctx context.Context, userID int64, tx pgx.Tx) (*model.Wallet, error)

	// UpdateBalance sets the wallet balance
	UpdateBalance(ctx context.Context, walletID string, balance decimal.Decimal, tx pgx.Tx) error

	InsertWalletTransaction(ctx context.Context, entry *model.WalletTransaction, tx pgx.Tx) error
	GetWalletTransactions(ctx context.Context, walletID string, limit, offset int) ([]*model.WalletTransaction, error)
}
