package service

import (
	"context"

	"escrow-service/internal/model"

	"github.com/shopspring/decimal"
)

// EscrowService drives the escrow transaction state machine
type EscrowService interface {
	CreateTransaction(ctx context.Context, in model.CreateTransactionInput) (*model.Transaction, error)
	GetTransaction(ctx context.Context, transactionID string) (*model.Transaction, error)
	ListUserTransactions(ctx context.Context, userID int64, limit, offset int) ([]*model.Transaction, error)
	JoinAsBuyer(ctx context.Context, transactionID string, buyerID int64) (*model.Transaction, error)
	ConfirmPayment(ctx context.Context, transactionID string, buyerID int64) (*model.Transaction, error)
	ConfirmReceipt(ctx context.Context, transactionID string, sellerID int64) (*model.Transaction, error)
	Complete(ctx context.Context, transactionID string, buyerID int64) (*model.Transaction, error)
	Cancel(ctx context.Context, transactionID string, userID int64) (*model.Transaction, error)
}

// DisputeService is the single authority over dispute cases and moderators
type DisputeService interface {
	OpenDispute(ctx context.Context, in model.OpenDisputeInput) (*model.Dispute, error)
	AssignModerator(ctx context.Context, disputeID string) (*model.Dispute, error)
	// AssignPending tries to assign every unassigned active dispute, returns how many got a moderator
	AssignPending(ctx context.Context) (int, error)
	AddMessage(ctx context.Context, in model.AddMessageInput) (*model.DisputeMessage, error)
	GetMessages(ctx context.Context, disputeID string) ([]*model.DisputeMessage, error)
	UpdateStatus(ctx context.Context, disputeID, moderatorID string, status model.DisputeStatus) (*model.Dispute, error)
	RespondToDispute(ctx context.Context, disputeID string, userID int64, response string) (*model.Dispute, error)
	ResolveDispute(ctx context.Context, in model.ResolveDisputeInput) (*model.Dispute, error)
	ResolveTransactionDispute(ctx context.Context, transactionID string, resolution model.ResolutionType) (*model.Dispute, error)
	CloseDispute(ctx context.Context, disputeID, moderatorID string) (*model.Dispute, error)

	GetDispute(ctx context.Context, disputeID string) (*model.Dispute, error)
	GetActiveDisputes(ctx context.Context) ([]*model.Dispute, error)
	GetUserDisputes(ctx context.Context, userID int64) ([]*model.Dispute, error)
	GetModeratorDisputes(ctx context.Context, moderatorID string) ([]*model.Dispute, error)

	RegisterModerator(ctx context.Context, in model.RegisterModeratorInput) (*model.Moderator, error)
	SetModeratorAvailability(ctx context.Context, moderatorID string, available bool) error
	GetModeratorStats(ctx context.Context, moderatorID string) (*model.ModeratorStats, error)
}

// TrustService maintains reputation profiles, feedback and badges
type TrustService interface {
	TradeRecorder
	EnsureProfile(ctx context.Context, userID, username, firstName string) (*model.UserProfile, error)
	RecalculateTrust(ctx context.Context, userID string) (*model.UserProfile, error)
	RecordFeedback(ctx context.Context, in model.RecordFeedbackInput) error
	SetVerification(ctx context.Context, userID string, update model.VerificationUpdate) (*model.UserProfile, error)
	RecordResponseTime(ctx context.Context, userID string, hours float64) (*model.UserProfile, error)
	GetTrustStats(ctx context.Context, userID string) (*model.ProfileSnapshot, error)
}

// TradeRecorder feeds finished trades into trade history
type TradeRecorder interface {
	RecordTradeCompletion(ctx context.Context, userID string, successful bool) error
}

// SnapshotCache stores trust snapshots; GetSnapshot returns nil on a miss
type SnapshotCache interface {
	GetSnapshot(ctx context.Context, userID string) (*model.ProfileSnapshot, error)
	SetSnapshot(ctx context.Context, snapshot *model.ProfileSnapshot) error
	Invalidate(ctx context.Context, userID string) error
}

// WalletService manages user balances
type WalletService interface {
	GetWallet(ctx context.Context, userID int64) (*model.Wallet, error)
	Deposit(ctx context.Context, userID int64, amount decimal.Decimal, transactionID, kind string) (*model.Wallet, error)
	Withdraw(ctx context.Context, userID int64, amount decimal.Decimal, transactionID, kind string) (*model.Wallet, error)
	ListWalletTransactions(ctx context.Context, userID int64, limit, offset int) ([]*model.WalletTransaction, error)
}

// UserService registers chat users
type UserService interface {
	RegisterUser(ctx context.Context, in model.RegisterUserInput) (*model.User, bool, error)
	GetUser(ctx context.Context, userID int64) (*model.User, error)
}

// PaymentMethodService manages saved payment methods
type PaymentMethodService interface {
	AddPaymentMethod(ctx context.Context, in model.AddPaymentMethodInput) (*model.PaymentMethod, error)
	ListPaymentMethods(ctx context.Context, userID int64) ([]*model.PaymentMethod, error)
	GetPaymentMethodByName(ctx context.Context, userID int64, name string) (*model.PaymentMethod, error)
}

// ExpiryService cancels created transactions that were never paid
type ExpiryService interface {
	// ExpireStaleTransactions cancels created transactions past the timeout, returns how many were cancelled
	ExpireStaleTransactions(ctx context.Context) (int, error)
}
