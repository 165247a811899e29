package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID          int64     `json:"id"`
	Username    string    `json:"username"`
	DisplayName string    `json:"display_name"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

type PaymentMethod struct {
	ID        int64             `json:"id"`
	UserID    int64             `json:"user_id"`
	Name      string            `json:"name"`
	Type      PaymentMethodType `json:"type"`
	Details   string            `json:"details,omitempty"`
	Address   string            `json:"address,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
}

type Transaction struct {
	ID            string            `json:"id"`
	Title         string            `json:"title"`
	Description   string            `json:"description"`
	Amount        decimal.Decimal   `json:"amount"`
	Fee           decimal.Decimal   `json:"fee"`
	PaymentMethod string            `json:"payment_method"`
	SellerID      int64             `json:"seller_id"`
	BuyerID       *int64            `json:"buyer_id,omitempty"`
	Status        TransactionStatus `json:"status"`
	Metadata      map[string]string `json:"metadata,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
	CompletedAt   *time.Time        `json:"completed_at,omitempty"`
}

// Total is what the buyer pays into escrow.
func (t *Transaction) Total() decimal.Decimal {
	return t.Amount.Add(t.Fee)
}

func (t *Transaction) IsSeller(userID int64) bool {
	return t.SellerID == userID
}

func (t *Transaction) IsBuyer(userID int64) bool {
	return t.BuyerID != nil && *t.BuyerID == userID
}

// RoleOf returns the party role of userID, or false when the user is not a party.
func (t *Transaction) RoleOf(userID int64) (PartyRole, bool) {
	switch {
	case t.IsSeller(userID):
		return RoleSeller, true
	case t.IsBuyer(userID):
		return RoleBuyer, true
	default:
		return "", false
	}
}

type Dispute struct {
	ID                string            `json:"id"`
	TransactionID     string            `json:"transaction_id"`
	TradeTitle        string            `json:"trade_title"`
	BuyerID           int64             `json:"buyer_id"`
	SellerID          int64             `json:"seller_id"`
	DisputeType       string            `json:"dispute_type"`
	OpenedBy          PartyRole         `json:"opened_by"`
	Reason            string            `json:"reason"`
	Evidence          string            `json:"evidence,omitempty"`
	Response          *string           `json:"response,omitempty"`
	Amount            decimal.Decimal   `json:"dispute_amount"`
	Currency          string            `json:"currency"`
	Status            DisputeStatus     `json:"status"`
	Priority          Priority          `json:"priority"`
	AssignedModerator *string           `json:"assigned_moderator,omitempty"`
	ModeratorUsername *string           `json:"moderator_username,omitempty"`
	ResolutionType    *ResolutionType   `json:"resolution_type,omitempty"`
	ResolutionNotes   *string           `json:"resolution_notes,omitempty"`
	ModeratorDecision *string           `json:"moderator_decision,omitempty"`
	Data              map[string]string `json:"dispute_data,omitempty"`
	CreatedAt         time.Time         `json:"created_at"`
	LastUpdated       time.Time         `json:"last_updated"`
	ResolvedAt        *time.Time        `json:"resolved_at,omitempty"`
}

type DisputeMessage struct {
	ID              string            `json:"id"`
	DisputeID       string            `json:"dispute_id"`
	SenderID        string            `json:"sender_id"`
	SenderUsername  string            `json:"sender_username,omitempty"`
	SenderRole      PartyRole         `json:"sender_role"`
	MessageType     string            `json:"message_type"`
	Content         string            `json:"content"`
	Attachments     map[string]string `json:"attachments,omitempty"`
	SentAt          time.Time         `json:"sent_at"`
	ReadByBuyer     bool              `json:"read_by_buyer"`
	ReadBySeller    bool              `json:"read_by_seller"`
	ReadByModerator bool              `json:"read_by_moderator"`
}

type Moderator struct {
	ID                    string         `json:"id"`
	Username              string         `json:"username"`
	FullName              string         `json:"full_name"`
	RoleLevel             ModeratorLevel `json:"role_level"`
	Specialization        string         `json:"specialization"`
	Languages             string         `json:"languages,omitempty"`
	CasesHandled          int            `json:"cases_handled"`
	CasesResolved         int            `json:"cases_resolved"`
	AverageResolutionTime float64        `json:"average_resolution_time"`
	SatisfactionRating    float64        `json:"satisfaction_rating"`
	IsActive              bool           `json:"is_active"`
	IsAvailable           bool           `json:"is_available"`
	CurrentCaseLoad       int            `json:"current_case_load"`
	MaxCaseLoad           int            `json:"max_case_load"`
	JoinedAt              time.Time      `json:"joined_at"`
	LastActive            time.Time      `json:"last_active"`
}

// CanTakeCase reports whether the moderator is eligible for a new assignment.
func (m *Moderator) CanTakeCase() bool {
	return m.IsActive && m.IsAvailable && m.CurrentCaseLoad < m.MaxCaseLoad
}

type ModeratorStats struct {
	ModeratorID           string         `json:"moderator_id"`
	Username              string         `json:"username"`
	FullName              string         `json:"full_name"`
	RoleLevel             ModeratorLevel `json:"role_level"`
	CasesHandled          int            `json:"cases_handled"`
	CasesResolved         int            `json:"cases_resolved"`
	SuccessRate           float64        `json:"success_rate"`
	AverageResolutionTime float64        `json:"average_resolution_time"`
	CurrentCaseLoad       int            `json:"current_case_load"`
	SatisfactionRating    float64        `json:"satisfaction_rating"`
	Specialization        string         `json:"specialization"`
}

type UserProfile struct {
	UserID           string     `json:"user_id"`
	Username         string     `json:"username,omitempty"`
	FirstName        string     `json:"first_name"`
	TrustScore       float64    `json:"trust_score"`
	TrustLevel       TrustLevel `json:"trust_level"`
	TotalTrades      int        `json:"total_trades"`
	SuccessfulTrades int        `json:"successful_trades"`
	PhoneVerified    bool       `json:"phone_verified"`
	EmailVerified    bool       `json:"email_verified"`
	IDVerified       bool       `json:"id_verified"`
	JoinDate         time.Time  `json:"join_date"`
	LastActive       time.Time  `json:"last_active"`
	ResponseTimeAvg  float64    `json:"response_time_avg"`
	ResponseSamples  int        `json:"response_samples"`
	PositiveFeedback int        `json:"positive_feedback"`
	NeutralFeedback  int        `json:"neutral_feedback"`
	NegativeFeedback int        `json:"negative_feedback"`
}

func (p *UserProfile) TotalFeedback() int {
	return p.PositiveFeedback + p.NeutralFeedback + p.NegativeFeedback
}

type Feedback struct {
	ID                  int64        `json:"id"`
	TradeID             string       `json:"trade_id"`
	GiverID             string       `json:"giver_id"`
	ReceiverID          string       `json:"receiver_id"`
	Rating              int          `json:"rating"`
	Type                FeedbackType `json:"feedback_type"`
	Comment             *string      `json:"comment,omitempty"`
	CommunicationRating *int         `json:"communication_rating,omitempty"`
	DeliveryRating      *int         `json:"delivery_rating,omitempty"`
	QualityRating       *int         `json:"quality_rating,omitempty"`
	CreatedAt           time.Time    `json:"created_at"`
}

type BadgeType struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Requirement string `json:"requirement"`
}

type UserBadge struct {
	UserID   string    `json:"user_id"`
	Badge    BadgeType `json:"badge"`
	EarnedAt time.Time `json:"earned_at"`
}

type Wallet struct {
	ID        string          `json:"id"`
	UserID    int64           `json:"user_id"`
	Balance   decimal.Decimal `json:"balance"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

type WalletTransaction struct {
	ID            string            `json:"id"`
	WalletID      string            `json:"wallet_id"`
	TransactionID *string           `json:"transaction_id,omitempty"`
	Amount        decimal.Decimal   `json:"amount"`
	Direction     WalletDirection   `json:"direction"`
	Type          string            `json:"type"`
	Metadata      map[string]string `json:"metadata,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
}
