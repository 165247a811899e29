package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type RegisterUserInput struct {
	ID          int64
	Username    string
	DisplayName string
}

type AddPaymentMethodInput struct {
	UserID  int64
	Name    string
	Type    PaymentMethodType
	Details string
	Address string
}

type CreateTransactionInput struct {
	SellerID      int64
	Title         string
	Description   string
	Amount        decimal.Decimal
	PaymentMethod string
	Metadata      map[string]string
}

type OpenDisputeInput struct {
	TransactionID string
	UserID        int64
	DisputeType   string
	Reason        string
	Evidence      string
	Amount        decimal.Decimal
	Currency      string
}

type AddMessageInput struct {
	DisputeID      string
	SenderID       string
	SenderUsername string
	SenderRole     PartyRole
	MessageType    string
	Content        string
	Attachments    map[string]string
}

type ResolveDisputeInput struct {
	DisputeID      string
	ModeratorID    string
	ResolutionType ResolutionType
	Notes          string
	Decision       string
}

type RegisterModeratorInput struct {
	ID             string
	Username       string
	FullName       string
	RoleLevel      ModeratorLevel
	Specialization string
	Languages      string
	MaxCaseLoad    int
}

type RecordFeedbackInput struct {
	TradeID       string
	GiverID       string
	ReceiverID    string
	Rating        int
	Comment       *string
	Communication *int
	Delivery      *int
	Quality       *int
}

// VerificationUpdate sets only the flags that are non-nil.
type VerificationUpdate struct {
	Phone *bool
	Email *bool
	ID    *bool
}

type FeedbackSummary struct {
	Rating  int          `json:"rating"`
	Comment *string      `json:"comment,omitempty"`
	Type    FeedbackType `json:"type"`
	Date    time.Time    `json:"date"`
}

type BadgeSummary struct {
	Name        string    `json:"name"`
	Icon        string    `json:"icon"`
	Description string    `json:"description"`
	EarnedAt    time.Time `json:"earned_at"`
}

type Verification struct {
	Phone bool `json:"phone"`
	Email bool `json:"email"`
	ID    bool `json:"id"`
}

// ProfileSnapshot is the read model returned by trust stats lookups.
type ProfileSnapshot struct {
	UserID           string            `json:"user_id"`
	Username         string            `json:"username,omitempty"`
	FirstName        string            `json:"first_name"`
	TrustScore       float64           `json:"trust_score"`
	TrustLevel       TrustLevel        `json:"trust_level"`
	TotalTrades      int               `json:"total_trades"`
	SuccessfulTrades int               `json:"successful_trades"`
	SuccessRate      float64           `json:"success_rate"`
	TotalFeedback    int               `json:"total_feedback"`
	PositiveFeedback int               `json:"positive_feedback"`
	NeutralFeedback  int               `json:"neutral_feedback"`
	NegativeFeedback int               `json:"negative_feedback"`
	PositiveRate     float64           `json:"positive_rate"`
	Verification     Verification      `json:"verification"`
	JoinDate         time.Time         `json:"join_date"`
	LastActive       time.Time         `json:"last_active"`
	ResponseTimeAvg  float64           `json:"response_time_avg"`
	RecentFeedback   []FeedbackSummary `json:"recent_feedback"`
	Badges           []BadgeSummary    `json:"badges"`
}

// HTTP payloads

type RegisterUserRequest struct {
	ID          int64  `json:"id" binding:"required" example:"123456789"`
	Username    string `json:"username" binding:"required" example:"alice"`
	DisplayName string `json:"display_name" example:"Alice"`
}

type CreateTransactionRequest struct {
	Title         string            `json:"title" binding:"required" example:"Logo design"`
	Description   string            `json:"description" binding:"required" example:"Three logo concepts, vector files"`
	Amount        string            `json:"amount" binding:"required" example:"100.00"`
	PaymentMethod string            `json:"payment_method" binding:"required" example:"PayPal"`
	Metadata      map[string]string `json:"metadata,omitempty"`
}

type OpenDisputeRequest struct {
	DisputeType string `json:"dispute_type" binding:"required" example:"service_not_delivered"`
	Reason      string `json:"reason" binding:"required" example:"Nothing was delivered"`
	Evidence    string `json:"evidence" example:"chat screenshots"`
	Amount      string `json:"amount" binding:"required" example:"0.01"`
	Currency    string `json:"currency" binding:"required" example:"BTC"`
}

type ResolveDisputeRequest struct {
	ResolutionType string `json:"resolution_type" binding:"required" example:"seller"`
	Notes          string `json:"notes" example:"Delivery proven by tracking"`
	Decision       string `json:"decision" example:"Funds released to seller"`
}

type DisputeStatusRequest struct {
	Status string `json:"status" binding:"required" example:"investigating"`
}

type DisputeResponseRequest struct {
	Response string `json:"response" binding:"required" example:"Files were sent on Monday"`
}

type AddMessageRequest struct {
	MessageType string            `json:"message_type" example:"text"`
	Content     string            `json:"content" binding:"required" example:"Uploading the invoice now"`
	Username    string            `json:"username" example:"alice"`
	Attachments map[string]string `json:"attachments,omitempty"`
}

type FeedbackRequest struct {
	TradeID       string  `json:"trade_id" binding:"required" example:"AB123456"`
	ReceiverID    string  `json:"receiver_id" binding:"required" example:"987654321"`
	Rating        int     `json:"rating" binding:"required" example:"5"`
	Comment       *string `json:"comment,omitempty"`
	Communication *int    `json:"communication_rating,omitempty"`
	Delivery      *int    `json:"delivery_rating,omitempty"`
	Quality       *int    `json:"quality_rating,omitempty"`
}

type VerificationRequest struct {
	Phone *bool `json:"phone,omitempty"`
	Email *bool `json:"email,omitempty"`
	ID    *bool `json:"id,omitempty"`
}

type WalletOperationRequest struct {
	Amount        string `json:"amount" binding:"required" example:"25.00"`
	TransactionID string `json:"transaction_id,omitempty" example:"AB123456"`
	Type          string `json:"type" example:"deposit"`
}

type PaymentMethodRequest struct {
	Name    string `json:"name" binding:"required" example:"Bitcoin"`
	Type    string `json:"type" binding:"required,oneof=fiat crypto" example:"crypto"`
	Details string `json:"details,omitempty"`
	Address string `json:"address,omitempty" example:"bc1qar0srrr7xfkvy5l643lydnw9re59gtzzwf5mdq"`
}

type ModeratorRequest struct {
	ID             string `json:"id" binding:"required" example:"005"`
	Username       string `json:"username" binding:"required" example:"mod_lena"`
	FullName       string `json:"full_name" binding:"required" example:"Lena Fischer"`
	RoleLevel      string `json:"role_level" binding:"required,oneof=junior senior lead admin" example:"senior"`
	Specialization string `json:"specialization" example:"Crypto disputes, payment_not_received"`
	Languages      string `json:"languages" example:"English, German"`
	MaxCaseLoad    int    `json:"max_case_load" example:"10"`
}

type ResponseTimeRequest struct {
	Hours float64 `json:"hours" example:"1.5"`
}

type IssueTokenRequest struct {
	Subject string `json:"subject" binding:"required" example:"123456789"`
	Role    string `json:"role" binding:"required,oneof=user moderator admin" example:"user"`
}

type TokenResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

type RegisterUserResponse struct {
	*User
	Created bool `json:"created"`
}

type AvailabilityRequest struct {
	Available bool `json:"available"`
}

type TransactionResponse struct {
	*Transaction
	Total string `json:"total" example:"102.50"`
}

type StatusResponse struct {
	Status  string `json:"status" example:"confirmed"`
	Message string `json:"message,omitempty" example:"Receipt confirmed"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"only the seller can perform this operation"`
	Code    string `json:"code,omitempty" example:"NOT_SELLER"`
	Details string `json:"details,omitempty"`
}

type TransactionListResponse struct {
	Transactions []*Transaction `json:"transactions"`
	Total        int            `json:"total"`
	Limit        int            `json:"limit"`
	Offset       int            `json:"offset"`
}

type DisputeListResponse struct {
	Disputes []*Dispute `json:"disputes"`
	Total    int        `json:"total"`
}
