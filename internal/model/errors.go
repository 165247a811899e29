package model

import "errors"

var (
	ErrUserNotFound          = errors.New("user not found")
	ErrTransactionNotFound   = errors.New("transaction not found")
	ErrDisputeNotFound       = errors.New("dispute not found")
	ErrModeratorNotFound     = errors.New("moderator not found")
	ErrProfileNotFound       = errors.New("trust profile not found")
	ErrWalletNotFound        = errors.New("wallet not found")
	ErrPaymentMethodNotFound = errors.New("payment method not found")

	ErrDuplicateTransaction = errors.New("transaction already exists")
	ErrInvalidStatus        = errors.New("operation not allowed in current transaction status")
	ErrNotSeller            = errors.New("only the seller can perform this operation")
	ErrNotBuyer             = errors.New("only the buyer can perform this operation")
	ErrNotParticipant       = errors.New("user is not a party to this transaction")
	ErrSellerCannotBuy      = errors.New("seller cannot join their own transaction as buyer")
	ErrBuyerAlreadySet      = errors.New("transaction already has a buyer")

	ErrDisputeAlreadyOpen   = errors.New("a dispute is already open for this transaction")
	ErrDisputeNotOpen       = errors.New("dispute is not open")
	ErrDisputeNotResolved   = errors.New("dispute is not resolved")
	ErrModeratorNotAssigned = errors.New("moderator is not assigned to this dispute")
	ErrModeratorUnavailable = errors.New("no moderator available")
	ErrDuplicateModerator   = errors.New("moderator already exists")
	ErrReservedSenderRole   = errors.New("sender role is reserved")
	ErrInvalidDisputeStatus = errors.New("invalid dispute status")
	ErrInvalidResolution    = errors.New("invalid resolution")

	ErrDuplicateFeedback = errors.New("feedback already recorded for this trade")

	ErrInsufficientFunds    = errors.New("insufficient funds")
	ErrInvalidAmount        = errors.New("invalid amount")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")

	ErrValidation = errors.New("validation failed")
)

// Reason is the machine-readable cause attached to a failed core operation.
type Reason string

const (
	ReasonNone                 Reason = ""
	ReasonUserNotFound         Reason = "USER_NOT_FOUND"
	ReasonTransactionNotFound  Reason = "TRANSACTION_NOT_FOUND"
	ReasonDisputeNotFound      Reason = "DISPUTE_NOT_FOUND"
	ReasonModeratorNotFound    Reason = "MODERATOR_NOT_FOUND"
	ReasonProfileNotFound      Reason = "PROFILE_NOT_FOUND"
	ReasonWalletNotFound       Reason = "WALLET_NOT_FOUND"
	ReasonPaymentMethodMissing Reason = "PAYMENT_METHOD_NOT_FOUND"
	ReasonDuplicateTransaction Reason = "DUPLICATE_TRANSACTION"
	ReasonInvalidStatus        Reason = "INVALID_STATUS"
	ReasonNotSeller            Reason = "NOT_SELLER"
	ReasonNotBuyer             Reason = "NOT_BUYER"
	ReasonNotParticipant       Reason = "NOT_PARTICIPANT"
	ReasonSellerCannotBuy      Reason = "SELLER_CANNOT_BUY"
	ReasonBuyerAlreadySet      Reason = "BUYER_ALREADY_SET"
	ReasonDisputeAlreadyOpen   Reason = "DISPUTE_ALREADY_OPEN"
	ReasonDisputeNotOpen       Reason = "DISPUTE_NOT_OPEN"
	ReasonDisputeNotResolved   Reason = "DISPUTE_NOT_RESOLVED"
	ReasonModeratorNotAssigned Reason = "MODERATOR_NOT_ASSIGNED"
	ReasonModeratorUnavailable Reason = "MODERATOR_UNAVAILABLE"
	ReasonDuplicateModerator   Reason = "DUPLICATE_MODERATOR"
	ReasonReservedSenderRole   Reason = "RESERVED_SENDER_ROLE"
	ReasonInvalidDisputeStatus Reason = "INVALID_DISPUTE_STATUS"
	ReasonInvalidResolution    Reason = "INVALID_RESOLUTION"
	ReasonDuplicateFeedback    Reason = "DUPLICATE_FEEDBACK"
	ReasonInsufficientFunds    Reason = "INSUFFICIENT_FUNDS"
	ReasonInvalidAmount        Reason = "INVALID_AMOUNT"
	ReasonInvalidPaymentMethod Reason = "INVALID_PAYMENT_METHOD"
	ReasonValidation           Reason = "VALIDATION_FAILED"
	ReasonInternal             Reason = "INTERNAL"
)

var reasons = []struct {
	err    error
	reason Reason
}{
	{ErrUserNotFound, ReasonUserNotFound},
	{ErrTransactionNotFound, ReasonTransactionNotFound},
	{ErrDisputeNotFound, ReasonDisputeNotFound},
	{ErrModeratorNotFound, ReasonModeratorNotFound},
	{ErrProfileNotFound, ReasonProfileNotFound},
	{ErrWalletNotFound, ReasonWalletNotFound},
	{ErrPaymentMethodNotFound, ReasonPaymentMethodMissing},
	{ErrDuplicateTransaction, ReasonDuplicateTransaction},
	{ErrInvalidStatus, ReasonInvalidStatus},
	{ErrNotSeller, ReasonNotSeller},
	{ErrNotBuyer, ReasonNotBuyer},
	{ErrNotParticipant, ReasonNotParticipant},
	{ErrSellerCannotBuy, ReasonSellerCannotBuy},
	{ErrBuyerAlreadySet, ReasonBuyerAlreadySet},
	{ErrDisputeAlreadyOpen, ReasonDisputeAlreadyOpen},
	{ErrDisputeNotOpen, ReasonDisputeNotOpen},
	{ErrDisputeNotResolved, ReasonDisputeNotResolved},
	{ErrModeratorNotAssigned, ReasonModeratorNotAssigned},
	{ErrModeratorUnavailable, ReasonModeratorUnavailable},
	{ErrDuplicateModerator, ReasonDuplicateModerator},
	{ErrReservedSenderRole, ReasonReservedSenderRole},
	{ErrInvalidDisputeStatus, ReasonInvalidDisputeStatus},
	{ErrInvalidResolution, ReasonInvalidResolution},
	{ErrDuplicateFeedback, ReasonDuplicateFeedback},
	{ErrInsufficientFunds, ReasonInsufficientFunds},
	{ErrInvalidAmount, ReasonInvalidAmount},
	{ErrInvalidPaymentMethod, ReasonInvalidPaymentMethod},
	{ErrValidation, ReasonValidation},
}

// ReasonOf returns the reason code for a core error. Errors that are not business-rule
// violations (database, network) report ReasonInternal.
func ReasonOf(err error) Reason {
	if err == nil {
		return ReasonNone
	}
	for _, r := range reasons {
		if errors.Is(err, r.err) {
			return r.reason
		}
	}
	return ReasonInternal
}

// IsRuleViolation reports whether err is an expected, caller-recoverable outcome.
func IsRuleViolation(err error) bool {
	r := ReasonOf(err)
	return r != ReasonNone && r != ReasonInternal
}
