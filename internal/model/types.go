package model

import "strings"

type TransactionStatus string

const (
	StatusCreated   TransactionStatus = "created"
	StatusFunded    TransactionStatus = "funded"
	StatusConfirmed TransactionStatus = "confirmed"
	StatusCompleted TransactionStatus = "completed"
	StatusDisputed  TransactionStatus = "disputed"
	StatusRefunded  TransactionStatus = "refunded"
	StatusCancelled TransactionStatus = "cancelled"
)

var transitions = map[TransactionStatus][]TransactionStatus{
	StatusCreated:   {StatusFunded, StatusCancelled},
	StatusFunded:    {StatusConfirmed, StatusDisputed},
	StatusConfirmed: {StatusCompleted, StatusDisputed},
	StatusDisputed:  {StatusCompleted, StatusRefunded, StatusCancelled},
}

// ValidTransition reports whether the escrow state machine allows moving from one status to another.
func ValidTransition(from, to TransactionStatus) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

func (s TransactionStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusRefunded || s == StatusCancelled
}

func (s TransactionStatus) String() string {
	return string(s)
}

type PartyRole string

const (
	RoleBuyer     PartyRole = "buyer"
	RoleSeller    PartyRole = "seller"
	RoleModerator PartyRole = "moderator"
	RoleSystem    PartyRole = "system"
)

type DisputeStatus string

const (
	DisputeOpen             DisputeStatus = "open"
	DisputeInvestigating    DisputeStatus = "investigating"
	DisputeAwaitingResponse DisputeStatus = "awaiting_response"
	DisputeResolved         DisputeStatus = "resolved"
	DisputeClosed           DisputeStatus = "closed"
)

// ActiveDisputeStatuses are the statuses a moderator still has to work on.
var ActiveDisputeStatuses = []DisputeStatus{DisputeOpen, DisputeInvestigating, DisputeAwaitingResponse}

func (s DisputeStatus) IsActive() bool {
	for _, a := range ActiveDisputeStatuses {
		if s == a {
			return true
		}
	}
	return false
}

func ParseDisputeStatus(s string) (DisputeStatus, error) {
	switch DisputeStatus(s) {
	case DisputeOpen, DisputeInvestigating, DisputeAwaitingResponse, DisputeResolved, DisputeClosed:
		return DisputeStatus(s), nil
	default:
		return "", ErrInvalidDisputeStatus
	}
}

type Priority string

const (
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// Rank orders priorities for the moderator queue, higher first.
func (p Priority) Rank() int {
	switch p {
	case PriorityUrgent:
		return 2
	case PriorityHigh:
		return 1
	default:
		return 0
	}
}

const (
	DisputeTypePaymentNotReceived  = "payment_not_received"
	DisputeTypeServiceNotDelivered = "service_not_delivered"
	DisputeTypeQualityIssue        = "quality_issue"
)

type ResolutionType string

const (
	ResolutionBuyer  ResolutionType = "buyer"
	ResolutionSeller ResolutionType = "seller"
	ResolutionRefund ResolutionType = "refund"
)

// ParseResolutionType accepts the short outcomes and the long names moderators use in case notes.
func ParseResolutionType(s string) (ResolutionType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "buyer", "refund_buyer":
		return ResolutionBuyer, nil
	case "seller", "release_to_seller":
		return ResolutionSeller, nil
	case "refund", "partial_refund", "mediated_agreement":
		return ResolutionRefund, nil
	default:
		return "", ErrInvalidResolution
	}
}

// TransactionStatus is the terminal escrow status a resolution settles the trade into.
func (r ResolutionType) TransactionStatus() TransactionStatus {
	if r == ResolutionSeller {
		return StatusCompleted
	}
	return StatusRefunded
}

type ModeratorLevel string

const (
	LevelJunior ModeratorLevel = "junior"
	LevelSenior ModeratorLevel = "senior"
	LevelLead   ModeratorLevel = "lead"
	LevelAdmin  ModeratorLevel = "admin"
)

const (
	MessageText         = "text"
	MessageEvidence     = "evidence"
	MessageDecision     = "decision"
	MessageSystemUpdate = "system_update"
)

type TrustLevel string

const (
	TrustUnverified TrustLevel = "unverified"
	TrustBronze     TrustLevel = "bronze"
	TrustSilver     TrustLevel = "silver"
	TrustGold       TrustLevel = "gold"
	TrustPlatinum   TrustLevel = "platinum"
	TrustDiamond    TrustLevel = "diamond"
)

type FeedbackType string

const (
	FeedbackPositive FeedbackType = "positive"
	FeedbackNeutral  FeedbackType = "neutral"
	FeedbackNegative FeedbackType = "negative"
)

// ClassifyRating maps a star rating to its feedback bucket.
func ClassifyRating(rating int) FeedbackType {
	switch {
	case rating >= 4:
		return FeedbackPositive
	case rating == 3:
		return FeedbackNeutral
	default:
		return FeedbackNegative
	}
}

type PaymentMethodType string

const (
	PaymentFiat   PaymentMethodType = "fiat"
	PaymentCrypto PaymentMethodType = "crypto"
)

func ParsePaymentMethodType(s string) (PaymentMethodType, error) {
	switch PaymentMethodType(strings.ToLower(s)) {
	case PaymentFiat:
		return PaymentFiat, nil
	case PaymentCrypto:
		return PaymentCrypto, nil
	default:
		return "", ErrInvalidPaymentMethod
	}
}

type WalletDirection string

const (
	DirectionIn  WalletDirection = "in"
	DirectionOut WalletDirection = "out"
)
