// Package validation checks raw user input before it reaches the services.
package validation

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"escrow-service/internal/config"
	"escrow-service/internal/model"

	"github.com/shopspring/decimal"
)

const DateLayout = "2006-01-02"

// Column widths of stored free-form fields
const (
	MaxDisputeTypeLen = 50
	MaxCurrencyLen    = 10
	MaxWalletKindLen  = 32
	MaxUsernameLen    = 64
)

var (
	transactionIDPattern = regexp.MustCompile(`^[a-zA-Z0-9-]{4,16}$`)

	cryptoAddressPatterns = map[string]*regexp.Regexp{
		"bitcoin":  regexp.MustCompile(`^(bc1|[13])[a-zA-HJ-NP-Z0-9]{25,62}$`),
		"ethereum": regexp.MustCompile(`^0x[a-fA-F0-9]{40}$`),
		"litecoin": regexp.MustCompile(`^[LM3][a-km-zA-HJ-NP-Z1-9]{26,33}$`),
		"usdt":     regexp.MustCompile(`^0x[a-fA-F0-9]{40}$|^T[a-zA-Z0-9]{33}$`),
	}

	userRoles = []string{"buyer", "seller", "admin"}

	messageTypes = []string{model.MessageText, model.MessageEvidence, model.MessageDecision}

	// amounts are stored as NUMERIC(20,8)
	maxStoredAmount = decimal.New(1, 12)
)

// Validator holds the configured amount bounds and supported payment methods
type Validator struct {
	minAmount decimal.Decimal
	maxAmount decimal.Decimal
	fiat      []string
	crypto    []string
}

func New(cfg config.EscrowConfig) *Validator {
	return &Validator{
		minAmount: decimal.NewFromFloat(cfg.MinTransactionAmount),
		maxAmount: decimal.NewFromFloat(cfg.MaxTransactionAmount),
		fiat:      cfg.SupportedFiatMethods,
		crypto:    cfg.SupportedCryptoMethods,
	}
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", model.ErrValidation, fmt.Sprintf(format, args...))
}

// TransactionAmount parses raw and checks it against the configured bounds
func (v *Validator) TransactionAmount(raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, invalid("Invalid amount format. Please enter a numeric value.")
	}
	if !amount.IsPositive() {
		return decimal.Zero, invalid("Amount must be a positive number")
	}
	if amount.LessThan(v.minAmount) {
		return decimal.Zero, invalid("Amount must be at least %s", v.minAmount)
	}
	if amount.GreaterThan(v.maxAmount) {
		return decimal.Zero, invalid("Amount cannot exceed %s", v.maxAmount)
	}
	return amount, nil
}

// PositiveAmount parses raw as a strictly positive decimal without the trade bounds.
// It still rejects amounts the store cannot hold.
func PositiveAmount(raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, invalid("Invalid amount format. Please enter a numeric value.")
	}
	if !amount.IsPositive() {
		return decimal.Zero, invalid("Amount must be a positive number")
	}
	if amount.GreaterThanOrEqual(maxStoredAmount) {
		return decimal.Zero, invalid("Amount must be less than %s", maxStoredAmount)
	}
	return amount, nil
}

func normalizeMethod(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "_")
}

// PaymentMethod returns the canonical name of a supported method; matching ignores case and treats spaces as underscores
func (v *Validator) PaymentMethod(method string) (string, model.PaymentMethodType, error) {
	normalized := normalizeMethod(method)
	for _, m := range v.fiat {
		if normalizeMethod(m) == normalized {
			return m, model.PaymentFiat, nil
		}
	}
	for _, m := range v.crypto {
		if normalizeMethod(m) == normalized {
			return m, model.PaymentCrypto, nil
		}
	}
	supported := append(append([]string{}, v.fiat...), v.crypto...)
	return "", "", invalid("Unsupported payment method. Please choose from: %s", strings.Join(supported, ", "))
}

// CryptoAddress checks the address format for known coins and only a minimum length for the rest
func CryptoAddress(cryptoType, address string) error {
	pattern, ok := cryptoAddressPatterns[strings.ToLower(strings.TrimSpace(cryptoType))]
	if !ok {
		if len(strings.TrimSpace(address)) < 10 {
			return invalid("Address is too short")
		}
		return nil
	}
	if !pattern.MatchString(address) {
		return invalid("Invalid %s address format", strings.ToLower(cryptoType))
	}
	return nil
}

// Text checks the trimmed length of free-form input
func Text(s string, minLen, maxLen int) error {
	n := len([]rune(strings.TrimSpace(s)))
	if n < minLen {
		return invalid("Text must be at least %d characters long", minLen)
	}
	if n > maxLen {
		return invalid("Text cannot exceed %d characters", maxLen)
	}
	return nil
}

// Field checks an optional free-form value against its column width; name goes into the message
func Field(name, s string, maxLen int) error {
	if n := len([]rune(strings.TrimSpace(s))); n > maxLen {
		return invalid("%s cannot exceed %d characters", name, maxLen)
	}
	return nil
}

// MessageType defaults an empty type to text; system updates are written by the service only
func MessageType(s string) (string, error) {
	t := strings.ToLower(strings.TrimSpace(s))
	if t == "" {
		return model.MessageText, nil
	}
	for _, m := range messageTypes {
		if m == t {
			return t, nil
		}
	}
	return "", invalid("Invalid message type. Must be one of: %s", strings.Join(messageTypes, ", "))
}

func TransactionID(id string) error {
	if !transactionIDPattern.MatchString(id) {
		return invalid("Invalid transaction ID format")
	}
	return nil
}

func DisputeResolution(resolution string) (model.ResolutionType, error) {
	r, err := model.ParseResolutionType(resolution)
	if err != nil {
		return "", fmt.Errorf("%w: Invalid resolution. Must be one of: buyer, seller, refund", err)
	}
	return r, nil
}

func UserRole(role string) error {
	lower := strings.ToLower(strings.TrimSpace(role))
	for _, r := range userRoles {
		if r == lower {
			return nil
		}
	}
	return invalid("Invalid role. Must be one of: %s", strings.Join(userRoles, ", "))
}

func Rating(rating int) error {
	if rating < 1 || rating > 5 {
		return invalid("Rating must be between 1 and 5")
	}
	return nil
}

// Date parses s with layout, DateLayout when layout is empty
func Date(s, layout string) (time.Time, error) {
	if layout == "" {
		layout = DateLayout
	}
	t, err := time.Parse(layout, s)
	if err != nil {
		return time.Time{}, invalid("Invalid date format. Expected format: %s", layout)
	}
	return t, nil
}
