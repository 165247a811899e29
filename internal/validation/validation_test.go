package validation

import (
	"strings"
	"testing"

	"escrow-service/internal/config"
	"escrow-service/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newValidator() *Validator {
	return New(config.EscrowConfig{
		MinTransactionAmount:   5,
		MaxTransactionAmount:   5000,
		SupportedFiatMethods:   []string{"Bank Transfer", "PayPal", "Credit Card", "Cash App"},
		SupportedCryptoMethods: []string{"Bitcoin", "Ethereum", "Litecoin", "USDT"},
	})
}

func TestTransactionAmount(t *testing.T) {
	v := newValidator()

	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr string
	}{
		{name: "within bounds", raw: "100", want: "100"},
		{name: "trims spaces", raw: " 25.50 ", want: "25.5"},
		{name: "lower bound inclusive", raw: "5", want: "5"},
		{name: "upper bound inclusive", raw: "5000", want: "5000"},
		{name: "below minimum", raw: "4.99", wantErr: "Amount must be at least 5"},
		{name: "above maximum", raw: "5000.01", wantErr: "Amount cannot exceed 5000"},
		{name: "zero", raw: "0", wantErr: "Amount must be a positive number"},
		{name: "negative", raw: "-10", wantErr: "Amount must be a positive number"},
		{name: "not a number", raw: "ten", wantErr: "Invalid amount format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := v.TransactionAmount(tt.raw)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrValidation)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got))
		})
	}
}

func TestPaymentMethod(t *testing.T) {
	v := newValidator()

	name, kind, err := v.PaymentMethod("bank_transfer")
	require.NoError(t, err)
	assert.Equal(t, "Bank Transfer", name)
	assert.Equal(t, model.PaymentFiat, kind)

	name, kind, err = v.PaymentMethod("  BITCOIN ")
	require.NoError(t, err)
	assert.Equal(t, "Bitcoin", name)
	assert.Equal(t, model.PaymentCrypto, kind)

	_, _, err = v.PaymentMethod("Venmo")
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrValidation)
	assert.Contains(t, err.Error(), "Bank Transfer, PayPal, Credit Card, Cash App, Bitcoin")
}

func TestCryptoAddress(t *testing.T) {
	tests := []struct {
		name    string
		coin    string
		address string
		valid   bool
	}{
		{"bitcoin bech32", "Bitcoin", "bc1qar0srrr7xfkvy5l643lydnw9re59gtzzwf5mdq", true},
		{"bitcoin legacy", "bitcoin", "1BvBMSEYstWetqTFn5Au4m4GFg7xJaNVN2", true},
		{"bitcoin garbage", "bitcoin", "xyz", false},
		{"ethereum", "Ethereum", "0x742d35Cc6634C0532925a3b844Bc454e4438f44e", true},
		{"ethereum short", "ethereum", "0x742d35", false},
		{"litecoin", "litecoin", "LdP8Qox1VAhCzLJNqrr74YovaWYyNBUWvL", true},
		{"usdt trc20", "USDT", "TNPeeaaFB7K9cmo4uQpcU32zGK8G1NYqeL", true},
		{"usdt erc20", "usdt", "0x742d35Cc6634C0532925a3b844Bc454e4438f44e", true},
		{"unknown coin long enough", "dogecoin", "DH5yaieqoZN36fDVciNyRueRGvGLR3mr7L", true},
		{"unknown coin too short", "dogecoin", "short", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CryptoAddress(tt.coin, tt.address)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, model.ErrValidation)
			}
		})
	}
}

func TestText(t *testing.T) {
	assert.NoError(t, Text("hello", 1, 500))
	assert.ErrorIs(t, Text("   ", 1, 500), model.ErrValidation)
	assert.ErrorIs(t, Text("abcdef", 1, 5), model.ErrValidation)
	assert.NoError(t, Text("ñññññ", 1, 5))
}

func TestTransactionID(t *testing.T) {
	assert.NoError(t, TransactionID("QX482913"))
	assert.NoError(t, TransactionID("DSP-1A2B3C4D"))
	assert.Error(t, TransactionID("ab"))
	assert.Error(t, TransactionID("has space"))
	assert.Error(t, TransactionID("AB1234567890123456789"))
}

func TestPositiveAmount(t *testing.T) {
	amount, err := PositiveAmount(" 999999999999.99999999 ")
	require.NoError(t, err)
	assert.Equal(t, "999999999999.99999999", amount.String())

	for _, raw := range []string{"0", "-1", "abc", "1000000000000", "1e15"} {
		_, err := PositiveAmount(raw)
		assert.ErrorIs(t, err, model.ErrValidation, raw)
	}
}

func TestField(t *testing.T) {
	assert.NoError(t, Field("Type", "", MaxWalletKindLen))
	assert.NoError(t, Field("Type", strings.Repeat("a", MaxWalletKindLen), MaxWalletKindLen))

	err := Field("Type", strings.Repeat("a", MaxWalletKindLen+1), MaxWalletKindLen)
	require.ErrorIs(t, err, model.ErrValidation)
	assert.Contains(t, err.Error(), "Type cannot exceed 32 characters")
}

func TestMessageType(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"", model.MessageText, false},
		{" Evidence ", model.MessageEvidence, false},
		{"decision", model.MessageDecision, false},
		{model.MessageSystemUpdate, "", true},
		{"shout", "", true},
	}

	for _, tt := range tests {
		got, err := MessageType(tt.in)
		if tt.wantErr {
			assert.ErrorIs(t, err, model.ErrValidation, tt.in)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestDisputeResolution(t *testing.T) {
	r, err := DisputeResolution("Seller")
	require.NoError(t, err)
	assert.Equal(t, model.ResolutionSeller, r)

	_, err = DisputeResolution("nobody")
	assert.ErrorIs(t, err, model.ErrInvalidResolution)
}

func TestUserRoleAndRating(t *testing.T) {
	assert.NoError(t, UserRole("Admin"))
	assert.Error(t, UserRole("moderator"))

	for _, r := range []int{1, 3, 5} {
		assert.NoError(t, Rating(r))
	}
	assert.Error(t, Rating(0))
	assert.Error(t, Rating(6))
}

func TestDate(t *testing.T) {
	d, err := Date("2024-03-01", "")
	require.NoError(t, err)
	assert.Equal(t, 2024, d.Year())

	_, err = Date("01/03/2024", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), DateLayout)
}
