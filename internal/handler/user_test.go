package handler

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"escrow-service/internal/auth"
	"escrow-service/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestHandler_IssueToken(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/api/v1/auth/tokens", s.token(t, "root", auth.RoleAdmin),
		model.IssueTokenRequest{Subject: "42", Role: "user"})

	require.Equal(t, http.StatusCreated, w.Code)
	var resp model.TokenResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	p, err := s.tokens.Parse(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, auth.Principal{Subject: "42", Role: auth.RoleUser}, p)
}

func TestHandler_RegisterUser(t *testing.T) {
	s := newTestServer(t)
	s.svc.users.On("RegisterUser", mock.Anything, model.RegisterUserInput{ID: 42, Username: "alice", DisplayName: "Alice"}).
		Return(&model.User{ID: 42, Username: "alice"}, true, nil).Once()
	s.svc.users.On("RegisterUser", mock.Anything, model.RegisterUserInput{ID: 42, Username: "alice", DisplayName: "Alice"}).
		Return(&model.User{ID: 42, Username: "alice"}, false, nil).Once()

	req := model.RegisterUserRequest{ID: 42, Username: "alice", DisplayName: "Alice"}
	token := s.token(t, "42", auth.RoleUser)

	w := s.do(t, http.MethodPost, "/api/v1/users", token, req)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = s.do(t, http.MethodPost, "/api/v1/users", token, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_RegisterUser_OtherUser(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/api/v1/users", s.token(t, "41", auth.RoleUser),
		model.RegisterUserRequest{ID: 42, Username: "alice"})

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_Withdraw_InsufficientFunds(t *testing.T) {
	s := newTestServer(t)
	s.svc.wallets.On("Withdraw", mock.Anything, int64(42), mock.MatchedBy(func(a decimal.Decimal) bool {
		return a.Equal(decimal.NewFromInt(50))
	}), "", "").Return(nil, model.ErrInsufficientFunds)

	w := s.do(t, http.MethodPost, "/api/v1/wallet/withdraw", s.token(t, "42", auth.RoleUser),
		model.WalletOperationRequest{Amount: "50"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INSUFFICIENT_FUNDS", decodeError(t, w).Code)
}

func TestHandler_Deposit(t *testing.T) {
	s := newTestServer(t)
	s.svc.wallets.On("Deposit", mock.Anything, int64(42), mock.Anything, "AB123456", "refund").
		Return(&model.Wallet{ID: "w-1", UserID: 42, Balance: decimal.NewFromInt(50)}, nil)

	w := s.do(t, http.MethodPost, "/api/v1/wallet/deposit", s.token(t, "42", auth.RoleUser),
		model.WalletOperationRequest{Amount: "50", TransactionID: "AB123456", Type: "refund"})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_WalletOperation_RejectsOversizedFields(t *testing.T) {
	tests := []struct {
		name string
		path string
		req  model.WalletOperationRequest
	}{
		{"deposit amount exceeds storage", "/api/v1/wallet/deposit", model.WalletOperationRequest{Amount: "1000000000000"}},
		{"withdraw amount exceeds storage", "/api/v1/wallet/withdraw", model.WalletOperationRequest{Amount: "1e15"}},
		{"transaction id too long", "/api/v1/wallet/deposit", model.WalletOperationRequest{Amount: "5", TransactionID: "AB1234567890123456789"}},
		{"type too long", "/api/v1/wallet/deposit", model.WalletOperationRequest{Amount: "5", Type: strings.Repeat("t", 33)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t)

			w := s.do(t, http.MethodPost, tt.path, s.token(t, "42", auth.RoleUser), tt.req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, "VALIDATION_FAILED", decodeError(t, w).Code)
			s.svc.wallets.AssertNotCalled(t, "Deposit", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
			s.svc.wallets.AssertNotCalled(t, "Withdraw", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestHandler_RecordFeedback(t *testing.T) {
	s := newTestServer(t)
	s.svc.trust.On("RecordFeedback", mock.Anything, mock.MatchedBy(func(in model.RecordFeedbackInput) bool {
		return in.GiverID == "2" && in.ReceiverID == "1" && in.Rating == 5
	})).Return(nil)

	w := s.do(t, http.MethodPost, "/api/v1/feedback", s.token(t, "2", auth.RoleUser),
		model.FeedbackRequest{TradeID: "AB123456", ReceiverID: "1", Rating: 5})

	require.Equal(t, http.StatusCreated, w.Code)
	var resp model.StatusResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "positive", resp.Status)
}

func TestHandler_RecordFeedback_RatingOutOfRange(t *testing.T) {
	s := newTestServer(t)
	quality := 9

	w := s.do(t, http.MethodPost, "/api/v1/feedback", s.token(t, "2", auth.RoleUser),
		model.FeedbackRequest{TradeID: "AB123456", ReceiverID: "1", Rating: 4, Quality: &quality})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetTrustStats(t *testing.T) {
	s := newTestServer(t)
	s.svc.trust.On("GetTrustStats", mock.Anything, "1").Return(&model.ProfileSnapshot{UserID: "1", TrustScore: 83.3}, nil)
	s.svc.trust.On("GetTrustStats", mock.Anything, "404").Return(nil, model.ErrProfileNotFound)

	w := s.do(t, http.MethodGet, "/api/v1/users/1/trust", s.token(t, "2", auth.RoleUser), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var snapshot model.ProfileSnapshot
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &snapshot))
	assert.Equal(t, 83.3, snapshot.TrustScore)

	w = s.do(t, http.MethodGet, "/api/v1/users/404/trust", s.token(t, "2", auth.RoleUser), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_AddPaymentMethod_InvalidType(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/api/v1/users/me/payment-methods", s.token(t, "42", auth.RoleUser),
		model.PaymentMethodRequest{Name: "Bitcoin", Type: "barter"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_REQUEST", decodeError(t, w).Code)
}
