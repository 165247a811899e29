package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"escrow-service/internal/auth"
	"escrow-service/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestHandler_CreateTransaction_Success(t *testing.T) {
	s := newTestServer(t)

	s.svc.escrow.On("CreateTransaction", mock.Anything, mock.MatchedBy(func(in model.CreateTransactionInput) bool {
		return in.SellerID == 42 &&
			in.PaymentMethod == "PayPal" &&
			in.Amount.Equal(decimal.NewFromInt(100))
	})).Return(&model.Transaction{
		ID:       "AB123456",
		SellerID: 42,
		Amount:   decimal.NewFromInt(100),
		Fee:      decimal.RequireFromString("2.5"),
		Status:   model.StatusCreated,
	}, nil)

	w := s.do(t, http.MethodPost, "/api/v1/transactions", s.token(t, "42", auth.RoleUser), model.CreateTransactionRequest{
		Title:         "Logo design",
		Description:   "Three concepts",
		Amount:        "100",
		PaymentMethod: "paypal",
	})

	require.Equal(t, http.StatusCreated, w.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "AB123456", resp["id"])
	assert.Equal(t, "102.50", resp["total"])
}

func TestHandler_CreateTransaction_Validation(t *testing.T) {
	tests := []struct {
		name string
		req  model.CreateTransactionRequest
	}{
		{"amount below minimum", model.CreateTransactionRequest{Title: "T", Description: "D", Amount: "4.99", PaymentMethod: "PayPal"}},
		{"amount above maximum", model.CreateTransactionRequest{Title: "T", Description: "D", Amount: "5000.01", PaymentMethod: "PayPal"}},
		{"amount not numeric", model.CreateTransactionRequest{Title: "T", Description: "D", Amount: "ten", PaymentMethod: "PayPal"}},
		{"unsupported method", model.CreateTransactionRequest{Title: "T", Description: "D", Amount: "10", PaymentMethod: "Gold bars"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t)

			w := s.do(t, http.MethodPost, "/api/v1/transactions", s.token(t, "42", auth.RoleUser), tt.req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, "VALIDATION_FAILED", decodeError(t, w).Code)
			s.svc.escrow.AssertNotCalled(t, "CreateTransaction", mock.Anything, mock.Anything)
		})
	}
}

func TestHandler_CreateTransaction_InvalidBody(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/api/v1/transactions", s.token(t, "42", auth.RoleUser), map[string]string{"title": "only"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_REQUEST", decodeError(t, w).Code)
}

func TestHandler_ConfirmReceipt_NotSeller(t *testing.T) {
	s := newTestServer(t)

	s.svc.escrow.On("ConfirmReceipt", mock.Anything, "AB123456", int64(7)).Return(nil, model.ErrNotSeller)

	w := s.do(t, http.MethodPost, "/api/v1/transactions/AB123456/receipt", s.token(t, "7", auth.RoleUser), nil)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "NOT_SELLER", decodeError(t, w).Code)
}

func TestHandler_TransactionActions_UseCaller(t *testing.T) {
	tests := []struct {
		path   string
		method string
		status model.TransactionStatus
	}{
		{"join", "JoinAsBuyer", model.StatusCreated},
		{"payment", "ConfirmPayment", model.StatusFunded},
		{"complete", "Complete", model.StatusCompleted},
		{"cancel", "Cancel", model.StatusCancelled},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			s := newTestServer(t)
			s.svc.escrow.On(tt.method, mock.Anything, "AB123456", int64(9)).
				Return(&model.Transaction{ID: "AB123456", Status: tt.status}, nil)

			w := s.do(t, http.MethodPost, "/api/v1/transactions/AB123456/"+tt.path, s.token(t, "9", auth.RoleUser), nil)

			require.Equal(t, http.StatusOK, w.Code)
			var resp map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, string(tt.status), resp["status"])
		})
	}
}

func TestHandler_GetTransaction_BadID(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/api/v1/transactions/a!b", s.token(t, "9", auth.RoleUser), nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetTransaction_NotFound(t *testing.T) {
	s := newTestServer(t)
	s.svc.escrow.On("GetTransaction", mock.Anything, "ZZ999999").Return(nil, model.ErrTransactionNotFound)

	w := s.do(t, http.MethodGet, "/api/v1/transactions/ZZ999999", s.token(t, "001", auth.RoleModerator), nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "TRANSACTION_NOT_FOUND", decodeError(t, w).Code)
}

func TestHandler_ListTransactions_Pagination(t *testing.T) {
	s := newTestServer(t)
	s.svc.escrow.On("ListUserTransactions", mock.Anything, int64(9), 100, 0).Return([]*model.Transaction{}, nil)

	w := s.do(t, http.MethodGet, "/api/v1/transactions?limit=500&offset=-1", s.token(t, "9", auth.RoleUser), nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resp model.TransactionListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 100, resp.Limit)
	assert.Equal(t, 0, resp.Offset)
}

func TestHandler_ResolveTransactionDispute(t *testing.T) {
	s := newTestServer(t)
	s.svc.disputes.On("ResolveTransactionDispute", mock.Anything, "AB123456", model.ResolutionBuyer).
		Return(&model.Dispute{ID: "DSP-0000ABCD", Status: model.DisputeResolved}, nil)

	w := s.do(t, http.MethodPost, "/api/v1/transactions/AB123456/resolution", s.token(t, "root", auth.RoleAdmin),
		model.ResolveDisputeRequest{ResolutionType: "refund_buyer"})

	assert.Equal(t, http.StatusOK, w.Code)
}
