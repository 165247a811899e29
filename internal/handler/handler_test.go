package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"escrow-service/internal/auth"
	"escrow-service/internal/config"
	"escrow-service/internal/model"
	"escrow-service/internal/validation"
	svcmocks "escrow-service/mocks/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testServices struct {
	escrow         *svcmocks.EscrowService
	disputes       *svcmocks.DisputeService
	trust          *svcmocks.TrustService
	wallets        *svcmocks.WalletService
	users          *svcmocks.UserService
	paymentMethods *svcmocks.PaymentMethodService
}

type testServer struct {
	router *gin.Engine
	tokens *auth.TokenManager
	svc    testServices
}

func newTestServer(t *testing.T) *testServer {
	gin.SetMode(gin.TestMode)

	svc := testServices{
		escrow:         svcmocks.NewEscrowService(t),
		disputes:       svcmocks.NewDisputeService(t),
		trust:          svcmocks.NewTrustService(t),
		wallets:        svcmocks.NewWalletService(t),
		users:          svcmocks.NewUserService(t),
		paymentMethods: svcmocks.NewPaymentMethodService(t),
	}
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	validator := validation.New(config.EscrowConfig{
		FeePercentage:          2.5,
		MinTransactionAmount:   5,
		MaxTransactionAmount:   5000,
		SupportedFiatMethods:   []string{"Bank Transfer", "PayPal"},
		SupportedCryptoMethods: []string{"Bitcoin"},
	})

	h := NewHandler(Services{
		Escrow:         svc.escrow,
		Disputes:       svc.disputes,
		Trust:          svc.trust,
		Wallets:        svc.wallets,
		Users:          svc.users,
		PaymentMethods: svc.paymentMethods,
	}, validator, tokens, zerolog.Nop())

	return &testServer{
		router: h.SetupRoutes(config.RateLimitConfig{Requests: 1000, Period: time.Minute}),
		tokens: tokens,
		svc:    svc,
	}
}

func (s *testServer) token(t *testing.T, subject string, role auth.Role) string {
	token, _, err := s.tokens.Issue(subject, role)
	require.NoError(t, err)
	return token
}

func (s *testServer) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) model.ErrorResponse {
	var resp model.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestHandler_Health(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/health", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestHandler_RequiresBearerToken(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/api/v1/transactions", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "UNAUTHORIZED", decodeError(t, w).Code)

	w = s.do(t, http.MethodGet, "/api/v1/transactions", "not-a-jwt", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_RejectsWrongRole(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/api/v1/moderators", s.token(t, "42", auth.RoleUser), model.ModeratorRequest{
		ID: "005", Username: "mod_lena", FullName: "Lena", RoleLevel: "senior",
	})

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "FORBIDDEN", decodeError(t, w).Code)
}

func TestHandler_RateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RateLimitMiddleware(2, time.Minute))
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for range 3 {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, "/ping", nil)
		router.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestHandleError_MapsReasons(t *testing.T) {
	tests := []struct {
		err    error
		status int
		code   string
	}{
		{fmt.Errorf("get transaction: %w", model.ErrTransactionNotFound), http.StatusNotFound, "TRANSACTION_NOT_FOUND"},
		{model.ErrNotSeller, http.StatusForbidden, "NOT_SELLER"},
		{fmt.Errorf("%w: cannot move", model.ErrInvalidStatus), http.StatusConflict, "INVALID_STATUS"},
		{model.ErrDisputeAlreadyOpen, http.StatusConflict, "DISPUTE_ALREADY_OPEN"},
		{model.ErrInsufficientFunds, http.StatusBadRequest, "INSUFFICIENT_FUNDS"},
		{model.ErrValidation, http.StatusBadRequest, "VALIDATION_FAILED"},
		{model.ErrModeratorUnavailable, http.StatusServiceUnavailable, "MODERATOR_UNAVAILABLE"},
		{fmt.Errorf("connection refused"), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
	}

	gin.SetMode(gin.TestMode)
	h := &Handler{logger: zerolog.Nop()}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			h.handleError(c, tt.err)

			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.code, decodeError(t, w).Code)
		})
	}
}

func TestHandleError_HidesInternalDetails(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := &Handler{logger: zerolog.Nop()}
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	h.handleError(c, fmt.Errorf("dial tcp 10.0.0.5:5432: connection refused"))

	assert.NotContains(t, w.Body.String(), "10.0.0.5")
}
