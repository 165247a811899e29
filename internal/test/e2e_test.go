package test

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"escrow-service/internal/auth"
	"escrow-service/internal/cache"
	"escrow-service/internal/config"
	"escrow-service/internal/database"
	"escrow-service/internal/handler"
	"escrow-service/internal/model"
	"escrow-service/internal/repository/postgres"
	"escrow-service/internal/service"
	"escrow-service/internal/validation"
	"escrow-service/migrations"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testPool *pgxpool.Pool
	testCfg  *config.Config
	nextUser atomic.Int64
)

// Runs as first function
func TestMain(m *testing.M) {
	if os.Getenv("SKIP_E2E") != "" {
		fmt.Println("Skipping E2E tests")
		os.Exit(0)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := migrate(cfg.Database); err != nil {
		fmt.Printf("failed to migrate database: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	pool, err := database.NewPool(ctx, cfg.Database)
	cancel()
	if err != nil {
		fmt.Printf("failed to connect to database: %v\n", err)
		os.Exit(1)
	}

	testPool = pool
	testCfg = cfg
	// ids far above real chat user ids keep test rows apart from each run
	nextUser.Store(9_000_000_000 + time.Now().Unix()%1_000_000*1000)

	code := m.Run()
	pool.Close()
	os.Exit(code)
}

func migrate(cfg config.DatabaseConfig) error {
	db, err := sql.Open("pgx", cfg.URL())
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return goose.Up(db, ".")
}

type e2e struct {
	router *gin.Engine
	tokens *auth.TokenManager
}

func setupE2E(t *testing.T) *e2e {
	if testPool == nil {
		t.Skip("Database connection not available")
	}
	gin.SetMode(gin.TestMode)

	logger := zerolog.Nop()
	userRepo := postgres.NewUserRepository(testPool)
	transRepo := postgres.NewTransactionRepository(testPool)
	dbManager := postgres.NewTransactionManager(testPool)

	trust := service.NewTrustService(
		postgres.NewProfileRepository(testPool),
		postgres.NewFeedbackRepository(testPool),
		postgres.NewBadgeRepository(testPool),
		dbManager,
		cache.NewSnapshotCache(nil, time.Minute),
		logger,
	)
	svcs := handler.Services{
		Escrow: service.NewEscrowService(userRepo, transRepo, dbManager, trust, testCfg.Escrow, logger),
		Disputes: service.NewDisputeService(
			postgres.NewDisputeRepository(testPool),
			postgres.NewModeratorRepository(testPool),
			transRepo, dbManager, trust, 50, logger,
		),
		Trust:          trust,
		Wallets:        service.NewWalletService(postgres.NewWalletRepository(testPool), dbManager, logger),
		Users:          service.NewUserService(userRepo, dbManager, trust, logger),
		PaymentMethods: service.NewPaymentMethodService(userRepo, postgres.NewPaymentMethodRepository(testPool), logger),
	}

	tokens := auth.NewTokenManager("e2e-secret", time.Hour)
	h := handler.NewHandler(svcs, validation.New(testCfg.Escrow), tokens, logger)

	return &e2e{
		router: h.SetupRoutes(config.RateLimitConfig{Requests: 100_000, Period: time.Minute}),
		tokens: tokens,
	}
}

func (e *e2e) request(t *testing.T, method, path, token string, body any) (int, []byte) {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w.Code, w.Body.Bytes()
}

// newUser registers a fresh chat user and returns its id and token
func (e *e2e) newUser(t *testing.T, name string) (int64, string) {
	id := nextUser.Add(1)
	token, _, err := e.tokens.Issue(fmt.Sprint(id), auth.RoleUser)
	require.NoError(t, err)

	code, body := e.request(t, http.MethodPost, "/api/v1/users", token, model.RegisterUserRequest{
		ID: id, Username: fmt.Sprintf("%s_%d", name, id), DisplayName: name,
	})
	require.Equal(t, http.StatusCreated, code, string(body))
	return id, token
}

func (e *e2e) createTransaction(t *testing.T, sellerToken string) string {
	code, body := e.request(t, http.MethodPost, "/api/v1/transactions", sellerToken, model.CreateTransactionRequest{
		Title:         "Logo design",
		Description:   "Three logo concepts, vector files",
		Amount:        "100.00",
		PaymentMethod: "PayPal",
	})
	require.Equal(t, http.StatusCreated, code, string(body))

	var resp struct {
		ID    string `json:"id"`
		Total string `json:"total"`
	}
	require.NoError(t, json.Unmarshal(body, &resp))
	assert.Equal(t, "102.50", resp.Total)
	return resp.ID
}

func Test_Lifecycle_CompletesAndRecordsTrades(t *testing.T) {
	e := setupE2E(t)
	sellerID, sellerToken := e.newUser(t, "seller")
	_, buyerToken := e.newUser(t, "buyer")

	id := e.createTransaction(t, sellerToken)

	for _, step := range []struct {
		path  string
		token string
	}{
		{"join", buyerToken},
		{"payment", buyerToken},
		{"receipt", sellerToken},
		{"complete", buyerToken},
	} {
		code, body := e.request(t, http.MethodPost, "/api/v1/transactions/"+id+"/"+step.path, step.token, nil)
		require.Equal(t, http.StatusOK, code, "%s: %s", step.path, body)
	}

	code, body := e.request(t, http.MethodGet, fmt.Sprintf("/api/v1/users/%d/trust", sellerID), buyerToken, nil)
	require.Equal(t, http.StatusOK, code, string(body))

	var snapshot model.ProfileSnapshot
	require.NoError(t, json.Unmarshal(body, &snapshot))
	assert.Equal(t, 1, snapshot.TotalTrades)
	assert.Equal(t, 1, snapshot.SuccessfulTrades)
	assert.Equal(t, 80.0, snapshot.TrustScore)
}

// Test_ConcurrentReceipt_ExactlyOneWins verifies the compare-and-swap transition:
// the seller confirming receipt from many goroutines moves the transaction once,
// every other request sees INVALID_STATUS and none fails with a 500.
func Test_ConcurrentReceipt_ExactlyOneWins(t *testing.T) {
	e := setupE2E(t)
	_, sellerToken := e.newUser(t, "seller")
	_, buyerToken := e.newUser(t, "buyer")

	id := e.createTransaction(t, sellerToken)
	code, _ := e.request(t, http.MethodPost, "/api/v1/transactions/"+id+"/payment", buyerToken, nil)
	require.Equal(t, http.StatusOK, code)

	const numRequests = 20
	barrier := make(chan struct{})
	codes := make(chan int, numRequests)

	var wg sync.WaitGroup
	wg.Add(numRequests)
	for range numRequests {
		go func() {
			defer wg.Done()
			<-barrier
			code, _ := e.request(t, http.MethodPost, "/api/v1/transactions/"+id+"/receipt", sellerToken, nil)
			codes <- code
		}()
	}
	close(barrier)
	wg.Wait()
	close(codes)

	counts := map[int]int{}
	for c := range codes {
		counts[c]++
	}
	assert.Equal(t, 1, counts[http.StatusOK])
	assert.Equal(t, numRequests-1, counts[http.StatusConflict])
	assert.Zero(t, counts[http.StatusInternalServerError])
}

func Test_ConcurrentDisputes_OnlyOneOpens(t *testing.T) {
	e := setupE2E(t)
	_, sellerToken := e.newUser(t, "seller")
	_, buyerToken := e.newUser(t, "buyer")

	id := e.createTransaction(t, sellerToken)
	code, _ := e.request(t, http.MethodPost, "/api/v1/transactions/"+id+"/payment", buyerToken, nil)
	require.Equal(t, http.StatusOK, code)

	barrier := make(chan struct{})
	codes := make(chan int, 2)
	var wg sync.WaitGroup
	for _, token := range []string{sellerToken, buyerToken} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-barrier
			code, _ := e.request(t, http.MethodPost, "/api/v1/transactions/"+id+"/disputes", token, model.OpenDisputeRequest{
				DisputeType: model.DisputeTypeServiceNotDelivered,
				Reason:      "Nothing was delivered",
				Amount:      "0.01",
				Currency:    "BTC",
			})
			codes <- code
		}()
	}
	close(barrier)
	wg.Wait()
	close(codes)

	got := []int{<-codes, <-codes}
	assert.ElementsMatch(t, []int{http.StatusCreated, http.StatusConflict}, got)

	code, body := e.request(t, http.MethodGet, "/api/v1/transactions/"+id, buyerToken, nil)
	require.Equal(t, http.StatusOK, code)
	var trans model.Transaction
	require.NoError(t, json.Unmarshal(body, &trans))
	assert.Equal(t, model.StatusDisputed, trans.Status)
}

func Test_ConcurrentWithdrawals_NeverOverdraw(t *testing.T) {
	e := setupE2E(t)
	_, token := e.newUser(t, "holder")

	code, body := e.request(t, http.MethodPost, "/api/v1/wallet/deposit", token, model.WalletOperationRequest{Amount: "100.00"})
	require.Equal(t, http.StatusOK, code, string(body))

	const numRequests = 25
	barrier := make(chan struct{})
	var ok, rejected atomic.Int32

	var wg sync.WaitGroup
	wg.Add(numRequests)
	for range numRequests {
		go func() {
			defer wg.Done()
			<-barrier
			code, _ := e.request(t, http.MethodPost, "/api/v1/wallet/withdraw", token, model.WalletOperationRequest{Amount: "10.00"})
			switch code {
			case http.StatusOK:
				ok.Add(1)
			case http.StatusBadRequest:
				rejected.Add(1)
			}
		}()
	}
	close(barrier)
	wg.Wait()

	assert.Equal(t, int32(10), ok.Load())
	assert.Equal(t, int32(numRequests-10), rejected.Load())

	code, body = e.request(t, http.MethodGet, "/api/v1/wallet", token, nil)
	require.Equal(t, http.StatusOK, code)
	var wallet model.Wallet
	require.NoError(t, json.Unmarshal(body, &wallet))
	assert.True(t, wallet.Balance.Equal(decimal.Zero), "balance %s", wallet.Balance)
}
