package handler

import (
	"errors"
	"net/http"

	"escrow-service/internal/auth"
	"escrow-service/internal/config"
	"escrow-service/internal/metrics"
	"escrow-service/internal/model"
	"escrow-service/internal/service"
	"escrow-service/internal/validation"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Services bundles the core the HTTP adapter drives.
type Services struct {
	Escrow         service.EscrowService
	Disputes       service.DisputeService
	Trust          service.TrustService
	Wallets        service.WalletService
	Users          service.UserService
	PaymentMethods service.PaymentMethodService
}

type Handler struct {
	escrow         service.EscrowService
	disputes       service.DisputeService
	trust          service.TrustService
	wallets        service.WalletService
	users          service.UserService
	paymentMethods service.PaymentMethodService
	validator      *validation.Validator
	tokens         *auth.TokenManager
	logger         zerolog.Logger
}

func NewHandler(svcs Services, validator *validation.Validator, tokens *auth.TokenManager, logger zerolog.Logger) *Handler {
	return &Handler{
		escrow:         svcs.Escrow,
		disputes:       svcs.Disputes,
		trust:          svcs.Trust,
		wallets:        svcs.Wallets,
		users:          svcs.Users,
		paymentMethods: svcs.PaymentMethods,
		validator:      validator,
		tokens:         tokens,
		logger:         logger,
	}
}

func (h *Handler) SetupRoutes(rateLimit config.RateLimitConfig) *gin.Engine {
	router := gin.New()

	// Middlewares
	router.Use(
		RequestIDMiddleware(),
		LoggingMiddleware(),
		metrics.Middleware(),
		gin.Recovery(),
	)

	// Swagger, metrics and health checks
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", metrics.Handler())
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API routes
	v1 := router.Group("/api/v1")
	v1.Use(RateLimitMiddleware(rateLimit.Requests, rateLimit.Period), AuthMiddleware(h.tokens))

	admin := RequireRole(auth.RoleAdmin)
	user := RequireRole(auth.RoleUser)
	moderator := RequireRole(auth.RoleModerator)
	staff := RequireRole(auth.RoleModerator, auth.RoleAdmin)

	v1.POST("/auth/tokens", admin, h.IssueToken)

	users := v1.Group("/users")
	users.POST("", RequireRole(auth.RoleUser, auth.RoleAdmin), h.RegisterUser)
	users.GET("/me", user, h.GetCurrentUser)
	users.GET("/me/payment-methods", user, h.ListPaymentMethods)
	users.POST("/me/payment-methods", user, h.AddPaymentMethod)
	users.GET("/me/payment-methods/:name", user, h.GetPaymentMethod)
	users.GET("/:id/trust", h.GetTrustStats)
	users.POST("/:id/trust/recalculate", admin, h.RecalculateTrust)
	users.PUT("/:id/verification", admin, h.SetVerification)
	users.POST("/:id/response-times", admin, h.RecordResponseTime)

	v1.POST("/feedback", user, h.RecordFeedback)

	wallet := v1.Group("/wallet", user)
	wallet.GET("", h.GetWallet)
	wallet.POST("/deposit", h.Deposit)
	wallet.POST("/withdraw", h.Withdraw)
	wallet.GET("/transactions", h.ListWalletTransactions)

	transactions := v1.Group("/transactions")
	transactions.POST("", user, h.CreateTransaction)
	transactions.GET("", user, h.ListTransactions)
	transactions.GET("/:id", h.GetTransaction)
	transactions.POST("/:id/join", user, h.JoinTransaction)
	transactions.POST("/:id/payment", user, h.ConfirmPayment)
	transactions.POST("/:id/receipt", user, h.ConfirmReceipt)
	transactions.POST("/:id/complete", user, h.CompleteTransaction)
	transactions.POST("/:id/cancel", user, h.CancelTransaction)
	transactions.POST("/:id/disputes", user, h.OpenDispute)
	transactions.POST("/:id/resolution", admin, h.ResolveTransactionDispute)

	disputes := v1.Group("/disputes")
	disputes.GET("", h.ListDisputes)
	disputes.GET("/:id", h.GetDispute)
	disputes.GET("/:id/messages", h.GetDisputeMessages)
	disputes.POST("/:id/messages", RequireRole(auth.RoleUser, auth.RoleModerator), h.AddDisputeMessage)
	disputes.POST("/:id/response", user, h.RespondToDispute)
	disputes.PUT("/:id/status", moderator, h.UpdateDisputeStatus)
	disputes.POST("/:id/resolve", staff, h.ResolveDispute)
	disputes.POST("/:id/close", moderator, h.CloseDispute)
	disputes.POST("/:id/assign", admin, h.AssignModerator)

	moderators := v1.Group("/moderators")
	moderators.POST("", admin, h.RegisterModerator)
	moderators.PUT("/:id/availability", staff, h.SetModeratorAvailability)
	moderators.GET("/:id/stats", staff, h.GetModeratorStats)
	moderators.GET("/:id/disputes", staff, h.GetModeratorDisputes)

	return router
}

var reasonStatus = map[model.Reason]int{
	model.ReasonUserNotFound:         http.StatusNotFound,
	model.ReasonTransactionNotFound:  http.StatusNotFound,
	model.ReasonDisputeNotFound:      http.StatusNotFound,
	model.ReasonModeratorNotFound:    http.StatusNotFound,
	model.ReasonProfileNotFound:      http.StatusNotFound,
	model.ReasonWalletNotFound:       http.StatusNotFound,
	model.ReasonPaymentMethodMissing: http.StatusNotFound,
	model.ReasonDuplicateTransaction: http.StatusConflict,
	model.ReasonInvalidStatus:        http.StatusConflict,
	model.ReasonNotSeller:            http.StatusForbidden,
	model.ReasonNotBuyer:             http.StatusForbidden,
	model.ReasonNotParticipant:       http.StatusForbidden,
	model.ReasonSellerCannotBuy:      http.StatusBadRequest,
	model.ReasonBuyerAlreadySet:      http.StatusConflict,
	model.ReasonDisputeAlreadyOpen:   http.StatusConflict,
	model.ReasonDisputeNotOpen:       http.StatusConflict,
	model.ReasonDisputeNotResolved:   http.StatusConflict,
	model.ReasonModeratorNotAssigned: http.StatusForbidden,
	model.ReasonModeratorUnavailable: http.StatusServiceUnavailable,
	model.ReasonDuplicateModerator:   http.StatusConflict,
	model.ReasonReservedSenderRole:   http.StatusBadRequest,
	model.ReasonInvalidDisputeStatus: http.StatusBadRequest,
	model.ReasonInvalidResolution:    http.StatusBadRequest,
	model.ReasonDuplicateFeedback:    http.StatusConflict,
	model.ReasonInsufficientFunds:    http.StatusBadRequest,
	model.ReasonInvalidAmount:        http.StatusBadRequest,
	model.ReasonInvalidPaymentMethod: http.StatusBadRequest,
	model.ReasonValidation:           http.StatusBadRequest,
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, auth.ErrInvalidToken):
		c.JSON(http.StatusUnauthorized, model.ErrorResponse{Error: err.Error(), Code: "UNAUTHORIZED"})
		return
	case errors.Is(err, auth.ErrInvalidRole):
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: err.Error(), Code: "INVALID_ROLE"})
		return
	}

	reason := model.ReasonOf(err)
	status, ok := reasonStatus[reason]
	if !ok {
		h.logger.Error().Err(err).Str("request_id", requestID(c)).Msg("internal server error")
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{
			Error: "internal server error",
			Code:  "INTERNAL_SERVER_ERROR",
		})
		return
	}

	c.JSON(status, model.ErrorResponse{Error: err.Error(), Code: string(reason)})
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: msg, Code: "INVALID_REQUEST"})
}
