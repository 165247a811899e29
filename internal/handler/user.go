package handler

import (
	"net/http"
	"strconv"
	"strings"

	"escrow-service/internal/auth"
	"escrow-service/internal/model"
	"escrow-service/internal/validation"

	"github.com/gin-gonic/gin"
)

// IssueToken
// @Summary Issue a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param token body model.IssueTokenRequest true "Subject and role"
// @Success 201 {object} model.TokenResponse
// @Failure 400 {object} model.ErrorResponse "Bad request"
// @Router /auth/tokens [post]
func (h *Handler) IssueToken(c *gin.Context) {
	var req model.IssueTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}
	role, err := auth.ParseRole(req.Role)
	if err != nil {
		h.handleError(c, err)
		return
	}

	token, expiresAt, err := h.tokens.Issue(strings.TrimSpace(req.Subject), role)
	if err != nil {
		badRequest(c, err.Error())
		return
	}
	c.JSON(http.StatusCreated, model.TokenResponse{Token: token, ExpiresAt: expiresAt})
}

// RegisterUser
// @Summary Register a chat user
// @Description Idempotent, repeating the call returns the stored user with created=false
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param user body model.RegisterUserRequest true "User"
// @Success 200 {object} model.RegisterUserResponse "Already registered"
// @Success 201 {object} model.RegisterUserResponse "Created"
// @Failure 403 {object} model.ErrorResponse "Token belongs to another user"
// @Router /users [post]
func (h *Handler) RegisterUser(c *gin.Context) {
	var req model.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	p, _ := principalFrom(c)
	if p.Role == auth.RoleUser && p.Subject != strconv.FormatInt(req.ID, 10) {
		c.AbortWithStatusJSON(http.StatusForbidden, model.ErrorResponse{
			Error: "users can only register themselves",
			Code:  "FORBIDDEN",
		})
		return
	}

	user, created, err := h.users.RegisterUser(c.Request.Context(), model.RegisterUserInput{
		ID:          req.ID,
		Username:    req.Username,
		DisplayName: req.DisplayName,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, model.RegisterUserResponse{User: user, Created: created})
}

// GetCurrentUser
// @Summary The caller's user record
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.User
// @Failure 404 {object} model.ErrorResponse "Not registered"
// @Router /users/me [get]
func (h *Handler) GetCurrentUser(c *gin.Context) {
	userID, ok := h.mustUser(c)
	if !ok {
		return
	}
	user, err := h.users.GetUser(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// AddPaymentMethod
// @Summary Save a payment method
// @Tags payment-methods
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param method body model.PaymentMethodRequest true "Payment method"
// @Success 201 {object} model.PaymentMethod
// @Failure 400 {object} model.ErrorResponse "Invalid method or address"
// @Router /users/me/payment-methods [post]
func (h *Handler) AddPaymentMethod(c *gin.Context) {
	userID, ok := h.mustUser(c)
	if !ok {
		return
	}
	var req model.PaymentMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	pm, err := h.paymentMethods.AddPaymentMethod(c.Request.Context(), model.AddPaymentMethodInput{
		UserID:  userID,
		Name:    req.Name,
		Type:    model.PaymentMethodType(req.Type),
		Details: req.Details,
		Address: req.Address,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, pm)
}

// ListPaymentMethods
// @Summary The caller's saved payment methods
// @Tags payment-methods
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.PaymentMethod
// @Router /users/me/payment-methods [get]
func (h *Handler) ListPaymentMethods(c *gin.Context) {
	userID, ok := h.mustUser(c)
	if !ok {
		return
	}
	methods, err := h.paymentMethods.ListPaymentMethods(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, methods)
}

// GetPaymentMethod
// @Summary Look up a saved payment method by name
// @Tags payment-methods
// @Produce json
// @Security BearerAuth
// @Param name path string true "Method name, case-insensitive"
// @Success 200 {object} model.PaymentMethod
// @Failure 404 {object} model.ErrorResponse "Not found"
// @Router /users/me/payment-methods/{name} [get]
func (h *Handler) GetPaymentMethod(c *gin.Context) {
	userID, ok := h.mustUser(c)
	if !ok {
		return
	}
	if err := validation.Text(c.Param("name"), 1, 64); err != nil {
		h.handleError(c, err)
		return
	}
	pm, err := h.paymentMethods.GetPaymentMethodByName(c.Request.Context(), userID, c.Param("name"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, pm)
}
