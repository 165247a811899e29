package handler

import (
	"net/http"
	"strings"

	"escrow-service/internal/auth"
	"escrow-service/internal/model"
	"escrow-service/internal/validation"

	"github.com/gin-gonic/gin"
)

// OpenDispute
// @Summary Open a dispute on a funded or confirmed transaction
// @Tags disputes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Transaction ID"
// @Param dispute body model.OpenDisputeRequest true "Dispute details"
// @Success 201 {object} model.Dispute
// @Failure 403 {object} model.ErrorResponse "Not a participant"
// @Failure 409 {object} model.ErrorResponse "Dispute already open or wrong status"
// @Router /transactions/{id}/disputes [post]
func (h *Handler) OpenDispute(c *gin.Context) {
	userID, ok := h.mustUser(c)
	if !ok {
		return
	}

	var req model.OpenDisputeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}
	if err := validation.Text(req.Reason, 1, 500); err != nil {
		h.handleError(c, err)
		return
	}
	if err := validation.Text(req.DisputeType, 1, validation.MaxDisputeTypeLen); err != nil {
		h.handleError(c, err)
		return
	}
	if err := validation.Text(req.Currency, 1, validation.MaxCurrencyLen); err != nil {
		h.handleError(c, err)
		return
	}
	amount, err := validation.PositiveAmount(req.Amount)
	if err != nil {
		h.handleError(c, err)
		return
	}

	d, err := h.disputes.OpenDispute(c.Request.Context(), model.OpenDisputeInput{
		TransactionID: c.Param("id"),
		UserID:        userID,
		DisputeType:   strings.TrimSpace(req.DisputeType),
		Reason:        req.Reason,
		Evidence:      req.Evidence,
		Amount:        amount,
		Currency:      strings.ToUpper(strings.TrimSpace(req.Currency)),
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, d)
}

// ListDisputes
// @Summary List disputes
// @Description Users get their own disputes; moderators and admins get the active queue by priority
// @Tags disputes
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.DisputeListResponse
// @Router /disputes [get]
func (h *Handler) ListDisputes(c *gin.Context) {
	var (
		disputes []*model.Dispute
		err      error
	)
	if userID, ok := callerUserID(c); ok {
		disputes, err = h.disputes.GetUserDisputes(c.Request.Context(), userID)
	} else {
		disputes, err = h.disputes.GetActiveDisputes(c.Request.Context())
	}
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.DisputeListResponse{Disputes: disputes, Total: len(disputes)})
}

// GetDispute
// @Summary Get a dispute
// @Tags disputes
// @Produce json
// @Security BearerAuth
// @Param id path string true "Dispute ID"
// @Success 200 {object} model.Dispute
// @Failure 403 {object} model.ErrorResponse "Not a participant"
// @Failure 404 {object} model.ErrorResponse "Dispute not found"
// @Router /disputes/{id} [get]
func (h *Handler) GetDispute(c *gin.Context) {
	d, ok := h.visibleDispute(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, d)
}

// GetDisputeMessages
// @Summary Get the dispute conversation
// @Tags disputes
// @Produce json
// @Security BearerAuth
// @Param id path string true "Dispute ID"
// @Success 200 {array} model.DisputeMessage
// @Failure 404 {object} model.ErrorResponse "Dispute not found"
// @Router /disputes/{id}/messages [get]
func (h *Handler) GetDisputeMessages(c *gin.Context) {
	d, ok := h.visibleDispute(c)
	if !ok {
		return
	}
	messages, err := h.disputes.GetMessages(c.Request.Context(), d.ID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, messages)
}

// AddDisputeMessage
// @Summary Post a message to a dispute
// @Tags disputes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Dispute ID"
// @Param message body model.AddMessageRequest true "Message"
// @Success 201 {object} model.DisputeMessage
// @Failure 403 {object} model.ErrorResponse "Not a participant or not assigned"
// @Router /disputes/{id}/messages [post]
func (h *Handler) AddDisputeMessage(c *gin.Context) {
	var req model.AddMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}
	if err := validation.Text(req.Content, 1, 2000); err != nil {
		h.handleError(c, err)
		return
	}
	if err := validation.Field("Username", req.Username, validation.MaxUsernameLen); err != nil {
		h.handleError(c, err)
		return
	}
	messageType, err := validation.MessageType(req.MessageType)
	if err != nil {
		h.handleError(c, err)
		return
	}

	p, _ := principalFrom(c)
	in := model.AddMessageInput{
		DisputeID:      c.Param("id"),
		SenderID:       p.Subject,
		SenderUsername: strings.TrimSpace(req.Username),
		SenderRole:     model.RoleModerator,
		MessageType:    messageType,
		Content:        req.Content,
		Attachments:    req.Attachments,
	}

	if userID, ok := p.UserID(); ok {
		d, err := h.disputes.GetDispute(c.Request.Context(), in.DisputeID)
		if err != nil {
			h.handleError(c, err)
			return
		}
		switch userID {
		case d.BuyerID:
			in.SenderRole = model.RoleBuyer
		case d.SellerID:
			in.SenderRole = model.RoleSeller
		default:
			h.handleError(c, model.ErrNotParticipant)
			return
		}
	}

	msg, err := h.disputes.AddMessage(c.Request.Context(), in)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, msg)
}

// RespondToDispute
// @Summary Counter-party response to the dispute reason
// @Tags disputes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Dispute ID"
// @Param response body model.DisputeResponseRequest true "Response"
// @Success 200 {object} model.Dispute
// @Failure 403 {object} model.ErrorResponse "Not the counter-party"
// @Router /disputes/{id}/response [post]
func (h *Handler) RespondToDispute(c *gin.Context) {
	userID, ok := h.mustUser(c)
	if !ok {
		return
	}
	var req model.DisputeResponseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}
	if err := validation.Text(req.Response, 1, 2000); err != nil {
		h.handleError(c, err)
		return
	}

	d, err := h.disputes.RespondToDispute(c.Request.Context(), c.Param("id"), userID, req.Response)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

// UpdateDisputeStatus
// @Summary Move a dispute between open, investigating and awaiting_response
// @Tags disputes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Dispute ID"
// @Param status body model.DisputeStatusRequest true "New status"
// @Success 200 {object} model.Dispute
// @Failure 400 {object} model.ErrorResponse "Invalid status"
// @Failure 403 {object} model.ErrorResponse "Not assigned"
// @Router /disputes/{id}/status [put]
func (h *Handler) UpdateDisputeStatus(c *gin.Context) {
	var req model.DisputeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}
	status, err := model.ParseDisputeStatus(req.Status)
	if err != nil {
		h.handleError(c, err)
		return
	}

	p, _ := principalFrom(c)
	d, err := h.disputes.UpdateStatus(c.Request.Context(), c.Param("id"), p.Subject, status)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

// ResolveDispute
// @Summary Resolve a dispute
// @Description Moderators resolve as themselves; admin tokens resolve as the system
// @Tags disputes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Dispute ID"
// @Param resolution body model.ResolveDisputeRequest true "Outcome"
// @Success 200 {object} model.Dispute
// @Failure 403 {object} model.ErrorResponse "Not assigned"
// @Failure 409 {object} model.ErrorResponse "Dispute not open"
// @Router /disputes/{id}/resolve [post]
func (h *Handler) ResolveDispute(c *gin.Context) {
	var req model.ResolveDisputeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}
	resolution, err := validation.DisputeResolution(req.ResolutionType)
	if err != nil {
		h.handleError(c, err)
		return
	}

	in := model.ResolveDisputeInput{
		DisputeID:      c.Param("id"),
		ResolutionType: resolution,
		Notes:          req.Notes,
		Decision:       req.Decision,
	}
	if p, _ := principalFrom(c); p.Role == auth.RoleModerator {
		in.ModeratorID = p.Subject
	}

	d, err := h.disputes.ResolveDispute(c.Request.Context(), in)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

// CloseDispute
// @Summary Close a resolved dispute
// @Tags disputes
// @Produce json
// @Security BearerAuth
// @Param id path string true "Dispute ID"
// @Success 200 {object} model.Dispute
// @Failure 409 {object} model.ErrorResponse "Dispute not resolved"
// @Router /disputes/{id}/close [post]
func (h *Handler) CloseDispute(c *gin.Context) {
	p, _ := principalFrom(c)
	d, err := h.disputes.CloseDispute(c.Request.Context(), c.Param("id"), p.Subject)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

// AssignModerator
// @Summary Retry moderator assignment for an unassigned dispute
// @Tags disputes
// @Produce json
// @Security BearerAuth
// @Param id path string true "Dispute ID"
// @Success 200 {object} model.Dispute
// @Failure 503 {object} model.ErrorResponse "No moderator available"
// @Router /disputes/{id}/assign [post]
func (h *Handler) AssignModerator(c *gin.Context) {
	d, err := h.disputes.AssignModerator(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

// visibleDispute loads the dispute and hides it from users who are not party to it
func (h *Handler) visibleDispute(c *gin.Context) (*model.Dispute, bool) {
	d, err := h.disputes.GetDispute(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return nil, false
	}
	if userID, ok := callerUserID(c); ok && userID != d.BuyerID && userID != d.SellerID {
		h.logger.Warn().
			Str("dispute_id", d.ID).
			Int64("user_id", userID).
			Str("reason", string(model.ReasonNotParticipant)).
			Msg("dispute access denied")
		h.handleError(c, model.ErrNotParticipant)
		return nil, false
	}
	return d, true
}
