package handler

import (
	"net/http"
	"strconv"

	"escrow-service/internal/model"
	"escrow-service/internal/validation"

	"github.com/gin-gonic/gin"
)

// GetTrustStats
// @Summary Trust profile of a user
// @Tags trust
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} model.ProfileSnapshot
// @Failure 404 {object} model.ErrorResponse "No profile"
// @Router /users/{id}/trust [get]
func (h *Handler) GetTrustStats(c *gin.Context) {
	snapshot, err := h.trust.GetTrustStats(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// RecalculateTrust
// @Summary Recompute a trust score and award earned badges
// @Tags trust
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} model.UserProfile
// @Failure 404 {object} model.ErrorResponse "No profile"
// @Router /users/{id}/trust/recalculate [post]
func (h *Handler) RecalculateTrust(c *gin.Context) {
	profile, err := h.trust.RecalculateTrust(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// RecordFeedback
// @Summary Rate the counter-party of a trade
// @Tags trust
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param feedback body model.FeedbackRequest true "Feedback"
// @Success 201 {object} model.StatusResponse
// @Failure 400 {object} model.ErrorResponse "Invalid rating"
// @Failure 409 {object} model.ErrorResponse "Duplicate feedback"
// @Router /feedback [post]
func (h *Handler) RecordFeedback(c *gin.Context) {
	giverID, ok := h.mustUser(c)
	if !ok {
		return
	}
	var req model.FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}
	if err := validation.Rating(req.Rating); err != nil {
		h.handleError(c, err)
		return
	}
	for _, sub := range []*int{req.Communication, req.Delivery, req.Quality} {
		if sub == nil {
			continue
		}
		if err := validation.Rating(*sub); err != nil {
			h.handleError(c, err)
			return
		}
	}

	err := h.trust.RecordFeedback(c.Request.Context(), model.RecordFeedbackInput{
		TradeID:       req.TradeID,
		GiverID:       strconv.FormatInt(giverID, 10),
		ReceiverID:    req.ReceiverID,
		Rating:        req.Rating,
		Comment:       req.Comment,
		Communication: req.Communication,
		Delivery:      req.Delivery,
		Quality:       req.Quality,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, model.StatusResponse{
		Status:  string(model.ClassifyRating(req.Rating)),
		Message: "Feedback recorded",
	})
}

// SetVerification
// @Summary Set verification flags
// @Tags trust
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param verification body model.VerificationRequest true "Flags to change"
// @Success 200 {object} model.UserProfile
// @Router /users/{id}/verification [put]
func (h *Handler) SetVerification(c *gin.Context) {
	var req model.VerificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}
	profile, err := h.trust.SetVerification(c.Request.Context(), c.Param("id"), model.VerificationUpdate{
		Phone: req.Phone,
		Email: req.Email,
		ID:    req.ID,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// RecordResponseTime
// @Summary Add a response time sample in hours
// @Tags trust
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param sample body model.ResponseTimeRequest true "Sample"
// @Success 200 {object} model.UserProfile
// @Router /users/{id}/response-times [post]
func (h *Handler) RecordResponseTime(c *gin.Context) {
	var req model.ResponseTimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}
	profile, err := h.trust.RecordResponseTime(c.Request.Context(), c.Param("id"), req.Hours)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}
