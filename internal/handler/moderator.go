package handler

import (
	"net/http"

	"escrow-service/internal/auth"
	"escrow-service/internal/model"

	"github.com/gin-gonic/gin"
)

// RegisterModerator
// @Summary Register a moderator
// @Tags moderators
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param moderator body model.ModeratorRequest true "Moderator"
// @Success 201 {object} model.Moderator
// @Failure 409 {object} model.ErrorResponse "Duplicate moderator"
// @Router /moderators [post]
func (h *Handler) RegisterModerator(c *gin.Context) {
	var req model.ModeratorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	m, err := h.disputes.RegisterModerator(c.Request.Context(), model.RegisterModeratorInput{
		ID:             req.ID,
		Username:       req.Username,
		FullName:       req.FullName,
		RoleLevel:      model.ModeratorLevel(req.RoleLevel),
		Specialization: req.Specialization,
		Languages:      req.Languages,
		MaxCaseLoad:    req.MaxCaseLoad,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, m)
}

// SetModeratorAvailability
// @Summary Toggle whether a moderator takes new cases
// @Tags moderators
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Moderator ID"
// @Param availability body model.AvailabilityRequest true "Availability"
// @Success 200 {object} model.StatusResponse
// @Failure 404 {object} model.ErrorResponse "Moderator not found"
// @Router /moderators/{id}/availability [put]
func (h *Handler) SetModeratorAvailability(c *gin.Context) {
	if !h.selfOrAdmin(c) {
		return
	}
	var req model.AvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	if err := h.disputes.SetModeratorAvailability(c.Request.Context(), c.Param("id"), req.Available); err != nil {
		h.handleError(c, err)
		return
	}

	status := "unavailable"
	if req.Available {
		status = "available"
	}
	c.JSON(http.StatusOK, model.StatusResponse{Status: status})
}

// GetModeratorStats
// @Summary Moderator performance
// @Tags moderators
// @Produce json
// @Security BearerAuth
// @Param id path string true "Moderator ID"
// @Success 200 {object} model.ModeratorStats
// @Failure 403 {object} model.ErrorResponse "Another moderator's record"
// @Failure 404 {object} model.ErrorResponse "Moderator not found"
// @Router /moderators/{id}/stats [get]
func (h *Handler) GetModeratorStats(c *gin.Context) {
	if !h.selfOrAdmin(c) {
		return
	}
	stats, err := h.disputes.GetModeratorStats(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GetModeratorDisputes
// @Summary Disputes assigned to a moderator
// @Tags moderators
// @Produce json
// @Security BearerAuth
// @Param id path string true "Moderator ID"
// @Success 200 {object} model.DisputeListResponse
// @Router /moderators/{id}/disputes [get]
func (h *Handler) GetModeratorDisputes(c *gin.Context) {
	if !h.selfOrAdmin(c) {
		return
	}
	disputes, err := h.disputes.GetModeratorDisputes(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.DisputeListResponse{Disputes: disputes, Total: len(disputes)})
}

// selfOrAdmin lets a moderator act on their own record only
func (h *Handler) selfOrAdmin(c *gin.Context) bool {
	p, _ := principalFrom(c)
	if p.Role == auth.RoleAdmin || (p.Role == auth.RoleModerator && p.Subject == c.Param("id")) {
		return true
	}
	c.AbortWithStatusJSON(http.StatusForbidden, model.ErrorResponse{
		Error: "moderators can only manage their own record",
		Code:  "FORBIDDEN",
	})
	return false
}
