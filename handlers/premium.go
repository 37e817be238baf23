package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"soulfinder/models"
)

// CreatePremiumRequest serves POST /premium-request/:email. Self-service
// only; requires an existing biodata and rejects a second outstanding
// request for the same email.
func (h *Handler) CreatePremiumRequest(c *gin.Context) {
	email := c.Param("email")
	if email != callerEmail(c) {
		fail(c, http.StatusForbidden, "Forbidden Access")
		return
	}

	ctx := c.Request.Context()

	biodata, err := h.Biodata.GetByEmail(ctx, email)
	if err != nil {
		h.storeFail(c, err, "Biodata not found", "")
		return
	}

	pr := models.PremiumRequest{
		Email:       email,
		Name:        biodata.Name,
		BiodataID:   biodata.BiodataID,
		RequestedAt: h.timestamp(),
	}
	if err := h.Premium.Create(ctx, pr); err != nil {
		h.storeFail(c, err, "", "Premium request already pending")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Premium request submitted"})
}

// ListPremiumRequests serves GET /premium-request. Admin only.
func (h *Handler) ListPremiumRequests(c *gin.Context) {
	requests, err := h.Premium.List(c.Request.Context())
	if err != nil {
		h.storeFail(c, err, "", "")
		return
	}
	c.JSON(http.StatusOK, requests)
}

// ApprovePremium serves PATCH /premium-role-update/:email. The biodata and
// account are promoted before the pending request is deleted, so a failure
// partway leaves a retryable pending request rather than a lost one.
func (h *Handler) ApprovePremium(c *gin.Context) {
	email := c.Param("email")
	ctx := c.Request.Context()

	if _, err := h.Premium.GetByEmail(ctx, email); err != nil {
		h.storeFail(c, err, "No pending premium request", "")
		return
	}

	if err := h.Biodata.SetTypeByEmail(ctx, email, models.RolePremium); err != nil {
		h.storeFail(c, err, "Biodata not found", "")
		return
	}
	if err := h.Users.SetRole(ctx, email, models.RolePremium); err != nil {
		h.storeFail(c, err, "User not found", "")
		return
	}

	if err := h.Premium.DeleteByEmail(ctx, email); err != nil {
		// The promotion already happened; the stale request only means a
		// retried approval will no-op on the category.
		h.Log.Error("premium request cleanup failed", zap.String("email", email), zap.Error(err))
		fail(c, http.StatusInternalServerError, "Something went wrong")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Premium approved", "email": email})
}
