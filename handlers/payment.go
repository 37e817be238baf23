package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"soulfinder/payments"
)

// CreatePaymentIntent serves POST /create-payment-intent, delegating to the
// payment provider and returning the client secret.
func (h *Handler) CreatePaymentIntent(c *gin.Context) {
	var body struct {
		Fee int64 `json:"fee"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		fail(c, http.StatusBadRequest, "fee is required")
		return
	}
	if body.Fee <= 0 {
		fail(c, http.StatusBadRequest, "fee must be positive")
		return
	}

	clientSecret, err := h.Payments.CreateIntent(c.Request.Context(), body.Fee)
	if err != nil {
		if errors.Is(err, payments.ErrInvalidAmount) {
			fail(c, http.StatusBadRequest, "fee must be positive")
			return
		}
		h.Log.Error("payment intent creation failed", zap.Error(err))
		fail(c, http.StatusInternalServerError, "Payment provider unavailable")
		return
	}

	c.JSON(http.StatusOK, gin.H{"clientSecret": clientSecret})
}
