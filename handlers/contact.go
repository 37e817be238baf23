package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"soulfinder/models"
	"soulfinder/store"
)

// CreateContactRequest serves POST /contact-req. At most one request may
// exist per (biodataId, email) pair; a duplicate is rejected as bad input
// with the original's "already requested" message.
func (h *Handler) CreateContactRequest(c *gin.Context) {
	var body struct {
		BiodataID     int    `json:"biodataId" binding:"required"`
		Email         string `json:"email" binding:"required,email"`
		Name          string `json:"name"`
		Fee           int64  `json:"fee"`
		TransactionID string `json:"transactionId"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		fail(c, http.StatusBadRequest, "biodataId and a valid email are required")
		return
	}

	cr := models.ContactRequest{
		BiodataID:     body.BiodataID,
		Email:         body.Email,
		Name:          body.Name,
		Fee:           body.Fee,
		TransactionID: body.TransactionID,
		Status:        models.ContactStatusPending,
		RequestedAt:   h.timestamp(),
	}

	if err := h.Contacts.Create(c.Request.Context(), cr); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			fail(c, http.StatusBadRequest, "already requested")
			return
		}
		h.storeFail(c, err, "", "")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Contact request submitted"})
}

// ListContactRequests serves GET /contact-req/:email for the requester
// themselves or an admin.
func (h *Handler) ListContactRequests(c *gin.Context) {
	email := c.Param("email")
	if !h.canActFor(c, email) {
		fail(c, http.StatusForbidden, "Forbidden Access")
		return
	}

	requests, err := h.Contacts.ListByEmail(c.Request.Context(), email)
	if err != nil {
		h.storeFail(c, err, "", "")
		return
	}
	c.JSON(http.StatusOK, requests)
}

// DeleteContactRequest serves DELETE /contact-req/:email, removing the one
// request identified by the email plus a biodataId query param.
func (h *Handler) DeleteContactRequest(c *gin.Context) {
	email := c.Param("email")
	if !h.canActFor(c, email) {
		fail(c, http.StatusForbidden, "Forbidden Access")
		return
	}

	biodataID, err := strconv.Atoi(c.Query("biodataId"))
	if err != nil {
		fail(c, http.StatusBadRequest, "biodataId query param must be a number")
		return
	}

	if err := h.Contacts.Delete(c.Request.Context(), biodataID, email); err != nil {
		h.storeFail(c, err, "Contact request not found", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Contact request removed"})
}
