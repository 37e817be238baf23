package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"soulfinder/models"
)

func submitContact(t *testing.T, e *env, biodataID int, email string) int {
	t.Helper()
	rec := e.do(t, http.MethodPost, "/contact-req", "", map[string]any{
		"biodataId":     biodataID,
		"email":         email,
		"fee":           500,
		"transactionId": "tx_123",
	})
	return rec.Code
}

func TestContactRequestDedup(t *testing.T) {
	e := newEnv(t)

	require.Equal(t, http.StatusCreated, submitContact(t, e, 7, "a@x.com"))
	assert.Equal(t, http.StatusBadRequest, submitContact(t, e, 7, "a@x.com"), "duplicate pair is rejected")
	assert.Len(t, e.contacts.requests, 1, "no second record created")

	// Different profile or different requester is fine.
	assert.Equal(t, http.StatusCreated, submitContact(t, e, 8, "a@x.com"))
	assert.Equal(t, http.StatusCreated, submitContact(t, e, 7, "b@x.com"))
}

func TestContactRequestValidation(t *testing.T) {
	e := newEnv(t)

	rec := e.do(t, http.MethodPost, "/contact-req", "", map[string]any{"email": "a@x.com"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = e.do(t, http.MethodPost, "/contact-req", "", map[string]any{"biodataId": 7, "email": "notanemail"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestContactRequestServerAssignsStatus(t *testing.T) {
	e := newEnv(t)
	require.Equal(t, http.StatusCreated, submitContact(t, e, 7, "a@x.com"))

	r := e.contacts.requests[0]
	assert.Equal(t, models.ContactStatusPending, r.Status)
	assert.NotEmpty(t, r.RequestedAt)
}

func TestListContactRequestsOwnership(t *testing.T) {
	e := newEnv(t)
	e.seedUser("admin@x.com", models.RoleAdmin)
	require.Equal(t, http.StatusCreated, submitContact(t, e, 7, "a@x.com"))

	rec := e.do(t, http.MethodGet, "/contact-req/a@x.com", e.token(t, "a@x.com"), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list []models.ContactRequest
	decode(t, rec, &list)
	assert.Len(t, list, 1)

	// Another user may not read them; an admin may.
	rec = e.do(t, http.MethodGet, "/contact-req/a@x.com", e.token(t, "b@x.com"), nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = e.do(t, http.MethodGet, "/contact-req/a@x.com", e.token(t, "admin@x.com"), nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDeleteContactRequest(t *testing.T) {
	e := newEnv(t)
	require.Equal(t, http.StatusCreated, submitContact(t, e, 7, "a@x.com"))

	rec := e.do(t, http.MethodDelete, "/contact-req/a@x.com?biodataId=7", e.token(t, "a@x.com"), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, e.contacts.requests)

	rec = e.do(t, http.MethodDelete, "/contact-req/a@x.com?biodataId=7", e.token(t, "a@x.com"), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = e.do(t, http.MethodDelete, "/contact-req/a@x.com", e.token(t, "a@x.com"), nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code, "biodataId query param required")
}
