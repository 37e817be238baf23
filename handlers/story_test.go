package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"soulfinder/models"
)

func TestCreateAndListSuccessStories(t *testing.T) {
	e := newEnv(t)

	rec := e.do(t, http.MethodPost, "/success-story", e.token(t, "a@x.com"), map[string]any{
		"selfBiodataId":    1,
		"partnerBiodataId": 2,
		"story":            "We met here.",
		"marriageDate":     "2026-01-15",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	// Same submitter again conflicts.
	rec = e.do(t, http.MethodPost, "/success-story", e.token(t, "a@x.com"), map[string]any{
		"selfBiodataId":    1,
		"partnerBiodataId": 2,
		"story":            "Again.",
		"marriageDate":     "2026-01-15",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = e.do(t, http.MethodGet, "/success-stories", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var stories []models.SuccessStory
	decode(t, rec, &stories)
	require.Len(t, stories, 1)
	assert.Equal(t, "a@x.com", stories[0].Email, "submitter taken from the token")
}

func TestCreateSuccessStoryValidation(t *testing.T) {
	e := newEnv(t)

	rec := e.do(t, http.MethodPost, "/success-story", e.token(t, "a@x.com"), map[string]any{
		"selfBiodataId": 1,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
