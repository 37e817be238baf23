package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"soulfinder/models"
)

// CreateStory serves POST /success-story for the authenticated couple.
func (h *Handler) CreateStory(c *gin.Context) {
	var body struct {
		SelfBiodataID    int    `json:"selfBiodataId" binding:"required"`
		PartnerBiodataID int    `json:"partnerBiodataId" binding:"required"`
		ImageURL         string `json:"imageURL"`
		Story            string `json:"story" binding:"required"`
		MarriageDate     string `json:"marriageDate" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		fail(c, http.StatusBadRequest, "selfBiodataId, partnerBiodataId, story and marriageDate are required")
		return
	}

	story := models.SuccessStory{
		Email:            callerEmail(c),
		SelfBiodataID:    body.SelfBiodataID,
		PartnerBiodataID: body.PartnerBiodataID,
		ImageURL:         body.ImageURL,
		Story:            body.Story,
		MarriageDate:     body.MarriageDate,
		CreatedAt:        h.timestamp(),
	}

	if err := h.Stories.Create(c.Request.Context(), story); err != nil {
		h.storeFail(c, err, "", "Success story already submitted")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Success story submitted"})
}

// ListStories serves GET /success-stories, newest marriage first.
func (h *Handler) ListStories(c *gin.Context) {
	stories, err := h.Stories.List(c.Request.Context())
	if err != nil {
		h.storeFail(c, err, "", "")
		return
	}
	c.JSON(http.StatusOK, stories)
}
