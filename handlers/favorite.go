package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// AddFavorite serves POST /favorite-bios/:email: set-insert the requester
// into the favorite record for the submitted biodata, creating the record
// when absent. A requester already present is a conflict.
func (h *Handler) AddFavorite(c *gin.Context) {
	email := c.Param("email")

	var body struct {
		BiodataID int `json:"biodataId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		fail(c, http.StatusBadRequest, "biodataId is required")
		return
	}

	if err := h.Favorites.Add(c.Request.Context(), body.BiodataID, email); err != nil {
		h.storeFail(c, err, "", "Already added to favorites.")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Added to favorites"})
}

// RemoveFavorite serves DELETE /favorite-bios/:id: pull the caller out of
// the requester set of biodata :id. The store drops the record when the set
// empties; a caller who never favorited it gets a 404.
func (h *Handler) RemoveFavorite(c *gin.Context) {
	biodataID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		fail(c, http.StatusBadRequest, "id must be a number")
		return
	}

	if err := h.Favorites.Remove(c.Request.Context(), biodataID, callerEmail(c)); err != nil {
		h.storeFail(c, err, "Favorite not found", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Removed from favorites"})
}
