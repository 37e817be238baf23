package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"soulfinder/models"
	"soulfinder/store"
)

const similarLimit = 3

// ListBiodata serves GET /all-bio: conjunctive filter plus skip/limit
// pagination. totalCount is the count of everything matching the filter,
// not just the returned page.
func (h *Handler) ListBiodata(c *gin.Context) {
	filter := store.BiodataFilter{
		Type:     c.Query("type"),
		Division: c.Query("division"),
	}

	if v := c.Query("minAge"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			fail(c, http.StatusBadRequest, "minAge must be a number")
			return
		}
		filter.MinAge = &n
	}
	if v := c.Query("maxAge"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			fail(c, http.StatusBadRequest, "maxAge must be a number")
			return
		}
		filter.MaxAge = &n
	}

	limit, err := strconv.ParseInt(c.DefaultQuery("limit", "20"), 10, 64)
	if err != nil || limit <= 0 {
		fail(c, http.StatusBadRequest, "limit must be a positive number")
		return
	}
	page, err := strconv.ParseInt(c.DefaultQuery("page", "1"), 10, 64)
	if err != nil || page <= 0 {
		fail(c, http.StatusBadRequest, "page must be a positive number")
		return
	}

	ctx := c.Request.Context()

	totalCount, err := h.Biodata.Count(ctx, filter)
	if err != nil {
		h.storeFail(c, err, "", "")
		return
	}

	data, err := h.Biodata.List(ctx, filter, (page-1)*limit, limit)
	if err != nil {
		h.storeFail(c, err, "", "")
		return
	}

	totalPages := (totalCount + limit - 1) / limit

	c.JSON(http.StatusOK, gin.H{
		"data":        data,
		"totalCount":  totalCount,
		"totalPages":  totalPages,
		"currentPage": page,
	})
}

// MyBiodata serves GET /my-bio/:email for the profile owner.
func (h *Handler) MyBiodata(c *gin.Context) {
	email := c.Param("email")
	if email != callerEmail(c) {
		fail(c, http.StatusForbidden, "Forbidden Access")
		return
	}

	biodata, err := h.Biodata.GetByEmail(c.Request.Context(), email)
	if err != nil {
		h.storeFail(c, err, "Biodata not found", "")
		return
	}
	c.JSON(http.StatusOK, biodata)
}

// EditBiodata serves PATCH /edit-bio-data. First submission creates the
// profile and claims the next sequential biodataId; later submissions
// update in place. A biodataId in the payload is discarded either way.
func (h *Handler) EditBiodata(c *gin.Context) {
	var body models.Biodata
	if err := c.ShouldBindJSON(&body); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}
	if body.Name == "" {
		fail(c, http.StatusBadRequest, "name is required")
		return
	}
	if body.Age <= 0 {
		fail(c, http.StatusBadRequest, "age must be positive")
		return
	}

	email := callerEmail(c)
	ctx := c.Request.Context()

	existing, err := h.Biodata.GetByEmail(ctx, email)
	if err == nil {
		if err := h.Biodata.UpdateByEmail(ctx, email, body); err != nil {
			h.storeFail(c, err, "Biodata not found", "")
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"message":   "Biodata updated",
			"biodataId": existing.BiodataID,
		})
		return
	}
	if !errors.Is(err, store.ErrNotFound) {
		h.storeFail(c, err, "", "")
		return
	}

	nextID, err := h.Biodata.NextBiodataID(ctx)
	if err != nil {
		h.storeFail(c, err, "", "")
		return
	}

	body.Email = email
	body.BiodataID = nextID
	if body.BiodataType == "" {
		body.BiodataType = models.RoleNormal
	}

	if err := h.Biodata.Insert(ctx, body); err != nil {
		h.storeFail(c, err, "", "")
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":   "Biodata created",
		"biodataId": nextID,
	})
}

// GetBiodata serves GET /get-bio/:id: one profile by record id plus whether
// the caller has favorited it.
func (h *Handler) GetBiodata(c *gin.Context) {
	ctx := c.Request.Context()

	biodata, err := h.Biodata.GetByID(ctx, c.Param("id"))
	if err != nil {
		h.storeFail(c, err, "Biodata not found", "")
		return
	}

	isFav, err := h.Favorites.IsFavorite(ctx, biodata.BiodataID, callerEmail(c))
	if err != nil {
		h.storeFail(c, err, "", "")
		return
	}
	biodata.IsFavorite = isFav

	c.JSON(http.StatusOK, biodata)
}

// SimilarBiodata serves GET /similar-biodata/:type: up to three profiles of
// the same category, excluding the one named by excludeId.
func (h *Handler) SimilarBiodata(c *gin.Context) {
	excludeID := 0
	if v := c.Query("excludeId"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			fail(c, http.StatusBadRequest, "excludeId must be a number")
			return
		}
		excludeID = n
	}

	results, err := h.Biodata.Similar(c.Request.Context(), c.Param("type"), excludeID, similarLimit)
	if err != nil {
		h.storeFail(c, err, "", "")
		return
	}
	c.JSON(http.StatusOK, results)
}
