package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"soulfinder/models"
)

// AllInfo serves GET /all-info: aggregate counters for the admin dashboard.
// Read-only; revenue over an empty contact collection is zero.
func (h *Handler) AllInfo(c *gin.Context) {
	ctx := c.Request.Context()

	totalBiodata, err := h.Biodata.TotalCount(ctx)
	if err != nil {
		h.storeFail(c, err, "", "")
		return
	}

	byType, err := h.Biodata.CountByType(ctx)
	if err != nil {
		h.storeFail(c, err, "", "")
		return
	}

	premiumUsers, err := h.Users.CountByRole(ctx, models.RolePremium)
	if err != nil {
		h.storeFail(c, err, "", "")
		return
	}

	totalRevenue, err := h.Contacts.SumFees(ctx)
	if err != nil {
		h.storeFail(c, err, "", "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"totalBiodata":  totalBiodata,
		"biodataByType": byType,
		"premiumUsers":  premiumUsers,
		"totalRevenue":  totalRevenue,
	})
}
