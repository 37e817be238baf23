package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"soulfinder/models"
)

// AddUser serves POST /add-users: create the account on first login, touch
// last_loggedIn on every later one.
func (h *Handler) AddUser(c *gin.Context) {
	var body struct {
		Email    string `json:"email" binding:"required,email"`
		Name     string `json:"name"`
		PhotoURL string `json:"photoURL"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		fail(c, http.StatusBadRequest, "a valid email is required")
		return
	}

	now := h.timestamp()
	user := models.User{
		Email:        body.Email,
		Name:         body.Name,
		PhotoURL:     body.PhotoURL,
		Role:         models.RoleNormal,
		CreatedAt:    now,
		LastLoggedIn: now,
	}

	created, err := h.Users.CreateOrTouch(c.Request.Context(), user)
	if err != nil {
		h.storeFail(c, err, "", "")
		return
	}

	if created {
		c.JSON(http.StatusCreated, gin.H{"message": "User created"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Login recorded"})
}

// ListUsers serves GET /all-users with an optional name/email substring
// search. Admin only.
func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.Users.List(c.Request.Context(), c.Query("search"))
	if err != nil {
		h.storeFail(c, err, "", "")
		return
	}
	c.JSON(http.StatusOK, users)
}

// UpdateRole serves PATCH /update-role/:email. Restricted to admins; the
// source left it open to any authenticated caller, which is documented as a
// deliberate deviation.
func (h *Handler) UpdateRole(c *gin.Context) {
	var body struct {
		Role string `json:"role" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		fail(c, http.StatusBadRequest, "role is required")
		return
	}
	if !models.ValidRole(body.Role) {
		fail(c, http.StatusBadRequest, "role must be one of normal, premium, admin")
		return
	}

	email := c.Param("email")
	if err := h.Users.SetRole(c.Request.Context(), email, body.Role); err != nil {
		h.storeFail(c, err, "User not found", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Role updated", "role": body.Role})
}
