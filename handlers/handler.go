// Package handlers holds the HTTP handlers. Every dependency comes in
// through the Handler struct; the store interfaces below are what the Mongo
// repositories satisfy and what the tests fake in memory.
package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"soulfinder/middleware"
	"soulfinder/models"
	"soulfinder/payments"
	"soulfinder/store"
)

type BiodataStore interface {
	List(ctx context.Context, f store.BiodataFilter, skip, limit int64) ([]models.Biodata, error)
	Count(ctx context.Context, f store.BiodataFilter) (int64, error)
	GetByID(ctx context.Context, id string) (models.Biodata, error)
	GetByEmail(ctx context.Context, email string) (models.Biodata, error)
	Similar(ctx context.Context, biodataType string, excludeBiodataID int, limit int64) ([]models.Biodata, error)
	NextBiodataID(ctx context.Context) (int, error)
	Insert(ctx context.Context, b models.Biodata) error
	UpdateByEmail(ctx context.Context, email string, b models.Biodata) error
	SetTypeByEmail(ctx context.Context, email, biodataType string) error
	TotalCount(ctx context.Context) (int64, error)
	CountByType(ctx context.Context) (map[string]int64, error)
}

type UserStore interface {
	CreateOrTouch(ctx context.Context, u models.User) (created bool, err error)
	List(ctx context.Context, search string) ([]models.User, error)
	GetByEmail(ctx context.Context, email string) (models.User, error)
	SetRole(ctx context.Context, email, role string) error
	CountByRole(ctx context.Context, role string) (int64, error)
}

type FavoriteStore interface {
	Add(ctx context.Context, biodataID int, email string) error
	Remove(ctx context.Context, biodataID int, email string) error
	Get(ctx context.Context, biodataID int) (models.Favorite, error)
	IsFavorite(ctx context.Context, biodataID int, email string) (bool, error)
}

type ContactStore interface {
	Create(ctx context.Context, cr models.ContactRequest) error
	ListByEmail(ctx context.Context, email string) ([]models.ContactRequest, error)
	Delete(ctx context.Context, biodataID int, email string) error
	SumFees(ctx context.Context) (int64, error)
}

type PremiumStore interface {
	Create(ctx context.Context, pr models.PremiumRequest) error
	List(ctx context.Context) ([]models.PremiumRequest, error)
	GetByEmail(ctx context.Context, email string) (models.PremiumRequest, error)
	DeleteByEmail(ctx context.Context, email string) error
}

type StoryStore interface {
	Create(ctx context.Context, s models.SuccessStory) error
	List(ctx context.Context) ([]models.SuccessStory, error)
}

type Handler struct {
	Biodata   BiodataStore
	Users     UserStore
	Favorites FavoriteStore
	Contacts  ContactStore
	Premium   PremiumStore
	Stories   StoryStore
	Payments  payments.IntentCreator
	Log       *zap.Logger

	now func() time.Time
}

type Deps struct {
	Biodata   BiodataStore
	Users     UserStore
	Favorites FavoriteStore
	Contacts  ContactStore
	Premium   PremiumStore
	Stories   StoryStore
	Payments  payments.IntentCreator
	Log       *zap.Logger
}

func New(d Deps) *Handler {
	log := d.Log
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{
		Biodata:   d.Biodata,
		Users:     d.Users,
		Favorites: d.Favorites,
		Contacts:  d.Contacts,
		Premium:   d.Premium,
		Stories:   d.Stories,
		Payments:  d.Payments,
		Log:       log,
		now:       time.Now,
	}
}

func (h *Handler) timestamp() string {
	return h.now().UTC().Format(time.RFC3339)
}

// callerEmail is the identity the auth gate attached.
func callerEmail(c *gin.Context) string {
	return c.GetString(middleware.ContextEmail)
}

// canActFor allows a caller to touch records keyed by email when the token
// belongs to that email or the caller is an admin.
func (h *Handler) canActFor(c *gin.Context, email string) bool {
	caller := callerEmail(c)
	if caller == email {
		return true
	}
	user, err := h.Users.GetByEmail(c.Request.Context(), caller)
	return err == nil && user.Role == models.RoleAdmin
}

func fail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}

// storeFail maps store sentinels onto the response taxonomy; anything else
// is an upstream failure.
func (h *Handler) storeFail(c *gin.Context, err error, notFound, duplicate string) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		fail(c, http.StatusNotFound, notFound)
	case errors.Is(err, store.ErrDuplicate):
		fail(c, http.StatusConflict, duplicate)
	default:
		h.Log.Error("store operation failed", zap.Error(err), zap.String("path", c.FullPath()))
		fail(c, http.StatusInternalServerError, "Something went wrong")
	}
}
