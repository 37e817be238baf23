package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"soulfinder/auth"
	"soulfinder/handlers"
	"soulfinder/middleware"
)

// SetupRouter wires middlewares and the full route table. Three tiers:
// public, bearer-authenticated, and admin (auth gate then role gate).
func SetupRouter(h *handlers.Handler, verifier auth.Verifier, allowOrigins []string, log *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(log))

	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/", func(c *gin.Context) {
		c.String(200, "Portal server is running")
	})

	limiter := middleware.NewIPRateLimiter(120, time.Minute)
	public := router.Group("/", middleware.RateLimit(limiter))
	{
		public.GET("/all-bio", h.ListBiodata)
		public.GET("/similar-biodata/:type", h.SimilarBiodata)
		public.GET("/success-stories", h.ListStories)
		public.POST("/add-users", h.AddUser)
		public.POST("/favorite-bios/:email", h.AddFavorite)
		public.POST("/contact-req", h.CreateContactRequest)
		public.POST("/create-payment-intent", h.CreatePaymentIntent)
	}

	authed := router.Group("/", middleware.RequireAuth(verifier))
	{
		authed.GET("/my-bio/:email", h.MyBiodata)
		authed.PATCH("/edit-bio-data", h.EditBiodata)
		authed.GET("/get-bio/:id", h.GetBiodata)
		authed.DELETE("/favorite-bios/:id", h.RemoveFavorite)
		authed.GET("/contact-req/:email", h.ListContactRequests)
		authed.DELETE("/contact-req/:email", h.DeleteContactRequest)
		authed.POST("/premium-request/:email", h.CreatePremiumRequest)
		authed.POST("/success-story", h.CreateStory)
	}

	admin := router.Group("/", middleware.RequireAuth(verifier), middleware.RequireAdmin(h.Users))
	{
		admin.GET("/all-users", h.ListUsers)
		admin.GET("/premium-request", h.ListPremiumRequests)
		admin.PATCH("/premium-role-update/:email", h.ApprovePremium)
		admin.PATCH("/update-role/:email", h.UpdateRole)
		admin.GET("/all-info", h.AllInfo)
	}

	return router
}
