package routes

import (
	"estateconnect/handlers"
	"estateconnect/middleware"
	"estateconnect/utils"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterDirectoryRoutes registers the seed user directory endpoints.
func RegisterDirectoryRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/users", hb.Directory.ListHandler)
	r.POST("/users", hb.Directory.AddHandler)
}

// RegisterCatalogRoutes registers the public listing browse endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/listings")
	{
		api.GET("", hb.Catalog.SearchListingsHandler)
		api.GET("/:id", hb.Catalog.GetListingHandler)
	}
}

// RegisterAuthRoutes registers account endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", handlers.RegisterUserHandler)
		api.POST("/login", handlers.AuthenticateUserHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.POST("/logout", handlers.SignOutHandler)
	}
}

// RegisterProfileRoutes registers the authenticated profile endpoints.
func RegisterProfileRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/profile")
	{
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.GET("", handlers.GetProfileHandler)
		api.PUT("", handlers.UpdateProfileHandler)
	}
}

// RegisterWizardRoutes sets up the endpoints for the submission wizard.
func RegisterWizardRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	wizardGroup := r.Group("/api/wizard")
	{
		wizardGroup.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		wizardGroup.POST("", hb.Wizard.StartHandler)
		wizardGroup.GET("/:sessionID", hb.Wizard.GetHandler)
		wizardGroup.POST("/:sessionID/next", hb.Wizard.NextHandler)
		wizardGroup.POST("/:sessionID/previous", hb.Wizard.PreviousHandler)
		wizardGroup.PUT("/:sessionID", hb.Wizard.UpdateHandler)
		wizardGroup.POST("/:sessionID/draft", hb.Wizard.SaveDraftHandler)
		wizardGroup.GET("/:sessionID/fee", hb.Wizard.FeePreviewHandler)
		wizardGroup.POST("/:sessionID/publish", hb.Wizard.PublishHandler)
	}
}

// RegisterFeedRoutes registers home-page content endpoints.
func RegisterFeedRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/feed")
	{
		api.GET("/testimonial", hb.Feed.TestimonialHandler)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		adminGroup.Use(middleware.AdminOnlyMiddleware())
		adminGroup.GET("/users", hb.Admin.GetAllUsersHandler)
		adminGroup.GET("/stats", hb.Admin.GetStatsHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":   "ok",
			"message":  "Hi, I'm EstateConnect",
			"services": utils.GetHealthStatus(),
		})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterDirectoryRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterAuthRoutes(r, hb)
	RegisterProfileRoutes(r, hb)
	RegisterWizardRoutes(r, hb)
	RegisterFeedRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
