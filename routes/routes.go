package routes

import (
	"time"

	"ongkit/handlers"
	"ongkit/middleware"
	"ongkit/models"
	"ongkit/services/minisite"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers account endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	auth := r.Group("/auth")
	{
		auth.POST("/register", hb.RegisterHandler)
		auth.POST("/login", hb.LoginHandler)
	}

	protected := r.Group("/api/auth")
	{
		protected.Use(middleware.AuthMiddleware(hb.UserRepo))
		protected.POST("/revoke", hb.RevokeTokenHandler)
	}
}

// RegisterOrganizationRoutes registers organization creation.
func RegisterOrganizationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/organizations")
	{
		api.Use(middleware.AuthMiddleware(hb.UserRepo))
		api.POST("", hb.CreateOrganizationHandler)
	}
}

// RegisterMiniSiteRoutes registers the dashboard configuration endpoints.
func RegisterMiniSiteRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/minisite")
	{
		api.Use(middleware.AuthMiddleware(hb.UserRepo), middleware.RequireOrg())
		api.GET("/config", hb.GetConfigHandler)
		api.PUT("/config", hb.UpdateConfigHandler)

		// One scoped save endpoint per editor surface.
		api.PUT("/identity", hb.UpdateEditorHandler(minisite.EditorIdentity))
		api.PUT("/content", hb.UpdateEditorHandler(minisite.EditorContent))
		api.PUT("/campaigns", hb.UpdateEditorHandler(minisite.EditorCampaigns))
		api.PUT("/components", hb.UpdateEditorHandler(minisite.EditorComponents))
	}
}

// RegisterSubscriptionRoutes registers plan management endpoints.
func RegisterSubscriptionRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/subscription")
	{
		api.Use(middleware.AuthMiddleware(hb.UserRepo), middleware.RequireOrg())
		api.GET("", hb.GetSubscriptionHandler)
		api.PUT("", hb.UpdateSubscriptionHandler)
		api.POST("/checkout", hb.CheckoutHandler)
	}
}

// RegisterAIRoutes registers the AI copywriting endpoint.
func RegisterAIRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/ai-tools")
	{
		api.Use(middleware.AuthMiddleware(hb.UserRepo), middleware.RequireOrg())
		api.POST("", hb.AIToolHandler)
	}
}

// RegisterStorageRoutes registers media upload endpoints.
func RegisterStorageRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/storage")
	{
		api.Use(middleware.AuthMiddleware(hb.UserRepo), middleware.RequireOrg())
		api.POST("/upload", hb.UploadHandler)
	}
}

// RegisterPublicRoutes registers the server-rendered mini-site and the
// public donation endpoint. These carry no authentication.
func RegisterPublicRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/s/:slug", hb.PublicSiteHandler)
	r.POST("/p/:slug/donate", hb.CreateDonationHandler)
	r.POST("/p/:slug/volunteer", hb.SubmitLeadHandler(models.LeadVolunteer))
	r.POST("/p/:slug/newsletter", hb.SubmitLeadHandler(models.LeadNewsletter))
}

// RegisterLeadRoutes registers the dashboard lead export endpoint.
func RegisterLeadRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/leads")
	{
		api.Use(middleware.AuthMiddleware(hb.UserRepo), middleware.RequireOrg())
		api.GET("", hb.ListLeadsHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", handlers.HealthHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterAuthRoutes(r, hb)
	RegisterOrganizationRoutes(r, hb)
	RegisterMiniSiteRoutes(r, hb)
	RegisterSubscriptionRoutes(r, hb)
	RegisterAIRoutes(r, hb)
	RegisterStorageRoutes(r, hb)
	RegisterLeadRoutes(r, hb)
	RegisterPublicRoutes(r, hb)
	RegisterHealthRoute(r)
}
