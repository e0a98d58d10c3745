package api

import (
	"log"
	stdhttp "net/http"

	"github.com/gin-gonic/gin"

	intconfig "fleetops/internal/config"
	h "fleetops/internal/http/handlers"
	"fleetops/internal/http/middleware"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	h.SetJWTSecret(env.JWTSecret)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(env.CORSOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)
		api.GET("/routes", h.Routes)

		// Auth
		auth := api.Group("/auth")
		auth.POST("/login", h.Login)
		auth.POST("/register", h.Register)

		secured := api.Group("")
		secured.Use(middleware.RequireAuth(env.JWTSecret))

		// Transaction drafts (form sessions)
		drafts := secured.Group("/drafts")
		drafts.POST("", h.CreateDraft)
		drafts.GET("/:id", h.GetDraft)
		drafts.PUT("/:id/fields", h.ApplyDraftField)
		drafts.PUT("/:id/mode", h.SwitchDraftMode)
		drafts.POST("/:id/submit", h.SubmitDraft)
		drafts.POST("/:id/restore", h.RestoreDraft)
		drafts.DELETE("/:id", h.DiscardDraft)

		// Saved transactions
		txns := secured.Group("/transactions")
		txns.GET("", h.ListTransactions)
		txns.GET("/:id", h.GetTransaction)
		txns.GET("/:id/duty-slip", h.GetTransactionDutySlip)
		txns.DELETE("/:id", middleware.RequireRoles("owner", "admin"), h.DeleteTransaction)

		// Master-data lookups for the form widgets
		secured.GET("/customers", h.GetCustomers)
		secured.GET("/customers/:id/projects", h.GetCustomerProjects)
		secured.GET("/vehicles", h.GetVehicles)
		secured.GET("/drivers", h.GetDrivers)
		secured.GET("/vendors", h.GetVendors)
	}

	h.SetRouter(r)
	return r
}
