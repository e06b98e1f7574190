package server

import (
	"net/http"

	"gridops/internal/auth"
	"gridops/internal/config"
	"gridops/internal/handlers"
	"gridops/internal/middleware"
	"gridops/internal/store"

	"github.com/gin-gonic/gin"
)

func NewRouter(cfg *config.Config, st store.Store) *gin.Engine {
	r := gin.Default()

	tokens := auth.NewTokenService(cfg.JWTSecret)
	h := &handlers.Handler{Store: st, Tokens: tokens}

	// AUTH
	r.POST("/user", h.Register)
	r.POST("/signin", h.Signin)

	api := r.Group("/api")
	api.Use(middleware.RequireAuth(tokens))

	// ASSETS
	api.GET("/asset", h.ListAssets)
	api.POST("/asset", h.CreateAsset)
	api.GET("/asset/:id", h.GetOneAsset)
	api.PUT("/asset/:id", h.UpdateAsset)
	api.DELETE("/asset/:id", h.DeleteAsset)

	// MAINTENANCE RECORDS
	api.GET("/maintenance", h.ListMaintenanceRecords)
	api.POST("/maintenance", h.CreateMaintenanceRecord)
	api.GET("/maintenance/:id", h.GetOneMaintenanceRecord)
	api.PUT("/maintenance/:id", h.UpdateMaintenanceRecord)
	api.DELETE("/maintenance/:id", h.DeleteMaintenanceRecord)

	// CHECKLIST TASKS
	api.GET("/task", h.ListChecklistTasks)
	api.POST("/task", h.CreateChecklistTask)
	api.GET("/task/:id", h.GetOneChecklistTask)
	api.PUT("/task/:id", h.UpdateChecklistTask)
	api.DELETE("/task/:id", h.DeleteChecklistTask)

	// AUDIT
	api.GET("/audit", h.ListAudit)

	// HEALTHCHECK
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	return r
}
