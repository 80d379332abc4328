package api

import (
	"github.com/gin-gonic/gin"
	"github.com/jroosing/hydrasig/internal/api/handlers"
	"github.com/jroosing/hydrasig/internal/api/middleware"
	"github.com/jroosing/hydrasig/internal/config"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/jroosing/hydrasig/internal/api/docs" // swagger docs
)

func RegisterRoutes(r *gin.Engine, h *handlers.Handler, cfg *config.Config) {
	// Swagger UI at /swagger/*
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api/v1")

	// Optional API key protection.
	if cfg != nil && cfg.API.APIKey != "" {
		api.Use(middleware.RequireAPIKey(cfg.API.APIKey))
	}

	api.GET("/health", h.Health)
	api.GET("/stats", h.Stats)

	api.POST("/sig/decode", h.DecodeSIG)
	api.POST("/sig/encode", h.EncodeSIG)

	api.GET("/records", h.ListRecords)
	api.POST("/records", h.CreateRecord)
	api.GET("/records/:id", h.GetRecord)
	api.DELETE("/records/:id", h.DeleteRecord)

	api.GET("/zones", h.ListZones)
	api.GET("/zones/:name", h.GetZone)
}
