package rest

import (
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler) {
	// Health check endpoint
	router.GET("/health", handler.HealthCheck)

	// Migration endpoints
	router.POST("/bridge", handler.Bridge)

	// Customer data endpoints
	router.POST("/customer/data", handler.SaveCustomerData)
	router.GET("/customer/data/:wallet_address/:project_id", handler.GetMigrationState)
}
