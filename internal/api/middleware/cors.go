package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupCORS configures CORS middleware restricted to the bridge frontend.
// An empty origin falls back to allowing everything, which is only meant
// for local development.
func SetupCORS(frontendOrigin string) gin.HandlerFunc {
	config := cors.Config{
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length", RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           time.Hour,
	}

	if frontendOrigin != "" {
		config.AllowOrigins = []string{frontendOrigin}
	} else {
		config.AllowAllOrigins = true
	}

	return cors.New(config)
}
