package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nutrilens/nutrilens/backend/internal/api"
	"github.com/nutrilens/nutrilens/backend/internal/middleware"
)

// SetupRouter configures the application routes
func SetupRouter(
	recognitionHandler *api.RecognitionHandler,
	scoreHandler *api.ScoreHandler,
) *gin.Engine {
	router := gin.Default()

	router.Use(middleware.CORS())
	router.Use(middleware.RequestID())

	// Both business routes are write-only; anything else on a known path
	// must get a 405 instead of gin's default 404.
	router.HandleMethodNotAllowed = true
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "method not allowed"})
	})

	router.GET("/health", api.HealthCheck)

	v1 := router.Group("/api/v1")
	recognitionHandler.RegisterRoutes(v1)
	scoreHandler.RegisterRoutes(v1)

	return router
}
