package api

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nutrilens/nutrilens/backend/internal/service"
	"github.com/nutrilens/nutrilens/backend/internal/types"
)

// ScoreHandler handles nutrition score requests
type ScoreHandler struct {
	gemini *service.GeminiService
}

// NewScoreHandler creates a new ScoreHandler instance
func NewScoreHandler(gemini *service.GeminiService) *ScoreHandler {
	return &ScoreHandler{gemini: gemini}
}

// RegisterRoutes registers the nutrition score routes
func (h *ScoreHandler) RegisterRoutes(router *gin.RouterGroup) {
	nutrition := router.Group("/nutrition")
	{
		nutrition.POST("/score", h.Score)
	}
}

// Score asks the model for an N-Score over the aggregated nutrition totals
// and returns the generated JSON text as the response body.
func (h *ScoreHandler) Score(c *gin.Context) {
	var req types.ScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	text, err := h.gemini.ScoreNutrition(c.Request.Context(), req.TotalNutrition, req.FoodNames)
	if err != nil {
		log.Printf("nutrition score failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to score nutrition: " + err.Error()})
		return
	}

	// The generated text is already model-produced JSON.
	c.Data(http.StatusOK, "application/json", []byte(text))
}
