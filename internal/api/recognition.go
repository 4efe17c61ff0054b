package api

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nutrilens/nutrilens/backend/internal/service"
	"github.com/nutrilens/nutrilens/backend/internal/types"
)

// RecognitionHandler handles food recognition requests
type RecognitionHandler struct {
	gemini *service.GeminiService
}

// NewRecognitionHandler creates a new RecognitionHandler instance
func NewRecognitionHandler(gemini *service.GeminiService) *RecognitionHandler {
	return &RecognitionHandler{gemini: gemini}
}

// RegisterRoutes registers the recognition routes
func (h *RecognitionHandler) RegisterRoutes(router *gin.RouterGroup) {
	vision := router.Group("/vision")
	{
		vision.POST("/recognize", h.Recognize)
	}
}

// Recognize forwards an image and the supported food list to the model and
// relays the upstream envelope back unchanged.
func (h *RecognitionHandler) Recognize(c *gin.Context) {
	var req types.RecognitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	envelope, err := h.gemini.RecognizeFoods(c.Request.Context(), req.Base64ImageData, req.SupportedFoods)
	if err != nil {
		log.Printf("food recognition failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to recognize foods: " + err.Error()})
		return
	}

	c.Data(http.StatusOK, "application/json", envelope)
}
