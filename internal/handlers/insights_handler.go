package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kizunavet/clinic-services-backend/internal/models"
	"github.com/kizunavet/clinic-services-backend/internal/services"
)

type InsightsHandler struct {
	geminiService *services.GeminiService
}

func NewInsightsHandler(geminiService *services.GeminiService) *InsightsHandler {
	return &InsightsHandler{geminiService: geminiService}
}

// GetInsights godoc
// @Summary Summarize clinic stats
// @Description Produce an AI analytics summary over a caller-supplied stats mapping
// @Tags insights
// @Accept json
// @Produce json
// @Param request body models.InsightsRequest true "Clinic stats"
// @Success 200 {object} models.InsightsResponse
// @Failure 400 {object} map[string]interface{}
// @Router /api/insights [post]
func (h *InsightsHandler) GetInsights(c *gin.Context) {
	var req models.InsightsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	summary := h.geminiService.SummarizeAnalytics(req.Stats)
	c.JSON(http.StatusOK, models.InsightsResponse{Summary: summary})
}
