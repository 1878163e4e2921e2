package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kizunavet/clinic-services-backend/internal/models"
	"github.com/kizunavet/clinic-services-backend/internal/services"
)

// ReminderHandler exposes direct AI drafting and direct sending, both
// bypassing the draft review queue.
type ReminderHandler struct {
	geminiService *services.GeminiService
	messenger     services.Messenger
}

func NewReminderHandler(geminiService *services.GeminiService, messenger services.Messenger) *ReminderHandler {
	return &ReminderHandler{
		geminiService: geminiService,
		messenger:     messenger,
	}
}

// GenerateReminder godoc
// @Summary Generate a reminder message
// @Description Draft a personalized reminder with the AI service; falls back to a templated sentence on AI failure
// @Tags reminders
// @Accept json
// @Produce json
// @Param request body models.ReminderGenerateRequest true "Reminder details"
// @Success 200 {object} models.ReminderGenerateResponse
// @Failure 400 {object} map[string]interface{}
// @Router /api/reminders/generate [post]
func (h *ReminderHandler) GenerateReminder(c *gin.Context) {
	var req models.ReminderGenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	message := h.geminiService.GenerateReminder(&req)
	c.JSON(http.StatusOK, models.ReminderGenerateResponse{Message: message})
}

// SendReminder godoc
// @Summary Send a message directly
// @Description Send one WhatsApp message immediately, without going through the draft queue
// @Tags reminders
// @Accept json
// @Produce json
// @Param request body models.ReminderSendRequest true "Message details"
// @Success 200 {object} models.SendResult
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/reminders/send [post]
func (h *ReminderHandler) SendReminder(c *gin.Context) {
	var req models.ReminderSendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	result := h.messenger.Send(req.To, req.Message)
	if !result.Success {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": result.Error})
		return
	}
	c.JSON(http.StatusOK, result)
}
