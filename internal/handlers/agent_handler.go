package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/kizunavet/clinic-services-backend/internal/database/repository"
	"github.com/kizunavet/clinic-services-backend/internal/models"
	"github.com/kizunavet/clinic-services-backend/internal/services"
)

// AgentHandler exposes the draft review workflow: the human approval gate in
// front of every outbound message.
type AgentHandler struct {
	draftService *services.DraftService
}

func NewAgentHandler(db *gorm.DB, messenger services.Messenger) *AgentHandler {
	draftRepo := repository.NewDraftRepository(db)
	petRepo := repository.NewPetRepository(db)
	settingRepo := repository.NewSettingRepository(db)

	return &AgentHandler{
		draftService: services.NewDraftService(draftRepo, petRepo, settingRepo, messenger),
	}
}

// GetDrafts godoc
// @Summary List pending drafts
// @Description Get the review queue: pending drafts with their pet's contact details, newest first
// @Tags agent
// @Produce json
// @Success 200 {array} models.PendingDraft
// @Failure 500 {object} map[string]interface{}
// @Router /api/agent/drafts [get]
func (h *AgentHandler) GetDrafts(c *gin.Context) {
	drafts, err := h.draftService.ListPending()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}
	c.JSON(http.StatusOK, drafts)
}

// ProcessDraft godoc
// @Summary Approve or reject a draft
// @Description Apply a review decision. Approval attempts one send and marks the draft sent; rejection only flips the status.
// @Tags agent
// @Accept json
// @Produce json
// @Param request body models.DraftActionRequest true "Review decision"
// @Success 200 {object} models.ProcessDraftResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/agent/process-draft [post]
func (h *AgentHandler) ProcessDraft(c *gin.Context) {
	var req models.DraftActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	response, err := h.draftService.ProcessDraft(&req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrDraftNotFound), errors.Is(err, services.ErrDraftPetMissing):
			c.JSON(http.StatusNotFound, gin.H{"detail": err.Error()})
		case errors.Is(err, services.ErrDraftAlreadyProcessed):
			c.JSON(http.StatusConflict, gin.H{"detail": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, response)
}

// GenerateAutoWishes godoc
// @Summary Generate wellness wish drafts
// @Description Create one pending wellness-wish draft per registered pet
// @Tags agent
// @Produce json
// @Success 200 {object} models.AutoWishesResponse
// @Failure 500 {object} map[string]interface{}
// @Router /api/agent/generate-auto-wishes [post]
func (h *AgentHandler) GenerateAutoWishes(c *gin.Context) {
	response, err := h.draftService.GenerateAutoWishes()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}
	c.JSON(http.StatusOK, response)
}
