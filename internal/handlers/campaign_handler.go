package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/kizunavet/clinic-services-backend/internal/database/repository"
	"github.com/kizunavet/clinic-services-backend/internal/models"
	"github.com/kizunavet/clinic-services-backend/internal/services"
)

type CampaignHandler struct {
	campaignService *services.CampaignService
}

func NewCampaignHandler(db *gorm.DB) *CampaignHandler {
	campaignRepo := repository.NewCampaignRepository(db)
	petRepo := repository.NewPetRepository(db)
	draftRepo := repository.NewDraftRepository(db)

	return &CampaignHandler{
		campaignService: services.NewCampaignService(campaignRepo, petRepo, draftRepo),
	}
}

// GetCampaigns godoc
// @Summary List campaigns
// @Description Get all campaigns, newest first
// @Tags campaigns
// @Produce json
// @Success 200 {array} models.Campaign
// @Failure 500 {object} map[string]interface{}
// @Router /api/campaigns [get]
func (h *CampaignHandler) GetCampaigns(c *gin.Context) {
	campaigns, err := h.campaignService.ListCampaigns()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}
	c.JSON(http.StatusOK, campaigns)
}

// CreateCampaign godoc
// @Summary Launch a campaign
// @Description Create an active campaign and fan it out into pending-review drafts
// @Tags campaigns
// @Accept json
// @Produce json
// @Param request body models.CreateCampaignRequest true "Campaign details"
// @Success 200 {object} models.CampaignFanoutResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/campaigns [post]
func (h *CampaignHandler) CreateCampaign(c *gin.Context) {
	var req models.CreateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	response, err := h.campaignService.CreateCampaign(&req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}
	c.JSON(http.StatusOK, response)
}
