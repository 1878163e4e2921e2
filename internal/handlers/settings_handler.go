package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/kizunavet/clinic-services-backend/internal/database/repository"
)

type SettingsHandler struct {
	settingRepo *repository.SettingRepository
}

func NewSettingsHandler(db *gorm.DB) *SettingsHandler {
	return &SettingsHandler{settingRepo: repository.NewSettingRepository(db)}
}

// GetSettings godoc
// @Summary Read settings
// @Description Get the full settings key/value map
// @Tags settings
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 500 {object} map[string]interface{}
// @Router /api/settings [get]
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	settings, err := h.settingRepo.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	result := make(map[string]string, len(settings))
	for _, setting := range settings {
		result[setting.Key] = setting.Value
	}
	c.JSON(http.StatusOK, result)
}

// UpdateSettings godoc
// @Summary Upsert settings
// @Description Write settings keys; every write overwrites the existing value
// @Tags settings
// @Accept json
// @Produce json
// @Param request body map[string]string true "Settings to write"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/settings [post]
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	var settings map[string]string
	if err := c.ShouldBindJSON(&settings); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	for key, value := range settings {
		if err := h.settingRepo.Upsert(key, value); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}
