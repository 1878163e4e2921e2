package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/kizunavet/clinic-services-backend/internal/handlers"
	"github.com/kizunavet/clinic-services-backend/internal/middleware"
	"github.com/kizunavet/clinic-services-backend/internal/services"
)

// SetupRouter configures the Gin router with the clinic API routes
func SetupRouter(db *gorm.DB) *gin.Engine {
	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	// Create a new router
	r := gin.New()

	// Use middleware
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	// Configure CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Shared external adapters
	geminiService := services.NewGeminiService()
	whatsappService := services.NewWhatsAppService()

	// Create handlers with services
	petHandler := handlers.NewPetHandler(db)
	campaignHandler := handlers.NewCampaignHandler(db)
	agentHandler := handlers.NewAgentHandler(db, whatsappService)
	reminderHandler := handlers.NewReminderHandler(geminiService, whatsappService)
	insightsHandler := handlers.NewInsightsHandler(geminiService)
	settingsHandler := handlers.NewSettingsHandler(db)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes (paths preserved for the dashboard frontend)
	api := r.Group("/api")
	{
		// Health check
		api.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status":  "ok",
				"message": "Kizuna clinic backend is running 🐾",
			})
		})

		// Pet routes
		api.GET("/pets", petHandler.GetPets)
		api.POST("/pets", petHandler.CreatePet)
		api.DELETE("/pets/:id", petHandler.DeletePet)
		api.POST("/pets/import-excel", petHandler.ImportExcel)

		// Campaign routes
		api.GET("/campaigns", campaignHandler.GetCampaigns)
		api.POST("/campaigns", campaignHandler.CreateCampaign)

		// Reminder routes (bypass the draft queue)
		api.POST("/reminders/generate", reminderHandler.GenerateReminder)
		api.POST("/reminders/send", reminderHandler.SendReminder)

		// Draft review workflow
		agent := api.Group("/agent")
		{
			agent.GET("/drafts", agentHandler.GetDrafts)
			agent.POST("/process-draft", agentHandler.ProcessDraft)
			agent.POST("/generate-auto-wishes", agentHandler.GenerateAutoWishes)
		}

		// Insights and settings
		api.POST("/insights", insightsHandler.GetInsights)
		api.GET("/settings", settingsHandler.GetSettings)
		api.POST("/settings", settingsHandler.UpdateSettings)
	}

	return r
}
