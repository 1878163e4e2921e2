package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/kizunavet/clinic-services-backend/internal/config"
	"github.com/kizunavet/clinic-services-backend/internal/database"
	"github.com/kizunavet/clinic-services-backend/internal/database/repository"
	"github.com/kizunavet/clinic-services-backend/internal/router"
	"github.com/kizunavet/clinic-services-backend/internal/services"
	"github.com/kizunavet/clinic-services-backend/internal/services/telegram"
	"github.com/kizunavet/clinic-services-backend/internal/utils"

	// Import Swagger docs
	_ "github.com/kizunavet/clinic-services-backend/docs"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Configure logging
	configureLogging()

	// Initialize Sentry
	utils.InitSentry()

	// Initialize database connection
	db, err := database.InitDB()
	if err != nil {
		logrus.Fatalf("Failed to initialize database: %v", err)
	}

	// Warn early when WhatsApp sending is not configured; sends will be
	// rejected at the adapter until the credentials are set.
	if !config.LoadMessaging().Configured() {
		logrus.Warn("KAPSO_API_KEY / KAPSO_PHONE_NUMBER_ID not configured, WhatsApp reminders will not be sent")
	}

	// Start the Telegram bot front-end beside the HTTP server
	petService := services.NewPetService(repository.NewPetRepository(db))
	botService := telegram.NewBotService(services.NewGeminiService(), petService)
	botService.Start()
	defer botService.Stop()

	// Initialize router
	r := router.SetupRouter(db)

	// Configure HTTP server
	port := getEnv("PORT", "5000")
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", port),
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		logrus.Infof("Server starting on port %s", port)
		logrus.Infof("API Health Check: http://localhost:%s/api/health", port)
		logrus.Infof("Swagger UI: http://localhost:%s/swagger/index.html", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("Shutting down server...")

	// Create a deadline for server shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown the server
	if err := srv.Shutdown(ctx); err != nil {
		logrus.Fatalf("Server forced to shutdown: %v", err)
	}

	logrus.Info("Server exited properly")
}

func configureLogging() {
	logLevel := getEnv("LOG_LEVEL", "info")
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
