// Package docs provides Swagger documentation for the API.
package docs

// @title Kizuna Clinic Backend API
// @version 1.0
// @description Back-office API for pet records, WhatsApp campaigns and the AI draft review queue
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@kizuna.vet

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:5000
// @BasePath /api
// @schemes http https
