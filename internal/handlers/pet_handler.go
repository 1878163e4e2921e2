package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/kizunavet/clinic-services-backend/internal/database/repository"
	"github.com/kizunavet/clinic-services-backend/internal/models"
	"github.com/kizunavet/clinic-services-backend/internal/services"
	"github.com/kizunavet/clinic-services-backend/internal/services/excel"
)

type PetHandler struct {
	petService    *services.PetService
	importService *excel.Service
}

func NewPetHandler(db *gorm.DB) *PetHandler {
	petRepo := repository.NewPetRepository(db)
	petService := services.NewPetService(petRepo)

	return &PetHandler{
		petService:    petService,
		importService: excel.NewImportService(petService),
	}
}

// GetPets godoc
// @Summary List pets
// @Description Get all registered pets, newest first
// @Tags pets
// @Produce json
// @Success 200 {array} models.PetResponse
// @Failure 500 {object} map[string]interface{}
// @Router /api/pets [get]
func (h *PetHandler) GetPets(c *gin.Context) {
	pets, err := h.petService.ListPets()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}
	c.JSON(http.StatusOK, pets)
}

// CreatePet godoc
// @Summary Register a pet
// @Description Register a new pet; returns the created record with its generated id
// @Tags pets
// @Accept json
// @Produce json
// @Param request body models.CreatePetRequest true "Pet details"
// @Success 200 {object} models.PetResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/pets [post]
func (h *PetHandler) CreatePet(c *gin.Context) {
	var req models.CreatePetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	pet, err := h.petService.CreatePet(&req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}
	c.JSON(http.StatusOK, pet)
}

// DeletePet godoc
// @Summary Delete a pet
// @Description Delete a pet by id; deleting a missing pet succeeds
// @Tags pets
// @Produce json
// @Param id path string true "Pet ID"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/pets/{id} [delete]
func (h *PetHandler) DeletePet(c *gin.Context) {
	if err := h.petService.DeletePet(c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

// ImportExcel godoc
// @Summary Import pets from Excel
// @Description Bulk-create pets from an uploaded xlsx file with a header alias table
// @Tags pets
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Spreadsheet file"
// @Success 200 {object} excel.ImportResult
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/pets/import-excel [post]
func (h *PetHandler) ImportExcel(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": fmt.Sprintf("Excel import failed: %v", err)})
		return
	}
	defer file.Close()

	result, err := h.importService.ImportPets(file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": fmt.Sprintf("Excel import failed: %v", err)})
		return
	}
	c.JSON(http.StatusOK, result)
}
