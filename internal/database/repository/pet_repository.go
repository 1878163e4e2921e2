package repository

import (
	"github.com/kizunavet/clinic-services-backend/internal/models"

	"gorm.io/gorm"
)

type PetRepository struct {
	db *gorm.DB
}

func NewPetRepository(db *gorm.DB) *PetRepository {
	return &PetRepository{db: db}
}

// Create creates a new pet
func (r *PetRepository) Create(pet *models.Pet) error {
	return r.db.Create(pet).Error
}

// GetByID retrieves a pet by ID
func (r *PetRepository) GetByID(id string) (*models.Pet, error) {
	var pet models.Pet
	err := r.db.First(&pet, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &pet, nil
}

// List retrieves all pets, newest first
func (r *PetRepository) List() ([]*models.Pet, error) {
	var pets []*models.Pet
	err := r.db.Order("created_at DESC").Find(&pets).Error
	return pets, err
}

// Delete deletes a pet by ID. Deleting a missing pet is a no-op.
func (r *PetRepository) Delete(id string) error {
	return r.db.Delete(&models.Pet{}, "id = ?", id).Error
}
