package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/kizunavet/clinic-services-backend/internal/models"
)

type PetService struct {
	petStore PetStore
}

func NewPetService(petStore PetStore) *PetService {
	return &PetService{petStore: petStore}
}

// CreatePet registers a new pet. Descriptive fields left empty default to
// "Unknown" and status defaults to "Healthy"; the generated id is returned
// with the record.
func (s *PetService) CreatePet(req *models.CreatePetRequest) (*models.PetResponse, error) {
	pet := &models.Pet{
		ID:                  uuid.New().String(),
		Name:                defaultString(req.Name, models.UnknownValue),
		Species:             defaultString(req.Species, "Dog"),
		Breed:               defaultString(req.Breed, models.UnknownValue),
		Sex:                 defaultString(req.Sex, models.UnknownValue),
		Color:               defaultString(req.Color, models.UnknownValue),
		Age:                 defaultString(req.Age, models.UnknownValue),
		Weight:              defaultString(req.Weight, models.UnknownValue),
		OwnerName:           defaultString(req.OwnerName, models.UnknownValue),
		OwnerPhone:          defaultString(req.OwnerPhone, models.UnknownValue),
		Status:              defaultString(req.Status, models.PetStatusHealthy),
		Birthday:            req.Birthday,
		LastVaccinationDate: req.LastVaccinationDate,
		NextVaccinationDate: req.NextVaccinationDate,
		LastDewormingDate:   req.LastDewormingDate,
		LastCheckupDate:     req.LastCheckupDate,
		MedicalHistory:      "[]",
	}

	if err := s.petStore.Create(pet); err != nil {
		return nil, fmt.Errorf("failed to create pet: %w", err)
	}

	logrus.Infof("Registered pet %s (%s) for owner %s", pet.Name, pet.Species, pet.OwnerName)
	return s.toResponse(pet), nil
}

// ListPets retrieves all pets, newest first
func (s *PetService) ListPets() ([]*models.PetResponse, error) {
	pets, err := s.petStore.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list pets: %w", err)
	}

	responses := make([]*models.PetResponse, len(pets))
	for i, pet := range pets {
		responses[i] = s.toResponse(pet)
	}
	return responses, nil
}

// DeletePet removes a pet by id. Deleting a missing pet succeeds; drafts
// referencing the pet are left in place and drop out of the review queue.
func (s *PetService) DeletePet(id string) error {
	if err := s.petStore.Delete(id); err != nil {
		return fmt.Errorf("failed to delete pet: %w", err)
	}
	return nil
}

// toResponse converts a Pet model to its API shape. NextVaccinationDate is
// materialized to today when the stored value is empty; the stored row is
// not modified.
func (s *PetService) toResponse(pet *models.Pet) *models.PetResponse {
	nextVaccination := pet.NextVaccinationDate
	if nextVaccination == "" {
		nextVaccination = time.Now().Format("2006-01-02")
	}

	return &models.PetResponse{
		ID:                  pet.ID,
		Name:                pet.Name,
		Species:             pet.Species,
		Breed:               defaultString(pet.Breed, models.UnknownValue),
		Sex:                 defaultString(pet.Sex, models.UnknownValue),
		Color:               defaultString(pet.Color, models.UnknownValue),
		Age:                 defaultString(pet.Age, models.UnknownValue),
		Weight:              defaultString(pet.Weight, models.UnknownValue),
		OwnerName:           pet.OwnerName,
		OwnerPhone:          pet.OwnerPhone,
		Status:              defaultString(pet.Status, models.PetStatusHealthy),
		Birthday:            pet.Birthday,
		LastVaccinationDate: pet.LastVaccinationDate,
		NextVaccinationDate: nextVaccination,
		LastDewormingDate:   pet.LastDewormingDate,
		LastCheckupDate:     pet.LastCheckupDate,
	}
}

func defaultString(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
