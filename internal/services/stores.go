package services

import (
	"errors"

	"github.com/kizunavet/clinic-services-backend/internal/models"
)

// Store interfaces are the narrow persistence contracts the services depend
// on. The gorm repositories in internal/database/repository satisfy them;
// tests use in-memory fakes.

type PetStore interface {
	Create(pet *models.Pet) error
	GetByID(id string) (*models.Pet, error)
	List() ([]*models.Pet, error)
	Delete(id string) error
}

type CampaignStore interface {
	Create(campaign *models.Campaign) error
	List() ([]*models.Campaign, error)
}

type DraftStore interface {
	Create(draft *models.Draft) error
	GetByID(id string) (*models.Draft, error)
	ListPendingWithPet() ([]*models.PendingDraft, error)
	UpdateStatus(id, status string) error
}

type SettingStore interface {
	List() ([]*models.Setting, error)
	Get(key string) (string, error)
	Upsert(key, value string) error
}

// Messenger sends one text message to one phone number. The result carries
// either a message id or a failure reason; configuration problems are
// reported as failures without a network attempt.
type Messenger interface {
	Send(to, message string) models.SendResult
}

var (
	ErrDraftNotFound         = errors.New("draft not found")
	ErrDraftAlreadyProcessed = errors.New("draft already processed")
	ErrDraftPetMissing       = errors.New("pet not found for draft")
)
