package repository

import (
	"github.com/kizunavet/clinic-services-backend/internal/models"

	"gorm.io/gorm"
)

type DraftRepository struct {
	db *gorm.DB
}

func NewDraftRepository(db *gorm.DB) *DraftRepository {
	return &DraftRepository{db: db}
}

// Create creates a new draft
func (r *DraftRepository) Create(draft *models.Draft) error {
	return r.db.Create(draft).Error
}

// GetByID retrieves a draft by ID
func (r *DraftRepository) GetByID(id string) (*models.Draft, error) {
	var draft models.Draft
	err := r.db.First(&draft, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &draft, nil
}

// ListPendingWithPet retrieves pending-review drafts joined with their pet's
// contact details, newest first. Orphaned drafts (pet deleted) fall out of
// the inner join.
func (r *DraftRepository) ListPendingWithPet() ([]*models.PendingDraft, error) {
	var drafts []*models.PendingDraft
	err := r.db.Table("drafts").
		Select("drafts.id, drafts.pet_id, drafts.type, drafts.draft_message, drafts.status, drafts.created_at, pets.name AS pet_name, pets.owner_name, pets.owner_phone").
		Joins("JOIN pets ON drafts.pet_id = pets.id").
		Where("drafts.status = ?", models.DraftStatusPending).
		Order("drafts.created_at DESC").
		Scan(&drafts).Error
	return drafts, err
}

// UpdateStatus sets the status of a draft
func (r *DraftRepository) UpdateStatus(id, status string) error {
	return r.db.Model(&models.Draft{}).Where("id = ?", id).Update("status", status).Error
}
