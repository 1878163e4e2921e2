package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/kizunavet/clinic-services-backend/internal/models"
)

type DraftService struct {
	draftStore   DraftStore
	petStore     PetStore
	settingStore SettingStore
	messenger    Messenger
}

func NewDraftService(draftStore DraftStore, petStore PetStore, settingStore SettingStore, messenger Messenger) *DraftService {
	return &DraftService{
		draftStore:   draftStore,
		petStore:     petStore,
		settingStore: settingStore,
		messenger:    messenger,
	}
}

// ListPending retrieves the review queue: pending drafts joined with their
// pet's name and owner contact details, newest first.
func (s *DraftService) ListPending() ([]*models.PendingDraft, error) {
	drafts, err := s.draftStore.ListPendingWithPet()
	if err != nil {
		return nil, fmt.Errorf("failed to list pending drafts: %w", err)
	}
	return drafts, nil
}

// ProcessDraft applies a review decision. Rejection only flips the status.
// Approval resolves the pet's phone number, attempts one send (override
// message wins over the drafted text) and marks the draft sent regardless of
// the delivery outcome — the queue advances even when delivery is uncertain.
// The send outcome is reported back to the caller instead of being swallowed.
func (s *DraftService) ProcessDraft(req *models.DraftActionRequest) (*models.ProcessDraftResponse, error) {
	draft, err := s.draftStore.GetByID(req.DraftID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDraftNotFound
		}
		return nil, fmt.Errorf("failed to load draft: %w", err)
	}

	if draft.Status != models.DraftStatusPending {
		return nil, ErrDraftAlreadyProcessed
	}

	if !req.Approved {
		if err := s.draftStore.UpdateStatus(draft.ID, models.DraftStatusRejected); err != nil {
			return nil, fmt.Errorf("failed to reject draft: %w", err)
		}
		logrus.Infof("Draft %s rejected", draft.ID)
		return &models.ProcessDraftResponse{Status: "success", Draft: models.DraftStatusRejected}, nil
	}

	pet, err := s.petStore.GetByID(draft.PetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDraftPetMissing
		}
		return nil, fmt.Errorf("failed to load pet for draft: %w", err)
	}

	message := draft.DraftMessage
	if req.Message != "" {
		message = req.Message
	}

	result := s.messenger.Send(pet.OwnerPhone, message)
	if !result.Success {
		logrus.Warnf("Draft %s approved but send failed: %s", draft.ID, result.Error)
	}

	if err := s.draftStore.UpdateStatus(draft.ID, models.DraftStatusSent); err != nil {
		return nil, fmt.Errorf("failed to mark draft sent: %w", err)
	}

	return &models.ProcessDraftResponse{
		Status: "success",
		Draft:  models.DraftStatusSent,
		Sent:   result.Success,
		Reason: result.Error,
	}, nil
}

// GenerateAutoWishes creates one pending wellness-wish draft per registered
// pet, using the clinic name from settings in a fixed template.
func (s *DraftService) GenerateAutoWishes() (*models.AutoWishesResponse, error) {
	pets, err := s.petStore.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list pets: %w", err)
	}

	clinicName, err := s.settingStore.Get(models.SettingClinicName)
	if err != nil || clinicName == "" {
		clinicName = "Kizuna Vet Center"
	}

	count := 0
	for _, pet := range pets {
		message := fmt.Sprintf(
			"🌟 Hello %s! We're thinking of %s today. Just a quick note from %s to wish you both a healthy and happy week! 🐾✨",
			pet.OwnerName, pet.Name, clinicName,
		)

		draft := &models.Draft{
			ID:           uuid.New().String(),
			PetID:        pet.ID,
			Type:         models.DraftTypeWellnessWish,
			DraftMessage: message,
			Status:       models.DraftStatusPending,
		}
		if err := s.draftStore.Create(draft); err != nil {
			return nil, fmt.Errorf("failed to create wellness draft: %w", err)
		}
		count++
	}

	logrus.Infof("Generated %d wellness wish drafts", count)
	return &models.AutoWishesResponse{Status: "success", DraftsCreated: count}, nil
}
