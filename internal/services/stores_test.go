package services

import (
	"sort"

	"gorm.io/gorm"

	"github.com/kizunavet/clinic-services-backend/internal/models"
)

// In-memory store fakes shared by the service tests.

type fakePetStore struct {
	pets []*models.Pet
}

func (f *fakePetStore) Create(pet *models.Pet) error {
	f.pets = append(f.pets, pet)
	return nil
}

func (f *fakePetStore) GetByID(id string) (*models.Pet, error) {
	for _, pet := range f.pets {
		if pet.ID == id {
			return pet, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakePetStore) List() ([]*models.Pet, error) {
	out := make([]*models.Pet, len(f.pets))
	copy(out, f.pets)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (f *fakePetStore) Delete(id string) error {
	for i, pet := range f.pets {
		if pet.ID == id {
			f.pets = append(f.pets[:i], f.pets[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeCampaignStore struct {
	campaigns []*models.Campaign
}

func (f *fakeCampaignStore) Create(campaign *models.Campaign) error {
	f.campaigns = append(f.campaigns, campaign)
	return nil
}

func (f *fakeCampaignStore) List() ([]*models.Campaign, error) {
	return f.campaigns, nil
}

type fakeDraftStore struct {
	drafts []*models.Draft
}

func (f *fakeDraftStore) Create(draft *models.Draft) error {
	f.drafts = append(f.drafts, draft)
	return nil
}

func (f *fakeDraftStore) GetByID(id string) (*models.Draft, error) {
	for _, draft := range f.drafts {
		if draft.ID == id {
			return draft, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeDraftStore) ListPendingWithPet() ([]*models.PendingDraft, error) {
	var out []*models.PendingDraft
	for _, draft := range f.drafts {
		if draft.Status == models.DraftStatusPending {
			out = append(out, &models.PendingDraft{
				ID:           draft.ID,
				PetID:        draft.PetID,
				Type:         draft.Type,
				DraftMessage: draft.DraftMessage,
				Status:       draft.Status,
			})
		}
	}
	return out, nil
}

func (f *fakeDraftStore) UpdateStatus(id, status string) error {
	for _, draft := range f.drafts {
		if draft.ID == id {
			draft.Status = status
		}
	}
	return nil
}

type fakeSettingStore struct {
	values map[string]string
}

func (f *fakeSettingStore) List() ([]*models.Setting, error) {
	var out []*models.Setting
	for key, value := range f.values {
		out = append(out, &models.Setting{Key: key, Value: value})
	}
	return out, nil
}

func (f *fakeSettingStore) Get(key string) (string, error) {
	value, ok := f.values[key]
	if !ok {
		return "", gorm.ErrRecordNotFound
	}
	return value, nil
}

func (f *fakeSettingStore) Upsert(key, value string) error {
	if f.values == nil {
		f.values = map[string]string{}
	}
	f.values[key] = value
	return nil
}

// fakeMessenger records every send attempt
type fakeMessenger struct {
	result models.SendResult
	sends  []sentMessage
}

type sentMessage struct {
	To      string
	Message string
}

func (f *fakeMessenger) Send(to, message string) models.SendResult {
	f.sends = append(f.sends, sentMessage{To: to, Message: message})
	return f.result
}
