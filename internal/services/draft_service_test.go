package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kizunavet/clinic-services-backend/internal/models"
)

func newDraftFixture(messenger *fakeMessenger) (*DraftService, *fakeDraftStore, *fakePetStore, *fakeSettingStore) {
	draftStore := &fakeDraftStore{}
	petStore := &fakePetStore{}
	settingStore := &fakeSettingStore{values: map[string]string{
		models.SettingClinicName: "Kizuna Vet Center",
	}}
	return NewDraftService(draftStore, petStore, settingStore, messenger), draftStore, petStore, settingStore
}

func TestProcessDraftApprovalSendsAndMarksSent(t *testing.T) {
	messenger := &fakeMessenger{result: models.SendResult{Success: true, MessageID: "wamid.1"}}
	service, draftStore, petStore, _ := newDraftFixture(messenger)

	pet := addPet(petStore, "Max", "Dog", "Sarah", "08011112222")
	draftStore.drafts = append(draftStore.drafts, &models.Draft{
		ID: "d1", PetID: pet.ID, Type: models.DraftTypeCampaign,
		DraftMessage: "Hi Sarah!", Status: models.DraftStatusPending,
	})

	resp, err := service.ProcessDraft(&models.DraftActionRequest{DraftID: "d1", Approved: true})
	require.NoError(t, err)

	assert.Equal(t, models.DraftStatusSent, resp.Draft)
	assert.True(t, resp.Sent)
	assert.Equal(t, models.DraftStatusSent, draftStore.drafts[0].Status)
	require.Len(t, messenger.sends, 1)
	assert.Equal(t, "08011112222", messenger.sends[0].To)
	assert.Equal(t, "Hi Sarah!", messenger.sends[0].Message)
}

func TestProcessDraftApprovalUsesOverrideMessage(t *testing.T) {
	messenger := &fakeMessenger{result: models.SendResult{Success: true}}
	service, draftStore, petStore, _ := newDraftFixture(messenger)

	pet := addPet(petStore, "Max", "Dog", "Sarah", "08011112222")
	draftStore.drafts = append(draftStore.drafts, &models.Draft{
		ID: "d1", PetID: pet.ID, DraftMessage: "original", Status: models.DraftStatusPending,
	})

	_, err := service.ProcessDraft(&models.DraftActionRequest{
		DraftID: "d1", Approved: true, Message: "edited by reviewer",
	})
	require.NoError(t, err)

	require.Len(t, messenger.sends, 1)
	assert.Equal(t, "edited by reviewer", messenger.sends[0].Message)
}

func TestProcessDraftRejectionSkipsSend(t *testing.T) {
	messenger := &fakeMessenger{}
	service, draftStore, petStore, _ := newDraftFixture(messenger)

	pet := addPet(petStore, "Max", "Dog", "Sarah", "08011112222")
	draftStore.drafts = append(draftStore.drafts, &models.Draft{
		ID: "d1", PetID: pet.ID, DraftMessage: "Hi!", Status: models.DraftStatusPending,
	})

	resp, err := service.ProcessDraft(&models.DraftActionRequest{DraftID: "d1", Approved: false})
	require.NoError(t, err)

	assert.Equal(t, models.DraftStatusRejected, resp.Draft)
	assert.Equal(t, models.DraftStatusRejected, draftStore.drafts[0].Status)
	assert.Empty(t, messenger.sends)
	// The pet record is untouched
	assert.Equal(t, "Max", petStore.pets[0].Name)
}

func TestProcessDraftSendFailureStillMarksSent(t *testing.T) {
	messenger := &fakeMessenger{result: models.SendResult{Error: "connection refused"}}
	service, draftStore, petStore, _ := newDraftFixture(messenger)

	pet := addPet(petStore, "Max", "Dog", "Sarah", "08011112222")
	draftStore.drafts = append(draftStore.drafts, &models.Draft{
		ID: "d1", PetID: pet.ID, DraftMessage: "Hi!", Status: models.DraftStatusPending,
	})

	resp, err := service.ProcessDraft(&models.DraftActionRequest{DraftID: "d1", Approved: true})
	require.NoError(t, err)

	assert.Equal(t, models.DraftStatusSent, resp.Draft)
	assert.False(t, resp.Sent)
	assert.Equal(t, "connection refused", resp.Reason)
	assert.Equal(t, models.DraftStatusSent, draftStore.drafts[0].Status)
}

func TestProcessDraftMissingDraftIsReported(t *testing.T) {
	service, _, _, _ := newDraftFixture(&fakeMessenger{})

	_, err := service.ProcessDraft(&models.DraftActionRequest{DraftID: "nope", Approved: true})
	assert.ErrorIs(t, err, ErrDraftNotFound)
}

func TestProcessDraftRejectsTerminalStates(t *testing.T) {
	messenger := &fakeMessenger{result: models.SendResult{Success: true}}
	service, draftStore, petStore, _ := newDraftFixture(messenger)

	pet := addPet(petStore, "Max", "Dog", "Sarah", "08011112222")
	for _, status := range []string{models.DraftStatusSent, models.DraftStatusRejected} {
		draftStore.drafts = []*models.Draft{{
			ID: "d1", PetID: pet.ID, DraftMessage: "Hi!", Status: status,
		}}

		_, err := service.ProcessDraft(&models.DraftActionRequest{DraftID: "d1", Approved: true})
		assert.ErrorIs(t, err, ErrDraftAlreadyProcessed)
		assert.Equal(t, status, draftStore.drafts[0].Status)
		assert.Empty(t, messenger.sends)
	}
}

func TestProcessDraftOrphanedDraftIsReported(t *testing.T) {
	messenger := &fakeMessenger{}
	service, draftStore, _, _ := newDraftFixture(messenger)

	draftStore.drafts = append(draftStore.drafts, &models.Draft{
		ID: "d1", PetID: "gone", DraftMessage: "Hi!", Status: models.DraftStatusPending,
	})

	_, err := service.ProcessDraft(&models.DraftActionRequest{DraftID: "d1", Approved: true})
	assert.ErrorIs(t, err, ErrDraftPetMissing)
	assert.Empty(t, messenger.sends)
	// The draft stays pending; nothing was attempted
	assert.Equal(t, models.DraftStatusPending, draftStore.drafts[0].Status)
}

func TestListPendingOnlyReturnsPendingDrafts(t *testing.T) {
	service, draftStore, _, _ := newDraftFixture(&fakeMessenger{})

	draftStore.drafts = []*models.Draft{
		{ID: "d1", Status: models.DraftStatusPending},
		{ID: "d2", Status: models.DraftStatusSent},
		{ID: "d3", Status: models.DraftStatusRejected},
	}

	pending, err := service.ListPending()
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "d1", pending[0].ID)
}

func TestGenerateAutoWishesCreatesOneDraftPerPet(t *testing.T) {
	service, draftStore, petStore, _ := newDraftFixture(&fakeMessenger{})

	addPet(petStore, "Max", "Dog", "Sarah", "08011112222")
	addPet(petStore, "Bella", "Cat", "John", "08033334444")

	resp, err := service.GenerateAutoWishes()
	require.NoError(t, err)

	assert.Equal(t, 2, resp.DraftsCreated)
	require.Len(t, draftStore.drafts, 2)
	for _, draft := range draftStore.drafts {
		assert.Equal(t, models.DraftTypeWellnessWish, draft.Type)
		assert.Equal(t, models.DraftStatusPending, draft.Status)
		assert.Contains(t, draft.DraftMessage, "Kizuna Vet Center")
	}
	assert.Contains(t, draftStore.drafts[0].DraftMessage, "Sarah")
	assert.Contains(t, draftStore.drafts[0].DraftMessage, "Max")
}
