package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/kizunavet/clinic-services-backend/internal/models"
)

type CampaignService struct {
	campaignStore CampaignStore
	petStore      PetStore
	draftStore    DraftStore
}

func NewCampaignService(campaignStore CampaignStore, petStore PetStore, draftStore DraftStore) *CampaignService {
	return &CampaignService{
		campaignStore: campaignStore,
		petStore:      petStore,
		draftStore:    draftStore,
	}
}

// CreateCampaign persists an active campaign and fans it out into one
// pending-review draft per matching pet, with template placeholders already
// substituted. No message is sent at this stage.
func (s *CampaignService) CreateCampaign(req *models.CreateCampaignRequest) (*models.CampaignFanoutResponse, error) {
	target := req.Target
	if target == "" {
		target = models.AudienceAll
	}

	campaign := &models.Campaign{
		ID:             uuid.New().String(),
		Name:           req.Name,
		Message:        req.Message,
		TargetAudience: target,
		Status:         models.CampaignStatusActive,
	}
	if err := s.campaignStore.Create(campaign); err != nil {
		return nil, fmt.Errorf("failed to create campaign: %w", err)
	}

	switch target {
	case models.AudienceAll, models.AudienceDogs, models.AudienceCats,
		models.AudienceOverdue, models.AudienceDueThisMonth:
	default:
		logrus.Warnf("Unrecognized target audience %q, selecting all patients", target)
	}

	pets, err := s.petStore.List()
	if err != nil {
		return nil, fmt.Errorf("failed to select campaign audience: %w", err)
	}

	created := 0
	for _, pet := range pets {
		if !matchesAudience(pet, target, time.Now()) {
			continue
		}

		draft := &models.Draft{
			ID:           uuid.New().String(),
			PetID:        pet.ID,
			Type:         models.DraftTypeCampaign,
			DraftMessage: Personalize(req.Message, pet),
			Status:       models.DraftStatusPending,
		}
		if err := s.draftStore.Create(draft); err != nil {
			return nil, fmt.Errorf("failed to create campaign draft: %w", err)
		}
		created++
	}

	logrus.Infof("Campaign %s (%s) created %d drafts for audience %q", campaign.Name, campaign.ID, created, target)
	return &models.CampaignFanoutResponse{
		Status:        "success",
		CampaignID:    campaign.ID,
		DraftsCreated: created,
	}, nil
}

// ListCampaigns retrieves all campaigns, newest first
func (s *CampaignService) ListCampaigns() ([]*models.Campaign, error) {
	campaigns, err := s.campaignStore.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list campaigns: %w", err)
	}
	return campaigns, nil
}

// matchesAudience resolves a target audience selector into a predicate over
// one pet. Species and status matches are exact and case-sensitive.
// "Due This Month" is a lexical prefix match on the stored YYYY-MM-DD string.
// An unrecognized selector selects every pet, which keeps typos from the
// dashboard from producing an empty campaign.
func matchesAudience(pet *models.Pet, target string, now time.Time) bool {
	switch target {
	case models.AudienceDogs:
		return pet.Species == "Dog"
	case models.AudienceCats:
		return pet.Species == "Cat"
	case models.AudienceOverdue:
		return pet.Status == models.PetStatusOverdue
	case models.AudienceDueThisMonth:
		return strings.HasPrefix(pet.NextVaccinationDate, now.Format("2006-01"))
	default:
		// Includes "All Patients" and any unrecognized selector.
		return true
	}
}

// Personalize substitutes the {owner_name} and {pet_name} placeholders by
// plain substring replacement. Unknown placeholders pass through literally.
func Personalize(template string, pet *models.Pet) string {
	message := strings.ReplaceAll(template, models.PlaceholderOwnerName, pet.OwnerName)
	return strings.ReplaceAll(message, models.PlaceholderPetName, pet.Name)
}
