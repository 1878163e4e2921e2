package models

import (
	"time"
)

// Campaign represents one outbound messaging initiative. A campaign is
// created together with its fan-out of drafts and is never mutated afterwards.
type Campaign struct {
	ID             string    `json:"id" gorm:"primaryKey;type:uuid"`
	Name           string    `json:"name" gorm:"type:varchar(255);not null"`
	Message        string    `json:"message" gorm:"type:text;not null"`
	TargetAudience string    `json:"target_audience" gorm:"column:target_audience;type:varchar(100)"`
	Status         string    `json:"status" gorm:"type:varchar(50);default:'draft'"`
	SentCount      int       `json:"sent_count" gorm:"column:sent_count;default:0"`
	CreatedAt      time.Time `json:"created_at"`
}

// TableName specifies the table name for the Campaign model
func (Campaign) TableName() string {
	return "campaigns"
}

// Campaign status values
const (
	CampaignStatusDraft  = "draft"
	CampaignStatusActive = "active"
)

// Target audience selectors. Species matching is an exact, case-sensitive
// comparison against "Dog"/"Cat" — a pet stored as "dog" is not selected.
const (
	AudienceAll          = "All Patients"
	AudienceDogs         = "Dogs Only"
	AudienceCats         = "Cats Only"
	AudienceOverdue      = "Overdue Patients"
	AudienceDueThisMonth = "Due This Month"
)

// Message template placeholders, replaced by plain substring substitution.
const (
	PlaceholderOwnerName = "{owner_name}"
	PlaceholderPetName   = "{pet_name}"
)

// CreateCampaignRequest represents the request to launch a campaign
type CreateCampaignRequest struct {
	Name    string `json:"name" binding:"required" example:"Spring Vaccination Drive"`
	Message string `json:"message" binding:"required" example:"Hi {owner_name}, time for {pet_name}'s shot!"`
	Target  string `json:"target" example:"All Patients"`
}

// CampaignFanoutResponse reports the result of a campaign launch
type CampaignFanoutResponse struct {
	Status        string `json:"status" example:"success"`
	CampaignID    string `json:"campaign_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	DraftsCreated int    `json:"drafts_created" example:"12"`
}
