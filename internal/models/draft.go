package models

import (
	"time"
)

// Draft is one candidate outbound message awaiting human review.
// Status moves from pending_review to exactly one of the terminal states
// (sent, rejected); no transition out of a terminal state is accepted.
type Draft struct {
	ID           string    `json:"id" gorm:"primaryKey;type:uuid"`
	PetID        string    `json:"pet_id" gorm:"column:pet_id;type:uuid;index"`
	Type         string    `json:"type" gorm:"type:varchar(50)"`
	DraftMessage string    `json:"draft_message" gorm:"column:draft_message;type:text"`
	Status       string    `json:"status" gorm:"type:varchar(50);default:'pending_review'"`
	CreatedAt    time.Time `json:"created_at"`
}

// TableName specifies the table name for the Draft model
func (Draft) TableName() string {
	return "drafts"
}

// Draft status values
const (
	DraftStatusPending  = "pending_review"
	DraftStatusSent     = "sent"
	DraftStatusRejected = "rejected"
)

// Draft kinds
const (
	DraftTypeCampaign     = "campaign"
	DraftTypeWellnessWish = "wellness_wish"
)

// PendingDraft is a pending-review draft joined with the contact details of
// its pet, as listed in the review queue. Drafts whose pet has been deleted
// drop out of the join and never reach reviewers.
type PendingDraft struct {
	ID           string    `json:"id"`
	PetID        string    `json:"pet_id" gorm:"column:pet_id"`
	Type         string    `json:"type"`
	DraftMessage string    `json:"draft_message" gorm:"column:draft_message"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at" gorm:"column:created_at"`
	PetName      string    `json:"pet_name" gorm:"column:pet_name"`
	OwnerName    string    `json:"owner_name" gorm:"column:owner_name"`
	OwnerPhone   string    `json:"owner_phone" gorm:"column:owner_phone"`
}

// DraftActionRequest represents an approve/reject decision on a draft.
// Message, when set on approval, overrides the drafted text.
type DraftActionRequest struct {
	DraftID  string `json:"draftId" binding:"required" example:"550e8400-e29b-41d4-a716-446655440000"`
	Approved bool   `json:"approved" example:"true"`
	Message  string `json:"message,omitempty" example:"Hi Sarah, Max is due for a checkup!"`
}

// ProcessDraftResponse reports the outcome of a review decision. Sent and
// Reason describe the delivery attempt only; the draft status transition does
// not depend on them.
type ProcessDraftResponse struct {
	Status string `json:"status" example:"success"`
	Draft  string `json:"draft_status" example:"sent"`
	Sent   bool   `json:"sent" example:"true"`
	Reason string `json:"reason,omitempty" example:""`
}

// AutoWishesResponse reports the bulk wellness-wish generation result
type AutoWishesResponse struct {
	Status        string `json:"status" example:"success"`
	DraftsCreated int    `json:"drafts_created" example:"7"`
}
