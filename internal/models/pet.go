package models

import (
	"time"
)

// Pet represents one animal registered with the clinic.
// Calendar dates are stored as ISO strings (YYYY-MM-DD) to stay
// compatible with the dashboard frontend.
type Pet struct {
	ID                  string `json:"id" gorm:"primaryKey;type:uuid"`
	Name                string `json:"name" gorm:"type:varchar(255);not null"`
	Species             string `json:"species" gorm:"type:varchar(100)"`
	Breed               string `json:"breed" gorm:"type:varchar(100)"`
	Sex                 string `json:"sex" gorm:"type:varchar(50)"`
	Color               string `json:"color" gorm:"type:varchar(100)"`
	Age                 string `json:"age" gorm:"type:varchar(50)"`
	Weight              string `json:"weight" gorm:"type:varchar(50)"`
	OwnerName           string `json:"ownerName" gorm:"column:owner_name;type:varchar(255);not null"`
	OwnerPhone          string `json:"ownerPhone" gorm:"column:owner_phone;type:varchar(50);not null"`
	Status              string `json:"status" gorm:"type:varchar(50);default:'Healthy'"`
	Birthday            string `json:"birthday" gorm:"type:varchar(10)"`
	LastVaccinationDate string `json:"lastVaccinationDate" gorm:"column:last_vaccination_date;type:varchar(10)"`
	NextVaccinationDate string `json:"nextVaccinationDate" gorm:"column:next_vaccination_date;type:varchar(10)"`
	LastDewormingDate   string `json:"lastDewormingDate" gorm:"column:last_deworming_date;type:varchar(10)"`
	LastCheckupDate     string `json:"lastCheckupDate" gorm:"column:last_checkup_date;type:varchar(10)"`
	MedicalHistory      string `json:"-" gorm:"column:medical_history;type:text;default:'[]'"`

	CreatedAt time.Time `json:"-"`
}

// TableName specifies the table name for the Pet model
func (Pet) TableName() string {
	return "pets"
}

// Pet status values
const (
	PetStatusHealthy = "Healthy"
	PetStatusDueSoon = "Due Soon"
	PetStatusOverdue = "Overdue"
)

// UnknownValue is the default for descriptive fields that were not supplied.
const UnknownValue = "Unknown"

// CreatePetRequest represents the request to register a new pet.
// Only the HTTP surface enforces the required fields; ingestion paths
// (Excel, chat bot) fill what they can and rely on service defaults.
type CreatePetRequest struct {
	Name                string `json:"name" binding:"required" example:"Max"`
	OwnerName           string `json:"ownerName" binding:"required" example:"Sarah"`
	OwnerPhone          string `json:"ownerPhone" binding:"required" example:"08011112222"`
	Species             string `json:"species" binding:"required" example:"Dog"`
	Breed               string `json:"breed" example:"Golden Retriever"`
	Sex                 string `json:"sex" example:"Male"`
	Color               string `json:"color" example:"Golden"`
	Age                 string `json:"age" example:"3"`
	Weight              string `json:"weight" example:"28kg"`
	Status              string `json:"status" example:"Healthy"`
	Birthday            string `json:"birthday" example:"2022-04-01"`
	LastVaccinationDate string `json:"lastVaccinationDate" example:"2025-01-10"`
	NextVaccinationDate string `json:"nextVaccinationDate" example:"2026-01-10"`
	LastDewormingDate   string `json:"lastDewormingDate" example:"2025-06-01"`
	LastCheckupDate     string `json:"lastCheckupDate" example:"2025-06-01"`
}

// PetResponse represents a pet as returned to the dashboard.
// NextVaccinationDate is always populated: a missing stored value is
// materialized as today's date at read time, never written back.
type PetResponse struct {
	ID                  string `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Name                string `json:"name" example:"Max"`
	Species             string `json:"species" example:"Dog"`
	Breed               string `json:"breed" example:"Golden Retriever"`
	Sex                 string `json:"sex" example:"Male"`
	Color               string `json:"color" example:"Golden"`
	Age                 string `json:"age" example:"3"`
	Weight              string `json:"weight" example:"28kg"`
	OwnerName           string `json:"ownerName" example:"Sarah"`
	OwnerPhone          string `json:"ownerPhone" example:"08011112222"`
	Status              string `json:"status" example:"Healthy"`
	Birthday            string `json:"birthday,omitempty" example:"2022-04-01"`
	LastVaccinationDate string `json:"lastVaccinationDate,omitempty" example:"2025-01-10"`
	NextVaccinationDate string `json:"nextVaccinationDate" example:"2026-01-10"`
	LastDewormingDate   string `json:"lastDewormingDate,omitempty" example:"2025-06-01"`
	LastCheckupDate     string `json:"lastCheckupDate,omitempty" example:"2025-06-01"`
}
