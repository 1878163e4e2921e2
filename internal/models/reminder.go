package models

// ReminderGenerateRequest asks the AI drafting service for a personalized
// reminder message
type ReminderGenerateRequest struct {
	PetName    string `json:"petName" binding:"required" example:"Max"`
	OwnerName  string `json:"ownerName" binding:"required" example:"Sarah"`
	ClinicName string `json:"clinicName" binding:"required" example:"Kizuna Vet Center"`
	Type       string `json:"type" binding:"required" example:"annual vaccination"`
	BookingURL string `json:"bookingUrl" binding:"required" example:"https://book.vet/kizuna"`
	Tone       string `json:"tone" example:"friendly"`
}

// ReminderGenerateResponse carries the drafted reminder text
type ReminderGenerateResponse struct {
	Message string `json:"message" example:"Hi Sarah, Max is due for a vaccination! 🐾"`
}

// ReminderSendRequest sends one message directly, bypassing the draft queue
type ReminderSendRequest struct {
	To      string `json:"to" binding:"required" example:"08011112222"`
	Message string `json:"message" binding:"required" example:"Hi Sarah, Max is due!"`
	PetID   string `json:"petId" example:"550e8400-e29b-41d4-a716-446655440000"`
}

// SendResult is the messaging adapter's outcome: a message id on success or
// a human-readable reason on failure. Configuration problems are reported the
// same way, before any network attempt.
type SendResult struct {
	Success   bool   `json:"success"`
	MessageID string `json:"sid,omitempty"`
	Error     string `json:"error,omitempty"`
}

// RecordExtraction is the structured result of reading a photographed
// veterinary record. Every field is optional; empty means the model could not
// determine it.
type RecordExtraction struct {
	PetName         string `json:"pet_name"`
	Species         string `json:"species"`
	Breed           string `json:"breed"`
	OwnerName       string `json:"owner_name"`
	OwnerPhone      string `json:"owner_phone"`
	LastVaccination string `json:"last_vaccination"`
	NextVaccination string `json:"next_vaccination"`
	Notes           string `json:"notes"`
}

// VoiceExtraction is the structured result of transcribing a staff voice note
type VoiceExtraction struct {
	PetName    string `json:"pet_name"`
	OwnerName  string `json:"owner_name"`
	OwnerPhone string `json:"owner_phone"`
	Species    string `json:"species"`
	Action     string `json:"action"`
	Details    string `json:"details"`
}

// PetExtraction is one entry of a multi-pet free-text extraction
type PetExtraction struct {
	Name                string `json:"name"`
	OwnerName           string `json:"ownerName"`
	OwnerPhone          string `json:"ownerPhone"`
	Species             string `json:"species"`
	Breed               string `json:"breed"`
	Age                 string `json:"age"`
	Status              string `json:"status"`
	NextVaccinationDate string `json:"nextVaccinationDate"`
}
