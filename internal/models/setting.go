package models

// Setting is a flat key/value row. Writes always overwrite; reads return the
// whole map.
type Setting struct {
	Key   string `json:"key" gorm:"primaryKey;type:varchar(100)"`
	Value string `json:"value" gorm:"type:text"`
}

// TableName specifies the table name for the Setting model
func (Setting) TableName() string {
	return "settings"
}

// Well-known setting keys seeded at migration time
const (
	SettingClinicName    = "clinic_name"
	SettingBookingURL    = "booking_url"
	SettingKapsoAPIKey   = "kapso_api_key"
	SettingKapsoPhoneID  = "kapso_phone_id"
	SettingTelegramToken = "telegram_token"
	SettingAITone        = "ai_tone"
)
