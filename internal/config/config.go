package config

import (
	"os"
	"strings"
)

// Credentials are re-read from the environment on every snapshot so that a
// key dropped into .env (or updated through the settings portal restart flow)
// takes effect without a redeploy. Callers receive an immutable snapshot and
// never touch the environment themselves.

// Messaging holds the WhatsApp (Kapso) send credentials
type Messaging struct {
	APIKey        string
	PhoneNumberID string
	Version       string
}

// AI holds the generative-model credential
type AI struct {
	APIKey string
}

// Telegram holds the inbound bot credential
type Telegram struct {
	Token string
}

// LoadMessaging snapshots the Kapso credentials from the environment
func LoadMessaging() Messaging {
	return Messaging{
		APIKey:        strings.TrimSpace(os.Getenv("KAPSO_API_KEY")),
		PhoneNumberID: strings.TrimSpace(os.Getenv("KAPSO_PHONE_NUMBER_ID")),
		Version:       getEnv("KAPSO_VERSION", "v21.0"),
	}
}

// LoadAI snapshots the Gemini credential from the environment
func LoadAI() AI {
	return AI{APIKey: strings.TrimSpace(os.Getenv("GEMINI_API_KEY"))}
}

// LoadTelegram snapshots the Telegram bot credential from the environment
func LoadTelegram() Telegram {
	return Telegram{Token: strings.TrimSpace(os.Getenv("TELEGRAM_BOT_TOKEN"))}
}

// IsPlaceholder reports whether a credential is absent or still carries the
// sample-text tokens shipped in .env.example ("your_...", "...id_here").
func IsPlaceholder(value string) bool {
	return value == "" || strings.Contains(value, "your_") || strings.Contains(value, "id_here")
}

// Configured reports whether the messaging credentials are usable
func (m Messaging) Configured() bool {
	return !IsPlaceholder(m.APIKey) && !IsPlaceholder(m.PhoneNumberID)
}

func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}
