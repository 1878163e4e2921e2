package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/kizunavet/clinic-services-backend/internal/config"
	"github.com/kizunavet/clinic-services-backend/internal/models"
)

const defaultKapsoBaseURL = "https://api.kapso.ai/meta/whatsapp"

// WhatsAppService sends text messages through the Kapso WhatsApp API.
// Credentials are snapshotted per send so key changes in the environment
// take effect without a restart.
type WhatsAppService struct {
	BaseURL    string
	HTTPClient *http.Client
	LoadConfig func() config.Messaging
}

func NewWhatsAppService() *WhatsAppService {
	return &WhatsAppService{
		BaseURL:    defaultKapsoBaseURL,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
		LoadConfig: config.LoadMessaging,
	}
}

type whatsAppPayload struct {
	MessagingProduct string       `json:"messaging_product"`
	RecipientType    string       `json:"recipient_type"`
	To               string       `json:"to"`
	Type             string       `json:"type"`
	Text             whatsAppText `json:"text"`
}

type whatsAppText struct {
	Body string `json:"body"`
}

type whatsAppResponse struct {
	Messages []struct {
		ID string `json:"id"`
	} `json:"messages"`
}

// Send delivers one text message to one phone number. Placeholder or missing
// credentials are rejected before any network call; a non-2xx response is a
// failure carrying the raw response body as the reason. Exactly one attempt
// is made per invocation.
func (s *WhatsAppService) Send(to, message string) models.SendResult {
	cfg := s.LoadConfig()

	if config.IsPlaceholder(cfg.APIKey) {
		return models.SendResult{Error: "KAPSO_API_KEY is missing or contains placeholder text in .env"}
	}
	if config.IsPlaceholder(cfg.PhoneNumberID) {
		return models.SendResult{Error: "KAPSO_PHONE_NUMBER_ID is missing or contains placeholder text in .env"}
	}

	recipient := NormalizePhone(to)
	url := fmt.Sprintf("%s/%s/%s/messages", s.BaseURL, cfg.Version, cfg.PhoneNumberID)

	payload := whatsAppPayload{
		MessagingProduct: "whatsapp",
		RecipientType:    "individual",
		To:               recipient,
		Type:             "text",
		Text:             whatsAppText{Body: message},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return models.SendResult{Error: fmt.Sprintf("failed to marshal message payload: %v", err)}
	}

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return models.SendResult{Error: fmt.Sprintf("failed to create request: %v", err)}
	}
	req.Header.Set("Authorization", "Bearer "+cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.HTTPClient.Do(req)
	if err != nil {
		logrus.Errorf("Kapso connection error: %v", err)
		return models.SendResult{Error: err.Error()}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.SendResult{Error: fmt.Sprintf("failed to read response body: %v", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logrus.Errorf("Kapso API error (%d): %s", resp.StatusCode, string(respBody))
		return models.SendResult{Error: string(respBody)}
	}

	var parsed whatsAppResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		logrus.Warnf("Kapso response was not valid JSON: %v", err)
		return models.SendResult{Success: true}
	}

	result := models.SendResult{Success: true}
	if len(parsed.Messages) > 0 {
		result.MessageID = parsed.Messages[0].ID
	}
	return result
}

// NormalizePhone strips the leading "+" and any "whatsapp:" scheme prefix
// from a destination number.
func NormalizePhone(to string) string {
	cleaned := strings.TrimSpace(to)
	cleaned = strings.TrimPrefix(cleaned, "whatsapp:")
	cleaned = strings.ReplaceAll(cleaned, "+", "")
	return strings.TrimSpace(cleaned)
}
