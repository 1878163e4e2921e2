package services

import (
	"bytes"
	"encoding/base64"
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

const (
	defaultGeminiBaseURL = "https://generativelanguage.googleapis.com"
	geminiModel          = "gemini-1.5-flash"
)

// GeminiService drafts reminder text and extracts structured pet data via the
// Gemini generateContent API. Every operation degrades to a deterministic
// fallback — a templated sentence or an empty result — instead of surfacing
// the underlying failure to the caller.
type GeminiService struct {
	BaseURL    string
	HTTPClient *http.Client
	LoadConfig func() config.AI
}

func NewGeminiService() *GeminiService {
	return &GeminiService{
		BaseURL:    defaultGeminiBaseURL,
		HTTPClient: &http.Client{Timeout: 2 * time.Minute},
		LoadConfig: config.LoadAI,
	}
}

// GenerateReminder drafts a short WhatsApp reminder mentioning the pet's name
// and carrying the booking link. On any failure it returns a canonical
// templated sentence satisfying the same constraints; it never errors.
func (s *GeminiService) GenerateReminder(req *models.ReminderGenerateRequest) string {
	tone := req.Tone
	if tone == "" {
		tone = "friendly"
	}

	prompt := fmt.Sprintf(`You are an AI assistant for a veterinary clinic called %s.
Draft a %s, professional, and concise WhatsApp reminder for %s, the owner of %s.
The reminder is for: %s.
Include this booking link: %s

Guidelines:
- Keep it under 200 characters.
- Use emojis to make it relevant to the tone.
- Sound %s and caring.
- Mention the pet's name.`,
		req.ClinicName, tone, req.OwnerName, req.PetName, req.Type, req.BookingURL, tone)

	text, err := s.generateContent(prompt, nil)
	if err != nil {
		logrus.Errorf("Failed to generate reminder: %v", err)
		return fmt.Sprintf("Hi %s, this is a friendly reminder that %s is due for a %s at %s. Book here: %s 🐾",
			req.OwnerName, req.PetName, req.Type, req.ClinicName, req.BookingURL)
	}
	return strings.TrimSpace(text)
}

// SummarizeAnalytics turns a stats mapping into a short encouraging summary.
// Falls back to a fixed sentence on failure; never errors.
func (s *GeminiService) SummarizeAnalytics(stats map[string]interface{}) string {
	statsJSON, err := json.Marshal(stats)
	if err != nil {
		statsJSON = []byte("{}")
	}

	prompt := fmt.Sprintf(`Summarize these veterinary clinic performance stats and provide one actionable tip to improve revenue or retention:
%s

Keep the summary encouraging and under 3 sentences.`, string(statsJSON))

	text, err := s.generateContent(prompt, nil)
	if err != nil {
		logrus.Errorf("Failed to generate analytics summary: %v", err)
		return "Your clinic is performing well! Consider sending more reminders to increase bookings."
	}
	return strings.TrimSpace(text)
}

// ExtractFromImage reads a photographed vaccination card into a structured
// record. Returns nil when the model fails or its output is unparsable.
func (s *GeminiService) ExtractFromImage(imageData []byte, mimeType string) *models.RecordExtraction {
	prompt := `Look at this veterinary record/vaccination card and extract the following information in JSON format:
{
    "pet_name": string,
    "species": string,
    "breed": string,
    "owner_name": string,
    "last_vaccination": date (YYYY-MM-DD),
    "next_vaccination": date (YYYY-MM-DD),
    "notes": string
}
If any field is missing, use null. Re-check the dates carefully.`

	text, err := s.generateContent(prompt, &inlineData{MimeType: mimeType, Data: imageData})
	if err != nil {
		logrus.Errorf("Failed to extract data from image: %v", err)
		return nil
	}

	var extraction models.RecordExtraction
	if err := json.Unmarshal([]byte(extractJSONObject(text)), &extraction); err != nil {
		logrus.Warnf("Image extraction output was not parsable JSON: %v", err)
		return nil
	}
	return &extraction
}

// ExtractFromVoice transcribes a staff voice note into structured pet
// information. Returns nil when the model fails or its output is unparsable.
func (s *GeminiService) ExtractFromVoice(audioData []byte, mimeType string) *models.VoiceExtraction {
	prompt := `Listen to this voice note from a veterinarian or clinic staff and extract pet information in JSON format:
{
    "pet_name": string,
    "owner_name": string,
    "owner_phone": string,
    "species": string,
    "action": "reminder" | "add_pet" | "update",
    "details": string
}`

	text, err := s.generateContent(prompt, &inlineData{MimeType: mimeType, Data: audioData})
	if err != nil {
		logrus.Errorf("Failed to process voice note: %v", err)
		return nil
	}

	var extraction models.VoiceExtraction
	if err := json.Unmarshal([]byte(extractJSONObject(text)), &extraction); err != nil {
		logrus.Warnf("Voice extraction output was not parsable JSON: %v", err)
		return nil
	}
	return &extraction
}

// ExtractBatchFromText pulls every pet/owner entry out of a free-text block.
// Returns an empty slice when the model fails or its output is unparsable.
func (s *GeminiService) ExtractBatchFromText(text string) []models.PetExtraction {
	prompt := fmt.Sprintf(`You are a veterinary assistant. Extract all pet and owner information from the following text and return it as a JSON list of objects.

Text:
"""
%s
"""

Each object in the list should have:
{
    "name": string (pet name),
    "ownerName": string,
    "ownerPhone": string,
    "species": string (e.g. Dog, Cat),
    "breed": string,
    "age": string,
    "status": string (Healthy, Due Soon, Overdue),
    "nextVaccinationDate": string (YYYY-MM-DD or null)
}

Return ONLY the raw JSON list. No markdown, no explanations.`, text)

	output, err := s.generateContent(prompt, nil)
	if err != nil {
		logrus.Errorf("Failed to extract batch entries: %v", err)
		return []models.PetExtraction{}
	}

	var extractions []models.PetExtraction
	if err := json.Unmarshal([]byte(stripCodeFences(output)), &extractions); err != nil {
		logrus.Warnf("Batch extraction output was not parsable JSON: %v", err)
		return []models.PetExtraction{}
	}
	return extractions
}

type inlineData struct {
	MimeType string
	Data     []byte
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inline_data,omitempty"`
}

type geminiInlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// generateContent performs one generateContent call and returns the first
// candidate's text.
func (s *GeminiService) generateContent(prompt string, media *inlineData) (string, error) {
	cfg := s.LoadConfig()
	if cfg.APIKey == "" {
		return "", fmt.Errorf("GEMINI_API_KEY is not set")
	}

	parts := []geminiPart{{Text: prompt}}
	if media != nil {
		parts = append(parts, geminiPart{InlineData: &geminiInlineData{
			MimeType: media.MimeType,
			Data:     base64.StdEncoding.EncodeToString(media.Data),
		}})
	}

	body, err := json.Marshal(geminiRequest{Contents: []geminiContent{{Parts: parts}}})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request body: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", s.BaseURL, geminiModel, cfg.APIKey)
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call Gemini API: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("Gemini API returned status %d: %s", resp.StatusCode, string(respBody))
	}

	var parsed geminiResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("failed to parse Gemini response: %w", err)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("Gemini response contained no candidates")
	}

	return parsed.Candidates[0].Content.Parts[0].Text, nil
}

// extractJSONObject returns the widest {...} span in the model output, which
// tolerates prose or markdown fences around the JSON payload.
func extractJSONObject(text string) string {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end < start {
		return text
	}
	return text[start : end+1]
}

// stripCodeFences removes a surrounding ```json ... ``` or ``` ... ``` block.
func stripCodeFences(text string) string {
	trimmed := strings.TrimSpace(text)
	if strings.HasPrefix(trimmed, "```json") {
		trimmed = strings.TrimPrefix(trimmed, "```json")
	} else if strings.HasPrefix(trimmed, "```") {
		trimmed = strings.TrimPrefix(trimmed, "```")
	} else {
		return trimmed
	}
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}
