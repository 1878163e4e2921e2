package telegram

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/kizunavet/clinic-services-backend/internal/config"
	"github.com/kizunavet/clinic-services-backend/internal/models"
)

const defaultTelegramBaseURL = "https://api.telegram.org"

// Extractor converts chat inputs into structured pet data; the Gemini
// service satisfies it.
type Extractor interface {
	ExtractFromImage(imageData []byte, mimeType string) *models.RecordExtraction
	ExtractFromVoice(audioData []byte, mimeType string) *models.VoiceExtraction
	ExtractBatchFromText(text string) []models.PetExtraction
}

// PetCreator registers one pet record; the pet service satisfies it.
type PetCreator interface {
	CreatePet(req *models.CreatePetRequest) (*models.PetResponse, error)
}

// BotService is the long-lived Telegram front-end. It polls getUpdates in its
// own goroutine beside the HTTP server and turns text, photo and voice
// messages into pet records. Bot-originated pets bypass the draft review
// queue entirely.
type BotService struct {
	BaseURL    string
	HTTPClient *http.Client
	LoadConfig func() config.Telegram

	extractor Extractor
	pets      PetCreator

	stopChan chan struct{}
}

func NewBotService(extractor Extractor, pets PetCreator) *BotService {
	return &BotService{
		BaseURL:    defaultTelegramBaseURL,
		HTTPClient: &http.Client{Timeout: 90 * time.Second},
		LoadConfig: config.LoadTelegram,
		extractor:  extractor,
		pets:       pets,
		stopChan:   make(chan struct{}),
	}
}

// Start begins polling in a background goroutine. Without a configured token
// the bot stays disabled.
func (s *BotService) Start() {
	if s.LoadConfig().Token == "" {
		logrus.Warn("TELEGRAM_BOT_TOKEN missing, Telegram bot disabled")
		return
	}
	go s.run()
	logrus.Info("Telegram bot started")
}

// Stop terminates the polling loop
func (s *BotService) Stop() {
	close(s.stopChan)
}

func (s *BotService) run() {
	var offset int64
	for {
		select {
		case <-s.stopChan:
			return
		default:
		}

		updates, err := s.getUpdates(offset)
		if err != nil {
			logrus.Errorf("Failed to poll Telegram updates: %v", err)
			time.Sleep(5 * time.Second)
			continue
		}

		for _, update := range updates {
			offset = update.UpdateID + 1
			if update.Message == nil {
				continue
			}
			s.dispatch(update.Message)
		}
	}
}

func (s *BotService) dispatch(msg *message) {
	switch {
	case len(msg.Photo) > 0:
		s.handlePhoto(msg)
	case msg.Voice != nil:
		s.handleVoice(msg)
	case msg.Text != "":
		s.handleText(msg)
	}
}

const welcomeText = `🌟 Welcome to Kizuna AI 🌟
Your Premium Veterinary Companion

I'm ready to help you digitize your clinic! You can use me for:

📸 Photo Entry: Snap a picture of medical records.
🎙️ Voice Notes: Say "Add a dog named Max, owner is Sarah..."
✍️ Text Entry: Paste or type multiple pet records.

I will process your records and they will appear on your dashboard instantly! 🚀`

const helpText = `📖 How to use Kizuna AI

Batch Entry: Just type details for multiple pets in one message.
Voice: Send a voice note describing the patients.
Photo: Send a photo of a vaccination card.`

func (s *BotService) handleText(msg *message) {
	switch msg.Text {
	case "/start":
		s.reply(msg.Chat.ID, welcomeText)
		return
	case "/help":
		s.reply(msg.Chat.ID, helpText)
		return
	}

	// Too short to carry a pet record
	if len(msg.Text) < 10 {
		return
	}

	s.reply(msg.Chat.ID, "Processing your request... ✍️")

	extractions := s.extractor.ExtractBatchFromText(msg.Text)
	if len(extractions) == 0 {
		s.reply(msg.Chat.ID, "🤔 I couldn't extract patient data from that. Try being more specific with names and details.")
		return
	}

	count := 0
	for _, entry := range extractions {
		req := &models.CreatePetRequest{
			Name:                entry.Name,
			OwnerName:           entry.OwnerName,
			OwnerPhone:          entry.OwnerPhone,
			Species:             entry.Species,
			Breed:               entry.Breed,
			Age:                 entry.Age,
			Status:              entry.Status,
			NextVaccinationDate: entry.NextVaccinationDate,
		}
		if _, err := s.pets.CreatePet(req); err != nil {
			logrus.Errorf("Failed to save extracted pet %q: %v", entry.Name, err)
			continue
		}
		count++
	}

	if count > 0 {
		s.reply(msg.Chat.ID, fmt.Sprintf("✅ Successfully added %d patients to your dashboard!", count))
	} else {
		s.reply(msg.Chat.ID, "❌ Failed to save entries. Please check the format.")
	}
}

func (s *BotService) handlePhoto(msg *message) {
	s.reply(msg.Chat.ID, "Analyzing the image... one moment please 🔍")

	// Largest size is last
	fileID := msg.Photo[len(msg.Photo)-1].FileID
	data, err := s.downloadFile(fileID)
	if err != nil {
		logrus.Errorf("Failed to download photo: %v", err)
		s.reply(msg.Chat.ID, "Sorry, something went wrong while processing the image.")
		return
	}

	extraction := s.extractor.ExtractFromImage(data, "image/jpeg")
	if extraction == nil {
		s.reply(msg.Chat.ID, "I couldn't read much from that photo. Try taking a clearer one! 📸")
		return
	}

	req := &models.CreatePetRequest{
		Name:                extraction.PetName,
		OwnerName:           extraction.OwnerName,
		OwnerPhone:          extraction.OwnerPhone,
		Species:             extraction.Species,
		Breed:               extraction.Breed,
		LastVaccinationDate: extraction.LastVaccination,
		NextVaccinationDate: extraction.NextVaccination,
	}
	pet, err := s.pets.CreatePet(req)
	if err != nil {
		logrus.Errorf("Failed to save extracted record: %v", err)
		s.reply(msg.Chat.ID, "Failed to save the extracted data.")
		return
	}

	nextDue := pet.NextVaccinationDate
	if nextDue == "" {
		nextDue = "?"
	}
	s.reply(msg.Chat.ID, fmt.Sprintf("✅ Record saved to dashboard!\n\nPet: %s\nOwner: %s\nNext Due: %s",
		pet.Name, pet.OwnerName, nextDue))
}

func (s *BotService) handleVoice(msg *message) {
	s.reply(msg.Chat.ID, "Listening to your voice note... 👂")

	data, err := s.downloadFile(msg.Voice.FileID)
	if err != nil {
		logrus.Errorf("Failed to download voice note: %v", err)
		s.reply(msg.Chat.ID, "Sorry, problem hearing that voice note.")
		return
	}

	extraction := s.extractor.ExtractFromVoice(data, "audio/ogg")
	if extraction == nil {
		s.reply(msg.Chat.ID, "I couldn't understand that voice note. Can you try again? 🎙️")
		return
	}

	req := &models.CreatePetRequest{
		Name:       extraction.PetName,
		OwnerName:  extraction.OwnerName,
		OwnerPhone: extraction.OwnerPhone,
		Species:    extraction.Species,
		Status:     models.PetStatusHealthy,
	}
	pet, err := s.pets.CreatePet(req)
	if err != nil {
		logrus.Errorf("Failed to save voice record: %v", err)
		s.reply(msg.Chat.ID, "Extracted info but failed to save.")
		return
	}

	s.reply(msg.Chat.ID, fmt.Sprintf("✅ Added %s (Owner: %s) to your dashboard!", pet.Name, pet.OwnerName))
}

// --- Telegram Bot API wire types and calls ---

type update struct {
	UpdateID int64    `json:"update_id"`
	Message  *message `json:"message"`
}

type message struct {
	MessageID int64       `json:"message_id"`
	Chat      chat        `json:"chat"`
	Text      string      `json:"text"`
	Photo     []photoSize `json:"photo"`
	Voice     *voice      `json:"voice"`
}

type chat struct {
	ID int64 `json:"id"`
}

type photoSize struct {
	FileID string `json:"file_id"`
}

type voice struct {
	FileID string `json:"file_id"`
}

type updatesResponse struct {
	OK     bool     `json:"ok"`
	Result []update `json:"result"`
}

type fileResponse struct {
	OK     bool `json:"ok"`
	Result struct {
		FilePath string `json:"file_path"`
	} `json:"result"`
}

func (s *BotService) getUpdates(offset int64) ([]update, error) {
	token := s.LoadConfig().Token
	endpoint := fmt.Sprintf("%s/bot%s/getUpdates?timeout=30&offset=%d", s.BaseURL, token, offset)

	resp, err := s.HTTPClient.Get(endpoint)
	if err != nil {
		return nil, fmt.Errorf("getUpdates request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read getUpdates response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("getUpdates returned status %d: %s", resp.StatusCode, string(body))
	}

	var parsed updatesResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse getUpdates response: %w", err)
	}
	if !parsed.OK {
		return nil, fmt.Errorf("getUpdates reported not ok: %s", string(body))
	}
	return parsed.Result, nil
}

func (s *BotService) reply(chatID int64, text string) {
	token := s.LoadConfig().Token
	endpoint := fmt.Sprintf("%s/bot%s/sendMessage", s.BaseURL, token)

	payload, err := json.Marshal(map[string]interface{}{
		"chat_id": chatID,
		"text":    text,
	})
	if err != nil {
		logrus.Errorf("Failed to marshal sendMessage payload: %v", err)
		return
	}

	resp, err := s.HTTPClient.Post(endpoint, "application/json", bytes.NewBuffer(payload))
	if err != nil {
		logrus.Errorf("Failed to send Telegram reply: %v", err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		logrus.Errorf("sendMessage returned status %d: %s", resp.StatusCode, string(body))
	}
}

// downloadFile resolves a Telegram file id and fetches its content
func (s *BotService) downloadFile(fileID string) ([]byte, error) {
	token := s.LoadConfig().Token
	endpoint := fmt.Sprintf("%s/bot%s/getFile?file_id=%s", s.BaseURL, token, url.QueryEscape(fileID))

	resp, err := s.HTTPClient.Get(endpoint)
	if err != nil {
		return nil, fmt.Errorf("getFile request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read getFile response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("getFile returned status %d: %s", resp.StatusCode, string(body))
	}

	var parsed fileResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse getFile response: %w", err)
	}
	if !parsed.OK || parsed.Result.FilePath == "" {
		return nil, fmt.Errorf("getFile reported no file path")
	}

	fileURL := fmt.Sprintf("%s/file/bot%s/%s", s.BaseURL, token, parsed.Result.FilePath)
	fileResp, err := s.HTTPClient.Get(fileURL)
	if err != nil {
		return nil, fmt.Errorf("file download failed: %w", err)
	}
	defer fileResp.Body.Close()

	if fileResp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("file download returned status %d", fileResp.StatusCode)
	}
	return io.ReadAll(fileResp.Body)
}
