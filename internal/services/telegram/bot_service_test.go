package telegram

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kizunavet/clinic-services-backend/internal/config"
	"github.com/kizunavet/clinic-services-backend/internal/models"
)

type fakeExtractor struct {
	image *models.RecordExtraction
	voice *models.VoiceExtraction
	batch []models.PetExtraction
}

func (f *fakeExtractor) ExtractFromImage(imageData []byte, mimeType string) *models.RecordExtraction {
	return f.image
}

func (f *fakeExtractor) ExtractFromVoice(audioData []byte, mimeType string) *models.VoiceExtraction {
	return f.voice
}

func (f *fakeExtractor) ExtractBatchFromText(text string) []models.PetExtraction {
	return f.batch
}

type fakePetCreator struct {
	requests []*models.CreatePetRequest
}

func (f *fakePetCreator) CreatePet(req *models.CreatePetRequest) (*models.PetResponse, error) {
	f.requests = append(f.requests, req)
	return &models.PetResponse{
		ID:                  "p1",
		Name:                req.Name,
		OwnerName:           req.OwnerName,
		NextVaccinationDate: req.NextVaccinationDate,
	}, nil
}

// telegramStub mimics the Bot API endpoints the service talks to and records
// every sendMessage body.
type telegramStub struct {
	replies []string
}

func (ts *telegramStub) handler(t *testing.T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasSuffix(r.URL.Path, "/sendMessage"):
			var payload struct {
				Text string `json:"text"`
			}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			ts.replies = append(ts.replies, payload.Text)
			w.Write([]byte(`{"ok":true}`))
		case strings.HasSuffix(r.URL.Path, "/getFile"):
			w.Write([]byte(`{"ok":true,"result":{"file_path":"photos/file_1.jpg"}}`))
		case strings.Contains(r.URL.Path, "/file/bot"):
			w.Write([]byte("binary-content"))
		default:
			t.Fatalf("unexpected Telegram API call: %s", r.URL.Path)
		}
	}
}

func newBotFixture(t *testing.T, extractor *fakeExtractor) (*BotService, *fakePetCreator, *telegramStub) {
	t.Helper()
	stub := &telegramStub{}
	server := httptest.NewServer(stub.handler(t))
	t.Cleanup(server.Close)

	pets := &fakePetCreator{}
	bot := NewBotService(extractor, pets)
	bot.BaseURL = server.URL
	bot.LoadConfig = func() config.Telegram {
		return config.Telegram{Token: "12345:abcdef"}
	}
	return bot, pets, stub
}

func TestHandleTextStartCommand(t *testing.T) {
	bot, pets, stub := newBotFixture(t, &fakeExtractor{})

	bot.handleText(&message{Chat: chat{ID: 7}, Text: "/start"})

	require.Len(t, stub.replies, 1)
	assert.Contains(t, stub.replies[0], "Welcome to Kizuna AI")
	assert.Empty(t, pets.requests)
}

func TestHandleTextIgnoresShortMessages(t *testing.T) {
	bot, pets, stub := newBotFixture(t, &fakeExtractor{})

	bot.handleText(&message{Chat: chat{ID: 7}, Text: "hi there"})

	assert.Empty(t, stub.replies)
	assert.Empty(t, pets.requests)
}

func TestHandleTextCreatesExtractedPets(t *testing.T) {
	extractor := &fakeExtractor{batch: []models.PetExtraction{
		{Name: "Max", OwnerName: "Sarah", OwnerPhone: "08011112222", Species: "Dog"},
		{Name: "Bella", OwnerName: "John", Species: "Cat"},
	}}
	bot, pets, stub := newBotFixture(t, extractor)

	bot.handleText(&message{Chat: chat{ID: 7}, Text: "Max a dog owned by Sarah, Bella a cat owned by John"})

	require.Len(t, pets.requests, 2)
	assert.Equal(t, "Max", pets.requests[0].Name)
	assert.Equal(t, "08011112222", pets.requests[0].OwnerPhone)

	require.Len(t, stub.replies, 2)
	assert.Contains(t, stub.replies[0], "Processing your request")
	assert.Equal(t, "✅ Successfully added 2 patients to your dashboard!", stub.replies[1])
}

func TestHandleTextNoExtractions(t *testing.T) {
	bot, pets, stub := newBotFixture(t, &fakeExtractor{})

	bot.handleText(&message{Chat: chat{ID: 7}, Text: "the weather is quite nice today"})

	assert.Empty(t, pets.requests)
	require.Len(t, stub.replies, 2)
	assert.Contains(t, stub.replies[1], "couldn't extract patient data")
}

func TestHandlePhotoSavesRecord(t *testing.T) {
	extractor := &fakeExtractor{image: &models.RecordExtraction{
		PetName:         "Max",
		Species:         "Dog",
		OwnerName:       "Sarah",
		NextVaccination: "2026-09-15",
	}}
	bot, pets, stub := newBotFixture(t, extractor)

	bot.handlePhoto(&message{
		Chat:  chat{ID: 7},
		Photo: []photoSize{{FileID: "small"}, {FileID: "large"}},
	})

	require.Len(t, pets.requests, 1)
	assert.Equal(t, "Max", pets.requests[0].Name)
	assert.Equal(t, "2026-09-15", pets.requests[0].NextVaccinationDate)

	require.Len(t, stub.replies, 2)
	assert.Contains(t, stub.replies[1], "Record saved to dashboard")
	assert.Contains(t, stub.replies[1], "Next Due: 2026-09-15")
}

func TestHandlePhotoUnreadableImage(t *testing.T) {
	bot, pets, stub := newBotFixture(t, &fakeExtractor{})

	bot.handlePhoto(&message{Chat: chat{ID: 7}, Photo: []photoSize{{FileID: "f1"}}})

	assert.Empty(t, pets.requests)
	require.Len(t, stub.replies, 2)
	assert.Contains(t, stub.replies[1], "couldn't read much from that photo")
}

func TestHandleVoiceSavesRecord(t *testing.T) {
	extractor := &fakeExtractor{voice: &models.VoiceExtraction{
		PetName:   "Rocky",
		OwnerName: "Ana",
		Species:   "Dog",
		Action:    "add_pet",
	}}
	bot, pets, stub := newBotFixture(t, extractor)

	bot.handleVoice(&message{Chat: chat{ID: 7}, Voice: &voice{FileID: "v1"}})

	require.Len(t, pets.requests, 1)
	assert.Equal(t, "Rocky", pets.requests[0].Name)
	assert.Equal(t, models.PetStatusHealthy, pets.requests[0].Status)

	require.Len(t, stub.replies, 2)
	assert.Equal(t, "✅ Added Rocky (Owner: Ana) to your dashboard!", stub.replies[1])
}

func TestStartStaysDisabledWithoutToken(t *testing.T) {
	bot := NewBotService(&fakeExtractor{}, &fakePetCreator{})
	bot.LoadConfig = func() config.Telegram { return config.Telegram{} }

	// Must not panic or spin up a poller against the real API
	bot.Start()
	bot.Stop()
}

func TestDispatchRoutesByContent(t *testing.T) {
	extractor := &fakeExtractor{voice: &models.VoiceExtraction{PetName: "Rocky", OwnerName: "Ana"}}
	bot, pets, _ := newBotFixture(t, extractor)

	bot.dispatch(&message{Chat: chat{ID: 7}, Voice: &voice{FileID: "v1"}})

	require.Len(t, pets.requests, 1)
	assert.Equal(t, "Rocky", pets.requests[0].Name)
}
