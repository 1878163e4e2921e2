package excel

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/kizunavet/clinic-services-backend/internal/models"
)

type fakePetCreator struct {
	requests []*models.CreatePetRequest
}

func (f *fakePetCreator) CreatePet(req *models.CreatePetRequest) (*models.PetResponse, error) {
	f.requests = append(f.requests, req)
	return &models.PetResponse{ID: "p1", Name: req.Name}, nil
}

func buildSheet(t *testing.T, rows [][]string) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return &buf
}

func TestImportPetsMapsHeaderAliases(t *testing.T) {
	creator := &fakePetCreator{}
	service := NewImportService(creator)

	buf := buildSheet(t, [][]string{
		{"Pet Name", "Owner", "WhatsApp", "Type", "Breed", "Age", "Next Visit"},
		{"Max", "Sarah", "08011112222", "Dog", "Labrador", "4", "2026-09-15"},
		{"Bella", "John", "08033334444", "Cat", "", "2", ""},
	})

	result, err := service.ImportPets(buf)
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, 2, result.Count)
	require.Len(t, creator.requests, 2)

	first := creator.requests[0]
	assert.Equal(t, "Max", first.Name)
	assert.Equal(t, "Sarah", first.OwnerName)
	assert.Equal(t, "08011112222", first.OwnerPhone)
	assert.Equal(t, "Dog", first.Species)
	assert.Equal(t, "Labrador", first.Breed)
	assert.Equal(t, "2026-09-15", first.NextVaccinationDate)

	second := creator.requests[1]
	assert.Equal(t, "Bella", second.Name)
	assert.Empty(t, second.Breed)
}

func TestImportPetsSkipsBlankRows(t *testing.T) {
	creator := &fakePetCreator{}
	service := NewImportService(creator)

	buf := buildSheet(t, [][]string{
		{"Name", "Owner Name", "Phone"},
		{"Max", "Sarah", "08011112222"},
		{"", "", ""},
		{"Bella", "John", "08033334444"},
	})

	result, err := service.ImportPets(buf)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Count)
	assert.Len(t, creator.requests, 2)
}

func TestImportPetsIgnoresUnknownColumns(t *testing.T) {
	creator := &fakePetCreator{}
	service := NewImportService(creator)

	buf := buildSheet(t, [][]string{
		{"Name", "Owner", "Favourite Toy"},
		{"Max", "Sarah", "squeaky bone"},
	})

	result, err := service.ImportPets(buf)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Count)
	assert.Equal(t, "Max", creator.requests[0].Name)
}

func TestImportPetsRejectsNonSpreadsheetInput(t *testing.T) {
	service := NewImportService(&fakePetCreator{})

	_, err := service.ImportPets(bytes.NewBufferString("not a spreadsheet"))
	assert.Error(t, err)
}

func TestImportPetsHeaderOnlySheet(t *testing.T) {
	creator := &fakePetCreator{}
	service := NewImportService(creator)

	buf := buildSheet(t, [][]string{
		{"Name", "Owner"},
	})

	result, err := service.ImportPets(buf)
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, 0, result.Count)
	assert.Empty(t, creator.requests)
}
