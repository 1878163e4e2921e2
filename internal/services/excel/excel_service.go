package excel

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	"github.com/kizunavet/clinic-services-backend/internal/models"
)

// PetCreator registers one pet record; the pet service satisfies it.
type PetCreator interface {
	CreatePet(req *models.CreatePetRequest) (*models.PetResponse, error)
}

// Service imports pet records from uploaded spreadsheets
type Service struct {
	pets PetCreator
}

// NewImportService creates a new Excel import service
func NewImportService(pets PetCreator) *Service {
	return &Service{pets: pets}
}

// ImportResult contains the result of an import operation
type ImportResult struct {
	Success bool `json:"success"`
	Count   int  `json:"count"`
}

// headerAliases maps common spreadsheet column headers onto pet fields.
// Unrecognized columns are ignored.
var headerAliases = map[string]string{
	"Pet Name":    "name",
	"Pet":         "name",
	"Name":        "name",
	"Owner Name":  "ownerName",
	"Owner":       "ownerName",
	"Phone":       "ownerPhone",
	"Owner Phone": "ownerPhone",
	"WhatsApp":    "ownerPhone",
	"Species":     "species",
	"Type":        "species",
	"Breed":       "breed",
	"Age":         "age",
	"Next Visit":  "nextVaccinationDate",
	"Next Vax":    "nextVaccinationDate",
}

// ImportPets reads the first sheet of an xlsx file and creates one pet per
// data row. Missing fields default to "Unknown" through the pet service.
func (s *Service) ImportPets(reader io.Reader) (*ImportResult, error) {
	f, err := excelize.OpenReader(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to open spreadsheet: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("spreadsheet contains no sheets")
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return &ImportResult{Success: true, Count: 0}, nil
	}

	// Resolve the header row into field positions
	fieldByColumn := make(map[int]string)
	for i, header := range rows[0] {
		if field, ok := headerAliases[strings.TrimSpace(header)]; ok {
			fieldByColumn[i] = field
		}
	}

	count := 0
	for _, row := range rows[1:] {
		req := rowToRequest(row, fieldByColumn)
		if req.Name == "" && req.OwnerName == "" {
			continue // skip blank rows
		}

		if _, err := s.pets.CreatePet(req); err != nil {
			return nil, fmt.Errorf("failed to import row %d: %w", count+2, err)
		}
		count++
	}

	logrus.Infof("Imported %d pets from spreadsheet", count)
	return &ImportResult{Success: true, Count: count}, nil
}

func rowToRequest(row []string, fieldByColumn map[int]string) *models.CreatePetRequest {
	req := &models.CreatePetRequest{}
	for i, field := range fieldByColumn {
		if i >= len(row) {
			continue
		}
		value := strings.TrimSpace(row[i])
		if value == "" {
			continue
		}

		switch field {
		case "name":
			req.Name = value
		case "ownerName":
			req.OwnerName = value
		case "ownerPhone":
			req.OwnerPhone = value
		case "species":
			req.Species = value
		case "breed":
			req.Breed = value
		case "age":
			req.Age = value
		case "nextVaccinationDate":
			req.NextVaccinationDate = value
		}
	}
	return req
}
