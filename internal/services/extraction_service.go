package services

import (
	"errors"
	"log"

	"github.com/brewlog-app/brewlog/internal/models"
	"github.com/brewlog-app/brewlog/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrExtractionNotFound = errors.New("extraction not found")
	ErrInvalidBrewRating  = errors.New("extraction rating must be between 1 and 5")
)

type ExtractionService struct {
	extractionRepo *repository.ExtractionRepository
}

func NewExtractionService(extractionRepo *repository.ExtractionRepository) *ExtractionService {
	return &ExtractionService{extractionRepo: extractionRepo}
}

// GetExtractions lists the current user's brew log newest-date-first. An
// unauthenticated caller gets an empty list.
func (s *ExtractionService) GetExtractions(userID string) ([]models.CoffeeExtraction, error) {
	if userID == "" {
		return []models.CoffeeExtraction{}, nil
	}

	extractions, err := s.extractionRepo.FindAllByUser(userID)
	if err != nil {
		log.Printf("Error fetching extractions: %v", err)
		return nil, err
	}
	return extractions, nil
}

func (s *ExtractionService) GetExtraction(userID, id string) (*models.CoffeeExtraction, error) {
	extraction, err := s.extractionRepo.FindByID(id, userID)
	if err != nil {
		log.Printf("Error fetching extraction: %v", err)
		return nil, err
	}
	if extraction == nil {
		return nil, ErrExtractionNotFound
	}
	return extraction, nil
}

func (s *ExtractionService) CreateExtraction(userID string, extraction *models.CoffeeExtraction) (*models.CoffeeExtraction, error) {
	if userID == "" {
		return nil, ErrNotLoggedIn
	}
	if extraction.Rating < 1 || extraction.Rating > 5 {
		return nil, ErrInvalidBrewRating
	}

	extraction.ID = uuid.NewString()
	extraction.UserID = userID

	if err := s.extractionRepo.Create(extraction); err != nil {
		log.Printf("Error adding extraction: %v", err)
		return nil, err
	}
	return extraction, nil
}

func (s *ExtractionService) UpdateExtraction(userID string, extraction *models.CoffeeExtraction) (*models.CoffeeExtraction, error) {
	if userID == "" {
		return nil, ErrNotLoggedIn
	}
	if extraction.Rating < 1 || extraction.Rating > 5 {
		return nil, ErrInvalidBrewRating
	}

	extraction.UserID = userID
	err := s.extractionRepo.Update(extraction)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExtractionNotFound
		}
		log.Printf("Error updating extraction: %v", err)
		return nil, err
	}

	return s.extractionRepo.FindByID(extraction.ID, userID)
}

func (s *ExtractionService) DeleteExtraction(userID, id string) error {
	if userID == "" {
		return ErrNotLoggedIn
	}

	err := s.extractionRepo.Delete(id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrExtractionNotFound
		}
		log.Printf("Error deleting extraction: %v", err)
		return err
	}
	return nil
}
