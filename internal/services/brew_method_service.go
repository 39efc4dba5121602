package services

import (
	"errors"
	"log"

	"github.com/brewlog-app/brewlog/internal/models"
	"github.com/brewlog-app/brewlog/internal/repository"
)

var (
	ErrBrewMethodNotFound = errors.New("brew method not found")
)

type BrewMethodService struct {
	brewMethodRepo *repository.BrewMethodRepository
}

func NewBrewMethodService(brewMethodRepo *repository.BrewMethodRepository) *BrewMethodService {
	return &BrewMethodService{brewMethodRepo: brewMethodRepo}
}

func (s *BrewMethodService) GetBrewMethods() ([]models.BrewMethod, error) {
	methods, err := s.brewMethodRepo.FindAll()
	if err != nil {
		log.Printf("Error fetching brew methods: %v", err)
		return nil, err
	}
	return methods, nil
}

func (s *BrewMethodService) GetBrewMethod(id string) (*models.BrewMethod, error) {
	method, err := s.brewMethodRepo.FindByID(id)
	if err != nil {
		log.Printf("Error fetching brew method: %v", err)
		return nil, err
	}
	if method == nil {
		return nil, ErrBrewMethodNotFound
	}
	return method, nil
}
