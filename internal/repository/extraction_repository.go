package repository

import (
	"errors"

	"github.com/brewlog-app/brewlog/internal/models"
	"gorm.io/gorm"
)

type ExtractionRepository struct {
	db *gorm.DB
}

func NewExtractionRepository(db *gorm.DB) *ExtractionRepository {
	return &ExtractionRepository{db: db}
}

func (r *ExtractionRepository) Create(extraction *models.CoffeeExtraction) error {
	return r.db.Create(extraction).Error
}

func (r *ExtractionRepository) FindByID(id, userID string) (*models.CoffeeExtraction, error) {
	var extraction models.CoffeeExtraction
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&extraction).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &extraction, nil
}

func (r *ExtractionRepository) FindAllByUser(userID string) ([]models.CoffeeExtraction, error) {
	var extractions []models.CoffeeExtraction
	err := r.db.Where("user_id = ?", userID).
		Order("date DESC").
		Find(&extractions).Error
	return extractions, err
}

func (r *ExtractionRepository) Update(extraction *models.CoffeeExtraction) error {
	result := r.db.Model(&models.CoffeeExtraction{}).
		Where("id = ? AND user_id = ?", extraction.ID, extraction.UserID).
		Select("date", "bean_name", "bean_price", "coffee_weight", "water_weight",
			"grind_size", "brew_time", "temperature", "rating", "notes").
		Updates(extraction)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *ExtractionRepository) Delete(id, userID string) error {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.CoffeeExtraction{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
