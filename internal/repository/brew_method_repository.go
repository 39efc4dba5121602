package repository

import (
	"errors"

	"github.com/brewlog-app/brewlog/internal/models"
	"gorm.io/gorm"
)

type BrewMethodRepository struct {
	db *gorm.DB
}

func NewBrewMethodRepository(db *gorm.DB) *BrewMethodRepository {
	return &BrewMethodRepository{db: db}
}

func (r *BrewMethodRepository) FindAll() ([]models.BrewMethod, error) {
	var methods []models.BrewMethod
	err := r.db.Order("name").Find(&methods).Error
	return methods, err
}

func (r *BrewMethodRepository) FindByID(id string) (*models.BrewMethod, error) {
	var method models.BrewMethod
	err := r.db.Where("id = ?", id).First(&method).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &method, nil
}
