package repository

import (
	"errors"

	"github.com/brewlog-app/brewlog/internal/models"
	"gorm.io/gorm"
)

type BeanRepository struct {
	db *gorm.DB
}

func NewBeanRepository(db *gorm.DB) *BeanRepository {
	return &BeanRepository{db: db}
}

func (r *BeanRepository) Create(bean *models.Bean) error {
	return r.db.Create(bean).Error
}

func (r *BeanRepository) FindByID(id, userID string) (*models.Bean, error) {
	var bean models.Bean
	err := r.db.Preload("Supplier").
		Where("id = ? AND user_id = ?", id, userID).
		First(&bean).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &bean, nil
}

func (r *BeanRepository) FindAllByUser(userID string) ([]models.Bean, error) {
	var beans []models.Bean
	err := r.db.Preload("Supplier").
		Where("user_id = ?", userID).
		Order("name").
		Find(&beans).Error
	return beans, err
}

func (r *BeanRepository) FindAllBySupplier(userID, supplierID string) ([]models.Bean, error) {
	var beans []models.Bean
	err := r.db.Preload("Supplier").
		Where("user_id = ? AND supplier_id = ?", userID, supplierID).
		Order("name").
		Find(&beans).Error
	return beans, err
}

func (r *BeanRepository) Update(bean *models.Bean) error {
	result := r.db.Model(&models.Bean{}).
		Where("id = ? AND user_id = ?", bean.ID, bean.UserID).
		Select("supplier_id", "name", "origin", "process", "roast_level", "price", "purchase_url", "notes").
		Updates(bean)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *BeanRepository) Delete(id, userID string) error {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Bean{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
