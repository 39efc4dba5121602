package repository

import (
	"errors"

	"github.com/brewlog-app/brewlog/internal/models"
	"gorm.io/gorm"
)

type SupplierRepository struct {
	db *gorm.DB
}

func NewSupplierRepository(db *gorm.DB) *SupplierRepository {
	return &SupplierRepository{db: db}
}

func (r *SupplierRepository) Create(supplier *models.Supplier) error {
	return r.db.Create(supplier).Error
}

func (r *SupplierRepository) FindByID(id, userID string) (*models.Supplier, error) {
	var supplier models.Supplier
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&supplier).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &supplier, nil
}

func (r *SupplierRepository) FindAllByUser(userID string) ([]models.Supplier, error) {
	var suppliers []models.Supplier
	err := r.db.Where("user_id = ?", userID).Order("name").Find(&suppliers).Error
	return suppliers, err
}

// Update replaces the mutable fields of a supplier row, constrained to the
// owner. Zero rows affected means no owned row matched and is reported as
// ErrRecordNotFound rather than a silent no-op.
func (r *SupplierRepository) Update(supplier *models.Supplier) error {
	result := r.db.Model(&models.Supplier{}).
		Where("id = ? AND user_id = ?", supplier.ID, supplier.UserID).
		Select("name", "website", "location", "notes").
		Updates(supplier)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *SupplierRepository) Delete(id, userID string) error {
	result := r.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.Supplier{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
