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
	ErrSupplierNotFound = errors.New("supplier not found")
)

type SupplierService struct {
	supplierRepo *repository.SupplierRepository
}

func NewSupplierService(supplierRepo *repository.SupplierRepository) *SupplierService {
	return &SupplierService{supplierRepo: supplierRepo}
}

// GetSuppliers lists the current user's suppliers ordered by name. An
// unauthenticated caller gets an empty list, never an error.
func (s *SupplierService) GetSuppliers(userID string) ([]models.Supplier, error) {
	if userID == "" {
		return []models.Supplier{}, nil
	}

	suppliers, err := s.supplierRepo.FindAllByUser(userID)
	if err != nil {
		log.Printf("Error fetching suppliers: %v", err)
		return nil, err
	}
	return suppliers, nil
}

func (s *SupplierService) GetSupplier(userID, id string) (*models.Supplier, error) {
	supplier, err := s.supplierRepo.FindByID(id, userID)
	if err != nil {
		log.Printf("Error fetching supplier: %v", err)
		return nil, err
	}
	if supplier == nil {
		return nil, ErrSupplierNotFound
	}
	return supplier, nil
}

func (s *SupplierService) CreateSupplier(userID string, supplier *models.Supplier) (*models.Supplier, error) {
	if userID == "" {
		return nil, ErrNotLoggedIn
	}

	supplier.ID = uuid.NewString()
	supplier.UserID = userID

	if err := s.supplierRepo.Create(supplier); err != nil {
		log.Printf("Error adding supplier: %v", err)
		return nil, err
	}
	return supplier, nil
}

func (s *SupplierService) UpdateSupplier(userID string, supplier *models.Supplier) (*models.Supplier, error) {
	if userID == "" {
		return nil, ErrNotLoggedIn
	}

	supplier.UserID = userID
	err := s.supplierRepo.Update(supplier)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSupplierNotFound
		}
		log.Printf("Error updating supplier: %v", err)
		return nil, err
	}

	return s.supplierRepo.FindByID(supplier.ID, userID)
}

func (s *SupplierService) DeleteSupplier(userID, id string) error {
	if userID == "" {
		return ErrNotLoggedIn
	}

	err := s.supplierRepo.Delete(id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrSupplierNotFound
		}
		log.Printf("Error deleting supplier: %v", err)
		return err
	}
	return nil
}
