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
	ErrBeanNotFound = errors.New("bean not found")
)

// UnknownSupplier is the display fallback when a bean's supplier row is gone.
const UnknownSupplier = "Unknown Supplier"

// EnrichedBean is a bean with its supplier name resolved for display.
type EnrichedBean struct {
	models.Bean
	SupplierName string `json:"supplier_name"`
}

type BeanService struct {
	beanRepo *repository.BeanRepository
}

func NewBeanService(beanRepo *repository.BeanRepository) *BeanService {
	return &BeanService{beanRepo: beanRepo}
}

func (s *BeanService) GetBeans(userID string) ([]EnrichedBean, error) {
	if userID == "" {
		return []EnrichedBean{}, nil
	}

	beans, err := s.beanRepo.FindAllByUser(userID)
	if err != nil {
		log.Printf("Error fetching beans: %v", err)
		return nil, err
	}
	return enrichBeans(beans), nil
}

func (s *BeanService) GetBeansBySupplier(userID, supplierID string) ([]EnrichedBean, error) {
	if userID == "" {
		return []EnrichedBean{}, nil
	}

	beans, err := s.beanRepo.FindAllBySupplier(userID, supplierID)
	if err != nil {
		log.Printf("Error fetching beans by supplier: %v", err)
		return nil, err
	}
	return enrichBeans(beans), nil
}

func (s *BeanService) GetBean(userID, id string) (*EnrichedBean, error) {
	bean, err := s.beanRepo.FindByID(id, userID)
	if err != nil {
		log.Printf("Error fetching bean: %v", err)
		return nil, err
	}
	if bean == nil {
		return nil, ErrBeanNotFound
	}

	enriched := enrichBeans([]models.Bean{*bean})
	return &enriched[0], nil
}

func (s *BeanService) CreateBean(userID string, bean *models.Bean) (*models.Bean, error) {
	if userID == "" {
		return nil, ErrNotLoggedIn
	}

	bean.ID = uuid.NewString()
	bean.UserID = userID

	if err := s.beanRepo.Create(bean); err != nil {
		log.Printf("Error adding bean: %v", err)
		return nil, err
	}
	return bean, nil
}

func (s *BeanService) UpdateBean(userID string, bean *models.Bean) (*models.Bean, error) {
	if userID == "" {
		return nil, ErrNotLoggedIn
	}

	bean.UserID = userID
	err := s.beanRepo.Update(bean)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBeanNotFound
		}
		log.Printf("Error updating bean: %v", err)
		return nil, err
	}

	return s.beanRepo.FindByID(bean.ID, userID)
}

func (s *BeanService) DeleteBean(userID, id string) error {
	if userID == "" {
		return ErrNotLoggedIn
	}

	err := s.beanRepo.Delete(id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBeanNotFound
		}
		log.Printf("Error deleting bean: %v", err)
		return err
	}
	return nil
}

func enrichBeans(beans []models.Bean) []EnrichedBean {
	enriched := make([]EnrichedBean, len(beans))
	for i, bean := range beans {
		e := EnrichedBean{Bean: bean, SupplierName: UnknownSupplier}
		if bean.Supplier != nil {
			e.SupplierName = bean.Supplier.Name
		}
		enriched[i] = e
	}
	return enriched
}
