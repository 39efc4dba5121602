package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/brewlog-app/brewlog/internal/database"
	"github.com/brewlog-app/brewlog/internal/models"
	"github.com/brewlog-app/brewlog/internal/repository"
)

func setupBeanTestDB(t *testing.T) (*repository.SupplierRepository, *BeanService) {
	db, err := database.Connect(":memory:")
	assert.NoError(t, err)

	err = database.Migrate(db)
	assert.NoError(t, err)

	return repository.NewSupplierRepository(db), NewBeanService(repository.NewBeanRepository(db))
}

func TestBeanService_CreateBean(t *testing.T) {
	supplierRepo, beanService := setupBeanTestDB(t)

	supplier := &models.Supplier{ID: uuid.NewString(), UserID: "user-1", Name: "Square Mile"}
	assert.NoError(t, supplierRepo.Create(supplier))

	bean, err := beanService.CreateBean("user-1", &models.Bean{
		SupplierID: supplier.ID,
		Name:       "Yirgacheffe",
		Origin:     "Ethiopia",
		RoastLevel: "light",
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, bean.ID)
	assert.Equal(t, "user-1", bean.UserID)
}

func TestBeanService_CreateBean_NotLoggedIn(t *testing.T) {
	_, beanService := setupBeanTestDB(t)

	_, err := beanService.CreateBean("", &models.Bean{Name: "Yirgacheffe"})
	assert.Equal(t, ErrNotLoggedIn, err)
}

func TestBeanService_GetBeans_ResolvesSupplierName(t *testing.T) {
	supplierRepo, beanService := setupBeanTestDB(t)

	supplier := &models.Supplier{ID: uuid.NewString(), UserID: "user-1", Name: "Square Mile"}
	assert.NoError(t, supplierRepo.Create(supplier))

	_, err := beanService.CreateBean("user-1", &models.Bean{SupplierID: supplier.ID, Name: "Yirgacheffe"})
	assert.NoError(t, err)

	beans, err := beanService.GetBeans("user-1")
	assert.NoError(t, err)
	assert.Len(t, beans, 1)
	assert.Equal(t, "Square Mile", beans[0].SupplierName)
}

func TestBeanService_GetBeans_MissingSupplierFallsBack(t *testing.T) {
	_, beanService := setupBeanTestDB(t)

	_, err := beanService.CreateBean("user-1", &models.Bean{SupplierID: uuid.NewString(), Name: "Yirgacheffe"})
	assert.NoError(t, err)

	beans, err := beanService.GetBeans("user-1")
	assert.NoError(t, err)
	assert.Len(t, beans, 1)
	assert.Equal(t, UnknownSupplier, beans[0].SupplierName)
}

func TestBeanService_GetBeansBySupplier(t *testing.T) {
	supplierRepo, beanService := setupBeanTestDB(t)

	squareMile := &models.Supplier{ID: uuid.NewString(), UserID: "user-1", Name: "Square Mile"}
	wendelboe := &models.Supplier{ID: uuid.NewString(), UserID: "user-1", Name: "Tim Wendelboe"}
	assert.NoError(t, supplierRepo.Create(squareMile))
	assert.NoError(t, supplierRepo.Create(wendelboe))

	_, err := beanService.CreateBean("user-1", &models.Bean{SupplierID: squareMile.ID, Name: "Yirgacheffe"})
	assert.NoError(t, err)
	_, err = beanService.CreateBean("user-1", &models.Bean{SupplierID: wendelboe.ID, Name: "Bourbon"})
	assert.NoError(t, err)

	beans, err := beanService.GetBeansBySupplier("user-1", squareMile.ID)
	assert.NoError(t, err)
	assert.Len(t, beans, 1)
	assert.Equal(t, "Yirgacheffe", beans[0].Name)
}

func TestBeanService_GetBean_NotFound(t *testing.T) {
	_, beanService := setupBeanTestDB(t)

	_, err := beanService.GetBean("user-1", uuid.NewString())
	assert.Equal(t, ErrBeanNotFound, err)
}

func TestBeanService_GetBean_OwnerMismatch(t *testing.T) {
	_, beanService := setupBeanTestDB(t)

	bean, err := beanService.CreateBean("user-1", &models.Bean{Name: "Yirgacheffe"})
	assert.NoError(t, err)

	_, err = beanService.GetBean("user-2", bean.ID)
	assert.Equal(t, ErrBeanNotFound, err)

	stored, err := beanService.GetBean("user-1", bean.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Yirgacheffe", stored.Name)
}

func TestBeanService_UpdateBean_OwnerMismatch(t *testing.T) {
	_, beanService := setupBeanTestDB(t)

	bean, err := beanService.CreateBean("user-1", &models.Bean{SupplierID: uuid.NewString(), Name: "Yirgacheffe"})
	assert.NoError(t, err)

	bean.Name = "Hijacked"
	_, err = beanService.UpdateBean("user-2", bean)
	assert.Equal(t, ErrBeanNotFound, err)
}

func TestBeanService_DeleteBean(t *testing.T) {
	_, beanService := setupBeanTestDB(t)

	bean, err := beanService.CreateBean("user-1", &models.Bean{SupplierID: uuid.NewString(), Name: "Yirgacheffe"})
	assert.NoError(t, err)

	assert.Equal(t, ErrBeanNotFound, beanService.DeleteBean("user-2", bean.ID))
	assert.NoError(t, beanService.DeleteBean("user-1", bean.ID))
	assert.Equal(t, ErrBeanNotFound, beanService.DeleteBean("user-1", bean.ID))
}
