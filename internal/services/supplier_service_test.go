package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/brewlog-app/brewlog/internal/database"
	"github.com/brewlog-app/brewlog/internal/models"
	"github.com/brewlog-app/brewlog/internal/repository"
)

func setupSupplierTestDB(t *testing.T) (*repository.SupplierRepository, *SupplierService) {
	db, err := database.Connect(":memory:")
	assert.NoError(t, err)

	err = database.Migrate(db)
	assert.NoError(t, err)

	supplierRepo := repository.NewSupplierRepository(db)
	return supplierRepo, NewSupplierService(supplierRepo)
}

func TestSupplierService_CreateSupplier(t *testing.T) {
	_, supplierService := setupSupplierTestDB(t)

	supplier, err := supplierService.CreateSupplier("user-1", &models.Supplier{
		Name:     "Square Mile",
		Website:  "https://squaremile.example",
		Location: "London",
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, supplier.ID)
	assert.Equal(t, "user-1", supplier.UserID)
}

func TestSupplierService_CreateSupplier_NotLoggedIn(t *testing.T) {
	_, supplierService := setupSupplierTestDB(t)

	_, err := supplierService.CreateSupplier("", &models.Supplier{Name: "Square Mile"})
	assert.Equal(t, ErrNotLoggedIn, err)
}

func TestSupplierService_GetSuppliers_OwnerScoped(t *testing.T) {
	_, supplierService := setupSupplierTestDB(t)

	_, err := supplierService.CreateSupplier("user-1", &models.Supplier{Name: "Square Mile"})
	assert.NoError(t, err)
	_, err = supplierService.CreateSupplier("user-2", &models.Supplier{Name: "Tim Wendelboe"})
	assert.NoError(t, err)

	suppliers, err := supplierService.GetSuppliers("user-1")
	assert.NoError(t, err)
	assert.Len(t, suppliers, 1)
	assert.Equal(t, "Square Mile", suppliers[0].Name)
}

func TestSupplierService_GetSuppliers_Anonymous(t *testing.T) {
	_, supplierService := setupSupplierTestDB(t)

	suppliers, err := supplierService.GetSuppliers("")
	assert.NoError(t, err)
	assert.Empty(t, suppliers)
}

func TestSupplierService_GetSupplier_NotFound(t *testing.T) {
	_, supplierService := setupSupplierTestDB(t)

	_, err := supplierService.GetSupplier("user-1", uuid.NewString())
	assert.Equal(t, ErrSupplierNotFound, err)
}

func TestSupplierService_GetSupplier_OwnerMismatch(t *testing.T) {
	_, supplierService := setupSupplierTestDB(t)

	supplier, err := supplierService.CreateSupplier("user-1", &models.Supplier{Name: "Square Mile"})
	assert.NoError(t, err)

	_, err = supplierService.GetSupplier("user-2", supplier.ID)
	assert.Equal(t, ErrSupplierNotFound, err)

	stored, err := supplierService.GetSupplier("user-1", supplier.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Square Mile", stored.Name)
}

func TestSupplierService_UpdateSupplier(t *testing.T) {
	_, supplierService := setupSupplierTestDB(t)

	supplier, err := supplierService.CreateSupplier("user-1", &models.Supplier{Name: "Square Mile"})
	assert.NoError(t, err)

	supplier.Name = "Square Mile Coffee Roasters"
	updated, err := supplierService.UpdateSupplier("user-1", supplier)
	assert.NoError(t, err)
	assert.Equal(t, "Square Mile Coffee Roasters", updated.Name)
}

func TestSupplierService_UpdateSupplier_OwnerMismatch(t *testing.T) {
	_, supplierService := setupSupplierTestDB(t)

	supplier, err := supplierService.CreateSupplier("user-1", &models.Supplier{Name: "Square Mile"})
	assert.NoError(t, err)

	supplier.Name = "Hijacked"
	_, err = supplierService.UpdateSupplier("user-2", supplier)
	assert.Equal(t, ErrSupplierNotFound, err)
}

func TestSupplierService_DeleteSupplier(t *testing.T) {
	supplierRepo, supplierService := setupSupplierTestDB(t)

	supplier, err := supplierService.CreateSupplier("user-1", &models.Supplier{Name: "Square Mile"})
	assert.NoError(t, err)

	assert.Equal(t, ErrSupplierNotFound, supplierService.DeleteSupplier("user-2", supplier.ID))
	assert.NoError(t, supplierService.DeleteSupplier("user-1", supplier.ID))

	stored, err := supplierRepo.FindByID(supplier.ID, "user-1")
	assert.NoError(t, err)
	assert.Nil(t, stored)
}
