package services_test

import (
	"testing"

	"storehouse/internal/models"
	"storehouse/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockStorehouseRepository is a mock implementation of repositories.StorehouseRepository
type MockStorehouseRepository struct {
	mock.Mock
}

func (m *MockStorehouseRepository) GetAll(companyID string) ([]models.Storehouse, error) {
	args := m.Called(companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Storehouse), args.Error(1)
}

func (m *MockStorehouseRepository) GetByID(companyID, id string) (*models.Storehouse, error) {
	args := m.Called(companyID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Storehouse), args.Error(1)
}

func (m *MockStorehouseRepository) Create(storehouse *models.Storehouse) error {
	args := m.Called(storehouse)
	return args.Error(0)
}

func (m *MockStorehouseRepository) Update(storehouse *models.Storehouse) error {
	args := m.Called(storehouse)
	return args.Error(0)
}

func (m *MockStorehouseRepository) Delete(companyID, id string) error {
	args := m.Called(companyID, id)
	return args.Error(0)
}

// MockSectionRepository is a mock implementation of repositories.SectionRepository
type MockSectionRepository struct {
	mock.Mock
}

func (m *MockSectionRepository) GetByStorehouse(storehouseID string) ([]models.Section, error) {
	args := m.Called(storehouseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Section), args.Error(1)
}

func (m *MockSectionRepository) GetByID(id string) (*models.Section, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Section), args.Error(1)
}

func (m *MockSectionRepository) Create(section *models.Section) error {
	args := m.Called(section)
	return args.Error(0)
}

func (m *MockSectionRepository) Update(section *models.Section) error {
	args := m.Called(section)
	return args.Error(0)
}

func (m *MockSectionRepository) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockCategoryRepository is a mock implementation of repositories.CategoryRepository
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) GetAll(companyID string) ([]models.Category, error) {
	args := m.Called(companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Category), args.Error(1)
}

func (m *MockCategoryRepository) GetByID(companyID, id string) (*models.Category, error) {
	args := m.Called(companyID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *MockCategoryRepository) Create(category *models.Category) error {
	args := m.Called(category)
	return args.Error(0)
}

func (m *MockCategoryRepository) Update(category *models.Category) error {
	args := m.Called(category)
	return args.Error(0)
}

func (m *MockCategoryRepository) Delete(companyID, id string) error {
	args := m.Called(companyID, id)
	return args.Error(0)
}

// MockSupplierRepository is a mock implementation of repositories.SupplierRepository
type MockSupplierRepository struct {
	mock.Mock
}

func (m *MockSupplierRepository) GetAll(companyID string) ([]models.Supplier, error) {
	args := m.Called(companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) GetByID(companyID, id string) (*models.Supplier, error) {
	args := m.Called(companyID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) Create(supplier *models.Supplier) error {
	args := m.Called(supplier)
	return args.Error(0)
}

func (m *MockSupplierRepository) Update(supplier *models.Supplier) error {
	args := m.Called(supplier)
	return args.Error(0)
}

func (m *MockSupplierRepository) Delete(companyID, id string) error {
	args := m.Called(companyID, id)
	return args.Error(0)
}

func newCatalogServiceWithMocks() (*services.CatalogService, *MockCategoryRepository, *MockSupplierRepository, *MockStorehouseRepository, *MockSectionRepository) {
	categoryRepo := new(MockCategoryRepository)
	supplierRepo := new(MockSupplierRepository)
	storehouseRepo := new(MockStorehouseRepository)
	sectionRepo := new(MockSectionRepository)
	service := services.NewCatalogService(categoryRepo, supplierRepo, storehouseRepo, sectionRepo)
	return service, categoryRepo, supplierRepo, storehouseRepo, sectionRepo
}

func TestCatalogService_CreateCategory(t *testing.T) {
	service, categoryRepo, _, _, _ := newCatalogServiceWithMocks()

	category := &models.Category{Name: "Electronics", CompanyID: "spoofed"}
	categoryRepo.On("Create", category).Return(nil).Once()

	assert.NoError(t, service.CreateCategory(testCaller, category))
	// Stamped with the caller's company regardless of the request body.
	assert.Equal(t, testCompanyID, category.CompanyID)
	categoryRepo.AssertExpectations(t)
}

func TestCatalogService_CreateSupplier(t *testing.T) {
	service, _, supplierRepo, _, _ := newCatalogServiceWithMocks()

	supplier := &models.Supplier{Name: "Globex"}
	supplierRepo.On("Create", supplier).Return(nil).Once()

	assert.NoError(t, service.CreateSupplier(testCaller, supplier))
	assert.Equal(t, testCompanyID, supplier.CompanyID)
	supplierRepo.AssertExpectations(t)
}

func TestCatalogService_CreateSection(t *testing.T) {
	service, _, _, storehouseRepo, sectionRepo := newCatalogServiceWithMocks()

	// Section in an owned storehouse succeeds.
	storehouse := &models.Storehouse{ID: "sth-1", Name: "North", CompanyID: testCompanyID}
	storehouseRepo.On("GetByID", testCompanyID, "sth-1").Return(storehouse, nil).Once()
	sectionRepo.On("Create", mock.AnythingOfType("*models.Section")).Return(nil).Once()

	section := &models.Section{Name: "A1", StorehouseID: "sth-1"}
	assert.NoError(t, service.CreateSection(testCaller, section))
	sectionRepo.AssertExpectations(t)

	// A storehouse the caller's company does not own is invalid input.
	storehouseRepo.On("GetByID", testCompanyID, "sth-other").Return(nil, models.ErrNotFound).Once()
	err := service.CreateSection(testCaller, &models.Section{Name: "B1", StorehouseID: "sth-other"})
	assert.ErrorIs(t, err, models.ErrValidation)
	storehouseRepo.AssertExpectations(t)
}

func TestCatalogService_DeleteSection_ScopedThroughStorehouse(t *testing.T) {
	service, _, _, storehouseRepo, sectionRepo := newCatalogServiceWithMocks()

	section := &models.Section{ID: "sec-1", Name: "A1", StorehouseID: "sth-1"}
	sectionRepo.On("GetByID", "sec-1").Return(section, nil).Once()
	// The parent storehouse belongs to another company, so the delete is
	// refused before it reaches the repository.
	storehouseRepo.On("GetByID", testCompanyID, "sth-1").Return(nil, models.ErrNotFound).Once()

	err := service.DeleteSection(testCaller, "sec-1")
	assert.ErrorIs(t, err, models.ErrNotFound)
	sectionRepo.AssertNotCalled(t, "Delete", mock.Anything)
}

func TestCatalogService_GetSections(t *testing.T) {
	service, _, _, storehouseRepo, sectionRepo := newCatalogServiceWithMocks()

	storehouse := &models.Storehouse{ID: "sth-1", Name: "North", CompanyID: testCompanyID}
	sections := []models.Section{{ID: "sec-1", Name: "A1", StorehouseID: "sth-1"}}
	storehouseRepo.On("GetByID", testCompanyID, "sth-1").Return(storehouse, nil).Once()
	sectionRepo.On("GetByStorehouse", "sth-1").Return(sections, nil).Once()

	result, err := service.GetSections(testCaller, "sth-1")
	assert.NoError(t, err)
	assert.Len(t, result, 1)
	storehouseRepo.AssertExpectations(t)
	sectionRepo.AssertExpectations(t)
}
