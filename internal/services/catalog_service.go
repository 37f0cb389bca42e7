package services

import (
	"errors"
	"fmt"

	"storehouse/internal/models"
	"storehouse/internal/repositories"
)

// CatalogService handles CRUD for categories, suppliers, storehouses and
// sections. All operations are scoped to the caller's company.
type CatalogService struct {
	categoryRepo   repositories.CategoryRepository
	supplierRepo   repositories.SupplierRepository
	storehouseRepo repositories.StorehouseRepository
	sectionRepo    repositories.SectionRepository
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(
	categoryRepo repositories.CategoryRepository,
	supplierRepo repositories.SupplierRepository,
	storehouseRepo repositories.StorehouseRepository,
	sectionRepo repositories.SectionRepository,
) *CatalogService {
	return &CatalogService{
		categoryRepo:   categoryRepo,
		supplierRepo:   supplierRepo,
		storehouseRepo: storehouseRepo,
		sectionRepo:    sectionRepo,
	}
}

// GetAllCategories retrieves all categories of the caller's company.
func (s *CatalogService) GetAllCategories(caller models.CallerContext) ([]models.Category, error) {
	return s.categoryRepo.GetAll(caller.CompanyID)
}

// GetCategoryByID retrieves a single category by its ID.
func (s *CatalogService) GetCategoryByID(caller models.CallerContext, id string) (*models.Category, error) {
	return s.categoryRepo.GetByID(caller.CompanyID, id)
}

// CreateCategory creates a new category in the caller's company.
func (s *CatalogService) CreateCategory(caller models.CallerContext, category *models.Category) error {
	category.CompanyID = caller.CompanyID
	return s.categoryRepo.Create(category)
}

// UpdateCategory updates an existing category.
func (s *CatalogService) UpdateCategory(caller models.CallerContext, category *models.Category) error {
	category.CompanyID = caller.CompanyID
	return s.categoryRepo.Update(category)
}

// DeleteCategory deletes a category by its ID.
func (s *CatalogService) DeleteCategory(caller models.CallerContext, id string) error {
	return s.categoryRepo.Delete(caller.CompanyID, id)
}

// GetAllSuppliers retrieves all suppliers of the caller's company.
func (s *CatalogService) GetAllSuppliers(caller models.CallerContext) ([]models.Supplier, error) {
	return s.supplierRepo.GetAll(caller.CompanyID)
}

// GetSupplierByID retrieves a single supplier by its ID.
func (s *CatalogService) GetSupplierByID(caller models.CallerContext, id string) (*models.Supplier, error) {
	return s.supplierRepo.GetByID(caller.CompanyID, id)
}

// CreateSupplier creates a new supplier in the caller's company.
func (s *CatalogService) CreateSupplier(caller models.CallerContext, supplier *models.Supplier) error {
	supplier.CompanyID = caller.CompanyID
	return s.supplierRepo.Create(supplier)
}

// UpdateSupplier updates an existing supplier.
func (s *CatalogService) UpdateSupplier(caller models.CallerContext, supplier *models.Supplier) error {
	supplier.CompanyID = caller.CompanyID
	return s.supplierRepo.Update(supplier)
}

// DeleteSupplier deletes a supplier by its ID.
func (s *CatalogService) DeleteSupplier(caller models.CallerContext, id string) error {
	return s.supplierRepo.Delete(caller.CompanyID, id)
}

// GetAllStorehouses retrieves all storehouses of the caller's company.
func (s *CatalogService) GetAllStorehouses(caller models.CallerContext) ([]models.Storehouse, error) {
	return s.storehouseRepo.GetAll(caller.CompanyID)
}

// GetStorehouseByID retrieves a single storehouse with its sections.
func (s *CatalogService) GetStorehouseByID(caller models.CallerContext, id string) (*models.Storehouse, error) {
	return s.storehouseRepo.GetByID(caller.CompanyID, id)
}

// CreateStorehouse creates a new storehouse in the caller's company.
func (s *CatalogService) CreateStorehouse(caller models.CallerContext, storehouse *models.Storehouse) error {
	storehouse.CompanyID = caller.CompanyID
	return s.storehouseRepo.Create(storehouse)
}

// UpdateStorehouse updates an existing storehouse.
func (s *CatalogService) UpdateStorehouse(caller models.CallerContext, storehouse *models.Storehouse) error {
	storehouse.CompanyID = caller.CompanyID
	return s.storehouseRepo.Update(storehouse)
}

// DeleteStorehouse deletes a storehouse by its ID.
func (s *CatalogService) DeleteStorehouse(caller models.CallerContext, id string) error {
	return s.storehouseRepo.Delete(caller.CompanyID, id)
}

// GetSections retrieves all sections of a storehouse. The storehouse must
// belong to the caller's company.
func (s *CatalogService) GetSections(caller models.CallerContext, storehouseID string) ([]models.Section, error) {
	if _, err := s.storehouseRepo.GetByID(caller.CompanyID, storehouseID); err != nil {
		return nil, err
	}
	return s.sectionRepo.GetByStorehouse(storehouseID)
}

// CreateSection creates a section inside a storehouse of the caller's company.
func (s *CatalogService) CreateSection(caller models.CallerContext, section *models.Section) error {
	if _, err := s.storehouseRepo.GetByID(caller.CompanyID, section.StorehouseID); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return fmt.Errorf("storehouse %s does not exist: %w", section.StorehouseID, models.ErrValidation)
		}
		return err
	}
	return s.sectionRepo.Create(section)
}

// UpdateSection updates an existing section.
func (s *CatalogService) UpdateSection(caller models.CallerContext, section *models.Section) error {
	existing, err := s.sectionRepo.GetByID(section.ID)
	if err != nil {
		return err
	}
	if _, err := s.storehouseRepo.GetByID(caller.CompanyID, existing.StorehouseID); err != nil {
		return err
	}
	section.StorehouseID = existing.StorehouseID
	return s.sectionRepo.Update(section)
}

// DeleteSection deletes a section by its ID.
func (s *CatalogService) DeleteSection(caller models.CallerContext, id string) error {
	existing, err := s.sectionRepo.GetByID(id)
	if err != nil {
		return err
	}
	if _, err := s.storehouseRepo.GetByID(caller.CompanyID, existing.StorehouseID); err != nil {
		return err
	}
	return s.sectionRepo.Delete(id)
}
