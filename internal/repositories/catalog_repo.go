package repositories

import "storehouse/internal/models"

// CategoryRepository defines the interface for category data access.
type CategoryRepository interface {
	GetAll(companyID string) ([]models.Category, error)
	GetByID(companyID, id string) (*models.Category, error)
	Create(category *models.Category) error
	Update(category *models.Category) error
	Delete(companyID, id string) error
}

// SupplierRepository defines the interface for supplier data access.
type SupplierRepository interface {
	GetAll(companyID string) ([]models.Supplier, error)
	GetByID(companyID, id string) (*models.Supplier, error)
	Create(supplier *models.Supplier) error
	Update(supplier *models.Supplier) error
	Delete(companyID, id string) error
}

// StorehouseRepository defines the interface for storehouse data access.
// Storehouses are loaded with their sections.
type StorehouseRepository interface {
	GetAll(companyID string) ([]models.Storehouse, error)
	GetByID(companyID, id string) (*models.Storehouse, error)
	Create(storehouse *models.Storehouse) error
	Update(storehouse *models.Storehouse) error
	Delete(companyID, id string) error
}

// SectionRepository defines the interface for section data access.
type SectionRepository interface {
	GetByStorehouse(storehouseID string) ([]models.Section, error)
	GetByID(id string) (*models.Section, error)
	Create(section *models.Section) error
	Update(section *models.Section) error
	Delete(id string) error
}
