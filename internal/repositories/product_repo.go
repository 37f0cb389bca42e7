package repositories

import (
	"storehouse/internal/models"
)

// ProductRepository defines the interface for product data access.
// All lookups are scoped to a single company.
type ProductRepository interface {
	GetAll(companyID string) ([]models.Product, error)
	GetByID(companyID, id string) (*models.Product, error)
	Create(product *models.Product) error
	Update(product *models.Product) error
	Delete(companyID, id string) error
	// Search translates the given filters into a sorted, paginated listing
	// with category/supplier/section/storehouse names denormalized per row.
	Search(companyID string, params models.ProductSearchParams) ([]models.ProductListing, int64, error)
}
