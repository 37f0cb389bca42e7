package services

import (
	"storehouse/internal/models"
	"storehouse/internal/repositories"
)

// ProductService handles business logic related to the product catalog.
type ProductService struct {
	repo repositories.ProductRepository
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository) *ProductService {
	return &ProductService{
		repo: repo,
	}
}

// GetAllProducts retrieves all products of the caller's company.
func (s *ProductService) GetAllProducts(caller models.CallerContext) ([]models.Product, error) {
	return s.repo.GetAll(caller.CompanyID)
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(caller models.CallerContext, id string) (*models.Product, error) {
	return s.repo.GetByID(caller.CompanyID, id)
}

// CreateProduct creates a new product in the caller's company.
func (s *ProductService) CreateProduct(caller models.CallerContext, product *models.Product) error {
	product.CompanyID = caller.CompanyID
	return s.repo.Create(product)
}

// UpdateProduct updates an existing product.
func (s *ProductService) UpdateProduct(caller models.CallerContext, product *models.Product) error {
	product.CompanyID = caller.CompanyID
	return s.repo.Update(product)
}

// DeleteProduct deletes a product by its ID.
func (s *ProductService) DeleteProduct(caller models.CallerContext, id string) error {
	return s.repo.Delete(caller.CompanyID, id)
}

// SearchProducts runs a filtered, sorted, paginated catalog search and
// returns the listing rows plus the total match count.
func (s *ProductService) SearchProducts(caller models.CallerContext, params models.ProductSearchParams) ([]models.ProductListing, int64, error) {
	return s.repo.Search(caller.CompanyID, params)
}
