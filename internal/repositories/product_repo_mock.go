package repositories

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"storehouse/internal/models"

	"github.com/google/uuid"
)

// MockProductRepository is an in-memory implementation of ProductRepository.
type MockProductRepository struct {
	products map[string]models.Product
	mu       sync.RWMutex
}

// NewMockProductRepository creates a new instance of MockProductRepository.
func NewMockProductRepository() *MockProductRepository {
	return &MockProductRepository{
		products: make(map[string]models.Product),
	}
}

// GetAll returns all products of a company.
func (r *MockProductRepository) GetAll(companyID string) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	productList := make([]models.Product, 0, len(r.products))
	for _, p := range r.products {
		if p.CompanyID == companyID {
			productList = append(productList, p)
		}
	}
	return productList, nil
}

// GetByID returns a product by its ID.
func (r *MockProductRepository) GetByID(companyID, id string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok || product.CompanyID != companyID {
		return nil, fmt.Errorf("product with ID %s: %w", id, models.ErrNotFound)
	}
	return &product, nil
}

// Create adds a new product.
func (r *MockProductRepository) Create(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	r.products[product.ID] = *product
	return nil
}

// Update modifies an existing product.
func (r *MockProductRepository) Update(product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.products[product.ID]
	if !ok || existing.CompanyID != product.CompanyID {
		return fmt.Errorf("product with ID %s: %w", product.ID, models.ErrNotFound)
	}
	r.products[product.ID] = *product
	return nil
}

// Delete removes a product by its ID.
func (r *MockProductRepository) Delete(companyID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.products[id]
	if !ok || existing.CompanyID != companyID {
		return fmt.Errorf("product with ID %s: %w", id, models.ErrNotFound)
	}
	delete(r.products, id)
	return nil
}

// Search filters over product fields only; the in-memory store holds no
// category/supplier/section rows, so name filters and denormalized name
// columns are left empty.
func (r *MockProductRepository) Search(companyID string, params models.ProductSearchParams) ([]models.ProductListing, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []models.Product
	for _, p := range r.products {
		if p.CompanyID != companyID {
			continue
		}
		if params.Term != "" &&
			!strings.Contains(strings.ToLower(p.Name), strings.ToLower(params.Term)) &&
			!strings.Contains(strings.ToLower(p.Description), strings.ToLower(params.Term)) {
			continue
		}
		if params.MinPrice != nil && p.Price < *params.MinPrice {
			continue
		}
		if params.MaxPrice != nil && p.Price > *params.MaxPrice {
			continue
		}
		if params.MinStock != nil && p.Stock < *params.MinStock {
			continue
		}
		if params.MaxStock != nil && p.Stock > *params.MaxStock {
			continue
		}
		matched = append(matched, p)
	}

	sort.Slice(matched, func(i, j int) bool {
		var less bool
		switch params.SortBy {
		case "price":
			less = matched[i].Price < matched[j].Price
		case "stock":
			less = matched[i].Stock < matched[j].Stock
		default:
			less = matched[i].Name < matched[j].Name
		}
		if params.SortDesc {
			return !less
		}
		return less
	})

	total := int64(len(matched))

	page := params.Page
	if page < 1 {
		page = 1
	}
	pageSize := params.PageSize
	if pageSize < 1 {
		pageSize = 20
	}
	start := (page - 1) * pageSize
	if start > len(matched) {
		start = len(matched)
	}
	end := start + pageSize
	if end > len(matched) {
		end = len(matched)
	}

	listings := make([]models.ProductListing, 0, end-start)
	for _, p := range matched[start:end] {
		listings = append(listings, models.ProductListing{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Price:       p.Price,
			Stock:       p.Stock,
		})
	}
	return listings, total, nil
}
