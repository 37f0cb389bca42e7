package repositories

import (
	"fmt"
	"storehouse/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// GetAll retrieves all products of a company from the database.
func (r *GORMProductRepository) GetAll(companyID string) ([]models.Product, error) {
	var products []models.Product
	if err := r.db.Find(&products, "company_id = ?", companyID).Error; err != nil {
		return nil, fmt.Errorf("failed to get all products: %w", err)
	}
	return products, nil
}

// GetByID retrieves a single product by its ID from the database.
func (r *GORMProductRepository) GetByID(companyID, id string) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, "id = ? AND company_id = ?", id, companyID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("product with ID %s: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get product by ID %s: %w", id, err)
	}
	return &product, nil
}

// Create creates a new product in the database.
func (r *GORMProductRepository) Create(product *models.Product) error {
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	if err := r.db.Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// Update updates an existing product in the database.
func (r *GORMProductRepository) Update(product *models.Product) error {
	res := r.db.Where("company_id = ?", product.CompanyID).Save(product) // Save updates all fields, including zero values
	if res.Error != nil {
		return fmt.Errorf("failed to update product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		// GORM's Save doesn't return ErrRecordNotFound if no rows were
		// affected by an update, so we check RowsAffected.
		return fmt.Errorf("product with ID %s: %w", product.ID, models.ErrNotFound)
	}
	return nil
}

// Delete deletes a product by its ID from the database.
func (r *GORMProductRepository) Delete(companyID, id string) error {
	res := r.db.Delete(&models.Product{}, "id = ? AND company_id = ?", id, companyID)
	if res.Error != nil {
		return fmt.Errorf("failed to delete product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("product with ID %s: %w", id, models.ErrNotFound)
	}
	return nil
}

// sortColumns whitelists the sortable fields of a product search.
var sortColumns = map[string]string{
	"name":       "products.name",
	"price":      "products.price",
	"stock":      "products.stock",
	"created_at": "products.created_at",
}

// Search builds the filtered, sorted, offset-paginated catalog listing,
// denormalizing category/supplier/section/storehouse names into each row.
func (r *GORMProductRepository) Search(companyID string, params models.ProductSearchParams) ([]models.ProductListing, int64, error) {
	query := r.db.Model(&models.Product{}).
		Joins("LEFT JOIN categories ON categories.id = products.category_id").
		Joins("LEFT JOIN suppliers ON suppliers.id = products.supplier_id").
		Joins("LEFT JOIN sections ON sections.id = products.section_id").
		Joins("LEFT JOIN storehouses ON storehouses.id = sections.storehouse_id").
		Where("products.company_id = ?", companyID)

	if params.Term != "" {
		term := "%" + params.Term + "%"
		query = query.Where("products.name LIKE ? OR products.description LIKE ?", term, term)
	}
	if params.MinPrice != nil {
		query = query.Where("products.price >= ?", *params.MinPrice)
	}
	if params.MaxPrice != nil {
		query = query.Where("products.price <= ?", *params.MaxPrice)
	}
	if params.MinStock != nil {
		query = query.Where("products.stock >= ?", *params.MinStock)
	}
	if params.MaxStock != nil {
		query = query.Where("products.stock <= ?", *params.MaxStock)
	}
	if params.CategoryName != "" {
		query = query.Where("categories.name = ?", params.CategoryName)
	}
	if params.SupplierName != "" {
		query = query.Where("suppliers.name = ?", params.SupplierName)
	}
	if params.SectionName != "" {
		query = query.Where("sections.name = ?", params.SectionName)
	}
	if params.StorehouseName != "" {
		query = query.Where("storehouses.name = ?", params.StorehouseName)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	// Default sort: Name ascending.
	column, ok := sortColumns[params.SortBy]
	if !ok {
		column = "products.name"
	}
	direction := "ASC"
	if params.SortDesc {
		direction = "DESC"
	}

	page := params.Page
	if page < 1 {
		page = 1
	}
	pageSize := params.PageSize
	if pageSize < 1 {
		pageSize = 20
	}

	var listings []models.ProductListing
	err := query.
		Select(`products.id, products.name, products.description, products.price, products.stock,
			COALESCE(categories.name, '') AS category_name, COALESCE(suppliers.name, '') AS supplier_name,
			COALESCE(sections.name, '') AS section_name, COALESCE(storehouses.name, '') AS storehouse_name`).
		Order(column + " " + direction).
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Scan(&listings).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to search products: %w", err)
	}

	return listings, total, nil
}
