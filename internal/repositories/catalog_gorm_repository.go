package repositories

import (
	"fmt"
	"storehouse/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMCategoryRepository is a GORM implementation of CategoryRepository.
type GORMCategoryRepository struct {
	db *gorm.DB
}

// NewGORMCategoryRepository creates a new instance of GORMCategoryRepository.
func NewGORMCategoryRepository(db *gorm.DB) *GORMCategoryRepository {
	return &GORMCategoryRepository{db: db}
}

// GetAll retrieves all categories of a company.
func (r *GORMCategoryRepository) GetAll(companyID string) ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.Find(&categories, "company_id = ?", companyID).Error; err != nil {
		return nil, fmt.Errorf("failed to get all categories: %w", err)
	}
	return categories, nil
}

// GetByID retrieves a single category by its ID.
func (r *GORMCategoryRepository) GetByID(companyID, id string) (*models.Category, error) {
	var category models.Category
	if err := r.db.First(&category, "id = ? AND company_id = ?", id, companyID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("category with ID %s: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get category by ID %s: %w", id, err)
	}
	return &category, nil
}

// Create creates a new category.
func (r *GORMCategoryRepository) Create(category *models.Category) error {
	if category.ID == "" {
		category.ID = uuid.New().String()
	}
	if err := r.db.Create(category).Error; err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

// Update updates an existing category.
func (r *GORMCategoryRepository) Update(category *models.Category) error {
	res := r.db.Where("company_id = ?", category.CompanyID).Save(category)
	if res.Error != nil {
		return fmt.Errorf("failed to update category: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("category with ID %s: %w", category.ID, models.ErrNotFound)
	}
	return nil
}

// Delete deletes a category by its ID.
func (r *GORMCategoryRepository) Delete(companyID, id string) error {
	res := r.db.Delete(&models.Category{}, "id = ? AND company_id = ?", id, companyID)
	if res.Error != nil {
		return fmt.Errorf("failed to delete category: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("category with ID %s: %w", id, models.ErrNotFound)
	}
	return nil
}

// GORMSupplierRepository is a GORM implementation of SupplierRepository.
type GORMSupplierRepository struct {
	db *gorm.DB
}

// NewGORMSupplierRepository creates a new instance of GORMSupplierRepository.
func NewGORMSupplierRepository(db *gorm.DB) *GORMSupplierRepository {
	return &GORMSupplierRepository{db: db}
}

// GetAll retrieves all suppliers of a company.
func (r *GORMSupplierRepository) GetAll(companyID string) ([]models.Supplier, error) {
	var suppliers []models.Supplier
	if err := r.db.Find(&suppliers, "company_id = ?", companyID).Error; err != nil {
		return nil, fmt.Errorf("failed to get all suppliers: %w", err)
	}
	return suppliers, nil
}

// GetByID retrieves a single supplier by its ID.
func (r *GORMSupplierRepository) GetByID(companyID, id string) (*models.Supplier, error) {
	var supplier models.Supplier
	if err := r.db.First(&supplier, "id = ? AND company_id = ?", id, companyID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("supplier with ID %s: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get supplier by ID %s: %w", id, err)
	}
	return &supplier, nil
}

// Create creates a new supplier.
func (r *GORMSupplierRepository) Create(supplier *models.Supplier) error {
	if supplier.ID == "" {
		supplier.ID = uuid.New().String()
	}
	if err := r.db.Create(supplier).Error; err != nil {
		return fmt.Errorf("failed to create supplier: %w", err)
	}
	return nil
}

// Update updates an existing supplier.
func (r *GORMSupplierRepository) Update(supplier *models.Supplier) error {
	res := r.db.Where("company_id = ?", supplier.CompanyID).Save(supplier)
	if res.Error != nil {
		return fmt.Errorf("failed to update supplier: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("supplier with ID %s: %w", supplier.ID, models.ErrNotFound)
	}
	return nil
}

// Delete deletes a supplier by its ID.
func (r *GORMSupplierRepository) Delete(companyID, id string) error {
	res := r.db.Delete(&models.Supplier{}, "id = ? AND company_id = ?", id, companyID)
	if res.Error != nil {
		return fmt.Errorf("failed to delete supplier: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("supplier with ID %s: %w", id, models.ErrNotFound)
	}
	return nil
}

// GORMStorehouseRepository is a GORM implementation of StorehouseRepository.
type GORMStorehouseRepository struct {
	db *gorm.DB
}

// NewGORMStorehouseRepository creates a new instance of GORMStorehouseRepository.
func NewGORMStorehouseRepository(db *gorm.DB) *GORMStorehouseRepository {
	return &GORMStorehouseRepository{db: db}
}

// GetAll retrieves all storehouses of a company with their sections.
func (r *GORMStorehouseRepository) GetAll(companyID string) ([]models.Storehouse, error) {
	var storehouses []models.Storehouse
	if err := r.db.Preload("Sections").Find(&storehouses, "company_id = ?", companyID).Error; err != nil {
		return nil, fmt.Errorf("failed to get all storehouses: %w", err)
	}
	return storehouses, nil
}

// GetByID retrieves a single storehouse by its ID with its sections.
func (r *GORMStorehouseRepository) GetByID(companyID, id string) (*models.Storehouse, error) {
	var storehouse models.Storehouse
	err := r.db.Preload("Sections").First(&storehouse, "id = ? AND company_id = ?", id, companyID).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("storehouse with ID %s: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get storehouse by ID %s: %w", id, err)
	}
	return &storehouse, nil
}

// Create creates a new storehouse.
func (r *GORMStorehouseRepository) Create(storehouse *models.Storehouse) error {
	if storehouse.ID == "" {
		storehouse.ID = uuid.New().String()
	}
	if err := r.db.Create(storehouse).Error; err != nil {
		return fmt.Errorf("failed to create storehouse: %w", err)
	}
	return nil
}

// Update updates an existing storehouse.
func (r *GORMStorehouseRepository) Update(storehouse *models.Storehouse) error {
	res := r.db.Omit("Sections").Where("company_id = ?", storehouse.CompanyID).Save(storehouse)
	if res.Error != nil {
		return fmt.Errorf("failed to update storehouse: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("storehouse with ID %s: %w", storehouse.ID, models.ErrNotFound)
	}
	return nil
}

// Delete deletes a storehouse by its ID.
func (r *GORMStorehouseRepository) Delete(companyID, id string) error {
	res := r.db.Delete(&models.Storehouse{}, "id = ? AND company_id = ?", id, companyID)
	if res.Error != nil {
		return fmt.Errorf("failed to delete storehouse: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("storehouse with ID %s: %w", id, models.ErrNotFound)
	}
	return nil
}

// GORMSectionRepository is a GORM implementation of SectionRepository.
type GORMSectionRepository struct {
	db *gorm.DB
}

// NewGORMSectionRepository creates a new instance of GORMSectionRepository.
func NewGORMSectionRepository(db *gorm.DB) *GORMSectionRepository {
	return &GORMSectionRepository{db: db}
}

// GetByStorehouse retrieves all sections of a storehouse.
func (r *GORMSectionRepository) GetByStorehouse(storehouseID string) ([]models.Section, error) {
	var sections []models.Section
	if err := r.db.Find(&sections, "storehouse_id = ?", storehouseID).Error; err != nil {
		return nil, fmt.Errorf("failed to get sections: %w", err)
	}
	return sections, nil
}

// GetByID retrieves a single section by its ID.
func (r *GORMSectionRepository) GetByID(id string) (*models.Section, error) {
	var section models.Section
	if err := r.db.First(&section, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("section with ID %s: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get section by ID %s: %w", id, err)
	}
	return &section, nil
}

// Create creates a new section.
func (r *GORMSectionRepository) Create(section *models.Section) error {
	if section.ID == "" {
		section.ID = uuid.New().String()
	}
	if err := r.db.Create(section).Error; err != nil {
		return fmt.Errorf("failed to create section: %w", err)
	}
	return nil
}

// Update updates an existing section.
func (r *GORMSectionRepository) Update(section *models.Section) error {
	res := r.db.Save(section)
	if res.Error != nil {
		return fmt.Errorf("failed to update section: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("section with ID %s: %w", section.ID, models.ErrNotFound)
	}
	return nil
}

// Delete deletes a section by its ID.
func (r *GORMSectionRepository) Delete(id string) error {
	res := r.db.Delete(&models.Section{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete section: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("section with ID %s: %w", id, models.ErrNotFound)
	}
	return nil
}
