package repositories

import (
	"fmt"
	"storehouse/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMUserRepository is a GORM implementation of UserRepository.
type GORMUserRepository struct {
	db *gorm.DB
}

// NewGORMUserRepository creates a new instance of GORMUserRepository.
func NewGORMUserRepository(db *gorm.DB) *GORMUserRepository {
	return &GORMUserRepository{
		db: db,
	}
}

// Create creates a new user in the database.
func (r *GORMUserRepository) Create(user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	if err := r.db.Create(user).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetByUsername retrieves a user by their username from the database.
func (r *GORMUserRepository) GetByUsername(username string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "username = ?", username).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("user with username %s: %w", username, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user by username %s: %w", username, err)
	}
	return &user, nil
}

// GetByEmail retrieves a user by their email from the database.
func (r *GORMUserRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "email = ?", email).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("user with email %s: %w", email, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user by email %s: %w", email, err)
	}
	return &user, nil
}

// GetByID retrieves a user by their ID from the database.
func (r *GORMUserRepository) GetByID(id string) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("user with ID %s: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user by ID %s: %w", id, err)
	}
	return &user, nil
}

// GetWorkersByCompany lists the company's workers.
func (r *GORMUserRepository) GetWorkersByCompany(companyID string) ([]models.User, error) {
	var workers []models.User
	err := r.db.Find(&workers, "company_id = ? AND role = ?", companyID, models.RoleWorker).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get workers for company %s: %w", companyID, err)
	}
	return workers, nil
}

// GORMCompanyRepository is a GORM implementation of CompanyRepository.
type GORMCompanyRepository struct {
	db *gorm.DB
}

// NewGORMCompanyRepository creates a new instance of GORMCompanyRepository.
func NewGORMCompanyRepository(db *gorm.DB) *GORMCompanyRepository {
	return &GORMCompanyRepository{
		db: db,
	}
}

// Create creates a new company in the database.
func (r *GORMCompanyRepository) Create(company *models.Company) error {
	if company.ID == "" {
		company.ID = uuid.New().String()
	}
	if err := r.db.Create(company).Error; err != nil {
		return fmt.Errorf("failed to create company: %w", err)
	}
	return nil
}

// GetByName retrieves a company by its name from the database.
func (r *GORMCompanyRepository) GetByName(name string) (*models.Company, error) {
	var company models.Company
	if err := r.db.First(&company, "name = ?", name).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("company with name %s: %w", name, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get company by name %s: %w", name, err)
	}
	return &company, nil
}

// GetByID retrieves a company by its ID from the database.
func (r *GORMCompanyRepository) GetByID(id string) (*models.Company, error) {
	var company models.Company
	if err := r.db.First(&company, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("company with ID %s: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get company by ID %s: %w", id, err)
	}
	return &company, nil
}
