package repositories

import "storehouse/internal/models"

// UserRepository defines the interface for user data access.
type UserRepository interface {
	Create(user *models.User) error
	GetByUsername(username string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByID(id string) (*models.User, error)
	// GetWorkersByCompany lists the company's users with the Worker role,
	// for the assign-workers screen.
	GetWorkersByCompany(companyID string) ([]models.User, error)
}

// CompanyRepository defines the interface for tenant data access.
type CompanyRepository interface {
	Create(company *models.Company) error
	GetByName(name string) (*models.Company, error)
	GetByID(id string) (*models.Company, error)
}
