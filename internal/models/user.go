package models

import "gorm.io/gorm"

// User roles. A worker is a regular User with RoleWorker; there is no
// separate worker entity.
const (
	RoleCompanyManager    = "CompanyManager"
	RoleStorehouseManager = "StorehouseManager"
	RoleWorker            = "Worker"
)

// User represents an account within a company.
type User struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Username   string `json:"username" gorm:"uniqueIndex;type:varchar(100)" validate:"required,min=3,max=100"`
	Email      string `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Password   string `gorm:"type:varchar(255)" validate:"required,min=6"` // No json tag for security
	Role       string `json:"role" gorm:"type:varchar(32)" validate:"required,oneof=CompanyManager StorehouseManager Worker"`
	CompanyID  string `json:"company_id" gorm:"index;type:varchar(36)" validate:"required"`
	gorm.Model        // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

// CallerContext identifies the authenticated caller of a service operation.
// It is resolved from JWT claims by the auth middleware and passed explicitly
// into every service call instead of being read from ambient state.
type CallerContext struct {
	UserID    string
	Role      string
	CompanyID string
}
