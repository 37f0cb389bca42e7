package models

import "gorm.io/gorm"

// Company is the tenant root. Every company-scoped entity carries a CompanyID
// and queries are filtered by the caller's company.
type Company struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name       string `json:"name" gorm:"uniqueIndex;type:varchar(100)" validate:"required,min=2,max=100"`
	gorm.Model        // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

// Category groups products within a company.
type Category struct {
	ID          string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Description string `json:"description" validate:"omitempty,max=500"`
	CompanyID   string `json:"company_id" gorm:"index;type:varchar(36)"`
	gorm.Model
}

// Supplier represents a vendor products are sourced from.
type Supplier struct {
	ID          string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Email       string `json:"email" validate:"omitempty,email"`
	PhoneNumber string `json:"phone_number" validate:"omitempty,max=32"`
	CompanyID   string `json:"company_id" gorm:"index;type:varchar(36)"`
	gorm.Model
}

// Storehouse is a physical warehouse location owned by a company.
type Storehouse struct {
	ID         string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name       string    `json:"name" validate:"required,min=2,max=100"`
	Address    string    `json:"address" validate:"omitempty,max=255"`
	CompanyID  string    `json:"company_id" gorm:"index;type:varchar(36)"`
	Sections   []Section `json:"sections" gorm:"foreignKey:StorehouseID"`
	gorm.Model           // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

// Section is a named area inside a storehouse where products are shelved.
type Section struct {
	ID           string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name         string `json:"name" validate:"required,min=1,max=100"`
	StorehouseID string `json:"storehouse_id" gorm:"index;type:varchar(36)" validate:"required"`
	gorm.Model
}
