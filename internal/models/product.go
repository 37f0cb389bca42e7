package models

import "gorm.io/gorm"

// Product represents a catalog item stored in a storehouse section.
type Product struct {
	ID          string  `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name        string  `json:"name" validate:"required,min=3,max=100"`
	Description string  `json:"description" validate:"omitempty,max=500"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Stock       int     `json:"stock" validate:"gte=0"`
	CategoryID  string  `json:"category_id" gorm:"index;type:varchar(36)" validate:"omitempty,uuid"`
	SupplierID  string  `json:"supplier_id" gorm:"index;type:varchar(36)" validate:"omitempty,uuid"`
	SectionID   string  `json:"section_id" gorm:"index;type:varchar(36)" validate:"omitempty,uuid"`
	CompanyID   string  `json:"company_id" gorm:"index;type:varchar(36)"`
	gorm.Model          // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}

// ProductListing is a denormalized search result row: the product plus the
// names of its category, supplier, section and storehouse.
type ProductListing struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	Price          float64 `json:"price"`
	Stock          int     `json:"stock"`
	CategoryName   string  `json:"category_name"`
	SupplierName   string  `json:"supplier_name"`
	SectionName    string  `json:"section_name"`
	StorehouseName string  `json:"storehouse_name"`
}

// ProductSearchParams carries the filters, sorting and paging of a catalog
// search. Zero values mean "no filter".
type ProductSearchParams struct {
	Term           string   `json:"term"`
	MinPrice       *float64 `json:"min_price"`
	MaxPrice       *float64 `json:"max_price"`
	MinStock       *int     `json:"min_stock"`
	MaxStock       *int     `json:"max_stock"`
	CategoryName   string   `json:"category_name"`
	SupplierName   string   `json:"supplier_name"`
	SectionName    string   `json:"section_name"`
	StorehouseName string   `json:"storehouse_name"`
	SortBy         string   `json:"sort_by"`
	SortDesc       bool     `json:"sort_desc"`
	Page           int      `json:"page"`
	PageSize       int      `json:"page_size"`
}
