package models

import "time"

// Order statuses. Created is the initial status; Canceled, Completed and
// Returned are terminal.
const (
	OrderStatusCreated          = "Created"
	OrderStatusBilled           = "Billed"
	OrderStatusReadyForDelivery = "ReadyForDelivery"
	OrderStatusInTransit        = "InTransit"
	OrderStatusCompleted        = "Completed"
	OrderStatusReturned         = "Returned"
	OrderStatusCanceled         = "Canceled"
)

// OrderItem is a single line of an order. UnitPrice is the catalog price
// captured at order-creation time; later catalog price changes do not touch it.
type OrderItem struct {
	ID        uint    `json:"-" gorm:"primaryKey"`
	OrderID   string  `json:"-" gorm:"index;type:varchar(36)"`
	ProductID string  `json:"product_id" gorm:"type:varchar(36)"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// OrderStatusHistory is an append-only log entry recorded on every status
// transition. The latest entry's status always equals the order's status.
type OrderStatusHistory struct {
	ID              uint      `json:"-" gorm:"primaryKey"`
	OrderID         string    `json:"-" gorm:"index;type:varchar(36)"`
	Status          string    `json:"status" gorm:"type:varchar(32)"`
	UpdatedByUserID string    `json:"updated_by_user_id" gorm:"type:varchar(36)"`
	Description     string    `json:"description"`
	CreatedAt       time.Time `json:"created_at"`
}

// OrderAssignment links an order to a worker responsible for fulfilling it.
// The full set of rows for an order is replaced wholesale by AssignWorkers.
type OrderAssignment struct {
	OrderID    string    `json:"-" gorm:"primaryKey;type:varchar(36)"`
	WorkerID   string    `json:"worker_id" gorm:"primaryKey;type:varchar(36)"`
	AssignedAt time.Time `json:"assigned_at"`
}

// Order is a customer purchase request tracked through the status lifecycle.
// Orders are never physically deleted. Version guards concurrent status
// updates: a stale update fails instead of silently winning.
type Order struct {
	ID                        string               `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Status                    string               `json:"status" gorm:"type:varchar(32)"`
	TotalPrice                float64              `json:"total_price"`
	CreatedByUserID           string               `json:"created_by_user_id" gorm:"type:varchar(36)"`
	ClientName                string               `json:"client_name"`
	ClientPhoneNumber         string               `json:"client_phone_number"`
	ShippingAddressStreet     string               `json:"shipping_address_street"`
	ShippingAddressCity       string               `json:"shipping_address_city"`
	ShippingAddressPostalCode string               `json:"shipping_address_postal_code"`
	ShippingAddressCountry    string               `json:"shipping_address_country"`
	CompanyID                 string               `json:"company_id" gorm:"index;type:varchar(36)"`
	Version                   int                  `json:"-"`
	Items                     []OrderItem          `json:"items" gorm:"foreignKey:OrderID"`
	StatusHistory             []OrderStatusHistory `json:"status_history" gorm:"foreignKey:OrderID"`
	Assignments               []OrderAssignment    `json:"assignments" gorm:"foreignKey:OrderID"`
	CreatedAt                 time.Time            `json:"created_at"`
	UpdatedAt                 time.Time            `json:"updated_at"`
}
