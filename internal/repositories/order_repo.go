package repositories

import (
	"storehouse/internal/models"
)

// OrderRepository defines the interface for order aggregate access.
// Orders are never deleted; they only change status or assignments.
type OrderRepository interface {
	GetAll(companyID string) ([]models.Order, error)
	// GetByID loads the full aggregate: items, status history and assignments.
	GetByID(companyID, id string) (*models.Order, error)
	// Create persists the order together with its items and initial status
	// history entry in one transaction.
	Create(order *models.Order) error
	// UpdateStatus sets the order status and appends the history entry
	// atomically. expectedVersion guards against concurrent updates: a stale
	// version fails with ErrConflict instead of overwriting.
	UpdateStatus(id string, status string, expectedVersion int, history models.OrderStatusHistory) error
	// ReplaceAssignments swaps the full set of assignment rows for the order.
	// An empty slice un-assigns everyone.
	ReplaceAssignments(orderID string, assignments []models.OrderAssignment) error
}
