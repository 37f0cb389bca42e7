package repositories

import (
	"fmt"
	"sync"
	"time"

	"storehouse/internal/models"

	"github.com/google/uuid"
)

// MockOrderRepository is an in-memory implementation of OrderRepository.
type MockOrderRepository struct {
	orders map[string]models.Order
	mu     sync.RWMutex
}

// NewMockOrderRepository creates a new instance of MockOrderRepository.
func NewMockOrderRepository() *MockOrderRepository {
	return &MockOrderRepository{
		orders: make(map[string]models.Order),
	}
}

// GetAll returns all orders of a company.
func (r *MockOrderRepository) GetAll(companyID string) ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orderList := make([]models.Order, 0, len(r.orders))
	for _, order := range r.orders {
		if order.CompanyID == companyID {
			orderList = append(orderList, order)
		}
	}
	return orderList, nil
}

// GetByID returns an order by its ID.
func (r *MockOrderRepository) GetByID(companyID, id string) (*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.orders[id]
	if !ok || order.CompanyID != companyID {
		return nil, fmt.Errorf("order with ID %s: %w", id, models.ErrNotFound)
	}
	return &order, nil
}

// Create adds a new order.
func (r *MockOrderRepository) Create(order *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	order.CreatedAt = time.Now()
	order.UpdatedAt = time.Now()
	for i := range order.Items {
		order.Items[i].OrderID = order.ID
	}
	for i := range order.StatusHistory {
		order.StatusHistory[i].OrderID = order.ID
	}
	r.orders[order.ID] = *order
	return nil
}

// UpdateStatus updates the status of an order and appends the history entry.
func (r *MockOrderRepository) UpdateStatus(id string, status string, expectedVersion int, history models.OrderStatusHistory) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.orders[id]
	if !ok {
		return fmt.Errorf("order with ID %s: %w", id, models.ErrNotFound)
	}
	if order.Version != expectedVersion {
		return fmt.Errorf("order %s was modified concurrently: %w", id, models.ErrConflict)
	}
	order.Status = status
	order.Version = expectedVersion + 1
	order.UpdatedAt = time.Now()
	history.OrderID = id
	order.StatusHistory = append(order.StatusHistory, history)
	r.orders[id] = order
	return nil
}

// ReplaceAssignments swaps the order's assignment rows for the given set.
func (r *MockOrderRepository) ReplaceAssignments(orderID string, assignments []models.OrderAssignment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.orders[orderID]
	if !ok {
		return fmt.Errorf("order with ID %s: %w", orderID, models.ErrNotFound)
	}
	order.Assignments = append([]models.OrderAssignment(nil), assignments...)
	r.orders[orderID] = order
	return nil
}
