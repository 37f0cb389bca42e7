package repositories

import (
	"errors"
	"fmt"

	"storehouse/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMOrderRepository is a GORM implementation of OrderRepository.
type GORMOrderRepository struct {
	db *gorm.DB
}

// NewGORMOrderRepository creates a new instance of GORMOrderRepository.
func NewGORMOrderRepository(db *gorm.DB) *GORMOrderRepository {
	return &GORMOrderRepository{
		db: db,
	}
}

// GetAll retrieves all orders of a company, items included.
func (r *GORMOrderRepository) GetAll(companyID string) ([]models.Order, error) {
	var orders []models.Order
	if err := r.db.Preload("Items").Find(&orders, "company_id = ?", companyID).Error; err != nil {
		return nil, fmt.Errorf("failed to get all orders: %w", err)
	}
	return orders, nil
}

// GetByID retrieves the full order aggregate by its ID.
func (r *GORMOrderRepository) GetByID(companyID, id string) (*models.Order, error) {
	var order models.Order
	err := r.db.
		Preload("Items").
		Preload("StatusHistory", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_status_histories.created_at ASC, order_status_histories.id ASC")
		}).
		Preload("Assignments").
		First(&order, "id = ? AND company_id = ?", id, companyID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("order with ID %s: %w", id, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get order by ID %s: %w", id, err)
	}
	return &order, nil
}

// Create persists the order with its items and status history in one
// transaction. GORM cascades the association rows from the aggregate.
func (r *GORMOrderRepository) Create(order *models.Order) error {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	if err := r.db.Create(order).Error; err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

// UpdateStatus sets the order status and appends the history entry
// atomically. The WHERE on version detects a concurrent update; when it
// fires we distinguish a lost race from a missing order.
func (r *GORMOrderRepository) UpdateStatus(id string, status string, expectedVersion int, history models.OrderStatusHistory) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Order{}).
			Where("id = ? AND version = ?", id, expectedVersion).
			Updates(map[string]interface{}{
				"status":  status,
				"version": expectedVersion + 1,
			})
		if res.Error != nil {
			return fmt.Errorf("failed to update order status: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			var count int64
			if err := tx.Model(&models.Order{}).Where("id = ?", id).Count(&count).Error; err != nil {
				return fmt.Errorf("failed to check order existence: %w", err)
			}
			if count == 0 {
				return fmt.Errorf("order with ID %s: %w", id, models.ErrNotFound)
			}
			return fmt.Errorf("order %s was modified concurrently: %w", id, models.ErrConflict)
		}

		history.OrderID = id
		if err := tx.Create(&history).Error; err != nil {
			return fmt.Errorf("failed to append status history: %w", err)
		}
		return nil
	})
}

// ReplaceAssignments deletes the existing assignment rows of the order and
// inserts the given set in one transaction.
func (r *GORMOrderRepository) ReplaceAssignments(orderID string, assignments []models.OrderAssignment) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.OrderAssignment{}, "order_id = ?", orderID).Error; err != nil {
			return fmt.Errorf("failed to clear order assignments: %w", err)
		}
		if len(assignments) == 0 {
			return nil
		}
		if err := tx.Create(&assignments).Error; err != nil {
			return fmt.Errorf("failed to create order assignments: %w", err)
		}
		return nil
	})
}
