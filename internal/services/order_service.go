package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"storehouse/internal/models"
	"storehouse/internal/repositories"
)

// EventPublisher publishes domain events to the message broker.
// Publishing is fire-and-forget: a failed publish is logged and never fails
// or rolls back the operation that triggered it.
type EventPublisher interface {
	Publish(exchange, routingKey string, body []byte) error
}

// OrderItemInput is one requested line of a new order.
type OrderItemInput struct {
	ProductID string
	Quantity  int
}

// CreateOrderInput carries the parameters of a new order.
type CreateOrderInput struct {
	UserID                    string
	Items                     []OrderItemInput
	ClientName                string
	ClientPhoneNumber         string
	ShippingAddressStreet     string
	ShippingAddressCity       string
	ShippingAddressPostalCode string
	ShippingAddressCountry    string
}

// OrderService orchestrates the order lifecycle: creation, status
// transitions and worker assignment.
type OrderService struct {
	orderRepo   repositories.OrderRepository
	productRepo repositories.ProductRepository
	userRepo    repositories.UserRepository
	publisher   EventPublisher
}

// NewOrderService creates a new OrderService.
func NewOrderService(orderRepo repositories.OrderRepository, productRepo repositories.ProductRepository, userRepo repositories.UserRepository, publisher EventPublisher) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
		publisher:   publisher,
	}
}

// GetAllOrders retrieves all orders of the caller's company.
func (s *OrderService) GetAllOrders(caller models.CallerContext) ([]models.Order, error) {
	return s.orderRepo.GetAll(caller.CompanyID)
}

// GetOrderByID retrieves the full order aggregate (items, status history,
// assignments), scoped to the caller's company.
func (s *OrderService) GetOrderByID(caller models.CallerContext, id string) (*models.Order, error) {
	return s.orderRepo.GetByID(caller.CompanyID, id)
}

// CreateOrder validates the requested items against the catalog, snapshots
// unit prices, computes the total and persists the order with status Created.
func (s *OrderService) CreateOrder(caller models.CallerContext, input CreateOrderInput) (*models.Order, error) {
	if len(input.Items) == 0 {
		return nil, fmt.Errorf("order must contain at least one item: %w", models.ErrValidation)
	}

	// The creator must resolve to a known user of the caller's company.
	creator, err := s.userRepo.GetByID(input.UserID)
	if err != nil {
		return nil, err
	}
	if creator.CompanyID != caller.CompanyID {
		return nil, fmt.Errorf("user %s is not a member of this company: %w", input.UserID, models.ErrValidation)
	}

	var totalPrice float64
	var processedItems []models.OrderItem
	// Stock is checked against the summed quantity per product, so several
	// lines referencing the same product cannot slip past the limit.
	requested := make(map[string]int, len(input.Items))

	for _, item := range input.Items {
		if item.Quantity < 1 {
			return nil, fmt.Errorf("quantity for product %s must be at least 1: %w", item.ProductID, models.ErrValidation)
		}

		product, err := s.productRepo.GetByID(caller.CompanyID, item.ProductID)
		if err != nil {
			if errors.Is(err, models.ErrNotFound) {
				// A dangling product reference is invalid input, not a
				// missing resource.
				return nil, fmt.Errorf("product %s does not exist: %w", item.ProductID, models.ErrValidation)
			}
			return nil, err
		}

		requested[item.ProductID] += item.Quantity
		if product.Stock < requested[item.ProductID] {
			return nil, fmt.Errorf("insufficient stock for product %s (requested: %d, available: %d): %w",
				product.Name, requested[item.ProductID], product.Stock, models.ErrValidation)
		}

		// Snapshot the catalog price; later price changes do not touch
		// existing orders.
		processedItems = append(processedItems, models.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: product.Price,
		})
		totalPrice += product.Price * float64(item.Quantity)
	}

	now := time.Now().UTC()
	newOrder := &models.Order{
		Status:                    models.OrderStatusCreated,
		TotalPrice:                totalPrice,
		CreatedByUserID:           creator.ID,
		ClientName:                input.ClientName,
		ClientPhoneNumber:         input.ClientPhoneNumber,
		ShippingAddressStreet:     input.ShippingAddressStreet,
		ShippingAddressCity:       input.ShippingAddressCity,
		ShippingAddressPostalCode: input.ShippingAddressPostalCode,
		ShippingAddressCountry:    input.ShippingAddressCountry,
		CompanyID:                 caller.CompanyID,
		Items:                     processedItems,
		StatusHistory: []models.OrderStatusHistory{{
			Status:          models.OrderStatusCreated,
			UpdatedByUserID: creator.ID,
			Description:     "Order created",
			CreatedAt:       now,
		}},
	}

	if err := s.orderRepo.Create(newOrder); err != nil {
		return nil, fmt.Errorf("failed to create order in repository: %w", err)
	}

	s.publish("order.created", map[string]interface{}{
		"order_id":   newOrder.ID,
		"company_id": newOrder.CompanyID,
		"created_by": creator.ID,
		"status":     newOrder.Status,
		"total":      newOrder.TotalPrice,
		"timestamp":  now,
	})

	return newOrder, nil
}

// UpdateOrderStatus moves the order to newStatus if the transition table
// allows it for the caller's role, and appends a status history entry.
func (s *OrderService) UpdateOrderStatus(caller models.CallerContext, orderID, newStatus, description string) error {
	order, err := s.orderRepo.GetByID(caller.CompanyID, orderID)
	if err != nil {
		return err
	}

	if !CanTransition(order.Status, newStatus, caller.Role) {
		return fmt.Errorf("role %s may not move order from %s to %s: %w",
			caller.Role, order.Status, newStatus, models.ErrForbidden)
	}

	if description == "" {
		description = fmt.Sprintf("Status updated to %s", newStatus)
	}

	now := time.Now().UTC()
	history := models.OrderStatusHistory{
		Status:          newStatus,
		UpdatedByUserID: caller.UserID,
		Description:     description,
		CreatedAt:       now,
	}

	if err := s.orderRepo.UpdateStatus(order.ID, newStatus, order.Version, history); err != nil {
		return err
	}

	s.publish("order.status_changed", map[string]interface{}{
		"order_id":   order.ID,
		"old_status": order.Status,
		"new_status": newStatus,
		"updated_by": caller.UserID,
		"message":    description,
		"timestamp":  now,
	})

	return nil
}

// AssignWorkers replaces the order's full set of worker assignments with the
// given worker IDs. An empty list un-assigns everyone. Newly added workers
// are notified; removed workers are not.
func (s *OrderService) AssignWorkers(caller models.CallerContext, orderID string, workerIDs []string) error {
	order, err := s.orderRepo.GetByID(caller.CompanyID, orderID)
	if err != nil {
		return err
	}

	existing := make(map[string]bool, len(order.Assignments))
	for _, a := range order.Assignments {
		existing[a.WorkerID] = true
	}

	now := time.Now().UTC()
	assignments := make([]models.OrderAssignment, 0, len(workerIDs))
	// The worker list is a set; repeated IDs collapse to one assignment row.
	seen := make(map[string]bool, len(workerIDs))
	var added []string
	for _, workerID := range workerIDs {
		if seen[workerID] {
			continue
		}
		seen[workerID] = true
		worker, err := s.userRepo.GetByID(workerID)
		if err != nil {
			if errors.Is(err, models.ErrNotFound) {
				return fmt.Errorf("worker %s does not exist: %w", workerID, models.ErrValidation)
			}
			return err
		}
		if worker.Role != models.RoleWorker || worker.CompanyID != caller.CompanyID {
			return fmt.Errorf("user %s is not a worker of this company: %w", workerID, models.ErrValidation)
		}
		assignments = append(assignments, models.OrderAssignment{
			OrderID:    order.ID,
			WorkerID:   workerID,
			AssignedAt: now,
		})
		if !existing[workerID] {
			added = append(added, workerID)
		}
	}

	if err := s.orderRepo.ReplaceAssignments(order.ID, assignments); err != nil {
		return err
	}

	for _, workerID := range added {
		s.publish("order.worker_assigned", map[string]interface{}{
			"order_id":  order.ID,
			"worker_id": workerID,
			"timestamp": now,
		})
	}

	return nil
}

// publish marshals the event and sends it to the broker. Failures are logged
// and swallowed; notifications never fail the underlying operation.
func (s *OrderService) publish(routingKey string, event map[string]interface{}) {
	if s.publisher == nil {
		log.Println("Event publisher is not initialized. Skipping message publication.")
		return
	}
	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("Failed to marshal %s event: %v", routingKey, err)
		return
	}
	if err := s.publisher.Publish("storehouse.events", routingKey, body); err != nil {
		log.Printf("Warning: Failed to publish %s event: %v", routingKey, err)
	}
}
