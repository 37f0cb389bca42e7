package handlers

import (
	"fmt"
	"log"

	"storehouse/internal/middleware"
	"storehouse/internal/models"
	"storehouse/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// OrderHandler handles HTTP requests for orders.
type OrderHandler struct {
	service  *services.OrderService
	validate *validator.Validate
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService) *OrderHandler {
	return &OrderHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the order routes with the Fiber app.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	orderRoutes := router.Group("/orders")
	orderRoutes.Get("/", h.HandleGetOrders)
	orderRoutes.Get("/:id", h.HandleGetOrderByID)
	orderRoutes.Post("/", h.HandleCreateOrder)
	orderRoutes.Put("/:id/status", h.HandleUpdateOrderStatus)
	// Assignment is restricted to managers; the status policy inside the
	// service has no say over who assigns workers.
	orderRoutes.Post("/:id/assign-workers",
		middleware.RequireRoles(models.RoleCompanyManager, models.RoleStorehouseManager),
		h.HandleAssignWorkers)
}

// OrderItemRequest is one requested line of a new order.
type OrderItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
}

// CreateOrderRequest represents the request body for order creation.
type CreateOrderRequest struct {
	UserID                    string             `json:"user_id" validate:"required"`
	OrderItems                []OrderItemRequest `json:"order_items" validate:"required,min=1,dive"`
	ClientName                string             `json:"client_name" validate:"required"`
	ClientPhoneNumber         string             `json:"client_phone_number"`
	ShippingAddressStreet     string             `json:"shipping_address_street" validate:"required"`
	ShippingAddressCity       string             `json:"shipping_address_city" validate:"required"`
	ShippingAddressPostalCode string             `json:"shipping_address_postal_code" validate:"required"`
	ShippingAddressCountry    string             `json:"shipping_address_country" validate:"required"`
}

// HandleGetOrders retrieves all orders of the caller's company.
func (h *OrderHandler) HandleGetOrders(c *fiber.Ctx) error {
	caller := middleware.CallerFromContext(c)
	orders, err := h.service.GetAllOrders(caller)
	if err != nil {
		log.Printf("Error getting all orders: %v", err)
		return errorResponse(c, err, "Could not retrieve orders")
	}
	return c.JSON(orders)
}

// HandleGetOrderByID retrieves a single order aggregate by its ID.
func (h *OrderHandler) HandleGetOrderByID(c *fiber.Ctx) error {
	caller := middleware.CallerFromContext(c)
	orderID := c.Params("id")
	order, err := h.service.GetOrderByID(caller, orderID)
	if err != nil {
		log.Printf("Error getting order by ID %s: %v", orderID, err)
		return errorResponse(c, err, "Could not retrieve order")
	}
	return c.JSON(order)
}

// HandleCreateOrder creates a new order.
func (h *OrderHandler) HandleCreateOrder(c *fiber.Ctx) error {
	var req CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing create order request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		errorMessages := make(map[string]string)
		for _, e := range validationErrors {
			errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  errorMessages,
		})
	}

	items := make([]services.OrderItemInput, 0, len(req.OrderItems))
	for _, item := range req.OrderItems {
		items = append(items, services.OrderItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	caller := middleware.CallerFromContext(c)
	createdOrder, err := h.service.CreateOrder(caller, services.CreateOrderInput{
		UserID:                    req.UserID,
		Items:                     items,
		ClientName:                req.ClientName,
		ClientPhoneNumber:         req.ClientPhoneNumber,
		ShippingAddressStreet:     req.ShippingAddressStreet,
		ShippingAddressCity:       req.ShippingAddressCity,
		ShippingAddressPostalCode: req.ShippingAddressPostalCode,
		ShippingAddressCountry:    req.ShippingAddressCountry,
	})
	if err != nil {
		log.Printf("Error creating order: %v", err)
		return errorResponse(c, err, "Could not create order")
	}

	return c.Status(fiber.StatusCreated).JSON(createdOrder)
}

// UpdateOrderStatusRequest represents the request body for a status update.
type UpdateOrderStatusRequest struct {
	Status      string `json:"status" validate:"required"`
	Description string `json:"description"`
}

// HandleUpdateOrderStatus moves an order through its status lifecycle.
// The caller's role comes from the JWT claims, never from the body.
func (h *OrderHandler) HandleUpdateOrderStatus(c *fiber.Ctx) error {
	orderID := c.Params("id")

	var req UpdateOrderStatusRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing status update request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body for status update",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Status is required for order status update.",
		})
	}

	caller := middleware.CallerFromContext(c)
	if err := h.service.UpdateOrderStatus(caller, orderID, req.Status, req.Description); err != nil {
		log.Printf("Error updating order status for order %s: %v", orderID, err)
		return errorResponse(c, err, "Could not update order status")
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// AssignWorkersRequest represents the request body for worker assignment.
// An empty worker list un-assigns everyone.
type AssignWorkersRequest struct {
	WorkerIDs []string `json:"worker_ids"`
}

// HandleAssignWorkers replaces the full set of workers assigned to an order.
func (h *OrderHandler) HandleAssignWorkers(c *fiber.Ctx) error {
	orderID := c.Params("id")

	var req AssignWorkersRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing assign workers request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body for worker assignment",
			"error":   err.Error(),
		})
	}

	caller := middleware.CallerFromContext(c)
	if err := h.service.AssignWorkers(caller, orderID, req.WorkerIDs); err != nil {
		log.Printf("Error assigning workers to order %s: %v", orderID, err)
		return errorResponse(c, err, "Could not assign workers")
	}

	return c.SendStatus(fiber.StatusNoContent)
}
