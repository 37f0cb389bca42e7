package handlers

import (
	"fmt"
	"log"
	"strconv"

	"storehouse/internal/middleware"
	"storehouse/internal/models"
	"storehouse/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	service  *services.ProductService
	validate *validator.Validate
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the product routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleGetProducts)
	productRoutes.Get("/search", h.HandleSearchProducts)
	productRoutes.Get("/:id", h.HandleGetProductByID)
	productRoutes.Post("/", h.HandleCreateProduct)
	productRoutes.Put("/:id", h.HandleUpdateProduct)
	productRoutes.Delete("/:id", h.HandleDeleteProduct)
}

// HandleGetProducts retrieves all products of the caller's company.
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	caller := middleware.CallerFromContext(c)
	products, err := h.service.GetAllProducts(caller)
	if err != nil {
		log.Printf("Error getting all products: %v", err)
		return errorResponse(c, err, "Could not retrieve products")
	}
	return c.JSON(products)
}

// HandleGetProductByID retrieves a single product by its ID.
func (h *ProductHandler) HandleGetProductByID(c *fiber.Ctx) error {
	caller := middleware.CallerFromContext(c)
	productID := c.Params("id")
	product, err := h.service.GetProductByID(caller, productID)
	if err != nil {
		log.Printf("Error getting product by ID %s: %v", productID, err)
		return errorResponse(c, err, "Could not retrieve product")
	}
	return c.JSON(product)
}

// HandleCreateProduct creates a new product.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		log.Printf("Error parsing create product request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(product); err != nil {
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

	caller := middleware.CallerFromContext(c)
	if err := h.service.CreateProduct(caller, &product); err != nil {
		log.Printf("Error creating product: %v", err)
		return errorResponse(c, err, "Could not create product")
	}

	return c.Status(fiber.StatusCreated).JSON(product)
}

// HandleUpdateProduct updates an existing product.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		log.Printf("Error parsing update product request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	product.ID = c.Params("id")

	if err := h.validate.Struct(product); err != nil {
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

	caller := middleware.CallerFromContext(c)
	if err := h.service.UpdateProduct(caller, &product); err != nil {
		log.Printf("Error updating product %s: %v", product.ID, err)
		return errorResponse(c, err, "Could not update product")
	}

	return c.JSON(product)
}

// HandleDeleteProduct deletes a product by its ID.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	caller := middleware.CallerFromContext(c)
	productID := c.Params("id")
	if err := h.service.DeleteProduct(caller, productID); err != nil {
		log.Printf("Error deleting product %s: %v", productID, err)
		return errorResponse(c, err, "Could not delete product")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleSearchProducts runs a filtered, sorted, paginated catalog search.
// All filters come from query parameters; absent parameters mean no filter.
func (h *ProductHandler) HandleSearchProducts(c *fiber.Ctx) error {
	params := models.ProductSearchParams{
		Term:           c.Query("term"),
		CategoryName:   c.Query("category"),
		SupplierName:   c.Query("supplier"),
		SectionName:    c.Query("section"),
		StorehouseName: c.Query("storehouse"),
		SortBy:         c.Query("sort_by"),
		SortDesc:       c.QueryBool("sort_desc"),
		Page:           c.QueryInt("page", 1),
		PageSize:       c.QueryInt("page_size", 20),
	}

	var parseErr error
	params.MinPrice, parseErr = queryFloat(c, "min_price", parseErr)
	params.MaxPrice, parseErr = queryFloat(c, "max_price", parseErr)
	params.MinStock, parseErr = queryInt(c, "min_stock", parseErr)
	params.MaxStock, parseErr = queryInt(c, "max_stock", parseErr)
	if parseErr != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid search parameter",
			"error":   parseErr.Error(),
		})
	}

	caller := middleware.CallerFromContext(c)
	listings, total, err := h.service.SearchProducts(caller, params)
	if err != nil {
		log.Printf("Error searching products: %v", err)
		return errorResponse(c, err, "Could not search products")
	}

	return c.JSON(fiber.Map{
		"items":     listings,
		"total":     total,
		"page":      params.Page,
		"page_size": params.PageSize,
	})
}

// queryFloat parses an optional float query parameter.
func queryFloat(c *fiber.Ctx, name string, prev error) (*float64, error) {
	if prev != nil {
		return nil, prev
	}
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("parameter %s must be a number", name)
	}
	return &value, nil
}

// queryInt parses an optional integer query parameter.
func queryInt(c *fiber.Ctx, name string, prev error) (*int, error) {
	if prev != nil {
		return nil, prev
	}
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("parameter %s must be an integer", name)
	}
	return &value, nil
}
