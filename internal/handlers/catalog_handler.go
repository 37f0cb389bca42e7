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

// CatalogHandler handles HTTP requests for categories, suppliers,
// storehouses and sections.
type CatalogHandler struct {
	service  *services.CatalogService
	validate *validator.Validate
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(service *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the catalog routes with the Fiber app.
func (h *CatalogHandler) RegisterRoutes(router fiber.Router) {
	categoryRoutes := router.Group("/categories")
	categoryRoutes.Get("/", h.HandleGetCategories)
	categoryRoutes.Get("/:id", h.HandleGetCategoryByID)
	categoryRoutes.Post("/", h.HandleCreateCategory)
	categoryRoutes.Put("/:id", h.HandleUpdateCategory)
	categoryRoutes.Delete("/:id", h.HandleDeleteCategory)

	supplierRoutes := router.Group("/suppliers")
	supplierRoutes.Get("/", h.HandleGetSuppliers)
	supplierRoutes.Get("/:id", h.HandleGetSupplierByID)
	supplierRoutes.Post("/", h.HandleCreateSupplier)
	supplierRoutes.Put("/:id", h.HandleUpdateSupplier)
	supplierRoutes.Delete("/:id", h.HandleDeleteSupplier)

	storehouseRoutes := router.Group("/storehouses")
	storehouseRoutes.Get("/", h.HandleGetStorehouses)
	storehouseRoutes.Get("/:id", h.HandleGetStorehouseByID)
	storehouseRoutes.Post("/", h.HandleCreateStorehouse)
	storehouseRoutes.Put("/:id", h.HandleUpdateStorehouse)
	storehouseRoutes.Delete("/:id", h.HandleDeleteStorehouse)
	storehouseRoutes.Get("/:id/sections", h.HandleGetSections)

	sectionRoutes := router.Group("/sections")
	sectionRoutes.Post("/", h.HandleCreateSection)
	sectionRoutes.Put("/:id", h.HandleUpdateSection)
	sectionRoutes.Delete("/:id", h.HandleDeleteSection)
}

// validationError formats validator errors the same way across handlers.
func (h *CatalogHandler) validationError(c *fiber.Ctx, err error) error {
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

// HandleGetCategories retrieves all categories of the caller's company.
func (h *CatalogHandler) HandleGetCategories(c *fiber.Ctx) error {
	caller := middleware.CallerFromContext(c)
	categories, err := h.service.GetAllCategories(caller)
	if err != nil {
		log.Printf("Error getting categories: %v", err)
		return errorResponse(c, err, "Could not retrieve categories")
	}
	return c.JSON(categories)
}

// HandleGetCategoryByID retrieves a single category by its ID.
func (h *CatalogHandler) HandleGetCategoryByID(c *fiber.Ctx) error {
	caller := middleware.CallerFromContext(c)
	id := c.Params("id")
	category, err := h.service.GetCategoryByID(caller, id)
	if err != nil {
		log.Printf("Error getting category %s: %v", id, err)
		return errorResponse(c, err, "Could not retrieve category")
	}
	return c.JSON(category)
}

// HandleCreateCategory creates a new category.
func (h *CatalogHandler) HandleCreateCategory(c *fiber.Ctx) error {
	var category models.Category
	if err := c.BodyParser(&category); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(category); err != nil {
		return h.validationError(c, err)
	}

	caller := middleware.CallerFromContext(c)
	if err := h.service.CreateCategory(caller, &category); err != nil {
		log.Printf("Error creating category: %v", err)
		return errorResponse(c, err, "Could not create category")
	}
	return c.Status(fiber.StatusCreated).JSON(category)
}

// HandleUpdateCategory updates an existing category.
func (h *CatalogHandler) HandleUpdateCategory(c *fiber.Ctx) error {
	var category models.Category
	if err := c.BodyParser(&category); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	category.ID = c.Params("id")
	if err := h.validate.Struct(category); err != nil {
		return h.validationError(c, err)
	}

	caller := middleware.CallerFromContext(c)
	if err := h.service.UpdateCategory(caller, &category); err != nil {
		log.Printf("Error updating category %s: %v", category.ID, err)
		return errorResponse(c, err, "Could not update category")
	}
	return c.JSON(category)
}

// HandleDeleteCategory deletes a category by its ID.
func (h *CatalogHandler) HandleDeleteCategory(c *fiber.Ctx) error {
	caller := middleware.CallerFromContext(c)
	id := c.Params("id")
	if err := h.service.DeleteCategory(caller, id); err != nil {
		log.Printf("Error deleting category %s: %v", id, err)
		return errorResponse(c, err, "Could not delete category")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleGetSuppliers retrieves all suppliers of the caller's company.
func (h *CatalogHandler) HandleGetSuppliers(c *fiber.Ctx) error {
	caller := middleware.CallerFromContext(c)
	suppliers, err := h.service.GetAllSuppliers(caller)
	if err != nil {
		log.Printf("Error getting suppliers: %v", err)
		return errorResponse(c, err, "Could not retrieve suppliers")
	}
	return c.JSON(suppliers)
}

// HandleGetSupplierByID retrieves a single supplier by its ID.
func (h *CatalogHandler) HandleGetSupplierByID(c *fiber.Ctx) error {
	caller := middleware.CallerFromContext(c)
	id := c.Params("id")
	supplier, err := h.service.GetSupplierByID(caller, id)
	if err != nil {
		log.Printf("Error getting supplier %s: %v", id, err)
		return errorResponse(c, err, "Could not retrieve supplier")
	}
	return c.JSON(supplier)
}

// HandleCreateSupplier creates a new supplier.
func (h *CatalogHandler) HandleCreateSupplier(c *fiber.Ctx) error {
	var supplier models.Supplier
	if err := c.BodyParser(&supplier); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(supplier); err != nil {
		return h.validationError(c, err)
	}

	caller := middleware.CallerFromContext(c)
	if err := h.service.CreateSupplier(caller, &supplier); err != nil {
		log.Printf("Error creating supplier: %v", err)
		return errorResponse(c, err, "Could not create supplier")
	}
	return c.Status(fiber.StatusCreated).JSON(supplier)
}

// HandleUpdateSupplier updates an existing supplier.
func (h *CatalogHandler) HandleUpdateSupplier(c *fiber.Ctx) error {
	var supplier models.Supplier
	if err := c.BodyParser(&supplier); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	supplier.ID = c.Params("id")
	if err := h.validate.Struct(supplier); err != nil {
		return h.validationError(c, err)
	}

	caller := middleware.CallerFromContext(c)
	if err := h.service.UpdateSupplier(caller, &supplier); err != nil {
		log.Printf("Error updating supplier %s: %v", supplier.ID, err)
		return errorResponse(c, err, "Could not update supplier")
	}
	return c.JSON(supplier)
}

// HandleDeleteSupplier deletes a supplier by its ID.
func (h *CatalogHandler) HandleDeleteSupplier(c *fiber.Ctx) error {
	caller := middleware.CallerFromContext(c)
	id := c.Params("id")
	if err := h.service.DeleteSupplier(caller, id); err != nil {
		log.Printf("Error deleting supplier %s: %v", id, err)
		return errorResponse(c, err, "Could not delete supplier")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleGetStorehouses retrieves all storehouses of the caller's company.
func (h *CatalogHandler) HandleGetStorehouses(c *fiber.Ctx) error {
	caller := middleware.CallerFromContext(c)
	storehouses, err := h.service.GetAllStorehouses(caller)
	if err != nil {
		log.Printf("Error getting storehouses: %v", err)
		return errorResponse(c, err, "Could not retrieve storehouses")
	}
	return c.JSON(storehouses)
}

// HandleGetStorehouseByID retrieves a single storehouse with its sections.
func (h *CatalogHandler) HandleGetStorehouseByID(c *fiber.Ctx) error {
	caller := middleware.CallerFromContext(c)
	id := c.Params("id")
	storehouse, err := h.service.GetStorehouseByID(caller, id)
	if err != nil {
		log.Printf("Error getting storehouse %s: %v", id, err)
		return errorResponse(c, err, "Could not retrieve storehouse")
	}
	return c.JSON(storehouse)
}

// HandleCreateStorehouse creates a new storehouse.
func (h *CatalogHandler) HandleCreateStorehouse(c *fiber.Ctx) error {
	var storehouse models.Storehouse
	if err := c.BodyParser(&storehouse); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(storehouse); err != nil {
		return h.validationError(c, err)
	}

	caller := middleware.CallerFromContext(c)
	if err := h.service.CreateStorehouse(caller, &storehouse); err != nil {
		log.Printf("Error creating storehouse: %v", err)
		return errorResponse(c, err, "Could not create storehouse")
	}
	return c.Status(fiber.StatusCreated).JSON(storehouse)
}

// HandleUpdateStorehouse updates an existing storehouse.
func (h *CatalogHandler) HandleUpdateStorehouse(c *fiber.Ctx) error {
	var storehouse models.Storehouse
	if err := c.BodyParser(&storehouse); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	storehouse.ID = c.Params("id")
	if err := h.validate.Struct(storehouse); err != nil {
		return h.validationError(c, err)
	}

	caller := middleware.CallerFromContext(c)
	if err := h.service.UpdateStorehouse(caller, &storehouse); err != nil {
		log.Printf("Error updating storehouse %s: %v", storehouse.ID, err)
		return errorResponse(c, err, "Could not update storehouse")
	}
	return c.JSON(storehouse)
}

// HandleDeleteStorehouse deletes a storehouse by its ID.
func (h *CatalogHandler) HandleDeleteStorehouse(c *fiber.Ctx) error {
	caller := middleware.CallerFromContext(c)
	id := c.Params("id")
	if err := h.service.DeleteStorehouse(caller, id); err != nil {
		log.Printf("Error deleting storehouse %s: %v", id, err)
		return errorResponse(c, err, "Could not delete storehouse")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleGetSections retrieves the sections of a storehouse.
func (h *CatalogHandler) HandleGetSections(c *fiber.Ctx) error {
	caller := middleware.CallerFromContext(c)
	storehouseID := c.Params("id")
	sections, err := h.service.GetSections(caller, storehouseID)
	if err != nil {
		log.Printf("Error getting sections of storehouse %s: %v", storehouseID, err)
		return errorResponse(c, err, "Could not retrieve sections")
	}
	return c.JSON(sections)
}

// HandleCreateSection creates a section inside a storehouse.
func (h *CatalogHandler) HandleCreateSection(c *fiber.Ctx) error {
	var section models.Section
	if err := c.BodyParser(&section); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(section); err != nil {
		return h.validationError(c, err)
	}

	caller := middleware.CallerFromContext(c)
	if err := h.service.CreateSection(caller, &section); err != nil {
		log.Printf("Error creating section: %v", err)
		return errorResponse(c, err, "Could not create section")
	}
	return c.Status(fiber.StatusCreated).JSON(section)
}

// HandleUpdateSection updates an existing section.
func (h *CatalogHandler) HandleUpdateSection(c *fiber.Ctx) error {
	var section models.Section
	if err := c.BodyParser(&section); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	section.ID = c.Params("id")

	caller := middleware.CallerFromContext(c)
	if err := h.service.UpdateSection(caller, &section); err != nil {
		log.Printf("Error updating section %s: %v", section.ID, err)
		return errorResponse(c, err, "Could not update section")
	}
	return c.JSON(section)
}

// HandleDeleteSection deletes a section by its ID.
func (h *CatalogHandler) HandleDeleteSection(c *fiber.Ctx) error {
	caller := middleware.CallerFromContext(c)
	id := c.Params("id")
	if err := h.service.DeleteSection(caller, id); err != nil {
		log.Printf("Error deleting section %s: %v", id, err)
		return errorResponse(c, err, "Could not delete section")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
