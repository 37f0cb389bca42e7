package services_test

import (
	"fmt"
	"testing"

	"storehouse/internal/models"
	"storehouse/internal/services"

	"github.com/stretchr/testify/assert"
)

func TestProductService_GetAllProducts(t *testing.T) {
	mockRepo := new(MockProductRepo)
	productService := services.NewProductService(mockRepo)

	expectedProducts := []models.Product{
		{ID: "1", Name: "Laptop", Price: 1200.00, Stock: 10, CompanyID: testCompanyID},
		{ID: "2", Name: "Mouse", Price: 25.00, Stock: 50, CompanyID: testCompanyID},
	}

	mockRepo.On("GetAll", testCompanyID).Return(expectedProducts, nil).Once()

	products, err := productService.GetAllProducts(testCaller)
	assert.NoError(t, err)
	assert.Len(t, products, 2)
	assert.Equal(t, expectedProducts, products)
	mockRepo.AssertExpectations(t)
}

func TestProductService_GetProductByID(t *testing.T) {
	mockRepo := new(MockProductRepo)
	productService := services.NewProductService(mockRepo)

	expectedProduct := &models.Product{ID: "1", Name: "Laptop", Price: 1200.00, Stock: 10, CompanyID: testCompanyID}
	mockRepo.On("GetByID", testCompanyID, "1").Return(expectedProduct, nil).Once()

	product, err := productService.GetProductByID(testCaller, "1")
	assert.NoError(t, err)
	assert.Equal(t, expectedProduct, product)
	mockRepo.AssertExpectations(t)

	// Test product not found
	mockRepo.On("GetByID", testCompanyID, "99").Return(nil, fmt.Errorf("product with ID 99 not found: %w", models.ErrNotFound)).Once()
	product, err = productService.GetProductByID(testCaller, "99")
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.Nil(t, product)
	mockRepo.AssertExpectations(t)
}

func TestProductService_CreateProduct(t *testing.T) {
	mockRepo := new(MockProductRepo)
	productService := services.NewProductService(mockRepo)

	newProduct := &models.Product{Name: "Keyboard", Price: 75.00, Stock: 30}
	mockRepo.On("Create", newProduct).Return(nil).Once()

	err := productService.CreateProduct(testCaller, newProduct)
	assert.NoError(t, err)
	// The product is stamped with the caller's company, never the request body's.
	assert.Equal(t, testCompanyID, newProduct.CompanyID)
	mockRepo.AssertExpectations(t)
}

func TestProductService_UpdateProduct(t *testing.T) {
	mockRepo := new(MockProductRepo)
	productService := services.NewProductService(mockRepo)

	updatedProduct := &models.Product{ID: "1", Name: "Gaming Laptop", Price: 1500.00, Stock: 8, CompanyID: "spoofed"}
	mockRepo.On("Update", updatedProduct).Return(nil).Once()

	err := productService.UpdateProduct(testCaller, updatedProduct)
	assert.NoError(t, err)
	assert.Equal(t, testCompanyID, updatedProduct.CompanyID)
	mockRepo.AssertExpectations(t)
}

func TestProductService_DeleteProduct(t *testing.T) {
	mockRepo := new(MockProductRepo)
	productService := services.NewProductService(mockRepo)

	mockRepo.On("Delete", testCompanyID, "1").Return(nil).Once()

	err := productService.DeleteProduct(testCaller, "1")
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestProductService_SearchProducts(t *testing.T) {
	mockRepo := new(MockProductRepo)
	productService := services.NewProductService(mockRepo)

	minPrice := 50.0
	params := models.ProductSearchParams{
		Term:     "lap",
		MinPrice: &minPrice,
		SortBy:   "price",
		Page:     1,
		PageSize: 10,
	}
	listings := []models.ProductListing{
		{ID: "1", Name: "Laptop", Price: 1200.00, Stock: 10, CategoryName: "Electronics"},
	}
	mockRepo.On("Search", testCompanyID, params).Return(listings, int64(1), nil).Once()

	result, total, err := productService.SearchProducts(testCaller, params)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, listings, result)
	mockRepo.AssertExpectations(t)

	// The search is always scoped to the caller's company; a different
	// caller never sees these rows.
	other := models.CallerContext{UserID: "user-2", Role: models.RoleWorker, CompanyID: "company-2"}
	mockRepo.On("Search", "company-2", params).Return([]models.ProductListing{}, int64(0), nil).Once()
	result, total, err = productService.SearchProducts(other, params)
	assert.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, result)
	mockRepo.AssertExpectations(t)
}
