package repositories_test

import (
	"testing"
	"time"

	"storehouse/internal/models"
	"storehouse/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedOrder(t *testing.T, repo repositories.OrderRepository) *models.Order {
	t.Helper()
	order := &models.Order{
		Status:          models.OrderStatusCreated,
		TotalPrice:      1275.00,
		CreatedByUserID: "user-1",
		ClientName:      "Acme Ltd",
		CompanyID:       companyA,
		Items: []models.OrderItem{
			{ProductID: "prod-1", Quantity: 1, UnitPrice: 1200.00},
			{ProductID: "prod-2", Quantity: 1, UnitPrice: 75.00},
		},
		StatusHistory: []models.OrderStatusHistory{{
			Status:          models.OrderStatusCreated,
			UpdatedByUserID: "user-1",
			Description:     "Order created",
			CreatedAt:       time.Now().UTC(),
		}},
	}
	require.NoError(t, repo.Create(order))
	return order
}

func TestGORMOrderRepository_CreateAndGet(t *testing.T) {
	db := setupDB(t)
	repo := repositories.NewGORMOrderRepository(db)

	order := seedOrder(t, repo)
	assert.NotEmpty(t, order.ID)

	fetched, err := repo.GetByID(companyA, order.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.OrderStatusCreated, fetched.Status)
	assert.Len(t, fetched.Items, 2)
	assert.Len(t, fetched.StatusHistory, 1)
	assert.Equal(t, 1275.00, fetched.TotalPrice)

	// Scoped out for the other tenant.
	_, err = repo.GetByID(companyB, order.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)

	_, err = repo.GetByID(companyA, "no-such-order")
	assert.ErrorIs(t, err, models.ErrNotFound)

	orders, err := repo.GetAll(companyA)
	assert.NoError(t, err)
	assert.Len(t, orders, 1)
	orders, err = repo.GetAll(companyB)
	assert.NoError(t, err)
	assert.Empty(t, orders)
}

func TestGORMOrderRepository_UpdateStatus(t *testing.T) {
	db := setupDB(t)
	repo := repositories.NewGORMOrderRepository(db)
	order := seedOrder(t, repo)

	history := models.OrderStatusHistory{
		Status:          models.OrderStatusBilled,
		UpdatedByUserID: "user-2",
		Description:     "Status updated to Billed",
		CreatedAt:       time.Now().UTC(),
	}
	assert.NoError(t, repo.UpdateStatus(order.ID, models.OrderStatusBilled, order.Version, history))

	fetched, err := repo.GetByID(companyA, order.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.OrderStatusBilled, fetched.Status)
	assert.Equal(t, order.Version+1, fetched.Version)
	// The history entry is appended, ordered oldest first.
	require.Len(t, fetched.StatusHistory, 2)
	assert.Equal(t, models.OrderStatusCreated, fetched.StatusHistory[0].Status)
	assert.Equal(t, models.OrderStatusBilled, fetched.StatusHistory[1].Status)
	assert.Equal(t, "user-2", fetched.StatusHistory[1].UpdatedByUserID)
}

func TestGORMOrderRepository_UpdateStatus_StaleVersion(t *testing.T) {
	db := setupDB(t)
	repo := repositories.NewGORMOrderRepository(db)
	order := seedOrder(t, repo)

	history := models.OrderStatusHistory{Status: models.OrderStatusBilled, CreatedAt: time.Now().UTC()}
	require.NoError(t, repo.UpdateStatus(order.ID, models.OrderStatusBilled, order.Version, history))

	// A second update carrying the original version lost the race.
	stale := models.OrderStatusHistory{Status: models.OrderStatusCanceled, CreatedAt: time.Now().UTC()}
	err := repo.UpdateStatus(order.ID, models.OrderStatusCanceled, order.Version, stale)
	assert.ErrorIs(t, err, models.ErrConflict)

	// Nothing changed and no stray history row was written.
	fetched, getErr := repo.GetByID(companyA, order.ID)
	require.NoError(t, getErr)
	assert.Equal(t, models.OrderStatusBilled, fetched.Status)
	assert.Len(t, fetched.StatusHistory, 2)
}

func TestGORMOrderRepository_UpdateStatus_NotFound(t *testing.T) {
	db := setupDB(t)
	repo := repositories.NewGORMOrderRepository(db)

	history := models.OrderStatusHistory{Status: models.OrderStatusBilled, CreatedAt: time.Now().UTC()}
	err := repo.UpdateStatus("no-such-order", models.OrderStatusBilled, 0, history)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestGORMOrderRepository_ReplaceAssignments(t *testing.T) {
	db := setupDB(t)
	repo := repositories.NewGORMOrderRepository(db)
	order := seedOrder(t, repo)

	now := time.Now().UTC()
	first := []models.OrderAssignment{
		{OrderID: order.ID, WorkerID: "worker-1", AssignedAt: now},
		{OrderID: order.ID, WorkerID: "worker-2", AssignedAt: now},
	}
	assert.NoError(t, repo.ReplaceAssignments(order.ID, first))

	fetched, err := repo.GetByID(companyA, order.ID)
	require.NoError(t, err)
	assert.Len(t, fetched.Assignments, 2)

	// Replacement is wholesale: worker-2 drops out, worker-3 comes in.
	second := []models.OrderAssignment{
		{OrderID: order.ID, WorkerID: "worker-1", AssignedAt: now},
		{OrderID: order.ID, WorkerID: "worker-3", AssignedAt: now},
	}
	assert.NoError(t, repo.ReplaceAssignments(order.ID, second))

	fetched, err = repo.GetByID(companyA, order.ID)
	require.NoError(t, err)
	workers := []string{fetched.Assignments[0].WorkerID, fetched.Assignments[1].WorkerID}
	assert.ElementsMatch(t, []string{"worker-1", "worker-3"}, workers)

	// Empty set clears all assignments.
	assert.NoError(t, repo.ReplaceAssignments(order.ID, nil))
	fetched, err = repo.GetByID(companyA, order.ID)
	require.NoError(t, err)
	assert.Empty(t, fetched.Assignments)
}
