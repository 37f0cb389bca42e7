package services_test

import (
	"testing"

	"storehouse/internal/models"
	"storehouse/internal/services"

	"github.com/stretchr/testify/assert"
)

var allStatuses = []string{
	models.OrderStatusCreated,
	models.OrderStatusBilled,
	models.OrderStatusReadyForDelivery,
	models.OrderStatusInTransit,
	models.OrderStatusCompleted,
	models.OrderStatusReturned,
	models.OrderStatusCanceled,
}

var allRoles = []string{
	models.RoleCompanyManager,
	models.RoleStorehouseManager,
	models.RoleWorker,
}

// allowed mirrors the transition table; every other combination must be denied.
var allowed = map[[3]string]bool{
	{models.RoleCompanyManager, models.OrderStatusCreated, models.OrderStatusCanceled}:              true,
	{models.RoleStorehouseManager, models.OrderStatusCreated, models.OrderStatusBilled}:             true,
	{models.RoleStorehouseManager, models.OrderStatusCreated, models.OrderStatusReadyForDelivery}:   true,
	{models.RoleWorker, models.OrderStatusReadyForDelivery, models.OrderStatusInTransit}:            true,
	{models.RoleWorker, models.OrderStatusReadyForDelivery, models.OrderStatusCompleted}:            true,
	{models.RoleWorker, models.OrderStatusInTransit, models.OrderStatusReturned}:                    true,
	{models.RoleWorker, models.OrderStatusInTransit, models.OrderStatusCompleted}:                   true,
}

func TestCanTransition_Table(t *testing.T) {
	for _, role := range allRoles {
		for _, current := range allStatuses {
			for _, requested := range allStatuses {
				expected := allowed[[3]string{role, current, requested}]
				got := services.CanTransition(current, requested, role)
				assert.Equalf(t, expected, got,
					"role %s, %s -> %s", role, current, requested)
			}
		}
	}
}

func TestCanTransition_SameStatusDenied(t *testing.T) {
	for _, role := range allRoles {
		for _, status := range allStatuses {
			assert.Falsef(t, services.CanTransition(status, status, role),
				"role %s must not re-apply status %s", role, status)
		}
	}
}

func TestCanTransition_TerminalStatesHaveNoExits(t *testing.T) {
	terminal := []string{
		models.OrderStatusCompleted,
		models.OrderStatusReturned,
		models.OrderStatusCanceled,
	}
	for _, role := range allRoles {
		for _, current := range terminal {
			for _, requested := range allStatuses {
				assert.Falsef(t, services.CanTransition(current, requested, role),
					"role %s must not leave terminal status %s", role, current)
			}
		}
	}
}

func TestCanTransition_UnknownRoleDenied(t *testing.T) {
	assert.False(t, services.CanTransition(models.OrderStatusCreated, models.OrderStatusCanceled, "Admin"))
	assert.False(t, services.CanTransition(models.OrderStatusCreated, models.OrderStatusCanceled, ""))
}
