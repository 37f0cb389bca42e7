package services

import "storehouse/internal/models"

// allowedTransitions is the role-based status transition table:
// role -> current status -> statuses the role may move the order to.
//
//	Created ──> ReadyForDelivery ──> InTransit ──> {Completed, Returned}
//	   │              │
//	   ├──> Billed    └──> Completed
//	   └──> Canceled
//
// Canceled, Completed and Returned are terminal. Billed has no outgoing row
// in the table, so nothing moves a billed order further.
var allowedTransitions = map[string]map[string][]string{
	models.RoleCompanyManager: {
		models.OrderStatusCreated: {models.OrderStatusCanceled},
	},
	models.RoleStorehouseManager: {
		models.OrderStatusCreated: {models.OrderStatusBilled, models.OrderStatusReadyForDelivery},
	},
	models.RoleWorker: {
		models.OrderStatusReadyForDelivery: {models.OrderStatusInTransit, models.OrderStatusCompleted},
		models.OrderStatusInTransit:        {models.OrderStatusReturned, models.OrderStatusCompleted},
	},
}

// CanTransition reports whether callerRole may move an order from
// currentStatus to requestedStatus. Anything not in the table is denied,
// including requesting the status the order already has. It is a pure
// function and must be consulted before any status mutation.
func CanTransition(currentStatus, requestedStatus, callerRole string) bool {
	next, ok := allowedTransitions[callerRole][currentStatus]
	if !ok {
		return false
	}
	for _, status := range next {
		if status == requestedStatus {
			return true
		}
	}
	return false
}
