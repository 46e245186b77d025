package statemachine

import (
	"testing"

	"restaurant-ordering-api/models"

	"github.com/stretchr/testify/assert"
)

func TestCanApply(t *testing.T) {
	crewID := uint(7)
	pending := &models.Order{Status: models.StatusPending, DeliveryCrewID: &crewID}
	delivered := &models.Order{Status: models.StatusDelivered, DeliveryCrewID: &crewID}

	assert.NoError(t, CanApply(ActionAssignCrew, models.RoleManager, 1, pending))
	assert.NoError(t, CanApply(ActionMarkDelivered, models.RoleDelivery, crewID, pending))
	assert.NoError(t, CanApply(ActionMarkDelivered, models.RoleManager, 1, pending))
	assert.NoError(t, CanApply(ActionMarkDelivered, models.RoleAdmin, 1, pending))

	// customers never act on the lifecycle
	assert.Error(t, CanApply(ActionAssignCrew, models.RoleCustomer, 1, pending))
	// crew may only deliver their own assignment
	assert.Error(t, CanApply(ActionMarkDelivered, models.RoleDelivery, 99, pending))
	unassigned := &models.Order{Status: models.StatusPending}
	assert.Error(t, CanApply(ActionMarkDelivered, models.RoleDelivery, crewID, unassigned))
	// delivered is terminal for everyone
	assert.Error(t, CanApply(ActionMarkDelivered, models.RoleManager, 1, delivered))
	assert.Error(t, CanApply(ActionAssignCrew, models.RoleAdmin, 1, delivered))
}

func TestAllPermissionsCoversEveryAction(t *testing.T) {
	actions := map[Action]bool{}
	for _, p := range AllPermissions() {
		actions[p.Action] = true
	}
	assert.True(t, actions[ActionAssignCrew])
	assert.True(t, actions[ActionUnassignCrew])
	assert.True(t, actions[ActionMarkDelivered])
}
