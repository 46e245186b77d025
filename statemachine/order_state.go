package statemachine

import (
	"errors"

	"restaurant-ordering-api/models"
)

// Action is an operational update a staff member may apply to an order.
type Action string

const (
	ActionAssignCrew    Action = "assign_crew"
	ActionUnassignCrew  Action = "unassign_crew"
	ActionMarkDelivered Action = "mark_delivered"
)

// Permission defines which role may apply which action in which order
// state. The order model keeps the two-state boolean contract: false is
// pending, true is delivered.
type Permission struct {
	Action       Action
	Role         models.UserRole
	WhileStatus  bool // order status the action is valid in
	AssignedOnly bool // delivery crew may only act on orders assigned to them
}

// validPermissions is the authoritative lifecycle definition
var validPermissions = []Permission{
	// Managers run the kitchen side: crew assignment on pending orders only
	{Action: ActionAssignCrew, Role: models.RoleManager, WhileStatus: models.StatusPending},
	{Action: ActionUnassignCrew, Role: models.RoleManager, WhileStatus: models.StatusPending},
	// Delivered is terminal; the assigned crew member or a manager flips it
	{Action: ActionMarkDelivered, Role: models.RoleDelivery, WhileStatus: models.StatusPending, AssignedOnly: true},
	{Action: ActionMarkDelivered, Role: models.RoleManager, WhileStatus: models.StatusPending},
	// Admins may force anything
	{Action: ActionAssignCrew, Role: models.RoleAdmin, WhileStatus: models.StatusPending},
	{Action: ActionUnassignCrew, Role: models.RoleAdmin, WhileStatus: models.StatusPending},
	{Action: ActionMarkDelivered, Role: models.RoleAdmin, WhileStatus: models.StatusPending},
}

type permissionKey struct {
	Action Action
	Role   models.UserRole
	Status bool
}

// Build a lookup map for O(1) validation
var permissionMap = func() map[permissionKey]Permission {
	m := make(map[permissionKey]Permission)
	for _, p := range validPermissions {
		m[permissionKey{p.Action, p.Role, p.WhileStatus}] = p
	}
	return m
}()

// CanApply checks whether an actor may apply an action to the given order.
// actorID is matched against the order's assigned crew when the permission
// is restricted to the assignee.
func CanApply(action Action, role models.UserRole, actorID uint, order *models.Order) error {
	p, ok := permissionMap[permissionKey{Action: action, Role: role, Status: order.Status}]
	if !ok {
		return errors.New(
			"invalid action: '" + string(action) + "' is not allowed for role '" +
				string(role) + "' while the order is " + statusName(order.Status),
		)
	}
	if p.AssignedOnly {
		if order.DeliveryCrewID == nil || *order.DeliveryCrewID != actorID {
			return errors.New("invalid action: order is not assigned to this delivery crew member")
		}
	}
	return nil
}

func statusName(status bool) string {
	if status == models.StatusDelivered {
		return "delivered (terminal state)"
	}
	return "pending"
}

// AllPermissions returns the full lifecycle table for documentation
func AllPermissions() []Permission {
	return validPermissions
}
