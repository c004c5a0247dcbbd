package parcel

import "logistics/internal/core/domain/model/actor"

// roleAllowedStatuses is the single declarative table mapping each role to
// the statuses it may set. Entry points must consult the table through
// statusAllowedForRole instead of comparing role strings, so the gate
// cannot drift between call sites.
//
// Admin is intentionally absent: it bypasses the gate entirely.
func roleAllowedStatuses() map[actor.Role][]Status {
	return map[actor.Role][]Status{
		// Customers may never mutate parcel status.
		actor.Customer: {},

		// Drivers report the leg of the journey they physically handle.
		actor.Driver: {
			Pickup,
			InTransit,
			OutForDelivery,
			Delivered,
			Delayed,
			Lost,
			Damaged,
		},

		// Warehouse staff report intake, storage and sorting.
		actor.Warehouse: {
			Pickup,
			AtFacility,
			Sorting,
			OutForDelivery,
			Returned,
			Damaged,
		},

		// Customer service may set anything, but is still subject to the
		// abnormal-state lock.
		actor.Staff: {
			Created,
			Pickup,
			InTransit,
			AtFacility,
			Sorting,
			OutForDelivery,
			Delivered,
			Delayed,
			Exception,
			Lost,
			Damaged,
			Returned,
			Processing,
		},
	}
}

// statusAllowedForRole reports whether the role's allow-list contains the
// status. Unknown roles have an empty allow-list.
func statusAllowedForRole(role actor.Role, status Status) bool {
	for _, allowed := range roleAllowedStatuses()[role] {
		if allowed == status {
			return true
		}
	}
	return false
}
