package schedule

import "github.com/mfcardoso/soure-transport/pkg/core/model"

// NextStatus derives the status a request takes on save.
//
// The rules form a small state machine:
//   - no complete assignments -> PENDING
//   - assignments present     -> ASSIGNED, unless the caller kept the
//     sticky COMPLETED marker, which is preserved
//
// CANCELLED is never derived here; it is only set by an explicit
// status change. The save path also never resets a terminal status
// back to PENDING/ASSIGNED on its own.
func NextStatus(current model.RequestStatus, hasAssignments bool) model.RequestStatus {
	if !hasAssignments {
		return model.StatusPending
	}
	if current == model.StatusCompleted {
		return model.StatusCompleted
	}
	return model.StatusAssigned
}
