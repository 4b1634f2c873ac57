package schedule

import "github.com/mfcardoso/soure-transport/pkg/core/model"

// CapacityReport describes how the combined seating capacity of a
// request's assigned buses compares to the requested passenger count.
type CapacityReport struct {
	TotalCapacity  int
	PassengerCount int

	// Insufficient is set only when at least one assignment exists and
	// capacity falls short. A request with no assignments is pending,
	// not insufficient.
	Insufficient bool
}

// Sufficient reports whether the assigned capacity covers the request.
func (r CapacityReport) Sufficient() bool {
	return !r.Insufficient
}

// TotalCapacity sums the seating capacity of the buses referenced by
// the assignments. A bus id that no longer resolves contributes zero;
// deleted vehicles never fail the computation.
func TotalCapacity(assignments []model.Assignment, snapshot *model.Snapshot) int {
	total := 0
	for _, a := range assignments {
		if bus := snapshot.BusByID(a.BusID); bus != nil {
			total += bus.Capacity
		}
	}
	return total
}

// EvaluateCapacity builds the capacity report for a request. The
// result is advisory: an insufficient request may still be saved.
func EvaluateCapacity(assignments []model.Assignment, passengerCount int, snapshot *model.Snapshot) CapacityReport {
	total := TotalCapacity(assignments, snapshot)
	return CapacityReport{
		TotalCapacity:  total,
		PassengerCount: passengerCount,
		Insufficient:   len(assignments) > 0 && total < passengerCount,
	}
}
