package schedule

import "github.com/mfcardoso/soure-transport/pkg/core/model"

// ShiftOccupancy reports how many drivers currently sit on a shift
// against its slot count. The report is advisory only: nothing blocks
// assigning a driver to a shift that is already over its slots.
type ShiftOccupancy struct {
	Shift        model.Shift
	DriverCount  int
	OverCapacity bool
}

// ShiftOccupancies computes the occupancy report for every shift
// definition in the snapshot.
func ShiftOccupancies(snapshot *model.Snapshot) []ShiftOccupancy {
	reports := make([]ShiftOccupancy, 0, len(snapshot.Shifts))
	for _, shift := range snapshot.Shifts {
		count := 0
		for _, d := range snapshot.Drivers {
			if d.CurrentShiftID == shift.ID {
				count++
			}
		}
		reports = append(reports, ShiftOccupancy{
			Shift:        shift,
			DriverCount:  count,
			OverCapacity: count > shift.Slots,
		})
	}
	return reports
}

// RotateShifts moves every driver to the next shift in definition
// order, wrapping around at the end (A -> B -> C -> A). A driver with
// no shift counts as being on the first shift; one whose shift no
// longer resolves lands on the first shift. Returns the updated driver
// list; the input is not modified.
func RotateShifts(snapshot *model.Snapshot) []model.Driver {
	if len(snapshot.Shifts) == 0 {
		return append([]model.Driver(nil), snapshot.Drivers...)
	}

	indexByID := make(map[string]int, len(snapshot.Shifts))
	for i, s := range snapshot.Shifts {
		indexByID[s.ID] = i
	}

	rotated := make([]model.Driver, len(snapshot.Drivers))
	for i, d := range snapshot.Drivers {
		current := d.CurrentShiftID
		if current == "" {
			current = snapshot.Shifts[0].ID
		}
		next := 0
		if idx, ok := indexByID[current]; ok {
			next = (idx + 1) % len(snapshot.Shifts)
		}
		d.CurrentShiftID = snapshot.Shifts[next].ID
		rotated[i] = d
	}
	return rotated
}
