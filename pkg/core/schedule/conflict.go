package schedule

import "github.com/mfcardoso/soure-transport/pkg/core/model"

// ResourceKind selects which side of an assignment pair a conflict
// query is about.
type ResourceKind string

const (
	KindDriver ResourceKind = "driver"
	KindBus    ResourceKind = "bus"
)

// ConflictQuery describes one candidate resource choice for one
// assignment slot of a request being composed or edited.
type ConflictQuery struct {
	Kind       ResourceKind
	ResourceID string
	Window     TimeWindow

	// ExcludeRequestID is the id of the request being edited, so its
	// own persisted assignments don't conflict with themselves. Empty
	// for a brand-new request.
	ExcludeRequestID string

	// SlotIndex is the index of the assignment slot being edited
	// within Draft. The slot's current content never blocks itself.
	SlotIndex int

	// Draft is the in-progress assignment list of the edit.
	Draft []model.Assignment
}

// Checker decides whether drivers and buses are free for a candidate
// window. It is a pure predicate over one snapshot; building one takes
// no locks and has no side effects.
type Checker struct {
	snapshot     *model.Snapshot
	availability *AvailabilityIndex
}

// NewChecker builds a conflict checker over the snapshot.
func NewChecker(snapshot *model.Snapshot) *Checker {
	return &Checker{
		snapshot:     snapshot,
		availability: NewAvailabilityIndex(snapshot.Unavailabilities),
	}
}

// IsResourceFree reports whether the resource can be offered for the
// slot. A resource is free when it is not already used by another slot
// of the same draft, the driver has no declared unavailability on the
// date, and no other live request uses it in an overlapping window.
func (c *Checker) IsResourceFree(q ConflictQuery) bool {
	if q.ResourceID == "" {
		return true
	}

	// Intra-request exclusivity: a resource may appear in at most one
	// slot of the request being composed.
	for idx, a := range q.Draft {
		if idx == q.SlotIndex {
			continue
		}
		if resourceOf(a, q.Kind) == q.ResourceID {
			return false
		}
	}

	// Declared unavailability is whole-day and applies to drivers only.
	if q.Kind == KindDriver && q.Window.Date != "" {
		if c.availability.IsDriverUnavailable(q.ResourceID, q.Window.Date) {
			return false
		}
	}

	// Cross-request conflicts need the full window; with missing time
	// fields no overlap can be asserted (permissive by contract).
	if q.Window.Date == "" || q.Window.Start == "" || q.Window.End == "" {
		return true
	}

	for i := range c.snapshot.Requests {
		other := &c.snapshot.Requests[i]
		if other.ID == q.ExcludeRequestID || other.Status.IsTerminal() {
			continue
		}
		if other.DepartureDate != q.Window.Date {
			continue
		}
		if !c.requestUses(other, q.Kind, q.ResourceID) {
			continue
		}
		otherWindow := TimeWindow{Date: other.DepartureDate, Start: other.DepartureTime, End: other.ReturnTime}
		if q.Window.Overlaps(otherWindow) {
			return false
		}
	}

	return true
}

// FreeDrivers returns the drivers selectable for the slot. The slot's
// currently selected driver is always included so an open edit never
// hides its own valid selection.
func (c *Checker) FreeDrivers(window TimeWindow, excludeRequestID string, slotIndex int, draft []model.Assignment) []model.Driver {
	free := make([]model.Driver, 0, len(c.snapshot.Drivers))
	selected := selectedResource(draft, slotIndex, KindDriver)
	for _, d := range c.snapshot.Drivers {
		if d.ID == selected || c.IsResourceFree(ConflictQuery{
			Kind:             KindDriver,
			ResourceID:       d.ID,
			Window:           window,
			ExcludeRequestID: excludeRequestID,
			SlotIndex:        slotIndex,
			Draft:            draft,
		}) {
			free = append(free, d)
		}
	}
	return free
}

// FreeBuses returns the buses selectable for the slot, with the same
// keep-current-selection rule as FreeDrivers.
func (c *Checker) FreeBuses(window TimeWindow, excludeRequestID string, slotIndex int, draft []model.Assignment) []model.Bus {
	free := make([]model.Bus, 0, len(c.snapshot.Buses))
	selected := selectedResource(draft, slotIndex, KindBus)
	for _, b := range c.snapshot.Buses {
		if b.ID == selected || c.IsResourceFree(ConflictQuery{
			Kind:             KindBus,
			ResourceID:       b.ID,
			Window:           window,
			ExcludeRequestID: excludeRequestID,
			SlotIndex:        slotIndex,
			Draft:            draft,
		}) {
			free = append(free, b)
		}
	}
	return free
}

func (c *Checker) requestUses(r *model.BusRequest, kind ResourceKind, resourceID string) bool {
	for _, a := range r.Assignments {
		if resourceOf(a, kind) == resourceID {
			return true
		}
	}
	return false
}

func resourceOf(a model.Assignment, kind ResourceKind) string {
	if kind == KindDriver {
		return a.DriverID
	}
	return a.BusID
}

func selectedResource(draft []model.Assignment, slotIndex int, kind ResourceKind) string {
	if slotIndex < 0 || slotIndex >= len(draft) {
		return ""
	}
	return resourceOf(draft[slotIndex], kind)
}
