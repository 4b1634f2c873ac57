package model

// RequestStatus is the lifecycle state of a transport request.
type RequestStatus string

const (
	StatusPending   RequestStatus = "PENDING"
	StatusAssigned  RequestStatus = "ASSIGNED"
	StatusCompleted RequestStatus = "COMPLETED"
	StatusCancelled RequestStatus = "CANCELLED"
)

func (s RequestStatus) IsValid() bool {
	return s == StatusPending || s == StatusAssigned || s == StatusCompleted || s == StatusCancelled
}

// IsTerminal reports whether the status releases the request's resources.
func (s RequestStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// UnavailabilityType categorises a driver absence period.
type UnavailabilityType string

const (
	UnavailabilityVacation UnavailabilityType = "VACATION"
	UnavailabilityBreak    UnavailabilityType = "BREAK"
	UnavailabilityOther    UnavailabilityType = "OTHER"
)

func (t UnavailabilityType) IsValid() bool {
	return t == UnavailabilityVacation || t == UnavailabilityBreak || t == UnavailabilityOther
}

// Shift is a configurable duty period definition for drivers.
// Slots is the advisory maximum number of drivers on the shift.
type Shift struct {
	ID    string
	Name  string
	Hours string // Free-text hours label, e.g. "06:30-09:30 // 15:00-19:00"
	Color string
	Slots int
}

// ContactPerson belongs to a requester entity.
type ContactPerson struct {
	ID       string
	Name     string
	Phone    string
	Position string
}

// Entity is a requester organization in the contact directory.
type Entity struct {
	ID             string
	Name           string
	Address        string
	Phone          string
	ContactPersons []ContactPerson
}

// Driver represents a bus driver on the roster.
type Driver struct {
	ID             string
	Name           string
	LicenseNumber  string
	Phone          string
	CurrentShiftID string // Empty string if no shift assigned
}

// Unavailability is a declared whole-day absence period for a driver.
// StartDate and EndDate are inclusive ISO calendar dates (YYYY-MM-DD).
type Unavailability struct {
	ID          string
	DriverID    string
	StartDate   string
	EndDate     string
	Type        UnavailabilityType
	Description string
}

// Bus is a vehicle on the fleet roster.
type Bus struct {
	ID       string
	Plate    string
	Model    string
	Capacity int
}

// Assignment commits a driver and a bus to a request. It only exists
// as an element of a request's assignment list.
type Assignment struct {
	DriverID string
	BusID    string
}

// IsComplete reports whether both sides of the pair are filled in.
func (a Assignment) IsComplete() bool {
	return a.DriverID != "" && a.BusID != ""
}

// BusRequest is a single transport service instance. DepartureDate is
// an ISO calendar date; DepartureTime and ReturnTime are zero-padded
// HH:MM strings describing a same-day window.
type BusRequest struct {
	ID             string
	RequesterName  string
	Destination    string
	DepartureDate  string
	DepartureTime  string
	ReturnTime     string
	PassengerCount int
	Status         RequestStatus
	Assignments    []Assignment
	Notes          string
}

// CompleteAssignments returns the assignments with both a driver and a
// bus filled in. Half-empty slots left over from editing are ignored
// everywhere the list has semantic meaning.
func (r *BusRequest) CompleteAssignments() []Assignment {
	filtered := make([]Assignment, 0, len(r.Assignments))
	for _, a := range r.Assignments {
		if a.IsComplete() {
			filtered = append(filtered, a)
		}
	}
	return filtered
}

// Snapshot is the full application state as held by the repository.
type Snapshot struct {
	Drivers          []Driver         `json:"drivers"`
	Buses            []Bus            `json:"buses"`
	Requests         []BusRequest     `json:"requests"`
	Unavailabilities []Unavailability `json:"unavailabilities"`
	Entities         []Entity         `json:"entities"`
	Shifts           []Shift          `json:"shifts"`
}

// DriverByID resolves a driver reference, nil if it dangles.
func (s *Snapshot) DriverByID(id string) *Driver {
	for i := range s.Drivers {
		if s.Drivers[i].ID == id {
			return &s.Drivers[i]
		}
	}
	return nil
}

// BusByID resolves a bus reference, nil if it dangles.
func (s *Snapshot) BusByID(id string) *Bus {
	for i := range s.Buses {
		if s.Buses[i].ID == id {
			return &s.Buses[i]
		}
	}
	return nil
}

// RequestByID resolves a request by id, nil if not found.
func (s *Snapshot) RequestByID(id string) *BusRequest {
	for i := range s.Requests {
		if s.Requests[i].ID == id {
			return &s.Requests[i]
		}
	}
	return nil
}

// ShiftByID resolves a shift definition, nil if not found.
func (s *Snapshot) ShiftByID(id string) *Shift {
	for i := range s.Shifts {
		if s.Shifts[i].ID == id {
			return &s.Shifts[i]
		}
	}
	return nil
}
