package services

import (
	"context"

	"github.com/mfcardoso/soure-transport/pkg/core/model"
)

// mockStore implements a test double for the store interfaces
type mockStore struct {
	snapshot *model.Snapshot

	loadErr    error
	replaceErr error

	replacedRequests         [][]model.BusRequest
	replacedDrivers          [][]model.Driver
	replacedBuses            [][]model.Bus
	replacedUnavailabilities [][]model.Unavailability
	replacedEntities         [][]model.Entity
	replacedShifts           [][]model.Shift
}

func newMockStore(snapshot *model.Snapshot) *mockStore {
	if snapshot.Requests == nil {
		snapshot.Requests = []model.BusRequest{}
	}
	return &mockStore{snapshot: snapshot}
}

func (m *mockStore) Load(ctx context.Context) (*model.Snapshot, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.snapshot, nil
}

func (m *mockStore) ReplaceRequests(ctx context.Context, requests []model.BusRequest) error {
	if m.replaceErr != nil {
		return m.replaceErr
	}
	m.snapshot.Requests = requests
	m.replacedRequests = append(m.replacedRequests, requests)
	return nil
}

func (m *mockStore) ReplaceDrivers(ctx context.Context, drivers []model.Driver) error {
	if m.replaceErr != nil {
		return m.replaceErr
	}
	m.snapshot.Drivers = drivers
	m.replacedDrivers = append(m.replacedDrivers, drivers)
	return nil
}

func (m *mockStore) ReplaceBuses(ctx context.Context, buses []model.Bus) error {
	if m.replaceErr != nil {
		return m.replaceErr
	}
	m.snapshot.Buses = buses
	m.replacedBuses = append(m.replacedBuses, buses)
	return nil
}

func (m *mockStore) ReplaceUnavailabilities(ctx context.Context, unavailabilities []model.Unavailability) error {
	if m.replaceErr != nil {
		return m.replaceErr
	}
	m.snapshot.Unavailabilities = unavailabilities
	m.replacedUnavailabilities = append(m.replacedUnavailabilities, unavailabilities)
	return nil
}

func (m *mockStore) ReplaceEntities(ctx context.Context, entities []model.Entity) error {
	if m.replaceErr != nil {
		return m.replaceErr
	}
	m.snapshot.Entities = entities
	m.replacedEntities = append(m.replacedEntities, entities)
	return nil
}

func (m *mockStore) ReplaceShifts(ctx context.Context, shifts []model.Shift) error {
	if m.replaceErr != nil {
		return m.replaceErr
	}
	m.snapshot.Shifts = shifts
	m.replacedShifts = append(m.replacedShifts, shifts)
	return nil
}

// dispatchSnapshot builds the fixture most service tests share: two
// drivers, two buses, one assigned request on the morning of June 3rd
func dispatchSnapshot() *model.Snapshot {
	return &model.Snapshot{
		Drivers: []model.Driver{
			{ID: "d1", Name: "Joao Silva", CurrentShiftID: "S1"},
			{ID: "d2", Name: "Maria Santos", CurrentShiftID: "S2"},
		},
		Buses: []model.Bus{
			{ID: "b1", Plate: "AA-00-XX", Capacity: 22},
			{ID: "b2", Plate: "BB-11-YY", Capacity: 55},
		},
		Shifts: []model.Shift{
			{ID: "S1", Name: "Shift A", Slots: 2},
			{ID: "S2", Name: "Shift B", Slots: 5},
		},
		Requests: []model.BusRequest{
			{
				ID:             "r1",
				RequesterName:  "School Cluster",
				Destination:    "Coimbra",
				DepartureDate:  "2024-06-03",
				DepartureTime:  "09:00",
				ReturnTime:     "11:00",
				PassengerCount: 20,
				Status:         model.StatusAssigned,
				Assignments:    []model.Assignment{{DriverID: "d1", BusID: "b1"}},
			},
		},
	}
}
