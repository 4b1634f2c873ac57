package store

import (
	"context"

	"github.com/mfcardoso/soure-transport/pkg/core/model"
)

// Store is the snapshot repository. The whole application state is one
// document; mutations replace an entire collection at a time. The
// caller owns read-compute-write consistency; concurrent writers are
// last-writer-wins at the snapshot level.
type Store interface {
	// Load returns the full snapshot, seeding initial data when the
	// backend holds nothing yet.
	Load(ctx context.Context) (*model.Snapshot, error)

	ReplaceDrivers(ctx context.Context, drivers []model.Driver) error
	ReplaceBuses(ctx context.Context, buses []model.Bus) error
	ReplaceRequests(ctx context.Context, requests []model.BusRequest) error
	ReplaceUnavailabilities(ctx context.Context, unavailabilities []model.Unavailability) error
	ReplaceEntities(ctx context.Context, entities []model.Entity) error
	ReplaceShifts(ctx context.Context, shifts []model.Shift) error
}

// SeedSnapshot returns the initial application state installed when
// the backend is empty: the municipality's three duty shifts, the
// current driver roster and fleet, and the main requester entity.
func SeedSnapshot() *model.Snapshot {
	return &model.Snapshot{
		Shifts: []model.Shift{
			{ID: "S1", Name: "Shift A (Early)", Hours: "06:30-09:30 // 15:00-19:00", Color: "orange", Slots: 2},
			{ID: "S2", Name: "Shift B (Day)", Hours: "07:30-10:30 // 15:30-19:30", Color: "blue", Slots: 5},
			{ID: "S3", Name: "Shift C (Standard)", Hours: "10:00-14:00 // 15:00-18:00", Color: "emerald", Slots: 2},
		},
		Drivers: []model.Driver{
			{ID: "d1", Name: "Joao Silva", LicenseNumber: "C-121", Phone: "912345671", CurrentShiftID: "S1"},
			{ID: "d2", Name: "Maria Santos", LicenseNumber: "D-122", Phone: "912345672", CurrentShiftID: "S1"},
			{ID: "d3", Name: "Carlos Oliveira", LicenseNumber: "C-123", Phone: "912345673", CurrentShiftID: "S2"},
			{ID: "d4", Name: "Antonio Ferreira", LicenseNumber: "D-124", Phone: "912345674", CurrentShiftID: "S2"},
			{ID: "d5", Name: "Paulo Jorge", LicenseNumber: "C-125", Phone: "912345675", CurrentShiftID: "S2"},
			{ID: "d6", Name: "Ricardo Melo", LicenseNumber: "D-126", Phone: "912345676", CurrentShiftID: "S2"},
			{ID: "d7", Name: "Fernando Costa", LicenseNumber: "C-127", Phone: "912345677", CurrentShiftID: "S2"},
			{ID: "d8", Name: "Manuel Dias", LicenseNumber: "D-128", Phone: "912345678", CurrentShiftID: "S3"},
			{ID: "d9", Name: "Jose Luis", LicenseNumber: "C-129", Phone: "912345679", CurrentShiftID: "S3"},
		},
		Buses: []model.Bus{
			{ID: "b1", Plate: "AA-00-XX", Model: "Mercedes Sprinter", Capacity: 22},
			{ID: "b2", Plate: "BB-11-YY", Model: "Volvo 9700", Capacity: 55},
			{ID: "b3", Plate: "CC-22-ZZ", Model: "Iveco Bus", Capacity: 35},
		},
		Entities: []model.Entity{
			{
				ID:      "e1",
				Name:    "Soure School Cluster",
				Address: "Rua da Escola, Soure",
				Phone:   "239500100",
				ContactPersons: []model.ContactPerson{
					{ID: "cp1", Name: "Alberto Sousa", Phone: "910000111", Position: "Director"},
				},
			},
		},
		Requests:         []model.BusRequest{},
		Unavailabilities: []model.Unavailability{},
	}
}

// normalize fills collections that predate a schema addition, so old
// blobs load cleanly after upgrades.
func normalize(s *model.Snapshot) *model.Snapshot {
	if s.Shifts == nil {
		s.Shifts = SeedSnapshot().Shifts
	}
	if s.Drivers == nil {
		s.Drivers = []model.Driver{}
	}
	if s.Buses == nil {
		s.Buses = []model.Bus{}
	}
	if s.Requests == nil {
		s.Requests = []model.BusRequest{}
	}
	if s.Unavailabilities == nil {
		s.Unavailabilities = []model.Unavailability{}
	}
	if s.Entities == nil {
		s.Entities = []model.Entity{}
	}
	return s
}
