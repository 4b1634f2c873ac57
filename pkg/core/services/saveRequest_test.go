package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mfcardoso/soure-transport/pkg/core/model"
)

func TestSaveRequest_CreateWithAssignment(t *testing.T) {
	mock := newMockStore(dispatchSnapshot())
	logger := zap.NewNop()
	ctx := context.Background()

	result, err := SaveRequest(ctx, mock, logger, model.BusRequest{
		RequesterName:  "Sports Club",
		Destination:    "Figueira da Foz",
		DepartureDate:  "2024-06-04",
		DepartureTime:  "08:00",
		ReturnTime:     "18:00",
		PassengerCount: 40,
		Assignments:    []model.Assignment{{DriverID: "d2", BusID: "b2"}},
	})
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.True(t, result.Created)
	assert.NotEmpty(t, result.Request.ID)
	assert.Equal(t, model.StatusAssigned, result.Request.Status)
	assert.Equal(t, 55, result.Capacity.TotalCapacity)
	assert.False(t, result.Capacity.Insufficient)

	require.Len(t, mock.replacedRequests, 1)
	assert.Len(t, mock.snapshot.Requests, 2)
}

func TestSaveRequest_CreateWithoutAssignmentsIsPending(t *testing.T) {
	mock := newMockStore(dispatchSnapshot())

	result, err := SaveRequest(context.Background(), mock, zap.NewNop(), model.BusRequest{
		RequesterName:  "Parish Council",
		Destination:    "Lisboa",
		DepartureDate:  "2024-06-05",
		PassengerCount: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, model.StatusPending, result.Request.Status)
}

func TestSaveRequest_FiltersIncompleteAssignments(t *testing.T) {
	mock := newMockStore(dispatchSnapshot())

	result, err := SaveRequest(context.Background(), mock, zap.NewNop(), model.BusRequest{
		RequesterName:  "Parish Council",
		Destination:    "Lisboa",
		DepartureDate:  "2024-06-05",
		PassengerCount: 10,
		Assignments: []model.Assignment{
			{DriverID: "d2"}, // no bus picked yet
			{BusID: "b2"},    // no driver picked yet
		},
	})
	require.NoError(t, err)

	assert.Empty(t, result.Request.Assignments)
	assert.Equal(t, model.StatusPending, result.Request.Status)
}

func TestSaveRequest_EditReplacesStoredRequest(t *testing.T) {
	mock := newMockStore(dispatchSnapshot())

	edited := mock.snapshot.Requests[0]
	edited.Destination = "Porto"
	edited.Assignments = nil

	result, err := SaveRequest(context.Background(), mock, zap.NewNop(), edited)
	require.NoError(t, err)

	assert.False(t, result.Created)
	assert.Equal(t, model.StatusPending, result.Request.Status, "losing all assignments drops back to pending")
	assert.Len(t, mock.snapshot.Requests, 1)
	assert.Equal(t, "Porto", mock.snapshot.Requests[0].Destination)
}

func TestSaveRequest_EditUnknownID(t *testing.T) {
	mock := newMockStore(dispatchSnapshot())

	request := mock.snapshot.Requests[0]
	request.ID = "missing"

	_, err := SaveRequest(context.Background(), mock, zap.NewNop(), request)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestSaveRequest_CompletedStatusSticks(t *testing.T) {
	mock := newMockStore(dispatchSnapshot())

	edited := mock.snapshot.Requests[0]
	edited.Status = model.StatusCompleted

	result, err := SaveRequest(context.Background(), mock, zap.NewNop(), edited)
	require.NoError(t, err)
	assert.Equal(t, model.StatusCompleted, result.Request.Status)
}

func TestSaveRequest_ValidationErrors(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*model.BusRequest)
		message string
	}{
		{"missing requester", func(r *model.BusRequest) { r.RequesterName = "" }, "requester name is required"},
		{"missing destination", func(r *model.BusRequest) { r.Destination = "" }, "destination is required"},
		{"missing date", func(r *model.BusRequest) { r.DepartureDate = "" }, "departure date is required"},
		{"zero passengers", func(r *model.BusRequest) { r.PassengerCount = 0 }, "passenger count must be positive"},
		{"negative passengers", func(r *model.BusRequest) { r.PassengerCount = -3 }, "passenger count must be positive"},
		{"bad status", func(r *model.BusRequest) { r.Status = "DONE" }, "unknown status"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			request := model.BusRequest{
				RequesterName:  "Sports Club",
				Destination:    "Figueira da Foz",
				DepartureDate:  "2024-06-04",
				PassengerCount: 10,
			}
			tc.mutate(&request)

			_, err := SaveRequest(context.Background(), newMockStore(dispatchSnapshot()), zap.NewNop(), request)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.message)
		})
	}
}

func TestSaveRequest_RejectsOverlappingDriver(t *testing.T) {
	mock := newMockStore(dispatchSnapshot())

	// d1 already drives r1 on 2024-06-03 09:00-11:00
	_, err := SaveRequest(context.Background(), mock, zap.NewNop(), model.BusRequest{
		RequesterName:  "Sports Club",
		Destination:    "Figueira da Foz",
		DepartureDate:  "2024-06-03",
		DepartureTime:  "10:00",
		ReturnTime:     "12:00",
		PassengerCount: 10,
		Assignments:    []model.Assignment{{DriverID: "d1", BusID: "b2"}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "driver d1 is not available")
}

func TestSaveRequest_TouchingWindowsAllowed(t *testing.T) {
	mock := newMockStore(dispatchSnapshot())

	// r1 ends at 11:00; a trip starting exactly then does not conflict
	result, err := SaveRequest(context.Background(), mock, zap.NewNop(), model.BusRequest{
		RequesterName:  "Sports Club",
		Destination:    "Figueira da Foz",
		DepartureDate:  "2024-06-03",
		DepartureTime:  "11:00",
		ReturnTime:     "13:00",
		PassengerCount: 10,
		Assignments:    []model.Assignment{{DriverID: "d1", BusID: "b1"}},
	})
	require.NoError(t, err)
	assert.Equal(t, model.StatusAssigned, result.Request.Status)
}

func TestSaveRequest_RejectsDuplicateDriverOnRequest(t *testing.T) {
	mock := newMockStore(dispatchSnapshot())

	_, err := SaveRequest(context.Background(), mock, zap.NewNop(), model.BusRequest{
		RequesterName:  "Sports Club",
		Destination:    "Figueira da Foz",
		DepartureDate:  "2024-06-04",
		DepartureTime:  "08:00",
		ReturnTime:     "18:00",
		PassengerCount: 60,
		Assignments: []model.Assignment{
			{DriverID: "d2", BusID: "b1"},
			{DriverID: "d2", BusID: "b2"},
		},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "assigned twice")
}

func TestSaveRequest_RejectsUnavailableDriver(t *testing.T) {
	snapshot := dispatchSnapshot()
	snapshot.Unavailabilities = []model.Unavailability{
		{ID: "u1", DriverID: "d2", StartDate: "2024-06-04", EndDate: "2024-06-06", Type: model.UnavailabilityVacation},
	}
	mock := newMockStore(snapshot)

	_, err := SaveRequest(context.Background(), mock, zap.NewNop(), model.BusRequest{
		RequesterName:  "Sports Club",
		Destination:    "Figueira da Foz",
		DepartureDate:  "2024-06-05",
		DepartureTime:  "08:00",
		ReturnTime:     "18:00",
		PassengerCount: 10,
		Assignments:    []model.Assignment{{DriverID: "d2", BusID: "b2"}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "driver d2 is not available")
}

func TestSaveRequest_QuickAddsUnknownRequester(t *testing.T) {
	mock := newMockStore(dispatchSnapshot())

	_, err := SaveRequest(context.Background(), mock, zap.NewNop(), model.BusRequest{
		RequesterName:  "Sports Club",
		Destination:    "Figueira da Foz",
		DepartureDate:  "2024-06-04",
		PassengerCount: 10,
	})
	require.NoError(t, err)

	require.Len(t, mock.replacedEntities, 1)
	require.Len(t, mock.snapshot.Entities, 1)
	assert.Equal(t, "Sports Club", mock.snapshot.Entities[0].Name)
	assert.NotEmpty(t, mock.snapshot.Entities[0].ID)
}

func TestSaveRequest_KnownRequesterIsNotDuplicated(t *testing.T) {
	snapshot := dispatchSnapshot()
	snapshot.Entities = []model.Entity{{ID: "e1", Name: "School Cluster"}}
	mock := newMockStore(snapshot)

	edited := mock.snapshot.Requests[0]
	edited.Destination = "Porto"

	_, err := SaveRequest(context.Background(), mock, zap.NewNop(), edited)
	require.NoError(t, err)

	assert.Empty(t, mock.replacedEntities)
	require.Len(t, mock.snapshot.Entities, 1)
}

func TestSaveRequest_InsufficientCapacityIsWarningOnly(t *testing.T) {
	mock := newMockStore(dispatchSnapshot())

	// 40 passengers against the 22-seat bus still saves
	result, err := SaveRequest(context.Background(), mock, zap.NewNop(), model.BusRequest{
		RequesterName:  "Sports Club",
		Destination:    "Figueira da Foz",
		DepartureDate:  "2024-06-04",
		DepartureTime:  "08:00",
		ReturnTime:     "18:00",
		PassengerCount: 40,
		Assignments:    []model.Assignment{{DriverID: "d2", BusID: "b1"}},
	})
	require.NoError(t, err)
	assert.True(t, result.Capacity.Insufficient)
	assert.Equal(t, model.StatusAssigned, result.Request.Status)
}
