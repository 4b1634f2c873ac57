package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mfcardoso/soure-transport/pkg/core/model"
)

func capacitySnapshot() *model.Snapshot {
	return &model.Snapshot{
		Buses: []model.Bus{
			{ID: "b1", Plate: "AA-00-XX", Capacity: 22},
			{ID: "b2", Plate: "BB-11-YY", Capacity: 22},
			{ID: "b3", Plate: "CC-22-ZZ", Capacity: 55},
		},
	}
}

func TestTotalCapacity_Empty(t *testing.T) {
	assert.Equal(t, 0, TotalCapacity(nil, capacitySnapshot()))
	assert.Equal(t, 0, TotalCapacity([]model.Assignment{}, capacitySnapshot()))
}

func TestTotalCapacity_Sums(t *testing.T) {
	assignments := []model.Assignment{
		{DriverID: "d1", BusID: "b1"},
		{DriverID: "d2", BusID: "b3"},
	}
	assert.Equal(t, 77, TotalCapacity(assignments, capacitySnapshot()))
}

func TestTotalCapacity_OrderInvariant(t *testing.T) {
	snapshot := capacitySnapshot()
	forward := []model.Assignment{{BusID: "b1"}, {BusID: "b2"}, {BusID: "b3"}}
	reversed := []model.Assignment{{BusID: "b3"}, {BusID: "b2"}, {BusID: "b1"}}

	assert.Equal(t, TotalCapacity(forward, snapshot), TotalCapacity(reversed, snapshot))
}

func TestTotalCapacity_DanglingBusCountsZero(t *testing.T) {
	assignments := []model.Assignment{
		{DriverID: "d1", BusID: "b1"},
		{DriverID: "d2", BusID: "deleted-bus"},
	}
	assert.Equal(t, 22, TotalCapacity(assignments, capacitySnapshot()))
}

func TestEvaluateCapacity_Insufficient(t *testing.T) {
	// 40 passengers against one 22-seat bus
	report := EvaluateCapacity([]model.Assignment{{DriverID: "d1", BusID: "b1"}}, 40, capacitySnapshot())
	assert.Equal(t, 22, report.TotalCapacity)
	assert.True(t, report.Insufficient)
	assert.False(t, report.Sufficient())

	// Adding a second 22-seat bus covers it
	report = EvaluateCapacity([]model.Assignment{
		{DriverID: "d1", BusID: "b1"},
		{DriverID: "d2", BusID: "b2"},
	}, 40, capacitySnapshot())
	assert.Equal(t, 44, report.TotalCapacity)
	assert.False(t, report.Insufficient)
}

func TestEvaluateCapacity_NoAssignmentsIsPendingNotInsufficient(t *testing.T) {
	report := EvaluateCapacity(nil, 40, capacitySnapshot())
	assert.Equal(t, 0, report.TotalCapacity)
	assert.False(t, report.Insufficient)
}

func TestEvaluateCapacity_ExactFit(t *testing.T) {
	report := EvaluateCapacity([]model.Assignment{{BusID: "b1"}}, 22, capacitySnapshot())
	assert.False(t, report.Insufficient)
}
