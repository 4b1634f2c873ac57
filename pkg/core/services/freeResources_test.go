package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mfcardoso/soure-transport/pkg/core/model"
	"github.com/mfcardoso/soure-transport/pkg/core/schedule"
)

func TestFreeResources_FiltersBusyResources(t *testing.T) {
	mock := newMockStore(dispatchSnapshot())

	// r1 holds d1 and b1 on 2024-06-03 09:00-11:00
	result, err := FreeResources(context.Background(), mock, zap.NewNop(), schedule.TimeWindow{
		Date:  "2024-06-03",
		Start: "10:00",
		End:   "12:00",
	}, "")
	require.NoError(t, err)

	require.Len(t, result.Drivers, 1)
	assert.Equal(t, "d2", result.Drivers[0].ID)
	require.Len(t, result.Buses, 1)
	assert.Equal(t, "b2", result.Buses[0].ID)
}

func TestFreeResources_AllFreeOnQuietDay(t *testing.T) {
	mock := newMockStore(dispatchSnapshot())

	result, err := FreeResources(context.Background(), mock, zap.NewNop(), schedule.TimeWindow{
		Date:  "2024-06-04",
		Start: "09:00",
		End:   "11:00",
	}, "")
	require.NoError(t, err)

	assert.Len(t, result.Drivers, 2)
	assert.Len(t, result.Buses, 2)
}

func TestFreeResources_UnavailableDriverExcluded(t *testing.T) {
	snapshot := dispatchSnapshot()
	snapshot.Unavailabilities = []model.Unavailability{
		{ID: "u1", DriverID: "d2", StartDate: "2024-06-04", EndDate: "2024-06-04", Type: model.UnavailabilityBreak},
	}
	mock := newMockStore(snapshot)

	result, err := FreeResources(context.Background(), mock, zap.NewNop(), schedule.TimeWindow{
		Date:  "2024-06-04",
		Start: "09:00",
		End:   "11:00",
	}, "")
	require.NoError(t, err)

	require.Len(t, result.Drivers, 1)
	assert.Equal(t, "d1", result.Drivers[0].ID)
	// Unavailability binds drivers only
	assert.Len(t, result.Buses, 2)
}

func TestFreeResources_EditingRequestSeesOwnResources(t *testing.T) {
	mock := newMockStore(dispatchSnapshot())

	// Editing r1 itself: its persisted assignments don't block, but its
	// draft slots still hold d1 and b1
	result, err := FreeResources(context.Background(), mock, zap.NewNop(), schedule.TimeWindow{
		Date:  "2024-06-03",
		Start: "09:00",
		End:   "11:00",
	}, "r1")
	require.NoError(t, err)

	require.Len(t, result.Drivers, 1)
	assert.Equal(t, "d2", result.Drivers[0].ID)
}

func TestFreeResources_RequiresDate(t *testing.T) {
	mock := newMockStore(dispatchSnapshot())

	_, err := FreeResources(context.Background(), mock, zap.NewNop(), schedule.TimeWindow{}, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "date is required")
}

func TestFreeResources_UnknownRequest(t *testing.T) {
	mock := newMockStore(dispatchSnapshot())

	_, err := FreeResources(context.Background(), mock, zap.NewNop(), schedule.TimeWindow{
		Date: "2024-06-03",
	}, "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
