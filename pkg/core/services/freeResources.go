package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/mfcardoso/soure-transport/pkg/core/model"
	"github.com/mfcardoso/soure-transport/pkg/core/schedule"
)

// SnapshotStore is the read-only subset of the store
type SnapshotStore interface {
	Load(ctx context.Context) (*model.Snapshot, error)
}

// FreeResourcesResult lists the resources selectable for a window
type FreeResourcesResult struct {
	Drivers []model.Driver
	Buses   []model.Bus
}

// FreeResources returns the drivers and buses free for the given
// window. When requestID is set, that request's own assignments do not
// count against availability, matching an edit of its slots.
func FreeResources(
	ctx context.Context,
	store SnapshotStore,
	logger *zap.Logger,
	window schedule.TimeWindow,
	requestID string,
) (*FreeResourcesResult, error) {
	logger.Debug("Starting freeResources",
		zap.String("date", window.Date),
		zap.String("start", window.Start),
		zap.String("end", window.End))

	if window.Date == "" {
		return nil, fmt.Errorf("date is required")
	}

	snapshot, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}

	var draft []model.Assignment
	if requestID != "" {
		request := snapshot.RequestByID(requestID)
		if request == nil {
			return nil, fmt.Errorf("request %s not found", requestID)
		}
		draft = request.Assignments
	}

	checker := schedule.NewChecker(snapshot)
	// Slot index -1 means no slot is being edited, so no current
	// selection is exempted
	result := &FreeResourcesResult{
		Drivers: checker.FreeDrivers(window, requestID, -1, draft),
		Buses:   checker.FreeBuses(window, requestID, -1, draft),
	}

	logger.Info("Computed free resources",
		zap.String("date", window.Date),
		zap.Int("drivers", len(result.Drivers)),
		zap.Int("buses", len(result.Buses)))
	return result, nil
}
