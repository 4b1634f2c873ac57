package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/mfcardoso/soure-transport/pkg/core/model"
	"github.com/mfcardoso/soure-transport/pkg/core/schedule"
)

// ShiftStore defines the persistence operations needed for shift services
type ShiftStore interface {
	Load(ctx context.Context) (*model.Snapshot, error)
	ReplaceDrivers(ctx context.Context, drivers []model.Driver) error
	ReplaceShifts(ctx context.Context, shifts []model.Shift) error
}

// SaveShift updates a shift definition in place. Shifts are a fixed
// roster; definitions are edited, never created or deleted here.
func SaveShift(
	ctx context.Context,
	store ShiftStore,
	logger *zap.Logger,
	shift model.Shift,
) (*model.Shift, error) {
	if shift.ID == "" {
		return nil, fmt.Errorf("shift id is required")
	}
	if shift.Name == "" {
		return nil, fmt.Errorf("shift name is required")
	}
	if shift.Slots < 0 {
		return nil, fmt.Errorf("shift slots must not be negative")
	}

	snapshot, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}

	index := -1
	for i := range snapshot.Shifts {
		if snapshot.Shifts[i].ID == shift.ID {
			index = i
			break
		}
	}
	if index < 0 {
		return nil, fmt.Errorf("shift %s not found", shift.ID)
	}

	snapshot.Shifts[index] = shift
	if err := store.ReplaceShifts(ctx, snapshot.Shifts); err != nil {
		return nil, fmt.Errorf("failed to save shifts: %w", err)
	}

	logger.Info("Updated shift definition",
		zap.String("shift", shift.ID),
		zap.String("name", shift.Name),
		zap.Int("slots", shift.Slots))
	return &shift, nil
}

// ShiftOverview returns the occupancy of every defined shift
func ShiftOverview(
	ctx context.Context,
	store SnapshotStore,
	logger *zap.Logger,
) ([]schedule.ShiftOccupancy, error) {
	snapshot, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}

	occupancies := schedule.ShiftOccupancies(snapshot)
	for _, o := range occupancies {
		if o.OverCapacity {
			logger.Warn("Shift holds more drivers than slots",
				zap.String("shift", o.Shift.Name),
				zap.Int("drivers", o.DriverCount),
				zap.Int("slots", o.Shift.Slots))
		}
	}
	return occupancies, nil
}

// AssignShift moves a driver to the given shift
func AssignShift(
	ctx context.Context,
	store ShiftStore,
	logger *zap.Logger,
	driverID, shiftID string,
) error {
	snapshot, err := store.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load snapshot: %w", err)
	}

	if shiftID != "" && snapshot.ShiftByID(shiftID) == nil {
		return fmt.Errorf("shift %s not found", shiftID)
	}

	index := -1
	for i := range snapshot.Drivers {
		if snapshot.Drivers[i].ID == driverID {
			index = i
			break
		}
	}
	if index < 0 {
		return fmt.Errorf("driver %s not found", driverID)
	}

	snapshot.Drivers[index].CurrentShiftID = shiftID
	if err := store.ReplaceDrivers(ctx, snapshot.Drivers); err != nil {
		return fmt.Errorf("failed to save drivers: %w", err)
	}

	logger.Info("Assigned shift",
		zap.String("driver", driverID),
		zap.String("shift", shiftID))
	return nil
}

// RotateShifts advances every driver to the next shift in definition
// order, wrapping from the last back to the first
func RotateShifts(
	ctx context.Context,
	store ShiftStore,
	logger *zap.Logger,
) ([]model.Driver, error) {
	snapshot, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}

	rotated := schedule.RotateShifts(snapshot)
	if err := store.ReplaceDrivers(ctx, rotated); err != nil {
		return nil, fmt.Errorf("failed to save drivers: %w", err)
	}

	logger.Info("Rotated shifts", zap.Int("drivers", len(rotated)))
	return rotated, nil
}
