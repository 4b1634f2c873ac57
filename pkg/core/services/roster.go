package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mfcardoso/soure-transport/pkg/core/model"
)

// RosterStore defines the persistence operations needed for roster services
type RosterStore interface {
	Load(ctx context.Context) (*model.Snapshot, error)
	ReplaceDrivers(ctx context.Context, drivers []model.Driver) error
	ReplaceBuses(ctx context.Context, buses []model.Bus) error
	ReplaceUnavailabilities(ctx context.Context, unavailabilities []model.Unavailability) error
}

// SaveDriver creates or updates a driver
func SaveDriver(
	ctx context.Context,
	store RosterStore,
	logger *zap.Logger,
	driver model.Driver,
) (*model.Driver, error) {
	if driver.Name == "" {
		return nil, fmt.Errorf("driver name is required")
	}

	snapshot, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}

	if driver.CurrentShiftID != "" && snapshot.ShiftByID(driver.CurrentShiftID) == nil {
		return nil, fmt.Errorf("shift %s not found", driver.CurrentShiftID)
	}

	created := driver.ID == ""
	if created {
		driver.ID = uuid.New().String()
		snapshot.Drivers = append(snapshot.Drivers, driver)
	} else {
		found := false
		for i := range snapshot.Drivers {
			if snapshot.Drivers[i].ID == driver.ID {
				snapshot.Drivers[i] = driver
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("driver %s not found", driver.ID)
		}
	}

	if err := store.ReplaceDrivers(ctx, snapshot.Drivers); err != nil {
		return nil, fmt.Errorf("failed to save drivers: %w", err)
	}

	logger.Info("Saved driver",
		zap.String("id", driver.ID),
		zap.String("name", driver.Name),
		zap.Bool("created", created))
	return &driver, nil
}

// DeleteDriver removes a driver from the roster
// Requests that reference the driver keep the dangling id; reports
// render it as a placeholder
func DeleteDriver(
	ctx context.Context,
	store RosterStore,
	logger *zap.Logger,
	driverID string,
) error {
	snapshot, err := store.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load snapshot: %w", err)
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

	snapshot.Drivers = append(snapshot.Drivers[:index], snapshot.Drivers[index+1:]...)
	if err := store.ReplaceDrivers(ctx, snapshot.Drivers); err != nil {
		return fmt.Errorf("failed to save drivers: %w", err)
	}

	logger.Info("Deleted driver", zap.String("id", driverID))
	return nil
}

// SaveBus creates or updates a bus
func SaveBus(
	ctx context.Context,
	store RosterStore,
	logger *zap.Logger,
	bus model.Bus,
) (*model.Bus, error) {
	if bus.Plate == "" {
		return nil, fmt.Errorf("bus plate is required")
	}
	if bus.Capacity <= 0 {
		return nil, fmt.Errorf("bus capacity must be positive")
	}

	snapshot, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}

	created := bus.ID == ""
	if created {
		bus.ID = uuid.New().String()
		snapshot.Buses = append(snapshot.Buses, bus)
	} else {
		found := false
		for i := range snapshot.Buses {
			if snapshot.Buses[i].ID == bus.ID {
				snapshot.Buses[i] = bus
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("bus %s not found", bus.ID)
		}
	}

	if err := store.ReplaceBuses(ctx, snapshot.Buses); err != nil {
		return nil, fmt.Errorf("failed to save buses: %w", err)
	}

	logger.Info("Saved bus",
		zap.String("id", bus.ID),
		zap.String("plate", bus.Plate),
		zap.Bool("created", created))
	return &bus, nil
}

// DeleteBus removes a bus from the fleet
func DeleteBus(
	ctx context.Context,
	store RosterStore,
	logger *zap.Logger,
	busID string,
) error {
	snapshot, err := store.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load snapshot: %w", err)
	}

	index := -1
	for i := range snapshot.Buses {
		if snapshot.Buses[i].ID == busID {
			index = i
			break
		}
	}
	if index < 0 {
		return fmt.Errorf("bus %s not found", busID)
	}

	snapshot.Buses = append(snapshot.Buses[:index], snapshot.Buses[index+1:]...)
	if err := store.ReplaceBuses(ctx, snapshot.Buses); err != nil {
		return fmt.Errorf("failed to save buses: %w", err)
	}

	logger.Info("Deleted bus", zap.String("id", busID))
	return nil
}

// AddUnavailability records a whole-day unavailability period for a driver
func AddUnavailability(
	ctx context.Context,
	store RosterStore,
	logger *zap.Logger,
	unavailability model.Unavailability,
) (*model.Unavailability, error) {
	if unavailability.DriverID == "" {
		return nil, fmt.Errorf("driver id is required")
	}
	if unavailability.StartDate == "" || unavailability.EndDate == "" {
		return nil, fmt.Errorf("start and end dates are required")
	}
	if unavailability.EndDate < unavailability.StartDate {
		return nil, fmt.Errorf("end date %s is before start date %s", unavailability.EndDate, unavailability.StartDate)
	}
	if !unavailability.Type.IsValid() {
		return nil, fmt.Errorf("unknown unavailability type %q", unavailability.Type)
	}

	snapshot, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}

	if snapshot.DriverByID(unavailability.DriverID) == nil {
		return nil, fmt.Errorf("driver %s not found", unavailability.DriverID)
	}

	unavailability.ID = uuid.New().String()
	snapshot.Unavailabilities = append(snapshot.Unavailabilities, unavailability)
	if err := store.ReplaceUnavailabilities(ctx, snapshot.Unavailabilities); err != nil {
		return nil, fmt.Errorf("failed to save unavailabilities: %w", err)
	}

	logger.Info("Added unavailability",
		zap.String("driver", unavailability.DriverID),
		zap.String("start", unavailability.StartDate),
		zap.String("end", unavailability.EndDate))
	return &unavailability, nil
}

// DeleteUnavailability removes a recorded unavailability period
func DeleteUnavailability(
	ctx context.Context,
	store RosterStore,
	logger *zap.Logger,
	unavailabilityID string,
) error {
	snapshot, err := store.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load snapshot: %w", err)
	}

	index := -1
	for i := range snapshot.Unavailabilities {
		if snapshot.Unavailabilities[i].ID == unavailabilityID {
			index = i
			break
		}
	}
	if index < 0 {
		return fmt.Errorf("unavailability %s not found", unavailabilityID)
	}

	snapshot.Unavailabilities = append(snapshot.Unavailabilities[:index], snapshot.Unavailabilities[index+1:]...)
	if err := store.ReplaceUnavailabilities(ctx, snapshot.Unavailabilities); err != nil {
		return fmt.Errorf("failed to save unavailabilities: %w", err)
	}

	logger.Info("Deleted unavailability", zap.String("id", unavailabilityID))
	return nil
}
