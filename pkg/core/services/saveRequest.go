package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mfcardoso/soure-transport/pkg/core/model"
	"github.com/mfcardoso/soure-transport/pkg/core/schedule"
)

// RequestStore defines the persistence operations needed for request services
type RequestStore interface {
	Load(ctx context.Context) (*model.Snapshot, error)
	ReplaceRequests(ctx context.Context, requests []model.BusRequest) error
	ReplaceEntities(ctx context.Context, entities []model.Entity) error
}

// SaveRequestResult contains the saved request and the warnings the
// operator should see
type SaveRequestResult struct {
	Request  model.BusRequest
	Capacity schedule.CapacityReport
	Created  bool
}

// SaveRequest creates or updates a transport request
// An empty request ID means create; otherwise the matching stored
// request is replaced
func SaveRequest(
	ctx context.Context,
	store RequestStore,
	logger *zap.Logger,
	request model.BusRequest,
) (*SaveRequestResult, error) {
	logger.Debug("Starting saveRequest",
		zap.String("id", request.ID),
		zap.String("date", request.DepartureDate))

	if request.Status == "" {
		request.Status = model.StatusPending
	}
	if err := validateRequest(&request); err != nil {
		return nil, err
	}

	snapshot, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}

	// Half-filled assignment rows never persist
	request.Assignments = request.CompleteAssignments()

	if err := checkAssignmentConflicts(snapshot, &request); err != nil {
		return nil, err
	}

	request.Status = schedule.NextStatus(request.Status, len(request.Assignments) > 0)

	capacity := schedule.EvaluateCapacity(request.Assignments, request.PassengerCount, snapshot)
	if capacity.Insufficient {
		logger.Warn("Assigned capacity does not cover the passenger count",
			zap.Int("capacity", capacity.TotalCapacity),
			zap.Int("passengers", request.PassengerCount))
	}

	if err := ensureRequesterEntity(ctx, store, logger, snapshot, request.RequesterName); err != nil {
		return nil, err
	}

	created := request.ID == ""
	if created {
		request.ID = uuid.New().String()
		snapshot.Requests = append(snapshot.Requests, request)
	} else {
		index := indexOfRequest(snapshot.Requests, request.ID)
		if index < 0 {
			return nil, fmt.Errorf("request %s not found", request.ID)
		}
		snapshot.Requests[index] = request
	}

	if err := store.ReplaceRequests(ctx, snapshot.Requests); err != nil {
		return nil, fmt.Errorf("failed to save requests: %w", err)
	}

	logger.Info("Saved request",
		zap.String("id", request.ID),
		zap.String("status", string(request.Status)),
		zap.Bool("created", created))

	return &SaveRequestResult{Request: request, Capacity: capacity, Created: created}, nil
}

// ensureRequesterEntity quick-adds the requester to the entities
// directory when no entry with that name exists yet. Address, phone
// and contacts stay empty until the directory entry is edited.
func ensureRequesterEntity(
	ctx context.Context,
	store RequestStore,
	logger *zap.Logger,
	snapshot *model.Snapshot,
	name string,
) error {
	for _, e := range snapshot.Entities {
		if e.Name == name {
			return nil
		}
	}

	snapshot.Entities = append(snapshot.Entities, model.Entity{
		ID:   uuid.New().String(),
		Name: name,
	})
	if err := store.ReplaceEntities(ctx, snapshot.Entities); err != nil {
		return fmt.Errorf("failed to save entities: %w", err)
	}

	logger.Info("Added requester to the entities directory", zap.String("name", name))
	return nil
}

// validateRequest checks the operator-entered fields
func validateRequest(request *model.BusRequest) error {
	if request.RequesterName == "" {
		return fmt.Errorf("requester name is required")
	}
	if request.Destination == "" {
		return fmt.Errorf("destination is required")
	}
	if request.DepartureDate == "" {
		return fmt.Errorf("departure date is required")
	}
	if request.PassengerCount <= 0 {
		return fmt.Errorf("passenger count must be positive")
	}
	if !request.Status.IsValid() {
		return fmt.Errorf("unknown status %q", request.Status)
	}
	return nil
}

// checkAssignmentConflicts rejects saves whose complete assignments
// collide with unavailability or other requests on the same window
func checkAssignmentConflicts(snapshot *model.Snapshot, request *model.BusRequest) error {
	window := schedule.TimeWindow{
		Date:  request.DepartureDate,
		Start: request.DepartureTime,
		End:   request.ReturnTime,
	}
	checker := schedule.NewChecker(snapshot)

	seenDrivers := make(map[string]bool)
	seenBuses := make(map[string]bool)

	for slot, assignment := range request.Assignments {
		if seenDrivers[assignment.DriverID] {
			return fmt.Errorf("driver %s is assigned twice on the same request", assignment.DriverID)
		}
		if seenBuses[assignment.BusID] {
			return fmt.Errorf("bus %s is assigned twice on the same request", assignment.BusID)
		}
		seenDrivers[assignment.DriverID] = true
		seenBuses[assignment.BusID] = true

		if !checker.IsResourceFree(schedule.ConflictQuery{
			Kind:             schedule.KindDriver,
			ResourceID:       assignment.DriverID,
			Window:           window,
			ExcludeRequestID: request.ID,
			SlotIndex:        slot,
			Draft:            request.Assignments,
		}) {
			return fmt.Errorf("driver %s is not available on %s", assignment.DriverID, request.DepartureDate)
		}

		if !checker.IsResourceFree(schedule.ConflictQuery{
			Kind:             schedule.KindBus,
			ResourceID:       assignment.BusID,
			Window:           window,
			ExcludeRequestID: request.ID,
			SlotIndex:        slot,
			Draft:            request.Assignments,
		}) {
			return fmt.Errorf("bus %s is not available on %s", assignment.BusID, request.DepartureDate)
		}
	}

	return nil
}
