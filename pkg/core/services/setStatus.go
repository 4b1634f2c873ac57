package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/mfcardoso/soure-transport/pkg/core/model"
)

// SetStatus sets a request's status directly
// This is the only path to CANCELLED and COMPLETED; derivation on save
// never produces them
func SetStatus(
	ctx context.Context,
	store RequestStore,
	logger *zap.Logger,
	requestID string,
	status model.RequestStatus,
) (*model.BusRequest, error) {
	logger.Debug("Starting setStatus",
		zap.String("id", requestID),
		zap.String("status", string(status)))

	if !status.IsValid() {
		return nil, fmt.Errorf("unknown status %q", status)
	}

	snapshot, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}

	index := indexOfRequest(snapshot.Requests, requestID)
	if index < 0 {
		return nil, fmt.Errorf("request %s not found", requestID)
	}

	snapshot.Requests[index].Status = status
	if err := store.ReplaceRequests(ctx, snapshot.Requests); err != nil {
		return nil, fmt.Errorf("failed to save requests: %w", err)
	}

	request := snapshot.Requests[index]
	logger.Info("Updated request status",
		zap.String("id", requestID),
		zap.String("status", string(status)))

	return &request, nil
}

// DeleteRequest removes a request outright
func DeleteRequest(
	ctx context.Context,
	store RequestStore,
	logger *zap.Logger,
	requestID string,
) error {
	snapshot, err := store.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load snapshot: %w", err)
	}

	index := indexOfRequest(snapshot.Requests, requestID)
	if index < 0 {
		return fmt.Errorf("request %s not found", requestID)
	}

	snapshot.Requests = append(snapshot.Requests[:index], snapshot.Requests[index+1:]...)
	if err := store.ReplaceRequests(ctx, snapshot.Requests); err != nil {
		return fmt.Errorf("failed to save requests: %w", err)
	}

	logger.Info("Deleted request", zap.String("id", requestID))
	return nil
}
