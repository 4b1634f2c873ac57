package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/mfcardoso/soure-transport/pkg/core/model"
	"github.com/mfcardoso/soure-transport/pkg/core/schedule"
)

// CreateRecurringResult lists the requests generated from the template
type CreateRecurringResult struct {
	Requests []model.BusRequest
}

// CreateRecurring expands a weekly template into one independent
// request per matching day and persists the whole batch
// Each generated request is validated and conflict-checked against the
// stored requests; the copies are not checked against each other
func CreateRecurring(
	ctx context.Context,
	store RequestStore,
	logger *zap.Logger,
	template model.BusRequest,
	weekdays []int,
	endDate string,
) (*CreateRecurringResult, error) {
	logger.Debug("Starting createRecurring",
		zap.String("start", template.DepartureDate),
		zap.String("end", endDate),
		zap.Ints("weekdays", weekdays))

	if template.Status == "" {
		template.Status = model.StatusPending
	}
	if err := validateRequest(&template); err != nil {
		return nil, err
	}
	template.Assignments = template.CompleteAssignments()

	generated, err := schedule.ExpandWeekly(template, weekdays, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to expand recurrence: %w", err)
	}

	snapshot, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}

	for i := range generated {
		if err := checkAssignmentConflicts(snapshot, &generated[i]); err != nil {
			return nil, fmt.Errorf("occurrence on %s: %w", generated[i].DepartureDate, err)
		}
		generated[i].Status = schedule.NextStatus(generated[i].Status, len(generated[i].Assignments) > 0)
	}

	if err := ensureRequesterEntity(ctx, store, logger, snapshot, template.RequesterName); err != nil {
		return nil, err
	}

	snapshot.Requests = append(snapshot.Requests, generated...)
	if err := store.ReplaceRequests(ctx, snapshot.Requests); err != nil {
		return nil, fmt.Errorf("failed to save requests: %w", err)
	}

	logger.Info("Created recurring requests",
		zap.Int("count", len(generated)),
		zap.String("start", template.DepartureDate),
		zap.String("end", endDate))

	return &CreateRecurringResult{Requests: generated}, nil
}
