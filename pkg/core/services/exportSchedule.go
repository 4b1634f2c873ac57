package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/mfcardoso/soure-transport/pkg/clients/sheetsclient"
)

// SchedulePublisher publishes a schedule to a spreadsheet
type SchedulePublisher interface {
	PublishSchedule(spreadsheetID string, publishedSchedule *sheetsclient.PublishedSchedule) error
}

// ExportSchedule builds the schedule report for the range and publishes
// it to the configured spreadsheet, one tab per date range
func ExportSchedule(
	ctx context.Context,
	store SnapshotStore,
	publisher SchedulePublisher,
	logger *zap.Logger,
	spreadsheetID string,
	startDate, endDate string,
) (*ScheduleReport, error) {
	if spreadsheetID == "" {
		return nil, fmt.Errorf("no schedule spreadsheet configured")
	}

	report, err := BuildScheduleReport(ctx, store, logger, startDate, endDate, "")
	if err != nil {
		return nil, err
	}

	published := &sheetsclient.PublishedSchedule{
		StartDate: report.StartDate,
		EndDate:   report.EndDate,
	}
	for _, trip := range report.Trips {
		row := sheetsclient.PublishedScheduleRow{
			Date:        trip.Date,
			Departure:   trip.Departure,
			Return:      trip.Return,
			Destination: trip.Destination,
			Requester:   trip.Requester,
			Drivers:     trip.Drivers,
			Buses:       trip.Buses,
			Passengers:  trip.Passengers,
			Status:      string(trip.Status),
		}
		if trip.Capacity.Insufficient {
			row.Capacity = fmt.Sprintf("insufficient (%d/%d)", trip.Capacity.TotalCapacity, trip.Passengers)
		} else {
			row.Capacity = fmt.Sprintf("%d seats", trip.Capacity.TotalCapacity)
		}
		published.Rows = append(published.Rows, row)
	}

	if err := publisher.PublishSchedule(spreadsheetID, published); err != nil {
		return nil, fmt.Errorf("failed to publish schedule: %w", err)
	}

	logger.Info("Exported schedule",
		zap.String("spreadsheet", spreadsheetID),
		zap.Int("trips", len(report.Trips)))
	return report, nil
}
