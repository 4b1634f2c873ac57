package services

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/mfcardoso/soure-transport/pkg/core/model"
	"github.com/mfcardoso/soure-transport/pkg/core/schedule"
)

// ReportTrip is one scheduled trip in the report
type ReportTrip struct {
	RequestID   string
	Date        string
	Departure   string
	Return      string
	Destination string
	Requester   string
	Drivers     []string
	Buses       []string
	Passengers  int
	Status      model.RequestStatus
	Capacity    schedule.CapacityReport
}

// ScheduleReport is the weekly schedule between two dates
type ScheduleReport struct {
	StartDate string
	EndDate   string
	Trips     []ReportTrip
}

// BuildScheduleReport collects the trips between startDate and endDate
// inclusive, sorted by date then departure time
// Cancelled requests never appear; when driverID is set only trips
// involving that driver are kept
func BuildScheduleReport(
	ctx context.Context,
	store SnapshotStore,
	logger *zap.Logger,
	startDate, endDate string,
	driverID string,
) (*ScheduleReport, error) {
	logger.Debug("Starting scheduleReport",
		zap.String("start", startDate),
		zap.String("end", endDate),
		zap.String("driver", driverID))

	if startDate == "" || endDate == "" {
		return nil, fmt.Errorf("start and end dates are required")
	}
	if endDate < startDate {
		return nil, fmt.Errorf("end date %s is before start date %s", endDate, startDate)
	}

	snapshot, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}

	report := &ScheduleReport{StartDate: startDate, EndDate: endDate}
	for i := range snapshot.Requests {
		request := &snapshot.Requests[i]
		if request.Status == model.StatusCancelled {
			continue
		}
		if request.DepartureDate < startDate || request.DepartureDate > endDate {
			continue
		}
		if driverID != "" && !usesDriver(request, driverID) {
			continue
		}

		trip := ReportTrip{
			RequestID:   request.ID,
			Date:        request.DepartureDate,
			Departure:   request.DepartureTime,
			Return:      request.ReturnTime,
			Destination: request.Destination,
			Requester:   request.RequesterName,
			Passengers:  request.PassengerCount,
			Status:      request.Status,
			Capacity:    schedule.EvaluateCapacity(request.Assignments, request.PassengerCount, snapshot),
		}
		for _, a := range request.Assignments {
			trip.Drivers = append(trip.Drivers, driverName(snapshot, a.DriverID))
			trip.Buses = append(trip.Buses, busLabel(snapshot, a.BusID))
		}
		report.Trips = append(report.Trips, trip)
	}

	sort.Slice(report.Trips, func(i, j int) bool {
		if report.Trips[i].Date != report.Trips[j].Date {
			return report.Trips[i].Date < report.Trips[j].Date
		}
		return report.Trips[i].Departure < report.Trips[j].Departure
	})

	logger.Info("Built schedule report",
		zap.String("start", startDate),
		zap.String("end", endDate),
		zap.Int("trips", len(report.Trips)))
	return report, nil
}

func usesDriver(request *model.BusRequest, driverID string) bool {
	for _, a := range request.Assignments {
		if a.DriverID == driverID {
			return true
		}
	}
	return false
}
