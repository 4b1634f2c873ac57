package schedule

import "github.com/mfcardoso/soure-transport/pkg/core/model"

// AvailabilityIndex answers whole-day unavailability queries for
// drivers. Unavailability has no time-of-day granularity: a declared
// period blocks the driver for every window on every day it covers.
type AvailabilityIndex struct {
	byDriver map[string][]model.Unavailability
}

// NewAvailabilityIndex builds an index over the given records.
func NewAvailabilityIndex(unavailabilities []model.Unavailability) *AvailabilityIndex {
	byDriver := make(map[string][]model.Unavailability)
	for _, u := range unavailabilities {
		byDriver[u.DriverID] = append(byDriver[u.DriverID], u)
	}
	return &AvailabilityIndex{byDriver: byDriver}
}

// IsDriverUnavailable reports whether the driver has a declared
// unavailability covering the date. Both period bounds are inclusive;
// ISO date strings compare lexicographically in chronological order.
func (idx *AvailabilityIndex) IsDriverUnavailable(driverID, date string) bool {
	for _, u := range idx.byDriver[driverID] {
		if u.StartDate <= date && date <= u.EndDate {
			return true
		}
	}
	return false
}

// UnavailableOn returns the drivers with a declared unavailability
// covering the date. Used by the calendar and schedule views.
func (idx *AvailabilityIndex) UnavailableOn(date string) []model.Unavailability {
	var matches []model.Unavailability
	for _, records := range idx.byDriver {
		for _, u := range records {
			if u.StartDate <= date && date <= u.EndDate {
				matches = append(matches, u)
			}
		}
	}
	return matches
}
