package services

import (
	"github.com/mfcardoso/soure-transport/pkg/core/model"
)

// indexOfRequest returns the position of the request with the given id,
// or -1 when absent
func indexOfRequest(requests []model.BusRequest, id string) int {
	for i := range requests {
		if requests[i].ID == id {
			return i
		}
	}
	return -1
}

// driverName resolves a driver id to its display name, falling back to
// a placeholder for references whose driver was deleted
func driverName(snapshot *model.Snapshot, id string) string {
	if d := snapshot.DriverByID(id); d != nil {
		return d.Name
	}
	return "unknown driver"
}

// busLabel resolves a bus id to its plate, falling back to a
// placeholder for references whose bus was deleted
func busLabel(snapshot *model.Snapshot, id string) string {
	if b := snapshot.BusByID(id); b != nil {
		return b.Plate
	}
	return "unknown bus"
}
