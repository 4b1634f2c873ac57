package schedule

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/teambition/rrule-go"

	"github.com/mfcardoso/soure-transport/pkg/core/model"
)

const dateLayout = "2006-01-02"

// rruleWeekdays maps calendar weekdays (0=Sunday..6=Saturday) onto
// rrule BYDAY values.
var rruleWeekdays = map[int]rrule.Weekday{
	0: rrule.SU,
	1: rrule.MO,
	2: rrule.TU,
	3: rrule.WE,
	4: rrule.TH,
	5: rrule.FR,
	6: rrule.SA,
}

// ExpandWeekly materialises one independent request per calendar day
// between the template's departure date and endDate (inclusive) whose
// weekday is in the selected set (0=Sunday..6=Saturday). Each request
// gets a fresh id and the template's remaining fields.
//
// Generated siblings are not conflict-checked against each other;
// conflicts surface later when each request is opened or the schedule
// is viewed.
func ExpandWeekly(template model.BusRequest, weekdays []int, endDate string) ([]model.BusRequest, error) {
	if len(weekdays) == 0 {
		return nil, fmt.Errorf("recurrence requires at least one weekday")
	}

	start, err := time.Parse(dateLayout, template.DepartureDate)
	if err != nil {
		return nil, fmt.Errorf("invalid template departure date %q: %w", template.DepartureDate, err)
	}
	until, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return nil, fmt.Errorf("invalid recurrence end date %q: %w", endDate, err)
	}
	if until.Before(start) {
		return nil, fmt.Errorf("recurrence end date %s is before start date %s", endDate, template.DepartureDate)
	}

	byDay := make([]rrule.Weekday, 0, len(weekdays))
	for _, wd := range weekdays {
		day, ok := rruleWeekdays[wd]
		if !ok {
			return nil, fmt.Errorf("invalid weekday %d: must be 0 (Sunday) through 6 (Saturday)", wd)
		}
		byDay = append(byDay, day)
	}

	rule, err := rrule.NewRRule(rrule.ROption{
		Freq:      rrule.WEEKLY,
		Dtstart:   start,
		Until:     until,
		Byweekday: byDay,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build recurrence rule: %w", err)
	}

	occurrences := rule.All()
	if len(occurrences) == 0 {
		return nil, fmt.Errorf("no occurrences between %s and %s on the selected weekdays", template.DepartureDate, endDate)
	}

	requests := make([]model.BusRequest, 0, len(occurrences))
	for _, day := range occurrences {
		req := template
		req.ID = uuid.New().String()
		req.DepartureDate = day.Format(dateLayout)
		req.Assignments = append([]model.Assignment(nil), template.Assignments...)
		requests = append(requests, req)
	}
	return requests, nil
}
