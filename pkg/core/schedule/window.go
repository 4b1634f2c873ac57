package schedule

// TimeWindow is a same-day service window. Date is an ISO calendar
// date (YYYY-MM-DD); Start and End are zero-padded HH:MM strings, so
// lexicographic comparison matches chronological order.
type TimeWindow struct {
	Date  string
	Start string
	End   string
}

// Overlaps reports whether two windows overlap. Windows overlap only
// on the same date and only with strict inequalities, so windows that
// merely touch at an endpoint (10:00-12:00 vs 12:00-14:00) do not
// overlap. If any time field on either side is empty no overlap can be
// asserted and the answer is false.
func (w TimeWindow) Overlaps(other TimeWindow) bool {
	if w.Start == "" || w.End == "" || other.Start == "" || other.End == "" {
		return false
	}
	if w.Date == "" || other.Date == "" || w.Date != other.Date {
		return false
	}
	return w.Start < other.End && w.End > other.Start
}
