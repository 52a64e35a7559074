package report

import (
	"time"

	"github.com/autenticco/backend/internal/domain/shared"
)

// DateLayout is the wire format of report dates
const DateLayout = "2006-01-02"

// DateRange is an inclusive range of whole calendar days in a given location:
// from 00:00:00.000 of the first day to 23:59:59.999 of the last.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewDateRange builds the range covering the calendar days of start and end
// as seen in loc.
func NewDateRange(start, end time.Time, loc *time.Location) (DateRange, error) {
	if loc == nil {
		loc = time.Local
	}
	s := start.In(loc)
	e := end.In(loc)

	r := DateRange{
		Start: time.Date(s.Year(), s.Month(), s.Day(), 0, 0, 0, 0, loc),
		End:   time.Date(e.Year(), e.Month(), e.Day(), 23, 59, 59, int(999*time.Millisecond), loc),
	}
	if r.End.Before(r.Start) {
		return DateRange{}, shared.NewDomainError("INVALID_DATE_RANGE", "End date must not be before start date")
	}
	return r, nil
}

// ParseDateRange parses YYYY-MM-DD bounds in loc
func ParseDateRange(start, end string, loc *time.Location) (DateRange, error) {
	if loc == nil {
		loc = time.Local
	}
	s, err := time.ParseInLocation(DateLayout, start, loc)
	if err != nil {
		return DateRange{}, shared.NewDomainError("INVALID_DATE", "start_date must be YYYY-MM-DD")
	}
	e, err := time.ParseInLocation(DateLayout, end, loc)
	if err != nil {
		return DateRange{}, shared.NewDomainError("INVALID_DATE", "end_date must be YYYY-MM-DD")
	}
	return NewDateRange(s, e, loc)
}

// CurrentMonth is the range from the first day of now's month to now's day
func CurrentMonth(now time.Time, loc *time.Location) DateRange {
	if loc == nil {
		loc = time.Local
	}
	n := now.In(loc)
	first := time.Date(n.Year(), n.Month(), 1, 0, 0, 0, 0, loc)
	r, _ := NewDateRange(first, n, loc)
	return r
}

// Contains reports whether t falls inside the range. A nil time never does.
func (r DateRange) Contains(t *time.Time) bool {
	if t == nil || t.IsZero() {
		return false
	}
	return !t.Before(r.Start) && !t.After(r.End)
}

// Location returns the range's time zone
func (r DateRange) Location() *time.Location {
	return r.Start.Location()
}
