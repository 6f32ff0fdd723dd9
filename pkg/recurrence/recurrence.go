// Package recurrence computes the next occurrence of a recurring task.
package recurrence

import (
	"time"

	"pomoflow/pkg/calendar"
)

// Pattern governs how a completed recurring task's next due date is computed.
type Pattern string

const (
	Daily    Pattern = "daily"
	Weekly   Pattern = "weekly"
	Monthly  Pattern = "monthly"
	Weekdays Pattern = "weekdays"
)

// ParsePattern converts a raw string into a Pattern.
func ParsePattern(raw string) (Pattern, bool) {
	switch Pattern(raw) {
	case Daily, Weekly, Monthly, Weekdays:
		return Pattern(raw), true
	}
	return "", false
}

// DefaultHour is the time-of-day anchor used when a recurring task has no
// prior due date.
const DefaultHour = 9

// NextDueDate computes the due date for the next occurrence after current.
// When current is nil the base is tomorrow at 09:00 in now's location, so a
// freshly created recurring task still lands on a sensible future instant.
// An unknown pattern returns nil: that is a caller bug, not user input.
func NextDueDate(current *time.Time, pattern Pattern, now time.Time) *time.Time {
	base := startOfTomorrow(now)
	if current != nil {
		base = *current
	}

	var next time.Time
	switch pattern {
	case Daily:
		next = base.AddDate(0, 0, 1)
	case Weekly:
		next = base.AddDate(0, 0, 7)
	case Monthly:
		next = addMonthClamped(base)
	case Weekdays:
		next = base.AddDate(0, 0, 1)
		for next.Weekday() == time.Saturday || next.Weekday() == time.Sunday {
			next = next.AddDate(0, 0, 1)
		}
	default:
		return nil
	}

	return &next
}

// addMonthClamped advances t by one calendar month, clamping the day of
// month to the target month's length (Jan 31 -> Feb 28/29). time.AddDate
// would overflow into the following month instead, which is exactly the
// rollover behavior the rest of this codebase refuses to inherit.
func addMonthClamped(t time.Time) time.Time {
	year, month := t.Year(), int(t.Month())
	month++
	if month > 12 {
		month = 1
		year++
	}

	day := t.Day()
	if max := calendar.DaysInMonth(month, year); day > max {
		day = max
	}

	return time.Date(year, time.Month(month), day,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// startOfTomorrow returns 09:00 on the day after now, in now's location.
func startOfTomorrow(now time.Time) time.Time {
	tomorrow := now.AddDate(0, 0, 1)
	return time.Date(tomorrow.Year(), tomorrow.Month(), tomorrow.Day(),
		DefaultHour, 0, 0, 0, now.Location())
}
