package calendar

import (
	"regexp"
	"strconv"
	"time"
)

// ErrMsgInvalidDate is the user-facing message for dates that do not exist
// in the calendar. Kept in Portuguese to match the product UI.
const ErrMsgInvalidDate = "A data inserida não existe no calendário (ex: 31 de Novembro)."

// Validation is the result of validating a date string.
type Validation struct {
	Valid bool
	Day   int
	Month int
	Year  int
	Error string
}

var (
	slashDatePattern = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})(?:/(\d{4}))?$`)
	isoPrefixPattern = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})`)
)

// ValidateDateString validates a DD/MM or DD/MM/YYYY string.
// When the year is omitted the current year is assumed.
func ValidateDateString(s string) Validation {
	m := slashDatePattern.FindStringSubmatch(s)
	if m == nil {
		return Validation{Valid: false, Error: "invalid date format, use DD/MM or DD/MM/YYYY"}
	}

	day, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	year := time.Now().Year()
	if m[3] != "" {
		year, _ = strconv.Atoi(m[3])
	}

	if !IsValidDate(day, month, year) {
		return Validation{Valid: false, Day: day, Month: month, Year: year, Error: ErrMsgInvalidDate}
	}
	return Validation{Valid: true, Day: day, Month: month, Year: year}
}

// ValidateISODateString validates an ISO-8601 timestamp such as
// "2025-11-31T09:00:00.000Z". An empty string is valid: no due date is
// always acceptable.
//
// A non-empty input is rejected when it does not parse at all, when the
// literal YYYY-MM-DD components fail IsValidDate, or when the parsed value
// does not reproduce those components (which means the parser rolled an
// impossible date over into the next month).
func ValidateISODateString(s string) Validation {
	if s == "" {
		return Validation{Valid: true}
	}

	m := isoPrefixPattern.FindStringSubmatch(s)
	if m == nil {
		// Non-standard but parseable formats pass through.
		if _, err := parseFlexible(s); err != nil {
			return Validation{Valid: false, Error: ErrMsgInvalidDate}
		}
		return Validation{Valid: true}
	}

	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])

	if !IsValidDate(day, month, year) {
		return Validation{Valid: false, Day: day, Month: month, Year: year, Error: ErrMsgInvalidDate}
	}

	t, err := parseFlexible(s)
	if err != nil {
		return Validation{Valid: false, Day: day, Month: month, Year: year, Error: ErrMsgInvalidDate}
	}

	// Catch silent rollover: the parsed instant must reproduce the literal
	// components read from the string.
	if t.UTC().Year() != year || int(t.UTC().Month()) != month || t.UTC().Day() != day {
		return Validation{Valid: false, Day: day, Month: month, Year: year, Error: ErrMsgInvalidDate}
	}

	return Validation{Valid: true, Day: day, Month: month, Year: year}
}

// ParseISO parses an already-validated ISO-8601 timestamp into a UTC
// instant. Layouts without an offset are read as UTC.
func ParseISO(s string) (time.Time, error) {
	t, err := parseFlexible(s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

// isoLayouts are the accepted ISO-8601 shapes, most specific first.
var isoLayouts = []string{
	"2006-01-02T15:04:05.000Z07:00",
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func parseFlexible(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range isoLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
