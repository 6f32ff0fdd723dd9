package taskparse

import (
	"strconv"
	"strings"
	"time"

	"pomoflow/pkg/calendar"
)

// defaultDueHour is the time-of-day used when the text names a date but no
// time.
const defaultDueHour = 9

// ExtractDueDate locates one date expression (and an optional time-of-day)
// in text and resolves it to a UTC instant. Expressions are tried in fixed
// precedence order and only the first kind found is used:
//
//	"hoje" → "amanhã" → weekday name → "próxima semana" →
//	DD/MM[/YYYY] → "dia N"
//
// Absolute dates are validated before any time.Time is constructed, so an
// impossible date like 31/11 yields nil instead of rolling into December.
func (p *Parser) ExtractDueDate(text string, now time.Time) *time.Time {
	lower := strings.ToLower(text)
	now = now.In(p.location)

	if strings.Contains(lower, "hoje") {
		return p.dueAt(text, now)
	}

	if strings.Contains(lower, "amanhã") || strings.Contains(lower, "amanha") {
		return p.dueAt(text, now.AddDate(0, 0, 1))
	}

	for _, wd := range weekdayNames {
		if !strings.Contains(lower, wd.name) {
			continue
		}
		// Always a future occurrence: a match on today's weekday means
		// next week, not today.
		daysUntil := int(wd.day - now.Weekday())
		if daysUntil <= 0 {
			daysUntil += 7
		}
		return p.dueAt(text, now.AddDate(0, 0, daysUntil))
	}

	if strings.Contains(lower, "próxima semana") || strings.Contains(lower, "proxima semana") {
		return p.dueAt(text, now.AddDate(0, 0, 7))
	}

	if m := slashDateRe.FindStringSubmatch(lower); m != nil {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		year := now.Year()
		if m[3] != "" {
			year, _ = strconv.Atoi(m[3])
		}
		if !calendar.IsValidDate(day, month, year) {
			return nil
		}
		return p.dueAt(text, time.Date(year, time.Month(month), day, 0, 0, 0, 0, p.location))
	}

	if m := dayOfMonthRe.FindStringSubmatch(lower); m != nil {
		day, _ := strconv.Atoi(m[1])
		return p.nextDayOfMonth(text, day, now)
	}

	return nil
}

// nextDayOfMonth resolves "dia N" to the next calendar occurrence of day N:
// this month if still ahead, otherwise next month. A day that does not
// exist in that following month ("dia 31" before a 30-day month) is
// unrepresentable and yields nil — no clamping.
func (p *Parser) nextDayOfMonth(text string, day int, now time.Time) *time.Time {
	year, month := now.Year(), int(now.Month())

	if calendar.IsValidDate(day, month, year) {
		candidate := time.Date(year, time.Month(month), day, 0, 0, 0, 0, p.location)
		if !candidate.Before(now) {
			return p.dueAt(text, candidate)
		}
	}

	month++
	if month > 12 {
		month = 1
		year++
	}
	if !calendar.IsValidDate(day, month, year) {
		return nil
	}

	return p.dueAt(text, time.Date(year, time.Month(month), day, 0, 0, 0, 0, p.location))
}

// dueAt combines the resolved calendar day with the time-of-day found in
// text (09:00 when none) and returns the instant in UTC.
func (p *Parser) dueAt(text string, day time.Time) *time.Time {
	hour, minute := defaultDueHour, 0

	for _, re := range timeOfDayPatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		h, _ := strconv.Atoi(m[1])
		min := 0
		if m[2] != "" {
			min, _ = strconv.Atoi(m[2])
		}
		if h >= 0 && h <= 23 && min >= 0 && min <= 59 {
			hour, minute = h, min
			break
		}
	}

	t := time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, p.location).UTC()
	return &t
}
