package taskparse

import (
	"strconv"
	"strings"
)

// ExtractDuration estimates task length in whole minutes. Explicit amounts
// of hours, minutes and pomodoros are summed ("1 hora e 30 minutos" → 90).
// When nothing explicit matches, a known task type ("reunião", "call",
// "email", "review") supplies its default length. Otherwise nil.
func ExtractDuration(text string) *int {
	lower := strings.ToLower(text)
	// Drop "às HH[h]" style clock times so they are not read as durations.
	lower = stripWholeWords(lower, timeOfDayIntroRe)

	total := 0
	found := false
	for _, p := range durationPatterns {
		m := p.re.FindStringSubmatch(lower)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		total += n * p.multiplier
		found = true
	}
	if found {
		return &total
	}

	for _, d := range defaultDurations {
		if strings.Contains(lower, d.keyword) {
			minutes := d.minutes
			return &minutes
		}
	}

	return nil
}
