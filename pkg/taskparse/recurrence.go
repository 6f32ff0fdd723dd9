package taskparse

import "strings"

// ExtractRecurrence detects whether task text describes a recurring task
// and which recurrence pattern it follows. Groups are checked in the fixed
// order from the keyword table; the first group with any keyword present in
// the text wins.
func ExtractRecurrence(text string) Recurrence {
	lower := strings.ToLower(text)

	for _, group := range recurrenceGroups {
		for _, kw := range group.keywords {
			if strings.Contains(lower, kw) {
				return Recurrence{IsRecurring: true, Pattern: group.pattern}
			}
		}
	}

	return Recurrence{}
}
