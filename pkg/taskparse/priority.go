package taskparse

import "strings"

// ExtractPriority classifies the urgency of task text. High-priority
// keywords are checked before low-priority ones, so mixed signals resolve
// high. No keyword at all means medium.
func ExtractPriority(text string) Priority {
	lower := strings.ToLower(text)

	for _, kw := range highPriorityKeywords {
		if strings.Contains(lower, kw) {
			return PriorityHigh
		}
	}

	for _, kw := range lowPriorityKeywords {
		if strings.Contains(lower, kw) {
			return PriorityLow
		}
	}

	return PriorityMedium
}
