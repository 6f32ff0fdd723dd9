package taskparse

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var whitespaceRunRe = regexp.MustCompile(`\s+`)

// ExtractTitle cleans task text into a short title: priority, date, time,
// duration and recurrence expressions are stripped, whitespace collapsed
// and the first letter capitalized. When stripping leaves fewer than three
// characters the raw text (truncated to 50 characters) is used instead —
// better a verbose title than an empty one.
func ExtractTitle(text string) string {
	title := text

	title = stripWholeWords(title, titlePriorityWordsRe)
	title = stripWholeWords(title, titleDateWordsRe)
	// Time-of-day before durations, as in duration extraction: otherwise
	// the duration pass eats the "14h" out of "às 14h" and strands the "às".
	title = stripWholeWords(title, titleTimeOfDayRe)
	title = titleDurationRe.ReplaceAllString(title, "")
	title = titleSlashDateRe.ReplaceAllString(title, "")
	title = titleExclamationsRe.ReplaceAllString(title, "")
	for _, re := range titleRecurrenceRes {
		title = stripWholeWords(title, re)
	}

	title = titleOrphanPunctRe.ReplaceAllString(title, "")
	title = strings.TrimSpace(whitespaceRunRe.ReplaceAllString(title, " "))
	title = capitalize(title)

	if utf8.RuneCountInString(title) < titleMinLength {
		return truncate(text, titleFallbackLimit)
	}

	return title
}

// stripWholeWords removes matches of re that sit on word boundaries. The
// boundary check is done by hand on runes because RE2's \b is ASCII-only
// and would keep accent-final words like "amanhã" alive.
func stripWholeWords(s string, re *regexp.Regexp) string {
	matches := re.FindAllStringIndex(s, -1)
	if matches == nil {
		return s
	}

	var b strings.Builder
	prev := 0
	for _, m := range matches {
		start, end := m[0], m[1]
		if !isWordBoundary(s, start, end) {
			continue
		}
		b.WriteString(s[prev:start])
		prev = end
	}
	b.WriteString(s[prev:])
	return b.String()
}

func isWordBoundary(s string, start, end int) bool {
	if start > 0 {
		r, _ := utf8.DecodeLastRuneInString(s[:start])
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return false
		}
	}
	if end < len(s) {
		r, _ := utf8.DecodeRuneInString(s[end:])
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
