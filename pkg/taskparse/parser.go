// Package taskparse extracts structured task data from free-form Portuguese
// text: priority, estimated duration, recurrence, due date/time and a
// cleaned title. Extraction is deterministic — fixed keyword tables and
// regular expressions with explicit precedence, no scoring, no learning.
//
// The five extractors are independent pure functions over the same input;
// Parser.Parse composes them into one ParsedTask. Only due-date extraction
// needs a reference time and timezone, so it lives on Parser while the rest
// are package-level functions.
package taskparse

import (
	"fmt"
	"time"
)

// Parser resolves date expressions against a concrete timezone.
type Parser struct {
	location *time.Location
}

// NewParser creates a parser for the given IANA timezone string,
// e.g. "America/Sao_Paulo".
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Parse runs all extractors over text and assembles the result. The now
// argument anchors relative date expressions ("hoje", "amanhã", weekday
// names); callers normally pass time.Now().
//
// Parse never fails: text with no recognizable signals simply produces nil
// and default fields. Validating that text is non-empty is the caller's job.
func (p *Parser) Parse(text string, now time.Time) ParsedTask {
	rec := ExtractRecurrence(text)

	parsed := ParsedTask{
		Title:            ExtractTitle(text),
		Description:      text,
		DueDate:          p.ExtractDueDate(text, now),
		Priority:         ExtractPriority(text),
		EstimatedMinutes: ExtractDuration(text),
		IsRecurring:      rec.IsRecurring,
	}

	if rec.IsRecurring {
		pattern := rec.Pattern
		parsed.RecurrencePattern = &pattern
	}

	return parsed
}
