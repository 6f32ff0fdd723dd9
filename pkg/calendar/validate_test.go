package calendar_test

import (
	"fmt"
	"testing"
	"time"

	"pomoflow/pkg/calendar"
)

func TestValidateDateString(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantValid bool
		wantDay   int
		wantMonth int
		wantYear  int
	}{
		{"Valid full date", "15/06/2025", true, 15, 6, 2025},
		{"Valid leap day", "29/02/2024", true, 29, 2, 2024},
		{"November 31", "31/11/2025", false, 31, 11, 2025},
		{"February 29 non-leap", "29/02/2025", false, 29, 2, 2025},
		{"Day 32", "32/01/2025", false, 32, 1, 2025},
		{"Single digit day and month", "5/3/2025", true, 5, 3, 2025},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calendar.ValidateDateString(tt.input)
			if got.Valid != tt.wantValid {
				t.Fatalf("ValidateDateString(%q).Valid = %v, want %v", tt.input, got.Valid, tt.wantValid)
			}
			if got.Day != tt.wantDay || got.Month != tt.wantMonth || got.Year != tt.wantYear {
				t.Errorf("ValidateDateString(%q) components = (%d, %d, %d), want (%d, %d, %d)",
					tt.input, got.Day, got.Month, got.Year, tt.wantDay, tt.wantMonth, tt.wantYear)
			}
			if !tt.wantValid && got.Error != calendar.ErrMsgInvalidDate {
				t.Errorf("ValidateDateString(%q).Error = %q, want %q", tt.input, got.Error, calendar.ErrMsgInvalidDate)
			}
		})
	}
}

func TestValidateDateStringFormat(t *testing.T) {
	for _, input := range []string{"", "abc", "2025-06-15", "15-06-2025", "15/06/25"} {
		got := calendar.ValidateDateString(input)
		if got.Valid {
			t.Errorf("ValidateDateString(%q).Valid = true, want false", input)
		}
	}
}

func TestValidateDateStringDefaultYear(t *testing.T) {
	got := calendar.ValidateDateString("15/06")
	if !got.Valid {
		t.Fatalf("ValidateDateString(15/06).Valid = false, want true")
	}
	if got.Year != time.Now().Year() {
		t.Errorf("ValidateDateString(15/06).Year = %d, want current year %d", got.Year, time.Now().Year())
	}
}

func TestValidateISODateString(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantValid bool
	}{
		{"Empty means no due date", "", true},
		{"Valid instant", "2025-06-15T09:00:00.000Z", true},
		{"Valid leap day", "2024-02-29T14:30:00.000Z", true},
		{"November 31", "2025-11-31T09:00:00.000Z", false},
		{"February 29 non-leap", "2025-02-29T09:00:00.000Z", false},
		{"Bare date", "2025-06-15", true},
		{"Garbage", "not-a-date", false},
		{"Year zero", "0000-06-15T09:00:00.000Z", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calendar.ValidateISODateString(tt.input)
			if got.Valid != tt.wantValid {
				t.Errorf("ValidateISODateString(%q).Valid = %v, want %v", tt.input, got.Valid, tt.wantValid)
			}
			if !tt.wantValid && got.Error != calendar.ErrMsgInvalidDate {
				t.Errorf("ValidateISODateString(%q).Error = %q, want %q", tt.input, got.Error, calendar.ErrMsgInvalidDate)
			}
		})
	}
}

// Every valid calendar date must round-trip through the DD/MM/YYYY validator.
func TestValidateDateStringRoundTrip(t *testing.T) {
	dates := []struct{ d, m, y int }{
		{1, 1, 2025},
		{29, 2, 2024},
		{30, 11, 2025},
		{31, 12, 1999},
	}
	for _, dt := range dates {
		s := fmt.Sprintf("%02d/%02d/%04d", dt.d, dt.m, dt.y)
		got := calendar.ValidateDateString(s)
		if !got.Valid || got.Day != dt.d || got.Month != dt.m || got.Year != dt.y {
			t.Errorf("round trip failed for %s: %+v", s, got)
		}
	}
}
