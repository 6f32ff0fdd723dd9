// Package calendar provides strict proleptic-Gregorian date validation.
//
// The point of this package is to never trust a date library's silent
// normalization: time.Date(2025, 11, 31, ...) happily becomes December 1.
// Everything here is plain integer arithmetic over calendar rules, so a
// caller can validate components BEFORE constructing a time.Time.
package calendar

// monthDays is the day count per month in a non-leap year, 1-indexed via month-1.
var monthDays = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// IsLeapYear reports whether year is a leap year.
// Divisible by 4, except centuries, except centuries divisible by 400.
func IsLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

// DaysInMonth returns the number of days in the given month (1-12).
// Returns 0 when month is outside 1-12.
func DaysInMonth(month, year int) int {
	if month < 1 || month > 12 {
		return 0
	}
	if month == 2 && IsLeapYear(year) {
		return 29
	}
	return monthDays[month-1]
}

// IsValidDate reports whether (day, month, year) is a real calendar date.
// Total predicate: any out-of-range input returns false, never panics.
// Years are 1-indexed; there is no year zero.
func IsValidDate(day, month, year int) bool {
	if year < 1 {
		return false
	}
	if month < 1 || month > 12 {
		return false
	}
	if day < 1 {
		return false
	}
	return day <= DaysInMonth(month, year)
}
