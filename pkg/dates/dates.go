// Package dates serializes calendar dates to and from the ISO-8601
// "YYYY-MM-DD" form used by date input fields. Out-of-range components
// (day 0, month 13) are reported as errors, never panics, and the pair
// round-trips: Deserialize(Serialize(d)) == d for every valid d.
package dates

import (
	"fmt"
	"strconv"
	"strings"
)

// Date is a calendar date with no time or zone component.
type Date struct {
	Year  int
	Month int
	Day   int
}

var daysInMonth = [...]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

func leapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// Days returns the number of days in a month, accounting for leap years.
// It returns 0 for an out-of-range month.
func Days(year, month int) int {
	if month < 1 || month > 12 {
		return 0
	}
	if month == 2 && leapYear(year) {
		return 29
	}
	return daysInMonth[month-1]
}

// Valid reports whether the date names a real calendar day within the
// representable range (years 0-9999).
func (d Date) Valid() bool {
	if d.Year < 0 || d.Year > 9999 {
		return false
	}
	if d.Month < 1 || d.Month > 12 {
		return false
	}
	return d.Day >= 1 && d.Day <= Days(d.Year, d.Month)
}

// Serialize renders a date as "YYYY-MM-DD". An out-of-range component
// yields ErrOutOfRange.
func Serialize(d Date) (string, error) {
	if !d.Valid() {
		return "", fmt.Errorf("%w: %04d-%02d-%02d", ErrOutOfRange, d.Year, d.Month, d.Day)
	}
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day), nil
}

// Deserialize parses a "YYYY-MM-DD" string back into a Date. Malformed
// text yields ErrMalformed; well-formed text naming an impossible day
// yields ErrOutOfRange.
func Deserialize(s string) (Date, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 || len(parts[0]) != 4 || len(parts[1]) != 2 || len(parts[2]) != 2 {
		return Date{}, fmt.Errorf("%w: %q", ErrMalformed, s)
	}

	nums := make([]int, 3)
	for i, p := range parts {
		for _, r := range p {
			if r < '0' || r > '9' {
				return Date{}, fmt.Errorf("%w: %q", ErrMalformed, s)
			}
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return Date{}, fmt.Errorf("%w: %q", ErrMalformed, s)
		}
		nums[i] = n
	}

	d := Date{Year: nums[0], Month: nums[1], Day: nums[2]}
	if !d.Valid() {
		return Date{}, fmt.Errorf("%w: %q", ErrOutOfRange, s)
	}
	return d, nil
}
