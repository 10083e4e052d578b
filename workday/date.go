/*
Package workday computes calendar dates a fractional number of workdays
away from a starting point, respecting a configured daily work window,
weekends, one-time holidays, and recurring (annual) holidays.

KEY CONCEPTS IN THIS FILE (date.go):
  - Date: A plain (year, month, day, hour, minute) value with minute
    precision. It carries no time zone and no validity guarantee.
  - InvalidDate: The sentinel every failed computation returns. All
    fields are -1; callers must check IsInvalid after Engine calls.

DESIGN PRINCIPLES:
  1. Dumb value type: Date performs no validation. Validity is a
     Calendar concern (see gregorian.go), so an out-of-range Date can
     be constructed, passed around, and rejected at the boundary.
  2. Value semantics: Date is copied, never shared. Mutating helpers
     (Set, and Calendar.AddDay/RemoveDay) take a pointer explicitly.
  3. No time.Time: the Gregorian rules, the day-of-week computation,
     and the invalid sentinel are the behavior under test here, so the
     type owns them instead of delegating to the standard library.

USAGE:
  d := workday.NewDate(2024, 5, 20, 8, 0)
  d.DayOfWeek()  // 1 (Monday)
  d.String()     // "2024-05-20 08:00"

SEE ALSO:
  - timeutil.go: (hour, minute) arithmetic
  - gregorian.go: validity rules and day stepping
  - engine.go: the workday increment computation
*/
package workday

import "fmt"

// =============================================================================
// DATE VALUE
// =============================================================================

// Date is a calendar date and time-of-day with minute precision.
type Date struct {
	Year   int
	Month  int
	Day    int
	Hour   int
	Minute int
}

// InvalidDate is the sentinel returned whenever an operation cannot
// produce a meaningful result. It must never be fed back into the
// engine as a real date.
var InvalidDate = Date{Year: -1, Month: -1, Day: -1, Hour: -1, Minute: -1}

// NewDate constructs a Date from its five components. No validation
// happens here; use Calendar.IsValidDate.
func NewDate(year, month, day, hour, minute int) Date {
	return Date{Year: year, Month: month, Day: day, Hour: hour, Minute: minute}
}

// Set overwrites all five components in place.
func (d *Date) Set(year, month, day, hour, minute int) {
	d.Year = year
	d.Month = month
	d.Day = day
	d.Hour = hour
	d.Minute = minute
}

// IsInvalid reports whether d is the invalid sentinel.
func (d Date) IsInvalid() bool { return d == InvalidDate }

// Clock returns the time-of-day component.
func (d Date) Clock() ClockTime { return ClockTime{Hour: d.Hour, Minute: d.Minute} }

// =============================================================================
// FORMATTING
// =============================================================================

// FormatDate returns the date portion as "YYYY-MM-DD". This string is
// also the key format for the one-time holiday registry.
func (d Date) FormatDate() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// String returns "YYYY-MM-DD HH:MM".
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d %02d:%02d", d.Year, d.Month, d.Day, d.Hour, d.Minute)
}

// =============================================================================
// DAY OF WEEK
// =============================================================================

// sakamotoOffsets are the per-month offsets of the Sakamoto, Lachman,
// Keith and Craver day-of-week algorithm.
var sakamotoOffsets = [12]int{0, 3, 2, 5, 0, 3, 5, 1, 4, 6, 2, 4}

// Day-of-week values as returned by DayOfWeek.
const (
	Sunday   = 0
	Saturday = 6
)

// DayOfWeek returns the day of the week in [0=Sunday .. 6=Saturday].
// For January and February the year is shifted down by one before the
// century correction, per the Sakamoto formula. Integer division
// truncates, which is exactly what the formula requires.
func (d Date) DayOfWeek() int {
	y := d.Year
	if d.Month < 3 {
		y--
	}
	return (y + y/4 - y/100 + y/400 + sakamotoOffsets[d.Month-1] + d.Day) % 7
}
