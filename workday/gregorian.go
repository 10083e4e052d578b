/*
gregorian.go - Gregorian civil calendar with holiday registries

PURPOSE:
  The single concrete Calendar: standard Gregorian validity and leap
  rules, Saturday/Sunday weekends, and two holiday registries (exact
  dates keyed "YYYY-MM-DD", recurring (month, day) pairs).

HOLIDAY SEMANTICS:
  IsHoliday is the union of three disjoint-in-effect predicates:
  weekend OR exact-date OR recurring. The weekend check short-circuits
  first, so a registration that coincides with a weekend is never
  consulted; the net result is identical either way.

CONCURRENCY:
  Not safe for concurrent use on its own. The engine owns exactly one
  instance and serializes access behind its lock (see engine.go).

SEE ALSO:
  - calendar.go: the interface this satisfies
  - store/sqlite: persistence of the registries across restarts
*/
package workday

// monthDay keys the recurring holiday registry.
type monthDay struct {
	Month int
	Day   int
}

// Gregorian implements Calendar using civil-calendar rules.
type Gregorian struct {
	holidays          map[string]struct{}
	recurringHolidays map[monthDay]struct{}
}

// NewGregorian returns a Gregorian calendar with empty registries.
func NewGregorian() *Gregorian {
	return &Gregorian{
		holidays:          make(map[string]struct{}),
		recurringHolidays: make(map[monthDay]struct{}),
	}
}

// =============================================================================
// HOLIDAY REGISTRIES
// =============================================================================

// SetHoliday registers date as a one-time holiday. Invalid dates are
// silently dropped.
func (g *Gregorian) SetHoliday(date Date) {
	if g.IsValidDate(date) {
		g.holidays[date.FormatDate()] = struct{}{}
	}
}

// SetRecurringHoliday registers date's (month, day) as a holiday in
// every year. Invalid dates are silently dropped.
func (g *Gregorian) SetRecurringHoliday(date Date) {
	if g.IsValidDate(date) {
		g.recurringHolidays[monthDay{Month: date.Month, Day: date.Day}] = struct{}{}
	}
}

// IsHoliday reports whether date is a weekend, a one-time holiday, or
// a recurring holiday.
func (g *Gregorian) IsHoliday(date Date) bool {
	dow := date.DayOfWeek()
	if dow == Sunday || dow == Saturday {
		return true
	}
	if _, ok := g.holidays[date.FormatDate()]; ok {
		return true
	}
	if _, ok := g.recurringHolidays[monthDay{Month: date.Month, Day: date.Day}]; ok {
		return true
	}
	return false
}

// =============================================================================
// VALIDITY
// =============================================================================

// IsValidDate reports whether every field of date is in range:
// year >= 0, month 1-12, day within the month, hour 0-23, minute 0-59.
func (g *Gregorian) IsValidDate(date Date) bool {
	if date.Year < 0 || date.Month < 1 || date.Month > 12 ||
		date.Day < 1 || date.Day > daysInMonth(date.Year, date.Month) {
		return false
	}
	if date.Hour < 0 || date.Hour >= HoursInDay ||
		date.Minute < 0 || date.Minute >= MinutesInHour {
		return false
	}
	return true
}

// isLeapYear implements the Gregorian leap rule: divisible by 4 and
// (not divisible by 100, or divisible by 400).
func isLeapYear(year int) bool {
	if year%4 != 0 {
		return false
	}
	if year%100 != 0 {
		return true
	}
	return year%400 == 0
}

// daysInMonth returns the number of days in (year, month).
func daysInMonth(year, month int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	case 2:
		if isLeapYear(year) {
			return 29
		}
		return 28
	default:
		return 30
	}
}

// =============================================================================
// DAY STEPPING
// =============================================================================

// AddDay increments the day, rolling month and year forward on
// overflow. Hour and minute are preserved. No validity check.
func (g *Gregorian) AddDay(date *Date) {
	year, month, day := date.Year, date.Month, date.Day+1
	if day > daysInMonth(year, month) {
		day = 1
		month++
		if month > 12 {
			month = 1
			year++
		}
	}
	date.Set(year, month, day, date.Hour, date.Minute)
}

// RemoveDay decrements the day, rolling month and year backward on
// underflow. Hour and minute are preserved. No validity check.
func (g *Gregorian) RemoveDay(date *Date) {
	year, month, day := date.Year, date.Month, date.Day-1
	if day < 1 {
		month--
		if month < 1 {
			month = 12
			year--
		}
		day = daysInMonth(year, month)
	}
	date.Set(year, month, day, date.Hour, date.Minute)
}
