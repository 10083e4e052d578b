/*
calendar.go - Calendar capability interface

PURPOSE:
  Decouples the workday engine from any particular calendar system.
  The engine only needs six capabilities: validate a date, classify a
  date as holiday, step one day in either direction, and register
  one-time and recurring holidays.

WHY AN INTERFACE:
  Exactly one implementation exists today (Gregorian). The seam is
  kept so an alternative civil calendar could be substituted without
  touching the engine; no registry or plugin mechanism is warranted
  for a single variant.

SEE ALSO:
  - gregorian.go: the concrete implementation
  - engine.go: the only consumer
*/
package workday

// Calendar is the capability set the workday engine depends on.
//
// AddDay and RemoveDay mutate the date in place and perform no
// validity check; callers must pass an already-valid date. Both
// preserve the hour and minute fields.
type Calendar interface {
	// SetHoliday registers a one-time holiday. Invalid dates are
	// silently dropped.
	SetHoliday(date Date)

	// SetRecurringHoliday registers a (month, day) holiday matching
	// every year. Invalid dates are silently dropped.
	SetRecurringHoliday(date Date)

	// AddDay steps date one calendar day forward, rolling month and
	// year as needed.
	AddDay(date *Date)

	// RemoveDay steps date one calendar day backward, rolling month
	// and year as needed.
	RemoveDay(date *Date)

	// IsHoliday reports whether date is a weekend, a registered
	// one-time holiday, or a registered recurring holiday.
	IsHoliday(date Date) bool

	// IsValidDate reports whether every field of date is within the
	// calendar's legal range.
	IsValidDate(date Date) bool
}
