/*
timeutil.go - Time-of-day arithmetic over a 24-hour cycle

PURPOSE:
  Pure helpers converting between (hour, minute) pairs and raw minute
  counts, used by the engine for window duration and minute placement.

WRAPAROUND CONTRACT:
  Addition does NOT wrap at 24 hours: AddMinutes(23*60, 120) yields
  {25, 0}. Subtraction borrows at most one day: a negative difference
  gets MinutesInDay added back exactly once. The engine's workweek /
  workday / minutes decomposition guarantees every carry it asks for is
  within a single day, so these helpers must not be reused for
  multi-day deltas without rework.

SEE ALSO:
  - engine.go: the only caller with day-boundary semantics
*/
package workday

// Time constants used throughout the engine.
const (
	HoursInDay    = 24
	MinutesInHour = 60
	MinutesInDay  = HoursInDay * MinutesInHour
)

// ClockTime is a time-of-day independent of any calendar date. It is
// also used as an (hours, minutes) duration, e.g. the workday length.
type ClockTime struct {
	Hour   int
	Minute int
}

// ConvertToMinutes returns t as minutes since midnight.
func ConvertToMinutes(t ClockTime) int {
	return t.Hour*MinutesInHour + t.Minute
}

// AddMinutes sums two raw minute counts and re-splits into hours and
// minutes. No 24-hour wrap.
func AddMinutes(left, right int) ClockTime {
	total := left + right
	return ClockTime{Hour: total / MinutesInHour, Minute: total % MinutesInHour}
}

// SubtractMinutes subtracts smaller from larger. A negative difference
// borrows one day (adds MinutesInDay) before the split.
func SubtractMinutes(larger, smaller int) ClockTime {
	diff := larger - smaller
	if diff < 0 {
		diff += MinutesInDay
	}
	return ClockTime{Hour: diff / MinutesInHour, Minute: diff % MinutesInHour}
}

// AddTime is AddMinutes over (hour, minute) pairs.
func AddTime(left, right ClockTime) ClockTime {
	return AddMinutes(ConvertToMinutes(left), ConvertToMinutes(right))
}

// SubtractTime is SubtractMinutes over (hour, minute) pairs.
func SubtractTime(larger, smaller ClockTime) ClockTime {
	return SubtractMinutes(ConvertToMinutes(larger), ConvertToMinutes(smaller))
}
