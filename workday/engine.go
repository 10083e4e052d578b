/*
engine.go - The workday increment engine

PURPOSE:
  Converts a fractional workday offset into whole workweeks, whole
  workdays, and a remainder of minutes, then walks the calendar
  skipping weekends and registered holidays. This is the core of the
  module; everything else supports it.

ALGORITHM (GetWorkdayIncrement):
  1. Validate the start date and the configured window; any failure
     returns InvalidDate (never an error, never a panic).
  2. totalMinutes = trunc(|workdays| * windowMinutes), computed on
     decimals so the truncation is exact.
  3. Decompose into workweeks (5 workdays each), remaining workdays,
     and remaining minutes.
  4. Boundary snap: a start date on a holiday is walked day by day in
     the increment's direction until it lands on a workday, with the
     time-of-day reset to the window start (forward) or stop
     (backward).
  5. Step workweeks, then workdays, each step holiday-skipping.
  6. Place the remaining minutes inside the window, carrying at most
     one day (the decomposition guarantees minutes < windowMinutes).

ERROR POLICY:
  Public entry points never fail loudly. Invalid input clears or
  ignores, preconditions return InvalidDate, and an unexpected panic
  inside the computation is recovered, logged, and converted to
  InvalidDate. Callers check IsInvalid; there is no error return.

CONCURRENCY:
  One mutex serializes every public call. Critical sections are pure
  in-memory loops bounded by the requested workday count; nothing
  blocks or does I/O while holding the lock.

SEE ALSO:
  - gregorian.go: validity and holiday predicates
  - timeutil.go: minute arithmetic
  - api/: the HTTP surface over this engine
*/
package workday

import (
	"sync"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// WorkweekLength is the number of workdays in one workweek.
const WorkweekLength = 5

// Engine owns one Calendar and the configured daily work window, and
// computes fractional workday increments against them.
type Engine struct {
	mu       sync.Mutex
	calendar Calendar
	logger   *zap.Logger

	// The window is unset until ConfigureWorkday succeeds; configured
	// is the single source of truth for that state, there are no
	// nullable fields.
	start      Date
	stop       Date
	duration   ClockTime
	configured bool
}

// NewEngine returns an Engine backed by its own Gregorian calendar.
// A nil logger disables logging.
func NewEngine(logger *zap.Logger) *Engine {
	return NewEngineWithCalendar(NewGregorian(), logger)
}

// NewEngineWithCalendar returns an Engine backed by the given
// calendar. The engine assumes exclusive ownership of it.
func NewEngineWithCalendar(calendar Calendar, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{calendar: calendar, logger: logger}
}

// =============================================================================
// CONFIGURATION
// =============================================================================

// ConfigureWorkday sets the daily work window. If either date fails
// validation the window is cleared entirely (reset-on-error, never a
// partial update) and the rejection is logged; nothing is returned.
func (e *Engine) ConfigureWorkday(start, stop Date) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.calendar.IsValidDate(start) {
		e.logger.Info("invalid workday start, clearing window", zap.String("start", start.String()))
		e.configured = false
		return
	}
	if !e.calendar.IsValidDate(stop) {
		e.logger.Info("invalid workday stop, clearing window", zap.String("stop", stop.String()))
		e.configured = false
		return
	}

	e.start = start
	e.stop = stop
	e.duration = SubtractTime(stop.Clock(), start.Clock())
	e.configured = true
}

// WorkdayStart returns the configured window start, if set.
func (e *Engine) WorkdayStart() (Date, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.start, e.configured
}

// WorkdayStop returns the configured window stop, if set.
func (e *Engine) WorkdayStop() (Date, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.stop, e.configured
}

// Duration returns the derived workday length, if the window is set.
func (e *Engine) Duration() (ClockTime, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.duration, e.configured
}

// =============================================================================
// HOLIDAYS
// =============================================================================

// RegisterHoliday registers a one-time holiday. Invalid dates are
// silently dropped by the calendar.
func (e *Engine) RegisterHoliday(date Date) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.calendar.SetHoliday(date)
}

// RegisterRecurringHoliday registers a (month, day) holiday matching
// every year. Invalid dates are silently dropped by the calendar.
func (e *Engine) RegisterRecurringHoliday(date Date) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.calendar.SetRecurringHoliday(date)
}

// IsHoliday reports whether date is a weekend or registered holiday.
func (e *Engine) IsHoliday(date Date) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.calendar.IsHoliday(date)
}

// =============================================================================
// INCREMENT
// =============================================================================

// GetWorkdayIncrement returns the date and time reached after moving
// workdays fractional workdays from startDate. Negative values move
// backward. It returns InvalidDate when startDate is not a valid
// calendar date or the window has not been configured; it never
// panics and never returns an error.
func (e *Engine) GetWorkdayIncrement(startDate Date, workdays float64) (result Date) {
	e.mu.Lock()
	defer e.mu.Unlock()

	// Recover any internal fault at the boundary; degrade to the
	// sentinel instead of crashing the caller.
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("workday increment computation failed",
				zap.Any("panic", r),
				zap.String("start", startDate.String()))
			result = InvalidDate
		}
	}()

	if !e.calendar.IsValidDate(startDate) {
		e.logger.Info("invalid increment start date", zap.String("start", startDate.String()))
		return InvalidDate
	}
	if !e.configured {
		e.logger.Info("workday window not configured")
		return InvalidDate
	}

	decrement := workdays < 0
	if decrement {
		workdays = -workdays
	}

	current := startDate
	windowMinutes := ConvertToMinutes(e.duration)
	totalMinutes := int(decimal.NewFromFloat(workdays).
		Mul(decimal.NewFromInt(int64(windowMinutes))).
		IntPart())

	wholeWorkdays := totalMinutes / windowMinutes
	workweeks := wholeWorkdays / WorkweekLength
	remainingWorkdays := wholeWorkdays % WorkweekLength
	remainingMinutes := totalMinutes % windowMinutes

	// Boundary snap: a holiday start date means the clock starts at
	// the nearest workday's window boundary, not the original
	// time-of-day.
	for e.calendar.IsHoliday(current) {
		if decrement {
			e.calendar.RemoveDay(&current)
			current.Set(current.Year, current.Month, current.Day, e.stop.Hour, e.stop.Minute)
		} else {
			e.calendar.AddDay(&current)
			current.Set(current.Year, current.Month, current.Day, e.start.Hour, e.start.Minute)
		}
	}

	for i := 0; i < workweeks; i++ {
		e.incrementWorkWeek(&current, decrement)
	}
	for i := 0; i < remainingWorkdays; i++ {
		e.incrementWorkDay(&current, decrement)
	}

	if decrement {
		e.removeRemainingMinutes(remainingMinutes, &current)
	} else {
		e.addRemainingMinutes(remainingMinutes, &current)
	}
	return current
}

// =============================================================================
// STEPPING
// =============================================================================

// incrementWorkWeek steps one whole workweek in the given direction.
func (e *Engine) incrementWorkWeek(date *Date, decrement bool) {
	for i := 0; i < WorkweekLength; i++ {
		e.incrementWorkDay(date, decrement)
	}
}

// incrementWorkDay steps one calendar day, then keeps stepping until
// the landed day is a workday.
func (e *Engine) incrementWorkDay(date *Date, decrement bool) {
	e.stepDay(date, decrement)
	for e.calendar.IsHoliday(*date) {
		e.stepDay(date, decrement)
	}
}

func (e *Engine) stepDay(date *Date, decrement bool) {
	if decrement {
		e.calendar.RemoveDay(date)
	} else {
		e.calendar.AddDay(date)
	}
}

// =============================================================================
// MINUTE PLACEMENT
// =============================================================================

// addRemainingMinutes places minutes forward inside the work window.
// minutes is guaranteed < the window length, so at most one carry to
// the next workday is ever needed.
func (e *Engine) addRemainingMinutes(minutes int, current *Date) {
	stopMinutes := ConvertToMinutes(e.stop.Clock())
	startMinutes := ConvertToMinutes(e.start.Clock())
	currentMinutes := ConvertToMinutes(current.Clock())

	if currentMinutes >= stopMinutes {
		// Past the window: begin at the next workday's start.
		e.incrementWorkDay(current, false)
		current.Set(current.Year, current.Month, current.Day, e.start.Hour, e.start.Minute)
		currentMinutes = ConvertToMinutes(current.Clock())
	} else if currentMinutes < startMinutes {
		// Before the window: snap to this day's start.
		current.Set(current.Year, current.Month, current.Day, e.start.Hour, e.start.Minute)
		currentMinutes = ConvertToMinutes(current.Clock())
	}

	if currentMinutes+minutes <= stopMinutes {
		t := AddMinutes(currentMinutes, minutes)
		current.Set(current.Year, current.Month, current.Day, t.Hour, t.Minute)
		return
	}

	// Overflow carries into the next workday, measured from its start.
	e.incrementWorkDay(current, false)
	overflow := currentMinutes + minutes - stopMinutes
	t := AddMinutes(startMinutes, overflow)
	current.Set(current.Year, current.Month, current.Day, t.Hour, t.Minute)
}

// removeRemainingMinutes is the backward mirror of
// addRemainingMinutes: snap to the stop boundary, subtract within the
// window, and borrow at most one workday measured back from its stop.
func (e *Engine) removeRemainingMinutes(minutes int, current *Date) {
	stopMinutes := ConvertToMinutes(e.stop.Clock())
	startMinutes := ConvertToMinutes(e.start.Clock())
	currentMinutes := ConvertToMinutes(current.Clock())

	if currentMinutes >= stopMinutes {
		current.Set(current.Year, current.Month, current.Day, e.stop.Hour, e.stop.Minute)
		currentMinutes = ConvertToMinutes(current.Clock())
	} else if currentMinutes < startMinutes {
		e.incrementWorkDay(current, true)
		current.Set(current.Year, current.Month, current.Day, e.stop.Hour, e.stop.Minute)
		currentMinutes = ConvertToMinutes(current.Clock())
	}

	if currentMinutes-minutes >= startMinutes {
		t := SubtractMinutes(currentMinutes, minutes)
		current.Set(current.Year, current.Month, current.Day, t.Hour, t.Minute)
		return
	}

	e.incrementWorkDay(current, true)
	underflow := startMinutes - (currentMinutes - minutes)
	t := SubtractMinutes(stopMinutes, underflow)
	current.Set(current.Year, current.Month, current.Day, t.Hour, t.Minute)
}
