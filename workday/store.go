/*
store.go - Persistence interface for holidays and the work window

PURPOSE:
  Defines the seam between the engine's in-memory state and durable
  storage. The engine itself never touches a Store; the server layer
  records every successful registration and replays the whole state
  into a fresh engine at startup.

APPEND-ONLY CONTRACT:
  Holiday registries have no removal API (registrations persist until
  teardown), so the Store exposes Save and List but no Delete. Saving
  the same holiday twice is a no-op, mirroring the set semantics of
  the in-memory registries. The window is the one mutable record:
  SaveWindow overwrites.

IMPLEMENTATIONS:
  - store/sqlite/sqlite.go: Production SQLite
  - workday/store/memory.go: In-memory for testing

SEE ALSO:
  - engine.go: the state being persisted
  - cmd/server/main.go: startup replay
*/
package workday

import "context"

// HolidayRecord is one persisted holiday registration.
type HolidayRecord struct {
	Date      Date
	Recurring bool // recurring records match (Month, Day) in every year
}

// WindowRecord is the persisted work window.
type WindowRecord struct {
	Start Date
	Stop  Date
}

// Store persists holiday registrations and the configured window.
type Store interface {
	// SaveHoliday records a holiday registration. Saving an already
	// recorded holiday is a no-op.
	SaveHoliday(ctx context.Context, rec HolidayRecord) error

	// ListHolidays returns every recorded registration, one-time
	// first, in no further guaranteed order.
	ListHolidays(ctx context.Context) ([]HolidayRecord, error)

	// SaveWindow overwrites the persisted work window.
	SaveWindow(ctx context.Context, rec WindowRecord) error

	// LoadWindow returns the persisted window, if any.
	LoadWindow(ctx context.Context) (WindowRecord, bool, error)
}

// Replay loads the persisted state from s into engine: the window (if
// set) first, then every holiday registration. Invalid stored records
// are dropped by the engine's own validation, same as live input.
func Replay(ctx context.Context, s Store, engine *Engine) error {
	win, ok, err := s.LoadWindow(ctx)
	if err != nil {
		return err
	}
	if ok {
		engine.ConfigureWorkday(win.Start, win.Stop)
	}

	recs, err := s.ListHolidays(ctx)
	if err != nil {
		return err
	}
	for _, rec := range recs {
		if rec.Recurring {
			engine.RegisterRecurringHoliday(rec.Date)
		} else {
			engine.RegisterHoliday(rec.Date)
		}
	}
	return nil
}
