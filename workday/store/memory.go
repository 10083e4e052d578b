// Package store provides Store implementations.
package store

import (
	"context"
	"sync"

	"github.com/warp/workday-engine/workday"
)

// =============================================================================
// MEMORY STORE - In-memory implementation (for testing/dev)
// =============================================================================

type Memory struct {
	mu        sync.RWMutex
	holidays  map[holidayKey]workday.HolidayRecord
	window    workday.WindowRecord
	hasWindow bool
}

type holidayKey struct {
	Date      string
	Recurring bool
}

func NewMemory() *Memory {
	return &Memory{holidays: make(map[holidayKey]workday.HolidayRecord)}
}

// SaveHoliday records a registration. Duplicate saves are no-ops.
func (m *Memory) SaveHoliday(_ context.Context, rec workday.HolidayRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.holidays[keyFor(rec)] = rec
	return nil
}

// ListHolidays returns one-time registrations before recurring ones.
func (m *Memory) ListHolidays(_ context.Context) ([]workday.HolidayRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]workday.HolidayRecord, 0, len(m.holidays))
	for _, rec := range m.holidays {
		if !rec.Recurring {
			out = append(out, rec)
		}
	}
	for _, rec := range m.holidays {
		if rec.Recurring {
			out = append(out, rec)
		}
	}
	return out, nil
}

// SaveWindow overwrites the persisted window.
func (m *Memory) SaveWindow(_ context.Context, rec workday.WindowRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.window = rec
	m.hasWindow = true
	return nil
}

// LoadWindow returns the persisted window, if any.
func (m *Memory) LoadWindow(_ context.Context) (workday.WindowRecord, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.window, m.hasWindow, nil
}

func keyFor(rec workday.HolidayRecord) holidayKey {
	if rec.Recurring {
		// Recurring registrations are keyed by month and day only.
		return holidayKey{
			Date:      workday.NewDate(0, rec.Date.Month, rec.Date.Day, 0, 0).FormatDate(),
			Recurring: true,
		}
	}
	return holidayKey{Date: rec.Date.FormatDate()}
}
