/*
Package sqlite provides a SQLite-backed implementation of workday.Store.

PURPOSE:
  Persists holiday registrations and the configured work window so a
  restarted server can replay them into a fresh engine. The engine
  stays the in-memory authority; this store is write-behind only.

KEY TABLES:
  holidays:       One row per registration; recurring rows keep the
                  registration year for audit but match on (month, day).
  workday_window: Single-row table holding the configured window.

APPEND-ONLY ENFORCEMENT:
  No DELETE on holidays; registrations persist until teardown, same
  as the in-memory registries. INSERT OR IGNORE gives duplicate saves
  set semantics. The window row is the one overwritable record.

WAL MODE:
  Opened with WAL (Write-Ahead Logging): multiple readers don't block,
  single writer at a time, better crash recovery.

CONCURRENCY:
  Uses sync.RWMutex for thread-safety across the single *sql.DB.

USAGE:
  st, err := sqlite.New("./data/workday.db")
  if err != nil {
      log.Fatal(err)
  }
  defer st.Close()
  workday.Replay(ctx, st, engine)

SEE ALSO:
  - workday/store.go: Interface definition and Replay
  - workday/store/memory.go: In-memory implementation for testing
*/
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	_ "github.com/mattn/go-sqlite3"
	"github.com/warp/workday-engine/workday"
)

// Store implements workday.Store using SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New creates a new SQLite store with the given database path.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if dbPath == ":memory:" {
		// Each pooled connection would otherwise get its own empty
		// in-memory database.
		db.SetMaxOpenConns(1)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
	-- Holiday registrations (append-only)
	CREATE TABLE IF NOT EXISTS holidays (
		year INTEGER NOT NULL,
		month INTEGER NOT NULL,
		day INTEGER NOT NULL,
		recurring INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL DEFAULT (datetime('now'))
	);

	-- One-time holidays are unique per exact date...
	CREATE UNIQUE INDEX IF NOT EXISTS idx_holidays_exact
		ON holidays(year, month, day) WHERE recurring = 0;
	-- ...recurring ones per (month, day) regardless of year
	CREATE UNIQUE INDEX IF NOT EXISTS idx_holidays_recurring
		ON holidays(month, day) WHERE recurring = 1;

	-- Configured work window (single row, id is always 1)
	CREATE TABLE IF NOT EXISTS workday_window (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		start_hour INTEGER NOT NULL,
		start_minute INTEGER NOT NULL,
		stop_hour INTEGER NOT NULL,
		stop_minute INTEGER NOT NULL,
		start_date TEXT NOT NULL,
		stop_date TEXT NOT NULL,
		updated_at TEXT NOT NULL DEFAULT (datetime('now'))
	);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return err
	}
	return nil
}

// =============================================================================
// HOLIDAYS
// =============================================================================

// SaveHoliday records a registration. Duplicate saves are no-ops via
// INSERT OR IGNORE against the unique indexes.
func (s *Store) SaveHoliday(ctx context.Context, rec workday.HolidayRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	recurring := 0
	if rec.Recurring {
		recurring = 1
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO holidays (year, month, day, recurring) VALUES (?, ?, ?, ?)`,
		rec.Date.Year, rec.Date.Month, rec.Date.Day, recurring)
	if err != nil {
		return fmt.Errorf("%w: save holiday: %v", workday.ErrStoreFailed, err)
	}
	return nil
}

// ListHolidays returns every recorded registration, one-time first.
func (s *Store) ListHolidays(ctx context.Context) ([]workday.HolidayRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx,
		`SELECT year, month, day, recurring FROM holidays ORDER BY recurring, year, month, day`)
	if err != nil {
		return nil, fmt.Errorf("%w: list holidays: %v", workday.ErrStoreFailed, err)
	}
	defer rows.Close()

	var out []workday.HolidayRecord
	for rows.Next() {
		var year, month, day, recurring int
		if err := rows.Scan(&year, &month, &day, &recurring); err != nil {
			return nil, fmt.Errorf("%w: scan holiday: %v", workday.ErrStoreFailed, err)
		}
		out = append(out, workday.HolidayRecord{
			Date:      workday.NewDate(year, month, day, 0, 0),
			Recurring: recurring != 0,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: list holidays: %v", workday.ErrStoreFailed, err)
	}
	return out, nil
}

// =============================================================================
// WINDOW
// =============================================================================

// SaveWindow overwrites the persisted work window.
func (s *Store) SaveWindow(ctx context.Context, rec workday.WindowRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO workday_window (id, start_hour, start_minute, stop_hour, stop_minute, start_date, stop_date, updated_at)
		VALUES (1, ?, ?, ?, ?, ?, ?, datetime('now'))
		ON CONFLICT(id) DO UPDATE SET
			start_hour = excluded.start_hour,
			start_minute = excluded.start_minute,
			stop_hour = excluded.stop_hour,
			stop_minute = excluded.stop_minute,
			start_date = excluded.start_date,
			stop_date = excluded.stop_date,
			updated_at = excluded.updated_at`,
		rec.Start.Hour, rec.Start.Minute, rec.Stop.Hour, rec.Stop.Minute,
		rec.Start.FormatDate(), rec.Stop.FormatDate())
	if err != nil {
		return fmt.Errorf("%w: save window: %v", workday.ErrStoreFailed, err)
	}
	return nil
}

// LoadWindow returns the persisted window, if any.
func (s *Store) LoadWindow(ctx context.Context) (workday.WindowRecord, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var (
		startHour, startMinute, stopHour, stopMinute int
		startDate, stopDate                          string
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT start_hour, start_minute, stop_hour, stop_minute, start_date, stop_date
		 FROM workday_window WHERE id = 1`).
		Scan(&startHour, &startMinute, &stopHour, &stopMinute, &startDate, &stopDate)
	if err == sql.ErrNoRows {
		return workday.WindowRecord{}, false, nil
	}
	if err != nil {
		return workday.WindowRecord{}, false, fmt.Errorf("%w: load window: %v", workday.ErrStoreFailed, err)
	}

	var sy, sm, sd, ty, tm, td int
	if _, err := fmt.Sscanf(startDate, "%d-%d-%d", &sy, &sm, &sd); err != nil {
		return workday.WindowRecord{}, false, fmt.Errorf("%w: parse start date %q: %v", workday.ErrStoreFailed, startDate, err)
	}
	if _, err := fmt.Sscanf(stopDate, "%d-%d-%d", &ty, &tm, &td); err != nil {
		return workday.WindowRecord{}, false, fmt.Errorf("%w: parse stop date %q: %v", workday.ErrStoreFailed, stopDate, err)
	}
	return workday.WindowRecord{
		Start: workday.NewDate(sy, sm, sd, startHour, startMinute),
		Stop:  workday.NewDate(ty, tm, td, stopHour, stopMinute),
	}, true, nil
}
