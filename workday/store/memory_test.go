package store_test

import (
	"context"
	"testing"

	"github.com/warp/workday-engine/workday"
	"github.com/warp/workday-engine/workday/store"
)

func TestMemory_HolidayRoundTrip(t *testing.T) {
	ctx := context.Background()
	m := store.NewMemory()

	one := workday.HolidayRecord{Date: workday.NewDate(2024, 7, 4, 0, 0)}
	rec := workday.HolidayRecord{Date: workday.NewDate(2024, 12, 25, 0, 0), Recurring: true}

	if err := m.SaveHoliday(ctx, one); err != nil {
		t.Fatalf("SaveHoliday: %v", err)
	}
	if err := m.SaveHoliday(ctx, rec); err != nil {
		t.Fatalf("SaveHoliday: %v", err)
	}
	// Duplicate saves are no-ops.
	if err := m.SaveHoliday(ctx, one); err != nil {
		t.Fatalf("duplicate SaveHoliday: %v", err)
	}

	got, err := m.ListHolidays(ctx)
	if err != nil {
		t.Fatalf("ListHolidays: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("ListHolidays returned %d records, want 2", len(got))
	}
	if got[0].Recurring || !got[1].Recurring {
		t.Error("one-time records should list before recurring ones")
	}
}

func TestMemory_WindowRoundTrip(t *testing.T) {
	ctx := context.Background()
	m := store.NewMemory()

	if _, ok, err := m.LoadWindow(ctx); err != nil || ok {
		t.Fatalf("fresh store LoadWindow = ok=%v err=%v, want unset", ok, err)
	}

	win := workday.WindowRecord{
		Start: workday.NewDate(2024, 1, 1, 8, 0),
		Stop:  workday.NewDate(2024, 1, 1, 16, 0),
	}
	if err := m.SaveWindow(ctx, win); err != nil {
		t.Fatalf("SaveWindow: %v", err)
	}

	got, ok, err := m.LoadWindow(ctx)
	if err != nil || !ok {
		t.Fatalf("LoadWindow = ok=%v err=%v", ok, err)
	}
	if got != win {
		t.Errorf("LoadWindow = %+v, want %+v", got, win)
	}
}

func TestReplay_RestoresEngineState(t *testing.T) {
	ctx := context.Background()
	m := store.NewMemory()

	m.SaveWindow(ctx, workday.WindowRecord{
		Start: workday.NewDate(2024, 1, 1, 8, 0),
		Stop:  workday.NewDate(2024, 1, 1, 16, 0),
	})
	m.SaveHoliday(ctx, workday.HolidayRecord{Date: workday.NewDate(2024, 7, 4, 0, 0)})
	m.SaveHoliday(ctx, workday.HolidayRecord{Date: workday.NewDate(2024, 12, 25, 0, 0), Recurring: true})

	engine := workday.NewEngine(nil)
	if err := workday.Replay(ctx, m, engine); err != nil {
		t.Fatalf("Replay: %v", err)
	}

	if _, ok := engine.WorkdayStart(); !ok {
		t.Error("window not restored")
	}
	if !engine.IsHoliday(workday.NewDate(2024, 7, 4, 0, 0)) {
		t.Error("one-time holiday not restored")
	}
	if !engine.IsHoliday(workday.NewDate(2030, 12, 25, 0, 0)) {
		t.Error("recurring holiday not restored")
	}
}
