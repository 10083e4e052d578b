package sqlite_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/workday-engine/store/sqlite"
	"github.com/warp/workday-engine/workday"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()
	st, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

func TestSQLite_HolidayRoundTrip(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	one := workday.HolidayRecord{Date: workday.NewDate(2024, 7, 4, 0, 0)}
	rec := workday.HolidayRecord{Date: workday.NewDate(2024, 12, 25, 0, 0), Recurring: true}

	require.NoError(t, st.SaveHoliday(ctx, one))
	require.NoError(t, st.SaveHoliday(ctx, rec))

	// Duplicate registrations keep set semantics.
	require.NoError(t, st.SaveHoliday(ctx, one))
	require.NoError(t, st.SaveHoliday(ctx, rec))

	got, err := st.ListHolidays(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.False(t, got[0].Recurring, "one-time records list first")
	assert.Equal(t, "2024-07-04", got[0].Date.FormatDate())
	assert.True(t, got[1].Recurring)
	assert.Equal(t, 12, got[1].Date.Month)
	assert.Equal(t, 25, got[1].Date.Day)
}

func TestSQLite_RecurringUniquePerMonthDay(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	// Same (month, day) registered from different years is one record.
	require.NoError(t, st.SaveHoliday(ctx, workday.HolidayRecord{
		Date: workday.NewDate(2024, 12, 25, 0, 0), Recurring: true}))
	require.NoError(t, st.SaveHoliday(ctx, workday.HolidayRecord{
		Date: workday.NewDate(2025, 12, 25, 0, 0), Recurring: true}))

	got, err := st.ListHolidays(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestSQLite_WindowOverwrite(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	_, ok, err := st.LoadWindow(ctx)
	require.NoError(t, err)
	assert.False(t, ok, "fresh store should have no window")

	first := workday.WindowRecord{
		Start: workday.NewDate(2024, 1, 1, 8, 0),
		Stop:  workday.NewDate(2024, 1, 1, 16, 0),
	}
	require.NoError(t, st.SaveWindow(ctx, first))

	second := workday.WindowRecord{
		Start: workday.NewDate(2024, 1, 1, 9, 30),
		Stop:  workday.NewDate(2024, 1, 1, 17, 30),
	}
	require.NoError(t, st.SaveWindow(ctx, second))

	got, ok, err := st.LoadWindow(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, second, got)
}

func TestSQLite_ReplayIntoEngine(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	require.NoError(t, st.SaveWindow(ctx, workday.WindowRecord{
		Start: workday.NewDate(2024, 1, 1, 8, 0),
		Stop:  workday.NewDate(2024, 1, 1, 16, 0),
	}))
	require.NoError(t, st.SaveHoliday(ctx, workday.HolidayRecord{
		Date: workday.NewDate(2024, 7, 4, 0, 0)}))

	engine := workday.NewEngine(nil)
	require.NoError(t, workday.Replay(ctx, st, engine))

	_, ok := engine.WorkdayStart()
	assert.True(t, ok, "window restored")

	// Increment across the restored holiday behaves as if registered live.
	got := engine.GetWorkdayIncrement(workday.NewDate(2024, 7, 3, 9, 0), 1)
	assert.Equal(t, "2024-07-05 09:00", got.String())
}
