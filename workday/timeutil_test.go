package workday_test

import (
	"testing"

	"github.com/warp/workday-engine/workday"
)

func TestConvertToMinutes(t *testing.T) {
	cases := []struct {
		in   workday.ClockTime
		want int
	}{
		{workday.ClockTime{Hour: 0, Minute: 0}, 0},
		{workday.ClockTime{Hour: 8, Minute: 0}, 480},
		{workday.ClockTime{Hour: 16, Minute: 0}, 960},
		{workday.ClockTime{Hour: 23, Minute: 59}, 1439},
	}
	for _, tc := range cases {
		if got := workday.ConvertToMinutes(tc.in); got != tc.want {
			t.Errorf("ConvertToMinutes(%+v) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestAddMinutes_NoDayWrap(t *testing.T) {
	// Addition deliberately does not wrap at 24 hours.
	got := workday.AddMinutes(23*60, 120)
	if got != (workday.ClockTime{Hour: 25, Minute: 0}) {
		t.Errorf("AddMinutes(1380, 120) = %+v, want {25 0}", got)
	}

	got = workday.AddMinutes(480, 67)
	if got != (workday.ClockTime{Hour: 9, Minute: 7}) {
		t.Errorf("AddMinutes(480, 67) = %+v, want {9 7}", got)
	}
}

func TestSubtractMinutes_BorrowsOneDay(t *testing.T) {
	// A negative difference gets exactly one day added back.
	got := workday.SubtractMinutes(60, 120)
	if got != (workday.ClockTime{Hour: 23, Minute: 0}) {
		t.Errorf("SubtractMinutes(60, 120) = %+v, want {23 0}", got)
	}

	got = workday.SubtractMinutes(960, 480)
	if got != (workday.ClockTime{Hour: 8, Minute: 0}) {
		t.Errorf("SubtractMinutes(960, 480) = %+v, want {8 0}", got)
	}
}

func TestAddTime(t *testing.T) {
	got := workday.AddTime(
		workday.ClockTime{Hour: 8, Minute: 30},
		workday.ClockTime{Hour: 1, Minute: 45},
	)
	if got != (workday.ClockTime{Hour: 10, Minute: 15}) {
		t.Errorf("AddTime = %+v, want {10 15}", got)
	}
}

func TestSubtractTime_WindowDuration(t *testing.T) {
	// The engine derives the workday duration exactly this way.
	got := workday.SubtractTime(
		workday.ClockTime{Hour: 16, Minute: 0},
		workday.ClockTime{Hour: 8, Minute: 0},
	)
	if got != (workday.ClockTime{Hour: 8, Minute: 0}) {
		t.Errorf("SubtractTime = %+v, want {8 0}", got)
	}

	// Stop before start wraps across midnight (night shift window).
	got = workday.SubtractTime(
		workday.ClockTime{Hour: 2, Minute: 0},
		workday.ClockTime{Hour: 22, Minute: 0},
	)
	if got != (workday.ClockTime{Hour: 4, Minute: 0}) {
		t.Errorf("SubtractTime wrap = %+v, want {4 0}", got)
	}
}
