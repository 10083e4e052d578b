/*
presets.go - Named holiday presets

PURPOSE:
  Pre-built holiday sets loadable in one call, for demos and for
  bootstrapping a fresh deployment. Fixed-date national holidays are
  registered as recurring (month, day); movable feasts are pinned to a
  concrete year and registered one-time.

AVAILABLE PRESETS:
  us-federal-fixed:  US federal holidays that fall on a fixed date
  norway-fixed:      Norwegian fixed-date public holidays
  norway-2024:       Norwegian movable holidays for 2024 (Easter block)

USAGE VIA API:
  POST /api/holidays/presets/us-federal-fixed

ADDING NEW PRESETS:
  1. Add a PresetDTO to 'presets'
  2. Add the holiday list to presetHolidays

SEE ALSO:
  - handlers.go: ListPresets, LoadPreset handlers
*/
package api

import (
	"fmt"

	"github.com/warp/workday-engine/workday"
)

// =============================================================================
// PRESET DEFINITIONS
// =============================================================================

var presets = []PresetDTO{
	{
		Name:        "us-federal-fixed",
		Description: "US federal holidays on fixed dates, recurring every year",
	},
	{
		Name:        "norway-fixed",
		Description: "Norwegian fixed-date public holidays, recurring every year",
	},
	{
		Name:        "norway-2024",
		Description: "Norwegian movable holidays for 2024 (Easter, Ascension, Whit Monday)",
	},
}

func recurring(month, day int) workday.HolidayRecord {
	return workday.HolidayRecord{Date: workday.NewDate(2024, month, day, 0, 0), Recurring: true}
}

func oneTime(year, month, day int) workday.HolidayRecord {
	return workday.HolidayRecord{Date: workday.NewDate(year, month, day, 0, 0)}
}

var presetHolidays = map[string][]workday.HolidayRecord{
	"us-federal-fixed": {
		recurring(1, 1),   // New Year's Day
		recurring(6, 19),  // Juneteenth
		recurring(7, 4),   // Independence Day
		recurring(11, 11), // Veterans Day
		recurring(12, 25), // Christmas Day
	},
	"norway-fixed": {
		recurring(1, 1),   // Første nyttårsdag
		recurring(5, 1),   // Arbeidernes dag
		recurring(5, 17),  // Grunnlovsdag
		recurring(12, 25), // Første juledag
		recurring(12, 26), // Andre juledag
	},
	"norway-2024": {
		oneTime(2024, 3, 28), // Skjærtorsdag
		oneTime(2024, 3, 29), // Langfredag
		oneTime(2024, 4, 1),  // Andre påskedag
		oneTime(2024, 5, 9),  // Kristi himmelfartsdag
		oneTime(2024, 5, 20), // Andre pinsedag
	},
}

// PresetList returns the available presets with their holiday counts.
func PresetList() []PresetDTO {
	out := make([]PresetDTO, len(presets))
	for i, p := range presets {
		p.Holidays = len(presetHolidays[p.Name])
		out[i] = p
	}
	return out
}

// PresetHolidays returns the holiday records of a named preset.
func PresetHolidays(name string) ([]workday.HolidayRecord, error) {
	recs, ok := presetHolidays[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", workday.ErrPresetNotFound, name)
	}
	return recs, nil
}
