/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types
  decouple the engine's Date values from the external API contract.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

DATE FORMATS:
  Dates travel as strings: "YYYY-MM-DD" for pure dates and
  "YYYY-MM-DD HH:MM" where the time-of-day matters. Workday amounts
  travel as JSON numbers or strings and are decoded into
  decimal.Decimal so "0.25" survives intact.

VALIDATION:
  Parsing here is purely structural (field count and ranges are the
  calendar's concern). Handlers run parsed dates through the Gregorian
  rules before use.

SEE ALSO:
  - handlers.go: Uses these types
  - workday/date.go: The internal Date value
*/
package api

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/warp/workday-engine/workday"
)

// =============================================================================
// REQUEST/RESPONSE TYPES
// =============================================================================

// ConfigureWindowRequest sets the daily work window.
type ConfigureWindowRequest struct {
	Start string `json:"start"` // "YYYY-MM-DD HH:MM"
	Stop  string `json:"stop"`  // "YYYY-MM-DD HH:MM"
}

// WindowDTO reports the configured window.
type WindowDTO struct {
	Start           string `json:"start"`
	Stop            string `json:"stop"`
	DurationMinutes int    `json:"duration_minutes"`
}

// RegisterHolidayRequest registers a one-time or recurring holiday.
type RegisterHolidayRequest struct {
	Date      string `json:"date"` // "YYYY-MM-DD"
	Recurring bool   `json:"recurring"`
}

// HolidayDTO is one persisted holiday registration.
type HolidayDTO struct {
	Date      string `json:"date"`
	Recurring bool   `json:"recurring"`
}

// HolidayCheckDTO answers a holiday query.
type HolidayCheckDTO struct {
	Date    string `json:"date"`
	Holiday bool   `json:"holiday"`
}

// IncrementRequest asks for a workday increment computation.
type IncrementRequest struct {
	Start    string          `json:"start"`    // "YYYY-MM-DD HH:MM"
	Workdays decimal.Decimal `json:"workdays"` // fractional, may be negative
}

// IncrementDTO is the computed result.
type IncrementDTO struct {
	Start    string          `json:"start"`
	Workdays decimal.Decimal `json:"workdays"`
	Result   string          `json:"result"`
}

// PresetDTO describes one loadable holiday preset.
type PresetDTO struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Holidays    int    `json:"holidays"`
}

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// =============================================================================
// DATE PARSING
// =============================================================================

// parseDate parses "YYYY-MM-DD" into a Date with zero time-of-day.
func parseDate(s string) (workday.Date, error) {
	var y, m, d int
	if n, err := fmt.Sscanf(s, "%d-%d-%d", &y, &m, &d); n != 3 || err != nil {
		return workday.InvalidDate, fmt.Errorf("%w: want YYYY-MM-DD, got %q", workday.ErrInvalidDate, s)
	}
	return workday.NewDate(y, m, d, 0, 0), nil
}

// parseDateTime parses "YYYY-MM-DD HH:MM".
func parseDateTime(s string) (workday.Date, error) {
	var y, m, d, hh, mm int
	if n, err := fmt.Sscanf(s, "%d-%d-%d %d:%d", &y, &m, &d, &hh, &mm); n != 5 || err != nil {
		return workday.InvalidDate, fmt.Errorf("%w: want YYYY-MM-DD HH:MM, got %q", workday.ErrInvalidDate, s)
	}
	return workday.NewDate(y, m, d, hh, mm), nil
}
