/*
handlers.go - HTTP API handlers for the workday engine

PURPOSE:
  Exposes the workday increment engine via REST API. Handles HTTP
  request/response, JSON serialization, and delegates to the engine.

ENDPOINTS:
  Window:
    GET    /api/workday/window     Current window (404 if unset)
    PUT    /api/workday/window     Configure start/stop

  Holidays:
    GET    /api/holidays           List persisted registrations
    POST   /api/holidays           Register one-time or recurring
    GET    /api/holidays/check     Holiday query (?date=YYYY-MM-DD)
    GET    /api/holidays/presets   List loadable presets
    POST   /api/holidays/presets/{name}  Load a preset

  Computation:
    POST   /api/workday/increment  Fractional workday increment

ERROR HANDLING:
  The engine itself never errors; it clears state or returns the
  invalid sentinel. The handlers translate those outcomes into HTTP:
  - 400: Malformed body, unparseable or calendar-invalid dates
  - 404: Window unset, unknown preset
  - 422: Increment preconditions failed (engine returned the sentinel)
  - 500: Persistence failures

PERSISTENCE:
  Successful mutations are written through to the Store after the
  engine accepted them, so a replayed store never contains state the
  engine rejected.

SEE ALSO:
  - dto.go: Request/response data structures
  - presets.go: Named holiday sets
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/warp/workday-engine/workday"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Engine *workday.Engine
	Store  workday.Store

	// Stateless validity checks for incoming dates; registrations go
	// through the engine's own calendar.
	rules *workday.Gregorian
}

// NewHandler creates a Handler around an engine and a store.
func NewHandler(engine *workday.Engine, store workday.Store) *Handler {
	return &Handler{Engine: engine, Store: store, rules: workday.NewGregorian()}
}

// =============================================================================
// WINDOW
// =============================================================================

// GetWindow returns the configured work window.
// GET /api/workday/window
func (h *Handler) GetWindow(w http.ResponseWriter, r *http.Request) {
	start, ok := h.Engine.WorkdayStart()
	if !ok {
		writeError(w, http.StatusNotFound, "Workday window not configured", nil)
		return
	}
	stop, _ := h.Engine.WorkdayStop()
	duration, _ := h.Engine.Duration()

	writeJSON(w, http.StatusOK, WindowDTO{
		Start:           start.String(),
		Stop:            stop.String(),
		DurationMinutes: workday.ConvertToMinutes(duration),
	})
}

// ConfigureWindow sets the work window.
// PUT /api/workday/window
func (h *Handler) ConfigureWindow(w http.ResponseWriter, r *http.Request) {
	var req ConfigureWindowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	start, err := parseDateTime(req.Start)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid start", err)
		return
	}
	stop, err := parseDateTime(req.Stop)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid stop", err)
		return
	}

	h.Engine.ConfigureWorkday(start, stop)
	if _, ok := h.Engine.WorkdayStart(); !ok {
		// Reset-on-error inside the engine; report it to the caller.
		writeError(w, http.StatusBadRequest, "Window rejected, configuration cleared", workday.ErrInvalidDate)
		return
	}

	if err := h.Store.SaveWindow(r.Context(), workday.WindowRecord{Start: start, Stop: stop}); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to persist window", err)
		return
	}

	h.GetWindow(w, r)
}

// =============================================================================
// HOLIDAYS
// =============================================================================

// ListHolidays returns all persisted holiday registrations.
// GET /api/holidays
func (h *Handler) ListHolidays(w http.ResponseWriter, r *http.Request) {
	recs, err := h.Store.ListHolidays(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list holidays", err)
		return
	}

	dtos := make([]HolidayDTO, 0, len(recs))
	for _, rec := range recs {
		dtos = append(dtos, HolidayDTO{Date: rec.Date.FormatDate(), Recurring: rec.Recurring})
	}
	writeJSON(w, http.StatusOK, dtos)
}

// RegisterHoliday registers a one-time or recurring holiday.
// POST /api/holidays
func (h *Handler) RegisterHoliday(w http.ResponseWriter, r *http.Request) {
	var req RegisterHolidayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid date format (use YYYY-MM-DD)", err)
		return
	}
	// The engine swallows invalid registrations; reject them here so
	// the caller learns about the typo.
	if !h.rules.IsValidDate(date) {
		writeError(w, http.StatusBadRequest, "Not a valid calendar date", workday.ErrInvalidDate)
		return
	}

	if req.Recurring {
		h.Engine.RegisterRecurringHoliday(date)
	} else {
		h.Engine.RegisterHoliday(date)
	}

	rec := workday.HolidayRecord{Date: date, Recurring: req.Recurring}
	if err := h.Store.SaveHoliday(r.Context(), rec); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to persist holiday", err)
		return
	}

	writeJSON(w, http.StatusCreated, HolidayDTO{Date: date.FormatDate(), Recurring: req.Recurring})
}

// CheckHoliday reports whether a date is a weekend or holiday.
// GET /api/holidays/check?date=YYYY-MM-DD
func (h *Handler) CheckHoliday(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("date")
	date, err := parseDate(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid date format (use YYYY-MM-DD)", err)
		return
	}
	if !h.rules.IsValidDate(date) {
		writeError(w, http.StatusBadRequest, "Not a valid calendar date", workday.ErrInvalidDate)
		return
	}

	writeJSON(w, http.StatusOK, HolidayCheckDTO{
		Date:    date.FormatDate(),
		Holiday: h.Engine.IsHoliday(date),
	})
}

// ListPresets returns the available holiday presets.
// GET /api/holidays/presets
func (h *Handler) ListPresets(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, PresetList())
}

// LoadPreset registers every holiday of a named preset.
// POST /api/holidays/presets/{name}
func (h *Handler) LoadPreset(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	recs, err := PresetHolidays(name)
	if err != nil {
		status := http.StatusInternalServerError
		if workday.IsNotFound(err) {
			status = http.StatusNotFound
		}
		writeError(w, status, "Unknown preset", err)
		return
	}

	for _, rec := range recs {
		if rec.Recurring {
			h.Engine.RegisterRecurringHoliday(rec.Date)
		} else {
			h.Engine.RegisterHoliday(rec.Date)
		}
		if err := h.Store.SaveHoliday(r.Context(), rec); err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to persist preset", err)
			return
		}
	}

	writeJSON(w, http.StatusOK, PresetDTO{Name: name, Holidays: len(recs)})
}

// =============================================================================
// INCREMENT
// =============================================================================

// Increment computes a fractional workday increment.
// POST /api/workday/increment
func (h *Handler) Increment(w http.ResponseWriter, r *http.Request) {
	var req IncrementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	start, err := parseDateTime(req.Start)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid start", err)
		return
	}
	if !h.rules.IsValidDate(start) {
		writeError(w, http.StatusBadRequest, "Not a valid calendar date", workday.ErrInvalidDate)
		return
	}

	result := h.Engine.GetWorkdayIncrement(start, req.Workdays.InexactFloat64())
	if result.IsInvalid() {
		// Start date already validated, so the sentinel means the
		// window is unset.
		writeError(w, http.StatusUnprocessableEntity, "Increment could not be computed", workday.ErrNotConfigured)
		return
	}

	writeJSON(w, http.StatusOK, IncrementDTO{
		Start:    start.String(),
		Workdays: req.Workdays,
		Result:   result.String(),
	})
}

// =============================================================================
// RESPONSE HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
