package calendar

import (
	"net/http"
	"time"

	"github.com/ajshieldpay/otpay/internal/rest"
)

type PeriodDTO struct {
	Label string `json:"label"`
	Short string `json:"short"`
	Start string `json:"start"`
	End   string `json:"end"`
}

type CalendarDTO struct {
	Start   string      `json:"start"`
	End     string      `json:"end"`
	Periods []PeriodDTO `json:"periods"`
	// Current is the index of the period containing the requested date, or null outside the fiscal year.
	Current *int `json:"current"`
}

type Handler struct {
	calendar *Calendar
	now      func() time.Time
}

func NewHandler(calendar *Calendar, now func() time.Time) *Handler {
	return &Handler{calendar, now}
}

// GetPeriods godoc
// @Summary List the pay periods of the fiscal year
// @Description The optional date query parameter (YYYY-MM-DD) picks the current period, today by default
// @Tags Calendar
// @Produce json
// @Param date query string false "Date to locate"
// @Success 200 {object} CalendarDTO
// @Failure 400 {object} rest.ErrorResponse
// @Router /api/calendar/periods [get]
func (h *Handler) GetPeriods(w http.ResponseWriter, r *http.Request) {
	date := h.now()
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := ParseDate(raw)
		if err != nil {
			rest.WriteError(w, http.StatusBadRequest, "Invalid date format", "'date' must be in YYYY-MM-DD format")
			return
		}
		date = parsed
	}

	dto := CalendarDTO{
		Start:   FormatDate(h.calendar.Start()),
		End:     FormatDate(h.calendar.End()),
		Periods: make([]PeriodDTO, 0, h.calendar.Len()),
	}
	for _, p := range h.calendar.Periods() {
		dto.Periods = append(dto.Periods, ToDTO(p))
	}
	if idx, ok := h.calendar.IndexOf(date); ok {
		dto.Current = &idx
	}
	rest.WriteJSON(w, http.StatusOK, dto)
}

func ToDTO(p Period) PeriodDTO {
	return PeriodDTO{
		Label: p.Label,
		Short: p.Short,
		Start: FormatDate(p.Start),
		End:   FormatDate(p.End),
	}
}
