package entry

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ajshieldpay/otpay/internal/rest"
	"github.com/ajshieldpay/otpay/pkg/calendar"
	"github.com/ajshieldpay/otpay/pkg/rates"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

// HoursDTO accepts hours sent as a JSON number, a numeric string or null.
// Anything that does not parse as a non-negative number is read as zero.
type HoursDTO struct {
	decimal.Decimal
}

func (h *HoursDTO) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		h.Decimal = decimal.Zero
		return nil
	}
	var raw string
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &raw); err != nil {
			h.Decimal = decimal.Zero
			return nil
		}
	} else {
		raw = string(data)
	}
	h.Decimal = ParseHours(raw)
	return nil
}

type EntryDTO struct {
	Id        string   `json:"id,omitempty"`
	Date      string   `json:"date"`
	Reason    string   `json:"reason"`
	Hours133  HoursDTO `json:"hours133"`
	Hours150  HoursDTO `json:"hours150"`
	Hours200  HoursDTO `json:"hours200"`
	Allowance string   `json:"allowance"`
	Comments  string   `json:"comments"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service}
}

// List godoc
// @Summary List overtime entries
// @Description All stored entries ordered by date
// @Tags Entry
// @Produce json
// @Success 200 {array} EntryDTO
// @Router /api/entry [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := h.service.List(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	dtos := make([]EntryDTO, 0, len(entries))
	for _, e := range entries {
		dtos = append(dtos, ToDTO(e))
	}
	rest.WriteJSON(w, http.StatusOK, dtos)
}

// Get godoc
// @Summary Get an overtime entry
// @Tags Entry
// @Produce json
// @Param entryId path string true "Entry ID"
// @Success 200 {object} EntryDTO
// @Failure 404 {object} rest.ErrorResponse "Entry not found"
// @Router /api/entry/{entryId} [get]
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	entry, err := h.service.Get(r.Context(), mux.Vars(r)["entryId"])
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	rest.WriteJSON(w, http.StatusOK, ToDTO(entry))
}

// Draft godoc
// @Summary Blank entry for the entry form
// @Description Dated today, or with the fiscal-year start when today is outside the fiscal year
// @Tags Entry
// @Produce json
// @Success 200 {object} EntryDTO
// @Router /api/entry/draft [get]
func (h *Handler) Draft(w http.ResponseWriter, r *http.Request) {
	rest.WriteJSON(w, http.StatusOK, ToDTO(h.service.NewDraft()))
}

// Create godoc
// @Summary Store a new overtime entry
// @Description An entry without hours, allowance, reason and comments is not stored
// @Tags Entry
// @Accept json
// @Produce json
// @Param entry body EntryDTO true "Entry"
// @Success 201 {object} EntryDTO
// @Success 204 "Nothing to store"
// @Failure 400 {object} rest.ErrorResponse "Invalid request"
// @Router /api/entry [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	entry, ok := decodeEntry(w, r)
	if !ok {
		return
	}
	created, err := h.service.Create(r.Context(), entry)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	rest.WriteJSON(w, http.StatusCreated, ToDTO(created))
}

// Update godoc
// @Summary Replace an overtime entry
// @Tags Entry
// @Accept json
// @Produce json
// @Param entryId path string true "Entry ID"
// @Param entry body EntryDTO true "Entry"
// @Success 200 {object} EntryDTO
// @Success 204 "Nothing to store"
// @Failure 400 {object} rest.ErrorResponse "Invalid request"
// @Failure 404 {object} rest.ErrorResponse "Entry not found"
// @Router /api/entry/{entryId} [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	entryId := mux.Vars(r)["entryId"]
	entry, ok := decodeEntry(w, r)
	if !ok {
		return
	}
	if entry.Id != "" && entry.Id != entryId {
		rest.WriteError(w, http.StatusBadRequest, "Invalid entry id in request body", "id must match the entry in the path")
		return
	}
	updated, err := h.service.Update(r.Context(), entryId, entry)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	rest.WriteJSON(w, http.StatusOK, ToDTO(updated))
}

// Delete godoc
// @Summary Delete an overtime entry
// @Tags Entry
// @Param entryId path string true "Entry ID"
// @Success 204 "No Content"
// @Failure 404 {object} rest.ErrorResponse "Entry not found"
// @Router /api/entry/{entryId} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), mux.Vars(r)["entryId"]); err != nil {
		h.writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrEmptyEntry):
		w.WriteHeader(http.StatusNoContent)
	case errors.Is(err, ErrEntryNotFound):
		rest.WriteError(w, http.StatusNotFound, "Entry not found", "")
	case errors.Is(err, ErrDateRequired):
		rest.WriteError(w, http.StatusBadRequest, "Invalid entry", err.Error())
	default:
		log.Errorf("entry request failed: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func decodeEntry(w http.ResponseWriter, r *http.Request) (Entry, bool) {
	var dto EntryDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return Entry{}, false
	}
	entry, err := FromDTO(dto)
	if err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid date format", "date must be in YYYY-MM-DD format")
		return Entry{}, false
	}
	return entry, true
}

func ToDTO(e Entry) EntryDTO {
	date := ""
	if !e.Date.IsZero() {
		date = calendar.FormatDate(e.Date)
	}
	return EntryDTO{
		Id:        e.Id,
		Date:      date,
		Reason:    e.Reason,
		Hours133:  HoursDTO{e.Hours133},
		Hours150:  HoursDTO{e.Hours150},
		Hours200:  HoursDTO{e.Hours200},
		Allowance: string(e.Allowance),
		Comments:  e.Comments,
	}
}

func FromDTO(dto EntryDTO) (Entry, error) {
	e := Entry{
		Id:        dto.Id,
		Reason:    dto.Reason,
		Hours133:  dto.Hours133.Decimal,
		Hours150:  dto.Hours150.Decimal,
		Hours200:  dto.Hours200.Decimal,
		Allowance: rates.NormalizeAllowance(dto.Allowance),
		Comments:  dto.Comments,
	}
	if dto.Date != "" {
		date, err := calendar.ParseDate(dto.Date)
		if err != nil {
			return Entry{}, err
		}
		e.Date = date
	}
	return e, nil
}
