package settings

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ajshieldpay/otpay/internal/rest"
	"github.com/ajshieldpay/otpay/pkg/rates"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

type SettingsDTO struct {
	Rank             string          `json:"rank"`
	ServiceBand      string          `json:"service"`
	Rate133          decimal.Decimal `json:"rate133"`
	Rate150          decimal.Decimal `json:"rate150"`
	Rate200          decimal.Decimal `json:"rate200"`
	TaxRate          int             `json:"taxRate"`
	EffectiveTaxRate int             `json:"effectiveTaxRate"`
}

type RankRequest struct {
	Rank    string `json:"rank"`
	Service string `json:"service,omitempty"`
}

type ServiceBandRequest struct {
	Service string `json:"service"`
}

type TaxRateRequest struct {
	TaxRate int `json:"taxRate"`
}

type RankOptionDTO struct {
	Rank     string   `json:"rank"`
	Services []string `json:"services"`
}

type OptionsDTO struct {
	Ranks      []RankOptionDTO `json:"ranks"`
	TaxRates   []int           `json:"taxRates"`
	Allowances []string        `json:"allowances"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service}
}

// Get godoc
// @Summary Current pay settings
// @Tags Settings
// @Produce json
// @Success 200 {object} SettingsDTO
// @Router /api/settings [get]
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	s, err := h.service.Get(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	rest.WriteJSON(w, http.StatusOK, ToDTO(s))
}

// SetRank godoc
// @Summary Select a rank
// @Description Keeps the requested or current band when the rank offers it, otherwise takes the rank's first band
// @Tags Settings
// @Accept json
// @Produce json
// @Param request body RankRequest true "Rank"
// @Success 200 {object} SettingsDTO
// @Failure 400 {object} rest.ErrorResponse "Unknown rank"
// @Router /api/settings/rank [put]
func (h *Handler) SetRank(w http.ResponseWriter, r *http.Request) {
	var req RankRequest
	if !decode(w, r, &req) {
		return
	}
	s, err := h.service.SetRank(r.Context(), rates.Rank(req.Rank), rates.ServiceBand(req.Service))
	h.respond(w, s, err)
}

// SetServiceBand godoc
// @Summary Select a service band under the current rank
// @Tags Settings
// @Accept json
// @Produce json
// @Param request body ServiceBandRequest true "Service band"
// @Success 200 {object} SettingsDTO
// @Failure 400 {object} rest.ErrorResponse "No rank selected"
// @Router /api/settings/service [put]
func (h *Handler) SetServiceBand(w http.ResponseWriter, r *http.Request) {
	var req ServiceBandRequest
	if !decode(w, r, &req) {
		return
	}
	s, err := h.service.SetServiceBand(r.Context(), rates.ServiceBand(req.Service))
	h.respond(w, s, err)
}

// SetTaxRate godoc
// @Summary Select the flat tax rate
// @Tags Settings
// @Accept json
// @Produce json
// @Param request body TaxRateRequest true "Tax rate"
// @Success 200 {object} SettingsDTO
// @Failure 400 {object} rest.ErrorResponse "Unsupported tax rate"
// @Router /api/settings/tax [put]
func (h *Handler) SetTaxRate(w http.ResponseWriter, r *http.Request) {
	var req TaxRateRequest
	if !decode(w, r, &req) {
		return
	}
	s, err := h.service.SetTaxRate(r.Context(), req.TaxRate)
	h.respond(w, s, err)
}

// Options godoc
// @Summary Selectable ranks, bands, tax rates and allowances
// @Tags Settings
// @Produce json
// @Success 200 {object} OptionsDTO
// @Router /api/settings/options [get]
func (h *Handler) Options(w http.ResponseWriter, r *http.Request) {
	opts := h.service.Options()
	dto := OptionsDTO{TaxRates: opts.TaxRates}
	for _, rank := range opts.Ranks {
		services := make([]string, 0, len(rank.Bands))
		for _, b := range rank.Bands {
			services = append(services, string(b))
		}
		dto.Ranks = append(dto.Ranks, RankOptionDTO{Rank: string(rank.Rank), Services: services})
	}
	for _, a := range opts.Allowances {
		dto.Allowances = append(dto.Allowances, string(a))
	}
	rest.WriteJSON(w, http.StatusOK, dto)
}

func (h *Handler) respond(w http.ResponseWriter, s Settings, err error) {
	switch {
	case err == nil:
		rest.WriteJSON(w, http.StatusOK, ToDTO(s))
	case errors.Is(err, ErrInvalidRank), errors.Is(err, ErrInvalidServiceBand), errors.Is(err, ErrInvalidTaxRate):
		rest.WriteError(w, http.StatusBadRequest, "Invalid settings", err.Error())
	default:
		log.Errorf("settings request failed: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func decode(w http.ResponseWriter, r *http.Request, target any) bool {
	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		rest.WriteError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return false
	}
	return true
}

func ToDTO(s Settings) SettingsDTO {
	return SettingsDTO{
		Rank:             string(s.Rank),
		ServiceBand:      string(s.ServiceBand),
		Rate133:          s.Rates.R133,
		Rate150:          s.Rates.R150,
		Rate200:          s.Rates.R200,
		TaxRate:          s.TaxRate,
		EffectiveTaxRate: s.EffectiveTaxRate(),
	}
}
