package stats

import (
	"net/http"
	"strings"
	"time"

	"github.com/ajshieldpay/otpay/internal/rest"
	"github.com/ajshieldpay/otpay/pkg/calendar"
	"github.com/ajshieldpay/otpay/pkg/entry"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

type PeriodDTO = calendar.PeriodDTO

type YearTotalsDTO struct {
	GrossOvertime  decimal.Decimal `json:"grossOvertime"`
	GrossAllowance decimal.Decimal `json:"grossAllowance"`
	TotalGross     decimal.Decimal `json:"totalGross"`
	TotalNet       decimal.Decimal `json:"totalNet"`
	TotalHours     decimal.Decimal `json:"totalHours"`
}

type PeriodStatsDTO struct {
	Period PeriodDTO       `json:"period"`
	Gross  decimal.Decimal `json:"gross"`
	Net    decimal.Decimal `json:"net"`
}

type DashboardDTO struct {
	Date     string          `json:"date"`
	TaxRate  int             `json:"taxRate"`
	Totals   YearTotalsDTO   `json:"totals"`
	Previous *PeriodStatsDTO `json:"previous"`
	Current  *PeriodStatsDTO `json:"current"`
	Next     *PeriodStatsDTO `json:"next"`
}

type LiveDashboardDTO struct {
	DashboardDTO
	Revision   uint64 `json:"revision"`
	ComputedAt string `json:"computedAt"`
}

type HoursDTO struct {
	Tier133 decimal.Decimal `json:"tier133"`
	Tier150 decimal.Decimal `json:"tier150"`
	Tier200 decimal.Decimal `json:"tier200"`
}

type PeriodBreakdownDTO struct {
	Period          PeriodDTO        `json:"period"`
	Hours           HoursDTO         `json:"hours"`
	AllowanceCounts map[string]int   `json:"allowanceCounts"`
	OvertimeGross   decimal.Decimal  `json:"overtimeGross"`
	OvertimeNet     decimal.Decimal  `json:"overtimeNet"`
	AllowanceGross  decimal.Decimal  `json:"allowanceGross"`
	AllowanceNet    decimal.Decimal  `json:"allowanceNet"`
	TotalGross      decimal.Decimal  `json:"totalGross"`
	TotalNet        decimal.Decimal  `json:"totalNet"`
	Entries         []entry.EntryDTO `json:"entries"`
}

type GraphPointDTO struct {
	Period        PeriodDTO       `json:"period"`
	GrossOvertime decimal.Decimal `json:"grossOvertime"`
	NetOvertime   decimal.Decimal `json:"netOvertime"`
}

type GraphDTO struct {
	Points []GraphPointDTO `json:"points"`
	Max    decimal.Decimal `json:"max"`
}

type StatsHandler struct {
	statsService     StatsService
	csvStatsRenderer StatsRenderer
	live             *LiveDashboard
}

func NewStatsHandler(statsService StatsService, csvStatsRenderer StatsRenderer, live *LiveDashboard) *StatsHandler {
	return &StatsHandler{statsService, csvStatsRenderer, live}
}

// GetDashboard godoc
// @Summary Fiscal-year totals and the periods around today
// @Tags Stats
// @Produce json
// @Success 200 {object} DashboardDTO
// @Router /api/stats/dashboard [get]
func (handler *StatsHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := handler.statsService.Dashboard(r.Context())
	if err != nil {
		log.Errorf("could not compute dashboard: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	rest.WriteJSON(w, http.StatusOK, DashboardToDTO(dashboard))
}

// GetLiveDashboard godoc
// @Summary Dashboard kept up to date by change notifications
// @Tags Stats
// @Produce json
// @Success 200 {object} LiveDashboardDTO
// @Router /api/stats/live [get]
func (handler *StatsHandler) GetLiveDashboard(w http.ResponseWriter, r *http.Request) {
	snapshot, err := handler.live.Current(r.Context())
	if err != nil {
		log.Errorf("could not compute live dashboard: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	rest.WriteJSON(w, http.StatusOK, LiveDashboardDTO{
		DashboardDTO: DashboardToDTO(snapshot.Dashboard),
		Revision:     snapshot.Revision,
		ComputedAt:   snapshot.ComputedAt.Format(time.RFC3339),
	})
}

// GetBreakdown godoc
// @Summary Per-period breakdown of hours, allowances and pay
// @Description Answers with CSV when the client accepts text/csv
// @Tags Stats
// @Produce json,text/csv
// @Success 200 {array} PeriodBreakdownDTO
// @Router /api/stats/breakdown [get]
func (handler *StatsHandler) GetBreakdown(w http.ResponseWriter, r *http.Request) {
	breakdown, err := handler.statsService.Breakdown(r.Context())
	if err != nil {
		log.Errorf("could not compute breakdown: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if strings.Contains(r.Header.Get("Accept"), "text/csv") {
		csv, err := handler.csvStatsRenderer.RenderBreakdown(breakdown)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="overtime-breakdown.csv"`)
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte(csv)); err != nil {
			log.Errorf("could not write csv: %v", err)
		}
		return
	}

	dtos := make([]PeriodBreakdownDTO, 0, len(breakdown))
	for _, b := range breakdown {
		dtos = append(dtos, BreakdownToDTO(b))
	}
	rest.WriteJSON(w, http.StatusOK, dtos)
}

// GetGraph godoc
// @Summary Overtime pay per period, allowances excluded
// @Tags Stats
// @Produce json
// @Success 200 {object} GraphDTO
// @Router /api/stats/graph [get]
func (handler *StatsHandler) GetGraph(w http.ResponseWriter, r *http.Request) {
	graph, err := handler.statsService.Graph(r.Context())
	if err != nil {
		log.Errorf("could not compute graph: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	dto := GraphDTO{Points: make([]GraphPointDTO, 0, len(graph.Points)), Max: graph.Max}
	for _, p := range graph.Points {
		dto.Points = append(dto.Points, GraphPointDTO{
			Period:        PeriodToDTO(p.Period),
			GrossOvertime: p.GrossOvertime,
			NetOvertime:   p.NetOvertime,
		})
	}
	rest.WriteJSON(w, http.StatusOK, dto)
}

func PeriodToDTO(p calendar.Period) PeriodDTO {
	return calendar.ToDTO(p)
}

func DashboardToDTO(d Dashboard) DashboardDTO {
	return DashboardDTO{
		Date:    calendar.FormatDate(d.Date),
		TaxRate: d.TaxRate,
		Totals: YearTotalsDTO{
			GrossOvertime:  d.Totals.GrossOvertime,
			GrossAllowance: d.Totals.GrossAllowance,
			TotalGross:     d.Totals.TotalGross,
			TotalNet:       d.Totals.TotalNet,
			TotalHours:     d.Totals.TotalHours,
		},
		Previous: periodStatsToDTO(d.Window.Previous),
		Current:  periodStatsToDTO(d.Window.Current),
		Next:     periodStatsToDTO(d.Window.Next),
	}
}

func BreakdownToDTO(b PeriodBreakdown) PeriodBreakdownDTO {
	counts := make(map[string]int, len(b.AllowanceCounts))
	for code, count := range b.AllowanceCounts {
		counts[string(code)] = count
	}
	entries := make([]entry.EntryDTO, 0, len(b.Entries))
	for _, e := range b.Entries {
		entries = append(entries, entry.ToDTO(e))
	}
	return PeriodBreakdownDTO{
		Period: PeriodToDTO(b.Period),
		Hours: HoursDTO{
			Tier133: b.Hours.Tier133,
			Tier150: b.Hours.Tier150,
			Tier200: b.Hours.Tier200,
		},
		AllowanceCounts: counts,
		OvertimeGross:   b.OvertimeGross,
		OvertimeNet:     b.OvertimeNet,
		AllowanceGross:  b.AllowanceGross,
		AllowanceNet:    b.AllowanceNet,
		TotalGross:      b.TotalGross,
		TotalNet:        b.TotalNet,
		Entries:         entries,
	}
}

func periodStatsToDTO(p *PeriodStats) *PeriodStatsDTO {
	if p == nil {
		return nil
	}
	return &PeriodStatsDTO{Period: PeriodToDTO(p.Period), Gross: p.Gross, Net: p.Net}
}
