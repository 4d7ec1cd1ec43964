package stats

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/ajshieldpay/otpay/pkg/calendar"
	"github.com/ajshieldpay/otpay/pkg/rates"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

type StatsRenderer interface {
	RenderBreakdown(breakdown []PeriodBreakdown) (string, error)
}

type CsvStatsRendererImpl struct {
}

func NewCsvStatsRenderer() *CsvStatsRendererImpl {
	return &CsvStatsRendererImpl{}
}

// RenderBreakdown writes one row per period followed by a row with the yearly sums.
// Money is rounded to pence for display only.
func (t *CsvStatsRendererImpl) RenderBreakdown(breakdown []PeriodBreakdown) (string, error) {
	header := []string{"Period", "Start", "End", "Hours 1.33", "Hours 1.50", "Hours 2.00"}
	for _, code := range rates.AllowanceCodes() {
		header = append(header, string(code))
	}
	header = append(header, "Overtime gross", "Overtime net", "Allowance gross", "Allowance net", "Total gross", "Total net")

	data := make([][]string, 0, len(breakdown)+2)
	data = append(data, header)

	for _, b := range breakdown {
		data = append(data, breakdownRow(b.Period.Label, calendar.FormatDate(b.Period.Start), calendar.FormatDate(b.Period.End), b))
	}
	sum := sumBreakdown(breakdown)
	data = append(data, breakdownRow("Total", "", "", sum))

	var b bytes.Buffer
	writer := csv.NewWriter(&b)
	for _, row := range data {
		if err := writer.Write(row); err != nil {
			log.Errorf("Error writing to csv: %v", err)
			return "", err
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		log.Errorf("Error flushing csv: %v", err)
		return "", err
	}
	return b.String(), nil
}

func breakdownRow(label, start, end string, b PeriodBreakdown) []string {
	row := []string{label, start, end, b.Hours.Tier133.String(), b.Hours.Tier150.String(), b.Hours.Tier200.String()}
	for _, code := range rates.AllowanceCodes() {
		row = append(row, strconv.Itoa(b.AllowanceCounts[code]))
	}
	return append(row,
		money(b.OvertimeGross),
		money(b.OvertimeNet),
		money(b.AllowanceGross),
		money(b.AllowanceNet),
		money(b.TotalGross),
		money(b.TotalNet),
	)
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// sumBreakdown adds up all periods. The Period and Entries of the result are left empty.
func sumBreakdown(breakdown []PeriodBreakdown) PeriodBreakdown {
	sum := PeriodBreakdown{AllowanceCounts: make(map[rates.AllowanceCode]int)}
	for _, b := range breakdown {
		sum.Hours.Tier133 = sum.Hours.Tier133.Add(b.Hours.Tier133)
		sum.Hours.Tier150 = sum.Hours.Tier150.Add(b.Hours.Tier150)
		sum.Hours.Tier200 = sum.Hours.Tier200.Add(b.Hours.Tier200)
		for code, count := range b.AllowanceCounts {
			sum.AllowanceCounts[code] += count
		}
		sum.OvertimeGross = sum.OvertimeGross.Add(b.OvertimeGross)
		sum.OvertimeNet = sum.OvertimeNet.Add(b.OvertimeNet)
		sum.AllowanceGross = sum.AllowanceGross.Add(b.AllowanceGross)
		sum.AllowanceNet = sum.AllowanceNet.Add(b.AllowanceNet)
		sum.TotalGross = sum.TotalGross.Add(b.TotalGross)
		sum.TotalNet = sum.TotalNet.Add(b.TotalNet)
	}
	return sum
}
