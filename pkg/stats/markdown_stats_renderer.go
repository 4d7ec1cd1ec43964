package stats

import (
	"fmt"
	"strings"

	"github.com/ajshieldpay/otpay/pkg/rates"
)

// MarkdownStatsRendererImpl renders the breakdown as a Markdown table for terminals and notes.
type MarkdownStatsRendererImpl struct {
}

func NewMarkdownStatsRenderer() *MarkdownStatsRendererImpl {
	return &MarkdownStatsRendererImpl{}
}

func (m *MarkdownStatsRendererImpl) RenderBreakdown(breakdown []PeriodBreakdown) (string, error) {
	var sb strings.Builder
	sb.WriteString("| Period | Hours |")
	for _, code := range rates.AllowanceCodes() {
		fmt.Fprintf(&sb, " %s |", code)
	}
	sb.WriteString(" Overtime net | Allowance net | Total gross | Total net |\n")
	sb.WriteString("|---|---:|")
	for range rates.AllowanceCodes() {
		sb.WriteString("---:|")
	}
	sb.WriteString("---:|---:|---:|---:|\n")

	for _, b := range breakdown {
		markdownRow(&sb, b.Period.Label, b)
	}
	markdownRow(&sb, "**Total**", sumBreakdown(breakdown))
	return sb.String(), nil
}

func markdownRow(sb *strings.Builder, label string, b PeriodBreakdown) {
	fmt.Fprintf(sb, "| %s | %s |", label, b.Hours.Total().String())
	for _, code := range rates.AllowanceCodes() {
		fmt.Fprintf(sb, " %d |", b.AllowanceCounts[code])
	}
	fmt.Fprintf(sb, " %s | %s | %s | %s |\n", money(b.OvertimeNet), money(b.AllowanceNet), money(b.TotalGross), money(b.TotalNet))
}
