package cli

import (
	"encoding/json"
	"fmt"

	"github.com/ajshieldpay/otpay/pkg/stats"
	"github.com/spf13/cobra"
)

type reportDTO struct {
	Dashboard stats.DashboardDTO         `json:"dashboard"`
	Breakdown []stats.PeriodBreakdownDTO `json:"breakdown"`
}

func newReportCommand(s *session) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show the fiscal-year breakdown",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			breakdown, err := s.deps.StatsService.Breakdown(ctx)
			if err != nil {
				return err
			}

			var renderer stats.StatsRenderer
			switch format {
			case "md":
				renderer = stats.NewMarkdownStatsRenderer()
			case "csv":
				renderer = s.deps.CsvStatsRenderer
			case "json":
				dashboard, err := s.deps.StatsService.Dashboard(ctx)
				if err != nil {
					return err
				}
				report := reportDTO{Dashboard: stats.DashboardToDTO(dashboard)}
				for _, b := range breakdown {
					report.Breakdown = append(report.Breakdown, stats.BreakdownToDTO(b))
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			default:
				return fmt.Errorf("unknown format %q, expected md, csv or json", format)
			}

			out, err := renderer.RenderBreakdown(breakdown)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}
	cmd.Flags().StringVar(&format, "format", "md", "Output format: md, csv, json")
	return cmd
}
