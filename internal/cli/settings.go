package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/ajshieldpay/otpay/pkg/rates"
	"github.com/ajshieldpay/otpay/pkg/settings"
	"github.com/spf13/cobra"
)

func newSettingsCommand(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change rank, service band and tax rate",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			current, err := s.deps.SettingsService.Get(cmd.Context())
			if err != nil {
				return err
			}
			printSettings(cmd.OutOrStdout(), current)
			return nil
		},
	}

	var service string
	rank := &cobra.Command{
		Use:   "rank NAME",
		Short: "Select a rank",
		Long:  `Select a rank. Pass an empty NAME ("") to clear rank, band and rates.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			updated, err := s.deps.SettingsService.SetRank(cmd.Context(), rates.Rank(args[0]), rates.ServiceBand(service))
			if err != nil {
				return err
			}
			printSettings(cmd.OutOrStdout(), updated)
			return nil
		},
	}
	rank.Flags().StringVar(&service, "service", "", "Preferred service band under the rank")

	band := &cobra.Command{
		Use:   "service BAND",
		Short: "Select a service band under the current rank",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			updated, err := s.deps.SettingsService.SetServiceBand(cmd.Context(), rates.ServiceBand(args[0]))
			if err != nil {
				return err
			}
			printSettings(cmd.OutOrStdout(), updated)
			return nil
		},
	}

	tax := &cobra.Command{
		Use:   "tax PCT",
		Short: "Select the flat tax rate (20, 40 or 45)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pct, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("%w: %q", settings.ErrInvalidTaxRate, args[0])
			}
			updated, err := s.deps.SettingsService.SetTaxRate(cmd.Context(), pct)
			if err != nil {
				return err
			}
			printSettings(cmd.OutOrStdout(), updated)
			return nil
		},
	}

	cmd.AddCommand(rank, band, tax)
	return cmd
}

func printSettings(out io.Writer, s settings.Settings) {
	if !s.HasRank() {
		fmt.Fprintln(out, "Rank:    (none)")
	} else {
		fmt.Fprintf(out, "Rank:    %s\n", s.Rank)
		fmt.Fprintf(out, "Service: %s\n", s.ServiceBand)
		fmt.Fprintf(out, "Rates:   %s / %s / %s\n", s.Rates.R133.String(), s.Rates.R150.String(), s.Rates.R200.String())
	}
	fmt.Fprintf(out, "Tax:     %d%%\n", s.EffectiveTaxRate())
}
