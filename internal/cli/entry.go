package cli

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/ajshieldpay/otpay/pkg/calendar"
	"github.com/ajshieldpay/otpay/pkg/entry"
	"github.com/ajshieldpay/otpay/pkg/rates"
	"github.com/spf13/cobra"
)

type entryFlags struct {
	date      string
	reason    string
	comments  string
	h133      string
	h150      string
	h200      string
	allowance string
}

func newEntryCommand(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "entry",
		Short: "Add, list and delete overtime entries",
	}
	cmd.AddCommand(newEntryAddCommand(s), newEntryListCommand(s), newEntryDeleteCommand(s))
	return cmd
}

func newEntryAddCommand(s *session) *cobra.Command {
	var f entryFlags
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record an overtime entry",
		Long: `Record an overtime entry. The date defaults to today, or to the start of the
fiscal year when today lies outside it. An entry without hours, allowance or text is not stored.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e := s.deps.EntryService.NewDraft()
			if f.date != "" {
				date, err := calendar.ParseDate(f.date)
				if err != nil {
					return fmt.Errorf("invalid --date %q, expected YYYY-MM-DD", f.date)
				}
				e.Date = date
			}
			e.Reason = f.reason
			e.Comments = f.comments
			e.Hours133 = entry.ParseHours(f.h133)
			e.Hours150 = entry.ParseHours(f.h150)
			e.Hours200 = entry.ParseHours(f.h200)
			e.Allowance = rates.NormalizeAllowance(f.allowance)

			stored, err := s.deps.EntryService.Create(cmd.Context(), e)
			if errors.Is(err, entry.ErrEmptyEntry) {
				fmt.Fprintln(cmd.OutOrStdout(), "Nothing to store: the entry has no hours, allowance or text")
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Stored entry %s on %s\n", stored.Id, calendar.FormatDate(stored.Date))
			return nil
		},
	}
	cmd.Flags().StringVar(&f.date, "date", "", "Date worked (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.reason, "reason", "", "Reason for the overtime")
	cmd.Flags().StringVar(&f.comments, "comments", "", "Free-text comments")
	cmd.Flags().StringVar(&f.h133, "h133", "", "Hours paid at 1.33x")
	cmd.Flags().StringVar(&f.h150, "h150", "", "Hours paid at 1.50x")
	cmd.Flags().StringVar(&f.h200, "h200", "", "Hours paid at 2.00x")
	cmd.Flags().StringVar(&f.allowance, "pa", string(rates.AllowanceNone), "Allowance code: None, PA1, PA2, PA3")
	return cmd
}

func newEntryListCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all entries by date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			entries, err := s.deps.EntryService.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No entries yet")
				return nil
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tDATE\t1.33\t1.50\t2.00\tPA\tREASON")
			for _, e := range entries {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
					e.Id, calendar.FormatDate(e.Date),
					e.Hours133.String(), e.Hours150.String(), e.Hours200.String(),
					e.Allowance, e.Reason)
			}
			return w.Flush()
		},
	}
}

func newEntryDeleteCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete an entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := s.deps.EntryService.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted entry %s\n", args[0])
			return nil
		},
	}
}
