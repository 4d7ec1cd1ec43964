package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/ajshieldpay/otpay/internal/app"
	"github.com/ajshieldpay/otpay/internal/config"
	"github.com/ajshieldpay/otpay/internal/database"
	"github.com/spf13/cobra"
)

const defaultConfigPath = "./config/application.yaml"

// session holds the local store opened for a single command invocation.
type session struct {
	configPath string
	dbPath     string
	stores     *app.Stores
	deps       *app.Dependencies
}

func (s *session) open(_ *cobra.Command, _ []string) error {
	path := s.dbPath
	if path == "" {
		cfg, err := config.Load(s.configPath)
		if err != nil {
			return err
		}
		path = cfg.Storage.SQLite.Path
	}
	db, err := database.OpenSQLite(path)
	if err != nil {
		return err
	}
	s.stores = app.SQLiteStores(db)
	s.deps = app.BuildDependencies(s.stores)
	return nil
}

func (s *session) close() {
	if s.deps != nil {
		s.deps.LiveDashboard.Close()
	}
	if s.stores != nil {
		s.stores.Close()
	}
}

func newRootCommand(s *session) *cobra.Command {
	root := &cobra.Command{
		Use:   "otpay",
		Short: "Overtime pay tracker",
		Long: `otpay records overtime entries and allowances and reports what they pay
across the fiscal year. Commands work on the local SQLite store.`,
		SilenceUsage:      true,
		PersistentPreRunE: s.open,
	}
	root.PersistentFlags().StringVar(&s.configPath, "config", defaultConfigPath, "Configuration file")
	root.PersistentFlags().StringVar(&s.dbPath, "db", "", "SQLite store to use instead of the configured one")

	root.AddCommand(newEntryCommand(s))
	root.AddCommand(newSettingsCommand(s))
	root.AddCommand(newReportCommand(s))
	return root
}

func execute(args []string, out io.Writer) error {
	s := &session{}
	defer s.close()
	root := newRootCommand(s)
	root.SetArgs(args)
	root.SetOut(out)
	root.SetErr(out)
	return root.Execute()
}

// Execute is the entry point called from main.
func Execute() {
	if err := execute(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
