package cli

import (
	"github.com/spf13/cobra"

	"github.com/Ramsha-Haris/table/internal/branding"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string

	flagTab     string
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` books tables and manages reservations against the
restaurant booking backend. Hosts can also manage their table inventory.

Each --tab keeps its own login, so separate terminals can work as
different users at the same time.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if skipSetup(cmd) {
			return nil
		}
		return setup(cmd)
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if current == nil {
			return nil
		}
		current.persistCookies()
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagTab, "tab", "", "Session namespace (default from config or "+branding.EnvVar("TAB")+")")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log requests and failures to stderr")
}

// skipSetup reports commands that run without a backend session.
func skipSetup(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		switch c.Name() {
		case "version", "config", "slots", "help", "completion":
			return true
		}
	}
	return false
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}
