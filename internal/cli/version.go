package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Ramsha-Haris/table/internal/branding"
)

var (
	versionShort bool
	versionJSON  bool
)

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Print version number only")
	versionCmd.Flags().BoolVar(&versionJSON, "json", false, "Print version info as JSON")
	rootCmd.AddCommand(versionCmd)
}

type versionInfo struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		switch {
		case versionShort:
			fmt.Fprintln(cmd.OutOrStdout(), buildVersion)
			return nil
		case versionJSON:
			return printJSON(cmd, versionInfo{Version: buildVersion, Commit: buildCommit, Date: buildDate})
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s version %s (commit: %s, built: %s)\n",
			branding.CLIName(), buildVersion, buildCommit, buildDate)
		return nil
	},
}
