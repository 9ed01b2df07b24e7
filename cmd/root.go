package cmd

import (
	"github.com/spf13/cobra"

	"github.com/vololibero/quizvl/internal/app"
	"github.com/vololibero/quizvl/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "quizvl",
	Short: "Quiz for the Italian free-flight license exam",
	Long: "quizvl: terminal quiz for the VDS/VL paragliding and hang-gliding license exam.\n" +
		"Questions you miss come back more often until you get them right.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, app.StartHome)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides QUIZVL_DB env var)")
	rootCmd.PersistentFlags().String("bank", "", "Path to an alternative question bank JSON file (overrides QUIZVL_BANK env var)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(examCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(questionsCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then QUIZVL_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command, fromEnv string) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if fromEnv != "" {
		return fromEnv, store.EnsureDir(fromEnv)
	}
	return store.DefaultDBPath()
}

// resolveBankPath returns the --bank flag, then QUIZVL_BANK. Empty means the
// embedded bank.
func resolveBankPath(cmd *cobra.Command, fromEnv string) string {
	if p, _ := cmd.Flags().GetString("bank"); p != "" {
		return p
	}
	return fromEnv
}
