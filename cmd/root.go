package cmd

import (
	"github.com/skillissue/engine/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "skillissue",
	Short: "Adaptive difficulty engine for push-based learning",
	Long: "Skillissue calibrates a starting difficulty per (user, skill) pair and then\n" +
		"designs quality-gated multiple-choice challenges at the user's current level.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides SKILLISSUE_DB env var)")

	rootCmd.AddCommand(skillCmd)
	rootCmd.AddCommand(calibrateCmd)
	rootCmd.AddCommand(challengeCmd)
	rootCmd.AddCommand(answerCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then SKILLISSUE_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
