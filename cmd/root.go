package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/Atchuta30/JEE-Prep-AI/internal/history"
)

var rootCmd = &cobra.Command{
	Use:   "jeeprep",
	Short: "AI-generated JEE practice papers in your terminal",
	Long: "JEE Prep AI generates multiple-choice question papers for JEE subjects,\n" +
		"lets you attempt them in the terminal, and keeps your scored papers for review.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	// A .env in the working directory can carry API keys. Missing is fine.
	_ = godotenv.Load()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides JEEPREP_DB env var)")
	rootCmd.PersistentFlags().String("user", "", "Profile name (overrides JEEPREP_USER env var)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then JEEPREP_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, history.EnsureDir(p)
	}
	return history.DefaultDBPath()
}
