package cmd

import (
	"github.com/liuyang/duwen/internal/requestlog"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "duwen",
	Short: "Chinese reading-comprehension practice",
	Long:  "Duwen (读文) — terminal app that generates Chinese reading passages with comprehension questions at your HSK level.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite request log file (overrides DUWEN_DB env var)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the request log path using --db flag (highest
// priority), then DUWEN_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, requestlog.EnsureDir(p)
	}
	return requestlog.DefaultDBPath()
}
