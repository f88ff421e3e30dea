package waterbuddy

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var dbPath string

var rootCmd = &cobra.Command{
	Use:   "waterbuddy",
	Short: "waterbuddy tracks your daily water intake from the terminal",
	Long:  "waterbuddy is a local-first hydration tracker with a weight-based daily goal, adaptive reminders, streak badges, and CSV export.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to SQLite database")
}
