package waterbuddy

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/jashithrathod04-star/waterbuddy/internal/service"
	"github.com/spf13/cobra"
)

var statsDays int

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show average intake over recent days",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			report, err := service.Stats(sqldb, statsDays, time.Now())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Average over %d days: %.0f ml/day\n", report.Days, report.AverageML)
			if report.HasProfile {
				fmt.Fprintf(cmd.OutOrStdout(), "Daily goal: %d ml\n", report.GoalML)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Daily goal: %d ml (default, no profile set)\n", report.GoalML)
			}
			pct := report.AverageML / float64(report.GoalML) * 100
			fmt.Fprintf(cmd.OutOrStdout(), "That's %.0f%% of goal on an average day.\n", pct)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.Flags().IntVar(&statsDays, "days", 14, "Window size in days")
}
