package waterbuddy

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/jashithrathod04-star/waterbuddy/internal/service"
	"github.com/spf13/cobra"
)

var ecoCmd = &cobra.Command{
	Use:   "eco",
	Short: "Show single-use bottles saved this week",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			bottleSize := configIntOrDefault(sqldb, service.ConfigBottleSizeML, service.DefaultBottleSizeML)
			report, err := service.WeeklyEco(sqldb, bottleSize, time.Now())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Last 7 days: %d ml\n", report.WeekTotalML)
			fmt.Fprintf(cmd.OutOrStdout(), "That's about %.1f bottles (%d ml each) you didn't buy.\n",
				report.BottlesSaved, report.BottleSizeML)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(ecoCmd)
}
