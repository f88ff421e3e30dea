package waterbuddy

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/jashithrathod04-star/waterbuddy/internal/service"
	"github.com/spf13/cobra"
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's intake against your goal",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			now := time.Now()
			today, err := service.TodayTotal(sqldb, now)
			if err != nil {
				return err
			}
			goal, err := service.GoalForCurrentProfile(sqldb, nil)
			if err != nil {
				return err
			}
			pct := 0
			if goal > 0 {
				pct = today * 100 / goal
				if pct > 100 {
					pct = 100
				}
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Today: %d / %d ml (%d%%)\n", today, goal, pct)
			fmt.Fprintf(cmd.OutOrStdout(), "[%s]\n", progressBar(pct, 30))
			return nil
		})
	},
}

var weekCmd = &cobra.Command{
	Use:   "week",
	Short: "Show the last 7 days of intake",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			now := time.Now()
			totals, err := service.DailyTotals(sqldb, 7, now)
			if err != nil {
				return err
			}
			goal, err := service.GoalForCurrentProfile(sqldb, nil)
			if err != nil {
				return err
			}

			maxML := goal
			for _, t := range totals {
				if t.TotalML > maxML {
					maxML = t.TotalML
				}
			}
			for _, t := range totals {
				width := 0
				if maxML > 0 {
					width = t.TotalML * 30 / maxML
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %-30s %5d ml\n", t.Date, strings.Repeat("#", width), t.TotalML)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Goal: %d ml/day\n", goal)
			return nil
		})
	},
}

func progressBar(pct, width int) string {
	filled := pct * width / 100
	if filled > width {
		filled = width
	}
	return strings.Repeat("=", filled) + strings.Repeat(" ", width-filled)
}

func init() {
	rootCmd.AddCommand(todayCmd)
	rootCmd.AddCommand(weekCmd)
}
