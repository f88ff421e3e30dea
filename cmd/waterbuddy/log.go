package waterbuddy

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/jashithrathod04-star/waterbuddy/internal/service"
	"github.com/spf13/cobra"
)

var logCmd = &cobra.Command{
	Use:   "log <amount-ml>",
	Short: "Log a water intake event (try 50, 100, 250, or 500)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		amount, err := parsePositiveIntArg("amount", args[0])
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			before, err := service.ListBadges(sqldb)
			if err != nil {
				return err
			}
			if _, err := service.LogIntake(sqldb, amount, time.Now()); err != nil {
				return err
			}
			after, err := service.ListBadges(sqldb)
			if err != nil {
				return err
			}

			today, err := service.TodayTotal(sqldb, time.Now())
			if err != nil {
				return err
			}
			goal, err := service.GoalForCurrentProfile(sqldb, nil)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged %d ml. Today: %d / %d ml\n", amount, today, goal)

			if len(after) > len(before) {
				earned := map[string]bool{}
				for _, b := range before {
					earned[b.Name] = true
				}
				for _, b := range after {
					if !earned[b.Name] {
						fmt.Fprintf(cmd.OutOrStdout(), "Badge earned: %s\n", b.Name)
					}
				}
			}
			return nil
		})
	},
}

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent intake events, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			events, err := service.ListIntakeEvents(sqldb, historyLimit)
			if err != nil {
				return err
			}
			if len(events) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No intake events yet.")
				return nil
			}
			for _, e := range events {
				fmt.Fprintf(cmd.OutOrStdout(), "#%d %s %d ml\n", e.ID, e.LoggedAt.Format(time.RFC3339), e.AmountML)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximum events to list")
}
