package waterbuddy

import (
	"bufio"
	"database/sql"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/jashithrathod04-star/waterbuddy/internal/reminder"
	"github.com/jashithrathod04-star/waterbuddy/internal/service"
	"github.com/spf13/cobra"
)

var watchInterval int

// dbStatusSource feeds the scheduler live numbers from the store.
type dbStatusSource struct {
	db *sql.DB
}

func (s dbStatusSource) CadenceFactor() (float64, error) {
	return service.CadenceFactor(s.db, time.Now())
}

func (s dbStatusSource) TodayTotal() (int, error) {
	return service.TodayTotal(s.db, time.Now())
}

func (s dbStatusSource) GoalML() (int, error) {
	return service.GoalForCurrentProfile(s.db, nil)
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Run the reminder loop in the foreground",
	Long: `Runs an adaptive reminder loop. Each reminder shows today's progress and
waits for an action:

  l  log a quick 250 ml glass
  s  snooze
  q  quit

The gap between reminders shrinks when recent days fall short of the goal.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			interval := watchInterval
			if !cmd.Flags().Changed("interval") {
				interval = configIntOrDefault(sqldb, service.ConfigReminderIntervalMin, 60)
			}
			snoozeMin := configIntOrDefault(sqldb, service.ConfigSnoozeMin, 10)

			prompts := make(chan reminder.Prompt)
			sched := reminder.New(dbStatusSource{db: sqldb}, func(p reminder.Prompt) {
				prompts <- p
			})
			if err := sched.Start(interval); err != nil {
				return err
			}
			defer sched.Stop()

			fmt.Fprintf(cmd.OutOrStdout(), "Watching. First reminder in about %d minutes. Ctrl+C or q to quit.\n", interval)

			reader := bufio.NewReader(cmd.InOrStdin())
			for p := range prompts {
				fmt.Fprintf(cmd.OutOrStdout(), "\n%s (%d / %d ml)\n", p.Message, p.TodayML, p.GoalML)
				fmt.Fprintf(cmd.OutOrStdout(), "[l]og %d ml, [s]nooze %d min, [q]uit: ", service.QuickLogML, snoozeMin)

				line, err := reader.ReadString('\n')
				if err != nil {
					return nil
				}
				switch strings.ToLower(strings.TrimSpace(line)) {
				case "l", "log":
					if _, err := service.LogIntake(sqldb, service.QuickLogML, time.Now()); err != nil {
						log.Printf("log intake: %v", err)
						continue
					}
					total, err := service.TodayTotal(sqldb, time.Now())
					if err != nil {
						log.Printf("today total: %v", err)
						continue
					}
					fmt.Fprintf(cmd.OutOrStdout(), "Logged %d ml. Today: %d ml.\n", service.QuickLogML, total)
				case "s", "snooze":
					if err := sched.Snooze(snoozeMin); err != nil {
						log.Printf("snooze: %v", err)
						continue
					}
					fmt.Fprintf(cmd.OutOrStdout(), "Snoozed for %d minutes.\n", snoozeMin)
				case "q", "quit":
					return nil
				default:
					fmt.Fprintln(cmd.OutOrStdout(), "Unknown action, waiting for the next reminder.")
				}
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().IntVar(&watchInterval, "interval", 60, "Base minutes between reminders")
}
