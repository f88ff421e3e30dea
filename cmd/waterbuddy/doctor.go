package waterbuddy

import (
	"database/sql"
	"fmt"

	"github.com/jashithrathod04-star/waterbuddy/internal/service"
	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the database for integrity problems",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			report, err := service.RunDoctor(sqldb)
			if err != nil {
				return err
			}
			if report.Clean() {
				fmt.Fprintln(cmd.OutOrStdout(), "Database looks healthy.")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Malformed timestamps:  %d\n", report.MalformedTimestamps)
			fmt.Fprintf(cmd.OutOrStdout(), "Non-positive amounts:  %d\n", report.NonPositiveAmounts)
			fmt.Fprintf(cmd.OutOrStdout(), "Duplicate badge names: %d\n", report.DuplicateBadgeNames)
			return fmt.Errorf("found integrity problems")
		})
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
