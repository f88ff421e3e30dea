package waterbuddy

import (
	"database/sql"
	"fmt"

	"github.com/jashithrathod04-star/waterbuddy/internal/service"
	"github.com/spf13/cobra"
)

var badgesCmd = &cobra.Command{
	Use:   "badges",
	Short: "List earned badges",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			badges, err := service.ListBadges(sqldb)
			if err != nil {
				return err
			}
			if len(badges) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No badges yet. Keep logging!")
				return nil
			}
			for _, b := range badges {
				fmt.Fprintf(cmd.OutOrStdout(), "%s (earned %s)\n", b.Name, b.EarnedAt.Format("2006-01-02"))
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(badgesCmd)
}
