package waterbuddy

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/jashithrathod04-star/waterbuddy/internal/provider/openmeteo"
	"github.com/jashithrathod04-star/waterbuddy/internal/service"
	"github.com/spf13/cobra"
)

var (
	goalTempC     float64
	goalLatitude  float64
	goalLongitude float64
)

var goalCmd = &cobra.Command{
	Use:   "goal",
	Short: "Show your daily goal, optionally adjusted for ambient temperature",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			var tempC *float64

			switch {
			case cmd.Flags().Changed("temp"):
				v := goalTempC
				tempC = &v
			case cmd.Flags().Changed("lat") || cmd.Flags().Changed("lon"):
				if !cmd.Flags().Changed("lat") || !cmd.Flags().Changed("lon") {
					return fmt.Errorf("both --lat and --lon are required for a weather lookup")
				}
				client := &openmeteo.Client{}
				v, err := service.AmbientTemperature(cmd.Context(), sqldb, client, goalLatitude, goalLongitude, time.Now())
				if err != nil {
					return fmt.Errorf("fetch ambient temperature: %w", err)
				}
				tempC = &v
			}

			goal, err := service.GoalForCurrentProfile(sqldb, tempC)
			if err != nil {
				return err
			}
			profile, err := service.CurrentProfile(sqldb)
			if err != nil {
				return err
			}
			if profile == nil {
				fmt.Fprintf(cmd.OutOrStdout(), "Daily goal: %d ml (default, no profile set)\n", goal)
				return nil
			}
			if tempC != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "Daily goal: %d ml (at %.1f C)\n", goal, *tempC)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Daily goal: %d ml\n", goal)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(goalCmd)
	goalCmd.Flags().Float64Var(&goalTempC, "temp", 0, "Ambient temperature in Celsius")
	goalCmd.Flags().Float64Var(&goalLatitude, "lat", 0, "Latitude for a weather lookup")
	goalCmd.Flags().Float64Var(&goalLongitude, "lon", 0, "Longitude for a weather lookup")
}
