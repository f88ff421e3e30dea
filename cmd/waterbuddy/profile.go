package waterbuddy

import (
	"database/sql"
	"fmt"

	"github.com/jashithrathod04-star/waterbuddy/internal/service"
	"github.com/spf13/cobra"
)

var (
	profileName     string
	profileAge      int
	profileWeight   float64
	profileActivity string
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage your hydration profile",
}

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Create a new profile (the latest profile is authoritative)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			id, err := service.SetProfile(sqldb, service.SetProfileInput{
				Name:     profileName,
				Age:      profileAge,
				WeightKg: profileWeight,
				Activity: profileActivity,
			})
			if err != nil {
				return err
			}
			goal, err := service.GoalForCurrentProfile(sqldb, nil)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved profile #%d. Daily goal: %d ml\n", id, goal)
			return nil
		})
	},
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			profile, err := service.CurrentProfile(sqldb)
			if err != nil {
				return err
			}
			if profile == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "No profile set. Run: waterbuddy profile set --weight <kg>")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Name: %s\n", profile.Name)
			fmt.Fprintf(cmd.OutOrStdout(), "Age: %d\n", profile.Age)
			fmt.Fprintf(cmd.OutOrStdout(), "Weight: %.1f kg\n", profile.WeightKg)
			fmt.Fprintf(cmd.OutOrStdout(), "Activity: %s\n", profile.Activity)
			return nil
		})
	},
}

var profileHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "List all profiles, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			profiles, err := service.ProfileHistory(sqldb)
			if err != nil {
				return err
			}
			if len(profiles) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No profiles yet.")
				return nil
			}
			for _, p := range profiles {
				fmt.Fprintf(cmd.OutOrStdout(), "#%d %s | age %d | %.1f kg | %s | created %s\n",
					p.ID, p.Name, p.Age, p.WeightKg, p.Activity, p.CreatedAt.Format("2006-01-02"))
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileSetCmd)
	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileHistoryCmd)

	profileSetCmd.Flags().StringVar(&profileName, "name", "", "Display name")
	profileSetCmd.Flags().IntVar(&profileAge, "age", 0, "Age in years")
	profileSetCmd.Flags().Float64Var(&profileWeight, "weight", 0, "Weight in kg")
	profileSetCmd.Flags().StringVar(&profileActivity, "activity", "normal", "Activity level (low, normal, high)")
	_ = profileSetCmd.MarkFlagRequired("weight")
}
