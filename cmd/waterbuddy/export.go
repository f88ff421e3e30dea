package waterbuddy

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/jashithrathod04-star/waterbuddy/internal/service"
	"github.com/spf13/cobra"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all intake events as CSV",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			if exportOut == "" {
				return service.ExportIntakeCSV(sqldb, cmd.OutOrStdout())
			}
			f, err := os.Create(exportOut)
			if err != nil {
				return fmt.Errorf("create export file: %w", err)
			}
			defer f.Close()
			if err := service.ExportIntakeCSV(sqldb, f); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported intake events to %s\n", exportOut)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVar(&exportOut, "out", "", "Output file (default stdout)")
}
