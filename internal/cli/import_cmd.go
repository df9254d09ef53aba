package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/pmorten/timetrail/internal/importer"
	"github.com/spf13/cobra"
)

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Import entries from a Toggl detailed CSV export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening %s: %w", args[0], err)
			}
			defer f.Close()

			rows, err := importer.Parse(f)
			if err != nil {
				return err
			}

			result, err := app.Import.ImportEntries(context.Background(), app.OwnerID, rows)
			if err != nil {
				return err
			}
			fmt.Printf("Imported %d entries, skipped %d duplicates\n", result.Imported, result.Skipped)
			return nil
		},
	}
}
