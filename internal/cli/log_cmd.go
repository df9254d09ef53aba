package cli

import (
	"context"
	"fmt"

	"github.com/pmorten/timetrail/internal/cli/formatter"
	"github.com/pmorten/timetrail/internal/format"
	"github.com/spf13/cobra"
)

func newLogCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "log",
		Short: "List recent entries, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			entries, err := app.Timeline.ListRecent(ctx, app.OwnerID, limit)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Println("No entries yet.")
				return nil
			}

			prefs, err := app.Preferences.Get(ctx, app.OwnerID)
			if err != nil {
				return err
			}
			loc := prefs.Location()
			now := app.Clock.Now()

			rows := make([][]string, 0, len(entries))
			for _, e := range entries {
				status := formatter.HumanTimestamp(e.StartTime.In(loc), now.In(loc))
				if e.IsRunning() {
					status = formatter.ActivePill()
				}
				rows = append(rows, []string{
					formatter.TruncID(e.ID),
					format.Instant(e.StartTime, loc, prefs.Locale),
					status,
					format.Duration(e.DurationAt(now)),
					e.Title,
					formatter.TagsBadge(e.Tags),
				})
			}

			fmt.Print(formatter.RenderTable(
				[]string{"ID", "STARTED", "", "DURATION", "TITLE", "TAGS"},
				rows,
			))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of entries to show")

	return cmd
}
