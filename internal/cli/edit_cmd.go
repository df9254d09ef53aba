package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/pmorten/timetrail/internal/cli/formatter"
	"github.com/pmorten/timetrail/internal/service"
	"github.com/spf13/cobra"
)

// editTimeLayouts are the accepted formats for --start and --end values.
// Times without an offset are read in the owner's configured timezone.
var editTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

func newEditCmd(app *App) *cobra.Command {
	var title, startStr, endStr string

	cmd := &cobra.Command{
		Use:   "edit ENTRY_ID",
		Short: "Edit an entry's title, start, or end",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			var patch service.EntryPatch
			if cmd.Flags().Changed("title") {
				patch.Title = &title
			}
			if startStr != "" || endStr != "" {
				prefs, err := app.Preferences.Get(ctx, app.OwnerID)
				if err != nil {
					return err
				}
				loc := prefs.Location()
				if startStr != "" {
					t, err := parseUserTime(startStr, loc)
					if err != nil {
						return fmt.Errorf("--start: %w", err)
					}
					patch.StartTime = &t
				}
				if endStr != "" {
					t, err := parseUserTime(endStr, loc)
					if err != nil {
						return fmt.Errorf("--end: %w", err)
					}
					patch.EndTime = &t
				}
			}

			entry, err := app.Timeline.Edit(ctx, app.OwnerID, args[0], patch)
			if err != nil {
				return err
			}
			fmt.Printf("Updated %s (%s)\n", formatter.Bold(entry.Title), formatter.TruncID(entry.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().StringVar(&startStr, "start", "", "New start time, e.g. \"2026-02-09 09:00\"")
	cmd.Flags().StringVar(&endStr, "end", "", "New end time")

	return cmd
}

func parseUserTime(value string, loc *time.Location) (time.Time, error) {
	for _, layout := range editTimeLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time %q", value)
}
