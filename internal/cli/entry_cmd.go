package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/pmorten/timetrail/internal/cli/formatter"
	"github.com/pmorten/timetrail/internal/format"
	"github.com/spf13/cobra"
)

func newStartCmd(app *App) *cobra.Command {
	var tags []string

	cmd := &cobra.Command{
		Use:   "start TITLE",
		Short: "Start tracking a new entry",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			title := strings.Join(args, " ")
			entry, err := app.Timeline.Start(context.Background(), app.OwnerID, title, tags)
			if err != nil {
				return err
			}
			fmt.Printf("%s %s (%s)\n", formatter.ActivePill(), entry.Title, formatter.TruncID(entry.ID))
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&tags, "tags", nil, "Comma-separated tags for the entry")

	return cmd
}

func newStopCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stop",
		Short: "Stop the running entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entry, err := app.Timeline.Stop(context.Background(), app.OwnerID)
			if err != nil {
				return err
			}
			fmt.Printf("Stopped %s after %s\n",
				formatter.Bold(entry.Title), format.Duration(entry.DurationAt(app.Clock.Now())))
			return nil
		},
	}
}

func newContinueCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "continue ENTRY_ID",
		Short: "Start a new entry copying an earlier one's title and tags",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entry, err := app.Timeline.ContinueFrom(context.Background(), app.OwnerID, args[0])
			if err != nil {
				return err
			}
			fmt.Printf("%s %s (%s)\n", formatter.ActivePill(), entry.Title, formatter.TruncID(entry.ID))
			return nil
		},
	}
}

func newRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "rm ENTRY_ID",
		Aliases: []string{"remove"},
		Short:   "Delete an entry",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Timeline.Delete(context.Background(), app.OwnerID, args[0]); err != nil {
				return err
			}
			fmt.Printf("Removed entry %s\n", args[0])
			return nil
		},
	}
}
