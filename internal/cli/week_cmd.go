package cli

import (
	"context"
	"fmt"

	"github.com/pmorten/timetrail/internal/cli/formatter"
	"github.com/pmorten/timetrail/internal/domain"
	"github.com/spf13/cobra"
)

func newWeekCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:       "week [current|previous|next]",
		Short:     "Show the weekly timeline",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"current", "previous", "next"},
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := domain.WeekCurrent
			if len(args) == 1 {
				if !domain.ValidWeekDirections[args[0]] {
					return fmt.Errorf("unknown week direction %q", args[0])
				}
				dir = domain.WeekDirection(args[0])
			}

			view, err := app.Timeline.ListWeek(context.Background(), app.OwnerID, app.Clock.Now(), dir)
			if err != nil {
				return err
			}
			fmt.Print(formatter.RenderWeek(view))
			return nil
		},
	}
}
