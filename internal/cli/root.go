package cli

import (
	"github.com/pmorten/timetrail/internal/clock"
	"github.com/pmorten/timetrail/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands, plus
// the owner identity the process acts as.
type App struct {
	Timeline    service.TimelineService
	Preferences service.PreferencesService
	Import      service.ImportService
	Clock       clock.Clock

	// OwnerID scopes every command. Resolved from the environment in main.
	OwnerID string
}

// NewRootCmd creates the top-level "timetrail" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	var owner string

	root := &cobra.Command{
		Use:   "timetrail",
		Short: "Personal time tracker with a weekly timeline",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if owner != "" {
				app.OwnerID = owner
			}
		},
	}

	root.PersistentFlags().StringVar(&owner, "owner", "", "Act as this owner instead of the configured one")

	root.AddCommand(
		newStartCmd(app),
		newStopCmd(app),
		newContinueCmd(app),
		newEditCmd(app),
		newRemoveCmd(app),
		newLogCmd(app),
		newWeekCmd(app),
		newImportCmd(app),
		newPrefsCmd(app),
	)

	return root
}
