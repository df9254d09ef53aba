package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/pmorten/timetrail/internal/cli/formatter"
	"github.com/pmorten/timetrail/internal/domain"
	"github.com/spf13/cobra"
)

func newPrefsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Show or change display preferences",
	}

	cmd.AddCommand(
		newPrefsShowCmd(app),
		newPrefsSetCmd(app),
	)

	return cmd
}

func newPrefsShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current preferences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Preferences.Get(context.Background(), app.OwnerID)
			if err != nil {
				return err
			}
			fmt.Println(formatter.Header("Preferences"))
			fmt.Printf("%s  %s\n", formatter.Dim("timezone  "), p.Timezone)
			fmt.Printf("%s  %s\n", formatter.Dim("week start"), p.StartOfWeek)
			fmt.Printf("%s  %s\n", formatter.Dim("locale    "), p.Locale)
			return nil
		},
	}
}

func newPrefsSetCmd(app *App) *cobra.Command {
	var timezone, weekStart, locale string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change one or more preferences",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := app.Preferences.Get(ctx, app.OwnerID)
			if err != nil {
				return err
			}

			changed := false
			if timezone != "" {
				p.Timezone = timezone
				changed = true
			}
			if weekStart != "" {
				day, err := domain.ParseWeekday(weekStart)
				if err != nil {
					return err
				}
				p.StartOfWeek = day
				changed = true
			}
			if locale != "" {
				p.Locale = locale
				changed = true
			}
			if !changed {
				return fmt.Errorf("nothing to change, pass --timezone, --week-start, or --locale")
			}

			if err := app.Preferences.Update(ctx, p); err != nil {
				return err
			}
			fmt.Printf("Preferences updated: %s, week starts %s, locale %s\n",
				p.Timezone, strings.ToLower(p.StartOfWeek.String()), p.Locale)
			return nil
		},
	}

	cmd.Flags().StringVar(&timezone, "timezone", "", "IANA timezone name, e.g. Europe/Berlin")
	cmd.Flags().StringVar(&weekStart, "week-start", "", "First day of the week, e.g. monday")
	cmd.Flags().StringVar(&locale, "locale", "", "BCP 47 locale tag, e.g. de-DE")

	return cmd
}
