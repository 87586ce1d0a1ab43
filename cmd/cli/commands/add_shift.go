package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mworkman/precinct-roster/pkg/core/services"
)

// AddShiftCmd creates the addShift command
func AddShiftCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "addShift <roster_id> <name> <start_time> <end_time>",
		Short: "Add a shift definition to a roster",
		Long:  "Add a named time-of-day work window to a roster. Times are 24h HH:MM; the window may wrap past midnight (e.g. 16:00 03:15).",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			rosterID, name, startTime, endTime := args[0], args[1], args[2], args[3]

			shift, err := services.AddShift(app.Ctx, app.Store, app.Logger, rosterID, name, startTime, endTime)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Shift added: %s (%s–%s), id %s\n", shift.Name, shift.StartTime, shift.EndTime, shift.ID)
			return nil
		},
	}
}
