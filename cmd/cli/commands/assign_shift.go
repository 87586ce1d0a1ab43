package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mworkman/precinct-roster/pkg/core/services"
)

// AssignShiftCmd creates the assignShift command
func AssignShiftCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assignShift <roster_id> <officer_id> <shift_id> <date>",
		Short: "Assign an officer to a shift on a date",
		Long:  "Validate and commit an assignment. The assignment is saved only when every check passes: no double-booking, at most 7 consecutive work days, minimum 8 hours rest between adjacent-day shifts, and a date inside the roster window.",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			rosterID, officerID, shiftID, date := args[0], args[1], args[2], args[3]
			position, _ := cmd.Flags().GetString("position")
			if position == "" {
				position = app.Cfg.DefaultPosition
			}

			app.Logger.Debug("assignShift command",
				zap.String("roster_id", rosterID),
				zap.String("officer_id", officerID),
				zap.String("shift_id", shiftID),
				zap.String("date", date),
				zap.String("position", position))

			result, err := services.AssignShift(app.Ctx, app.Store, app.Logger, rosterID, officerID, shiftID, date, position)
			if err != nil {
				return fmt.Errorf("assignment failed: %w", err)
			}

			if !result.Committed {
				fmt.Printf("\n❌ Assignment rejected (%d findings):\n", len(result.ValidationErrors))
				for _, finding := range result.ValidationErrors {
					fmt.Printf("  • %s: %s\n", finding.Field, finding.Message)
				}
				fmt.Println()
				return nil
			}

			fmt.Printf("\n✓ Assignment committed!\n\n")
			fmt.Printf("Assignment ID: %s\n", result.Assignment.ID)
			fmt.Printf("Date:          %s\n", result.Assignment.Date)
			fmt.Printf("Position:      %s\n\n", result.Assignment.Position)

			return nil
		},
	}

	cmd.Flags().String("position", "", "Position label (e.g. Patrol, Supervisor); defaults to the configured defaultPosition")

	return cmd
}

// RemoveAssignmentCmd creates the removeAssignment command
func RemoveAssignmentCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "removeAssignment <roster_id> <officer_id> <date>",
		Short: "Remove an officer's assignment on a date",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			rosterID, officerID, date := args[0], args[1], args[2]

			if err := services.RemoveAssignment(app.Ctx, app.Store, app.Logger, rosterID, officerID, date); err != nil {
				return err
			}

			fmt.Printf("\n✓ Assignment removed for officer %s on %s.\n", officerID, date)
			return nil
		},
	}
}
