package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mworkman/precinct-roster/pkg/core/services"
)

// CreateRosterCmd creates the createRoster command
func CreateRosterCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "createRoster <name> <start_date> <end_date>",
		Short: "Create a new roster covering an inclusive date window",
		Long:  "Create a new scheduling period. Shift templates from the configuration are copied into the roster as its standing shifts.",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, startDate, endDate := args[0], args[1], args[2]

			app.Logger.Debug("createRoster command",
				zap.String("name", name),
				zap.String("start_date", startDate),
				zap.String("end_date", endDate))

			result, err := services.CreateRoster(app.Ctx, app.Store, app.Logger, app.Cfg, name, startDate, endDate)
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Roster created successfully!\n\n")
			fmt.Printf("Roster ID:  %s\n", result.Roster.ID)
			fmt.Printf("Name:       %s\n", result.Roster.Name)
			fmt.Printf("Window:     %s — %s\n\n", result.Roster.StartDate, result.Roster.EndDate)

			if len(result.Shifts) > 0 {
				fmt.Printf("Standing shifts:\n")
				for _, shift := range result.Shifts {
					fmt.Printf("  • %s (%s–%s)", shift.Name, shift.StartTime, shift.EndTime)
					if dates := result.PlannedDates[shift.ID]; len(dates) > 0 {
						fmt.Printf(" — %d planned dates", len(dates))
					}
					fmt.Println()
				}
				fmt.Println()
			}

			return nil
		},
	}
}

// DeleteRosterCmd creates the deleteRoster command
func DeleteRosterCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "deleteRoster <roster_id>",
		Short: "Delete a roster and everything it owns",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rosterID := args[0]

			if err := services.DeleteRoster(app.Ctx, app.Store, app.Logger, rosterID); err != nil {
				return err
			}

			fmt.Printf("\n✓ Roster %s deleted.\n", rosterID)
			return nil
		},
	}
}

// ListRostersCmd creates the listRosters command
func ListRostersCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "listRosters",
		Short: "List all rosters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rosters, err := services.ListRosters(app.Ctx, app.Store, app.Logger)
			if err != nil {
				return err
			}

			fmt.Printf("\nFound %d rosters:\n\n", len(rosters))
			for _, r := range rosters {
				fmt.Printf("- %s (%s): %s — %s\n", r.Name, r.ID, r.StartDate, r.EndDate)
			}

			return nil
		},
	}
}
