package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mworkman/precinct-roster/pkg/core/services"
)

// ViewRosterCmd creates the viewRoster command
func ViewRosterCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "viewRoster <roster_id>",
		Short: "Show a roster's shifts, officers, and assignments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := services.ViewRoster(app.Ctx, app.Store, app.Logger, args[0])
			if err != nil {
				return err
			}
			roster := result.Roster

			// ANSI color codes
			const (
				colorReset = "\033[0m"
				colorGreen = "\033[32m"
				colorBold  = "\033[1m"
			)

			fmt.Printf("\n📋 %s%s%s (%s — %s)\n\n", colorBold, roster.Name, colorReset, roster.StartDate, roster.EndDate)

			fmt.Printf("Shifts:\n")
			for _, s := range roster.Shifts {
				fmt.Printf("  • %s (%s–%s)  %s\n", s.Name, s.StartTime, s.EndTime, s.ID)
			}
			fmt.Println()

			fmt.Printf("Officers:\n")
			for _, o := range roster.Officers {
				fmt.Printf("  • %s %s (badge %s) - %s\n", o.FirstName, o.LastName, o.BadgeNumber, o.Status)
			}
			fmt.Println()

			if len(result.Assignments) == 0 {
				fmt.Println("No assignments yet.")
				return nil
			}

			// Size the name columns to their content
			shiftColWidth := len("Shift")
			officerColWidth := len("Officer")
			for _, a := range result.Assignments {
				if shift, ok := roster.ShiftByID(a.ShiftID); ok && len(shift.Name) > shiftColWidth {
					shiftColWidth = len(shift.Name)
				}
				if officer, ok := roster.OfficerByID(a.OfficerID); ok {
					if n := len(officer.FirstName) + len(officer.LastName) + 1; n > officerColWidth {
						officerColWidth = n
					}
				}
			}
			shiftColWidth += 2
			officerColWidth += 2
			dateColWidth := 12

			fmt.Printf("%s%-*s  %-*s  %-*s  %s%s\n",
				colorBold,
				dateColWidth, "Date",
				shiftColWidth, "Shift",
				officerColWidth, "Officer",
				"Position",
				colorReset)
			fmt.Printf("%s  %s  %s  %s\n",
				strings.Repeat("-", dateColWidth),
				strings.Repeat("-", shiftColWidth),
				strings.Repeat("-", officerColWidth),
				strings.Repeat("-", len("Position")))

			for _, a := range result.Assignments {
				shiftName := a.ShiftID
				if shift, ok := roster.ShiftByID(a.ShiftID); ok {
					shiftName = shift.Name
				}
				officerName := a.OfficerID
				if officer, ok := roster.OfficerByID(a.OfficerID); ok {
					officerName = fmt.Sprintf("%s%s %s%s", colorGreen, officer.FirstName, officer.LastName, colorReset)
					displayWidth := len(officer.FirstName) + len(officer.LastName) + 1
					fmt.Printf("%-*s  %-*s  %s%s  %s\n",
						dateColWidth, a.Date,
						shiftColWidth, shiftName,
						officerName, strings.Repeat(" ", officerColWidth-displayWidth),
						a.Position)
					continue
				}
				fmt.Printf("%-*s  %-*s  %-*s  %s\n",
					dateColWidth, a.Date,
					shiftColWidth, shiftName,
					officerColWidth, officerName,
					a.Position)
			}
			fmt.Println()

			return nil
		},
	}
}
