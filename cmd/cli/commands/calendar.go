package commands

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/mworkman/precinct-roster/pkg/core/rotation"
	"github.com/mworkman/precinct-roster/pkg/core/services"
)

// CalendarCmd creates the calendar command
func CalendarCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calendar <year> <month>",
		Short: "Show the rotation calendar for a month",
		Long:  "Render a month with each day's rotation classification (night/day shift, week 1/2, or off). With --roster, that roster's assignments are listed per day.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("year must be a number: %w", err)
			}
			monthNum, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("month must be a number: %w", err)
			}
			if monthNum < 1 || monthNum > 12 {
				return fmt.Errorf("month must be between 1 and 12, got %d", monthNum)
			}
			rosterID, _ := cmd.Flags().GetString("roster")

			result, err := services.MonthView(app.Ctx, app.Store, app.Logger, rosterID, year, time.Month(monthNum))
			if err != nil {
				return err
			}

			// ANSI color codes
			const (
				colorReset  = "\033[0m"
				colorBlue   = "\033[34m"
				colorYellow = "\033[33m"
				colorBold   = "\033[1m"
			)

			fmt.Printf("\n📅 %s%s %d%s — %d work days\n\n", colorBold, result.Month, result.Year, colorReset, result.WorkDayCount)

			for _, day := range result.Days {
				label := "off"
				switch {
				case day.Rotation.ShiftType == rotation.ShiftNight:
					label = fmt.Sprintf("%snight (week %d)%s", colorBlue, day.Rotation.WeekNumber, colorReset)
				case day.Rotation.ShiftType == rotation.ShiftDay:
					label = fmt.Sprintf("%sday (week %d)%s", colorYellow, day.Rotation.WeekNumber, colorReset)
				}

				fmt.Printf("  %s %-9s %s\n", day.Date.Format("2006-01-02"), day.Date.Format("Monday"), label)

				for _, a := range day.Assignments {
					fmt.Printf("      ↳ officer %s on shift %s (%s)\n", a.OfficerID, a.ShiftID, a.Position)
				}
			}
			fmt.Println()

			return nil
		},
	}

	cmd.Flags().String("roster", "", "Roster id to overlay assignments for")

	return cmd
}

// NextWorkDayCmd creates the nextWorkDay command
func NextWorkDayCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "nextWorkDay [date]",
		Short: "Show the next rotation work day after a date (default today)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			from := time.Now()
			if len(args) > 0 {
				parsed, err := time.Parse("2006-01-02", args[0])
				if err != nil {
					return fmt.Errorf("invalid date %q (expected YYYY-MM-DD): %w", args[0], err)
				}
				from = parsed
			}

			next := rotation.GetNextWorkDay(from)
			info := rotation.GetShiftInfo(next)

			fmt.Printf("\nNext work day after %s: %s (%s shift, week %d)\n",
				from.Format("2006-01-02"),
				next.Format("2006-01-02 (Monday)"),
				info.ShiftType,
				info.WeekNumber)

			return nil
		},
	}
}
