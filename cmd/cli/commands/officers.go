package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mworkman/precinct-roster/pkg/core/model"
	"github.com/mworkman/precinct-roster/pkg/core/services"
)

// RegisterOfficerCmd creates the registerOfficer command
func RegisterOfficerCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "registerOfficer <badge_number> <first_name> <last_name>",
		Short: "Add an officer to the department directory",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			rank, _ := cmd.Flags().GetString("rank")
			status, _ := cmd.Flags().GetString("status")
			email, _ := cmd.Flags().GetString("email")
			phone, _ := cmd.Flags().GetString("phone")

			officer, err := services.RegisterOfficer(app.Ctx, app.Store, app.Logger, services.RegisterOfficerParams{
				BadgeNumber: args[0],
				FirstName:   args[1],
				LastName:    args[2],
				Rank:        rank,
				Status:      model.OfficerStatus(status),
				Email:       email,
				Phone:       phone,
			})
			if err != nil {
				return err
			}

			fmt.Printf("\n✓ Officer registered: %s %s (badge %s, id %s)\n",
				officer.FirstName, officer.LastName, officer.BadgeNumber, officer.ID)
			return nil
		},
	}

	cmd.Flags().String("rank", "", "Officer rank (e.g. Sergeant)")
	cmd.Flags().String("status", "active", "Officer status (active, inactive, leave, training, deployed, fmla, tdy)")
	cmd.Flags().String("email", "", "Contact email")
	cmd.Flags().String("phone", "", "Contact phone")

	return cmd
}

// ListOfficersCmd creates the listOfficers command
func ListOfficersCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "listOfficers",
		Short: "List officers in the department directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			eligibleOnly, _ := cmd.Flags().GetBool("eligible")

			officers, err := services.ListOfficers(app.Ctx, app.Store, app.Logger, eligibleOnly)
			if err != nil {
				return err
			}

			fmt.Printf("\nFound %d officers:\n\n", len(officers))
			for _, o := range officers {
				rankInfo := ""
				if o.Rank != "" {
					rankInfo = fmt.Sprintf(" %s", o.Rank)
				}
				fmt.Printf("-%s %s %s (badge %s) - %s - %s\n",
					rankInfo, o.FirstName, o.LastName, o.BadgeNumber, o.Status, o.ID)
			}

			return nil
		},
	}

	cmd.Flags().Bool("eligible", false, "Only show officers eligible for roster enrollment (active/training)")

	return cmd
}

// SetStatusCmd creates the setStatus command
func SetStatusCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "setStatus <officer_id> <status>",
		Short: "Update an officer's directory status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			officerID, status := args[0], args[1]

			app.Logger.Debug("setStatus command",
				zap.String("officer_id", officerID),
				zap.String("status", status))

			if err := services.SetOfficerStatus(app.Ctx, app.Store, app.Logger, officerID, model.OfficerStatus(status)); err != nil {
				return err
			}

			fmt.Printf("\n✓ Officer %s is now %s.\n", officerID, status)
			return nil
		},
	}
}

// EnrollOfficerCmd creates the enrollOfficer command
func EnrollOfficerCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "enrollOfficer <roster_id> <officer_id>",
		Short: "Add a directory officer to a roster's snapshot",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rosterID, officerID := args[0], args[1]

			if err := services.EnrollOfficer(app.Ctx, app.Store, app.Logger, rosterID, officerID); err != nil {
				return err
			}

			fmt.Printf("\n✓ Officer %s enrolled in roster %s.\n", officerID, rosterID)
			return nil
		},
	}
}
