package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mworkman/precinct-roster/cmd/cli/commands"
	"github.com/mworkman/precinct-roster/internal/config"
	"github.com/mworkman/precinct-roster/pkg/postgres"
	"github.com/mworkman/precinct-roster/pkg/utils/logging"
)

var (
	env string
	app *commands.AppContext
	pg  *postgres.DB
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "cli",
		Short: "Precinct Roster CLI - Manage officers, rosters, and shift assignments",
		Long:  `An admin tool for police department roster management: officer records, shift definitions, rotation calendars, and validated shift assignments.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app != nil && app.Logger != nil {
				app.Logger.Sync()
			}
			if pg != nil {
				pg.Close()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "", "Environment (required: test, prod, etc.)")
	rootCmd.MarkPersistentFlagRequired("env")

	rootCmd.AddCommand(commands.CreateRosterCmd(appRef()))
	rootCmd.AddCommand(commands.DeleteRosterCmd(appRef()))
	rootCmd.AddCommand(commands.ListRostersCmd(appRef()))
	rootCmd.AddCommand(commands.AddShiftCmd(appRef()))
	rootCmd.AddCommand(commands.RegisterOfficerCmd(appRef()))
	rootCmd.AddCommand(commands.ListOfficersCmd(appRef()))
	rootCmd.AddCommand(commands.SetStatusCmd(appRef()))
	rootCmd.AddCommand(commands.EnrollOfficerCmd(appRef()))
	rootCmd.AddCommand(commands.AssignShiftCmd(appRef()))
	rootCmd.AddCommand(commands.RemoveAssignmentCmd(appRef()))
	rootCmd.AddCommand(commands.ViewRosterCmd(appRef()))
	rootCmd.AddCommand(commands.CalendarCmd(appRef()))
	rootCmd.AddCommand(commands.NextWorkDayCmd(appRef()))
	rootCmd.AddCommand(commands.InteractiveCmd(appRef()))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// appRef returns the shared AppContext, allocating it before initApp fills
// it in. Commands capture the pointer at registration time; the fields are
// populated by PersistentPreRunE before any RunE fires.
func appRef() *commands.AppContext {
	if app == nil {
		app = &commands.AppContext{}
	}
	return app
}

// initApp sets up env, logger, config, and the database
func initApp() error {
	appRef()
	app.Ctx = context.Background()

	// A local .env can carry DATABASE_URL; absence is fine
	godotenv.Load()

	logger, err := logging.InitLogger(env)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	app.Logger = logger

	app.Logger.Info("Starting application", zap.String("environment", env))

	app.Logger.Info("Loading configuration")
	app.Cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	app.Logger.Debug("Configuration loaded successfully",
		zap.String("department", app.Cfg.DepartmentName))

	app.Logger.Info("Connecting to database")
	pg, err = postgres.NewDB(app.Ctx, app.Cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	app.Logger.Info("Running migrations")
	if err := pg.RunMigrations(app.Ctx); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	app.Store = pg
	app.Logger.Info("Database initialized successfully")

	return nil
}
