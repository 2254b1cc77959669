package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Gorghs/NSS-ops/cmd/cli/commands"
	"github.com/Gorghs/NSS-ops/internal/config"
	"github.com/Gorghs/NSS-ops/pkg/clients/apiclient"
	"github.com/Gorghs/NSS-ops/pkg/core/datacache"
	"github.com/Gorghs/NSS-ops/pkg/core/session"
	"github.com/Gorghs/NSS-ops/pkg/utils/logging"
)

var (
	env string
	app = &commands.AppContext{}
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "cli",
		Short: "NSS Ops CLI - volunteer programme management",
		Long:  `A CLI for the NSS volunteer programme: dashboards, activity management, AI matching and proof verification over the shared backend.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app != nil && app.Logger != nil {
				app.Logger.Sync()
			}
		},
	}

	// Add persistent environment flag
	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "", "Environment (required: test, prod, etc.)")
	rootCmd.MarkPersistentFlagRequired("env")

	// Add all commands
	rootCmd.AddCommand(commands.LoginCmd(app))
	rootCmd.AddCommand(commands.LogoutCmd(app))
	rootCmd.AddCommand(commands.WhoamiCmd(app))
	rootCmd.AddCommand(commands.JoinCmd(app))
	rootCmd.AddCommand(commands.DashboardCmd(app))
	rootCmd.AddCommand(commands.ListVolunteersCmd(app))
	rootCmd.AddCommand(commands.ListActivitiesCmd(app))
	rootCmd.AddCommand(commands.CreateActivityCmd(app))
	rootCmd.AddCommand(commands.MatchCmd(app))
	rootCmd.AddCommand(commands.AssignCmd(app))
	rootCmd.AddCommand(commands.VerifyCmd(app))
	rootCmd.AddCommand(commands.UploadProofCmd(app))
	rootCmd.AddCommand(commands.PlanCmd(app))
	rootCmd.AddCommand(commands.DisasterModeCmd(app))
	rootCmd.AddCommand(commands.StatsCmd(app))
	rootCmd.AddCommand(commands.WatchCmd(app))
	rootCmd.AddCommand(commands.ResetCmd(app))
	rootCmd.AddCommand(commands.InteractiveCmd(app))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initApp sets up logger, config, gateway, session store and cache
func initApp() error {
	app.Ctx = context.Background()

	// Initialize logger
	logger, err := logging.InitLogger(env)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	app.Logger = logger

	app.Logger.Info("Starting application", zap.String("environment", env))

	// Load configuration
	app.Cfg, err = config.LoadWithEnv(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	app.Logger.Debug("Configuration loaded successfully",
		zap.String("api_base_url", app.Cfg.APIBaseURL))

	// Initialize API gateway
	app.Client = apiclient.NewClient(app.Cfg.APIBaseURL, app.Cfg.RequestTimeout())
	app.Logger.Debug("API client initialized successfully")

	// Restore session
	sessionPath, err := app.Cfg.ResolveSessionPath()
	if err != nil {
		return fmt.Errorf("failed to resolve session path: %w", err)
	}
	app.Session, err = session.Open(sessionPath)
	if err != nil {
		return fmt.Errorf("failed to restore session: %w", err)
	}
	app.Logger.Debug("Session restored", zap.String("role", string(app.Session.Role())))

	// Initialize shared data cache
	app.Cache = datacache.New(app.Client, app.Logger)
	app.Logger.Debug("Data cache initialized successfully")

	return nil
}
