package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"demo-server/core/database"
	"demo-server/core/loader"
	"demo-server/core/middleware/accesslog"
	"demo-server/core/server"
	"demo-server/feature/health"
	"demo-server/feature/hits"
	"demo-server/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// @title Demo Server API
// @version 1.2.0
// @description Operational API of the static demo server.
// @host localhost:8080
// @BasePath /api

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Serve the demo directory over HTTP",
	Long: `Serves the launcher's directory on the configured port, one connection at a
time by default, and opens the landing page in the default browser.
Stop it with Ctrl+C.`,
	Args: cobra.NoArgs,
	RunE: runStart,
}

func init() {
	RootCmd.AddCommand(startCmd)
}

func runStart(cmd *cobra.Command, args []string) error {
	env, err := loadEnv()
	if err != nil {
		return err
	}
	cfg, logg := env.cfg, env.logger
	defer logg.Sync()
	zap.ReplaceGlobals(logg)

	// Page-hit store (Optional)
	store := openHitStore(env)

	// Only a non-nil store may become the recorder; a typed nil would be called.
	var rec accesslog.Recorder
	if store != nil {
		rec = store
	}

	mgr := loader.NewManager()
	mgr.Register(health.NewFeature(Version, cfg.Server.Environment, logg))
	mgr.Register(integrity.NewFeature(env.baseDir, cfg.Server.RequiredFiles, logg))
	mgr.Register(hits.NewFeature(store, logg))

	app, err := server.NewApp(cfg.Server, env.baseDir, logg, mgr, rec)
	if err != nil {
		return err
	}

	ctx, stop := shutdownContext(cmd.Context())
	defer stop()

	launcher := server.NewLauncher(cfg.Server, env.baseDir, app, logg, server.WithStatus(cmd.OutOrStdout()))
	return launcher.Start(ctx)
}

// shutdownContext is cancelled by the first SIGINT or SIGTERM. The handler is
// released as soon as that happens, so a second Ctrl+C during a slow
// shutdown terminates the process.
func shutdownContext(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	context.AfterFunc(ctx, stop)
	return ctx, stop
}

// openHitStore connects the optional page-hit database. Failures only
// disable the store.
func openHitStore(env *commandEnv) *hits.Store {
	if !env.cfg.Database.Enabled {
		return nil
	}

	db, err := database.Connect(env.cfg.Database)
	if err != nil {
		env.logger.Warn("Optional database connection failed", zap.Error(err))
		return nil
	}

	store := hits.NewStore(db)
	if err := store.Migrate(); err != nil {
		env.logger.Warn("Page-hit store disabled", zap.Error(err))
		return nil
	}

	env.logger.Info("Page-hit store enabled", zap.String("driver", env.cfg.Database.Driver))
	return store
}
