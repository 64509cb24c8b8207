// Command portfolioctl administers the portfolio database from the command line.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/yang-ventures/portfolio-backend/internal/config"
	"github.com/yang-ventures/portfolio-backend/internal/database"
	"github.com/yang-ventures/portfolio-backend/internal/logger"
	"github.com/yang-ventures/portfolio-backend/internal/service"
	"github.com/yang-ventures/portfolio-backend/internal/version"
)

// app holds what every subcommand needs once the root command has run.
type app struct {
	configFile string
	dbPath     string

	cfg *config.Config
	log *zap.SugaredLogger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:          "portfolioctl",
		Short:        "Manage the venture portfolio database",
		Version:      version.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			var (
				cfg *config.Config
				err error
			)
			if a.configFile != "" {
				cfg, err = config.LoadFile(a.configFile)
			} else {
				cfg, err = config.Load()
			}
			if err != nil {
				return err
			}
			if a.dbPath != "" {
				cfg.Database.Path = a.dbPath
			}
			a.cfg = cfg
			a.log = logger.New(cfg.App.Env, cfg.App.LogLevel)
			return nil
		},
	}
	root.PersistentFlags().StringVar(&a.configFile, "config", "", "TOML configuration file (defaults to $CONFIG_FILE)")
	root.PersistentFlags().StringVar(&a.dbPath, "db", "", "SQLite database path (overrides the configuration)")

	root.AddCommand(
		newMigrateCmd(a),
		newSeedCmd(a),
		newReturnsCmd(a),
		newImportCmd(a),
	)
	return root
}

// open opens and migrates the configured database and wires the services over it.
func (a *app) open(ctx context.Context) (*sql.DB, *service.Services, error) {
	db, err := database.Open(a.cfg.Database.Path)
	if err != nil {
		return nil, nil, err
	}
	if _, err := database.Migrate(ctx, db); err != nil {
		db.Close()
		return nil, nil, err
	}
	return db, service.NewServices(db, a.cfg, a.log), nil
}

func closeDB(db *sql.DB) {
	if err := db.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to close database: %v\n", err)
	}
}
