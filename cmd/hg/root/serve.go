package root

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/NicoEre03/habit-tracker/internal/config"
	"github.com/NicoEre03/habit-tracker/internal/engine"
	"github.com/NicoEre03/habit-tracker/internal/server"
	"github.com/NicoEre03/habit-tracker/internal/storage"
)

func newServeCmd() *cobra.Command {
	var cfgPath string
	var listen string
	var dbPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the grid HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			if listen != "" {
				cfg.Listen = listen
			}
			if dbPath != "" {
				cfg.DBPath = dbPath
			}
			if cfg.DBPath == "" {
				cfg.DBPath, err = storage.ResolveDBPath()
				if err != nil {
					return err
				}
			}

			db, err := storage.Open(ctx, cfg.DBPath)
			if err != nil {
				return err
			}
			defer db.Close()

			log := slog.New(slog.NewJSONHandler(os.Stderr, nil))
			svc := engine.NewService(db, log)
			srv := server.New(svc, log, cfg.LockWaitDuration())

			log.Info("starting grid server", "db", cfg.DBPath)
			return srv.Run(cfg.Listen)
		},
	}

	cmd.Flags().StringVarP(&cfgPath, "config", "c", "", "Path to YAML config file")
	cmd.Flags().StringVar(&listen, "listen", "", "Listen address (overrides config)")
	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite database path (overrides config)")

	return cmd
}
