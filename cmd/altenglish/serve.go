package main

import (
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/example/go-altenglish/internal/server"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve transliteration over HTTP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}

			// The server reports transliterations only; audio stays a
			// CLI concern, so the pipeline runs with audio disabled.
			pipeline, err := buildPipeline(cfg, true)
			if err != nil {
				return err
			}

			h := server.NewHandler(pipeline,
				server.WithWorkers(cfg.Server.Workers),
				server.WithMaxTextBytes(cfg.Server.MaxTextBytes),
				server.WithRequestTimeout(time.Duration(cfg.Server.RequestTimeout)*time.Second),
				server.WithPreservePunctuation(cfg.Output.PreservePunctuation),
			)

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			slog.Info("listening", "addr", cfg.Server.ListenAddr)
			return server.New(cfg.Server.ListenAddr, h).Start(ctx)
		},
	}

	return cmd
}
