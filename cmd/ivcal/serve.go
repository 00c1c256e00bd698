package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"ivcal/internal/logger"
	internalhttp "ivcal/internal/server/http"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the bundled interview feed over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := NewConfig(configFile)
		if err != nil {
			return err
		}
		if err := logger.PrepareLogger(config.Logger); err != nil {
			return err
		}
		if config.Logger.File == "" {
			// No TUI here, the terminal is free for logs.
			log.SetOutput(os.Stdout)
		}

		server := internalhttp.NewServer(config.Server)

		ctx, cancel := signal.NotifyContext(context.Background(),
			syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
		defer cancel()

		go func() {
			<-ctx.Done()

			ctx, cancel := context.WithTimeout(context.Background(), time.Second*3)
			defer cancel()

			if err := server.Stop(ctx); err != nil {
				log.Error("failed to stop http server: " + err.Error())
			}
		}()

		log.Info("event source is running...")
		return server.Start(ctx)
	},
}
