package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"swmterm/internal/log"
	"swmterm/internal/server"

	"github.com/spf13/cobra"
)

// NewServeCmd creates the serve command
func NewServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the terminal over HTTP",
		Long:  `Start the HTTP API used by the site widget. Sessions live in memory and expire after server.session_ttl.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("addr") {
				cfg.Server.Addr = addr
			}
			log.Configure(log.WithJSON())

			ctx, stopSignals := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stopSignals()

			a := newApp(cfg)
			go func() {
				if err := a.store.LoadOnce(ctx); err != nil {
					log.Warnf("Serving built-in content: %v", err)
				}
			}()

			stopReloader, err := a.startReloader(ctx, cfg, nil)
			if err != nil {
				return err
			}
			defer stopReloader()

			srv, err := server.New(cfg, a.store, a.exec)
			if err != nil {
				return err
			}

			errCh := make(chan error, 1)
			go func() { errCh <- srv.Run(cfg.Server.Addr) }()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}

			log.Info("Shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address (overrides server.addr)")
	return cmd
}
