package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/bnema/netrun/internal/adapters/transport/ws"
	"github.com/bnema/netrun/internal/session"
	"github.com/spf13/cobra"
)

func newServeCmd(app *app) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the terminal over websocket",
		Long:  "serve accepts websocket connections on /ws. Every connection plays its own game on the configured world.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if addr == "" {
				addr = app.settings.ServeAddr
			}
			logger := log.New(cmd.ErrOrStderr(), "netrun ", log.LstdFlags)

			rt, err := app.openRuntime()
			if err != nil {
				return err
			}
			defer func() { _ = rt.Close(context.Background()) }()

			factory := func(opts session.Options) (*session.Game, error) {
				return app.newGame(rt, opts)
			}
			mux := http.NewServeMux()
			mux.Handle("/ws", ws.NewServer(factory, app.settings.cycle(), logger).Handler())

			ln, err := net.Listen("tcp", addr)
			if err != nil {
				return fmt.Errorf("listen on %s: %w", addr, err)
			}
			srv := &http.Server{Handler: mux, ReadHeaderTimeout: 10 * time.Second}

			errCh := make(chan error, 1)
			go func() {
				logger.Printf("listening on ws://%s/ws", ln.Addr())
				errCh <- srv.Serve(ln)
			}()

			select {
			case err := <-errCh:
				if !errors.Is(err, http.ErrServerClosed) {
					return fmt.Errorf("serve: %w", err)
				}
			case <-ctx.Done():
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := srv.Shutdown(shutdownCtx); err != nil {
					return fmt.Errorf("shutdown: %w", err)
				}
			}
			return rt.Close(context.Background())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (defaults to serve.addr)")
	return cmd
}
