package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/Ananya178/spacex-launch-prediction/server"
)

const shutdownTimeout = 5 * time.Second

var serveFlags struct {
	address string
	port    int
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the dashboard over HTTP",
	Long:  "Start the HTTP server: the dashboard page on /, the JSON API under /api,\nthe chart as SVG on /chart.svg and Prometheus metrics on /metrics.",
	RunE:  runServe,
}

func init() {
	f := serveCmd.Flags()
	f.StringVar(&serveFlags.address, "address", "", "Listen address (default from config)")
	f.IntVar(&serveFlags.port, "port", 0, "Listen port (default from config)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	dash, err := openDashboard(cmd)
	if err != nil {
		return err
	}
	defer dash.Close()

	logger := dash.Logger
	srv, err := server.New(dash, server.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	addr := dash.Config.ListenAddress()
	if serveFlags.address != "" || serveFlags.port != 0 {
		host, port := dash.Config.Address, dash.Config.Port
		if serveFlags.address != "" {
			host = serveFlags.address
		}
		if serveFlags.port != 0 {
			port = serveFlags.port
		}
		addr = net.JoinHostPort(host, strconv.Itoa(port))
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           srv,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("dashboard listening", "address", addr)
		fmt.Fprintf(cmd.OutOrStdout(), "Dashboard running on http://%s/\n", addr)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serving: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	return nil
}
