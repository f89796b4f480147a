package cmd

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/evrazdex/gateway-resolver/api"
	"github.com/evrazdex/gateway-resolver/metrics"
)

func startCmd(a *AppState) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start the gateway availability API",
		Long:  `Start the HTTP API that tells wallet front-ends which gateways and bridges may be offered.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			port, err := cmd.Flags().GetInt16(flagMetricsPort)
			if err != nil {
				return err
			}
			m := metrics.InitPromMetrics(port)

			s, err := a.BuildServices(ctx, m)
			if err != nil {
				return err
			}
			defer s.Close()

			if !s.Branding.AllowsAny() {
				a.Logger.Info("branding allows no gateways, every gateway will be reported unavailable")
			}

			if !a.Debug && a.LogLevel != "debug" {
				gin.SetMode(gin.ReleaseMode)
			}
			server, err := api.NewServer(s.Registry, s.Store, a.Logger, int(a.Config.EvaluationWorkers), a.Config.Api.TrustedProxies)
			if err != nil {
				return err
			}

			httpServer := &http.Server{
				Addr:              a.Config.Api.ListenAddress,
				Handler:           server.Handler(),
				ReadHeaderTimeout: 5 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				a.Logger.Info("starting api server", "address", httpServer.Addr, "metrics-port", port)
				errCh <- httpServer.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
				a.Logger.Info("shutting down api server")
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := httpServer.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
					return err
				}
				return nil
			}
		},
	}
	addMetricsFlag(cmd)
	return withAppState(a, cmd)
}
