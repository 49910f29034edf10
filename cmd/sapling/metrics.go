package main

import (
	"context"

	"github.com/phanxgames/sapling"
	"github.com/phanxgames/sapling/internal/telemetry"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/pflag"
)

func addMetricsAddrFlag(fs *pflag.FlagSet) {
	fs.String("metrics-addr", "", "Serve Prometheus metrics on this address (e.g. :2112)")
}

// startMetrics registers the growth collectors on a fresh registry and, when
// addr is set, serves them until ctx is done.
func startMetrics(ctx context.Context, addr string) (*telemetry.Metrics, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	m := telemetry.NewMetrics(reg)
	if addr != "" {
		go func() {
			if err := telemetry.Serve(ctx, addr, telemetry.NewHandler(reg), sapling.Logger()); err != nil {
				sapling.Logger().Error("metrics server stopped", "error", err)
			}
		}()
	}
	return m, reg
}
