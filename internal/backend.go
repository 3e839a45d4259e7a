package internal

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/oklog/run"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/poe2go/poe2go/internal/configuration"
	"github.com/poe2go/poe2go/internal/controller"
	"github.com/poe2go/poe2go/internal/display"
	"github.com/poe2go/poe2go/internal/fans"
	"github.com/poe2go/poe2go/internal/statistics"
	"github.com/poe2go/poe2go/internal/stats"
	"github.com/poe2go/poe2go/internal/ui"
)

func RunDaemon() {
	if os.Geteuid() != 0 {
		ui.Warning("poe2go usually requires root permissions to access GPIO and i2c devices")
	}

	config := configuration.CurrentConfig

	ui.Debug("Binary info:")
	ui.Debug("================================")
	ui.Debug("Target OS:           %s", runtime.GOOS)
	ui.Debug("Target Architecture: %s", runtime.GOARCH)
	ui.Debug("Config loaded: %+v", config)

	fan, err := fans.NewFan(config.Fan)
	if err != nil {
		ui.Fatal("Failed to initialize fan: %v", err)
	}
	ui.Info("Fan controller initialized. temp-on: %.1f, temp-off: %.1f, fan: %s",
		config.Fan.TempOn, config.Fan.TempOff, fan.GetId())

	sink, err := display.NewSSD1306Display(config.Display)
	if err != nil {
		ui.Fatal("Failed to initialize display: %v", err)
	}

	source := stats.NewSystemSource(config.Sensor)

	loop := controller.NewController(config, source, fan, sink)

	ctx, cancel := context.WithCancel(context.Background())

	var g run.Group
	{
		if config.Statistics.Enabled {
			// === Prometheus Exporter
			statistics.Register(statistics.NewSensorCollector())
			statistics.Register(statistics.NewDaemonCollector())

			addr := fmt.Sprintf(":%d", config.Statistics.Port)
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.Handler())
			server := &http.Server{Addr: addr, Handler: mux}

			g.Add(func() error {
				ui.Info("Serving metrics on %s/metrics", addr)
				err := server.ListenAndServe()
				if err != nil && !errors.Is(err, http.ErrServerClosed) {
					return err
				}
				return nil
			}, func(err error) {
				timeoutCtx, timeoutCancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer timeoutCancel()
				if err := server.Shutdown(timeoutCtx); err != nil {
					ui.Warning("Error stopping metrics server: %v", err)
				}
			})
		}
	}
	{
		// === control loop
		g.Add(func() error {
			err := loop.Run(ctx)
			if err != nil {
				ui.Error("Control loop failed: %v", err)
			}
			return err
		}, func(err error) {
			cancel()
		})
	}
	{
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

		g.Add(func() error {
			<-sig
			ui.Info("Received termination signal, exiting...")
			return nil
		}, func(err error) {
			signal.Stop(sig)
			close(sig)
			cancel()
		})
	}

	if err := g.Run(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	ui.Info("Done.")
}
