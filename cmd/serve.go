package cmd

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/lecturely/internal/server"
	"github.com/abhisek/lecturely/internal/telemetry"
)

const serviceName = "lecturely"

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides LECTURELY_ADDR)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tcfg := telemetry.Config{Mode: cfg.Tracing, ServiceName: serviceName, Version: version}
	shutdownTracing, err := telemetry.Init(ctx, log, tcfg)
	if err != nil {
		log.Warn("tracing disabled", "error", err)
	}
	defer func() {
		if shutdownTracing != nil {
			_ = shutdownTracing(cmd.Context())
		}
	}()

	svcs, err := buildServices(ctx, cfg, log)
	if err != nil {
		return err
	}

	rcfg := server.RouterConfig{
		Modules:     svcs.modules,
		Lectures:    svcs.lectures,
		Slides:      svcs.slides,
		Grader:      svcs.grader,
		Speech:      svcs.speech,
		Log:         log,
		CORSOrigins: cfg.CORSOrigins,
	}
	if tcfg.Enabled() {
		rcfg.TraceService = serviceName
	}

	log.Info("lecturely listening",
		"addr", cfg.Addr,
		"provider", cfg.LLM.Provider,
		"model", svcs.provider.ModelID(),
		"max_attempts", cfg.LLM.Retry.MaxAttempts,
	)
	return server.NewServer(rcfg).Run(ctx, cfg.Addr, 15*time.Second)
}
