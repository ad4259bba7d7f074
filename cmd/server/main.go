package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/intern-portal/internal/adapter"
	"github.com/MKhiriev/intern-portal/internal/config"
	"github.com/MKhiriev/intern-portal/internal/handler"
	"github.com/MKhiriev/intern-portal/internal/logger"
	"github.com/MKhiriev/intern-portal/internal/server"
	"github.com/MKhiriev/intern-portal/internal/service"
	"github.com/MKhiriev/intern-portal/internal/store"
	"github.com/MKhiriev/intern-portal/internal/telemetry"
	"github.com/MKhiriev/intern-portal/internal/workers"
	"github.com/MKhiriev/intern-portal/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const mailStream = "PORTAL_MAIL"

func main() {
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(build)

	log := logger.NewLogger("intern-portal")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = build.Version
	}
	cfg.App.BuildDate, cfg.App.BuildCommit = build.Date, build.Commit
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Warn().Err(err).Str("level", cfg.App.LogLevel).Msg("unknown log level, keeping default")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	if err = run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
}

func run(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) error {
	shutdownTracing, err := telemetry.Init(ctx, cfg.Telemetry, cfg.App.Version, log)
	if err != nil {
		return fmt.Errorf("telemetry: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			log.Warn().Err(err).Msg("trace exporter shutdown")
		}
	}()

	storages, err := store.NewStorages(ctx, cfg.Storage.DB, log)
	if err != nil {
		return fmt.Errorf("error creating storages: %w", err)
	}
	defer storages.Close()

	var publisher adapter.Publisher
	var bus *adapter.Bus
	if cfg.Mail.Kind == config.MailKindNATS || cfg.Workers.MailDispatch {
		bus, err = adapter.NewBus(cfg.Mail.NATSURL)
		if err != nil {
			return fmt.Errorf("error connecting to NATS: %w", err)
		}
		defer bus.Close()
		if err = bus.EnsureStream(mailStream, cfg.Mail.Subject, cfg.App.ResetTokenTTL); err != nil {
			return err
		}
		publisher = bus
	}

	mailer, err := adapter.NewMailer(cfg.Mail, cfg.App, publisher, log)
	if err != nil {
		return fmt.Errorf("error creating mailer: %w", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	services, err := service.NewServices(storages, mailer, *cfg, reg, log)
	if err != nil {
		return fmt.Errorf("error creating services: %w", err)
	}
	if _, err = services.SettingsService.Load(ctx); err != nil {
		log.Warn().Err(err).Msg("settings not loaded, using defaults until the next refresh")
	}

	background := workers.NewWorkers(
		workers.NewSettingsWatcher(services.SettingsService, cfg.Workers.SettingsPollInterval),
		workers.NewSettingsChangeLog(services.SettingsService),
	)
	if cfg.Workers.MailDispatch {
		sender, err := adapter.NewHTTPSender(cfg.Mail, log)
		if err != nil {
			return fmt.Errorf("error creating mail sender: %w", err)
		}
		background.Add(workers.NewMailDispatcher(bus, sender, cfg.Mail.Subject, cfg.Workers.MailDurable))
	}

	handlers, err := handler.NewHandlers(services, storages.Documents, reg, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating handlers: %w", err)
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	g, ctx := errgroup.WithContext(log.WithContext(ctx))
	g.Go(func() error {
		return background.Run(ctx)
	})
	g.Go(func() error {
		return srv.Run(ctx)
	})

	return g.Wait()
}
