package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/UnknownOlympus/focuslearn/internal/auth"
	"github.com/UnknownOlympus/focuslearn/internal/client"
	"github.com/UnknownOlympus/focuslearn/internal/config"
	"github.com/UnknownOlympus/focuslearn/internal/lib/logger/sl"
	"github.com/UnknownOlympus/focuslearn/internal/lib/version"
	"github.com/UnknownOlympus/focuslearn/internal/metrics"
	"github.com/UnknownOlympus/focuslearn/internal/models"
	"github.com/UnknownOlympus/focuslearn/internal/parser"
	"github.com/UnknownOlympus/focuslearn/internal/repository"
	"github.com/UnknownOlympus/focuslearn/internal/server"
	"github.com/UnknownOlympus/focuslearn/internal/services/login"
	"github.com/UnknownOlympus/focuslearn/internal/services/roster"
	"github.com/UnknownOlympus/focuslearn/internal/services/seed"
	"github.com/UnknownOlympus/focuslearn/internal/services/training"
	"github.com/UnknownOlympus/focuslearn/internal/store"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const authClientTimeout = 10 * time.Second

var printVersion = flag.Bool("version", false, "Print version information and exit")

// main is the entry point of the application.
func main() {
	flag.Parse()
	if *printVersion {
		fmt.Println(version.Info("server").String())
		return
	}

	var wgr sync.WaitGroup
	delta := 2

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.MustLoad()

	logger := sl.New(cfg.Env, os.Stdout)

	// Create a separate registry for metrics
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.NewMetrics(reg)

	var (
		backend store.Store
		pinger  server.DBPinger
		syncer  *roster.Syncer
	)

	switch cfg.Backend {
	case config.BackendMemory:
		account, err := seed.NewAccount(logger, cfg.Memory.Username, cfg.Memory.Email, cfg.Memory.Password)
		if err != nil {
			log.Fatalf("Failed to prepare memory account: %v", err)
		}
		backend = seed.Memory(cfg.Memory.DemoEmployees, account)
		logger.InfoContext(ctx, "Using in-memory backend", "username", account.User.Username)
	default:
		dtb, err := repository.NewDatabase(logger,
			cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.User, cfg.Postgres.Password, cfg.Postgres.Dbname)
		if err != nil {
			log.Fatalf("Failed to connect to DB: %v", err)
		}
		defer dtb.Close()

		userRepo := repository.NewUserRepository(dtb, appMetrics)
		employeeRepo := repository.NewEmployeeRepository(dtb, appMetrics)
		backend = store.NewLive(logger, userRepo, employeeRepo, newProvider(logger, cfg, userRepo), appMetrics)
		pinger = dtb

		if cfg.Roster.URL != "" {
			rosterParser := parser.NewRosterParser(client.CreateHTTPClient(logger, authClientTimeout), cfg.Roster.URL)
			syncer = roster.NewSyncer(logger, employeeRepo,
				repository.NewSyncStatusRepository(dtb, appMetrics), rosterParser, appMetrics)
		}
	}

	authHost := ""
	if cfg.Auth.Provider == config.AuthHTTP {
		authHost = cfg.Auth.BaseURL
	}

	registry := server.NewRegistry(func(user models.User) *training.Session {
		return training.NewSession(logger.With(slog.String("username", user.Username)), backend, appMetrics)
	}, appMetrics)
	api := server.NewAPI(logger, login.NewService(logger, backend, appMetrics), registry)

	wgr.Add(delta)

	go func() {
		defer wgr.Done()
		server.StartMonitoringServer(ctx, logger, reg, pinger, cfg.HTTP.MonitoringPort, authHost)
	}()

	go func() {
		defer wgr.Done()
		server.Serve(ctx, logger.With(slog.String("server", "api")), api.Router(), cfg.HTTP.Port)
	}()

	if syncer != nil {
		wgr.Add(1)

		go func() {
			defer wgr.Done()
			logger.InfoContext(ctx, "Starting Roster Service")
			if err := syncer.Start(ctx, cfg.Roster.Interval); err != nil {
				logger.ErrorContext(ctx, "Roster Service failed", "error", err)
			}
			logger.InfoContext(ctx, "Roster Service stopped.")
		}()
	}

	logger.InfoContext(ctx, "Application started. Press Ctrl+C to stop.", "backend", cfg.Backend)

	wgr.Wait()

	registry.CloseAll()

	logger.InfoContext(ctx, "Application stopped gracefully...")
}

func newProvider(logger *slog.Logger, cfg *config.Config, hashes auth.HashSource) auth.Provider {
	if cfg.Auth.Provider == config.AuthHTTP {
		return auth.NewHTTPProvider(client.CreateHTTPClient(logger, authClientTimeout), cfg.Auth.LoginURL, cfg.Auth.BaseURL)
	}

	return auth.NewPasswordProvider(hashes)
}
