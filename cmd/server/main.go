package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/atriumstudio/atrium/internal/bootstrap"
	"github.com/atriumstudio/atrium/internal/config"
	"github.com/atriumstudio/atrium/internal/infra/cache"
	"github.com/atriumstudio/atrium/internal/infra/db"
	"github.com/atriumstudio/atrium/internal/infra/identity"
	mq "github.com/atriumstudio/atrium/internal/infra/queue"
	"github.com/atriumstudio/atrium/internal/modules/handler"
	"github.com/atriumstudio/atrium/internal/modules/repo"
	"github.com/atriumstudio/atrium/internal/router"
	"github.com/atriumstudio/atrium/internal/telemetry"
	"github.com/atriumstudio/atrium/internal/worker"
	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//	@title			Atrium API
//	@version		1.0
//	@description	Backend for the Atrium Studio portfolio site: projects, contact inquiries, taxonomy and the admin dashboard.
//	@BasePath		/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Bearer token from /admin/login

func main() {
	inj := bootstrap.BuildContainer()

	cfg := do.MustInvoke[*config.Config](inj)
	log := do.MustInvoke[*zap.Logger](inj)
	defer log.Sync()

	// Tracing comes up before anything that registers otel plugins.
	if _, err := telemetry.SetupTracing(cfg); err != nil {
		log.Warn("tracing setup failed, continuing without it", zap.Error(err))
	}

	if cfg.Storage.Backend == config.BackendPostgres {
		gdb := do.MustInvoke[*gorm.DB](inj)
		if cfg.Telemetry.Enabled {
			if err := db.RegisterOpenTelemetryPlugin(gdb); err != nil {
				log.Warn("gorm otel plugin registration failed", zap.Error(err))
			}
		}
	}
	if cfg.Storage.Backend == config.BackendLocal && cfg.Telemetry.Enabled {
		rdb := do.MustInvoke[*redis.Client](inj)
		if err := cache.RegisterOpenTelemetryPlugin(rdb); err != nil {
			log.Warn("redis otel plugin registration failed", zap.Error(err))
		}
	}

	r := router.NewRouter(router.RouterDeps{
		Config:             cfg,
		Log:                log,
		Verifier:           do.MustInvoke[identity.AdminVerifier](inj),
		ProjectHandler:     do.MustInvoke[*handler.ProjectHandler](inj),
		ContactHandler:     do.MustInvoke[*handler.ContactHandler](inj),
		TaxonomyHandler:    do.MustInvoke[*handler.TaxonomyHandler](inj),
		StatsHandler:       do.MustInvoke[*handler.StatsHandler](inj),
		AuthHandler:        do.MustInvoke[*handler.AuthHandler](inj),
		EditSessionHandler: do.MustInvoke[*handler.EditSessionHandler](inj),
	})

	workerCtx, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()

	if consumer := do.MustInvoke[*mq.Consumer](inj); consumer != nil {
		w := worker.NewViewWorker(consumer, do.MustInvoke[repo.ProjectRepo](inj), log)
		go func() {
			if err := w.Run(workerCtx); err != nil && !errors.Is(err, context.Canceled) {
				log.Error("view worker stopped", zap.Error(err))
			}
		}()
	}

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: r,
	}

	go func() {
		log.Info("server listening",
			zap.Int("port", cfg.Server.Port),
			zap.String("backend", cfg.Storage.Backend))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down")

	stopWorker()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server shutdown failed", zap.Error(err))
	}
	if err := telemetry.Shutdown(ctx); err != nil {
		log.Warn("tracing shutdown failed", zap.Error(err))
	}
}
