package bootstrap

import (
	"context"
	"crypto/tls"
	"strings"

	"github.com/atriumstudio/atrium/internal/config"
	"github.com/atriumstudio/atrium/internal/infra/cache"
	"github.com/atriumstudio/atrium/internal/infra/db"
	"github.com/atriumstudio/atrium/internal/infra/identity"
	"github.com/atriumstudio/atrium/internal/infra/localstore"
	"github.com/atriumstudio/atrium/internal/infra/logger"
	mq "github.com/atriumstudio/atrium/internal/infra/queue"
	"github.com/atriumstudio/atrium/internal/modules/handler"
	"github.com/atriumstudio/atrium/internal/modules/model"
	"github.com/atriumstudio/atrium/internal/modules/repo"
	"github.com/atriumstudio/atrium/internal/modules/service"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func BuildContainer() *do.Injector {
	inj := do.New()

	// config
	do.Provide(inj, func(i *do.Injector) (*config.Config, error) {
		return config.Load()
	})

	// logger
	do.Provide(inj, func(i *do.Injector) (*zap.Logger, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return logger.New(cfg.Log.Level)
	})

	// DB (postgres policy only; the local policy never invokes this)
	do.Provide(inj, func(i *do.Injector) (*gorm.DB, error) {
		cfg := do.MustInvoke[*config.Config](i)
		log := do.MustInvoke[*zap.Logger](i)
		d, err := db.New(cfg)
		if err != nil {
			return nil, err
		}
		if cfg.Database.AutoMigrate {
			_ = d.AutoMigrate(
				&model.Project{},
				&model.ContactSubmission{},
				&model.Category{},
				&model.Tag{},
				&model.ProjectTagRelation{},
			)
		}
		if err := EnsureDefaultTaxonomy(context.Background(), d, log); err != nil {
			return nil, err
		}
		return d, nil
	})

	// local file slot (demo policy)
	do.Provide(inj, func(i *do.Injector) (*localstore.Slot, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return localstore.NewSlot(cfg.Storage.SlotPath), nil
	})

	// Redis
	do.Provide(inj, func(i *do.Injector) (*redis.Client, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return cache.New(cfg)
	})

	// RabbitMQ connection; left unconfigured the publisher stays nil and view
	// events fall back to direct counter bumps.
	do.Provide(inj, func(i *do.Injector) (*amqp.Connection, error) {
		cfg := do.MustInvoke[*config.Config](i)

		useTLS := cfg.RabbitMQ.EnableTLS || strings.HasPrefix(cfg.RabbitMQ.URL, "amqps://")
		if useTLS {
			url := cfg.RabbitMQ.URL
			if strings.HasPrefix(url, "amqp://") {
				url = strings.Replace(url, "amqp://", "amqps://", 1)
			}
			return amqp.DialTLS(url, &tls.Config{MinVersion: tls.VersionTLS12})
		}
		return amqp.Dial(cfg.RabbitMQ.URL)
	})
	do.Provide(inj, func(i *do.Injector) (*mq.Publisher, error) {
		cfg := do.MustInvoke[*config.Config](i)
		if cfg.RabbitMQ.URL == "" {
			return nil, nil
		}
		conn := do.MustInvoke[*amqp.Connection](i)
		log := do.MustInvoke[*zap.Logger](i)
		return mq.NewPublisher(conn, log, cfg)
	})
	do.Provide(inj, func(i *do.Injector) (*mq.Consumer, error) {
		cfg := do.MustInvoke[*config.Config](i)
		if cfg.RabbitMQ.URL == "" {
			return nil, nil
		}
		conn := do.MustInvoke[*amqp.Connection](i)
		log := do.MustInvoke[*zap.Logger](i)
		return mq.NewConsumer(conn, cfg.RabbitMQ.QueueName, cfg.RabbitMQ.Prefetch, log, cfg)
	})

	// Repo (backing policy selected here, nowhere else)
	do.Provide(inj, func(i *do.Injector) (repo.ProjectRepo, error) {
		cfg := do.MustInvoke[*config.Config](i)
		if cfg.Storage.Backend == config.BackendLocal {
			return repo.NewLocalProjectRepo(do.MustInvoke[*localstore.Slot](i)), nil
		}
		return repo.NewProjectRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.ContactRepo, error) {
		cfg := do.MustInvoke[*config.Config](i)
		if cfg.Storage.Backend == config.BackendLocal {
			return repo.NewLocalContactRepo(), nil
		}
		return repo.NewContactRepo(do.MustInvoke[*gorm.DB](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.TaxonomyRepo, error) {
		cfg := do.MustInvoke[*config.Config](i)
		if cfg.Storage.Backend == config.BackendLocal {
			return repo.NewLocalTaxonomyRepo(do.MustInvoke[repo.ProjectRepo](i)), nil
		}
		return repo.NewTaxonomyRepo(do.MustInvoke[*gorm.DB](i)), nil
	})

	// Identity (same split: fixed credentials + redis sessions for the demo,
	// supabase for the hosted deployment)
	do.Provide(inj, func(i *do.Injector) (identity.AdminVerifier, error) {
		cfg := do.MustInvoke[*config.Config](i)
		log := do.MustInvoke[*zap.Logger](i)
		if cfg.Storage.Backend == config.BackendLocal {
			return identity.NewLocalVerifier(do.MustInvoke[*redis.Client](i), cfg, log), nil
		}
		return identity.NewSupabaseVerifier(cfg, log), nil
	})

	// Service
	do.Provide(inj, func(i *do.Injector) (service.ProjectService, error) {
		return service.NewProjectService(
			do.MustInvoke[repo.ProjectRepo](i),
			do.MustInvoke[*mq.Publisher](i),
			do.MustInvoke[*config.Config](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.ContactService, error) {
		return service.NewContactService(
			do.MustInvoke[repo.ContactRepo](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.StatsService, error) {
		return service.NewStatsService(
			do.MustInvoke[repo.ProjectRepo](i),
			do.MustInvoke[repo.ContactRepo](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.TaxonomyService, error) {
		return service.NewTaxonomyService(do.MustInvoke[repo.TaxonomyRepo](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.EditSessionService, error) {
		return service.NewEditSessionService(
			do.MustInvoke[service.ProjectService](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})

	// Handler
	do.Provide(inj, func(i *do.Injector) (*handler.ProjectHandler, error) {
		return handler.NewProjectHandler(do.MustInvoke[service.ProjectService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.ContactHandler, error) {
		return handler.NewContactHandler(do.MustInvoke[service.ContactService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.TaxonomyHandler, error) {
		return handler.NewTaxonomyHandler(do.MustInvoke[service.TaxonomyService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.StatsHandler, error) {
		return handler.NewStatsHandler(do.MustInvoke[service.StatsService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.AuthHandler, error) {
		return handler.NewAuthHandler(do.MustInvoke[identity.AdminVerifier](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.EditSessionHandler, error) {
		return handler.NewEditSessionHandler(do.MustInvoke[service.EditSessionService](i)), nil
	})
	return inj
}
