package app

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"github.com/bennett-mcdowell/F25-Team03/internal/config"
	"github.com/bennett-mcdowell/F25-Team03/internal/http/handlers"
	"github.com/bennett-mcdowell/F25-Team03/internal/http/pprofserver"
	"github.com/bennett-mcdowell/F25-Team03/internal/http/router"
	"github.com/bennett-mcdowell/F25-Team03/internal/logx"
	"github.com/bennett-mcdowell/F25-Team03/internal/repository"
	"github.com/bennett-mcdowell/F25-Team03/internal/service/ledger"
)

// ContainerBuilder is a dig container builder.
type ContainerBuilder struct {
	dbConnect func(context.Context, string, int, time.Duration) (*pgxpool.Pool, error)
	logFatalf func(string, ...interface{})
}

// NewContainerBuilder returns a new dig container builder
func NewContainerBuilder() *ContainerBuilder {
	return &ContainerBuilder{
		dbConnect: connectDbWithRetry,
		logFatalf: log.Fatalf,
	}
}

// WithDBConnect sets the database connection function
func (b *ContainerBuilder) WithDBConnect(
	fn func(context.Context, string, int, time.Duration) (*pgxpool.Pool, error),
) *ContainerBuilder {
	if fn != nil {
		b.dbConnect = fn
	}
	return b
}

// WithLogFatalf sets the log.Fatalf function
func (b *ContainerBuilder) WithLogFatalf(fn func(string, ...interface{})) *ContainerBuilder {
	if fn != nil {
		b.logFatalf = fn
	}
	return b
}

// MustBuild builds and returns a new dig container
func (b *ContainerBuilder) MustBuild(ctx context.Context) *dig.Container {
	container, err := b.build(ctx)
	if err != nil {
		b.logFatalf("failed to build container: %v", err)
	}
	return container
}

// build builds and returns a new dig container
func (b *ContainerBuilder) build(ctx context.Context) (*dig.Container, error) {
	container := dig.New()

	if err := registerCore(container, ctx); err != nil {
		return nil, fmt.Errorf("core: %w", err)
	}
	if err := registerDb(container, b.dbConnect); err != nil {
		return nil, fmt.Errorf("DB: %w", err)
	}
	if err := registerDomainServices(container); err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	if err := registerHTTP(container); err != nil {
		return nil, fmt.Errorf("http: %w", err)
	}
	return container, nil
}

// MustBuildContainer builds and returns a new dig container
func MustBuildContainer(ctx context.Context) *dig.Container {
	return NewContainerBuilder().MustBuild(ctx)
}

func provideAll(container *dig.Container, providers ...any) error {
	for _, provider := range providers {
		if err := container.Provide(provider); err != nil {
			return fmt.Errorf("provide %T: %w", provider, err)
		}
	}
	return nil
}

func registerCore(container *dig.Container, ctx context.Context) error {
	return provideAll(container,
		func() context.Context { return ctx },
		NewLogger,
		config.Load,
		provideMetrics,
	)
}

func registerDb(
	container *dig.Container,
	dbConnect func(context.Context, string, int, time.Duration) (*pgxpool.Pool, error),
) error {
	providerDB := func(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
		return dbConnect(ctx, cfg.DB.DSN(), 10, time.Second)
	}
	return provideAll(container, providerDB)
}

type ledgerServiceIn struct {
	dig.In

	Repo        *repository.LedgerRepo
	Timeout     time.Duration
	Logger      logx.Logger
	Purchases   *prometheus.CounterVec
	PointsSpent prometheus.Counter `name:"points_spent_total"`
}

func registerDomainServices(container *dig.Container) error {
	return provideAll(container,
		repository.NewLedgerRepo,
		func() time.Duration { return 3 * time.Second },
		func(in ledgerServiceIn) *ledger.Service {
			return ledger.NewService(in.Repo, in.Timeout, in.Logger).
				WithMetrics(in.Purchases, in.PointsSpent)
		},
	)
}

func registerHTTP(container *dig.Container) error {
	serverProvider := func(cfg *config.Config, mux http.Handler) *http.Server {
		return &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      15 * time.Second,
			IdleTimeout:       60 * time.Second,
		}
	}
	if err := provideAll(container,
		newRateLimitClock,
		newRateLimiter,
		newRateLimitMiddleware,
		handlers.New,
		handlers.NewLedgerUsecase,
		handlers.NewLedgerHandler,
		router.New,
		serverProvider,
	); err != nil {
		return err
	}
	return container.Provide(newPprofServer, dig.Name("pprof_server"))
}

// newPprofServer returns nil when the debug server is disabled.
func newPprofServer(cfg *config.Config) *http.Server {
	if !cfg.Pprof.Enabled {
		return nil
	}
	return &http.Server{
		Addr: fmt.Sprintf(":%d", cfg.Pprof.Port),
		Handler: pprofserver.Handler(pprofserver.Config{
			User: cfg.Pprof.User,
			Pass: cfg.Pprof.Pass,
		}),
		ReadHeaderTimeout: 5 * time.Second,
	}
}
