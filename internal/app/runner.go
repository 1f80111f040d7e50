package app

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/dig"

	"github.com/bennett-mcdowell/F25-Team03/internal/logx"
)

type serversIn struct {
	dig.In

	Ctx    context.Context
	Pool   *pgxpool.Pool
	Logger logx.Logger
	Main   *http.Server
	Pprof  *http.Server `name:"pprof_server" optional:"true"`
}

// Runner runs the HTTP server
type Runner struct {
	runFn func(*dig.Container) error
}

// NewRunner returns a new Runner
func NewRunner() *Runner {
	return &Runner{runFn: run}
}

// MustRun starts the HTTP server using the provided DI container
func (r *Runner) MustRun(container *dig.Container) {
	err := r.runFn(container)
	if err == nil {
		return
	}
	logErr := container.Invoke(func(logger logx.Logger) {
		switch {
		case errors.Is(err, context.Canceled):
			logger.Info("shutdown requested, exiting")
		case errors.Is(err, context.DeadlineExceeded):
			logger.Info("startup aborted: startup timeout exceeded")
		default:
			log.Fatalf("run error: %v", err)
		}
	})
	if logErr != nil {
		log.Fatalf("run error: %v", err)
	}
}

func run(container *dig.Container) error {
	return container.Invoke(func(in serversIn) error {
		startServer(in.Main, in.Logger, "rewards-ledger")
		if in.Pprof != nil {
			startServer(in.Pprof, in.Logger, "pprof")
		}
		waitForShutdown(in.Ctx, in.Logger)
		gracefulShutdown(in.Main, in.Logger, 15*time.Second)
		if in.Pprof != nil {
			gracefulShutdown(in.Pprof, in.Logger, 5*time.Second)
		}
		closeResources(in.Pool, in.Main, in.Logger)
		return in.Ctx.Err()
	})
}

func startServer(server *http.Server, logger logx.Logger, name string) {
	go func() {
		logger.Info("server listening",
			logx.String("server", name),
			logx.String("addr", server.Addr),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen error: %v", err)
		}
	}()
}

func waitForShutdown(ctx context.Context, logger logx.Logger) {
	<-ctx.Done()
	logger.Info("shutting down rewards-ledger")
}

func gracefulShutdown(srv *http.Server, logger logx.Logger, timeout time.Duration) {
	shCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(shCtx); err != nil {
		logger.Error("graceful shutdown error", logx.Any("err", err))
	}
}

func closeResources(pool *pgxpool.Pool, server *http.Server, logger logx.Logger) {
	if err := server.Close(); err != nil {
		logger.Error("server close error", logx.Any("err", err))
	}
	if pool != nil {
		pool.Close()
	}
}
