package app

import (
	"context"
	"fmt"

	"go.uber.org/dig"

	"github.com/bennett-mcdowell/F25-Team03/internal/config"
	"github.com/bennett-mcdowell/F25-Team03/internal/logx"
	"github.com/bennett-mcdowell/F25-Team03/internal/service/ledger"
	"github.com/bennett-mcdowell/F25-Team03/internal/service/orderevents"
	"github.com/bennett-mcdowell/F25-Team03/internal/transport/kafka"
)

// MustBuildWorkerContainer builds the DI container for the order-events
// worker: core, database, the ledger service and the Kafka consumer.
func (b *ContainerBuilder) MustBuildWorkerContainer(ctx context.Context) *dig.Container {
	container, err := b.buildWorker(ctx)
	if err != nil {
		b.logFatalf("failed to build worker container: %v", err)
	}
	return container
}

func (b *ContainerBuilder) buildWorker(ctx context.Context) (*dig.Container, error) {
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
	if err := registerWorker(container); err != nil {
		return nil, fmt.Errorf("worker: %w", err)
	}
	return container, nil
}

// MustBuildWorkerContainer builds and returns a new worker dig container
func MustBuildWorkerContainer(ctx context.Context) *dig.Container {
	return NewContainerBuilder().MustBuildWorkerContainer(ctx)
}

func registerWorker(container *dig.Container) error {
	return provideAll(container,
		func(svc *ledger.Service) orderevents.LedgerPort { return svc },
		orderevents.NewProcessor,
		func(p *orderevents.Processor) kafka.HandleFunc { return p.Handle },
		func(cfg *config.Config, logger logx.Logger, h kafka.HandleFunc) (*kafka.Consumer, error) {
			k := cfg.Kafka
			return kafka.NewConsumer(logger, k.Brokers, k.GroupID, k.Topic, h)
		},
	)
}
