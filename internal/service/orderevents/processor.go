package orderevents

import (
	"context"
	"errors"

	"github.com/bennett-mcdowell/F25-Team03/internal/apperr"
	"github.com/bennett-mcdowell/F25-Team03/internal/domain"
	"github.com/bennett-mcdowell/F25-Team03/internal/logx"
)

// Processor applies order lifecycle events to the ledger. Events for unknown
// orders and transitions the lifecycle forbids are skipped, not retried.
type Processor struct {
	ledger  LedgerPort
	logger  logx.Logger
	factory *actionFactory
}

// NewProcessor creates a new orderevents.Processor
func NewProcessor(ledgerSvc LedgerPort, logger logx.Logger) *Processor {
	p := &Processor{
		ledger: ledgerSvc,
		logger: logger,
	}
	p.factory = newActionFactory(p.onTransition)
	return p
}

// Handle processes a single orderevents.Event
func (p *Processor) Handle(ctx context.Context, e Event) error {
	if p.factory == nil {
		return nil
	}
	fn, ok := p.factory.get(e.Status)
	if !ok {
		p.logger.Debug("unknown event status skipped",
			logx.Int64("order_id", e.OrderID),
			logx.String("status", e.Status),
		)
		return nil
	}
	return fn(ctx, e)
}

func (p *Processor) onTransition(ctx context.Context, e Event, status string) error {
	_, err := p.ledger.UpdateStatus(ctx, e.OrderID, domain.OrderStatus(status))
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		p.logger.Warn("event for unknown order skipped",
			logx.Int64("order_id", e.OrderID),
			logx.String("status", status),
		)
		return nil
	case errors.Is(err, apperr.ErrConflict):
		p.logger.Warn("forbidden transition skipped",
			logx.Int64("order_id", e.OrderID),
			logx.String("status", status),
		)
		return nil
	}
	return err
}
