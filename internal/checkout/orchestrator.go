package checkout

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/bennett-mcdowell/F25-Team03/internal/apperr"
	"github.com/bennett-mcdowell/F25-Team03/internal/domain"
	"github.com/bennett-mcdowell/F25-Team03/internal/logx"
)

// GroupFailure records one rejected sponsor partition.
type GroupFailure struct {
	SponsorID int64
	Err       error
}

// Result aggregates the per-sponsor purchase responses of one checkout
// attempt. Groups that settled before another group failed stay settled;
// there is no compensating rollback across sponsors.
type Result struct {
	ItemsPurchased int
	TotalSpent     int64
	Accepted       []domain.PurchaseResult
	Failures       []GroupFailure

	// Balances holds the per-sponsor balances fetched after a fully
	// successful checkout. Nil when any group failed or the refresh did.
	Balances map[int64]int64
}

// Orchestrator turns a multi-sponsor cart into one purchase transaction per
// sponsor. Each transaction is atomic on the ledger side; the orchestrator
// only guarantees all-or-nothing per sponsor, not across sponsors.
type Orchestrator struct {
	gateway          LedgerGateway
	cart             PendingCart
	logger           logx.Logger
	operationTimeout time.Duration
}

// NewOrchestrator creates a checkout Orchestrator.
func NewOrchestrator(gw LedgerGateway, c PendingCart, logger logx.Logger, timeout time.Duration) *Orchestrator {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if logger == nil {
		logger = logx.Nop()
	}
	return &Orchestrator{gateway: gw, cart: c, logger: logger, operationTimeout: timeout}
}

// Checkouts derives the current checkout partitions against fresh balances,
// for display and pre-flight validation.
func (o *Orchestrator) Checkouts(ctx context.Context) ([]domain.SponsorCheckout, error) {
	balances, err := o.fetchBalances(ctx)
	if err != nil {
		return nil, err
	}
	return Compute(o.cart.Items(), balances), nil
}

// Submit validates every partition and, when all are sufficient, issues one
// purchase request per sponsor concurrently. The cart is cleared only when
// every request is accepted; any rejection leaves the cart intact so the
// failed sponsor's items can be retried.
func (o *Orchestrator) Submit(ctx context.Context) (Result, error) {
	ctx, cancel := context.WithTimeout(ctx, o.operationTimeout)
	defer cancel()

	items := o.cart.Items()
	if len(items) == 0 {
		return Result{}, apperr.ErrInvalid
	}

	balances, err := o.fetchBalances(ctx)
	if err != nil {
		return Result{}, err
	}

	groups := Compute(items, balances)
	if len(groups) == 0 {
		// nothing checkout-eligible, every item is display-only
		return Result{}, apperr.ErrInvalid
	}
	for _, g := range groups {
		if !g.Sufficient {
			// validated client-side to avoid a wasted round-trip
			return Result{}, &apperr.InsufficientBalanceError{
				SponsorID: g.SponsorID,
				Required:  g.TotalPoints,
				Available: g.Available,
			}
		}
	}

	type outcome struct {
		res domain.PurchaseResult
		err error
	}
	outcomes := make([]outcome, len(groups))

	var wg sync.WaitGroup
	for i, g := range groups {
		wg.Add(1)
		go func(i int, g domain.SponsorCheckout) {
			defer wg.Done()
			res, err := o.gateway.Purchase(ctx, g.SponsorID, g.Items)
			outcomes[i] = outcome{res: res, err: err}
		}(i, g)
	}
	wg.Wait()

	var result Result
	for i, out := range outcomes {
		if out.err != nil {
			result.Failures = append(result.Failures, GroupFailure{
				SponsorID: groups[i].SponsorID,
				Err:       out.err,
			})
			continue
		}
		result.Accepted = append(result.Accepted, out.res)
		result.ItemsPurchased += out.res.ItemsPurchased
		result.TotalSpent += out.res.TotalSpent
	}

	if len(result.Failures) > 0 {
		errs := make([]error, 0, len(result.Failures))
		for _, f := range result.Failures {
			errs = append(errs, f.Err)
		}
		o.logger.Warn("checkout partially rejected",
			logx.Int("accepted", len(result.Accepted)),
			logx.Int("rejected", len(result.Failures)),
		)
		return result, errors.Join(errs...)
	}

	if err := o.cart.Clear(); err != nil {
		// the purchases are committed, a stale snapshot must not fail checkout
		o.logger.Error("clear cart after checkout", logx.Any("err", err))
	}

	// committed balances changed, hand the caller a fresh copy
	refreshed, err := o.fetchBalances(ctx)
	if err != nil {
		o.logger.Warn("balance refresh after checkout", logx.Any("err", err))
	} else {
		result.Balances = refreshed
	}

	o.logger.Info("checkout committed",
		logx.Int("sponsors", len(groups)),
		logx.Int("items_purchased", result.ItemsPurchased),
		logx.Int64("total_spent", result.TotalSpent),
	)
	return result, nil
}

func (o *Orchestrator) fetchBalances(ctx context.Context) (map[int64]int64, error) {
	sponsors, err := o.gateway.Sponsors(ctx)
	if err != nil {
		return nil, err
	}
	balances := make(map[int64]int64, len(sponsors))
	for _, s := range sponsors {
		balances[s.SponsorID] = s.Balance
	}
	return balances, nil
}
