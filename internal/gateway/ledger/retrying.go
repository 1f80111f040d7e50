package ledger

import (
	"context"
	"errors"
	"net"
	"time"

	"github.com/bennett-mcdowell/F25-Team03/internal/domain"
	"github.com/bennett-mcdowell/F25-Team03/internal/logx"
)

type gateway interface {
	Sponsors(ctx context.Context) ([]domain.SponsorBalance, error)
	Purchase(ctx context.Context, sponsorID int64, items []domain.CartItem) (domain.PurchaseResult, error)
	CancelOrder(ctx context.Context, orderID int64) (domain.CancelResult, error)
}

type counter interface {
	Inc()
}

// RetryConfig describes RetryingGateway behavior.
type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

// RetryingGateway retries read-only ledger calls with exponential backoff.
// Purchase and CancelOrder move points, so they pass through untouched: the
// ledger offers no idempotency key and a blind retry could double-settle.
type RetryingGateway struct {
	next    gateway
	logger  logx.Logger
	retries counter
	cfg     RetryConfig
}

// NewRetryingGateway wraps next with retrying reads.
func NewRetryingGateway(next gateway, logger logx.Logger, retries counter, cfg RetryConfig) *RetryingGateway {
	if next == nil {
		return nil
	}
	if logger == nil {
		logger = logx.Nop()
	}
	return &RetryingGateway{next: next, logger: logger, retries: retries, cfg: cfg}
}

// Sponsors fetches balances, retrying transient failures.
func (g *RetryingGateway) Sponsors(ctx context.Context) ([]domain.SponsorBalance, error) {
	var lastErr error
	for attempt := 1; attempt <= g.cfg.MaxAttempts; attempt++ {
		sponsors, err := g.next.Sponsors(ctx)
		if err == nil {
			return sponsors, nil
		}
		lastErr = err

		if ctx.Err() != nil || attempt == g.cfg.MaxAttempts || !isRetryable(err) {
			break
		}

		delay := backoff(g.cfg.BaseDelay, g.cfg.MaxDelay, attempt)
		if g.retries != nil {
			g.retries.Inc()
		}
		g.logger.Warn("ledger gateway retry",
			logx.String("method", "Sponsors"),
			logx.Int("attempt", attempt),
			logx.Duration("delay", delay),
			logx.Any("err", err),
		)
		if !sleepWithContext(ctx, delay) {
			break
		}
	}
	return nil, lastErr
}

// Purchase is forwarded without retrying: it has side effects.
func (g *RetryingGateway) Purchase(ctx context.Context, sponsorID int64, items []domain.CartItem) (domain.PurchaseResult, error) {
	return g.next.Purchase(ctx, sponsorID, items)
}

// CancelOrder is forwarded without retrying: it has side effects.
func (g *RetryingGateway) CancelOrder(ctx context.Context, orderID int64) (domain.CancelResult, error) {
	return g.next.CancelOrder(ctx, orderID)
}

// isRetryable reports whether the failure is transient.
func isRetryable(err error) bool {
	var se *StatusError
	if errors.As(err, &se) {
		switch {
		case se.Code == 429:
			return true
		case se.Code >= 500:
			return true
		default:
			return false
		}
	}
	var ne net.Error
	return errors.As(err, &ne)
}

// backoff computes the retry delay.
func backoff(base, max time.Duration, attempt int) time.Duration {
	d := base << (attempt - 1)
	if d > max {
		return max
	}
	return d
}

func sleepWithContext(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return true
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
