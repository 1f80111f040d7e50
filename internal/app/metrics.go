package app

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"github.com/bennett-mcdowell/F25-Team03/internal/metrics"
)

type metricsOut struct {
	dig.Out

	RateLimitExceededTotal prometheus.Counter `name:"rate_limit_exceeded_total"`
	PointsSpentTotal       prometheus.Counter `name:"points_spent_total"`
	PurchasesTotal         *prometheus.CounterVec
}

// provideMetrics registers the service counters on the default registerer.
// A collector that is already registered is reused, so rebuilding the
// container in tests does not fail.
func provideMetrics() (metricsOut, error) {
	rateLimit, err := registerCounter(metrics.NewRateLimitExceededTotal(), "rate_limit_exceeded_total")
	if err != nil {
		return metricsOut{}, err
	}
	pointsSpent, err := registerCounter(metrics.NewPointsSpentTotal(), "points_spent_total")
	if err != nil {
		return metricsOut{}, err
	}
	purchases, err := registerCounterVec(metrics.NewPurchasesTotal(), "purchases_total")
	if err != nil {
		return metricsOut{}, err
	}
	return metricsOut{
		RateLimitExceededTotal: rateLimit,
		PointsSpentTotal:       pointsSpent,
		PurchasesTotal:         purchases,
	}, nil
}

func registerCounter(c prometheus.Counter, name string) (prometheus.Counter, error) {
	if err := prometheus.DefaultRegisterer.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(prometheus.Counter); ok {
				return existing, nil
			}
		}
		return nil, fmt.Errorf("register %s: %w", name, err)
	}
	return c, nil
}

func registerCounterVec(c *prometheus.CounterVec, name string) (*prometheus.CounterVec, error) {
	if err := prometheus.DefaultRegisterer.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
		}
		return nil, fmt.Errorf("register %s: %w", name, err)
	}
	return c, nil
}
