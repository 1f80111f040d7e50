package metrics

import "github.com/prometheus/client_golang/prometheus"

// NewRateLimitExceededTotal returns a Prometheus counter for the number of rejected HTTP requests due to rate limiting
func NewRateLimitExceededTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "rate_limit_exceeded_total",
		Help: "Total number of rejected HTTP requests due to rate limiting",
	})
}

// NewGatewayRetriesTotal returns a Prometheus counter for the number of retry attempts performed by the ledger gateway
func NewGatewayRetriesTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "gateway_retries_total",
		Help: "Total number of retry attempts performed by the ledger gateway",
	})
}

// NewPurchasesTotal returns a Prometheus counter vector for committed and rejected purchase transactions
func NewPurchasesTotal() *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "purchases_total",
		Help: "Total number of purchase transactions by outcome",
	}, []string{"outcome"})
}

// NewPointsSpentTotal returns a Prometheus counter for points debited by committed purchases
func NewPointsSpentTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "points_spent_total",
		Help: "Total points debited by committed purchases",
	})
}
