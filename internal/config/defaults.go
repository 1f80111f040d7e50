package config

import "time"

const defaultPort = 8080

var defaultDB = DB{
	Host: "127.0.0.1",
	Port: "5432",
	User: "rewards",
	Pass: "rewards",
	Name: "rewards_db",
}

var defaultLedger = Ledger{
	BaseURL:     "http://localhost:8080",
	Timeout:     5 * time.Second,
	MaxAttempts: 4,
	BaseDelay:   150 * time.Millisecond,
	MaxDelay:    2 * time.Second,
}

const (
	defaultKafkaGroupID = "rewards-order-events"
	defaultKafkaTopic   = "order-events"
)

var defaultRateLimit = RateLimit{
	Enabled:    false,
	Rate:       50,
	Burst:      100,
	TTL:        10 * time.Minute,
	MaxBuckets: 10000,
}

var defaultPprof = Pprof{
	Enabled: false,
	Port:    6060,
}

var defaultCart = Cart{
	File:     "cart.json",
	DriverID: 0,
}

// DefaultPort returns the default port.
func DefaultPort() int { return defaultPort }

// DefaultDB returns the default database settings.
func DefaultDB() DB { return defaultDB }

// DefaultLedger returns the default ledger gateway settings.
func DefaultLedger() Ledger { return defaultLedger }

// DefaultKafkaGroupID returns the default consumer group ID.
func DefaultKafkaGroupID() string { return defaultKafkaGroupID }

// DefaultKafkaTopic returns the default order-events topic.
func DefaultKafkaTopic() string { return defaultKafkaTopic }

// DefaultRateLimit returns the default rate limiter settings.
func DefaultRateLimit() RateLimit { return defaultRateLimit }

// DefaultPprof returns the default pprof server settings.
func DefaultPprof() Pprof { return defaultPprof }

// DefaultCart returns the default client cart settings.
func DefaultCart() Cart { return defaultCart }
