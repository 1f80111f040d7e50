package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// DB stores Postgres connection settings for the ledger store.
type DB struct {
	Host string
	Port string
	User string
	Pass string
	Name string
}

// DSN builds a pgx connection string.
func (d DB) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s", d.User, d.Pass, d.Host, d.Port, d.Name)
}

// Ledger stores ledger gateway settings used by the checkout client.
type Ledger struct {
	BaseURL     string
	Timeout     time.Duration
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

// Kafka stores order-events consumer settings. Empty brokers disable the
// consumer.
type Kafka struct {
	Brokers []string
	GroupID string
	Topic   string
}

// RateLimit stores HTTP rate limiter settings.
type RateLimit struct {
	Enabled    bool
	Rate       float64
	Burst      int
	TTL        time.Duration
	MaxBuckets int
}

// Pprof stores the debug server settings.
type Pprof struct {
	Enabled bool
	Port    int
	User    string
	Pass    string
}

// Cart stores client-side cart settings: where the snapshot lives and which
// driver the checkout CLI acts for.
type Cart struct {
	File     string
	DriverID int64
}

// Config stores all service settings.
type Config struct {
	Port      int
	DB        DB
	Ledger    Ledger
	Kafka     Kafka
	RateLimit RateLimit
	Pprof     Pprof
	Cart      Cart
}

// Load reads configuration in order: .env (if present) → environment → flags.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("warning: .env not loaded: %v", err)
	}

	cfg := &Config{
		Port:      envInt("PORT", DefaultPort()),
		DB:        loadDB(),
		Ledger:    loadLedger(),
		Kafka:     loadKafka(),
		RateLimit: loadRateLimit(),
		Pprof:     loadPprof(),
		Cart:      loadCart(),
	}

	pflag.IntVarP(&cfg.Port, "port", "p", cfg.Port, "port to listen on")
	pflag.Parse()

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid port: %d", cfg.Port)
	}
	if cfg.Ledger.MaxAttempts <= 0 {
		return nil, fmt.Errorf("invalid ledger max attempts: %d", cfg.Ledger.MaxAttempts)
	}
	return cfg, nil
}

func loadDB() DB {
	d := DefaultDB()
	d.Host = envStr("POSTGRES_HOST", d.Host)
	d.Port = envStr("POSTGRES_PORT", d.Port)
	d.User = envStr("POSTGRES_USER", d.User)
	d.Pass = envStr("POSTGRES_PASSWORD", d.Pass)
	d.Name = envStr("POSTGRES_DB", d.Name)
	return d
}

func loadLedger() Ledger {
	l := DefaultLedger()
	l.BaseURL = envStr("LEDGER_BASE_URL", l.BaseURL)
	l.Timeout = envDuration("LEDGER_TIMEOUT", l.Timeout)
	l.MaxAttempts = envInt("LEDGER_MAX_ATTEMPTS", l.MaxAttempts)
	l.BaseDelay = envDuration("LEDGER_BASE_DELAY", l.BaseDelay)
	l.MaxDelay = envDuration("LEDGER_MAX_DELAY", l.MaxDelay)
	return l
}

func loadKafka() Kafka {
	k := Kafka{
		GroupID: envStr("KAFKA_GROUP_ID", DefaultKafkaGroupID()),
		Topic:   envStr("KAFKA_TOPIC", DefaultKafkaTopic()),
	}
	if v := strings.TrimSpace(os.Getenv("KAFKA_BROKERS")); v != "" {
		for _, b := range strings.Split(v, ",") {
			if b = strings.TrimSpace(b); b != "" {
				k.Brokers = append(k.Brokers, b)
			}
		}
	}
	return k
}

func loadRateLimit() RateLimit {
	rl := DefaultRateLimit()
	rl.Enabled = envBool("RATE_LIMIT_ENABLED", rl.Enabled)
	rl.Rate = envFloat("RATE_LIMIT_RATE", rl.Rate)
	rl.Burst = envInt("RATE_LIMIT_BURST", rl.Burst)
	rl.TTL = envDuration("RATE_LIMIT_TTL", rl.TTL)
	rl.MaxBuckets = envInt("RATE_LIMIT_MAX_BUCKETS", rl.MaxBuckets)
	return rl
}

func loadPprof() Pprof {
	p := DefaultPprof()
	p.Enabled = envBool("PPROF_ENABLED", p.Enabled)
	p.Port = envInt("PPROF_PORT", p.Port)
	p.User = envStr("PPROF_USER", p.User)
	p.Pass = envStr("PPROF_PASSWORD", p.Pass)
	return p
}

func loadCart() Cart {
	c := DefaultCart()
	c.File = envStr("CART_FILE", c.File)
	c.DriverID = int64(envInt("DRIVER_ID", int(c.DriverID)))
	return c
}

func envStr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func envBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
