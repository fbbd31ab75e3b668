package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// AckPolicy controls what the consumer does with a message whose processing
// failed. The default mirrors the upstream VAKT integration: always ack, so a
// permanently failing message is dropped rather than poisoning the queue.
type AckPolicy string

const (
	AckAlways  AckPolicy = "always"
	AckRequeue AckPolicy = "requeue"
)

// Config captures everything main needs to wire the service. The owning
// company's static ID is threaded through constructors explicitly; nothing
// below main reads the environment.
type Config struct {
	Addr            string
	CompanyStaticID string
	JWTSigningKey   string

	PostgresURL string
	Redis       RedisConfig

	KafkaBrokers  []string
	InboundTopic  string
	InternalTopic string
	ConsumerGroup string

	PollInterval       time.Duration
	AckPolicy          AckPolicy
	ConsumeMaxAttempts int

	MembersURL      string
	CounterpartyURL string
	NotificationURL string
	DocumentsURL    string
	TradeFinanceURL string
}

// RedisConfig holds connection tuning for the member-directory cache.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// FromEnv builds a Config from environment variables so main stays lean.
func FromEnv() Config {
	return Config{
		Addr:            envOr("TRADE_CARGO_ADDR", ":8080"),
		CompanyStaticID: os.Getenv("COMPANY_STATIC_ID"),
		JWTSigningKey:   envOr("JWT_SIGNING_KEY", "dev-secret-key-change-in-production"),

		PostgresURL: os.Getenv("POSTGRES_URL"),
		Redis: RedisConfig{
			URL:          os.Getenv("REDIS_URL"),
			PoolSize:     envInt("REDIS_POOL_SIZE", 10),
			MinIdleConns: envInt("REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  envDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  envDuration("REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: envDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		},

		KafkaBrokers:  strings.Split(envOr("KAFKA_BROKERS", "localhost:9092"), ","),
		InboundTopic:  envOr("INBOUND_TOPIC", "vakt.trade-cargo.inbound"),
		InternalTopic: envOr("INTERNAL_TOPIC", "trade-cargo.internal"),
		ConsumerGroup: envOr("CONSUMER_GROUP", "api-trade-cargo"),

		PollInterval:       envDuration("POLL_INTERVAL", 100*time.Millisecond),
		AckPolicy:          AckPolicy(envOr("ACK_POLICY", string(AckAlways))),
		ConsumeMaxAttempts: envInt("CONSUME_MAX_ATTEMPTS", 3),

		MembersURL:      envOr("MEMBERS_URL", "http://api-registry:8080"),
		CounterpartyURL: envOr("COUNTERPARTY_URL", "http://api-coverage:8080"),
		NotificationURL: envOr("NOTIFICATION_URL", "http://api-notif:8080"),
		DocumentsURL:    envOr("DOCUMENTS_URL", "http://api-documents:8080"),
		TradeFinanceURL: envOr("TRADE_FINANCE_URL", "http://api-trade-finance:8080"),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
