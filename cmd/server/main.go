// Command server runs the trade/cargo reconciliation service: the inbound
// VAKT consumer and the REST API in one process.
package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"golang.org/x/sync/errgroup"

	cargohandler "tradecargo/internal/cargo/handler"
	cargoservice "tradecargo/internal/cargo/service"
	cargostore "tradecargo/internal/cargo/store"
	cargovalidator "tradecargo/internal/cargo/validator"
	"tradecargo/internal/clients/counterparty"
	"tradecargo/internal/clients/documents"
	"tradecargo/internal/clients/members"
	"tradecargo/internal/clients/notification"
	"tradecargo/internal/clients/tradefinance"
	"tradecargo/internal/events"
	"tradecargo/internal/events/consumer"
	"tradecargo/internal/events/journal"
	"tradecargo/internal/events/processor"
	"tradecargo/internal/events/publisher"
	apphttp "tradecargo/internal/http"
	"tradecargo/internal/platform/config"
	"tradecargo/internal/platform/httpserver"
	"tradecargo/internal/platform/jwt"
	"tradecargo/internal/platform/kafka"
	"tradecargo/internal/platform/logger"
	"tradecargo/internal/platform/metrics"
	platformredis "tradecargo/internal/platform/redis"
	tradehandler "tradecargo/internal/trade/handler"
	tradeservice "tradecargo/internal/trade/service"
	tradestore "tradecargo/internal/trade/store"
	tradevalidator "tradecargo/internal/trade/validator"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.FromEnv()
	log := logger.New()
	m := metrics.New()

	if cfg.CompanyStaticID == "" {
		return errors.New("COMPANY_STATIC_ID is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Stores: Postgres when configured, in-memory otherwise. The memory pair
	// keeps local development and tests free of infrastructure.
	var (
		trades       tradeservice.Store
		cargos       cargoservice.Store
		inboundLog   journal.Journal = journal.Nop{}
		healthChecks                 = map[string]func() error{}
	)
	if cfg.PostgresURL != "" {
		db, err := sql.Open("postgres", cfg.PostgresURL)
		if err != nil {
			return fmt.Errorf("open postgres: %w", err)
		}
		defer db.Close()
		if err := db.PingContext(ctx); err != nil {
			return fmt.Errorf("ping postgres: %w", err)
		}
		trades = tradestore.NewPostgres(db)
		cargos = cargostore.NewPostgres(db)
		healthChecks["postgres"] = func() error { return db.Ping() }

		pgJournal, err := journal.NewPostgres(ctx, cfg.PostgresURL, log)
		if err != nil {
			return fmt.Errorf("open journal: %w", err)
		}
		defer pgJournal.Close()
		inboundLog = pgJournal
	} else {
		log.Warn("no POSTGRES_URL configured, using in-memory stores")
		trades = tradestore.NewMemoryStore()
		cargos = cargostore.NewMemoryStore()
	}

	redisClient, err := platformredis.New(cfg.Redis)
	if err != nil {
		return fmt.Errorf("connect redis: %w", err)
	}
	var memberCache members.Cache
	if redisClient != nil {
		defer redisClient.Close()
		memberCache = members.NewRedisCache(redisClient)
		healthChecks["redis"] = func() error { return redisClient.Health(context.Background()) }
	}

	// Collaborator clients.
	directory := members.New(cfg.MembersURL, memberCache, log)
	counterparties := counterparty.New(cfg.CounterpartyURL)
	notifier := notification.New(cfg.NotificationURL)
	docCatalog := documents.New(cfg.DocumentsURL)
	lcProvider := tradefinance.New(cfg.TradeFinanceURL)

	// Kafka.
	if err := kafka.EnsureTopics(ctx, cfg.KafkaBrokers, cfg.InboundTopic, cfg.InternalTopic); err != nil {
		return fmt.Errorf("ensure topics: %w", err)
	}
	producer, err := kafka.NewProducer(cfg.KafkaBrokers)
	if err != nil {
		return err
	}
	defer producer.Close()
	source, err := kafka.NewConsumer(cfg.KafkaBrokers, cfg.ConsumerGroup, cfg.InboundTopic)
	if err != nil {
		return err
	}
	defer source.Close()

	pub := publisher.NewKafka(producer, cfg.InternalTopic, m, log)

	// Inbound processing.
	tradeProc := processor.NewTradeProcessor(
		trades, directory, counterparties, notifier, pub, m, cfg.CompanyStaticID, log)
	cargoProc := processor.NewCargoProcessor(cargos, trades, notifier, pub, m, log)
	consume := consumer.New(source, producer, map[string]consumer.MessageProcessor{
		events.MessageTypeTradeData: tradeProc,
		events.MessageTypeCargoData: cargoProc,
	}, inboundLog, m, cfg, log)

	// REST API.
	tradeSvc := tradeservice.New(trades, cargos,
		tradevalidator.New(cfg.CompanyStaticID, docCatalog), lcProvider, pub, cfg.CompanyStaticID, log)
	cargoSvc := cargoservice.New(cargos, trades, cargovalidator.New(), pub, log)

	router := apphttp.NewRouter(apphttp.Deps{
		Trades:       tradehandler.New(tradeSvc),
		Cargos:       cargohandler.New(cargoSvc),
		Validator:    jwt.NewValidator(cfg.JWTSigningKey),
		Metrics:      m,
		Logger:       log,
		HealthChecks: healthChecks,
	})
	server := httpserver.New(cfg.Addr, router)

	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		return consume.Run(ctx)
	})
	group.Go(func() error {
		log.Info("http server listening", "addr", cfg.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	group.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	return group.Wait()
}
