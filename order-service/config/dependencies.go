package config

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/sagakit/order-system/order-service/application"
	"github.com/sagakit/order-system/order-service/handlers"
	"github.com/sagakit/order-system/order-service/infrastructure"
	"github.com/sagakit/order-system/shared/cdc"
	"github.com/sagakit/order-system/shared/kafka"
	"github.com/sagakit/order-system/shared/telemetry"
)

type Dependencies struct {
	DB    *sqlx.DB
	Redis *redis.Client

	OrderRepository *infrastructure.PostgresOrderRepository

	CreateOrder *application.CreateOrder
	GetOrder    *application.GetOrder
	AdvanceSaga *application.AdvanceSaga

	OrderHandlers     *handlers.OrderHandlers
	SagaEventHandlers *handlers.SagaEventHandlers

	PaymentConsumer *kafka.Consumer
	StockConsumer   *kafka.Consumer
	OrderProducer   *kafka.Producer

	Telemetry         *telemetry.Telemetry
	TelemetryShutdown func()
}

func BuildDependencies(ctx context.Context, cfg *Config) (*Dependencies, error) {
	deps := &Dependencies{}

	db, err := sqlx.Connect("postgres", cfg.GetDatabaseURL())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	deps.DB = db

	if cfg.Telemetry.Enabled {
		tel, shutdown, err := telemetry.Init(ctx, telemetry.NewConfig(cfg.ServiceName, "1.0.0", cfg.Telemetry.OTLPEndpoint))
		if err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to init telemetry: %w", err)
		}
		deps.Telemetry = tel
		deps.TelemetryShutdown = shutdown
	}

	var emitter *cdc.Emitter
	if cfg.Kafka.EmitChangelog {
		deps.OrderProducer = kafka.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.OrderTopic)
		emitter = cdc.NewEmitter(deps.OrderProducer, "orders")
	}

	deps.OrderRepository = infrastructure.NewPostgresOrderRepository(db, emitter)

	var statusPublisher *infrastructure.RedisStatusPublisher
	if cfg.Redis.Enabled {
		deps.Redis = redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr})
		statusPublisher = infrastructure.NewRedisStatusPublisher(deps.Redis, cfg.Redis.StatusChannel)
	}

	deps.CreateOrder = application.NewCreateOrder(deps.OrderRepository)
	deps.GetOrder = application.NewGetOrder(deps.OrderRepository)
	if statusPublisher != nil {
		deps.AdvanceSaga = application.NewAdvanceSaga(deps.OrderRepository, statusPublisher)
	} else {
		deps.AdvanceSaga = application.NewAdvanceSaga(deps.OrderRepository, nil)
	}

	deps.OrderHandlers = handlers.NewOrderHandlers(deps.CreateOrder, deps.GetOrder)
	deps.SagaEventHandlers = handlers.NewSagaEventHandlers(deps.AdvanceSaga, deps.Telemetry)

	deps.PaymentConsumer = kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.PaymentTopic)
	deps.StockConsumer = kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.StockTopic)

	return deps, nil
}

// Close releases all held resources.
func (d *Dependencies) Close() error {
	if d.TelemetryShutdown != nil {
		d.TelemetryShutdown()
	}
	if d.OrderProducer != nil {
		d.OrderProducer.Close()
	}
	if d.Redis != nil {
		d.Redis.Close()
	}
	if d.DB != nil {
		return d.DB.Close()
	}
	return nil
}
