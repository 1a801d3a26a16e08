package config

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/sagakit/order-system/shared/cdc"
	"github.com/sagakit/order-system/shared/kafka"
	"github.com/sagakit/order-system/shared/telemetry"
	"github.com/sagakit/order-system/stock-service/application"
	"github.com/sagakit/order-system/stock-service/handlers"
	"github.com/sagakit/order-system/stock-service/infrastructure"
)

type Dependencies struct {
	DB *sqlx.DB

	ReservationRepository *infrastructure.PostgresReservationRepository

	ReserveStock *application.ReserveStock

	EventHandlers *handlers.StockEventHandlers

	OrderConsumer *kafka.Consumer
	StockProducer *kafka.Producer

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
		deps.StockProducer = kafka.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.StockTopic)
		emitter = cdc.NewEmitter(deps.StockProducer, "stock_reservations")
	}

	deps.ReservationRepository = infrastructure.NewPostgresReservationRepository(db, emitter)

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	gateway := infrastructure.NewSimulatedStockGateway(cfg.Warehouse.SuccessRate, cfg.Warehouse.BulkThreshold, rng)

	deps.ReserveStock = application.NewReserveStock(deps.ReservationRepository, gateway)
	deps.EventHandlers = handlers.NewStockEventHandlers(deps.ReserveStock, deps.Telemetry)

	deps.OrderConsumer = kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.OrderTopic)

	return deps, nil
}

// Close releases all held resources.
func (d *Dependencies) Close() error {
	if d.TelemetryShutdown != nil {
		d.TelemetryShutdown()
	}
	if d.StockProducer != nil {
		d.StockProducer.Close()
	}
	if d.DB != nil {
		return d.DB.Close()
	}
	return nil
}
