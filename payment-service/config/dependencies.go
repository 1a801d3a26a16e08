package config

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/sagakit/order-system/payment-service/application"
	"github.com/sagakit/order-system/payment-service/handlers"
	"github.com/sagakit/order-system/payment-service/infrastructure"
	"github.com/sagakit/order-system/shared/cdc"
	"github.com/sagakit/order-system/shared/kafka"
	"github.com/sagakit/order-system/shared/models"
	"github.com/sagakit/order-system/shared/telemetry"
)

type Dependencies struct {
	DB *sqlx.DB

	PaymentRepository *infrastructure.PostgresPaymentRepository

	ProcessPayment    *application.ProcessPayment
	CompensatePayment *application.CompensatePayment

	EventHandlers *handlers.PaymentEventHandlers

	OrderConsumer   *kafka.Consumer
	PaymentProducer *kafka.Producer

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
		deps.PaymentProducer = kafka.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.PaymentTopic)
		emitter = cdc.NewEmitter(deps.PaymentProducer, "payments")
	}

	deps.PaymentRepository = infrastructure.NewPostgresPaymentRepository(db, emitter)

	unitPrice, err := models.ParseMoney(cfg.Gateway.UnitPrice)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("invalid unit price: %w", err)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	chargeGateway := infrastructure.NewSimulatedPaymentGateway(cfg.Gateway.ChargeSuccessRate, rng)
	refundGateway := infrastructure.NewSimulatedRefundGateway(cfg.Gateway.RefundSuccessRate, rand.New(rand.NewSource(time.Now().UnixNano()+1)))
	pricer := infrastructure.NewFlatPricer(unitPrice)

	deps.ProcessPayment = application.NewProcessPayment(deps.PaymentRepository, chargeGateway, pricer)
	deps.CompensatePayment = application.NewCompensatePayment(deps.PaymentRepository, refundGateway)

	deps.EventHandlers = handlers.NewPaymentEventHandlers(deps.ProcessPayment, deps.CompensatePayment, deps.Telemetry)

	deps.OrderConsumer = kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.OrderTopic)

	return deps, nil
}

// Close releases all held resources.
func (d *Dependencies) Close() error {
	if d.TelemetryShutdown != nil {
		d.TelemetryShutdown()
	}
	if d.PaymentProducer != nil {
		d.PaymentProducer.Close()
	}
	if d.DB != nil {
		return d.DB.Close()
	}
	return nil
}
