package infrastructure

import (
	"context"
	"math/rand"
	"sync"

	"github.com/sagakit/order-system/shared/models"
)

// SimulatedPaymentGateway approves a configurable fraction of charges.
// It stands in for a real processor; the decision is random per call.
type SimulatedPaymentGateway struct {
	mu          sync.Mutex
	rng         *rand.Rand
	successRate float64
}

// NewSimulatedPaymentGateway creates a gateway approving successRate of
// charges, e.g. 0.80 for the default processor behavior.
func NewSimulatedPaymentGateway(successRate float64, rng *rand.Rand) *SimulatedPaymentGateway {
	return &SimulatedPaymentGateway{rng: rng, successRate: successRate}
}

// Charge decides whether the amount is accepted.
func (g *SimulatedPaymentGateway) Charge(ctx context.Context, amount models.Money) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rng.Float64() < g.successRate, nil
}

// SimulatedRefundGateway approves a configurable fraction of refunds.
// Refunds are meant to almost always succeed; the rare rejection is what
// exercises the manual-intervention path.
type SimulatedRefundGateway struct {
	mu          sync.Mutex
	rng         *rand.Rand
	successRate float64
}

// NewSimulatedRefundGateway creates a gateway approving successRate of
// refunds, e.g. 0.98.
func NewSimulatedRefundGateway(successRate float64, rng *rand.Rand) *SimulatedRefundGateway {
	return &SimulatedRefundGateway{rng: rng, successRate: successRate}
}

// Refund decides whether the refund is accepted.
func (g *SimulatedRefundGateway) Refund(ctx context.Context, amount models.Money) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rng.Float64() < g.successRate, nil
}

// FlatPricer prices every product at the same unit price.
type FlatPricer struct {
	unitPrice models.Money
}

// NewFlatPricer creates a pricer returning unitPrice for every product.
func NewFlatPricer(unitPrice models.Money) *FlatPricer {
	return &FlatPricer{unitPrice: unitPrice}
}

// UnitPrice returns the flat unit price.
func (p *FlatPricer) UnitPrice(ctx context.Context, productID string) (models.Money, error) {
	return p.unitPrice, nil
}
