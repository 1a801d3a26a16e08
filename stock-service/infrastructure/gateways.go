package infrastructure

import (
	"context"
	"math/rand"
	"sync"
)

// SimulatedStockGateway stands in for a warehouse system. Quantities
// above the bulk threshold are always rejected; below it, a configurable
// fraction of reservations succeed.
type SimulatedStockGateway struct {
	mu            sync.Mutex
	rng           *rand.Rand
	successRate   float64
	bulkThreshold int
}

// NewSimulatedStockGateway creates a gateway that rejects quantities
// above bulkThreshold and otherwise approves successRate of requests,
// e.g. threshold 50 and rate 0.90.
func NewSimulatedStockGateway(successRate float64, bulkThreshold int, rng *rand.Rand) *SimulatedStockGateway {
	return &SimulatedStockGateway{rng: rng, successRate: successRate, bulkThreshold: bulkThreshold}
}

// Reserve decides whether the quantity can be held.
func (g *SimulatedStockGateway) Reserve(ctx context.Context, productID string, quantity int) (bool, error) {
	if quantity > g.bulkThreshold {
		return false, nil
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rng.Float64() < g.successRate, nil
}
