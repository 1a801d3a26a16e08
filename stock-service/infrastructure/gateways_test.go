package infrastructure

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulatedStockGateway_BulkAlwaysRejected(t *testing.T) {
	gateway := NewSimulatedStockGateway(1.0, 50, rand.New(rand.NewSource(1)))

	for i := 0; i < 20; i++ {
		reserved, err := gateway.Reserve(context.Background(), "sku-1", 51)
		require.NoError(t, err)
		assert.False(t, reserved)
	}
}

func TestSimulatedStockGateway_ThresholdIsInclusive(t *testing.T) {
	gateway := NewSimulatedStockGateway(1.0, 50, rand.New(rand.NewSource(1)))

	reserved, err := gateway.Reserve(context.Background(), "sku-1", 50)
	require.NoError(t, err)
	assert.True(t, reserved)
}

func TestSimulatedStockGateway_RateZeroNeverReserves(t *testing.T) {
	gateway := NewSimulatedStockGateway(0.0, 50, rand.New(rand.NewSource(1)))

	for i := 0; i < 20; i++ {
		reserved, err := gateway.Reserve(context.Background(), "sku-1", 1)
		require.NoError(t, err)
		assert.False(t, reserved)
	}
}
