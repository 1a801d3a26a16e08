package saga

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdvance(t *testing.T) {
	tests := []struct {
		name         string
		current      OrderStatus
		trigger      Trigger
		expectedNext OrderStatus
		expectedOK   bool
	}{
		{
			name:         "pending advances on payment completed",
			current:      OrderStatusPending,
			trigger:      TriggerPaymentCompleted,
			expectedNext: OrderStatusAwaitingStock,
			expectedOK:   true,
		},
		{
			name:         "pending fails on payment failed",
			current:      OrderStatusPending,
			trigger:      TriggerPaymentFailed,
			expectedNext: OrderStatusFailed,
			expectedOK:   true,
		},
		{
			name:         "pending fails on payment cancelled",
			current:      OrderStatusPending,
			trigger:      TriggerPaymentCancelled,
			expectedNext: OrderStatusFailed,
			expectedOK:   true,
		},
		{
			name:         "awaiting stock completes on reservation",
			current:      OrderStatusAwaitingStock,
			trigger:      TriggerStockReserved,
			expectedNext: OrderStatusCompleted,
			expectedOK:   true,
		},
		{
			name:         "awaiting stock compensates on reservation failure",
			current:      OrderStatusAwaitingStock,
			trigger:      TriggerStockFailed,
			expectedNext: OrderStatusCompensatingPayment,
			expectedOK:   true,
		},
		{
			name:         "awaiting stock fails on payment cancelled",
			current:      OrderStatusAwaitingStock,
			trigger:      TriggerPaymentCancelled,
			expectedNext: OrderStatusFailed,
			expectedOK:   true,
		},
		{
			name:         "compensating fails on payment cancelled",
			current:      OrderStatusCompensatingPayment,
			trigger:      TriggerPaymentCancelled,
			expectedNext: OrderStatusFailed,
			expectedOK:   true,
		},
		{
			name:       "pending rejects stock reserved",
			current:    OrderStatusPending,
			trigger:    TriggerStockReserved,
			expectedOK: false,
		},
		{
			name:       "awaiting stock rejects duplicate payment completed",
			current:    OrderStatusAwaitingStock,
			trigger:    TriggerPaymentCompleted,
			expectedOK: false,
		},
		{
			name:       "compensating rejects stock failed",
			current:    OrderStatusCompensatingPayment,
			trigger:    TriggerStockFailed,
			expectedOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, ok := Advance(tt.current, tt.trigger)

			assert.Equal(t, tt.expectedOK, ok)
			if tt.expectedOK {
				assert.Equal(t, tt.expectedNext, next)
			}
		})
	}
}

func TestAdvance_TerminalStatesAbsorb(t *testing.T) {
	triggers := []Trigger{
		TriggerPaymentCompleted,
		TriggerPaymentFailed,
		TriggerPaymentCancelled,
		TriggerStockReserved,
		TriggerStockFailed,
	}

	for _, terminal := range []OrderStatus{OrderStatusCompleted, OrderStatusFailed} {
		assert.True(t, terminal.IsTerminal())
		for _, trigger := range triggers {
			_, ok := Advance(terminal, trigger)
			assert.False(t, ok, "terminal status %s must reject trigger %s", terminal, trigger)
		}
	}
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, OrderStatusPending.IsTerminal())
	assert.False(t, OrderStatusAwaitingStock.IsTerminal())
	assert.False(t, OrderStatusCompensatingPayment.IsTerminal())
	assert.True(t, OrderStatusCompleted.IsTerminal())
	assert.True(t, OrderStatusFailed.IsTerminal())
}

func TestPaymentTrigger(t *testing.T) {
	tests := []struct {
		status          PaymentStatus
		expectedTrigger Trigger
		expectedOK      bool
	}{
		{PaymentStatusCompleted, TriggerPaymentCompleted, true},
		{PaymentStatusFailed, TriggerPaymentFailed, true},
		{PaymentStatusCancelled, TriggerPaymentCancelled, true},
		{PaymentStatus("UNKNOWN"), "", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			p := &Payment{Status: tt.status}
			trigger, ok := p.Trigger()

			assert.Equal(t, tt.expectedOK, ok)
			assert.Equal(t, tt.expectedTrigger, trigger)
		})
	}
}

func TestStockReservationTrigger(t *testing.T) {
	tests := []struct {
		status          ReservationStatus
		expectedTrigger Trigger
		expectedOK      bool
	}{
		{ReservationStatusReserved, TriggerStockReserved, true},
		{ReservationStatusFailed, TriggerStockFailed, true},
		{ReservationStatusCancelled, "", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			r := &StockReservation{Status: tt.status}
			trigger, ok := r.Trigger()

			assert.Equal(t, tt.expectedOK, ok)
			assert.Equal(t, tt.expectedTrigger, trigger)
		})
	}
}
