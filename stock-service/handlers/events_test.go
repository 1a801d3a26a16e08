package handlers

import (
	"context"
	"testing"

	"github.com/sagakit/order-system/shared/models"
	"github.com/sagakit/order-system/shared/saga"
	"github.com/sagakit/order-system/stock-service/application"
	"github.com/sagakit/order-system/stock-service/mocks"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newHandlers(t *testing.T, setup func(*mocks.MockReservationRepository, *mocks.MockStockGateway)) *StockEventHandlers {
	repo := mocks.NewMockReservationRepository(t)
	gateway := mocks.NewMockStockGateway(t)
	if setup != nil {
		setup(repo, gateway)
	}
	return NewStockEventHandlers(application.NewReserveStock(repo, gateway), nil)
}

func TestHandleOrderEvent(t *testing.T) {
	tests := []struct {
		name       string
		payload    string
		setupMocks func(*mocks.MockReservationRepository, *mocks.MockStockGateway)
	}{
		{
			name:    "awaiting stock order is reserved",
			payload: `{"after": {"id": 7, "product_id": "sku-1", "quantity": 2, "user_id": "u1", "status": "AWAITING_STOCK"}}`,
			setupMocks: func(repo *mocks.MockReservationRepository, gateway *mocks.MockStockGateway) {
				repo.EXPECT().FindByOrderID(mock.Anything, models.ID(7)).Return(nil, nil).Once()
				gateway.EXPECT().Reserve(mock.Anything, "sku-1", 2).Return(true, nil).Once()
				repo.EXPECT().Insert(mock.Anything, mock.MatchedBy(func(r *saga.StockReservation) bool {
					return r.Status == saga.ReservationStatusReserved
				})).Return(true, nil).Once()
			},
		},
		{
			name:    "pending order is not for this reactor",
			payload: `{"after": {"id": 7, "status": "PENDING"}}`,
		},
		{
			name:    "compensating order is not for this reactor",
			payload: `{"after": {"id": 7, "status": "COMPENSATING_PAYMENT"}}`,
		},
		{
			name:    "deletion is dropped",
			payload: `{"after": null}`,
		},
		{
			name:    "malformed envelope is dropped",
			payload: `{{`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHandlers(t, tt.setupMocks)

			err := h.HandleOrderEvent(context.Background(), kafkago.Message{Value: []byte(tt.payload)})

			assert.NoError(t, err)
		})
	}
}
