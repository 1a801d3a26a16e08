package application

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/sagakit/order-system/shared/models"
	"github.com/sagakit/order-system/shared/saga"
	"github.com/sagakit/order-system/stock-service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func awaitingStockOrder(quantity int) *saga.Order {
	return &saga.Order{
		ID:        models.ID(7),
		ProductID: "sku-1",
		Quantity:  quantity,
		UserID:    "user-1",
		Status:    saga.OrderStatusAwaitingStock,
	}
}

func TestReserveStock_Execute(t *testing.T) {
	orderID := models.ID(7)

	tests := []struct {
		name          string
		order         *saga.Order
		setupMocks    func(*mocks.MockReservationRepository, *mocks.MockStockGateway)
		expectedError string
	}{
		{
			name:  "successful hold records reserved",
			order: awaitingStockOrder(5),
			setupMocks: func(repo *mocks.MockReservationRepository, gateway *mocks.MockStockGateway) {
				repo.EXPECT().FindByOrderID(mock.Anything, orderID).Return(nil, nil).Once()
				gateway.EXPECT().Reserve(mock.Anything, "sku-1", 5).Return(true, nil).Once()
				repo.EXPECT().Insert(mock.Anything, mock.MatchedBy(func(r *saga.StockReservation) bool {
					return r.OrderID == orderID &&
						r.ProductID == "sku-1" &&
						r.Quantity == 5 &&
						r.Status == saga.ReservationStatusReserved
				})).Return(true, nil).Once()
			},
		},
		{
			name:  "rejected hold records failed",
			order: awaitingStockOrder(60),
			setupMocks: func(repo *mocks.MockReservationRepository, gateway *mocks.MockStockGateway) {
				repo.EXPECT().FindByOrderID(mock.Anything, orderID).Return(nil, nil).Once()
				gateway.EXPECT().Reserve(mock.Anything, "sku-1", 60).Return(false, nil).Once()
				repo.EXPECT().Insert(mock.Anything, mock.MatchedBy(func(r *saga.StockReservation) bool {
					return r.Status == saga.ReservationStatusFailed
				})).Return(true, nil).Once()
			},
		},
		{
			name:  "existing reservation makes redelivery a no-op",
			order: awaitingStockOrder(5),
			setupMocks: func(repo *mocks.MockReservationRepository, gateway *mocks.MockStockGateway) {
				repo.EXPECT().FindByOrderID(mock.Anything, orderID).
					Return(&saga.StockReservation{OrderID: orderID, Status: saga.ReservationStatusReserved}, nil).Once()
			},
		},
		{
			name:  "losing the insert race is a no-op",
			order: awaitingStockOrder(5),
			setupMocks: func(repo *mocks.MockReservationRepository, gateway *mocks.MockStockGateway) {
				repo.EXPECT().FindByOrderID(mock.Anything, orderID).Return(nil, nil).Once()
				gateway.EXPECT().Reserve(mock.Anything, "sku-1", 5).Return(true, nil).Once()
				repo.EXPECT().Insert(mock.Anything, mock.Anything).Return(false, nil).Once()
			},
		},
		{
			name:  "gateway error propagates for redelivery",
			order: awaitingStockOrder(5),
			setupMocks: func(repo *mocks.MockReservationRepository, gateway *mocks.MockStockGateway) {
				repo.EXPECT().FindByOrderID(mock.Anything, orderID).Return(nil, nil).Once()
				gateway.EXPECT().Reserve(mock.Anything, "sku-1", 5).
					Return(false, errors.New("warehouse down")).Once()
			},
			expectedError: "stock gateway error",
		},
		{
			name:  "repository lookup error propagates",
			order: awaitingStockOrder(5),
			setupMocks: func(repo *mocks.MockReservationRepository, gateway *mocks.MockStockGateway) {
				repo.EXPECT().FindByOrderID(mock.Anything, orderID).
					Return(nil, errors.New("database error")).Once()
			},
			expectedError: "failed to check existing reservation",
		},
		{
			name:  "insert error propagates",
			order: awaitingStockOrder(5),
			setupMocks: func(repo *mocks.MockReservationRepository, gateway *mocks.MockStockGateway) {
				repo.EXPECT().FindByOrderID(mock.Anything, orderID).Return(nil, nil).Once()
				gateway.EXPECT().Reserve(mock.Anything, "sku-1", 5).Return(true, nil).Once()
				repo.EXPECT().Insert(mock.Anything, mock.Anything).
					Return(false, errors.New("database error")).Once()
			},
			expectedError: "failed to insert reservation",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := mocks.NewMockReservationRepository(t)
			mockGateway := mocks.NewMockStockGateway(t)
			tt.setupMocks(mockRepo, mockGateway)

			useCase := NewReserveStock(mockRepo, mockGateway)
			err := useCase.Execute(context.Background(), tt.order)

			if tt.expectedError != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError)
				return
			}
			assert.NoError(t, err)
		})
	}
}
