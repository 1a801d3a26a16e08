package application

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/sagakit/order-system/payment-service/mocks"
	"github.com/sagakit/order-system/shared/models"
	"github.com/sagakit/order-system/shared/saga"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func pendingOrder(quantity int) *saga.Order {
	return &saga.Order{
		ID:        models.ID(7),
		ProductID: "sku-1",
		Quantity:  quantity,
		UserID:    "user-1",
		Status:    saga.OrderStatusPending,
	}
}

func TestProcessPayment_Execute(t *testing.T) {
	orderID := models.ID(7)
	unitPrice := models.MoneyFromUnits(10)

	tests := []struct {
		name          string
		order         *saga.Order
		setupMocks    func(*mocks.MockPaymentRepository, *mocks.MockPaymentGateway, *mocks.MockPricer)
		expectedError string
	}{
		{
			name:  "approved charge records completed payment",
			order: pendingOrder(5),
			setupMocks: func(repo *mocks.MockPaymentRepository, gateway *mocks.MockPaymentGateway, pricer *mocks.MockPricer) {
				repo.EXPECT().FindByOrderID(mock.Anything, orderID).Return(nil, nil).Once()
				pricer.EXPECT().UnitPrice(mock.Anything, "sku-1").Return(unitPrice, nil).Once()
				gateway.EXPECT().Charge(mock.Anything, models.MoneyFromUnits(50)).Return(true, nil).Once()
				repo.EXPECT().Insert(mock.Anything, mock.MatchedBy(func(p *saga.Payment) bool {
					return p.OrderID == orderID &&
						p.Amount == models.MoneyFromUnits(50) &&
						p.Status == saga.PaymentStatusCompleted
				})).Return(true, nil).Once()
			},
		},
		{
			name:  "declined charge records failed payment",
			order: pendingOrder(2),
			setupMocks: func(repo *mocks.MockPaymentRepository, gateway *mocks.MockPaymentGateway, pricer *mocks.MockPricer) {
				repo.EXPECT().FindByOrderID(mock.Anything, orderID).Return(nil, nil).Once()
				pricer.EXPECT().UnitPrice(mock.Anything, "sku-1").Return(unitPrice, nil).Once()
				gateway.EXPECT().Charge(mock.Anything, models.MoneyFromUnits(20)).Return(false, nil).Once()
				repo.EXPECT().Insert(mock.Anything, mock.MatchedBy(func(p *saga.Payment) bool {
					return p.Status == saga.PaymentStatusFailed
				})).Return(true, nil).Once()
			},
		},
		{
			name:  "existing payment makes redelivery a no-op",
			order: pendingOrder(5),
			setupMocks: func(repo *mocks.MockPaymentRepository, gateway *mocks.MockPaymentGateway, pricer *mocks.MockPricer) {
				repo.EXPECT().FindByOrderID(mock.Anything, orderID).
					Return(&saga.Payment{OrderID: orderID, Status: saga.PaymentStatusCompleted}, nil).Once()
			},
		},
		{
			name:  "losing the insert race is a no-op",
			order: pendingOrder(5),
			setupMocks: func(repo *mocks.MockPaymentRepository, gateway *mocks.MockPaymentGateway, pricer *mocks.MockPricer) {
				repo.EXPECT().FindByOrderID(mock.Anything, orderID).Return(nil, nil).Once()
				pricer.EXPECT().UnitPrice(mock.Anything, "sku-1").Return(unitPrice, nil).Once()
				gateway.EXPECT().Charge(mock.Anything, mock.Anything).Return(true, nil).Once()
				repo.EXPECT().Insert(mock.Anything, mock.Anything).Return(false, nil).Once()
			},
		},
		{
			name:  "gateway error propagates for redelivery",
			order: pendingOrder(5),
			setupMocks: func(repo *mocks.MockPaymentRepository, gateway *mocks.MockPaymentGateway, pricer *mocks.MockPricer) {
				repo.EXPECT().FindByOrderID(mock.Anything, orderID).Return(nil, nil).Once()
				pricer.EXPECT().UnitPrice(mock.Anything, "sku-1").Return(unitPrice, nil).Once()
				gateway.EXPECT().Charge(mock.Anything, mock.Anything).
					Return(false, errors.New("gateway timeout")).Once()
			},
			expectedError: "payment gateway error",
		},
		{
			name:  "repository lookup error propagates",
			order: pendingOrder(5),
			setupMocks: func(repo *mocks.MockPaymentRepository, gateway *mocks.MockPaymentGateway, pricer *mocks.MockPricer) {
				repo.EXPECT().FindByOrderID(mock.Anything, orderID).
					Return(nil, errors.New("database error")).Once()
			},
			expectedError: "failed to check existing payment",
		},
		{
			name:  "insert error propagates",
			order: pendingOrder(5),
			setupMocks: func(repo *mocks.MockPaymentRepository, gateway *mocks.MockPaymentGateway, pricer *mocks.MockPricer) {
				repo.EXPECT().FindByOrderID(mock.Anything, orderID).Return(nil, nil).Once()
				pricer.EXPECT().UnitPrice(mock.Anything, "sku-1").Return(unitPrice, nil).Once()
				gateway.EXPECT().Charge(mock.Anything, mock.Anything).Return(true, nil).Once()
				repo.EXPECT().Insert(mock.Anything, mock.Anything).
					Return(false, errors.New("database error")).Once()
			},
			expectedError: "failed to insert payment",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := mocks.NewMockPaymentRepository(t)
			mockGateway := mocks.NewMockPaymentGateway(t)
			mockPricer := mocks.NewMockPricer(t)
			tt.setupMocks(mockRepo, mockGateway, mockPricer)

			useCase := NewProcessPayment(mockRepo, mockGateway, mockPricer)
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
