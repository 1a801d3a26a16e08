package application

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/sagakit/order-system/order-service/domain"
	"github.com/sagakit/order-system/order-service/mocks"
	"github.com/sagakit/order-system/shared/models"
	"github.com/sagakit/order-system/shared/saga"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCreateOrder_Execute(t *testing.T) {
	tests := []struct {
		name          string
		command       *CreateOrderCommand
		setupMocks    func(*mocks.MockOrderRepository)
		expectedError string
	}{
		{
			name: "successful order creation",
			command: &CreateOrderCommand{
				ProductID: "sku-1",
				Quantity:  3,
				UserID:    "user-1",
			},
			setupMocks: func(repo *mocks.MockOrderRepository) {
				repo.EXPECT().Insert(mock.Anything, mock.AnythingOfType("*saga.Order")).
					Run(func(ctx context.Context, order *saga.Order) {
						order.ID = models.ID(7)
					}).Return(nil).Once()
			},
		},
		{
			name: "missing product ID",
			command: &CreateOrderCommand{
				Quantity: 3,
				UserID:   "user-1",
			},
			setupMocks:    func(repo *mocks.MockOrderRepository) {},
			expectedError: "product ID is required",
		},
		{
			name: "missing user ID",
			command: &CreateOrderCommand{
				ProductID: "sku-1",
				Quantity:  3,
			},
			setupMocks:    func(repo *mocks.MockOrderRepository) {},
			expectedError: "user ID is required",
		},
		{
			name: "zero quantity",
			command: &CreateOrderCommand{
				ProductID: "sku-1",
				Quantity:  0,
				UserID:    "user-1",
			},
			setupMocks:    func(repo *mocks.MockOrderRepository) {},
			expectedError: "quantity must be positive",
		},
		{
			name: "negative quantity",
			command: &CreateOrderCommand{
				ProductID: "sku-1",
				Quantity:  -5,
				UserID:    "user-1",
			},
			setupMocks:    func(repo *mocks.MockOrderRepository) {},
			expectedError: "quantity must be positive",
		},
		{
			name: "repository insert error",
			command: &CreateOrderCommand{
				ProductID: "sku-1",
				Quantity:  3,
				UserID:    "user-1",
			},
			setupMocks: func(repo *mocks.MockOrderRepository) {
				repo.EXPECT().Insert(mock.Anything, mock.AnythingOfType("*saga.Order")).
					Return(errors.New("database error")).Once()
			},
			expectedError: "failed to insert order",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := mocks.NewMockOrderRepository(t)
			tt.setupMocks(mockRepo)

			useCase := NewCreateOrder(mockRepo)
			order, err := useCase.Execute(context.Background(), tt.command)

			if tt.expectedError != "" {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectedError)
				assert.Nil(t, order)
				return
			}
			assert.NoError(t, err)
			assert.NotNil(t, order)
			assert.Equal(t, saga.OrderStatusPending, order.Status)
			assert.False(t, order.ID.IsZero())
		})
	}
}

func TestCreateOrder_ValidationFailuresAreClientErrors(t *testing.T) {
	useCase := NewCreateOrder(mocks.NewMockOrderRepository(t))

	_, err := useCase.Execute(context.Background(), &CreateOrderCommand{
		ProductID: "sku-1",
		Quantity:  -1,
		UserID:    "user-1",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidRequest)
}
