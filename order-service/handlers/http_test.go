package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/sagakit/order-system/order-service/application"
	"github.com/sagakit/order-system/order-service/mocks"
	"github.com/sagakit/order-system/shared/models"
	"github.com/sagakit/order-system/shared/saga"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newRouter(t *testing.T, setup func(*mocks.MockOrderRepository)) *chi.Mux {
	repo := mocks.NewMockOrderRepository(t)
	if setup != nil {
		setup(repo)
	}
	h := NewOrderHandlers(application.NewCreateOrder(repo), application.NewGetOrder(repo))

	r := chi.NewRouter()
	h.RegisterRoutes(r)
	return r
}

func TestCreateOrderHTTP(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMocks     func(*mocks.MockOrderRepository)
		expectedStatus int
	}{
		{
			name: "valid order",
			body: `{"product_id": "sku-1", "quantity": 3, "user_id": "user-1"}`,
			setupMocks: func(repo *mocks.MockOrderRepository) {
				repo.EXPECT().Insert(mock.Anything, mock.Anything).Return(nil).Once()
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "zero quantity rejected at ingress",
			body:           `{"product_id": "sku-1", "quantity": 0, "user_id": "user-1"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "negative quantity rejected at ingress",
			body:           `{"product_id": "sku-1", "quantity": -2, "user_id": "user-1"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing product",
			body:           `{"quantity": 3, "user_id": "user-1"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid body",
			body:           `{not json`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newRouter(t, tt.setupMocks)

			req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedStatus == http.StatusCreated {
				var order saga.Order
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&order))
				assert.Equal(t, saga.OrderStatusPending, order.Status)
			}
		})
	}
}

func TestGetOrderHTTP(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		setupMocks     func(*mocks.MockOrderRepository)
		expectedStatus int
	}{
		{
			name: "existing order",
			path: "/orders/7",
			setupMocks: func(repo *mocks.MockOrderRepository) {
				repo.EXPECT().FindByID(mock.Anything, models.ID(7)).
					Return(&saga.Order{ID: models.ID(7), Status: saga.OrderStatusCompleted}, nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "unknown order",
			path: "/orders/99",
			setupMocks: func(repo *mocks.MockOrderRepository) {
				repo.EXPECT().FindByID(mock.Anything, models.ID(99)).Return(nil, nil).Once()
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "malformed id",
			path:           "/orders/abc",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newRouter(t, tt.setupMocks)

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}
