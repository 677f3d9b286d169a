package tests

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	httpapi "overcooked-orders/order-svc/internal/api/http"
	"overcooked-orders/order-svc/internal/domain"
	"overcooked-orders/order-svc/internal/mocks"
	"overcooked-orders/order-svc/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupTestRouter(orders *mocks.OrderServiceInterface, ratings *mocks.RatingServiceInterface) http.Handler {
	handler := httpapi.NewHandler(orders, ratings, domain.RoundHalfUp)
	return httpapi.NewRouter(handler, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func sampleOrder() domain.Order {
	return domain.Order{
		ID:           1,
		UserID:       42,
		RestaurantID: 10,
		Status:       domain.StatusPending,
		Subtotal:     dec("29.00"),
		DeliveryFee:  dec("2.99"),
		Tax:          dec("2.32"),
		GrandTotal:   dec("34.31"),
		Version:      1,
	}
}

func TestHandler_checkout(t *testing.T) {
	tests := []struct {
		name         string
		payload      string
		prepareMocks func(*mocks.OrderServiceInterface)
		expectedCode int
		expectedBody string
	}{
		{
			name:    "success",
			payload: `{"user_id":42,"restaurant_id":10,"items":[{"food_item_id":1,"quantity":2}],"delivery_address":"x","payment_method":"card"}`,
			prepareMocks: func(m *mocks.OrderServiceInterface) {
				m.On("Checkout", mock.Anything, mock.MatchedBy(func(r service.CheckoutRequest) bool {
					return r.UserID == 42 && len(r.Items) == 1 && r.Items[0].Quantity == 2
				})).Return(sampleOrder(), nil).Once()
			},
			expectedCode: http.StatusCreated,
			expectedBody: `"grand_total":"34.31"`,
		},
		{
			name:         "invalid_json",
			payload:      `bad json`,
			prepareMocks: func(m *mocks.OrderServiceInterface) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "missing_restaurant",
			payload:      `{"user_id":42,"items":[{"food_item_id":1,"quantity":2}]}`,
			prepareMocks: func(m *mocks.OrderServiceInterface) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: "Missing user_id or restaurant_id",
		},
		{
			name:    "below_minimum",
			payload: `{"user_id":42,"restaurant_id":10,"items":[{"food_item_id":2,"quantity":1}]}`,
			prepareMocks: func(m *mocks.OrderServiceInterface) {
				m.On("Checkout", mock.Anything, mock.Anything).
					Return(domain.Order{}, fmt.Errorf("%w: subtotal 4.00, minimum 15.00", domain.ErrBelowMinimumOrder)).Once()
			},
			expectedCode: http.StatusUnprocessableEntity,
			expectedBody: "your order is below this restaurant's minimum",
		},
		{
			name:    "restaurant_closed",
			payload: `{"user_id":42,"restaurant_id":11,"items":[{"food_item_id":4,"quantity":1}]}`,
			prepareMocks: func(m *mocks.OrderServiceInterface) {
				m.On("Checkout", mock.Anything, mock.Anything).
					Return(domain.Order{}, domain.ErrRestaurantClosed).Once()
			},
			expectedCode: http.StatusConflict,
			expectedBody: "not accepting orders",
		},
		{
			name:    "storage_down",
			payload: `{"user_id":42,"restaurant_id":10,"items":[{"food_item_id":1,"quantity":2}]}`,
			prepareMocks: func(m *mocks.OrderServiceInterface) {
				m.On("Checkout", mock.Anything, mock.Anything).
					Return(domain.Order{}, fmt.Errorf("%w: connection refused", domain.ErrStorageUnavailable)).Once()
			},
			expectedCode: http.StatusServiceUnavailable,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			orders := mocks.NewOrderServiceInterface(t)
			testCase.prepareMocks(orders)
			router := setupTestRouter(orders, mocks.NewRatingServiceInterface(t))

			req := httptest.NewRequest("POST", "/api/orders", bytes.NewBufferString(testCase.payload))
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)

			assert.Equal(t, testCase.expectedCode, recorder.Code)
			if testCase.expectedBody != "" {
				assert.Contains(t, recorder.Body.String(), testCase.expectedBody)
			}
			assert.NotContains(t, recorder.Body.String(), "connection refused")
		})
	}
}

func TestHandler_orderMutations(t *testing.T) {
	cancelled := sampleOrder()
	cancelled.Status = domain.StatusCancelled
	confirmed := sampleOrder()
	confirmed.Status = domain.StatusConfirmed

	tests := []struct {
		name         string
		method       string
		url          string
		payload      string
		prepareMocks func(*mocks.OrderServiceInterface)
		expectedCode int
		expectedBody string
	}{
		{
			name:   "get_order",
			method: "GET",
			url:    "/api/orders/1",
			prepareMocks: func(m *mocks.OrderServiceInterface) {
				m.On("Get", mock.Anything, 1).Return(sampleOrder(), nil).Once()
			},
			expectedCode: http.StatusOK,
			expectedBody: `"status":"pending"`,
		},
		{
			name:   "get_missing_order",
			method: "GET",
			url:    "/api/orders/99",
			prepareMocks: func(m *mocks.OrderServiceInterface) {
				m.On("Get", mock.Anything, 99).Return(domain.Order{}, domain.ErrOrderNotFound).Once()
			},
			expectedCode: http.StatusNotFound,
			expectedBody: "we could not find that order",
		},
		{
			name:   "cancel",
			method: "POST",
			url:    "/api/orders/1/cancel",
			prepareMocks: func(m *mocks.OrderServiceInterface) {
				m.On("Cancel", mock.Anything, 1).Return(cancelled, nil).Once()
			},
			expectedCode: http.StatusOK,
			expectedBody: `"status":"cancelled"`,
		},
		{
			name:   "cancel_twice",
			method: "POST",
			url:    "/api/orders/1/cancel",
			prepareMocks: func(m *mocks.OrderServiceInterface) {
				m.On("Cancel", mock.Anything, 1).Return(domain.Order{}, domain.ErrTerminalState).Once()
			},
			expectedCode: http.StatusConflict,
			expectedBody: "this order can no longer be changed",
		},
		{
			name:   "cancel_race_lost",
			method: "POST",
			url:    "/api/orders/1/cancel",
			prepareMocks: func(m *mocks.OrderServiceInterface) {
				m.On("Cancel", mock.Anything, 1).Return(domain.Order{}, domain.ErrConcurrentModification).Once()
			},
			expectedCode: http.StatusConflict,
			expectedBody: "please refresh",
		},
		{
			name:    "transition",
			method:  "POST",
			url:     "/api/orders/1/status",
			payload: `{"status":"confirmed"}`,
			prepareMocks: func(m *mocks.OrderServiceInterface) {
				m.On("Transition", mock.Anything, 1, domain.StatusConfirmed).Return(confirmed, nil).Once()
			},
			expectedCode: http.StatusOK,
			expectedBody: `"status":"confirmed"`,
		},
		{
			name:         "transition_unknown_status",
			method:       "POST",
			url:          "/api/orders/1/status",
			payload:      `{"status":"teleported"}`,
			prepareMocks: func(m *mocks.OrderServiceInterface) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:    "transition_illegal",
			method:  "POST",
			url:     "/api/orders/1/status",
			payload: `{"status":"delivered"}`,
			prepareMocks: func(m *mocks.OrderServiceInterface) {
				m.On("Transition", mock.Anything, 1, domain.StatusDelivered).
					Return(domain.Order{}, domain.ErrIllegalTransition).Once()
			},
			expectedCode: http.StatusConflict,
		},
		{
			name:   "reorder",
			method: "POST",
			url:    "/api/orders/1/reorder",
			prepareMocks: func(m *mocks.OrderServiceInterface) {
				cart := domain.NewCart()
				cart.AddOrAdjust(domain.FoodItem{ID: 1, RestaurantID: 10, Name: "Carbonara", Price: dec("13.00")}, 2, nil)
				m.On("Reorder", mock.Anything, 1).Return(cart, []int{3}, nil).Once()
			},
			expectedCode: http.StatusOK,
			expectedBody: `"unavailable_food_item_ids":[3]`,
		},
		{
			name:   "qrcode",
			method: "GET",
			url:    "/api/orders/1/qrcode",
			prepareMocks: func(m *mocks.OrderServiceInterface) {
				m.On("TrackingQRCode", mock.Anything, 1).Return([]byte("\x89PNG"), nil).Once()
			},
			expectedCode: http.StatusOK,
			expectedBody: "PNG",
		},
		{
			name:   "qrcode_without_tracking",
			method: "GET",
			url:    "/api/orders/1/qrcode",
			prepareMocks: func(m *mocks.OrderServiceInterface) {
				m.On("TrackingQRCode", mock.Anything, 1).Return(nil, service.ErrNoTrackingCode).Once()
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			orders := mocks.NewOrderServiceInterface(t)
			testCase.prepareMocks(orders)
			router := setupTestRouter(orders, mocks.NewRatingServiceInterface(t))

			req := httptest.NewRequest(testCase.method, testCase.url, bytes.NewBufferString(testCase.payload))
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)

			assert.Equal(t, testCase.expectedCode, recorder.Code)
			if testCase.expectedBody != "" {
				assert.Contains(t, recorder.Body.String(), testCase.expectedBody)
			}
		})
	}
}

func TestHandler_rateOrder(t *testing.T) {
	tests := []struct {
		name         string
		payload      string
		prepareMocks func(*mocks.RatingServiceInterface)
		expectedCode int
	}{
		{
			name:    "accepted",
			payload: `{"rating":4.5}`,
			prepareMocks: func(m *mocks.RatingServiceInterface) {
				m.On("Submit", mock.Anything, 1, mock.MatchedBy(func(d decimal.Decimal) bool {
					return d.Equal(dec("4.5"))
				})).Return(nil).Once()
			},
			expectedCode: http.StatusAccepted,
		},
		{
			name:         "invalid_json",
			payload:      `{"rating":`,
			prepareMocks: func(m *mocks.RatingServiceInterface) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:    "out_of_range",
			payload: `{"rating":7}`,
			prepareMocks: func(m *mocks.RatingServiceInterface) {
				m.On("Submit", mock.Anything, 1, mock.Anything).Return(domain.ErrInvalidRating).Once()
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:    "not_delivered",
			payload: `{"rating":5}`,
			prepareMocks: func(m *mocks.RatingServiceInterface) {
				m.On("Submit", mock.Anything, 1, mock.Anything).Return(domain.ErrOrderNotDelivered).Once()
			},
			expectedCode: http.StatusConflict,
		},
		{
			name:    "duplicate",
			payload: `{"rating":5}`,
			prepareMocks: func(m *mocks.RatingServiceInterface) {
				m.On("Submit", mock.Anything, 1, mock.Anything).Return(domain.ErrDuplicateRating).Once()
			},
			expectedCode: http.StatusConflict,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			ratings := mocks.NewRatingServiceInterface(t)
			testCase.prepareMocks(ratings)
			router := setupTestRouter(mocks.NewOrderServiceInterface(t), ratings)

			req := httptest.NewRequest("POST", "/api/orders/1/rating", bytes.NewBufferString(testCase.payload))
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)

			assert.Equal(t, testCase.expectedCode, recorder.Code)
		})
	}
}

func TestHandler_userOrders(t *testing.T) {
	orders := mocks.NewOrderServiceInterface(t)
	router := setupTestRouter(orders, mocks.NewRatingServiceInterface(t))

	orders.On("ListForUser", mock.Anything, 42).Return(nil, nil).Once()
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest("GET", "/api/users/42/orders", nil))
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `[]`, recorder.Body.String())

	orders.On("CurrentActiveOrder", mock.Anything, 42).Return(domain.Order{}, false, nil).Once()
	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest("GET", "/api/users/42/orders/active", nil))
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"active":false}`, recorder.Body.String())

	orders.On("CurrentActiveOrder", mock.Anything, 43).Return(sampleOrder(), true, nil).Once()
	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest("GET", "/api/users/43/orders/active", nil))
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"active":true`)
	assert.Contains(t, recorder.Body.String(), `"id":1`)
}
