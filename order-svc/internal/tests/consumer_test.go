package tests

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"overcooked-orders/order-svc/internal/domain"
	"overcooked-orders/order-svc/internal/mocks"
	"overcooked-orders/order-svc/internal/service"

	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestConsumer_ProcessRating(t *testing.T) {
	tests := []struct {
		name             string
		inputEvent       domain.RatingEvent
		setupMockRatings func(*mocks.RatingServiceInterface)
	}{
		{
			name: "success",
			inputEvent: domain.RatingEvent{
				Type:         domain.EventNewRating,
				OrderID:      5,
				RestaurantID: 10,
				Rating:       dec("4.5"),
			},
			setupMockRatings: func(m *mocks.RatingServiceInterface) {
				m.On("Apply", mock.Anything, 10, dec("4.5")).
					Return(domain.Restaurant{ID: 10, Reviews: 3}, nil).Once()
			},
		},
		{
			name: "Apply error",
			inputEvent: domain.RatingEvent{
				Type:         domain.EventNewRating,
				OrderID:      5,
				RestaurantID: 10,
				Rating:       dec("4"),
			},
			setupMockRatings: func(m *mocks.RatingServiceInterface) {
				m.On("Apply", mock.Anything, 10, dec("4")).
					Return(domain.Restaurant{}, domain.ErrStorageUnavailable).Once()
			},
		},
		{
			name: "unknown event type",
			inputEvent: domain.RatingEvent{
				Type:         "unknown_type",
				RestaurantID: 10,
				Rating:       dec("5"),
			},
			setupMockRatings: func(m *mocks.RatingServiceInterface) {},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockRatings := mocks.NewRatingServiceInterface(t)
			testCase.setupMockRatings(mockRatings)

			consumer := service.NewConsumer(nil, mockRatings, nil)
			consumer.ProcessRating(context.Background(), testCase.inputEvent)
		})
	}
}

func TestConsumer_Start(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	event, err := json.Marshal(domain.RatingEvent{
		Type:         domain.EventNewRating,
		OrderID:      5,
		RestaurantID: 10,
		Rating:       dec("3"),
	})
	require.NoError(t, err)

	reader := mocks.NewMessageReader(t)
	reader.On("ReadMessage", mock.Anything).Return(kafka.Message{Value: []byte("not json")}, nil).Once()
	reader.On("ReadMessage", mock.Anything).Return(kafka.Message{}, errors.New("leader not available")).Once()
	reader.On("ReadMessage", mock.Anything).Return(kafka.Message{Key: []byte("10"), Value: event}, nil).Once()
	reader.On("ReadMessage", mock.Anything).
		Run(func(mock.Arguments) { cancel() }).
		Return(kafka.Message{}, context.Canceled).Once()

	ratings := mocks.NewRatingServiceInterface(t)
	ratings.On("Apply", mock.Anything, 10, mock.MatchedBy(func(d decimal.Decimal) bool {
		return d.Equal(dec("3"))
	})).Return(domain.Restaurant{ID: 10, Reviews: 1}, nil).Once()

	done := make(chan struct{})
	go func() {
		service.NewConsumer(reader, ratings, nil).Start(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("consumer did not stop after cancellation")
	}
}
