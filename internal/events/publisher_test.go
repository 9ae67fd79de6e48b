package events_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"bookme/config"
	"bookme/infras/kafka"
	kafkaMocks "bookme/infras/kafka/mocks"
	"bookme/infras/otel/mocks"
	bookingModel "bookme/internal/domains/booking/model"
	"bookme/internal/events"
)

func TestPublisher_BookingCreated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := kafkaMocks.NewMockClient(ctrl)

	cfg := &config.Config{}
	cfg.Kafka.BookingTopic = "booking-events"

	publisher := events.NewPublisher(mockClient, cfg, mocks.NewOtel())

	booking := bookingModel.Booking{
		ID:              "bk-1",
		BusinessID:      "biz-1",
		ServiceID:       "svc-1",
		CustomerID:      "cust-1",
		Date:            "2026-09-07",
		StartTime:       570,
		DurationMinutes: 30,
	}

	mockClient.EXPECT().
		SendMessages(gomock.Any(), "booking-events", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, messages ...kafka.Message) error {
			assert.Len(t, messages, 1)
			assert.Equal(t, "biz-1", messages[0].Key)

			event, ok := messages[0].Value.(events.BookingEvent)
			assert.True(t, ok)
			assert.Equal(t, events.TypeBookingCreated, event.Type)
			assert.Equal(t, "bk-1", event.BookingID)
			assert.Equal(t, "09:30", event.StartTime)
			assert.NotEmpty(t, event.OccurredAt)

			return nil
		})

	assert.NoError(t, publisher.BookingCreated(context.Background(), booking))
}

func TestPublisher_BookingCancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := kafkaMocks.NewMockClient(ctrl)

	cfg := &config.Config{}
	cfg.Kafka.BookingTopic = "booking-events"

	publisher := events.NewPublisher(mockClient, cfg, mocks.NewOtel())

	mockClient.EXPECT().
		SendMessages(gomock.Any(), "booking-events", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, messages ...kafka.Message) error {
			event := messages[0].Value.(events.BookingEvent)
			assert.Equal(t, events.TypeBookingCancelled, event.Type)

			return nil
		})

	assert.NoError(t, publisher.BookingCancelled(context.Background(), bookingModel.Booking{ID: "bk-1", BusinessID: "biz-1"}))
}

func TestPublisher_SendFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := kafkaMocks.NewMockClient(ctrl)

	cfg := &config.Config{}

	publisher := events.NewPublisher(mockClient, cfg, mocks.NewOtel())

	mockClient.EXPECT().
		SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("broker unreachable"))

	assert.Error(t, publisher.BookingCreated(context.Background(), bookingModel.Booking{ID: "bk-1"}))
}
