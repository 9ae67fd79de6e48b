package events

//go:generate go run go.uber.org/mock/mockgen -source=./publisher.go -destination=./mocks/publisher_mock.go -package=mocks

import (
	"context"

	"github.com/rs/zerolog/log"

	"bookme/config"
	"bookme/infras/kafka"
	"bookme/infras/otel"
	bookingModel "bookme/internal/domains/booking/model"
	"bookme/shared/constant"
	"bookme/shared/timezone"
)

const (
	TypeBookingCreated   = "booking.created"
	TypeBookingCancelled = "booking.cancelled"
)

// BookingEvent is the payload published to the booking topic; downstream
// consumers (notification mailer, reporting) key on Type.
type BookingEvent struct {
	Type            string `json:"type"`
	BookingID       string `json:"booking_id"`
	BusinessID      string `json:"business_id"`
	ServiceID       string `json:"service_id"`
	CustomerID      string `json:"customer_id"`
	Date            string `json:"date"`
	StartTime       string `json:"start_time"`
	DurationMinutes int    `json:"duration_minutes"`
	OccurredAt      string `json:"occurred_at"`
}

type Publisher interface {
	BookingCreated(ctx context.Context, booking bookingModel.Booking) error
	BookingCancelled(ctx context.Context, booking bookingModel.Booking) error
}

type publisherImpl struct {
	client kafka.Client
	cfg    *config.Config
	otel   otel.Otel
}

func NewPublisher(client kafka.Client, cfg *config.Config, otel otel.Otel) Publisher {
	return &publisherImpl{
		client: client,
		cfg:    cfg,
		otel:   otel,
	}
}

func (p *publisherImpl) BookingCreated(ctx context.Context, booking bookingModel.Booking) error {
	return p.publish(ctx, TypeBookingCreated, booking)
}

func (p *publisherImpl) BookingCancelled(ctx context.Context, booking bookingModel.Booking) error {
	return p.publish(ctx, TypeBookingCancelled, booking)
}

func (p *publisherImpl) publish(ctx context.Context, eventType string, booking bookingModel.Booking) (err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".Publish")
	defer scope.End()
	defer scope.TraceIfError(err)

	event := BookingEvent{
		Type:            eventType,
		BookingID:       booking.ID,
		BusinessID:      booking.BusinessID,
		ServiceID:       booking.ServiceID,
		CustomerID:      booking.CustomerID,
		Date:            booking.Date,
		StartTime:       booking.StartTime.String(),
		DurationMinutes: booking.DurationMinutes,
		OccurredAt:      timezone.Format(timezone.Now(), constant.TimestampFormat),
	}

	// events are partitioned by business so per-business consumers see
	// them in order
	message := kafka.Message{
		Key:   booking.BusinessID,
		Value: event,
	}

	if err = p.client.SendMessages(ctx, p.cfg.Kafka.BookingTopic, message); err != nil {
		log.Error().Err(err).Str("type", eventType).Msg("failed to publish booking event")

		return err
	}

	return nil
}
