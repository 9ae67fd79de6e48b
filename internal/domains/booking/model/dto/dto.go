package dto

import (
	"bookme/internal/domains/booking/model"
	scheduleModel "bookme/internal/domains/schedule/model"
	gDto "bookme/shared/dto"
	gModel "bookme/shared/model"
	"bookme/shared/timezone"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	BusinessID string `json:"business_id" validate:"required"`
	ServiceID  string `json:"service_id"  validate:"required"`
	Date       string `json:"date"        validate:"required,datetime=2006-01-02"`
	StartTime  string `json:"start_time"  validate:"required,datetime=15:04"`
}

// ToModel builds the booking record both mirrored writes share. The
// single generated ID is the correlation key between the business-side
// and customer-side documents; duration comes from the stored service,
// never from the client.
func (c *CreateBookingRequest) ToModel(customerID string, startTime scheduleModel.TimeOfDay, durationMinutes int) model.Booking {
	return model.Booking{
		ID:              uuid.NewString(),
		BusinessID:      c.BusinessID,
		ServiceID:       c.ServiceID,
		CustomerID:      customerID,
		Date:            c.Date,
		StartTime:       startTime,
		DurationMinutes: durationMinutes,
		Status:          model.StatusConfirmed,
		Metadata: gModel.Metadata{
			CreatedAt: timezone.Now(),
			CreatedBy: customerID,
		},
	}
}

type BookingResponse struct {
	ID              string `json:"id"`
	BusinessID      string `json:"business_id"`
	ServiceID       string `json:"service_id"`
	CustomerID      string `json:"customer_id"`
	Date            string `json:"date"`
	StartTime       string `json:"start_time"`
	DurationMinutes int    `json:"duration_minutes"`
	Status          string `json:"status"`
	gDto.Metadata
}

func (b *BookingResponse) FromModel(model model.Booking) {
	b.ID = model.ID
	b.BusinessID = model.BusinessID
	b.ServiceID = model.ServiceID
	b.CustomerID = model.CustomerID
	b.Date = model.Date
	b.StartTime = model.StartTime.String()
	b.DurationMinutes = model.DurationMinutes
	b.Status = model.Status
	b.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalData int               `json:"total_data"`
}

func (g *GetBookingsResponse) FromModels(models []model.Booking) {
	g.Bookings = make([]BookingResponse, len(models))
	for i, m := range models {
		g.Bookings[i].FromModel(m)
	}
	g.TotalData = len(models)
}
