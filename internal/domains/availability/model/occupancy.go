package model

import (
	bookingModel "bookme/internal/domains/booking/model"
	scheduleModel "bookme/internal/domains/schedule/model"
)

// Occupancy is the set of slot start times covered by existing bookings.
// It is always derived from the booking records at read time and never
// stored, so a cancelled booking frees its slots on the next derivation.
type Occupancy map[scheduleModel.TimeOfDay]struct{}

func (o Occupancy) Contains(t scheduleModel.TimeOfDay) bool {
	_, ok := o[t]

	return ok
}

// Occupied derives the occupancy for a calendar date. A booking marks
// SlotsNeeded(duration) consecutive grid slots starting at its start
// time. When serviceID is non-empty only bookings of that service count
// (per-service scope); when empty every booking of the business counts
// (per-business scope).
func Occupied(bookings []bookingModel.Booking, date string, serviceID string) Occupancy {
	occupancy := make(Occupancy)

	for _, booking := range bookings {
		if booking.Date != date {
			continue
		}

		if serviceID != "" && booking.ServiceID != serviceID {
			continue
		}

		for i := 0; i < SlotsNeeded(booking.DurationMinutes); i++ {
			occupancy[booking.StartTime+scheduleModel.TimeOfDay(i*GranularityMinutes)] = struct{}{}
		}
	}

	return occupancy
}
