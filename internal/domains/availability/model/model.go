package model

import (
	scheduleModel "bookme/internal/domains/schedule/model"
)

const (
	EntityName = "availability"

	// GranularityMinutes is the fixed slot width of the booking grid.
	GranularityMinutes = 15
)

// Slot is one grid position of a day, tagged with whether an existing
// booking covers it.
type Slot struct {
	Time     scheduleModel.TimeOfDay `json:"time"`
	Occupied bool                    `json:"occupied"`
}

// SlotsNeeded is the number of consecutive grid slots a booking of the
// given duration occupies: ceil(duration / granularity). Durations that
// do not align to the grid still block whole slots; the padded remainder
// is an accepted approximation the slot picker depends on.
func SlotsNeeded(durationMinutes int) int {
	return (durationMinutes + GranularityMinutes - 1) / GranularityMinutes
}
