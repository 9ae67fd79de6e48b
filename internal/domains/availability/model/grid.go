package model

import (
	scheduleModel "bookme/internal/domains/schedule/model"
)

// Grid generates the slot start times of a day: every t on the 15-minute
// grid from opening time with t+15 <= close, so the last slot always fits
// fully before closing. A window shorter than one slot, or a closed day,
// yields no slots; when the window is not a multiple of the granularity
// the remainder at the end of the day is simply never produced.
func Grid(day scheduleModel.DaySchedule) []scheduleModel.TimeOfDay {
	if day.Closed || day.Close-day.Open < GranularityMinutes {
		return nil
	}

	slots := make([]scheduleModel.TimeOfDay, 0, int(day.Close-day.Open)/GranularityMinutes)
	for t := day.Open; t+GranularityMinutes <= day.Close; t += GranularityMinutes {
		slots = append(slots, t)
	}

	return slots
}
