package model

import (
	scheduleModel "bookme/internal/domains/schedule/model"
)

// ListSlots runs the grid for a day and tags each slot with the derived
// occupancy. A closed day yields an empty list, which is a normal result
// rather than an error.
func ListSlots(day scheduleModel.DaySchedule, occupancy Occupancy) []Slot {
	grid := Grid(day)

	slots := make([]Slot, len(grid))
	for i, t := range grid {
		slots[i] = Slot{Time: t, Occupied: occupancy.Contains(t)}
	}

	return slots
}

// CanStartAt reports whether a booking of the given duration can start at
// slots[index]: the needed consecutive slots must all exist before closing
// and none may be occupied. Callers use it both to render slot pickers
// and to re-validate the exact slot immediately before committing.
func CanStartAt(slots []Slot, index int, durationMinutes int) bool {
	if durationMinutes <= 0 || index < 0 {
		return false
	}

	needed := SlotsNeeded(durationMinutes)
	if index+needed > len(slots) {
		return false
	}

	for i := index; i < index+needed; i++ {
		if slots[i].Occupied {
			return false
		}
	}

	return true
}

// SlotIndex locates the slot starting exactly at t, or -1 when t is not
// on the day's grid.
func SlotIndex(slots []Slot, t scheduleModel.TimeOfDay) int {
	for i, slot := range slots {
		if slot.Time == t {
			return i
		}
	}

	return -1
}
