package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bookme/internal/domains/availability/model"
	bookingModel "bookme/internal/domains/booking/model"
	scheduleModel "bookme/internal/domains/schedule/model"
)

func mustTime(t *testing.T, s string) scheduleModel.TimeOfDay {
	t.Helper()

	parsed, err := scheduleModel.ParseTimeOfDay(s)
	assert.NoError(t, err)

	return parsed
}

func openDay(t *testing.T, open, close string) scheduleModel.DaySchedule {
	t.Helper()

	return scheduleModel.DaySchedule{
		Open:  mustTime(t, open),
		Close: mustTime(t, close),
	}
}

func times(t *testing.T, labels ...string) []scheduleModel.TimeOfDay {
	t.Helper()

	out := make([]scheduleModel.TimeOfDay, len(labels))
	for i, label := range labels {
		out[i] = mustTime(t, label)
	}

	return out
}

func TestSlotsNeeded(t *testing.T) {
	tests := []struct {
		duration int
		want     int
	}{
		{duration: 15, want: 1},
		{duration: 30, want: 2},
		{duration: 45, want: 3},
		{duration: 60, want: 4},
		{duration: 1, want: 1},
		{duration: 16, want: 2},
		{duration: 29, want: 2},
		{duration: 31, want: 3},
		{duration: 90, want: 6},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, model.SlotsNeeded(tt.duration), "duration %d", tt.duration)
	}
}

func TestGrid(t *testing.T) {
	tests := []struct {
		name string
		day  scheduleModel.DaySchedule
		want []string
	}{
		{
			name: "one hour window",
			day:  openDay(t, "09:00", "10:00"),
			want: []string{"09:00", "09:15", "09:30", "09:45"},
		},
		{
			name: "window not a multiple of granularity drops the remainder",
			day:  openDay(t, "09:00", "09:50"),
			want: []string{"09:00", "09:15", "09:30"},
		},
		{
			name: "window shorter than one slot",
			day:  openDay(t, "09:00", "09:10"),
			want: nil,
		},
		{
			name: "window of exactly one slot",
			day:  openDay(t, "09:00", "09:15"),
			want: []string{"09:00"},
		},
		{
			name: "closed day",
			day:  scheduleModel.DaySchedule{Closed: true, Open: 540, Close: 1080},
			want: nil,
		},
		{
			name: "full default day",
			day:  openDay(t, "09:00", "18:00"),
			want: nil, // checked by count below
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := model.Grid(tt.day)

			if tt.name == "full default day" {
				assert.Len(t, got, 36)
				assert.Equal(t, mustTime(t, "09:00"), got[0])
				assert.Equal(t, mustTime(t, "17:45"), got[len(got)-1])

				return
			}

			if tt.want == nil {
				assert.Empty(t, got)

				return
			}

			assert.Equal(t, times(t, tt.want...), got)
		})
	}
}

// every generated slot fits fully inside the opening window
func TestGrid_SlotsAlwaysFit(t *testing.T) {
	days := []scheduleModel.DaySchedule{
		openDay(t, "09:00", "10:00"),
		openDay(t, "09:00", "09:50"),
		openDay(t, "08:05", "12:35"),
		openDay(t, "00:00", "23:59"),
	}

	for _, day := range days {
		for _, slot := range model.Grid(day) {
			assert.GreaterOrEqual(t, slot, day.Open)
			assert.LessOrEqual(t, slot+model.GranularityMinutes, day.Close)
		}
	}
}

func TestOccupied(t *testing.T) {
	bookings := []bookingModel.Booking{
		{ID: "b1", ServiceID: "svc-cut", Date: "2026-09-01", StartTime: mustTime(t, "09:00"), DurationMinutes: 30},
		{ID: "b2", ServiceID: "svc-color", Date: "2026-09-01", StartTime: mustTime(t, "11:00"), DurationMinutes: 40},
		{ID: "b3", ServiceID: "svc-cut", Date: "2026-09-02", StartTime: mustTime(t, "09:00"), DurationMinutes: 15},
	}

	t.Run("business scope covers every service", func(t *testing.T) {
		occ := model.Occupied(bookings, "2026-09-01", "")

		assert.Len(t, occ, 5)
		assert.True(t, occ.Contains(mustTime(t, "09:00")))
		assert.True(t, occ.Contains(mustTime(t, "09:15")))
		// 40 min rounds up to three slots
		assert.True(t, occ.Contains(mustTime(t, "11:00")))
		assert.True(t, occ.Contains(mustTime(t, "11:15")))
		assert.True(t, occ.Contains(mustTime(t, "11:30")))
		assert.False(t, occ.Contains(mustTime(t, "11:45")))
	})

	t.Run("service scope ignores other services", func(t *testing.T) {
		occ := model.Occupied(bookings, "2026-09-01", "svc-cut")

		assert.Len(t, occ, 2)
		assert.True(t, occ.Contains(mustTime(t, "09:00")))
		assert.False(t, occ.Contains(mustTime(t, "11:00")))
	})

	t.Run("other dates never leak in", func(t *testing.T) {
		occ := model.Occupied(bookings, "2026-09-03", "")

		assert.Empty(t, occ)
	})

	t.Run("exact slot count per booking", func(t *testing.T) {
		for _, duration := range []int{15, 20, 30, 45, 59, 60} {
			booking := bookingModel.Booking{Date: "2026-09-01", StartTime: mustTime(t, "10:00"), DurationMinutes: duration}
			occ := model.Occupied([]bookingModel.Booking{booking}, "2026-09-01", "")

			assert.Len(t, occ, model.SlotsNeeded(duration), "duration %d", duration)
		}
	})
}

func TestListSlots(t *testing.T) {
	day := openDay(t, "09:00", "10:00")
	bookings := []bookingModel.Booking{
		{Date: "2026-09-01", StartTime: mustTime(t, "09:00"), DurationMinutes: 30},
	}

	slots := model.ListSlots(day, model.Occupied(bookings, "2026-09-01", ""))

	assert.Equal(t, []model.Slot{
		{Time: mustTime(t, "09:00"), Occupied: true},
		{Time: mustTime(t, "09:15"), Occupied: true},
		{Time: mustTime(t, "09:30"), Occupied: false},
		{Time: mustTime(t, "09:45"), Occupied: false},
	}, slots)
}

func TestListSlots_Idempotent(t *testing.T) {
	day := openDay(t, "09:00", "12:00")
	occ := model.Occupied([]bookingModel.Booking{
		{Date: "2026-09-01", StartTime: mustTime(t, "10:00"), DurationMinutes: 45},
	}, "2026-09-01", "")

	first := model.ListSlots(day, occ)
	second := model.ListSlots(day, occ)

	assert.Equal(t, first, second)
}

func TestListSlots_ClosedDay(t *testing.T) {
	slots := model.ListSlots(scheduleModel.DaySchedule{Closed: true}, nil)

	assert.Empty(t, slots)
}

// open 09:00-10:00: a 30 min booking at 09:00 occupies 09:00 and 09:15;
// a 30 min appointment still fits at 09:30 but no longer at 09:00.
func TestCanStartAt(t *testing.T) {
	day := openDay(t, "09:00", "10:00")

	free := model.ListSlots(day, nil)
	booked := model.ListSlots(day, model.Occupied([]bookingModel.Booking{
		{Date: "2026-09-01", StartTime: mustTime(t, "09:00"), DurationMinutes: 30},
	}, "2026-09-01", ""))

	tests := []struct {
		name     string
		slots    []model.Slot
		index    int
		duration int
		want     bool
	}{
		{name: "free grid fits 30 min at open", slots: free, index: 0, duration: 30, want: true},
		{name: "free grid fits full hour", slots: free, index: 0, duration: 60, want: true},
		{name: "would run past closing", slots: free, index: 3, duration: 30, want: false},
		{name: "last slot fits exactly", slots: free, index: 3, duration: 15, want: true},
		{name: "duration exceeding whole day", slots: free, index: 0, duration: 75, want: false},
		{name: "booked block rejects same start", slots: booked, index: 0, duration: 30, want: false},
		{name: "booked block rejects overlap from earlier slot", slots: booked, index: 1, duration: 30, want: false},
		{name: "after booked block fits", slots: booked, index: 2, duration: 30, want: true},
		{name: "zero duration", slots: free, index: 0, duration: 0, want: false},
		{name: "negative duration", slots: free, index: 0, duration: -15, want: false},
		{name: "negative index", slots: free, index: -1, duration: 15, want: false},
		{name: "empty grid", slots: nil, index: 0, duration: 15, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, model.CanStartAt(tt.slots, tt.index, tt.duration))
		})
	}
}

// exhaustive sweep over a small grid: CanStartAt agrees with the naive
// definition for every index and duration
func TestCanStartAt_Exhaustive(t *testing.T) {
	day := openDay(t, "09:00", "10:00")
	slots := model.ListSlots(day, model.Occupied([]bookingModel.Booking{
		{Date: "2026-09-01", StartTime: mustTime(t, "09:30"), DurationMinutes: 15},
	}, "2026-09-01", ""))

	for index := 0; index < len(slots); index++ {
		for duration := 15; duration <= 60; duration += 15 {
			needed := duration / 15

			want := index+needed <= len(slots)
			for i := index; want && i < index+needed; i++ {
				if slots[i].Occupied {
					want = false
				}
			}

			assert.Equal(t, want, model.CanStartAt(slots, index, duration),
				"index %d duration %d", index, duration)
		}
	}
}

func TestSlotIndex(t *testing.T) {
	slots := model.ListSlots(openDay(t, "09:00", "10:00"), nil)

	assert.Equal(t, 0, model.SlotIndex(slots, mustTime(t, "09:00")))
	assert.Equal(t, 2, model.SlotIndex(slots, mustTime(t, "09:30")))
	assert.Equal(t, -1, model.SlotIndex(slots, mustTime(t, "10:00")))
	assert.Equal(t, -1, model.SlotIndex(slots, mustTime(t, "09:05")))
}
