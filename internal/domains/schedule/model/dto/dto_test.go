package dto_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"bookme/internal/domains/schedule/model"
	"bookme/internal/domains/schedule/model/dto"
)

func TestUpdateScheduleRequest_ToModel(t *testing.T) {
	tests := []struct {
		name    string
		days    map[string]dto.DaySchedule
		wantErr bool
		check   func(t *testing.T, ws model.WeeklySchedule)
	}{
		{
			name: "valid open day",
			days: map[string]dto.DaySchedule{
				"monday": {Open: "09:00", Close: "18:00"},
			},
			check: func(t *testing.T, ws model.WeeklySchedule) {
				monday := ws.Day(time.Monday)
				assert.False(t, monday.Closed)
				assert.Equal(t, "09:00", monday.Open.String())
				assert.Equal(t, "18:00", monday.Close.String())
			},
		},
		{
			name: "missing weekdays default to closed",
			days: map[string]dto.DaySchedule{
				"friday": {Open: "10:00", Close: "16:00"},
			},
			check: func(t *testing.T, ws model.WeeklySchedule) {
				assert.Len(t, ws, 7)
				assert.True(t, ws.Day(time.Saturday).Closed)
				assert.False(t, ws.Day(time.Friday).Closed)
			},
		},
		{
			name: "explicitly closed day ignores times",
			days: map[string]dto.DaySchedule{
				"sunday": {Closed: true},
			},
			check: func(t *testing.T, ws model.WeeklySchedule) {
				assert.True(t, ws.Day(time.Sunday).Closed)
			},
		},
		{
			name: "open equals close rejected",
			days: map[string]dto.DaySchedule{
				"monday": {Open: "09:00", Close: "09:00"},
			},
			wantErr: true,
		},
		{
			name: "open after close rejected",
			days: map[string]dto.DaySchedule{
				"monday": {Open: "18:00", Close: "09:00"},
			},
			wantErr: true,
		},
		{
			name: "unknown weekday rejected",
			days: map[string]dto.DaySchedule{
				"someday": {Open: "09:00", Close: "18:00"},
			},
			wantErr: true,
		},
		{
			name: "unparseable time rejected",
			days: map[string]dto.DaySchedule{
				"monday": {Open: "morning", Close: "18:00"},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := dto.UpdateScheduleRequest{Days: tt.days}

			ws, err := req.ToModel()
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			tt.check(t, ws)
		})
	}
}

func TestScheduleResponse_FromModel(t *testing.T) {
	ws := model.WeeklySchedule{
		time.Monday: {Open: 540, Close: 1080},
	}

	var res dto.ScheduleResponse
	res.FromModel(ws)

	assert.Len(t, res.Days, 7)
	assert.Equal(t, dto.DaySchedule{Open: "09:00", Close: "18:00"}, res.Days["monday"])
	assert.Equal(t, dto.DaySchedule{Closed: true}, res.Days["tuesday"])
}
