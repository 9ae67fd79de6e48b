package dto

import (
	"time"

	"bookme/internal/domains/schedule/model"
	"bookme/shared/failure"
)

type DaySchedule struct {
	Closed bool   `json:"closed"`
	Open   string `json:"open"  validate:"omitempty,datetime=15:04"`
	Close  string `json:"close" validate:"omitempty,datetime=15:04"`
}

type UpdateScheduleRequest struct {
	Days map[string]DaySchedule `json:"days" validate:"required,min=1,dive"`
}

// ToModel builds a full seven-day schedule: weekdays absent from the
// request are stored closed, and every open day must satisfy open < close.
func (u *UpdateScheduleRequest) ToModel() (model.WeeklySchedule, error) {
	ws := make(model.WeeklySchedule, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		ws[d] = model.DaySchedule{Closed: true}
	}

	for name, day := range u.Days {
		weekday, err := model.ParseWeekday(name)
		if err != nil {
			return nil, failure.BadRequest(err)
		}

		if day.Closed {
			continue
		}

		open, err := model.ParseTimeOfDay(day.Open)
		if err != nil {
			return nil, failure.BadRequest(err)
		}

		close, err := model.ParseTimeOfDay(day.Close)
		if err != nil {
			return nil, failure.BadRequest(err)
		}

		if open >= close {
			return nil, failure.BadRequestFromString("opening time must be before closing time")
		}

		ws[weekday] = model.DaySchedule{Open: open, Close: close}
	}

	return ws, nil
}

type ScheduleResponse struct {
	Days map[string]DaySchedule `json:"days"`
}

func (s *ScheduleResponse) FromModel(ws model.WeeklySchedule) {
	s.Days = make(map[string]DaySchedule, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		day := ws.Day(d)

		res := DaySchedule{Closed: day.Closed}
		if !day.Closed {
			res.Open = day.Open.String()
			res.Close = day.Close.String()
		}

		s.Days[model.WeekdayKey(d)] = res
	}
}
