package model

import (
	"encoding/json"
	"fmt"
	"time"
)

const (
	EntityName = "schedule"

	// CollectionName is the per-business subcollection holding the single
	// weekly schedule document.
	CollectionName = "schedule"
	DocumentID     = "weekly"
)

// TimeOfDay is a wall-clock time expressed as minutes since midnight.
// It renders as zero-padded 24h "HH:MM" at every boundary; ordering is
// plain integer comparison.
type TimeOfDay int

const MinutesPerDay = 24 * 60

func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("invalid time of day %q: %w", s, err)
	}

	return TimeOfDay(t.Hour()*60 + t.Minute()), nil
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

func (t TimeOfDay) Valid() bool {
	return t >= 0 && t < MinutesPerDay
}

func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	parsed, err := ParseTimeOfDay(s)
	if err != nil {
		return err
	}

	*t = parsed

	return nil
}

// DaySchedule is a single weekday's opening window. Open and Close are
// meaningful only when Closed is false; Open < Close always holds for a
// stored open day.
type DaySchedule struct {
	Closed bool      `json:"closed"`
	Open   TimeOfDay `json:"open"`
	Close  TimeOfDay `json:"close"`
}

// WeeklySchedule maps every weekday to its opening window. Stored
// schedules always carry all seven keys; Day covers partial documents
// from older writes.
type WeeklySchedule map[time.Weekday]DaySchedule

// Day returns the schedule for w, treating a missing weekday as closed.
func (ws WeeklySchedule) Day(w time.Weekday) DaySchedule {
	if day, ok := ws[w]; ok {
		return day
	}

	return DaySchedule{Closed: true}
}

// DefaultTemplate is the schedule a business starts with before its owner
// edits anything: open every day, 09:00 to 18:00.
func DefaultTemplate() WeeklySchedule {
	ws := make(WeeklySchedule, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		ws[d] = DaySchedule{Open: 9 * 60, Close: 18 * 60}
	}

	return ws
}

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

func ParseWeekday(s string) (time.Weekday, error) {
	if d, ok := weekdayNames[s]; ok {
		return d, nil
	}

	return 0, fmt.Errorf("invalid weekday %q", s)
}

func WeekdayKey(d time.Weekday) string {
	for name, day := range weekdayNames {
		if day == d {
			return name
		}
	}

	return ""
}

// MarshalJSON renders the schedule keyed by lowercase weekday names so the
// stored document stays readable.
func (ws WeeklySchedule) MarshalJSON() ([]byte, error) {
	out := make(map[string]DaySchedule, len(ws))
	for d, day := range ws {
		out[WeekdayKey(d)] = day
	}

	return json.Marshal(out)
}

func (ws *WeeklySchedule) UnmarshalJSON(data []byte) error {
	var raw map[string]DaySchedule
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	parsed := make(WeeklySchedule, len(raw))
	for name, day := range raw {
		d, err := ParseWeekday(name)
		if err != nil {
			return err
		}

		parsed[d] = day
	}

	*ws = parsed

	return nil
}
