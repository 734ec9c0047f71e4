package domain

import (
	"time"

	"github.com/kmalkova/SRS-ReservationService/pkg/types"
)

// DayHours represents open/close hours for a single weekday
// A closed weekday (IsOpen=false) excludes all reservation windows on that day
type DayHours struct {
	IsOpen bool
	Open   types.TimeString
	Close  types.TimeString
}

// WeeklySchedule maps each weekday to its working hours
// Owned by shop administration; the validity engine only reads it
type WeeklySchedule map[time.Weekday]DayHours

// ForDay returns the hours for the given weekday
// A weekday missing from the map counts as closed
func (s WeeklySchedule) ForDay(day time.Weekday) DayHours {
	return s[day]
}

// BreakWindow is a recurring daily interval during which no reservations are allowed
// Assumed pre-validated as a subset of the day's open hours
type BreakWindow struct {
	Start types.TimeString
	End   types.TimeString
}
