package models

import (
	"fmt"
	"time"

	"github.com/kmalkova/SRS-ReservationService/internal/domain"
	"github.com/kmalkova/SRS-ReservationService/pkg/types"
)

// DayHoursDTO часы работы одного дня недели
type DayHoursDTO struct {
	Weekday string  `json:"weekday"` // "monday" ... "sunday"
	IsOpen  bool    `json:"isOpen"`
	Open    *string `json:"open,omitempty"`  // "09:00"
	Close   *string `json:"close,omitempty"` // "18:00"
}

// BreakWindowDTO повторяющийся перерыв
type BreakWindowDTO struct {
	Start string `json:"start"` // "12:00"
	End   string `json:"end"`   // "13:00"
}

// ScheduleResponse недельное расписание магазина с перерывами
type ScheduleResponse struct {
	ShopID int64            `json:"shopId"`
	Days   []DayHoursDTO    `json:"days"`
	Breaks []BreakWindowDTO `json:"breaks"`
}

// UpdateScheduleRequest запрос на полную замену расписания магазина
type UpdateScheduleRequest struct {
	UserID int64            `json:"userId"`
	Days   []DayHoursDTO    `json:"days"`
	Breaks []BreakWindowDTO `json:"breaks"`
}

var weekdayNames = map[time.Weekday]string{
	time.Sunday:    "sunday",
	time.Monday:    "monday",
	time.Tuesday:   "tuesday",
	time.Wednesday: "wednesday",
	time.Thursday:  "thursday",
	time.Friday:    "friday",
	time.Saturday:  "saturday",
}

// ParseWeekday конвертирует имя дня недели в time.Weekday
func ParseWeekday(name string) (time.Weekday, error) {
	for weekday, n := range weekdayNames {
		if n == name {
			return weekday, nil
		}
	}
	return 0, fmt.Errorf("unknown weekday %q", name)
}

// ToDomainSchedule конвертирует запрос в domain расписание и перерывы
// Формат времени валидируется; бизнес-инварианты проверяет сервис
func (r *UpdateScheduleRequest) ToDomainSchedule() (domain.WeeklySchedule, []domain.BreakWindow, error) {
	schedule := domain.WeeklySchedule{}

	for _, d := range r.Days {
		weekday, err := ParseWeekday(d.Weekday)
		if err != nil {
			return nil, nil, err
		}

		day := domain.DayHours{IsOpen: d.IsOpen}
		if d.IsOpen {
			if d.Open == nil || d.Close == nil {
				return nil, nil, fmt.Errorf("open day %s requires open and close times", d.Weekday)
			}
			open, err := types.NewTimeStringFromString(*d.Open)
			if err != nil {
				return nil, nil, err
			}
			closeTime, err := types.NewTimeStringFromString(*d.Close)
			if err != nil {
				return nil, nil, err
			}
			day.Open = open
			day.Close = closeTime
		}

		schedule[weekday] = day
	}

	breaks := make([]domain.BreakWindow, 0, len(r.Breaks))
	for _, b := range r.Breaks {
		start, err := types.NewTimeStringFromString(b.Start)
		if err != nil {
			return nil, nil, err
		}
		end, err := types.NewTimeStringFromString(b.End)
		if err != nil {
			return nil, nil, err
		}
		breaks = append(breaks, domain.BreakWindow{Start: start, End: end})
	}

	return schedule, breaks, nil
}

// FromDomainSchedule конвертирует domain расписание в DTO
func FromDomainSchedule(shopID int64, schedule domain.WeeklySchedule, breaks []domain.BreakWindow) *ScheduleResponse {
	resp := &ScheduleResponse{
		ShopID: shopID,
		Days:   make([]DayHoursDTO, 0, 7),
		Breaks: make([]BreakWindowDTO, 0, len(breaks)),
	}

	// Дни всегда в порядке понедельник..воскресенье
	order := []time.Weekday{
		time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
		time.Friday, time.Saturday, time.Sunday,
	}

	for _, weekday := range order {
		day := schedule.ForDay(weekday)
		dto := DayHoursDTO{
			Weekday: weekdayNames[weekday],
			IsOpen:  day.IsOpen,
		}
		if day.IsOpen {
			open := day.Open.String()
			closeTime := day.Close.String()
			dto.Open = &open
			dto.Close = &closeTime
		}
		resp.Days = append(resp.Days, dto)
	}

	for _, b := range breaks {
		resp.Breaks = append(resp.Breaks, BreakWindowDTO{
			Start: b.Start.String(),
			End:   b.End.String(),
		})
	}

	return resp
}
