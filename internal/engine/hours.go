package engine

import (
	"fmt"
	"time"

	"github.com/kmalkova/SRS-ReservationService/internal/domain"
	"github.com/kmalkova/SRS-ReservationService/pkg/types"
)

// withinBusinessHours проверяет, что окно целиком попадает в рабочие часы
// дня недели, на который приходится его начало
//
// Границы расписания разворачиваются в инстанты на дне окна и
// сравниваются напрямую: окно, выходящее за закрытие хотя бы на
// секунду, не помещается в рабочие часы
//
// Возвращает (false, nil) при бизнес-отказе (закрытый день, выход за часы)
// и ошибку ErrNoSchedule/ErrInvalidSchedule при битой конфигурации
func withinBusinessHours(window domain.TimeWindow, schedule domain.WeeklySchedule) (bool, error) {
	if len(schedule) == 0 {
		return false, ErrNoSchedule
	}

	day := schedule.ForDay(window.Start.Weekday())
	if !day.IsOpen {
		return false, nil
	}

	if err := validateDayHours(day); err != nil {
		return false, err
	}

	open, err := instantAt(window.Start, day.Open)
	if err != nil {
		return false, fmt.Errorf("%w: open time: %v", ErrInvalidSchedule, err)
	}
	closeAt, err := instantAt(window.Start, day.Close)
	if err != nil {
		return false, fmt.Errorf("%w: close time: %v", ErrInvalidSchedule, err)
	}

	// Окно должно целиком лежать в [open, close]
	if window.Start.Before(open) || closeAt.Before(window.End) {
		return false, nil
	}

	return true, nil
}

// instantAt разворачивает время суток "HH:MM" в инстант на дне day
// в его локальном времени
func instantAt(day time.Time, ts types.TimeString) (time.Time, error) {
	minutes, err := ts.Minutes()
	if err != nil {
		return time.Time{}, err
	}

	y, m, d := day.Date()
	return time.Date(y, m, d, minutes/60, minutes%60, 0, 0, day.Location()), nil
}

// validateDayHours проверяет корректность часов открытого дня
func validateDayHours(day domain.DayHours) error {
	if day.Open.IsZero() || day.Close.IsZero() {
		return fmt.Errorf("%w: open day without hours", ErrInvalidSchedule)
	}
	if err := day.Open.Validate(); err != nil {
		return fmt.Errorf("%w: open time: %v", ErrInvalidSchedule, err)
	}
	if err := day.Close.Validate(); err != nil {
		return fmt.Errorf("%w: close time: %v", ErrInvalidSchedule, err)
	}
	if !day.Open.IsBefore(day.Close) {
		return fmt.Errorf("%w: open %s is not before close %s", ErrInvalidSchedule, day.Open, day.Close)
	}
	return nil
}
