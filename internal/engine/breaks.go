package engine

import (
	"fmt"

	"github.com/kmalkova/SRS-ReservationService/internal/domain"
)

// overlapsBreak проверяет пересечение окна с повторяющимися перерывами
// Перерывы разворачиваются в инстанты на дне окна и сравниваются как
// полуинтервалы: окно, заканчивающееся ровно в начале перерыва,
// допустимо, а заходящее в перерыв хотя бы на секунду — нет
//
// Возвращает (true, nil) при пересечении хотя бы с одним перерывом
// и ErrInvalidSchedule, если перерыв сконфигурирован некорректно
func overlapsBreak(window domain.TimeWindow, breaks []domain.BreakWindow) (bool, error) {
	for _, b := range breaks {
		if err := validateBreak(b); err != nil {
			return false, err
		}

		breakStart, err := instantAt(window.Start, b.Start)
		if err != nil {
			return false, fmt.Errorf("%w: break start: %v", ErrInvalidSchedule, err)
		}
		breakEnd, err := instantAt(window.Start, b.End)
		if err != nil {
			return false, fmt.Errorf("%w: break end: %v", ErrInvalidSchedule, err)
		}

		if breakStart.Before(window.End) && window.Start.Before(breakEnd) {
			return true, nil
		}
	}

	return false, nil
}

// validateBreak проверяет корректность перерыва
func validateBreak(b domain.BreakWindow) error {
	if err := b.Start.Validate(); err != nil {
		return fmt.Errorf("%w: break start: %v", ErrInvalidSchedule, err)
	}
	if err := b.End.Validate(); err != nil {
		return fmt.Errorf("%w: break end: %v", ErrInvalidSchedule, err)
	}
	if !b.Start.IsBefore(b.End) {
		return fmt.Errorf("%w: break start %s is not before end %s", ErrInvalidSchedule, b.Start, b.End)
	}
	return nil
}
