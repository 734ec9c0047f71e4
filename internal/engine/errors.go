package engine

import (
	"errors"
	"fmt"
)

// ErrConfiguration возвращается при ошибках конфигурации магазина
// Это ошибка программиста/настройки, а не бизнес-отказ: она поднимается
// к вызывающему как error, а не превращается в Outcome
var ErrConfiguration = errors.New("engine: invalid shop configuration")

var (
	// ErrNoSchedule возвращается, когда у магазина нет недельного расписания
	ErrNoSchedule = fmt.Errorf("%w: shop has no weekly schedule", ErrConfiguration)

	// ErrInvalidSchedule возвращается при некорректных часах работы или перерывах
	// (нечитаемое время, open >= close и т.п.)
	ErrInvalidSchedule = fmt.Errorf("%w: malformed schedule entry", ErrConfiguration)
)
