package schedule

import "errors"

var (
	// ErrScheduleNotFound возвращается, когда у магазина нет расписания
	ErrScheduleNotFound = errors.New("schedule not found")

	// ErrShopNotFound возвращается, когда магазин не найден
	ErrShopNotFound = errors.New("shop not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidHours возвращается при некорректных часах работы
	ErrInvalidHours = errors.New("invalid working hours")

	// ErrInvalidBreak возвращается при некорректном перерыве
	// Перерыв должен целиком лежать в рабочих часах каждого открытого дня:
	// движок валидности полагается на это условие и не перепроверяет его
	ErrInvalidBreak = errors.New("invalid break window")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
