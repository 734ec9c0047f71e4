package create_reservation

import "errors"

var (
	// ErrShopNotFound возвращается, когда магазин не найден
	ErrShopNotFound = errors.New("create_reservation: shop not found")

	// ErrShopNotConfigured возвращается, когда у магазина нет корректного расписания
	// Это конфигурационная ошибка: она поднимается к вызывающему,
	// а не маскируется под бизнес-отказ
	ErrShopNotConfigured = errors.New("create_reservation: shop schedule is missing or malformed")

	// ErrInvalidDate возвращается при дате бронирования в прошлом
	ErrInvalidDate = errors.New("create_reservation: invalid reservation date")

	// ErrInvalidWindow возвращается при некорректном временном окне
	// (start >= end или окно пересекает полночь)
	ErrInvalidWindow = errors.New("create_reservation: invalid time window")

	// ErrOutsideBusinessHours возвращается, когда окно вне рабочих часов магазина
	ErrOutsideBusinessHours = errors.New("create_reservation: window is outside business hours")

	// ErrDuringBreak возвращается, когда окно пересекается с перерывом
	ErrDuringBreak = errors.New("create_reservation: window overlaps a break")

	// ErrWindowConflict возвращается при пересечении с существующими бронированиями
	ErrWindowConflict = errors.New("create_reservation: window conflicts with existing reservations")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
