package reschedule_reservation

import "errors"

var (
	// ErrReservationNotFound бронирование не найдено
	ErrReservationNotFound = errors.New("reschedule_reservation: reservation not found")

	// ErrShopNotFound магазин не найден
	ErrShopNotFound = errors.New("reschedule_reservation: shop not found")

	// ErrShopNotConfigured у магазина нет настроенного расписания
	ErrShopNotConfigured = errors.New("reschedule_reservation: shop has no schedule configured")

	// ErrAccessDenied нет доступа к бронированию
	ErrAccessDenied = errors.New("reschedule_reservation: access denied")

	// ErrNotReschedulable бронирование нельзя перенести в текущем статусе
	ErrNotReschedulable = errors.New("reschedule_reservation: reservation cannot be rescheduled")

	// ErrInvalidDate некорректная дата бронирования
	ErrInvalidDate = errors.New("reschedule_reservation: invalid date")

	// ErrInvalidWindow некорректный интервал времени
	ErrInvalidWindow = errors.New("reschedule_reservation: invalid time window")

	// ErrOutsideBusinessHours интервал вне рабочих часов магазина
	ErrOutsideBusinessHours = errors.New("reschedule_reservation: outside business hours")

	// ErrDuringBreak интервал пересекается с перерывом
	ErrDuringBreak = errors.New("reschedule_reservation: overlaps a break window")

	// ErrWindowConflict интервал пересекается с другим бронированием
	ErrWindowConflict = errors.New("reschedule_reservation: conflicts with another reservation")

	// ErrInvalidInput некорректные входные данные
	ErrInvalidInput = errors.New("reschedule_reservation: invalid input")

	// ErrInternal внутренняя ошибка
	ErrInternal = errors.New("reschedule_reservation: internal error")
)
