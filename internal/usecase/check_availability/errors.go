package check_availability

import "errors"

var (
	// ErrShopNotFound магазин не найден
	ErrShopNotFound = errors.New("check_availability: shop not found")

	// ErrShopNotConfigured у магазина нет настроенного расписания
	ErrShopNotConfigured = errors.New("check_availability: shop has no schedule configured")

	// ErrInvalidInput некорректные входные данные
	ErrInvalidInput = errors.New("check_availability: invalid input")

	// ErrInternal внутренняя ошибка
	ErrInternal = errors.New("check_availability: internal error")
)
