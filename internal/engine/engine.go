// Package engine реализует проверку допустимости бронирования:
// может ли окно кандидата быть забронировано с учетом недельного
// расписания магазина, перерывов и существующих бронирований
//
// Все проверки — чистые синхронные функции над снапшотами, которые
// собирает вызывающий; пакет не имеет внутреннего состояния и ничего
// не мутирует. Движок НЕ дает гарантий изоляции между конкурентными
// вызовами: валидация и запись бронирования — это check-then-act,
// поэтому записи по одному магазину должны сериализоваться снаружи
// (см. usecase create_reservation: SERIALIZABLE транзакция + FOR UPDATE)
package engine

import "github.com/kmalkova/SRS-ReservationService/internal/domain"

// Validate прогоняет окно кандидата через упорядоченный набор проверок
// и возвращает структурированный результат
//
// Порядок фиксирован, от дешевых проверок к дорогим:
//  1. корректность окна (start < end, один календарный день)
//  2. рабочие часы магазина
//  3. перерывы
//  4. конфликты с существующими бронированиями (единственный O(n) шаг)
//
// Проверки прерываются на первом отказе. Времена кандидата должны быть
// в локальном времени магазина: день недели и время суток берутся из
// wall clock значения Window.Start
//
// error возвращается только при битой конфигурации (ErrConfiguration);
// все бизнес-отказы — значения Outcome
func Validate(
	candidate *domain.Reservation,
	schedule domain.WeeklySchedule,
	breaks []domain.BreakWindow,
	existing []*domain.Reservation,
	excludeID string,
) (Outcome, error) {
	// 1. Структурная проверка окна
	if !candidate.Window.IsValid() || !candidate.Window.SameCalendarDay() {
		return Reject(ReasonInvalidWindow), nil
	}

	// 2. Рабочие часы
	open, err := withinBusinessHours(candidate.Window, schedule)
	if err != nil {
		return Outcome{}, err
	}
	if !open {
		return Reject(ReasonOutsideBusinessHours), nil
	}

	// 3. Перерывы
	onBreak, err := overlapsBreak(candidate.Window, breaks)
	if err != nil {
		return Outcome{}, err
	}
	if onBreak {
		return Reject(ReasonDuringBreak), nil
	}

	// 4. Конфликты
	if conflicting := findConflicts(candidate, existing, excludeID); len(conflicting) > 0 {
		return RejectConflict(conflicting), nil
	}

	return Accept(), nil
}
