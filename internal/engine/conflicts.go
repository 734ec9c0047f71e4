package engine

import "github.com/kmalkova/SRS-ReservationService/internal/domain"

// findConflicts возвращает id всех активных бронирований магазина,
// чьи окна пересекаются с окном кандидата
//
// Фильтрация: тот же магазин, статус не cancelled, id != excludeID
// excludeID позволяет перепроверить бронирование при переносе,
// не конфликтуя с его же прежним окном
//
// Единственная O(n) проверка движка; по этой причине выполняется последней
func findConflicts(candidate *domain.Reservation, existing []*domain.Reservation, excludeID string) []string {
	var conflicting []string

	for _, r := range existing {
		if r == nil {
			continue
		}
		if r.ShopID != candidate.ShopID {
			continue
		}
		if !r.IsActive() {
			continue
		}
		if excludeID != "" && r.ID == excludeID {
			continue
		}

		if candidate.Window.Overlaps(r.Window) {
			conflicting = append(conflicting, r.ID)
		}
	}

	return conflicting
}
