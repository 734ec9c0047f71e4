package check_availability

import (
	"time"

	"github.com/kmalkova/SRS-ReservationService/pkg/types"
)

// Request модель запроса на проверку доступности окна
type Request struct {
	ShopID    int64            // ID магазина
	Date      time.Time        // Дата бронирования (без времени)
	StartTime types.TimeString // Время начала (например, "10:00")
	EndTime   types.TimeString // Время окончания (например, "11:00")
	ExcludeID string           // ID бронирования, исключаемого из проверки конфликтов (опционально)
}

// Response модель ответа проверки доступности
type Response struct {
	Available      bool     // Свободно ли окно
	Reason         string   // Причина отказа (пусто при Available=true)
	ConflictingIDs []string // ID конфликтующих бронирований (только при отказе по конфликту)
}
