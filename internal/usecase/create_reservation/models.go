package create_reservation

import (
	"time"

	"github.com/kmalkova/SRS-ReservationService/internal/domain"
	"github.com/kmalkova/SRS-ReservationService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID    int64            // ID пользователя
	ShopID    int64            // ID магазина
	ServiceID int64            // ID услуги
	Date      time.Time        // Дата бронирования (без времени)
	StartTime types.TimeString // Время начала (например, "10:00")
	EndTime   types.TimeString // Время окончания (например, "11:00")
	Notes     *string          // Дополнительные заметки (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID        string            // ID созданного бронирования (uuid)
	UserID    int64             // ID пользователя
	ShopID    int64             // ID магазина
	ServiceID int64             // ID услуги
	Window    domain.TimeWindow // Временное окно в локальном времени магазина
	Status    string            // Статус бронирования (pending)
	Notes     *string           // Заметки

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}

func toResponse(r *domain.Reservation) *Response {
	return &Response{
		ID:        r.ID,
		UserID:    r.UserID,
		ShopID:    r.ShopID,
		ServiceID: r.ServiceID,
		Window:    r.Window,
		Status:    string(r.Status),
		Notes:     r.Notes,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
