package reschedule_reservation

import (
	"time"

	"github.com/kmalkova/SRS-ReservationService/internal/domain"
	"github.com/kmalkova/SRS-ReservationService/pkg/types"
)

// Request модель запроса на перенос бронирования
type Request struct {
	ReservationID string           // ID бронирования (uuid)
	UserID        int64            // ID пользователя, выполняющего перенос
	Date          time.Time        // Новая дата бронирования (без времени)
	StartTime     types.TimeString // Новое время начала (например, "10:00")
	EndTime       types.TimeString // Новое время окончания (например, "11:00")
}

// Response модель ответа с перенесенным бронированием
type Response struct {
	ID        string            // ID бронирования (uuid)
	UserID    int64             // ID пользователя
	ShopID    int64             // ID магазина
	ServiceID int64             // ID услуги
	Window    domain.TimeWindow // Новое временное окно в локальном времени магазина
	Status    string            // Статус бронирования
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
