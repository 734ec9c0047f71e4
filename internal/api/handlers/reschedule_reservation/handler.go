package reschedule_reservation

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/kmalkova/SRS-ReservationService/internal/api/handlers"
	"github.com/kmalkova/SRS-ReservationService/internal/api/middleware"
	rescheduleReservation "github.com/kmalkova/SRS-ReservationService/internal/usecase/reschedule_reservation"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidDateOrTime    = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgMissingUserID        = "отсутствует ID пользователя"
	msgNotFound             = "бронирование не найдено"
	msgShopNotFound         = "магазин не найден"
	msgShopNotConfigured    = "у магазина не настроено расписание"
	msgForbidden            = "доступ запрещен"
	msgNotReschedulable     = "бронирование не может быть перенесено"
	msgInvalidDate          = "дата бронирования в прошлом"
	msgInvalidWindow        = "некорректный временной интервал"
	msgOutsideBusinessHours = "интервал вне рабочих часов магазина"
	msgDuringBreak          = "интервал пересекается с перерывом"
	msgWindowConflict       = "интервал пересекается с другим бронированием"
	msgInvalidInput         = "некорректные данные переноса"
)

type Handler struct {
	useCase RescheduleReservationUseCase
	logger  Logger
}

func NewHandler(useCase RescheduleReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/reservations/{reservationId}/reschedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	reservationID := vars["reservationId"]

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /reservations/{id}/reschedule - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req RescheduleReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /reservations/{id}/reschedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(reservationID, userID)
	if err != nil {
		h.logger.Warn("PATCH /reservations/{id}/reschedule - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, rescheduleReservation.ErrReservationNotFound):
			h.logger.Warn("PATCH /reservations/{id}/reschedule - Reservation not found: reservation_id=%s", reservationID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, rescheduleReservation.ErrShopNotFound):
			h.logger.Warn("PATCH /reservations/{id}/reschedule - Shop not found: reservation_id=%s", reservationID)
			handlers.RespondNotFound(w, msgShopNotFound)

		case errors.Is(err, rescheduleReservation.ErrAccessDenied):
			h.logger.Warn("PATCH /reservations/{id}/reschedule - Access denied: reservation_id=%s, user_id=%d",
				reservationID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, rescheduleReservation.ErrNotReschedulable):
			h.logger.Warn("PATCH /reservations/{id}/reschedule - Not reschedulable: reservation_id=%s", reservationID)
			handlers.RespondBadRequest(w, msgNotReschedulable)

		case errors.Is(err, rescheduleReservation.ErrWindowConflict):
			h.logger.Warn("PATCH /reservations/{id}/reschedule - Window conflict: reservation_id=%s", reservationID)
			handlers.RespondError(w, http.StatusConflict, msgWindowConflict)

		case errors.Is(err, rescheduleReservation.ErrShopNotConfigured):
			h.logger.Warn("PATCH /reservations/{id}/reschedule - Shop not configured: reservation_id=%s", reservationID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgShopNotConfigured)

		case errors.Is(err, rescheduleReservation.ErrInvalidDate):
			h.logger.Warn("PATCH /reservations/{id}/reschedule - Date in past: reservation_id=%s", reservationID)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, rescheduleReservation.ErrInvalidWindow):
			h.logger.Warn("PATCH /reservations/{id}/reschedule - Invalid window: reservation_id=%s", reservationID)
			handlers.RespondBadRequest(w, msgInvalidWindow)

		case errors.Is(err, rescheduleReservation.ErrOutsideBusinessHours):
			h.logger.Warn("PATCH /reservations/{id}/reschedule - Outside business hours: reservation_id=%s", reservationID)
			handlers.RespondBadRequest(w, msgOutsideBusinessHours)

		case errors.Is(err, rescheduleReservation.ErrDuringBreak):
			h.logger.Warn("PATCH /reservations/{id}/reschedule - During break: reservation_id=%s", reservationID)
			handlers.RespondBadRequest(w, msgDuringBreak)

		case errors.Is(err, rescheduleReservation.ErrInvalidInput):
			h.logger.Warn("PATCH /reservations/{id}/reschedule - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PATCH /reservations/{id}/reschedule - Failed to reschedule: reservation_id=%s, error=%v",
				reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /reservations/{id}/reschedule - Reservation rescheduled successfully: reservation_id=%s, user_id=%d",
		result.ID, userID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
