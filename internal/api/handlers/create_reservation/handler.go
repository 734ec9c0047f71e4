package create_reservation

import (
	"errors"
	"net/http"

	"github.com/kmalkova/SRS-ReservationService/internal/api/handlers"
	"github.com/kmalkova/SRS-ReservationService/internal/api/middleware"
	createReservation "github.com/kmalkova/SRS-ReservationService/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgMissingUserID        = "отсутствует ID пользователя"
	msgInvalidDateOrTime    = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgShopNotFound         = "магазин не найден"
	msgShopNotConfigured    = "у магазина не настроено расписание"
	msgInvalidDate          = "дата бронирования в прошлом"
	msgInvalidWindow        = "некорректный временной интервал"
	msgOutsideBusinessHours = "интервал вне рабочих часов магазина"
	msgDuringBreak          = "интервал пересекается с перерывом"
	msgWindowConflict       = "интервал пересекается с другим бронированием"
	msgInvalidInput         = "некорректные данные бронирования"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /reservations - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	// Бронирование всегда создается от имени аутентифицированного
	// пользователя, userId из тела игнорируется
	req.UserID = userID

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrWindowConflict):
			h.logger.Warn("POST /reservations - Window conflict: user_id=%d, shop_id=%d", req.UserID, req.ShopID)
			handlers.RespondError(w, http.StatusConflict, msgWindowConflict)

		case errors.Is(err, createReservation.ErrShopNotFound):
			h.logger.Warn("POST /reservations - Shop not found: shop_id=%d", req.ShopID)
			handlers.RespondNotFound(w, msgShopNotFound)

		case errors.Is(err, createReservation.ErrShopNotConfigured):
			h.logger.Warn("POST /reservations - Shop not configured: shop_id=%d", req.ShopID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgShopNotConfigured)

		case errors.Is(err, createReservation.ErrInvalidDate):
			h.logger.Warn("POST /reservations - Date in past: user_id=%d, shop_id=%d", req.UserID, req.ShopID)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, createReservation.ErrInvalidWindow):
			h.logger.Warn("POST /reservations - Invalid window: user_id=%d, shop_id=%d", req.UserID, req.ShopID)
			handlers.RespondBadRequest(w, msgInvalidWindow)

		case errors.Is(err, createReservation.ErrOutsideBusinessHours):
			h.logger.Warn("POST /reservations - Outside business hours: user_id=%d, shop_id=%d", req.UserID, req.ShopID)
			handlers.RespondBadRequest(w, msgOutsideBusinessHours)

		case errors.Is(err, createReservation.ErrDuringBreak):
			h.logger.Warn("POST /reservations - During break: user_id=%d, shop_id=%d", req.UserID, req.ShopID)
			handlers.RespondBadRequest(w, msgDuringBreak)

		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: user_id=%d, shop_id=%d, error=%v",
				req.UserID, req.ShopID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /reservations - Reservation created successfully: reservation_id=%s, user_id=%d, shop_id=%d",
		result.ID, req.UserID, req.ShopID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
