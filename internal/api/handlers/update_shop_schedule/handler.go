package update_shop_schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/kmalkova/SRS-ReservationService/internal/api/handlers"
	"github.com/kmalkova/SRS-ReservationService/internal/api/middleware"
	"github.com/kmalkova/SRS-ReservationService/internal/service/schedule"
	"github.com/kmalkova/SRS-ReservationService/internal/service/schedule/models"
)

const (
	msgInvalidShopID      = "некорректный ID магазина"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgShopNotFound       = "магазин не найден"
	msgForbidden          = "доступ запрещен"
	msgInvalidHours       = "некорректные часы работы"
	msgInvalidBreak       = "перерыв должен целиком лежать в рабочих часах каждого открытого дня"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/shops/{shopId}/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем shopId из URL
	vars := mux.Vars(r)
	shopIDStr := vars["shopId"]

	shopID, err := strconv.ParseInt(shopIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PUT /shops/{id}/schedule - Invalid shop ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidShopID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /shops/{id}/schedule - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Декодируем body
	var req models.UpdateScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /shops/{id}/schedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.UserID = userID

	// Обновляем расписание (сервис сам проверит права менеджера)
	err = h.service.UpdateSchedule(r.Context(), shopID, &req)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrShopNotFound):
			h.logger.Warn("PUT /shops/{id}/schedule - Shop not found: shop_id=%d", shopID)
			handlers.RespondNotFound(w, msgShopNotFound)

		case errors.Is(err, schedule.ErrAccessDenied):
			h.logger.Warn("PUT /shops/{id}/schedule - Access denied: shop_id=%d, user_id=%d", shopID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, schedule.ErrInvalidHours):
			h.logger.Warn("PUT /shops/{id}/schedule - Invalid hours: shop_id=%d, error=%v", shopID, err)
			handlers.RespondBadRequest(w, msgInvalidHours)

		case errors.Is(err, schedule.ErrInvalidBreak):
			h.logger.Warn("PUT /shops/{id}/schedule - Invalid break: shop_id=%d, error=%v", shopID, err)
			handlers.RespondBadRequest(w, msgInvalidBreak)

		default:
			h.logger.Error("PUT /shops/{id}/schedule - Failed to update schedule: shop_id=%d, error=%v",
				shopID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /shops/{id}/schedule - Schedule updated successfully: shop_id=%d, user_id=%d",
		shopID, userID)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
