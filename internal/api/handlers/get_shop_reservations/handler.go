package get_shop_reservations

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/kmalkova/SRS-ReservationService/internal/api/handlers"
	"github.com/kmalkova/SRS-ReservationService/internal/api/middleware"
	"github.com/kmalkova/SRS-ReservationService/internal/service/reservations"
)

const (
	msgInvalidShopID = "некорректный ID магазина"
	msgMissingUserID = "отсутствует ID пользователя"
	msgInvalidParams = "некорректные параметры запроса"
	msgShopNotFound  = "магазин не найден"
	msgForbidden     = "доступ запрещен"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/shops/{shopId}/reservations
// Query params: day, status, includeCancelled (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем shopId из URL
	vars := mux.Vars(r)
	shopIDStr := vars["shopId"]

	shopID, err := strconv.ParseInt(shopIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /shops/{id}/reservations - Invalid shop ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidShopID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /shops/{id}/reservations - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Получаем опциональные query параметры
	dayStr := r.URL.Query().Get("day")
	statusStr := r.URL.Query().Get("status")
	includeCancelledStr := r.URL.Query().Get("includeCancelled")

	serviceReq, err := ToServiceRequest(shopID, userID, dayStr, statusStr, includeCancelledStr)
	if err != nil {
		h.logger.Warn("GET /shops/{id}/reservations - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	// Получаем бронирования магазина (сервис сам проверит права менеджера)
	result, err := h.service.GetShopReservations(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrShopNotFound):
			h.logger.Warn("GET /shops/{id}/reservations - Shop not found: shop_id=%d", shopID)
			handlers.RespondNotFound(w, msgShopNotFound)

		case errors.Is(err, reservations.ErrAccessDenied):
			h.logger.Warn("GET /shops/{id}/reservations - Access denied: shop_id=%d, user_id=%d", shopID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("GET /shops/{id}/reservations - Invalid parameters: shop_id=%d", shopID)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /shops/{id}/reservations - Failed to get reservations: shop_id=%d, error=%v",
				shopID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /shops/{id}/reservations - Reservations retrieved successfully: shop_id=%d, user_id=%d, count=%d",
		shopID, userID, len(result.Reservations))
	handlers.RespondJSON(w, http.StatusOK, result)
}
