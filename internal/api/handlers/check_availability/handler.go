package check_availability

import (
	"errors"
	"net/http"

	"github.com/kmalkova/SRS-ReservationService/internal/api/handlers"
	checkAvailability "github.com/kmalkova/SRS-ReservationService/internal/usecase/check_availability"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgShopNotFound       = "магазин не найден"
	msgShopNotConfigured  = "у магазина не настроено расписание"
	msgInvalidInput       = "некорректные параметры проверки"
)

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations/check
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CheckAvailabilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations/check - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /reservations/check - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, checkAvailability.ErrShopNotFound):
			h.logger.Warn("POST /reservations/check - Shop not found: shop_id=%d", req.ShopID)
			handlers.RespondNotFound(w, msgShopNotFound)

		case errors.Is(err, checkAvailability.ErrShopNotConfigured):
			h.logger.Warn("POST /reservations/check - Shop not configured: shop_id=%d", req.ShopID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgShopNotConfigured)

		case errors.Is(err, checkAvailability.ErrInvalidInput):
			h.logger.Warn("POST /reservations/check - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /reservations/check - Failed to check availability: shop_id=%d, error=%v",
				req.ShopID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations/check - Availability checked: shop_id=%d, available=%t",
		req.ShopID, result.Available)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
