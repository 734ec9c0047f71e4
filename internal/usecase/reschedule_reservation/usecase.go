package reschedule_reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kmalkova/SRS-ReservationService/internal/domain"
	"github.com/kmalkova/SRS-ReservationService/internal/engine"
	reservationRepo "github.com/kmalkova/SRS-ReservationService/internal/infra/storage/reservation"
	scheduleRepo "github.com/kmalkova/SRS-ReservationService/internal/infra/storage/schedule"
	shopClient "github.com/kmalkova/SRS-ReservationService/internal/integrations/shopservice"
	"github.com/kmalkova/SRS-ReservationService/pkg/types"
)

// UseCase use case для переноса бронирования
type UseCase struct {
	reservationRepo ReservationRepository
	scheduleRepo    ScheduleRepository
	shopClient      ShopServiceClient
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	scheduleRepo ScheduleRepository,
	shopClient ShopServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		scheduleRepo:    scheduleRepo,
		shopClient:      shopClient,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case переноса бронирования
//
// Перенос идет по тому же сериализуемому пути, что и создание, но
// движку передается excludeID переносимого бронирования: иначе
// бронирование конфликтовало бы со своим собственным старым окном
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RescheduleReservation: id=%s, user=%d, date=%s, window=%s-%s",
		req.ReservationID, req.UserID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RescheduleReservation: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	// 2. Загружаем бронирование
	reservation, err := uc.reservationRepo.GetByID(ctx, req.ReservationID)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			uc.logger.Warn("RescheduleReservation: reservation id=%s not found", req.ReservationID)
			return nil, ErrReservationNotFound
		}
		uc.logger.Error("RescheduleReservation: failed to get reservation id=%s: %v", req.ReservationID, err)
		return nil, fmt.Errorf("%w: failed to get reservation: %v", ErrInternal, err)
	}

	// 3. Получаем магазин: таймзона и проверка прав менеджера
	shop, err := uc.shopClient.GetShop(ctx, reservation.ShopID)
	if err != nil {
		if errors.Is(err, shopClient.ErrShopNotFound) {
			uc.logger.Warn("RescheduleReservation: shop id=%d not found", reservation.ShopID)
			return nil, ErrShopNotFound
		}
		uc.logger.Error("RescheduleReservation: failed to get shop id=%d: %v", reservation.ShopID, err)
		return nil, fmt.Errorf("%w: failed to get shop: %v", ErrInternal, err)
	}

	// 4. Переносить может владелец бронирования или менеджер магазина
	if reservation.UserID != req.UserID && !shop.IsManager(req.UserID) {
		uc.logger.Warn("RescheduleReservation: user id=%d has no access to reservation id=%s",
			req.UserID, req.ReservationID)
		return nil, ErrAccessDenied
	}

	// 5. Проверяем статус
	if !reservation.CanBeRescheduled() {
		uc.logger.Warn("RescheduleReservation: reservation id=%s in status %s cannot be rescheduled",
			req.ReservationID, reservation.Status)
		return nil, ErrNotReschedulable
	}

	loc, err := shop.Location()
	if err != nil {
		uc.logger.Error("RescheduleReservation: bad timezone %q for shop id=%d: %v",
			shop.Timezone, reservation.ShopID, err)
		return nil, fmt.Errorf("%w: bad shop timezone: %v", ErrShopNotConfigured, err)
	}

	// 6. Проверяем, что новая дата не в прошлом
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("RescheduleReservation: date validation failed: %v", err)
		return nil, err
	}

	// 7. Собираем новое окно в локальном времени магазина
	window, err := buildWindow(req.Date, req.StartTime, req.EndTime, loc)
	if err != nil {
		return nil, err
	}

	candidate := &domain.Reservation{
		ID:        reservation.ID,
		UserID:    reservation.UserID,
		ShopID:    reservation.ShopID,
		ServiceID: reservation.ServiceID,
		Window:    window,
		Status:    reservation.Status,
	}

	var result *domain.Reservation

	// 8. Проверка и запись в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		weeklySchedule, err := uc.scheduleRepo.GetWeeklySchedule(txCtx, reservation.ShopID)
		if err != nil {
			if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
				uc.logger.Warn("RescheduleReservation: shop id=%d has no schedule", reservation.ShopID)
				return ErrShopNotConfigured
			}
			uc.logger.Error("RescheduleReservation: failed to get schedule: %v", err)
			return fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
		}

		breaks, err := uc.scheduleRepo.GetBreakWindows(txCtx, reservation.ShopID)
		if err != nil {
			uc.logger.Error("RescheduleReservation: failed to get breaks: %v", err)
			return fmt.Errorf("%w: failed to get breaks: %v", ErrInternal, err)
		}

		day := window.Start
		existing, err := uc.reservationRepo.GetByShopWithFilter(txCtx, domain.ShopReservationsFilter{
			ShopID: reservation.ShopID,
			Day:    &day,
		})
		if err != nil {
			uc.logger.Error("RescheduleReservation: failed to get reservations: %v", err)
			return fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
		}

		// Старое окно самого бронирования исключается из поиска конфликтов
		outcome, err := engine.Validate(candidate, weeklySchedule, breaks, existing, reservation.ID)
		if err != nil {
			uc.logger.Error("RescheduleReservation: shop id=%d misconfigured: %v", reservation.ShopID, err)
			return fmt.Errorf("%w: %v", ErrShopNotConfigured, err)
		}

		if !outcome.Accepted {
			uc.logger.Warn("RescheduleReservation: rejected, reason=%s, conflicts=%v",
				outcome.Reason, outcome.ConflictingIDs)
			return rejectionError(outcome)
		}

		if err := uc.reservationRepo.UpdateWindow(txCtx, reservation.ID, window); err != nil {
			uc.logger.Error("RescheduleReservation: failed to update window: %v", err)
			return fmt.Errorf("%w: failed to update window: %v", ErrInternal, err)
		}

		updated, err := uc.reservationRepo.GetByID(txCtx, reservation.ID)
		if err != nil {
			uc.logger.Error("RescheduleReservation: failed to reload reservation: %v", err)
			return fmt.Errorf("%w: failed to reload reservation: %v", ErrInternal, err)
		}

		result = updated
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("RescheduleReservation: successfully rescheduled reservation id=%s", result.ID)
	return toResponse(result), nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ReservationID == "" {
		return fmt.Errorf("%w: reservationID is required", ErrInvalidInput)
	}

	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.EndTime.IsZero() {
		return fmt.Errorf("%w: endTime is required", ErrInvalidInput)
	}
	if err := req.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid endTime format: %v", ErrInvalidInput, err)
	}

	return nil
}

// validateDate проверяет, что дата бронирования не в прошлом
func validateDate(date time.Time, now time.Time) error {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	if dateOnly.Before(nowOnly) {
		return ErrInvalidDate
	}

	return nil
}

// buildWindow собирает окно кандидата в локальном времени магазина
// из даты и времен суток "HH:MM"
func buildWindow(date time.Time, start, end types.TimeString, loc *time.Location) (domain.TimeWindow, error) {
	startMin, err := start.Minutes()
	if err != nil {
		return domain.TimeWindow{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	endMin, err := end.Minutes()
	if err != nil {
		return domain.TimeWindow{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	y, m, d := date.Date()
	return domain.TimeWindow{
		Start: time.Date(y, m, d, startMin/60, startMin%60, 0, 0, loc),
		End:   time.Date(y, m, d, endMin/60, endMin%60, 0, 0, loc),
	}, nil
}

// rejectionError конвертирует отказ движка в ошибку usecase
func rejectionError(outcome engine.Outcome) error {
	switch outcome.Reason {
	case engine.ReasonInvalidWindow:
		return ErrInvalidWindow
	case engine.ReasonOutsideBusinessHours:
		return ErrOutsideBusinessHours
	case engine.ReasonDuringBreak:
		return ErrDuringBreak
	case engine.ReasonConflict:
		return fmt.Errorf("%w: %v", ErrWindowConflict, outcome.ConflictingIDs)
	default:
		return fmt.Errorf("%w: unexpected rejection reason %q", ErrInternal, outcome.Reason)
	}
}
