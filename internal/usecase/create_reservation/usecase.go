package create_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/kmalkova/SRS-ReservationService/internal/domain"
	"github.com/kmalkova/SRS-ReservationService/internal/engine"
	scheduleRepo "github.com/kmalkova/SRS-ReservationService/internal/infra/storage/schedule"
	shopClient "github.com/kmalkova/SRS-ReservationService/internal/integrations/shopservice"
)

// UseCase use case для создания бронирования
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

// Execute выполняет use case создания бронирования
//
// Проверка допустимости и запись выполняются в одной SERIALIZABLE
// транзакции с блокировкой бронирований дня (FOR UPDATE): движок
// валидности — чистая функция без гарантий изоляции, поэтому два
// конкурентных вызова для одного магазина без сериализации записей
// могли бы оба пройти проверку и создать двойное бронирование
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: user=%d, shop=%d, service=%d, date=%s, window=%s-%s",
		req.UserID, req.ShopID, req.ServiceID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	// 2. Получаем магазин и его таймзону
	shop, err := uc.shopClient.GetShop(ctx, req.ShopID)
	if err != nil {
		if errors.Is(err, shopClient.ErrShopNotFound) {
			uc.logger.Warn("CreateReservation: shop id=%d not found", req.ShopID)
			return nil, ErrShopNotFound
		}
		uc.logger.Error("CreateReservation: failed to get shop id=%d: %v", req.ShopID, err)
		return nil, fmt.Errorf("%w: failed to get shop: %v", ErrInternal, err)
	}

	loc, err := shop.Location()
	if err != nil {
		uc.logger.Error("CreateReservation: bad timezone %q for shop id=%d: %v", shop.Timezone, req.ShopID, err)
		return nil, fmt.Errorf("%w: bad shop timezone: %v", ErrShopNotConfigured, err)
	}

	// 3. Проверяем, что дата не в прошлом
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("CreateReservation: date validation failed: %v", err)
		return nil, err
	}

	// 4. Собираем окно кандидата в локальном времени магазина
	window, err := buildWindow(req.Date, req.StartTime, req.EndTime, loc)
	if err != nil {
		return nil, err
	}

	candidate := &domain.Reservation{
		UserID:    req.UserID,
		ShopID:    req.ShopID,
		ServiceID: req.ServiceID,
		Window:    window,
		Status:    domain.StatusPending,
		Notes:     req.Notes,
	}

	var result *domain.Reservation

	// 5. Проверка и запись в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Загружаем снапшот расписания
		weeklySchedule, err := uc.scheduleRepo.GetWeeklySchedule(txCtx, req.ShopID)
		if err != nil {
			if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
				uc.logger.Warn("CreateReservation: shop id=%d has no schedule", req.ShopID)
				return ErrShopNotConfigured
			}
			uc.logger.Error("CreateReservation: failed to get schedule: %v", err)
			return fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
		}

		breaks, err := uc.scheduleRepo.GetBreakWindows(txCtx, req.ShopID)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to get breaks: %v", err)
			return fmt.Errorf("%w: failed to get breaks: %v", ErrInternal, err)
		}

		// 5.2. Загружаем активные бронирования дня с блокировкой (FOR UPDATE)
		day := window.Start
		existing, err := uc.reservationRepo.GetByShopWithFilter(txCtx, domain.ShopReservationsFilter{
			ShopID: req.ShopID,
			Day:    &day,
		})
		if err != nil {
			uc.logger.Error("CreateReservation: failed to get reservations: %v", err)
			return fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
		}

		// 5.3. Прогоняем кандидата через движок валидности
		outcome, err := engine.Validate(candidate, weeklySchedule, breaks, existing, "")
		if err != nil {
			// Битая конфигурация магазина - не бизнес-отказ
			uc.logger.Error("CreateReservation: shop id=%d misconfigured: %v", req.ShopID, err)
			return fmt.Errorf("%w: %v", ErrShopNotConfigured, err)
		}

		if !outcome.Accepted {
			uc.logger.Warn("CreateReservation: rejected, reason=%s, conflicts=%v",
				outcome.Reason, outcome.ConflictingIDs)
			return rejectionError(outcome)
		}

		// 5.4. Сохраняем бронирование
		candidate.ID = uuid.NewString()
		created, err := uc.reservationRepo.Create(txCtx, candidate)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateReservation: successfully created reservation id=%s", result.ID)
	return toResponse(result), nil
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
