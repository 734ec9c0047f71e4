package check_availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kmalkova/SRS-ReservationService/internal/domain"
	"github.com/kmalkova/SRS-ReservationService/internal/engine"
	scheduleRepo "github.com/kmalkova/SRS-ReservationService/internal/infra/storage/schedule"
	shopClient "github.com/kmalkova/SRS-ReservationService/internal/integrations/shopservice"
	"github.com/kmalkova/SRS-ReservationService/pkg/types"
)

// UseCase use case для проверки доступности окна без записи
type UseCase struct {
	reservationRepo ReservationRepository
	scheduleRepo    ScheduleRepository
	shopClient      ShopServiceClient
	txManager       TransactionManager
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
		logger:          logger,
	}
}

// Execute выполняет проверку доступности окна
//
// Результат чисто информационный: между проверкой и последующим
// созданием окно может занять другой пользователь. Гарантию дает
// только сериализуемая проверка внутри создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckAvailability: shop=%d, date=%s, window=%s-%s, exclude=%q",
		req.ShopID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime, req.ExcludeID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем магазин и его таймзону
	shop, err := uc.shopClient.GetShop(ctx, req.ShopID)
	if err != nil {
		if errors.Is(err, shopClient.ErrShopNotFound) {
			uc.logger.Warn("CheckAvailability: shop id=%d not found", req.ShopID)
			return nil, ErrShopNotFound
		}
		uc.logger.Error("CheckAvailability: failed to get shop id=%d: %v", req.ShopID, err)
		return nil, fmt.Errorf("%w: failed to get shop: %v", ErrInternal, err)
	}

	loc, err := shop.Location()
	if err != nil {
		uc.logger.Error("CheckAvailability: bad timezone %q for shop id=%d: %v", shop.Timezone, req.ShopID, err)
		return nil, fmt.Errorf("%w: bad shop timezone: %v", ErrShopNotConfigured, err)
	}

	// 3. Собираем окно кандидата в локальном времени магазина
	window, err := buildWindow(req.Date, req.StartTime, req.EndTime, loc)
	if err != nil {
		return nil, err
	}

	// 4. Загружаем снапшот расписания и бронирований дня в read-only
	// транзакции, чтобы все три чтения были взаимно согласованы
	var (
		weeklySchedule domain.WeeklySchedule
		breaks         []domain.BreakWindow
		existing       []*domain.Reservation
	)

	err = uc.txManager.DoReadOnly(ctx, func(ctx context.Context) error {
		weeklySchedule, err = uc.scheduleRepo.GetWeeklySchedule(ctx, req.ShopID)
		if err != nil {
			if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
				uc.logger.Warn("CheckAvailability: shop id=%d has no schedule", req.ShopID)
				return ErrShopNotConfigured
			}
			uc.logger.Error("CheckAvailability: failed to get schedule: %v", err)
			return fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
		}

		breaks, err = uc.scheduleRepo.GetBreakWindows(ctx, req.ShopID)
		if err != nil {
			uc.logger.Error("CheckAvailability: failed to get breaks: %v", err)
			return fmt.Errorf("%w: failed to get breaks: %v", ErrInternal, err)
		}

		day := window.Start
		existing, err = uc.reservationRepo.GetByShopWithFilter(ctx, domain.ShopReservationsFilter{
			ShopID: req.ShopID,
			Day:    &day,
		})
		if err != nil {
			uc.logger.Error("CheckAvailability: failed to get reservations: %v", err)
			return fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, ErrShopNotConfigured) || errors.Is(err, ErrInternal) {
			return nil, err
		}
		uc.logger.Error("CheckAvailability: read-only transaction failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	// 5. Прогоняем кандидата через движок валидности
	candidate := &domain.Reservation{
		ShopID: req.ShopID,
		Window: window,
		Status: domain.StatusPending,
	}

	outcome, err := engine.Validate(candidate, weeklySchedule, breaks, existing, req.ExcludeID)
	if err != nil {
		uc.logger.Error("CheckAvailability: shop id=%d misconfigured: %v", req.ShopID, err)
		return nil, fmt.Errorf("%w: %v", ErrShopNotConfigured, err)
	}

	uc.logger.Info("CheckAvailability: shop=%d available=%t reason=%s",
		req.ShopID, outcome.Accepted, outcome.Reason)

	return &Response{
		Available:      outcome.Accepted,
		Reason:         string(outcome.Reason),
		ConflictingIDs: outcome.ConflictingIDs,
	}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ShopID <= 0 {
		return fmt.Errorf("%w: shopID must be positive", ErrInvalidInput)
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
