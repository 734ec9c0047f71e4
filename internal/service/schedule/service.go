package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/kmalkova/SRS-ReservationService/internal/domain"
	scheduleRepo "github.com/kmalkova/SRS-ReservationService/internal/infra/storage/schedule"
	shopClient "github.com/kmalkova/SRS-ReservationService/internal/integrations/shopservice"
	"github.com/kmalkova/SRS-ReservationService/internal/service/schedule/models"
)

// Service сервис для работы с расписаниями магазинов
// Единственное место, где расписание мутируется; движок валидности
// получает его только на чтение
type Service struct {
	scheduleRepo ScheduleRepository
	shopClient   ShopServiceClient
	txManager    TransactionManager
	logger       Logger
}

// NewService создает новый экземпляр сервиса расписаний
func NewService(
	scheduleRepo ScheduleRepository,
	shopClient ShopServiceClient,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		shopClient:   shopClient,
		txManager:    txManager,
		logger:       logger,
	}
}

// GetSchedule получает недельное расписание магазина с перерывами
func (s *Service) GetSchedule(ctx context.Context, shopID int64) (*models.ScheduleResponse, error) {
	s.logger.Info("GetSchedule: fetching schedule for shop=%d", shopID)

	schedule, err := s.scheduleRepo.GetWeeklySchedule(ctx, shopID)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			s.logger.Warn("GetSchedule: schedule for shop=%d not found", shopID)
			return nil, ErrScheduleNotFound
		}
		s.logger.Error("GetSchedule: repository error for shop=%d: %v", shopID, err)
		return nil, fmt.Errorf("%w: GetSchedule - repository error: %v", ErrInternal, err)
	}

	breaks, err := s.scheduleRepo.GetBreakWindows(ctx, shopID)
	if err != nil {
		s.logger.Error("GetSchedule: failed to get breaks for shop=%d: %v", shopID, err)
		return nil, fmt.Errorf("%w: GetSchedule - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSchedule(shopID, schedule, breaks), nil
}

// UpdateSchedule полностью заменяет расписание магазина
// Доступно только менеджерам магазина
//
// Здесь принудительно выполняется предусловие движка валидности:
// каждый перерыв целиком лежит в рабочих часах каждого открытого дня,
// поэтому движку не нужно перепроверять перерывы против часов работы
func (s *Service) UpdateSchedule(ctx context.Context, shopID int64, req *models.UpdateScheduleRequest) error {
	s.logger.Info("UpdateSchedule: updating schedule for shop=%d by user=%d", shopID, req.UserID)

	if err := s.checkManagerAccess(ctx, shopID, req.UserID); err != nil {
		return err
	}

	schedule, breaks, err := req.ToDomainSchedule()
	if err != nil {
		s.logger.Warn("UpdateSchedule: invalid schedule for shop=%d: %v", shopID, err)
		return fmt.Errorf("%w: %v", ErrInvalidHours, err)
	}

	if err := validateSchedule(schedule, breaks); err != nil {
		s.logger.Warn("UpdateSchedule: schedule validation failed for shop=%d: %v", shopID, err)
		return err
	}

	// Замена в транзакции: конкурентные проверки доступности не должны
	// увидеть наполовину обновленное расписание
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		return s.scheduleRepo.ReplaceSchedule(txCtx, shopID, schedule, breaks)
	})
	if err != nil {
		s.logger.Error("UpdateSchedule: failed to replace schedule for shop=%d: %v", shopID, err)
		return fmt.Errorf("%w: UpdateSchedule - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateSchedule: successfully updated schedule for shop=%d", shopID)
	return nil
}

// validateSchedule проверяет бизнес-инварианты расписания
func validateSchedule(schedule domain.WeeklySchedule, breaks []domain.BreakWindow) error {
	for weekday, day := range schedule {
		if !day.IsOpen {
			continue
		}
		if !day.Open.IsBefore(day.Close) {
			return fmt.Errorf("%w: %s open %s is not before close %s",
				ErrInvalidHours, weekday, day.Open, day.Close)
		}
	}

	for _, b := range breaks {
		if !b.Start.IsBefore(b.End) {
			return fmt.Errorf("%w: break start %s is not before end %s",
				ErrInvalidBreak, b.Start, b.End)
		}

		// Перерыв обязан помещаться в часы каждого открытого дня
		for weekday, day := range schedule {
			if !day.IsOpen {
				continue
			}
			if b.Start.IsBefore(day.Open) || day.Close.IsBefore(b.End) {
				return fmt.Errorf("%w: break %s-%s is outside %s hours %s-%s",
					ErrInvalidBreak, b.Start, b.End, weekday, day.Open, day.Close)
			}
		}
	}

	return nil
}

// checkManagerAccess проверяет, что пользователь является менеджером магазина
func (s *Service) checkManagerAccess(ctx context.Context, shopID int64, userID int64) error {
	shop, err := s.shopClient.GetShop(ctx, shopID)
	if err != nil {
		if errors.Is(err, shopClient.ErrShopNotFound) {
			s.logger.Warn("checkManagerAccess: shop id=%d not found", shopID)
			return ErrShopNotFound
		}
		s.logger.Error("checkManagerAccess: failed to get shop id=%d: %v", shopID, err)
		return fmt.Errorf("%w: checkManagerAccess - failed to get shop: %v", ErrInternal, err)
	}

	if !shop.IsManager(userID) {
		s.logger.Warn("checkManagerAccess: user=%d is not a manager of shop=%d", userID, shopID)
		return ErrAccessDenied
	}

	return nil
}
