package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/kmalkova/SRS-ReservationService/internal/domain"
	reservationRepo "github.com/kmalkova/SRS-ReservationService/internal/infra/storage/reservation"
	shopClient "github.com/kmalkova/SRS-ReservationService/internal/integrations/shopservice"
	"github.com/kmalkova/SRS-ReservationService/internal/service/reservations/models"
)

// Service сервис для работы с бронированиями
// Владеет жизненным циклом статуса: pending -> confirmed | cancelled,
// confirmed -> cancelled. Движок валидности статусы не меняет
type Service struct {
	reservationRepo ReservationRepository
	shopClient      ShopServiceClient
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	reservationRepo ReservationRepository,
	shopClient ShopServiceClient,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		shopClient:      shopClient,
		logger:          logger,
	}
}

// GetByID получает бронирование по ID
// Пользователь может видеть только своё бронирование
// или если он является менеджером магазина
func (s *Service) GetByID(ctx context.Context, id string, userID int64) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%s for user=%d", id, userID)

	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByID: reservation id=%s not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for reservation id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if err := s.checkUserAccess(ctx, reservation, userID); err != nil {
		s.logger.Warn("GetByID: access denied for user=%d to reservation id=%s", userID, id)
		return nil, err
	}

	return models.FromDomainReservation(reservation), nil
}

// GetUserReservations получает историю бронирований пользователя
// Опционально фильтрует по статусу
func (s *Service) GetUserReservations(ctx context.Context, req *models.GetUserReservationsRequest) (*models.ReservationListResponse, error) {
	s.logger.Info("GetUserReservations: fetching reservations for user=%d, status=%v", req.UserID, req.Status)

	var domainStatus *domain.ReservationStatus
	if req.Status != nil {
		status, err := models.ToDomainReservationStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserReservations: invalid status=%s for user=%d", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	reservations, err := s.reservationRepo.GetByUserID(ctx, req.UserID, domainStatus)
	if err != nil {
		s.logger.Error("GetUserReservations: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserReservations - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserReservations: fetched %d reservations for user=%d", len(reservations), req.UserID)
	return models.FromDomainReservationList(reservations), nil
}

// GetShopReservations получает бронирования магазина с фильтрацией
// по дню, статусу и включению отмененных
// Доступно только менеджерам магазина
func (s *Service) GetShopReservations(ctx context.Context, req *models.GetShopReservationsRequest) (*models.ReservationListResponse, error) {
	s.logger.Info("GetShopReservations: fetching reservations for shop=%d, user=%d", req.ShopID, req.UserID)

	if err := s.checkManagerAccess(ctx, req.ShopID, req.UserID); err != nil {
		return nil, err
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetShopReservations: invalid filter for shop=%d: %v", req.ShopID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	reservations, err := s.reservationRepo.GetByShopWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetShopReservations: repository error for shop=%d: %v", req.ShopID, err)
		return nil, fmt.Errorf("%w: GetShopReservations - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetShopReservations: fetched %d reservations for shop=%d", len(reservations), req.ShopID)
	return models.FromDomainReservationList(reservations), nil
}

// Cancel отменяет бронирование
// Пользователь может отменить только своё бронирование,
// менеджер — любое бронирование магазина
// Отмена — переход статуса; запись остается в истории
func (s *Service) Cancel(ctx context.Context, reservationID string, req *models.CancelReservationRequest) error {
	s.logger.Info("Cancel: cancelling reservation id=%s by user=%d", reservationID, req.UserID)

	reservation, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Cancel: reservation id=%s not found", reservationID)
			return ErrReservationNotFound
		}
		s.logger.Error("Cancel: repository error for reservation id=%s: %v", reservationID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if !reservation.CanBeCancelled() {
		s.logger.Warn("Cancel: reservation id=%s cannot be cancelled, status=%s", reservationID, reservation.Status)
		return ErrCannotCancel
	}

	// Владелец отменяет своё; иначе требуется доступ менеджера
	if reservation.UserID != req.UserID {
		if err := s.checkManagerAccess(ctx, reservation.ShopID, req.UserID); err != nil {
			s.logger.Warn("Cancel: access denied for user=%d to cancel reservation id=%s", req.UserID, reservationID)
			return ErrAccessDenied
		}
	}

	if err := s.reservationRepo.Cancel(ctx, reservationID, req.CancellationReason); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			return ErrReservationNotFound
		}
		s.logger.Error("Cancel: repository error for reservation id=%s: %v", reservationID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled reservation id=%s", reservationID)
	return nil
}

// Confirm подтверждает бронирование (pending -> confirmed)
// Доступно только менеджерам магазина
func (s *Service) Confirm(ctx context.Context, reservationID string, req *models.ConfirmReservationRequest) error {
	s.logger.Info("Confirm: confirming reservation id=%s by user=%d", reservationID, req.UserID)

	reservation, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Confirm: reservation id=%s not found", reservationID)
			return ErrReservationNotFound
		}
		s.logger.Error("Confirm: repository error for reservation id=%s: %v", reservationID, err)
		return fmt.Errorf("%w: Confirm - repository error: %v", ErrInternal, err)
	}

	if err := s.checkManagerAccess(ctx, reservation.ShopID, req.UserID); err != nil {
		return err
	}

	if !reservation.CanTransitionTo(domain.StatusConfirmed) {
		s.logger.Warn("Confirm: reservation id=%s cannot be confirmed, status=%s", reservationID, reservation.Status)
		return ErrCannotConfirm
	}

	if err := s.reservationRepo.UpdateStatus(ctx, reservationID, domain.StatusConfirmed); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			return ErrReservationNotFound
		}
		s.logger.Error("Confirm: repository error for reservation id=%s: %v", reservationID, err)
		return fmt.Errorf("%w: Confirm - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Confirm: successfully confirmed reservation id=%s", reservationID)
	return nil
}

// Вспомогательные методы

// checkUserAccess проверяет, что пользователь имеет доступ к бронированию
func (s *Service) checkUserAccess(ctx context.Context, reservation *domain.Reservation, userID int64) error {
	if reservation.UserID == userID {
		return nil
	}

	if err := s.checkManagerAccess(ctx, reservation.ShopID, userID); err != nil {
		return ErrAccessDenied
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
