package get_shop_reservations

import (
	"context"

	"github.com/kmalkova/SRS-ReservationService/internal/service/reservations/models"
)

type ReservationService interface {
	GetShopReservations(ctx context.Context, req *models.GetShopReservationsRequest) (*models.ReservationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
