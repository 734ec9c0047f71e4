package get_shop_reservations

import (
	"strconv"
	"time"

	"github.com/kmalkova/SRS-ReservationService/internal/domain"
	"github.com/kmalkova/SRS-ReservationService/internal/service/reservations/models"
)

// ToServiceRequest собирает запрос к сервису из path и query параметров
func ToServiceRequest(shopID, userID int64, dayStr, statusStr, includeCancelledStr string) (*models.GetShopReservationsRequest, error) {
	req := &models.GetShopReservationsRequest{
		UserID: userID,
		ShopID: shopID,
	}

	if dayStr != "" {
		day, err := time.Parse(domain.DateFormat, dayStr)
		if err != nil {
			return nil, err
		}
		req.Day = &day
	}

	if statusStr != "" {
		req.Status = &statusStr
	}

	if includeCancelledStr != "" {
		includeCancelled, err := strconv.ParseBool(includeCancelledStr)
		if err != nil {
			return nil, err
		}
		req.IncludeCancelled = includeCancelled
	}

	return req, nil
}
