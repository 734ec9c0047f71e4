package get_shop_schedule

import (
	"context"

	"github.com/kmalkova/SRS-ReservationService/internal/service/schedule/models"
)

type ScheduleService interface {
	GetSchedule(ctx context.Context, shopID int64) (*models.ScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
