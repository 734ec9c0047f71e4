package update_shop_schedule

import (
	"context"

	"github.com/kmalkova/SRS-ReservationService/internal/service/schedule/models"
)

type ScheduleService interface {
	UpdateSchedule(ctx context.Context, shopID int64, req *models.UpdateScheduleRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
