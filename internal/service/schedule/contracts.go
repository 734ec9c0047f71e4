package schedule

import (
	"context"

	"github.com/kmalkova/SRS-ReservationService/internal/domain"
	"github.com/kmalkova/SRS-ReservationService/internal/integrations/shopservice"
)

// ScheduleRepository интерфейс репозитория расписаний
type ScheduleRepository interface {
	GetWeeklySchedule(ctx context.Context, shopID int64) (domain.WeeklySchedule, error)
	GetBreakWindows(ctx context.Context, shopID int64) ([]domain.BreakWindow, error)
	ReplaceSchedule(ctx context.Context, shopID int64, schedule domain.WeeklySchedule, breaks []domain.BreakWindow) error
}

// ShopServiceClient интерфейс клиента для ShopService
type ShopServiceClient interface {
	GetShop(ctx context.Context, shopID int64) (*shopservice.Shop, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
