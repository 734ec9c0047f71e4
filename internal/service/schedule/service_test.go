package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmalkova/SRS-ReservationService/internal/domain"
	scheduleRepo "github.com/kmalkova/SRS-ReservationService/internal/infra/storage/schedule"
	"github.com/kmalkova/SRS-ReservationService/internal/integrations/shopservice"
	"github.com/kmalkova/SRS-ReservationService/internal/service/schedule/models"
	"github.com/kmalkova/SRS-ReservationService/pkg/ptr"
)

type mockScheduleRepo struct {
	schedule domain.WeeklySchedule
	breaks   []domain.BreakWindow

	replacedSchedule domain.WeeklySchedule
	replacedBreaks   []domain.BreakWindow
}

func (m *mockScheduleRepo) GetWeeklySchedule(_ context.Context, _ int64) (domain.WeeklySchedule, error) {
	if m.schedule == nil {
		return nil, scheduleRepo.ErrScheduleNotFound
	}
	return m.schedule, nil
}

func (m *mockScheduleRepo) GetBreakWindows(_ context.Context, _ int64) ([]domain.BreakWindow, error) {
	return m.breaks, nil
}

func (m *mockScheduleRepo) ReplaceSchedule(_ context.Context, _ int64, schedule domain.WeeklySchedule, breaks []domain.BreakWindow) error {
	m.replacedSchedule = schedule
	m.replacedBreaks = breaks
	return nil
}

type mockShopClient struct {
	shop *shopservice.Shop
}

func (m *mockShopClient) GetShop(_ context.Context, _ int64) (*shopservice.Shop, error) {
	return m.shop, nil
}

type stubTxManager struct{}

func (m *stubTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (l *nopLogger) Info(_ string, _ ...interface{})  {}
func (l *nopLogger) Warn(_ string, _ ...interface{})  {}
func (l *nopLogger) Error(_ string, _ ...interface{}) {}

func newTestService(repo *mockScheduleRepo, shop *shopservice.Shop) *Service {
	return NewService(repo, &mockShopClient{shop: shop}, &stubTxManager{}, &nopLogger{})
}

func openDays(days ...time.Weekday) []models.DayHoursDTO {
	isOpen := map[time.Weekday]bool{}
	for _, d := range days {
		isOpen[d] = true
	}

	order := []time.Weekday{
		time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
		time.Friday, time.Saturday, time.Sunday,
	}
	names := map[time.Weekday]string{
		time.Monday: "monday", time.Tuesday: "tuesday", time.Wednesday: "wednesday",
		time.Thursday: "thursday", time.Friday: "friday", time.Saturday: "saturday",
		time.Sunday: "sunday",
	}

	out := make([]models.DayHoursDTO, 0, 7)
	for _, d := range order {
		dto := models.DayHoursDTO{Weekday: names[d]}
		if isOpen[d] {
			dto.IsOpen = true
			dto.Open = ptr.Ptr("09:00")
			dto.Close = ptr.Ptr("18:00")
		}
		out = append(out, dto)
	}
	return out
}

func TestService_GetSchedule(t *testing.T) {
	t.Run("existing schedule", func(t *testing.T) {
		repo := &mockScheduleRepo{
			schedule: domain.WeeklySchedule{
				time.Monday: {IsOpen: true, Open: "09:00", Close: "18:00"},
			},
			breaks: []domain.BreakWindow{{Start: "12:00", End: "13:00"}},
		}
		svc := newTestService(repo, &shopservice.Shop{ID: 10})

		resp, err := svc.GetSchedule(context.Background(), 10)
		require.NoError(t, err)
		assert.Equal(t, int64(10), resp.ShopID)
		assert.Len(t, resp.Days, 7)
		require.Len(t, resp.Breaks, 1)
		assert.Equal(t, "12:00", resp.Breaks[0].Start)
	})

	t.Run("no schedule", func(t *testing.T) {
		svc := newTestService(&mockScheduleRepo{}, &shopservice.Shop{ID: 10})

		_, err := svc.GetSchedule(context.Background(), 10)
		assert.ErrorIs(t, err, ErrScheduleNotFound)
	})
}

func TestService_UpdateSchedule(t *testing.T) {
	manager := &shopservice.Shop{ID: 10, ManagerIDs: []int64{50}}

	t.Run("valid schedule with break", func(t *testing.T) {
		repo := &mockScheduleRepo{}
		svc := newTestService(repo, manager)

		err := svc.UpdateSchedule(context.Background(), 10, &models.UpdateScheduleRequest{
			UserID: 50,
			Days:   openDays(time.Monday, time.Friday),
			Breaks: []models.BreakWindowDTO{{Start: "12:00", End: "13:00"}},
		})
		require.NoError(t, err)
		assert.True(t, repo.replacedSchedule[time.Monday].IsOpen)
		require.Len(t, repo.replacedBreaks, 1)
	})

	t.Run("non-manager denied", func(t *testing.T) {
		svc := newTestService(&mockScheduleRepo{}, manager)

		err := svc.UpdateSchedule(context.Background(), 10, &models.UpdateScheduleRequest{
			UserID: 1,
			Days:   openDays(time.Monday),
		})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("open not before close", func(t *testing.T) {
		svc := newTestService(&mockScheduleRepo{}, manager)

		days := openDays(time.Monday)
		days[0].Open = ptr.Ptr("18:00")
		days[0].Close = ptr.Ptr("09:00")

		err := svc.UpdateSchedule(context.Background(), 10, &models.UpdateScheduleRequest{
			UserID: 50,
			Days:   days,
		})
		assert.ErrorIs(t, err, ErrInvalidHours)
	})

	t.Run("break outside working hours", func(t *testing.T) {
		svc := newTestService(&mockScheduleRepo{}, manager)

		err := svc.UpdateSchedule(context.Background(), 10, &models.UpdateScheduleRequest{
			UserID: 50,
			Days:   openDays(time.Monday),
			Breaks: []models.BreakWindowDTO{{Start: "08:00", End: "10:00"}},
		})
		assert.ErrorIs(t, err, ErrInvalidBreak)
	})

	t.Run("break start not before end", func(t *testing.T) {
		svc := newTestService(&mockScheduleRepo{}, manager)

		err := svc.UpdateSchedule(context.Background(), 10, &models.UpdateScheduleRequest{
			UserID: 50,
			Days:   openDays(time.Monday),
			Breaks: []models.BreakWindowDTO{{Start: "13:00", End: "12:00"}},
		})
		assert.ErrorIs(t, err, ErrInvalidBreak)
	})

	t.Run("open day without times", func(t *testing.T) {
		svc := newTestService(&mockScheduleRepo{}, manager)

		days := openDays(time.Monday)
		days[0].Open = nil
		days[0].Close = nil

		err := svc.UpdateSchedule(context.Background(), 10, &models.UpdateScheduleRequest{
			UserID: 50,
			Days:   days,
		})
		assert.ErrorIs(t, err, ErrInvalidHours)
	})
}
