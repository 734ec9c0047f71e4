package check_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmalkova/SRS-ReservationService/internal/domain"
	"github.com/kmalkova/SRS-ReservationService/internal/engine"
	"github.com/kmalkova/SRS-ReservationService/internal/integrations/shopservice"
	"github.com/kmalkova/SRS-ReservationService/pkg/types"
)

type mockReservationRepo struct {
	reservations []*domain.Reservation
}

func (m *mockReservationRepo) GetByShopWithFilter(_ context.Context, filter domain.ShopReservationsFilter) ([]*domain.Reservation, error) {
	var out []*domain.Reservation
	for _, r := range m.reservations {
		if r.ShopID == filter.ShopID {
			out = append(out, r)
		}
	}
	return out, nil
}

type mockScheduleRepo struct {
	schedule domain.WeeklySchedule
	breaks   []domain.BreakWindow
}

func (m *mockScheduleRepo) GetWeeklySchedule(_ context.Context, _ int64) (domain.WeeklySchedule, error) {
	return m.schedule, nil
}

func (m *mockScheduleRepo) GetBreakWindows(_ context.Context, _ int64) ([]domain.BreakWindow, error) {
	return m.breaks, nil
}

type mockShopClient struct {
	shop *shopservice.Shop
}

func (m *mockShopClient) GetShop(_ context.Context, _ int64) (*shopservice.Shop, error) {
	return m.shop, nil
}

type stubTxManager struct {
	readOnlyCalls int
}

func (m *stubTxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	m.readOnlyCalls++
	return fn(ctx)
}

type nopLogger struct{}

func (l *nopLogger) Info(_ string, _ ...interface{})  {}
func (l *nopLogger) Warn(_ string, _ ...interface{})  {}
func (l *nopLogger) Error(_ string, _ ...interface{}) {}

func weekdaySchedule() domain.WeeklySchedule {
	open := domain.DayHours{IsOpen: true, Open: "09:00", Close: "18:00"}
	closed := domain.DayHours{IsOpen: false}
	return domain.WeeklySchedule{
		time.Monday:    open,
		time.Tuesday:   open,
		time.Wednesday: open,
		time.Thursday:  open,
		time.Friday:    open,
		time.Saturday:  closed,
		time.Sunday:    closed,
	}
}

// Понедельник 2025-10-13
var testDate = time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC)

func newTestUseCase(resRepo *mockReservationRepo, schedRepo *mockScheduleRepo) *UseCase {
	return NewUseCase(resRepo, schedRepo,
		&mockShopClient{shop: &shopservice.Shop{ID: 10, Timezone: "UTC"}}, &stubTxManager{}, &nopLogger{})
}

func TestUseCase_Execute_Available(t *testing.T) {
	uc := newTestUseCase(&mockReservationRepo{}, &mockScheduleRepo{schedule: weekdaySchedule()})

	resp, err := uc.Execute(context.Background(), &Request{
		ShopID:    10,
		Date:      testDate,
		StartTime: types.TimeString("10:00"),
		EndTime:   types.TimeString("11:00"),
	})
	require.NoError(t, err)

	assert.True(t, resp.Available)
	assert.Empty(t, resp.Reason)
	assert.Empty(t, resp.ConflictingIDs)
}

func TestUseCase_Execute_ConflictListsIDs(t *testing.T) {
	resRepo := &mockReservationRepo{
		reservations: []*domain.Reservation{
			{
				ID:     "res-1",
				ShopID: 10,
				Window: domain.TimeWindow{
					Start: time.Date(2025, 10, 13, 10, 0, 0, 0, time.UTC),
					End:   time.Date(2025, 10, 13, 11, 0, 0, 0, time.UTC),
				},
				Status: domain.StatusPending,
			},
			{
				ID:     "res-2",
				ShopID: 10,
				Window: domain.TimeWindow{
					Start: time.Date(2025, 10, 13, 10, 30, 0, 0, time.UTC),
					End:   time.Date(2025, 10, 13, 11, 30, 0, 0, time.UTC),
				},
				Status: domain.StatusConfirmed,
			},
		},
	}
	uc := newTestUseCase(resRepo, &mockScheduleRepo{schedule: weekdaySchedule()})

	resp, err := uc.Execute(context.Background(), &Request{
		ShopID:    10,
		Date:      testDate,
		StartTime: types.TimeString("10:00"),
		EndTime:   types.TimeString("11:00"),
	})
	require.NoError(t, err)

	assert.False(t, resp.Available)
	assert.Equal(t, string(engine.ReasonConflict), resp.Reason)
	assert.Equal(t, []string{"res-1", "res-2"}, resp.ConflictingIDs)
}

func TestUseCase_Execute_ExcludeIDSkipsSelf(t *testing.T) {
	resRepo := &mockReservationRepo{
		reservations: []*domain.Reservation{
			{
				ID:     "res-1",
				ShopID: 10,
				Window: domain.TimeWindow{
					Start: time.Date(2025, 10, 13, 10, 0, 0, 0, time.UTC),
					End:   time.Date(2025, 10, 13, 11, 0, 0, 0, time.UTC),
				},
				Status: domain.StatusPending,
			},
		},
	}
	uc := newTestUseCase(resRepo, &mockScheduleRepo{schedule: weekdaySchedule()})

	resp, err := uc.Execute(context.Background(), &Request{
		ShopID:    10,
		Date:      testDate,
		StartTime: types.TimeString("10:00"),
		EndTime:   types.TimeString("11:00"),
		ExcludeID: "res-1",
	})
	require.NoError(t, err)
	assert.True(t, resp.Available)
}

func TestUseCase_Execute_ClosedDay(t *testing.T) {
	uc := newTestUseCase(&mockReservationRepo{}, &mockScheduleRepo{schedule: weekdaySchedule()})

	// Суббота 2025-10-18
	resp, err := uc.Execute(context.Background(), &Request{
		ShopID:    10,
		Date:      time.Date(2025, 10, 18, 0, 0, 0, 0, time.UTC),
		StartTime: types.TimeString("10:00"),
		EndTime:   types.TimeString("11:00"),
	})
	require.NoError(t, err)

	assert.False(t, resp.Available)
	assert.Equal(t, string(engine.ReasonOutsideBusinessHours), resp.Reason)
}

func TestUseCase_Execute_ReadsSnapshotInReadOnlyTx(t *testing.T) {
	txMgr := &stubTxManager{}
	uc := NewUseCase(&mockReservationRepo{}, &mockScheduleRepo{schedule: weekdaySchedule()},
		&mockShopClient{shop: &shopservice.Shop{ID: 10, Timezone: "UTC"}}, txMgr, &nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		ShopID:    10,
		Date:      testDate,
		StartTime: types.TimeString("10:00"),
		EndTime:   types.TimeString("11:00"),
	})
	require.NoError(t, err)

	assert.True(t, resp.Available)
	assert.Equal(t, 1, txMgr.readOnlyCalls)
}

func TestUseCase_Execute_MisconfiguredShop(t *testing.T) {
	uc := newTestUseCase(&mockReservationRepo{}, &mockScheduleRepo{schedule: domain.WeeklySchedule{}})

	_, err := uc.Execute(context.Background(), &Request{
		ShopID:    10,
		Date:      testDate,
		StartTime: types.TimeString("10:00"),
		EndTime:   types.TimeString("11:00"),
	})
	assert.ErrorIs(t, err, ErrShopNotConfigured)
}
