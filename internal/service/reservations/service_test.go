package reservations

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmalkova/SRS-ReservationService/internal/domain"
	reservationRepo "github.com/kmalkova/SRS-ReservationService/internal/infra/storage/reservation"
	"github.com/kmalkova/SRS-ReservationService/internal/integrations/shopservice"
	"github.com/kmalkova/SRS-ReservationService/internal/service/reservations/models"
	"github.com/kmalkova/SRS-ReservationService/pkg/ptr"
)

type mockReservationRepo struct {
	byID      map[string]*domain.Reservation
	cancelled map[string]string
	statuses  map[string]domain.ReservationStatus
}

func newMockReservationRepo(reservations ...*domain.Reservation) *mockReservationRepo {
	m := &mockReservationRepo{
		byID:      make(map[string]*domain.Reservation),
		cancelled: make(map[string]string),
		statuses:  make(map[string]domain.ReservationStatus),
	}
	for _, r := range reservations {
		m.byID[r.ID] = r
	}
	return m
}

func (m *mockReservationRepo) GetByID(_ context.Context, id string) (*domain.Reservation, error) {
	r, ok := m.byID[id]
	if !ok {
		return nil, reservationRepo.ErrReservationNotFound
	}
	return r, nil
}

func (m *mockReservationRepo) GetByUserID(_ context.Context, userID int64, status *domain.ReservationStatus) ([]*domain.Reservation, error) {
	var out []*domain.Reservation
	for _, r := range m.byID {
		if r.UserID != userID {
			continue
		}
		if status != nil && r.Status != *status {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (m *mockReservationRepo) GetByShopWithFilter(_ context.Context, filter domain.ShopReservationsFilter) ([]*domain.Reservation, error) {
	var out []*domain.Reservation
	for _, r := range m.byID {
		if r.ShopID != filter.ShopID {
			continue
		}
		if !filter.IncludeCancelled && r.Status == domain.StatusCancelled {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (m *mockReservationRepo) UpdateStatus(_ context.Context, id string, status domain.ReservationStatus) error {
	if _, ok := m.byID[id]; !ok {
		return reservationRepo.ErrReservationNotFound
	}
	m.statuses[id] = status
	return nil
}

func (m *mockReservationRepo) Cancel(_ context.Context, id string, reason string) error {
	if _, ok := m.byID[id]; !ok {
		return reservationRepo.ErrReservationNotFound
	}
	m.cancelled[id] = reason
	return nil
}

type mockShopClient struct {
	shop *shopservice.Shop
	err  error
}

func (m *mockShopClient) GetShop(_ context.Context, _ int64) (*shopservice.Shop, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.shop, nil
}

type nopLogger struct{}

func (l *nopLogger) Info(_ string, _ ...interface{})  {}
func (l *nopLogger) Warn(_ string, _ ...interface{})  {}
func (l *nopLogger) Error(_ string, _ ...interface{}) {}

func testReservation(id string, userID int64, status domain.ReservationStatus) *domain.Reservation {
	return &domain.Reservation{
		ID:        id,
		UserID:    userID,
		ShopID:    10,
		ServiceID: 100,
		Window: domain.TimeWindow{
			Start: time.Date(2025, 10, 13, 10, 0, 0, 0, time.UTC),
			End:   time.Date(2025, 10, 13, 11, 0, 0, 0, time.UTC),
		},
		Status: status,
	}
}

func newTestService(repo *mockReservationRepo, shop *shopservice.Shop) *Service {
	return NewService(repo, &mockShopClient{shop: shop}, &nopLogger{})
}

func TestService_GetByID(t *testing.T) {
	repo := newMockReservationRepo(testReservation("res-1", 1, domain.StatusPending))
	svc := newTestService(repo, &shopservice.Shop{ID: 10, ManagerIDs: []int64{50}})

	t.Run("owner can view", func(t *testing.T) {
		resp, err := svc.GetByID(context.Background(), "res-1", 1)
		require.NoError(t, err)
		assert.Equal(t, "res-1", resp.ID)
		assert.Equal(t, "2025-10-13", resp.Date)
		assert.Equal(t, "10:00", resp.StartTime)
		assert.Equal(t, "11:00", resp.EndTime)
	})

	t.Run("manager can view", func(t *testing.T) {
		resp, err := svc.GetByID(context.Background(), "res-1", 50)
		require.NoError(t, err)
		assert.Equal(t, "res-1", resp.ID)
	})

	t.Run("stranger gets access denied", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), "res-1", 99)
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("missing reservation", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), "missing", 1)
		assert.ErrorIs(t, err, ErrReservationNotFound)
	})
}

func TestService_GetUserReservations(t *testing.T) {
	repo := newMockReservationRepo(
		testReservation("res-1", 1, domain.StatusPending),
		testReservation("res-2", 1, domain.StatusCancelled),
		testReservation("res-3", 2, domain.StatusConfirmed),
	)
	svc := newTestService(repo, &shopservice.Shop{ID: 10})

	t.Run("all user reservations", func(t *testing.T) {
		resp, err := svc.GetUserReservations(context.Background(), &models.GetUserReservationsRequest{UserID: 1})
		require.NoError(t, err)
		assert.Len(t, resp.Reservations, 2)
	})

	t.Run("filtered by status", func(t *testing.T) {
		resp, err := svc.GetUserReservations(context.Background(), &models.GetUserReservationsRequest{
			UserID: 1,
			Status: ptr.Ptr("cancelled"),
		})
		require.NoError(t, err)
		require.Len(t, resp.Reservations, 1)
		assert.Equal(t, "res-2", resp.Reservations[0].ID)
	})

	t.Run("invalid status", func(t *testing.T) {
		_, err := svc.GetUserReservations(context.Background(), &models.GetUserReservationsRequest{
			UserID: 1,
			Status: ptr.Ptr("done"),
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestService_GetShopReservations(t *testing.T) {
	repo := newMockReservationRepo(
		testReservation("res-1", 1, domain.StatusPending),
		testReservation("res-2", 2, domain.StatusCancelled),
	)
	svc := newTestService(repo, &shopservice.Shop{ID: 10, ManagerIDs: []int64{50}})

	t.Run("manager sees active by default", func(t *testing.T) {
		resp, err := svc.GetShopReservations(context.Background(), &models.GetShopReservationsRequest{
			UserID: 50,
			ShopID: 10,
		})
		require.NoError(t, err)
		assert.Len(t, resp.Reservations, 1)
	})

	t.Run("includeCancelled returns history", func(t *testing.T) {
		resp, err := svc.GetShopReservations(context.Background(), &models.GetShopReservationsRequest{
			UserID:           50,
			ShopID:           10,
			IncludeCancelled: true,
		})
		require.NoError(t, err)
		assert.Len(t, resp.Reservations, 2)
	})

	t.Run("non-manager denied", func(t *testing.T) {
		_, err := svc.GetShopReservations(context.Background(), &models.GetShopReservationsRequest{
			UserID: 1,
			ShopID: 10,
		})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})
}

func TestService_Cancel(t *testing.T) {
	t.Run("owner cancels pending", func(t *testing.T) {
		repo := newMockReservationRepo(testReservation("res-1", 1, domain.StatusPending))
		svc := newTestService(repo, &shopservice.Shop{ID: 10})

		err := svc.Cancel(context.Background(), "res-1", &models.CancelReservationRequest{
			UserID:             1,
			CancellationReason: "передумал",
		})
		require.NoError(t, err)
		assert.Equal(t, "передумал", repo.cancelled["res-1"])
	})

	t.Run("manager cancels someone else's", func(t *testing.T) {
		repo := newMockReservationRepo(testReservation("res-1", 1, domain.StatusConfirmed))
		svc := newTestService(repo, &shopservice.Shop{ID: 10, ManagerIDs: []int64{50}})

		err := svc.Cancel(context.Background(), "res-1", &models.CancelReservationRequest{UserID: 50})
		assert.NoError(t, err)
	})

	t.Run("stranger denied", func(t *testing.T) {
		repo := newMockReservationRepo(testReservation("res-1", 1, domain.StatusPending))
		svc := newTestService(repo, &shopservice.Shop{ID: 10})

		err := svc.Cancel(context.Background(), "res-1", &models.CancelReservationRequest{UserID: 99})
		assert.ErrorIs(t, err, ErrAccessDenied)
		assert.Empty(t, repo.cancelled)
	})

	t.Run("already cancelled", func(t *testing.T) {
		repo := newMockReservationRepo(testReservation("res-1", 1, domain.StatusCancelled))
		svc := newTestService(repo, &shopservice.Shop{ID: 10})

		err := svc.Cancel(context.Background(), "res-1", &models.CancelReservationRequest{UserID: 1})
		assert.ErrorIs(t, err, ErrCannotCancel)
	})
}

func TestService_Confirm(t *testing.T) {
	t.Run("manager confirms pending", func(t *testing.T) {
		repo := newMockReservationRepo(testReservation("res-1", 1, domain.StatusPending))
		svc := newTestService(repo, &shopservice.Shop{ID: 10, ManagerIDs: []int64{50}})

		err := svc.Confirm(context.Background(), "res-1", &models.ConfirmReservationRequest{UserID: 50})
		require.NoError(t, err)
		assert.Equal(t, domain.StatusConfirmed, repo.statuses["res-1"])
	})

	t.Run("owner cannot confirm", func(t *testing.T) {
		repo := newMockReservationRepo(testReservation("res-1", 1, domain.StatusPending))
		svc := newTestService(repo, &shopservice.Shop{ID: 10, ManagerIDs: []int64{50}})

		err := svc.Confirm(context.Background(), "res-1", &models.ConfirmReservationRequest{UserID: 1})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("cancelled cannot be confirmed", func(t *testing.T) {
		repo := newMockReservationRepo(testReservation("res-1", 1, domain.StatusCancelled))
		svc := newTestService(repo, &shopservice.Shop{ID: 10, ManagerIDs: []int64{50}})

		err := svc.Confirm(context.Background(), "res-1", &models.ConfirmReservationRequest{UserID: 50})
		assert.ErrorIs(t, err, ErrCannotConfirm)
	})
}
