package create_reservation

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmalkova/SRS-ReservationService/internal/api/middleware"
	"github.com/kmalkova/SRS-ReservationService/internal/domain"
	createReservation "github.com/kmalkova/SRS-ReservationService/internal/usecase/create_reservation"
)

type mockUseCase struct {
	gotReq *createReservation.Request
}

func (m *mockUseCase) Execute(_ context.Context, req *createReservation.Request) (*createReservation.Response, error) {
	m.gotReq = req
	return &createReservation.Response{
		ID:        "res-1",
		UserID:    req.UserID,
		ShopID:    req.ShopID,
		ServiceID: req.ServiceID,
		Window: domain.TimeWindow{
			Start: time.Date(2025, 10, 13, 10, 0, 0, 0, time.UTC),
			End:   time.Date(2025, 10, 13, 11, 0, 0, 0, time.UTC),
		},
		Status:    string(domain.StatusPending),
		CreatedAt: time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC),
	}, nil
}

type nopLogger struct{}

func (l *nopLogger) Info(_ string, _ ...interface{})  {}
func (l *nopLogger) Warn(_ string, _ ...interface{})  {}
func (l *nopLogger) Error(_ string, _ ...interface{}) {}

const createBody = `{
	"userId": 999,
	"shopId": 10,
	"serviceId": 3,
	"date": "2025-10-13",
	"startTime": "10:00",
	"endTime": "11:00"
}`

func TestHandler_Handle_UserIDFromContextOverridesBody(t *testing.T) {
	uc := &mockUseCase{}
	handler := middleware.Auth(http.HandlerFunc(NewHandler(uc, &nopLogger{}).Handle))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations", strings.NewReader(createBody))
	req.Header.Set("X-User-ID", "42")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, uc.gotReq)
	// userId из тела не имеет значения, бронирование создается
	// от имени пользователя из заголовка
	assert.Equal(t, int64(42), uc.gotReq.UserID)
	assert.Equal(t, int64(10), uc.gotReq.ShopID)
}

func TestHandler_Handle_MissingUserID(t *testing.T) {
	uc := &mockUseCase{}
	handler := NewHandler(uc, &nopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations", strings.NewReader(createBody))
	rec := httptest.NewRecorder()

	handler.Handle(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, uc.gotReq)
}
