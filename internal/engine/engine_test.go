package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kmalkova/SRS-ReservationService/internal/domain"
)

// monday 2025-10-13 — все тестовые окна строятся на этой дате
var monday = time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC)

func at(hour, minute int) time.Time {
	return monday.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
}

func win(startHour, startMin, endHour, endMin int) domain.TimeWindow {
	return domain.TimeWindow{Start: at(startHour, startMin), End: at(endHour, endMin)}
}

// weekdaySchedule магазин открыт пн-пт 09:00-18:00
func weekdaySchedule() domain.WeeklySchedule {
	schedule := domain.WeeklySchedule{}
	for _, day := range []time.Weekday{
		time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday,
	} {
		schedule[day] = domain.DayHours{IsOpen: true, Open: "09:00", Close: "18:00"}
	}
	schedule[time.Saturday] = domain.DayHours{IsOpen: false}
	schedule[time.Sunday] = domain.DayHours{IsOpen: false}
	return schedule
}

func candidate(shopID int64, w domain.TimeWindow) *domain.Reservation {
	return &domain.Reservation{
		ID:        "candidate",
		UserID:    1,
		ShopID:    shopID,
		ServiceID: 1,
		Window:    w,
		Status:    domain.StatusPending,
	}
}

func existing(id string, shopID int64, status domain.ReservationStatus, w domain.TimeWindow) *domain.Reservation {
	return &domain.Reservation{
		ID:     id,
		ShopID: shopID,
		Window: w,
		Status: status,
	}
}

func TestValidate_Accepted(t *testing.T) {
	outcome, err := Validate(
		candidate(1, win(10, 0, 11, 0)),
		weekdaySchedule(),
		nil,
		nil,
		"",
	)

	require.NoError(t, err)
	assert.True(t, outcome.Accepted)
	assert.Empty(t, outcome.Reason)
	assert.Empty(t, outcome.ConflictingIDs)
}

func TestValidate_InvalidWindow(t *testing.T) {
	tests := []struct {
		name   string
		window domain.TimeWindow
	}{
		{"start equals end", win(10, 0, 10, 0)},
		{"start after end", win(11, 0, 10, 0)},
		{"cross midnight", domain.TimeWindow{Start: at(23, 0), End: at(23, 30).AddDate(0, 0, 1)}},
		{"zero window", domain.TimeWindow{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome, err := Validate(candidate(1, tt.window), weekdaySchedule(), nil, nil, "")
			require.NoError(t, err)
			assert.False(t, outcome.Accepted)
			assert.Equal(t, ReasonInvalidWindow, outcome.Reason)
		})
	}
}

func TestValidate_OutsideBusinessHours(t *testing.T) {
	tests := []struct {
		name   string
		window domain.TimeWindow
	}{
		// Магазин открыт пн 09:00-18:00, кандидат пн 08:00-08:30
		{"before opening", win(8, 0, 8, 30)},
		{"straddles opening", win(8, 30, 9, 30)},
		{"after closing", win(18, 30, 19, 0)},
		{"straddles closing", win(17, 30, 18, 30)},
		{"closed day", domain.TimeWindow{
			Start: at(10, 0).AddDate(0, 0, 5), // суббота
			End:   at(11, 0).AddDate(0, 0, 5),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome, err := Validate(candidate(1, tt.window), weekdaySchedule(), nil, nil, "")
			require.NoError(t, err)
			assert.False(t, outcome.Accepted)
			assert.Equal(t, ReasonOutsideBusinessHours, outcome.Reason)
		})
	}
}

func TestValidate_ExactlyBusinessHours(t *testing.T) {
	// Окно ровно от открытия до закрытия допустимо
	outcome, err := Validate(candidate(1, win(9, 0, 18, 0)), weekdaySchedule(), nil, nil, "")
	require.NoError(t, err)
	assert.True(t, outcome.Accepted)
}

// Границы сравниваются по инстантам, а не по усеченным "HH:MM":
// окно, выходящее за закрытие или заходящее в перерыв на секунды,
// отклоняется
func TestValidate_SubMinuteBounds(t *testing.T) {
	t.Run("end seconds past close", func(t *testing.T) {
		window := domain.TimeWindow{
			Start: at(17, 0),
			End:   at(18, 0).Add(30 * time.Second),
		}

		outcome, err := Validate(candidate(1, window), weekdaySchedule(), nil, nil, "")
		require.NoError(t, err)
		assert.False(t, outcome.Accepted)
		assert.Equal(t, ReasonOutsideBusinessHours, outcome.Reason)
	})

	t.Run("start seconds before open", func(t *testing.T) {
		window := domain.TimeWindow{
			Start: at(9, 0).Add(-30 * time.Second),
			End:   at(10, 0),
		}

		outcome, err := Validate(candidate(1, window), weekdaySchedule(), nil, nil, "")
		require.NoError(t, err)
		assert.False(t, outcome.Accepted)
		assert.Equal(t, ReasonOutsideBusinessHours, outcome.Reason)
	})

	t.Run("end seconds into break", func(t *testing.T) {
		window := domain.TimeWindow{
			Start: at(11, 0),
			End:   at(12, 0).Add(30 * time.Second),
		}
		breaks := []domain.BreakWindow{{Start: "12:00", End: "13:00"}}

		outcome, err := Validate(candidate(1, window), weekdaySchedule(), breaks, nil, "")
		require.NoError(t, err)
		assert.False(t, outcome.Accepted)
		assert.Equal(t, ReasonDuringBreak, outcome.Reason)
	})

	t.Run("sub-minute window inside hours accepted", func(t *testing.T) {
		window := domain.TimeWindow{
			Start: at(10, 0).Add(15 * time.Second),
			End:   at(10, 0).Add(45 * time.Second),
		}

		outcome, err := Validate(candidate(1, window), weekdaySchedule(), nil, nil, "")
		require.NoError(t, err)
		assert.True(t, outcome.Accepted)
	})
}

func TestValidate_DuringBreak(t *testing.T) {
	breaks := []domain.BreakWindow{{Start: "12:00", End: "13:00"}}

	tests := []struct {
		name    string
		window  domain.TimeWindow
		blocked bool
	}{
		// Перерыв 12:00-13:00, кандидат 12:30-13:30 того же дня
		{"overlaps break end", win(12, 30, 13, 30), true},
		{"overlaps break start", win(11, 30, 12, 30), true},
		{"inside break", win(12, 15, 12, 45), true},
		{"covers break", win(11, 0, 14, 0), true},
		{"ends at break start", win(11, 0, 12, 0), false},
		{"starts at break end", win(13, 0, 14, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome, err := Validate(candidate(1, tt.window), weekdaySchedule(), breaks, nil, "")
			require.NoError(t, err)
			if tt.blocked {
				assert.False(t, outcome.Accepted)
				assert.Equal(t, ReasonDuringBreak, outcome.Reason)
			} else {
				assert.True(t, outcome.Accepted)
			}
		})
	}
}

func TestValidate_Conflict(t *testing.T) {
	// Существующее подтвержденное бронирование 10:00-11:00,
	// кандидат 10:30-11:30 в том же магазине
	reservations := []*domain.Reservation{
		existing("res-1", 1, domain.StatusConfirmed, win(10, 0, 11, 0)),
	}

	outcome, err := Validate(candidate(1, win(10, 30, 11, 30)), weekdaySchedule(), nil, reservations, "")
	require.NoError(t, err)
	assert.False(t, outcome.Accepted)
	assert.Equal(t, ReasonConflict, outcome.Reason)
	assert.Equal(t, []string{"res-1"}, outcome.ConflictingIDs)
}

func TestValidate_ConflictStrictlyContained(t *testing.T) {
	// Кандидат, целиком лежащий внутри активного окна, всегда конфликтует
	for _, status := range []domain.ReservationStatus{domain.StatusPending, domain.StatusConfirmed} {
		t.Run(string(status), func(t *testing.T) {
			reservations := []*domain.Reservation{
				existing("res-1", 1, status, win(10, 0, 12, 0)),
			}

			outcome, err := Validate(candidate(1, win(10, 30, 11, 0)), weekdaySchedule(), nil, reservations, "")
			require.NoError(t, err)
			assert.Equal(t, ReasonConflict, outcome.Reason)
			assert.Equal(t, []string{"res-1"}, outcome.ConflictingIDs)
		})
	}
}

func TestValidate_CancelledNeverBlocks(t *testing.T) {
	// Отмененное бронирование не участвует в поиске конфликтов,
	// даже при полном совпадении окон
	reservations := []*domain.Reservation{
		existing("res-1", 1, domain.StatusCancelled, win(10, 0, 11, 0)),
	}

	outcome, err := Validate(candidate(1, win(10, 0, 11, 0)), weekdaySchedule(), nil, reservations, "")
	require.NoError(t, err)
	assert.True(t, outcome.Accepted)
}

func TestValidate_BackToBackReservations(t *testing.T) {
	// Граничащие окна (a.end == b.start) не пересекаются
	reservations := []*domain.Reservation{
		existing("res-1", 1, domain.StatusConfirmed, win(10, 0, 11, 0)),
	}

	outcome, err := Validate(candidate(1, win(11, 0, 12, 0)), weekdaySchedule(), nil, reservations, "")
	require.NoError(t, err)
	assert.True(t, outcome.Accepted)
}

func TestValidate_OtherShopNeverConflicts(t *testing.T) {
	reservations := []*domain.Reservation{
		existing("res-1", 2, domain.StatusConfirmed, win(10, 0, 11, 0)),
	}

	outcome, err := Validate(candidate(1, win(10, 0, 11, 0)), weekdaySchedule(), nil, reservations, "")
	require.NoError(t, err)
	assert.True(t, outcome.Accepted)
}

func TestValidate_ExcludeIDSkipsSelf(t *testing.T) {
	// Перенос бронирования X на 10 минут: с excludeID = X.id
	// собственное прежнее окно не считается конфликтом
	self := existing("res-x", 1, domain.StatusConfirmed, win(10, 0, 11, 0))
	other := existing("res-y", 1, domain.StatusConfirmed, win(14, 0, 15, 0))
	reservations := []*domain.Reservation{self, other}

	shifted := candidate(1, win(10, 10, 11, 10))
	shifted.ID = "res-x"

	outcome, err := Validate(shifted, weekdaySchedule(), nil, reservations, "res-x")
	require.NoError(t, err)
	assert.True(t, outcome.Accepted)

	// Без excludeID то же окно конфликтует с самим собой
	outcome, err = Validate(shifted, weekdaySchedule(), nil, reservations, "")
	require.NoError(t, err)
	assert.Equal(t, ReasonConflict, outcome.Reason)
	assert.Equal(t, []string{"res-x"}, outcome.ConflictingIDs)
}

func TestValidate_MultipleConflictsListed(t *testing.T) {
	reservations := []*domain.Reservation{
		existing("res-1", 1, domain.StatusConfirmed, win(10, 0, 11, 0)),
		existing("res-2", 1, domain.StatusPending, win(10, 45, 11, 45)),
		existing("res-3", 1, domain.StatusCancelled, win(10, 30, 11, 30)),
		existing("res-4", 1, domain.StatusConfirmed, win(16, 0, 17, 0)),
	}

	outcome, err := Validate(candidate(1, win(10, 30, 11, 30)), weekdaySchedule(), nil, reservations, "")
	require.NoError(t, err)
	assert.Equal(t, ReasonConflict, outcome.Reason)
	assert.Equal(t, []string{"res-1", "res-2"}, outcome.ConflictingIDs)
}

func TestValidate_CheckOrderShortCircuits(t *testing.T) {
	// Окно вне рабочих часов не доходит до проверки конфликтов,
	// даже если пересекается с существующим бронированием
	reservations := []*domain.Reservation{
		existing("res-1", 1, domain.StatusConfirmed, win(8, 0, 9, 0)),
	}

	outcome, err := Validate(candidate(1, win(8, 0, 8, 30)), weekdaySchedule(), nil, reservations, "")
	require.NoError(t, err)
	assert.Equal(t, ReasonOutsideBusinessHours, outcome.Reason)
	assert.Empty(t, outcome.ConflictingIDs)
}

func TestValidate_ConfigurationErrors(t *testing.T) {
	tests := []struct {
		name     string
		schedule domain.WeeklySchedule
		breaks   []domain.BreakWindow
		want     error
	}{
		{"nil schedule", nil, nil, ErrNoSchedule},
		{"empty schedule", domain.WeeklySchedule{}, nil, ErrNoSchedule},
		{
			"open day without hours",
			domain.WeeklySchedule{time.Monday: {IsOpen: true}},
			nil,
			ErrInvalidSchedule,
		},
		{
			"open after close",
			domain.WeeklySchedule{time.Monday: {IsOpen: true, Open: "18:00", Close: "09:00"}},
			nil,
			ErrInvalidSchedule,
		},
		{
			"malformed break",
			weekdaySchedule(),
			[]domain.BreakWindow{{Start: "13:00", End: "12:00"}},
			ErrInvalidSchedule,
		},
		{
			"unparsable break time",
			weekdaySchedule(),
			[]domain.BreakWindow{{Start: "noon", End: "13:00"}},
			ErrInvalidSchedule,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Validate(candidate(1, win(10, 0, 11, 0)), tt.schedule, tt.breaks, nil, "")
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			// Любая конфигурационная ошибка различима как ErrConfiguration
			assert.ErrorIs(t, err, ErrConfiguration)
		})
	}
}
