package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
	MinReservationMinutes       = 5
	MaxReservationMinutes       = 480 // 8 hours
)

// ActiveStatuses список статусов бронирований, занимающих своё временное окно
// Используется при поиске конфликтов
var ActiveStatuses = []ReservationStatus{
	StatusPending,
	StatusConfirmed,
}
