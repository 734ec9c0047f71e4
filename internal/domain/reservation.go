package domain

import "time"

// ReservationStatus represents the status of a reservation
type ReservationStatus string

const (
	StatusPending   ReservationStatus = "pending"
	StatusConfirmed ReservationStatus = "confirmed"
	StatusCancelled ReservationStatus = "cancelled"
)

// Reservation represents a booked time window at a shop
type Reservation struct {
	ID        string // uuid
	UserID    int64
	ShopID    int64
	ServiceID int64
	Window    TimeWindow
	Status    ReservationStatus

	Notes *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the reservation still occupies its time window
// Cancelled reservations never block other reservations
func (r *Reservation) IsActive() bool {
	return r.Status != StatusCancelled
}

// CanBeCancelled returns true if the reservation can be cancelled
// Cancellation is a status change, never a physical delete
func (r *Reservation) CanBeCancelled() bool {
	return r.Status == StatusPending || r.Status == StatusConfirmed
}

// CanBeConfirmed returns true if the reservation can be confirmed
func (r *Reservation) CanBeConfirmed() bool {
	return r.Status == StatusPending
}

// CanBeRescheduled returns true if the reservation's window can be moved
func (r *Reservation) CanBeRescheduled() bool {
	return r.Status == StatusPending || r.Status == StatusConfirmed
}

// CanTransitionTo validates a status transition
// Allowed: pending -> confirmed | cancelled, confirmed -> cancelled
func (r *Reservation) CanTransitionTo(next ReservationStatus) bool {
	switch r.Status {
	case StatusPending:
		return next == StatusConfirmed || next == StatusCancelled
	case StatusConfirmed:
		return next == StatusCancelled
	default:
		return false
	}
}

// ShopReservationsFilter фильтр для получения бронирований магазина
type ShopReservationsFilter struct {
	ShopID           int64              // Обязательный параметр
	Day              *time.Time         // Конкретный день (опционально, если nil - без ограничения)
	Status           *ReservationStatus // Фильтр по статусу (опционально)
	IncludeCancelled bool               // Включать ли отмененные бронирования
}
