package create_reservation

import (
	"time"

	"github.com/kmalkova/SRS-ReservationService/internal/domain"
	createReservation "github.com/kmalkova/SRS-ReservationService/internal/usecase/create_reservation"
	"github.com/kmalkova/SRS-ReservationService/pkg/types"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	UserID    int64   `json:"userId"`
	ShopID    int64   `json:"shopId"`
	ServiceID int64   `json:"serviceId"`
	Date      string  `json:"date"`      // "2025-10-15"
	StartTime string  `json:"startTime"` // "10:00"
	EndTime   string  `json:"endTime"`   // "11:00"
	Notes     *string `json:"notes,omitempty"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID        string  `json:"id"`
	UserID    int64   `json:"userId"`
	ShopID    int64   `json:"shopId"`
	ServiceID int64   `json:"serviceId"`
	Date      string  `json:"date"`
	StartTime string  `json:"startTime"`
	EndTime   string  `json:"endTime"`
	Status    string  `json:"status"`
	Notes     *string `json:"notes,omitempty"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest() (*createReservation.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	endTime, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, err
	}

	return &createReservation.Request{
		UserID:    r.UserID,
		ShopID:    r.ShopID,
		ServiceID: r.ServiceID,
		Date:      date,
		StartTime: startTime,
		EndTime:   endTime,
		Notes:     r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:        resp.ID,
		UserID:    resp.UserID,
		ShopID:    resp.ShopID,
		ServiceID: resp.ServiceID,
		Date:      resp.Window.Start.Format(domain.DateFormat),
		StartTime: resp.Window.Start.Format(domain.TimeFormat),
		EndTime:   resp.Window.End.Format(domain.TimeFormat),
		Status:    resp.Status,
		Notes:     resp.Notes,
		CreatedAt: resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt: resp.UpdatedAt.Format(time.RFC3339),
	}
}
