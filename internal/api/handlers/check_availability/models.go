package check_availability

import (
	"time"

	"github.com/kmalkova/SRS-ReservationService/internal/domain"
	checkAvailability "github.com/kmalkova/SRS-ReservationService/internal/usecase/check_availability"
	"github.com/kmalkova/SRS-ReservationService/pkg/types"
)

// CheckAvailabilityRequest HTTP request model
type CheckAvailabilityRequest struct {
	ShopID    int64  `json:"shopId"`
	Date      string `json:"date"`      // "2025-10-15"
	StartTime string `json:"startTime"` // "10:00"
	EndTime   string `json:"endTime"`   // "11:00"
	ExcludeID string `json:"excludeReservationId,omitempty"`
}

// CheckAvailabilityResponse HTTP response model
type CheckAvailabilityResponse struct {
	Available      bool     `json:"available"`
	Reason         string   `json:"reason,omitempty"`
	ConflictingIDs []string `json:"conflictingReservationIds,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CheckAvailabilityRequest) ToUseCaseRequest() (*checkAvailability.Request, error) {
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

	return &checkAvailability.Request{
		ShopID:    r.ShopID,
		Date:      date,
		StartTime: startTime,
		EndTime:   endTime,
		ExcludeID: r.ExcludeID,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkAvailability.Response) *CheckAvailabilityResponse {
	return &CheckAvailabilityResponse{
		Available:      resp.Available,
		Reason:         resp.Reason,
		ConflictingIDs: resp.ConflictingIDs,
	}
}
