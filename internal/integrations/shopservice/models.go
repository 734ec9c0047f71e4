package shopservice

import "time"

// Shop модель магазина из ShopService
type Shop struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	Timezone   string  `json:"timezone"` // IANA, например "Europe/Moscow"
	ManagerIDs []int64 `json:"manager_ids"`
}

// IsManager возвращает true, если пользователь — менеджер магазина
func (s *Shop) IsManager(userID int64) bool {
	for _, id := range s.ManagerIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// Location возвращает локальную таймзону магазина
// При пустой таймзоне используется UTC
func (s *Shop) Location() (*time.Location, error) {
	if s.Timezone == "" {
		return time.UTC, nil
	}
	return time.LoadLocation(s.Timezone)
}

// ErrorResponse модель ошибки от ShopService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
