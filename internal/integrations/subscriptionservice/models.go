package subscriptionservice

import "time"

// Subscription модель подписки адреса из SubscriptionService
type Subscription struct {
	ID               int64     `json:"id"`
	AddressID        int64     `json:"address_id"`
	Plan             string    `json:"plan"`
	Status           string    `json:"status"` // active, past_due, cancelled
	Services         []string  `json:"services"`
	CurrentPeriodEnd time.Time `json:"current_period_end"`
}

// IsActive возвращает true, если подписка действует
func (s *Subscription) IsActive() bool {
	return s.Status == "active"
}

// Covers возвращает true, если план покрывает указанную услугу.
// Пустой список услуг означает "все услуги плана".
func (s *Subscription) Covers(service string) bool {
	if len(s.Services) == 0 {
		return true
	}
	for _, svc := range s.Services {
		if svc == service {
			return true
		}
	}
	return false
}

// ErrorResponse модель ошибки от SubscriptionService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
