package get_subscription

import (
	"time"

	"github.com/artemkls/HMS-BookingService/internal/integrations/subscriptionservice"
)

// SubscriptionResponse HTTP response model
type SubscriptionResponse struct {
	AddressID        int64    `json:"addressId"`
	Plan             string   `json:"plan"`
	Status           string   `json:"status"`
	Active           bool     `json:"active"`
	Services         []string `json:"services,omitempty"`
	CurrentPeriodEnd string   `json:"currentPeriodEnd"` // ISO 8601
}

// FromSubscription конвертирует модель интеграции в HTTP response
func FromSubscription(s *subscriptionservice.Subscription) *SubscriptionResponse {
	return &SubscriptionResponse{
		AddressID:        s.AddressID,
		Plan:             s.Plan,
		Status:           s.Status,
		Active:           s.IsActive(),
		Services:         s.Services,
		CurrentPeriodEnd: s.CurrentPeriodEnd.UTC().Format(time.RFC3339),
	}
}
