package get_subscription

import (
	"context"

	"github.com/artemkls/HMS-BookingService/internal/integrations/subscriptionservice"
)

type SubscriptionClient interface {
	GetSubscription(ctx context.Context, addressID int64) (*subscriptionservice.Subscription, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
