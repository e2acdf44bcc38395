package create_booking

import (
	"context"
	"time"

	"github.com/artemkls/HMS-BookingService/internal/domain"
	"github.com/artemkls/HMS-BookingService/internal/integrations/subscriptionservice"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetByDate(ctx context.Context, day time.Time) ([]*domain.Booking, error)
	GetActiveByAddress(ctx context.Context, addressID int64, now time.Time) (*domain.Booking, error)
	CompletePast(ctx context.Context, addressID int64, now time.Time) error
}

// ConfigStore интерфейс хранилища конфигурации календаря
type ConfigStore interface {
	Get(ctx context.Context) (*domain.CalendarConfig, error)
}

// SubscriptionClient интерфейс клиента для SubscriptionService
type SubscriptionClient interface {
	GetSubscription(ctx context.Context, addressID int64) (*subscriptionservice.Subscription, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
