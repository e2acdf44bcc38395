package get_time_slots

import (
	"context"
	"time"

	"github.com/artemkls/HMS-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// GetByDate получает все неотмененные бронирования на конкретную дату
	GetByDate(ctx context.Context, day time.Time) ([]*domain.Booking, error)
}

// ConfigStore интерфейс хранилища конфигурации календаря
type ConfigStore interface {
	Get(ctx context.Context) (*domain.CalendarConfig, error)
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
