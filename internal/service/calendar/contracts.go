package calendar

import (
	"context"

	"github.com/artemkls/HMS-BookingService/internal/domain"
)

// ConfigStore интерфейс хранилища конфигурации календаря.
// Реализуется репозиторием напрямую или кэширующей оберткой над ним.
type ConfigStore interface {
	Get(ctx context.Context) (*domain.CalendarConfig, error)
	Put(ctx context.Context, cfg *domain.CalendarConfig) (*domain.CalendarConfig, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
