package get_calendar_config

import (
	"context"

	"github.com/artemkls/HMS-BookingService/internal/service/calendar/models"
)

type CalendarService interface {
	GetPublic(ctx context.Context) (*models.PublicConfigResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
